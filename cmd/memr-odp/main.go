package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yuanying/memr-odp/internal/deck"
	"github.com/yuanying/memr-odp/internal/generator"
)

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
)

// cliOptions is the parsed form of the root command's flags.
type cliOptions struct {
	generator.Options
	DeckPath string
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "memr-odp",
		Short: "Generate the tec-memR OpenDocument presentation",
		Long: `memr-odp writes the tec-memR project slides to an OpenDocument
Presentation (.odp) file that LibreOffice Impress and other office
suites can open.

Slide images are looked up in the image directory; a missing image
leaves its slide text-only. An existing output file is replaced.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runGenerate,
	}
	addGenerateFlags(cmd.Flags())
	addLogFlags(cmd.Flags())
	cmd.AddCommand(newInspectCmd())
	return cmd
}

func addGenerateFlags(fs *pflag.FlagSet) {
	fs.StringP("output", "o", generator.DefaultOutputPath, "Output file path")
	fs.String("deck", "", "YAML deck definition (default: built-in tec-memR deck)")
	fs.String("image-dir", ".", "Directory that relative image paths are resolved against")
	fs.Int("max-image-width", 0, "Downscale images wider than this many pixels (0 embeds files as-is)")
	fs.Bool("no-images", false, "Do not embed any images")
}

func addLogFlags(fs *pflag.FlagSet) {
	fs.String("log-level", defaultLogLevel, "Log level (debug, info, warn, error)")
	fs.String("log-format", defaultLogFormat, "Log format (text, json)")
	fs.BoolP("verbose", "v", false, "Enable debug logging (overrides --log-level)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	opts, err := readCLIOptions(cmd, args)
	if err != nil {
		return err
	}

	d, err := loadDeck(opts.DeckPath, opts.Now())
	if err != nil {
		return err
	}

	opts.Logger.Debug("generating presentation", "output", opts.OutputPath, "slides", len(d.Slides))

	result, err := generator.NewPipeline(opts.Options).Generate(d)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	printSummary(cmd.OutOrStdout(), result)
	return nil
}

func readCLIOptions(cmd *cobra.Command, _ []string) (cliOptions, error) {
	flags := cmd.Flags()
	output, _ := flags.GetString("output")
	deckPath, _ := flags.GetString("deck")
	imageDir, _ := flags.GetString("image-dir")
	maxWidth, _ := flags.GetInt("max-image-width")
	noImages, _ := flags.GetBool("no-images")

	if strings.TrimSpace(output) == "" {
		return cliOptions{}, fmt.Errorf("--output must not be empty")
	}
	if maxWidth < 0 {
		return cliOptions{}, fmt.Errorf("--max-image-width must be 0 or greater, got %d", maxWidth)
	}

	logger, err := readLogger(cmd)
	if err != nil {
		return cliOptions{}, err
	}

	return cliOptions{
		Options: generator.Options{
			OutputPath:    output,
			ImageDir:      imageDir,
			MaxImageWidth: maxWidth,
			NoImages:      noImages,
			Now:           time.Now,
			Logger:        logger,
			Status:        cmd.OutOrStdout(),
		},
		DeckPath: deckPath,
	}, nil
}

func readLogger(cmd *cobra.Command) (*slog.Logger, error) {
	flags := cmd.Flags()
	level, _ := flags.GetString("log-level")
	format, _ := flags.GetString("log-format")
	verbose, _ := flags.GetBool("verbose")

	if _, ok := parseLogLevel(level); !ok {
		return nil, fmt.Errorf("--log-level must be one of debug, info, warn, error, got %q", level)
	}
	switch strings.ToLower(format) {
	case "text", "json":
	default:
		return nil, fmt.Errorf("--log-format must be text or json, got %q", format)
	}
	if verbose {
		level = "debug"
	}

	return buildLogger(cmd.ErrOrStderr(), level, format), nil
}

func parseLogLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

func buildLogger(w io.Writer, level, format string) *slog.Logger {
	lvl, _ := parseLogLevel(level)
	handlerOpts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}

func loadDeck(path string, now time.Time) (*deck.Deck, error) {
	if path == "" {
		return deck.MemR(now), nil
	}
	d, err := deck.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load deck %s: %w", path, err)
	}
	return d, nil
}

func printSummary(w io.Writer, r *generator.Result) {
	fmt.Fprintf(w, "\n✓ Created: %s\n", r.OutputPath)
	fmt.Fprintf(w, "✓ Total slides: %d\n", r.Slides)
	fmt.Fprintf(w, "✓ Images embedded: %d\n", r.Images)
	fmt.Fprintf(w, "✓ File size: %.1f KB\n", float64(r.Size)/1024)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
