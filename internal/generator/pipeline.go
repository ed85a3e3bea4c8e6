// Package generator assembles a deck into an ODP file on disk.
package generator

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/yuanying/memr-odp/internal/deck"
	"github.com/yuanying/memr-odp/internal/odp"
)

const (
	// DefaultOutputPath is the file written when no output is given.
	DefaultOutputPath = "memR_presentation.odp"
	defaultGenerator  = "memr-odp"
)

// Options holds options for the generation pipeline.
type Options struct {
	OutputPath    string
	ImageDir      string // base for relative image paths; empty means the working directory
	MaxImageWidth int    // pixels; 0 embeds image files byte for byte
	NoImages      bool
	Generator     string
	Now           func() time.Time
	Logger        *slog.Logger
	Status        io.Writer // human-readable progress lines; nil discards them
}

// Result summarizes a completed run.
type Result struct {
	OutputPath string
	Slides     int
	Images     int
	Size       int64
	Found      []string
	Missing    []string
}

// Pipeline orchestrates deck to ODP generation.
type Pipeline struct {
	Options Options
	logger  *slog.Logger
	status  io.Writer
}

// NewPipeline creates a new generation pipeline.
func NewPipeline(opts Options) *Pipeline {
	if opts.OutputPath == "" {
		opts.OutputPath = DefaultOutputPath
	}
	if opts.Generator == "" {
		opts.Generator = defaultGenerator
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	status := opts.Status
	if status == nil {
		status = io.Discard
	}

	return &Pipeline{Options: opts, logger: logger, status: status}
}

// availableImage is an image table entry whose file exists.
type availableImage struct {
	entry  deck.ImageEntry
	source string
}

// Generate writes d to the output path. Missing images degrade their
// slides to text-only; an unreadable image or output path aborts the run.
func (p *Pipeline) Generate(d *deck.Deck) (*Result, error) {
	if d == nil {
		return nil, deck.ErrNoSlides
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid deck: %w", err)
	}

	result := &Result{OutputPath: p.Options.OutputPath, Slides: len(d.Slides)}

	var available []availableImage
	if p.Options.NoImages {
		p.logger.Info("image embedding disabled")
	} else {
		available = p.resolveImages(d, result)
	}

	pictures, frames, err := p.loadPictures(available)
	if err != nil {
		return nil, err
	}
	result.Images = len(pictures)

	doc := p.buildDocument(d, pictures, frames)

	size, err := p.writeODP(doc)
	if err != nil {
		return nil, err
	}
	result.Size = size

	return result, nil
}

// resolveImages keeps the table entries whose file exists, in table order.
func (p *Pipeline) resolveImages(d *deck.Deck, result *Result) []availableImage {
	var available []availableImage
	for _, entry := range d.Images {
		source := p.imagePath(entry.Path)
		info, err := os.Stat(source)
		switch {
		case err == nil && info.Mode().IsRegular():
			available = append(available, availableImage{entry: entry, source: source})
			result.Found = append(result.Found, entry.Path)
			fmt.Fprintf(p.status, "✓ Found image: %s\n", entry.Path)
			p.logger.Debug("image available", "key", entry.Key, "path", source)
			continue
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			p.logger.Warn("cannot stat image, treating as missing", "key", entry.Key, "path", source, "error", err)
		case err == nil:
			p.logger.Warn("image path is not a regular file", "key", entry.Key, "path", source)
		}
		result.Missing = append(result.Missing, entry.Path)
		fmt.Fprintf(p.status, "✗ Missing image: %s\n", entry.Path)
	}
	return available
}

func (p *Pipeline) imagePath(path string) string {
	if filepath.IsAbs(path) || p.Options.ImageDir == "" {
		return path
	}
	return filepath.Join(p.Options.ImageDir, path)
}

// loadPictures reads every available image. Frames are keyed by image
// table key.
func (p *Pipeline) loadPictures(available []availableImage) ([]odp.Picture, map[string]*odp.ImageFrame, error) {
	optimizer := NewImageOptimizer(p.Options)
	pictures := make([]odp.Picture, 0, len(available))
	frames := make(map[string]*odp.ImageFrame, len(available))

	for _, img := range available {
		data, err := os.ReadFile(img.source)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read image %q: %w", img.source, err)
		}

		name := filepath.Base(img.entry.Path)
		opt := optimizer.Optimize(name, data)
		if opt.Warning != "" {
			p.logger.Warn("image embedded as-is", "path", img.source, "reason", opt.Warning)
		}
		if opt.Resized {
			p.logger.Debug("image resized", "path", img.source, "width", opt.Width, "height", opt.Height,
				"bytes_before", len(data), "bytes_after", len(opt.Data))
		}

		pic := odp.Picture{Name: name, MediaType: opt.MediaType, Data: opt.Data}
		pictures = append(pictures, pic)
		frames[img.entry.Key] = &odp.ImageFrame{
			Href: pic.Path(),
			Rect: odp.FitImage(odp.ImageBox, opt.Width, opt.Height),
		}
	}

	return pictures, frames, nil
}

// buildDocument maps slides to pages in input order.
func (p *Pipeline) buildDocument(d *deck.Deck, pictures []odp.Picture, frames map[string]*odp.ImageFrame) odp.Document {
	title := d.Title
	if title == "" {
		title = d.Slides[0].Title
	}
	if title == "" {
		title = "Untitled"
	}

	pages := make([]odp.Page, len(d.Slides))
	for i, s := range d.Slides {
		pages[i] = odp.Page{Title: s.Title, Body: s.Body}
		if s.Image == "" {
			continue
		}
		if frame, ok := frames[s.Image]; ok {
			pages[i].Image = frame
			continue
		}
		if _, known := d.Image(s.Image); !known {
			p.logger.Warn("slide references unknown image key, rendering text only", "slide", i+1, "key", s.Image)
		} else {
			p.logger.Info("image unavailable, rendering text only", "slide", i+1, "key", s.Image)
		}
	}

	return odp.Document{
		Meta: odp.Metadata{
			Title:     title,
			Author:    d.Author,
			Generator: p.Options.Generator,
			Created:   p.Options.Now(),
		},
		Pages:    pages,
		Pictures: pictures,
	}
}

// writeODP writes the archive next to the output path and renames it into
// place, replacing any existing file.
func (p *Pipeline) writeODP(doc odp.Document) (int64, error) {
	writer, err := odp.NewWriter(doc)
	if err != nil {
		return 0, fmt.Errorf("failed to create ODP writer: %w", err)
	}

	out := p.Options.OutputPath
	tmp, err := os.CreateTemp(filepath.Dir(out), "."+filepath.Base(out)+".*.tmp")
	if err != nil {
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}
	tmpPath := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	n, err := writer.WriteTo(tmp)
	if err != nil {
		_ = tmp.Close()
		cleanup()
		return 0, fmt.Errorf("failed to write ODP: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return 0, fmt.Errorf("failed to close output file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		cleanup()
		return 0, fmt.Errorf("failed to set output permissions: %w", err)
	}
	if err := os.Rename(tmpPath, out); err != nil {
		cleanup()
		return 0, fmt.Errorf("failed to move output into place: %w", err)
	}

	p.logger.Debug("archive written", "path", out, "bytes", n, "pictures", len(doc.Pictures))
	return n, nil
}
