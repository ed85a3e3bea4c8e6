package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yuanying/memr-odp/internal/odp"
)

var errInconsistentArchive = errors.New("archive is inconsistent")

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file.odp>",
		Short: "Validate an ODP file and print its slide outline",
		Long: `inspect checks that the archive starts with an uncompressed mimetype
member, reads the manifest, and lists every slide with its title,
paragraph count and embedded images. It fails when a slide references
a picture that the manifest or the archive does not contain.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         runInspect,
	}
	addLogFlags(cmd.Flags())
	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	logger, err := readLogger(cmd)
	if err != nil {
		return err
	}

	r, err := odp.Open(args[0])
	if err != nil {
		return err
	}
	defer r.Close()

	slides, err := r.Outline()
	if err != nil {
		return err
	}

	manifest := make(map[string]struct{}, len(r.Manifest()))
	pictures := 0
	for _, e := range r.Manifest() {
		manifest[e.FullPath] = struct{}{}
		if strings.HasPrefix(e.FullPath, odp.PicturesDir) {
			pictures++
		}
	}
	members := make(map[string]struct{}, len(r.Names()))
	for _, name := range r.Names() {
		members[name] = struct{}{}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d slides, %d pictures\n", args[0], len(slides), pictures)

	var problems []string
	for i, s := range slides {
		writeSlideLine(out, i+1, s)
		for _, href := range s.Images {
			if _, ok := manifest[href]; !ok {
				problems = append(problems, fmt.Sprintf("slide %d: %s missing from manifest", i+1, href))
			}
			if _, ok := members[href]; !ok {
				problems = append(problems, fmt.Sprintf("slide %d: %s missing from archive", i+1, href))
			}
		}
	}

	for _, p := range problems {
		logger.Error("inconsistent reference", "problem", p)
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %d problem(s)", errInconsistentArchive, len(problems))
	}
	return nil
}

func writeSlideLine(w io.Writer, num int, s odp.SlideOutline) {
	fmt.Fprintf(w, "%3d. %s (%d paragraphs)", num, s.Title, len(s.Paragraphs))
	if len(s.Images) > 0 {
		fmt.Fprintf(w, " [%s]", strings.Join(s.Images, ", "))
	}
	fmt.Fprintln(w)
}
