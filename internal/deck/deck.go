// Package deck defines presentation content: slides, the image table they
// reference, and the built-in memR deck.
package deck

import (
	"errors"
	"fmt"
	"path/filepath"
)

var (
	ErrNoSlides             = errors.New("deck has no slides")
	ErrInvalidImageEntry    = errors.New("image entry needs both key and path")
	ErrDuplicateImageKey    = errors.New("duplicate image key")
	ErrDuplicatePictureName = errors.New("two images share the same file name")
)

// Deck is the full content of one presentation.
type Deck struct {
	Title  string       `yaml:"title"`
	Author string       `yaml:"author"`
	Images []ImageEntry `yaml:"images"`
	Slides []Slide      `yaml:"slides"`
}

// Slide represents one page: a title, body lines and an optional image.
// Blank body lines are kept; they produce empty paragraphs.
type Slide struct {
	Title string   `yaml:"title"`
	Body  []string `yaml:"body"`
	Image string   `yaml:"image"` // key into Deck.Images, empty for text-only
}

// ImageEntry maps a symbolic key to an image file path.
type ImageEntry struct {
	Key  string `yaml:"key"`
	Path string `yaml:"path"`
}

// Image looks up an image table entry by key.
func (d *Deck) Image(key string) (ImageEntry, bool) {
	if key == "" {
		return ImageEntry{}, false
	}
	for _, e := range d.Images {
		if e.Key == key {
			return e, true
		}
	}
	return ImageEntry{}, false
}

// Validate checks the structural constraints the archive depends on.
// Pictures are stored under their base file name, so two entries that
// share one would collide inside the archive.
func (d *Deck) Validate() error {
	if len(d.Slides) == 0 {
		return ErrNoSlides
	}

	keys := make(map[string]struct{}, len(d.Images))
	names := make(map[string]string, len(d.Images))
	for _, e := range d.Images {
		if e.Key == "" || e.Path == "" {
			return fmt.Errorf("%w: key=%q path=%q", ErrInvalidImageEntry, e.Key, e.Path)
		}
		if _, ok := keys[e.Key]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateImageKey, e.Key)
		}
		keys[e.Key] = struct{}{}

		base := filepath.Base(e.Path)
		if other, ok := names[base]; ok {
			return fmt.Errorf("%w: %q used by %q and %q", ErrDuplicatePictureName, base, other, e.Key)
		}
		names[base] = e.Key
	}
	return nil
}
