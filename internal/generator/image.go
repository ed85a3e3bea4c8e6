package generator

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"strings"

	"github.com/disintegration/imaging"
)

const defaultMaxPixels = 100 * 1000 * 1000 // 100 megapixels

// ImageOptimizer prepares image files for embedding.
type ImageOptimizer struct {
	MaxWidth  int // 0 keeps the source bytes untouched
	MaxPixels int // Total pixel count limit for decode (width * height)
}

// OptimizedImage holds the bytes to embed and their pixel size.
// Warning is set when the source was passed through because it could not
// be inspected or resized; Data is usable either way.
type OptimizedImage struct {
	Data      []byte
	Width     int
	Height    int
	MediaType string
	Resized   bool
	Warning   string
}

// NewImageOptimizer creates an image optimizer from pipeline options.
func NewImageOptimizer(opts Options) *ImageOptimizer {
	maxWidth := opts.MaxImageWidth
	if maxWidth < 0 {
		maxWidth = 0
	}
	return &ImageOptimizer{
		MaxWidth:  maxWidth,
		MaxPixels: defaultMaxPixels,
	}
}

// Optimize inspects input and, when it is wider than MaxWidth, downscales
// it keeping the aspect ratio and the source format.
func (o *ImageOptimizer) Optimize(name string, input []byte) OptimizedImage {
	out := OptimizedImage{
		Data:      input,
		MediaType: "image/png",
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(input))
	if err != nil {
		out.Warning = fmt.Sprintf("cannot read image header: %v", err)
		return out
	}
	out.Width, out.Height = cfg.Width, cfg.Height
	out.MediaType = mediaTypeFor(format)

	if o.MaxWidth <= 0 || cfg.Width <= o.MaxWidth {
		return out
	}

	pixels := uint64(cfg.Width) * uint64(cfg.Height)
	if o.MaxPixels > 0 && pixels > uint64(o.MaxPixels) {
		out.Warning = fmt.Sprintf("image too large to decode: %dx%d (%d pixels)", cfg.Width, cfg.Height, pixels)
		return out
	}

	src, err := imaging.Decode(bytes.NewReader(input))
	if err != nil {
		out.Warning = fmt.Sprintf("image decode failed: %v", err)
		return out
	}

	target, err := imaging.FormatFromFilename(name)
	if err != nil || (target != imaging.JPEG && target != imaging.GIF) {
		target = imaging.PNG
	}
	out.MediaType = mediaTypeFor(target.String())

	resized := imaging.Resize(src, o.MaxWidth, 0, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, target, imaging.PNGCompressionLevel(png.BestCompression), imaging.JPEGQuality(90)); err != nil {
		out.Warning = fmt.Sprintf("image encode failed: %v", err)
		return out
	}

	out.Data = buf.Bytes()
	out.Width = resized.Bounds().Dx()
	out.Height = resized.Bounds().Dy()
	out.Resized = true
	return out
}

func mediaTypeFor(format string) string {
	switch strings.ToLower(format) {
	case "jpeg", "jpg":
		return "image/jpeg"
	case "gif":
		return "image/gif"
	default:
		return "image/png"
	}
}
