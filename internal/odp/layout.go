package odp

import (
	"math"
	"strconv"
)

// Rect is a frame position and size in centimetres.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Page geometry for a 28cm x 21cm landscape slide.
var (
	TitleRect      = Rect{X: 2, Y: 1.5, Width: 24, Height: 3}
	BodyRect       = Rect{X: 2, Y: 5.5, Width: 24, Height: 14}
	NarrowBodyRect = Rect{X: 2, Y: 5.5, Width: 11, Height: 10}
	ImageBox       = Rect{X: 14, Y: 5.5, Width: 12, Height: 10}
)

// FitImage scales a pixel size into box, keeping the aspect ratio and
// centring the result. Unknown dimensions yield the full box.
func FitImage(box Rect, pxWidth, pxHeight int) Rect {
	if pxWidth <= 0 || pxHeight <= 0 {
		return box
	}

	ratio := float64(pxWidth) / float64(pxHeight)
	w, h := box.Width, box.Width/ratio
	if h > box.Height {
		w, h = box.Height*ratio, box.Height
	}

	return Rect{
		X:      round(box.X + (box.Width-w)/2),
		Y:      round(box.Y + (box.Height-h)/2),
		Width:  round(w),
		Height: round(h),
	}
}

func round(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// cm formats a length for svg:* attributes.
func cm(v float64) string {
	return strconv.FormatFloat(round(v), 'f', -1, 64) + "cm"
}
