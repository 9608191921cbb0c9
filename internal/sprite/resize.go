package sprite

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// TileSize is the reference tile edge in pixels. Sprites are fit to this
// tile by default, and placement offsets are suggested relative to it.
const TileSize = 64

// Anchor is a normalized placement point. (0,0) is the top-left corner of
// the available space, (1,1) the bottom-right, (0.5,0.5) the center.
type Anchor struct {
	X float64
	Y float64
}

// ResizeSpec describes one aspect-preserving resize.
type ResizeSpec struct {
	// TargetSize is the length of the long axis after the fit.
	TargetSize int

	// Scale multiplies both output dimensions after the fit. 1.0 keeps
	// the fitted size.
	Scale float64

	// Anchor, when non-nil, pads the resized image onto a square canvas
	// of side round(TargetSize*Scale), placed according to the anchor.
	// Uncovered canvas area stays fully transparent.
	Anchor *Anchor
}

// Resize scales img so its long axis equals spec.TargetSize, preserving
// the aspect ratio exactly, then applies spec.Scale to both dimensions.
// Width governs when the input is square. Output dimensions round to the
// nearest integer, halves away from zero. Resampling uses a Catmull-Rom
// kernel.
//
// Returns InvalidDimensionError when a computed output or canvas dimension
// is not positive.
func Resize(img *image.NRGBA, spec ResizeSpec) (*image.NRGBA, error) {
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	if w == 0 || h == 0 {
		return nil, &InvalidDimensionError{Width: b.Dx(), Height: b.Dy()}
	}

	target := float64(spec.TargetSize)
	var wf, hf float64
	if w >= h {
		wf = target
		hf = target * h / w
	} else {
		hf = target
		wf = target * w / h
	}

	outW := roundHalfAway(wf * spec.Scale)
	outH := roundHalfAway(hf * spec.Scale)
	if outW <= 0 || outH <= 0 {
		return nil, &InvalidDimensionError{Width: outW, Height: outH}
	}

	resized := imaging.Resize(img, outW, outH, imaging.CatmullRom)
	if spec.Anchor == nil {
		return resized, nil
	}

	side := roundHalfAway(target * spec.Scale)
	if side <= 0 {
		return nil, &InvalidDimensionError{Width: side, Height: side}
	}
	offX := roundHalfAway(float64(side-outW) * spec.Anchor.X)
	offY := roundHalfAway(float64(side-outH) * spec.Anchor.Y)
	canvas := imaging.New(side, side, color.NRGBA{})
	return imaging.Paste(canvas, resized, image.Pt(offX, offY)), nil
}

// roundHalfAway rounds to the nearest integer with halves away from zero.
func roundHalfAway(v float64) int {
	return int(math.Round(v))
}
