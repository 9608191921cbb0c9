package sprite

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// ComposeSheet concatenates frames left to right into one sprite sheet.
// Every frame must have identical dimensions; the first frame that
// differs is reported in a DimensionMismatchError. Frame order is
// preserved: frame i occupies columns [i*W, (i+1)*W).
func ComposeSheet(frames []*image.NRGBA) (*image.NRGBA, error) {
	if len(frames) == 0 {
		return nil, &InvalidDimensionError{}
	}

	b := frames[0].Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, &InvalidDimensionError{Width: w, Height: h}
	}
	for i, f := range frames[1:] {
		fb := f.Bounds()
		if fb.Dx() != w || fb.Dy() != h {
			return nil, &DimensionMismatchError{
				Frame:      i + 1,
				WantWidth:  w,
				WantHeight: h,
				GotWidth:   fb.Dx(),
				GotHeight:  fb.Dy(),
			}
		}
	}

	sheet := imaging.New(w*len(frames), h, color.NRGBA{})
	for i, f := range frames {
		// Regions are disjoint; a plain copy is enough.
		sheet = imaging.Paste(sheet, f, image.Pt(i*w, 0))
	}
	return sheet, nil
}
