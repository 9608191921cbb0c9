package sprite

import (
	"image"

	"github.com/disintegration/imaging"
)

// Trim crops img to the tightest axis-aligned rectangle covering every
// pixel with alpha > 0. A buffer that is already tightly bounded is
// returned unchanged, which makes Trim idempotent. Returns EmptyImageError
// when no pixel is even partially opaque.
func Trim(img *image.NRGBA) (*image.NRGBA, error) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	minX, minY := w, h
	maxX, maxY := -1, -1
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			if row[x*4+3] == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if maxX < 0 {
		return nil, &EmptyImageError{Width: w, Height: h}
	}
	if minX == 0 && minY == 0 && maxX == w-1 && maxY == h-1 {
		return img, nil
	}
	return imaging.Crop(img, image.Rect(minX, minY, maxX+1, maxY+1)), nil
}
