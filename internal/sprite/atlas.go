package sprite

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Atlas canvas geometry. Four mipmap-style resolutions sit side by side
// on one fixed-size canvas:
//
//	resolution:  64  32  16    8
//	x offset:     0  64  96  112
//
// All levels share y = 0, which makes the canvas 120x64.
const (
	AtlasWidth  = 120
	AtlasHeight = 64
)

var atlasLevels = [4]struct{ Size, X int }{
	{64, 0},
	{32, 64},
	{16, 96},
	{8, 112},
}

// ComposeAtlas renders src at every atlas resolution onto the fixed
// canvas and applies the drop shadow to the finished atlas. The source is
// trimmed once; each level is then resized from a fresh copy of the
// trimmed image, never from the previous level, so resampling error does
// not compound across resolutions.
//
// Each level insets its content by p = min(shadow.Blur, R/4) pixels,
// reserving room inside the RxR cell for the shadow to spread.
func ComposeAtlas(src *image.NRGBA, shadow ShadowSpec) (*image.NRGBA, error) {
	trimmed, err := Trim(src)
	if err != nil {
		return nil, err
	}

	atlas := imaging.New(AtlasWidth, AtlasHeight, color.NRGBA{})
	center := Anchor{X: 0.5, Y: 0.5}
	for _, level := range atlasLevels {
		p := shadow.Blur
		if limit := level.Size / 4; p > limit {
			p = limit
		}

		tile, err := Resize(imaging.Clone(trimmed), ResizeSpec{
			TargetSize: level.Size - 2*p,
			Scale:      1,
			Anchor:     &center,
		})
		if err != nil {
			return nil, err
		}
		atlas = imaging.Paste(atlas, tile, image.Pt(level.X+p, p))
	}

	ApplyDropShadow(atlas, shadow)
	return atlas, nil
}
