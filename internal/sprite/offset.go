package sprite

import (
	"image"
	"math"
)

// Offset is a suggested placement offset in pixels relative to the
// reference tile. Offsets are advisory: they are reported for the game
// integration to apply in its own rendering layer, never applied to
// pixels here.
type Offset struct {
	X float64
	Y float64
}

// SuggestOffset computes where img should sit inside the reference tile
// for the given anchor. A 64x64 image needs no offset at any anchor;
// smaller or larger images shift proportionally to how far their
// footprint differs from the tile.
func SuggestOffset(img image.Image, anchor Anchor) Offset {
	b := img.Bounds()
	return Offset{
		X: 0.5 * (anchor.X - 0.5) * float64(TileSize-b.Dx()),
		Y: 0.5 * (anchor.Y - 0.5) * float64(TileSize-b.Dy()),
	}
}

// SuggestShadowOffset derives the placement of a companion shadow image
// from the sprite it belongs to. The shadow starts anchored bottom-left,
// then takes a series of tuned nudges: half the sprite's centering gap
// rounded to three decimals, a 4% width shift right, twice the sprite's
// own Y offset, and one pixel down. The constants are calibration against
// the game's renderer, not derived from anything here; do not rework them.
func SuggestShadowOffset(img image.Image, imgOffset Offset, shadow image.Image) Offset {
	base := SuggestOffset(shadow, Anchor{X: 0, Y: 1})
	w := float64(img.Bounds().Dx())
	sh := float64(shadow.Bounds().Dy())
	return Offset{
		X: base.X + round3((TileSize/2-w/2)/2) + w*0.04 + imgOffset.X,
		Y: base.Y + sh/2 + imgOffset.Y*2 + 1,
	}
}

// round3 rounds to three decimal places, halves away from zero.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
