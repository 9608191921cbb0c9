package config

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseShadowColor combines a hex color with an opacity in [0,1] into
// the NRGBA value the shadow stage paints with.
func ParseShadowColor(hex string, opacity float64) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid shadow color %q: %w", hex, err)
	}
	if opacity < 0 || opacity > 1 || math.IsNaN(opacity) {
		return color.NRGBA{}, fmt.Errorf("shadow opacity must be within [0,1], got %g", opacity)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(opacity * 255))}, nil
}
