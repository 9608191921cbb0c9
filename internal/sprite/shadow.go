package sprite

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/blur"
)

// ShadowSpec describes a synthesized drop shadow: how far the silhouette
// is displaced, how much it is softened, and what color it casts.
type ShadowSpec struct {
	OffsetX int
	OffsetY int

	// Blur is the softening radius in pixels. 0 keeps hard silhouette
	// edges. Must not be negative.
	Blur int

	// Color is the straight-alpha cast color. Its alpha is the shadow's
	// opacity where the source is fully opaque.
	Color color.NRGBA
}

// DefaultShadow returns the stock shadow: one pixel down-right, blur 2,
// black at 45% opacity.
func DefaultShadow() ShadowSpec {
	return ShadowSpec{OffsetX: 1, OffsetY: 1, Blur: 2, Color: color.NRGBA{A: 115}}
}

// ApplyDropShadow renders a drop shadow behind the opaque content of buf,
// in place. The silhouette of every pixel with alpha > 0 is displaced by
// the spec's offset, tinted with the spec color at opacity proportional
// to the source alpha, blurred, and composited under the original
// content. Shadow falling outside the buffer is clipped; the canvas never
// grows.
func ApplyDropShadow(buf *image.NRGBA, spec ShadowSpec) {
	b := buf.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return
	}

	layer := castSilhouette(buf, spec)
	if spec.Blur > 0 {
		blurMask(layer, spec)
	}

	// Source over shadow, written back into buf.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			si := y*buf.Stride + x*4
			li := y*layer.Stride + x*4
			r, g, bl, a := over(
				buf.Pix[si], buf.Pix[si+1], buf.Pix[si+2], buf.Pix[si+3],
				layer.Pix[li], layer.Pix[li+1], layer.Pix[li+2], layer.Pix[li+3],
			)
			buf.Pix[si], buf.Pix[si+1], buf.Pix[si+2], buf.Pix[si+3] = r, g, bl, a
		}
	}
}

// castSilhouette projects the displaced shadow of buf's content onto a
// fresh transparent layer. Casts accumulate with the over operator rather
// than overwriting, so alpha builds up where displaced content stacks.
func castSilhouette(buf *image.NRGBA, spec ShadowSpec) *image.NRGBA {
	b := buf.Bounds()
	w, h := b.Dx(), b.Dy()
	layer := image.NewNRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := buf.Pix[y*buf.Stride+x*4+3]
			if a == 0 {
				continue
			}
			tx, ty := x+spec.OffsetX, y+spec.OffsetY
			if tx < 0 || tx >= w || ty < 0 || ty >= h {
				continue
			}

			cast := spec.Color
			cast.A = uint8((uint32(cast.A)*uint32(a) + 127) / 255)
			li := ty*layer.Stride + tx*4
			r, g, bl, la := over(
				cast.R, cast.G, cast.B, cast.A,
				layer.Pix[li], layer.Pix[li+1], layer.Pix[li+2], layer.Pix[li+3],
			)
			layer.Pix[li], layer.Pix[li+1], layer.Pix[li+2], layer.Pix[li+3] = r, g, bl, la
		}
	}
	return layer
}

// blurMask softens the layer's silhouette. The layer carries one constant
// color, so only the coverage mask needs blurring: the alpha channel is
// extracted to grayscale, blurred there, and written back under the
// unchanged cast color.
func blurMask(layer *image.NRGBA, spec ShadowSpec) {
	b := layer.Bounds()
	w, h := b.Dx(), b.Dy()

	mask := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			mask.Pix[y*mask.Stride+x] = layer.Pix[y*layer.Stride+x*4+3]
		}
	}

	blurred := blur.Gaussian(mask, float64(spec.Blur))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			li := y*layer.Stride + x*4
			layer.Pix[li] = spec.Color.R
			layer.Pix[li+1] = spec.Color.G
			layer.Pix[li+2] = spec.Color.B
			layer.Pix[li+3] = blurred.Pix[y*blurred.Stride+x*4]
		}
	}
}

// over composites a foreground pixel over a background pixel with the
// source-over operator in straight alpha.
func over(fr, fg, fb, fa, br, bg, bb, ba uint8) (uint8, uint8, uint8, uint8) {
	if fa == 255 || ba == 0 {
		return fr, fg, fb, fa
	}
	if fa == 0 {
		return br, bg, bb, ba
	}

	faf := float64(fa) / 255
	baf := float64(ba) / 255
	outA := faf + baf*(1-faf)

	r := clampUint8((float64(fr)*faf + float64(br)*baf*(1-faf)) / outA)
	g := clampUint8((float64(fg)*faf + float64(bg)*baf*(1-faf)) / outA)
	b := clampUint8((float64(fb)*faf + float64(bb)*baf*(1-faf)) / outA)
	return r, g, b, clampUint8(outA * 255)
}

// clampUint8 rounds and clamps a channel value to the byte range.
func clampUint8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
