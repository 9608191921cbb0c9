package sprite

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestComposeAtlas(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	src := newSolidImage(64, 64, red)

	atlas, err := ComposeAtlas(src, DefaultShadow())
	if err != nil {
		t.Fatalf("ComposeAtlas failed: %v", err)
	}

	if atlas.Bounds().Dx() != AtlasWidth || atlas.Bounds().Dy() != AtlasHeight {
		t.Fatalf("dimensions: got %dx%d, want %dx%d",
			atlas.Bounds().Dx(), atlas.Bounds().Dy(), AtlasWidth, AtlasHeight)
	}

	// Default blur 2 insets every level by p=2: tiles of 60, 28, 12 and 4
	// pixels placed at (2,2), (66,2), (98,2), (114,2). Sample each center.
	centers := []image.Point{{32, 32}, {80, 16}, {104, 8}, {116, 4}}
	for i, p := range centers {
		got := atlas.NRGBAAt(p.X, p.Y)
		if !colorClose(got, red, 1) {
			t.Errorf("level %d center (%d,%d): got %v, want about %v", i, p.X, p.Y, got, red)
		}
	}

	// The shadow spills past the largest tile's right edge
	if a := atlas.NRGBAAt(62, 32).A; a == 0 {
		t.Error("expected shadow alpha past the level 0 tile edge")
	}

	// Far from every tile the canvas stays transparent
	for _, p := range []image.Point{{119, 63}, {90, 60}, {110, 62}} {
		if a := atlas.NRGBAAt(p.X, p.Y).A; a != 0 {
			t.Errorf("pixel (%d,%d) should stay transparent, alpha %d", p.X, p.Y, a)
		}
	}
}

func TestComposeAtlas_TrimsSource(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	src := newTransparentImage(128, 128)
	fillRect(src, image.Rect(32, 32, 96, 96), red)

	atlas, err := ComposeAtlas(src, DefaultShadow())
	if err != nil {
		t.Fatalf("ComposeAtlas failed: %v", err)
	}

	// The padded source trims to a 64x64 square, so level 0 renders the
	// content across its full 60x60 tile
	if got := atlas.NRGBAAt(32, 32); !colorClose(got, red, 1) {
		t.Errorf("level 0 center: got %v, want about %v", got, red)
	}
	if got := atlas.NRGBAAt(3, 3); !colorClose(got, red, 1) {
		t.Errorf("level 0 corner: got %v, want about %v", got, red)
	}
}

func TestComposeAtlas_BlurCappedPerLevel(t *testing.T) {
	spec := DefaultShadow()
	spec.Blur = 50 // capped at R/4 per level

	src := newSolidImage(64, 64, color.NRGBA{B: 255, A: 255})
	atlas, err := ComposeAtlas(src, spec)
	if err != nil {
		t.Fatalf("ComposeAtlas failed: %v", err)
	}

	// Insets become 16, 8, 4 and 2, giving tiles of 32, 16, 8 and 4 at
	// (16,16), (72,8), (100,4), (114,2)
	centers := []image.Point{{32, 32}, {80, 16}, {104, 8}, {116, 4}}
	for i, p := range centers {
		if a := atlas.NRGBAAt(p.X, p.Y).A; a != 255 {
			t.Errorf("level %d center (%d,%d): alpha %d, want 255", i, p.X, p.Y, a)
		}
	}

	// Level 0's tile now starts at (16,16); above it only shadow may appear
	if got := atlas.NRGBAAt(32, 16); got.A != 255 {
		t.Errorf("level 0 top edge (32,16): alpha %d, want 255", got.A)
	}
}

func TestComposeAtlas_NoBlurNoInset(t *testing.T) {
	spec := ShadowSpec{OffsetX: 1, OffsetY: 1, Blur: 0, Color: color.NRGBA{A: 115}}
	src := newSolidImage(64, 64, color.NRGBA{G: 255, A: 255})

	atlas, err := ComposeAtlas(src, spec)
	if err != nil {
		t.Fatalf("ComposeAtlas failed: %v", err)
	}

	// With no inset, tiles fill their cells: level 3 covers (112,0)-(120,8)
	if a := atlas.NRGBAAt(112, 0).A; a != 255 {
		t.Errorf("level 3 corner (112,0): alpha %d, want 255", a)
	}
	if a := atlas.NRGBAAt(119, 7).A; a != 255 {
		t.Errorf("level 3 corner (119,7): alpha %d, want 255", a)
	}
}

func TestComposeAtlas_FullyTransparent(t *testing.T) {
	_, err := ComposeAtlas(newTransparentImage(64, 64), DefaultShadow())

	var emptyErr *EmptyImageError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("got %v, want EmptyImageError", err)
	}
}

func TestComposeAtlas_NonSquareSource(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	src := newSolidImage(64, 32, red)

	atlas, err := ComposeAtlas(src, DefaultShadow())
	if err != nil {
		t.Fatalf("ComposeAtlas failed: %v", err)
	}

	// Level 0: 60x30 content centered on a 60x60 tile at (2,2), so rows
	// 17..46 of the atlas carry content at x=32
	if a := atlas.NRGBAAt(32, 32).A; a != 255 {
		t.Errorf("content center (32,32): alpha %d, want 255", a)
	}
	if a := atlas.NRGBAAt(32, 7).A; a != 0 {
		t.Errorf("padding above content (32,7): alpha %d, want 0", a)
	}
}
