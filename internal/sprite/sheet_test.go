package sprite

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestComposeSheet(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	green := color.NRGBA{G: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}

	sheet, err := ComposeSheet([]*image.NRGBA{
		newSolidImage(10, 10, red),
		newSolidImage(10, 10, green),
		newSolidImage(10, 10, blue),
	})
	if err != nil {
		t.Fatalf("ComposeSheet failed: %v", err)
	}

	if sheet.Bounds().Dx() != 30 || sheet.Bounds().Dy() != 10 {
		t.Fatalf("dimensions: got %dx%d, want 30x10", sheet.Bounds().Dx(), sheet.Bounds().Dy())
	}

	// Every pixel of every column band must match its frame exactly
	for y := 0; y < 10; y++ {
		for x := 0; x < 30; x++ {
			want := red
			switch {
			case x >= 20:
				want = blue
			case x >= 10:
				want = green
			}
			if got := sheet.NRGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestComposeSheet_SingleFrame(t *testing.T) {
	frame := newTransparentImage(8, 12)
	fillRect(frame, image.Rect(2, 3, 6, 9), color.NRGBA{R: 80, G: 90, B: 100, A: 200})

	sheet, err := ComposeSheet([]*image.NRGBA{frame})
	if err != nil {
		t.Fatalf("ComposeSheet failed: %v", err)
	}
	if sheet.Bounds() != frame.Bounds() {
		t.Fatalf("bounds: got %v, want %v", sheet.Bounds(), frame.Bounds())
	}
	if !bytes.Equal(sheet.Pix, frame.Pix) {
		t.Error("single frame sheet should copy the frame verbatim")
	}
}

func TestComposeSheet_DimensionMismatch(t *testing.T) {
	frames := []*image.NRGBA{
		newSolidImage(10, 10, color.NRGBA{A: 255}),
		newSolidImage(10, 10, color.NRGBA{A: 255}),
		newSolidImage(12, 10, color.NRGBA{A: 255}),
	}

	_, err := ComposeSheet(frames)

	var mismatch *DimensionMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("got %v, want DimensionMismatchError", err)
	}
	if mismatch.Frame != 2 {
		t.Errorf("frame index: got %d, want 2", mismatch.Frame)
	}
	if mismatch.GotWidth != 12 || mismatch.GotHeight != 10 {
		t.Errorf("got dimensions: %dx%d, want 12x10", mismatch.GotWidth, mismatch.GotHeight)
	}
	if mismatch.WantWidth != 10 || mismatch.WantHeight != 10 {
		t.Errorf("want dimensions: %dx%d, want 10x10", mismatch.WantWidth, mismatch.WantHeight)
	}
}

func TestComposeSheet_NoFrames(t *testing.T) {
	_, err := ComposeSheet(nil)

	var dimErr *InvalidDimensionError
	if !errors.As(err, &dimErr) {
		t.Fatalf("got %v, want InvalidDimensionError", err)
	}
}

func TestComposeSheet_PreservesTransparency(t *testing.T) {
	frame := newTransparentImage(6, 6)
	frame.SetNRGBA(3, 3, color.NRGBA{R: 255, A: 128})

	sheet, err := ComposeSheet([]*image.NRGBA{frame, frame})
	if err != nil {
		t.Fatalf("ComposeSheet failed: %v", err)
	}

	if a := sheet.NRGBAAt(0, 0).A; a != 0 {
		t.Errorf("transparent pixel gained alpha %d", a)
	}
	if got := sheet.NRGBAAt(9, 3); got != (color.NRGBA{R: 255, A: 128}) {
		t.Errorf("second frame pixel: got %v, want partial red", got)
	}
}
