package sprite

import "fmt"

// EmptyImageError indicates that a buffer contains no pixel with alpha > 0,
// so no content bounding box exists. The rest of the pipeline cannot do
// anything useful with an invisible image, so this aborts the image's run.
type EmptyImageError struct {
	Width  int
	Height int
}

func (e *EmptyImageError) Error() string {
	return fmt.Sprintf("image %dx%d is fully transparent", e.Width, e.Height)
}

// DimensionMismatchError indicates that a frame does not share the
// dimensions of its siblings in a sheet or atlas composition.
type DimensionMismatchError struct {
	// Frame is the 0-based index of the offending frame.
	Frame      int
	WantWidth  int
	WantHeight int
	GotWidth   int
	GotHeight  int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("frame %d is %dx%d, want %dx%d to match the other frames",
		e.Frame, e.GotWidth, e.GotHeight, e.WantWidth, e.WantHeight)
}

// InvalidDimensionError indicates that a computed output dimension is not
// positive, typically the product of a zero target size or scale.
type InvalidDimensionError struct {
	Width  int
	Height int
}

func (e *InvalidDimensionError) Error() string {
	return fmt.Sprintf("computed dimensions %dx%d are not positive", e.Width, e.Height)
}
