package imageio

import "fmt"

// MissingResourceError reports a required input file that does not exist.
// Variant frames and shadow companions are checked up front, so the error
// surfaces before any pixel work begins.
type MissingResourceError struct {
	Path string
}

func (e *MissingResourceError) Error() string {
	return fmt.Sprintf("required file %s does not exist", e.Path)
}
