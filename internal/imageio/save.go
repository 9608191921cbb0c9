package imageio

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// Stat reports whether path exists, returning *MissingResourceError when
// it does not.
func Stat(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return &MissingResourceError{Path: path}
		}
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return nil
}

// SavePNG writes img to path as PNG, creating parent directories as
// needed.
func SavePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
