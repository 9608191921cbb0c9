package imageio

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
)

// Cache provides thread-safe caching of decoded artwork to avoid
// redundant disk reads.
//
// Decoded images are keyed by the filepath.Clean'd form of the path
// passed to Load, so unclean spellings of one path (./x.png, a//x.png)
// share a single entry and Evict works with any of them. Relative and
// absolute paths to the same file still cache separately.
//
// Every Load returns a fresh copy of the cached pixels: the caller owns
// the returned buffer outright and may hand it to mutating pipeline
// stages without corrupting the cache.
//
// Cache is safe for concurrent use by multiple goroutines.
//
// # Memory Management
//
// Cached images remain in memory until removed via Evict or Clear. Watch
// mode evicts a path whenever its file changes on disk; one-shot batch
// runs simply let process exit reclaim everything.
type Cache struct {
	mu     sync.RWMutex
	images map[string]*image.NRGBA
}

// NewCache creates an empty image cache ready for concurrent use.
func NewCache() *Cache {
	return &Cache{images: make(map[string]*image.NRGBA)}
}

// Load returns the artwork at path as a zero-origin straight-alpha
// buffer.
//
// The file is read and decoded on first use and served from the cache
// afterwards. Whatever color model the file decodes to is converted to
// NRGBA up front. The returned buffer is the caller's own copy.
//
// # Errors
//
//   - *MissingResourceError if the file does not exist
//   - a wrapped I/O or decode error otherwise
func (c *Cache) Load(path string) (*image.NRGBA, error) {
	path = filepath.Clean(path)

	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return imaging.Clone(img), nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &MissingResourceError{Path: path}
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	img := toNRGBA(src)

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return imaging.Clone(img), nil
}

// Clear removes all images from the cache, freeing the associated memory.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]*image.NRGBA)
	c.mu.Unlock()
}

// Evict removes the cached image for path, if any. The next Load for the
// path reads the file from disk again.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, filepath.Clean(path))
	c.mu.Unlock()
}

// toNRGBA converts a freshly decoded image to the pipeline's buffer type.
// Decoders hand back whatever matches the file: YCbCr for JPEG, paletted
// for GIF, premultiplied RGBA for some TIFFs. Cloning converts them all
// to straight-alpha NRGBA at the zero origin.
func toNRGBA(src image.Image) *image.NRGBA {
	if img, ok := src.(*image.NRGBA); ok && img.Rect.Min == (image.Point{}) {
		return img
	}
	return imaging.Clone(src)
}
