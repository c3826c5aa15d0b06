package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"log"
	"os"

	"github.com/decker502/tipcarousel/pkg/carousel"
	"github.com/decker502/tipcarousel/pkg/config"
	"github.com/decker502/tipcarousel/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ResourceManager is responsible for centralized management of application resources.
// It loads tip images and fonts once and reuses them for every card.
//
// Images are decoded from the embedded data FS first and fall back to the local
// file system, the same lookup order the config loaders use.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The internal caches use standard Go maps.
// For the single-threaded game loop, no synchronization is needed.
type ResourceManager struct {
	decodedCache  map[string]image.Image        // path -> decoded image
	textureCache  map[image.Image]*ebiten.Image // decoded image -> GPU texture
	fontSource    *text.GoTextFaceSource        // default font source (Go Regular)
	fontFaceCache map[float64]*text.GoTextFace  // size -> face
}

// NewResourceManager creates and initializes a new ResourceManager instance with empty caches.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		decodedCache:  make(map[string]image.Image),
		textureCache:  make(map[image.Image]*ebiten.Image),
		fontFaceCache: make(map[float64]*text.GoTextFace),
	}
}

// DecodeImage loads and decodes an image file (PNG or JPEG), caching the result.
//
// Returns an error if the file does not exist or cannot be decoded.
func (rm *ResourceManager) DecodeImage(path string) (image.Image, error) {
	if cached, exists := rm.decodedCache[path]; exists {
		return cached, nil
	}

	var (
		r   io.ReadCloser
		err error
	)
	if embedded.Exists(path) {
		r, err = embedded.Open(path)
	} else {
		r, err = os.Open(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer r.Close()

	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	rm.decodedCache[path] = img
	return img, nil
}

// LoadTips converts a tip deck into carousel tips.
//
// A missing or broken image is not fatal: the tip is kept and shown without an image.
func (rm *ResourceManager) LoadTips(deck *config.TipDeck) []carousel.Tip {
	if deck == nil {
		return nil
	}

	tips := make([]carousel.Tip, 0, len(deck.Tips))
	for i, entry := range deck.Tips {
		tip := carousel.Tip{
			Title:   entry.Title,
			Summary: entry.Summary,
		}
		if entry.Image != "" {
			img, err := rm.DecodeImage(entry.Image)
			if err != nil {
				log.Printf("[ResourceManager] Warning: tip %d image unavailable: %v", i, err)
			} else {
				tip.Image = img
			}
		}
		tips = append(tips, tip)
	}
	return tips
}

// Texture returns the Ebitengine image for a decoded image, creating it on first use.
// A nil input returns nil.
func (rm *ResourceManager) Texture(img image.Image) *ebiten.Image {
	if img == nil {
		return nil
	}
	if eimg, ok := img.(*ebiten.Image); ok {
		return eimg
	}
	if cached, exists := rm.textureCache[img]; exists {
		return cached
	}

	texture := ebiten.NewImageFromImage(img)
	rm.textureCache[img] = texture
	return texture
}

// DefaultFace returns the default text face at the given size.
// The face is backed by the Go Regular font bundled with golang.org/x/image.
func (rm *ResourceManager) DefaultFace(size float64) (*text.GoTextFace, error) {
	if cachedFace, exists := rm.fontFaceCache[size]; exists {
		return cachedFace, nil
	}

	if rm.fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to create default font source: %w", err)
		}
		rm.fontSource = source
	}

	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[size] = face
	return face, nil
}
