// Package assets decodes the demo texture from disk.
// PNG and JPEG decoders are registered on import.
package assets

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"github.com/vovakirdan/sprite-demo/internal/core"
)

// Texture is a decoded image together with where it came from.
type Texture struct {
	Path   string
	Format string // "png" or "jpeg"
	Image  image.Image
}

// Load opens and decodes the image at path.
func Load(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot open texture: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot decode texture %s: %w", path, err)
	}

	return &Texture{Path: path, Format: format, Image: img}, nil
}

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() (int, int) {
	b := t.Image.Bounds()
	return b.Dx(), b.Dy()
}

// Fits reports whether r lies entirely within the texture.
func (t *Texture) Fits(r core.Rect) bool {
	w, h := t.Size()
	return !r.Empty() && r.X >= 0 && r.Y >= 0 && r.Right() <= w && r.Bottom() <= h
}

// LoadSprite loads the texture at path and checks that the sprite region
// lies inside it.
func LoadSprite(path string, sprite core.Rect) (*Texture, error) {
	tex, err := Load(path)
	if err != nil {
		return nil, err
	}
	if !tex.Fits(sprite) {
		w, h := tex.Size()
		return nil, fmt.Errorf("assets: sprite %+v outside %dx%d texture %s", sprite, w, h, path)
	}
	return tex, nil
}
