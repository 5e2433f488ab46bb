// Package assets loads the tile atlas and character sheet, falling back to
// generated placeholder art when no file is configured.
package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// DecodeFile reads and decodes an image file from disk.
func DecodeFile(path string) (image.Image, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return img, nil
}

// LoadImage loads an image file from disk as an *ebiten.Image.
func LoadImage(path string) (*ebiten.Image, error) {
	img, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadOr loads path, or uses the image built by placeholder when path is
// empty. A named file that cannot be loaded is an error.
func LoadOr(path string, placeholder func() image.Image) (*ebiten.Image, error) {
	if path == "" {
		return ebiten.NewImageFromImage(placeholder()), nil
	}
	return LoadImage(path)
}
