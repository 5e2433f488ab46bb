package iso

import "image"

// UVRect is a normalized texture rectangle.
type UVRect struct {
	U0, V0, U1, V1 float64
}

// TileAtlas is a horizontal strip of Count equally sized tiles.
type TileAtlas struct {
	Count     int
	TileWidth float64
}

// Valid reports whether id selects a tile in the atlas.
func (a TileAtlas) Valid(id int) bool {
	return id >= 0 && id < a.Count
}

// UVRect returns the texture rectangle of tile id. ok is false for empty or
// out-of-range ids.
func (a TileAtlas) UVRect(id int) (UVRect, bool) {
	if !a.Valid(id) {
		return UVRect{}, false
	}
	atlasW := a.TileWidth * float64(a.Count)
	return UVRect{
		U0: float64(id) * a.TileWidth / atlasW,
		V0: 0,
		U1: float64(id+1) * a.TileWidth / atlasW,
		V1: 1,
	}, true
}

// Pixels scales the rectangle to an image with the given bounds, rounding to
// the nearest pixel.
func (r UVRect) Pixels(bounds image.Rectangle) image.Rectangle {
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())
	return image.Rect(
		bounds.Min.X+int(r.U0*w+0.5),
		bounds.Min.Y+int(r.V0*h+0.5),
		bounds.Min.X+int(r.U1*w+0.5),
		bounds.Min.Y+int(r.V1*h+0.5),
	)
}
