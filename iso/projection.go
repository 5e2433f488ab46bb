// Package iso converts between tile-grid coordinates and isometric world space.
package iso

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Cell addresses one tile of a map.
type Cell struct {
	Col int
	Row int
}

// TileMetrics describes the source art of one tile and the scale it is drawn at.
type TileMetrics struct {
	Width         float64
	Height        float64
	VisibleHeight float64
	Scale         float64
}

// HalfExtents returns the half width and half visible height of a scaled tile.
func (m TileMetrics) HalfExtents() (hw, hh float64) {
	return m.Width * m.Scale / 2, m.VisibleHeight * m.Scale / 2
}

// DrawSize is the on-screen size of the full tile quad.
func (m TileMetrics) DrawSize() (w, h float64) {
	return m.Width * m.Scale, m.Height * m.Scale
}

// Projector maps grid coordinates to world space and back for a map of a
// fixed size centered in a viewport.
type Projector struct {
	HalfW  float64
	HalfH  float64
	Origin cp.Vector

	Rows int
	Cols int
}

func NewProjector(rows, cols int, viewport cp.Vector, tile TileMetrics) Projector {
	hw, hh := tile.HalfExtents()
	return Projector{
		HalfW:  hw,
		HalfH:  hh,
		Origin: ComputeOrigin(rows, cols, viewport, hw, hh),
		Rows:   rows,
		Cols:   cols,
	}
}

// ComputeOrigin centers a rows x cols diamond inside the viewport.
func ComputeOrigin(rows, cols int, viewport cp.Vector, hw, hh float64) cp.Vector {
	n := float64(cols + rows)
	mapW := n * hw
	mapH := n * hh
	return cp.Vector{
		X: viewport.X/2 - mapW/2 + hw,
		Y: viewport.Y/2 - mapH/2,
	}
}

// ToWorld returns the apex of the tile at (col, row). Fractional grid
// coordinates are allowed.
func (p Projector) ToWorld(col, row float64) cp.Vector {
	return cp.Vector{
		X: p.Origin.X + (col-row)*p.HalfW,
		Y: p.Origin.Y + (col+row)*p.HalfH,
	}
}

// ToGrid is the exact inverse of ToWorld.
func (p Projector) ToGrid(world cp.Vector) (gx, gy float64) {
	x := world.X - p.Origin.X
	y := world.Y - p.Origin.Y
	gx = 0.5 * (x/p.HalfW + y/p.HalfH)
	gy = 0.5 * (y/p.HalfH - x/p.HalfW)
	return gx, gy
}

// CellAt rounds a world position to the nearest cell and reports whether
// that cell lies inside the map.
func (p Projector) CellAt(world cp.Vector) (Cell, bool) {
	gx, gy := p.ToGrid(world)
	c := Cell{Col: int(math.Round(gx)), Row: int(math.Round(gy))}
	return c, p.Contains(c)
}

func (p Projector) Contains(c Cell) bool {
	return c.Col >= 0 && c.Row >= 0 && c.Col < p.Cols && c.Row < p.Rows
}
