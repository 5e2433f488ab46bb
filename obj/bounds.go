package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ravenslike/common"
	"github.com/milk9111/ravenslike/iso"
)

// Bounds keeps the character's feet on the map. The feet are a horizontal
// segment FootWidth wide, FootOffset above the bottom of the sprite.
type Bounds struct {
	Proj       iso.Projector
	SpriteH    float64
	FootWidth  float64
	FootOffset float64
	// Bias shifts grid coordinates from tile apexes to the visible diamonds.
	Bias float64
}

// Foot returns the center of the foot segment of a sprite centered at center.
func (b Bounds) Foot(center cp.Vector) cp.Vector {
	return cp.Vector{X: center.X, Y: center.Y - b.SpriteH/2 + b.FootOffset}
}

// CenterForFoot is the inverse of Foot.
func (b Bounds) CenterForFoot(foot cp.Vector) cp.Vector {
	return cp.Vector{X: foot.X, Y: foot.Y + b.SpriteH/2 - b.FootOffset}
}

// FootGrid returns the biased grid coordinates of a world point.
func (b Bounds) FootGrid(p cp.Vector) (gx, gy float64) {
	gx, gy = b.Proj.ToGrid(p)
	return gx - b.Bias, gy - b.Bias
}

// FootCell is the map cell under the feet of a sprite centered at center.
func (b Bounds) FootCell(center cp.Vector) iso.Cell {
	// shifting down by 2*Bias*HalfH moves both grid axes back by Bias
	foot := b.Foot(center).Sub(cp.Vector{Y: 2 * b.Bias * b.Proj.HalfH})
	c, _ := b.Proj.CellAt(foot)
	return c
}

// SpawnPoint is the sprite center that puts the feet in the middle of cell.
func (b Bounds) SpawnPoint(col, row float64) cp.Vector {
	return b.CenterForFoot(b.Proj.ToWorld(col+b.Bias, row+b.Bias))
}

// Clamp returns center moved so both ends of the foot segment sit inside the
// map's grid range. Each end is clamped in grid space and the feet are
// centered on the midpoint of the clamped ends. That midpoint is then pulled
// in by the foot's own reach so neither end pokes past a corner.
func (b Bounds) Clamp(center cp.Vector) cp.Vector {
	foot := b.Foot(center)
	half := cp.Vector{X: b.FootWidth / 2}
	left := b.clampPoint(foot.Sub(half), 0)
	right := b.clampPoint(foot.Add(half), 0)
	mid := left.Add(right).Mult(0.5)
	return b.CenterForFoot(b.clampPoint(mid, b.footReach()))
}

// footReach is how far each end of the foot lies from its center on both
// grid axes. A horizontal offset dx moves the grid by (+dx, -dx)/(2*HalfW).
func (b Bounds) footReach() float64 {
	if b.Proj.HalfW <= 0 {
		return 0
	}
	return b.FootWidth / 2 / (2 * b.Proj.HalfW)
}

// clampPoint clamps p to the grid range shrunk by inset on every side.
func (b Bounds) clampPoint(p cp.Vector, inset float64) cp.Vector {
	gx, gy := b.FootGrid(p)
	gx = clampAxis(gx, inset, b.Proj.Cols)
	gy = clampAxis(gy, inset, b.Proj.Rows)
	return b.Proj.ToWorld(gx+b.Bias, gy+b.Bias)
}

func clampAxis(v, inset float64, n int) float64 {
	lo := -0.5 + inset
	hi := float64(n) - 0.5 - inset
	if lo > hi {
		return float64(n-1) / 2
	}
	return common.Clamp(v, lo, hi)
}
