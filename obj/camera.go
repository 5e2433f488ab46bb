package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ravenslike/common"
)

// Camera keeps the player centered in the viewport, trailing behind it with
// exponential smoothing. Pos is the world position of the view's bottom-left
// corner; world space has Y pointing up.
type Camera struct {
	Pos cp.Vector

	viewport cp.Vector
	// follow rate per second. <= 0 snaps to the target every update.
	smoothness float64
}

// NewCamera creates a camera for a viewport of the given logical size.
func NewCamera(viewport cp.Vector, smoothness float64) *Camera {
	return &Camera{viewport: viewport, smoothness: smoothness}
}

// Target is the camera position that centers focus in the viewport.
func (c *Camera) Target(focus cp.Vector) cp.Vector {
	return focus.Sub(c.viewport.Mult(0.5))
}

// Update moves the camera toward the target for focus. The step is capped
// at the full distance so long frames never overshoot.
func (c *Camera) Update(focus cp.Vector, dt float64) {
	target := c.Target(focus)
	if c.smoothness <= 0 {
		c.Pos = target
		return
	}
	t := common.Clamp(c.smoothness*dt, 0, 1)
	c.Pos = c.Pos.Add(target.Sub(c.Pos).Mult(t))
}

// SnapTo immediately centers the camera on focus. Use after a level load.
func (c *Camera) SnapTo(focus cp.Vector) {
	c.Pos = c.Target(focus)
}

// ToScreen maps a world point to screen pixels, flipping Y.
func (c *Camera) ToScreen(world cp.Vector) (x, y float64) {
	return world.X - c.Pos.X, c.viewport.Y - (world.Y - c.Pos.Y)
}

// RectToScreen returns the screen top-left of a world rectangle whose
// bottom-left corner is at min and whose size is (w, h).
func (c *Camera) RectToScreen(min cp.Vector, w, h float64) (x, y float64) {
	return c.ToScreen(cp.Vector{X: min.X, Y: min.Y + h})
}

// Visible reports whether a screen rectangle overlaps the viewport.
func (c *Camera) Visible(x, y, w, h float64) bool {
	return x+w >= 0 && y+h >= 0 && x <= c.viewport.X && y <= c.viewport.Y
}
