package component

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ravenslike/iso"
)

// DefaultFrameDuration is how long each walk frame is shown, in seconds.
const DefaultFrameDuration = 0.12

// idleFrame is the standing pose shown whenever the character is not moving.
const idleFrame = 1

// Animator drives the 8-direction walk cycle. It starts facing South on the
// idle frame.
type Animator struct {
	FrameDuration float64

	dir     Direction
	frame   int
	elapsed float64
	moving  bool
}

func NewAnimator(frameDuration float64) *Animator {
	if frameDuration <= 0 {
		frameDuration = DefaultFrameDuration
	}
	return &Animator{
		FrameDuration: frameDuration,
		dir:           South,
		frame:         idleFrame,
	}
}

// Update applies one tick of movement v lasting dt seconds. A near-zero v
// freezes the character on the idle frame without changing its facing.
// Several frames may be advanced at once after a long dt.
func (a *Animator) Update(v cp.Vector, dt float64) {
	if a == nil {
		return
	}
	d := DirectionFromVector(v)
	if d == NoDirection {
		a.moving = false
		a.frame = idleFrame
		a.elapsed = 0
		return
	}
	a.dir = d
	a.moving = true
	if dt <= 0 {
		return
	}
	a.elapsed += dt
	for a.elapsed >= a.FrameDuration {
		a.frame = (a.frame + 1) % FramesPerDirection
		a.elapsed -= a.FrameDuration
	}
}

// Direction returns the current facing.
func (a *Animator) Direction() Direction {
	if a == nil {
		return South
	}
	return a.dir
}

// DirectionVector returns the unit vector of the current facing.
func (a *Animator) DirectionVector() cp.Vector {
	return a.Direction().Vector()
}

func (a *Animator) Frame() int {
	if a == nil {
		return idleFrame
	}
	return a.frame
}

func (a *Animator) Moving() bool {
	return a != nil && a.moving
}

// UV returns the sheet rectangle of the current facing and frame.
func (a *Animator) UV() iso.UVRect {
	return SheetUV(a.Direction(), a.Frame())
}

// Draw draws the current frame of sheet scaled to w x h with its top-left
// corner at screen position (x, y).
func (a *Animator) Draw(screen, sheet *ebiten.Image, x, y, w, h float64) {
	if a == nil || screen == nil || sheet == nil {
		return
	}
	r := a.UV().Pixels(sheet.Bounds())
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return
	}
	sub := sheet.SubImage(r).(*ebiten.Image)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(r.Dx()), h/float64(r.Dy()))
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(sub, op)
}
