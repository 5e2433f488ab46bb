package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ravenslike/common"
	"github.com/milk9111/ravenslike/component"
	"github.com/milk9111/ravenslike/input"
)

// Terrain reports whether the character may stand with its sprite centered
// at a world position.
type Terrain interface {
	CanStand(center cp.Vector) bool
}

type PlayerSettings struct {
	Speed         float64
	SpriteW       float64
	SpriteH       float64
	FrameDuration float64
}

// Player is the single controllable character. Pos is the sprite center in
// world space.
type Player struct {
	Pos      cp.Vector
	Settings PlayerSettings

	Anim *component.Animator
	Dash *Dash
}

func NewPlayer(pos cp.Vector, s PlayerSettings, dash DashSettings) *Player {
	return &Player{
		Pos:      pos,
		Settings: s,
		Anim:     component.NewAnimator(s.FrameDuration),
		Dash:     NewDash(dash),
	}
}

// Update runs the dash or, when not dashing, walking for one tick and
// advances the animation. terrain may be nil.
func (p *Player) Update(dt float64, in input.Snapshot, terrain Terrain) {
	p.Dash.TickCooldown(dt)
	if in.JustPressed(input.Dash) {
		p.Dash.TryStart(p.Pos, p.Anim.DirectionVector())
	}

	if p.Dash.Active() {
		prev := p.Pos
		next, _ := p.Dash.Advance(dt)
		if terrain != nil && !terrain.CanStand(next) {
			p.Dash.Interrupt(prev)
			next = prev
		}
		p.Pos = next
		p.Anim.Update(p.Dash.Direction(), dt)
		return
	}

	move := in.Movement()
	if !common.NearZero(move.X, move.Y) {
		step := move.Normalize().Mult(p.Settings.Speed * dt)
		// axes are tried separately so the character slides along blocked tiles
		p.tryMove(cp.Vector{X: step.X}, terrain)
		p.tryMove(cp.Vector{Y: step.Y}, terrain)
	}
	p.Anim.Update(move, dt)
}

func (p *Player) tryMove(step cp.Vector, terrain Terrain) {
	if step.X == 0 && step.Y == 0 {
		return
	}
	next := p.Pos.Add(step)
	if terrain != nil && !terrain.CanStand(next) {
		return
	}
	p.Pos = next
}

// Draw draws the current animation frame centered on Pos.
func (p *Player) Draw(screen, sheet *ebiten.Image, cam *Camera) {
	w, h := p.Settings.SpriteW, p.Settings.SpriteH
	x, y := cam.RectToScreen(cp.Vector{X: p.Pos.X - w/2, Y: p.Pos.Y - h/2}, w, h)
	p.Anim.Draw(screen, sheet, x, y, w, h)
}
