package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ravenslike/common"
	"github.com/milk9111/ravenslike/component"
)

type DashSettings struct {
	Distance float64
	Duration float64
	Cooldown float64
}

// Dash is a fixed-distance burst along the facing direction, followed by a
// cooldown during which it cannot be triggered again.
type Dash struct {
	settings DashSettings

	active   bool
	elapsed  float64
	cooldown float64
	start    cp.Vector
	end      cp.Vector
	dir      cp.Vector
}

func NewDash(s DashSettings) *Dash {
	return &Dash{settings: s}
}

func (d *Dash) Active() bool { return d.active }

// Cooldown is the time in seconds before the next dash may start.
func (d *Dash) Cooldown() float64 { return d.cooldown }

// Direction is the unit direction of the current or last dash.
func (d *Dash) Direction() cp.Vector { return d.dir }

// End is the destination of the current or last dash.
func (d *Dash) End() cp.Vector { return d.end }

func (d *Dash) Ready() bool {
	return !d.active && d.cooldown <= 0
}

// TryStart begins a dash from pos along facing. A zero facing dashes South.
// It reports false, leaving the state untouched, while a dash is running or
// cooling down.
func (d *Dash) TryStart(pos, facing cp.Vector) bool {
	if !d.Ready() {
		return false
	}
	dir := facing
	if common.NearZero(dir.X, dir.Y) {
		dir = component.South.Vector()
	}
	d.dir = dir.Normalize()
	d.start = pos
	d.end = pos.Add(d.dir.Mult(d.settings.Distance))
	d.elapsed = 0
	d.active = true
	return true
}

// TickCooldown counts the cooldown down by dt, stopping at zero.
func (d *Dash) TickCooldown(dt float64) {
	if d.cooldown <= 0 {
		return
	}
	d.cooldown -= dt
	if d.cooldown < 0 {
		d.cooldown = 0
	}
}

// Advance moves the dash forward by dt and returns the interpolated
// position. On the final step the position is exactly the end point, the
// dash deactivates and the cooldown begins.
func (d *Dash) Advance(dt float64) (pos cp.Vector, done bool) {
	if !d.active {
		return d.end, false
	}
	d.elapsed += dt
	a := 1.0
	if d.settings.Duration > 0 {
		a = common.Clamp(d.elapsed/d.settings.Duration, 0, 1)
	}
	if a >= 1 {
		d.finish()
		return d.end, true
	}
	return d.start.Lerp(d.end, a), false
}

// Interrupt stops a running dash at pos and starts the cooldown.
func (d *Dash) Interrupt(pos cp.Vector) {
	if !d.active {
		return
	}
	d.end = pos
	d.finish()
}

func (d *Dash) finish() {
	d.active = false
	d.cooldown = d.settings.Cooldown
}
