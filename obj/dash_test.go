package obj

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ravenslike/component"
)

func defaultDash() DashSettings {
	return DashSettings{Distance: 180, Duration: 0.2, Cooldown: 3}
}

func runDash(d *Dash, dt float64) (cp.Vector, int) {
	var pos cp.Vector
	steps := 0
	for d.Active() {
		d.TickCooldown(dt)
		pos, _ = d.Advance(dt)
		steps++
	}
	return pos, steps
}

func TestDashCoversExactDistance(t *testing.T) {
	for d := component.North; d <= component.NorthWest; d++ {
		t.Run(d.String(), func(t *testing.T) {
			dash := NewDash(defaultDash())
			start := cp.Vector{X: 12.5, Y: -40}
			if !dash.TryStart(start, d.Vector()) {
				t.Fatal("dash did not start")
			}
			end, steps := runDash(dash, 1.0/60)
			if steps < 2 {
				t.Fatalf("dash finished in %d steps", steps)
			}
			if got := end.Distance(start); !near(got, 180) {
				t.Fatalf("dash covered %v", got)
			}
			if !vecNear(end, start.Add(d.Vector().Mult(180))) {
				t.Fatalf("dash ended at %v", end)
			}
			if dash.Cooldown() != 3 {
				t.Fatalf("cooldown = %v", dash.Cooldown())
			}
		})
	}
}

func TestDashInterpolates(t *testing.T) {
	dash := NewDash(defaultDash())
	dash.TryStart(cp.Vector{}, cp.Vector{X: 1})
	pos, done := dash.Advance(0.05)
	if done || !vecNear(pos, cp.Vector{X: 45}) {
		t.Fatalf("quarter way = %v done=%v", pos, done)
	}
	pos, done = dash.Advance(0.5)
	if !done || !vecNear(pos, cp.Vector{X: 180}) || dash.Active() {
		t.Fatalf("overrun = %v done=%v", pos, done)
	}
}

func TestDashZeroFacingGoesSouth(t *testing.T) {
	dash := NewDash(defaultDash())
	dash.TryStart(cp.Vector{}, cp.Vector{})
	end, _ := runDash(dash, 0.05)
	if !vecNear(end, cp.Vector{Y: -180}) {
		t.Fatalf("end = %v", end)
	}
}

func TestDashRetriggerGuard(t *testing.T) {
	dash := NewDash(defaultDash())
	if !dash.TryStart(cp.Vector{}, cp.Vector{X: 1}) {
		t.Fatal("first dash refused")
	}
	if dash.TryStart(cp.Vector{X: 99}, cp.Vector{Y: 1}) {
		t.Fatal("dash restarted while active")
	}
	if dash.Direction() != (cp.Vector{X: 1}) {
		t.Fatal("refused trigger changed the dash")
	}
	runDash(dash, 0.1)

	const dt = 0.1
	elapsed := 0.0
	for dash.Cooldown() > 0 {
		if dash.TryStart(cp.Vector{}, cp.Vector{X: 1}) {
			t.Fatalf("dash started during cooldown after %.1fs", elapsed)
		}
		dash.TickCooldown(dt)
		elapsed += dt
	}
	if elapsed < 3-1e-9 {
		t.Fatalf("cooldown lasted %v", elapsed)
	}
	if !dash.TryStart(cp.Vector{}, cp.Vector{X: 1}) {
		t.Fatal("dash refused after cooldown")
	}
}

func TestDashCooldownFloorsAtZero(t *testing.T) {
	dash := NewDash(defaultDash())
	dash.TryStart(cp.Vector{}, cp.Vector{X: 1})
	runDash(dash, 1)
	dash.TickCooldown(10)
	if dash.Cooldown() != 0 {
		t.Fatalf("cooldown = %v", dash.Cooldown())
	}
}

func TestDashInterrupt(t *testing.T) {
	dash := NewDash(defaultDash())
	dash.TryStart(cp.Vector{}, cp.Vector{X: 1})
	dash.Advance(0.05)
	dash.Interrupt(cp.Vector{X: 30})
	if dash.Active() || dash.End() != (cp.Vector{X: 30}) || dash.Cooldown() != 3 {
		t.Fatalf("after interrupt active=%v end=%v cooldown=%v", dash.Active(), dash.End(), dash.Cooldown())
	}
}
