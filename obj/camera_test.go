package obj

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestCameraSnapsWithoutSmoothing(t *testing.T) {
	for _, s := range []float64{0, -1} {
		c := NewCamera(cp.Vector{X: 800, Y: 600}, s)
		c.Update(cp.Vector{X: 1000, Y: 500}, 1.0/60)
		if want := (cp.Vector{X: 600, Y: 200}); !vecNear(c.Pos, want) {
			t.Fatalf("smoothness %v: pos = %v, want %v", s, c.Pos, want)
		}
	}
}

func TestCameraConvergesWithoutOvershoot(t *testing.T) {
	c := NewCamera(cp.Vector{X: 800, Y: 600}, 5)
	focus := cp.Vector{X: 1400, Y: 300}
	target := c.Target(focus)

	prev := c.Pos.Distance(target)
	for i := 0; i < 240; i++ {
		c.Update(focus, 1.0/60)
		d := c.Pos.Distance(target)
		if d > prev {
			t.Fatalf("tick %d: distance grew from %v to %v", i, prev, d)
		}
		if c.Pos.X > target.X {
			t.Fatalf("tick %d: overshot to %v", i, c.Pos)
		}
		prev = d
	}
	if prev > 1e-3 {
		t.Fatalf("did not converge, distance %v", prev)
	}
}

func TestCameraFollowsExponentially(t *testing.T) {
	c := NewCamera(cp.Vector{X: 800, Y: 600}, 4)
	focus := cp.Vector{X: 500, Y: 400}
	c.Update(focus, 0.1)
	// one step covers smoothness*dt = 40% of the way from the origin to (100, 100)
	if want := (cp.Vector{X: 40, Y: 40}); !vecNear(c.Pos, want) {
		t.Fatalf("pos = %v, want %v", c.Pos, want)
	}
}

func TestCameraLongFrameStopsAtTarget(t *testing.T) {
	c := NewCamera(cp.Vector{X: 800, Y: 600}, 5)
	c.Update(cp.Vector{X: 500, Y: 400}, 2)
	if want := (cp.Vector{X: 100, Y: 100}); !vecNear(c.Pos, want) {
		t.Fatalf("pos = %v, want %v", c.Pos, want)
	}
}

func TestCameraToScreenFlipsY(t *testing.T) {
	c := NewCamera(cp.Vector{X: 800, Y: 600}, 0)
	c.SnapTo(cp.Vector{X: 1000, Y: 1000})
	tests := []struct {
		world cp.Vector
		x, y  float64
	}{
		{world: cp.Vector{X: 1000, Y: 1000}, x: 400, y: 300},
		{world: cp.Vector{X: 600, Y: 700}, x: 0, y: 600},
		{world: cp.Vector{X: 1400, Y: 1300}, x: 800, y: 0},
	}
	for _, tt := range tests {
		x, y := c.ToScreen(tt.world)
		if !near(x, tt.x) || !near(y, tt.y) {
			t.Fatalf("ToScreen(%v) = (%v, %v), want (%v, %v)", tt.world, x, y, tt.x, tt.y)
		}
	}
	if x, y := c.RectToScreen(cp.Vector{X: 600, Y: 700}, 10, 20); !near(x, 0) || !near(y, 580) {
		t.Fatalf("RectToScreen = (%v, %v)", x, y)
	}
}

func TestCameraVisible(t *testing.T) {
	c := NewCamera(cp.Vector{X: 800, Y: 600}, 0)
	tests := []struct {
		x, y, w, h float64
		want       bool
	}{
		{x: 10, y: 10, w: 5, h: 5, want: true},
		{x: -20, y: 10, w: 30, h: 5, want: true},
		{x: -20, y: 10, w: 10, h: 5, want: false},
		{x: 801, y: 10, w: 10, h: 5, want: false},
		{x: 10, y: 601, w: 10, h: 5, want: false},
	}
	for _, tt := range tests {
		if got := c.Visible(tt.x, tt.y, tt.w, tt.h); got != tt.want {
			t.Fatalf("Visible(%v, %v, %v, %v) = %v", tt.x, tt.y, tt.w, tt.h, got)
		}
	}
}
