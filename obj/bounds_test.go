package obj

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ravenslike/iso"
)

func testBounds(rows, cols int) Bounds {
	tile := iso.TileMetrics{Width: 693, Height: 560, VisibleHeight: 400, Scale: 0.5}
	return Bounds{
		Proj:       iso.NewProjector(rows, cols, cp.Vector{X: 800, Y: 600}, tile),
		SpriteH:    64,
		FootWidth:  13,
		FootOffset: 3,
		Bias:       0.9,
	}
}

func TestFootRoundTrip(t *testing.T) {
	b := testBounds(5, 10)
	c := cp.Vector{X: 120, Y: -33}
	foot := b.Foot(c)
	if !near(foot.Y, c.Y-32+3) || foot.X != c.X {
		t.Fatalf("foot = %v", foot)
	}
	if back := b.CenterForFoot(foot); !vecNear(back, c) {
		t.Fatalf("center = %v", back)
	}
}

func TestClampLeavesInteriorAlone(t *testing.T) {
	b := testBounds(5, 10)
	for _, g := range [][2]float64{{4.5, 2}, {0, 0}, {9, 4}, {2.2, 3.7}} {
		p := b.SpawnPoint(g[0], g[1])
		if got := b.Clamp(p); !vecNear(got, p) {
			t.Fatalf("Clamp moved interior point %v to %v", p, got)
		}
	}
}

func TestClampContainment(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
	}{
		{name: "wide", rows: 5, cols: 10},
		{name: "tall", rows: 10, cols: 5},
		{name: "single", rows: 1, cols: 1},
	}
	far := []cp.Vector{
		{X: -5000, Y: 0}, {X: 5000, Y: 0}, {X: 0, Y: -5000}, {X: 0, Y: 5000},
		{X: 4000, Y: 4000}, {X: -3000, Y: 2500}, {X: 123, Y: -4567},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testBounds(tt.rows, tt.cols)
			for _, p := range far {
				clamped := b.Clamp(p)
				gx, gy := b.FootGrid(b.Foot(clamped))
				if gx < -0.5-eps || gx > float64(tt.cols)-0.5+eps {
					t.Fatalf("%v: foot gx %v outside [-0.5, %v]", p, gx, float64(tt.cols)-0.5)
				}
				if gy < -0.5-eps || gy > float64(tt.rows)-0.5+eps {
					t.Fatalf("%v: foot gy %v outside [-0.5, %v]", p, gy, float64(tt.rows)-0.5)
				}

				// both ends of the new foot segment stay on the map
				half := cp.Vector{X: b.FootWidth / 2}
				foot := b.Foot(clamped)
				for _, end := range []cp.Vector{foot.Sub(half), foot.Add(half)} {
					ex, ey := b.FootGrid(end)
					if ex < -0.5-eps || ex > float64(tt.cols)-0.5+eps || ey < -0.5-eps || ey > float64(tt.rows)-0.5+eps {
						t.Fatalf("%v: foot end (%v, %v) outside the map", p, ex, ey)
					}
				}

				if again := b.Clamp(clamped); !vecNear(again, clamped) {
					t.Fatalf("%v: clamp not idempotent, %v then %v", p, clamped, again)
				}
			}
		})
	}
}

func TestClampCornerPullsFootInside(t *testing.T) {
	b := testBounds(5, 10)
	// far right is the col=max, row=0 corner of the diamond
	clamped := b.Clamp(cp.Vector{X: 5000, Y: 0})
	gx, gy := b.FootGrid(b.Foot(clamped))
	reach := b.FootWidth / 2 / (2 * b.Proj.HalfW)
	if !near(gx, 9.5-reach) || !near(gy, -0.5+reach) {
		t.Fatalf("foot center grid = (%v, %v), want (%v, %v)", gx, gy, 9.5-reach, -0.5+reach)
	}
}

func TestFootCell(t *testing.T) {
	b := testBounds(5, 10)
	tests := []struct {
		col, row float64
		want     iso.Cell
	}{
		{col: 3, row: 1, want: iso.Cell{Col: 3, Row: 1}},
		{col: 3.4, row: 1.6, want: iso.Cell{Col: 3, Row: 2}},
		{col: -2, row: 0, want: iso.Cell{Col: -2, Row: 0}},
	}
	for _, tt := range tests {
		if got := b.FootCell(b.SpawnPoint(tt.col, tt.row)); got != tt.want {
			t.Fatalf("FootCell(%v, %v) = %v, want %v", tt.col, tt.row, got, tt.want)
		}
	}
}
