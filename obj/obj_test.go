package obj

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ravenslike/config"
	"github.com/milk9111/ravenslike/input"
	"github.com/milk9111/ravenslike/levels"
)

const eps = 1e-6

func near(a, b float64) bool {
	return math.Abs(a-b) <= eps
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.Default()
	if err != nil {
		t.Fatalf("config.Default: %v", err)
	}
	return cfg
}

func flatMap(t *testing.T, rows, cols, id int) *levels.TileMap {
	t.Helper()
	tiles := make([]int, rows*cols)
	for i := range tiles {
		tiles[i] = id
	}
	m, err := levels.NewTileMap(rows, cols, tiles, 4)
	if err != nil {
		t.Fatalf("NewTileMap: %v", err)
	}
	return m
}

// hold returns snapshots for n ticks with the given actions held throughout.
func hold(n int, actions ...input.Action) []input.Snapshot {
	out := make([]input.Snapshot, 0, n)
	s := input.NewSnapshot()
	for i := 0; i < n; i++ {
		s = s.Next(actions...)
		out = append(out, s)
	}
	return out
}

func vecNear(a, b cp.Vector) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}
