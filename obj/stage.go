package obj

import (
	"fmt"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ravenslike/component"
	"github.com/milk9111/ravenslike/config"
	"github.com/milk9111/ravenslike/effects"
	"github.com/milk9111/ravenslike/input"
	"github.com/milk9111/ravenslike/iso"
	"github.com/milk9111/ravenslike/levels"
)

// Stage owns the simulated world: the map, the player, the camera and the
// player's health. It holds no images so it can be stepped without a window.
type Stage struct {
	Map    *levels.TileMap
	Proj   iso.Projector
	Bounds Bounds
	Player *Player
	Camera *Camera
	Health *component.Health
	Drain  *effects.Drain

	viewport cp.Vector
	metrics  iso.TileMetrics
	walkable []bool
	damage   int
	ticks    int
}

// NewStage places the player in the middle of m with the camera centered on
// it. drain may be nil.
func NewStage(cfg config.Config, m *levels.TileMap, drain *effects.Drain) *Stage {
	s := &Stage{
		viewport: cp.Vector{X: float64(cfg.Window.Width), Y: float64(cfg.Window.Height)},
		metrics: iso.TileMetrics{
			Width:         cfg.Tile.Width,
			Height:        cfg.Tile.Height,
			VisibleHeight: cfg.Tile.VisibleHeight,
			Scale:         cfg.Tile.Scale,
		},
		walkable: cfg.Tile.Walkable,
		damage:   cfg.Health.DebugDamage,
		Health:   component.NewHealth(cfg.Health.Max),
		Drain:    drain,
		Bounds: Bounds{
			SpriteH:    cfg.Player.SpriteHeight,
			FootWidth:  cfg.Player.FootWidth,
			FootOffset: cfg.Player.FootOffset,
			Bias:       cfg.Player.ClampBias,
		},
	}
	s.Camera = NewCamera(s.viewport, cfg.Camera.Smoothness)
	s.Player = NewPlayer(cp.Vector{}, PlayerSettings{
		Speed:         cfg.Player.Speed,
		SpriteW:       cfg.Player.SpriteWidth,
		SpriteH:       cfg.Player.SpriteHeight,
		FrameDuration: cfg.Player.FrameDuration,
	}, DashSettings{
		Distance: cfg.Dash.Distance,
		Duration: cfg.Dash.Duration,
		Cooldown: cfg.Dash.Cooldown,
	})
	s.SetMap(m)
	return s
}

// SetMap swaps in a new map. A map of the same size keeps the player where it
// is; otherwise the player respawns in the middle and the camera snaps.
func (s *Stage) SetMap(m *levels.TileMap) {
	resized := s.Map == nil || s.Map.Rows != m.Rows || s.Map.Cols != m.Cols
	s.Map = m
	s.Proj = iso.NewProjector(m.Rows, m.Cols, s.viewport, s.metrics)
	s.Bounds.Proj = s.Proj
	if resized {
		s.Player.Pos = s.Bounds.SpawnPoint(float64(m.Cols-1)/2, float64(m.Rows-1)/2)
		s.Camera.SnapTo(s.Player.Pos)
	}
	s.Player.Pos = s.Bounds.Clamp(s.Player.Pos)
}

// CanStand implements Terrain using the map's walkable tiles.
func (s *Stage) CanStand(center cp.Vector) bool {
	return s.Map.Walkable(s.Bounds.FootCell(center), s.walkable)
}

// Update advances the world by dt seconds: dash or walk, clamp to the map,
// follow with the camera, then apply health effects.
func (s *Stage) Update(dt float64, in input.Snapshot) error {
	if dt < 0 {
		dt = 0
	}
	s.ticks++

	s.Player.Update(dt, in, s)
	s.Player.Pos = s.Bounds.Clamp(s.Player.Pos)
	s.Camera.Update(s.Player.Pos, dt)

	if in.JustPressed(input.DebugDamage) {
		s.Health.ApplyDamage(s.damage)
	}
	if _, err := s.Drain.Update(dt, s.Health); err != nil {
		return fmt.Errorf("stage: drain: %w", err)
	}
	return nil
}

// Describe is a human readable dump of the stage state.
func (s *Stage) Describe() string {
	p := s.Player
	cell := s.Bounds.FootCell(p.Pos)
	var b strings.Builder
	fmt.Fprintf(&b, "tick %d\n", s.ticks)
	fmt.Fprintf(&b, "player %.1f, %.1f cell %d,%d tile %d\n", p.Pos.X, p.Pos.Y, cell.Col, cell.Row, s.Map.At(cell))
	fmt.Fprintf(&b, "facing %s frame %d\n", p.Anim.Direction(), p.Anim.Frame())
	fmt.Fprintf(&b, "dash active=%v cooldown %.2fs\n", p.Dash.Active(), p.Dash.Cooldown())
	fmt.Fprintf(&b, "camera %.1f, %.1f\n", s.Camera.Pos.X, s.Camera.Pos.Y)
	fmt.Fprintf(&b, "health %d/%d", s.Health.Current, s.Health.Max)
	if s.Drain != nil && s.Drain.Interval > 0 {
		fmt.Fprintf(&b, " drain in %.2fs", s.Drain.Remaining())
	}
	return b.String()
}
