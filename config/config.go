// Package config holds the immutable game settings, loaded from YAML.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed game.yaml
var defaultYAML []byte

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Window WindowSpec `yaml:"window"`
	Tile   TileSpec   `yaml:"tile"`
	Player PlayerSpec `yaml:"player"`
	Dash   DashSpec   `yaml:"dash"`
	Camera CameraSpec `yaml:"camera"`
	Health HealthSpec `yaml:"health"`
	Assets AssetsSpec `yaml:"assets"`
	Keys   KeysSpec   `yaml:"keys"`
}

type WindowSpec struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type TileSpec struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	VisibleHeight float64 `yaml:"visible_height"`
	Scale         float64 `yaml:"scale"`
	Count         int     `yaml:"count"`
	Walkable      []bool  `yaml:"walkable"`
}

type PlayerSpec struct {
	Speed         float64 `yaml:"speed"`
	SpriteWidth   float64 `yaml:"sprite_width"`
	SpriteHeight  float64 `yaml:"sprite_height"`
	FrameDuration float64 `yaml:"frame_duration"`
	FootWidth     float64 `yaml:"foot_width"`
	FootOffset    float64 `yaml:"foot_offset"`
	ClampBias     float64 `yaml:"clamp_bias"`
}

type DashSpec struct {
	Distance float64 `yaml:"distance"`
	Duration float64 `yaml:"duration"`
	Cooldown float64 `yaml:"cooldown"`
}

type CameraSpec struct {
	// Smoothness is the follow rate per second. Zero or less snaps.
	Smoothness float64 `yaml:"smoothness"`
}

type HealthSpec struct {
	Max           int     `yaml:"max"`
	DebugDamage   int     `yaml:"debug_damage"`
	DrainInterval float64 `yaml:"drain_interval"`
	DrainScript   string  `yaml:"drain_script"`
}

// AssetsSpec names image files on disk. Empty paths use generated placeholder art.
type AssetsSpec struct {
	Tiles string `yaml:"tiles"`
	Sheet string `yaml:"sheet"`
}

// KeysSpec maps each action to ebiten key names.
type KeysSpec struct {
	Up     []string `yaml:"up"`
	Down   []string `yaml:"down"`
	Left   []string `yaml:"left"`
	Right  []string `yaml:"right"`
	Dash   []string `yaml:"dash"`
	Damage []string `yaml:"damage"`
	Pause  []string `yaml:"pause"`
	Debug  []string `yaml:"debug"`
	Copy   []string `yaml:"copy"`
}

// Default returns the embedded configuration.
func Default() (Config, error) {
	return Parse(defaultYAML)
}

// Load reads path over the embedded defaults, so a file only needs the keys
// it changes. An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a complete configuration document.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalid, name, v))
		}
	}

	positive("window.width", float64(c.Window.Width))
	positive("window.height", float64(c.Window.Height))
	positive("tile.width", c.Tile.Width)
	positive("tile.height", c.Tile.Height)
	positive("tile.visible_height", c.Tile.VisibleHeight)
	positive("tile.scale", c.Tile.Scale)
	positive("tile.count", float64(c.Tile.Count))
	nonNegative("player.speed", c.Player.Speed)
	positive("player.sprite_width", c.Player.SpriteWidth)
	positive("player.sprite_height", c.Player.SpriteHeight)
	positive("player.frame_duration", c.Player.FrameDuration)
	nonNegative("player.foot_width", c.Player.FootWidth)
	nonNegative("player.foot_offset", c.Player.FootOffset)
	nonNegative("dash.distance", c.Dash.Distance)
	positive("dash.duration", c.Dash.Duration)
	nonNegative("dash.cooldown", c.Dash.Cooldown)
	positive("health.max", float64(c.Health.Max))
	nonNegative("health.debug_damage", float64(c.Health.DebugDamage))
	nonNegative("health.drain_interval", c.Health.DrainInterval)

	if c.Tile.VisibleHeight > c.Tile.Height {
		errs = append(errs, fmt.Errorf("%w: tile.visible_height %v exceeds tile.height %v", ErrInvalid, c.Tile.VisibleHeight, c.Tile.Height))
	}
	if len(c.Tile.Walkable) > 0 && len(c.Tile.Walkable) != c.Tile.Count {
		errs = append(errs, fmt.Errorf("%w: tile.walkable has %d entries for %d tiles", ErrInvalid, len(c.Tile.Walkable), c.Tile.Count))
	}
	return errors.Join(errs...)
}
