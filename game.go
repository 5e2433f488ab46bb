package main

import (
	"image"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"
	"github.com/milk9111/ravenslike/assets"
	"github.com/milk9111/ravenslike/config"
	"github.com/milk9111/ravenslike/console"
	"github.com/milk9111/ravenslike/effects"
	"github.com/milk9111/ravenslike/input"
	"github.com/milk9111/ravenslike/iso"
	"github.com/milk9111/ravenslike/levels"
	"github.com/milk9111/ravenslike/obj"
	"github.com/milk9111/ravenslike/ui"
	"golang.org/x/image/colornames"
)

type Game struct {
	cfg config.Config

	stage *obj.Stage
	tiles *obj.TileLayer
	sheet *ebiten.Image
	keys  *input.Keyboard

	bar  *ui.HealthBar
	hud  *ui.HUD
	clip *debugClipboard

	pauseUI *ebitenui.UI
	paused  bool
	quit    bool

	watcher *levels.Watcher

	clock func() time.Duration
	last  time.Duration
}

func NewGame(cfg config.Config, levelName string, debug bool) (*Game, error) {
	m, src, err := levels.Load(levelName, cfg.Tile.Count)
	if err != nil {
		return nil, err
	}
	drain, err := effects.NewDrain(cfg.Health.DrainInterval, cfg.Health.DrainScript)
	if err != nil {
		return nil, err
	}
	bindings, err := input.BindingsFromConfig(cfg.Keys)
	if err != nil {
		return nil, err
	}

	tileImg, err := assets.LoadOr(cfg.Assets.Tiles, func() image.Image {
		return assets.TileAtlas(cfg.Tile.Count, int(cfg.Tile.Width), int(cfg.Tile.Height), int(cfg.Tile.VisibleHeight))
	})
	if err != nil {
		return nil, err
	}
	sheet, err := assets.LoadOr(cfg.Assets.Sheet, func() image.Image {
		return assets.CharacterSheet()
	})
	if err != nil {
		return nil, err
	}

	start := time.Now()
	g := &Game{
		cfg:   cfg,
		stage: obj.NewStage(cfg, m, drain),
		tiles: obj.NewTileLayer(tileImg, iso.TileMetrics{
			Width:         cfg.Tile.Width,
			Height:        cfg.Tile.Height,
			VisibleHeight: cfg.Tile.VisibleHeight,
			Scale:         cfg.Tile.Scale,
		}, cfg.Tile.Count),
		sheet: sheet,
		keys:  input.NewKeyboard(bindings),
		bar:   ui.NewHealthBar(),
		hud:   ui.NewHUD(debug),
		clip:  newDebugClipboard(),
		clock: func() time.Duration { return time.Since(start) },
	}
	g.pauseUI = NewPauseUI(g)
	g.last = g.clock()

	if src.Path != "" {
		w, err := levels.NewWatcher(src.Path)
		if err != nil {
			console.Warnf("watch %s: %v", src.Path, err)
		} else {
			g.watcher = w
		}
	}
	console.Infof("loaded %s (%dx%d)", src.Name, m.Rows, m.Cols)
	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	now := g.clock()
	dt := (now - g.last).Seconds()
	g.last = now

	g.reloadLevels()
	in := g.keys.Poll()

	if in.JustPressed(input.Pause) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if in.JustPressed(input.ToggleDebug) {
		g.hud.Toggle()
	}
	if in.JustPressed(input.CopyDebug) {
		g.clip.Copy(g.stage.Describe())
	}

	if err := g.stage.Update(dt, in); err != nil {
		console.Warnf("%v; health drain disabled", err)
		g.stage.Drain = nil
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)

	g.tiles.Draw(screen, g.stage.Map, g.stage.Proj, g.stage.Camera)
	g.stage.Player.Draw(screen, g.sheet, g.stage.Camera)

	g.bar.Draw(screen, g.stage.Health)
	g.hud.Draw(screen, ui.Lines(ebiten.ActualFPS(), g.stage.Describe()))
	if !g.stage.Health.IsAlive() {
		ui.Banner(screen, gotext.Get("You have faded away"))
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Close stops the level watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

// reloadLevels applies settled edits to the map file. A map that is removed
// or fails to load leaves the current one in place.
func (g *Game) reloadLevels() {
	for g.watcher != nil {
		select {
		case c, ok := <-g.watcher.Changes:
			if !ok {
				g.watcher = nil
				return
			}
			if c.Removed {
				console.Warnf("%s was removed; keeping current map", c.Path)
				continue
			}
			m, _, err := levels.Load(c.Path, g.cfg.Tile.Count)
			if err != nil {
				console.Warnf("keeping current map: %v", err)
				continue
			}
			g.stage.SetMap(m)
			console.Infof("reloaded %s (%dx%d)", c.Path, m.Rows, m.Cols)
		case err := <-g.watcher.Errors:
			console.Warnf("level watcher: %v", err)
		default:
			return
		}
	}
}
