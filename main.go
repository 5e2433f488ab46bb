package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"
	"github.com/milk9111/ravenslike/config"
	"github.com/milk9111/ravenslike/console"
)

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in settings")
	levelName := flag.String("level", "", "map file on disk, or a map name in levels/ (.txt optional)")
	debug := flag.Bool("debug", false, "show the debug overlay at startup")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	lang := flag.String("lang", "", "language for UI text, read from ./locales")
	flag.Parse()

	if *lang != "" {
		gotext.Configure("locales", *lang, "default")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		console.Fatalf("%v", err)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game, err := NewGame(cfg, *levelName, *debug)
	if err != nil {
		console.Fatalf("%v", err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		game.Close()
		console.Fatalf("%v", err)
	}
}
