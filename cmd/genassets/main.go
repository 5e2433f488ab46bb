package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/milk9111/ravenslike/assets"
	"github.com/milk9111/ravenslike/config"
	"github.com/milk9111/ravenslike/console"
)

// genassets writes the built-in placeholder art to PNG files so it can be
// painted over and pointed at from the config.
func main() {
	configPath := flag.String("config", "", "YAML file with tile dimensions (defaults when empty)")
	out := flag.String("out", "assets", "output directory")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		console.Fatalf("%v", err)
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		console.Fatalf("%v", err)
	}

	t := cfg.Tile
	files := []struct {
		name string
		img  image.Image
	}{
		{"tiles.png", assets.TileAtlas(t.Count, int(t.Width), int(t.Height), int(t.VisibleHeight))},
		{"character.png", assets.CharacterSheet()},
	}
	for _, f := range files {
		path := filepath.Join(*out, f.name)
		if err := writePNG(path, f.img); err != nil {
			console.Fatalf("%v", err)
		}
		console.Infof("wrote %s", path)
	}
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
