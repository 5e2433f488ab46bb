package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.txt
var LevelsFS embed.FS

// DefaultLevel is loaded when no level is named.
const DefaultLevel = "start.txt"

// Source records where a map was read from. Path is empty for embedded maps.
type Source struct {
	Name string
	Path string
}

// Read resolves name against the disk first and then the embedded levels.
// Embedded names may omit the .txt extension.
func Read(name string) ([]byte, Source, error) {
	if name == "" {
		name = DefaultLevel
	}
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, Source{}, fmt.Errorf("levels: read %s: %w", name, err)
		}
		abs, err := filepath.Abs(name)
		if err != nil {
			abs = name
		}
		return data, Source{Name: filepath.Base(name), Path: abs}, nil
	}

	return ReadEmbedded(name)
}

// ReadEmbedded reads one of the maps built into the binary, ignoring the
// disk. The .txt extension and a levels/ prefix are optional.
func ReadEmbedded(name string) ([]byte, Source, error) {
	if name == "" {
		name = DefaultLevel
	}
	clean := cleanLevelName(name)
	data, err := fs.ReadFile(LevelsFS, clean)
	if err != nil {
		return nil, Source{}, fmt.Errorf("levels: read %s: %w", clean, err)
	}
	return data, Source{Name: clean}, nil
}

// Load reads and parses a map. tileCount bounds the valid tile ids.
func Load(name string, tileCount int) (*TileMap, Source, error) {
	data, src, err := Read(name)
	if err != nil {
		return nil, Source{}, err
	}
	m, err := ParseBytes(data, tileCount)
	if err != nil {
		return nil, Source{}, fmt.Errorf("levels: load %s: %w", src.Name, err)
	}
	return m, src, nil
}

func cleanLevelName(name string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "levels/")
	s = filepath.Base(s)
	if filepath.Ext(s) == "" {
		s += ".txt"
	}
	return s
}
