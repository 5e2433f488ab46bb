package levels

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/milk9111/ravenslike/iso"
)

func TestParse(t *testing.T) {
	m, err := Parse(strings.NewReader("2 3\n0 1 2\n3 -1 0\n"), 4)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m.Rows != 2 || m.Cols != 3 {
		t.Fatalf("dims = %dx%d", m.Rows, m.Cols)
	}
	tests := []struct {
		c    iso.Cell
		want int
	}{
		{c: iso.Cell{Col: 0, Row: 0}, want: 0},
		{c: iso.Cell{Col: 2, Row: 0}, want: 2},
		{c: iso.Cell{Col: 0, Row: 1}, want: 3},
		{c: iso.Cell{Col: 1, Row: 1}, want: Empty},
		{c: iso.Cell{Col: 3, Row: 0}, want: Empty},
		{c: iso.Cell{Col: 0, Row: -1}, want: Empty},
	}
	for _, tt := range tests {
		if got := m.At(tt.c); got != tt.want {
			t.Fatalf("At(%v) = %d, want %d", tt.c, got, tt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{name: "zero rows", input: "0 3\n", want: ErrInvalidDimensions},
		{name: "negative cols", input: "2 -1\n", want: ErrInvalidDimensions},
		{name: "short", input: "2 2\n0 0 0\n", want: ErrMissingTiles},
		{name: "empty", input: "", want: ErrMissingTiles},
		{name: "trailing", input: "1 1\n0 0\n", want: ErrTrailingData},
		{name: "tile out of range", input: "1 2\n0 4\n", want: ErrTileIndex},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input), 4)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse(strings.NewReader("1 1\ngrass\n"), 4); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestWalkable(t *testing.T) {
	m, err := NewTileMap(1, 4, []int{0, 2, -1, 7}, 0)
	if err != nil {
		t.Fatal(err)
	}
	walkable := []bool{true, true, false, false}
	tests := []struct {
		c    iso.Cell
		want bool
	}{
		{c: iso.Cell{Col: 0}, want: true},
		{c: iso.Cell{Col: 1}, want: false},
		{c: iso.Cell{Col: 2}, want: false},
		{c: iso.Cell{Col: 3}, want: true},
		{c: iso.Cell{Col: 9}, want: true},
	}
	for _, tt := range tests {
		if got := m.Walkable(tt.c, walkable); got != tt.want {
			t.Fatalf("Walkable(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestEmbeddedLevelsParse(t *testing.T) {
	for _, name := range []string{"start", "start.txt", "levels/courtyard.txt", ""} {
		data, src, err := ReadEmbedded(name)
		if err != nil {
			t.Fatalf("ReadEmbedded(%q): %v", name, err)
		}
		if src.Path != "" {
			t.Fatalf("ReadEmbedded(%q) has disk path %q", name, src.Path)
		}
		m, err := ParseBytes(data, 4)
		if err != nil {
			t.Fatalf("parse %s: %v", src.Name, err)
		}
		if m.Rows <= 0 || m.Cols <= 0 {
			t.Fatalf("%s dims %dx%d", src.Name, m.Rows, m.Cols)
		}
	}
	if _, _, err := ReadEmbedded("missing"); err == nil {
		t.Fatal("expected an error for an unknown embedded map")
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	// the package directory holds the same map files, so move away from it
	t.Chdir(t.TempDir())

	m, src, err := Load("", 4)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if src.Path != "" || src.Name != DefaultLevel {
		t.Fatalf("source = %+v, want embedded %s", src, DefaultLevel)
	}
	if m.Rows != 5 || m.Cols != 10 {
		t.Fatalf("default level is %dx%d", m.Rows, m.Cols)
	}
}

func TestLoadPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(DefaultLevel, []byte("1 2\n0 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	m, src, err := Load(DefaultLevel, 4)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if src.Path == "" {
		t.Fatalf("source = %+v, want a disk path", src)
	}
	if m.Rows != 1 || m.Cols != 2 {
		t.Fatalf("loaded %dx%d, want the 1x2 file on disk", m.Rows, m.Cols)
	}
}
