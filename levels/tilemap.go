package levels

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/milk9111/ravenslike/iso"
)

// Empty marks a cell with no tile. Any negative id is treated as empty.
const Empty = -1

var (
	ErrInvalidDimensions = errors.New("levels: map dimensions must be positive")
	ErrMissingTiles      = errors.New("levels: fewer tiles than rows*cols")
	ErrTrailingData      = errors.New("levels: data after the last tile")
	ErrTileIndex         = errors.New("levels: tile index out of range")
)

// TileMap is an immutable rows x cols grid of tile ids.
type TileMap struct {
	Rows  int
	Cols  int
	tiles []int
}

// NewTileMap builds a map from row-major tile ids. tileCount bounds the valid
// ids; pass 0 to skip the range check.
func NewTileMap(rows, cols int, tiles []int, tileCount int) (*TileMap, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols)
	}
	if len(tiles) != rows*cols {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrMissingTiles, len(tiles), rows*cols)
	}
	for i, id := range tiles {
		if tileCount > 0 && id >= tileCount {
			return nil, fmt.Errorf("%w: tile %d at row %d col %d (atlas has %d)", ErrTileIndex, id, i/cols, i%cols, tileCount)
		}
	}
	return &TileMap{Rows: rows, Cols: cols, tiles: append([]int(nil), tiles...)}, nil
}

// Parse reads the text map format: a "rows cols" header followed by rows*cols
// whitespace separated integers in row-major order.
func Parse(r io.Reader, tileCount int) (*TileMap, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func(what string) (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, fmt.Errorf("levels: read %s: %w", what, err)
			}
			return 0, fmt.Errorf("%w: missing %s", ErrMissingTiles, what)
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, fmt.Errorf("levels: parse %s: %w", what, err)
		}
		return v, nil
	}

	rows, err := next("rows")
	if err != nil {
		return nil, err
	}
	cols, err := next("cols")
	if err != nil {
		return nil, err
	}
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols)
	}

	tiles := make([]int, 0, rows*cols)
	for i := 0; i < rows*cols; i++ {
		id, err := next(fmt.Sprintf("tile %d", i))
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, id)
	}
	if sc.Scan() {
		return nil, fmt.Errorf("%w: %q", ErrTrailingData, sc.Text())
	}
	return NewTileMap(rows, cols, tiles, tileCount)
}

// ParseBytes is Parse over an in-memory file.
func ParseBytes(data []byte, tileCount int) (*TileMap, error) {
	return Parse(bytes.NewReader(data), tileCount)
}

// At returns the tile id at c, or Empty outside the map.
func (m *TileMap) At(c iso.Cell) int {
	if m == nil || c.Row < 0 || c.Col < 0 || c.Row >= m.Rows || c.Col >= m.Cols {
		return Empty
	}
	return m.tiles[c.Row*m.Cols+c.Col]
}

// Walkable reports whether a character may stand on c. Cells outside the map
// are left to the boundary clamp and report true; empty cells are holes.
func (m *TileMap) Walkable(c iso.Cell, walkable []bool) bool {
	if m == nil || c.Row < 0 || c.Col < 0 || c.Row >= m.Rows || c.Col >= m.Cols {
		return true
	}
	id := m.At(c)
	if id < 0 {
		return false
	}
	if id >= len(walkable) {
		return true
	}
	return walkable[id]
}
