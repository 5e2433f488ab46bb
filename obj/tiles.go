package obj

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ravenslike/iso"
	"github.com/milk9111/ravenslike/levels"
)

// TileLayer draws a tile map from a horizontal atlas in painter's order.
type TileLayer struct {
	atlas   iso.TileAtlas
	metrics iso.TileMetrics
	tiles   []*ebiten.Image

	order      []iso.Cell
	rows, cols int
}

// NewTileLayer slices img into count equally wide tiles.
func NewTileLayer(img *ebiten.Image, metrics iso.TileMetrics, count int) *TileLayer {
	l := &TileLayer{
		atlas:   iso.TileAtlas{Count: count, TileWidth: metrics.Width},
		metrics: metrics,
	}
	if img == nil {
		return l
	}
	l.tiles = make([]*ebiten.Image, count)
	for id := range l.tiles {
		uv, _ := l.atlas.UVRect(id)
		r := uv.Pixels(img.Bounds())
		if r.Empty() {
			log.Printf("tiles: atlas %v has no room for tile %d", img.Bounds(), id)
			continue
		}
		l.tiles[id] = img.SubImage(r).(*ebiten.Image)
	}
	return l
}

// Order returns the cached painter's order for a rows x cols map.
func (l *TileLayer) Order(rows, cols int) []iso.Cell {
	if l.order == nil || l.rows != rows || l.cols != cols {
		l.order = iso.PaintOrder(rows, cols)
		l.rows, l.cols = rows, cols
	}
	return l.order
}

// Draw draws every visible, non-empty tile and returns how many were drawn.
func (l *TileLayer) Draw(screen *ebiten.Image, m *levels.TileMap, p iso.Projector, cam *Camera) int {
	if l == nil || m == nil || cam == nil {
		return 0
	}
	w, h := l.metrics.DrawSize()
	drawn := 0
	for _, c := range l.Order(m.Rows, m.Cols) {
		id := m.At(c)
		if !l.atlas.Valid(id) || id >= len(l.tiles) || l.tiles[id] == nil {
			continue
		}
		apex := p.ToWorld(float64(c.Col), float64(c.Row))
		x, y := cam.RectToScreen(cp.Vector{X: apex.X - p.HalfW, Y: apex.Y}, w, h)
		if !cam.Visible(x, y, w, h) {
			continue
		}
		img := l.tiles[id]
		b := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
		op.GeoM.Translate(x, y)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
		drawn++
	}
	return drawn
}
