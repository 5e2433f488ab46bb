// Package ui draws the screen-space overlay: the health bar and debug text.
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/ravenslike/component"
	"golang.org/x/image/colornames"
)

// Point is a screen-space position in pixels, Y down.
type Point struct {
	X, Y float32
}

// Quad is a convex four-sided polygon.
type Quad [4]Point

func (q Quad) Translate(dx, dy float32) Quad {
	for i := range q {
		q[i].X += dx
		q[i].Y += dy
	}
	return q
}

const (
	innerWidth  = 300
	innerHeight = 25
	borderWidth = 308
	// borderHeight exceeds innerHeight by the 4px frame above and below
	borderHeight = 33
	slant        = 15
	borderSlant  = slant + 5
)

var (
	borderColor     color.Color = colornames.White
	backgroundColor color.Color = color.RGBA{R: 77, G: 77, B: 77, A: 255}
	fillColor       color.Color = colornames.Lime
)

// parallelogram has its top edge from x=0 to x=w and its bottom edge shifted
// right by s.
func parallelogram(w, h, s float32) Quad {
	return Quad{{0, 0}, {s, h}, {w + s, h}, {w, 0}}
}

// HealthBar lays out the bar against the top-right corner of the screen.
type HealthBar struct {
	whiteImg *ebiten.Image
}

func NewHealthBar() *HealthBar {
	return &HealthBar{}
}

// BorderQuad is the white frame for a screen screenW pixels wide.
func BorderQuad(screenW float32) Quad {
	return parallelogram(borderWidth, borderHeight, borderSlant).Translate(screenW-innerWidth-36.5, 16)
}

// BackgroundQuad is the grey track behind the fill.
func BackgroundQuad(screenW float32) Quad {
	return parallelogram(innerWidth, innerHeight, slant).Translate(screenW-innerWidth-30, 20)
}

// FillQuad is the green part of the bar. It shrinks from the left as health
// drops; ok is false when nothing should be drawn.
func FillQuad(screenW float32, current, max int) (q Quad, ok bool) {
	if max <= 0 || current <= 0 || current > max {
		return Quad{}, false
	}
	ratio := float32(current) / float32(max)
	missing := innerWidth * (1 - ratio)
	q = Quad{
		{missing, 0},
		{missing + slant, innerHeight},
		{innerWidth + slant, innerHeight},
		{innerWidth, 0},
	}
	return q.Translate(screenW-innerWidth-30, 20), true
}

// Draw draws border, background and fill for h.
func (b *HealthBar) Draw(screen *ebiten.Image, h *component.Health) {
	w := float32(screen.Bounds().Dx())
	b.fill(screen, BorderQuad(w), borderColor)
	b.fill(screen, BackgroundQuad(w), backgroundColor)
	if h == nil {
		return
	}
	if q, ok := FillQuad(w, h.Current, h.Max); ok {
		b.fill(screen, q, fillColor)
	}
}

func (b *HealthBar) fill(dst *ebiten.Image, q Quad, c color.Color) {
	var path vector.Path
	path.MoveTo(q[0].X, q[0].Y)
	for _, p := range q[1:] {
		path.LineTo(p.X, p.Y)
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	if b.whiteImg == nil {
		b.whiteImg = ebiten.NewImage(1, 1)
		b.whiteImg.Fill(color.White)
	}
	r, g, bl, a := c.RGBA()
	for i := range vs {
		vs[i].SrcX = 0
		vs[i].SrcY = 0
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(bl) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	dst.DrawTriangles(vs, is, b.whiteImg, &ebiten.DrawTrianglesOptions{})
}
