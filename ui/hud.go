package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/leonelquinteros/gotext"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// Face is the built-in bitmap font shared by the HUD and the pause menu.
var Face text.Face = text.NewGoXFace(basicfont.Face7x13)

const lineHeight = 15

// HUD draws the debug overlay in the top-left corner.
type HUD struct {
	Visible bool

	shadow color.Color
	ink    color.Color
}

func NewHUD(visible bool) *HUD {
	return &HUD{Visible: visible, shadow: colornames.Black, ink: colornames.White}
}

func (h *HUD) Toggle() {
	h.Visible = !h.Visible
}

// Lines builds the overlay text from the frame rate and a stage dump.
func Lines(fps float64, state string) []string {
	lines := []string{fmt.Sprintf(gotext.Get("FPS: %.1f"), fps)}
	if state != "" {
		lines = append(lines, strings.Split(state, "\n")...)
	}
	lines = append(lines, gotext.Get("F3 debug  F9 copy  Esc pause"))
	return lines
}

func (h *HUD) Draw(screen *ebiten.Image, lines []string) {
	if h == nil || !h.Visible {
		return
	}
	for i, line := range lines {
		y := float64(8 + i*lineHeight)
		drawText(screen, line, 9, y+1, h.shadow)
		drawText(screen, line, 8, y, h.ink)
	}
}

// Banner draws a centered line of text, e.g. when the player has died.
func Banner(screen *ebiten.Image, msg string) {
	b := screen.Bounds()
	w, _ := text.Measure(msg, Face, lineHeight)
	drawText(screen, msg, (float64(b.Dx())-w)/2, float64(b.Dy())/3, colornames.Tomato)
}

func drawText(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, Face, op)
}
