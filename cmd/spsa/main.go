package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/ravenslike/assets"
	"github.com/milk9111/ravenslike/component"
)

const (
	screenSize = 512
	scale      = 4
)

// previewGame walks the character through all eight facings so the sheet
// layout can be checked frame by frame.
type previewGame struct {
	sheet  *ebiten.Image
	anim   *component.Animator
	dir    component.Direction
	paused bool
}

func (g *previewGame) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		g.dir = (g.dir + 1) % component.DirectionCount
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		g.dir = (g.dir + component.DirectionCount - 1) % component.DirectionCount
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.paused = !g.paused
	}

	v := g.dir.Vector()
	if g.paused {
		// zero velocity keeps the facing and holds frame 1
		v.X, v.Y = 0, 0
	}
	g.anim.Update(v, 1/float64(ebiten.TPS()))
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x20, 0x20, 0x28, 0xff})

	cell := component.SheetCell(g.anim.Direction(), g.anim.Frame())
	w := float64(cell.Dx() * scale)
	h := float64(cell.Dy() * scale)
	g.anim.Draw(screen, g.sheet, (screenSize-w)/2, (screenSize-h)/2, w, h)

	// the whole sheet, unscaled, for reference
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(8, screenSize-float64(g.sheet.Bounds().Dy())-8)
	screen.DrawImage(g.sheet, op)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("%v frame %d  [left/right] facing  [space] idle",
		g.anim.Direction(), g.anim.Frame()))
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenSize, screenSize
}

func main() {
	sheetPath := flag.String("sheet", "", "character sheet PNG (placeholder art when empty)")
	frameDuration := flag.Float64("frame", 0.12, "seconds per animation frame")
	flag.Parse()

	sheet, err := assets.LoadOr(*sheetPath, func() image.Image { return assets.CharacterSheet() })
	if err != nil {
		log.Fatal(err)
	}

	g := &previewGame{
		sheet: sheet,
		anim:  component.NewAnimator(*frameDuration),
		dir:   component.South,
	}
	ebiten.SetWindowSize(screenSize, screenSize)
	ebiten.SetWindowTitle("Sprite Sheet Preview")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
