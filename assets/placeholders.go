package assets

import (
	"image"
	"image/color"
	"math"

	"github.com/milk9111/ravenslike/component"
	"golang.org/x/image/colornames"
)

// TilePalette gives the top face colour of each placeholder tile id.
var TilePalette = []color.RGBA{
	colornames.Forestgreen,
	colornames.Sienna,
	colornames.Slategray,
	colornames.Steelblue,
}

// TileAtlas draws count isometric blocks side by side. Each block is
// tileW x tileH with a diamond top face visibleH tall and the remaining
// height used for the left and right side faces.
func TileAtlas(count, tileW, tileH, visibleH int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, tileW*count, tileH))
	for id := 0; id < count; id++ {
		top := TilePalette[id%len(TilePalette)]
		drawBlock(img, id*tileW, tileW, tileH, visibleH, top)
	}
	return img
}

func drawBlock(img *image.RGBA, x0, w, h, vh int, top color.RGBA) {
	hw := float64(w) / 2
	hh := float64(vh) / 2
	depth := float64(h - vh)
	left := shade(top, 0.7)
	right := shade(top, 0.5)
	edge := shade(top, 0.35)

	for y := 0; y < h; y++ {
		fy := float64(y) + 0.5
		for x := 0; x < w; x++ {
			fx := float64(x) + 0.5
			dx := math.Abs(fx-hw) / hw
			dy := math.Abs(fy-hh) / hh
			switch {
			case dx+dy <= 1:
				c := top
				if dx+dy > 0.97 {
					c = edge
				}
				img.SetRGBA(x0+x, y, c)
			default:
				// lower edge of the diamond at this column
				bottom := hh + hh*(1-dx)
				if fy > hh && fy >= bottom && fy <= bottom+depth {
					if fx < hw {
						img.SetRGBA(x0+x, y, left)
					} else {
						img.SetRGBA(x0+x, y, right)
					}
				}
			}
		}
	}
}

func shade(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

// CharacterSheet draws a SheetWidth x SheetHeight sheet with a small figure
// in every facing/frame cell. A bright mark shows the facing and the feet
// alternate between frames.
func CharacterSheet() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, component.SheetWidth, component.SheetHeight))
	body := colornames.Darkslateblue
	head := colornames.Bisque
	mark := colornames.Gold
	feet := colornames.Black

	for d := component.North; d <= component.NorthWest; d++ {
		v := d.Vector()
		for f := 0; f < component.FramesPerDirection; f++ {
			r := component.SheetCell(d, f)
			cx := float64(r.Min.X+r.Max.X) / 2
			w := float64(r.Dx())
			h := float64(r.Dy())

			fillEllipse(img, r, cx, float64(r.Min.Y)+h*0.25, w*0.3, h*0.22, head)
			fillEllipse(img, r, cx, float64(r.Min.Y)+h*0.6, w*0.4, h*0.25, body)
			// sheet Y grows down, facing vectors point up
			fillEllipse(img, r, cx+v.X*w*0.25, float64(r.Min.Y)+h*0.25-v.Y*h*0.12, 1.2, 1.2, mark)

			stride := float64(f-1) * w * 0.15
			fillEllipse(img, r, cx-w*0.18+stride, float64(r.Max.Y)-1.5, 1.5, 1.2, feet)
			fillEllipse(img, r, cx+w*0.18-stride, float64(r.Max.Y)-1.5, 1.5, 1.2, feet)
		}
	}
	return img
}

func fillEllipse(img *image.RGBA, clip image.Rectangle, cx, cy, rx, ry float64, c color.RGBA) {
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				img.SetRGBA(x, y, c)
			}
		}
	}
}
