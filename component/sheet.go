package component

import (
	"image"

	"github.com/milk9111/ravenslike/iso"
)

const (
	SheetWidth  = 125
	SheetHeight = 51

	// FramesPerDirection is the number of walk frames stacked under each facing.
	FramesPerDirection = 3
)

// span is an inclusive 1-based pixel range as measured in the sheet art.
type span struct{ from, to int }

// columns of the sheet, one per Direction.
var sheetColumns = [DirectionCount]span{
	North:     {1, 13},
	NorthEast: {17, 29},
	East:      {34, 44},
	SouthEast: {48, 61},
	South:     {65, 77},
	SouthWest: {81, 93},
	West:      {98, 108},
	NorthWest: {113, 125},
}

// rows of the sheet, one per frame.
var sheetRows = [FramesPerDirection]span{
	{1, 16},
	{18, 34},
	{36, 51},
}

// sheetUV is built once from the pixel table.
var sheetUV = buildSheetUV()

func buildSheetUV() [DirectionCount][FramesPerDirection]iso.UVRect {
	var out [DirectionCount][FramesPerDirection]iso.UVRect
	for d, col := range sheetColumns {
		for f, row := range sheetRows {
			out[d][f] = iso.UVRect{
				U0: float64(col.from-1) / SheetWidth,
				V0: float64(row.from-1) / SheetHeight,
				U1: float64(col.to) / SheetWidth,
				V1: float64(row.to) / SheetHeight,
			}
		}
	}
	return out
}

// SheetUV returns the texture rectangle for a facing and frame. Invalid
// arguments fall back to South, frame 1.
func SheetUV(d Direction, frame int) iso.UVRect {
	if !d.Valid() {
		d = South
	}
	if frame < 0 || frame >= FramesPerDirection {
		frame = 1
	}
	return sheetUV[d][frame]
}

// SheetCell is the pixel rectangle of a facing and frame on a sheet of the
// standard SheetWidth x SheetHeight size.
func SheetCell(d Direction, frame int) image.Rectangle {
	return SheetUV(d, frame).Pixels(image.Rect(0, 0, SheetWidth, SheetHeight))
}
