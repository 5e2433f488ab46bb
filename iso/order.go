package iso

// PaintOrder lists every cell of a rows x cols map in painter's order.
// Anti-diagonals col+row are visited from the largest down to zero, and
// within a diagonal col runs from high to low. With Y pointing up the
// larger diagonals sit higher on screen, so tiles are emitted far to near.
func PaintOrder(rows, cols int) []Cell {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	out := make([]Cell, 0, rows*cols)
	maxS := (rows - 1) + (cols - 1)
	for s := maxS; s >= 0; s-- {
		hi := min(cols-1, s)
		lo := max(0, s-(rows-1))
		for col := hi; col >= lo; col-- {
			out = append(out, Cell{Col: col, Row: s - col})
		}
	}
	return out
}
