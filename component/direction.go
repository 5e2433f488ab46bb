package component

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ravenslike/common"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Direction

// Direction is one of the eight facings of the character sprite sheet.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest

	// NoDirection marks the center of the lookup table: no input, keep facing.
	NoDirection Direction = -1
)

// DirectionCount is the number of real facings.
const DirectionCount = 8

// directionTable is indexed by (sign(y)+1)*3 + (sign(x)+1) with Y pointing up.
var directionTable = [9]Direction{
	SouthWest, South, SouthEast,
	West, NoDirection, East,
	NorthWest, North, NorthEast,
}

// DirectionFromVector quantizes v to one of the eight facings, or
// NoDirection when both components are within common.Epsilon of zero.
func DirectionFromVector(v cp.Vector) Direction {
	if common.NearZero(v.X, v.Y) {
		return NoDirection
	}
	n := v.Normalize()
	ix := common.Sign(n.X, common.Epsilon)
	iy := common.Sign(n.Y, common.Epsilon)
	return directionTable[(iy+1)*3+(ix+1)]
}

// Valid reports whether d is one of the eight facings.
func (d Direction) Valid() bool {
	return d >= North && d <= NorthWest
}

// Vector returns the unit vector of d. NoDirection yields the zero vector.
func (d Direction) Vector() cp.Vector {
	const diag = math.Sqrt2 / 2
	switch d {
	case North:
		return cp.Vector{X: 0, Y: 1}
	case NorthEast:
		return cp.Vector{X: diag, Y: diag}
	case East:
		return cp.Vector{X: 1, Y: 0}
	case SouthEast:
		return cp.Vector{X: diag, Y: -diag}
	case South:
		return cp.Vector{X: 0, Y: -1}
	case SouthWest:
		return cp.Vector{X: -diag, Y: -diag}
	case West:
		return cp.Vector{X: -1, Y: 0}
	case NorthWest:
		return cp.Vector{X: -diag, Y: diag}
	}
	return cp.Vector{}
}
