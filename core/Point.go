package core

import (
	"math"

	"github.com/kpfaulkner/manhattan-go/util"
)

// MaxCoordinate bounds |x| and |y|. With both points inside it neither the
// per-axis differences nor their sum can overflow int.
const MaxCoordinate = math.MaxInt / 4

// Point is an immutable location on an integer grid.
// Coordinates are only visible inside this package, anything that needs
// them (distance, equality, parsing) lives here too.
type Point struct {
	x int
	y int
}

// NewPoint expects |x| and |y| to be at most MaxCoordinate. Outside that
// range distances may wrap; ParsePoint enforces the bound for text input.
func NewPoint(x int, y int) Point {
	return Point{
		x: x,
		y: y,
	}
}

func Origin() Point {
	return Point{}
}

func (p Point) Equals(other Point) bool {
	return p.x == other.x && p.y == other.y
}

// ManhattanDistance returns |p.x-other.x| + |p.y-other.y|.
func (p Point) ManhattanDistance(other Point) int {
	return util.Abs(p.x-other.x) + util.Abs(p.y-other.y)
}

// Translate returns a new point offset by dx, dy. p is left as is.
func (p Point) Translate(dx int, dy int) Point {
	return NewPoint(p.x+dx, p.y+dy)
}
