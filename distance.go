package manhattan

import "github.com/kpfaulkner/manhattan-go/core"

// ManhattanDistance is the sum of the absolute coordinate differences
// between pointA and pointB. It is pure and safe for concurrent use.
func ManhattanDistance(pointA core.Point, pointB core.Point) int {
	return pointA.ManhattanDistance(pointB)
}
