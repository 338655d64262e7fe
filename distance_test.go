package manhattan

import (
	"testing"

	"github.com/kpfaulkner/manhattan-go/core"
	"github.com/stretchr/testify/assert"
)

func TestStartingPointToItself(t *testing.T) {
	startingPoint := core.NewPoint(1, 1)
	assert.Equal(t, 0, ManhattanDistance(startingPoint, startingPoint))
}

func TestStartingPointToPointB(t *testing.T) {
	startingPoint := core.NewPoint(1, 1)
	pointB := core.NewPoint(1, 2)
	assert.Equal(t, 1, ManhattanDistance(startingPoint, pointB))
	assert.Equal(t, 1, ManhattanDistance(pointB, startingPoint))
}

func TestOriginToThreeFour(t *testing.T) {
	assert.Equal(t, 7, ManhattanDistance(core.Origin(), core.NewPoint(3, 4)))
}
