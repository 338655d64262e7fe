package testcommon

import (
	"math/rand"
	"testing"

	"github.com/kpfaulkner/manhattan-go/core"
)

// CoordinateLimit keeps generated coordinates far enough from the int limits
// that summing two differences cannot overflow.
const CoordinateLimit = 1 << 20

// GenerateRandomPoints returns count points drawn from a fixed seed so
// failures are reproducible.
func GenerateRandomPoints(t testing.TB, seed int64, count int) []core.Point {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	points := make([]core.Point, count)
	for i := range points {
		points[i] = core.NewPoint(randomCoordinate(r), randomCoordinate(r))
	}
	return points
}

func randomCoordinate(r *rand.Rand) int {
	return r.Intn(2*CoordinateLimit+1) - CoordinateLimit
}
