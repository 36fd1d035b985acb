// Package hydrology carves the primary water body of a map before general
// land coloring. Three interchangeable generators exist: river, lake, and
// seaside. Each derives its own random stream from the run seed, so the
// same seed always reproduces the same water skeleton.
package hydrology

import (
	"math/rand"

	"github.com/MaxwellsDaemon-ca/BurghGen/pkg/terrain"
)

// riverThickness scales the carving stamp radius with map size (1-3).
func riverThickness(width, height int) int {
	t := min(width, height) / 32
	if t < 1 {
		return 1
	}
	if t > 3 {
		return 3
	}
	return t
}

// randomEdgePoint returns a random coordinate on one of the four map edges.
func randomEdgePoint(width, height int, rng *rand.Rand) terrain.Point {
	switch rng.Intn(4) {
	case 0: // top
		return terrain.Point{X: rng.Intn(width), Y: 0}
	case 1: // right
		return terrain.Point{X: width - 1, Y: rng.Intn(height)}
	case 2: // bottom
		return terrain.Point{X: rng.Intn(width), Y: height - 1}
	default: // left
		return terrain.Point{X: 0, Y: rng.Intn(height)}
	}
}

// sameEdge reports whether both points lie on the same map edge.
func sameEdge(a, b terrain.Point, width, height int) bool {
	return (a.X == 0 && b.X == 0) ||
		(a.X == width-1 && b.X == width-1) ||
		(a.Y == 0 && b.Y == 0) ||
		(a.Y == height-1 && b.Y == height-1)
}

// farEnough requires a Manhattan separation of at least half the map
// perimeter-dimension sum, so carved paths cross a meaningful portion of
// the map.
func farEnough(a, b terrain.Point, width, height int) bool {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	return dx+dy >= (width+height)/2
}

// carvePath walks from start to end with a 60% bias toward closing the
// current axis offset and a 20% chance of +-1 lateral jitter per step,
// stamping a water circle of the given radius at every position. The
// walked positions are returned in order.
func carvePath(g *terrain.Grid, start, end terrain.Point, rng *rand.Rand, thickness int) []terrain.Point {
	var path []terrain.Point
	x, y := start.X, start.Y

	for x != end.X || y != end.Y {
		g.CarveCircle(x, y, thickness, terrain.TypeWater)
		path = append(path, terrain.Point{X: x, Y: y})

		if rng.Float64() < 0.6 {
			x += sign(end.X - x)
		} else {
			y += sign(end.Y - y)
		}

		if rng.Float64() < 0.2 {
			x += rng.Intn(3) - 1
			y += rng.Intn(3) - 1
		}

		x = clamp(x, 0, g.Width-1)
		y = clamp(y, 0, g.Height-1)
	}

	return path
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
