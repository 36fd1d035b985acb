package terrain

import "math"

// Point is an integer grid coordinate.
type Point struct {
	X int
	Y int
}

// Dist returns the Euclidean distance to another point.
func (p Point) Dist(q Point) float64 {
	dx := float64(p.X - q.X)
	dy := float64(p.Y - q.Y)
	return math.Hypot(dx, dy)
}
