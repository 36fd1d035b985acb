// Package noise provides a seeded 2D gradient noise field used for land
// coloring. It is a permutation-table approach in the classic Perlin
// style: smooth, repeatable, and a pure function of (seed, x, y).
package noise

import (
	"math"
	"math/rand"
)

// Field is a seeded noise field. Safe for concurrent reads once built.
type Field struct {
	perm [512]int
}

// New builds a field from a seed. The 256-entry permutation table is
// shuffled with a seeded Fisher-Yates pass and duplicated to 512 entries
// so index arithmetic never wraps.
func New(seed int64) *Field {
	rng := rand.New(rand.NewSource(seed))

	var p [256]int
	for i := range p {
		p[i] = i
	}
	for i := 255; i > 0; i-- {
		j := rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}

	f := &Field{}
	for i := range f.perm {
		f.perm[i] = p[i&255]
	}
	return f
}

// Sample returns the noise value at (x, y), roughly in [-1, 1].
func (f *Field) Sample(x, y float64) float64 {
	xi := int(math.Floor(x)) & 255
	yi := int(math.Floor(y)) & 255

	x -= math.Floor(x)
	y -= math.Floor(y)

	u := fade(x)
	v := fade(y)

	a := f.perm[xi] + yi
	b := f.perm[xi+1] + yi

	return lerp(v,
		lerp(u, grad(f.perm[a], x, y), grad(f.perm[b], x-1, y)),
		lerp(u, grad(f.perm[a+1], x, y-1), grad(f.perm[b+1], x-1, y-1)),
	)
}

// fade is the 6t^5 - 15t^4 + 10t^3 smoothstep curve.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// grad hashes to one of 8 pseudo-gradient directions and returns the dot
// product with the corner offset.
func grad(hash int, x, y float64) float64 {
	h := hash & 7
	u, v := x, y
	if h >= 4 {
		u, v = y, x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}
