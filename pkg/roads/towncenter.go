package roads

import (
	"math"
	"math/rand"
	"sort"

	"github.com/MaxwellsDaemon-ca/BurghGen/pkg/terrain"
)

// Town-center placement heuristics. Each map type biases the town toward
// terrain that makes sense for it: near but not on a river, back from a
// lake, a short walk inland from a seaside coast. All fall back to the
// exact map center when no candidate qualifies; the boolean result is
// false on that fallback so callers can record it.

// TownCenterRiver places the town within [3, 10] cells of the river,
// biased toward the side of the map opposite the river's dominant entry
// edge.
func TownCenterRiver(g *terrain.Grid, rng *rand.Rand) (terrain.Point, bool) {
	width, height := g.Width, g.Height

	var riverTiles []terrain.Point
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if g.At(x, y) == terrain.TypeWater {
				riverTiles = append(riverTiles, terrain.Point{X: x, Y: y})
			}
		}
	}
	if len(riverTiles) == 0 {
		return mapCenter(g), false
	}

	const minDist, maxDist = 3, 10

	touchesTop, touchesBottom, touchesLeft, touchesRight := false, false, false, false
	for _, p := range riverTiles {
		touchesTop = touchesTop || p.Y == 0
		touchesBottom = touchesBottom || p.Y == height-1
		touchesLeft = touchesLeft || p.X == 0
		touchesRight = touchesRight || p.X == width-1
	}
	verticalRiver := touchesTop && touchesBottom

	var candidates []terrain.Point
	for y := 4; y < height-4; y++ {
		for x := 4; x < width-4; x++ {
			if !isBuildable(g.At(x, y)) {
				continue
			}
			p := terrain.Point{X: x, Y: y}
			d := nearestDist(p, riverTiles)
			if d >= minDist && d <= maxDist {
				candidates = append(candidates, p)
			}
		}
	}
	if len(candidates) == 0 {
		return mapCenter(g), false
	}

	// Favor the bank opposite the river's entry, or the center axis when
	// the river crosses both opposing edges.
	if verticalRiver {
		switch {
		case touchesLeft && !touchesRight:
			sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].X < candidates[j].X })
		case touchesRight && !touchesLeft:
			sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].X > candidates[j].X })
		default:
			sort.SliceStable(candidates, func(i, j int) bool {
				return abs(candidates[i].X-width/2) < abs(candidates[j].X-width/2)
			})
		}
	} else {
		switch {
		case touchesTop && !touchesBottom:
			sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].Y < candidates[j].Y })
		case touchesBottom && !touchesTop:
			sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].Y > candidates[j].Y })
		default:
			sort.SliceStable(candidates, func(i, j int) bool {
				return abs(candidates[i].Y-height/2) < abs(candidates[j].Y-height/2)
			})
		}
	}

	limit := len(candidates)
	if limit > 20 {
		limit = 20
	}
	return candidates[rng.Intn(limit)], true
}

// TownCenterLake places the town at least 8 cells away from the central
// lake region.
func TownCenterLake(g *terrain.Grid, rng *rand.Rand) (terrain.Point, bool) {
	lake := lakeCenterRegion(g)

	const buffer = 8
	width, height := g.Width, g.Height

	var candidates []terrain.Point
	for y := buffer; y < height-buffer; y++ {
		for x := buffer; x < width-buffer; x++ {
			if !isBuildable(g.At(x, y)) {
				continue
			}
			p := terrain.Point{X: x, Y: y}
			if len(lake) == 0 || nearestDist(p, lake) >= buffer {
				candidates = append(candidates, p)
			}
		}
	}
	if len(candidates) == 0 {
		return mapCenter(g), false
	}
	return candidates[rng.Intn(len(candidates))], true
}

// TownCenterSeaside places the town within [6, 20] cells of the nearest
// coastline tile (water directly adjacent to sand).
func TownCenterSeaside(g *terrain.Grid, rng *rand.Rand) (terrain.Point, bool) {
	width, height := g.Width, g.Height

	var coastline []terrain.Point
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if g.At(x, y) != terrain.TypeWater {
				continue
			}
			if touchesSand4(g, x, y) {
				coastline = append(coastline, terrain.Point{X: x, Y: y})
			}
		}
	}
	if len(coastline) == 0 {
		return mapCenter(g), false
	}

	const minDist, maxDist = 6, 20

	var candidates []terrain.Point
	for y := minDist; y < height-minDist; y++ {
		for x := minDist; x < width-minDist; x++ {
			if !isBuildable(g.At(x, y)) {
				continue
			}
			p := terrain.Point{X: x, Y: y}
			d := nearestDist(p, coastline)
			if d >= minDist && d <= maxDist {
				candidates = append(candidates, p)
			}
		}
	}
	if len(candidates) == 0 {
		return mapCenter(g), false
	}
	return candidates[rng.Intn(len(candidates))], true
}

// lakeCenterRegion collects water tiles inside the central 50%x50% box.
func lakeCenterRegion(g *terrain.Grid) []terrain.Point {
	startX, endX := g.Width/4, g.Width-g.Width/4
	startY, endY := g.Height/4, g.Height-g.Height/4

	var lake []terrain.Point
	for y := startY; y < endY; y++ {
		for x := startX; x < endX; x++ {
			if g.At(x, y) == terrain.TypeWater {
				lake = append(lake, terrain.Point{X: x, Y: y})
			}
		}
	}
	return lake
}

// isBuildable reports whether the town center may sit on this terrain.
func isBuildable(t terrain.Type) bool {
	return t == terrain.TypeGrass || t == terrain.TypeDirt
}

// touchesSand4 checks the 4-neighborhood only; diagonal contact does not
// count as coastline.
func touchesSand4(g *terrain.Grid, x, y int) bool {
	return (x > 0 && g.At(x-1, y) == terrain.TypeSand) ||
		(x < g.Width-1 && g.At(x+1, y) == terrain.TypeSand) ||
		(y > 0 && g.At(x, y-1) == terrain.TypeSand) ||
		(y < g.Height-1 && g.At(x, y+1) == terrain.TypeSand)
}

func nearestDist(p terrain.Point, tiles []terrain.Point) float64 {
	best := math.MaxFloat64
	for _, t := range tiles {
		if d := p.Dist(t); d < best {
			best = d
		}
	}
	return best
}

func mapCenter(g *terrain.Grid) terrain.Point {
	return terrain.Point{X: g.Width / 2, Y: g.Height / 2}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
