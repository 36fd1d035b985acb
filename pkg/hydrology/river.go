package hydrology

import (
	"math/rand"

	"github.com/MaxwellsDaemon-ca/BurghGen/pkg/terrain"
	"github.com/MaxwellsDaemon-ca/BurghGen/pkg/validation"
)

// GenerateRiver carves a meandering river between two distant map edges,
// with an optional rejoining loop and an optional diverging branch.
func GenerateRiver(g *terrain.Grid, seed int64, report *validation.Report) {
	rng := rand.New(rand.NewSource(seed))
	width, height := g.Width, g.Height

	thickness := riverThickness(width, height)

	// Endpoints must sit on different edges and far apart. Degenerate
	// shapes (single-row or single-column maps) have no such pair, so the
	// search is bounded and falls back to the full diagonal.
	start := randomEdgePoint(width, height, rng)
	end := randomEdgePoint(width, height, rng)
	for tries := 0; sameEdge(start, end, width, height) || !farEnough(start, end, width, height); tries++ {
		if tries > 100 {
			start = terrain.Point{X: 0, Y: 0}
			end = terrain.Point{X: width - 1, Y: height - 1}
			report.AddWarning(validation.Result{
				Level:   validation.LevelHydrology,
				Message: "no distant edge pair found; river spans the map diagonal",
			})
			break
		}
		end = randomEdgePoint(width, height, rng)
	}

	mainPath := carvePath(g, start, end, rng, thickness)

	// Optional rejoining loop between two interior path points.
	if rng.Float64() < 0.5 && len(mainPath) > 20 {
		for attempt := 0; attempt < 10; attempt++ {
			i1 := rng.Intn(len(mainPath) / 2)
			i2 := len(mainPath)/2 + rng.Intn(len(mainPath)/2)
			if abs(i1-i2) < len(mainPath)/4 {
				continue
			}
			carvePath(g, mainPath[i1], mainPath[i2], rng, branchThickness(thickness))
			break
		}
	}

	// Optional diverging branch that exits toward a different edge. The
	// exit search is bounded for the same degenerate shapes; the branch is
	// simply skipped when no other edge exists.
	if rng.Float64() < 0.5 && len(mainPath) > 20 {
		source := mainPath[len(mainPath)/2+rng.Intn(len(mainPath)/2)]
		exit := randomEdgePoint(width, height, rng)
		for tries := 0; sameEdge(source, exit, width, height); tries++ {
			if tries > 100 {
				return
			}
			exit = randomEdgePoint(width, height, rng)
		}
		carvePath(g, source, exit, rng, branchThickness(thickness))
	}
}

// branchThickness is one less than the main channel, floored at 1.
func branchThickness(thickness int) int {
	if thickness-1 < 1 {
		return 1
	}
	return thickness - 1
}
