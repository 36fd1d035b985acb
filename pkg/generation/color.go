package generation

import (
	"math"

	"github.com/MaxwellsDaemon-ca/BurghGen/pkg/noise"
	"github.com/MaxwellsDaemon-ca/BurghGen/pkg/terrain"
)

// noiseScale controls patch size; lower values give larger patches.
const noiseScale = 0.05

// colorLand assigns every still-unassigned cell using the noise field,
// biased toward sand near any coastal sand tile detected during seaside
// generation. The coastal list is empty for river and lake maps, so the
// bias is a no-op there.
func colorLand(g *terrain.Grid, seed int64, coastalSand []terrain.Point) {
	field := noise.New(seed)

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.At(x, y) != terrain.TypeNone {
				continue
			}

			dist := nearestCoastalSandDistance(x, y, coastalSand)
			coastalBias := math.Max(0, float64(6-dist)/6.0)

			n := field.Sample(float64(x)*noiseScale, float64(y)*noiseScale)

			// Near the sea the sand threshold rises from -0.5 up to -0.1.
			sandThreshold := -0.5 + coastalBias*0.4

			switch {
			case coastalBias > 0 && n < sandThreshold:
				g.Set(x, y, terrain.TypeSand)
			case n < -0.2:
				g.Set(x, y, terrain.TypeDirt)
			default:
				g.Set(x, y, terrain.TypeGrass)
			}
		}
	}
}

// nearestCoastalSandDistance returns the Euclidean distance (truncated)
// from (x, y) to the nearest coastal sand tile, or a large value when
// none exist.
func nearestCoastalSandDistance(x, y int, coastalSand []terrain.Point) int {
	if len(coastalSand) == 0 {
		return math.MaxInt32
	}
	minSq := math.MaxInt
	for _, p := range coastalSand {
		dx, dy := x-p.X, y-p.Y
		if sq := dx*dx + dy*dy; sq < minSq {
			minSq = sq
		}
	}
	return int(math.Sqrt(float64(minSq)))
}
