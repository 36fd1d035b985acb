package hydrology

import (
	"math/rand"

	"github.com/MaxwellsDaemon-ca/BurghGen/pkg/terrain"
	"github.com/MaxwellsDaemon-ca/BurghGen/pkg/validation"
)

// GenerateLake flood-fills a randomized lake from the map center, then
// adds offshoot ponds, small grass islands, and possibly an outflow river
// to a map edge.
func GenerateLake(g *terrain.Grid, seed int64, report *validation.Report) {
	rng := rand.New(rand.NewSource(seed))
	width, height := g.Width, g.Height

	cx, cy := width/2, height/2

	// Target 5-15% of map area.
	targetSize := (width * height) / (10 + rng.Intn(10))
	added := 0

	visited := map[terrain.Point]struct{}{{X: cx, Y: cy}: {}}
	queue := []terrain.Point{{X: cx, Y: cy}}

	// Randomized flood fill outward from the center. Each neighbor joins
	// the frontier with a freshly drawn probability in [0.65, 0.90).
	for len(queue) > 0 && added < targetSize {
		p := queue[0]
		queue = queue[1:]

		if !g.InBounds(p.X, p.Y) || g.At(p.X, p.Y) == terrain.TypeWater {
			continue
		}

		g.Set(p.X, p.Y, terrain.TypeWater)
		added++

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				n := terrain.Point{X: p.X + dx, Y: p.Y + dy}
				if _, seen := visited[n]; !seen && rng.Float64() < 0.65+rng.Float64()*0.25 {
					queue = append(queue, n)
					visited[n] = struct{}{}
				}
			}
		}

		// Occasional long-range jump to roughen the outline.
		if rng.Float64() < 0.1 {
			j := terrain.Point{X: p.X + rng.Intn(7) - 3, Y: p.Y + rng.Intn(7) - 3}
			if _, seen := visited[j]; !seen {
				queue = append(queue, j)
				visited[j] = struct{}{}
			}
		}
	}

	// 0-2 offshoot ponds near the lake. The spread floors at 1 so maps
	// narrower than 4 tiles still get a valid Intn argument.
	offshoots := rng.Intn(3)
	spreadX, spreadY := width/4, height/4
	if spreadX < 1 {
		spreadX = 1
	}
	if spreadY < 1 {
		spreadY = 1
	}
	for i := 0; i < offshoots; i++ {
		px := cx + rng.Intn(spreadX) - width/8
		py := cy + rng.Intn(spreadY) - height/8
		r := 1 + rng.Intn(2)
		g.CarveCircle(px, py, r, terrain.TypeWater)
	}

	// Up to 2 small grass islands, placed only where fully surrounded by
	// water.
	for i := 0; i < 2; i++ {
		for tries := 0; tries < 20; tries++ {
			ix := rng.Intn(width)
			iy := rng.Intn(height)
			if surroundedByWater(g, ix, iy) {
				g.Set(ix, iy, terrain.TypeGrass)
				break
			}
		}
	}

	// Optional outflow river from the lake boundary to a map edge.
	if rng.Float64() < 0.5 {
		edge := lakeEdge(g)
		if len(edge) == 0 {
			report.AddWarning(validation.Result{
				Level:   validation.LevelHydrology,
				Message: "no lake edge found; outflow river skipped",
			})
			return
		}
		start := edge[rng.Intn(len(edge))]
		end := randomEdgePoint(width, height, rng)
		if farEnough(start, end, width, height) {
			carvePath(g, start, end, rng, 1)
		}
	}
}

// lakeEdge returns interior water tiles with at least one non-water
// 4-neighbor.
func lakeEdge(g *terrain.Grid) []terrain.Point {
	var edge []terrain.Point
	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			if g.At(x, y) != terrain.TypeWater {
				continue
			}
			if g.At(x, y-1) != terrain.TypeWater ||
				g.At(x, y+1) != terrain.TypeWater ||
				g.At(x-1, y) != terrain.TypeWater ||
				g.At(x+1, y) != terrain.TypeWater {
				edge = append(edge, terrain.Point{X: x, Y: y})
			}
		}
	}
	return edge
}

// surroundedByWater reports whether (x, y) and all 8 neighbors are water.
func surroundedByWater(g *terrain.Grid, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := x+dx, y+dy
			if !g.InBounds(nx, ny) || g.At(nx, ny) != terrain.TypeWater {
				return false
			}
		}
	}
	return true
}
