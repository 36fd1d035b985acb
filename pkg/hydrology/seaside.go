package hydrology

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/MaxwellsDaemon-ca/BurghGen/pkg/terrain"
	"github.com/MaxwellsDaemon-ca/BurghGen/pkg/validation"
)

// Edge identifies a map edge an ocean fill runs along.
type Edge int

const (
	EdgeNone Edge = iota
	EdgeTop
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// String returns a human-readable edge name.
func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	default:
		return "none"
	}
}

// harborTarget accumulates the strongest wave amplitude seen while
// filling coastlines. It decides where the one optional harbor pocket is
// carved.
type harborTarget struct {
	wave float64
	axis int
	edge Edge
}

// GenerateSeaside carves a sinusoidal coastline along one or two adjacent
// map edges, buffers it with sand, then decorates it with capes, inlets,
// optional rivers, and at most one harbor pocket. It returns the coastal
// sand tiles detected after buffering; the land colorer uses them to bias
// shorelines toward sand.
func GenerateSeaside(g *terrain.Grid, seed int64, report *validation.Report) []terrain.Point {
	rng := rand.New(rand.NewSource(seed))
	width, height := g.Width, g.Height

	ht := &harborTarget{}
	water := newMask(width, height)

	direction := rng.Intn(8)
	depthX := int(float64(width) * (0.20 + rng.Float64()*0.20))
	depthY := int(float64(height) * (0.20 + rng.Float64()*0.20))

	dim := width
	if direction%2 != 0 {
		dim = height
	}
	freq := 2 * math.Pi / float64(dim)
	offset := rng.Float64() * 2 * math.Pi

	// 4 single edges plus 4 adjacent-edge combinations. Combined fills
	// shift the second edge's wave phase so the two coastlines differ.
	switch direction {
	case 0:
		fillTop(water, depthY, freq, offset, ht)
	case 1:
		fillRight(water, depthX, freq, offset, ht)
	case 2:
		fillBottom(water, depthY, freq, offset, ht)
	case 3:
		fillLeft(water, depthX, freq, offset, ht)
	case 4:
		fillTop(water, depthY, freq, offset, ht)
		fillLeft(water, depthX, freq, offset+1.0, ht)
	case 5:
		fillTop(water, depthY, freq, offset, ht)
		fillRight(water, depthX, freq, offset+1.0, ht)
	case 6:
		fillBottom(water, depthY, freq, offset, ht)
		fillRight(water, depthX, freq, offset+1.0, ht)
	case 7:
		fillBottom(water, depthY, freq, offset, ht)
		fillLeft(water, depthX, freq, offset+1.0, ht)
	}

	// Minor feature budget scales with the map width tier.
	var minorFeatureCount int
	switch width {
	case 64:
		minorFeatureCount = rng.Intn(4)
	case 128:
		minorFeatureCount = rng.Intn(9)
	default:
		minorFeatureCount = rng.Intn(21)
	}
	numCapes := rng.Intn(minorFeatureCount + 1)
	numInlets := minorFeatureCount - numCapes

	water.applyTo(g)
	addSandBuffer(g)
	coastalWater := detectCoastalWater(g)
	coastalSand := detectCoastalSand(g)

	addCapes(g, rng, coastalWater, numCapes)
	addInlets(g, rng, coastalSand, numInlets)

	if rng.Float64() < 0.4 {
		generateSeasideRiver(g, rng, report)
		if rng.Float64() < 0.25 {
			generateSeasideRiver(g, rng, report)
		}
	}

	if ht.edge != EdgeNone {
		carveHarbor(g, rng, coastalSand, ht, report)
	}

	return coastalSand
}

// mask is a scratch water-flag grid built up edge by edge before it is
// applied to the terrain in one pass.
type mask struct {
	width  int
	height int
	cells  []bool
}

func newMask(width, height int) *mask {
	return &mask{width: width, height: height, cells: make([]bool, width*height)}
}

func (m *mask) set(x, y int) {
	m.cells[y*m.width+x] = true
}

func (m *mask) applyTo(g *terrain.Grid) {
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.cells[y*m.width+x] {
				g.Set(x, y, terrain.TypeWater)
			}
		}
	}
}

// fillTop fills a sine-wave coastline along the top edge. Penetration
// depth at each column is depth*(0.7+0.3*sin(freq*x+offset)). The column
// of maximum wave amplitude becomes the harbor candidate for this edge.
func fillTop(m *mask, depth int, freq, offset float64, ht *harborTarget) {
	for x := 0; x < m.width; x++ {
		wave := math.Sin(freq*float64(x) + offset)
		d := int(float64(depth) * (0.7 + 0.3*wave))
		for y := 0; y < d && y < m.height; y++ {
			m.set(x, y)
		}
		ht.observe(wave, x, EdgeTop)
	}
}

func fillBottom(m *mask, depth int, freq, offset float64, ht *harborTarget) {
	for x := 0; x < m.width; x++ {
		wave := math.Sin(freq*float64(x) + offset)
		d := int(float64(depth) * (0.7 + 0.3*wave))
		for y := m.height - 1; y >= m.height-d && y >= 0; y-- {
			m.set(x, y)
		}
		ht.observe(wave, x, EdgeBottom)
	}
}

func fillLeft(m *mask, depth int, freq, offset float64, ht *harborTarget) {
	for y := 0; y < m.height; y++ {
		wave := math.Sin(freq*float64(y) + offset)
		d := int(float64(depth) * (0.7 + 0.3*wave))
		for x := 0; x < d && x < m.width; x++ {
			m.set(x, y)
		}
		ht.observe(wave, y, EdgeLeft)
	}
}

func fillRight(m *mask, depth int, freq, offset float64, ht *harborTarget) {
	for y := 0; y < m.height; y++ {
		wave := math.Sin(freq*float64(y) + offset)
		d := int(float64(depth) * (0.7 + 0.3*wave))
		for x := m.width - 1; x >= m.width-d && x >= 0; x-- {
			m.set(x, y)
		}
		ht.observe(wave, y, EdgeRight)
	}
}

// observe keeps the strongest wave amplitude seen across all filled edges.
func (ht *harborTarget) observe(wave float64, axis int, edge Edge) {
	if math.Abs(wave) > math.Abs(ht.wave) {
		ht.wave = wave
		ht.axis = axis
		ht.edge = edge
	}
}

// addSandBuffer converts every unassigned cell touching water into sand,
// forming the shoreline.
func addSandBuffer(g *terrain.Grid) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.At(x, y) == terrain.TypeNone && g.TouchesWater(x, y) {
				g.Set(x, y, terrain.TypeSand)
			}
		}
	}
}

// detectCoastalWater returns water tiles bordering assigned land.
func detectCoastalWater(g *terrain.Grid) []terrain.Point {
	var tiles []terrain.Point
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.At(x, y) == terrain.TypeWater && g.TouchesLand(x, y) {
				tiles = append(tiles, terrain.Point{X: x, Y: y})
			}
		}
	}
	return tiles
}

// detectCoastalSand returns sand tiles bordering water.
func detectCoastalSand(g *terrain.Grid) []terrain.Point {
	var tiles []terrain.Point
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.At(x, y) == terrain.TypeSand && g.TouchesWater(x, y) {
				tiles = append(tiles, terrain.Point{X: x, Y: y})
			}
		}
	}
	return tiles
}

// addCapes carves sand fingers pushing from the coast into open water.
func addCapes(g *terrain.Grid, rng *rand.Rand, coastalWater []terrain.Point, count int) {
	candidates := append([]terrain.Point(nil), coastalWater...)
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for i := 0; i < count && i < len(candidates); i++ {
		p := candidates[i]
		dx, dy, ok := directionAwayFromLand(g, p.X, p.Y)
		if !ok {
			continue
		}
		carveCape(g, p.X, p.Y, dx, dy, rng)
	}
}

// addInlets carves water fingers pushing from the shore into land.
func addInlets(g *terrain.Grid, rng *rand.Rand, coastalSand []terrain.Point, count int) {
	candidates := append([]terrain.Point(nil), coastalSand...)
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for i := 0; i < count && i < len(candidates); i++ {
		p := candidates[i]
		dx, dy, ok := directionAwayFromWater(g, p.X, p.Y)
		if !ok {
			continue
		}
		carveInlet(g, p.X, p.Y, dx, dy, rng)
	}
}

var featureDirs = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {-1, -1}, {-1, 1}, {1, -1},
}

// directionAwayFromLand finds a neighboring water cell with no adjacent
// land, i.e. a heading into open water.
func directionAwayFromLand(g *terrain.Grid, x, y int) (int, int, bool) {
	for _, d := range featureDirs {
		nx, ny := x+d[0], y+d[1]
		if g.InBounds(nx, ny) && g.At(nx, ny) == terrain.TypeWater && !g.TouchesLand(nx, ny) {
			return d[0], d[1], true
		}
	}
	return 0, 0, false
}

// directionAwayFromWater finds a neighboring non-water cell, i.e. a
// heading inland.
func directionAwayFromWater(g *terrain.Grid, x, y int) (int, int, bool) {
	for _, d := range featureDirs {
		nx, ny := x+d[0], y+d[1]
		if g.InBounds(nx, ny) && g.At(nx, ny) != terrain.TypeWater {
			return d[0], d[1], true
		}
	}
	return 0, 0, false
}

// carveCape carves a sand finger into the sea, scaled by map width tier.
func carveCape(g *terrain.Grid, x, y, dx, dy int, rng *rand.Rand) {
	var minSteps, stepRange, maxRadius int
	switch g.Width {
	case 64:
		minSteps, stepRange, maxRadius = 4, 2, 1
	case 128:
		minSteps, stepRange, maxRadius = 6, 3, 2
	default:
		minSteps, stepRange, maxRadius = 9, 4, 2+rng.Intn(2)
	}
	carveNaturalFeature(g, x, y, dx, dy, rng, terrain.TypeSand, minSteps, stepRange, maxRadius, math.Pi/6, false)
}

// carveInlet carves a water finger into land, padded with a sand border.
func carveInlet(g *terrain.Grid, x, y, dx, dy int, rng *rand.Rand) {
	var minSteps, stepRange, maxRadius int
	switch g.Width {
	case 64:
		minSteps, stepRange, maxRadius = 6, 4, 1
	case 128:
		minSteps, stepRange, maxRadius = 10, 4, 2
	default:
		minSteps, stepRange, maxRadius = 14, 6, 3
	}
	carveNaturalFeature(g, x, y, dx, dy, rng, terrain.TypeWater, minSteps, stepRange, maxRadius, math.Pi/4, true)
}

// carveNaturalFeature walks a curving chain of circular stamps from
// (startX, startY) along an initial heading, drifting by a small random
// angle each step. Used for both capes and inlets.
func carveNaturalFeature(
	g *terrain.Grid, startX, startY, dx, dy int, rng *rand.Rand, t terrain.Type,
	minSteps, stepRange, maxRadius int, angleVariance float64, sandPad bool,
) {
	var carved []terrain.Point

	length := math.Sqrt(float64(dx*dx + dy*dy))
	dirX := float64(dx) / length
	dirY := float64(dy) / length

	steps := minSteps + rng.Intn(stepRange+1)
	x, y := startX, startY

	for i := 0; i < steps; i++ {
		if g.InBounds(x, y) {
			g.Set(x, y, t)
			carved = append(carved, terrain.Point{X: x, Y: y})
		}

		radius := 1 + rng.Intn(maxRadius)
		for oy := -radius; oy <= radius; oy++ {
			for ox := -radius; ox <= radius; ox++ {
				nx, ny := x+ox, y+oy
				if g.InBounds(nx, ny) && ox*ox+oy*oy <= radius*radius {
					g.Set(nx, ny, t)
					carved = append(carved, terrain.Point{X: nx, Y: ny})
				}
			}
		}

		// Drift the heading by a small random angle.
		angle := (rng.Float64() - 0.5) * angleVariance
		cos, sin := math.Cos(angle), math.Sin(angle)
		dirX, dirY = dirX*cos-dirY*sin, dirX*sin+dirY*cos

		x += int(math.Round(dirX))
		y += int(math.Round(dirY))
		if !g.InBounds(x, y) {
			break
		}
	}

	if sandPad {
		for _, p := range carved {
			for oy := -1; oy <= 1; oy++ {
				for ox := -1; ox <= 1; ox++ {
					nx, ny := p.X+ox, p.Y+oy
					if !g.InBounds(nx, ny) {
						continue
					}
					if t := g.At(nx, ny); t != terrain.TypeWater && t != terrain.TypeSand {
						g.Set(nx, ny, terrain.TypeSand)
					}
				}
			}
		}
	}
}

// generateSeasideRiver carves a river from a land edge point to a coastal
// water tile adjacent to sand.
func generateSeasideRiver(g *terrain.Grid, rng *rand.Rand, report *validation.Report) {
	width, height := g.Width, g.Height
	thickness := riverThickness(width, height)

	// Start on land. The coastline never covers every edge cell, but the
	// search is bounded anyway so generation can never stall.
	start := randomEdgePoint(width, height, rng)
	for tries := 0; g.At(start.X, start.Y) == terrain.TypeWater; tries++ {
		if tries > 1000 {
			report.AddWarning(validation.Result{
				Level:   validation.LevelHydrology,
				Message: "no land edge point found; seaside river skipped",
			})
			return
		}
		start = randomEdgePoint(width, height, rng)
	}

	var ends []terrain.Point
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if g.At(x, y) == terrain.TypeWater && g.TouchesSand(x, y) {
				ends = append(ends, terrain.Point{X: x, Y: y})
			}
		}
	}
	if len(ends) == 0 {
		return
	}

	end := ends[rng.Intn(len(ends))]
	carvePath(g, start, end, rng, thickness)
}

// carveHarbor turns the strongest-wave point on the filled coastline into
// a half-disc water pocket, flat side facing inland. The anchor is the
// coastal sand tile nearest the tracked wave axis, tie-broken by distance
// to the harbor's edge.
func carveHarbor(g *terrain.Grid, rng *rand.Rand, coastalSand []terrain.Point, ht *harborTarget, report *validation.Report) {
	anchor, ok := harborAnchor(g, coastalSand, ht)
	if !ok {
		report.AddWarning(validation.Result{
			Level:   validation.LevelHydrology,
			Message: "no coastal sand near harbor axis; harbor skipped",
		})
		return
	}

	size := min(g.Width, g.Height) / 20
	if size < 3 {
		size = 3
	}
	radius := size + rng.Intn(2)

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			x, y := anchor.X+dx, anchor.Y+dy
			if !g.InBounds(x, y) || dx*dx+dy*dy > radius*radius {
				continue
			}
			// Half-disc: carve only the landward side of the anchor.
			switch ht.edge {
			case EdgeTop:
				if dy >= 0 {
					g.Set(x, y, terrain.TypeWater)
				}
			case EdgeBottom:
				if dy <= 0 {
					g.Set(x, y, terrain.TypeWater)
				}
			case EdgeLeft:
				if dx >= 0 {
					g.Set(x, y, terrain.TypeWater)
				}
			case EdgeRight:
				if dx <= 0 {
					g.Set(x, y, terrain.TypeWater)
				}
			}
		}
	}

	report.AddInfo(validation.Result{
		Level:   validation.LevelHydrology,
		Message: fmt.Sprintf("harbor pocket carved at (%d, %d) on %s edge, radius %d", anchor.X, anchor.Y, ht.edge, radius),
	})
}

// harborAnchor picks the coastal sand tile closest to the tracked wave
// axis, preferring tiles nearer the harbor's edge.
func harborAnchor(g *terrain.Grid, coastalSand []terrain.Point, ht *harborTarget) (terrain.Point, bool) {
	best := terrain.Point{}
	bestAxisDist, bestEdgeDist := math.MaxInt32, math.MaxInt32
	found := false

	for _, p := range coastalSand {
		var axisDist, edgeDist int
		switch ht.edge {
		case EdgeTop:
			axisDist, edgeDist = abs(p.X-ht.axis), p.Y
		case EdgeBottom:
			axisDist, edgeDist = abs(p.X-ht.axis), g.Height-1-p.Y
		case EdgeLeft:
			axisDist, edgeDist = abs(p.Y-ht.axis), p.X
		case EdgeRight:
			axisDist, edgeDist = abs(p.Y-ht.axis), g.Width-1-p.X
		default:
			continue
		}
		if axisDist < bestAxisDist || (axisDist == bestAxisDist && edgeDist < bestEdgeDist) {
			best, bestAxisDist, bestEdgeDist = p, axisDist, edgeDist
			found = true
		}
	}

	return best, found
}
