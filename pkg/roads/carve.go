package roads

import (
	"math/rand"

	"github.com/MaxwellsDaemon-ca/BurghGen/pkg/terrain"
)

// StyleForWidth selects the road style from the map width tier.
func StyleForWidth(width int) terrain.RoadStyle {
	switch {
	case width <= 64:
		return terrain.StyleFieldTan
	case width <= 128:
		return terrain.StyleCobbleLightGray
	default:
		return terrain.StyleCobbleGray
	}
}

// roadWidth picks the carved width for one connection.
func roadWidth(size terrain.MapSize, rng *rand.Rand) int {
	switch size {
	case terrain.SizeSmall:
		return 2
	case terrain.SizeMedium:
		return 2 + rng.Intn(2) // 2-3
	default:
		return 3 + rng.Intn(2) // 3-4
	}
}

// CarvePath walks the Bresenham line between two nodes and stamps a
// square road patch at every step. Water cells are never overwritten;
// the patch simply skips them.
func CarvePath(tm *terrain.TileMap, a, b Node, rng *rand.Rand, style terrain.RoadStyle, size terrain.MapSize) {
	width := roadWidth(size, rng)

	x0, y0 := a.X, a.Y
	x1, y1 := b.X, b.Y

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	x, y := x0, y0
	for {
		stampRoad(tm, x, y, width, style)

		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// stampRoad writes a square road patch centered on (x, y). Each affected
// cell becomes dirt, flagged with the road style and its tileset index.
func stampRoad(tm *terrain.TileMap, x, y, width int, style terrain.RoadStyle) {
	half := width / 2
	for dy := -half; dy <= half; dy++ {
		for dx := -half; dx <= half; dx++ {
			nx, ny := x+dx, y+dy
			if !tm.InBounds(nx, ny) {
				continue
			}
			tile := tm.At(nx, ny)
			if tile.Type == terrain.TypeWater {
				continue
			}
			tile.Type = terrain.TypeDirt
			tile.HasRoad = true
			tile.RoadStyle = style
			tile.RoadTileID = terrain.TileIDForStyle(style)
		}
	}
}
