package terrain

// Grid is a mutable 2D terrain field indexed (x, y), stored row-major.
// Cells start as TypeNone until a generation stage assigns them.
type Grid struct {
	Width  int
	Height int
	cells  []Type
}

// NewGrid allocates an unassigned grid of the given dimensions.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]Type, width*height),
	}
}

// At returns the terrain at (x, y). The coordinate must be in bounds.
func (g *Grid) At(x, y int) Type {
	return g.cells[y*g.Width+x]
}

// Set assigns the terrain at (x, y). The coordinate must be in bounds.
func (g *Grid) Set(x, y int, t Type) {
	g.cells[y*g.Width+x] = t
}

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// TouchesType reports whether the 3x3 neighborhood around (x, y) contains
// the given terrain type.
func (g *Grid) TouchesType(x, y int, t Type) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := x+dx, y+dy
			if g.InBounds(nx, ny) && g.At(nx, ny) == t {
				return true
			}
		}
	}
	return false
}

// TouchesWater reports whether (x, y) or any neighbor is water.
func (g *Grid) TouchesWater(x, y int) bool {
	return g.TouchesType(x, y, TypeWater)
}

// TouchesSand reports whether (x, y) or any neighbor is sand.
func (g *Grid) TouchesSand(x, y int) bool {
	return g.TouchesType(x, y, TypeSand)
}

// TouchesLand reports whether any cell in the 3x3 neighborhood around
// (x, y) is assigned land, i.e. neither water nor unassigned.
func (g *Grid) TouchesLand(x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := x+dx, y+dy
			if !g.InBounds(nx, ny) {
				continue
			}
			if t := g.At(nx, ny); t != TypeWater && t != TypeNone {
				return true
			}
		}
	}
	return false
}

// Count returns the number of cells holding the given terrain type.
func (g *Grid) Count(t Type) int {
	n := 0
	for _, c := range g.cells {
		if c == t {
			n++
		}
	}
	return n
}

// CarveCircle writes the given type into every in-bounds cell within
// radius of (cx, cy). Used to stamp rivers, ponds, and coastal features.
func (g *Grid) CarveCircle(cx, cy, radius int, t Type) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			x, y := cx+dx, cy+dy
			if g.InBounds(x, y) && dx*dx+dy*dy <= radius*radius {
				g.Set(x, y, t)
			}
		}
	}
}
