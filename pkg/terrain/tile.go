package terrain

// Tile is the externally visible unit of a generated map: one grid cell
// with its terrain type and any road carved over it. Tiles are created
// after hydrology and coloring finish and are mutated only by the road
// synthesizer.
type Tile struct {
	X          int       `json:"x"`
	Y          int       `json:"y"`
	Type       Type      `json:"type"`
	HasRoad    bool      `json:"hasRoad"`
	RoadStyle  RoadStyle `json:"roadStyle,omitempty"`
	RoadTileID int       `json:"roadTileId,omitempty"`
}

// TileMap is the per-cell record array the road synthesizer mutates in
// place, indexed (x, y).
type TileMap struct {
	Width  int
	Height int
	tiles  []Tile
}

// NewTileMap wraps a finished grid into per-cell tile records.
func NewTileMap(g *Grid) *TileMap {
	tm := &TileMap{
		Width:  g.Width,
		Height: g.Height,
		tiles:  make([]Tile, g.Width*g.Height),
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			tm.tiles[y*g.Width+x] = Tile{X: x, Y: y, Type: g.At(x, y)}
		}
	}
	return tm
}

// At returns a pointer to the tile at (x, y) for in-place mutation.
func (tm *TileMap) At(x, y int) *Tile {
	return &tm.tiles[y*tm.Width+x]
}

// InBounds reports whether (x, y) lies inside the tile map.
func (tm *TileMap) InBounds(x, y int) bool {
	return x >= 0 && x < tm.Width && y >= 0 && y < tm.Height
}

// Flatten returns all tiles in row-major order (y outer, x inner),
// the order the rendering contract requires.
func (tm *TileMap) Flatten() []Tile {
	out := make([]Tile, len(tm.tiles))
	copy(out, tm.tiles)
	return out
}
