package terrain

import "fmt"

// Type identifies the terrain of a single tile.
type Type int8

const (
	// TypeNone marks a cell not yet assigned by any generation stage.
	TypeNone Type = iota
	TypeWater
	TypeSand
	TypeGrass
	TypeDirt
)

// String returns the wire name of the terrain type.
func (t Type) String() string {
	switch t {
	case TypeWater:
		return "WATER"
	case TypeSand:
		return "SAND"
	case TypeGrass:
		return "GRASS"
	case TypeDirt:
		return "DIRT"
	default:
		return "NONE"
	}
}

// MarshalJSON serializes the type as its wire name.
func (t Type) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON parses a wire name back into a terrain type.
func (t *Type) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"WATER"`:
		*t = TypeWater
	case `"SAND"`:
		*t = TypeSand
	case `"GRASS"`:
		*t = TypeGrass
	case `"DIRT"`:
		*t = TypeDirt
	case `"NONE"`:
		*t = TypeNone
	default:
		return fmt.Errorf("unknown terrain type %s", data)
	}
	return nil
}

// RoadStyle identifies the visual style of carved roads.
type RoadStyle string

const (
	StyleFieldTan        RoadStyle = "FIELD_TAN"
	StyleCobbleLightGray RoadStyle = "COBBLE_LIGHTGRAY"
	StyleCobbleGray      RoadStyle = "COBBLE_GRAY"
)

// TileIDForStyle maps a road style to its tileset index. The style set is
// closed; an unknown style is a programming error, not a recoverable one.
func TileIDForStyle(style RoadStyle) int {
	switch style {
	case StyleFieldTan:
		return 571
	case StyleCobbleLightGray:
		return 563
	case StyleCobbleGray:
		return 112
	default:
		panic(fmt.Sprintf("unknown road style: %q", style))
	}
}

// MapSize classifies map dimensions into the size tiers that govern road
// width, node counts, and minor-feature counts.
type MapSize int

const (
	SizeSmall MapSize = iota
	SizeMedium
	SizeLarge
)

// SizeFromDimensions classifies a map by area.
func SizeFromDimensions(width, height int) MapSize {
	area := width * height
	switch {
	case area <= 64*64:
		return SizeSmall
	case area <= 128*128:
		return SizeMedium
	default:
		return SizeLarge
	}
}

// String returns a human-readable size name.
func (s MapSize) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	default:
		return "large"
	}
}
