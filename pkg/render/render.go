// Package render rasterizes a generated tile list into a PNG preview.
// It is a development aid; the real tileset lookup belongs to the
// rendering collaborator.
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"

	"github.com/MaxwellsDaemon-ca/BurghGen/pkg/terrain"
)

// Options controls raster output.
type Options struct {
	// Scale is the square pixel size of one tile. Values below 1 are
	// treated as 1.
	Scale int
}

// terrainColor maps a terrain type to its preview color.
func terrainColor(t terrain.Type) color.Color {
	switch t {
	case terrain.TypeWater:
		return colornames.Steelblue
	case terrain.TypeSand:
		return colornames.Khaki
	case terrain.TypeGrass:
		return colornames.Forestgreen
	case terrain.TypeDirt:
		return colornames.Peru
	default:
		return colornames.Black
	}
}

// roadColor maps a road style to its preview color.
func roadColor(style terrain.RoadStyle) color.Color {
	switch style {
	case terrain.StyleFieldTan:
		return colornames.Tan
	case terrain.StyleCobbleLightGray:
		return colornames.Lightgray
	default:
		return colornames.Dimgray
	}
}

// Image rasterizes the tile list into an image. Tiles must cover the
// full width x height cell range.
func Image(tiles []terrain.Tile, width, height int, opts Options) (image.Image, error) {
	if len(tiles) != width*height {
		return nil, fmt.Errorf("tile count %d does not cover %dx%d map", len(tiles), width, height)
	}

	scale := opts.Scale
	if scale < 1 {
		scale = 1
	}

	dc := gg.NewContext(width*scale, height*scale)
	for _, t := range tiles {
		c := terrainColor(t.Type)
		if t.HasRoad {
			c = roadColor(t.RoadStyle)
		}
		dc.SetColor(c)
		dc.DrawRectangle(float64(t.X*scale), float64(t.Y*scale), float64(scale), float64(scale))
		dc.Fill()
	}

	return dc.Image(), nil
}

// SavePNG rasterizes the tile list and writes it to a PNG file.
func SavePNG(path string, tiles []terrain.Tile, width, height int, opts Options) error {
	img, err := Image(tiles, width, height, opts)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("writing PNG: %w", err)
	}
	return nil
}
