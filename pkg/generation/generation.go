// Package generation sequences the map pipeline: hydrology carves the
// water skeleton, the land colorer fills the rest, and the road
// synthesizer carves the town's road network over the finished terrain.
// One call is one deterministic single-threaded run; nothing is shared
// between concurrent calls.
package generation

import (
	"fmt"

	"github.com/MaxwellsDaemon-ca/BurghGen/pkg/hydrology"
	"github.com/MaxwellsDaemon-ca/BurghGen/pkg/roads"
	"github.com/MaxwellsDaemon-ca/BurghGen/pkg/spec"
	"github.com/MaxwellsDaemon-ca/BurghGen/pkg/terrain"
	"github.com/MaxwellsDaemon-ca/BurghGen/pkg/validation"
)

// Result is one generated map: the flat row-major tile list the
// rendering contract requires, plus the road network and diagnostics for
// callers that want them.
type Result struct {
	Width   int                `json:"width"`
	Height  int                `json:"height"`
	Tiles   []terrain.Tile     `json:"tiles"`
	Network *roads.Network     `json:"-"`
	Report  *validation.Report `json:"-"`
}

// Generate runs the full pipeline for one map request. It fails only on
// invalid dimensions; every degenerate condition inside generation falls
// back or skips, and surfaces on the report instead.
func Generate(req spec.MapRequest) (*Result, error) {
	report := spec.Validate(&req)
	if !report.Valid {
		return nil, fmt.Errorf("invalid map request: %s", report.Summary)
	}

	g := terrain.NewGrid(req.Width, req.Height)

	// Hydrology first; unknown types skip straight to coloring.
	var coastalSand []terrain.Point
	switch req.NormalizedType() {
	case spec.TypeRiver:
		hydrology.GenerateRiver(g, req.Seed, report)
	case spec.TypeLake:
		hydrology.GenerateLake(g, req.Seed, report)
	case spec.TypeSeaside:
		coastalSand = hydrology.GenerateSeaside(g, req.Seed, report)
	}

	colorLand(g, req.Seed, coastalSand)

	tm := terrain.NewTileMap(g)

	size := terrain.SizeFromDimensions(req.Width, req.Height)
	network := roads.GenerateNetwork(tm, g, req.Seed, size, req.NormalizedType(), report)

	return &Result{
		Width:   req.Width,
		Height:  req.Height,
		Tiles:   tm.Flatten(),
		Network: network,
		Report:  report,
	}, nil
}
