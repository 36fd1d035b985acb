// Package roads synthesizes the road network for a finished terrain:
// town center and auxiliary node placement, minimum-spanning-tree
// connection with extra cross links, and terrain-aware carving that
// refuses to overwrite water.
package roads

import (
	"fmt"
	"math/rand"

	"github.com/MaxwellsDaemon-ca/BurghGen/pkg/terrain"
	"github.com/MaxwellsDaemon-ca/BurghGen/pkg/validation"
)

// Network is the synthesized road graph, retained for callers that want
// to inspect or test the topology after carving.
type Network struct {
	Center terrain.Point
	Style  terrain.RoadStyle
	Nodes  []Node
	Edges  [][2]Node
}

// GenerateNetwork places nodes, connects them, and carves the result
// into the tile map in place. The mapType selects the town-center
// heuristic; anything other than "river" or "lake" uses the seaside one.
func GenerateNetwork(tm *terrain.TileMap, g *terrain.Grid, seed int64, size terrain.MapSize, mapType string, report *validation.Report) *Network {
	rng := rand.New(rand.NewSource(seed))

	var center terrain.Point
	var chosen bool
	switch mapType {
	case "river":
		center, chosen = TownCenterRiver(g, rng)
	case "lake":
		center, chosen = TownCenterLake(g, rng)
	default:
		center, chosen = TownCenterSeaside(g, rng)
	}
	if !chosen {
		report.AddInfo(validation.Result{
			Level:   validation.LevelRoads,
			Message: "no town center candidate; falling back to map center",
		})
	}

	style := StyleForWidth(g.Width)

	nodes := GenerateMajorNodes(center, g.Width, g.Height, rng, size)
	edges := Connect(nodes, rng)

	for _, e := range edges {
		CarvePath(tm, e[0], e[1], rng, style, size)
	}

	report.AddInfo(validation.Result{
		Level: validation.LevelRoads,
		Message: fmt.Sprintf("road network: %d nodes, %d connections, style %s",
			len(nodes), len(edges), style),
	})

	return &Network{
		Center: center,
		Style:  style,
		Nodes:  nodes,
		Edges:  edges,
	}
}
