package roads

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/MaxwellsDaemon-ca/BurghGen/pkg/terrain"
)

// NodeType classifies a road network node.
type NodeType int

const (
	NodeTownCenter NodeType = iota
	NodeGate
	NodeDistrictCenter
	NodeLandmark
	NodeRandom
)

// String returns a human-readable node type name.
func (t NodeType) String() string {
	switch t {
	case NodeTownCenter:
		return "TOWN_CENTER"
	case NodeGate:
		return "GATE"
	case NodeDistrictCenter:
		return "DISTRICT_CENTER"
	case NodeLandmark:
		return "LANDMARK"
	default:
		return "RANDOM"
	}
}

// Node is a point in the road network: the town center, a gate on the map
// border, or a district hub. Equality is structural.
type Node struct {
	X    int
	Y    int
	Type NodeType
}

// Point returns the node's grid position.
func (n Node) Point() terrain.Point {
	return terrain.Point{X: n.X, Y: n.Y}
}

// Dist returns the Euclidean distance to another node.
func (n Node) Dist(o Node) float64 {
	return n.Point().Dist(o.Point())
}

func (n Node) String() string {
	return fmt.Sprintf("Node[%s at (%d,%d)]", n.Type, n.X, n.Y)
}

// GenerateMajorNodes places the town center, district hubs in a rough
// radial layout around it, and gates along the map edges. Duplicate
// positions are rejected.
func GenerateMajorNodes(center terrain.Point, width, height int, rng *rand.Rand, size terrain.MapSize) []Node {
	nodes := []Node{{X: center.X, Y: center.Y, Type: NodeTownCenter}}
	used := map[terrain.Point]struct{}{center: {}}

	var districtCount int
	switch size {
	case terrain.SizeSmall:
		districtCount = 2 + rng.Intn(2) // 2-3
	case terrain.SizeMedium:
		districtCount = 3 + rng.Intn(3) // 3-5
	default:
		districtCount = 5 + rng.Intn(4) // 5-8
	}

	for i := 0; i < districtCount; i++ {
		angle := rng.Float64() * 2 * math.Pi
		distance := float64(width)*0.15 + rng.Float64()*float64(width)*0.2

		x := clamp(center.X+int(math.Cos(angle)*distance), 2, width-3)
		y := clamp(center.Y+int(math.Sin(angle)*distance), 2, height-3)
		p := terrain.Point{X: x, Y: y}

		if _, taken := used[p]; !taken {
			used[p] = struct{}{}
			nodes = append(nodes, Node{X: x, Y: y, Type: NodeDistrictCenter})
		}
	}

	var gateCount int
	switch size {
	case terrain.SizeSmall:
		gateCount = 2
	case terrain.SizeMedium:
		gateCount = 3
	default:
		gateCount = 4
	}

	for i := 0; i < gateCount; i++ {
		var x, y int
		switch rng.Intn(4) {
		case 0: // top
			x, y = rng.Intn(width), 0
		case 1: // right
			x, y = width-1, rng.Intn(height)
		case 2: // bottom
			x, y = rng.Intn(width), height-1
		case 3: // left
			x, y = 0, rng.Intn(height)
		}

		p := terrain.Point{X: clamp(x, 1, width-2), Y: clamp(y, 1, height-2)}
		if _, taken := used[p]; !taken {
			used[p] = struct{}{}
			nodes = append(nodes, Node{X: p.X, Y: p.Y, Type: NodeGate})
		}
	}

	return nodes
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
