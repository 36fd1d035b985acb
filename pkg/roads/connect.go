package roads

import (
	"container/heap"
	"math/rand"
)

// Edge is an ephemeral node pair used during MST construction. Cost is
// Euclidean distance.
type Edge struct {
	From Node
	To   Node
	Cost float64
}

type edgeQueue []Edge

func (q edgeQueue) Len() int            { return len(q) }
func (q edgeQueue) Less(i, j int) bool  { return q[i].Cost < q[j].Cost }
func (q edgeQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *edgeQueue) Push(x any)         { *q = append(*q, x.(Edge)) }
func (q *edgeQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	*q = old[:n-1]
	return e
}

// Connect builds a minimum spanning tree over the nodes with Prim's
// algorithm seeded at the first node (the town center), then adds 1-2
// extra cross connections so the network is not a pure tree.
func Connect(nodes []Node, rng *rand.Rand) [][2]Node {
	if len(nodes) < 2 {
		return nil
	}

	var connections [][2]Node

	connected := map[Node]struct{}{nodes[0]: {}}
	queue := &edgeQueue{}
	heap.Init(queue)

	for _, n := range nodes[1:] {
		heap.Push(queue, Edge{From: nodes[0], To: n, Cost: nodes[0].Dist(n)})
	}

	for len(connected) < len(nodes) && queue.Len() > 0 {
		e := heap.Pop(queue).(Edge)
		if _, done := connected[e.To]; done {
			continue
		}

		connected[e.To] = struct{}{}
		connections = append(connections, [2]Node{e.From, e.To})

		for _, n := range nodes {
			if _, done := connected[n]; !done {
				heap.Push(queue, Edge{From: e.To, To: n, Cost: e.To.Dist(n)})
			}
		}
	}

	// A few random cross links break the single-path-per-destination
	// shape of a pure tree.
	extra := 1 + rng.Intn(2)
	for attempts := 0; extra > 0 && attempts < 20; attempts++ {
		a := nodes[rng.Intn(len(nodes))]
		b := nodes[rng.Intn(len(nodes))]
		if a != b && !connectionExists(connections, a, b) {
			connections = append(connections, [2]Node{a, b})
			extra--
		}
	}

	return connections
}

// connectionExists reports whether an undirected connection between a and
// b is already present.
func connectionExists(connections [][2]Node, a, b Node) bool {
	for _, c := range connections {
		if (c[0] == a && c[1] == b) || (c[0] == b && c[1] == a) {
			return true
		}
	}
	return false
}
