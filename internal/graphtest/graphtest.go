// Package graphtest builds small graphs for tests.
package graphtest

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/graph"
)

// FromPairs builds a graph from "u-v" pairs. Each pair becomes an edge whose
// ID is the pair itself; nodes appear in order of first mention and are
// placed on a circle of radius 200 around (400, 300).
//
// A pair without a dash adds an isolated node.
func FromPairs(pairs ...string) graph.Graph {
	var g graph.Graph
	seen := make(map[string]bool)
	addNode := func(id string) {
		if !seen[id] {
			seen[id] = true
			g.Nodes = append(g.Nodes, graph.Node{ID: id, Label: strings.ToUpper(id)})
		}
	}
	for _, p := range pairs {
		u, v, ok := strings.Cut(p, "-")
		addNode(u)
		if !ok {
			continue
		}
		addNode(v)
		g.Edges = append(g.Edges, graph.Edge{ID: p, Source: u, Target: v})
	}
	placeOnCircle(g.Nodes)
	return g
}

// Cycle returns the cycle n1-n2-...-nk-n1.
func Cycle(k int) graph.Graph {
	pairs := make([]string, 0, k)
	for i := 1; i <= k; i++ {
		pairs = append(pairs, fmt.Sprintf("n%d-n%d", i, i%k+1))
	}
	return FromPairs(pairs...)
}

// Path returns the path n1-n2-...-nk.
func Path(k int) graph.Graph {
	if k == 1 {
		return FromPairs("n1")
	}
	pairs := make([]string, 0, k-1)
	for i := 1; i < k; i++ {
		pairs = append(pairs, fmt.Sprintf("n%d-n%d", i, i+1))
	}
	return FromPairs(pairs...)
}

// Star returns a hub joined to k leaves l1..lk.
func Star(k int) graph.Graph {
	pairs := make([]string, 0, k)
	for i := 1; i <= k; i++ {
		pairs = append(pairs, fmt.Sprintf("hub-l%d", i))
	}
	return FromPairs(pairs...)
}

// TwoTriangles returns triangles a-b-c and d-e-f joined by the edge c-d.
func TwoTriangles() graph.Graph {
	return FromPairs("a-b", "b-c", "c-a", "c-d", "d-e", "e-f", "f-d")
}

// Random returns a simple graph (no self-loops, no parallel edges) with n
// nodes where each unordered pair is joined with probability p.
func Random(seed uint64, n int, p float64) graph.Graph {
	rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
	var g graph.Graph
	for i := range n {
		g.Nodes = append(g.Nodes, graph.Node{ID: fmt.Sprintf("v%d", i)})
	}
	for i := range n {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				g.Edges = append(g.Edges, graph.Edge{
					ID:     fmt.Sprintf("v%d-v%d", i, j),
					Source: fmt.Sprintf("v%d", i),
					Target: fmt.Sprintf("v%d", j),
				})
			}
		}
	}
	placeOnCircle(g.Nodes)
	return g
}

func placeOnCircle(nodes []graph.Node) {
	for i := range nodes {
		angle := 2 * math.Pi * float64(i) / float64(len(nodes))
		nodes[i].X = math.Round(400 + 200*math.Cos(angle))
		nodes[i].Y = math.Round(300 + 200*math.Sin(angle))
	}
}

// IDs returns the node IDs in order.
func IDs(nodes []graph.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}
	return out
}

// EdgeIDs returns the edge IDs in order.
func EdgeIDs(edges []graph.Edge) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.ID
	}
	return out
}
