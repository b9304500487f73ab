package spqr

import (
	"fmt"

	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/graph"
)

// Decompose builds the decomposition tree of the active view of g.
//
// Node IDs are "spqr-<kind>-<n>" with one counter shared by all kinds, so
// IDs are unique and reflect creation order. Bridges come first, in discovery
// order, followed by the biconnected components.
func Decompose(g graph.Graph, disabled graph.EdgeSet) *Tree {
	idx := graph.NewIndex(g, disabled)
	sp := bicomponents(idx)

	var nodes []Node
	add := func(k Kind, skeleton graph.Graph) {
		nodes = append(nodes, Node{
			ID:       fmt.Sprintf("spqr-%s-%d", k.prefix(), len(nodes)),
			Kind:     k,
			Skeleton: skeleton,
		})
	}

	bridges := graph.NewEdgeSet()
	for _, b := range sp.bridges {
		bridges.Add(b.ID)
		var sk graph.Graph
		for _, id := range [2]string{b.Source, b.Target} {
			if n, ok := idx.Lookup(id); ok {
				sk.Nodes = append(sk.Nodes, idx.Node(n))
			}
		}
		sk.Edges = []graph.Edge{b}
		add(Series, sk)
	}

	for _, c := range sp.components {
		if len(c.Edges) == 1 && bridges.Has(c.Edges[0].ID) {
			continue
		}
		add(Classify(c), graph.Graph{Nodes: membersOf(g, c), Edges: c.Edges})
	}

	if len(nodes) == 0 {
		// The fallback kind counts every edge, disabled ones included, while
		// the skeleton keeps only the active ones.
		k := Rigid
		if len(g.Edges) <= 1 {
			k = Series
		}
		nodes = append(nodes, Node{
			ID:       RootID,
			Kind:     k,
			Skeleton: graph.Graph{Nodes: g.Clone().Nodes, Edges: graph.ActiveEdges(g, disabled)},
		})
	}

	link(nodes)
	return newTree(nodes)
}

// membersOf returns the nodes of g belonging to c, in graph order.
func membersOf(g graph.Graph, c Component) []graph.Node {
	in := make(map[string]bool, len(c.Nodes))
	for _, id := range c.Nodes {
		in[id] = true
	}
	out := make([]graph.Node, 0, len(c.Nodes))
	for _, n := range g.Nodes {
		if in[n.ID] {
			out = append(out, n)
		}
	}
	return out
}

// link adds a child edge from every node to every later node whose skeleton
// shares at least one network node with it.
func link(nodes []Node) {
	sets := make([]map[string]bool, len(nodes))
	for i, n := range nodes {
		sets[i] = make(map[string]bool, len(n.Skeleton.Nodes))
		for _, v := range n.Skeleton.Nodes {
			sets[i][v.ID] = true
		}
	}
	for i := range nodes {
		for j := i + 1; j < len(nodes); j++ {
			if overlaps(sets[i], sets[j]) {
				nodes[i].Children = append(nodes[i].Children, j)
			}
		}
	}
}

func overlaps(a, b map[string]bool) bool {
	if len(b) < len(a) {
		a, b = b, a
	}
	for id := range a {
		if b[id] {
			return true
		}
	}
	return false
}
