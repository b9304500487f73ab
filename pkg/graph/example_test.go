package graph_test

import (
	"fmt"

	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/graph"
)

func ExampleNewIndex() {
	g := graph.Graph{
		Nodes: []graph.Node{{ID: "hub"}, {ID: "a"}, {ID: "b"}},
		Edges: []graph.Edge{
			{ID: "e1", Source: "hub", Target: "a"},
			{ID: "e2", Source: "hub", Target: "b"},
			{ID: "e3", Source: "hub", Target: "missing"},
		},
	}

	idx := graph.NewIndex(g, graph.NewEdgeSet("e2"))
	hub, _ := idx.Lookup("hub")
	for _, a := range idx.Arcs(hub) {
		fmt.Println(idx.Edge(a.Edge).ID, "->", idx.ID(a.To))
	}
	fmt.Println("active:", idx.ActiveEdgeCount())
	// Output:
	// e1 -> a
	// active: 2
}

func ExampleLowLink() {
	g := graph.Graph{
		Nodes: []graph.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		Edges: []graph.Edge{
			{ID: "ab", Source: "a", Target: "b"},
			{ID: "bc", Source: "b", Target: "c"},
		},
	}
	idx := graph.NewIndex(g, nil)
	w := graph.NewLowLink(idx)
	w.Run(graph.LowLinkHooks{
		OnChildDone: func(u, v int, a graph.Arc) {
			if w.Low[v] > w.Disc[u] {
				fmt.Println("bridge", idx.Edge(a.Edge).ID)
			}
		},
	})
	// Output:
	// bridge bc
	// bridge ab
}
