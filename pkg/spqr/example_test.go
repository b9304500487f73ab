package spqr_test

import (
	"fmt"

	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/graph"
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/spqr"
)

func ExampleDecompose() {
	// Two triangles joined by the edge c-d.
	g := graph.Graph{
		Nodes: []graph.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}, {ID: "e"}, {ID: "f"}},
		Edges: []graph.Edge{
			{ID: "ab", Source: "a", Target: "b"},
			{ID: "bc", Source: "b", Target: "c"},
			{ID: "ca", Source: "c", Target: "a"},
			{ID: "cd", Source: "c", Target: "d"},
			{ID: "de", Source: "d", Target: "e"},
			{ID: "ef", Source: "e", Target: "f"},
			{ID: "fd", Source: "f", Target: "d"},
		},
	}

	tree := spqr.Decompose(g, nil)
	for _, n := range tree.Nodes {
		fmt.Println(n.ID, n.Kind.String(), len(n.Skeleton.Edges), tree.ChildIDs(n.ID))
	}
	fmt.Printf("%+v\n", tree.Stats())

	// Output:
	// spqr-s-0 series 1 [spqr-r-1 spqr-r-2]
	// spqr-r-1 rigid 3 []
	// spqr-r-2 rigid 3 []
	// {S:1 P:0 R:2 Total:3}
}
