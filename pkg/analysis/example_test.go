package analysis_test

import (
	"fmt"

	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/analysis"
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/graph"
)

func ExampleAnalyze() {
	g := graph.Graph{
		Nodes: []graph.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		Edges: []graph.Edge{
			{ID: "ab", Source: "a", Target: "b"},
			{ID: "bc", Source: "b", Target: "c"},
		},
	}

	r := analysis.Analyze(g, nil)
	fmt.Println("bridges:", r.BridgeIDs())
	fmt.Println("articulation points:", r.ArticulationIDs())
	fmt.Println("score:", r.RedundancyScore)

	// Output:
	// bridges: [bc ab]
	// articulation points: [b]
	// score: 33
}

func ExampleCalculateRedundancy() {
	g := graph.Graph{
		Nodes: []graph.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		Edges: []graph.Edge{
			{ID: "ab", Source: "a", Target: "b"},
			{ID: "bc", Source: "b", Target: "c"},
			{ID: "ca", Source: "c", Target: "a"},
		},
	}
	fmt.Println(analysis.CalculateRedundancy(g, nil))
	fmt.Println(analysis.CalculateRedundancy(g, graph.NewEdgeSet("ca")))

	// Output:
	// 100
	// 33
}
