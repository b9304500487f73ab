package planarity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/graph"
)

func TestSegmentsIntersect(t *testing.T) {
	tests := []struct {
		name           string
		p1, p2, p3, p4 Point
		want           bool
	}{
		{"proper cross", Point{0, 0}, Point{10, 10}, Point{0, 10}, Point{10, 0}, true},
		{"parallel", Point{0, 0}, Point{10, 0}, Point{0, 5}, Point{10, 5}, false},
		{"collinear overlap", Point{0, 0}, Point{10, 0}, Point{5, 0}, Point{15, 0}, true},
		{"collinear disjoint", Point{0, 0}, Point{1, 0}, Point{2, 0}, Point{3, 0}, false},
		{"t junction", Point{0, 0}, Point{10, 0}, Point{5, 0}, Point{5, 5}, true},
		{"near miss", Point{0, 0}, Point{10, 0}, Point{5, 1}, Point{5, 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SegmentsIntersect(tt.p1, tt.p2, tt.p3, tt.p4))
			assert.Equal(t, tt.want, SegmentsIntersect(tt.p3, tt.p4, tt.p1, tt.p2), "symmetric")
		})
	}
}

// squareWithDiagonals draws a unit square plus both diagonals, which cross
// once at the centre.
func squareWithDiagonals() graph.Graph {
	return graph.Graph{
		Nodes: []graph.Node{
			{ID: "a", X: 0, Y: 0},
			{ID: "b", X: 100, Y: 0},
			{ID: "c", X: 100, Y: 100},
			{ID: "d", X: 0, Y: 100},
		},
		Edges: []graph.Edge{
			{ID: "ab", Source: "a", Target: "b"},
			{ID: "bc", Source: "b", Target: "c"},
			{ID: "cd", Source: "c", Target: "d"},
			{ID: "da", Source: "d", Target: "a"},
			{ID: "ac", Source: "a", Target: "c"},
			{ID: "bd", Source: "b", Target: "d"},
		},
	}
}

func TestCountCrossings(t *testing.T) {
	g := squareWithDiagonals()

	assert.Equal(t, 1, CountCrossings(g, nil))
	assert.Equal(t, 0, CountCrossings(g, graph.NewEdgeSet("ac")))
	assert.Equal(t, []Crossing{{A: "ac", B: "bd"}}, Crossings(g, nil))
	assert.Empty(t, Crossings(g, graph.NewEdgeSet("bd")))
}

func TestCountCrossingsSkipsAdjacentAndDangling(t *testing.T) {
	g := graph.Graph{
		Nodes: []graph.Node{
			{ID: "a", X: 0, Y: 0},
			{ID: "b", X: 100, Y: 0},
			{ID: "c", X: 50, Y: 0},
		},
		Edges: []graph.Edge{
			// Collinear and overlapping, but they share endpoint a.
			{ID: "ab", Source: "a", Target: "b"},
			{ID: "ac", Source: "a", Target: "c"},
			{ID: "ghost", Source: "c", Target: "missing"},
		},
	}
	assert.Equal(t, 0, CountCrossings(g, nil))
}

func TestCheckPlanarity(t *testing.T) {
	t.Run("small graph", func(t *testing.T) {
		info := CheckPlanarity(squareWithDiagonals(), nil)
		assert.Equal(t, Info{IsPlanar: true, Message: MsgSmallGraph}, info)
	})

	t.Run("too dense", func(t *testing.T) {
		// K5 has 10 edges, above 3*5-6 = 9.
		g := graph.Graph{}
		ids := []string{"a", "b", "c", "d", "e"}
		for i, id := range ids {
			g.Nodes = append(g.Nodes, graph.Node{ID: id, X: float64(i * 10)})
		}
		for i := range ids {
			for j := i + 1; j < len(ids); j++ {
				g.Edges = append(g.Edges, graph.Edge{ID: ids[i] + ids[j], Source: ids[i], Target: ids[j]})
			}
		}
		assert.Equal(t, Info{IsPlanar: false, Message: MsgTooDense}, CheckPlanarity(g, nil))

		// Disabling one edge brings it back under the bound.
		info := CheckPlanarity(g, graph.NewEdgeSet("ab"))
		assert.True(t, info.IsPlanar)
	})

	t.Run("crossings but bound passed", func(t *testing.T) {
		g := squareWithDiagonals()
		g.Nodes = append(g.Nodes, graph.Node{ID: "e", X: 300, Y: 300})
		g.Edges = append(g.Edges, graph.Edge{ID: "ce", Source: "c", Target: "e"})
		assert.Equal(t, Info{IsPlanar: true, Message: MsgBoundPassed}, CheckPlanarity(g, nil))
	})

	t.Run("drawing already planar", func(t *testing.T) {
		g := squareWithDiagonals()
		g.Nodes = append(g.Nodes, graph.Node{ID: "e", X: 300, Y: 300})
		g.Edges = append(g.Edges, graph.Edge{ID: "ce", Source: "c", Target: "e"})
		assert.Equal(t, Info{IsPlanar: true, Message: MsgAlreadyPlanar}, CheckPlanarity(g, graph.NewEdgeSet("bd")))
	})
}
