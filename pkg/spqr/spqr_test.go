package spqr

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/internal/graphtest"
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/graph"
)

func TestBicomponentsTwoTriangles(t *testing.T) {
	comps := Bicomponents(graphtest.TwoTriangles(), nil)
	require.Len(t, comps, 3)

	assert.Equal(t, []string{"d", "e", "f"}, comps[0].Nodes)
	assert.Equal(t, []string{"f-d", "e-f", "d-e"}, graphtest.EdgeIDs(comps[0].Edges))

	assert.Equal(t, []string{"c", "d"}, comps[1].Nodes)
	assert.Equal(t, []string{"c-d"}, graphtest.EdgeIDs(comps[1].Edges))

	assert.Equal(t, []string{"a", "b", "c"}, comps[2].Nodes)
	assert.Equal(t, []string{"c-a", "b-c", "a-b"}, graphtest.EdgeIDs(comps[2].Edges))

	assert.True(t, comps[2].HasNode("c"))
	assert.False(t, comps[2].HasNode("d"))
}

func TestBicomponentsDisabled(t *testing.T) {
	comps := Bicomponents(graphtest.TwoTriangles(), graph.NewEdgeSet("c-d"))
	require.Len(t, comps, 2)
	assert.Equal(t, []string{"a", "b", "c"}, comps[0].Nodes)
	assert.Equal(t, []string{"d", "e", "f"}, comps[1].Nodes)
}

func TestBicomponentsPartitionEdges(t *testing.T) {
	for seed := uint64(1); seed <= 40; seed++ {
		g := graphtest.Random(seed, 3+int(seed%7), 0.4)
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			count := make(map[string]int)
			for _, c := range Bicomponents(g, nil) {
				for _, e := range c.Edges {
					count[e.ID]++
					assert.True(t, c.HasNode(e.Source) && c.HasNode(e.Target), "edge %s outside its component", e.ID)
				}
			}
			for _, e := range g.Edges {
				assert.Equal(t, 1, count[e.ID], "edge %s", e.ID)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	edge := func(id, u, v string) graph.Edge { return graph.Edge{ID: id, Source: u, Target: v} }
	tests := []struct {
		name string
		c    Component
		want Kind
	}{
		{
			name: "single edge",
			c:    Component{Nodes: []string{"a", "b"}, Edges: []graph.Edge{edge("1", "a", "b")}},
			want: Series,
		},
		{
			name: "double edge",
			c:    Component{Nodes: []string{"a", "b"}, Edges: []graph.Edge{edge("1", "a", "b"), edge("2", "b", "a")}},
			want: Parallel,
		},
		{
			name: "triangle with doubled side",
			c: Component{Nodes: []string{"a", "b", "c"}, Edges: []graph.Edge{
				edge("1", "a", "b"), edge("2", "b", "c"), edge("3", "c", "a"), edge("4", "a", "c"),
			}},
			want: Parallel,
		},
		{
			name: "path",
			c: Component{Nodes: []string{"a", "b", "c", "d"}, Edges: []graph.Edge{
				edge("1", "a", "b"), edge("2", "b", "c"), edge("3", "c", "d"),
			}},
			want: Series,
		},
		{
			name: "claw is tree-shaped",
			c: Component{Nodes: []string{"h", "a", "b", "c"}, Edges: []graph.Edge{
				edge("1", "h", "a"), edge("2", "h", "b"), edge("3", "h", "c"),
			}},
			want: Series,
		},
		{
			name: "triangle",
			c: Component{Nodes: []string{"a", "b", "c"}, Edges: []graph.Edge{
				edge("1", "a", "b"), edge("2", "b", "c"), edge("3", "c", "a"),
			}},
			want: Rigid,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.c))
		})
	}
}

func TestDecomposeTwoTriangles(t *testing.T) {
	tree := Decompose(graphtest.TwoTriangles(), nil)

	require.Equal(t, 3, tree.Len())
	assert.Equal(t, "spqr-s-0", tree.Root)

	ids := make([]string, tree.Len())
	kinds := make([]Kind, tree.Len())
	for i, n := range tree.Nodes {
		ids[i], kinds[i] = n.ID, n.Kind
	}
	assert.Equal(t, []string{"spqr-s-0", "spqr-r-1", "spqr-r-2"}, ids)
	assert.Equal(t, []Kind{Series, Rigid, Rigid}, kinds)

	join, ok := tree.Node("spqr-s-0")
	require.True(t, ok)
	assert.Equal(t, []string{"c-d"}, graphtest.EdgeIDs(join.Skeleton.Edges))
	assert.Equal(t, []string{"c", "d"}, graphtest.IDs(join.Skeleton.Nodes))

	assert.Equal(t, []string{"spqr-r-1", "spqr-r-2"}, tree.ChildIDs("spqr-s-0"))
	assert.Empty(t, tree.ChildIDs("spqr-r-1"))
	assert.Nil(t, tree.ChildIDs("missing"))

	assert.Equal(t, Stats{S: 1, P: 0, R: 2, Total: 3}, tree.Stats())
}

func TestDecomposePath(t *testing.T) {
	tree := Decompose(graphtest.FromPairs("a-b", "b-c"), nil)
	require.Equal(t, 2, tree.Len())

	first, _ := tree.Node("spqr-s-0")
	second, _ := tree.Node("spqr-s-1")
	assert.Equal(t, []string{"b-c"}, graphtest.EdgeIDs(first.Skeleton.Edges))
	assert.Equal(t, []string{"a-b"}, graphtest.EdgeIDs(second.Skeleton.Edges))
	assert.Equal(t, []string{"spqr-s-1"}, tree.ChildIDs("spqr-s-0"))
}

func TestDecomposeParallel(t *testing.T) {
	g := graphtest.FromPairs("a-b", "b-c", "c-a")
	g.Edges = append(g.Edges, graph.Edge{ID: "c-a-2", Source: "c", Target: "a"})

	tree := Decompose(g, nil)
	require.Equal(t, 1, tree.Len())
	assert.Equal(t, "spqr-p-0", tree.Root)
	assert.Equal(t, Stats{P: 1, Total: 1}, tree.Stats())
}

func TestDecomposeStarIsDAG(t *testing.T) {
	tree := Decompose(graphtest.Star(4), nil)
	require.Equal(t, 4, tree.Len())

	assert.Equal(t, []string{"spqr-s-1", "spqr-s-2", "spqr-s-3"}, tree.ChildIDs("spqr-s-0"))
	assert.Equal(t, []string{"spqr-s-0", "spqr-s-1", "spqr-s-2"}, tree.ParentIDs("spqr-s-3"))
	assert.Empty(t, tree.ParentIDs("spqr-s-0"))
	assert.Equal(t, Stats{S: 4, Total: 4}, tree.Stats())
}

func TestDecomposeDegenerate(t *testing.T) {
	tests := []struct {
		name     string
		g        graph.Graph
		disabled graph.EdgeSet
		kind     Kind
		nodes    int
	}{
		{name: "empty", g: graph.Graph{}, kind: Series, nodes: 0},
		{
			name:     "all edges disabled",
			g:        graphtest.FromPairs("a-b", "b-c"),
			disabled: graph.NewEdgeSet("a-b", "b-c"),
			kind:     Rigid,
			nodes:    3,
		},
		{
			name:     "single disabled edge",
			g:        graphtest.FromPairs("a-b"),
			disabled: graph.NewEdgeSet("a-b"),
			kind:     Series,
			nodes:    2,
		},
		{name: "edgeless", g: graphtest.FromPairs("a", "b", "c"), kind: Series, nodes: 3},
		{
			name: "self loops",
			g: graph.Graph{
				Nodes: []graph.Node{{ID: "a"}},
				Edges: []graph.Edge{{ID: "l1", Source: "a", Target: "a"}, {ID: "l2", Source: "a", Target: "a"}},
			},
			kind:  Rigid,
			nodes: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := Decompose(tt.g, tt.disabled)
			require.Equal(t, 1, tree.Len())
			assert.Equal(t, RootID, tree.Root)
			root, ok := tree.Node(RootID)
			require.True(t, ok)
			assert.Equal(t, tt.kind, root.Kind)
			assert.Len(t, root.Skeleton.Nodes, tt.nodes)
			assert.Equal(t, graph.ActiveEdges(tt.g, tt.disabled), root.Skeleton.Edges)
			assert.Empty(t, root.Children)
		})
	}
}

// doubled returns g with a parallel copy of every edge appended after the
// originals.
func doubled(g graph.Graph) graph.Graph {
	out := g.Clone()
	for _, e := range g.Edges {
		e.ID += "-2"
		out.Edges = append(out.Edges, e)
	}
	return out
}

// assertCoversActiveEdges checks that every active edge sits in exactly one
// skeleton and that children only point forwards.
func assertCoversActiveEdges(t *testing.T, g graph.Graph, disabled graph.EdgeSet) {
	t.Helper()
	tree := Decompose(g, disabled)
	s := tree.Stats()
	assert.Equal(t, s.Total, s.S+s.P+s.R)
	assert.Equal(t, tree.Nodes[0].ID, tree.Root)

	active := graph.ActiveEdges(g, disabled)
	if len(active) == 0 {
		return
	}
	count := make(map[string]int)
	for i, n := range tree.Nodes {
		for _, e := range n.Skeleton.Edges {
			count[e.ID]++
		}
		for _, c := range n.Children {
			assert.Greater(t, c, i, "child of %s points backwards", n.ID)
		}
	}
	for _, e := range active {
		assert.Equal(t, 1, count[e.ID], "edge %s", e.ID)
	}
}

func TestDecomposeCoversActiveEdges(t *testing.T) {
	for seed := uint64(1); seed <= 40; seed++ {
		g := graphtest.Random(seed, 2+int(seed%8), 0.35)
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			assertCoversActiveEdges(t, g, nil)
		})
	}

	multigraphs := []struct {
		name     string
		g        graph.Graph
		disabled graph.EdgeSet
	}{
		{name: "doubled path", g: doubled(graphtest.Path(5))},
		{name: "doubled star", g: doubled(graphtest.Star(4))},
		{name: "doubled path one copy off", g: doubled(graphtest.Path(4)), disabled: graph.NewEdgeSet("n2-n3-2")},
		{name: "parallel chord", g: func() graph.Graph {
			g := graphtest.Cycle(4)
			g.Edges = append(g.Edges, graph.Edge{ID: "n4-n1-2", Source: "n4", Target: "n1"})
			return g
		}()},
	}
	for _, tt := range multigraphs {
		t.Run(tt.name, func(t *testing.T) {
			assertCoversActiveEdges(t, tt.g, tt.disabled)
		})
	}
}

func TestDecomposeDoubledBridge(t *testing.T) {
	g := graph.Graph{
		Nodes: []graph.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		Edges: []graph.Edge{
			{ID: "e1", Source: "a", Target: "b"},
			{ID: "e2", Source: "b", Target: "a"},
			{ID: "bc", Source: "b", Target: "c"},
		},
	}

	tree := Decompose(g, nil)
	require.Equal(t, 3, tree.Len())
	assert.Equal(t, Stats{S: 3, Total: 3}, tree.Stats())

	var skeletons [][]string
	for _, n := range tree.Nodes {
		assert.Equal(t, Series, n.Kind, n.ID)
		skeletons = append(skeletons, graphtest.EdgeIDs(n.Skeleton.Edges))
	}
	assert.Equal(t, [][]string{{"bc"}, {"e2"}, {"e1"}}, skeletons)
}

func TestTreeJSON(t *testing.T) {
	tree := Decompose(graphtest.TwoTriangles(), nil)

	data, err := json.Marshal(tree)
	require.NoError(t, err)

	var raw struct {
		Root  string `json:"root"`
		Nodes []struct {
			ID       string   `json:"id"`
			Type     string   `json:"type"`
			Children []string `json:"children"`
		} `json:"nodes"`
		Stats Stats `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "spqr-s-0", raw.Root)
	assert.Equal(t, "S", raw.Nodes[0].Type)
	assert.Equal(t, []string{"spqr-r-1", "spqr-r-2"}, raw.Nodes[0].Children)
	assert.Equal(t, []string{}, raw.Nodes[1].Children)
	assert.Equal(t, 3, raw.Stats.Total)

	var back Tree
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, tree.Root, back.Root)
	assert.Equal(t, tree.Stats(), back.Stats())
	assert.Equal(t, tree.ChildIDs("spqr-s-0"), back.ChildIDs("spqr-s-0"))
	n, ok := back.Node("spqr-r-2")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, graphtest.IDs(n.Skeleton.Nodes))
}

func TestTreeJSONUnknownChild(t *testing.T) {
	var tree Tree
	err := json.Unmarshal([]byte(`{"root":"x","nodes":[{"id":"x","type":"S","children":["y"]}]}`), &tree)
	assert.ErrorContains(t, err, `unknown child "y"`)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "series", Series.String())
	assert.Equal(t, "parallel", Parallel.String())
	assert.Equal(t, "rigid", Rigid.String())
	assert.Equal(t, `Kind("Q")`, Kind("Q").String())
}
