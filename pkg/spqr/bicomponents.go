package spqr

import (
	"slices"

	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/graph"
)

// Component is one biconnected component of the active view.
type Component struct {
	// Nodes lists the member node IDs in graph order.
	Nodes []string `json:"nodes"`
	// Edges lists the member edges in the order they left the edge stack.
	Edges []graph.Edge `json:"edges"`
}

// HasNode reports whether id is a member of c.
func (c Component) HasNode(id string) bool { return slices.Contains(c.Nodes, id) }

// split is the output of one edge-stack traversal.
type split struct {
	components []Component
	bridges    []graph.Edge
}

type stacked struct {
	u, v, edge int
}

// bicomponents runs the low-link traversal with an edge stack. Tree edges and
// back edges to ancestors are pushed. When a child's subtree closes off at a
// cut vertex, edges are popped down to the tree edge into that child. Edges
// left when a root finishes form one more component. Bridges are collected in
// the same pass, in discovery order; a bridge with parallel copies is reported
// as its last copy in graph order, which leaves the tree edge copy to its own
// one-edge component.
func bicomponents(idx *graph.Index) split {
	w := graph.NewLowLink(idx)

	var (
		out   split
		stack []stacked
		seen  = make([]int, idx.Len())
		mark  = 0
	)

	emit := func(until int) {
		mark++
		var members []int
		var c Component
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, n := range [2]int{top.u, top.v} {
				if seen[n] != mark {
					seen[n] = mark
					members = append(members, n)
				}
			}
			c.Edges = append(c.Edges, idx.Edge(top.edge))
			if top.edge == until {
				break
			}
		}
		if len(c.Edges) == 0 {
			return
		}
		slices.Sort(members)
		c.Nodes = make([]string, len(members))
		for i, n := range members {
			c.Nodes[i] = idx.ID(n)
		}
		out.components = append(out.components, c)
	}

	w.Run(graph.LowLinkHooks{
		OnTreeEdge: func(u, v int, a graph.Arc) {
			stack = append(stack, stacked{u, v, a.Edge})
		},
		OnBackEdge: func(u, v int, a graph.Arc) {
			if w.Disc[v] < w.Disc[u] {
				stack = append(stack, stacked{u, v, a.Edge})
			}
		},
		OnChildDone: func(u, v int, a graph.Arc) {
			if w.Low[v] > w.Disc[u] {
				out.bridges = append(out.bridges, idx.Edge(idx.LastEdge(u, v)))
			}
			root := w.Parent[u] == -1
			if (root && w.Children[u] > 1) || (!root && w.Low[v] >= w.Disc[u]) {
				emit(a.Edge)
			}
		},
		OnRootDone: func(int) {
			emit(-1)
		},
	})
	return out
}

// Bicomponents partitions the active edges of g into biconnected components.
// Every active edge between two existing nodes belongs to at most one
// component. Self-loops belong to none, and neither does a parallel copy of a
// DFS tree edge, since the traversal never looks at arcs back to a parent.
func Bicomponents(g graph.Graph, disabled graph.EdgeSet) []Component {
	return bicomponents(graph.NewIndex(g, disabled)).components
}
