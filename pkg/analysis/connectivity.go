package analysis

import "github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/graph"

// cutSet is the output of one low-link pass.
type cutSet struct {
	bridges    []graph.Edge
	points     []graph.Node
	components int
	active     int
}

// scan runs one low-link traversal collecting bridges and articulation
// points in discovery order. When a bridge tree edge has parallel copies, the
// last copy in graph order is reported.
func scan(g graph.Graph, disabled graph.EdgeSet) cutSet {
	idx := graph.NewIndex(g, disabled)
	w := graph.NewLowLink(idx)

	out := cutSet{active: idx.ActiveEdgeCount()}
	marked := make([]bool, idx.Len())
	out.components = w.Run(graph.LowLinkHooks{
		OnChildDone: func(u, v int, a graph.Arc) {
			if w.Low[v] > w.Disc[u] {
				out.bridges = append(out.bridges, idx.Edge(idx.LastEdge(u, v)))
			}

			root := w.Parent[u] == -1
			cut := (root && w.Children[u] > 1) || (!root && w.Low[v] >= w.Disc[u])
			if cut && !marked[u] {
				marked[u] = true
				out.points = append(out.points, idx.Node(u))
			}
		},
	})
	return out
}

// FindBridges returns every active edge whose removal disconnects its
// endpoints, in DFS discovery order.
func FindBridges(g graph.Graph, disabled graph.EdgeSet) []graph.Edge {
	return scan(g, disabled).bridges
}

// FindArticulationPoints returns every node whose removal disconnects its
// neighbours, in DFS discovery order and without duplicates.
func FindArticulationPoints(g graph.Graph, disabled graph.EdgeSet) []graph.Node {
	return scan(g, disabled).points
}

// CountComponents returns the number of connected components of the active
// view. Isolated nodes count as components.
func CountComponents(g graph.Graph, disabled graph.EdgeSet) int {
	return graph.NewLowLink(graph.NewIndex(g, disabled)).Run(graph.LowLinkHooks{})
}

// IsConnected reports whether the active view is a single component. A graph
// with no nodes is connected.
func IsConnected(g graph.Graph, disabled graph.EdgeSet) bool {
	return CountComponents(g, disabled) <= 1
}
