package analysis

import "github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/graph"

// Annotate returns a copy of g with the derived flags set from the active
// view: Edge.Bridge and Edge.Critical on bridges, Node.Critical on
// articulation points. Existing flags on g are overwritten in the copy.
func Annotate(g graph.Graph, disabled graph.EdgeSet) graph.Graph {
	cs := scan(g, disabled)
	out := g.Clone()

	bridges := make(graph.EdgeSet, len(cs.bridges))
	for _, e := range cs.bridges {
		bridges.Add(e.ID)
	}
	cuts := make(map[string]bool, len(cs.points))
	for _, n := range cs.points {
		cuts[n.ID] = true
	}

	for i := range out.Edges {
		b := bridges.Has(out.Edges[i].ID)
		out.Edges[i].Bridge = b
		out.Edges[i].Critical = b
	}
	for i := range out.Nodes {
		out.Nodes[i].Critical = cuts[out.Nodes[i].ID]
	}
	return out
}

// ClassifyEdges returns a copy of the edges of g tagged with a coarse kind:
//
//   - bridges of the active view are series edges with Bridge set
//   - edges sharing their endpoint pair with another active edge are parallel
//   - everything else, disabled edges included, is default
func ClassifyEdges(g graph.Graph, disabled graph.EdgeSet) []graph.Edge {
	bridges := graph.NewEdgeSet()
	for _, e := range FindBridges(g, disabled) {
		bridges.Add(e.ID)
	}

	pairs := make(map[string]int)
	for _, e := range graph.ActiveEdges(g, disabled) {
		pairs[e.PairKey()]++
	}

	out := make([]graph.Edge, len(g.Edges))
	for i, e := range g.Edges {
		e.Bridge = false
		switch {
		case disabled.Has(e.ID):
			e.Kind = graph.EdgeKindDefault
		case bridges.Has(e.ID):
			e.Kind = graph.EdgeKindSeries
			e.Bridge = true
		case pairs[e.PairKey()] > 1:
			e.Kind = graph.EdgeKindParallel
		default:
			e.Kind = graph.EdgeKindDefault
		}
		out[i] = e
	}
	return out
}
