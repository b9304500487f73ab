package graph

// Arc is one direction of an active edge in an [Index].
// To is the dense index of the far endpoint; Edge indexes Graph.Edges.
type Arc struct {
	To   int
	Edge int
}

// Index numbers the nodes of a graph densely (in graph order) and stores the
// adjacency of its active edges in a compressed arena: the arcs of node u are
// arcs[offsets[u]:offsets[u+1]], in edge order.
//
// Disabled edges and edges with an unknown endpoint are left out. A self-loop
// contributes two arcs to its node; parallel edges contribute parallel arcs.
//
// An Index borrows the node and edge slices of the graph it was built from and
// must not outlive a call that mutates them.
type Index struct {
	nodes   []Node
	edges   []Edge
	pos     map[string]int
	offsets []int
	arcs    []Arc
	active  int
}

// NewIndex builds the active-edge adjacency of g. When node IDs repeat, the
// first occurrence owns the ID.
func NewIndex(g Graph, disabled EdgeSet) *Index {
	n := len(g.Nodes)
	idx := &Index{
		nodes:   g.Nodes,
		edges:   g.Edges,
		pos:     make(map[string]int, n),
		offsets: make([]int, n+1),
	}
	for i, node := range g.Nodes {
		if _, dup := idx.pos[node.ID]; !dup {
			idx.pos[node.ID] = i
		}
	}

	type pair struct{ u, v, e int }
	kept := make([]pair, 0, len(g.Edges))
	for i, e := range g.Edges {
		if disabled.Has(e.ID) {
			continue
		}
		idx.active++
		u, okU := idx.pos[e.Source]
		v, okV := idx.pos[e.Target]
		if !okU || !okV {
			continue
		}
		kept = append(kept, pair{u, v, i})
		idx.offsets[u+1]++
		idx.offsets[v+1]++
	}
	for i := 1; i <= n; i++ {
		idx.offsets[i] += idx.offsets[i-1]
	}

	idx.arcs = make([]Arc, idx.offsets[n])
	fill := make([]int, n)
	copy(fill, idx.offsets[:n])
	for _, p := range kept {
		idx.arcs[fill[p.u]] = Arc{To: p.v, Edge: p.e}
		fill[p.u]++
		idx.arcs[fill[p.v]] = Arc{To: p.u, Edge: p.e}
		fill[p.v]++
	}
	return idx
}

// Len returns the number of nodes.
func (x *Index) Len() int { return len(x.nodes) }

// Lookup returns the dense index of the node with the given ID.
func (x *Index) Lookup(id string) (int, bool) {
	i, ok := x.pos[id]
	return i, ok
}

// ID returns the identifier of node i.
func (x *Index) ID(i int) string { return x.nodes[i].ID }

// Node returns node i.
func (x *Index) Node(i int) Node { return x.nodes[i] }

// Edge returns the graph edge with index e (as stored in [Arc.Edge]).
func (x *Index) Edge(e int) Edge { return x.edges[e] }

// Arcs returns the arcs leaving node u. The slice aliases the arena and must
// not be modified.
func (x *Index) Arcs(u int) []Arc { return x.arcs[x.offsets[u]:x.offsets[u+1]] }

// LastEdge returns the highest graph edge index among the active edges
// joining u and v, or -1 when they are not adjacent. Arcs are stored in edge
// order, so this is the last matching arc.
func (x *Index) LastEdge(u, v int) int {
	arcs := x.Arcs(u)
	for i := len(arcs) - 1; i >= 0; i-- {
		if arcs[i].To == v {
			return arcs[i].Edge
		}
	}
	return -1
}

// ActiveEdgeCount returns the number of edges not disabled, including edges
// with unknown endpoints.
func (x *Index) ActiveEdgeCount() int { return x.active }
