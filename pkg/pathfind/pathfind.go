package pathfind

import (
	"slices"

	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/graph"
)

// MaxAlternatives caps the result of [AlternativePaths].
const MaxAlternatives = 3

// Path is a route through the network. Edges has one entry fewer than Nodes
// and Distance is the number of edges.
type Path struct {
	Nodes    []string `json:"path"`
	Edges    []string `json:"edges"`
	Distance int      `json:"distance"`
}

func single(id string) Path {
	return Path{Nodes: []string{id}, Edges: []string{}, Distance: 0}
}

// ShortestPath returns a fewest-hops path from `from` to `to` over the active
// edges, and false if there is none.
func ShortestPath(g graph.Graph, from, to string, disabled graph.EdgeSet) (Path, bool) {
	if from == to {
		return single(from), true
	}
	idx := graph.NewIndex(g, disabled)
	s, okS := idx.Lookup(from)
	t, okT := idx.Lookup(to)
	if !okS || !okT {
		return Path{}, false
	}

	via := bfs(idx, s, t)
	if via[t].To < 0 {
		return Path{}, false
	}

	var nodes []int
	var edges []int
	for v := t; v != s; v = via[v].To {
		nodes = append(nodes, v)
		edges = append(edges, via[v].Edge)
	}
	nodes = append(nodes, s)
	slices.Reverse(nodes)
	slices.Reverse(edges)
	return toPath(idx, nodes, edges), true
}

// bfs returns, for each node reached from s, the arc leading back to its BFS
// parent. Unreached nodes have To == -1; s points to itself. The search stops
// once stop is dequeued; pass -1 to explore everything.
func bfs(idx *graph.Index, s, stop int) []graph.Arc {
	via := make([]graph.Arc, idx.Len())
	for i := range via {
		via[i] = graph.Arc{To: -1, Edge: -1}
	}
	via[s] = graph.Arc{To: s, Edge: -1}

	queue := []int{s}
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		if u == stop {
			break
		}
		for _, a := range idx.Arcs(u) {
			if via[a.To].To < 0 {
				via[a.To] = graph.Arc{To: u, Edge: a.Edge}
				queue = append(queue, a.To)
			}
		}
	}
	return via
}

func toPath(idx *graph.Index, nodes, edges []int) Path {
	p := Path{
		Nodes:    make([]string, len(nodes)),
		Edges:    make([]string, len(edges)),
		Distance: len(edges),
	}
	for i, n := range nodes {
		p.Nodes[i] = idx.ID(n)
	}
	for i, e := range edges {
		p.Edges[i] = idx.Edge(e).ID
	}
	return p
}

// Exists reports whether `to` is reachable from `from` over the active edges.
func Exists(g graph.Graph, from, to string, disabled graph.EdgeSet) bool {
	_, ok := ShortestPath(g, from, to, disabled)
	return ok
}

type frame struct {
	node int
	next int
}

// AllPaths enumerates simple paths from `from` to `to` depth-first, stopping
// after maxPaths have been found, and returns them sorted by distance. Paths
// of equal length keep their discovery order. maxPaths <= 0 yields nothing.
func AllPaths(g graph.Graph, from, to string, disabled graph.EdgeSet, maxPaths int) []Path {
	if maxPaths <= 0 {
		return nil
	}
	if from == to {
		return []Path{single(from)}
	}
	idx := graph.NewIndex(g, disabled)
	s, okS := idx.Lookup(from)
	t, okT := idx.Lookup(to)
	if !okS || !okT {
		return nil
	}

	var out []Path
	onPath := make([]bool, idx.Len())
	onPath[s] = true
	stack := []frame{{node: s}}
	var edges []int

	for len(stack) > 0 && len(out) < maxPaths {
		top := len(stack) - 1
		arcs := idx.Arcs(stack[top].node)

		if stack[top].next == len(arcs) {
			onPath[stack[top].node] = false
			stack = stack[:top]
			if len(edges) > 0 {
				edges = edges[:len(edges)-1]
			}
			continue
		}

		a := arcs[stack[top].next]
		stack[top].next++
		if onPath[a.To] {
			continue
		}
		if a.To == t {
			nodes := make([]int, 0, len(stack)+1)
			for _, f := range stack {
				nodes = append(nodes, f.node)
			}
			out = append(out, toPath(idx, append(nodes, t), append(slices.Clone(edges), a.Edge)))
			continue
		}
		onPath[a.To] = true
		edges = append(edges, a.Edge)
		stack = append(stack, frame{node: a.To})
	}

	slices.SortStableFunc(out, func(a, b Path) int { return a.Distance - b.Distance })
	return out
}

// AlternativePaths returns up to [MaxAlternatives] paths that use neither a
// disabled edge nor an edge in avoid.
func AlternativePaths(g graph.Graph, from, to string, avoid, disabled graph.EdgeSet) []Path {
	return AllPaths(g, from, to, disabled.Union(avoid), MaxAlternatives)
}

// PathStats summarises reachability over all unordered node pairs.
type PathStats struct {
	ConnectedPairs    int     `json:"connected_pairs"`
	DisconnectedPairs int     `json:"disconnected_pairs"`
	AveragePathLength float64 `json:"average_path_length"`
}

// Stats counts reachable and unreachable node pairs and averages the
// shortest distance over the reachable ones. Average is 0 when no pair is
// connected.
func Stats(g graph.Graph, disabled graph.EdgeSet) PathStats {
	idx := graph.NewIndex(g, disabled)
	n := idx.Len()

	var st PathStats
	total := 0
	dist := make([]int, n)
	for i := range n {
		for j := range dist {
			dist[j] = -1
		}
		dist[i] = 0
		queue := []int{i}
		for head := 0; head < len(queue); head++ {
			u := queue[head]
			for _, a := range idx.Arcs(u) {
				if dist[a.To] < 0 {
					dist[a.To] = dist[u] + 1
					queue = append(queue, a.To)
				}
			}
		}
		for j := i + 1; j < n; j++ {
			if dist[j] >= 0 {
				st.ConnectedPairs++
				total += dist[j]
			} else {
				st.DisconnectedPairs++
			}
		}
	}
	if st.ConnectedPairs > 0 {
		st.AveragePathLength = float64(total) / float64(st.ConnectedPairs)
	}
	return st
}
