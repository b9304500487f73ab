package graph

// LowLinkHooks receives events from a [LowLink] traversal. Any hook may be nil.
//
// Hooks run after the walker has updated its own bookkeeping, so Disc, Low,
// Parent and Children already reflect the event being reported.
type LowLinkHooks struct {
	// OnTreeEdge fires when arc a from u discovers v.
	OnTreeEdge func(u, v int, a Arc)

	// OnBackEdge fires for an arc from u to an already discovered v that is not
	// u's DFS parent. Low[u] has been lowered to Disc[v] if smaller.
	OnBackEdge func(u, v int, a Arc)

	// OnChildDone fires when the subtree of v (entered through arc a from u) is
	// exhausted and Low[u] has absorbed Low[v].
	OnChildDone func(u, v int, a Arc)

	// OnRootDone fires when the traversal tree rooted at root is complete.
	OnRootDone func(root int)
}

// LowLink is a depth-first walker computing discovery times and low-link
// values over an [Index]. It uses an explicit frame stack, so traversal depth
// is bounded by memory rather than the goroutine stack.
//
// Arcs leading back to a node's DFS parent are all skipped, not just the tree
// arc. On graphs with parallel edges this hides the second edge of a pair from
// the low-link computation (a pair joined by two edges looks like a bridge).
type LowLink struct {
	idx *Index

	// Disc is the 1-based discovery time of each node; 0 means undiscovered.
	Disc []int
	// Low is the smallest discovery time reachable from the node's subtree
	// through at most one back edge.
	Low []int
	// Parent is the DFS parent of each node, or -1 for roots and undiscovered nodes.
	Parent []int
	// Children counts the DFS children discovered so far for each node.
	Children []int

	time  int
	stack []lowLinkFrame
}

type lowLinkFrame struct {
	node int
	next int
	via  Arc
}

// NewLowLink allocates a walker for idx with buffers sized to its node count.
func NewLowLink(idx *Index) *LowLink {
	n := idx.Len()
	w := &LowLink{
		idx:      idx,
		Disc:     make([]int, n),
		Low:      make([]int, n),
		Parent:   make([]int, n),
		Children: make([]int, n),
	}
	for i := range w.Parent {
		w.Parent[i] = -1
	}
	return w
}

// Run traverses every node, starting a new tree at each undiscovered node in
// index order. It returns the number of trees, which equals the number of
// connected components of the active view. Run must be called at most once.
func (w *LowLink) Run(h LowLinkHooks) int {
	trees := 0
	for root := range w.Disc {
		if w.Disc[root] != 0 {
			continue
		}
		trees++
		w.walk(root, h)
		if h.OnRootDone != nil {
			h.OnRootDone(root)
		}
	}
	return trees
}

func (w *LowLink) discover(v int, via Arc) {
	w.time++
	w.Disc[v] = w.time
	w.Low[v] = w.time
	w.stack = append(w.stack, lowLinkFrame{node: v, via: via})
}

func (w *LowLink) walk(root int, h LowLinkHooks) {
	w.discover(root, Arc{To: root, Edge: -1})

	for len(w.stack) > 0 {
		top := len(w.stack) - 1
		u := w.stack[top].node
		arcs := w.idx.Arcs(u)

		if next := w.stack[top].next; next < len(arcs) {
			w.stack[top].next++
			a := arcs[next]
			v := a.To
			switch {
			case w.Disc[v] == 0:
				w.Parent[v] = u
				w.Children[u]++
				if h.OnTreeEdge != nil {
					h.OnTreeEdge(u, v, a)
				}
				w.discover(v, a)
			case v != w.Parent[u]:
				w.Low[u] = min(w.Low[u], w.Disc[v])
				if h.OnBackEdge != nil {
					h.OnBackEdge(u, v, a)
				}
			}
			continue
		}

		via := w.stack[top].via
		w.stack = w.stack[:top]
		if p := w.Parent[u]; p >= 0 {
			w.Low[p] = min(w.Low[p], w.Low[u])
			if h.OnChildDone != nil {
				h.OnChildDone(p, u, via)
			}
		}
	}
}
