package spqr

import "fmt"

// Kind is the classification of a decomposition tree node.
type Kind string

const (
	// Series marks a path-like component: one unavoidable route.
	Series Kind = "S"
	// Parallel marks a component with redundant edges between one pair of nodes.
	Parallel Kind = "P"
	// Rigid marks any other component.
	Rigid Kind = "R"
)

// String returns the long name of the kind.
func (k Kind) String() string {
	switch k {
	case Series:
		return "series"
	case Parallel:
		return "parallel"
	case Rigid:
		return "rigid"
	default:
		return fmt.Sprintf("Kind(%q)", string(k))
	}
}

// prefix is the lower-case letter used in generated node IDs.
func (k Kind) prefix() string {
	switch k {
	case Series:
		return "s"
	case Parallel:
		return "p"
	default:
		return "r"
	}
}

// Classify assigns a kind to a component:
//
//   - Parallel if two of its edges join the same unordered node pair, or it
//     has exactly two nodes and more than one edge
//   - Series if it is a simple path, or more generally if it has one edge
//     fewer than nodes
//   - Rigid otherwise
func Classify(c Component) Kind {
	nodes, edges := len(c.Nodes), len(c.Edges)

	pairs := make(map[string]int, edges)
	parallel := false
	for _, e := range c.Edges {
		k := e.PairKey()
		pairs[k]++
		if pairs[k] > 1 {
			parallel = true
		}
	}
	if parallel || (nodes == 2 && edges > 1) {
		return Parallel
	}

	if nodes > 2 && isPath(c) {
		return Series
	}
	// Any tree-shaped component counts as a chain.
	if edges == nodes-1 {
		return Series
	}
	return Rigid
}

// isPath reports whether the degree sequence of c is that of a simple path.
func isPath(c Component) bool {
	nodes := len(c.Nodes)
	if len(c.Edges) != nodes-1 {
		return false
	}
	degree := make(map[string]int, nodes)
	for _, e := range c.Edges {
		degree[e.Source]++
		degree[e.Target]++
	}
	ends, inner := 0, 0
	for _, d := range degree {
		switch d {
		case 1:
			ends++
		case 2:
			inner++
		}
	}
	return ends == 2 && inner == nodes-2
}
