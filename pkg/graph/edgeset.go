package graph

import (
	"maps"
	"slices"
)

// EdgeSet is a set of edge identifiers, used as the disabled-edge overlay of
// the active-edge view. The nil EdgeSet is a valid empty set.
type EdgeSet map[string]struct{}

// NewEdgeSet returns a set containing ids.
func NewEdgeSet(ids ...string) EdgeSet {
	s := make(EdgeSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is in the set.
func (s EdgeSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Add inserts id into the set. It panics on a nil set, like a nil map write.
func (s EdgeSet) Add(id string) { s[id] = struct{}{} }

// Union returns a new set holding the members of s and o. Neither input is modified.
func (s EdgeSet) Union(o EdgeSet) EdgeSet {
	out := make(EdgeSet, len(s)+len(o))
	maps.Copy(out, s)
	maps.Copy(out, o)
	return out
}

// IDs returns the members in sorted order.
func (s EdgeSet) IDs() []string {
	return slices.Sorted(maps.Keys(s))
}

// ActiveEdges returns the edges of g not present in disabled, in graph order.
// Edges with unknown endpoints are included; they are only dropped from
// adjacency structures.
func ActiveEdges(g Graph, disabled EdgeSet) []Edge {
	out := make([]Edge, 0, len(g.Edges))
	for _, e := range g.Edges {
		if !disabled.Has(e.ID) {
			out = append(out, e)
		}
	}
	return out
}
