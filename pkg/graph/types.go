package graph

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrEmptyID is returned by [Graph.Validate] when a node or edge has an empty identifier.
	ErrEmptyID = errors.New("empty identifier")

	// ErrDuplicateNodeID is returned by [Graph.Validate] when two nodes share an ID.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrDuplicateEdgeID is returned by [Graph.Validate] when two edges share an ID.
	ErrDuplicateEdgeID = errors.New("duplicate edge ID")

	// ErrUnknownEndpoint is returned by [Graph.Validate] when an edge references
	// a node that does not exist. Analyses silently skip such edges.
	ErrUnknownEndpoint = errors.New("edge references unknown node")
)

// EdgeKind is the optional classification tag carried by an edge.
type EdgeKind string

const (
	EdgeKindNone     EdgeKind = ""
	EdgeKindSeries   EdgeKind = "series"
	EdgeKindParallel EdgeKind = "parallel"
	EdgeKindDefault  EdgeKind = "default"
)

// Node is a positioned vertex of the network.
//
// Critical is derived by analysis (articulation point) and is never read back
// as input by any algorithm.
type Node struct {
	ID       string  `json:"id" yaml:"id" toml:"id"`
	X        float64 `json:"x" yaml:"x" toml:"x"`
	Y        float64 `json:"y" yaml:"y" toml:"y"`
	Label    string  `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`
	Category string  `json:"category,omitempty" yaml:"category,omitempty" toml:"category,omitempty"`
	Critical bool    `json:"critical,omitempty" yaml:"critical,omitempty" toml:"critical,omitempty"`
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Edge is an undirected connection between two nodes. Source and Target are
// ordered only for serialization.
type Edge struct {
	ID       string   `json:"id" yaml:"id" toml:"id"`
	Source   string   `json:"source" yaml:"source" toml:"source"`
	Target   string   `json:"target" yaml:"target" toml:"target"`
	Kind     EdgeKind `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
	Bridge   bool     `json:"bridge,omitempty" yaml:"bridge,omitempty" toml:"bridge,omitempty"`
	Critical bool     `json:"critical,omitempty" yaml:"critical,omitempty" toml:"critical,omitempty"`
}

// Touches reports whether the edge is incident to node id.
func (e Edge) Touches(id string) bool { return e.Source == id || e.Target == id }

// SharesEndpoint reports whether e and o have at least one endpoint in common.
func (e Edge) SharesEndpoint(o Edge) bool {
	return e.Source == o.Source || e.Source == o.Target || e.Target == o.Source || e.Target == o.Target
}

// SamePair reports whether e and o connect the same unordered node pair.
func (e Edge) SamePair(o Edge) bool {
	return (e.Source == o.Source && e.Target == o.Target) || (e.Source == o.Target && e.Target == o.Source)
}

// PairKey returns a key identifying the unordered endpoint pair of e.
func (e Edge) PairKey() string {
	a, b := e.Source, e.Target
	if b < a {
		a, b = b, a
	}
	return a + "\x00" + b
}

// Graph is an ordered sequence of nodes and a sequence of edges.
//
// Edge endpoints should reference existing node IDs. Edges that do not are
// excluded from every adjacency structure rather than reported as errors.
type Graph struct {
	Nodes []Node `json:"nodes" yaml:"nodes" toml:"nodes"`
	Edges []Edge `json:"edges" yaml:"edges" toml:"edges"`
}

// NodeCount returns the number of nodes.
func (g Graph) NodeCount() int { return len(g.Nodes) }

// EdgeCount returns the number of edges, disabled or not.
func (g Graph) EdgeCount() int { return len(g.Edges) }

// Node returns the first node with the given ID.
func (g Graph) Node(id string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// HasNode reports whether a node with the given ID exists.
func (g Graph) HasNode(id string) bool {
	_, ok := g.Node(id)
	return ok
}

// Clone returns a deep copy whose slices share nothing with g.
func (g Graph) Clone() Graph {
	return Graph{
		Nodes: slices.Clone(g.Nodes),
		Edges: slices.Clone(g.Edges),
	}
}

// Validate checks identifiers and edge endpoints. The analyses never require a
// valid graph; Validate exists for loaders and outer surfaces that want to
// reject malformed input early. All problems are joined into one error.
func (g Graph) Validate() error {
	var errs []error
	nodes := make(map[string]bool, len(g.Nodes))
	for i, n := range g.Nodes {
		switch {
		case n.ID == "":
			errs = append(errs, fmt.Errorf("node #%d: %w", i, ErrEmptyID))
		case nodes[n.ID]:
			errs = append(errs, fmt.Errorf("node %s: %w", n.ID, ErrDuplicateNodeID))
		}
		nodes[n.ID] = true
	}

	edges := make(map[string]bool, len(g.Edges))
	for i, e := range g.Edges {
		switch {
		case e.ID == "":
			errs = append(errs, fmt.Errorf("edge #%d: %w", i, ErrEmptyID))
		case edges[e.ID]:
			errs = append(errs, fmt.Errorf("edge %s: %w", e.ID, ErrDuplicateEdgeID))
		}
		edges[e.ID] = true
		if !nodes[e.Source] || !nodes[e.Target] {
			errs = append(errs, fmt.Errorf("edge %s (%s-%s): %w", e.ID, e.Source, e.Target, ErrUnknownEndpoint))
		}
	}
	return errors.Join(errs...)
}
