package errors

import (
	"strings"
	"unicode"

	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/graph"
)

// MaxGraphNodes and MaxGraphEdges bound graphs accepted from untrusted
// callers. Path enumeration and all-pairs statistics are super-linear, so the
// API refuses anything much larger than a hand-edited network.
const (
	MaxGraphNodes = 2000
	MaxGraphEdges = 10000
	maxIDLength   = 256
)

// ValidateID checks a node or edge identifier supplied by a user.
//
// Rules:
//   - not empty
//   - at most 256 bytes
//   - no control characters
func ValidateID(kind, id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "%s id cannot be empty", kind)
	}
	if len(id) > maxIDLength {
		return New(ErrCodeInvalidInput, "%s id too long (max %d characters)", kind, maxIDLength)
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "%s id contains invalid control characters", kind)
		}
	}
	return nil
}

// CheckGraphLimits rejects graphs above MaxGraphNodes or MaxGraphEdges.
func CheckGraphLimits(g graph.Graph) error {
	if len(g.Nodes) > MaxGraphNodes {
		return New(ErrCodeInvalidGraph, "graph has %d nodes (max %d)", len(g.Nodes), MaxGraphNodes)
	}
	if len(g.Edges) > MaxGraphEdges {
		return New(ErrCodeInvalidGraph, "graph has %d edges (max %d)", len(g.Edges), MaxGraphEdges)
	}
	return nil
}

// ValidateGraph checks structural consistency and size limits. Problems
// reported by [graph.Graph.Validate] become INVALID_GRAPH.
func ValidateGraph(g graph.Graph) error {
	if err := CheckGraphLimits(g); err != nil {
		return err
	}
	if err := g.Validate(); err != nil {
		return Wrap(ErrCodeInvalidGraph, err, "graph is malformed")
	}
	return nil
}

// RequireNode returns NODE_NOT_FOUND unless g has a node with the given ID.
func RequireNode(g graph.Graph, id string) error {
	if err := ValidateID("node", id); err != nil {
		return err
	}
	if !g.HasNode(id) {
		return New(ErrCodeNodeNotFound, "no node %q in graph", id)
	}
	return nil
}

// ParseIDList splits a comma-separated list of identifiers as given on the
// command line, trimming blanks and dropping empty entries.
func ParseIDList(s string) ([]string, error) {
	var out []string
	for _, part := range strings.Split(s, ",") {
		id := strings.TrimSpace(part)
		if id == "" {
			continue
		}
		if err := ValidateID("edge", id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}
