package spqr

import (
	"encoding/json"
	"fmt"

	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/graph"
)

// RootID is the ID of the synthetic node used when nothing else is produced.
const RootID = "spqr-root"

// Node is one node of a decomposition tree.
type Node struct {
	ID   string
	Kind Kind
	// Children holds arena indexes into Tree.Nodes, in creation order.
	Children []int
	// Skeleton is the part of the network this node represents.
	Skeleton graph.Graph
}

// Stats counts tree nodes by kind. S+P+R always equals Total.
type Stats struct {
	S     int `json:"s"`
	P     int `json:"p"`
	R     int `json:"r"`
	Total int `json:"total"`
}

// Tree is a decomposition tree stored as an arena. Links are indexes into
// Nodes and always point from an earlier node to a later one, so the
// structure is acyclic even when a node has several parents.
type Tree struct {
	Root  string
	Nodes []Node

	index map[string]int
}

func newTree(nodes []Node) *Tree {
	t := &Tree{Nodes: nodes, index: make(map[string]int, len(nodes))}
	for i, n := range nodes {
		t.index[n.ID] = i
	}
	if len(nodes) > 0 {
		t.Root = nodes[0].ID
	}
	return t
}

// Len returns the number of tree nodes.
func (t *Tree) Len() int { return len(t.Nodes) }

// Node returns the tree node with the given ID.
func (t *Tree) Node(id string) (Node, bool) {
	i, ok := t.index[id]
	if !ok {
		return Node{}, false
	}
	return t.Nodes[i], true
}

// ChildIDs returns the IDs of the children of node id, or nil if there is no
// such node.
func (t *Tree) ChildIDs(id string) []string {
	i, ok := t.index[id]
	if !ok {
		return nil
	}
	return t.ids(t.Nodes[i].Children)
}

// ParentIDs returns the IDs of every node linking to id, in creation order.
func (t *Tree) ParentIDs(id string) []string {
	target, ok := t.index[id]
	if !ok {
		return nil
	}
	var out []string
	for _, n := range t.Nodes[:target] {
		for _, c := range n.Children {
			if c == target {
				out = append(out, n.ID)
				break
			}
		}
	}
	return out
}

func (t *Tree) ids(children []int) []string {
	out := make([]string, len(children))
	for i, c := range children {
		out[i] = t.Nodes[c].ID
	}
	return out
}

// Stats counts the nodes of t by kind.
func (t *Tree) Stats() Stats {
	s := Stats{Total: len(t.Nodes)}
	for _, n := range t.Nodes {
		switch n.Kind {
		case Series:
			s.S++
		case Parallel:
			s.P++
		case Rigid:
			s.R++
		}
	}
	return s
}

// =============================================================================
// JSON
// =============================================================================

type nodeJSON struct {
	ID       string      `json:"id"`
	Kind     Kind        `json:"type"`
	Children []string    `json:"children"`
	Skeleton graph.Graph `json:"skeleton"`
}

type treeJSON struct {
	Root  string     `json:"root"`
	Nodes []nodeJSON `json:"nodes"`
	Stats Stats      `json:"stats"`
}

// MarshalJSON renders children as node IDs.
func (t *Tree) MarshalJSON() ([]byte, error) {
	out := treeJSON{Root: t.Root, Nodes: make([]nodeJSON, len(t.Nodes)), Stats: t.Stats()}
	for i, n := range t.Nodes {
		sk := n.Skeleton
		if sk.Nodes == nil {
			sk.Nodes = []graph.Node{}
		}
		if sk.Edges == nil {
			sk.Edges = []graph.Edge{}
		}
		out.Nodes[i] = nodeJSON{ID: n.ID, Kind: n.Kind, Children: t.ids(n.Children), Skeleton: sk}
	}
	return json.Marshal(out)
}

// UnmarshalJSON restores a tree written by MarshalJSON.
func (t *Tree) UnmarshalJSON(data []byte) error {
	var in treeJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	nodes := make([]Node, len(in.Nodes))
	for i, n := range in.Nodes {
		nodes[i] = Node{ID: n.ID, Kind: n.Kind, Skeleton: n.Skeleton}
	}
	restored := newTree(nodes)
	for i, n := range in.Nodes {
		for _, c := range n.Children {
			j, ok := restored.index[c]
			if !ok {
				return fmt.Errorf("spqr: node %q links to unknown child %q", n.ID, c)
			}
			restored.Nodes[i].Children = append(restored.Nodes[i].Children, j)
		}
	}
	restored.Root = in.Root
	*t = *restored
	return nil
}
