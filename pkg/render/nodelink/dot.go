package nodelink

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/graph"
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/spqr"
)

// Options configures diagram generation.
type Options struct {
	// Pinned fixes nodes at their stored X/Y coordinates.
	Pinned bool

	// Disabled edges are drawn dashed and grey.
	Disabled graph.EdgeSet

	// Detailed adds categories to network labels and member lists to tree
	// node labels.
	Detailed bool

	// Title is drawn above the diagram when set.
	Title string
}

// Palette.
const (
	colorInk      = "#2d3748"
	colorNode     = "#ebf4ff"
	colorCritical = "#c53030"
	colorCritFill = "#fed7d7"
	colorDisabled = "#a0aec0"
	colorParallel = "#2b6cb0"
)

var kindFill = map[spqr.Kind]string{
	spqr.Series:   "#c6f6d5",
	spqr.Parallel: "#bee3f8",
	spqr.Rigid:    "#fefcbf",
}

// =============================================================================
// Networks
// =============================================================================

// GraphDOT converts g to an undirected Graphviz graph. Edges whose endpoints
// are missing are left out.
func GraphDOT(g graph.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  outputorder=edgesfirst;\n")
	buf.WriteString("  splines=line;\n")
	if opts.Pinned {
		buf.WriteString("  inputscale=72;\n")
	}
	writeTitle(&buf, opts.Title)
	fmt.Fprintf(&buf, "  node [shape=circle, style=filled, fillcolor=%q, color=%q, fontcolor=%q, fontsize=10, margin=\"0.04\"];\n",
		colorNode, colorInk, colorInk)
	fmt.Fprintf(&buf, "  edge [color=%q, penwidth=1.5];\n", colorInk)
	buf.WriteString("\n")

	present := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		present[n.ID] = true
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(nodeAttrs(n, opts), ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		if !present[e.Source] || !present[e.Target] {
			continue
		}
		fmt.Fprintf(&buf, "  %q -- %q [%s];\n", e.Source, e.Target, strings.Join(edgeAttrs(e, opts), ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n graph.Node, opts Options) []string {
	label := n.DisplayLabel()
	if opts.Detailed && n.Category != "" {
		label += "\n" + n.Category
	}
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if opts.Pinned {
		// Graphviz y grows upward.
		attrs = append(attrs, fmt.Sprintf("pos=\"%g,%g!\"", n.X, -n.Y))
	}
	if n.Critical {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", colorCritFill), fmt.Sprintf("color=%q", colorCritical), "penwidth=2")
	}
	return attrs
}

func edgeAttrs(e graph.Edge, opts Options) []string {
	attrs := []string{fmt.Sprintf("id=%q", e.ID)}
	switch {
	case opts.Disabled.Has(e.ID):
		attrs = append(attrs, "style=dashed", fmt.Sprintf("color=%q", colorDisabled))
	case e.Bridge || e.Critical:
		attrs = append(attrs, fmt.Sprintf("color=%q", colorCritical), "penwidth=3")
	case e.Kind == graph.EdgeKindParallel:
		attrs = append(attrs, fmt.Sprintf("color=%q", colorParallel))
	}
	return attrs
}

// =============================================================================
// Decomposition trees
// =============================================================================

// TreeDOT converts a decomposition tree to a top-down Graphviz digraph.
func TreeDOT(t *spqr.Tree, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph T {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	writeTitle(&buf, opts.Title)
	fmt.Fprintf(&buf, "  node [shape=box, style=\"rounded,filled\", color=%q, fontcolor=%q, fontsize=12, margin=\"0.2,0.1\"];\n",
		colorInk, colorInk)
	buf.WriteString("\n")

	if t == nil {
		buf.WriteString("}\n")
		return buf.String()
	}

	for _, n := range t.Nodes {
		attrs := []string{
			fmt.Sprintf("label=%q", treeLabel(n, opts.Detailed)),
			fmt.Sprintf("fillcolor=%q", kindFill[n.Kind]),
		}
		if n.ID == t.Root {
			attrs = append(attrs, "penwidth=2")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, n := range t.Nodes {
		for _, c := range n.Children {
			fmt.Fprintf(&buf, "  %q -> %q;\n", n.ID, t.Nodes[c].ID)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func treeLabel(n spqr.Node, detailed bool) string {
	label := fmt.Sprintf("%s  %s\n%d nodes, %d edges", string(n.Kind), n.ID, len(n.Skeleton.Nodes), len(n.Skeleton.Edges))
	if !detailed || len(n.Skeleton.Nodes) == 0 {
		return label
	}
	ids := make([]string, len(n.Skeleton.Nodes))
	for i, m := range n.Skeleton.Nodes {
		ids[i] = m.ID
	}
	return label + "\n" + strings.Join(ids, " ")
}

func writeTitle(buf *bytes.Buffer, title string) {
	if title == "" {
		return
	}
	fmt.Fprintf(buf, "  label=%q;\n  labelloc=t;\n  fontsize=16;\n", title)
}
