// Package nodelink draws networks and decomposition trees as Graphviz
// node-link diagrams.
//
// # Networks
//
// [GraphDOT] emits an undirected graph. Articulation points and bridges, as
// marked on an annotated graph, are drawn in red and disabled edges are
// dashed. With [Options.Pinned] every node keeps its stored coordinates, so
// the picture matches the crossing count computed by the analysis:
//
//	annotated := analysis.Annotate(g, disabled)
//	dot := nodelink.GraphDOT(annotated, nodelink.Options{Pinned: true, Disabled: disabled})
//	svg, err := nodelink.Render(ctx, dot, nodelink.EngineNeato, render.FormatSVG)
//
// # Decomposition trees
//
// [TreeDOT] emits a top-down digraph with one box per S, P or R node, colored
// by kind, and an arrow per parent-child link.
//
// # Rendering
//
// [Render] lays out DOT source with [github.com/goccy/go-graphviz] inside the
// process; no Graphviz installation is needed. SVG output has its viewBox
// normalized to start at the origin.
package nodelink
