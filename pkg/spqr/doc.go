// Package spqr builds an approximate SPQR-style decomposition tree of a
// network.
//
// # Overview
//
// The decomposition is heuristic. It does not compute triconnected components
// or virtual edges. Instead it:
//
//  1. splits the active view into biconnected components ([Bicomponents]),
//     using an edge stack on the same low-link traversal that finds bridges
//  2. classifies each component as Series, Parallel or Rigid ([Classify])
//  3. links every pair of tree nodes whose skeletons share a network node,
//     from the earlier node to the later one
//
// Every bridge becomes its own Series node before any component is processed,
// and components made of a single bridge are skipped so no edge is wrapped
// twice. The first node created is the root.
//
// # Tree Shape
//
// Pairwise linking produces a directed acyclic graph, not necessarily a tree:
// when three or more components meet at one cut node, later nodes get several
// parents. [Tree] keeps nodes in an arena and links them by index, so this is
// representable without ownership cycles.
//
// # Degenerate Input
//
// When no node is produced (no nodes, or no active edges between distinct
// nodes) a single root named [RootID] covers the whole graph. It is Series if
// at most one edge is active and Rigid otherwise.
package spqr
