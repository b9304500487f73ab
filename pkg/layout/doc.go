// Package layout assigns new 2-D positions to the nodes of a network.
//
// [Apply] runs two passes over a copy of the graph:
//
//  1. [ForceDirected] spaces nodes apart with a Fruchterman-Reingold style
//     simulation on a fixed canvas, then re-centres and rounds the result.
//  2. [ReduceCrossings] perturbs one node at a time with simulated annealing,
//     keeping moves that lower the edge-crossing count and sometimes keeping
//     moves that do not.
//
// Topology is never changed and the input graph is never mutated. The only
// randomness is in the annealing pass and comes from [Options.Seed], so a
// given graph and seed always produce the same layout.
//
// Both passes consider every edge of the graph, disabled or not: a drawing
// stays the same while edges are toggled off and on.
package layout
