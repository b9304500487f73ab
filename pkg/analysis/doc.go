// Package analysis finds the single points of failure of a network.
//
// # Connectivity
//
// [FindBridges] and [FindArticulationPoints] run one low-link depth-first
// traversal ([graph.LowLink]) over the active-edge view of a graph. Results are
// reported in the order the traversal discovers them, which follows node and
// edge insertion order but is not otherwise stable.
//
// The traversal skips every arc leading back to a node's DFS parent. When two
// nodes are joined by parallel edges, the second edge is therefore invisible
// and the pair is reported as a bridge. Callers working with multigraphs
// should collapse parallel edges first or treat those results with care.
//
// # Redundancy
//
// [CalculateRedundancy] blends the bridge ratio and the articulation-point
// ratio into a 0-100 score, half from each:
//
//	score = round(max(0, (1 - bridges/activeEdges)*50 + (1 - cuts/nodes)*50))
//
// Graphs with fewer than two nodes score 100. A graph with nodes but no
// active edges gets nothing for the edge half.
//
// # Full Analysis
//
// [Analyze] bundles the connectivity results with the planarity estimate and
// crossing count from package planarity. [Annotate] and [ClassifyEdges] return
// copies of a graph carrying the derived flags, for display.
//
// All functions are pure: inputs are never mutated and no state is kept
// between calls.
package analysis
