// Package pathfind answers route queries between two nodes of a network under
// a disabled-edge set.
//
// [ShortestPath] is a breadth-first search; ties between equally short routes
// go to the one found first in node and edge insertion order. [AllPaths]
// enumerates simple paths depth-first and stops once it has collected the
// requested number, so it is exponential in the worst case and bounded only by
// that cutoff. [AlternativePaths] is AllPaths with extra edges avoided and at
// most [MaxAlternatives] results. [Stats] runs one breadth-first search
// per node and is meant for small graphs.
//
// Querying a node against itself always yields the one-node path, whether or
// not the node exists. Unknown or unreachable targets yield no path rather
// than an error.
package pathfind
