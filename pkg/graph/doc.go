// Package graph provides the shared network model used by every analysis in spqrnet.
//
// A network is an undirected graph of positioned nodes. Edges carry an ordered
// source/target pair for serialization, but all analyses treat them as undirected.
//
// # Core Types
//
//   - [Graph]: ordered node list plus edge list (the value callers own)
//   - [Node], [Edge]: structural types with derived flags (Critical, Bridge)
//   - [EdgeSet]: disabled edge identifiers overlaid on a graph (simulated failures)
//   - [Index]: dense node numbering and a CSR adjacency arena over active edges
//   - [LowLink]: explicit-stack depth-first traversal with discovery/low-link numbers
//
// # Active-Edge View
//
// Analyses never filter a graph physically. They take a [Graph] and an [EdgeSet]
// and build an [Index] that skips disabled edges and edges whose endpoints do not
// exist. Building an index never fails and never mutates the graph:
//
//	idx := graph.NewIndex(g, graph.NewEdgeSet("e3"))
//	for _, a := range idx.Arcs(0) {
//	    fmt.Println(idx.ID(a.To), idx.Edge(a.Edge).ID)
//	}
//
// # Serialization
//
// Graph files are JSON, YAML or TOML, selected by extension:
//
//	{
//	  "nodes": [{"id": "a", "x": 100, "y": 100, "label": "Router A"}],
//	  "edges": [{"id": "e1", "source": "a", "target": "b"}]
//	}
//
// Use [ReadFile], [WriteFile], [Read], [Write] and [Marshal].
//
// # Concurrency
//
// Graph values are plain data. An [Index] is immutable after construction and
// safe for concurrent reads; a [LowLink] walker is not.
package graph
