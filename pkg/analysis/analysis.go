package analysis

import (
	"math"

	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/graph"
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/planarity"
)

const (
	// MaxScore is the redundancy of a graph with no single point of failure.
	MaxScore = 100

	// halfScore is the weight of each of the edge and node terms.
	halfScore = 50.0
)

// Result is the headline analysis of a network under a disabled-edge set.
type Result struct {
	Bridges            []graph.Edge         `json:"bridges"`
	ArticulationPoints []graph.Node         `json:"articulation_points"`
	RedundancyScore    int                  `json:"redundancy_score"`
	Planarity          planarity.Info       `json:"planarity"`
	CrossingCount      int                  `json:"crossing_count"`
	Crossings          []planarity.Crossing `json:"crossings"`
	Connected          bool                 `json:"connected"`
	Components         int                  `json:"components"`
}

// BridgeIDs returns the IDs of the bridges in discovery order.
func (r Result) BridgeIDs() []string {
	ids := make([]string, len(r.Bridges))
	for i, e := range r.Bridges {
		ids[i] = e.ID
	}
	return ids
}

// ArticulationIDs returns the IDs of the articulation points in discovery order.
func (r Result) ArticulationIDs() []string {
	ids := make([]string, len(r.ArticulationPoints))
	for i, n := range r.ArticulationPoints {
		ids[i] = n.ID
	}
	return ids
}

// CalculateRedundancy returns the 0-100 redundancy score of the active view.
func CalculateRedundancy(g graph.Graph, disabled graph.EdgeSet) int {
	if len(g.Nodes) < 2 {
		return MaxScore
	}
	return score(len(g.Nodes), scan(g, disabled))
}

func score(nodes int, cs cutSet) int {
	if nodes < 2 {
		return MaxScore
	}
	var edgePart float64
	if cs.active > 0 {
		edgePart = (1 - float64(len(cs.bridges))/float64(cs.active)) * halfScore
	}
	nodePart := (1 - float64(len(cs.points))/float64(nodes)) * halfScore
	return int(math.Round(max(0, edgePart+nodePart)))
}

// Analyze computes bridges, articulation points, redundancy, planarity and
// crossings of the active view in one pass over the graph.
func Analyze(g graph.Graph, disabled graph.EdgeSet) Result {
	cs := scan(g, disabled)
	crossings := planarity.Crossings(g, disabled)
	return Result{
		Bridges:            nonNil(cs.bridges),
		ArticulationPoints: nonNil(cs.points),
		RedundancyScore:    score(len(g.Nodes), cs),
		Planarity:          planarity.CheckPlanarity(g, disabled),
		CrossingCount:      len(crossings),
		Crossings:          nonNil(crossings),
		Connected:          cs.components <= 1,
		Components:         cs.components,
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
