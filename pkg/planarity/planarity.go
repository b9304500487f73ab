package planarity

import (
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/graph"
)

// Epsilon is the magnitude below which an orientation cross product is
// treated as zero (collinear).
const Epsilon = 0.001

// Messages reported by [CheckPlanarity].
const (
	MsgSmallGraph      = "Small graph - always planar"
	MsgAlreadyPlanar   = "Current layout is already planar"
	MsgBoundPassed     = "Potentially planar (E bounds passed)"
	MsgTooDense        = "Too dense to be planar (E > 3V - 6)"
	smallGraphMaxNodes = 4
)

// Point is a position in the drawing plane.
type Point struct{ X, Y float64 }

// Info is the outcome of [CheckPlanarity].
type Info struct {
	IsPlanar bool   `json:"is_planar"`
	Message  string `json:"message"`
}

// orientation returns 0 for collinear points, 1 for clockwise and 2 for
// counter-clockwise turns a -> b -> c.
func orientation(a, b, c Point) int {
	val := (b.Y-a.Y)*(c.X-b.X) - (b.X-a.X)*(c.Y-b.Y)
	switch {
	case val > -Epsilon && val < Epsilon:
		return 0
	case val > 0:
		return 1
	default:
		return 2
	}
}

// onSegment reports whether q lies within the bounding box of segment p-r.
// Callers only use it for points already known to be collinear with p-r.
func onSegment(p, q, r Point) bool {
	return q.X <= max(p.X, r.X) && q.X >= min(p.X, r.X) &&
		q.Y <= max(p.Y, r.Y) && q.Y >= min(p.Y, r.Y)
}

// SegmentsIntersect reports whether segment p1-p2 intersects segment p3-p4,
// including touching endpoints and collinear overlap.
func SegmentsIntersect(p1, p2, p3, p4 Point) bool {
	o1 := orientation(p1, p2, p3)
	o2 := orientation(p1, p2, p4)
	o3 := orientation(p3, p4, p1)
	o4 := orientation(p3, p4, p2)

	if o1 != o2 && o3 != o4 {
		return true
	}

	return (o1 == 0 && onSegment(p1, p3, p2)) ||
		(o2 == 0 && onSegment(p1, p4, p2)) ||
		(o3 == 0 && onSegment(p3, p1, p4)) ||
		(o4 == 0 && onSegment(p3, p2, p4))
}

type segment struct {
	edge   graph.Edge
	p1, p2 Point
}

// segments resolves the endpoints of every active edge. Edges with an unknown
// endpoint are dropped.
func segments(g graph.Graph, disabled graph.EdgeSet) []segment {
	pos := make(map[string]Point, len(g.Nodes))
	for _, n := range g.Nodes {
		if _, dup := pos[n.ID]; !dup {
			pos[n.ID] = Point{n.X, n.Y}
		}
	}

	out := make([]segment, 0, len(g.Edges))
	for _, e := range g.Edges {
		if disabled.Has(e.ID) {
			continue
		}
		p1, ok1 := pos[e.Source]
		p2, ok2 := pos[e.Target]
		if ok1 && ok2 {
			out = append(out, segment{edge: e, p1: p1, p2: p2})
		}
	}
	return out
}

// CountCrossings returns the number of unordered pairs of active edges that
// share no endpoint and whose segments intersect in the current layout.
//
// The scan is O(E²), which is fine for the tens of edges a network editor
// produces and is what the layout optimizer evaluates on every move.
func CountCrossings(g graph.Graph, disabled graph.EdgeSet) int {
	segs := segments(g, disabled)
	crossings := 0
	for i := 0; i < len(segs); i++ {
		for j := i + 1; j < len(segs); j++ {
			a, b := segs[i], segs[j]
			if a.edge.SharesEndpoint(b.edge) {
				continue
			}
			if SegmentsIntersect(a.p1, a.p2, b.p1, b.p2) {
				crossings++
			}
		}
	}
	return crossings
}

// Crossing identifies one pair of intersecting edges.
type Crossing struct {
	A string `json:"a"`
	B string `json:"b"`
}

// Crossings lists the intersecting edge pairs counted by [CountCrossings],
// in edge order.
func Crossings(g graph.Graph, disabled graph.EdgeSet) []Crossing {
	segs := segments(g, disabled)
	var out []Crossing
	for i := 0; i < len(segs); i++ {
		for j := i + 1; j < len(segs); j++ {
			a, b := segs[i], segs[j]
			if !a.edge.SharesEndpoint(b.edge) && SegmentsIntersect(a.p1, a.p2, b.p1, b.p2) {
				out = append(out, Crossing{A: a.edge.ID, B: b.edge.ID})
			}
		}
	}
	return out
}

// CheckPlanarity applies the necessary-condition heuristic:
//
//   - at most 4 nodes: planar
//   - more than 3V-6 active edges: not planar
//   - otherwise planar, noting whether the current drawing has crossings
func CheckPlanarity(g graph.Graph, disabled graph.EdgeSet) Info {
	v := len(g.Nodes)
	if v <= smallGraphMaxNodes {
		return Info{IsPlanar: true, Message: MsgSmallGraph}
	}

	active := len(graph.ActiveEdges(g, disabled))
	if active > 3*v-6 {
		return Info{IsPlanar: false, Message: MsgTooDense}
	}

	if CountCrossings(g, disabled) == 0 {
		return Info{IsPlanar: true, Message: MsgAlreadyPlanar}
	}
	return Info{IsPlanar: true, Message: MsgBoundPassed}
}
