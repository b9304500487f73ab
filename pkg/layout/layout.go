package layout

import (
	"math"
	"math/rand/v2"

	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/graph"
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/planarity"
)

// minDistance bounds node distances from below before dividing by them.
const minDistance = 0.1

// Apply runs the force-directed pass followed by crossing reduction and
// returns the laid-out copy of g.
func Apply(g graph.Graph, opts Options) graph.Graph {
	return ReduceCrossings(ForceDirected(g, opts), opts)
}

// ForceDirected returns a copy of g with nodes spread by repulsion between
// every pair and attraction along every edge. The displacement of a node in
// iteration i is capped at t0*(1 - i/iterations) with t0 = Width/10, positions
// are clamped to the canvas after each iteration, and the final layout is
// centred on the canvas with coordinates rounded to whole units.
func ForceDirected(g graph.Graph, opts Options) graph.Graph {
	opts = opts.withDefaults()
	out := g.Clone()
	n := len(out.Nodes)
	if n == 0 {
		return out
	}

	nodes := out.Nodes
	k := math.Sqrt(opts.Width * opts.Height / float64(n))
	t0 := opts.Width / 10
	edges := endpoints(out)

	dx := make([]float64, n)
	dy := make([]float64, n)
	for iter := range opts.ForceIterations {
		clear(dx)
		clear(dy)

		for i := range nodes {
			for j := range nodes {
				if i == j {
					continue
				}
				ux, uy := nodes[i].X-nodes[j].X, nodes[i].Y-nodes[j].Y
				d := max(minDistance, math.Hypot(ux, uy))
				f := k * k / d
				dx[i] += ux / d * f
				dy[i] += uy / d * f
			}
		}

		for _, e := range edges {
			ux, uy := nodes[e.u].X-nodes[e.v].X, nodes[e.u].Y-nodes[e.v].Y
			d := max(minDistance, math.Hypot(ux, uy))
			f := d * d / k
			dx[e.u] -= ux / d * f
			dy[e.u] -= uy / d * f
			dx[e.v] += ux / d * f
			dy[e.v] += uy / d * f
		}

		temp := t0 * (1 - float64(iter)/float64(opts.ForceIterations))
		for i := range nodes {
			length := math.Hypot(dx[i], dy[i])
			if length == 0 {
				continue
			}
			step := min(length, temp)
			nodes[i].X = opts.clampX(nodes[i].X + dx[i]/length*step)
			nodes[i].Y = opts.clampY(nodes[i].Y + dy[i]/length*step)
		}
	}

	recenter(nodes, opts)
	return out
}

type endpointPair struct{ u, v int }

// endpoints resolves every edge to node positions in g.Nodes, dropping edges
// with an unknown endpoint. With repeated IDs the first node wins.
func endpoints(g graph.Graph) []endpointPair {
	pos := make(map[string]int, len(g.Nodes))
	for i, n := range g.Nodes {
		if _, dup := pos[n.ID]; !dup {
			pos[n.ID] = i
		}
	}
	out := make([]endpointPair, 0, len(g.Edges))
	for _, e := range g.Edges {
		u, okU := pos[e.Source]
		v, okV := pos[e.Target]
		if okU && okV {
			out = append(out, endpointPair{u, v})
		}
	}
	return out
}

// recenter moves the bounding box centre of nodes to the canvas centre and
// rounds every coordinate.
func recenter(nodes []graph.Node, opts Options) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, n := range nodes {
		minX, maxX = min(minX, n.X), max(maxX, n.X)
		minY, maxY = min(minY, n.Y), max(maxY, n.Y)
	}
	offX := opts.Width/2 - (minX+maxX)/2
	offY := opts.Height/2 - (minY+maxY)/2
	for i := range nodes {
		nodes[i].X = math.Round(nodes[i].X + offX)
		nodes[i].Y = math.Round(nodes[i].Y + offY)
	}
}

// ReduceCrossings returns a copy of g after simulated annealing on the edge
// crossing count. Each step jitters one random node by up to ±temp/2 on each
// axis. A move that lowers the count is kept. Any other move is kept with
// probability exp((current - next)/temp) and otherwise undone; a kept move
// becomes the new current count. The temperature is multiplied by Cooling
// after every step and the search stops once no crossings remain.
func ReduceCrossings(g graph.Graph, opts Options) graph.Graph {
	opts = opts.withDefaults()
	out := g.Clone()
	n := len(out.Nodes)

	current := planarity.CountCrossings(out, nil)
	if current == 0 || n == 0 {
		return out
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0xdeadbeef))
	temp := opts.StartTemp
	for range opts.AnnealIterations {
		i := rng.IntN(n)
		oldX, oldY := out.Nodes[i].X, out.Nodes[i].Y

		out.Nodes[i].X = opts.clampX(oldX + (rng.Float64()-0.5)*temp)
		out.Nodes[i].Y = opts.clampY(oldY + (rng.Float64()-0.5)*temp)

		next := planarity.CountCrossings(out, nil)
		switch {
		case next < current:
			current = next
		case rng.Float64() > math.Exp(float64(current-next)/temp):
			out.Nodes[i].X, out.Nodes[i].Y = oldX, oldY
		default:
			current = next
		}

		temp *= opts.Cooling
		if current == 0 {
			break
		}
	}
	return out
}
