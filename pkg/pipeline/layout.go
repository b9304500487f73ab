package pipeline

import (
	"context"
	"fmt"

	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/cache"
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/graph"
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/layout"
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/planarity"
)

// LayoutReport is the result of [Runner.Layout].
type LayoutReport struct {
	RunID           string      `json:"run_id"`
	GraphHash       string      `json:"graph_hash"`
	Graph           graph.Graph `json:"graph"`
	CrossingsBefore int         `json:"crossings_before"`
	CrossingsAfter  int         `json:"crossings_after"`
	Stats           Stats       `json:"stats"`
	CacheHit        bool        `json:"cache_hit"`
}

// position is the cached form of a layout: coordinates only, so derived flags
// on the input graph survive a cache hit.
type position struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// LayoutWithCacheInfo lays g out and reports whether the coordinates were
// cached. Disabled edges are ignored by the layout, which uses every edge.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, g graph.Graph, opts Options) (graph.Graph, bool, error) {
	out, hit, _, err := r.layout(ctx, g, &opts)
	return out, hit, err
}

func (r *Runner) layout(ctx context.Context, g graph.Graph, opts *Options) (graph.Graph, bool, string, error) {
	hash, err := r.prepare(g, opts)
	if err != nil {
		return graph.Graph{}, false, "", err
	}
	key := r.Keyer.LayoutKey(hash, opts.LayoutKeyOpts())
	pos, hit, err := cached(ctx, r, kindLayout, key, r.ttl(cache.TTLLayout), opts.Refresh, func() ([]position, error) {
		laid := layout.Apply(g, opts.LayoutOptions())
		out := make([]position, len(laid.Nodes))
		for i, n := range laid.Nodes {
			out[i] = position{ID: n.ID, X: n.X, Y: n.Y}
		}
		return out, nil
	})
	if err != nil {
		return graph.Graph{}, false, "", err
	}
	return applyPositions(g, pos), hit, hash, nil
}

// applyPositions copies coordinates onto a clone of g by node order, falling
// back to ID lookup if the orders disagree.
func applyPositions(g graph.Graph, pos []position) graph.Graph {
	out := g.Clone()
	byID := make(map[string]position, len(pos))
	for _, p := range pos {
		byID[p.ID] = p
	}
	for i := range out.Nodes {
		var p position
		var ok bool
		if i < len(pos) && pos[i].ID == out.Nodes[i].ID {
			p, ok = pos[i], true
		} else {
			p, ok = byID[out.Nodes[i].ID]
		}
		if ok {
			out.Nodes[i].X, out.Nodes[i].Y = p.X, p.Y
		}
	}
	return out
}

// Layout computes new coordinates for g and reports crossings before and
// after, counted on the active view.
func (r *Runner) Layout(ctx context.Context, g graph.Graph, opts Options) (*LayoutReport, error) {
	done := track(ctx, "layout", g)
	out, hit, hash, err := r.layout(ctx, g, &opts)
	d := done(err)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}

	disabled := opts.DisabledSet()
	before := planarity.CountCrossings(g, disabled)
	after := planarity.CountCrossings(out, disabled)

	r.Logger.Info("computed layout",
		"nodes", g.NodeCount(),
		"crossings_before", before,
		"crossings_after", after,
		"seed", opts.Seed,
		"cached", hit,
		"duration", d)

	return &LayoutReport{
		RunID:           newRunID(),
		GraphHash:       hash,
		Graph:           out,
		CrossingsBefore: before,
		CrossingsAfter:  after,
		Stats:           newStats(g, &opts, d),
		CacheHit:        hit,
	}, nil
}
