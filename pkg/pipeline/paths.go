package pipeline

import (
	"context"
	"fmt"

	errs "github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/errors"
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/graph"
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/pathfind"
)

// PathReport is the result of [Runner.Paths]. Paths is never nil; it is empty
// when the endpoints are disconnected.
type PathReport struct {
	RunID     string          `json:"run_id"`
	From      string          `json:"from"`
	To        string          `json:"to"`
	Mode      PathMode        `json:"mode"`
	Connected bool            `json:"connected"`
	Paths     []pathfind.Path `json:"paths"`
	Stats     Stats           `json:"stats"`
}

// StatsReport is the result of [Runner.Stats].
type StatsReport struct {
	RunID string             `json:"run_id"`
	Paths pathfind.PathStats `json:"paths"`
	Stats Stats              `json:"stats"`
}

// Paths finds routes from one node to another according to opts.Mode:
// the shortest path, up to opts.MaxPaths simple paths, or up to
// DefaultAlternatives routes avoiding opts.Avoid. Both endpoints must exist.
func (r *Runner) Paths(ctx context.Context, g graph.Graph, from, to string, opts Options) (*PathReport, error) {
	done := track(ctx, "paths", g)
	rep, err := r.paths(g, from, to, &opts)
	d := done(err)
	if err != nil {
		return nil, fmt.Errorf("paths: %w", err)
	}
	rep.Stats = newStats(g, &opts, d)

	r.Logger.Info("found paths",
		"from", from,
		"to", to,
		"mode", opts.Mode,
		"count", len(rep.Paths),
		"duration", d)
	return rep, nil
}

func (r *Runner) paths(g graph.Graph, from, to string, opts *Options) (*PathReport, error) {
	if _, err := r.prepare(g, opts); err != nil {
		return nil, err
	}
	if err := errs.RequireNode(g, from); err != nil {
		return nil, err
	}
	if err := errs.RequireNode(g, to); err != nil {
		return nil, err
	}

	disabled := opts.DisabledSet()
	rep := &PathReport{RunID: newRunID(), From: from, To: to, Mode: opts.Mode, Paths: []pathfind.Path{}}
	rep.Connected = pathfind.Exists(g, from, to, disabled)

	switch opts.Mode {
	case PathAll:
		if found := pathfind.AllPaths(g, from, to, disabled, opts.MaxPaths); found != nil {
			rep.Paths = found
		}
	case PathAlternatives:
		if found := pathfind.AlternativePaths(g, from, to, graph.NewEdgeSet(opts.Avoid...), disabled); found != nil {
			rep.Paths = found
		}
	default:
		if p, ok := pathfind.ShortestPath(g, from, to, disabled); ok {
			rep.Paths = append(rep.Paths, p)
		}
	}
	return rep, nil
}

// Stats computes all-pairs reachability statistics.
func (r *Runner) Stats(ctx context.Context, g graph.Graph, opts Options) (*StatsReport, error) {
	done := track(ctx, "stats", g)
	_, err := r.prepare(g, &opts)
	if err != nil {
		done(err)
		return nil, fmt.Errorf("stats: %w", err)
	}
	st := pathfind.Stats(g, opts.DisabledSet())
	d := done(nil)

	r.Logger.Info("computed path statistics",
		"connected_pairs", st.ConnectedPairs,
		"disconnected_pairs", st.DisconnectedPairs,
		"average_length", st.AveragePathLength,
		"duration", d)

	return &StatsReport{RunID: newRunID(), Paths: st, Stats: newStats(g, &opts, d)}, nil
}
