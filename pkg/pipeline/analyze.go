package pipeline

import (
	"context"
	"fmt"

	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/analysis"
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/cache"
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/graph"
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/spqr"
)

// AnalysisReport is the result of [Runner.Analyze].
type AnalysisReport struct {
	RunID     string          `json:"run_id"`
	GraphHash string          `json:"graph_hash"`
	Result    analysis.Result `json:"result"`
	Stats     Stats           `json:"stats"`
	CacheHit  bool            `json:"cache_hit"`
}

// DecompositionReport is the result of [Runner.Decompose].
type DecompositionReport struct {
	RunID     string     `json:"run_id"`
	GraphHash string     `json:"graph_hash"`
	Tree      *spqr.Tree `json:"tree"`
	Counts    spqr.Stats `json:"counts"`
	Stats     Stats      `json:"stats"`
	CacheHit  bool       `json:"cache_hit"`
}

// AnalyzeWithCacheInfo runs the connectivity, redundancy and planarity
// analyses and reports whether the result was cached.
func (r *Runner) AnalyzeWithCacheInfo(ctx context.Context, g graph.Graph, opts Options) (analysis.Result, bool, error) {
	res, hit, _, err := r.analyze(ctx, g, &opts)
	return res, hit, err
}

func (r *Runner) analyze(ctx context.Context, g graph.Graph, opts *Options) (analysis.Result, bool, string, error) {
	hash, err := r.prepare(g, opts)
	if err != nil {
		return analysis.Result{}, false, "", err
	}
	key := r.Keyer.AnalysisKey(hash, opts.AnalysisKeyOpts())
	res, hit, err := cached(ctx, r, kindAnalysis, key, r.ttl(cache.TTLAnalysis), opts.Refresh, func() (analysis.Result, error) {
		return analysis.Analyze(g, opts.DisabledSet()), nil
	})
	return res, hit, hash, err
}

// Analyze runs the headline analysis of g.
func (r *Runner) Analyze(ctx context.Context, g graph.Graph, opts Options) (*AnalysisReport, error) {
	done := track(ctx, "analyze", g)
	res, hit, hash, err := r.analyze(ctx, g, &opts)
	d := done(err)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	r.Logger.Info("analyzed graph",
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"bridges", len(res.Bridges),
		"articulation_points", len(res.ArticulationPoints),
		"score", res.RedundancyScore,
		"cached", hit,
		"duration", d)

	return &AnalysisReport{
		RunID:     newRunID(),
		GraphHash: hash,
		Result:    res,
		Stats:     newStats(g, &opts, d),
		CacheHit:  hit,
	}, nil
}

// DecomposeWithCacheInfo builds the decomposition tree and reports whether it
// was cached.
func (r *Runner) DecomposeWithCacheInfo(ctx context.Context, g graph.Graph, opts Options) (*spqr.Tree, bool, error) {
	tree, hit, _, err := r.decompose(ctx, g, &opts)
	return tree, hit, err
}

func (r *Runner) decompose(ctx context.Context, g graph.Graph, opts *Options) (*spqr.Tree, bool, string, error) {
	hash, err := r.prepare(g, opts)
	if err != nil {
		return nil, false, "", err
	}
	key := r.Keyer.DecompositionKey(hash, opts.AnalysisKeyOpts())
	tree, hit, err := cached(ctx, r, kindSPQR, key, r.ttl(cache.TTLDecomposition), opts.Refresh, func() (*spqr.Tree, error) {
		return spqr.Decompose(g, opts.DisabledSet()), nil
	})
	return tree, hit, hash, err
}

// Decompose builds the S/P/R decomposition tree of g.
func (r *Runner) Decompose(ctx context.Context, g graph.Graph, opts Options) (*DecompositionReport, error) {
	done := track(ctx, "decompose", g)
	tree, hit, hash, err := r.decompose(ctx, g, &opts)
	d := done(err)
	if err != nil {
		return nil, fmt.Errorf("decompose: %w", err)
	}
	counts := tree.Stats()

	r.Logger.Info("decomposed graph",
		"tree_nodes", counts.Total,
		"series", counts.S,
		"parallel", counts.P,
		"rigid", counts.R,
		"cached", hit,
		"duration", d)

	return &DecompositionReport{
		RunID:     newRunID(),
		GraphHash: hash,
		Tree:      tree,
		Counts:    counts,
		Stats:     newStats(g, &opts, d),
		CacheHit:  hit,
	}, nil
}
