// Package pipeline runs the network analyses for the CLI and the HTTP API.
//
// The analysis packages are pure functions over a graph. This package adds
// the application concerns around them: option defaults and validation,
// result caching, structured logging, observability hooks and run IDs. Both
// entry points go through a [Runner] so they behave identically.
//
// # Operations
//
//   - [Runner.Analyze]: bridges, articulation points, redundancy, planarity
//   - [Runner.Decompose]: S/P/R decomposition tree
//   - [Runner.Layout]: force-directed layout plus crossing reduction
//   - [Runner.Paths]: shortest, all or alternative routes between two nodes
//   - [Runner.Stats]: all-pairs reachability statistics
//   - [Runner.Render]: DOT, SVG or PNG of the network or its tree
//   - [Runner.AnalyzeMany]: several graphs analyzed concurrently
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	defer runner.Close()
//
//	report, err := runner.Analyze(ctx, g, pipeline.Options{Disabled: []string{"e7"}})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(report.Result.RedundancyScore)
//
// Every *WithCacheInfo variant also reports whether the result came from the
// cache.
package pipeline

import (
	"slices"
	"time"

	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/cache"
	errs "github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/errors"
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/graph"
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/layout"
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/pathfind"
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultWidth is the default canvas width.
	DefaultWidth = float64(layout.DefaultWidth)

	// DefaultHeight is the default canvas height.
	DefaultHeight = float64(layout.DefaultHeight)

	// DefaultSeed seeds crossing reduction when no seed is given.
	DefaultSeed = uint64(layout.DefaultSeed)

	// DefaultMaxPaths caps path enumeration.
	DefaultMaxPaths = 5

	// DefaultAlternatives is the number of alternative routes returned.
	DefaultAlternatives = pathfind.MaxAlternatives

	// DefaultFormat is the default render format.
	DefaultFormat = render.FormatSVG

	// DefaultWorkers bounds AnalyzeMany concurrency.
	DefaultWorkers = 4

	// MaxPathsLimit is the largest accepted MaxPaths.
	MaxPathsLimit = 1000
)

// PathMode selects what [Runner.Paths] computes.
type PathMode string

const (
	PathShortest     PathMode = "shortest"
	PathAll          PathMode = "all"
	PathAlternatives PathMode = "alternatives"
)

// =============================================================================
// Options
// =============================================================================

// Options configures one pipeline operation. Fields irrelevant to an
// operation are ignored by it. The struct doubles as the JSON body of API
// requests.
type Options struct {
	// Disabled lists edge IDs treated as failed. Unknown IDs are ignored.
	Disabled []string `json:"disabled,omitempty"`

	// Strict rejects graphs with duplicate IDs or dangling edges instead of
	// analyzing what is usable.
	Strict bool `json:"strict,omitempty"`

	// Refresh bypasses cache reads; results are still written.
	Refresh bool `json:"refresh,omitempty"`

	// Layout
	Width            float64 `json:"width,omitempty"`
	Height           float64 `json:"height,omitempty"`
	ForceIterations  int     `json:"force_iterations,omitempty"`
	AnnealIterations int     `json:"anneal_iterations,omitempty"`
	Seed             uint64  `json:"seed,omitempty"`

	// Paths
	Mode     PathMode `json:"mode,omitempty"`
	MaxPaths int      `json:"max_paths,omitempty"`
	Avoid    []string `json:"avoid,omitempty"`

	// Render
	Format   render.Format `json:"format,omitempty"`
	Tree     bool          `json:"tree,omitempty"`
	Pinned   bool          `json:"pinned,omitempty"`
	Detailed bool          `json:"detailed,omitempty"`

	defaulted bool
}

// SetDefaults fills zero fields. It is idempotent.
func (o *Options) SetDefaults() {
	if o.defaulted {
		return
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.ForceIterations == 0 {
		o.ForceIterations = layout.DefaultForceIterations
	}
	if o.AnnealIterations == 0 {
		o.AnnealIterations = layout.DefaultAnnealIterations
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Mode == "" {
		o.Mode = PathShortest
	}
	if o.MaxPaths == 0 {
		o.MaxPaths = DefaultMaxPaths
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	o.Disabled = normalizeIDs(o.Disabled)
	o.Avoid = normalizeIDs(o.Avoid)
	o.defaulted = true
}

// Validate applies defaults and checks every field, returning INVALID_INPUT
// or INVALID_FORMAT errors.
func (o *Options) Validate() error {
	o.SetDefaults()
	if o.Width < 0 || o.Height < 0 {
		return errs.New(errs.ErrCodeInvalidInput, "canvas size must be positive, got %gx%g", o.Width, o.Height)
	}
	if o.ForceIterations < 0 || o.AnnealIterations < 0 {
		return errs.New(errs.ErrCodeInvalidInput, "iteration counts cannot be negative")
	}
	if o.MaxPaths < 0 || o.MaxPaths > MaxPathsLimit {
		return errs.New(errs.ErrCodeInvalidInput, "max_paths must be between 1 and %d, got %d", MaxPathsLimit, o.MaxPaths)
	}
	switch o.Mode {
	case PathShortest, PathAll, PathAlternatives:
	default:
		return errs.New(errs.ErrCodeInvalidInput, "invalid path mode %q (must be one of: shortest, all, alternatives)", o.Mode)
	}
	if _, err := render.ParseFormat(string(o.Format)); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidFormat, err, "invalid render format")
	}
	for _, id := range o.Disabled {
		if err := errs.ValidateID("edge", id); err != nil {
			return err
		}
	}
	for _, id := range o.Avoid {
		if err := errs.ValidateID("edge", id); err != nil {
			return err
		}
	}
	return nil
}

// DisabledSet returns Disabled as an edge set.
func (o *Options) DisabledSet() graph.EdgeSet { return graph.NewEdgeSet(o.Disabled...) }

// LayoutOptions converts to the layout package's options.
func (o *Options) LayoutOptions() layout.Options {
	return layout.Options{
		Width:            o.Width,
		Height:           o.Height,
		ForceIterations:  o.ForceIterations,
		AnnealIterations: o.AnnealIterations,
		Seed:             o.Seed,
	}
}

// AnalysisKeyOpts returns cache key options for analysis and decomposition.
func (o *Options) AnalysisKeyOpts() cache.AnalysisKeyOpts {
	return cache.AnalysisKeyOpts{Disabled: o.Disabled}
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Width:            o.Width,
		Height:           o.Height,
		ForceIterations:  o.ForceIterations,
		AnnealIterations: o.AnnealIterations,
		Seed:             o.Seed,
		Disabled:         o.Disabled,
	}
}

// ArtifactKeyOpts returns cache key options for rendering.
func (o *Options) ArtifactKeyOpts() cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{Format: string(o.Format), Tree: o.Tree, Disabled: o.Disabled}
	if o.Pinned {
		opts.Format += "+pinned"
	}
	if o.Detailed {
		opts.Format += "+detailed"
	}
	return opts
}

// normalizeIDs sorts and deduplicates ids so equivalent requests share cache
// keys.
func normalizeIDs(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	out := slices.Clone(ids)
	slices.Sort(out)
	return slices.Compact(out)
}

// =============================================================================
// Reports
// =============================================================================

// Stats describes the input and cost of one operation.
type Stats struct {
	Nodes    int           `json:"nodes"`
	Edges    int           `json:"edges"`
	Disabled int           `json:"disabled"`
	Duration time.Duration `json:"duration_ns"`
}

func newStats(g graph.Graph, o *Options, d time.Duration) Stats {
	return Stats{Nodes: g.NodeCount(), Edges: g.EdgeCount(), Disabled: len(o.Disabled), Duration: d}
}
