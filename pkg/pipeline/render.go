package pipeline

import (
	"context"
	"fmt"

	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/analysis"
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/cache"
	errs "github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/errors"
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/graph"
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/render"
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/render/nodelink"
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/spqr"
)

// Artifact is a rendered diagram.
type Artifact struct {
	Format   render.Format
	Data     []byte
	CacheHit bool
}

// ContentType returns the MIME type of the artifact.
func (a *Artifact) ContentType() string { return a.Format.ContentType() }

// DOT builds the Graphviz source for g, or for its decomposition tree when
// opts.Tree is set. Networks are annotated with bridges and articulation
// points of the active view.
func DOT(g graph.Graph, opts Options) (string, nodelink.Engine) {
	opts.SetDefaults()
	disabled := opts.DisabledSet()
	nl := nodelink.Options{Pinned: opts.Pinned, Disabled: disabled, Detailed: opts.Detailed}
	if opts.Tree {
		return nodelink.TreeDOT(spqr.Decompose(g, disabled), nl), nodelink.EngineDot
	}
	annotated := analysis.Annotate(g, disabled)
	annotated.Edges = analysis.ClassifyEdges(annotated, disabled)
	return nodelink.GraphDOT(annotated, nl), nodelink.EngineNeato
}

// RenderWithCacheInfo renders g in opts.Format and reports whether the bytes
// were cached.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, g graph.Graph, opts Options) (*Artifact, error) {
	hash, err := r.prepare(g, &opts)
	if err != nil {
		return nil, err
	}
	key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts())
	data, hit, err := cached(ctx, r, kindArtifact, key, r.ttl(cache.TTLArtifact), opts.Refresh, func() ([]byte, error) {
		dot, engine := DOT(g, opts)
		out, err := nodelink.Render(ctx, dot, engine, opts.Format)
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInternal, err, "render %s", opts.Format)
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return &Artifact{Format: opts.Format, Data: data, CacheHit: hit}, nil
}

// Render draws g, or its decomposition tree, as DOT, SVG or PNG.
func (r *Runner) Render(ctx context.Context, g graph.Graph, opts Options) (*Artifact, error) {
	done := track(ctx, "render", g)
	art, err := r.RenderWithCacheInfo(ctx, g, opts)
	d := done(err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	r.Logger.Info("rendered diagram",
		"format", art.Format,
		"tree", opts.Tree,
		"bytes", len(art.Data),
		"cached", art.CacheHit,
		"duration", d)
	return art, nil
}
