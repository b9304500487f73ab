package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/cache"
	errs "github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/errors"
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/graph"
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/observability"
)

// Cache product kinds, used as hook labels.
const (
	kindAnalysis = "analysis"
	kindSPQR     = "spqr"
	kindLayout   = "layout"
	kindArtifact = "artifact"
)

// Runner executes pipeline operations with caching.
//
// The Runner is stateless except for the cache and logger, so one Runner can
// serve many goroutines with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL, when positive, replaces the per-product cache lifetimes.
	TTL time.Duration
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer uses
// the default keyer and a nil logger uses the default logger.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// prepare validates options and graph and returns the graph hash used in
// cache keys.
func (r *Runner) prepare(g graph.Graph, opts *Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}
	check := errs.CheckGraphLimits
	if opts.Strict {
		check = errs.ValidateGraph
	}
	if err := check(g); err != nil {
		return "", err
	}
	h, err := cache.HashGraph(g)
	if err != nil {
		return "", errs.Wrap(errs.ErrCodeInternal, err, "hash graph")
	}
	return h, nil
}

func (r *Runner) ttl(def time.Duration) time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return def
}

// track emits the start hook and returns a function that emits the
// completion hook.
func track(ctx context.Context, op string, g graph.Graph) func(error) time.Duration {
	start := time.Now()
	observability.Pipeline().OnOperationStart(ctx, op, g.NodeCount(), g.EdgeCount())
	return func(err error) time.Duration {
		d := time.Since(start)
		observability.Pipeline().OnOperationComplete(ctx, op, d, err)
		return d
	}
}

// cached returns the JSON-decoded value under key, or computes, stores and
// returns it. Cache failures are logged and never fail the operation.
func cached[T any](ctx context.Context, r *Runner, kind, key string, ttl time.Duration, refresh bool, compute func() (T, error)) (T, bool, error) {
	if !refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		switch {
		case err != nil:
			r.Logger.Warn("cache read failed", "kind", kind, "err", err)
		case hit:
			var v T
			if err := json.Unmarshal(data, &v); err == nil {
				observability.Cache().OnCacheHit(ctx, kind)
				return v, true, nil
			}
			r.Logger.Debug("discarding undecodable cache entry", "kind", kind)
		}
		observability.Cache().OnCacheMiss(ctx, kind)
	}

	v, err := compute()
	if err != nil {
		return v, false, err
	}

	data, err := json.Marshal(v)
	if err != nil {
		r.Logger.Warn("cache encode failed", "kind", kind, "err", err)
		return v, false, nil
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "kind", kind, "err", err)
		return v, false, nil
	}
	observability.Cache().OnCacheSet(ctx, kind, len(data))
	return v, false, nil
}

func newRunID() string { return uuid.NewString() }
