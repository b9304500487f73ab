// Package cli implements the spqrnet command-line interface.
//
// Commands read a network file (JSON, YAML or TOML, chosen by extension) or
// a bundled example network, run it through a cached [pipeline.Runner] and
// print the result with lipgloss styling or as JSON.
//
// # Commands
//
//   - analyze: bridges, articulation points, redundancy, planarity, crossings
//   - decompose: series/parallel/rigid decomposition tree
//   - layout: force-directed layout with crossing reduction
//   - path, stats: routing under simulated failures
//   - render: DOT, SVG or PNG of the network or its decomposition tree
//   - verify: summary table over several networks
//   - simulate: interactive failure simulator
//   - serve: HTTP API with Prometheus metrics
//   - cache: manage the result cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
//
// [pipeline.Runner]: github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/pipeline.Runner
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs completion of an operation with the elapsed duration.
// It is not safe for concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg and the elapsed time, e.g. "Analyzed ring.json (12ms)".
// Extra key/value pairs are passed through to the logger.
func (p *progress) done(msg string, keyvals ...any) {
	keyvals = append(keyvals, "elapsed", time.Since(p.start).Round(time.Millisecond))
	p.logger.Info(msg, keyvals...)
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() when
// none is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
