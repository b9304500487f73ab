package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/graph"
)

// AnalyzeMany analyzes graphs concurrently with at most workers goroutines
// (DefaultWorkers when workers <= 0). Reports keep the input order. A failed
// graph leaves a nil report and contributes to the joined error.
func (r *Runner) AnalyzeMany(ctx context.Context, graphs []graph.Graph, opts Options, workers int) ([]*AnalysisReport, error) {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	reports := make([]*AnalysisReport, len(graphs))
	failures := make([]error, len(graphs))

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, g := range graphs {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			failures[i] = ctx.Err()
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			if err := ctx.Err(); err != nil {
				failures[i] = err
				return
			}
			rep, err := r.Analyze(ctx, g, opts)
			if err != nil {
				failures[i] = fmt.Errorf("graph #%d: %w", i, err)
				return
			}
			reports[i] = rep
		}()
	}
	wg.Wait()

	r.Logger.Debug("analyzed graphs", "count", len(graphs), "workers", workers)
	return reports, errors.Join(failures...)
}
