package cli

import (
	"github.com/spf13/cobra"

	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/cache"
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/observability"
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/server"
)

const (
	// metricsNamespace prefixes every exported Prometheus metric.
	metricsNamespace = "spqrnet"

	// serverCachePrefix keeps API results apart from CLI results in a shared cache.
	serverCachePrefix = "server:"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		noMetrics bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis pipeline as a JSON HTTP API",
		Long: `Serve exposes analyze, decompose, layout, paths, stats and render as
POST endpoints under /v1, plus /healthz and Prometheus metrics on /metrics.
The server shuts down gracefully on SIGINT or SIGTERM.`,
		Example: `  spqrnet serve --addr :8080
  curl -s localhost:8080/v1/analyze -d '{"graph": {"nodes": [], "edges": []}}'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(cmd.Context(), cache.NewScopedKeyer(nil, serverCachePrefix))
			if err != nil {
				return err
			}
			defer runner.Close()

			cfg := server.Config{
				Addr:   c.Config.ServerAddr,
				Runner: runner,
				Logger: c.Logger,
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if !noMetrics {
				collector := observability.NewCollector(metricsNamespace)
				observability.SetPipelineHooks(collector)
				observability.SetCacheHooks(collector)
				observability.SetHTTPHooks(collector)
				defer observability.Reset()
				cfg.Metrics = collector
			}

			return server.New(cfg).Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, "+server.DefaultAddr+")")
	cmd.Flags().BoolVar(&noMetrics, "no-metrics", false, "disable Prometheus metrics")
	return cmd
}
