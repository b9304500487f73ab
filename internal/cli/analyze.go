package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/graph"
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/pipeline"
)

// analyzeCommand creates the analyze command.
func (c *CLI) analyzeCommand() *cobra.Command {
	var (
		ff      failureFlags
		asJSON  bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <graph>",
		Short: "Find bridges, articulation points and the redundancy score",
		Long: `Analyze reports the single points of failure of a network: bridges (links
whose loss disconnects it) and articulation points (nodes whose loss does),
a 0-100 redundancy score, a planarity estimate and the number of crossing
links in the current layout.`,
		Example: `  spqrnet analyze city-roads
  spqrnet analyze grid.yaml --disable e3,e7 --json`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeNetworks,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args[0])
			if err != nil {
				return err
			}
			disabled, err := ff.disabled()
			if err != nil {
				return err
			}

			runner, err := c.newRunner(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer runner.Close()

			opts := c.baseOptions()
			opts.Disabled = disabled
			opts.Strict = ff.strict
			opts.Refresh = refresh

			prog := newProgress(loggerFromContext(cmd.Context()))
			report, err := runner.Analyze(cmd.Context(), g, opts)
			if err != nil {
				return err
			}
			prog.done("Analyzed "+args[0], "bridges", len(report.Result.Bridges), "articulation_points", len(report.Result.ArticulationPoints))

			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, report)
			}
			printAnalysis(out, g, report)
			return nil
		},
	}

	ff.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even when a cached result exists")
	return cmd
}

func printAnalysis(w io.Writer, g graph.Graph, r *pipeline.AnalysisReport) {
	res := r.Result
	fmt.Fprintln(w, StyleTitle.Render("Network analysis"))
	printStats(w, g.NodeCount(), g.EdgeCount(), r.Stats.Disabled, r.CacheHit)
	fmt.Fprintln(w)

	score := StyleSuccess
	if res.RedundancyScore < 50 {
		score = StyleCritical
	}
	printKeyValue(w, "Redundancy", score.Render(strconv.Itoa(res.RedundancyScore)+"/100"))
	printKeyValue(w, "Connected", fmt.Sprintf("%t (%d components)", res.Connected, res.Components))
	printKeyValue(w, "Planarity", res.Planarity.Message)
	printKeyValue(w, "Crossings", strconv.Itoa(res.CrossingCount))
	for _, c := range res.Crossings {
		printDetail(w, "%s crosses %s", c.A, c.B)
	}
	fmt.Fprintln(w)

	if len(res.Bridges) == 0 && len(res.ArticulationPoints) == 0 {
		printSuccess(w, "No single point of failure")
		return
	}

	var rows [][]string
	for _, e := range res.Bridges {
		rows = append(rows, []string{"bridge", e.ID, nodeLabel(g, e.Source) + " " + iconArrow + " " + nodeLabel(g, e.Target)})
	}
	for _, n := range res.ArticulationPoints {
		rows = append(rows, []string{"articulation", n.ID, n.DisplayLabel()})
	}
	fmt.Fprintln(w, renderTable([]string{"Kind", "ID", "Where"}, rows))
	printWarning(w, "%d bridges, %d articulation points", len(res.Bridges), len(res.ArticulationPoints))
}

func nodeLabel(g graph.Graph, id string) string {
	if n, ok := g.Node(id); ok {
		return n.DisplayLabel()
	}
	return id
}
