package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	errs "github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/errors"
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/pipeline"
)

// pathCommand creates the path command.
func (c *CLI) pathCommand() *cobra.Command {
	var (
		ff       failureFlags
		all      bool
		maxPaths int
		avoid    string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "path <graph> <from> <to>",
		Short: "Find routes between two nodes under simulated failures",
		Long: `Path finds the shortest route between two nodes over the active links.

With --all it lists up to --max simple routes, shortest first. With --avoid
it lists up to three alternative routes that do not use the given links,
which is the question "how else can traffic get there if these fail?".`,
		Example: `  spqrnet path city-roads entry dest
  spqrnet path city-roads entry dest --all --max 10
  spqrnet path city-roads entry dest --avoid e9,e10`,
		Args:              cobra.ExactArgs(3),
		ValidArgsFunction: completeNetworks,
		RunE: func(cmd *cobra.Command, args []string) error {
			if all && avoid != "" {
				return errs.New(errs.ErrCodeInvalidInput, "--all and --avoid are mutually exclusive")
			}
			g, err := loadGraph(args[0])
			if err != nil {
				return err
			}
			disabled, err := ff.disabled()
			if err != nil {
				return err
			}
			avoided, err := errs.ParseIDList(avoid)
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
			switch {
			case all:
				opts.Mode = pipeline.PathAll
			case avoid != "":
				opts.Mode = pipeline.PathAlternatives
				opts.Avoid = avoided
			default:
				opts.Mode = pipeline.PathShortest
			}
			if cmd.Flags().Changed("max") {
				opts.MaxPaths = maxPaths
			}

			report, err := runner.Paths(cmd.Context(), g, args[1], args[2], opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, report)
			}
			printPaths(out, report)
			return nil
		},
	}

	ff.register(cmd)
	cmd.Flags().BoolVar(&all, "all", false, "list all simple routes, shortest first")
	cmd.Flags().IntVar(&maxPaths, "max", 0, "maximum number of routes with --all (default from config, 5)")
	cmd.Flags().StringVar(&avoid, "avoid", "", "comma-separated edge IDs alternative routes must not use")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}

func printPaths(w io.Writer, r *pipeline.PathReport) {
	fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("Routes %s %s %s", r.From, iconArrow, r.To)))
	printDetail(w, "mode: %s", r.Mode)
	fmt.Fprintln(w)

	if !r.Connected {
		printError(w, "%s and %s are disconnected", r.From, r.To)
		return
	}
	if len(r.Paths) == 0 {
		printWarning(w, "no route avoids the given links")
		return
	}

	rows := make([][]string, len(r.Paths))
	for i, p := range r.Paths {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(p.Distance),
			strings.Join(p.Nodes, " "+iconArrow+" "),
		}
	}
	fmt.Fprintln(w, renderTable([]string{"#", "Hops", "Route"}, rows))
}

// statsCommand creates the stats command.
func (c *CLI) statsCommand() *cobra.Command {
	var (
		ff     failureFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "stats <graph>",
		Short: "Count reachable node pairs and the average route length",
		Args:  cobra.ExactArgs(1),
		Example: `  spqrnet stats railway
  spqrnet stats railway --disable re2`,
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

			report, err := runner.Stats(cmd.Context(), g, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, report)
			}
			fmt.Fprintln(out, StyleTitle.Render("Reachability"))
			printStats(out, report.Stats.Nodes, report.Stats.Edges, report.Stats.Disabled, false)
			fmt.Fprintln(out)
			printKeyValue(out, "Connected", strconv.Itoa(report.Paths.ConnectedPairs)+" pairs")
			printKeyValue(out, "Disconnected", strconv.Itoa(report.Paths.DisconnectedPairs)+" pairs")
			printKeyValue(out, "Avg. hops", strconv.FormatFloat(report.Paths.AveragePathLength, 'f', 2, 64))
			return nil
		},
	}

	ff.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}
