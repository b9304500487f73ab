package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// simulateCommand creates the simulate command.
func (c *CLI) simulateCommand() *cobra.Command {
	var ff failureFlags

	cmd := &cobra.Command{
		Use:   "simulate <graph>",
		Short: "Fail and restore links interactively and watch resilience change",
		Long: `Simulate opens a terminal UI listing every link of the network. Failing a
link re-runs the analysis and decomposition on the remaining links, so new
bridges, cut nodes and the redundancy score update as failures accumulate.`,
		Example: `  spqrnet simulate power-grid
  spqrnet simulate grid.json --disable e1`,
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

			// The TUI owns the terminal; keep pipeline logs out of it.
			runner.Logger = runner.Logger.WithPrefix("simulate")
			runner.Logger.SetLevel(LogWarn)

			m := NewSimulateModel(cmd.Context(), runner, g, opts)
			final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return fmt.Errorf("run simulator: %w", err)
			}
			if fm, ok := final.(SimulateModel); ok && len(fm.Disabled) > 0 {
				printInfo(cmd.OutOrStdout(), "Failed links: %s", joinOrNone(fm.Disabled.IDs()))
			}
			return nil
		},
	}

	ff.register(cmd)
	return cmd
}
