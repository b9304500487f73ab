package cli

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/examples/networks"
	errs "github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/errors"
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/graph"
)

// loadGraph reads the network named by arg: a graph file when one exists at
// that path, otherwise a bundled example network of that name.
func loadGraph(arg string) (graph.Graph, error) {
	if _, err := os.Stat(arg); err != nil {
		if errors.Is(err, fs.ErrNotExist) && networks.Has(arg) {
			return networks.Load(arg)
		}
		return graph.Graph{}, errs.Wrap(errs.ErrCodeFileNotFound, err, "no graph file or bundled network named %q", arg)
	}
	g, err := graph.ReadFile(arg)
	if err != nil {
		if errors.Is(err, graph.ErrUnsupportedFormat) {
			return graph.Graph{}, errs.Wrap(errs.ErrCodeInvalidFormat, err, "%s: use .json, .yaml, .yml or .toml", arg)
		}
		return graph.Graph{}, errs.Wrap(errs.ErrCodeInvalidGraph, err, "read %s", arg)
	}
	return g, nil
}

// completeNetworks offers bundled network names alongside file completion.
func completeNetworks(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return networks.Names(), cobra.ShellCompDirectiveDefault
}

// failureFlags holds the --disable and --strict flags shared by commands that
// analyze a network under simulated failures.
type failureFlags struct {
	disable string
	strict  bool
}

func (f *failureFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.disable, "disable", "", "comma-separated edge IDs to treat as failed")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "reject graphs with duplicate IDs or dangling edges")
}

func (f *failureFlags) disabled() ([]string, error) {
	return errs.ParseIDList(f.disable)
}
