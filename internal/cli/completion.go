package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

const completionHelp = `Generate shell completion scripts for spqrnet.

Bundled network names (city-roads, power-grid, ...) complete wherever a
graph file is expected.

Bash:
  $ source <(spqrnet completion bash)
  # Persist (Linux):
  $ spqrnet completion bash > /etc/bash_completion.d/spqrnet

Zsh:
  $ spqrnet completion zsh > "${fpath[1]}/_spqrnet"

Fish:
  $ spqrnet completion fish > ~/.config/fish/completions/spqrnet.fish

PowerShell:
  PS> spqrnet completion powershell | Out-String | Invoke-Expression
`

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		Long:                  strings.TrimSpace(completionHelp),
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
