package cli

import (
	"github.com/spf13/cobra"

	"github.com/rg089/plotex/pkg/frame"
	"github.com/rg089/plotex/pkg/sizing"
	"github.com/rg089/plotex/pkg/style"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for plotex.

To load completions:

Bash:
  $ source <(plotex completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ plotex completion bash > /etc/bash_completion.d/plotex
  # macOS:
  $ plotex completion bash > $(brew --prefix)/etc/bash_completion.d/plotex

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ plotex completion zsh > "${fpath[1]}/_plotex"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ plotex completion fish | source

  # To load completions for each session, execute once:
  $ plotex completion fish > ~/.config/fish/completions/plotex.fish

PowerShell:
  PS> plotex completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> plotex completion powershell > plotex.ps1
  # and source this file from your PowerShell profile.
`,
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

	return cmd
}

// flagChoices lists the fixed values offered for flags during completion.
var flagChoices = map[string]func() []string{
	"publisher": sizing.Publishers,
	"theme":     style.Themes,
	"palette":   style.Palettes,
	"reduce":    frame.Reducers,
}

// registerFlagCompletions offers fixed choices for the flags of cmd that have them.
func registerFlagCompletions(cmd *cobra.Command) {
	for name, choices := range flagChoices {
		if cmd.Flags().Lookup(name) == nil {
			continue
		}
		_ = cmd.RegisterFlagCompletionFunc(name, cobra.FixedCompletions(choices(), cobra.ShellCompDirectiveNoFileComp))
	}
}
