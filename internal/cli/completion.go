package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for gateloom.

To load completions:

Bash:
  $ source <(gateloom completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ gateloom completion bash > /etc/bash_completion.d/gateloom
  # macOS:
  $ gateloom completion bash > $(brew --prefix)/etc/bash_completion.d/gateloom

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ gateloom completion zsh > "${fpath[1]}/_gateloom"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ gateloom completion fish | source

  # To load completions for each session, execute once:
  $ gateloom completion fish > ~/.config/fish/completions/gateloom.fish

PowerShell:
  PS> gateloom completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> gateloom completion powershell > gateloom.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}
