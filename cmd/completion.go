package cmd

import (
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/kazuma-desu/lf/pkg/config"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for lf.

To load completions:

Bash:
  # Linux:
  $ lf completion bash > /etc/bash_completion.d/lf

  # macOS (with Homebrew):
  $ lf completion bash > $(brew --prefix)/etc/bash_completion.d/lf

Zsh:
  # If shell completion is not already enabled, enable it by adding:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # Then load the lf completions:
  $ lf completion zsh > "${fpath[1]}/_lf"

Fish:
  $ lf completion fish > ~/.config/fish/completions/lf.fish

PowerShell:
  PS> lf completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE:                  runCompletion,
}

func init() {
	rootCmd.AddCommand(completionCmd)

	_ = rootCmd.RegisterFlagCompletionFunc("profile", completeProfileNames)
}

func runCompletion(cmd *cobra.Command, args []string) error {
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
}

func completeProfileNames(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	names := make([]string, 0, len(cfg.Profiles))
	for name := range cfg.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, cobra.ShellCompDirectiveNoFileComp
}
