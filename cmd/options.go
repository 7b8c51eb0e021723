package cmd

import (
	"github.com/spf13/cobra"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Print the list of global flags inherited by all commands",
	Long:  `Print the list of global command-line options (flags) that can be passed to any command.`,
	Run:   runOptions,
}

func init() {
	rootCmd.AddCommand(optionsCmd)
}

func runOptions(cmd *cobra.Command, _ []string) {
	cmd.Print(`The following options can be passed to any command:

    --fields='':
        Filter JSON output to the given comma-separated dot-paths
        (e.g. id,metadata.model). Implies --json

    --host='':
        Langfuse host URL (overrides the profile's host)

    --jq='':
        Filter JSON output with a jq expression. Implies --json.
        Requires jq on PATH

    --json=false:
        Output as JSON regardless of the terminal

    --log-level='':
        Log level (debug, info, warn, error) - overrides config file

    --profile='':
        The name of the profile to use (overrides current-profile)

    -q, --quiet=false:
        Suppress status messages; errors are still printed

    --timeout=1m0s:
        Timeout for API operations (e.g., 30s, 1m, 2m30s)
`)
}
