package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/kazuma-desu/lf/pkg/models"
	"github.com/kazuma-desu/lf/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print the version, commit, build date, Go version, and platform.",
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, _ []string) error {
	out := newOutputContext()
	if out.JSONMode() {
		return out.RenderJSON(models.Record{
			"version":   version.Version,
			"commit":    version.Commit,
			"buildDate": version.BuildDate,
			"goVersion": runtime.Version(),
			"platform":  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		})
	}

	cmd.Printf("lf version %s\n", version.Version)
	cmd.Printf("  commit:     %s\n", version.Commit)
	cmd.Printf("  built:      %s\n", version.BuildDate)
	cmd.Printf("  go version: %s\n", runtime.Version())
	cmd.Printf("  platform:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
	return nil
}
