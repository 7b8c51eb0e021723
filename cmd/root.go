package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kazuma-desu/lf/pkg/config"
	"github.com/kazuma-desu/lf/pkg/logger"
)

var (
	logLevel         string
	flagHost         string
	flagProfile      string
	flagJSON         bool
	flagFields       string
	flagJQ           string
	flagQuiet        bool
	operationTimeout time.Duration

	rootCmd = &cobra.Command{
		Use:   "lf",
		Short: "Observability-first CLI for the Langfuse LLM platform",
		Long: `lf is a command-line client for the Langfuse LLM observability platform.

It lists and inspects traces, observations, scores, sessions, prompts, and
datasets. Output follows the terminal: interactive invocations get aligned
tables, pipes get tab-separated values, and --json/--fields/--jq switch to
script-friendly JSON.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogging()
		},
	}
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagHost, "host", "",
		"Langfuse host URL (overrides profile)")
	pf.StringVar(&flagProfile, "profile", "",
		"config profile to use (overrides current-profile)")
	pf.BoolVar(&flagJSON, "json", false,
		"output as JSON")
	pf.StringVar(&flagFields, "fields", "",
		"filter JSON output to FIELDS (comma-separated dot-paths, implies --json)")
	pf.StringVar(&flagJQ, "jq", "",
		"filter JSON output with a jq expression (implies --json)")
	pf.BoolVarP(&flagQuiet, "quiet", "q", false,
		"suppress status messages")
	pf.StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error) - overrides config file")
	pf.DurationVar(&operationTimeout, "timeout", 60*time.Second,
		"timeout for API operations (e.g. 30s, 2m)")
}

// Execute runs the root command. Every failure surfaces as exactly one
// "error:"-prefixed line on stderr plus the exit status it maps to.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitCodeFor(err))
	}
}

func configureLogging() {
	effectiveLogLevel := "warn"

	cfg, err := config.LoadConfig()
	if err == nil && cfg.LogLevel != "" {
		effectiveLogLevel = cfg.LogLevel
	}

	if logLevel != "" {
		effectiveLogLevel = logLevel
	}

	logger.SetLevel(effectiveLogLevel)
}
