package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh/spinner"

	"github.com/kazuma-desu/lf/pkg/api"
	"github.com/kazuma-desu/lf/pkg/config"
	"github.com/kazuma-desu/lf/pkg/output"
)

func getOperationContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), operationTimeout)
}

// newOutputContext builds the render context for this invocation from the
// global flags. Called once per command.
func newOutputContext() *output.Context {
	return output.New(output.Options{
		ForceJSON: flagJSON,
		Fields:    splitFields(flagFields),
		JQExpr:    flagJQ,
		Quiet:     flagQuiet,
	})
}

func splitFields(spec string) []string {
	if spec == "" {
		return nil
	}
	var fields []string
	for _, f := range strings.Split(spec, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

func newAPIClient() (*api.Client, error) {
	creds, err := config.Resolve(flagHost, flagProfile)
	if err != nil {
		return nil, err
	}
	return api.NewClient(api.Config{
		Host:      creds.Host,
		PublicKey: creds.PublicKey,
		SecretKey: creds.SecretKey,
	}), nil
}

// commandContext resolves the API client and render context every data
// command needs.
func commandContext() (*api.Client, *output.Context, error) {
	out := newOutputContext()
	client, err := newAPIClient()
	if err != nil {
		return nil, nil, err
	}
	return client, out, nil
}

// withSpinner runs fn behind an interactive spinner when stdout is a
// terminal. Piped, quiet, and JSON invocations run fn directly so nothing
// extra reaches the streams.
func withSpinner(out *output.Context, title string, fn func() error) error {
	if !output.IsTerminal() || out.JSONMode() || flagQuiet {
		return fn()
	}
	var runErr error
	if err := spinner.New().Title(title).Action(func() { runErr = fn() }).Run(); err != nil {
		return err
	}
	return runErr
}

// parseTimestamp accepts RFC 3339 and date-only forms and returns the
// timezone-qualified ISO 8601 string the API requires. Naive inputs are
// interpreted as UTC.
func parseTimestamp(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	layouts := []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Format(time.RFC3339), nil
		}
	}
	return "", fmt.Errorf("invalid timestamp %q (expected ISO 8601, e.g. 2026-02-16T00:00:00Z)", s)
}

// resolveLimit applies the config-file default when the flag was left at its
// built-in default.
func resolveLimit(flagValue int, flagChanged bool) int {
	if flagChanged {
		return flagValue
	}
	cfg, err := config.LoadConfig()
	if err == nil && cfg.DefaultLimit > 0 {
		return cfg.DefaultLimit
	}
	return flagValue
}
