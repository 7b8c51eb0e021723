package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kazuma-desu/lf/pkg/api"
	"github.com/kazuma-desu/lf/pkg/models"
)

var (
	tracesCmd = &cobra.Command{
		Use:   "traces",
		Short: "Inspect traces and their observations",
	}

	tracesListOpts struct {
		limit     int
		userID    string
		sessionID string
		tags      []string
		name      string
		from      string
		to        string
	}

	tracesListCmd = &cobra.Command{
		Use:   "list",
		Short: "List traces with optional filters",
		Example: `  # Most recent traces
  lf traces list

  # Traces for one user, JSON output
  lf traces list --user-id user-123 --json

  # Trace IDs only, piped into another tool
  lf traces list --fields id --jq '.[].id'`,
		RunE: runTracesList,
	}

	tracesGetCmd = &cobra.Command{
		Use:   "get <trace-id>",
		Short: "Get detailed information about a specific trace",
		Args:  cobra.ExactArgs(1),
		RunE:  runTracesGet,
	}

	tracesTreeCmd = &cobra.Command{
		Use:   "tree <trace-id>",
		Short: "Display trace hierarchy as a tree of spans, generations, and events",
		Args:  cobra.ExactArgs(1),
		RunE:  runTracesTree,
	}

	tracesExportOpts struct {
		limit   int
		workers int
		name    string
		userID  string
		from    string
		to      string
	}

	tracesExportCmd = &cobra.Command{
		Use:   "export",
		Short: "Export full trace details as JSON",
		Long: `Export the complete detail record of every matching trace as a JSON array.

Detail records are fetched with a bounded worker pool; traces that fail to
fetch are skipped with a warning rather than aborting the export.`,
		RunE: runTracesExport,
	}
)

func init() {
	rootCmd.AddCommand(tracesCmd)
	tracesCmd.AddCommand(tracesListCmd, tracesGetCmd, tracesTreeCmd, tracesExportCmd)

	lf := tracesListCmd.Flags()
	lf.IntVarP(&tracesListOpts.limit, "limit", "l", 50, "maximum number of results")
	lf.StringVarP(&tracesListOpts.userID, "user-id", "u", "", "filter by user ID")
	lf.StringVarP(&tracesListOpts.sessionID, "session-id", "s", "", "filter by session ID")
	lf.StringSliceVar(&tracesListOpts.tags, "tags", nil, "filter by tags (comma-separated)")
	lf.StringVarP(&tracesListOpts.name, "name", "n", "", "filter by trace name")
	lf.StringVar(&tracesListOpts.from, "from", "", "start time filter (ISO 8601)")
	lf.StringVar(&tracesListOpts.to, "to", "", "end time filter (ISO 8601)")

	ef := tracesExportCmd.Flags()
	ef.IntVarP(&tracesExportOpts.limit, "limit", "l", 50, "maximum number of traces to export")
	ef.IntVar(&tracesExportOpts.workers, "workers", 8, "parallel detail fetches")
	ef.StringVarP(&tracesExportOpts.name, "name", "n", "", "filter by trace name")
	ef.StringVarP(&tracesExportOpts.userID, "user-id", "u", "", "filter by user ID")
	ef.StringVar(&tracesExportOpts.from, "from", "", "start time filter (ISO 8601)")
	ef.StringVar(&tracesExportOpts.to, "to", "", "end time filter (ISO 8601)")
}

var traceListColumns = []string{"id", "name", "userId", "sessionId", "timestamp", "tags"}

var traceDetailFields = []models.Field{
	{Label: "ID", Path: "id"},
	{Label: "Name", Path: "name"},
	{Label: "User", Path: "userId"},
	{Label: "Session", Path: "sessionId"},
	{Label: "Timestamp", Path: "timestamp"},
	{Label: "Tags", Path: "tags"},
	{Label: "Input", Path: "input"},
	{Label: "Output", Path: "output"},
	{Label: "Metadata", Path: "metadata"},
}

func runTracesList(cmd *cobra.Command, _ []string) error {
	ctx, cancel := getOperationContext()
	defer cancel()

	client, out, err := commandContext()
	if err != nil {
		return err
	}

	from, err := parseTimestamp(tracesListOpts.from)
	if err != nil {
		return err
	}
	to, err := parseTimestamp(tracesListOpts.to)
	if err != nil {
		return err
	}
	filter := api.TraceFilter{
		UserID:    tracesListOpts.userID,
		SessionID: tracesListOpts.sessionID,
		Name:      tracesListOpts.name,
		Tags:      tracesListOpts.tags,
		From:      from,
		To:        to,
	}
	limit := resolveLimit(tracesListOpts.limit, cmd.Flags().Changed("limit"))

	var traces []models.Record
	err = withSpinner(out, "Fetching traces...", func() error {
		var listErr error
		traces, listErr = client.ListTraces(ctx, filter, limit)
		return listErr
	})
	if err != nil {
		return fmt.Errorf("listing traces: %w", err)
	}
	return out.RenderTable(traces, traceListColumns)
}

func runTracesGet(_ *cobra.Command, args []string) error {
	ctx, cancel := getOperationContext()
	defer cancel()

	client, out, err := commandContext()
	if err != nil {
		return err
	}

	trace, err := client.GetTrace(ctx, args[0])
	if err != nil {
		return fmt.Errorf("getting trace: %w", err)
	}
	return out.RenderDetail(trace, traceDetailFields)
}

func runTracesTree(_ *cobra.Command, args []string) error {
	ctx, cancel := getOperationContext()
	defer cancel()

	client, out, err := commandContext()
	if err != nil {
		return err
	}

	traceID := args[0]
	trace, err := client.GetTrace(ctx, traceID)
	if err != nil {
		return fmt.Errorf("building trace tree: %w", err)
	}
	observations, err := client.ListObservations(ctx, api.ObservationFilter{TraceID: traceID}, 200)
	if err != nil {
		return fmt.Errorf("building trace tree: %w", err)
	}

	if out.JSONMode() {
		return out.RenderJSON(models.Record{"trace": trace, "observations": observations})
	}
	out.RenderTraceTree(trace, observations)
	return nil
}

func runTracesExport(_ *cobra.Command, _ []string) error {
	ctx, cancel := getOperationContext()
	defer cancel()

	client, out, err := commandContext()
	if err != nil {
		return err
	}

	from, err := parseTimestamp(tracesExportOpts.from)
	if err != nil {
		return err
	}
	to, err := parseTimestamp(tracesExportOpts.to)
	if err != nil {
		return err
	}
	filter := api.TraceFilter{
		UserID: tracesExportOpts.userID,
		Name:   tracesExportOpts.name,
		From:   from,
		To:     to,
	}

	traces, err := client.ListTraces(ctx, filter, tracesExportOpts.limit)
	if err != nil {
		return fmt.Errorf("exporting traces: %w", err)
	}

	ids := make([]string, 0, len(traces))
	for _, trace := range traces {
		if id, ok := trace["id"].(string); ok && id != "" {
			ids = append(ids, id)
		}
	}

	var details []models.Record
	err = withSpinner(out, fmt.Sprintf("Fetching %d traces...", len(ids)), func() error {
		details = api.FetchAll(ctx, ids, tracesExportOpts.workers, client.GetTrace)
		return nil
	})
	if err != nil {
		return err
	}

	out.Status(fmt.Sprintf("Fetched %d of %d traces.", len(details), len(ids)))
	return out.RenderJSON(details)
}
