package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kazuma-desu/lf/pkg/api"
	"github.com/kazuma-desu/lf/pkg/models"
)

var (
	observationsCmd = &cobra.Command{
		Use:   "observations",
		Short: "Browse observations (generations, spans, events)",
	}

	observationsListOpts struct {
		limit   int
		traceID string
		obsType string
		name    string
		from    string
		to      string
	}

	observationsListCmd = &cobra.Command{
		Use:   "list",
		Short: "List observations with optional filters",
		Example: `  # Recent generations
  lf observations list --type GENERATION

  # All observations of one trace
  lf observations list --trace-id tr-123`,
		RunE: runObservationsList,
	}
)

func init() {
	rootCmd.AddCommand(observationsCmd)
	observationsCmd.AddCommand(observationsListCmd)

	f := observationsListCmd.Flags()
	f.IntVarP(&observationsListOpts.limit, "limit", "l", 50, "maximum number of results")
	f.StringVarP(&observationsListOpts.traceID, "trace-id", "t", "", "filter by trace ID")
	f.StringVar(&observationsListOpts.obsType, "type", "", "filter by type (GENERATION, SPAN, EVENT)")
	f.StringVarP(&observationsListOpts.name, "name", "n", "", "filter by observation name")
	f.StringVar(&observationsListOpts.from, "from", "", "start time filter (ISO 8601)")
	f.StringVar(&observationsListOpts.to, "to", "", "end time filter (ISO 8601)")
}

var observationListColumns = []string{"id", "traceId", "type", "name", "startTime", "model", "usage"}

func runObservationsList(cmd *cobra.Command, _ []string) error {
	ctx, cancel := getOperationContext()
	defer cancel()

	client, out, err := commandContext()
	if err != nil {
		return err
	}

	from, err := parseTimestamp(observationsListOpts.from)
	if err != nil {
		return err
	}
	to, err := parseTimestamp(observationsListOpts.to)
	if err != nil {
		return err
	}
	filter := api.ObservationFilter{
		TraceID: observationsListOpts.traceID,
		Type:    observationsListOpts.obsType,
		Name:    observationsListOpts.name,
		From:    from,
		To:      to,
	}
	limit := resolveLimit(observationsListOpts.limit, cmd.Flags().Changed("limit"))

	var observations []models.Record
	err = withSpinner(out, "Fetching observations...", func() error {
		var listErr error
		observations, listErr = client.ListObservations(ctx, filter, limit)
		return listErr
	})
	if err != nil {
		return fmt.Errorf("listing observations: %w", err)
	}
	return out.RenderTable(observations, observationListColumns)
}
