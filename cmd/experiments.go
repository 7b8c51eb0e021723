package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kazuma-desu/lf/pkg/models"
)

var (
	experimentsCmd = &cobra.Command{
		Use:   "experiments",
		Short: "View and compare experiment runs",
	}

	experimentsListCmd = &cobra.Command{
		Use:   "list <dataset-name>",
		Short: "List experiment runs for a dataset",
		Args:  cobra.ExactArgs(1),
		RunE:  runExperimentsList,
	}

	experimentsCompareCmd = &cobra.Command{
		Use:   "compare <dataset-name> <run1> <run2>",
		Short: "Compare two experiment runs side-by-side",
		Args:  cobra.ExactArgs(3),
		RunE:  runExperimentsCompare,
	}
)

func init() {
	rootCmd.AddCommand(experimentsCmd)
	experimentsCmd.AddCommand(experimentsListCmd, experimentsCompareCmd)
}

var experimentListColumns = []string{"name", "description", "createdAt", "updatedAt"}

var experimentCompareFields = []string{"name", "description", "createdAt", "updatedAt", "metadata"}

func runExperimentsList(_ *cobra.Command, args []string) error {
	ctx, cancel := getOperationContext()
	defer cancel()

	client, out, err := commandContext()
	if err != nil {
		return err
	}

	var runs []models.Record
	err = withSpinner(out, "Fetching experiment runs...", func() error {
		var listErr error
		runs, listErr = client.ListDatasetRuns(ctx, args[0])
		return listErr
	})
	if err != nil {
		return fmt.Errorf("listing experiments: %w", err)
	}
	return out.RenderTable(runs, experimentListColumns)
}

func runExperimentsCompare(_ *cobra.Command, args []string) error {
	ctx, cancel := getOperationContext()
	defer cancel()

	client, out, err := commandContext()
	if err != nil {
		return err
	}

	datasetName, run1, run2 := args[0], args[1], args[2]
	data1, err := client.GetDatasetRun(ctx, datasetName, run1)
	if err != nil {
		return fmt.Errorf("comparing experiments: %w", err)
	}
	data2, err := client.GetDatasetRun(ctx, datasetName, run2)
	if err != nil {
		return fmt.Errorf("comparing experiments: %w", err)
	}

	if out.JSONMode() {
		return out.RenderJSON(models.Record{
			"dataset": datasetName,
			"run1":    models.Record{"name": run1, "data": data1},
			"run2":    models.Record{"name": run2, "data": data2},
		})
	}

	rows := make([]models.Record, 0, len(experimentCompareFields))
	for _, field := range experimentCompareFields {
		rows = append(rows, models.Record{
			"field": field,
			run1:    data1[field],
			run2:    data2[field],
		})
	}
	return out.RenderTable(rows, []string{"field", run1, run2})
}
