package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kazuma-desu/lf/pkg/models"
)

var (
	datasetsCmd = &cobra.Command{
		Use:   "datasets",
		Short: "Browse datasets",
	}

	datasetsListOpts struct {
		limit int
	}

	datasetsListCmd = &cobra.Command{
		Use:   "list",
		Short: "List all datasets",
		RunE:  runDatasetsList,
	}

	datasetsGetOpts struct {
		limit int
	}

	datasetsGetCmd = &cobra.Command{
		Use:   "get <name>",
		Short: "Get dataset details and list its items",
		Args:  cobra.ExactArgs(1),
		RunE:  runDatasetsGet,
	}
)

func init() {
	rootCmd.AddCommand(datasetsCmd)
	datasetsCmd.AddCommand(datasetsListCmd, datasetsGetCmd)

	datasetsListCmd.Flags().IntVarP(&datasetsListOpts.limit, "limit", "l", 50, "maximum number of results")
	datasetsGetCmd.Flags().IntVarP(&datasetsGetOpts.limit, "limit", "l", 50, "maximum number of items to show")
}

var datasetListColumns = []string{"name", "description", "createdAt", "updatedAt"}

var datasetDetailFields = []models.Field{
	{Label: "Name", Path: "name"},
	{Label: "Description", Path: "description"},
	{Label: "Created", Path: "createdAt"},
	{Label: "Updated", Path: "updatedAt"},
	{Label: "Metadata", Path: "metadata"},
}

var datasetItemColumns = []string{"id", "status", "createdAt"}

func runDatasetsList(cmd *cobra.Command, _ []string) error {
	ctx, cancel := getOperationContext()
	defer cancel()

	client, out, err := commandContext()
	if err != nil {
		return err
	}

	limit := resolveLimit(datasetsListOpts.limit, cmd.Flags().Changed("limit"))

	var datasets []models.Record
	err = withSpinner(out, "Fetching datasets...", func() error {
		var listErr error
		datasets, listErr = client.ListDatasets(ctx, limit)
		return listErr
	})
	if err != nil {
		return fmt.Errorf("listing datasets: %w", err)
	}
	return out.RenderTable(datasets, datasetListColumns)
}

func runDatasetsGet(_ *cobra.Command, args []string) error {
	ctx, cancel := getOperationContext()
	defer cancel()

	client, out, err := commandContext()
	if err != nil {
		return err
	}

	name := args[0]
	dataset, err := client.GetDataset(ctx, name)
	if err != nil {
		return fmt.Errorf("getting dataset: %w", err)
	}

	if out.JSONMode() {
		items, err := client.ListDatasetItems(ctx, name, datasetsGetOpts.limit)
		if err != nil {
			return fmt.Errorf("getting dataset: %w", err)
		}
		return out.RenderJSON(models.Record{"dataset": dataset, "items": items})
	}

	if err := out.RenderDetail(dataset, datasetDetailFields); err != nil {
		return err
	}

	items, err := client.ListDatasetItems(ctx, name, datasetsGetOpts.limit)
	if err != nil {
		return fmt.Errorf("getting dataset: %w", err)
	}
	if len(items) > 0 {
		out.Status(fmt.Sprintf("\nItems (%d):", len(items)))
		return out.RenderTable(items, datasetItemColumns)
	}
	return nil
}
