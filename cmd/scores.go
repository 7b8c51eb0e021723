package cmd

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/spf13/cobra"

	"github.com/kazuma-desu/lf/pkg/api"
	"github.com/kazuma-desu/lf/pkg/models"
)

var (
	scoresCmd = &cobra.Command{
		Use:   "scores",
		Short: "View scores and evaluations",
	}

	scoresListOpts struct {
		limit   int
		traceID string
		name    string
		from    string
		to      string
	}

	scoresListCmd = &cobra.Command{
		Use:   "list",
		Short: "List scores with optional filters",
		RunE:  runScoresList,
	}

	scoresSummaryOpts struct {
		name string
		from string
		to   string
	}

	scoresSummaryCmd = &cobra.Command{
		Use:   "summary",
		Short: "Show aggregated score statistics",
		Long:  "Aggregate count, mean, min, and max per score name over recent scores.",
		RunE:  runScoresSummary,
	}
)

func init() {
	rootCmd.AddCommand(scoresCmd)
	scoresCmd.AddCommand(scoresListCmd, scoresSummaryCmd)

	lf := scoresListCmd.Flags()
	lf.IntVarP(&scoresListOpts.limit, "limit", "l", 50, "maximum number of results")
	lf.StringVarP(&scoresListOpts.traceID, "trace-id", "t", "", "filter by trace ID")
	lf.StringVarP(&scoresListOpts.name, "name", "n", "", "filter by score name")
	lf.StringVar(&scoresListOpts.from, "from", "", "start time filter (ISO 8601)")
	lf.StringVar(&scoresListOpts.to, "to", "", "end time filter (ISO 8601)")

	sf := scoresSummaryCmd.Flags()
	sf.StringVarP(&scoresSummaryOpts.name, "name", "n", "", "score name to summarize")
	sf.StringVar(&scoresSummaryOpts.from, "from", "", "start time filter (ISO 8601)")
	sf.StringVar(&scoresSummaryOpts.to, "to", "", "end time filter (ISO 8601)")
}

var scoreListColumns = []string{"id", "traceId", "name", "value", "observationId", "timestamp"}

// summaryFetchLimit caps how many scores feed the aggregation.
const summaryFetchLimit = 500

func runScoresList(cmd *cobra.Command, _ []string) error {
	ctx, cancel := getOperationContext()
	defer cancel()

	client, out, err := commandContext()
	if err != nil {
		return err
	}

	from, err := parseTimestamp(scoresListOpts.from)
	if err != nil {
		return err
	}
	to, err := parseTimestamp(scoresListOpts.to)
	if err != nil {
		return err
	}
	filter := api.ScoreFilter{
		TraceID: scoresListOpts.traceID,
		Name:    scoresListOpts.name,
		From:    from,
		To:      to,
	}
	limit := resolveLimit(scoresListOpts.limit, cmd.Flags().Changed("limit"))

	var scores []models.Record
	err = withSpinner(out, "Fetching scores...", func() error {
		var listErr error
		scores, listErr = client.ListScores(ctx, filter, limit)
		return listErr
	})
	if err != nil {
		return fmt.Errorf("listing scores: %w", err)
	}
	return out.RenderTable(scores, scoreListColumns)
}

func runScoresSummary(_ *cobra.Command, _ []string) error {
	ctx, cancel := getOperationContext()
	defer cancel()

	client, out, err := commandContext()
	if err != nil {
		return err
	}

	from, err := parseTimestamp(scoresSummaryOpts.from)
	if err != nil {
		return err
	}
	to, err := parseTimestamp(scoresSummaryOpts.to)
	if err != nil {
		return err
	}
	filter := api.ScoreFilter{
		Name: scoresSummaryOpts.name,
		From: from,
		To:   to,
	}

	var scores []models.Record
	err = withSpinner(out, "Fetching scores...", func() error {
		var listErr error
		scores, listErr = client.ListScores(ctx, filter, summaryFetchLimit)
		return listErr
	})
	if err != nil {
		return fmt.Errorf("summarizing scores: %w", err)
	}

	if len(scores) == 0 {
		out.Status("No scores found.")
		return nil
	}
	return out.RenderTable(summarizeScores(scores), []string{"name", "count", "mean", "min", "max"})
}

// summarizeScores groups scores by name and computes count/mean/min/max over
// their numeric values, sorted by name. Scores without a numeric value are
// skipped.
func summarizeScores(scores []models.Record) []models.Record {
	byName := make(map[string][]float64)
	for _, score := range scores {
		name := "unknown"
		if n, ok := score["name"].(string); ok && n != "" {
			name = n
		}
		value, ok := numericValue(score["value"])
		if !ok {
			continue
		}
		byName[name] = append(byName[name], value)
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]models.Record, 0, len(names))
	for _, name := range names {
		values := byName[name]
		sum, minVal, maxVal := 0.0, values[0], values[0]
		for _, v := range values {
			sum += v
			minVal = math.Min(minVal, v)
			maxVal = math.Max(maxVal, v)
		}
		rows = append(rows, models.Record{
			"name":  name,
			"count": len(values),
			"mean":  round4(sum / float64(len(values))),
			"min":   round4(minVal),
			"max":   round4(maxVal),
		})
	}
	return rows
}

func numericValue(v any) (float64, bool) {
	switch val := v.(type) {
	case json.Number:
		f, err := val.Float64()
		return f, err == nil
	case float64:
		return val, true
	case int:
		return float64(val), true
	default:
		return 0, false
	}
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
