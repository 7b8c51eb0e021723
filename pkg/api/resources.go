package api

import (
	"context"
	"net/url"

	"github.com/kazuma-desu/lf/pkg/models"
)

// TraceFilter narrows a trace listing. Empty fields are not transmitted.
type TraceFilter struct {
	UserID    string
	SessionID string
	Name      string
	Tags      []string
	From      string
	To        string
}

func (f TraceFilter) params() url.Values {
	params := url.Values{}
	params.Set("userId", f.UserID)
	params.Set("sessionId", f.SessionID)
	params.Set("name", f.Name)
	params.Set("fromTimestamp", f.From)
	params.Set("toTimestamp", f.To)
	for _, tag := range f.Tags {
		params.Add("tags", tag)
	}
	return params
}

// ObservationFilter narrows an observation listing.
type ObservationFilter struct {
	TraceID string
	Type    string
	Name    string
	From    string
	To      string
}

func (f ObservationFilter) params() url.Values {
	params := url.Values{}
	params.Set("traceId", f.TraceID)
	params.Set("type", f.Type)
	params.Set("name", f.Name)
	params.Set("fromTimestamp", f.From)
	params.Set("toTimestamp", f.To)
	return params
}

// ScoreFilter narrows a score listing.
type ScoreFilter struct {
	TraceID string
	Name    string
	From    string
	To      string
}

func (f ScoreFilter) params() url.Values {
	params := url.Values{}
	params.Set("traceId", f.TraceID)
	params.Set("name", f.Name)
	params.Set("fromTimestamp", f.From)
	params.Set("toTimestamp", f.To)
	return params
}

// SessionFilter narrows a session listing.
type SessionFilter struct {
	From string
	To   string
}

func (f SessionFilter) params() url.Values {
	params := url.Values{}
	params.Set("fromTimestamp", f.From)
	params.Set("toTimestamp", f.To)
	return params
}

// ListTraces lists traces matching the filter, capped at limit.
func (c *Client) ListTraces(ctx context.Context, filter TraceFilter, limit int) ([]models.Record, error) {
	return Collect(c.paginate(ctx, "/traces", filter.params(), limit))
}

// GetTrace fetches a single trace with its full input/output payloads.
func (c *Client) GetTrace(ctx context.Context, traceID string) (models.Record, error) {
	return c.get(ctx, "/traces/"+url.PathEscape(traceID), nil)
}

// ListObservations lists observations matching the filter, capped at limit.
func (c *Client) ListObservations(ctx context.Context, filter ObservationFilter, limit int) ([]models.Record, error) {
	return Collect(c.paginate(ctx, "/observations", filter.params(), limit))
}

// ListScores lists scores matching the filter, capped at limit.
func (c *Client) ListScores(ctx context.Context, filter ScoreFilter, limit int) ([]models.Record, error) {
	return Collect(c.paginate(ctx, "/scores", filter.params(), limit))
}

// ListSessions lists sessions matching the filter, capped at limit.
func (c *Client) ListSessions(ctx context.Context, filter SessionFilter, limit int) ([]models.Record, error) {
	return Collect(c.paginate(ctx, "/sessions", filter.params(), limit))
}

// GetSession fetches a single session including its traces.
func (c *Client) GetSession(ctx context.Context, sessionID string) (models.Record, error) {
	return c.get(ctx, "/sessions/"+url.PathEscape(sessionID), nil)
}

// ListPrompts lists prompt metadata, capped at limit.
func (c *Client) ListPrompts(ctx context.Context, limit int) ([]models.Record, error) {
	return Collect(c.paginate(ctx, "/v2/prompts", nil, limit))
}

// GetPrompt fetches one prompt. Version and label are optional and mutually
// independent; the server resolves the production label when both are empty.
func (c *Client) GetPrompt(ctx context.Context, name, version, label string) (models.Record, error) {
	params := url.Values{}
	params.Set("version", version)
	params.Set("label", label)
	return c.get(ctx, "/v2/prompts/"+url.PathEscape(name), params)
}

// ListDatasets lists datasets, capped at limit.
func (c *Client) ListDatasets(ctx context.Context, limit int) ([]models.Record, error) {
	return Collect(c.paginate(ctx, "/v2/datasets", nil, limit))
}

// GetDataset fetches a dataset by name.
func (c *Client) GetDataset(ctx context.Context, name string) (models.Record, error) {
	return c.get(ctx, "/v2/datasets/"+url.PathEscape(name), nil)
}

// ListDatasetItems lists the items of a dataset, capped at limit.
func (c *Client) ListDatasetItems(ctx context.Context, datasetName string, limit int) ([]models.Record, error) {
	params := url.Values{}
	params.Set("datasetName", datasetName)
	return Collect(c.paginate(ctx, "/dataset-items", params, limit))
}

// ListDatasetRuns lists the experiment runs recorded for a dataset.
func (c *Client) ListDatasetRuns(ctx context.Context, datasetName string) ([]models.Record, error) {
	rec, err := c.get(ctx, "/datasets/"+url.PathEscape(datasetName)+"/runs", nil)
	if err != nil {
		return nil, err
	}
	items, _ := rec["data"].([]any)
	runs := make([]models.Record, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			runs = append(runs, models.Record(m))
		}
	}
	return runs, nil
}

// GetDatasetRun fetches a specific experiment run of a dataset.
func (c *Client) GetDatasetRun(ctx context.Context, datasetName, runName string) (models.Record, error) {
	return c.get(ctx, "/datasets/"+url.PathEscape(datasetName)+"/runs/"+url.PathEscape(runName), nil)
}
