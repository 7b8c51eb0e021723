package api

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceFilterParams(t *testing.T) {
	t.Run("All fields set", func(t *testing.T) {
		filter := TraceFilter{
			UserID:    "u1",
			SessionID: "s1",
			Name:      "checkout",
			Tags:      []string{"prod", "eu"},
			From:      "2026-02-16T00:00:00Z",
			To:        "2026-02-17T00:00:00Z",
		}

		params := cleanParams(filter.params())

		assert.Equal(t, "u1", params.Get("userId"))
		assert.Equal(t, "s1", params.Get("sessionId"))
		assert.Equal(t, "checkout", params.Get("name"))
		assert.Equal(t, []string{"prod", "eu"}, params["tags"])
		assert.Equal(t, "2026-02-16T00:00:00Z", params.Get("fromTimestamp"))
		assert.Equal(t, "2026-02-17T00:00:00Z", params.Get("toTimestamp"))
	})

	t.Run("Empty filter transmits nothing", func(t *testing.T) {
		assert.Empty(t, cleanParams(TraceFilter{}.params()))
	})
}

func TestGetTrace(t *testing.T) {
	t.Run("Escapes the trace ID", func(t *testing.T) {
		var gotPath string
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.EscapedPath()
			w.Write([]byte(`{"id":"a/b"}`))
		})
		defer server.Close()

		_, err := client.GetTrace(context.Background(), "a/b")
		require.NoError(t, err)
		assert.Equal(t, "/api/public/traces/a%2Fb", gotPath)
	})
}

func TestGetPrompt(t *testing.T) {
	t.Run("Version and label are optional", func(t *testing.T) {
		var gotQuery url.Values
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			w.Write([]byte(`{"name":"greeting","version":3}`))
		})
		defer server.Close()

		_, err := client.GetPrompt(context.Background(), "greeting", "", "")
		require.NoError(t, err)

		assert.Empty(t, gotQuery.Get("version"))
		assert.Empty(t, gotQuery.Get("label"))
	})

	t.Run("Version pin is transmitted", func(t *testing.T) {
		var gotQuery url.Values
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			w.Write([]byte(`{"name":"greeting","version":2}`))
		})
		defer server.Close()

		_, err := client.GetPrompt(context.Background(), "greeting", "2", "")
		require.NoError(t, err)
		assert.Equal(t, "2", gotQuery.Get("version"))
	})
}

func TestListDatasetRuns(t *testing.T) {
	t.Run("Unwraps the data array", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/public/datasets/qa-set/runs", r.URL.Path)
			w.Write([]byte(`{"data":[{"name":"run-1"},{"name":"run-2"}]}`))
		})
		defer server.Close()

		runs, err := client.ListDatasetRuns(context.Background(), "qa-set")
		require.NoError(t, err)

		require.Len(t, runs, 2)
		assert.Equal(t, "run-1", runs[0]["name"])
	})

	t.Run("Missing data array yields no runs", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{}`))
		})
		defer server.Close()

		runs, err := client.ListDatasetRuns(context.Background(), "qa-set")
		require.NoError(t, err)
		assert.Empty(t, runs)
	})
}

func TestListTraces(t *testing.T) {
	t.Run("Caps the listing at the limit", func(t *testing.T) {
		calls := 0
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			calls++
			assert.Equal(t, "2", r.URL.Query().Get("limit"))
			w.Write([]byte(`{"data":[{"id":"a"},{"id":"b"}],"meta":{"totalItems":50}}`))
		})
		defer server.Close()

		traces, err := client.ListTraces(context.Background(), TraceFilter{}, 2)
		require.NoError(t, err)

		assert.Len(t, traces, 2)
		assert.Equal(t, 1, calls)
	})
}
