package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kazuma-desu/lf/pkg/models"
)

func TestRenderTraceTree(t *testing.T) {
	trace := models.Record{"id": "trace-1", "name": "checkout"}

	t.Run("Nests observations under their parents", func(t *testing.T) {
		observations := []models.Record{
			{"id": "obs-1", "type": "SPAN", "name": "handler", "startTime": "2026-02-16T10:00:00Z"},
			{"id": "obs-2", "type": "GENERATION", "name": "llm-call", "parentObservationId": "obs-1",
				"startTime": "2026-02-16T10:00:01Z", "model": "gpt-4",
				"usage": map[string]any{"totalTokens": json.Number("128")}},
		}

		tc := newTestContext(Options{})
		tc.ctx.RenderTraceTree(trace, observations)
		out := tc.stdout.String()

		assert.Contains(t, out, "checkout")
		assert.Contains(t, out, "trace-1")
		assert.Contains(t, out, "handler")
		assert.Contains(t, out, "llm-call")
		assert.Contains(t, out, "gpt-4")
		assert.Contains(t, out, "128 tokens")

		// The child renders on a later line than its parent.
		assert.Less(t, strings.Index(out, "handler"), strings.Index(out, "llm-call"))
	})

	t.Run("Orders siblings by start time", func(t *testing.T) {
		observations := []models.Record{
			{"id": "obs-b", "type": "SPAN", "name": "second", "startTime": "2026-02-16T10:00:05Z"},
			{"id": "obs-a", "type": "SPAN", "name": "first", "startTime": "2026-02-16T10:00:01Z"},
		}

		tc := newTestContext(Options{})
		tc.ctx.RenderTraceTree(trace, observations)
		out := tc.stdout.String()

		assert.Less(t, strings.Index(out, "first"), strings.Index(out, "second"))
	})

	t.Run("Omits orphaned observations", func(t *testing.T) {
		observations := []models.Record{
			{"id": "obs-1", "type": "SPAN", "name": "reachable"},
			{"id": "obs-2", "type": "SPAN", "name": "orphan", "parentObservationId": "gone"},
		}

		tc := newTestContext(Options{})
		tc.ctx.RenderTraceTree(trace, observations)
		out := tc.stdout.String()

		assert.Contains(t, out, "reachable")
		assert.NotContains(t, out, "orphan")
	})

	t.Run("Falls back to the trace ID without a name", func(t *testing.T) {
		tc := newTestContext(Options{})
		tc.ctx.RenderTraceTree(models.Record{"id": "trace-2"}, nil)

		assert.Contains(t, tc.stdout.String(), "trace-2")
	})
}

func TestTotalTokens(t *testing.T) {
	tests := []struct {
		name     string
		obs      models.Record
		expected string
	}{
		{"totalTokens key", models.Record{"usage": map[string]any{"totalTokens": json.Number("42")}}, "42"},
		{"legacy total key", models.Record{"usage": map[string]any{"total": json.Number("7")}}, "7"},
		{"zero is omitted", models.Record{"usage": map[string]any{"totalTokens": json.Number("0")}}, ""},
		{"no usage", models.Record{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, totalTokens(tt.obs))
		})
	}
}
