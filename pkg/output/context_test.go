package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kazuma-desu/lf/pkg/models"
)

type testContext struct {
	ctx    *Context
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestContext(opts Options) *testContext {
	tc := &testContext{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}
	opts.Stdout = tc.stdout
	opts.Stderr = tc.stderr
	if opts.IsTTY == nil {
		notTTY := false
		opts.IsTTY = &notTTY
	}
	tc.ctx = New(opts)
	return tc
}

func boolPtr(b bool) *bool { return &b }

// fakeFilter stands in for the jq binary and records what it was fed.
type fakeFilter struct {
	input  []byte
	output []byte
	err    error
}

func (f *fakeFilter) Apply(jsonText []byte, _ string) ([]byte, error) {
	f.input = jsonText
	if f.err != nil {
		return nil, f.err
	}
	return f.output, nil
}

func TestJSONMode(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		expected bool
	}{
		{"no scripting flags", Options{}, false},
		{"json flag", Options{ForceJSON: true}, true},
		{"fields flag", Options{Fields: []string{"id"}}, true},
		{"jq flag", Options{JQExpr: ".[0]"}, true},
		{"all three", Options{ForceJSON: true, Fields: []string{"id"}, JQExpr: "."}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestContext(tt.opts)
			assert.Equal(t, tt.expected, tc.ctx.JSONMode())

			// The terminal must never override a scripting flag.
			tt.opts.IsTTY = boolPtr(true)
			tc = newTestContext(tt.opts)
			assert.Equal(t, tt.expected, tc.ctx.JSONMode())
		})
	}
}

func TestRenderTable(t *testing.T) {
	rows := []models.Record{
		{"id": "1", "name": "checkout", "tags": []any{"a", "b"}},
		{"id": "2", "name": "search", "tags": []any{}},
	}
	columns := []string{"id", "name", "tags"}

	t.Run("TSV when piped", func(t *testing.T) {
		tc := newTestContext(Options{})
		require.NoError(t, tc.ctx.RenderTable(rows, columns))

		assert.Equal(t, "1\tcheckout\t[\"a\",\"b\"]\n2\tsearch\t[]\n", tc.stdout.String())
		assert.Empty(t, tc.stderr.String())
	})

	t.Run("Styled table on a terminal", func(t *testing.T) {
		tc := newTestContext(Options{IsTTY: boolPtr(true)})
		require.NoError(t, tc.ctx.RenderTable(rows, columns))

		out := tc.stdout.String()
		assert.Contains(t, out, "ID")
		assert.Contains(t, out, "NAME")
		assert.Contains(t, out, "checkout")
		assert.Contains(t, out, `["a","b"]`)
	})

	t.Run("JSON when forced, even on a terminal", func(t *testing.T) {
		tc := newTestContext(Options{ForceJSON: true, IsTTY: boolPtr(true)})
		require.NoError(t, tc.ctx.RenderTable(rows, columns))

		assert.JSONEq(t, `[
			{"id":"1","name":"checkout","tags":["a","b"]},
			{"id":"2","name":"search","tags":[]}
		]`, tc.stdout.String())
	})

	t.Run("Empty collection in JSON mode is a valid empty array", func(t *testing.T) {
		tc := newTestContext(Options{ForceJSON: true})
		require.NoError(t, tc.ctx.RenderTable(nil, columns))

		assert.Equal(t, "[]\n", tc.stdout.String())
	})

	t.Run("Empty collection when piped is a stderr notice", func(t *testing.T) {
		tc := newTestContext(Options{})
		require.NoError(t, tc.ctx.RenderTable(nil, columns))

		assert.Empty(t, tc.stdout.String())
		assert.Equal(t, "No results found.\n", tc.stderr.String())
	})

	t.Run("Quiet suppresses the empty notice", func(t *testing.T) {
		tc := newTestContext(Options{Quiet: true})
		require.NoError(t, tc.ctx.RenderTable(nil, columns))

		assert.Empty(t, tc.stdout.String())
		assert.Empty(t, tc.stderr.String())
	})

	t.Run("Fields narrow every row", func(t *testing.T) {
		tc := newTestContext(Options{Fields: []string{"id"}})
		require.NoError(t, tc.ctx.RenderTable(rows, columns))

		assert.JSONEq(t, `[{"id":"1"},{"id":"2"}]`, tc.stdout.String())
	})

	t.Run("Dot-path fields become literal keys", func(t *testing.T) {
		nested := []models.Record{
			{"id": "1", "metadata": map[string]any{"model": "gpt-4"}},
		}
		tc := newTestContext(Options{Fields: []string{"id", "metadata.model"}})
		require.NoError(t, tc.ctx.RenderTable(nested, columns))

		assert.JSONEq(t, `[{"id":"1","metadata.model":"gpt-4"}]`, tc.stdout.String())
	})
}

func TestRenderTableWithFilter(t *testing.T) {
	rows := []models.Record{
		{"id": "1", "name": "checkout"},
	}

	t.Run("Filter runs after field projection", func(t *testing.T) {
		filter := &fakeFilter{output: []byte("\"1\"\n")}
		tc := newTestContext(Options{Fields: []string{"id"}, JQExpr: ".[0].id", Filter: filter})
		require.NoError(t, tc.ctx.RenderTable(rows, []string{"id", "name"}))

		// The filter saw only the projected shape.
		assert.JSONEq(t, `[{"id":"1"}]`, string(filter.input))
		assert.Equal(t, "\"1\"\n", tc.stdout.String())
	})

	t.Run("Filter failure reaches the caller", func(t *testing.T) {
		filter := &fakeFilter{err: &FilterError{Stderr: "jq: error: syntax error"}}
		tc := newTestContext(Options{JQExpr: ".bogus(", Filter: filter})

		err := tc.ctx.RenderTable(rows, []string{"id"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jq failed")
		assert.Empty(t, tc.stdout.String())
	})

	t.Run("Missing binary reaches the caller", func(t *testing.T) {
		filter := &fakeFilter{err: ErrFilterNotFound}
		tc := newTestContext(Options{JQExpr: ".", Filter: filter})

		err := tc.ctx.RenderTable(rows, []string{"id"})
		assert.ErrorIs(t, err, ErrFilterNotFound)
		assert.Empty(t, tc.stdout.String())
	})
}

func TestRenderDetail(t *testing.T) {
	rec := models.Record{
		"id":       "t1",
		"name":     "checkout",
		"metadata": map[string]any{"model": "gpt-4"},
	}
	fields := []models.Field{
		{Label: "ID", Path: "id"},
		{Label: "Name", Path: "name"},
		{Label: "Model", Path: "metadata.model"},
		{Label: "Session", Path: "sessionId"},
	}

	t.Run("Label and value lines when piped", func(t *testing.T) {
		tc := newTestContext(Options{})
		require.NoError(t, tc.ctx.RenderDetail(rec, fields))

		assert.Equal(t, "ID\tt1\nName\tcheckout\nModel\tgpt-4\nSession\t\n", tc.stdout.String())
	})

	t.Run("Styled view on a terminal", func(t *testing.T) {
		tc := newTestContext(Options{IsTTY: boolPtr(true)})
		require.NoError(t, tc.ctx.RenderDetail(rec, fields))

		out := tc.stdout.String()
		assert.Contains(t, out, "ID")
		assert.Contains(t, out, "t1")
		assert.Contains(t, out, "gpt-4")
	})

	t.Run("JSON mode wraps the record in an array", func(t *testing.T) {
		tc := newTestContext(Options{ForceJSON: true})
		require.NoError(t, tc.ctx.RenderDetail(rec, fields))

		assert.JSONEq(t, `[{"id":"t1","name":"checkout","metadata":{"model":"gpt-4"}}]`, tc.stdout.String())
	})
}

func TestRenderJSON(t *testing.T) {
	t.Run("Record list stays a list", func(t *testing.T) {
		tc := newTestContext(Options{})
		require.NoError(t, tc.ctx.RenderJSON([]models.Record{{"id": "1"}}))

		assert.JSONEq(t, `[{"id":"1"}]`, tc.stdout.String())
	})

	t.Run("Single value is wrapped", func(t *testing.T) {
		tc := newTestContext(Options{})
		require.NoError(t, tc.ctx.RenderJSON(models.Record{"id": "1"}))

		assert.JSONEq(t, `[{"id":"1"}]`, tc.stdout.String())
	})

	t.Run("Fields reach into composite output", func(t *testing.T) {
		// Commands assemble records whose values are themselves Records,
		// like the trace-plus-observations shape of the tree command.
		composite := models.Record{
			"trace":        models.Record{"id": "t1", "name": "checkout"},
			"observations": []models.Record{{"id": "obs-1"}},
		}
		tc := newTestContext(Options{Fields: []string{"trace.id"}})
		require.NoError(t, tc.ctx.RenderJSON(composite))

		assert.JSONEq(t, `[{"trace.id":"t1"}]`, tc.stdout.String())
	})

	t.Run("Output ends with exactly one newline", func(t *testing.T) {
		tc := newTestContext(Options{})
		require.NoError(t, tc.ctx.RenderJSON([]models.Record{{"id": "1"}}))

		out := tc.stdout.String()
		assert.True(t, len(out) > 1)
		assert.Equal(t, byte('\n'), out[len(out)-1])
		assert.NotEqual(t, byte('\n'), out[len(out)-2])
	})
}

func TestStatusAndError(t *testing.T) {
	t.Run("Status goes to stderr", func(t *testing.T) {
		tc := newTestContext(Options{})
		tc.ctx.Status("Fetched 5 of 5 traces.")

		assert.Empty(t, tc.stdout.String())
		assert.Equal(t, "Fetched 5 of 5 traces.\n", tc.stderr.String())
	})

	t.Run("Quiet silences status", func(t *testing.T) {
		tc := newTestContext(Options{Quiet: true})
		tc.ctx.Status("Fetched 5 of 5 traces.")

		assert.Empty(t, tc.stderr.String())
	})

	t.Run("Quiet never silences errors", func(t *testing.T) {
		tc := newTestContext(Options{Quiet: true})
		tc.ctx.Error("something broke")

		assert.Equal(t, "something broke\n", tc.stderr.String())
	})

	t.Run("Success goes to stderr", func(t *testing.T) {
		tc := newTestContext(Options{})
		tc.ctx.Success("Profile saved.")

		assert.Empty(t, tc.stdout.String())
		assert.Contains(t, tc.stderr.String(), "Profile saved.")
	})
}
