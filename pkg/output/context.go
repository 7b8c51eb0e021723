// Package output renders command results. One Context per invocation decides
// how data reaches the user: lipgloss tables for terminals, tab-separated
// values for pipes, and JSON (optionally field-filtered and piped through jq)
// whenever a scripting flag asks for it. Command handlers never branch on
// presentation mode themselves.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kazuma-desu/lf/pkg/models"
)

// Context decides how command results reach the user. It is built once per
// invocation from the global flags; mode selection never changes afterwards.
type Context struct {
	forceJSON bool
	fields    []string
	jqExpr    string
	quiet     bool
	isTTY     bool

	stdout io.Writer
	stderr io.Writer
	filter Filter
}

// Options configures a Context. The override fields exist for tests; zero
// values select the real stdout, stderr, terminal detection, and jq binary.
type Options struct {
	ForceJSON bool
	Fields    []string
	JQExpr    string
	Quiet     bool

	Stdout io.Writer
	Stderr io.Writer
	IsTTY  *bool
	Filter Filter
}

// New builds a render context from the given options.
func New(opts Options) *Context {
	c := &Context{
		forceJSON: opts.ForceJSON,
		fields:    opts.Fields,
		jqExpr:    opts.JQExpr,
		quiet:     opts.Quiet,
		isTTY:     IsTerminal(),
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		filter:    execFilter{},
	}
	if opts.Stdout != nil {
		c.stdout = opts.Stdout
	}
	if opts.Stderr != nil {
		c.stderr = opts.Stderr
	}
	if opts.IsTTY != nil {
		c.isTTY = *opts.IsTTY
	}
	if opts.Filter != nil {
		c.filter = opts.Filter
	}
	return c
}

// JSONMode reports whether output must be JSON regardless of the terminal.
// Any of --json, --fields, or --jq selects it.
func (c *Context) JSONMode() bool {
	return c.forceJSON || len(c.fields) > 0 || c.jqExpr != ""
}

// RenderTable renders a record collection: JSON when a scripting flag demands
// it, an aligned table on a terminal, TSV otherwise. An empty collection
// still produces a valid empty JSON array in JSON mode; in the other modes it
// produces a status notice instead of an empty table.
func (c *Context) RenderTable(rows []models.Record, columns []string) error {
	if c.JSONMode() {
		items := make([]any, len(rows))
		for i, rec := range rows {
			items[i] = rec
		}
		return c.renderJSONList(items)
	}
	if len(rows) == 0 {
		c.Status("No results found.")
		return nil
	}
	if c.isTTY {
		c.renderStyledTable(rows, columns)
		return nil
	}
	c.renderTSV(rows, columns)
	return nil
}

// RenderDetail renders a single record as an ordered label/value view. In
// JSON mode the record is emitted wrapped in a one-element array so consumers
// always see the same top-level shape as list output.
func (c *Context) RenderDetail(rec models.Record, fields []models.Field) error {
	if c.JSONMode() {
		return c.renderJSONList([]any{rec})
	}
	if c.isTTY {
		c.renderStyledDetail(rec, fields)
		return nil
	}
	for _, f := range fields {
		fmt.Fprintf(c.stdout, "%s\t%s\n", f.Label, models.FormatValue(rec.Dig(f.Path)))
	}
	return nil
}

// RenderJSON emits an arbitrary value as JSON, honoring --fields and --jq.
// Non-list values are wrapped in a one-element array.
func (c *Context) RenderJSON(v any) error {
	switch items := v.(type) {
	case []models.Record:
		wrapped := make([]any, len(items))
		for i, rec := range items {
			wrapped[i] = rec
		}
		return c.renderJSONList(wrapped)
	case []any:
		return c.renderJSONList(items)
	default:
		return c.renderJSONList([]any{v})
	}
}

// Status writes a status message to stderr unless quiet mode is set. Status
// never touches stdout, so piped data stays clean.
func (c *Context) Status(msg string) {
	if c.quiet {
		return
	}
	fmt.Fprintln(c.stderr, msg)
}

// Error writes an error message to stderr regardless of quiet mode.
func (c *Context) Error(msg string) {
	fmt.Fprintln(c.stderr, msg)
}

// Success writes a styled confirmation to stderr unless quiet mode is set.
func (c *Context) Success(msg string) {
	if c.quiet {
		return
	}
	if c.isTTY {
		fmt.Fprintln(c.stderr, successStyle.Render("✓ "+msg))
	} else {
		fmt.Fprintln(c.stderr, "+ "+msg)
	}
}

// renderJSONList serializes items as an indented JSON array, applying the
// field allow-list first and the jq filter last, in that order, so the filter
// always sees the already-narrowed shape.
func (c *Context) renderJSONList(items []any) error {
	if len(c.fields) > 0 {
		projected := make([]any, len(items))
		for i, item := range items {
			projected[i] = projectFields(item, c.fields)
		}
		items = projected
	}
	if items == nil {
		items = []any{}
	}

	buf, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	if c.jqExpr != "" {
		buf, err = c.filter.Apply(buf, c.jqExpr)
		if err != nil {
			return err
		}
	}
	fmt.Fprintf(c.stdout, "%s\n", bytes.TrimRight(buf, "\n"))
	return nil
}

// projectFields narrows one item to the allow-list. Non-record items project
// to all-null values; projection never fails.
func projectFields(item any, fields []string) models.Record {
	switch rec := item.(type) {
	case models.Record:
		return rec.Pick(fields)
	case map[string]any:
		return models.Record(rec).Pick(fields)
	default:
		return models.Record{}.Pick(fields)
	}
}

func (c *Context) renderTSV(rows []models.Record, columns []string) {
	for _, rec := range rows {
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i] = models.FormatValue(rec[col])
		}
		fmt.Fprintln(c.stdout, strings.Join(cells, "\t"))
	}
}

func (c *Context) renderStyledDetail(rec models.Record, fields []models.Field) {
	labelWidth := 0
	for _, f := range fields {
		if len(f.Label) > labelWidth {
			labelWidth = len(f.Label)
		}
	}
	for _, f := range fields {
		label := fmt.Sprintf("%-*s", labelWidth, f.Label)
		fmt.Fprintf(c.stdout, "%s  %s\n",
			detailLabelStyle.Render(label),
			models.FormatValue(rec.Dig(f.Path)))
	}
}
