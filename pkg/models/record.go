// Package models defines the data types shared between the API client and
// the output layer.
package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Record is one semi-structured item returned by the Langfuse API. Values are
// whatever the JSON decoder produced: string, json.Number, bool, nil, nested
// map[string]any, or []any. No schema is assumed; all access is defensive.
type Record map[string]any

// Page is one batch of records plus the server-reported total count. The
// count is authoritative for pagination termination but may be approximate.
type Page struct {
	Items      []Record
	TotalItems int
}

// Field pairs a display label with the dot-path that resolves its value in a
// detail view.
type Field struct {
	Label string
	Path  string
}

// Dig resolves a dot-path like "user.name" by walking nested maps. Decoded
// records nest plain map[string]any; command-assembled records nest Record
// values, and both walk the same. A missing key or a non-map intermediate
// yields nil, never an error.
func (r Record) Dig(path string) any {
	var current any = r
	for _, key := range strings.Split(path, ".") {
		switch m := current.(type) {
		case Record:
			current = m[key]
		case map[string]any:
			current = m[key]
		default:
			return nil
		}
	}
	return current
}

// Pick narrows the record to the given dot-paths. Each path becomes a literal
// key of the result (not expanded back into nesting), mapped to its resolved
// value, nil when absent.
func (r Record) Pick(paths []string) Record {
	out := make(Record, len(paths))
	for _, p := range paths {
		out[p] = r.Dig(p)
	}
	return out
}

// FormatValue renders a value for a table or TSV cell. Both render paths use
// this one rule so a terminal table cell and the corresponding piped TSV cell
// carry identical text.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case bool:
		if val {
			return "true"
		}
		return "false"
	case string:
		return val
	case json.Number:
		return val.String()
	case Record:
		return marshalCompact(map[string]any(val))
	case map[string]any, []any:
		return marshalCompact(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func marshalCompact(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
