package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFields(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		expected []string
	}{
		{"empty", "", nil},
		{"single field", "id", []string{"id"}},
		{"multiple fields", "id,name,userId", []string{"id", "name", "userId"}},
		{"dot paths", "id,metadata.model", []string{"id", "metadata.model"}},
		{"whitespace trimmed", " id , name ", []string{"id", "name"}},
		{"empty segments dropped", "id,,name,", []string{"id", "name"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitFields(tt.spec))
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty passthrough", "", ""},
		{"full RFC 3339", "2026-02-16T10:30:00Z", "2026-02-16T10:30:00Z"},
		{"offset normalized to UTC", "2026-02-16T10:30:00+02:00", "2026-02-16T08:30:00Z"},
		{"naive datetime is UTC", "2026-02-16T10:30:00", "2026-02-16T10:30:00Z"},
		{"date only", "2026-02-16", "2026-02-16T00:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTimestamp(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("Garbage is rejected", func(t *testing.T) {
		_, err := parseTimestamp("yesterday")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid timestamp")
	})
}

func TestResolveLimit(t *testing.T) {
	t.Run("Explicit flag always wins", func(t *testing.T) {
		t.Setenv("LFCONFIG", t.TempDir()+"/config.yaml")
		assert.Equal(t, 10, resolveLimit(10, true))
	})

	t.Run("Default flag without config keeps its value", func(t *testing.T) {
		t.Setenv("LFCONFIG", t.TempDir()+"/config.yaml")
		assert.Equal(t, 50, resolveLimit(50, false))
	})
}
