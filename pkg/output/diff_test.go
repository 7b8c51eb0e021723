package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderDiff(t *testing.T) {
	t.Run("Identical inputs produce a notice", func(t *testing.T) {
		tc := newTestContext(Options{})
		tc.ctx.RenderDiff("same\ntext\n", "same\ntext\n", "v1", "v2")

		assert.Equal(t, "No differences found.\n", tc.stdout.String())
	})

	t.Run("Changed lines carry prefixes", func(t *testing.T) {
		tc := newTestContext(Options{})
		tc.ctx.RenderDiff("keep\nold line\n", "keep\nnew line\n", "v1", "v2")

		assert.Equal(t, "--- v1\n+++ v2\n keep\n-old line\n+new line\n", tc.stdout.String())
	})

	t.Run("Pure addition", func(t *testing.T) {
		tc := newTestContext(Options{})
		tc.ctx.RenderDiff("", "first\nsecond\n", "v1", "v2")

		assert.Equal(t, "--- v1\n+++ v2\n+first\n+second\n", tc.stdout.String())
	})

	t.Run("Pure deletion", func(t *testing.T) {
		tc := newTestContext(Options{})
		tc.ctx.RenderDiff("first\nsecond\n", "", "v1", "v2")

		assert.Equal(t, "--- v1\n+++ v2\n-first\n-second\n", tc.stdout.String())
	})
}

func TestDiffLines(t *testing.T) {
	tests := []struct {
		name     string
		a        []string
		b        []string
		expected []diffOp
	}{
		{
			"equal slices",
			[]string{"a", "b"},
			[]string{"a", "b"},
			[]diffOp{{diffEqual, "a"}, {diffEqual, "b"}},
		},
		{
			"replacement",
			[]string{"a"},
			[]string{"b"},
			[]diffOp{{diffDelete, "a"}, {diffInsert, "b"}},
		},
		{
			"insertion in the middle",
			[]string{"a", "c"},
			[]string{"a", "b", "c"},
			[]diffOp{{diffEqual, "a"}, {diffInsert, "b"}, {diffEqual, "c"}},
		},
		{
			"both empty",
			nil,
			nil,
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, diffLines(tt.a, tt.b))
		})
	}
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, splitLines(""))
	assert.Equal(t, []string{"one"}, splitLines("one"))
	assert.Equal(t, []string{"one", "two"}, splitLines("one\ntwo\n"))
}
