package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kazuma-desu/lf/pkg/models"
)

func TestSubstituteVars(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		variables map[string]string
		expected  string
	}{
		{
			"single variable",
			"Hello {{name}}!",
			map[string]string{"name": "Ada"},
			"Hello Ada!",
		},
		{
			"repeated variable",
			"{{x}} and {{x}}",
			map[string]string{"x": "y"},
			"y and y",
		},
		{
			"unknown placeholder survives",
			"Hello {{name}}, {{missing}}",
			map[string]string{"name": "Ada"},
			"Hello Ada, {{missing}}",
		},
		{
			"no variables",
			"static text",
			nil,
			"static text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, substituteVars(tt.text, tt.variables))
		})
	}
}

func TestCompilePrompt(t *testing.T) {
	t.Run("Text prompt", func(t *testing.T) {
		prompt := models.Record{"prompt": "Summarize {{topic}} briefly."}
		got := compilePrompt(prompt, map[string]string{"topic": "pagination"})
		assert.Equal(t, "Summarize pagination briefly.", got)
	})

	t.Run("Chat prompt substitutes message content", func(t *testing.T) {
		prompt := models.Record{"prompt": []any{
			map[string]any{"role": "system", "content": "You are {{persona}}."},
			map[string]any{"role": "user", "content": "Hi"},
		}}

		got := compilePrompt(prompt, map[string]string{"persona": "a pirate"})
		messages, ok := got.([]any)
		assert.True(t, ok)
		assert.Equal(t, map[string]any{"role": "system", "content": "You are a pirate."}, messages[0])
		assert.Equal(t, map[string]any{"role": "user", "content": "Hi"}, messages[1])
	})

	t.Run("Original messages are not mutated", func(t *testing.T) {
		original := map[string]any{"role": "user", "content": "{{x}}"}
		prompt := models.Record{"prompt": []any{original}}

		compilePrompt(prompt, map[string]string{"x": "filled"})
		assert.Equal(t, "{{x}}", original["content"])
	})

	t.Run("Missing body passes through", func(t *testing.T) {
		assert.Nil(t, compilePrompt(models.Record{}, nil))
	})
}

func TestPromptText(t *testing.T) {
	t.Run("Text body as is", func(t *testing.T) {
		assert.Equal(t, "hello", promptText(models.Record{"prompt": "hello"}))
	})

	t.Run("Missing body is empty", func(t *testing.T) {
		assert.Equal(t, "", promptText(models.Record{}))
	})

	t.Run("Chat body becomes indented JSON", func(t *testing.T) {
		got := promptText(models.Record{"prompt": []any{
			map[string]any{"role": "user", "content": "hi"},
		}})

		assert.Contains(t, got, `"role": "user"`)
		assert.Contains(t, got, `"content": "hi"`)
	})
}

func TestVersionParam(t *testing.T) {
	assert.Equal(t, "", versionParam(0))
	assert.Equal(t, "", versionParam(-1))
	assert.Equal(t, "3", versionParam(3))
}
