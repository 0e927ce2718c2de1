package poller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractItems(t *testing.T) {
	t.Run("known array shells unwrap", func(t *testing.T) {
		out := extractItems(map[string]any{
			"data": []any{
				map[string]any{"id": "1"},
				map[string]any{"id": "2"},
			},
		})
		require.Len(t, out, 2)
		assert.Equal(t, "1", out[0]["id"])
	})

	t.Run("tasks shell", func(t *testing.T) {
		out := extractItems(map[string]any{
			"tasks": []any{map[string]any{"id": "t1"}},
		})
		require.Len(t, out, 1)
	})

	t.Run("summary object becomes singleton", func(t *testing.T) {
		out := extractItems(map[string]any{
			"summary": map[string]any{"score": 88.0},
		})
		require.Len(t, out, 1)
		assert.Equal(t, 88.0, out[0]["score"])
	})

	t.Run("plain object is itself the item", func(t *testing.T) {
		out := extractItems(map[string]any{"status_text": "lunch"})
		require.Len(t, out, 1)
		assert.Equal(t, "lunch", out[0]["status_text"])
	})

	t.Run("bare array", func(t *testing.T) {
		out := extractItems([]any{
			map[string]any{"id": "1"},
			"loose string",
		})
		require.Len(t, out, 2)
		assert.Equal(t, "loose string", out[1]["message"])
	})

	t.Run("nil output", func(t *testing.T) {
		assert.Nil(t, extractItems(nil))
	})

	t.Run("primitive wraps as message", func(t *testing.T) {
		out := extractItems("all clear")
		require.Len(t, out, 1)
		assert.Equal(t, "all clear", out[0]["message"])
	})
}
