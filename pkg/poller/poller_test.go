package poller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triggerflow/triggerflow/pkg/models"
)

func TestMaterializeParams(t *testing.T) {
	p := testPoller() // now = 2026-08-20 12:00 UTC

	t.Run("cursor substitutes last_cursor", func(t *testing.T) {
		cfg := models.PollingTriggerConfig{
			SourceTool: "todoist_list_tasks",
			ToolParams: map[string]any{"since": "{{last_cursor}}"},
		}
		params := p.materializeParams(cfg, "2026-08-18")
		assert.Equal(t, "2026-08-18", params["since"])
	})

	t.Run("empty cursor defaults to yesterday", func(t *testing.T) {
		cfg := models.PollingTriggerConfig{
			SourceTool: "todoist_list_tasks",
			ToolParams: map[string]any{"since": "{{last_cursor}}"},
		}
		params := p.materializeParams(cfg, "")
		assert.Equal(t, "2026-08-19", params["since"])
	})

	t.Run("health tools get date range defaults", func(t *testing.T) {
		cfg := models.PollingTriggerConfig{SourceTool: "oura_get_sleep"}
		params := p.materializeParams(cfg, "2026-08-17T22:00:00Z")
		assert.Equal(t, "2026-08-17", params["start_date"])
		assert.Equal(t, "2026-08-20", params["end_date"])
	})

	t.Run("explicit dates are not overridden", func(t *testing.T) {
		cfg := models.PollingTriggerConfig{
			SourceTool: "oura_get_sleep",
			ToolParams: map[string]any{"start_date": "2026-08-01"},
		}
		params := p.materializeParams(cfg, "2026-08-17")
		assert.Equal(t, "2026-08-01", params["start_date"])
		assert.Equal(t, "2026-08-20", params["end_date"])
	})

	t.Run("non-health tools get no date defaults", func(t *testing.T) {
		cfg := models.PollingTriggerConfig{SourceTool: "todoist_list_tasks"}
		params := p.materializeParams(cfg, "2026-08-17")
		_, hasStart := params["start_date"]
		assert.False(t, hasStart)
	})
}

func TestFilterNew(t *testing.T) {
	p := testPoller()

	items := []map[string]any{
		{"id": "1", "date": "2026-08-18"},
		{"id": "2", "date": "2026-08-19"},
		{"id": "3", "date": "2026-08-20"},
	}

	t.Run("empty cursor keeps everything", func(t *testing.T) {
		assert.Len(t, p.filterNew(items, ""), 3)
	})

	t.Run("date cursor drops stale items", func(t *testing.T) {
		out := p.filterNew(items, "2026-08-19")
		require.Len(t, out, 1)
		assert.Equal(t, "3", out[0]["id"])
	})

	t.Run("dateless items compare by signature", func(t *testing.T) {
		status := []map[string]any{{"status_text": "lunch", "status_emoji": ""}}
		assert.Len(t, p.filterNew(status, "status:lunch|"), 0)
		assert.Len(t, p.filterNew(status, "status:focus|"), 1)
	})
}

func TestAdvanceCursor(t *testing.T) {
	p := testPoller()

	t.Run("advances to newest item date", func(t *testing.T) {
		next := p.advanceCursor("2026-08-18", []map[string]any{
			{"id": "1", "date": "2026-08-20"},
			{"id": "2", "date": "2026-08-19"},
		})
		assert.Equal(t, "2026-08-20", next)
	})

	t.Run("no new items keeps cursor", func(t *testing.T) {
		assert.Equal(t, "2026-08-18", p.advanceCursor("2026-08-18", nil))
	})

	t.Run("dateless items advance by signature", func(t *testing.T) {
		next := p.advanceCursor("status:focus|", []map[string]any{
			{"status_text": "lunch", "status_emoji": ""},
		})
		assert.Equal(t, "status:lunch|", next)
	})
}
