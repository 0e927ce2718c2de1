package poller

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triggerflow/triggerflow/pkg/models"
	"github.com/triggerflow/triggerflow/pkg/template"
)

func testPoller() *Poller {
	fixed := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	return &Poller{
		resolver: template.NewResolver(),
		now:      func() time.Time { return fixed },
	}
}

func sampleItems() []map[string]any {
	return []map[string]any{
		{"id": "1", "date": "2026-08-19", "score": 80.0},
		{"id": "2", "date": "2026-08-20", "score": 90.0},
	}
}

func TestBuildEventsPerItem(t *testing.T) {
	p := testPoller()

	events, dropped := p.buildEvents("auto-1", "oura", "new_sleep", models.AggregationPerItem, nil, sampleItems(), nil)
	require.Len(t, events, 2)
	assert.Zero(t, dropped)

	// Stable per-item dedup ids: service-prefixed, date-suffixed.
	assert.Equal(t, "oura_1_2026-08-19", events[0].EventID)
	assert.Equal(t, "oura_2_2026-08-20", events[1].EventID)
	assert.Equal(t, "new_sleep", events[0].EventType)
	assert.Equal(t, "auto-1", events[0].Data["automation_id"])
	assert.Equal(t, 80.0, events[0].Data["score"])
}

func TestBuildEventsPerItemFilter(t *testing.T) {
	p := testPoller()
	filter := &models.Condition{Path: "trigger_data.score", Op: ">", Value: 85.0}

	events, dropped := p.buildEvents("auto-1", "oura", "new_sleep", models.AggregationPerItem, filter, sampleItems(), nil)
	require.Len(t, events, 1)
	assert.Equal(t, 1, dropped)
	assert.Equal(t, 90.0, events[0].Data["score"])
}

func TestBuildEventsBatch(t *testing.T) {
	p := testPoller()

	events, dropped := p.buildEvents("auto-1", "todoist", "tasks_due", models.AggregationBatch, nil, sampleItems(), nil)
	require.Len(t, events, 1)
	assert.Zero(t, dropped)

	ev := events[0]
	assert.Equal(t, "todoist_batch_1787227200000", ev.EventID)
	assert.Equal(t, 2, ev.Data["count"])
	assert.Equal(t, models.AggregationBatch, ev.Data["_aggregation"])
	items, ok := ev.Data["items"].([]any)
	require.True(t, ok)
	assert.Len(t, items, 2)
}

func TestBuildEventsBatchAllFiltered(t *testing.T) {
	p := testPoller()
	filter := &models.Condition{Path: "trigger_data.score", Op: ">", Value: 100.0}

	events, dropped := p.buildEvents("auto-1", "todoist", "tasks_due", models.AggregationBatch, filter, sampleItems(), nil)
	assert.Empty(t, events)
	assert.Equal(t, 2, dropped)
}

func TestBuildEventsSummary(t *testing.T) {
	p := testPoller()

	events, _ := p.buildEvents("auto-1", "oura", "sleep_summary", models.AggregationSummary, nil, sampleItems(), nil)
	require.Len(t, events, 1)

	data := events[0].Data
	assert.Equal(t, models.AggregationSummary, data["_aggregation"])
	latest, ok := data["latest"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "2", latest["id"])

	stats, ok := data["score_stats"].(map[string]float64)
	require.True(t, ok)
	assert.Equal(t, 80.0, stats["min"])
	assert.Equal(t, 90.0, stats["max"])
	assert.Equal(t, 85.0, stats["avg"])
}

func TestBuildEventsLatestPreservesShape(t *testing.T) {
	p := testPoller()

	t.Run("object output keeps keys", func(t *testing.T) {
		raw := map[string]any{"summary": map[string]any{"score": 77.0}, "day": "2026-08-20"}
		events, _ := p.buildEvents("auto-1", "oura", "readiness", models.AggregationLatest, nil, sampleItems(), raw)
		require.Len(t, events, 1)
		assert.Equal(t, "2026-08-20", events[0].Data["day"])
		assert.Equal(t, models.AggregationLatest, events[0].Data["_aggregation"])
	})

	t.Run("array output stays under items", func(t *testing.T) {
		raw := []any{map[string]any{"id": "1"}, map[string]any{"id": "2"}}
		events, _ := p.buildEvents("auto-1", "oura", "readiness", models.AggregationLatest, nil, sampleItems(), raw)
		require.Len(t, events, 1)
		items, ok := events[0].Data["items"].([]any)
		require.True(t, ok, "array outputs must never spread into numbered keys")
		assert.Len(t, items, 2)
		assert.Equal(t, 2, events[0].Data["count"])
	})

	t.Run("filter runs against raw output", func(t *testing.T) {
		raw := map[string]any{"score": 50.0}
		filter := &models.Condition{Path: "trigger_data.score", Op: ">", Value: 85.0}
		events, dropped := p.buildEvents("auto-1", "oura", "readiness", models.AggregationLatest, filter, sampleItems(), raw)
		assert.Empty(t, events)
		assert.Equal(t, 2, dropped)
	})
}

func TestDefaultInterval(t *testing.T) {
	assert.Equal(t, 60, defaultInterval("oura", ""))
	assert.Equal(t, 5, defaultInterval("todoist", ""))
	// Tool-name prefix match when service is empty.
	assert.Equal(t, 60, defaultInterval("", "oura_get_sleep"))
	assert.Equal(t, 10, defaultInterval("", "googlecalendar_list_events"))
	assert.Equal(t, fallbackIntervalMinutes, defaultInterval("unknown", "custom_tool"))
}

func TestLooksLikeHealthTool(t *testing.T) {
	assert.True(t, looksLikeHealthTool("oura_get_sleep"))
	assert.True(t, looksLikeHealthTool("fitbit_activity_summary"))
	assert.True(t, looksLikeHealthTool("get_readiness_score"))
	assert.False(t, looksLikeHealthTool("todoist_list_tasks"))
	assert.False(t, looksLikeHealthTool("slack_get_status"))
}
