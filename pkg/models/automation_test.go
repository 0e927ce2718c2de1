package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeActionsLegacyAliases(t *testing.T) {
	raw := []map[string]any{
		{
			"action_id": "a1",
			"tool":      "send_message",
			"params":    map[string]any{"channel": "C1"},
		},
		{
			"id":         "a2",
			"tool":       "create_task",
			"parameters": map[string]any{"content": "follow up"},
			"output_as":  "task",
		},
	}

	actions, err := DecodeActions(raw)
	require.NoError(t, err)
	require.Len(t, actions, 2)

	assert.Equal(t, "a1", actions[0].ID)
	assert.Equal(t, map[string]any{"channel": "C1"}, actions[0].Parameters)
	assert.Equal(t, "a2", actions[1].ID)
	assert.Equal(t, "task", actions[1].OutputAs)
}

func TestDecodeActionsModernFieldsWin(t *testing.T) {
	raw := []map[string]any{{
		"id":         "modern",
		"action_id":  "legacy",
		"tool":       "t",
		"parameters": map[string]any{"a": 1.0},
		"params":     map[string]any{"b": 2.0},
	}}

	actions, err := DecodeActions(raw)
	require.NoError(t, err)
	assert.Equal(t, "modern", actions[0].ID)
	assert.Equal(t, map[string]any{"a": 1.0}, actions[0].Parameters)
}

func TestMatchesEventType(t *testing.T) {
	tests := []struct {
		name      string
		cfg       WebhookTriggerConfig
		eventType string
		want      bool
	}{
		{"no config matches everything", WebhookTriggerConfig{}, "message", true},
		{"singular match", WebhookTriggerConfig{EventType: "message"}, "message", true},
		{"singular case-insensitive", WebhookTriggerConfig{EventType: "Message"}, "message", true},
		{"singular miss", WebhookTriggerConfig{EventType: "message"}, "reaction_added", false},
		{"plural match", WebhookTriggerConfig{EventTypes: []string{"issues", "pull_request"}}, "pull_request", true},
		{"plural miss", WebhookTriggerConfig{EventTypes: []string{"issues"}}, "push", false},
		{"singular and plural both checked", WebhookTriggerConfig{EventType: "push", EventTypes: []string{"issues"}}, "issues", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.cfg.MatchesEventType(tc.eventType))
		})
	}
}

func TestFilterCondition(t *testing.T) {
	singular := &Condition{Path: "trigger_data.text", Op: "contains", Value: "x"}
	plural := &Condition{Path: "trigger_data.text", Op: "contains", Value: "y"}

	assert.Nil(t, (&WebhookTriggerConfig{}).FilterCondition())
	assert.Same(t, singular, (&WebhookTriggerConfig{Filter: singular}).FilterCondition())
	assert.Same(t, plural, (&WebhookTriggerConfig{Filters: plural}).FilterCondition())
	// The singular field wins when both are present.
	assert.Same(t, singular, (&WebhookTriggerConfig{Filter: singular, Filters: plural}).FilterCondition())
}

func TestDecodeTriggerConfig(t *testing.T) {
	raw := map[string]any{
		"service":     "slack",
		"event_type":  "message",
		"event_types": []any{"reaction_added"},
		"filter": map[string]any{
			"path": "trigger_data.text", "op": "contains", "value": "urgent",
		},
	}

	var cfg WebhookTriggerConfig
	require.NoError(t, DecodeTriggerConfig(raw, &cfg))
	assert.Equal(t, "slack", cfg.Service)
	assert.Equal(t, []string{"reaction_added"}, cfg.EventTypes)
	require.NotNil(t, cfg.Filter)
	assert.Equal(t, "urgent", cfg.Filter.Value)

	t.Run("polling config", func(t *testing.T) {
		var p PollingTriggerConfig
		require.NoError(t, DecodeTriggerConfig(map[string]any{
			"source_tool":              "oura_get_sleep",
			"aggregation_mode":         "latest",
			"polling_interval_minutes": 60.0,
		}, &p))
		assert.Equal(t, "oura_get_sleep", p.SourceTool)
		assert.Equal(t, AggregationLatest, p.AggregationMode)
		assert.Equal(t, 60, p.PollingIntervalMinutes)
	})
}

func TestGetPath(t *testing.T) {
	data := map[string]any{
		"trigger_data": map[string]any{
			"items": []any{
				map[string]any{"id": "a"},
				map[string]any{"id": "b"},
			},
			"summary": map[string]any{"score": 91.0},
			"empty":   nil,
		},
	}

	tests := []struct {
		path string
		want any
	}{
		{"trigger_data.summary.score", 91.0},
		{"trigger_data.items.0.id", "a"},
		{"trigger_data.items.-1.id", "b"},
		{"trigger_data.items[1].id", "b"},
		{"trigger_data.items.5.id", nil},
		{"trigger_data.empty", nil},
		{"trigger_data.missing.deeper", nil},
		// Index 0 over a single object skips the segment.
		{"trigger_data.summary.0.score", 91.0},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.want, GetPath(data, tc.path))
		})
	}
}

func TestAsFloat(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
		ok   bool
	}{
		{"float64", 72.5, 72.5, true},
		{"int", 3, 3, true},
		{"numeric string", " 88 ", 88, true},
		{"bool true", true, 1, true},
		{"non-numeric string", "open", 0, false},
		{"nil", nil, 0, false},
		{"map", map[string]any{}, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := AsFloat(tc.in)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestIsUsageLimit(t *testing.T) {
	assert.True(t, IsUsageLimit(map[string]any{"error": UsageLimitErrorCode, "service": "openai"}))
	assert.False(t, IsUsageLimit(map[string]any{"error": "SOMETHING_ELSE"}))
	assert.False(t, IsUsageLimit("Error: nope"))
	assert.False(t, IsUsageLimit(nil))
}
