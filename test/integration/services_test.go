package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triggerflow/triggerflow/ent/automation"
	"github.com/triggerflow/triggerflow/ent/executionlog"
	"github.com/triggerflow/triggerflow/pkg/models"
	"github.com/triggerflow/triggerflow/pkg/services"
)

func TestAutomationLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	auto, err := env.automations.Create(ctx, services.CreateAutomationInput{
		OwnerID:     "user-1",
		Name:        "standup reminder",
		TriggerType: models.TriggerScheduleRecurring,
		TriggerConfig: map[string]any{
			"interval":    "daily",
			"time_of_day": "09:00",
		},
		Actions: []map[string]any{
			{"id": "a1", "tool": "send_message", "parameters": map[string]any{"text": "standup"}},
		},
	})
	require.NoError(t, err)

	// New automations require review before they can run.
	assert.Equal(t, automation.StatusPendingReview, auto.Status)
	assert.False(t, auto.Active)

	// pending_review → active flips the runtime gate.
	auto, err = env.automations.UpdateStatus(ctx, auto.ID, "active")
	require.NoError(t, err)
	assert.Equal(t, automation.StatusActive, auto.Status)
	assert.True(t, auto.Active)

	// active → paused and back.
	auto, err = env.automations.UpdateStatus(ctx, auto.ID, "paused")
	require.NoError(t, err)
	assert.False(t, auto.Active)

	// paused → disabled is terminal-ish but allowed from anywhere.
	auto, err = env.automations.UpdateStatus(ctx, auto.ID, "disabled")
	require.NoError(t, err)
	assert.Equal(t, automation.StatusDisabled, auto.Status)

	// disabled → active is not a valid transition.
	_, err = env.automations.UpdateStatus(ctx, auto.ID, "active")
	require.Error(t, err)
	assert.True(t, services.IsValidationError(err))
}

func TestCreateAutomationRejectsInvalidDefinition(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input services.CreateAutomationInput
	}{
		{
			name: "webhook without service",
			input: services.CreateAutomationInput{
				OwnerID:       "user-1",
				Name:          "bad",
				TriggerType:   models.TriggerWebhook,
				TriggerConfig: map[string]any{},
				Actions:       []map[string]any{{"id": "a1", "tool": "t"}},
			},
		},
		{
			name: "no actions",
			input: services.CreateAutomationInput{
				OwnerID:       "user-1",
				Name:          "bad",
				TriggerType:   models.TriggerWebhook,
				TriggerConfig: map[string]any{"service": "slack"},
				Actions:       []map[string]any{},
			},
		},
		{
			name: "output_as shadows reserved key",
			input: services.CreateAutomationInput{
				OwnerID:       "user-1",
				Name:          "bad",
				TriggerType:   models.TriggerWebhook,
				TriggerConfig: map[string]any{"service": "slack"},
				Actions: []map[string]any{
					{"id": "a1", "tool": "t", "output_as": "trigger_data"},
				},
			},
		},
		{
			name: "control flow template",
			input: services.CreateAutomationInput{
				OwnerID:       "user-1",
				Name:          "bad",
				TriggerType:   models.TriggerWebhook,
				TriggerConfig: map[string]any{"service": "slack"},
				Actions: []map[string]any{
					{"id": "a1", "tool": "t", "parameters": map[string]any{
						"body": "{{#each items}}{{this}}{{/each}}",
					}},
				},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.automations.Create(ctx, tc.input)
			require.Error(t, err)
			assert.True(t, services.IsValidationError(err), "expected validation error, got %v", err)
		})
	}
}

func TestExecuteManualRequiresActive(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createUser(t, "user-1")
	env.registerRecorder()

	auto, err := env.automations.Create(ctx, services.CreateAutomationInput{
		OwnerID:       "user-1",
		Name:          "manual",
		TriggerType:   models.TriggerManual,
		TriggerConfig: map[string]any{},
		Actions:       []map[string]any{{"id": "a1", "tool": "record_event"}},
	})
	require.NoError(t, err)

	// Inactive without test mode refuses.
	_, _, err = env.executions.ExecuteManual(ctx, auto.ID, nil, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrNotActive))

	// Test mode bypasses the gate.
	row, result, err := env.executions.ExecuteManual(ctx, auto.ID, map[string]any{"probe": true}, true)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, result.Status)
	assert.Equal(t, executionlog.StatusCompleted, row.Status)
	assert.Equal(t, models.TriggerManual, row.TriggerType)
}

func TestExecutionRunChainsOutputs(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createUser(t, "user-1")
	env.registry.Register("fetch_tasks", nil, func(params map[string]any) (any, error) {
		return map[string]any{"count": float64(3)}, nil
	})
	var sent map[string]any
	env.registry.Register("send_message", nil, func(params map[string]any) (any, error) {
		sent = params
		return map[string]any{"ok": true}, nil
	})

	auto, err := env.automations.Create(ctx, services.CreateAutomationInput{
		OwnerID:       "user-1",
		Name:          "chained",
		TriggerType:   models.TriggerManual,
		TriggerConfig: map[string]any{},
		Actions: []map[string]any{
			{"id": "a1", "tool": "fetch_tasks", "output_as": "tasks"},
			{"id": "a2", "tool": "send_message", "parameters": map[string]any{
				"text": "you have {{tasks.count}} tasks",
			}},
		},
	})
	require.NoError(t, err)

	row, result, err := env.executions.ExecuteManual(ctx, auto.ID, nil, true)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, result.Status)
	assert.Equal(t, 2, result.ActionsExecuted)
	assert.Zero(t, result.ActionsFailed)
	require.NotNil(t, sent)
	assert.Equal(t, "you have 3 tasks", sent["text"])

	// The log row carries per-action results.
	require.Len(t, row.ActionResults, 2)
	assert.Equal(t, "a1", row.ActionResults[0]["action_id"])
	assert.Equal(t, true, row.ActionResults[0]["success"])
}
