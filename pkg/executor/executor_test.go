package executor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triggerflow/triggerflow/pkg/models"
	"github.com/triggerflow/triggerflow/pkg/tools"
)

type recordingNotifier struct {
	usageLimit []string
	failures   []string
}

func (n *recordingNotifier) NotifyUsageLimitExceeded(ctx context.Context, ownerID, automationID, name string) error {
	n.usageLimit = append(n.usageLimit, automationID)
	return nil
}

func (n *recordingNotifier) NotifyAutomationFailed(ctx context.Context, ownerID, automationID, name, summary string) error {
	n.failures = append(n.failures, automationID)
	return nil
}

func fixedClock() func() time.Time {
	fixed := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return fixed }
}

func baseInput(actions []models.Action) Input {
	return Input{
		AutomationID:   "auto-1",
		AutomationName: "Morning briefing",
		OwnerID:        "user-1",
		Actions:        actions,
		TriggerData:    map[string]any{"text": "hello", "channel": "C1"},
		User:           models.UserInfo{ID: "user-1", Email: "u@example.com", Timezone: "UTC"},
	}
}

func TestExecuteRunsActionsInOrder(t *testing.T) {
	registry := tools.NewStubRegistry()
	registry.Register("first", nil, func(params map[string]any) (any, error) {
		return map[string]any{"ok": true}, nil
	})
	registry.Register("second", nil, func(params map[string]any) (any, error) {
		return "done", nil
	})

	e := New(registry, nil, WithClock(fixedClock()))
	result := e.Execute(context.Background(), baseInput([]models.Action{
		{ID: "a1", Tool: "first"},
		{ID: "a2", Tool: "second"},
	}))

	assert.True(t, result.Success)
	assert.Equal(t, models.StatusCompleted, result.Status)
	assert.Equal(t, 2, result.ActionsExecuted)
	assert.Zero(t, result.ActionsFailed)
	require.Len(t, result.ActionResults, 2)
	assert.Equal(t, "a1", result.ActionResults[0].ActionID)
	assert.Equal(t, "a2", result.ActionResults[1].ActionID)

	calls := registry.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "first", calls[0].Tool)
	assert.Equal(t, "user-1", calls[0].OwnerID)
}

func TestExecuteTemplatesParameters(t *testing.T) {
	registry := tools.NewStubRegistry()
	registry.Register("send_message", nil, func(params map[string]any) (any, error) {
		return "sent", nil
	})

	e := New(registry, nil, WithClock(fixedClock()))
	in := baseInput([]models.Action{{
		ID:   "a1",
		Tool: "send_message",
		Parameters: map[string]any{
			"channel": "{{trigger_data.channel}}",
			"text":    "got: {{text}}", // bare paths resolve via the spread
		},
	}})
	in.Variables = map[string]any{"prefix": "fyi"}

	result := e.Execute(context.Background(), in)
	require.True(t, result.Success)

	calls := registry.CallsTo("send_message")
	require.Len(t, calls, 1)
	assert.Equal(t, "C1", calls[0].Params["channel"])
	assert.Equal(t, "got: hello", calls[0].Params["text"])
}

func TestExecuteOutputChaining(t *testing.T) {
	registry := tools.NewStubRegistry()
	registry.Register("fetch", nil, func(params map[string]any) (any, error) {
		return map[string]any{"data": map[string]any{"count": 3.0}}, nil
	})
	var got any
	registry.Register("report", nil, func(params map[string]any) (any, error) {
		got = params["text"]
		return "ok", nil
	})

	e := New(registry, nil, WithClock(fixedClock()))
	result := e.Execute(context.Background(), baseInput([]models.Action{
		{ID: "a1", Tool: "fetch", OutputAs: "tasks"},
		// Wrapper keys flatten, so both paths reach the same value.
		{ID: "a2", Tool: "report", Parameters: map[string]any{"text": "{{tasks.count}}/{{tasks.data.count}}"}},
	}))

	require.True(t, result.Success)
	assert.Equal(t, "3/3", got)
}

func TestExecuteStringOutputJSONExtraction(t *testing.T) {
	registry := tools.NewStubRegistry()
	registry.Register("fetch", nil, func(params map[string]any) (any, error) {
		return "Here you go:\n```json\n{\"score\": 91}\n```", nil
	})
	var got any
	registry.Register("report", nil, func(params map[string]any) (any, error) {
		got = params["text"]
		return "ok", nil
	})

	e := New(registry, nil, WithClock(fixedClock()))
	result := e.Execute(context.Background(), baseInput([]models.Action{
		{ID: "a1", Tool: "fetch", OutputAs: "sleep"},
		{ID: "a2", Tool: "report", Parameters: map[string]any{"text": "score {{sleep.score}}"}},
	}))

	require.True(t, result.Success)
	assert.Equal(t, "score 91", got)
}

func TestExecuteConditionSkips(t *testing.T) {
	registry := tools.NewStubRegistry()
	registry.Register("notify", nil, func(params map[string]any) (any, error) {
		return "sent", nil
	})

	e := New(registry, nil, WithClock(fixedClock()))
	result := e.Execute(context.Background(), baseInput([]models.Action{{
		ID:        "a1",
		Tool:      "notify",
		Condition: &models.Condition{Path: "trigger_data.text", Op: "contains", Value: "urgent"},
	}}))

	assert.True(t, result.Success)
	assert.Equal(t, models.StatusCompleted, result.Status)
	// Skipped actions count toward neither executed nor failed.
	assert.Zero(t, result.ActionsExecuted)
	require.Len(t, result.ActionResults, 1)
	assert.True(t, result.ActionResults[0].Skipped)
	require.NotNil(t, result.ActionResults[0].ConditionResult)
	assert.False(t, *result.ActionResults[0].ConditionResult)
	assert.Empty(t, registry.Calls())
}

func TestExecutePartialFailure(t *testing.T) {
	registry := tools.NewStubRegistry()
	registry.Register("flaky", nil, func(params map[string]any) (any, error) {
		return nil, errors.New("upstream 502")
	})
	registry.Register("steady", nil, func(params map[string]any) (any, error) {
		return "ok", nil
	})

	notifier := &recordingNotifier{}
	e := New(registry, notifier, WithClock(fixedClock()))
	result := e.Execute(context.Background(), baseInput([]models.Action{
		{ID: "a1", Tool: "flaky"},
		{ID: "a2", Tool: "steady"},
	}))

	assert.True(t, result.Success)
	assert.Equal(t, models.StatusPartialFailure, result.Status)
	assert.Equal(t, 2, result.ActionsExecuted)
	assert.Equal(t, 1, result.ActionsFailed)
	assert.Contains(t, result.ErrorSummary, "a1: upstream 502")
	// Partial failures do not notify; only full failures do.
	assert.Empty(t, notifier.failures)
}

func TestExecuteAllFailedNotifies(t *testing.T) {
	registry := tools.NewStubRegistry()
	registry.Register("broken", nil, func(params map[string]any) (any, error) {
		return nil, errors.New("boom")
	})

	notifier := &recordingNotifier{}
	e := New(registry, notifier, WithClock(fixedClock()))
	result := e.Execute(context.Background(), baseInput([]models.Action{
		{ID: "a1", Tool: "broken"},
	}))

	assert.False(t, result.Success)
	assert.Equal(t, models.StatusFailed, result.Status)
	assert.Equal(t, []string{"auto-1"}, notifier.failures)
}

func TestExecuteInBandErrorString(t *testing.T) {
	registry := tools.NewStubRegistry()
	registry.Register("legacy", nil, func(params map[string]any) (any, error) {
		return "Error: token expired", nil
	})

	e := New(registry, nil, WithClock(fixedClock()))
	result := e.Execute(context.Background(), baseInput([]models.Action{
		{ID: "a1", Tool: "legacy"},
	}))

	assert.Equal(t, models.StatusFailed, result.Status)
	assert.Contains(t, result.ActionResults[0].Error, "token expired")
}

func TestExecuteUsageLimitAborts(t *testing.T) {
	registry := tools.NewStubRegistry()
	registry.Register("capped", nil, func(params map[string]any) (any, error) {
		return map[string]any{
			"error":   models.UsageLimitErrorCode,
			"service": "openai",
			"message": "monthly quota exhausted",
		}, nil
	})
	registry.Register("never", nil, func(params map[string]any) (any, error) {
		t.Fatal("action after the usage limit sentinel must not run")
		return nil, nil
	})

	notifier := &recordingNotifier{}
	e := New(registry, notifier, WithClock(fixedClock()))
	result := e.Execute(context.Background(), baseInput([]models.Action{
		{ID: "a1", Tool: "capped"},
		{ID: "a2", Tool: "never"},
	}))

	assert.False(t, result.Success)
	assert.Equal(t, models.StatusUsageLimitExceeded, result.Status)
	assert.Equal(t, "Usage limit exceeded for openai", result.ErrorSummary)
	require.Len(t, result.ActionResults, 1)
	assert.Contains(t, result.ActionResults[0].Error, "monthly quota exhausted")
	assert.Equal(t, []string{"auto-1"}, notifier.usageLimit)
	assert.Empty(t, registry.CallsTo("never"))
}

func TestExecuteUnknownToolFails(t *testing.T) {
	registry := tools.NewStubRegistry()
	e := New(registry, nil, WithClock(fixedClock()))

	result := e.Execute(context.Background(), baseInput([]models.Action{
		{ID: "a1", Tool: "missing_tool"},
	}))

	assert.Equal(t, models.StatusFailed, result.Status)
	assert.Contains(t, result.ActionResults[0].Error, "missing_tool")
}

func TestBuildContextPrecedence(t *testing.T) {
	e := New(tools.NewStubRegistry(), nil)
	in := baseInput(nil)
	// A payload field colliding with a reserved key loses to the reserved
	// binding; user variables win over payload fields.
	in.TriggerData["user"] = "impostor"
	in.TriggerData["channel"] = "C1"
	in.Variables = map[string]any{"channel": "override"}

	ctx := e.buildContext(in)
	assert.Equal(t, "override", ctx["channel"])
	user, ok := ctx["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "u@example.com", user["email"])
	assert.Equal(t, in.TriggerData, ctx["trigger_data"])
}
