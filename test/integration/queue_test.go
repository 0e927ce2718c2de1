package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triggerflow/triggerflow/ent/event"
	"github.com/triggerflow/triggerflow/ent/executionlog"
	"github.com/triggerflow/triggerflow/pkg/config"
	"github.com/triggerflow/triggerflow/pkg/models"
	"github.com/triggerflow/triggerflow/pkg/queue"
)

func fastDispatcherConfig() *config.DispatcherConfig {
	return &config.DispatcherConfig{
		WorkerCount:        2,
		PollInterval:       25 * time.Millisecond,
		PollIntervalJitter: 10 * time.Millisecond,
		MaxRetries:         3,
	}
}

func TestEnqueueDeduplicates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ev := models.InboundEvent{
		OwnerID:   "user-1",
		Service:   "slack",
		EventType: "message",
		EventID:   "ev-123",
		Data:      map[string]any{"text": "hello"},
	}

	created, err := env.queue.Enqueue(ctx, ev)
	require.NoError(t, err)
	assert.True(t, created)

	// Same (service, event_id, owner) must be swallowed silently.
	created, err = env.queue.Enqueue(ctx, ev)
	require.NoError(t, err)
	assert.False(t, created)

	// A different owner receiving the same event is a distinct row.
	ev.OwnerID = "user-2"
	created, err = env.queue.Enqueue(ctx, ev)
	require.NoError(t, err)
	assert.True(t, created)

	count, err := env.client.Event.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestDispatcherExecutesMatchingAutomation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createUser(t, "user-1")
	env.registerRecorder()
	auto := env.createWebhookAutomation(t, "user-1", "slack", nil)

	pool := queue.NewDispatcherPool("test-pod", env.client, fastDispatcherConfig(), env.executions)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	_, err := env.queue.Enqueue(ctx, models.InboundEvent{
		OwnerID:   "user-1",
		Service:   "slack",
		EventType: "message",
		EventID:   "ev-1",
		Data:      map[string]any{"text": "hello"},
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		n, err := env.client.ExecutionLog.Query().
			Where(executionlog.AutomationIDEQ(auto.ID)).
			Count(ctx)
		return err == nil && n == 1
	}, 10*time.Second, 50*time.Millisecond, "expected one execution log")

	row, err := env.client.ExecutionLog.Query().
		Where(executionlog.AutomationIDEQ(auto.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, executionlog.StatusCompleted, row.Status)
	assert.Equal(t, models.TriggerWebhook, row.TriggerType)
	assert.Equal(t, 1, row.ActionsExecuted)

	// The event must be marked processed exactly once.
	ev, err := env.client.Event.Query().Where(event.EventIDEQ("ev-1")).Only(ctx)
	require.NoError(t, err)
	assert.True(t, ev.Processed)
	assert.NotNil(t, ev.ProcessedAt)

	calls := env.registry.CallsTo("record_event")
	require.Len(t, calls, 1)
	assert.Equal(t, "user-1", calls[0].OwnerID)
}

func TestDispatcherSkipsNonMatchingService(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createUser(t, "user-1")
	env.registerRecorder()
	auto := env.createWebhookAutomation(t, "user-1", "github", nil)

	pool := queue.NewDispatcherPool("test-pod", env.client, fastDispatcherConfig(), env.executions)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	_, err := env.queue.Enqueue(ctx, models.InboundEvent{
		OwnerID:   "user-1",
		Service:   "slack",
		EventType: "message",
		EventID:   "ev-1",
		Data:      map[string]any{"text": "hello"},
	})
	require.NoError(t, err)

	// The event is consumed even though nothing matches.
	require.Eventually(t, func() bool {
		ev, err := env.client.Event.Query().Where(event.EventIDEQ("ev-1")).Only(ctx)
		return err == nil && ev.Processed
	}, 10*time.Second, 50*time.Millisecond)

	n, err := env.client.ExecutionLog.Query().
		Where(executionlog.AutomationIDEQ(auto.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDispatcherAppliesEventTypeFilter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createUser(t, "user-1")
	env.registerRecorder()
	auto := env.createWebhookAutomation(t, "user-1", "slack", map[string]any{
		"event_type": "reaction_added",
	})

	pool := queue.NewDispatcherPool("test-pod", env.client, fastDispatcherConfig(), env.executions)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	for _, ev := range []models.InboundEvent{
		{OwnerID: "user-1", Service: "slack", EventType: "message", EventID: "ev-msg", Data: map[string]any{"marker": "msg"}},
		{OwnerID: "user-1", Service: "slack", EventType: "reaction_added", EventID: "ev-react", Data: map[string]any{"marker": "react"}},
	} {
		_, err := env.queue.Enqueue(ctx, ev)
		require.NoError(t, err)
	}

	require.Eventually(t, func() bool {
		n, err := env.client.Event.Query().Where(event.ProcessedEQ(true)).Count(ctx)
		return err == nil && n == 2
	}, 10*time.Second, 50*time.Millisecond)

	logs, err := env.client.ExecutionLog.Query().
		Where(executionlog.AutomationIDEQ(auto.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "react", logs[0].TriggerData["marker"])
}
