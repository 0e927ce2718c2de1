// Package integration contains database-backed tests for the event queue,
// webhook ingress, and service layer. Each test runs in its own PostgreSQL
// schema (see test/util).
package integration

import (
	"context"
	stdsql "database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/triggerflow/triggerflow/ent"
	"github.com/triggerflow/triggerflow/ent/automation"
	"github.com/triggerflow/triggerflow/pkg/credentials"
	"github.com/triggerflow/triggerflow/pkg/executor"
	"github.com/triggerflow/triggerflow/pkg/notify"
	"github.com/triggerflow/triggerflow/pkg/queue"
	"github.com/triggerflow/triggerflow/pkg/services"
	"github.com/triggerflow/triggerflow/pkg/tools"
	"github.com/triggerflow/triggerflow/test/util"
)

type testEnv struct {
	client      *ent.Client
	db          *stdsql.DB
	registry    *tools.StubRegistry
	queue       *queue.Queue
	executions  *services.ExecutionService
	automations *services.AutomationService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	client, db := util.SetupTestDatabase(t)

	registry := tools.NewStubRegistry()
	exec := executor.New(registry, notify.LogNotifier{})
	users := services.NewUserService(client)

	return &testEnv{
		client:      client,
		db:          db,
		registry:    registry,
		queue:       queue.New(client),
		executions:  services.NewExecutionService(client, exec, users, nil),
		automations: services.NewAutomationService(client),
	}
}

func (e *testEnv) createUser(t *testing.T, id string) {
	t.Helper()
	err := e.client.User.Create().
		SetID(id).
		SetEmail(id + "@example.com").
		SetTimezone("UTC").
		Exec(context.Background())
	require.NoError(t, err)
}

// createWebhookAutomation stores an active webhook automation with a single
// stub action.
func (e *testEnv) createWebhookAutomation(t *testing.T, ownerID, service string, triggerConfig map[string]any) *ent.Automation {
	t.Helper()
	if triggerConfig == nil {
		triggerConfig = map[string]any{}
	}
	triggerConfig["service"] = service

	auto, err := e.client.Automation.Create().
		SetID(uuid.New().String()).
		SetOwnerID(ownerID).
		SetName("test automation").
		SetTriggerType(automation.TriggerTypeWebhook).
		SetTriggerConfig(triggerConfig).
		SetActions([]map[string]any{
			{"id": "a1", "tool": "record_event"},
		}).
		SetStatus(automation.StatusActive).
		SetActive(true).
		Save(context.Background())
	require.NoError(t, err)
	return auto
}

func (e *testEnv) createIntegration(t *testing.T, ownerID, service, workspaceID string) {
	t.Helper()
	err := e.client.Integration.Create().
		SetOwnerID(ownerID).
		SetService(service).
		SetWorkspaceID(workspaceID).
		SetAccessToken("token-" + ownerID).
		Exec(context.Background())
	require.NoError(t, err)
}

func credStore(e *testEnv) *credentials.Store {
	return credentials.NewStore(e.client, nil)
}

// registerRecorder wires the stub tool the test automations call.
func (e *testEnv) registerRecorder() {
	e.registry.Register("record_event", nil, func(params map[string]any) (any, error) {
		return map[string]any{"recorded": true}, nil
	})
}
