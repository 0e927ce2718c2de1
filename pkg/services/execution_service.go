package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/triggerflow/triggerflow/ent"
	"github.com/triggerflow/triggerflow/ent/executionlog"
	"github.com/triggerflow/triggerflow/pkg/events"
	"github.com/triggerflow/triggerflow/pkg/executor"
	"github.com/triggerflow/triggerflow/pkg/models"
)

// ExecutionService runs automations and owns the execution-log lifecycle:
// one row per run, written running first and finalized when the walk ends.
// It implements queue.AutomationRunner for the dispatcher.
type ExecutionService struct {
	client    *ent.Client
	exec      *executor.Executor
	users     *UserService
	publisher *events.Publisher
}

// NewExecutionService creates a new ExecutionService. The publisher may be
// nil (status streaming disabled).
func NewExecutionService(client *ent.Client, exec *executor.Executor, users *UserService, publisher *events.Publisher) *ExecutionService {
	if client == nil {
		panic("NewExecutionService: client must not be nil")
	}
	if exec == nil {
		panic("NewExecutionService: exec must not be nil")
	}
	if users == nil {
		panic("NewExecutionService: users must not be nil")
	}
	return &ExecutionService{
		client:    client,
		exec:      exec,
		users:     users,
		publisher: publisher,
	}
}

// Run executes one automation against a trigger payload, persisting the
// execution log and publishing lifecycle events.
func (s *ExecutionService) Run(ctx context.Context, auto *ent.Automation, triggerType string, triggerData map[string]any) (*ent.ExecutionLog, *models.ExecutionResult, error) {
	log := slog.With("automation_id", auto.ID, "owner_id", auto.OwnerID, "trigger_type", triggerType)

	actions, err := models.DecodeActions(auto.Actions)
	if err != nil {
		return nil, nil, fmt.Errorf("decoding actions for automation %s: %w", auto.ID, err)
	}

	logID := uuid.New().String()
	row, err := s.client.ExecutionLog.Create().
		SetID(logID).
		SetAutomationID(auto.ID).
		SetOwnerID(auto.OwnerID).
		SetTriggerType(triggerType).
		SetTriggerData(triggerData).
		SetStatus(executionlog.StatusRunning).
		Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("creating execution log: %w", err)
	}

	s.publishStarted(ctx, row, auto, triggerType)

	result := s.exec.Execute(ctx, executor.Input{
		AutomationID:   auto.ID,
		AutomationName: auto.Name,
		OwnerID:        auto.OwnerID,
		Actions:        actions,
		Variables:      auto.Variables,
		TriggerData:    triggerData,
		User:           s.users.Info(ctx, auto.OwnerID),
		RequestID:      logID,
	})

	// Finalize with a background context — the trigger context may already
	// be cancelled, and the log row must not be left running.
	row, err = s.finalize(context.Background(), row, result)
	if err != nil {
		log.Error("Failed to finalize execution log", "error", err)
		return row, result, err
	}

	s.publishCompleted(context.Background(), row, auto, result)

	log.Info("Automation run complete",
		"status", result.Status,
		"actions_executed", result.ActionsExecuted,
		"actions_failed", result.ActionsFailed,
		"duration_ms", result.DurationMs)
	return row, result, nil
}

// RunForEvent implements the dispatcher's runner contract: the event
// payload becomes the trigger data.
func (s *ExecutionService) RunForEvent(ctx context.Context, auto *ent.Automation, ev *ent.Event) error {
	_, _, err := s.Run(ctx, auto, models.TriggerWebhook, ev.EventData)
	return err
}

// ExecuteManual runs an automation on demand. Unless testMode is set, the
// automation must be active.
func (s *ExecutionService) ExecuteManual(ctx context.Context, automationID string, triggerData map[string]any, testMode bool) (*ent.ExecutionLog, *models.ExecutionResult, error) {
	auto, err := s.client.Automation.Get(ctx, automationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, fmt.Errorf("%w: automation %s", ErrNotFound, automationID)
		}
		return nil, nil, fmt.Errorf("failed to get automation: %w", err)
	}
	if !auto.Active && !testMode {
		return nil, nil, fmt.Errorf("%w: %s", ErrNotActive, automationID)
	}
	if triggerData == nil {
		triggerData = map[string]any{}
	}
	return s.Run(ctx, auto, models.TriggerManual, triggerData)
}

// finalize writes the terminal state onto the execution log row.
func (s *ExecutionService) finalize(ctx context.Context, row *ent.ExecutionLog, result *models.ExecutionResult) (*ent.ExecutionLog, error) {
	update := row.Update().
		SetStatus(executionlog.Status(result.Status)).
		SetActionsExecuted(result.ActionsExecuted).
		SetActionsFailed(result.ActionsFailed).
		SetDurationMs(result.DurationMs).
		SetCompletedAt(time.Now())

	if results := actionResultsJSON(result.ActionResults); results != nil {
		update = update.SetActionResults(results)
	}
	if result.ErrorSummary != "" {
		update = update.SetErrorSummary(result.ErrorSummary)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return row, fmt.Errorf("updating execution log: %w", err)
	}
	return updated, nil
}

func (s *ExecutionService) publishStarted(ctx context.Context, row *ent.ExecutionLog, auto *ent.Automation, triggerType string) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishExecutionStarted(ctx, events.ExecutionStartedPayload{
		Type:         events.EventTypeExecutionStarted,
		ExecutionID:  row.ID,
		AutomationID: auto.ID,
		OwnerID:      auto.OwnerID,
		TriggerType:  triggerType,
		Timestamp:    time.Now().Format(time.RFC3339Nano),
	})
	if err != nil {
		slog.Warn("Failed to publish execution started", "execution_id", row.ID, "error", err)
	}
}

func (s *ExecutionService) publishCompleted(ctx context.Context, row *ent.ExecutionLog, auto *ent.Automation, result *models.ExecutionResult) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishExecutionCompleted(ctx, events.ExecutionCompletedPayload{
		Type:            events.EventTypeExecutionCompleted,
		ExecutionID:     row.ID,
		AutomationID:    auto.ID,
		OwnerID:         auto.OwnerID,
		Status:          result.Status,
		ActionsExecuted: result.ActionsExecuted,
		ActionsFailed:   result.ActionsFailed,
		DurationMs:      result.DurationMs,
		Timestamp:       time.Now().Format(time.RFC3339Nano),
	})
	if err != nil {
		slog.Warn("Failed to publish execution completed", "execution_id", row.ID, "error", err)
	}
}

// actionResultsJSON converts typed action results to the JSON map shape the
// ent column stores.
func actionResultsJSON(results []models.ActionResult) []map[string]any {
	if len(results) == 0 {
		return nil
	}
	data, err := json.Marshal(results)
	if err != nil {
		slog.Warn("Failed to marshal action results", "error", err)
		return nil
	}
	var out []map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		slog.Warn("Failed to convert action results", "error", err)
		return nil
	}
	return out
}
