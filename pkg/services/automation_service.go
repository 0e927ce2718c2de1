package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/triggerflow/triggerflow/ent"
	"github.com/triggerflow/triggerflow/ent/automation"
	"github.com/triggerflow/triggerflow/ent/executionlog"
	"github.com/triggerflow/triggerflow/pkg/models"
	"github.com/triggerflow/triggerflow/pkg/template"
)

// CreateAutomationInput contains the domain-level data needed to create an
// automation record. Transformed from the HTTP request by the handler.
type CreateAutomationInput struct {
	OwnerID       string
	Name          string
	TriggerType   string
	TriggerConfig map[string]any
	Actions       []map[string]any
	Variables     map[string]any
}

// AutomationService handles automation CRUD and lifecycle transitions.
type AutomationService struct {
	client *ent.Client
}

// NewAutomationService creates a new AutomationService.
func NewAutomationService(client *ent.Client) *AutomationService {
	if client == nil {
		panic("NewAutomationService: client must not be nil")
	}
	return &AutomationService{client: client}
}

// Create validates and stores a new automation in pending_review status.
func (s *AutomationService) Create(ctx context.Context, input CreateAutomationInput) (*ent.Automation, error) {
	if input.OwnerID == "" {
		return nil, NewValidationError("owner_id", "owner id is required")
	}
	if input.Name == "" {
		return nil, NewValidationError("name", "name is required")
	}
	if err := ValidateDefinition(input.TriggerType, input.TriggerConfig, input.Actions); err != nil {
		return nil, err
	}

	builder := s.client.Automation.Create().
		SetID(uuid.New().String()).
		SetOwnerID(input.OwnerID).
		SetName(input.Name).
		SetTriggerType(automation.TriggerType(input.TriggerType)).
		SetActions(input.Actions).
		SetStatus(automation.StatusPendingReview).
		SetActive(false)

	if input.TriggerConfig != nil {
		builder.SetTriggerConfig(input.TriggerConfig)
	}
	if input.Variables != nil {
		builder.SetVariables(input.Variables)
	}

	auto, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create automation: %w", err)
	}
	return auto, nil
}

// Get returns one automation by id.
func (s *AutomationService) Get(ctx context.Context, id string) (*ent.Automation, error) {
	auto, err := s.client.Automation.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: automation %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get automation: %w", err)
	}
	return auto, nil
}

// List returns an owner's automations, optionally filtered by status.
func (s *AutomationService) List(ctx context.Context, ownerID, status string) ([]*ent.Automation, error) {
	q := s.client.Automation.Query().
		Order(ent.Desc(automation.FieldCreatedAt))
	if ownerID != "" {
		q = q.Where(automation.OwnerIDEQ(ownerID))
	}
	if status != "" {
		q = q.Where(automation.StatusEQ(automation.Status(status)))
	}
	autos, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list automations: %w", err)
	}
	return autos, nil
}

// UpdateStatus applies a lifecycle transition. Valid transitions:
// pending_review→active (approval), active↔paused, any→disabled. The
// runtime active gate follows the status.
func (s *AutomationService) UpdateStatus(ctx context.Context, id, status string) (*ent.Automation, error) {
	auto, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	target := automation.Status(status)
	if err := validateTransition(auto.Status, target); err != nil {
		return nil, err
	}

	updated, err := auto.Update().
		SetStatus(target).
		SetActive(target == automation.StatusActive).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update automation status: %w", err)
	}
	return updated, nil
}

// Deactivate flips the runtime gate without changing the review status.
// Used by the scheduler after a one-time automation runs.
func (s *AutomationService) Deactivate(ctx context.Context, id string) error {
	err := s.client.Automation.UpdateOneID(id).
		SetActive(false).
		SetStatus(automation.StatusPaused).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: automation %s", ErrNotFound, id)
		}
		return fmt.Errorf("failed to deactivate automation: %w", err)
	}
	return nil
}

// Delete removes an automation and (by cascade) its execution logs.
func (s *AutomationService) Delete(ctx context.Context, id string) error {
	err := s.client.Automation.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: automation %s", ErrNotFound, id)
		}
		return fmt.Errorf("failed to delete automation: %w", err)
	}
	return nil
}

// Logs returns an automation's execution history, newest first.
func (s *AutomationService) Logs(ctx context.Context, id string, limit int) ([]*ent.ExecutionLog, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}
	logs, err := s.client.ExecutionLog.Query().
		Where(executionlog.AutomationIDEQ(id)).
		Order(ent.Desc(executionlog.FieldStartedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query execution logs: %w", err)
	}
	return logs, nil
}

func validateTransition(from, to automation.Status) error {
	if from == to {
		return nil
	}
	switch to {
	case automation.StatusActive:
		if from != automation.StatusPendingReview && from != automation.StatusPaused {
			return NewValidationError("status",
				fmt.Sprintf("cannot activate from %s", from))
		}
	case automation.StatusPaused:
		if from != automation.StatusActive {
			return NewValidationError("status",
				fmt.Sprintf("cannot pause from %s", from))
		}
	case automation.StatusDisabled:
		// Always allowed.
	default:
		return NewValidationError("status", fmt.Sprintf("unknown status %q", to))
	}
	return nil
}

// ValidateDefinition checks a trigger/actions definition before it is
// stored: known trigger type, decodable trigger config, non-empty action
// list with ids and tools, no reserved-key output_as collisions, and no
// unsupported control-flow template forms.
func ValidateDefinition(triggerType string, triggerConfig map[string]any, actions []map[string]any) error {
	switch triggerType {
	case models.TriggerWebhook:
		var cfg models.WebhookTriggerConfig
		if err := models.DecodeTriggerConfig(triggerConfig, &cfg); err != nil {
			return NewValidationError("trigger_config", err.Error())
		}
		if cfg.Service == "" {
			return NewValidationError("trigger_config.service", "service is required for webhook triggers")
		}
	case models.TriggerPolling:
		var cfg models.PollingTriggerConfig
		if err := models.DecodeTriggerConfig(triggerConfig, &cfg); err != nil {
			return NewValidationError("trigger_config", err.Error())
		}
		if cfg.SourceTool == "" {
			return NewValidationError("trigger_config.source_tool", "source_tool is required for polling triggers")
		}
		if cfg.AggregationMode != "" {
			switch cfg.AggregationMode {
			case models.AggregationPerItem, models.AggregationBatch, models.AggregationSummary, models.AggregationLatest:
			default:
				return NewValidationError("trigger_config.aggregation_mode",
					fmt.Sprintf("unknown aggregation mode %q", cfg.AggregationMode))
			}
		}
	case models.TriggerScheduleOnce, models.TriggerScheduleRecurring:
		var cfg models.ScheduleTriggerConfig
		if err := models.DecodeTriggerConfig(triggerConfig, &cfg); err != nil {
			return NewValidationError("trigger_config", err.Error())
		}
		if triggerType == models.TriggerScheduleRecurring && !validInterval(cfg.Interval) {
			return NewValidationError("trigger_config.interval",
				fmt.Sprintf("unknown interval %q", cfg.Interval))
		}
		if triggerType == models.TriggerScheduleOnce && cfg.RunAt == "" {
			return NewValidationError("trigger_config.run_at", "run_at is required for one-time triggers")
		}
	case models.TriggerManual:
		// No trigger config required.
	default:
		return NewValidationError("trigger_type", fmt.Sprintf("unknown trigger type %q", triggerType))
	}

	decoded, err := models.DecodeActions(actions)
	if err != nil {
		return NewValidationError("actions", err.Error())
	}
	if len(decoded) == 0 {
		return NewValidationError("actions", "at least one action is required")
	}

	seen := make(map[string]bool)
	for i, action := range decoded {
		if action.ID == "" {
			return NewValidationError(fmt.Sprintf("actions[%d].id", i), "action id is required")
		}
		if action.Tool == "" {
			return NewValidationError(fmt.Sprintf("actions[%d].tool", i), "tool is required")
		}
		if action.OutputAs != "" {
			for _, reserved := range models.ReservedContextKeys {
				if action.OutputAs == reserved {
					return NewValidationError(fmt.Sprintf("actions[%d].output_as", i),
						fmt.Sprintf("%q shadows a reserved context key", action.OutputAs))
				}
			}
			if seen[action.OutputAs] {
				return NewValidationError(fmt.Sprintf("actions[%d].output_as", i),
					fmt.Sprintf("%q is bound by an earlier action", action.OutputAs))
			}
			seen[action.OutputAs] = true
		}
		if err := checkControlFlow(action.Parameters); err != nil {
			return NewValidationError(fmt.Sprintf("actions[%d].parameters", i), err.Error())
		}
	}
	return nil
}

// checkControlFlow walks parameter values rejecting {{#each}}/{{#if}} style
// forms, which the resolver does not evaluate.
func checkControlFlow(value any) error {
	switch v := value.(type) {
	case string:
		if template.HasControlFlow(v) {
			return fmt.Errorf("control-flow template syntax is not supported: %q", v)
		}
	case map[string]any:
		for _, nested := range v {
			if err := checkControlFlow(nested); err != nil {
				return err
			}
		}
	case []any:
		for _, nested := range v {
			if err := checkControlFlow(nested); err != nil {
				return err
			}
		}
	}
	return nil
}

func validInterval(interval string) bool {
	for _, known := range models.ScheduleIntervals {
		if strings.EqualFold(interval, known) {
			return true
		}
	}
	return false
}
