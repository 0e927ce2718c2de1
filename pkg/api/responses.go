package api

import (
	"time"

	"github.com/triggerflow/triggerflow/ent"
	"github.com/triggerflow/triggerflow/pkg/models"
)

// HealthCheck is one component entry in the health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// AutomationResponse is the wire shape of one automation record.
type AutomationResponse struct {
	ID                     string           `json:"id"`
	OwnerID                string           `json:"owner_id"`
	Name                   string           `json:"name"`
	TriggerType            string           `json:"trigger_type"`
	TriggerConfig          map[string]any   `json:"trigger_config,omitempty"`
	Actions                []map[string]any `json:"actions"`
	Variables              map[string]any   `json:"variables,omitempty"`
	Status                 string           `json:"status"`
	Active                 bool             `json:"active"`
	NextPollAt             *time.Time       `json:"next_poll_at,omitempty"`
	LastPollCursor         *string          `json:"last_poll_cursor,omitempty"`
	PollingIntervalMinutes *int             `json:"polling_interval_minutes,omitempty"`
	CreatedAt              time.Time        `json:"created_at"`
	UpdatedAt              time.Time        `json:"updated_at"`
}

func toAutomationResponse(auto *ent.Automation) *AutomationResponse {
	return &AutomationResponse{
		ID:                     auto.ID,
		OwnerID:                auto.OwnerID,
		Name:                   auto.Name,
		TriggerType:            string(auto.TriggerType),
		TriggerConfig:          auto.TriggerConfig,
		Actions:                auto.Actions,
		Variables:              auto.Variables,
		Status:                 string(auto.Status),
		Active:                 auto.Active,
		NextPollAt:             auto.NextPollAt,
		LastPollCursor:         auto.LastPollCursor,
		PollingIntervalMinutes: auto.PollingIntervalMinutes,
		CreatedAt:              auto.CreatedAt,
		UpdatedAt:              auto.UpdatedAt,
	}
}

// ExecutionLogResponse is the wire shape of one execution-log record.
type ExecutionLogResponse struct {
	ID              string           `json:"id"`
	AutomationID    string           `json:"automation_id"`
	OwnerID         string           `json:"owner_id"`
	TriggerType     string           `json:"trigger_type"`
	TriggerData     map[string]any   `json:"trigger_data,omitempty"`
	Status          string           `json:"status"`
	ActionsExecuted int              `json:"actions_executed"`
	ActionsFailed   int              `json:"actions_failed"`
	ActionResults   []map[string]any `json:"action_results,omitempty"`
	ErrorSummary    *string          `json:"error_summary,omitempty"`
	StartedAt       time.Time        `json:"started_at"`
	CompletedAt     *time.Time       `json:"completed_at,omitempty"`
	DurationMs      int              `json:"duration_ms"`
}

func toExecutionLogResponse(row *ent.ExecutionLog) *ExecutionLogResponse {
	return &ExecutionLogResponse{
		ID:              row.ID,
		AutomationID:    row.AutomationID,
		OwnerID:         row.OwnerID,
		TriggerType:     row.TriggerType,
		TriggerData:     row.TriggerData,
		Status:          string(row.Status),
		ActionsExecuted: row.ActionsExecuted,
		ActionsFailed:   row.ActionsFailed,
		ActionResults:   row.ActionResults,
		ErrorSummary:    row.ErrorSummary,
		StartedAt:       row.StartedAt,
		CompletedAt:     row.CompletedAt,
		DurationMs:      row.DurationMs,
	}
}

// ExecuteResponse is returned by POST /api/v1/execute.
type ExecuteResponse struct {
	ExecutionID string                  `json:"execution_id"`
	Result      *models.ExecutionResult `json:"result"`
}
