package events

import "github.com/triggerflow/triggerflow/pkg/models"

// ExecutionStartedPayload is the payload for execution.started events.
// Published when the runner begins walking an automation's action list.
type ExecutionStartedPayload struct {
	Type         string `json:"type"` // always EventTypeExecutionStarted
	ExecutionID  string `json:"execution_id"`
	AutomationID string `json:"automation_id"`
	OwnerID      string `json:"owner_id"`
	TriggerType  string `json:"trigger_type"`
	Timestamp    string `json:"timestamp"` // RFC3339Nano
}

// ExecutionCompletedPayload is the payload for execution.completed events.
// Published after the execution log row is written.
type ExecutionCompletedPayload struct {
	Type            string                 `json:"type"` // always EventTypeExecutionCompleted
	ExecutionID     string                 `json:"execution_id"`
	AutomationID    string                 `json:"automation_id"`
	OwnerID         string                 `json:"owner_id"`
	Status          models.ExecutionStatus `json:"status"`
	ActionsExecuted int                    `json:"actions_executed"`
	ActionsFailed   int                    `json:"actions_failed"`
	DurationMs      int                    `json:"duration_ms"`
	Timestamp       string                 `json:"timestamp"` // RFC3339Nano
}

// EventEnqueuedPayload is the payload for event.enqueued events.
// Published when webhook ingress or the poller inserts a new queue row.
type EventEnqueuedPayload struct {
	Type      string `json:"type"` // always EventTypeEventEnqueued
	OwnerID   string `json:"owner_id"`
	Service   string `json:"service"`
	EventType string `json:"event_type"`
	EventID   string `json:"event_id"`
	Timestamp string `json:"timestamp"` // RFC3339Nano
}
