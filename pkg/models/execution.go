package models

import "time"

// ExecutionStatus is the overall outcome of one automation run.
type ExecutionStatus string

// Execution status values.
const (
	StatusRunning            ExecutionStatus = "running"
	StatusCompleted          ExecutionStatus = "completed"
	StatusPartialFailure     ExecutionStatus = "partial_failure"
	StatusFailed             ExecutionStatus = "failed"
	StatusUsageLimitExceeded ExecutionStatus = "usage_limit_exceeded"
)

// UsageLimitErrorCode is the sentinel error identifier service tools return
// when the owner's usage limit is hit. The executor aborts the remainder of
// the run when it sees this code.
const UsageLimitErrorCode = "USAGE_LIMIT_EXCEEDED"

// IsUsageLimit reports whether a tool output carries the usage-limit
// sentinel.
func IsUsageLimit(output any) bool {
	obj, ok := output.(map[string]any)
	if !ok {
		return false
	}
	return obj["error"] == UsageLimitErrorCode
}

// ActionResult records the outcome of a single action.
type ActionResult struct {
	ActionID        string `json:"action_id"`
	Tool            string `json:"tool"`
	Success         bool   `json:"success"`
	DurationMs      int    `json:"duration_ms"`
	Output          any    `json:"output,omitempty"`
	Error           string `json:"error,omitempty"`
	Skipped         bool   `json:"skipped,omitempty"`
	ConditionResult *bool  `json:"condition_result,omitempty"`
}

// ExecutionResult is the outcome of a full automation run. Skipped actions
// count toward neither ActionsExecuted nor ActionsFailed.
type ExecutionResult struct {
	Success         bool            `json:"success"`
	Status          ExecutionStatus `json:"status"`
	ActionsExecuted int             `json:"actions_executed"`
	ActionsFailed   int             `json:"actions_failed"`
	ActionResults   []ActionResult  `json:"action_results"`
	DurationMs      int             `json:"duration_ms"`
	ErrorSummary    string          `json:"error_summary,omitempty"`
}

// UserInfo is the profile exposed to executions under the reserved "user"
// context key.
type UserInfo struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Timezone string `json:"timezone"`
	Name     string `json:"name,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// ContextMap returns the map bound under the "user" key.
func (u UserInfo) ContextMap() map[string]any {
	m := map[string]any{
		"id":       u.ID,
		"email":    u.Email,
		"timezone": u.Timezone,
	}
	if u.Name != "" {
		m["name"] = u.Name
	}
	if u.Phone != "" {
		m["phone"] = u.Phone
	}
	return m
}

// InboundEvent is the normalized unit of work produced by webhook ingress
// and the poller before it is persisted to the event queue.
type InboundEvent struct {
	OwnerID   string         `json:"owner_id"`
	Service   string         `json:"service"`
	EventType string         `json:"event_type"`
	EventID   string         `json:"event_id"`
	Data      map[string]any `json:"data"`
	CreatedAt time.Time      `json:"created_at,omitempty"`
}
