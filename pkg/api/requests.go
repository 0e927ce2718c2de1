package api

// ExecuteRequest is the body of POST /api/v1/execute.
type ExecuteRequest struct {
	AutomationID string         `json:"automation_id"`
	TriggerData  map[string]any `json:"trigger_data,omitempty"`
	TestMode     bool           `json:"test_mode,omitempty"`
}

// SchedulerRunRequest is the body of POST /api/v1/scheduler/run. An empty
// interval sweeps every bucket.
type SchedulerRunRequest struct {
	Interval string `json:"interval,omitempty"`
}

// SchedulerPollingRequest is the body of POST /api/v1/scheduler/polling.
type SchedulerPollingRequest struct {
	Category     string `json:"category,omitempty"`
	AutomationID string `json:"automation_id,omitempty"`
}

// ScheduledRunsRequest is the body of POST /api/v1/scheduler/scheduled-runs.
type ScheduledRunsRequest struct {
	Interval string `json:"interval,omitempty"`
	UserID   string `json:"user_id,omitempty"`
	Limit    int    `json:"limit,omitempty"`
}

// SchedulerTriggerRequest is the body of POST /api/v1/scheduler/trigger.
type SchedulerTriggerRequest struct {
	AutomationID string `json:"automation_id"`
	UserID       string `json:"user_id,omitempty"`
}

// CreateAutomationRequest is the body of POST /api/v1/automations.
type CreateAutomationRequest struct {
	UserID        string           `json:"user_id"`
	Name          string           `json:"name"`
	TriggerType   string           `json:"trigger_type"`
	TriggerConfig map[string]any   `json:"trigger_config,omitempty"`
	Actions       []map[string]any `json:"actions"`
	Variables     map[string]any   `json:"variables,omitempty"`
}

// UpdateAutomationRequest is the body of PATCH /api/v1/automations/:id.
type UpdateAutomationRequest struct {
	Status string `json:"status"`
}
