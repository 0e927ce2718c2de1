package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Trigger type values stored on the automation record.
const (
	TriggerWebhook           = "webhook"
	TriggerPolling           = "polling"
	TriggerScheduleOnce      = "schedule_once"
	TriggerScheduleRecurring = "schedule_recurring"
	TriggerManual            = "manual"

	// TriggerScheduleLegacy is the pre-rewrite trigger-type value still
	// present in old execution logs; recency queries accept it alongside
	// the schedule_once/schedule_recurring values.
	TriggerScheduleLegacy = "schedule"
)

// Reserved context keys that output_as names must not shadow.
var ReservedContextKeys = []string{"user", "trigger_data"}

// Action is one declarative step: a tool invocation with templated
// parameters, optionally guarded by a condition and optionally binding its
// return into context under OutputAs.
type Action struct {
	ID         string         `json:"id"`
	Tool       string         `json:"tool"`
	Parameters map[string]any `json:"parameters,omitempty"`
	OutputAs   string         `json:"output_as,omitempty"`
	Condition  *Condition     `json:"condition,omitempty"`
}

// UnmarshalJSON accepts the legacy field aliases still present in stored
// automations: action_id for id, params for parameters.
func (a *Action) UnmarshalJSON(data []byte) error {
	type wire struct {
		ID           string         `json:"id"`
		ActionID     string         `json:"action_id"`
		Tool         string         `json:"tool"`
		Parameters   map[string]any `json:"parameters"`
		LegacyParams map[string]any `json:"params"`
		OutputAs     string         `json:"output_as"`
		Condition    *Condition     `json:"condition"`
	}
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	a.ID = w.ID
	if a.ID == "" {
		a.ID = w.ActionID
	}
	a.Tool = w.Tool
	a.Parameters = w.Parameters
	if a.Parameters == nil {
		a.Parameters = w.LegacyParams
	}
	a.OutputAs = w.OutputAs
	a.Condition = w.Condition
	return nil
}

// Condition is either a single clause (Path set) or a recursive group
// (Operator + Clauses). String operators are case-insensitive unless
// CaseInsensitive is explicitly false.
type Condition struct {
	Path            string `json:"path,omitempty"`
	Op              string `json:"op,omitempty"`
	Value           any    `json:"value,omitempty"`
	CaseInsensitive *bool  `json:"case_insensitive,omitempty"`

	Operator string       `json:"operator,omitempty"`
	Clauses  []*Condition `json:"clauses,omitempty"`
}

// IsClause reports whether the condition is a single clause rather than a
// group. Mirrors the stored-JSON convention: a clause has a path.
func (c *Condition) IsClause() bool {
	return c != nil && c.Path != ""
}

// WebhookTriggerConfig is the trigger_config shape for webhook automations.
type WebhookTriggerConfig struct {
	Service    string     `json:"service"`
	EventType  string     `json:"event_type,omitempty"`
	EventTypes []string   `json:"event_types,omitempty"`
	Filter     *Condition `json:"filter,omitempty"`
	Filters    *Condition `json:"filters,omitempty"`
}

// FilterCondition returns the configured filter, tolerating both the
// singular and plural field names authors use.
func (c *WebhookTriggerConfig) FilterCondition() *Condition {
	if c.Filter != nil {
		return c.Filter
	}
	return c.Filters
}

// MatchesEventType reports whether the config accepts the given event type.
// An omitted event type matches everything.
func (c *WebhookTriggerConfig) MatchesEventType(eventType string) bool {
	if c.EventType == "" && len(c.EventTypes) == 0 {
		return true
	}
	if strings.EqualFold(c.EventType, eventType) {
		return true
	}
	for _, et := range c.EventTypes {
		if strings.EqualFold(et, eventType) {
			return true
		}
	}
	return false
}

// PollingTriggerConfig is the trigger_config shape for polling automations.
type PollingTriggerConfig struct {
	Service                string         `json:"service,omitempty"`
	SourceTool             string         `json:"source_tool"`
	EventType              string         `json:"event_type,omitempty"`
	ToolParams             map[string]any `json:"tool_params,omitempty"`
	Filter                 *Condition     `json:"filter,omitempty"`
	AggregationMode        string         `json:"aggregation_mode,omitempty"`
	PollingIntervalMinutes int            `json:"polling_interval_minutes,omitempty"`
}

// ScheduleTriggerConfig is the trigger_config shape for scheduled
// automations (recurring and one-time).
type ScheduleTriggerConfig struct {
	Interval  string `json:"interval"`
	TimeOfDay string `json:"time_of_day,omitempty"`
	DayOfWeek any    `json:"day_of_week,omitempty"`
	Timezone  string `json:"timezone,omitempty"`
	RunAt     string `json:"run_at,omitempty"`
}

// Schedule interval buckets.
var ScheduleIntervals = []string{"5min", "15min", "30min", "1hr", "6hr", "daily", "weekly", "once"}

// Aggregation modes for polling automations.
const (
	AggregationPerItem = "per_item"
	AggregationBatch   = "batch"
	AggregationSummary = "summary"
	AggregationLatest  = "latest"
)

// DecodeTriggerConfig unmarshals the stored trigger_config JSON map into a
// typed config struct.
func DecodeTriggerConfig(raw map[string]any, out any) error {
	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("marshaling trigger_config: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding trigger_config: %w", err)
	}
	return nil
}

// DecodeActions converts the stored actions JSON into typed actions,
// applying the legacy field aliases.
func DecodeActions(raw []map[string]any) ([]Action, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("marshaling actions: %w", err)
	}
	var actions []Action
	if err := json.Unmarshal(data, &actions); err != nil {
		return nil, fmt.Errorf("decoding actions: %w", err)
	}
	return actions, nil
}
