// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/triggerflow/triggerflow/ent/automation"
	"github.com/triggerflow/triggerflow/ent/executionlog"
)

// ExecutionLog is the model entity for the ExecutionLog schema.
type ExecutionLog struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AutomationID holds the value of the "automation_id" field.
	AutomationID string `json:"automation_id,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID string `json:"owner_id,omitempty"`
	// Trigger that caused the run; legacy value 'schedule' accepted in filters
	TriggerType string `json:"trigger_type,omitempty"`
	// TriggerData holds the value of the "trigger_data" field.
	TriggerData map[string]interface{} `json:"trigger_data,omitempty"`
	// Status holds the value of the "status" field.
	Status executionlog.Status `json:"status,omitempty"`
	// ActionsExecuted holds the value of the "actions_executed" field.
	ActionsExecuted int `json:"actions_executed,omitempty"`
	// ActionsFailed holds the value of the "actions_failed" field.
	ActionsFailed int `json:"actions_failed,omitempty"`
	// ActionResults holds the value of the "action_results" field.
	ActionResults []map[string]interface{} `json:"action_results,omitempty"`
	// ErrorSummary holds the value of the "error_summary" field.
	ErrorSummary *string `json:"error_summary,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs int `json:"duration_ms,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExecutionLogQuery when eager-loading is set.
	Edges        ExecutionLogEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExecutionLogEdges holds the relations/edges for other nodes in the graph.
type ExecutionLogEdges struct {
	// Automation holds the value of the automation edge.
	Automation *Automation `json:"automation,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AutomationOrErr returns the Automation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExecutionLogEdges) AutomationOrErr() (*Automation, error) {
	if e.Automation != nil {
		return e.Automation, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: automation.Label}
	}
	return nil, &NotLoadedError{edge: "automation"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExecutionLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case executionlog.FieldTriggerData, executionlog.FieldActionResults:
			values[i] = new([]byte)
		case executionlog.FieldActionsExecuted, executionlog.FieldActionsFailed, executionlog.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case executionlog.FieldID, executionlog.FieldAutomationID, executionlog.FieldOwnerID, executionlog.FieldTriggerType, executionlog.FieldStatus, executionlog.FieldErrorSummary:
			values[i] = new(sql.NullString)
		case executionlog.FieldStartedAt, executionlog.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExecutionLog fields.
func (_m *ExecutionLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case executionlog.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case executionlog.FieldAutomationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field automation_id", values[i])
			} else if value.Valid {
				_m.AutomationID = value.String
			}
		case executionlog.FieldOwnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				_m.OwnerID = value.String
			}
		case executionlog.FieldTriggerType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_type", values[i])
			} else if value.Valid {
				_m.TriggerType = value.String
			}
		case executionlog.FieldTriggerData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TriggerData); err != nil {
					return fmt.Errorf("unmarshal field trigger_data: %w", err)
				}
			}
		case executionlog.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = executionlog.Status(value.String)
			}
		case executionlog.FieldActionsExecuted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field actions_executed", values[i])
			} else if value.Valid {
				_m.ActionsExecuted = int(value.Int64)
			}
		case executionlog.FieldActionsFailed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field actions_failed", values[i])
			} else if value.Valid {
				_m.ActionsFailed = int(value.Int64)
			}
		case executionlog.FieldActionResults:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field action_results", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ActionResults); err != nil {
					return fmt.Errorf("unmarshal field action_results: %w", err)
				}
			}
		case executionlog.FieldErrorSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_summary", values[i])
			} else if value.Valid {
				_m.ErrorSummary = new(string)
				*_m.ErrorSummary = value.String
			}
		case executionlog.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case executionlog.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case executionlog.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExecutionLog.
// This includes values selected through modifiers, order, etc.
func (_m *ExecutionLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAutomation queries the "automation" edge of the ExecutionLog entity.
func (_m *ExecutionLog) QueryAutomation() *AutomationQuery {
	return NewExecutionLogClient(_m.config).QueryAutomation(_m)
}

// Update returns a builder for updating this ExecutionLog.
// Note that you need to call ExecutionLog.Unwrap() before calling this method if this ExecutionLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExecutionLog) Update() *ExecutionLogUpdateOne {
	return NewExecutionLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExecutionLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExecutionLog) Unwrap() *ExecutionLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExecutionLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExecutionLog) String() string {
	var builder strings.Builder
	builder.WriteString("ExecutionLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("automation_id=")
	builder.WriteString(_m.AutomationID)
	builder.WriteString(", ")
	builder.WriteString("owner_id=")
	builder.WriteString(_m.OwnerID)
	builder.WriteString(", ")
	builder.WriteString("trigger_type=")
	builder.WriteString(_m.TriggerType)
	builder.WriteString(", ")
	builder.WriteString("trigger_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.TriggerData))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("actions_executed=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActionsExecuted))
	builder.WriteString(", ")
	builder.WriteString("actions_failed=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActionsFailed))
	builder.WriteString(", ")
	builder.WriteString("action_results=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActionResults))
	builder.WriteString(", ")
	if v := _m.ErrorSummary; v != nil {
		builder.WriteString("error_summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteByte(')')
	return builder.String()
}

// ExecutionLogs is a parsable slice of ExecutionLog.
type ExecutionLogs []*ExecutionLog
