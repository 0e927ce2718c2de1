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
)

// Automation is the model entity for the Automation schema.
type Automation struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// User who owns this automation
	OwnerID string `json:"owner_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// TriggerType holds the value of the "trigger_type" field.
	TriggerType automation.TriggerType `json:"trigger_type,omitempty"`
	// Trigger-type-dependent configuration
	TriggerConfig map[string]interface{} `json:"trigger_config,omitempty"`
	// Ordered declarative action list
	Actions []map[string]interface{} `json:"actions,omitempty"`
	// User-defined template variables
	Variables map[string]interface{} `json:"variables,omitempty"`
	// Status holds the value of the "status" field.
	Status automation.Status `json:"status,omitempty"`
	// Runtime gate; automations with active=false are never executed
	Active bool `json:"active,omitempty"`
	// Next poll due time (polling trigger only)
	NextPollAt *time.Time `json:"next_poll_at,omitempty"`
	// Opaque cursor: ISO date, numeric ts, RFC 2822 date, or value signature
	LastPollCursor *string `json:"last_poll_cursor,omitempty"`
	// PollingIntervalMinutes holds the value of the "polling_interval_minutes" field.
	PollingIntervalMinutes *int `json:"polling_interval_minutes,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AutomationQuery when eager-loading is set.
	Edges        AutomationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AutomationEdges holds the relations/edges for other nodes in the graph.
type AutomationEdges struct {
	// ExecutionLogs holds the value of the execution_logs edge.
	ExecutionLogs []*ExecutionLog `json:"execution_logs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ExecutionLogsOrErr returns the ExecutionLogs value or an error if the edge
// was not loaded in eager-loading.
func (e AutomationEdges) ExecutionLogsOrErr() ([]*ExecutionLog, error) {
	if e.loadedTypes[0] {
		return e.ExecutionLogs, nil
	}
	return nil, &NotLoadedError{edge: "execution_logs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Automation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case automation.FieldTriggerConfig, automation.FieldActions, automation.FieldVariables:
			values[i] = new([]byte)
		case automation.FieldActive:
			values[i] = new(sql.NullBool)
		case automation.FieldPollingIntervalMinutes:
			values[i] = new(sql.NullInt64)
		case automation.FieldID, automation.FieldOwnerID, automation.FieldName, automation.FieldTriggerType, automation.FieldStatus, automation.FieldLastPollCursor:
			values[i] = new(sql.NullString)
		case automation.FieldNextPollAt, automation.FieldCreatedAt, automation.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Automation fields.
func (_m *Automation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case automation.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case automation.FieldOwnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				_m.OwnerID = value.String
			}
		case automation.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case automation.FieldTriggerType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_type", values[i])
			} else if value.Valid {
				_m.TriggerType = automation.TriggerType(value.String)
			}
		case automation.FieldTriggerConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TriggerConfig); err != nil {
					return fmt.Errorf("unmarshal field trigger_config: %w", err)
				}
			}
		case automation.FieldActions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field actions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Actions); err != nil {
					return fmt.Errorf("unmarshal field actions: %w", err)
				}
			}
		case automation.FieldVariables:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field variables", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Variables); err != nil {
					return fmt.Errorf("unmarshal field variables: %w", err)
				}
			}
		case automation.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = automation.Status(value.String)
			}
		case automation.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case automation.FieldNextPollAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_poll_at", values[i])
			} else if value.Valid {
				_m.NextPollAt = new(time.Time)
				*_m.NextPollAt = value.Time
			}
		case automation.FieldLastPollCursor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_poll_cursor", values[i])
			} else if value.Valid {
				_m.LastPollCursor = new(string)
				*_m.LastPollCursor = value.String
			}
		case automation.FieldPollingIntervalMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field polling_interval_minutes", values[i])
			} else if value.Valid {
				_m.PollingIntervalMinutes = new(int)
				*_m.PollingIntervalMinutes = int(value.Int64)
			}
		case automation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case automation.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Automation.
// This includes values selected through modifiers, order, etc.
func (_m *Automation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExecutionLogs queries the "execution_logs" edge of the Automation entity.
func (_m *Automation) QueryExecutionLogs() *ExecutionLogQuery {
	return NewAutomationClient(_m.config).QueryExecutionLogs(_m)
}

// Update returns a builder for updating this Automation.
// Note that you need to call Automation.Unwrap() before calling this method if this Automation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Automation) Update() *AutomationUpdateOne {
	return NewAutomationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Automation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Automation) Unwrap() *Automation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Automation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Automation) String() string {
	var builder strings.Builder
	builder.WriteString("Automation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner_id=")
	builder.WriteString(_m.OwnerID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("trigger_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.TriggerType))
	builder.WriteString(", ")
	builder.WriteString("trigger_config=")
	builder.WriteString(fmt.Sprintf("%v", _m.TriggerConfig))
	builder.WriteString(", ")
	builder.WriteString("actions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Actions))
	builder.WriteString(", ")
	builder.WriteString("variables=")
	builder.WriteString(fmt.Sprintf("%v", _m.Variables))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	if v := _m.NextPollAt; v != nil {
		builder.WriteString("next_poll_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastPollCursor; v != nil {
		builder.WriteString("last_poll_cursor=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PollingIntervalMinutes; v != nil {
		builder.WriteString("polling_interval_minutes=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Automations is a parsable slice of Automation.
type Automations []*Automation
