// Code generated by ent, DO NOT EDIT.

package automation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the automation type in the database.
	Label = "automation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "automation_id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldTriggerType holds the string denoting the trigger_type field in the database.
	FieldTriggerType = "trigger_type"
	// FieldTriggerConfig holds the string denoting the trigger_config field in the database.
	FieldTriggerConfig = "trigger_config"
	// FieldActions holds the string denoting the actions field in the database.
	FieldActions = "actions"
	// FieldVariables holds the string denoting the variables field in the database.
	FieldVariables = "variables"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldNextPollAt holds the string denoting the next_poll_at field in the database.
	FieldNextPollAt = "next_poll_at"
	// FieldLastPollCursor holds the string denoting the last_poll_cursor field in the database.
	FieldLastPollCursor = "last_poll_cursor"
	// FieldPollingIntervalMinutes holds the string denoting the polling_interval_minutes field in the database.
	FieldPollingIntervalMinutes = "polling_interval_minutes"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeExecutionLogs holds the string denoting the execution_logs edge name in mutations.
	EdgeExecutionLogs = "execution_logs"
	// ExecutionLogFieldID holds the string denoting the ID field of the ExecutionLog.
	ExecutionLogFieldID = "log_id"
	// Table holds the table name of the automation in the database.
	Table = "automations"
	// ExecutionLogsTable is the table that holds the execution_logs relation/edge.
	ExecutionLogsTable = "execution_logs"
	// ExecutionLogsInverseTable is the table name for the ExecutionLog entity.
	// It exists in this package in order to avoid circular dependency with the "executionlog" package.
	ExecutionLogsInverseTable = "execution_logs"
	// ExecutionLogsColumn is the table column denoting the execution_logs relation/edge.
	ExecutionLogsColumn = "automation_id"
)

// Columns holds all SQL columns for automation fields.
var Columns = []string{
	FieldID,
	FieldOwnerID,
	FieldName,
	FieldTriggerType,
	FieldTriggerConfig,
	FieldActions,
	FieldVariables,
	FieldStatus,
	FieldActive,
	FieldNextPollAt,
	FieldLastPollCursor,
	FieldPollingIntervalMinutes,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// TriggerType defines the type for the "trigger_type" enum field.
type TriggerType string

// TriggerType values.
const (
	TriggerTypeWebhook           TriggerType = "webhook"
	TriggerTypePolling           TriggerType = "polling"
	TriggerTypeScheduleOnce      TriggerType = "schedule_once"
	TriggerTypeScheduleRecurring TriggerType = "schedule_recurring"
	TriggerTypeManual            TriggerType = "manual"
)

func (tt TriggerType) String() string {
	return string(tt)
}

// TriggerTypeValidator is a validator for the "trigger_type" field enum values. It is called by the builders before save.
func TriggerTypeValidator(tt TriggerType) error {
	switch tt {
	case TriggerTypeWebhook, TriggerTypePolling, TriggerTypeScheduleOnce, TriggerTypeScheduleRecurring, TriggerTypeManual:
		return nil
	default:
		return fmt.Errorf("automation: invalid enum value for trigger_type field: %q", tt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPendingReview is the default value of the Status enum.
const DefaultStatus = StatusPendingReview

// Status values.
const (
	StatusPendingReview Status = "pending_review"
	StatusActive        Status = "active"
	StatusPaused        Status = "paused"
	StatusDisabled      Status = "disabled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPendingReview, StatusActive, StatusPaused, StatusDisabled:
		return nil
	default:
		return fmt.Errorf("automation: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Automation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByTriggerType orders the results by the trigger_type field.
func ByTriggerType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByNextPollAt orders the results by the next_poll_at field.
func ByNextPollAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextPollAt, opts...).ToFunc()
}

// ByLastPollCursor orders the results by the last_poll_cursor field.
func ByLastPollCursor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastPollCursor, opts...).ToFunc()
}

// ByPollingIntervalMinutes orders the results by the polling_interval_minutes field.
func ByPollingIntervalMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPollingIntervalMinutes, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByExecutionLogsCount orders the results by execution_logs count.
func ByExecutionLogsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newExecutionLogsStep(), opts...)
	}
}

// ByExecutionLogs orders the results by execution_logs terms.
func ByExecutionLogs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExecutionLogsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newExecutionLogsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExecutionLogsInverseTable, ExecutionLogFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ExecutionLogsTable, ExecutionLogsColumn),
	)
}
