// Code generated by ent, DO NOT EDIT.

package executionlog

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the executionlog type in the database.
	Label = "execution_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "log_id"
	// FieldAutomationID holds the string denoting the automation_id field in the database.
	FieldAutomationID = "automation_id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldTriggerType holds the string denoting the trigger_type field in the database.
	FieldTriggerType = "trigger_type"
	// FieldTriggerData holds the string denoting the trigger_data field in the database.
	FieldTriggerData = "trigger_data"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldActionsExecuted holds the string denoting the actions_executed field in the database.
	FieldActionsExecuted = "actions_executed"
	// FieldActionsFailed holds the string denoting the actions_failed field in the database.
	FieldActionsFailed = "actions_failed"
	// FieldActionResults holds the string denoting the action_results field in the database.
	FieldActionResults = "action_results"
	// FieldErrorSummary holds the string denoting the error_summary field in the database.
	FieldErrorSummary = "error_summary"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// EdgeAutomation holds the string denoting the automation edge name in mutations.
	EdgeAutomation = "automation"
	// AutomationFieldID holds the string denoting the ID field of the Automation.
	AutomationFieldID = "automation_id"
	// Table holds the table name of the executionlog in the database.
	Table = "execution_logs"
	// AutomationTable is the table that holds the automation relation/edge.
	AutomationTable = "execution_logs"
	// AutomationInverseTable is the table name for the Automation entity.
	// It exists in this package in order to avoid circular dependency with the "automation" package.
	AutomationInverseTable = "automations"
	// AutomationColumn is the table column denoting the automation relation/edge.
	AutomationColumn = "automation_id"
)

// Columns holds all SQL columns for executionlog fields.
var Columns = []string{
	FieldID,
	FieldAutomationID,
	FieldOwnerID,
	FieldTriggerType,
	FieldTriggerData,
	FieldStatus,
	FieldActionsExecuted,
	FieldActionsFailed,
	FieldActionResults,
	FieldErrorSummary,
	FieldStartedAt,
	FieldCompletedAt,
	FieldDurationMs,
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
	// DefaultActionsExecuted holds the default value on creation for the "actions_executed" field.
	DefaultActionsExecuted int
	// DefaultActionsFailed holds the default value on creation for the "actions_failed" field.
	DefaultActionsFailed int
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusRunning is the default value of the Status enum.
const DefaultStatus = StatusRunning

// Status values.
const (
	StatusRunning            Status = "running"
	StatusCompleted          Status = "completed"
	StatusPartialFailure     Status = "partial_failure"
	StatusFailed             Status = "failed"
	StatusUsageLimitExceeded Status = "usage_limit_exceeded"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusRunning, StatusCompleted, StatusPartialFailure, StatusFailed, StatusUsageLimitExceeded:
		return nil
	default:
		return fmt.Errorf("executionlog: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ExecutionLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAutomationID orders the results by the automation_id field.
func ByAutomationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAutomationID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByTriggerType orders the results by the trigger_type field.
func ByTriggerType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByActionsExecuted orders the results by the actions_executed field.
func ByActionsExecuted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionsExecuted, opts...).ToFunc()
}

// ByActionsFailed orders the results by the actions_failed field.
func ByActionsFailed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionsFailed, opts...).ToFunc()
}

// ByErrorSummary orders the results by the error_summary field.
func ByErrorSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorSummary, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByAutomationField orders the results by automation field.
func ByAutomationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAutomationStep(), sql.OrderByField(field, opts...))
	}
}
func newAutomationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AutomationInverseTable, AutomationFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AutomationTable, AutomationColumn),
	)
}
