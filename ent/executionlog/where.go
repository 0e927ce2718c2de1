// Code generated by ent, DO NOT EDIT.

package executionlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/triggerflow/triggerflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldContainsFold(FieldID, id))
}

// AutomationID applies equality check predicate on the "automation_id" field. It's identical to AutomationIDEQ.
func AutomationID(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldAutomationID, v))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldOwnerID, v))
}

// TriggerType applies equality check predicate on the "trigger_type" field. It's identical to TriggerTypeEQ.
func TriggerType(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldTriggerType, v))
}

// ActionsExecuted applies equality check predicate on the "actions_executed" field. It's identical to ActionsExecutedEQ.
func ActionsExecuted(v int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldActionsExecuted, v))
}

// ActionsFailed applies equality check predicate on the "actions_failed" field. It's identical to ActionsFailedEQ.
func ActionsFailed(v int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldActionsFailed, v))
}

// ErrorSummary applies equality check predicate on the "error_summary" field. It's identical to ErrorSummaryEQ.
func ErrorSummary(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldErrorSummary, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldCompletedAt, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldDurationMs, v))
}

// AutomationIDEQ applies the EQ predicate on the "automation_id" field.
func AutomationIDEQ(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldAutomationID, v))
}

// AutomationIDNEQ applies the NEQ predicate on the "automation_id" field.
func AutomationIDNEQ(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNEQ(FieldAutomationID, v))
}

// AutomationIDIn applies the In predicate on the "automation_id" field.
func AutomationIDIn(vs ...string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIn(FieldAutomationID, vs...))
}

// AutomationIDNotIn applies the NotIn predicate on the "automation_id" field.
func AutomationIDNotIn(vs ...string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotIn(FieldAutomationID, vs...))
}

// AutomationIDGT applies the GT predicate on the "automation_id" field.
func AutomationIDGT(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGT(FieldAutomationID, v))
}

// AutomationIDGTE applies the GTE predicate on the "automation_id" field.
func AutomationIDGTE(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGTE(FieldAutomationID, v))
}

// AutomationIDLT applies the LT predicate on the "automation_id" field.
func AutomationIDLT(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLT(FieldAutomationID, v))
}

// AutomationIDLTE applies the LTE predicate on the "automation_id" field.
func AutomationIDLTE(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLTE(FieldAutomationID, v))
}

// AutomationIDContains applies the Contains predicate on the "automation_id" field.
func AutomationIDContains(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldContains(FieldAutomationID, v))
}

// AutomationIDHasPrefix applies the HasPrefix predicate on the "automation_id" field.
func AutomationIDHasPrefix(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldHasPrefix(FieldAutomationID, v))
}

// AutomationIDHasSuffix applies the HasSuffix predicate on the "automation_id" field.
func AutomationIDHasSuffix(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldHasSuffix(FieldAutomationID, v))
}

// AutomationIDEqualFold applies the EqualFold predicate on the "automation_id" field.
func AutomationIDEqualFold(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEqualFold(FieldAutomationID, v))
}

// AutomationIDContainsFold applies the ContainsFold predicate on the "automation_id" field.
func AutomationIDContainsFold(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldContainsFold(FieldAutomationID, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldContainsFold(FieldOwnerID, v))
}

// TriggerTypeEQ applies the EQ predicate on the "trigger_type" field.
func TriggerTypeEQ(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldTriggerType, v))
}

// TriggerTypeNEQ applies the NEQ predicate on the "trigger_type" field.
func TriggerTypeNEQ(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNEQ(FieldTriggerType, v))
}

// TriggerTypeIn applies the In predicate on the "trigger_type" field.
func TriggerTypeIn(vs ...string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIn(FieldTriggerType, vs...))
}

// TriggerTypeNotIn applies the NotIn predicate on the "trigger_type" field.
func TriggerTypeNotIn(vs ...string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotIn(FieldTriggerType, vs...))
}

// TriggerTypeGT applies the GT predicate on the "trigger_type" field.
func TriggerTypeGT(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGT(FieldTriggerType, v))
}

// TriggerTypeGTE applies the GTE predicate on the "trigger_type" field.
func TriggerTypeGTE(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGTE(FieldTriggerType, v))
}

// TriggerTypeLT applies the LT predicate on the "trigger_type" field.
func TriggerTypeLT(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLT(FieldTriggerType, v))
}

// TriggerTypeLTE applies the LTE predicate on the "trigger_type" field.
func TriggerTypeLTE(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLTE(FieldTriggerType, v))
}

// TriggerTypeContains applies the Contains predicate on the "trigger_type" field.
func TriggerTypeContains(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldContains(FieldTriggerType, v))
}

// TriggerTypeHasPrefix applies the HasPrefix predicate on the "trigger_type" field.
func TriggerTypeHasPrefix(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldHasPrefix(FieldTriggerType, v))
}

// TriggerTypeHasSuffix applies the HasSuffix predicate on the "trigger_type" field.
func TriggerTypeHasSuffix(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldHasSuffix(FieldTriggerType, v))
}

// TriggerTypeEqualFold applies the EqualFold predicate on the "trigger_type" field.
func TriggerTypeEqualFold(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEqualFold(FieldTriggerType, v))
}

// TriggerTypeContainsFold applies the ContainsFold predicate on the "trigger_type" field.
func TriggerTypeContainsFold(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldContainsFold(FieldTriggerType, v))
}

// TriggerDataIsNil applies the IsNil predicate on the "trigger_data" field.
func TriggerDataIsNil() predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIsNull(FieldTriggerData))
}

// TriggerDataNotNil applies the NotNil predicate on the "trigger_data" field.
func TriggerDataNotNil() predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotNull(FieldTriggerData))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotIn(FieldStatus, vs...))
}

// ActionsExecutedEQ applies the EQ predicate on the "actions_executed" field.
func ActionsExecutedEQ(v int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldActionsExecuted, v))
}

// ActionsExecutedNEQ applies the NEQ predicate on the "actions_executed" field.
func ActionsExecutedNEQ(v int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNEQ(FieldActionsExecuted, v))
}

// ActionsExecutedIn applies the In predicate on the "actions_executed" field.
func ActionsExecutedIn(vs ...int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIn(FieldActionsExecuted, vs...))
}

// ActionsExecutedNotIn applies the NotIn predicate on the "actions_executed" field.
func ActionsExecutedNotIn(vs ...int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotIn(FieldActionsExecuted, vs...))
}

// ActionsExecutedGT applies the GT predicate on the "actions_executed" field.
func ActionsExecutedGT(v int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGT(FieldActionsExecuted, v))
}

// ActionsExecutedGTE applies the GTE predicate on the "actions_executed" field.
func ActionsExecutedGTE(v int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGTE(FieldActionsExecuted, v))
}

// ActionsExecutedLT applies the LT predicate on the "actions_executed" field.
func ActionsExecutedLT(v int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLT(FieldActionsExecuted, v))
}

// ActionsExecutedLTE applies the LTE predicate on the "actions_executed" field.
func ActionsExecutedLTE(v int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLTE(FieldActionsExecuted, v))
}

// ActionsFailedEQ applies the EQ predicate on the "actions_failed" field.
func ActionsFailedEQ(v int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldActionsFailed, v))
}

// ActionsFailedNEQ applies the NEQ predicate on the "actions_failed" field.
func ActionsFailedNEQ(v int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNEQ(FieldActionsFailed, v))
}

// ActionsFailedIn applies the In predicate on the "actions_failed" field.
func ActionsFailedIn(vs ...int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIn(FieldActionsFailed, vs...))
}

// ActionsFailedNotIn applies the NotIn predicate on the "actions_failed" field.
func ActionsFailedNotIn(vs ...int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotIn(FieldActionsFailed, vs...))
}

// ActionsFailedGT applies the GT predicate on the "actions_failed" field.
func ActionsFailedGT(v int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGT(FieldActionsFailed, v))
}

// ActionsFailedGTE applies the GTE predicate on the "actions_failed" field.
func ActionsFailedGTE(v int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGTE(FieldActionsFailed, v))
}

// ActionsFailedLT applies the LT predicate on the "actions_failed" field.
func ActionsFailedLT(v int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLT(FieldActionsFailed, v))
}

// ActionsFailedLTE applies the LTE predicate on the "actions_failed" field.
func ActionsFailedLTE(v int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLTE(FieldActionsFailed, v))
}

// ActionResultsIsNil applies the IsNil predicate on the "action_results" field.
func ActionResultsIsNil() predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIsNull(FieldActionResults))
}

// ActionResultsNotNil applies the NotNil predicate on the "action_results" field.
func ActionResultsNotNil() predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotNull(FieldActionResults))
}

// ErrorSummaryEQ applies the EQ predicate on the "error_summary" field.
func ErrorSummaryEQ(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldErrorSummary, v))
}

// ErrorSummaryNEQ applies the NEQ predicate on the "error_summary" field.
func ErrorSummaryNEQ(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNEQ(FieldErrorSummary, v))
}

// ErrorSummaryIn applies the In predicate on the "error_summary" field.
func ErrorSummaryIn(vs ...string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIn(FieldErrorSummary, vs...))
}

// ErrorSummaryNotIn applies the NotIn predicate on the "error_summary" field.
func ErrorSummaryNotIn(vs ...string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotIn(FieldErrorSummary, vs...))
}

// ErrorSummaryGT applies the GT predicate on the "error_summary" field.
func ErrorSummaryGT(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGT(FieldErrorSummary, v))
}

// ErrorSummaryGTE applies the GTE predicate on the "error_summary" field.
func ErrorSummaryGTE(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGTE(FieldErrorSummary, v))
}

// ErrorSummaryLT applies the LT predicate on the "error_summary" field.
func ErrorSummaryLT(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLT(FieldErrorSummary, v))
}

// ErrorSummaryLTE applies the LTE predicate on the "error_summary" field.
func ErrorSummaryLTE(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLTE(FieldErrorSummary, v))
}

// ErrorSummaryContains applies the Contains predicate on the "error_summary" field.
func ErrorSummaryContains(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldContains(FieldErrorSummary, v))
}

// ErrorSummaryHasPrefix applies the HasPrefix predicate on the "error_summary" field.
func ErrorSummaryHasPrefix(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldHasPrefix(FieldErrorSummary, v))
}

// ErrorSummaryHasSuffix applies the HasSuffix predicate on the "error_summary" field.
func ErrorSummaryHasSuffix(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldHasSuffix(FieldErrorSummary, v))
}

// ErrorSummaryIsNil applies the IsNil predicate on the "error_summary" field.
func ErrorSummaryIsNil() predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIsNull(FieldErrorSummary))
}

// ErrorSummaryNotNil applies the NotNil predicate on the "error_summary" field.
func ErrorSummaryNotNil() predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotNull(FieldErrorSummary))
}

// ErrorSummaryEqualFold applies the EqualFold predicate on the "error_summary" field.
func ErrorSummaryEqualFold(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEqualFold(FieldErrorSummary, v))
}

// ErrorSummaryContainsFold applies the ContainsFold predicate on the "error_summary" field.
func ErrorSummaryContainsFold(v string) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldContainsFold(FieldErrorSummary, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotNull(FieldCompletedAt))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.FieldNotNull(FieldDurationMs))
}

// HasAutomation applies the HasEdge predicate on the "automation" edge.
func HasAutomation() predicate.ExecutionLog {
	return predicate.ExecutionLog(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AutomationTable, AutomationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAutomationWith applies the HasEdge predicate on the "automation" edge with a given conditions (other predicates).
func HasAutomationWith(preds ...predicate.Automation) predicate.ExecutionLog {
	return predicate.ExecutionLog(func(s *sql.Selector) {
		step := newAutomationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExecutionLog) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExecutionLog) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExecutionLog) predicate.ExecutionLog {
	return predicate.ExecutionLog(sql.NotPredicates(p))
}
