// Code generated by ent, DO NOT EDIT.

package automation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/triggerflow/triggerflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Automation {
	return predicate.Automation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Automation {
	return predicate.Automation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Automation {
	return predicate.Automation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Automation {
	return predicate.Automation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Automation {
	return predicate.Automation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Automation {
	return predicate.Automation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Automation {
	return predicate.Automation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Automation {
	return predicate.Automation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Automation {
	return predicate.Automation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Automation {
	return predicate.Automation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Automation {
	return predicate.Automation(sql.FieldContainsFold(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.Automation {
	return predicate.Automation(sql.FieldEQ(FieldOwnerID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Automation {
	return predicate.Automation(sql.FieldEQ(FieldName, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.Automation {
	return predicate.Automation(sql.FieldEQ(FieldActive, v))
}

// NextPollAt applies equality check predicate on the "next_poll_at" field. It's identical to NextPollAtEQ.
func NextPollAt(v time.Time) predicate.Automation {
	return predicate.Automation(sql.FieldEQ(FieldNextPollAt, v))
}

// LastPollCursor applies equality check predicate on the "last_poll_cursor" field. It's identical to LastPollCursorEQ.
func LastPollCursor(v string) predicate.Automation {
	return predicate.Automation(sql.FieldEQ(FieldLastPollCursor, v))
}

// PollingIntervalMinutes applies equality check predicate on the "polling_interval_minutes" field. It's identical to PollingIntervalMinutesEQ.
func PollingIntervalMinutes(v int) predicate.Automation {
	return predicate.Automation(sql.FieldEQ(FieldPollingIntervalMinutes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Automation {
	return predicate.Automation(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Automation {
	return predicate.Automation(sql.FieldEQ(FieldUpdatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.Automation {
	return predicate.Automation(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.Automation {
	return predicate.Automation(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.Automation {
	return predicate.Automation(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.Automation {
	return predicate.Automation(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.Automation {
	return predicate.Automation(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.Automation {
	return predicate.Automation(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.Automation {
	return predicate.Automation(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.Automation {
	return predicate.Automation(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.Automation {
	return predicate.Automation(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.Automation {
	return predicate.Automation(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.Automation {
	return predicate.Automation(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.Automation {
	return predicate.Automation(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.Automation {
	return predicate.Automation(sql.FieldContainsFold(FieldOwnerID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Automation {
	return predicate.Automation(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Automation {
	return predicate.Automation(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Automation {
	return predicate.Automation(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Automation {
	return predicate.Automation(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Automation {
	return predicate.Automation(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Automation {
	return predicate.Automation(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Automation {
	return predicate.Automation(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Automation {
	return predicate.Automation(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Automation {
	return predicate.Automation(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Automation {
	return predicate.Automation(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Automation {
	return predicate.Automation(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Automation {
	return predicate.Automation(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Automation {
	return predicate.Automation(sql.FieldContainsFold(FieldName, v))
}

// TriggerTypeEQ applies the EQ predicate on the "trigger_type" field.
func TriggerTypeEQ(v TriggerType) predicate.Automation {
	return predicate.Automation(sql.FieldEQ(FieldTriggerType, v))
}

// TriggerTypeNEQ applies the NEQ predicate on the "trigger_type" field.
func TriggerTypeNEQ(v TriggerType) predicate.Automation {
	return predicate.Automation(sql.FieldNEQ(FieldTriggerType, v))
}

// TriggerTypeIn applies the In predicate on the "trigger_type" field.
func TriggerTypeIn(vs ...TriggerType) predicate.Automation {
	return predicate.Automation(sql.FieldIn(FieldTriggerType, vs...))
}

// TriggerTypeNotIn applies the NotIn predicate on the "trigger_type" field.
func TriggerTypeNotIn(vs ...TriggerType) predicate.Automation {
	return predicate.Automation(sql.FieldNotIn(FieldTriggerType, vs...))
}

// TriggerConfigIsNil applies the IsNil predicate on the "trigger_config" field.
func TriggerConfigIsNil() predicate.Automation {
	return predicate.Automation(sql.FieldIsNull(FieldTriggerConfig))
}

// TriggerConfigNotNil applies the NotNil predicate on the "trigger_config" field.
func TriggerConfigNotNil() predicate.Automation {
	return predicate.Automation(sql.FieldNotNull(FieldTriggerConfig))
}

// VariablesIsNil applies the IsNil predicate on the "variables" field.
func VariablesIsNil() predicate.Automation {
	return predicate.Automation(sql.FieldIsNull(FieldVariables))
}

// VariablesNotNil applies the NotNil predicate on the "variables" field.
func VariablesNotNil() predicate.Automation {
	return predicate.Automation(sql.FieldNotNull(FieldVariables))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Automation {
	return predicate.Automation(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Automation {
	return predicate.Automation(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Automation {
	return predicate.Automation(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Automation {
	return predicate.Automation(sql.FieldNotIn(FieldStatus, vs...))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.Automation {
	return predicate.Automation(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.Automation {
	return predicate.Automation(sql.FieldNEQ(FieldActive, v))
}

// NextPollAtEQ applies the EQ predicate on the "next_poll_at" field.
func NextPollAtEQ(v time.Time) predicate.Automation {
	return predicate.Automation(sql.FieldEQ(FieldNextPollAt, v))
}

// NextPollAtNEQ applies the NEQ predicate on the "next_poll_at" field.
func NextPollAtNEQ(v time.Time) predicate.Automation {
	return predicate.Automation(sql.FieldNEQ(FieldNextPollAt, v))
}

// NextPollAtIn applies the In predicate on the "next_poll_at" field.
func NextPollAtIn(vs ...time.Time) predicate.Automation {
	return predicate.Automation(sql.FieldIn(FieldNextPollAt, vs...))
}

// NextPollAtNotIn applies the NotIn predicate on the "next_poll_at" field.
func NextPollAtNotIn(vs ...time.Time) predicate.Automation {
	return predicate.Automation(sql.FieldNotIn(FieldNextPollAt, vs...))
}

// NextPollAtGT applies the GT predicate on the "next_poll_at" field.
func NextPollAtGT(v time.Time) predicate.Automation {
	return predicate.Automation(sql.FieldGT(FieldNextPollAt, v))
}

// NextPollAtGTE applies the GTE predicate on the "next_poll_at" field.
func NextPollAtGTE(v time.Time) predicate.Automation {
	return predicate.Automation(sql.FieldGTE(FieldNextPollAt, v))
}

// NextPollAtLT applies the LT predicate on the "next_poll_at" field.
func NextPollAtLT(v time.Time) predicate.Automation {
	return predicate.Automation(sql.FieldLT(FieldNextPollAt, v))
}

// NextPollAtLTE applies the LTE predicate on the "next_poll_at" field.
func NextPollAtLTE(v time.Time) predicate.Automation {
	return predicate.Automation(sql.FieldLTE(FieldNextPollAt, v))
}

// NextPollAtIsNil applies the IsNil predicate on the "next_poll_at" field.
func NextPollAtIsNil() predicate.Automation {
	return predicate.Automation(sql.FieldIsNull(FieldNextPollAt))
}

// NextPollAtNotNil applies the NotNil predicate on the "next_poll_at" field.
func NextPollAtNotNil() predicate.Automation {
	return predicate.Automation(sql.FieldNotNull(FieldNextPollAt))
}

// LastPollCursorEQ applies the EQ predicate on the "last_poll_cursor" field.
func LastPollCursorEQ(v string) predicate.Automation {
	return predicate.Automation(sql.FieldEQ(FieldLastPollCursor, v))
}

// LastPollCursorNEQ applies the NEQ predicate on the "last_poll_cursor" field.
func LastPollCursorNEQ(v string) predicate.Automation {
	return predicate.Automation(sql.FieldNEQ(FieldLastPollCursor, v))
}

// LastPollCursorIn applies the In predicate on the "last_poll_cursor" field.
func LastPollCursorIn(vs ...string) predicate.Automation {
	return predicate.Automation(sql.FieldIn(FieldLastPollCursor, vs...))
}

// LastPollCursorNotIn applies the NotIn predicate on the "last_poll_cursor" field.
func LastPollCursorNotIn(vs ...string) predicate.Automation {
	return predicate.Automation(sql.FieldNotIn(FieldLastPollCursor, vs...))
}

// LastPollCursorGT applies the GT predicate on the "last_poll_cursor" field.
func LastPollCursorGT(v string) predicate.Automation {
	return predicate.Automation(sql.FieldGT(FieldLastPollCursor, v))
}

// LastPollCursorGTE applies the GTE predicate on the "last_poll_cursor" field.
func LastPollCursorGTE(v string) predicate.Automation {
	return predicate.Automation(sql.FieldGTE(FieldLastPollCursor, v))
}

// LastPollCursorLT applies the LT predicate on the "last_poll_cursor" field.
func LastPollCursorLT(v string) predicate.Automation {
	return predicate.Automation(sql.FieldLT(FieldLastPollCursor, v))
}

// LastPollCursorLTE applies the LTE predicate on the "last_poll_cursor" field.
func LastPollCursorLTE(v string) predicate.Automation {
	return predicate.Automation(sql.FieldLTE(FieldLastPollCursor, v))
}

// LastPollCursorContains applies the Contains predicate on the "last_poll_cursor" field.
func LastPollCursorContains(v string) predicate.Automation {
	return predicate.Automation(sql.FieldContains(FieldLastPollCursor, v))
}

// LastPollCursorHasPrefix applies the HasPrefix predicate on the "last_poll_cursor" field.
func LastPollCursorHasPrefix(v string) predicate.Automation {
	return predicate.Automation(sql.FieldHasPrefix(FieldLastPollCursor, v))
}

// LastPollCursorHasSuffix applies the HasSuffix predicate on the "last_poll_cursor" field.
func LastPollCursorHasSuffix(v string) predicate.Automation {
	return predicate.Automation(sql.FieldHasSuffix(FieldLastPollCursor, v))
}

// LastPollCursorIsNil applies the IsNil predicate on the "last_poll_cursor" field.
func LastPollCursorIsNil() predicate.Automation {
	return predicate.Automation(sql.FieldIsNull(FieldLastPollCursor))
}

// LastPollCursorNotNil applies the NotNil predicate on the "last_poll_cursor" field.
func LastPollCursorNotNil() predicate.Automation {
	return predicate.Automation(sql.FieldNotNull(FieldLastPollCursor))
}

// LastPollCursorEqualFold applies the EqualFold predicate on the "last_poll_cursor" field.
func LastPollCursorEqualFold(v string) predicate.Automation {
	return predicate.Automation(sql.FieldEqualFold(FieldLastPollCursor, v))
}

// LastPollCursorContainsFold applies the ContainsFold predicate on the "last_poll_cursor" field.
func LastPollCursorContainsFold(v string) predicate.Automation {
	return predicate.Automation(sql.FieldContainsFold(FieldLastPollCursor, v))
}

// PollingIntervalMinutesEQ applies the EQ predicate on the "polling_interval_minutes" field.
func PollingIntervalMinutesEQ(v int) predicate.Automation {
	return predicate.Automation(sql.FieldEQ(FieldPollingIntervalMinutes, v))
}

// PollingIntervalMinutesNEQ applies the NEQ predicate on the "polling_interval_minutes" field.
func PollingIntervalMinutesNEQ(v int) predicate.Automation {
	return predicate.Automation(sql.FieldNEQ(FieldPollingIntervalMinutes, v))
}

// PollingIntervalMinutesIn applies the In predicate on the "polling_interval_minutes" field.
func PollingIntervalMinutesIn(vs ...int) predicate.Automation {
	return predicate.Automation(sql.FieldIn(FieldPollingIntervalMinutes, vs...))
}

// PollingIntervalMinutesNotIn applies the NotIn predicate on the "polling_interval_minutes" field.
func PollingIntervalMinutesNotIn(vs ...int) predicate.Automation {
	return predicate.Automation(sql.FieldNotIn(FieldPollingIntervalMinutes, vs...))
}

// PollingIntervalMinutesGT applies the GT predicate on the "polling_interval_minutes" field.
func PollingIntervalMinutesGT(v int) predicate.Automation {
	return predicate.Automation(sql.FieldGT(FieldPollingIntervalMinutes, v))
}

// PollingIntervalMinutesGTE applies the GTE predicate on the "polling_interval_minutes" field.
func PollingIntervalMinutesGTE(v int) predicate.Automation {
	return predicate.Automation(sql.FieldGTE(FieldPollingIntervalMinutes, v))
}

// PollingIntervalMinutesLT applies the LT predicate on the "polling_interval_minutes" field.
func PollingIntervalMinutesLT(v int) predicate.Automation {
	return predicate.Automation(sql.FieldLT(FieldPollingIntervalMinutes, v))
}

// PollingIntervalMinutesLTE applies the LTE predicate on the "polling_interval_minutes" field.
func PollingIntervalMinutesLTE(v int) predicate.Automation {
	return predicate.Automation(sql.FieldLTE(FieldPollingIntervalMinutes, v))
}

// PollingIntervalMinutesIsNil applies the IsNil predicate on the "polling_interval_minutes" field.
func PollingIntervalMinutesIsNil() predicate.Automation {
	return predicate.Automation(sql.FieldIsNull(FieldPollingIntervalMinutes))
}

// PollingIntervalMinutesNotNil applies the NotNil predicate on the "polling_interval_minutes" field.
func PollingIntervalMinutesNotNil() predicate.Automation {
	return predicate.Automation(sql.FieldNotNull(FieldPollingIntervalMinutes))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Automation {
	return predicate.Automation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Automation {
	return predicate.Automation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Automation {
	return predicate.Automation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Automation {
	return predicate.Automation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Automation {
	return predicate.Automation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Automation {
	return predicate.Automation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Automation {
	return predicate.Automation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Automation {
	return predicate.Automation(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Automation {
	return predicate.Automation(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Automation {
	return predicate.Automation(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Automation {
	return predicate.Automation(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Automation {
	return predicate.Automation(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Automation {
	return predicate.Automation(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Automation {
	return predicate.Automation(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Automation {
	return predicate.Automation(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Automation {
	return predicate.Automation(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasExecutionLogs applies the HasEdge predicate on the "execution_logs" edge.
func HasExecutionLogs() predicate.Automation {
	return predicate.Automation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ExecutionLogsTable, ExecutionLogsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExecutionLogsWith applies the HasEdge predicate on the "execution_logs" edge with a given conditions (other predicates).
func HasExecutionLogsWith(preds ...predicate.ExecutionLog) predicate.Automation {
	return predicate.Automation(func(s *sql.Selector) {
		step := newExecutionLogsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Automation) predicate.Automation {
	return predicate.Automation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Automation) predicate.Automation {
	return predicate.Automation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Automation) predicate.Automation {
	return predicate.Automation(sql.NotPredicates(p))
}
