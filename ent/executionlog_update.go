// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/triggerflow/triggerflow/ent/automation"
	"github.com/triggerflow/triggerflow/ent/executionlog"
	"github.com/triggerflow/triggerflow/ent/predicate"
)

// ExecutionLogUpdate is the builder for updating ExecutionLog entities.
type ExecutionLogUpdate struct {
	config
	hooks    []Hook
	mutation *ExecutionLogMutation
}

// Where appends a list predicates to the ExecutionLogUpdate builder.
func (_u *ExecutionLogUpdate) Where(ps ...predicate.ExecutionLog) *ExecutionLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAutomationID sets the "automation_id" field.
func (_u *ExecutionLogUpdate) SetAutomationID(v string) *ExecutionLogUpdate {
	_u.mutation.SetAutomationID(v)
	return _u
}

// SetNillableAutomationID sets the "automation_id" field if the given value is not nil.
func (_u *ExecutionLogUpdate) SetNillableAutomationID(v *string) *ExecutionLogUpdate {
	if v != nil {
		_u.SetAutomationID(*v)
	}
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *ExecutionLogUpdate) SetOwnerID(v string) *ExecutionLogUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *ExecutionLogUpdate) SetNillableOwnerID(v *string) *ExecutionLogUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetTriggerType sets the "trigger_type" field.
func (_u *ExecutionLogUpdate) SetTriggerType(v string) *ExecutionLogUpdate {
	_u.mutation.SetTriggerType(v)
	return _u
}

// SetNillableTriggerType sets the "trigger_type" field if the given value is not nil.
func (_u *ExecutionLogUpdate) SetNillableTriggerType(v *string) *ExecutionLogUpdate {
	if v != nil {
		_u.SetTriggerType(*v)
	}
	return _u
}

// SetTriggerData sets the "trigger_data" field.
func (_u *ExecutionLogUpdate) SetTriggerData(v map[string]interface{}) *ExecutionLogUpdate {
	_u.mutation.SetTriggerData(v)
	return _u
}

// ClearTriggerData clears the value of the "trigger_data" field.
func (_u *ExecutionLogUpdate) ClearTriggerData() *ExecutionLogUpdate {
	_u.mutation.ClearTriggerData()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExecutionLogUpdate) SetStatus(v executionlog.Status) *ExecutionLogUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExecutionLogUpdate) SetNillableStatus(v *executionlog.Status) *ExecutionLogUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetActionsExecuted sets the "actions_executed" field.
func (_u *ExecutionLogUpdate) SetActionsExecuted(v int) *ExecutionLogUpdate {
	_u.mutation.ResetActionsExecuted()
	_u.mutation.SetActionsExecuted(v)
	return _u
}

// SetNillableActionsExecuted sets the "actions_executed" field if the given value is not nil.
func (_u *ExecutionLogUpdate) SetNillableActionsExecuted(v *int) *ExecutionLogUpdate {
	if v != nil {
		_u.SetActionsExecuted(*v)
	}
	return _u
}

// AddActionsExecuted adds value to the "actions_executed" field.
func (_u *ExecutionLogUpdate) AddActionsExecuted(v int) *ExecutionLogUpdate {
	_u.mutation.AddActionsExecuted(v)
	return _u
}

// SetActionsFailed sets the "actions_failed" field.
func (_u *ExecutionLogUpdate) SetActionsFailed(v int) *ExecutionLogUpdate {
	_u.mutation.ResetActionsFailed()
	_u.mutation.SetActionsFailed(v)
	return _u
}

// SetNillableActionsFailed sets the "actions_failed" field if the given value is not nil.
func (_u *ExecutionLogUpdate) SetNillableActionsFailed(v *int) *ExecutionLogUpdate {
	if v != nil {
		_u.SetActionsFailed(*v)
	}
	return _u
}

// AddActionsFailed adds value to the "actions_failed" field.
func (_u *ExecutionLogUpdate) AddActionsFailed(v int) *ExecutionLogUpdate {
	_u.mutation.AddActionsFailed(v)
	return _u
}

// SetActionResults sets the "action_results" field.
func (_u *ExecutionLogUpdate) SetActionResults(v []map[string]interface{}) *ExecutionLogUpdate {
	_u.mutation.SetActionResults(v)
	return _u
}

// AppendActionResults appends value to the "action_results" field.
func (_u *ExecutionLogUpdate) AppendActionResults(v []map[string]interface{}) *ExecutionLogUpdate {
	_u.mutation.AppendActionResults(v)
	return _u
}

// ClearActionResults clears the value of the "action_results" field.
func (_u *ExecutionLogUpdate) ClearActionResults() *ExecutionLogUpdate {
	_u.mutation.ClearActionResults()
	return _u
}

// SetErrorSummary sets the "error_summary" field.
func (_u *ExecutionLogUpdate) SetErrorSummary(v string) *ExecutionLogUpdate {
	_u.mutation.SetErrorSummary(v)
	return _u
}

// SetNillableErrorSummary sets the "error_summary" field if the given value is not nil.
func (_u *ExecutionLogUpdate) SetNillableErrorSummary(v *string) *ExecutionLogUpdate {
	if v != nil {
		_u.SetErrorSummary(*v)
	}
	return _u
}

// ClearErrorSummary clears the value of the "error_summary" field.
func (_u *ExecutionLogUpdate) ClearErrorSummary() *ExecutionLogUpdate {
	_u.mutation.ClearErrorSummary()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExecutionLogUpdate) SetStartedAt(v time.Time) *ExecutionLogUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExecutionLogUpdate) SetNillableStartedAt(v *time.Time) *ExecutionLogUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ExecutionLogUpdate) SetCompletedAt(v time.Time) *ExecutionLogUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ExecutionLogUpdate) SetNillableCompletedAt(v *time.Time) *ExecutionLogUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ExecutionLogUpdate) ClearCompletedAt() *ExecutionLogUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ExecutionLogUpdate) SetDurationMs(v int) *ExecutionLogUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ExecutionLogUpdate) SetNillableDurationMs(v *int) *ExecutionLogUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ExecutionLogUpdate) AddDurationMs(v int) *ExecutionLogUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *ExecutionLogUpdate) ClearDurationMs() *ExecutionLogUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetAutomation sets the "automation" edge to the Automation entity.
func (_u *ExecutionLogUpdate) SetAutomation(v *Automation) *ExecutionLogUpdate {
	return _u.SetAutomationID(v.ID)
}

// Mutation returns the ExecutionLogMutation object of the builder.
func (_u *ExecutionLogUpdate) Mutation() *ExecutionLogMutation {
	return _u.mutation
}

// ClearAutomation clears the "automation" edge to the Automation entity.
func (_u *ExecutionLogUpdate) ClearAutomation() *ExecutionLogUpdate {
	_u.mutation.ClearAutomation()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExecutionLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExecutionLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionLogUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := executionlog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExecutionLog.status": %w`, err)}
		}
	}
	if _u.mutation.AutomationCleared() && len(_u.mutation.AutomationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExecutionLog.automation"`)
	}
	return nil
}

func (_u *ExecutionLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(executionlog.Table, executionlog.Columns, sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(executionlog.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggerType(); ok {
		_spec.SetField(executionlog.FieldTriggerType, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggerData(); ok {
		_spec.SetField(executionlog.FieldTriggerData, field.TypeJSON, value)
	}
	if _u.mutation.TriggerDataCleared() {
		_spec.ClearField(executionlog.FieldTriggerData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(executionlog.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ActionsExecuted(); ok {
		_spec.SetField(executionlog.FieldActionsExecuted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActionsExecuted(); ok {
		_spec.AddField(executionlog.FieldActionsExecuted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActionsFailed(); ok {
		_spec.SetField(executionlog.FieldActionsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActionsFailed(); ok {
		_spec.AddField(executionlog.FieldActionsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActionResults(); ok {
		_spec.SetField(executionlog.FieldActionResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedActionResults(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, executionlog.FieldActionResults, value)
		})
	}
	if _u.mutation.ActionResultsCleared() {
		_spec.ClearField(executionlog.FieldActionResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorSummary(); ok {
		_spec.SetField(executionlog.FieldErrorSummary, field.TypeString, value)
	}
	if _u.mutation.ErrorSummaryCleared() {
		_spec.ClearField(executionlog.FieldErrorSummary, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(executionlog.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(executionlog.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(executionlog.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(executionlog.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(executionlog.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(executionlog.FieldDurationMs, field.TypeInt)
	}
	if _u.mutation.AutomationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   executionlog.AutomationTable,
			Columns: []string{executionlog.AutomationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(automation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AutomationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   executionlog.AutomationTable,
			Columns: []string{executionlog.AutomationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(automation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExecutionLogUpdateOne is the builder for updating a single ExecutionLog entity.
type ExecutionLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExecutionLogMutation
}

// SetAutomationID sets the "automation_id" field.
func (_u *ExecutionLogUpdateOne) SetAutomationID(v string) *ExecutionLogUpdateOne {
	_u.mutation.SetAutomationID(v)
	return _u
}

// SetNillableAutomationID sets the "automation_id" field if the given value is not nil.
func (_u *ExecutionLogUpdateOne) SetNillableAutomationID(v *string) *ExecutionLogUpdateOne {
	if v != nil {
		_u.SetAutomationID(*v)
	}
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *ExecutionLogUpdateOne) SetOwnerID(v string) *ExecutionLogUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *ExecutionLogUpdateOne) SetNillableOwnerID(v *string) *ExecutionLogUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetTriggerType sets the "trigger_type" field.
func (_u *ExecutionLogUpdateOne) SetTriggerType(v string) *ExecutionLogUpdateOne {
	_u.mutation.SetTriggerType(v)
	return _u
}

// SetNillableTriggerType sets the "trigger_type" field if the given value is not nil.
func (_u *ExecutionLogUpdateOne) SetNillableTriggerType(v *string) *ExecutionLogUpdateOne {
	if v != nil {
		_u.SetTriggerType(*v)
	}
	return _u
}

// SetTriggerData sets the "trigger_data" field.
func (_u *ExecutionLogUpdateOne) SetTriggerData(v map[string]interface{}) *ExecutionLogUpdateOne {
	_u.mutation.SetTriggerData(v)
	return _u
}

// ClearTriggerData clears the value of the "trigger_data" field.
func (_u *ExecutionLogUpdateOne) ClearTriggerData() *ExecutionLogUpdateOne {
	_u.mutation.ClearTriggerData()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExecutionLogUpdateOne) SetStatus(v executionlog.Status) *ExecutionLogUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExecutionLogUpdateOne) SetNillableStatus(v *executionlog.Status) *ExecutionLogUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetActionsExecuted sets the "actions_executed" field.
func (_u *ExecutionLogUpdateOne) SetActionsExecuted(v int) *ExecutionLogUpdateOne {
	_u.mutation.ResetActionsExecuted()
	_u.mutation.SetActionsExecuted(v)
	return _u
}

// SetNillableActionsExecuted sets the "actions_executed" field if the given value is not nil.
func (_u *ExecutionLogUpdateOne) SetNillableActionsExecuted(v *int) *ExecutionLogUpdateOne {
	if v != nil {
		_u.SetActionsExecuted(*v)
	}
	return _u
}

// AddActionsExecuted adds value to the "actions_executed" field.
func (_u *ExecutionLogUpdateOne) AddActionsExecuted(v int) *ExecutionLogUpdateOne {
	_u.mutation.AddActionsExecuted(v)
	return _u
}

// SetActionsFailed sets the "actions_failed" field.
func (_u *ExecutionLogUpdateOne) SetActionsFailed(v int) *ExecutionLogUpdateOne {
	_u.mutation.ResetActionsFailed()
	_u.mutation.SetActionsFailed(v)
	return _u
}

// SetNillableActionsFailed sets the "actions_failed" field if the given value is not nil.
func (_u *ExecutionLogUpdateOne) SetNillableActionsFailed(v *int) *ExecutionLogUpdateOne {
	if v != nil {
		_u.SetActionsFailed(*v)
	}
	return _u
}

// AddActionsFailed adds value to the "actions_failed" field.
func (_u *ExecutionLogUpdateOne) AddActionsFailed(v int) *ExecutionLogUpdateOne {
	_u.mutation.AddActionsFailed(v)
	return _u
}

// SetActionResults sets the "action_results" field.
func (_u *ExecutionLogUpdateOne) SetActionResults(v []map[string]interface{}) *ExecutionLogUpdateOne {
	_u.mutation.SetActionResults(v)
	return _u
}

// AppendActionResults appends value to the "action_results" field.
func (_u *ExecutionLogUpdateOne) AppendActionResults(v []map[string]interface{}) *ExecutionLogUpdateOne {
	_u.mutation.AppendActionResults(v)
	return _u
}

// ClearActionResults clears the value of the "action_results" field.
func (_u *ExecutionLogUpdateOne) ClearActionResults() *ExecutionLogUpdateOne {
	_u.mutation.ClearActionResults()
	return _u
}

// SetErrorSummary sets the "error_summary" field.
func (_u *ExecutionLogUpdateOne) SetErrorSummary(v string) *ExecutionLogUpdateOne {
	_u.mutation.SetErrorSummary(v)
	return _u
}

// SetNillableErrorSummary sets the "error_summary" field if the given value is not nil.
func (_u *ExecutionLogUpdateOne) SetNillableErrorSummary(v *string) *ExecutionLogUpdateOne {
	if v != nil {
		_u.SetErrorSummary(*v)
	}
	return _u
}

// ClearErrorSummary clears the value of the "error_summary" field.
func (_u *ExecutionLogUpdateOne) ClearErrorSummary() *ExecutionLogUpdateOne {
	_u.mutation.ClearErrorSummary()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExecutionLogUpdateOne) SetStartedAt(v time.Time) *ExecutionLogUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExecutionLogUpdateOne) SetNillableStartedAt(v *time.Time) *ExecutionLogUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ExecutionLogUpdateOne) SetCompletedAt(v time.Time) *ExecutionLogUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ExecutionLogUpdateOne) SetNillableCompletedAt(v *time.Time) *ExecutionLogUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ExecutionLogUpdateOne) ClearCompletedAt() *ExecutionLogUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ExecutionLogUpdateOne) SetDurationMs(v int) *ExecutionLogUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ExecutionLogUpdateOne) SetNillableDurationMs(v *int) *ExecutionLogUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ExecutionLogUpdateOne) AddDurationMs(v int) *ExecutionLogUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *ExecutionLogUpdateOne) ClearDurationMs() *ExecutionLogUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetAutomation sets the "automation" edge to the Automation entity.
func (_u *ExecutionLogUpdateOne) SetAutomation(v *Automation) *ExecutionLogUpdateOne {
	return _u.SetAutomationID(v.ID)
}

// Mutation returns the ExecutionLogMutation object of the builder.
func (_u *ExecutionLogUpdateOne) Mutation() *ExecutionLogMutation {
	return _u.mutation
}

// ClearAutomation clears the "automation" edge to the Automation entity.
func (_u *ExecutionLogUpdateOne) ClearAutomation() *ExecutionLogUpdateOne {
	_u.mutation.ClearAutomation()
	return _u
}

// Where appends a list predicates to the ExecutionLogUpdate builder.
func (_u *ExecutionLogUpdateOne) Where(ps ...predicate.ExecutionLog) *ExecutionLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExecutionLogUpdateOne) Select(field string, fields ...string) *ExecutionLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExecutionLog entity.
func (_u *ExecutionLogUpdateOne) Save(ctx context.Context) (*ExecutionLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionLogUpdateOne) SaveX(ctx context.Context) *ExecutionLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExecutionLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionLogUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := executionlog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExecutionLog.status": %w`, err)}
		}
	}
	if _u.mutation.AutomationCleared() && len(_u.mutation.AutomationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExecutionLog.automation"`)
	}
	return nil
}

func (_u *ExecutionLogUpdateOne) sqlSave(ctx context.Context) (_node *ExecutionLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(executionlog.Table, executionlog.Columns, sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExecutionLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, executionlog.FieldID)
		for _, f := range fields {
			if !executionlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != executionlog.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(executionlog.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggerType(); ok {
		_spec.SetField(executionlog.FieldTriggerType, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggerData(); ok {
		_spec.SetField(executionlog.FieldTriggerData, field.TypeJSON, value)
	}
	if _u.mutation.TriggerDataCleared() {
		_spec.ClearField(executionlog.FieldTriggerData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(executionlog.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ActionsExecuted(); ok {
		_spec.SetField(executionlog.FieldActionsExecuted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActionsExecuted(); ok {
		_spec.AddField(executionlog.FieldActionsExecuted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActionsFailed(); ok {
		_spec.SetField(executionlog.FieldActionsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActionsFailed(); ok {
		_spec.AddField(executionlog.FieldActionsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActionResults(); ok {
		_spec.SetField(executionlog.FieldActionResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedActionResults(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, executionlog.FieldActionResults, value)
		})
	}
	if _u.mutation.ActionResultsCleared() {
		_spec.ClearField(executionlog.FieldActionResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorSummary(); ok {
		_spec.SetField(executionlog.FieldErrorSummary, field.TypeString, value)
	}
	if _u.mutation.ErrorSummaryCleared() {
		_spec.ClearField(executionlog.FieldErrorSummary, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(executionlog.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(executionlog.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(executionlog.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(executionlog.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(executionlog.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(executionlog.FieldDurationMs, field.TypeInt)
	}
	if _u.mutation.AutomationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   executionlog.AutomationTable,
			Columns: []string{executionlog.AutomationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(automation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AutomationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   executionlog.AutomationTable,
			Columns: []string{executionlog.AutomationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(automation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExecutionLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
