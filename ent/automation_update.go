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

// AutomationUpdate is the builder for updating Automation entities.
type AutomationUpdate struct {
	config
	hooks    []Hook
	mutation *AutomationMutation
}

// Where appends a list predicates to the AutomationUpdate builder.
func (_u *AutomationUpdate) Where(ps ...predicate.Automation) *AutomationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *AutomationUpdate) SetOwnerID(v string) *AutomationUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *AutomationUpdate) SetNillableOwnerID(v *string) *AutomationUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *AutomationUpdate) SetName(v string) *AutomationUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AutomationUpdate) SetNillableName(v *string) *AutomationUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTriggerType sets the "trigger_type" field.
func (_u *AutomationUpdate) SetTriggerType(v automation.TriggerType) *AutomationUpdate {
	_u.mutation.SetTriggerType(v)
	return _u
}

// SetNillableTriggerType sets the "trigger_type" field if the given value is not nil.
func (_u *AutomationUpdate) SetNillableTriggerType(v *automation.TriggerType) *AutomationUpdate {
	if v != nil {
		_u.SetTriggerType(*v)
	}
	return _u
}

// SetTriggerConfig sets the "trigger_config" field.
func (_u *AutomationUpdate) SetTriggerConfig(v map[string]interface{}) *AutomationUpdate {
	_u.mutation.SetTriggerConfig(v)
	return _u
}

// ClearTriggerConfig clears the value of the "trigger_config" field.
func (_u *AutomationUpdate) ClearTriggerConfig() *AutomationUpdate {
	_u.mutation.ClearTriggerConfig()
	return _u
}

// SetActions sets the "actions" field.
func (_u *AutomationUpdate) SetActions(v []map[string]interface{}) *AutomationUpdate {
	_u.mutation.SetActions(v)
	return _u
}

// AppendActions appends value to the "actions" field.
func (_u *AutomationUpdate) AppendActions(v []map[string]interface{}) *AutomationUpdate {
	_u.mutation.AppendActions(v)
	return _u
}

// SetVariables sets the "variables" field.
func (_u *AutomationUpdate) SetVariables(v map[string]interface{}) *AutomationUpdate {
	_u.mutation.SetVariables(v)
	return _u
}

// ClearVariables clears the value of the "variables" field.
func (_u *AutomationUpdate) ClearVariables() *AutomationUpdate {
	_u.mutation.ClearVariables()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AutomationUpdate) SetStatus(v automation.Status) *AutomationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AutomationUpdate) SetNillableStatus(v *automation.Status) *AutomationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *AutomationUpdate) SetActive(v bool) *AutomationUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *AutomationUpdate) SetNillableActive(v *bool) *AutomationUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetNextPollAt sets the "next_poll_at" field.
func (_u *AutomationUpdate) SetNextPollAt(v time.Time) *AutomationUpdate {
	_u.mutation.SetNextPollAt(v)
	return _u
}

// SetNillableNextPollAt sets the "next_poll_at" field if the given value is not nil.
func (_u *AutomationUpdate) SetNillableNextPollAt(v *time.Time) *AutomationUpdate {
	if v != nil {
		_u.SetNextPollAt(*v)
	}
	return _u
}

// ClearNextPollAt clears the value of the "next_poll_at" field.
func (_u *AutomationUpdate) ClearNextPollAt() *AutomationUpdate {
	_u.mutation.ClearNextPollAt()
	return _u
}

// SetLastPollCursor sets the "last_poll_cursor" field.
func (_u *AutomationUpdate) SetLastPollCursor(v string) *AutomationUpdate {
	_u.mutation.SetLastPollCursor(v)
	return _u
}

// SetNillableLastPollCursor sets the "last_poll_cursor" field if the given value is not nil.
func (_u *AutomationUpdate) SetNillableLastPollCursor(v *string) *AutomationUpdate {
	if v != nil {
		_u.SetLastPollCursor(*v)
	}
	return _u
}

// ClearLastPollCursor clears the value of the "last_poll_cursor" field.
func (_u *AutomationUpdate) ClearLastPollCursor() *AutomationUpdate {
	_u.mutation.ClearLastPollCursor()
	return _u
}

// SetPollingIntervalMinutes sets the "polling_interval_minutes" field.
func (_u *AutomationUpdate) SetPollingIntervalMinutes(v int) *AutomationUpdate {
	_u.mutation.ResetPollingIntervalMinutes()
	_u.mutation.SetPollingIntervalMinutes(v)
	return _u
}

// SetNillablePollingIntervalMinutes sets the "polling_interval_minutes" field if the given value is not nil.
func (_u *AutomationUpdate) SetNillablePollingIntervalMinutes(v *int) *AutomationUpdate {
	if v != nil {
		_u.SetPollingIntervalMinutes(*v)
	}
	return _u
}

// AddPollingIntervalMinutes adds value to the "polling_interval_minutes" field.
func (_u *AutomationUpdate) AddPollingIntervalMinutes(v int) *AutomationUpdate {
	_u.mutation.AddPollingIntervalMinutes(v)
	return _u
}

// ClearPollingIntervalMinutes clears the value of the "polling_interval_minutes" field.
func (_u *AutomationUpdate) ClearPollingIntervalMinutes() *AutomationUpdate {
	_u.mutation.ClearPollingIntervalMinutes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AutomationUpdate) SetCreatedAt(v time.Time) *AutomationUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AutomationUpdate) SetNillableCreatedAt(v *time.Time) *AutomationUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AutomationUpdate) SetUpdatedAt(v time.Time) *AutomationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddExecutionLogIDs adds the "execution_logs" edge to the ExecutionLog entity by IDs.
func (_u *AutomationUpdate) AddExecutionLogIDs(ids ...string) *AutomationUpdate {
	_u.mutation.AddExecutionLogIDs(ids...)
	return _u
}

// AddExecutionLogs adds the "execution_logs" edges to the ExecutionLog entity.
func (_u *AutomationUpdate) AddExecutionLogs(v ...*ExecutionLog) *AutomationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionLogIDs(ids...)
}

// Mutation returns the AutomationMutation object of the builder.
func (_u *AutomationUpdate) Mutation() *AutomationMutation {
	return _u.mutation
}

// ClearExecutionLogs clears all "execution_logs" edges to the ExecutionLog entity.
func (_u *AutomationUpdate) ClearExecutionLogs() *AutomationUpdate {
	_u.mutation.ClearExecutionLogs()
	return _u
}

// RemoveExecutionLogIDs removes the "execution_logs" edge to ExecutionLog entities by IDs.
func (_u *AutomationUpdate) RemoveExecutionLogIDs(ids ...string) *AutomationUpdate {
	_u.mutation.RemoveExecutionLogIDs(ids...)
	return _u
}

// RemoveExecutionLogs removes "execution_logs" edges to ExecutionLog entities.
func (_u *AutomationUpdate) RemoveExecutionLogs(v ...*ExecutionLog) *AutomationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionLogIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AutomationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AutomationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AutomationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AutomationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AutomationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := automation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AutomationUpdate) check() error {
	if v, ok := _u.mutation.TriggerType(); ok {
		if err := automation.TriggerTypeValidator(v); err != nil {
			return &ValidationError{Name: "trigger_type", err: fmt.Errorf(`ent: validator failed for field "Automation.trigger_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := automation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Automation.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AutomationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(automation.Table, automation.Columns, sqlgraph.NewFieldSpec(automation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(automation.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(automation.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggerType(); ok {
		_spec.SetField(automation.FieldTriggerType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TriggerConfig(); ok {
		_spec.SetField(automation.FieldTriggerConfig, field.TypeJSON, value)
	}
	if _u.mutation.TriggerConfigCleared() {
		_spec.ClearField(automation.FieldTriggerConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Actions(); ok {
		_spec.SetField(automation.FieldActions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedActions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, automation.FieldActions, value)
		})
	}
	if value, ok := _u.mutation.Variables(); ok {
		_spec.SetField(automation.FieldVariables, field.TypeJSON, value)
	}
	if _u.mutation.VariablesCleared() {
		_spec.ClearField(automation.FieldVariables, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(automation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(automation.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.NextPollAt(); ok {
		_spec.SetField(automation.FieldNextPollAt, field.TypeTime, value)
	}
	if _u.mutation.NextPollAtCleared() {
		_spec.ClearField(automation.FieldNextPollAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastPollCursor(); ok {
		_spec.SetField(automation.FieldLastPollCursor, field.TypeString, value)
	}
	if _u.mutation.LastPollCursorCleared() {
		_spec.ClearField(automation.FieldLastPollCursor, field.TypeString)
	}
	if value, ok := _u.mutation.PollingIntervalMinutes(); ok {
		_spec.SetField(automation.FieldPollingIntervalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPollingIntervalMinutes(); ok {
		_spec.AddField(automation.FieldPollingIntervalMinutes, field.TypeInt, value)
	}
	if _u.mutation.PollingIntervalMinutesCleared() {
		_spec.ClearField(automation.FieldPollingIntervalMinutes, field.TypeInt)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(automation.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(automation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ExecutionLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   automation.ExecutionLogsTable,
			Columns: []string{automation.ExecutionLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExecutionLogsIDs(); len(nodes) > 0 && !_u.mutation.ExecutionLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   automation.ExecutionLogsTable,
			Columns: []string{automation.ExecutionLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutionLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   automation.ExecutionLogsTable,
			Columns: []string{automation.ExecutionLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{automation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AutomationUpdateOne is the builder for updating a single Automation entity.
type AutomationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AutomationMutation
}

// SetOwnerID sets the "owner_id" field.
func (_u *AutomationUpdateOne) SetOwnerID(v string) *AutomationUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *AutomationUpdateOne) SetNillableOwnerID(v *string) *AutomationUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *AutomationUpdateOne) SetName(v string) *AutomationUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AutomationUpdateOne) SetNillableName(v *string) *AutomationUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTriggerType sets the "trigger_type" field.
func (_u *AutomationUpdateOne) SetTriggerType(v automation.TriggerType) *AutomationUpdateOne {
	_u.mutation.SetTriggerType(v)
	return _u
}

// SetNillableTriggerType sets the "trigger_type" field if the given value is not nil.
func (_u *AutomationUpdateOne) SetNillableTriggerType(v *automation.TriggerType) *AutomationUpdateOne {
	if v != nil {
		_u.SetTriggerType(*v)
	}
	return _u
}

// SetTriggerConfig sets the "trigger_config" field.
func (_u *AutomationUpdateOne) SetTriggerConfig(v map[string]interface{}) *AutomationUpdateOne {
	_u.mutation.SetTriggerConfig(v)
	return _u
}

// ClearTriggerConfig clears the value of the "trigger_config" field.
func (_u *AutomationUpdateOne) ClearTriggerConfig() *AutomationUpdateOne {
	_u.mutation.ClearTriggerConfig()
	return _u
}

// SetActions sets the "actions" field.
func (_u *AutomationUpdateOne) SetActions(v []map[string]interface{}) *AutomationUpdateOne {
	_u.mutation.SetActions(v)
	return _u
}

// AppendActions appends value to the "actions" field.
func (_u *AutomationUpdateOne) AppendActions(v []map[string]interface{}) *AutomationUpdateOne {
	_u.mutation.AppendActions(v)
	return _u
}

// SetVariables sets the "variables" field.
func (_u *AutomationUpdateOne) SetVariables(v map[string]interface{}) *AutomationUpdateOne {
	_u.mutation.SetVariables(v)
	return _u
}

// ClearVariables clears the value of the "variables" field.
func (_u *AutomationUpdateOne) ClearVariables() *AutomationUpdateOne {
	_u.mutation.ClearVariables()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AutomationUpdateOne) SetStatus(v automation.Status) *AutomationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AutomationUpdateOne) SetNillableStatus(v *automation.Status) *AutomationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *AutomationUpdateOne) SetActive(v bool) *AutomationUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *AutomationUpdateOne) SetNillableActive(v *bool) *AutomationUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetNextPollAt sets the "next_poll_at" field.
func (_u *AutomationUpdateOne) SetNextPollAt(v time.Time) *AutomationUpdateOne {
	_u.mutation.SetNextPollAt(v)
	return _u
}

// SetNillableNextPollAt sets the "next_poll_at" field if the given value is not nil.
func (_u *AutomationUpdateOne) SetNillableNextPollAt(v *time.Time) *AutomationUpdateOne {
	if v != nil {
		_u.SetNextPollAt(*v)
	}
	return _u
}

// ClearNextPollAt clears the value of the "next_poll_at" field.
func (_u *AutomationUpdateOne) ClearNextPollAt() *AutomationUpdateOne {
	_u.mutation.ClearNextPollAt()
	return _u
}

// SetLastPollCursor sets the "last_poll_cursor" field.
func (_u *AutomationUpdateOne) SetLastPollCursor(v string) *AutomationUpdateOne {
	_u.mutation.SetLastPollCursor(v)
	return _u
}

// SetNillableLastPollCursor sets the "last_poll_cursor" field if the given value is not nil.
func (_u *AutomationUpdateOne) SetNillableLastPollCursor(v *string) *AutomationUpdateOne {
	if v != nil {
		_u.SetLastPollCursor(*v)
	}
	return _u
}

// ClearLastPollCursor clears the value of the "last_poll_cursor" field.
func (_u *AutomationUpdateOne) ClearLastPollCursor() *AutomationUpdateOne {
	_u.mutation.ClearLastPollCursor()
	return _u
}

// SetPollingIntervalMinutes sets the "polling_interval_minutes" field.
func (_u *AutomationUpdateOne) SetPollingIntervalMinutes(v int) *AutomationUpdateOne {
	_u.mutation.ResetPollingIntervalMinutes()
	_u.mutation.SetPollingIntervalMinutes(v)
	return _u
}

// SetNillablePollingIntervalMinutes sets the "polling_interval_minutes" field if the given value is not nil.
func (_u *AutomationUpdateOne) SetNillablePollingIntervalMinutes(v *int) *AutomationUpdateOne {
	if v != nil {
		_u.SetPollingIntervalMinutes(*v)
	}
	return _u
}

// AddPollingIntervalMinutes adds value to the "polling_interval_minutes" field.
func (_u *AutomationUpdateOne) AddPollingIntervalMinutes(v int) *AutomationUpdateOne {
	_u.mutation.AddPollingIntervalMinutes(v)
	return _u
}

// ClearPollingIntervalMinutes clears the value of the "polling_interval_minutes" field.
func (_u *AutomationUpdateOne) ClearPollingIntervalMinutes() *AutomationUpdateOne {
	_u.mutation.ClearPollingIntervalMinutes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AutomationUpdateOne) SetCreatedAt(v time.Time) *AutomationUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AutomationUpdateOne) SetNillableCreatedAt(v *time.Time) *AutomationUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AutomationUpdateOne) SetUpdatedAt(v time.Time) *AutomationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddExecutionLogIDs adds the "execution_logs" edge to the ExecutionLog entity by IDs.
func (_u *AutomationUpdateOne) AddExecutionLogIDs(ids ...string) *AutomationUpdateOne {
	_u.mutation.AddExecutionLogIDs(ids...)
	return _u
}

// AddExecutionLogs adds the "execution_logs" edges to the ExecutionLog entity.
func (_u *AutomationUpdateOne) AddExecutionLogs(v ...*ExecutionLog) *AutomationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionLogIDs(ids...)
}

// Mutation returns the AutomationMutation object of the builder.
func (_u *AutomationUpdateOne) Mutation() *AutomationMutation {
	return _u.mutation
}

// ClearExecutionLogs clears all "execution_logs" edges to the ExecutionLog entity.
func (_u *AutomationUpdateOne) ClearExecutionLogs() *AutomationUpdateOne {
	_u.mutation.ClearExecutionLogs()
	return _u
}

// RemoveExecutionLogIDs removes the "execution_logs" edge to ExecutionLog entities by IDs.
func (_u *AutomationUpdateOne) RemoveExecutionLogIDs(ids ...string) *AutomationUpdateOne {
	_u.mutation.RemoveExecutionLogIDs(ids...)
	return _u
}

// RemoveExecutionLogs removes "execution_logs" edges to ExecutionLog entities.
func (_u *AutomationUpdateOne) RemoveExecutionLogs(v ...*ExecutionLog) *AutomationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionLogIDs(ids...)
}

// Where appends a list predicates to the AutomationUpdate builder.
func (_u *AutomationUpdateOne) Where(ps ...predicate.Automation) *AutomationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AutomationUpdateOne) Select(field string, fields ...string) *AutomationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Automation entity.
func (_u *AutomationUpdateOne) Save(ctx context.Context) (*Automation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AutomationUpdateOne) SaveX(ctx context.Context) *Automation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AutomationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AutomationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AutomationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := automation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AutomationUpdateOne) check() error {
	if v, ok := _u.mutation.TriggerType(); ok {
		if err := automation.TriggerTypeValidator(v); err != nil {
			return &ValidationError{Name: "trigger_type", err: fmt.Errorf(`ent: validator failed for field "Automation.trigger_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := automation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Automation.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AutomationUpdateOne) sqlSave(ctx context.Context) (_node *Automation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(automation.Table, automation.Columns, sqlgraph.NewFieldSpec(automation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Automation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, automation.FieldID)
		for _, f := range fields {
			if !automation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != automation.FieldID {
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
		_spec.SetField(automation.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(automation.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggerType(); ok {
		_spec.SetField(automation.FieldTriggerType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TriggerConfig(); ok {
		_spec.SetField(automation.FieldTriggerConfig, field.TypeJSON, value)
	}
	if _u.mutation.TriggerConfigCleared() {
		_spec.ClearField(automation.FieldTriggerConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Actions(); ok {
		_spec.SetField(automation.FieldActions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedActions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, automation.FieldActions, value)
		})
	}
	if value, ok := _u.mutation.Variables(); ok {
		_spec.SetField(automation.FieldVariables, field.TypeJSON, value)
	}
	if _u.mutation.VariablesCleared() {
		_spec.ClearField(automation.FieldVariables, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(automation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(automation.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.NextPollAt(); ok {
		_spec.SetField(automation.FieldNextPollAt, field.TypeTime, value)
	}
	if _u.mutation.NextPollAtCleared() {
		_spec.ClearField(automation.FieldNextPollAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastPollCursor(); ok {
		_spec.SetField(automation.FieldLastPollCursor, field.TypeString, value)
	}
	if _u.mutation.LastPollCursorCleared() {
		_spec.ClearField(automation.FieldLastPollCursor, field.TypeString)
	}
	if value, ok := _u.mutation.PollingIntervalMinutes(); ok {
		_spec.SetField(automation.FieldPollingIntervalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPollingIntervalMinutes(); ok {
		_spec.AddField(automation.FieldPollingIntervalMinutes, field.TypeInt, value)
	}
	if _u.mutation.PollingIntervalMinutesCleared() {
		_spec.ClearField(automation.FieldPollingIntervalMinutes, field.TypeInt)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(automation.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(automation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ExecutionLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   automation.ExecutionLogsTable,
			Columns: []string{automation.ExecutionLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExecutionLogsIDs(); len(nodes) > 0 && !_u.mutation.ExecutionLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   automation.ExecutionLogsTable,
			Columns: []string{automation.ExecutionLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutionLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   automation.ExecutionLogsTable,
			Columns: []string{automation.ExecutionLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Automation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{automation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
