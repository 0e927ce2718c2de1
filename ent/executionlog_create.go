// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/triggerflow/triggerflow/ent/automation"
	"github.com/triggerflow/triggerflow/ent/executionlog"
)

// ExecutionLogCreate is the builder for creating a ExecutionLog entity.
type ExecutionLogCreate struct {
	config
	mutation *ExecutionLogMutation
	hooks    []Hook
}

// SetAutomationID sets the "automation_id" field.
func (_c *ExecutionLogCreate) SetAutomationID(v string) *ExecutionLogCreate {
	_c.mutation.SetAutomationID(v)
	return _c
}

// SetOwnerID sets the "owner_id" field.
func (_c *ExecutionLogCreate) SetOwnerID(v string) *ExecutionLogCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetTriggerType sets the "trigger_type" field.
func (_c *ExecutionLogCreate) SetTriggerType(v string) *ExecutionLogCreate {
	_c.mutation.SetTriggerType(v)
	return _c
}

// SetTriggerData sets the "trigger_data" field.
func (_c *ExecutionLogCreate) SetTriggerData(v map[string]interface{}) *ExecutionLogCreate {
	_c.mutation.SetTriggerData(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExecutionLogCreate) SetStatus(v executionlog.Status) *ExecutionLogCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExecutionLogCreate) SetNillableStatus(v *executionlog.Status) *ExecutionLogCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetActionsExecuted sets the "actions_executed" field.
func (_c *ExecutionLogCreate) SetActionsExecuted(v int) *ExecutionLogCreate {
	_c.mutation.SetActionsExecuted(v)
	return _c
}

// SetNillableActionsExecuted sets the "actions_executed" field if the given value is not nil.
func (_c *ExecutionLogCreate) SetNillableActionsExecuted(v *int) *ExecutionLogCreate {
	if v != nil {
		_c.SetActionsExecuted(*v)
	}
	return _c
}

// SetActionsFailed sets the "actions_failed" field.
func (_c *ExecutionLogCreate) SetActionsFailed(v int) *ExecutionLogCreate {
	_c.mutation.SetActionsFailed(v)
	return _c
}

// SetNillableActionsFailed sets the "actions_failed" field if the given value is not nil.
func (_c *ExecutionLogCreate) SetNillableActionsFailed(v *int) *ExecutionLogCreate {
	if v != nil {
		_c.SetActionsFailed(*v)
	}
	return _c
}

// SetActionResults sets the "action_results" field.
func (_c *ExecutionLogCreate) SetActionResults(v []map[string]interface{}) *ExecutionLogCreate {
	_c.mutation.SetActionResults(v)
	return _c
}

// SetErrorSummary sets the "error_summary" field.
func (_c *ExecutionLogCreate) SetErrorSummary(v string) *ExecutionLogCreate {
	_c.mutation.SetErrorSummary(v)
	return _c
}

// SetNillableErrorSummary sets the "error_summary" field if the given value is not nil.
func (_c *ExecutionLogCreate) SetNillableErrorSummary(v *string) *ExecutionLogCreate {
	if v != nil {
		_c.SetErrorSummary(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ExecutionLogCreate) SetStartedAt(v time.Time) *ExecutionLogCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ExecutionLogCreate) SetNillableStartedAt(v *time.Time) *ExecutionLogCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ExecutionLogCreate) SetCompletedAt(v time.Time) *ExecutionLogCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ExecutionLogCreate) SetNillableCompletedAt(v *time.Time) *ExecutionLogCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *ExecutionLogCreate) SetDurationMs(v int) *ExecutionLogCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *ExecutionLogCreate) SetNillableDurationMs(v *int) *ExecutionLogCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExecutionLogCreate) SetID(v string) *ExecutionLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAutomation sets the "automation" edge to the Automation entity.
func (_c *ExecutionLogCreate) SetAutomation(v *Automation) *ExecutionLogCreate {
	return _c.SetAutomationID(v.ID)
}

// Mutation returns the ExecutionLogMutation object of the builder.
func (_c *ExecutionLogCreate) Mutation() *ExecutionLogMutation {
	return _c.mutation
}

// Save creates the ExecutionLog in the database.
func (_c *ExecutionLogCreate) Save(ctx context.Context) (*ExecutionLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExecutionLogCreate) SaveX(ctx context.Context) *ExecutionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExecutionLogCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := executionlog.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ActionsExecuted(); !ok {
		v := executionlog.DefaultActionsExecuted
		_c.mutation.SetActionsExecuted(v)
	}
	if _, ok := _c.mutation.ActionsFailed(); !ok {
		v := executionlog.DefaultActionsFailed
		_c.mutation.SetActionsFailed(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := executionlog.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExecutionLogCreate) check() error {
	if _, ok := _c.mutation.AutomationID(); !ok {
		return &ValidationError{Name: "automation_id", err: errors.New(`ent: missing required field "ExecutionLog.automation_id"`)}
	}
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "ExecutionLog.owner_id"`)}
	}
	if _, ok := _c.mutation.TriggerType(); !ok {
		return &ValidationError{Name: "trigger_type", err: errors.New(`ent: missing required field "ExecutionLog.trigger_type"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ExecutionLog.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := executionlog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExecutionLog.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ActionsExecuted(); !ok {
		return &ValidationError{Name: "actions_executed", err: errors.New(`ent: missing required field "ExecutionLog.actions_executed"`)}
	}
	if _, ok := _c.mutation.ActionsFailed(); !ok {
		return &ValidationError{Name: "actions_failed", err: errors.New(`ent: missing required field "ExecutionLog.actions_failed"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ExecutionLog.started_at"`)}
	}
	if len(_c.mutation.AutomationIDs()) == 0 {
		return &ValidationError{Name: "automation", err: errors.New(`ent: missing required edge "ExecutionLog.automation"`)}
	}
	return nil
}

func (_c *ExecutionLogCreate) sqlSave(ctx context.Context) (*ExecutionLog, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ExecutionLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExecutionLogCreate) createSpec() (*ExecutionLog, *sqlgraph.CreateSpec) {
	var (
		_node = &ExecutionLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(executionlog.Table, sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(executionlog.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.TriggerType(); ok {
		_spec.SetField(executionlog.FieldTriggerType, field.TypeString, value)
		_node.TriggerType = value
	}
	if value, ok := _c.mutation.TriggerData(); ok {
		_spec.SetField(executionlog.FieldTriggerData, field.TypeJSON, value)
		_node.TriggerData = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(executionlog.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ActionsExecuted(); ok {
		_spec.SetField(executionlog.FieldActionsExecuted, field.TypeInt, value)
		_node.ActionsExecuted = value
	}
	if value, ok := _c.mutation.ActionsFailed(); ok {
		_spec.SetField(executionlog.FieldActionsFailed, field.TypeInt, value)
		_node.ActionsFailed = value
	}
	if value, ok := _c.mutation.ActionResults(); ok {
		_spec.SetField(executionlog.FieldActionResults, field.TypeJSON, value)
		_node.ActionResults = value
	}
	if value, ok := _c.mutation.ErrorSummary(); ok {
		_spec.SetField(executionlog.FieldErrorSummary, field.TypeString, value)
		_node.ErrorSummary = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(executionlog.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(executionlog.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(executionlog.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = value
	}
	if nodes := _c.mutation.AutomationIDs(); len(nodes) > 0 {
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
		_node.AutomationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExecutionLogCreateBulk is the builder for creating many ExecutionLog entities in bulk.
type ExecutionLogCreateBulk struct {
	config
	err      error
	builders []*ExecutionLogCreate
}

// Save creates the ExecutionLog entities in the database.
func (_c *ExecutionLogCreateBulk) Save(ctx context.Context) ([]*ExecutionLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExecutionLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExecutionLogMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExecutionLogCreateBulk) SaveX(ctx context.Context) []*ExecutionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
