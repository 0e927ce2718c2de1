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

// AutomationCreate is the builder for creating a Automation entity.
type AutomationCreate struct {
	config
	mutation *AutomationMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *AutomationCreate) SetOwnerID(v string) *AutomationCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *AutomationCreate) SetName(v string) *AutomationCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetTriggerType sets the "trigger_type" field.
func (_c *AutomationCreate) SetTriggerType(v automation.TriggerType) *AutomationCreate {
	_c.mutation.SetTriggerType(v)
	return _c
}

// SetTriggerConfig sets the "trigger_config" field.
func (_c *AutomationCreate) SetTriggerConfig(v map[string]interface{}) *AutomationCreate {
	_c.mutation.SetTriggerConfig(v)
	return _c
}

// SetActions sets the "actions" field.
func (_c *AutomationCreate) SetActions(v []map[string]interface{}) *AutomationCreate {
	_c.mutation.SetActions(v)
	return _c
}

// SetVariables sets the "variables" field.
func (_c *AutomationCreate) SetVariables(v map[string]interface{}) *AutomationCreate {
	_c.mutation.SetVariables(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AutomationCreate) SetStatus(v automation.Status) *AutomationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AutomationCreate) SetNillableStatus(v *automation.Status) *AutomationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *AutomationCreate) SetActive(v bool) *AutomationCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *AutomationCreate) SetNillableActive(v *bool) *AutomationCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetNextPollAt sets the "next_poll_at" field.
func (_c *AutomationCreate) SetNextPollAt(v time.Time) *AutomationCreate {
	_c.mutation.SetNextPollAt(v)
	return _c
}

// SetNillableNextPollAt sets the "next_poll_at" field if the given value is not nil.
func (_c *AutomationCreate) SetNillableNextPollAt(v *time.Time) *AutomationCreate {
	if v != nil {
		_c.SetNextPollAt(*v)
	}
	return _c
}

// SetLastPollCursor sets the "last_poll_cursor" field.
func (_c *AutomationCreate) SetLastPollCursor(v string) *AutomationCreate {
	_c.mutation.SetLastPollCursor(v)
	return _c
}

// SetNillableLastPollCursor sets the "last_poll_cursor" field if the given value is not nil.
func (_c *AutomationCreate) SetNillableLastPollCursor(v *string) *AutomationCreate {
	if v != nil {
		_c.SetLastPollCursor(*v)
	}
	return _c
}

// SetPollingIntervalMinutes sets the "polling_interval_minutes" field.
func (_c *AutomationCreate) SetPollingIntervalMinutes(v int) *AutomationCreate {
	_c.mutation.SetPollingIntervalMinutes(v)
	return _c
}

// SetNillablePollingIntervalMinutes sets the "polling_interval_minutes" field if the given value is not nil.
func (_c *AutomationCreate) SetNillablePollingIntervalMinutes(v *int) *AutomationCreate {
	if v != nil {
		_c.SetPollingIntervalMinutes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AutomationCreate) SetCreatedAt(v time.Time) *AutomationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AutomationCreate) SetNillableCreatedAt(v *time.Time) *AutomationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AutomationCreate) SetUpdatedAt(v time.Time) *AutomationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AutomationCreate) SetNillableUpdatedAt(v *time.Time) *AutomationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AutomationCreate) SetID(v string) *AutomationCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddExecutionLogIDs adds the "execution_logs" edge to the ExecutionLog entity by IDs.
func (_c *AutomationCreate) AddExecutionLogIDs(ids ...string) *AutomationCreate {
	_c.mutation.AddExecutionLogIDs(ids...)
	return _c
}

// AddExecutionLogs adds the "execution_logs" edges to the ExecutionLog entity.
func (_c *AutomationCreate) AddExecutionLogs(v ...*ExecutionLog) *AutomationCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddExecutionLogIDs(ids...)
}

// Mutation returns the AutomationMutation object of the builder.
func (_c *AutomationCreate) Mutation() *AutomationMutation {
	return _c.mutation
}

// Save creates the Automation in the database.
func (_c *AutomationCreate) Save(ctx context.Context) (*Automation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AutomationCreate) SaveX(ctx context.Context) *Automation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AutomationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AutomationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AutomationCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := automation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := automation.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := automation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := automation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AutomationCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Automation.owner_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Automation.name"`)}
	}
	if _, ok := _c.mutation.TriggerType(); !ok {
		return &ValidationError{Name: "trigger_type", err: errors.New(`ent: missing required field "Automation.trigger_type"`)}
	}
	if v, ok := _c.mutation.TriggerType(); ok {
		if err := automation.TriggerTypeValidator(v); err != nil {
			return &ValidationError{Name: "trigger_type", err: fmt.Errorf(`ent: validator failed for field "Automation.trigger_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Actions(); !ok {
		return &ValidationError{Name: "actions", err: errors.New(`ent: missing required field "Automation.actions"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Automation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := automation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Automation.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "Automation.active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Automation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Automation.updated_at"`)}
	}
	return nil
}

func (_c *AutomationCreate) sqlSave(ctx context.Context) (*Automation, error) {
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
			return nil, fmt.Errorf("unexpected Automation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AutomationCreate) createSpec() (*Automation, *sqlgraph.CreateSpec) {
	var (
		_node = &Automation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(automation.Table, sqlgraph.NewFieldSpec(automation.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(automation.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(automation.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.TriggerType(); ok {
		_spec.SetField(automation.FieldTriggerType, field.TypeEnum, value)
		_node.TriggerType = value
	}
	if value, ok := _c.mutation.TriggerConfig(); ok {
		_spec.SetField(automation.FieldTriggerConfig, field.TypeJSON, value)
		_node.TriggerConfig = value
	}
	if value, ok := _c.mutation.Actions(); ok {
		_spec.SetField(automation.FieldActions, field.TypeJSON, value)
		_node.Actions = value
	}
	if value, ok := _c.mutation.Variables(); ok {
		_spec.SetField(automation.FieldVariables, field.TypeJSON, value)
		_node.Variables = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(automation.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(automation.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.NextPollAt(); ok {
		_spec.SetField(automation.FieldNextPollAt, field.TypeTime, value)
		_node.NextPollAt = &value
	}
	if value, ok := _c.mutation.LastPollCursor(); ok {
		_spec.SetField(automation.FieldLastPollCursor, field.TypeString, value)
		_node.LastPollCursor = &value
	}
	if value, ok := _c.mutation.PollingIntervalMinutes(); ok {
		_spec.SetField(automation.FieldPollingIntervalMinutes, field.TypeInt, value)
		_node.PollingIntervalMinutes = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(automation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(automation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ExecutionLogsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AutomationCreateBulk is the builder for creating many Automation entities in bulk.
type AutomationCreateBulk struct {
	config
	err      error
	builders []*AutomationCreate
}

// Save creates the Automation entities in the database.
func (_c *AutomationCreateBulk) Save(ctx context.Context) ([]*Automation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Automation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AutomationMutation)
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
func (_c *AutomationCreateBulk) SaveX(ctx context.Context) []*Automation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AutomationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AutomationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
