// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/triggerflow/triggerflow/ent/integration"
)

// IntegrationCreate is the builder for creating a Integration entity.
type IntegrationCreate struct {
	config
	mutation *IntegrationMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *IntegrationCreate) SetOwnerID(v string) *IntegrationCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetService sets the "service" field.
func (_c *IntegrationCreate) SetService(v string) *IntegrationCreate {
	_c.mutation.SetService(v)
	return _c
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *IntegrationCreate) SetWorkspaceID(v string) *IntegrationCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_c *IntegrationCreate) SetNillableWorkspaceID(v *string) *IntegrationCreate {
	if v != nil {
		_c.SetWorkspaceID(*v)
	}
	return _c
}

// SetAccessToken sets the "access_token" field.
func (_c *IntegrationCreate) SetAccessToken(v string) *IntegrationCreate {
	_c.mutation.SetAccessToken(v)
	return _c
}

// SetRefreshToken sets the "refresh_token" field.
func (_c *IntegrationCreate) SetRefreshToken(v string) *IntegrationCreate {
	_c.mutation.SetRefreshToken(v)
	return _c
}

// SetNillableRefreshToken sets the "refresh_token" field if the given value is not nil.
func (_c *IntegrationCreate) SetNillableRefreshToken(v *string) *IntegrationCreate {
	if v != nil {
		_c.SetRefreshToken(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *IntegrationCreate) SetExpiresAt(v time.Time) *IntegrationCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *IntegrationCreate) SetNillableExpiresAt(v *time.Time) *IntegrationCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetLastGmailHistoryID sets the "last_gmail_history_id" field.
func (_c *IntegrationCreate) SetLastGmailHistoryID(v string) *IntegrationCreate {
	_c.mutation.SetLastGmailHistoryID(v)
	return _c
}

// SetNillableLastGmailHistoryID sets the "last_gmail_history_id" field if the given value is not nil.
func (_c *IntegrationCreate) SetNillableLastGmailHistoryID(v *string) *IntegrationCreate {
	if v != nil {
		_c.SetLastGmailHistoryID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *IntegrationCreate) SetCreatedAt(v time.Time) *IntegrationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IntegrationCreate) SetNillableCreatedAt(v *time.Time) *IntegrationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *IntegrationCreate) SetUpdatedAt(v time.Time) *IntegrationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *IntegrationCreate) SetNillableUpdatedAt(v *time.Time) *IntegrationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the IntegrationMutation object of the builder.
func (_c *IntegrationCreate) Mutation() *IntegrationMutation {
	return _c.mutation
}

// Save creates the Integration in the database.
func (_c *IntegrationCreate) Save(ctx context.Context) (*Integration, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IntegrationCreate) SaveX(ctx context.Context) *Integration {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntegrationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntegrationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IntegrationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := integration.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := integration.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IntegrationCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Integration.owner_id"`)}
	}
	if _, ok := _c.mutation.Service(); !ok {
		return &ValidationError{Name: "service", err: errors.New(`ent: missing required field "Integration.service"`)}
	}
	if _, ok := _c.mutation.AccessToken(); !ok {
		return &ValidationError{Name: "access_token", err: errors.New(`ent: missing required field "Integration.access_token"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Integration.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Integration.updated_at"`)}
	}
	return nil
}

func (_c *IntegrationCreate) sqlSave(ctx context.Context) (*Integration, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IntegrationCreate) createSpec() (*Integration, *sqlgraph.CreateSpec) {
	var (
		_node = &Integration{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(integration.Table, sqlgraph.NewFieldSpec(integration.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(integration.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Service(); ok {
		_spec.SetField(integration.FieldService, field.TypeString, value)
		_node.Service = value
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(integration.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.AccessToken(); ok {
		_spec.SetField(integration.FieldAccessToken, field.TypeString, value)
		_node.AccessToken = value
	}
	if value, ok := _c.mutation.RefreshToken(); ok {
		_spec.SetField(integration.FieldRefreshToken, field.TypeString, value)
		_node.RefreshToken = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(integration.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	if value, ok := _c.mutation.LastGmailHistoryID(); ok {
		_spec.SetField(integration.FieldLastGmailHistoryID, field.TypeString, value)
		_node.LastGmailHistoryID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(integration.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(integration.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// IntegrationCreateBulk is the builder for creating many Integration entities in bulk.
type IntegrationCreateBulk struct {
	config
	err      error
	builders []*IntegrationCreate
}

// Save creates the Integration entities in the database.
func (_c *IntegrationCreateBulk) Save(ctx context.Context) ([]*Integration, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Integration, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IntegrationMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *IntegrationCreateBulk) SaveX(ctx context.Context) []*Integration {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntegrationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntegrationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
