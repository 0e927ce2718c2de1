// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/triggerflow/triggerflow/ent/integration"
	"github.com/triggerflow/triggerflow/ent/predicate"
)

// IntegrationUpdate is the builder for updating Integration entities.
type IntegrationUpdate struct {
	config
	hooks    []Hook
	mutation *IntegrationMutation
}

// Where appends a list predicates to the IntegrationUpdate builder.
func (_u *IntegrationUpdate) Where(ps ...predicate.Integration) *IntegrationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *IntegrationUpdate) SetOwnerID(v string) *IntegrationUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *IntegrationUpdate) SetNillableOwnerID(v *string) *IntegrationUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetService sets the "service" field.
func (_u *IntegrationUpdate) SetService(v string) *IntegrationUpdate {
	_u.mutation.SetService(v)
	return _u
}

// SetNillableService sets the "service" field if the given value is not nil.
func (_u *IntegrationUpdate) SetNillableService(v *string) *IntegrationUpdate {
	if v != nil {
		_u.SetService(*v)
	}
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *IntegrationUpdate) SetWorkspaceID(v string) *IntegrationUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *IntegrationUpdate) SetNillableWorkspaceID(v *string) *IntegrationUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// ClearWorkspaceID clears the value of the "workspace_id" field.
func (_u *IntegrationUpdate) ClearWorkspaceID() *IntegrationUpdate {
	_u.mutation.ClearWorkspaceID()
	return _u
}

// SetAccessToken sets the "access_token" field.
func (_u *IntegrationUpdate) SetAccessToken(v string) *IntegrationUpdate {
	_u.mutation.SetAccessToken(v)
	return _u
}

// SetNillableAccessToken sets the "access_token" field if the given value is not nil.
func (_u *IntegrationUpdate) SetNillableAccessToken(v *string) *IntegrationUpdate {
	if v != nil {
		_u.SetAccessToken(*v)
	}
	return _u
}

// SetRefreshToken sets the "refresh_token" field.
func (_u *IntegrationUpdate) SetRefreshToken(v string) *IntegrationUpdate {
	_u.mutation.SetRefreshToken(v)
	return _u
}

// SetNillableRefreshToken sets the "refresh_token" field if the given value is not nil.
func (_u *IntegrationUpdate) SetNillableRefreshToken(v *string) *IntegrationUpdate {
	if v != nil {
		_u.SetRefreshToken(*v)
	}
	return _u
}

// ClearRefreshToken clears the value of the "refresh_token" field.
func (_u *IntegrationUpdate) ClearRefreshToken() *IntegrationUpdate {
	_u.mutation.ClearRefreshToken()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *IntegrationUpdate) SetExpiresAt(v time.Time) *IntegrationUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *IntegrationUpdate) SetNillableExpiresAt(v *time.Time) *IntegrationUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *IntegrationUpdate) ClearExpiresAt() *IntegrationUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetLastGmailHistoryID sets the "last_gmail_history_id" field.
func (_u *IntegrationUpdate) SetLastGmailHistoryID(v string) *IntegrationUpdate {
	_u.mutation.SetLastGmailHistoryID(v)
	return _u
}

// SetNillableLastGmailHistoryID sets the "last_gmail_history_id" field if the given value is not nil.
func (_u *IntegrationUpdate) SetNillableLastGmailHistoryID(v *string) *IntegrationUpdate {
	if v != nil {
		_u.SetLastGmailHistoryID(*v)
	}
	return _u
}

// ClearLastGmailHistoryID clears the value of the "last_gmail_history_id" field.
func (_u *IntegrationUpdate) ClearLastGmailHistoryID() *IntegrationUpdate {
	_u.mutation.ClearLastGmailHistoryID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *IntegrationUpdate) SetCreatedAt(v time.Time) *IntegrationUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *IntegrationUpdate) SetNillableCreatedAt(v *time.Time) *IntegrationUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IntegrationUpdate) SetUpdatedAt(v time.Time) *IntegrationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the IntegrationMutation object of the builder.
func (_u *IntegrationUpdate) Mutation() *IntegrationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IntegrationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IntegrationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IntegrationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IntegrationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IntegrationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := integration.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *IntegrationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(integration.Table, integration.Columns, sqlgraph.NewFieldSpec(integration.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(integration.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Service(); ok {
		_spec.SetField(integration.FieldService, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(integration.FieldWorkspaceID, field.TypeString, value)
	}
	if _u.mutation.WorkspaceIDCleared() {
		_spec.ClearField(integration.FieldWorkspaceID, field.TypeString)
	}
	if value, ok := _u.mutation.AccessToken(); ok {
		_spec.SetField(integration.FieldAccessToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.RefreshToken(); ok {
		_spec.SetField(integration.FieldRefreshToken, field.TypeString, value)
	}
	if _u.mutation.RefreshTokenCleared() {
		_spec.ClearField(integration.FieldRefreshToken, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(integration.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(integration.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastGmailHistoryID(); ok {
		_spec.SetField(integration.FieldLastGmailHistoryID, field.TypeString, value)
	}
	if _u.mutation.LastGmailHistoryIDCleared() {
		_spec.ClearField(integration.FieldLastGmailHistoryID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(integration.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(integration.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{integration.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IntegrationUpdateOne is the builder for updating a single Integration entity.
type IntegrationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IntegrationMutation
}

// SetOwnerID sets the "owner_id" field.
func (_u *IntegrationUpdateOne) SetOwnerID(v string) *IntegrationUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *IntegrationUpdateOne) SetNillableOwnerID(v *string) *IntegrationUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetService sets the "service" field.
func (_u *IntegrationUpdateOne) SetService(v string) *IntegrationUpdateOne {
	_u.mutation.SetService(v)
	return _u
}

// SetNillableService sets the "service" field if the given value is not nil.
func (_u *IntegrationUpdateOne) SetNillableService(v *string) *IntegrationUpdateOne {
	if v != nil {
		_u.SetService(*v)
	}
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *IntegrationUpdateOne) SetWorkspaceID(v string) *IntegrationUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *IntegrationUpdateOne) SetNillableWorkspaceID(v *string) *IntegrationUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// ClearWorkspaceID clears the value of the "workspace_id" field.
func (_u *IntegrationUpdateOne) ClearWorkspaceID() *IntegrationUpdateOne {
	_u.mutation.ClearWorkspaceID()
	return _u
}

// SetAccessToken sets the "access_token" field.
func (_u *IntegrationUpdateOne) SetAccessToken(v string) *IntegrationUpdateOne {
	_u.mutation.SetAccessToken(v)
	return _u
}

// SetNillableAccessToken sets the "access_token" field if the given value is not nil.
func (_u *IntegrationUpdateOne) SetNillableAccessToken(v *string) *IntegrationUpdateOne {
	if v != nil {
		_u.SetAccessToken(*v)
	}
	return _u
}

// SetRefreshToken sets the "refresh_token" field.
func (_u *IntegrationUpdateOne) SetRefreshToken(v string) *IntegrationUpdateOne {
	_u.mutation.SetRefreshToken(v)
	return _u
}

// SetNillableRefreshToken sets the "refresh_token" field if the given value is not nil.
func (_u *IntegrationUpdateOne) SetNillableRefreshToken(v *string) *IntegrationUpdateOne {
	if v != nil {
		_u.SetRefreshToken(*v)
	}
	return _u
}

// ClearRefreshToken clears the value of the "refresh_token" field.
func (_u *IntegrationUpdateOne) ClearRefreshToken() *IntegrationUpdateOne {
	_u.mutation.ClearRefreshToken()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *IntegrationUpdateOne) SetExpiresAt(v time.Time) *IntegrationUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *IntegrationUpdateOne) SetNillableExpiresAt(v *time.Time) *IntegrationUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *IntegrationUpdateOne) ClearExpiresAt() *IntegrationUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetLastGmailHistoryID sets the "last_gmail_history_id" field.
func (_u *IntegrationUpdateOne) SetLastGmailHistoryID(v string) *IntegrationUpdateOne {
	_u.mutation.SetLastGmailHistoryID(v)
	return _u
}

// SetNillableLastGmailHistoryID sets the "last_gmail_history_id" field if the given value is not nil.
func (_u *IntegrationUpdateOne) SetNillableLastGmailHistoryID(v *string) *IntegrationUpdateOne {
	if v != nil {
		_u.SetLastGmailHistoryID(*v)
	}
	return _u
}

// ClearLastGmailHistoryID clears the value of the "last_gmail_history_id" field.
func (_u *IntegrationUpdateOne) ClearLastGmailHistoryID() *IntegrationUpdateOne {
	_u.mutation.ClearLastGmailHistoryID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *IntegrationUpdateOne) SetCreatedAt(v time.Time) *IntegrationUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *IntegrationUpdateOne) SetNillableCreatedAt(v *time.Time) *IntegrationUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IntegrationUpdateOne) SetUpdatedAt(v time.Time) *IntegrationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the IntegrationMutation object of the builder.
func (_u *IntegrationUpdateOne) Mutation() *IntegrationMutation {
	return _u.mutation
}

// Where appends a list predicates to the IntegrationUpdate builder.
func (_u *IntegrationUpdateOne) Where(ps ...predicate.Integration) *IntegrationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IntegrationUpdateOne) Select(field string, fields ...string) *IntegrationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Integration entity.
func (_u *IntegrationUpdateOne) Save(ctx context.Context) (*Integration, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IntegrationUpdateOne) SaveX(ctx context.Context) *Integration {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IntegrationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IntegrationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IntegrationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := integration.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *IntegrationUpdateOne) sqlSave(ctx context.Context) (_node *Integration, err error) {
	_spec := sqlgraph.NewUpdateSpec(integration.Table, integration.Columns, sqlgraph.NewFieldSpec(integration.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Integration.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, integration.FieldID)
		for _, f := range fields {
			if !integration.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != integration.FieldID {
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
		_spec.SetField(integration.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Service(); ok {
		_spec.SetField(integration.FieldService, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(integration.FieldWorkspaceID, field.TypeString, value)
	}
	if _u.mutation.WorkspaceIDCleared() {
		_spec.ClearField(integration.FieldWorkspaceID, field.TypeString)
	}
	if value, ok := _u.mutation.AccessToken(); ok {
		_spec.SetField(integration.FieldAccessToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.RefreshToken(); ok {
		_spec.SetField(integration.FieldRefreshToken, field.TypeString, value)
	}
	if _u.mutation.RefreshTokenCleared() {
		_spec.ClearField(integration.FieldRefreshToken, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(integration.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(integration.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastGmailHistoryID(); ok {
		_spec.SetField(integration.FieldLastGmailHistoryID, field.TypeString, value)
	}
	if _u.mutation.LastGmailHistoryIDCleared() {
		_spec.ClearField(integration.FieldLastGmailHistoryID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(integration.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(integration.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Integration{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{integration.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
