// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/triggerflow/triggerflow/ent/automation"
	"github.com/triggerflow/triggerflow/ent/event"
	"github.com/triggerflow/triggerflow/ent/executionlog"
	"github.com/triggerflow/triggerflow/ent/integration"
	"github.com/triggerflow/triggerflow/ent/predicate"
	"github.com/triggerflow/triggerflow/ent/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAutomation   = "Automation"
	TypeEvent        = "Event"
	TypeExecutionLog = "ExecutionLog"
	TypeIntegration  = "Integration"
	TypeUser         = "User"
)

// AutomationMutation represents an operation that mutates the Automation nodes in the graph.
type AutomationMutation struct {
	config
	op                          Op
	typ                         string
	id                          *string
	owner_id                    *string
	name                        *string
	trigger_type                *automation.TriggerType
	trigger_config              *map[string]interface{}
	actions                     *[]map[string]interface{}
	appendactions               []map[string]interface{}
	variables                   *map[string]interface{}
	status                      *automation.Status
	active                      *bool
	next_poll_at                *time.Time
	last_poll_cursor            *string
	polling_interval_minutes    *int
	addpolling_interval_minutes *int
	created_at                  *time.Time
	updated_at                  *time.Time
	clearedFields               map[string]struct{}
	execution_logs              map[string]struct{}
	removedexecution_logs       map[string]struct{}
	clearedexecution_logs       bool
	done                        bool
	oldValue                    func(context.Context) (*Automation, error)
	predicates                  []predicate.Automation
}

var _ ent.Mutation = (*AutomationMutation)(nil)

// automationOption allows management of the mutation configuration using functional options.
type automationOption func(*AutomationMutation)

// newAutomationMutation creates new mutation for the Automation entity.
func newAutomationMutation(c config, op Op, opts ...automationOption) *AutomationMutation {
	m := &AutomationMutation{
		config:        c,
		op:            op,
		typ:           TypeAutomation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAutomationID sets the ID field of the mutation.
func withAutomationID(id string) automationOption {
	return func(m *AutomationMutation) {
		var (
			err   error
			once  sync.Once
			value *Automation
		)
		m.oldValue = func(ctx context.Context) (*Automation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Automation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAutomation sets the old Automation of the mutation.
func withAutomation(node *Automation) automationOption {
	return func(m *AutomationMutation) {
		m.oldValue = func(context.Context) (*Automation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AutomationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AutomationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Automation entities.
func (m *AutomationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AutomationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AutomationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Automation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *AutomationMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *AutomationMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Automation entity.
// If the Automation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AutomationMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *AutomationMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetName sets the "name" field.
func (m *AutomationMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AutomationMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Automation entity.
// If the Automation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AutomationMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AutomationMutation) ResetName() {
	m.name = nil
}

// SetTriggerType sets the "trigger_type" field.
func (m *AutomationMutation) SetTriggerType(at automation.TriggerType) {
	m.trigger_type = &at
}

// TriggerType returns the value of the "trigger_type" field in the mutation.
func (m *AutomationMutation) TriggerType() (r automation.TriggerType, exists bool) {
	v := m.trigger_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerType returns the old "trigger_type" field's value of the Automation entity.
// If the Automation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AutomationMutation) OldTriggerType(ctx context.Context) (v automation.TriggerType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerType: %w", err)
	}
	return oldValue.TriggerType, nil
}

// ResetTriggerType resets all changes to the "trigger_type" field.
func (m *AutomationMutation) ResetTriggerType() {
	m.trigger_type = nil
}

// SetTriggerConfig sets the "trigger_config" field.
func (m *AutomationMutation) SetTriggerConfig(value map[string]interface{}) {
	m.trigger_config = &value
}

// TriggerConfig returns the value of the "trigger_config" field in the mutation.
func (m *AutomationMutation) TriggerConfig() (r map[string]interface{}, exists bool) {
	v := m.trigger_config
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerConfig returns the old "trigger_config" field's value of the Automation entity.
// If the Automation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AutomationMutation) OldTriggerConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerConfig: %w", err)
	}
	return oldValue.TriggerConfig, nil
}

// ClearTriggerConfig clears the value of the "trigger_config" field.
func (m *AutomationMutation) ClearTriggerConfig() {
	m.trigger_config = nil
	m.clearedFields[automation.FieldTriggerConfig] = struct{}{}
}

// TriggerConfigCleared returns if the "trigger_config" field was cleared in this mutation.
func (m *AutomationMutation) TriggerConfigCleared() bool {
	_, ok := m.clearedFields[automation.FieldTriggerConfig]
	return ok
}

// ResetTriggerConfig resets all changes to the "trigger_config" field.
func (m *AutomationMutation) ResetTriggerConfig() {
	m.trigger_config = nil
	delete(m.clearedFields, automation.FieldTriggerConfig)
}

// SetActions sets the "actions" field.
func (m *AutomationMutation) SetActions(value []map[string]interface{}) {
	m.actions = &value
	m.appendactions = nil
}

// Actions returns the value of the "actions" field in the mutation.
func (m *AutomationMutation) Actions() (r []map[string]interface{}, exists bool) {
	v := m.actions
	if v == nil {
		return
	}
	return *v, true
}

// OldActions returns the old "actions" field's value of the Automation entity.
// If the Automation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AutomationMutation) OldActions(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActions: %w", err)
	}
	return oldValue.Actions, nil
}

// AppendActions adds value to the "actions" field.
func (m *AutomationMutation) AppendActions(value []map[string]interface{}) {
	m.appendactions = append(m.appendactions, value...)
}

// AppendedActions returns the list of values that were appended to the "actions" field in this mutation.
func (m *AutomationMutation) AppendedActions() ([]map[string]interface{}, bool) {
	if len(m.appendactions) == 0 {
		return nil, false
	}
	return m.appendactions, true
}

// ResetActions resets all changes to the "actions" field.
func (m *AutomationMutation) ResetActions() {
	m.actions = nil
	m.appendactions = nil
}

// SetVariables sets the "variables" field.
func (m *AutomationMutation) SetVariables(value map[string]interface{}) {
	m.variables = &value
}

// Variables returns the value of the "variables" field in the mutation.
func (m *AutomationMutation) Variables() (r map[string]interface{}, exists bool) {
	v := m.variables
	if v == nil {
		return
	}
	return *v, true
}

// OldVariables returns the old "variables" field's value of the Automation entity.
// If the Automation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AutomationMutation) OldVariables(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVariables is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVariables requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVariables: %w", err)
	}
	return oldValue.Variables, nil
}

// ClearVariables clears the value of the "variables" field.
func (m *AutomationMutation) ClearVariables() {
	m.variables = nil
	m.clearedFields[automation.FieldVariables] = struct{}{}
}

// VariablesCleared returns if the "variables" field was cleared in this mutation.
func (m *AutomationMutation) VariablesCleared() bool {
	_, ok := m.clearedFields[automation.FieldVariables]
	return ok
}

// ResetVariables resets all changes to the "variables" field.
func (m *AutomationMutation) ResetVariables() {
	m.variables = nil
	delete(m.clearedFields, automation.FieldVariables)
}

// SetStatus sets the "status" field.
func (m *AutomationMutation) SetStatus(a automation.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AutomationMutation) Status() (r automation.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Automation entity.
// If the Automation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AutomationMutation) OldStatus(ctx context.Context) (v automation.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AutomationMutation) ResetStatus() {
	m.status = nil
}

// SetActive sets the "active" field.
func (m *AutomationMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *AutomationMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Automation entity.
// If the Automation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AutomationMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *AutomationMutation) ResetActive() {
	m.active = nil
}

// SetNextPollAt sets the "next_poll_at" field.
func (m *AutomationMutation) SetNextPollAt(t time.Time) {
	m.next_poll_at = &t
}

// NextPollAt returns the value of the "next_poll_at" field in the mutation.
func (m *AutomationMutation) NextPollAt() (r time.Time, exists bool) {
	v := m.next_poll_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextPollAt returns the old "next_poll_at" field's value of the Automation entity.
// If the Automation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AutomationMutation) OldNextPollAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextPollAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextPollAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextPollAt: %w", err)
	}
	return oldValue.NextPollAt, nil
}

// ClearNextPollAt clears the value of the "next_poll_at" field.
func (m *AutomationMutation) ClearNextPollAt() {
	m.next_poll_at = nil
	m.clearedFields[automation.FieldNextPollAt] = struct{}{}
}

// NextPollAtCleared returns if the "next_poll_at" field was cleared in this mutation.
func (m *AutomationMutation) NextPollAtCleared() bool {
	_, ok := m.clearedFields[automation.FieldNextPollAt]
	return ok
}

// ResetNextPollAt resets all changes to the "next_poll_at" field.
func (m *AutomationMutation) ResetNextPollAt() {
	m.next_poll_at = nil
	delete(m.clearedFields, automation.FieldNextPollAt)
}

// SetLastPollCursor sets the "last_poll_cursor" field.
func (m *AutomationMutation) SetLastPollCursor(s string) {
	m.last_poll_cursor = &s
}

// LastPollCursor returns the value of the "last_poll_cursor" field in the mutation.
func (m *AutomationMutation) LastPollCursor() (r string, exists bool) {
	v := m.last_poll_cursor
	if v == nil {
		return
	}
	return *v, true
}

// OldLastPollCursor returns the old "last_poll_cursor" field's value of the Automation entity.
// If the Automation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AutomationMutation) OldLastPollCursor(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastPollCursor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastPollCursor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastPollCursor: %w", err)
	}
	return oldValue.LastPollCursor, nil
}

// ClearLastPollCursor clears the value of the "last_poll_cursor" field.
func (m *AutomationMutation) ClearLastPollCursor() {
	m.last_poll_cursor = nil
	m.clearedFields[automation.FieldLastPollCursor] = struct{}{}
}

// LastPollCursorCleared returns if the "last_poll_cursor" field was cleared in this mutation.
func (m *AutomationMutation) LastPollCursorCleared() bool {
	_, ok := m.clearedFields[automation.FieldLastPollCursor]
	return ok
}

// ResetLastPollCursor resets all changes to the "last_poll_cursor" field.
func (m *AutomationMutation) ResetLastPollCursor() {
	m.last_poll_cursor = nil
	delete(m.clearedFields, automation.FieldLastPollCursor)
}

// SetPollingIntervalMinutes sets the "polling_interval_minutes" field.
func (m *AutomationMutation) SetPollingIntervalMinutes(i int) {
	m.polling_interval_minutes = &i
	m.addpolling_interval_minutes = nil
}

// PollingIntervalMinutes returns the value of the "polling_interval_minutes" field in the mutation.
func (m *AutomationMutation) PollingIntervalMinutes() (r int, exists bool) {
	v := m.polling_interval_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldPollingIntervalMinutes returns the old "polling_interval_minutes" field's value of the Automation entity.
// If the Automation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AutomationMutation) OldPollingIntervalMinutes(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPollingIntervalMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPollingIntervalMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPollingIntervalMinutes: %w", err)
	}
	return oldValue.PollingIntervalMinutes, nil
}

// AddPollingIntervalMinutes adds i to the "polling_interval_minutes" field.
func (m *AutomationMutation) AddPollingIntervalMinutes(i int) {
	if m.addpolling_interval_minutes != nil {
		*m.addpolling_interval_minutes += i
	} else {
		m.addpolling_interval_minutes = &i
	}
}

// AddedPollingIntervalMinutes returns the value that was added to the "polling_interval_minutes" field in this mutation.
func (m *AutomationMutation) AddedPollingIntervalMinutes() (r int, exists bool) {
	v := m.addpolling_interval_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ClearPollingIntervalMinutes clears the value of the "polling_interval_minutes" field.
func (m *AutomationMutation) ClearPollingIntervalMinutes() {
	m.polling_interval_minutes = nil
	m.addpolling_interval_minutes = nil
	m.clearedFields[automation.FieldPollingIntervalMinutes] = struct{}{}
}

// PollingIntervalMinutesCleared returns if the "polling_interval_minutes" field was cleared in this mutation.
func (m *AutomationMutation) PollingIntervalMinutesCleared() bool {
	_, ok := m.clearedFields[automation.FieldPollingIntervalMinutes]
	return ok
}

// ResetPollingIntervalMinutes resets all changes to the "polling_interval_minutes" field.
func (m *AutomationMutation) ResetPollingIntervalMinutes() {
	m.polling_interval_minutes = nil
	m.addpolling_interval_minutes = nil
	delete(m.clearedFields, automation.FieldPollingIntervalMinutes)
}

// SetCreatedAt sets the "created_at" field.
func (m *AutomationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AutomationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Automation entity.
// If the Automation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AutomationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AutomationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AutomationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AutomationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Automation entity.
// If the Automation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AutomationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AutomationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddExecutionLogIDs adds the "execution_logs" edge to the ExecutionLog entity by ids.
func (m *AutomationMutation) AddExecutionLogIDs(ids ...string) {
	if m.execution_logs == nil {
		m.execution_logs = make(map[string]struct{})
	}
	for i := range ids {
		m.execution_logs[ids[i]] = struct{}{}
	}
}

// ClearExecutionLogs clears the "execution_logs" edge to the ExecutionLog entity.
func (m *AutomationMutation) ClearExecutionLogs() {
	m.clearedexecution_logs = true
}

// ExecutionLogsCleared reports if the "execution_logs" edge to the ExecutionLog entity was cleared.
func (m *AutomationMutation) ExecutionLogsCleared() bool {
	return m.clearedexecution_logs
}

// RemoveExecutionLogIDs removes the "execution_logs" edge to the ExecutionLog entity by IDs.
func (m *AutomationMutation) RemoveExecutionLogIDs(ids ...string) {
	if m.removedexecution_logs == nil {
		m.removedexecution_logs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.execution_logs, ids[i])
		m.removedexecution_logs[ids[i]] = struct{}{}
	}
}

// RemovedExecutionLogs returns the removed IDs of the "execution_logs" edge to the ExecutionLog entity.
func (m *AutomationMutation) RemovedExecutionLogsIDs() (ids []string) {
	for id := range m.removedexecution_logs {
		ids = append(ids, id)
	}
	return
}

// ExecutionLogsIDs returns the "execution_logs" edge IDs in the mutation.
func (m *AutomationMutation) ExecutionLogsIDs() (ids []string) {
	for id := range m.execution_logs {
		ids = append(ids, id)
	}
	return
}

// ResetExecutionLogs resets all changes to the "execution_logs" edge.
func (m *AutomationMutation) ResetExecutionLogs() {
	m.execution_logs = nil
	m.clearedexecution_logs = false
	m.removedexecution_logs = nil
}

// Where appends a list predicates to the AutomationMutation builder.
func (m *AutomationMutation) Where(ps ...predicate.Automation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AutomationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AutomationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Automation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AutomationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AutomationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Automation).
func (m *AutomationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AutomationMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.owner_id != nil {
		fields = append(fields, automation.FieldOwnerID)
	}
	if m.name != nil {
		fields = append(fields, automation.FieldName)
	}
	if m.trigger_type != nil {
		fields = append(fields, automation.FieldTriggerType)
	}
	if m.trigger_config != nil {
		fields = append(fields, automation.FieldTriggerConfig)
	}
	if m.actions != nil {
		fields = append(fields, automation.FieldActions)
	}
	if m.variables != nil {
		fields = append(fields, automation.FieldVariables)
	}
	if m.status != nil {
		fields = append(fields, automation.FieldStatus)
	}
	if m.active != nil {
		fields = append(fields, automation.FieldActive)
	}
	if m.next_poll_at != nil {
		fields = append(fields, automation.FieldNextPollAt)
	}
	if m.last_poll_cursor != nil {
		fields = append(fields, automation.FieldLastPollCursor)
	}
	if m.polling_interval_minutes != nil {
		fields = append(fields, automation.FieldPollingIntervalMinutes)
	}
	if m.created_at != nil {
		fields = append(fields, automation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, automation.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AutomationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case automation.FieldOwnerID:
		return m.OwnerID()
	case automation.FieldName:
		return m.Name()
	case automation.FieldTriggerType:
		return m.TriggerType()
	case automation.FieldTriggerConfig:
		return m.TriggerConfig()
	case automation.FieldActions:
		return m.Actions()
	case automation.FieldVariables:
		return m.Variables()
	case automation.FieldStatus:
		return m.Status()
	case automation.FieldActive:
		return m.Active()
	case automation.FieldNextPollAt:
		return m.NextPollAt()
	case automation.FieldLastPollCursor:
		return m.LastPollCursor()
	case automation.FieldPollingIntervalMinutes:
		return m.PollingIntervalMinutes()
	case automation.FieldCreatedAt:
		return m.CreatedAt()
	case automation.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AutomationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case automation.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case automation.FieldName:
		return m.OldName(ctx)
	case automation.FieldTriggerType:
		return m.OldTriggerType(ctx)
	case automation.FieldTriggerConfig:
		return m.OldTriggerConfig(ctx)
	case automation.FieldActions:
		return m.OldActions(ctx)
	case automation.FieldVariables:
		return m.OldVariables(ctx)
	case automation.FieldStatus:
		return m.OldStatus(ctx)
	case automation.FieldActive:
		return m.OldActive(ctx)
	case automation.FieldNextPollAt:
		return m.OldNextPollAt(ctx)
	case automation.FieldLastPollCursor:
		return m.OldLastPollCursor(ctx)
	case automation.FieldPollingIntervalMinutes:
		return m.OldPollingIntervalMinutes(ctx)
	case automation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case automation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Automation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AutomationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case automation.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case automation.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case automation.FieldTriggerType:
		v, ok := value.(automation.TriggerType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerType(v)
		return nil
	case automation.FieldTriggerConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerConfig(v)
		return nil
	case automation.FieldActions:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActions(v)
		return nil
	case automation.FieldVariables:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVariables(v)
		return nil
	case automation.FieldStatus:
		v, ok := value.(automation.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case automation.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case automation.FieldNextPollAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextPollAt(v)
		return nil
	case automation.FieldLastPollCursor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastPollCursor(v)
		return nil
	case automation.FieldPollingIntervalMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPollingIntervalMinutes(v)
		return nil
	case automation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case automation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Automation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AutomationMutation) AddedFields() []string {
	var fields []string
	if m.addpolling_interval_minutes != nil {
		fields = append(fields, automation.FieldPollingIntervalMinutes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AutomationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case automation.FieldPollingIntervalMinutes:
		return m.AddedPollingIntervalMinutes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AutomationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case automation.FieldPollingIntervalMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPollingIntervalMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown Automation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AutomationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(automation.FieldTriggerConfig) {
		fields = append(fields, automation.FieldTriggerConfig)
	}
	if m.FieldCleared(automation.FieldVariables) {
		fields = append(fields, automation.FieldVariables)
	}
	if m.FieldCleared(automation.FieldNextPollAt) {
		fields = append(fields, automation.FieldNextPollAt)
	}
	if m.FieldCleared(automation.FieldLastPollCursor) {
		fields = append(fields, automation.FieldLastPollCursor)
	}
	if m.FieldCleared(automation.FieldPollingIntervalMinutes) {
		fields = append(fields, automation.FieldPollingIntervalMinutes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AutomationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AutomationMutation) ClearField(name string) error {
	switch name {
	case automation.FieldTriggerConfig:
		m.ClearTriggerConfig()
		return nil
	case automation.FieldVariables:
		m.ClearVariables()
		return nil
	case automation.FieldNextPollAt:
		m.ClearNextPollAt()
		return nil
	case automation.FieldLastPollCursor:
		m.ClearLastPollCursor()
		return nil
	case automation.FieldPollingIntervalMinutes:
		m.ClearPollingIntervalMinutes()
		return nil
	}
	return fmt.Errorf("unknown Automation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AutomationMutation) ResetField(name string) error {
	switch name {
	case automation.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case automation.FieldName:
		m.ResetName()
		return nil
	case automation.FieldTriggerType:
		m.ResetTriggerType()
		return nil
	case automation.FieldTriggerConfig:
		m.ResetTriggerConfig()
		return nil
	case automation.FieldActions:
		m.ResetActions()
		return nil
	case automation.FieldVariables:
		m.ResetVariables()
		return nil
	case automation.FieldStatus:
		m.ResetStatus()
		return nil
	case automation.FieldActive:
		m.ResetActive()
		return nil
	case automation.FieldNextPollAt:
		m.ResetNextPollAt()
		return nil
	case automation.FieldLastPollCursor:
		m.ResetLastPollCursor()
		return nil
	case automation.FieldPollingIntervalMinutes:
		m.ResetPollingIntervalMinutes()
		return nil
	case automation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case automation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Automation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AutomationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.execution_logs != nil {
		edges = append(edges, automation.EdgeExecutionLogs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AutomationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case automation.EdgeExecutionLogs:
		ids := make([]ent.Value, 0, len(m.execution_logs))
		for id := range m.execution_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AutomationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedexecution_logs != nil {
		edges = append(edges, automation.EdgeExecutionLogs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AutomationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case automation.EdgeExecutionLogs:
		ids := make([]ent.Value, 0, len(m.removedexecution_logs))
		for id := range m.removedexecution_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AutomationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedexecution_logs {
		edges = append(edges, automation.EdgeExecutionLogs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AutomationMutation) EdgeCleared(name string) bool {
	switch name {
	case automation.EdgeExecutionLogs:
		return m.clearedexecution_logs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AutomationMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Automation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AutomationMutation) ResetEdge(name string) error {
	switch name {
	case automation.EdgeExecutionLogs:
		m.ResetExecutionLogs()
		return nil
	}
	return fmt.Errorf("unknown Automation edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op             Op
	typ            string
	id             *int
	owner_id       *string
	service        *string
	event_type     *string
	event_id       *string
	event_data     *map[string]interface{}
	processed      *bool
	retry_count    *int
	addretry_count *int
	created_at     *time.Time
	processed_at   *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Event, error)
	predicates     []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *EventMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *EventMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *EventMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetService sets the "service" field.
func (m *EventMutation) SetService(s string) {
	m.service = &s
}

// Service returns the value of the "service" field in the mutation.
func (m *EventMutation) Service() (r string, exists bool) {
	v := m.service
	if v == nil {
		return
	}
	return *v, true
}

// OldService returns the old "service" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldService(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldService is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldService requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldService: %w", err)
	}
	return oldValue.Service, nil
}

// ResetService resets all changes to the "service" field.
func (m *EventMutation) ResetService() {
	m.service = nil
}

// SetEventType sets the "event_type" field.
func (m *EventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *EventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *EventMutation) ResetEventType() {
	m.event_type = nil
}

// SetEventID sets the "event_id" field.
func (m *EventMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *EventMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *EventMutation) ResetEventID() {
	m.event_id = nil
}

// SetEventData sets the "event_data" field.
func (m *EventMutation) SetEventData(value map[string]interface{}) {
	m.event_data = &value
}

// EventData returns the value of the "event_data" field in the mutation.
func (m *EventMutation) EventData() (r map[string]interface{}, exists bool) {
	v := m.event_data
	if v == nil {
		return
	}
	return *v, true
}

// OldEventData returns the old "event_data" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEventData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventData: %w", err)
	}
	return oldValue.EventData, nil
}

// ResetEventData resets all changes to the "event_data" field.
func (m *EventMutation) ResetEventData() {
	m.event_data = nil
}

// SetProcessed sets the "processed" field.
func (m *EventMutation) SetProcessed(b bool) {
	m.processed = &b
}

// Processed returns the value of the "processed" field in the mutation.
func (m *EventMutation) Processed() (r bool, exists bool) {
	v := m.processed
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessed returns the old "processed" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldProcessed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessed: %w", err)
	}
	return oldValue.Processed, nil
}

// ResetProcessed resets all changes to the "processed" field.
func (m *EventMutation) ResetProcessed() {
	m.processed = nil
}

// SetRetryCount sets the "retry_count" field.
func (m *EventMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *EventMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *EventMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *EventMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *EventMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetProcessedAt sets the "processed_at" field.
func (m *EventMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *EventMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *EventMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[event.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *EventMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[event.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *EventMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, event.FieldProcessedAt)
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.owner_id != nil {
		fields = append(fields, event.FieldOwnerID)
	}
	if m.service != nil {
		fields = append(fields, event.FieldService)
	}
	if m.event_type != nil {
		fields = append(fields, event.FieldEventType)
	}
	if m.event_id != nil {
		fields = append(fields, event.FieldEventID)
	}
	if m.event_data != nil {
		fields = append(fields, event.FieldEventData)
	}
	if m.processed != nil {
		fields = append(fields, event.FieldProcessed)
	}
	if m.retry_count != nil {
		fields = append(fields, event.FieldRetryCount)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	if m.processed_at != nil {
		fields = append(fields, event.FieldProcessedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldOwnerID:
		return m.OwnerID()
	case event.FieldService:
		return m.Service()
	case event.FieldEventType:
		return m.EventType()
	case event.FieldEventID:
		return m.EventID()
	case event.FieldEventData:
		return m.EventData()
	case event.FieldProcessed:
		return m.Processed()
	case event.FieldRetryCount:
		return m.RetryCount()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	case event.FieldProcessedAt:
		return m.ProcessedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case event.FieldService:
		return m.OldService(ctx)
	case event.FieldEventType:
		return m.OldEventType(ctx)
	case event.FieldEventID:
		return m.OldEventID(ctx)
	case event.FieldEventData:
		return m.OldEventData(ctx)
	case event.FieldProcessed:
		return m.OldProcessed(ctx)
	case event.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case event.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case event.FieldService:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetService(v)
		return nil
	case event.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case event.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case event.FieldEventData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventData(v)
		return nil
	case event.FieldProcessed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessed(v)
		return nil
	case event.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case event.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	var fields []string
	if m.addretry_count != nil {
		fields = append(fields, event.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case event.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case event.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldProcessedAt) {
		fields = append(fields, event.FieldProcessedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case event.FieldService:
		m.ResetService()
		return nil
	case event.FieldEventType:
		m.ResetEventType()
		return nil
	case event.FieldEventID:
		m.ResetEventID()
		return nil
	case event.FieldEventData:
		m.ResetEventData()
		return nil
	case event.FieldProcessed:
		m.ResetProcessed()
		return nil
	case event.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case event.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// ExecutionLogMutation represents an operation that mutates the ExecutionLog nodes in the graph.
type ExecutionLogMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	owner_id             *string
	trigger_type         *string
	trigger_data         *map[string]interface{}
	status               *executionlog.Status
	actions_executed     *int
	addactions_executed  *int
	actions_failed       *int
	addactions_failed    *int
	action_results       *[]map[string]interface{}
	appendaction_results []map[string]interface{}
	error_summary        *string
	started_at           *time.Time
	completed_at         *time.Time
	duration_ms          *int
	addduration_ms       *int
	clearedFields        map[string]struct{}
	automation           *string
	clearedautomation    bool
	done                 bool
	oldValue             func(context.Context) (*ExecutionLog, error)
	predicates           []predicate.ExecutionLog
}

var _ ent.Mutation = (*ExecutionLogMutation)(nil)

// executionlogOption allows management of the mutation configuration using functional options.
type executionlogOption func(*ExecutionLogMutation)

// newExecutionLogMutation creates new mutation for the ExecutionLog entity.
func newExecutionLogMutation(c config, op Op, opts ...executionlogOption) *ExecutionLogMutation {
	m := &ExecutionLogMutation{
		config:        c,
		op:            op,
		typ:           TypeExecutionLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExecutionLogID sets the ID field of the mutation.
func withExecutionLogID(id string) executionlogOption {
	return func(m *ExecutionLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ExecutionLog
		)
		m.oldValue = func(ctx context.Context) (*ExecutionLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExecutionLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExecutionLog sets the old ExecutionLog of the mutation.
func withExecutionLog(node *ExecutionLog) executionlogOption {
	return func(m *ExecutionLogMutation) {
		m.oldValue = func(context.Context) (*ExecutionLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExecutionLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExecutionLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExecutionLog entities.
func (m *ExecutionLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExecutionLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExecutionLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExecutionLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAutomationID sets the "automation_id" field.
func (m *ExecutionLogMutation) SetAutomationID(s string) {
	m.automation = &s
}

// AutomationID returns the value of the "automation_id" field in the mutation.
func (m *ExecutionLogMutation) AutomationID() (r string, exists bool) {
	v := m.automation
	if v == nil {
		return
	}
	return *v, true
}

// OldAutomationID returns the old "automation_id" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldAutomationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutomationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutomationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutomationID: %w", err)
	}
	return oldValue.AutomationID, nil
}

// ResetAutomationID resets all changes to the "automation_id" field.
func (m *ExecutionLogMutation) ResetAutomationID() {
	m.automation = nil
}

// SetOwnerID sets the "owner_id" field.
func (m *ExecutionLogMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *ExecutionLogMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *ExecutionLogMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetTriggerType sets the "trigger_type" field.
func (m *ExecutionLogMutation) SetTriggerType(s string) {
	m.trigger_type = &s
}

// TriggerType returns the value of the "trigger_type" field in the mutation.
func (m *ExecutionLogMutation) TriggerType() (r string, exists bool) {
	v := m.trigger_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerType returns the old "trigger_type" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldTriggerType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerType: %w", err)
	}
	return oldValue.TriggerType, nil
}

// ResetTriggerType resets all changes to the "trigger_type" field.
func (m *ExecutionLogMutation) ResetTriggerType() {
	m.trigger_type = nil
}

// SetTriggerData sets the "trigger_data" field.
func (m *ExecutionLogMutation) SetTriggerData(value map[string]interface{}) {
	m.trigger_data = &value
}

// TriggerData returns the value of the "trigger_data" field in the mutation.
func (m *ExecutionLogMutation) TriggerData() (r map[string]interface{}, exists bool) {
	v := m.trigger_data
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerData returns the old "trigger_data" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldTriggerData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerData: %w", err)
	}
	return oldValue.TriggerData, nil
}

// ClearTriggerData clears the value of the "trigger_data" field.
func (m *ExecutionLogMutation) ClearTriggerData() {
	m.trigger_data = nil
	m.clearedFields[executionlog.FieldTriggerData] = struct{}{}
}

// TriggerDataCleared returns if the "trigger_data" field was cleared in this mutation.
func (m *ExecutionLogMutation) TriggerDataCleared() bool {
	_, ok := m.clearedFields[executionlog.FieldTriggerData]
	return ok
}

// ResetTriggerData resets all changes to the "trigger_data" field.
func (m *ExecutionLogMutation) ResetTriggerData() {
	m.trigger_data = nil
	delete(m.clearedFields, executionlog.FieldTriggerData)
}

// SetStatus sets the "status" field.
func (m *ExecutionLogMutation) SetStatus(e executionlog.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *ExecutionLogMutation) Status() (r executionlog.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldStatus(ctx context.Context) (v executionlog.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExecutionLogMutation) ResetStatus() {
	m.status = nil
}

// SetActionsExecuted sets the "actions_executed" field.
func (m *ExecutionLogMutation) SetActionsExecuted(i int) {
	m.actions_executed = &i
	m.addactions_executed = nil
}

// ActionsExecuted returns the value of the "actions_executed" field in the mutation.
func (m *ExecutionLogMutation) ActionsExecuted() (r int, exists bool) {
	v := m.actions_executed
	if v == nil {
		return
	}
	return *v, true
}

// OldActionsExecuted returns the old "actions_executed" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldActionsExecuted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionsExecuted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionsExecuted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionsExecuted: %w", err)
	}
	return oldValue.ActionsExecuted, nil
}

// AddActionsExecuted adds i to the "actions_executed" field.
func (m *ExecutionLogMutation) AddActionsExecuted(i int) {
	if m.addactions_executed != nil {
		*m.addactions_executed += i
	} else {
		m.addactions_executed = &i
	}
}

// AddedActionsExecuted returns the value that was added to the "actions_executed" field in this mutation.
func (m *ExecutionLogMutation) AddedActionsExecuted() (r int, exists bool) {
	v := m.addactions_executed
	if v == nil {
		return
	}
	return *v, true
}

// ResetActionsExecuted resets all changes to the "actions_executed" field.
func (m *ExecutionLogMutation) ResetActionsExecuted() {
	m.actions_executed = nil
	m.addactions_executed = nil
}

// SetActionsFailed sets the "actions_failed" field.
func (m *ExecutionLogMutation) SetActionsFailed(i int) {
	m.actions_failed = &i
	m.addactions_failed = nil
}

// ActionsFailed returns the value of the "actions_failed" field in the mutation.
func (m *ExecutionLogMutation) ActionsFailed() (r int, exists bool) {
	v := m.actions_failed
	if v == nil {
		return
	}
	return *v, true
}

// OldActionsFailed returns the old "actions_failed" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldActionsFailed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionsFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionsFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionsFailed: %w", err)
	}
	return oldValue.ActionsFailed, nil
}

// AddActionsFailed adds i to the "actions_failed" field.
func (m *ExecutionLogMutation) AddActionsFailed(i int) {
	if m.addactions_failed != nil {
		*m.addactions_failed += i
	} else {
		m.addactions_failed = &i
	}
}

// AddedActionsFailed returns the value that was added to the "actions_failed" field in this mutation.
func (m *ExecutionLogMutation) AddedActionsFailed() (r int, exists bool) {
	v := m.addactions_failed
	if v == nil {
		return
	}
	return *v, true
}

// ResetActionsFailed resets all changes to the "actions_failed" field.
func (m *ExecutionLogMutation) ResetActionsFailed() {
	m.actions_failed = nil
	m.addactions_failed = nil
}

// SetActionResults sets the "action_results" field.
func (m *ExecutionLogMutation) SetActionResults(value []map[string]interface{}) {
	m.action_results = &value
	m.appendaction_results = nil
}

// ActionResults returns the value of the "action_results" field in the mutation.
func (m *ExecutionLogMutation) ActionResults() (r []map[string]interface{}, exists bool) {
	v := m.action_results
	if v == nil {
		return
	}
	return *v, true
}

// OldActionResults returns the old "action_results" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldActionResults(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionResults is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionResults requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionResults: %w", err)
	}
	return oldValue.ActionResults, nil
}

// AppendActionResults adds value to the "action_results" field.
func (m *ExecutionLogMutation) AppendActionResults(value []map[string]interface{}) {
	m.appendaction_results = append(m.appendaction_results, value...)
}

// AppendedActionResults returns the list of values that were appended to the "action_results" field in this mutation.
func (m *ExecutionLogMutation) AppendedActionResults() ([]map[string]interface{}, bool) {
	if len(m.appendaction_results) == 0 {
		return nil, false
	}
	return m.appendaction_results, true
}

// ClearActionResults clears the value of the "action_results" field.
func (m *ExecutionLogMutation) ClearActionResults() {
	m.action_results = nil
	m.appendaction_results = nil
	m.clearedFields[executionlog.FieldActionResults] = struct{}{}
}

// ActionResultsCleared returns if the "action_results" field was cleared in this mutation.
func (m *ExecutionLogMutation) ActionResultsCleared() bool {
	_, ok := m.clearedFields[executionlog.FieldActionResults]
	return ok
}

// ResetActionResults resets all changes to the "action_results" field.
func (m *ExecutionLogMutation) ResetActionResults() {
	m.action_results = nil
	m.appendaction_results = nil
	delete(m.clearedFields, executionlog.FieldActionResults)
}

// SetErrorSummary sets the "error_summary" field.
func (m *ExecutionLogMutation) SetErrorSummary(s string) {
	m.error_summary = &s
}

// ErrorSummary returns the value of the "error_summary" field in the mutation.
func (m *ExecutionLogMutation) ErrorSummary() (r string, exists bool) {
	v := m.error_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorSummary returns the old "error_summary" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldErrorSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorSummary: %w", err)
	}
	return oldValue.ErrorSummary, nil
}

// ClearErrorSummary clears the value of the "error_summary" field.
func (m *ExecutionLogMutation) ClearErrorSummary() {
	m.error_summary = nil
	m.clearedFields[executionlog.FieldErrorSummary] = struct{}{}
}

// ErrorSummaryCleared returns if the "error_summary" field was cleared in this mutation.
func (m *ExecutionLogMutation) ErrorSummaryCleared() bool {
	_, ok := m.clearedFields[executionlog.FieldErrorSummary]
	return ok
}

// ResetErrorSummary resets all changes to the "error_summary" field.
func (m *ExecutionLogMutation) ResetErrorSummary() {
	m.error_summary = nil
	delete(m.clearedFields, executionlog.FieldErrorSummary)
}

// SetStartedAt sets the "started_at" field.
func (m *ExecutionLogMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExecutionLogMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExecutionLogMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *ExecutionLogMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ExecutionLogMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ExecutionLogMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[executionlog.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ExecutionLogMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[executionlog.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ExecutionLogMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, executionlog.FieldCompletedAt)
}

// SetDurationMs sets the "duration_ms" field.
func (m *ExecutionLogMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *ExecutionLogMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldDurationMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *ExecutionLogMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *ExecutionLogMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *ExecutionLogMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[executionlog.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *ExecutionLogMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[executionlog.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *ExecutionLogMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, executionlog.FieldDurationMs)
}

// ClearAutomation clears the "automation" edge to the Automation entity.
func (m *ExecutionLogMutation) ClearAutomation() {
	m.clearedautomation = true
	m.clearedFields[executionlog.FieldAutomationID] = struct{}{}
}

// AutomationCleared reports if the "automation" edge to the Automation entity was cleared.
func (m *ExecutionLogMutation) AutomationCleared() bool {
	return m.clearedautomation
}

// AutomationIDs returns the "automation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AutomationID instead. It exists only for internal usage by the builders.
func (m *ExecutionLogMutation) AutomationIDs() (ids []string) {
	if id := m.automation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAutomation resets all changes to the "automation" edge.
func (m *ExecutionLogMutation) ResetAutomation() {
	m.automation = nil
	m.clearedautomation = false
}

// Where appends a list predicates to the ExecutionLogMutation builder.
func (m *ExecutionLogMutation) Where(ps ...predicate.ExecutionLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExecutionLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExecutionLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExecutionLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExecutionLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExecutionLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExecutionLog).
func (m *ExecutionLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExecutionLogMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.automation != nil {
		fields = append(fields, executionlog.FieldAutomationID)
	}
	if m.owner_id != nil {
		fields = append(fields, executionlog.FieldOwnerID)
	}
	if m.trigger_type != nil {
		fields = append(fields, executionlog.FieldTriggerType)
	}
	if m.trigger_data != nil {
		fields = append(fields, executionlog.FieldTriggerData)
	}
	if m.status != nil {
		fields = append(fields, executionlog.FieldStatus)
	}
	if m.actions_executed != nil {
		fields = append(fields, executionlog.FieldActionsExecuted)
	}
	if m.actions_failed != nil {
		fields = append(fields, executionlog.FieldActionsFailed)
	}
	if m.action_results != nil {
		fields = append(fields, executionlog.FieldActionResults)
	}
	if m.error_summary != nil {
		fields = append(fields, executionlog.FieldErrorSummary)
	}
	if m.started_at != nil {
		fields = append(fields, executionlog.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, executionlog.FieldCompletedAt)
	}
	if m.duration_ms != nil {
		fields = append(fields, executionlog.FieldDurationMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExecutionLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case executionlog.FieldAutomationID:
		return m.AutomationID()
	case executionlog.FieldOwnerID:
		return m.OwnerID()
	case executionlog.FieldTriggerType:
		return m.TriggerType()
	case executionlog.FieldTriggerData:
		return m.TriggerData()
	case executionlog.FieldStatus:
		return m.Status()
	case executionlog.FieldActionsExecuted:
		return m.ActionsExecuted()
	case executionlog.FieldActionsFailed:
		return m.ActionsFailed()
	case executionlog.FieldActionResults:
		return m.ActionResults()
	case executionlog.FieldErrorSummary:
		return m.ErrorSummary()
	case executionlog.FieldStartedAt:
		return m.StartedAt()
	case executionlog.FieldCompletedAt:
		return m.CompletedAt()
	case executionlog.FieldDurationMs:
		return m.DurationMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExecutionLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case executionlog.FieldAutomationID:
		return m.OldAutomationID(ctx)
	case executionlog.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case executionlog.FieldTriggerType:
		return m.OldTriggerType(ctx)
	case executionlog.FieldTriggerData:
		return m.OldTriggerData(ctx)
	case executionlog.FieldStatus:
		return m.OldStatus(ctx)
	case executionlog.FieldActionsExecuted:
		return m.OldActionsExecuted(ctx)
	case executionlog.FieldActionsFailed:
		return m.OldActionsFailed(ctx)
	case executionlog.FieldActionResults:
		return m.OldActionResults(ctx)
	case executionlog.FieldErrorSummary:
		return m.OldErrorSummary(ctx)
	case executionlog.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case executionlog.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case executionlog.FieldDurationMs:
		return m.OldDurationMs(ctx)
	}
	return nil, fmt.Errorf("unknown ExecutionLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case executionlog.FieldAutomationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutomationID(v)
		return nil
	case executionlog.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case executionlog.FieldTriggerType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerType(v)
		return nil
	case executionlog.FieldTriggerData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerData(v)
		return nil
	case executionlog.FieldStatus:
		v, ok := value.(executionlog.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case executionlog.FieldActionsExecuted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionsExecuted(v)
		return nil
	case executionlog.FieldActionsFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionsFailed(v)
		return nil
	case executionlog.FieldActionResults:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionResults(v)
		return nil
	case executionlog.FieldErrorSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorSummary(v)
		return nil
	case executionlog.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case executionlog.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case executionlog.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown ExecutionLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExecutionLogMutation) AddedFields() []string {
	var fields []string
	if m.addactions_executed != nil {
		fields = append(fields, executionlog.FieldActionsExecuted)
	}
	if m.addactions_failed != nil {
		fields = append(fields, executionlog.FieldActionsFailed)
	}
	if m.addduration_ms != nil {
		fields = append(fields, executionlog.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExecutionLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case executionlog.FieldActionsExecuted:
		return m.AddedActionsExecuted()
	case executionlog.FieldActionsFailed:
		return m.AddedActionsFailed()
	case executionlog.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case executionlog.FieldActionsExecuted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActionsExecuted(v)
		return nil
	case executionlog.FieldActionsFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActionsFailed(v)
		return nil
	case executionlog.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown ExecutionLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExecutionLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(executionlog.FieldTriggerData) {
		fields = append(fields, executionlog.FieldTriggerData)
	}
	if m.FieldCleared(executionlog.FieldActionResults) {
		fields = append(fields, executionlog.FieldActionResults)
	}
	if m.FieldCleared(executionlog.FieldErrorSummary) {
		fields = append(fields, executionlog.FieldErrorSummary)
	}
	if m.FieldCleared(executionlog.FieldCompletedAt) {
		fields = append(fields, executionlog.FieldCompletedAt)
	}
	if m.FieldCleared(executionlog.FieldDurationMs) {
		fields = append(fields, executionlog.FieldDurationMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExecutionLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExecutionLogMutation) ClearField(name string) error {
	switch name {
	case executionlog.FieldTriggerData:
		m.ClearTriggerData()
		return nil
	case executionlog.FieldActionResults:
		m.ClearActionResults()
		return nil
	case executionlog.FieldErrorSummary:
		m.ClearErrorSummary()
		return nil
	case executionlog.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case executionlog.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	}
	return fmt.Errorf("unknown ExecutionLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExecutionLogMutation) ResetField(name string) error {
	switch name {
	case executionlog.FieldAutomationID:
		m.ResetAutomationID()
		return nil
	case executionlog.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case executionlog.FieldTriggerType:
		m.ResetTriggerType()
		return nil
	case executionlog.FieldTriggerData:
		m.ResetTriggerData()
		return nil
	case executionlog.FieldStatus:
		m.ResetStatus()
		return nil
	case executionlog.FieldActionsExecuted:
		m.ResetActionsExecuted()
		return nil
	case executionlog.FieldActionsFailed:
		m.ResetActionsFailed()
		return nil
	case executionlog.FieldActionResults:
		m.ResetActionResults()
		return nil
	case executionlog.FieldErrorSummary:
		m.ResetErrorSummary()
		return nil
	case executionlog.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case executionlog.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case executionlog.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	}
	return fmt.Errorf("unknown ExecutionLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExecutionLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.automation != nil {
		edges = append(edges, executionlog.EdgeAutomation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExecutionLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case executionlog.EdgeAutomation:
		if id := m.automation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExecutionLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExecutionLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExecutionLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedautomation {
		edges = append(edges, executionlog.EdgeAutomation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExecutionLogMutation) EdgeCleared(name string) bool {
	switch name {
	case executionlog.EdgeAutomation:
		return m.clearedautomation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExecutionLogMutation) ClearEdge(name string) error {
	switch name {
	case executionlog.EdgeAutomation:
		m.ClearAutomation()
		return nil
	}
	return fmt.Errorf("unknown ExecutionLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExecutionLogMutation) ResetEdge(name string) error {
	switch name {
	case executionlog.EdgeAutomation:
		m.ResetAutomation()
		return nil
	}
	return fmt.Errorf("unknown ExecutionLog edge %s", name)
}

// IntegrationMutation represents an operation that mutates the Integration nodes in the graph.
type IntegrationMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	owner_id              *string
	service               *string
	workspace_id          *string
	access_token          *string
	refresh_token         *string
	expires_at            *time.Time
	last_gmail_history_id *string
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*Integration, error)
	predicates            []predicate.Integration
}

var _ ent.Mutation = (*IntegrationMutation)(nil)

// integrationOption allows management of the mutation configuration using functional options.
type integrationOption func(*IntegrationMutation)

// newIntegrationMutation creates new mutation for the Integration entity.
func newIntegrationMutation(c config, op Op, opts ...integrationOption) *IntegrationMutation {
	m := &IntegrationMutation{
		config:        c,
		op:            op,
		typ:           TypeIntegration,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIntegrationID sets the ID field of the mutation.
func withIntegrationID(id int) integrationOption {
	return func(m *IntegrationMutation) {
		var (
			err   error
			once  sync.Once
			value *Integration
		)
		m.oldValue = func(ctx context.Context) (*Integration, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Integration.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIntegration sets the old Integration of the mutation.
func withIntegration(node *Integration) integrationOption {
	return func(m *IntegrationMutation) {
		m.oldValue = func(context.Context) (*Integration, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IntegrationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IntegrationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IntegrationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IntegrationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Integration.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *IntegrationMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *IntegrationMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Integration entity.
// If the Integration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *IntegrationMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetService sets the "service" field.
func (m *IntegrationMutation) SetService(s string) {
	m.service = &s
}

// Service returns the value of the "service" field in the mutation.
func (m *IntegrationMutation) Service() (r string, exists bool) {
	v := m.service
	if v == nil {
		return
	}
	return *v, true
}

// OldService returns the old "service" field's value of the Integration entity.
// If the Integration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationMutation) OldService(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldService is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldService requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldService: %w", err)
	}
	return oldValue.Service, nil
}

// ResetService resets all changes to the "service" field.
func (m *IntegrationMutation) ResetService() {
	m.service = nil
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *IntegrationMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *IntegrationMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Integration entity.
// If the Integration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ClearWorkspaceID clears the value of the "workspace_id" field.
func (m *IntegrationMutation) ClearWorkspaceID() {
	m.workspace_id = nil
	m.clearedFields[integration.FieldWorkspaceID] = struct{}{}
}

// WorkspaceIDCleared returns if the "workspace_id" field was cleared in this mutation.
func (m *IntegrationMutation) WorkspaceIDCleared() bool {
	_, ok := m.clearedFields[integration.FieldWorkspaceID]
	return ok
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *IntegrationMutation) ResetWorkspaceID() {
	m.workspace_id = nil
	delete(m.clearedFields, integration.FieldWorkspaceID)
}

// SetAccessToken sets the "access_token" field.
func (m *IntegrationMutation) SetAccessToken(s string) {
	m.access_token = &s
}

// AccessToken returns the value of the "access_token" field in the mutation.
func (m *IntegrationMutation) AccessToken() (r string, exists bool) {
	v := m.access_token
	if v == nil {
		return
	}
	return *v, true
}

// OldAccessToken returns the old "access_token" field's value of the Integration entity.
// If the Integration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationMutation) OldAccessToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccessToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccessToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccessToken: %w", err)
	}
	return oldValue.AccessToken, nil
}

// ResetAccessToken resets all changes to the "access_token" field.
func (m *IntegrationMutation) ResetAccessToken() {
	m.access_token = nil
}

// SetRefreshToken sets the "refresh_token" field.
func (m *IntegrationMutation) SetRefreshToken(s string) {
	m.refresh_token = &s
}

// RefreshToken returns the value of the "refresh_token" field in the mutation.
func (m *IntegrationMutation) RefreshToken() (r string, exists bool) {
	v := m.refresh_token
	if v == nil {
		return
	}
	return *v, true
}

// OldRefreshToken returns the old "refresh_token" field's value of the Integration entity.
// If the Integration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationMutation) OldRefreshToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefreshToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefreshToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefreshToken: %w", err)
	}
	return oldValue.RefreshToken, nil
}

// ClearRefreshToken clears the value of the "refresh_token" field.
func (m *IntegrationMutation) ClearRefreshToken() {
	m.refresh_token = nil
	m.clearedFields[integration.FieldRefreshToken] = struct{}{}
}

// RefreshTokenCleared returns if the "refresh_token" field was cleared in this mutation.
func (m *IntegrationMutation) RefreshTokenCleared() bool {
	_, ok := m.clearedFields[integration.FieldRefreshToken]
	return ok
}

// ResetRefreshToken resets all changes to the "refresh_token" field.
func (m *IntegrationMutation) ResetRefreshToken() {
	m.refresh_token = nil
	delete(m.clearedFields, integration.FieldRefreshToken)
}

// SetExpiresAt sets the "expires_at" field.
func (m *IntegrationMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *IntegrationMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the Integration entity.
// If the Integration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *IntegrationMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[integration.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *IntegrationMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[integration.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *IntegrationMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, integration.FieldExpiresAt)
}

// SetLastGmailHistoryID sets the "last_gmail_history_id" field.
func (m *IntegrationMutation) SetLastGmailHistoryID(s string) {
	m.last_gmail_history_id = &s
}

// LastGmailHistoryID returns the value of the "last_gmail_history_id" field in the mutation.
func (m *IntegrationMutation) LastGmailHistoryID() (r string, exists bool) {
	v := m.last_gmail_history_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastGmailHistoryID returns the old "last_gmail_history_id" field's value of the Integration entity.
// If the Integration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationMutation) OldLastGmailHistoryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastGmailHistoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastGmailHistoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastGmailHistoryID: %w", err)
	}
	return oldValue.LastGmailHistoryID, nil
}

// ClearLastGmailHistoryID clears the value of the "last_gmail_history_id" field.
func (m *IntegrationMutation) ClearLastGmailHistoryID() {
	m.last_gmail_history_id = nil
	m.clearedFields[integration.FieldLastGmailHistoryID] = struct{}{}
}

// LastGmailHistoryIDCleared returns if the "last_gmail_history_id" field was cleared in this mutation.
func (m *IntegrationMutation) LastGmailHistoryIDCleared() bool {
	_, ok := m.clearedFields[integration.FieldLastGmailHistoryID]
	return ok
}

// ResetLastGmailHistoryID resets all changes to the "last_gmail_history_id" field.
func (m *IntegrationMutation) ResetLastGmailHistoryID() {
	m.last_gmail_history_id = nil
	delete(m.clearedFields, integration.FieldLastGmailHistoryID)
}

// SetCreatedAt sets the "created_at" field.
func (m *IntegrationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IntegrationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Integration entity.
// If the Integration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IntegrationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *IntegrationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *IntegrationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Integration entity.
// If the Integration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *IntegrationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the IntegrationMutation builder.
func (m *IntegrationMutation) Where(ps ...predicate.Integration) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IntegrationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IntegrationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Integration, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IntegrationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IntegrationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Integration).
func (m *IntegrationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IntegrationMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.owner_id != nil {
		fields = append(fields, integration.FieldOwnerID)
	}
	if m.service != nil {
		fields = append(fields, integration.FieldService)
	}
	if m.workspace_id != nil {
		fields = append(fields, integration.FieldWorkspaceID)
	}
	if m.access_token != nil {
		fields = append(fields, integration.FieldAccessToken)
	}
	if m.refresh_token != nil {
		fields = append(fields, integration.FieldRefreshToken)
	}
	if m.expires_at != nil {
		fields = append(fields, integration.FieldExpiresAt)
	}
	if m.last_gmail_history_id != nil {
		fields = append(fields, integration.FieldLastGmailHistoryID)
	}
	if m.created_at != nil {
		fields = append(fields, integration.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, integration.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IntegrationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case integration.FieldOwnerID:
		return m.OwnerID()
	case integration.FieldService:
		return m.Service()
	case integration.FieldWorkspaceID:
		return m.WorkspaceID()
	case integration.FieldAccessToken:
		return m.AccessToken()
	case integration.FieldRefreshToken:
		return m.RefreshToken()
	case integration.FieldExpiresAt:
		return m.ExpiresAt()
	case integration.FieldLastGmailHistoryID:
		return m.LastGmailHistoryID()
	case integration.FieldCreatedAt:
		return m.CreatedAt()
	case integration.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IntegrationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case integration.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case integration.FieldService:
		return m.OldService(ctx)
	case integration.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case integration.FieldAccessToken:
		return m.OldAccessToken(ctx)
	case integration.FieldRefreshToken:
		return m.OldRefreshToken(ctx)
	case integration.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case integration.FieldLastGmailHistoryID:
		return m.OldLastGmailHistoryID(ctx)
	case integration.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case integration.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Integration field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IntegrationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case integration.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case integration.FieldService:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetService(v)
		return nil
	case integration.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case integration.FieldAccessToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccessToken(v)
		return nil
	case integration.FieldRefreshToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefreshToken(v)
		return nil
	case integration.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case integration.FieldLastGmailHistoryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastGmailHistoryID(v)
		return nil
	case integration.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case integration.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Integration field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IntegrationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IntegrationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IntegrationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Integration numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IntegrationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(integration.FieldWorkspaceID) {
		fields = append(fields, integration.FieldWorkspaceID)
	}
	if m.FieldCleared(integration.FieldRefreshToken) {
		fields = append(fields, integration.FieldRefreshToken)
	}
	if m.FieldCleared(integration.FieldExpiresAt) {
		fields = append(fields, integration.FieldExpiresAt)
	}
	if m.FieldCleared(integration.FieldLastGmailHistoryID) {
		fields = append(fields, integration.FieldLastGmailHistoryID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IntegrationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IntegrationMutation) ClearField(name string) error {
	switch name {
	case integration.FieldWorkspaceID:
		m.ClearWorkspaceID()
		return nil
	case integration.FieldRefreshToken:
		m.ClearRefreshToken()
		return nil
	case integration.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	case integration.FieldLastGmailHistoryID:
		m.ClearLastGmailHistoryID()
		return nil
	}
	return fmt.Errorf("unknown Integration nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IntegrationMutation) ResetField(name string) error {
	switch name {
	case integration.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case integration.FieldService:
		m.ResetService()
		return nil
	case integration.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case integration.FieldAccessToken:
		m.ResetAccessToken()
		return nil
	case integration.FieldRefreshToken:
		m.ResetRefreshToken()
		return nil
	case integration.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case integration.FieldLastGmailHistoryID:
		m.ResetLastGmailHistoryID()
		return nil
	case integration.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case integration.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Integration field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IntegrationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IntegrationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IntegrationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IntegrationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IntegrationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IntegrationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IntegrationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Integration unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IntegrationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Integration edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op            Op
	typ           string
	id            *string
	email         *string
	timezone      *string
	name          *string
	phone         *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*User, error)
	predicates    []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id string) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetTimezone sets the "timezone" field.
func (m *UserMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *UserMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *UserMutation) ResetTimezone() {
	m.timezone = nil
}

// SetName sets the "name" field.
func (m *UserMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UserMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *UserMutation) ClearName() {
	m.name = nil
	m.clearedFields[user.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *UserMutation) NameCleared() bool {
	_, ok := m.clearedFields[user.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *UserMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, user.FieldName)
}

// SetPhone sets the "phone" field.
func (m *UserMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *UserMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *UserMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[user.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *UserMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[user.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *UserMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, user.FieldPhone)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.timezone != nil {
		fields = append(fields, user.FieldTimezone)
	}
	if m.name != nil {
		fields = append(fields, user.FieldName)
	}
	if m.phone != nil {
		fields = append(fields, user.FieldPhone)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldEmail:
		return m.Email()
	case user.FieldTimezone:
		return m.Timezone()
	case user.FieldName:
		return m.Name()
	case user.FieldPhone:
		return m.Phone()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldTimezone:
		return m.OldTimezone(ctx)
	case user.FieldName:
		return m.OldName(ctx)
	case user.FieldPhone:
		return m.OldPhone(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case user.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case user.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldName) {
		fields = append(fields, user.FieldName)
	}
	if m.FieldCleared(user.FieldPhone) {
		fields = append(fields, user.FieldPhone)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldName:
		m.ClearName()
		return nil
	case user.FieldPhone:
		m.ClearPhone()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldTimezone:
		m.ResetTimezone()
		return nil
	case user.FieldName:
		m.ResetName()
		return nil
	case user.FieldPhone:
		m.ResetPhone()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown User edge %s", name)
}
