// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/triggerflow/triggerflow/ent/automation"
	"github.com/triggerflow/triggerflow/ent/event"
	"github.com/triggerflow/triggerflow/ent/executionlog"
	"github.com/triggerflow/triggerflow/ent/integration"
	"github.com/triggerflow/triggerflow/ent/schema"
	"github.com/triggerflow/triggerflow/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	automationFields := schema.Automation{}.Fields()
	_ = automationFields
	// automationDescActive is the schema descriptor for active field.
	automationDescActive := automationFields[8].Descriptor()
	// automation.DefaultActive holds the default value on creation for the active field.
	automation.DefaultActive = automationDescActive.Default.(bool)
	// automationDescCreatedAt is the schema descriptor for created_at field.
	automationDescCreatedAt := automationFields[12].Descriptor()
	// automation.DefaultCreatedAt holds the default value on creation for the created_at field.
	automation.DefaultCreatedAt = automationDescCreatedAt.Default.(func() time.Time)
	// automationDescUpdatedAt is the schema descriptor for updated_at field.
	automationDescUpdatedAt := automationFields[13].Descriptor()
	// automation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	automation.DefaultUpdatedAt = automationDescUpdatedAt.Default.(func() time.Time)
	// automation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	automation.UpdateDefaultUpdatedAt = automationDescUpdatedAt.UpdateDefault.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescProcessed is the schema descriptor for processed field.
	eventDescProcessed := eventFields[5].Descriptor()
	// event.DefaultProcessed holds the default value on creation for the processed field.
	event.DefaultProcessed = eventDescProcessed.Default.(bool)
	// eventDescRetryCount is the schema descriptor for retry_count field.
	eventDescRetryCount := eventFields[6].Descriptor()
	// event.DefaultRetryCount holds the default value on creation for the retry_count field.
	event.DefaultRetryCount = eventDescRetryCount.Default.(int)
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[7].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	executionlogFields := schema.ExecutionLog{}.Fields()
	_ = executionlogFields
	// executionlogDescActionsExecuted is the schema descriptor for actions_executed field.
	executionlogDescActionsExecuted := executionlogFields[6].Descriptor()
	// executionlog.DefaultActionsExecuted holds the default value on creation for the actions_executed field.
	executionlog.DefaultActionsExecuted = executionlogDescActionsExecuted.Default.(int)
	// executionlogDescActionsFailed is the schema descriptor for actions_failed field.
	executionlogDescActionsFailed := executionlogFields[7].Descriptor()
	// executionlog.DefaultActionsFailed holds the default value on creation for the actions_failed field.
	executionlog.DefaultActionsFailed = executionlogDescActionsFailed.Default.(int)
	// executionlogDescStartedAt is the schema descriptor for started_at field.
	executionlogDescStartedAt := executionlogFields[10].Descriptor()
	// executionlog.DefaultStartedAt holds the default value on creation for the started_at field.
	executionlog.DefaultStartedAt = executionlogDescStartedAt.Default.(func() time.Time)
	integrationFields := schema.Integration{}.Fields()
	_ = integrationFields
	// integrationDescCreatedAt is the schema descriptor for created_at field.
	integrationDescCreatedAt := integrationFields[7].Descriptor()
	// integration.DefaultCreatedAt holds the default value on creation for the created_at field.
	integration.DefaultCreatedAt = integrationDescCreatedAt.Default.(func() time.Time)
	// integrationDescUpdatedAt is the schema descriptor for updated_at field.
	integrationDescUpdatedAt := integrationFields[8].Descriptor()
	// integration.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	integration.DefaultUpdatedAt = integrationDescUpdatedAt.Default.(func() time.Time)
	// integration.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	integration.UpdateDefaultUpdatedAt = integrationDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescTimezone is the schema descriptor for timezone field.
	userDescTimezone := userFields[2].Descriptor()
	// user.DefaultTimezone holds the default value on creation for the timezone field.
	user.DefaultTimezone = userDescTimezone.Default.(string)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[5].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
}
