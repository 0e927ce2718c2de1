// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AutomationsColumns holds the columns for the "automations" table.
	AutomationsColumns = []*schema.Column{
		{Name: "automation_id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "trigger_type", Type: field.TypeEnum, Enums: []string{"webhook", "polling", "schedule_once", "schedule_recurring", "manual"}},
		{Name: "trigger_config", Type: field.TypeJSON, Nullable: true},
		{Name: "actions", Type: field.TypeJSON},
		{Name: "variables", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending_review", "active", "paused", "disabled"}, Default: "pending_review"},
		{Name: "active", Type: field.TypeBool, Default: false},
		{Name: "next_poll_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_poll_cursor", Type: field.TypeString, Nullable: true},
		{Name: "polling_interval_minutes", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AutomationsTable holds the schema information for the "automations" table.
	AutomationsTable = &schema.Table{
		Name:       "automations",
		Columns:    AutomationsColumns,
		PrimaryKey: []*schema.Column{AutomationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "automation_owner_id",
				Unique:  false,
				Columns: []*schema.Column{AutomationsColumns[1]},
			},
			{
				Name:    "automation_trigger_type",
				Unique:  false,
				Columns: []*schema.Column{AutomationsColumns[3]},
			},
			{
				Name:    "automation_owner_id_trigger_type",
				Unique:  false,
				Columns: []*schema.Column{AutomationsColumns[1], AutomationsColumns[3]},
			},
			{
				Name:    "automation_active_trigger_type",
				Unique:  false,
				Columns: []*schema.Column{AutomationsColumns[8], AutomationsColumns[3]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "service", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString},
		{Name: "event_id", Type: field.TypeString},
		{Name: "event_data", Type: field.TypeJSON},
		{Name: "processed", Type: field.TypeBool, Default: false},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_service_event_id_owner_id",
				Unique:  true,
				Columns: []*schema.Column{EventsColumns[2], EventsColumns[4], EventsColumns[1]},
			},
			{
				Name:    "event_processed_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[6], EventsColumns[8]},
			},
			{
				Name:    "event_owner_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
		},
	}
	// ExecutionLogsColumns holds the columns for the "execution_logs" table.
	ExecutionLogsColumns = []*schema.Column{
		{Name: "log_id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "trigger_type", Type: field.TypeString},
		{Name: "trigger_data", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "partial_failure", "failed", "usage_limit_exceeded"}, Default: "running"},
		{Name: "actions_executed", Type: field.TypeInt, Default: 0},
		{Name: "actions_failed", Type: field.TypeInt, Default: 0},
		{Name: "action_results", Type: field.TypeJSON, Nullable: true},
		{Name: "error_summary", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "automation_id", Type: field.TypeString},
	}
	// ExecutionLogsTable holds the schema information for the "execution_logs" table.
	ExecutionLogsTable = &schema.Table{
		Name:       "execution_logs",
		Columns:    ExecutionLogsColumns,
		PrimaryKey: []*schema.Column{ExecutionLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "execution_logs_automations_execution_logs",
				Columns:    []*schema.Column{ExecutionLogsColumns[12]},
				RefColumns: []*schema.Column{AutomationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "executionlog_automation_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionLogsColumns[12], ExecutionLogsColumns[9]},
			},
			{
				Name:    "executionlog_automation_id_trigger_type_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionLogsColumns[12], ExecutionLogsColumns[2], ExecutionLogsColumns[9]},
			},
			{
				Name:    "executionlog_owner_id",
				Unique:  false,
				Columns: []*schema.Column{ExecutionLogsColumns[1]},
			},
			{
				Name:    "executionlog_status",
				Unique:  false,
				Columns: []*schema.Column{ExecutionLogsColumns[4]},
			},
		},
	}
	// IntegrationsColumns holds the columns for the "integrations" table.
	IntegrationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "service", Type: field.TypeString},
		{Name: "workspace_id", Type: field.TypeString, Nullable: true},
		{Name: "access_token", Type: field.TypeString},
		{Name: "refresh_token", Type: field.TypeString, Nullable: true},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_gmail_history_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// IntegrationsTable holds the schema information for the "integrations" table.
	IntegrationsTable = &schema.Table{
		Name:       "integrations",
		Columns:    IntegrationsColumns,
		PrimaryKey: []*schema.Column{IntegrationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "integration_owner_id_service",
				Unique:  true,
				Columns: []*schema.Column{IntegrationsColumns[1], IntegrationsColumns[2]},
			},
			{
				Name:    "integration_service_workspace_id",
				Unique:  false,
				Columns: []*schema.Column{IntegrationsColumns[2], IntegrationsColumns[3]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString},
		{Name: "timezone", Type: field.TypeString, Default: "UTC"},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AutomationsTable,
		EventsTable,
		ExecutionLogsTable,
		IntegrationsTable,
		UsersTable,
	}
)

func init() {
	ExecutionLogsTable.ForeignKeys[0].RefTable = AutomationsTable
}
