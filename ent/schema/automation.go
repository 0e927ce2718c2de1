package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Automation holds the schema definition for an authored automation record.
// The record is the single source of truth for all runtime decisions.
type Automation struct {
	ent.Schema
}

// Fields of the Automation.
func (Automation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("automation_id").
			Unique().
			Immutable(),
		field.String("owner_id").
			Comment("User who owns this automation"),
		field.String("name"),
		field.Enum("trigger_type").
			Values("webhook", "polling", "schedule_once", "schedule_recurring", "manual"),
		field.JSON("trigger_config", map[string]interface{}{}).
			Optional().
			Comment("Trigger-type-dependent configuration"),
		field.JSON("actions", []map[string]interface{}{}).
			Comment("Ordered declarative action list"),
		field.JSON("variables", map[string]interface{}{}).
			Optional().
			Comment("User-defined template variables"),
		field.Enum("status").
			Values("pending_review", "active", "paused", "disabled").
			Default("pending_review"),
		field.Bool("active").
			Default(false).
			Comment("Runtime gate; automations with active=false are never executed"),
		field.Time("next_poll_at").
			Optional().
			Nillable().
			Comment("Next poll due time (polling trigger only)"),
		field.String("last_poll_cursor").
			Optional().
			Nillable().
			Comment("Opaque cursor: ISO date, numeric ts, RFC 2822 date, or value signature"),
		field.Int("polling_interval_minutes").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Automation.
func (Automation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("execution_logs", ExecutionLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Automation.
// The polling-optimized partial index is created in migration SQL
// (see pkg/database/migrations) — ent cannot express the WHERE clause
// over the enum column directly.
func (Automation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
		index.Fields("trigger_type"),
		index.Fields("owner_id", "trigger_type"),
		index.Fields("active", "trigger_type"),
	}
}
