package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExecutionLog holds the schema definition for a per-run execution record.
type ExecutionLog struct {
	ent.Schema
}

// Fields of the ExecutionLog.
func (ExecutionLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("log_id").
			Unique().
			Immutable(),
		field.String("automation_id"),
		field.String("owner_id"),
		field.String("trigger_type").
			Comment("Trigger that caused the run; legacy value 'schedule' accepted in filters"),
		field.JSON("trigger_data", map[string]interface{}{}).
			Optional(),
		field.Enum("status").
			Values("running", "completed", "partial_failure", "failed", "usage_limit_exceeded").
			Default("running"),
		field.Int("actions_executed").
			Default(0),
		field.Int("actions_failed").
			Default(0),
		field.JSON("action_results", []map[string]interface{}{}).
			Optional(),
		field.String("error_summary").
			Optional().
			Nillable(),
		field.Time("started_at").
			Default(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("duration_ms").
			Optional(),
	}
}

// Edges of the ExecutionLog.
func (ExecutionLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("automation", Automation.Type).
			Ref("execution_logs").
			Field("automation_id").
			Unique().
			Required(),
	}
}

// Indexes of the ExecutionLog.
func (ExecutionLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("automation_id", "started_at"),
		index.Fields("automation_id", "trigger_type", "started_at"),
		index.Fields("owner_id"),
		index.Fields("status"),
	}
}
