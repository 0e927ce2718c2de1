package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Integration holds the schema definition for a connected-service credential
// row. Webhook tenant resolution maps the external workspace identifier back
// to the internal owner via this table; when several owners share a workspace
// the oldest row wins.
type Integration struct {
	ent.Schema
}

// Fields of the Integration.
func (Integration) Fields() []ent.Field {
	return []ent.Field{
		field.String("owner_id"),
		field.String("service"),
		field.String("workspace_id").
			Optional().
			Comment("External tenant identifier (Slack team_id, Notion workspace.id, ...)"),
		field.String("access_token").
			Sensitive(),
		field.String("refresh_token").
			Optional().
			Sensitive(),
		field.Time("expires_at").
			Optional().
			Nillable(),
		field.String("last_gmail_history_id").
			Optional().
			Comment("Gmail history cursor for two-phase webhook filtering"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Integration.
func (Integration) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "service").
			Unique(),
		index.Fields("service", "workspace_id"),
	}
}
