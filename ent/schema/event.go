package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for a queued inbound event produced by
// webhook ingress or the poller. The (service, event_id, owner_id) tuple is
// the engine's deduplication key.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("owner_id"),
		field.String("service").
			Comment("Source service (e.g., 'gmail', 'slack', 'oura')"),
		field.String("event_type"),
		field.String("event_id").
			Comment("Unique per source; synthesized {service}_{id}_{timestamp} for batch polls"),
		field.JSON("event_data", map[string]interface{}{}).
			Comment("Payload exposed to the executor as trigger_data"),
		field.Bool("processed").
			Default(false),
		field.Int("retry_count").
			Default(0),
		field.Time("created_at").
			Default(time.Now),
		field.Time("processed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		// Deduplication key — duplicate inserts are swallowed by the queue.
		index.Fields("service", "event_id", "owner_id").
			Unique(),
		index.Fields("processed", "created_at"),
		index.Fields("owner_id"),
	}
}
