package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// User holds the schema definition for the user profile exposed to
// executions under the reserved "user" context key.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("user_id").
			Unique().
			Immutable(),
		field.String("email"),
		field.String("timezone").
			Default("UTC"),
		field.String("name").
			Optional(),
		field.String("phone").
			Optional(),
		field.Time("created_at").
			Default(time.Now),
	}
}
