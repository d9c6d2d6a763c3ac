package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionSnapshot holds the resumable state of an in-progress quiz
// attempt: one live row per (user, roadmap), overwritten on every
// state change and deleted on submit. Unlike the record tables this
// one is mutable; it is a cache of the client's working state, not
// history.
type SessionSnapshot struct {
	ent.Schema
}

func (SessionSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("roadmap_id").
			NotEmpty(),
		field.Time("saved_at").
			Default(time.Now).
			Comment("Staleness anchor for the 30-minute resume TTL"),
		field.JSON("data", map[string]any{}).
			Comment("Full session state as JSON"),
	}
}

func (SessionSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "roadmap_id").
			Unique(),
		index.Fields("saved_at"),
	}
}
