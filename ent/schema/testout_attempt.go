package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TestOutAttempt records one completed test-out exam. Append-only:
// cooldown and pass-memory checks read history, never a mutable flag.
type TestOutAttempt struct {
	ent.Schema
}

func (TestOutAttempt) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TestOutAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("card_slug").
			NotEmpty().
			Comment("Card the learner tried to test out of"),
		field.Time("completed_at").
			Immutable().
			Comment("When the attempt finished; the cooldown anchor"),
		field.Int("percentage"),
		field.Bool("passed"),
	}
}

func (TestOutAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "card_slug"),
	}
}
