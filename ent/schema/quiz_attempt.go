package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizAttempt records one submitted quiz attempt. The attempt_id is
// the client's session ID and is unique, which makes submission
// idempotent at the storage layer.
type QuizAttempt struct {
	ent.Schema
}

func (QuizAttempt) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("Idempotency key: the quiz session ID"),
		field.String("roadmap_id").
			NotEmpty().
			Comment("Roadmap the quiz belongs to"),
		field.Int("score").
			Comment("Count of correct answers"),
		field.Int("total_questions"),
		field.Int("percentage").
			Comment("Rounded percent score"),
		field.Int("time_taken_minutes"),
		field.Bool("passed"),
		field.Bool("test_out").
			Default(false).
			Comment("Whether this was a test-out exam"),
		field.JSON("answers", []map[string]any{}).
			Comment("Canonical AnswerRecord list, one per question"),
	}
}

func (QuizAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("roadmap_id"),
		index.Fields("user_id", "roadmap_id"),
	}
}
