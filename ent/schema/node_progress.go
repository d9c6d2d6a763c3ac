package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// NodeProgress marks one completed subtopic of a roadmap. A passed
// test-out appends a synthetic full-completion mark; specialization
// choices are stored as a "chosen:<track>" mark on the hub node, so
// year status stays a pure function of this table.
type NodeProgress struct {
	ent.Schema
}

func (NodeProgress) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (NodeProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("roadmap_id").
			NotEmpty(),
		field.String("node_id").
			NotEmpty().
			Comment("Subtopic identifier within the roadmap"),
	}
}

func (NodeProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "roadmap_id", "node_id").
			Unique(),
	}
}
