package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records tutoring session lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.String("simulation_id").
			NotEmpty().
			Comment("Simulation the session teaches with"),
		field.Int("concepts_total").
			Default(0).
			Comment("Number of concepts in the lesson plan"),
		field.Int("concepts_completed").
			Default(0).
			Comment("Concepts completed (on end only)"),
		field.Int("exchanges_total").
			Default(0).
			Comment("Total learner exchanges (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
