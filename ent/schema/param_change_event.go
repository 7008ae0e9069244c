package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ParamChangeEvent records a simulation parameter adjustment made by the
// teacher to demonstrate a concept.
type ParamChangeEvent struct {
	ent.Schema
}

func (ParamChangeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ParamChangeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("parameter").
			NotEmpty().
			Comment("Simulation parameter name"),
		field.String("old_value").
			Comment("Value before the change, formatted"),
		field.String("new_value").
			Comment("Value after the change, formatted"),
		field.String("reason").
			Comment("Why the teacher changed it"),
		field.String("understanding_before").
			Comment("Learner level when the change was made"),
		field.Bool("was_effective").
			Default(false).
			Comment("Set once the learner's level rises after the change"),
	}
}

func (ParamChangeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("parameter"),
	}
}
