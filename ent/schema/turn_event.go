package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TurnEvent records one full dialogue turn: the learner's utterance, the
// understanding assessment, the chosen teaching strategy, and the
// teacher's reply.
type TurnEvent struct {
	ent.Schema
}

func (TurnEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TurnEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.Int("concept_id").
			Comment("Concept under instruction during this turn"),
		field.String("concept_title").
			NotEmpty(),
		field.Int("exchange").
			Comment("1-based exchange count on this concept"),
		field.String("learner_utterance").
			NotEmpty(),
		field.String("understanding").
			NotEmpty().
			Comment("none, partial, mostly, or complete"),
		field.String("trend").
			Comment("improving, stagnating, or regressing"),
		field.String("strategy").
			Comment("Teaching strategy chosen for the reply"),
		field.String("tone").
			Comment("Tone directive for the reply"),
		field.String("teacher_message").
			Comment("Generated teacher reply"),
		field.Bool("concept_advanced").
			Default(false).
			Comment("Whether this turn completed the concept"),
		field.Bool("session_completed").
			Default(false).
			Comment("Whether this turn finished the last concept"),
	}
}

func (TurnEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("concept_id"),
		index.Fields("understanding"),
	}
}
