package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizEvent records a generated quiz so it can be graded and analyzed later.
type QuizEvent struct {
	ent.Schema
}

func (QuizEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("quiz_id").
			NotEmpty().
			Comment("UUID assigned at generation time"),
		field.Int("requested").
			Comment("Question count asked for, after clamping"),
		field.Int("kept").
			Comment("Questions that survived validation"),
		field.Int("dropped").
			Default(0).
			Comment("Malformed questions discarded"),
		field.Int("mcq_count").
			Default(0).
			Comment("Multiple-choice questions kept"),
		field.Int("short_count").
			Default(0).
			Comment("Short-answer questions kept"),
		field.Int("source_chars").
			Default(0).
			Comment("Length of the source document in runes"),
		field.Text("items_json").
			Default("").
			Comment("Full quiz serialized as JSON"),
	}
}

func (QuizEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("quiz_id"),
	}
}
