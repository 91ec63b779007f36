package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single graded answer within a quiz attempt.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("quiz_id").
			NotEmpty().
			Comment("Links to QuizEvent"),
		field.Int("question_index").
			Comment("Zero-based position within the quiz"),
		field.String("question_type").
			NotEmpty().
			Comment("mcq or short"),
		field.String("question_text").
			NotEmpty().
			Comment("The question shown"),
		field.String("given_answer").
			Default("").
			Comment("What the learner entered or selected"),
		field.Bool("correct").
			Comment("Whether the answer was graded correct"),
		field.Float("score").
			Default(0).
			Comment("Rubric score in [0,1]; 0 or 1 for MCQ"),
		field.Int("rubric_hit").
			Default(0).
			Comment("Matched rubric keywords; 0 for MCQ"),
		field.Int("rubric_total").
			Default(0).
			Comment("Rubric keyword count; 0 for MCQ"),
		field.Int("time_ms").
			Default(0).
			Comment("Milliseconds to answer, 0 if unknown"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("quiz_id"),
		index.Fields("question_type"),
		index.Fields("correct"),
	}
}
