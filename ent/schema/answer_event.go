package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records the resolution of one question slot: an evaluated
// answer or an explicit skip.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Comment("UUID of the interview session"),
		field.String("question_id").
			Comment("UUID of the question"),
		field.Int("question_index").
			Comment("Zero-based position within the session"),
		field.String("category").
			Default("").
			Comment("behavioral, technical, or situational"),
		field.Int("difficulty").
			Default(0).
			Comment("1 (warm-up) to 5 (hard)"),
		field.Text("question_text").
			Default(""),
		field.Text("answer_text").
			Default("").
			Comment("Empty for skips"),
		field.Int("score").
			Default(0).
			Comment("0-100; meaningless when skipped"),
		field.Bool("skipped").
			Default(false),
		field.Int64("time_ms").
			Default(0).
			Comment("Wall-clock time the candidate spent on the question"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("skipped"),
	}
}
