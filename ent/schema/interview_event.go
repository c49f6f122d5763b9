package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InterviewEvent records session lifecycle transitions and, for finalized
// sessions, the summary stats.
type InterviewEvent struct {
	ent.Schema
}

func (InterviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (InterviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Comment("UUID of the interview session"),
		field.String("action").
			Comment("Lifecycle action: started, timer_expired, completed, finalized"),
		field.String("job_title").
			Default("").
			Comment("Role the session rehearsed"),
		field.String("interview_type").
			Default("").
			Comment("behavioral, technical, or mixed"),
		field.String("difficulty").
			Default("").
			Comment("entry, mid, or senior"),
		field.Int("questions_total").
			Default(0),
		field.Int("questions_answered").
			Default(0).
			Comment("Evaluated answers; skips excluded"),
		field.Int("questions_skipped").
			Default(0),
		field.Int("average_score").
			Default(0).
			Comment("Rounded average over evaluated answers"),
		field.Int("best_score").
			Default(0),
		field.String("classification").
			Default("").
			Comment("excellent, good, average, or poor"),
	}
}

func (InterviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
