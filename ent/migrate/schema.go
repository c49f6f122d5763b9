// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "question_index", Type: field.TypeInt},
		{Name: "category", Type: field.TypeString, Default: ""},
		{Name: "difficulty", Type: field.TypeInt, Default: 0},
		{Name: "question_text", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "answer_text", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "skipped", Type: field.TypeBool, Default: false},
		{Name: "time_ms", Type: field.TypeInt64, Default: 0},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_skipped",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[11]},
			},
		},
	}
	// InterviewEventsColumns holds the columns for the "interview_events" table.
	InterviewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "job_title", Type: field.TypeString, Default: ""},
		{Name: "interview_type", Type: field.TypeString, Default: ""},
		{Name: "difficulty", Type: field.TypeString, Default: ""},
		{Name: "questions_total", Type: field.TypeInt, Default: 0},
		{Name: "questions_answered", Type: field.TypeInt, Default: 0},
		{Name: "questions_skipped", Type: field.TypeInt, Default: 0},
		{Name: "average_score", Type: field.TypeInt, Default: 0},
		{Name: "best_score", Type: field.TypeInt, Default: 0},
		{Name: "classification", Type: field.TypeString, Default: ""},
	}
	// InterviewEventsTable holds the schema information for the "interview_events" table.
	InterviewEventsTable = &schema.Table{
		Name:       "interview_events",
		Columns:    InterviewEventsColumns,
		PrimaryKey: []*schema.Column{InterviewEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "interviewevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{InterviewEventsColumns[1]},
			},
			{
				Name:    "interviewevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{InterviewEventsColumns[2]},
			},
			{
				Name:    "interviewevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{InterviewEventsColumns[3]},
			},
			{
				Name:    "interviewevent_action",
				Unique:  false,
				Columns: []*schema.Column{InterviewEventsColumns[4]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		InterviewEventsTable,
		LlmRequestEventsTable,
	}
)

func init() {
}
