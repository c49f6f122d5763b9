// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/jobprep/ent/interviewevent"
)

// InterviewEvent is the model entity for the InterviewEvent schema.
type InterviewEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID of the interview session
	SessionID string `json:"session_id,omitempty"`
	// Lifecycle action: started, timer_expired, completed, finalized
	Action string `json:"action,omitempty"`
	// Role the session rehearsed
	JobTitle string `json:"job_title,omitempty"`
	// behavioral, technical, or mixed
	InterviewType string `json:"interview_type,omitempty"`
	// entry, mid, or senior
	Difficulty string `json:"difficulty,omitempty"`
	// QuestionsTotal holds the value of the "questions_total" field.
	QuestionsTotal int `json:"questions_total,omitempty"`
	// Evaluated answers; skips excluded
	QuestionsAnswered int `json:"questions_answered,omitempty"`
	// QuestionsSkipped holds the value of the "questions_skipped" field.
	QuestionsSkipped int `json:"questions_skipped,omitempty"`
	// Rounded average over evaluated answers
	AverageScore int `json:"average_score,omitempty"`
	// BestScore holds the value of the "best_score" field.
	BestScore int `json:"best_score,omitempty"`
	// excellent, good, average, or poor
	Classification string `json:"classification,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InterviewEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case interviewevent.FieldID, interviewevent.FieldSequence, interviewevent.FieldQuestionsTotal, interviewevent.FieldQuestionsAnswered, interviewevent.FieldQuestionsSkipped, interviewevent.FieldAverageScore, interviewevent.FieldBestScore:
			values[i] = new(sql.NullInt64)
		case interviewevent.FieldSessionID, interviewevent.FieldAction, interviewevent.FieldJobTitle, interviewevent.FieldInterviewType, interviewevent.FieldDifficulty, interviewevent.FieldClassification:
			values[i] = new(sql.NullString)
		case interviewevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InterviewEvent fields.
func (_m *InterviewEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case interviewevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case interviewevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case interviewevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case interviewevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case interviewevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case interviewevent.FieldJobTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_title", values[i])
			} else if value.Valid {
				_m.JobTitle = value.String
			}
		case interviewevent.FieldInterviewType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field interview_type", values[i])
			} else if value.Valid {
				_m.InterviewType = value.String
			}
		case interviewevent.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case interviewevent.FieldQuestionsTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field questions_total", values[i])
			} else if value.Valid {
				_m.QuestionsTotal = int(value.Int64)
			}
		case interviewevent.FieldQuestionsAnswered:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field questions_answered", values[i])
			} else if value.Valid {
				_m.QuestionsAnswered = int(value.Int64)
			}
		case interviewevent.FieldQuestionsSkipped:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field questions_skipped", values[i])
			} else if value.Valid {
				_m.QuestionsSkipped = int(value.Int64)
			}
		case interviewevent.FieldAverageScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field average_score", values[i])
			} else if value.Valid {
				_m.AverageScore = int(value.Int64)
			}
		case interviewevent.FieldBestScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field best_score", values[i])
			} else if value.Valid {
				_m.BestScore = int(value.Int64)
			}
		case interviewevent.FieldClassification:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field classification", values[i])
			} else if value.Valid {
				_m.Classification = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InterviewEvent.
// This includes values selected through modifiers, order, etc.
func (_m *InterviewEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this InterviewEvent.
// Note that you need to call InterviewEvent.Unwrap() before calling this method if this InterviewEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InterviewEvent) Update() *InterviewEventUpdateOne {
	return NewInterviewEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InterviewEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InterviewEvent) Unwrap() *InterviewEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InterviewEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InterviewEvent) String() string {
	var builder strings.Builder
	builder.WriteString("InterviewEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("job_title=")
	builder.WriteString(_m.JobTitle)
	builder.WriteString(", ")
	builder.WriteString("interview_type=")
	builder.WriteString(_m.InterviewType)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(_m.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("questions_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionsTotal))
	builder.WriteString(", ")
	builder.WriteString("questions_answered=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionsAnswered))
	builder.WriteString(", ")
	builder.WriteString("questions_skipped=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionsSkipped))
	builder.WriteString(", ")
	builder.WriteString("average_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.AverageScore))
	builder.WriteString(", ")
	builder.WriteString("best_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.BestScore))
	builder.WriteString(", ")
	builder.WriteString("classification=")
	builder.WriteString(_m.Classification)
	builder.WriteByte(')')
	return builder.String()
}

// InterviewEvents is a parsable slice of InterviewEvent.
type InterviewEvents []*InterviewEvent
