// Code generated by ent, DO NOT EDIT.

package interviewevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the interviewevent type in the database.
	Label = "interview_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldJobTitle holds the string denoting the job_title field in the database.
	FieldJobTitle = "job_title"
	// FieldInterviewType holds the string denoting the interview_type field in the database.
	FieldInterviewType = "interview_type"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldQuestionsTotal holds the string denoting the questions_total field in the database.
	FieldQuestionsTotal = "questions_total"
	// FieldQuestionsAnswered holds the string denoting the questions_answered field in the database.
	FieldQuestionsAnswered = "questions_answered"
	// FieldQuestionsSkipped holds the string denoting the questions_skipped field in the database.
	FieldQuestionsSkipped = "questions_skipped"
	// FieldAverageScore holds the string denoting the average_score field in the database.
	FieldAverageScore = "average_score"
	// FieldBestScore holds the string denoting the best_score field in the database.
	FieldBestScore = "best_score"
	// FieldClassification holds the string denoting the classification field in the database.
	FieldClassification = "classification"
	// Table holds the table name of the interviewevent in the database.
	Table = "interview_events"
)

// Columns holds all SQL columns for interviewevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldAction,
	FieldJobTitle,
	FieldInterviewType,
	FieldDifficulty,
	FieldQuestionsTotal,
	FieldQuestionsAnswered,
	FieldQuestionsSkipped,
	FieldAverageScore,
	FieldBestScore,
	FieldClassification,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultJobTitle holds the default value on creation for the "job_title" field.
	DefaultJobTitle string
	// DefaultInterviewType holds the default value on creation for the "interview_type" field.
	DefaultInterviewType string
	// DefaultDifficulty holds the default value on creation for the "difficulty" field.
	DefaultDifficulty string
	// DefaultQuestionsTotal holds the default value on creation for the "questions_total" field.
	DefaultQuestionsTotal int
	// DefaultQuestionsAnswered holds the default value on creation for the "questions_answered" field.
	DefaultQuestionsAnswered int
	// DefaultQuestionsSkipped holds the default value on creation for the "questions_skipped" field.
	DefaultQuestionsSkipped int
	// DefaultAverageScore holds the default value on creation for the "average_score" field.
	DefaultAverageScore int
	// DefaultBestScore holds the default value on creation for the "best_score" field.
	DefaultBestScore int
	// DefaultClassification holds the default value on creation for the "classification" field.
	DefaultClassification string
)

// OrderOption defines the ordering options for the InterviewEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByJobTitle orders the results by the job_title field.
func ByJobTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobTitle, opts...).ToFunc()
}

// ByInterviewType orders the results by the interview_type field.
func ByInterviewType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInterviewType, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByQuestionsTotal orders the results by the questions_total field.
func ByQuestionsTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsTotal, opts...).ToFunc()
}

// ByQuestionsAnswered orders the results by the questions_answered field.
func ByQuestionsAnswered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsAnswered, opts...).ToFunc()
}

// ByQuestionsSkipped orders the results by the questions_skipped field.
func ByQuestionsSkipped(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsSkipped, opts...).ToFunc()
}

// ByAverageScore orders the results by the average_score field.
func ByAverageScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAverageScore, opts...).ToFunc()
}

// ByBestScore orders the results by the best_score field.
func ByBestScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBestScore, opts...).ToFunc()
}

// ByClassification orders the results by the classification field.
func ByClassification(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClassification, opts...).ToFunc()
}
