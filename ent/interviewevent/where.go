// Code generated by ent, DO NOT EDIT.

package interviewevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/jobprep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldSessionID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldAction, v))
}

// JobTitle applies equality check predicate on the "job_title" field. It's identical to JobTitleEQ.
func JobTitle(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldJobTitle, v))
}

// InterviewType applies equality check predicate on the "interview_type" field. It's identical to InterviewTypeEQ.
func InterviewType(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldInterviewType, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldDifficulty, v))
}

// QuestionsTotal applies equality check predicate on the "questions_total" field. It's identical to QuestionsTotalEQ.
func QuestionsTotal(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldQuestionsTotal, v))
}

// QuestionsAnswered applies equality check predicate on the "questions_answered" field. It's identical to QuestionsAnsweredEQ.
func QuestionsAnswered(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldQuestionsAnswered, v))
}

// QuestionsSkipped applies equality check predicate on the "questions_skipped" field. It's identical to QuestionsSkippedEQ.
func QuestionsSkipped(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldQuestionsSkipped, v))
}

// AverageScore applies equality check predicate on the "average_score" field. It's identical to AverageScoreEQ.
func AverageScore(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldAverageScore, v))
}

// BestScore applies equality check predicate on the "best_score" field. It's identical to BestScoreEQ.
func BestScore(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldBestScore, v))
}

// Classification applies equality check predicate on the "classification" field. It's identical to ClassificationEQ.
func Classification(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldClassification, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldContainsFold(FieldAction, v))
}

// JobTitleEQ applies the EQ predicate on the "job_title" field.
func JobTitleEQ(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldJobTitle, v))
}

// JobTitleNEQ applies the NEQ predicate on the "job_title" field.
func JobTitleNEQ(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldJobTitle, v))
}

// JobTitleIn applies the In predicate on the "job_title" field.
func JobTitleIn(vs ...string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldJobTitle, vs...))
}

// JobTitleNotIn applies the NotIn predicate on the "job_title" field.
func JobTitleNotIn(vs ...string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldJobTitle, vs...))
}

// JobTitleGT applies the GT predicate on the "job_title" field.
func JobTitleGT(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldJobTitle, v))
}

// JobTitleGTE applies the GTE predicate on the "job_title" field.
func JobTitleGTE(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldJobTitle, v))
}

// JobTitleLT applies the LT predicate on the "job_title" field.
func JobTitleLT(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldJobTitle, v))
}

// JobTitleLTE applies the LTE predicate on the "job_title" field.
func JobTitleLTE(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldJobTitle, v))
}

// JobTitleContains applies the Contains predicate on the "job_title" field.
func JobTitleContains(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldContains(FieldJobTitle, v))
}

// JobTitleHasPrefix applies the HasPrefix predicate on the "job_title" field.
func JobTitleHasPrefix(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldHasPrefix(FieldJobTitle, v))
}

// JobTitleHasSuffix applies the HasSuffix predicate on the "job_title" field.
func JobTitleHasSuffix(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldHasSuffix(FieldJobTitle, v))
}

// JobTitleEqualFold applies the EqualFold predicate on the "job_title" field.
func JobTitleEqualFold(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEqualFold(FieldJobTitle, v))
}

// JobTitleContainsFold applies the ContainsFold predicate on the "job_title" field.
func JobTitleContainsFold(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldContainsFold(FieldJobTitle, v))
}

// InterviewTypeEQ applies the EQ predicate on the "interview_type" field.
func InterviewTypeEQ(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldInterviewType, v))
}

// InterviewTypeNEQ applies the NEQ predicate on the "interview_type" field.
func InterviewTypeNEQ(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldInterviewType, v))
}

// InterviewTypeIn applies the In predicate on the "interview_type" field.
func InterviewTypeIn(vs ...string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldInterviewType, vs...))
}

// InterviewTypeNotIn applies the NotIn predicate on the "interview_type" field.
func InterviewTypeNotIn(vs ...string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldInterviewType, vs...))
}

// InterviewTypeGT applies the GT predicate on the "interview_type" field.
func InterviewTypeGT(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldInterviewType, v))
}

// InterviewTypeGTE applies the GTE predicate on the "interview_type" field.
func InterviewTypeGTE(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldInterviewType, v))
}

// InterviewTypeLT applies the LT predicate on the "interview_type" field.
func InterviewTypeLT(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldInterviewType, v))
}

// InterviewTypeLTE applies the LTE predicate on the "interview_type" field.
func InterviewTypeLTE(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldInterviewType, v))
}

// InterviewTypeContains applies the Contains predicate on the "interview_type" field.
func InterviewTypeContains(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldContains(FieldInterviewType, v))
}

// InterviewTypeHasPrefix applies the HasPrefix predicate on the "interview_type" field.
func InterviewTypeHasPrefix(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldHasPrefix(FieldInterviewType, v))
}

// InterviewTypeHasSuffix applies the HasSuffix predicate on the "interview_type" field.
func InterviewTypeHasSuffix(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldHasSuffix(FieldInterviewType, v))
}

// InterviewTypeEqualFold applies the EqualFold predicate on the "interview_type" field.
func InterviewTypeEqualFold(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEqualFold(FieldInterviewType, v))
}

// InterviewTypeContainsFold applies the ContainsFold predicate on the "interview_type" field.
func InterviewTypeContainsFold(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldContainsFold(FieldInterviewType, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldContainsFold(FieldDifficulty, v))
}

// QuestionsTotalEQ applies the EQ predicate on the "questions_total" field.
func QuestionsTotalEQ(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldQuestionsTotal, v))
}

// QuestionsTotalNEQ applies the NEQ predicate on the "questions_total" field.
func QuestionsTotalNEQ(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldQuestionsTotal, v))
}

// QuestionsTotalIn applies the In predicate on the "questions_total" field.
func QuestionsTotalIn(vs ...int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldQuestionsTotal, vs...))
}

// QuestionsTotalNotIn applies the NotIn predicate on the "questions_total" field.
func QuestionsTotalNotIn(vs ...int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldQuestionsTotal, vs...))
}

// QuestionsTotalGT applies the GT predicate on the "questions_total" field.
func QuestionsTotalGT(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldQuestionsTotal, v))
}

// QuestionsTotalGTE applies the GTE predicate on the "questions_total" field.
func QuestionsTotalGTE(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldQuestionsTotal, v))
}

// QuestionsTotalLT applies the LT predicate on the "questions_total" field.
func QuestionsTotalLT(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldQuestionsTotal, v))
}

// QuestionsTotalLTE applies the LTE predicate on the "questions_total" field.
func QuestionsTotalLTE(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldQuestionsTotal, v))
}

// QuestionsAnsweredEQ applies the EQ predicate on the "questions_answered" field.
func QuestionsAnsweredEQ(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredNEQ applies the NEQ predicate on the "questions_answered" field.
func QuestionsAnsweredNEQ(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredIn applies the In predicate on the "questions_answered" field.
func QuestionsAnsweredIn(vs ...int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldQuestionsAnswered, vs...))
}

// QuestionsAnsweredNotIn applies the NotIn predicate on the "questions_answered" field.
func QuestionsAnsweredNotIn(vs ...int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldQuestionsAnswered, vs...))
}

// QuestionsAnsweredGT applies the GT predicate on the "questions_answered" field.
func QuestionsAnsweredGT(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredGTE applies the GTE predicate on the "questions_answered" field.
func QuestionsAnsweredGTE(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredLT applies the LT predicate on the "questions_answered" field.
func QuestionsAnsweredLT(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredLTE applies the LTE predicate on the "questions_answered" field.
func QuestionsAnsweredLTE(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldQuestionsAnswered, v))
}

// QuestionsSkippedEQ applies the EQ predicate on the "questions_skipped" field.
func QuestionsSkippedEQ(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldQuestionsSkipped, v))
}

// QuestionsSkippedNEQ applies the NEQ predicate on the "questions_skipped" field.
func QuestionsSkippedNEQ(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldQuestionsSkipped, v))
}

// QuestionsSkippedIn applies the In predicate on the "questions_skipped" field.
func QuestionsSkippedIn(vs ...int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldQuestionsSkipped, vs...))
}

// QuestionsSkippedNotIn applies the NotIn predicate on the "questions_skipped" field.
func QuestionsSkippedNotIn(vs ...int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldQuestionsSkipped, vs...))
}

// QuestionsSkippedGT applies the GT predicate on the "questions_skipped" field.
func QuestionsSkippedGT(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldQuestionsSkipped, v))
}

// QuestionsSkippedGTE applies the GTE predicate on the "questions_skipped" field.
func QuestionsSkippedGTE(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldQuestionsSkipped, v))
}

// QuestionsSkippedLT applies the LT predicate on the "questions_skipped" field.
func QuestionsSkippedLT(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldQuestionsSkipped, v))
}

// QuestionsSkippedLTE applies the LTE predicate on the "questions_skipped" field.
func QuestionsSkippedLTE(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldQuestionsSkipped, v))
}

// AverageScoreEQ applies the EQ predicate on the "average_score" field.
func AverageScoreEQ(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldAverageScore, v))
}

// AverageScoreNEQ applies the NEQ predicate on the "average_score" field.
func AverageScoreNEQ(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldAverageScore, v))
}

// AverageScoreIn applies the In predicate on the "average_score" field.
func AverageScoreIn(vs ...int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldAverageScore, vs...))
}

// AverageScoreNotIn applies the NotIn predicate on the "average_score" field.
func AverageScoreNotIn(vs ...int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldAverageScore, vs...))
}

// AverageScoreGT applies the GT predicate on the "average_score" field.
func AverageScoreGT(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldAverageScore, v))
}

// AverageScoreGTE applies the GTE predicate on the "average_score" field.
func AverageScoreGTE(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldAverageScore, v))
}

// AverageScoreLT applies the LT predicate on the "average_score" field.
func AverageScoreLT(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldAverageScore, v))
}

// AverageScoreLTE applies the LTE predicate on the "average_score" field.
func AverageScoreLTE(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldAverageScore, v))
}

// BestScoreEQ applies the EQ predicate on the "best_score" field.
func BestScoreEQ(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldBestScore, v))
}

// BestScoreNEQ applies the NEQ predicate on the "best_score" field.
func BestScoreNEQ(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldBestScore, v))
}

// BestScoreIn applies the In predicate on the "best_score" field.
func BestScoreIn(vs ...int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldBestScore, vs...))
}

// BestScoreNotIn applies the NotIn predicate on the "best_score" field.
func BestScoreNotIn(vs ...int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldBestScore, vs...))
}

// BestScoreGT applies the GT predicate on the "best_score" field.
func BestScoreGT(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldBestScore, v))
}

// BestScoreGTE applies the GTE predicate on the "best_score" field.
func BestScoreGTE(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldBestScore, v))
}

// BestScoreLT applies the LT predicate on the "best_score" field.
func BestScoreLT(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldBestScore, v))
}

// BestScoreLTE applies the LTE predicate on the "best_score" field.
func BestScoreLTE(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldBestScore, v))
}

// ClassificationEQ applies the EQ predicate on the "classification" field.
func ClassificationEQ(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldClassification, v))
}

// ClassificationNEQ applies the NEQ predicate on the "classification" field.
func ClassificationNEQ(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldClassification, v))
}

// ClassificationIn applies the In predicate on the "classification" field.
func ClassificationIn(vs ...string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldClassification, vs...))
}

// ClassificationNotIn applies the NotIn predicate on the "classification" field.
func ClassificationNotIn(vs ...string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldClassification, vs...))
}

// ClassificationGT applies the GT predicate on the "classification" field.
func ClassificationGT(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldClassification, v))
}

// ClassificationGTE applies the GTE predicate on the "classification" field.
func ClassificationGTE(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldClassification, v))
}

// ClassificationLT applies the LT predicate on the "classification" field.
func ClassificationLT(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldClassification, v))
}

// ClassificationLTE applies the LTE predicate on the "classification" field.
func ClassificationLTE(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldClassification, v))
}

// ClassificationContains applies the Contains predicate on the "classification" field.
func ClassificationContains(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldContains(FieldClassification, v))
}

// ClassificationHasPrefix applies the HasPrefix predicate on the "classification" field.
func ClassificationHasPrefix(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldHasPrefix(FieldClassification, v))
}

// ClassificationHasSuffix applies the HasSuffix predicate on the "classification" field.
func ClassificationHasSuffix(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldHasSuffix(FieldClassification, v))
}

// ClassificationEqualFold applies the EqualFold predicate on the "classification" field.
func ClassificationEqualFold(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEqualFold(FieldClassification, v))
}

// ClassificationContainsFold applies the ContainsFold predicate on the "classification" field.
func ClassificationContainsFold(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldContainsFold(FieldClassification, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InterviewEvent) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InterviewEvent) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InterviewEvent) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.NotPredicates(p))
}
