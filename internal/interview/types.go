// Package interview implements the mock-interview session engine: question
// generation, answer evaluation, per-session state transitions, question
// timers, and final scoring.
package interview

import (
	"strings"
	"sync"
	"time"
)

// Interview types. Unknown values normalize to TypeMixed.
const (
	TypeBehavioral = "behavioral"
	TypeTechnical  = "technical"
	TypeMixed      = "mixed"
)

// Difficulty levels. Unknown values normalize to DifficultyMid.
const (
	DifficultyEntry  = "entry"
	DifficultyMid    = "mid"
	DifficultySenior = "senior"
)

// Question categories as produced by the generator.
const (
	CategoryBehavioral  = "behavioral"
	CategoryTechnical   = "technical"
	CategorySituational = "situational"
)

const (
	// DefaultQuestionCount is used when the caller does not ask for a count.
	DefaultQuestionCount = 5
	// MaxQuestionCount caps a single session.
	MaxQuestionCount = 10
	// DefaultTimeLimit is the per-question answer window.
	DefaultTimeLimit = 120 * time.Second
	// MaxListedPoints caps strengths and improvements per evaluation.
	MaxListedPoints = 5
)

// Criteria describes the interview the candidate wants to rehearse.
type Criteria struct {
	JobTitle       string
	CompanyName    string
	JobDescription string
	ResumeSummary  string
	InterviewType  string
	Difficulty     string
	QuestionCount  int
	FocusAreas     []string
}

// Normalize returns a copy with unknown enum values and out-of-range counts
// coerced to safe defaults. It does not touch JobTitle; Validate enforces
// required fields.
func (c Criteria) Normalize() Criteria {
	switch strings.ToLower(strings.TrimSpace(c.InterviewType)) {
	case TypeBehavioral:
		c.InterviewType = TypeBehavioral
	case TypeTechnical:
		c.InterviewType = TypeTechnical
	default:
		c.InterviewType = TypeMixed
	}

	switch strings.ToLower(strings.TrimSpace(c.Difficulty)) {
	case DifficultyEntry:
		c.Difficulty = DifficultyEntry
	case DifficultySenior:
		c.Difficulty = DifficultySenior
	default:
		c.Difficulty = DifficultyMid
	}

	if c.QuestionCount == 0 {
		c.QuestionCount = DefaultQuestionCount
	}
	if c.QuestionCount < 1 {
		c.QuestionCount = 1
	}
	if c.QuestionCount > MaxQuestionCount {
		c.QuestionCount = MaxQuestionCount
	}

	return c
}

// Validate checks required fields. Call after Normalize.
func (c Criteria) Validate() error {
	if strings.TrimSpace(c.JobTitle) == "" {
		return &ValidationError{Field: "job_title", Reason: "must not be empty"}
	}
	return nil
}

// Question is a single interview question prepared for the candidate.
type Question struct {
	ID             string
	Prompt         string
	Category       string
	Difficulty     int // 1 (warm-up) to 5 (hard)
	Hint           string
	TimeLimit      time.Duration
	ExpectedTopics []string
}

// Evaluation is the structured assessment of one answer.
type Evaluation struct {
	Score        int // 0-100
	Feedback     string
	Strengths    []string
	Improvements []string
	ModelAnswer  string
}

// AnswerRecord is the engine's record of one question slot: either an
// evaluated answer or an explicit skip.
type AnswerRecord struct {
	QuestionID    string
	QuestionIndex int
	AnswerText    string
	Evaluation    *Evaluation
	Skipped       bool
	SubmittedAt   time.Time
}

// Status is the session lifecycle state.
type Status string

const (
	// StatusSetup: the session exists but questions are not ready yet.
	StatusSetup Status = "setup"
	// StatusQuestionActive: a question is presented and its timer running.
	StatusQuestionActive Status = "question_active"
	// StatusEvaluating: an answer was submitted; evaluation pending or the
	// last evaluation attempt failed and the candidate may retry or skip.
	StatusEvaluating Status = "evaluating"
	// StatusCompleted: every question slot is resolved.
	StatusCompleted Status = "completed"
)

// Session holds the full state of one mock interview. The mutex serializes
// all operations on the session; distinct sessions run concurrently.
type Session struct {
	mu sync.Mutex

	ID        string
	Criteria  Criteria
	Questions []Question
	Answers   []AnswerRecord

	Status            Status
	Index             int // current question index
	TimerExpired      bool
	CreatedAt         time.Time
	QuestionStartedAt time.Time
}

// current returns the active question, or nil when the session is done.
// Callers must hold s.mu.
func (s *Session) current() *Question {
	if s.Index < 0 || s.Index >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.Index]
}

// Snapshot is a read-only view of a session for the presentation layer.
type Snapshot struct {
	SessionID       string
	Status          Status
	QuestionIndex   int
	TotalQuestions  int
	CurrentQuestion *Question
	Elapsed         time.Duration
	Remaining       time.Duration
	TimerExpired    bool
	Answered        int
	Skipped         int
}

// Summary is the final report produced by Finalize.
type Summary struct {
	SessionID         string
	JobTitle          string
	QuestionsTotal    int
	QuestionsAnswered int
	QuestionsSkipped  int
	AverageScore      int
	BestScore         int
	Classification    string
	CompletedAt       time.Time
}
