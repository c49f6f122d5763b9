package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	RequestBody  string
	ResponseBody string
	ErrorMessage string
}

// InterviewEventData captures one session lifecycle transition. Summary
// fields are zero except for the finalized action.
type InterviewEventData struct {
	SessionID         string
	Action            string
	JobTitle          string
	InterviewType     string
	Difficulty        string
	QuestionsTotal    int
	QuestionsAnswered int
	QuestionsSkipped  int
	AverageScore      int
	BestScore         int
	Classification    string
}

// AnswerEventData captures the resolution of one question slot.
type AnswerEventData struct {
	SessionID     string
	QuestionID    string
	QuestionIndex int
	Category      string
	Difficulty    int
	QuestionText  string
	AnswerText    string
	Score         int
	Skipped       bool
	TimeMs        int64
}

// LLMEvent is the read model for a recorded LLM request.
type LLMEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	RequestBody  string
	ResponseBody string
	ErrorMessage string
}

// InterviewRecord is the read model for a recorded interview event.
type InterviewRecord struct {
	ID                int
	Sequence          int64
	Timestamp         time.Time
	SessionID         string
	Action            string
	JobTitle          string
	InterviewType     string
	Difficulty        string
	QuestionsTotal    int
	QuestionsAnswered int
	QuestionsSkipped  int
	AverageScore      int
	BestScore         int
	Classification    string
}

// UsageStat aggregates LLM usage for one purpose or model.
type UsageStat struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendInterviewEvent records a session lifecycle event.
	AppendInterviewEvent(ctx context.Context, data InterviewEventData) error

	// AppendAnswerEvent records an answered or skipped question.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// QueryLLMEvents returns recorded LLM requests, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one LLM request by ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// QueryInterviewEvents returns session lifecycle events, newest first.
	QueryInterviewEvents(ctx context.Context, opts QueryOpts) ([]InterviewRecord, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]UsageStat, error)

	// LLMUsageByModel aggregates token usage per model ID.
	LLMUsageByModel(ctx context.Context) ([]UsageStat, error)
}
