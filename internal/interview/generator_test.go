package interview

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/jobprep/internal/llm"
	"github.com/abhisek/jobprep/internal/resilient"
)

func fastExecutor() *resilient.Executor {
	return resilient.New(resilient.Config{
		MaxAttempts:    3,
		Backoff:        []time.Duration{time.Millisecond, time.Millisecond, time.Millisecond},
		AttemptTimeout: 100 * time.Millisecond,
	})
}

func questionListJSON(n int) json.RawMessage {
	type q struct {
		Prompt         string   `json:"prompt"`
		Category       string   `json:"category"`
		Difficulty     int      `json:"difficulty"`
		Hint           string   `json:"hint"`
		ExpectedTopics []string `json:"expected_topics"`
	}
	qs := make([]q, n)
	for i := range qs {
		qs[i] = q{
			Prompt:         "Tell me about a production incident you handled.",
			Category:       "behavioral",
			Difficulty:     3,
			Hint:           "Use the STAR method.",
			ExpectedTopics: []string{"ownership", "communication"},
		}
	}
	raw, _ := json.Marshal(map[string]any{"questions": qs})
	return raw
}

func TestGenerator_GenerateQuestions(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: questionListJSON(3)},
	)
	g := NewGenerator(mock, fastExecutor(), DefaultGenConfig())

	c := Criteria{JobTitle: "Backend Engineer", QuestionCount: 3}.Normalize()
	questions, err := g.GenerateQuestions(context.Background(), c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}
	for i, q := range questions {
		if q.ID == "" {
			t.Errorf("question %d missing ID", i)
		}
		if q.TimeLimit != DefaultTimeLimit {
			t.Errorf("question %d time limit = %s, want %s", i, q.TimeLimit, DefaultTimeLimit)
		}
		if q.Difficulty < 1 || q.Difficulty > 5 {
			t.Errorf("question %d difficulty out of range: %d", i, q.Difficulty)
		}
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.CallCount())
	}
	if mock.Calls[0].Schema != QuestionListSchema {
		t.Fatal("expected the question list schema on the request")
	}
}

func TestGenerator_SurplusQuestionsTrimmed(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: questionListJSON(7)},
	)
	g := NewGenerator(mock, fastExecutor(), DefaultGenConfig())

	c := Criteria{JobTitle: "SRE", QuestionCount: 5}.Normalize()
	questions, err := g.GenerateQuestions(context.Background(), c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(questions))
	}
}

func TestGenerator_ShortListRetriedOnceThenFails(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: questionListJSON(2)},
		llm.MockResponse{Content: questionListJSON(2)},
	)
	g := NewGenerator(mock, fastExecutor(), DefaultGenConfig())

	c := Criteria{JobTitle: "SRE", QuestionCount: 5}.Normalize()
	_, err := g.GenerateQuestions(context.Background(), c)

	var gerr *GenerationFailedError
	if !errors.As(err, &gerr) {
		t.Fatalf("expected GenerationFailedError, got %v", err)
	}
	// A short list is a malformed response: one retry, then give up.
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 provider calls, got %d", mock.CallCount())
	}

	var fe *resilient.FailureError
	if !errors.As(err, &fe) {
		t.Fatalf("expected wrapped FailureError, got %v", err)
	}
	if fe.Reason != resilient.ReasonNonRetryable {
		t.Fatalf("reason = %s, want %s", fe.Reason, resilient.ReasonNonRetryable)
	}
}

func TestGenerator_MalformedJSONFails(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{broken`)},
		llm.MockResponse{Content: json.RawMessage(`{broken`)},
	)
	g := NewGenerator(mock, fastExecutor(), DefaultGenConfig())

	c := Criteria{JobTitle: "SRE"}.Normalize()
	if _, err := g.GenerateQuestions(context.Background(), c); err == nil {
		t.Fatal("expected error for malformed response")
	}
}

func TestGenerator_TransientFailureRecovered(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
		llm.MockResponse{Content: questionListJSON(5)},
	)
	g := NewGenerator(mock, fastExecutor(), DefaultGenConfig())

	c := Criteria{JobTitle: "SRE"}.Normalize()
	questions, err := g.GenerateQuestions(context.Background(), c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(questions))
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 provider calls, got %d", mock.CallCount())
	}
}

func TestGenerator_DifficultyClamped(t *testing.T) {
	raw, _ := json.Marshal(map[string]any{
		"questions": []map[string]any{
			{"prompt": "Q", "category": "technical", "difficulty": 9, "hint": "", "expected_topics": []string{}},
		},
	})
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	g := NewGenerator(mock, fastExecutor(), DefaultGenConfig())

	c := Criteria{JobTitle: "SRE", QuestionCount: 1}.Normalize()
	questions, err := g.GenerateQuestions(context.Background(), c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if questions[0].Difficulty != 5 {
		t.Fatalf("difficulty = %d, want clamped 5", questions[0].Difficulty)
	}
}
