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

func evalJSON(score int) json.RawMessage {
	raw, _ := json.Marshal(map[string]any{
		"score":        score,
		"feedback":     "Clear structure, but quantify the impact.",
		"strengths":    []string{"specific example", "calm delivery"},
		"improvements": []string{"mention metrics"},
		"model_answer": "A strong answer would open with the outcome.",
	})
	return raw
}

func evalCriteria() Criteria {
	return Criteria{JobTitle: "Backend Engineer"}.Normalize()
}

func evalQuestion() Question {
	return Question{
		ID:             "q1",
		Prompt:         "Describe a time you disagreed with a teammate.",
		Category:       CategoryBehavioral,
		Difficulty:     3,
		TimeLimit:      DefaultTimeLimit,
		ExpectedTopics: []string{"conflict resolution"},
	}
}

func TestEvaluator_EvaluateAnswer(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: evalJSON(82)})
	e := NewEvaluator(mock, fastExecutor(), DefaultGenConfig())

	eval, err := e.EvaluateAnswer(context.Background(), evalCriteria(), evalQuestion(), "We talked it through.", 45*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if eval.Score != 82 {
		t.Errorf("score = %d, want 82", eval.Score)
	}
	if eval.Feedback == "" {
		t.Error("expected feedback")
	}
	if len(eval.Strengths) != 2 {
		t.Errorf("strengths = %d, want 2", len(eval.Strengths))
	}
	if mock.Calls[0].Schema != EvaluationSchema {
		t.Fatal("expected the evaluation schema on the request")
	}
}

func TestEvaluator_ScoreClamped(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: evalJSON(150)})
	e := NewEvaluator(mock, fastExecutor(), DefaultGenConfig())

	eval, err := e.EvaluateAnswer(context.Background(), evalCriteria(), evalQuestion(), "answer", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eval.Score != 100 {
		t.Fatalf("score = %d, want clamped 100", eval.Score)
	}
}

func TestEvaluator_MissingScoreIsProviderFailure(t *testing.T) {
	noScore, _ := json.Marshal(map[string]any{
		"feedback":     "fine",
		"strengths":    []string{},
		"improvements": []string{},
	})
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: noScore},
		llm.MockResponse{Content: noScore},
	)
	e := NewEvaluator(mock, fastExecutor(), DefaultGenConfig())

	_, err := e.EvaluateAnswer(context.Background(), evalCriteria(), evalQuestion(), "answer", 0)
	var eerr *EvaluationFailedError
	if !errors.As(err, &eerr) {
		t.Fatalf("expected EvaluationFailedError, got %v", err)
	}
	if eerr.QuestionID != "q1" {
		t.Fatalf("question ID = %q, want q1", eerr.QuestionID)
	}
	// No default score: one retry for the malformed response, then fail.
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 provider calls, got %d", mock.CallCount())
	}
}

func TestEvaluator_ListsTrimmedToFive(t *testing.T) {
	many := []string{"a", "b", "c", "d", "e", "f", "g"}
	raw, _ := json.Marshal(map[string]any{
		"score":        70,
		"feedback":     "long lists",
		"strengths":    many,
		"improvements": many,
	})
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	e := NewEvaluator(mock, fastExecutor(), DefaultGenConfig())

	eval, err := e.EvaluateAnswer(context.Background(), evalCriteria(), evalQuestion(), "answer", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(eval.Strengths) != MaxListedPoints {
		t.Errorf("strengths = %d, want %d", len(eval.Strengths), MaxListedPoints)
	}
	if len(eval.Improvements) != MaxListedPoints {
		t.Errorf("improvements = %d, want %d", len(eval.Improvements), MaxListedPoints)
	}
}

func TestEvaluator_ExhaustedRetriesSurfaceFailureReason(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	e := NewEvaluator(mock, fastExecutor(), DefaultGenConfig())

	_, err := e.EvaluateAnswer(context.Background(), evalCriteria(), evalQuestion(), "answer", 0)

	var fe *resilient.FailureError
	if !errors.As(err, &fe) {
		t.Fatalf("expected wrapped FailureError, got %v", err)
	}
	if fe.Reason != resilient.ReasonProviderError {
		t.Fatalf("reason = %s, want %s", fe.Reason, resilient.ReasonProviderError)
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 provider calls, got %d", mock.CallCount())
	}
}
