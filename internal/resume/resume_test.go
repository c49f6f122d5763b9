package resume

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/jobprep/internal/interview"
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

func critiqueJSON(score int) json.RawMessage {
	raw, _ := json.Marshal(map[string]any{
		"summary":      "Solid backend resume with clear progression.",
		"score":        score,
		"strengths":    []string{"quantified impact"},
		"improvements": []string{"add a skills section"},
		"ats_keywords": []string{"Kubernetes", "gRPC"},
	})
	return raw
}

func TestService_Critique(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: critiqueJSON(78)})
	s := New(mock, fastExecutor(), interview.DefaultGenConfig())

	c, err := s.Critique(context.Background(), "Backend engineer, 5 years, built payment systems.", "Staff Engineer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Score != 78 {
		t.Errorf("score = %d, want 78", c.Score)
	}
	if c.Summary == "" {
		t.Error("expected summary")
	}
	if len(c.ATSKeywords) != 2 {
		t.Errorf("ats keywords = %d, want 2", len(c.ATSKeywords))
	}
}

func TestService_EmptyResumeRejected(t *testing.T) {
	s := New(llm.NewMockProvider(), fastExecutor(), interview.DefaultGenConfig())

	_, err := s.Critique(context.Background(), "  ", "SRE")
	var verr *interview.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestService_MissingScoreFails(t *testing.T) {
	noScore, _ := json.Marshal(map[string]any{"summary": "x", "strengths": []string{}, "improvements": []string{}, "ats_keywords": []string{}})
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: noScore},
		llm.MockResponse{Content: noScore},
	)
	s := New(mock, fastExecutor(), interview.DefaultGenConfig())

	_, err := s.Critique(context.Background(), "resume text", "")
	if err == nil {
		t.Fatal("expected error")
	}
	var fe *resilient.FailureError
	if !errors.As(err, &fe) {
		t.Fatalf("expected wrapped FailureError, got %v", err)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 provider calls, got %d", mock.CallCount())
	}
}

func TestService_ScoreClamped(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: critiqueJSON(-10)})
	s := New(mock, fastExecutor(), interview.DefaultGenConfig())

	c, err := s.Critique(context.Background(), "resume text", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Score != 0 {
		t.Fatalf("score = %d, want clamped 0", c.Score)
	}
}
