package jobs

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

func testPostings() []Posting {
	return []Posting{
		{ID: "j1", Title: "Backend Engineer", Company: "Acme", Description: "Go, Postgres, Kubernetes."},
		{ID: "j2", Title: "Frontend Engineer", Company: "Acme", Description: "React, TypeScript."},
	}
}

func matchesJSON(ids ...string) json.RawMessage {
	matches := make([]map[string]any, len(ids))
	for i, id := range ids {
		matches[i] = map[string]any{
			"posting_id":     id,
			"fit_score":      80 - i*40,
			"verdict":        "fair",
			"matched_skills": []string{"Go"},
			"missing_skills": []string{"React"},
			"rationale":      "Backend depth, no frontend work.",
		}
	}
	raw, _ := json.Marshal(map[string]any{"matches": matches})
	return raw
}

func TestService_MatchJobs(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: matchesJSON("j1", "j2")})
	s := New(mock, fastExecutor(), interview.DefaultGenConfig())

	matches, err := s.MatchJobs(context.Background(), "Go backend engineer, 5 years.", testPostings())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].PostingID != "j1" || matches[0].FitScore != 80 {
		t.Fatalf("unexpected first match: %+v", matches[0])
	}
	if matches[1].FitScore != 40 {
		t.Fatalf("second fit score = %d, want 40", matches[1].FitScore)
	}
}

func TestService_ValidationErrors(t *testing.T) {
	s := New(llm.NewMockProvider(), fastExecutor(), interview.DefaultGenConfig())

	var verr *interview.ValidationError
	if _, err := s.MatchJobs(context.Background(), "", testPostings()); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for empty summary, got %v", err)
	}
	if _, err := s.MatchJobs(context.Background(), "summary", nil); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for no postings, got %v", err)
	}

	many := make([]Posting, MaxJobsPerMatch+1)
	for i := range many {
		many[i] = Posting{ID: "x", Title: "t", Description: "d"}
	}
	if _, err := s.MatchJobs(context.Background(), "summary", many); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for too many postings, got %v", err)
	}
}

func TestService_MismatchedResponseRetriedThenFails(t *testing.T) {
	// Only one match for two postings.
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: matchesJSON("j1")},
		llm.MockResponse{Content: matchesJSON("j1")},
	)
	s := New(mock, fastExecutor(), interview.DefaultGenConfig())

	_, err := s.MatchJobs(context.Background(), "summary", testPostings())
	if err == nil {
		t.Fatal("expected error for mismatched response")
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 provider calls, got %d", mock.CallCount())
	}
}

func TestService_UnknownPostingIDRejected(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: matchesJSON("j1", "bogus")},
		llm.MockResponse{Content: matchesJSON("j1", "bogus")},
	)
	s := New(mock, fastExecutor(), interview.DefaultGenConfig())

	if _, err := s.MatchJobs(context.Background(), "summary", testPostings()); err == nil {
		t.Fatal("expected error for unknown posting id")
	}
}
