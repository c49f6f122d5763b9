package coverletter

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

func TestNormalizeTone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"formal", ToneFormal},
		{" Conversational ", ToneConversational},
		{"ENTHUSIASTIC", ToneEnthusiastic},
		{"sarcastic", ToneFormal},
		{"", ToneFormal},
	}
	for _, tt := range tests {
		if got := NormalizeTone(tt.in); got != tt.want {
			t.Errorf("NormalizeTone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestService_Draft(t *testing.T) {
	raw, _ := json.Marshal(map[string]any{
		"body":           "Dear hiring team, my five years building payment systems...",
		"talking_points": []string{"payments experience", "on-call ownership", "Go expertise"},
	})
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	s := New(mock, fastExecutor(), interview.DefaultGenConfig())

	letter, err := s.Draft(context.Background(), "Backend engineer, payments.", "We need a Go engineer for our billing team.", "enthusiastic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if letter.Body == "" {
		t.Error("expected letter body")
	}
	if len(letter.TalkingPoints) != 3 {
		t.Errorf("talking points = %d, want 3", len(letter.TalkingPoints))
	}
	if letter.Tone != ToneEnthusiastic {
		t.Errorf("tone = %q, want %q", letter.Tone, ToneEnthusiastic)
	}
}

func TestService_MissingInputsRejected(t *testing.T) {
	s := New(llm.NewMockProvider(), fastExecutor(), interview.DefaultGenConfig())

	var verr *interview.ValidationError
	if _, err := s.Draft(context.Background(), "", "jd", ""); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for empty resume, got %v", err)
	}
	if _, err := s.Draft(context.Background(), "resume", "", ""); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for empty job description, got %v", err)
	}
}

func TestService_EmptyBodyRetriedThenFails(t *testing.T) {
	empty, _ := json.Marshal(map[string]any{"body": "", "talking_points": []string{}})
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: empty},
		llm.MockResponse{Content: empty},
	)
	s := New(mock, fastExecutor(), interview.DefaultGenConfig())

	if _, err := s.Draft(context.Background(), "resume", "jd", ""); err == nil {
		t.Fatal("expected error for empty body")
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 provider calls, got %d", mock.CallCount())
	}
}
