package resilient

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/jobprep/internal/llm"
)

// fastConfig keeps retries in the microsecond range so tests stay quick.
func fastConfig() Config {
	return Config{
		MaxAttempts:      3,
		Backoff:          []time.Duration{time.Millisecond, 2 * time.Millisecond, 4 * time.Millisecond},
		AttemptTimeout:   50 * time.Millisecond,
		FailureThreshold: 5,
		Cooldown:         time.Minute,
	}
}

func TestDo_SuccessFirstAttempt(t *testing.T) {
	e := New(fastConfig())
	calls := 0

	got, err := Do(context.Background(), e, "generate-questions", func(ctx context.Context) (string, error) {
		calls++
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ok" {
		t.Fatalf("expected ok, got %q", got)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestDo_TransientThenSuccess(t *testing.T) {
	e := New(fastConfig())
	calls := 0

	got, err := Do(context.Background(), e, "evaluate-answer", func(ctx context.Context) (int, error) {
		calls++
		if calls < 3 {
			return 0, &llm.ErrProviderUnavailable{}
		}
		return 42, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestDo_ExhaustedReturnsProviderError(t *testing.T) {
	e := New(fastConfig())
	calls := 0

	_, err := Do(context.Background(), e, "evaluate-answer", func(ctx context.Context) (int, error) {
		calls++
		return 0, &llm.ErrProviderUnavailable{}
	})
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}

	var fe *FailureError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FailureError, got %T", err)
	}
	if fe.Reason != ReasonProviderError {
		t.Fatalf("expected reason %s, got %s", ReasonProviderError, fe.Reason)
	}
	if len(fe.Attempts) != 3 {
		t.Fatalf("expected 3 recorded attempts, got %d", len(fe.Attempts))
	}
	if fe.Op != "evaluate-answer" {
		t.Fatalf("expected op on the error, got %q", fe.Op)
	}
}

func TestDo_MaxTokensNotRetried(t *testing.T) {
	e := New(fastConfig())
	calls := 0

	_, err := Do(context.Background(), e, "generate-questions", func(ctx context.Context) (string, error) {
		calls++
		return "", &llm.ErrMaxTokensExceeded{}
	})
	if calls != 1 {
		t.Fatalf("truncation should not be retried; got %d calls", calls)
	}

	var fe *FailureError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FailureError, got %T", err)
	}
	if fe.Reason != ReasonNonRetryable {
		t.Fatalf("expected reason %s, got %s", ReasonNonRetryable, fe.Reason)
	}
}

func TestDo_InvalidResponseRetriedOnce(t *testing.T) {
	e := New(fastConfig())
	calls := 0

	_, err := Do(context.Background(), e, "evaluate-answer", func(ctx context.Context) (string, error) {
		calls++
		return "", &llm.ErrInvalidResponse{Err: errors.New("schema mismatch")}
	})
	if calls != 2 {
		t.Fatalf("invalid responses get exactly one retry; got %d calls", calls)
	}

	var fe *FailureError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FailureError, got %T", err)
	}
	if fe.Reason != ReasonNonRetryable {
		t.Fatalf("expected reason %s, got %s", ReasonNonRetryable, fe.Reason)
	}
}

func TestDo_AttemptTimeoutClassifiedAsTimeout(t *testing.T) {
	cfg := fastConfig()
	cfg.AttemptTimeout = 5 * time.Millisecond
	e := New(cfg)
	calls := 0

	_, err := Do(context.Background(), e, "synthesize", func(ctx context.Context) (string, error) {
		calls++
		<-ctx.Done()
		return "", ctx.Err()
	})
	if calls != 3 {
		t.Fatalf("timeouts should be retried up to max attempts; got %d calls", calls)
	}

	var fe *FailureError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FailureError, got %T", err)
	}
	if fe.Reason != ReasonTimeout {
		t.Fatalf("expected reason %s, got %s", ReasonTimeout, fe.Reason)
	}
	for _, a := range fe.Attempts {
		if a.Outcome != OutcomeTimeout {
			t.Fatalf("expected every attempt classified as timeout, got %s", a.Outcome)
		}
	}
}

func TestDo_CircuitOpenSkipsInvocation(t *testing.T) {
	e := New(fastConfig())
	e.Breakers().Get("generate-questions").state.Store(int32(StateOpen))
	e.Breakers().Get("generate-questions").openedAt.Store(time.Now().UnixNano())

	calls := 0
	_, err := Do(context.Background(), e, "generate-questions", func(ctx context.Context) (string, error) {
		calls++
		return "should not run", nil
	})
	if calls != 0 {
		t.Fatalf("open circuit must not invoke the operation; got %d calls", calls)
	}

	var fe *FailureError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FailureError, got %T", err)
	}
	if fe.Reason != ReasonCircuitOpen {
		t.Fatalf("expected reason %s, got %s", ReasonCircuitOpen, fe.Reason)
	}
	if !IsCircuitOpen(err) {
		t.Fatal("IsCircuitOpen should report true")
	}
}

func TestDo_FailuresFeedTheBreaker(t *testing.T) {
	cfg := fastConfig()
	cfg.FailureThreshold = 3
	cfg.MaxAttempts = 3
	e := New(cfg)

	_, err := Do(context.Background(), e, "evaluate-answer", func(ctx context.Context) (int, error) {
		return 0, &llm.ErrProviderUnavailable{}
	})
	if err == nil {
		t.Fatal("expected failure")
	}
	if got := e.Breakers().Get("evaluate-answer").State(); got != StateOpen {
		t.Fatalf("three failed attempts should open a threshold-3 breaker, got %s", got)
	}

	_, err = Do(context.Background(), e, "evaluate-answer", func(ctx context.Context) (int, error) {
		t.Fatal("must not invoke through an open breaker")
		return 0, nil
	})
	if !IsCircuitOpen(err) {
		t.Fatalf("expected circuit-open failure, got %v", err)
	}
}

func TestDo_CancelledContextFailsFast(t *testing.T) {
	e := New(fastConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	_, err := Do(ctx, e, "generate-questions", func(ctx context.Context) (string, error) {
		calls++
		return "", nil
	})
	if calls != 0 {
		t.Fatalf("cancelled context must not invoke the operation; got %d calls", calls)
	}

	var fe *FailureError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FailureError, got %T", err)
	}
	if fe.Reason != ReasonDeadlineExceeded {
		t.Fatalf("expected reason %s, got %s", ReasonDeadlineExceeded, fe.Reason)
	}
}

func TestDo_BackoffRespectsOverallDeadline(t *testing.T) {
	cfg := fastConfig()
	cfg.Backoff = []time.Duration{time.Hour}
	e := New(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	calls := 0
	start := time.Now()
	_, err := Do(ctx, e, "evaluate-answer", func(ctx context.Context) (int, error) {
		calls++
		return 0, &llm.ErrProviderUnavailable{}
	})
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("should fail fast instead of sleeping past the deadline; took %s", elapsed)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call before deadline-aware bail, got %d", calls)
	}

	var fe *FailureError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FailureError, got %T", err)
	}
	if fe.Reason != ReasonDeadlineExceeded {
		t.Fatalf("expected reason %s, got %s", ReasonDeadlineExceeded, fe.Reason)
	}
}

func TestBackoffDelay(t *testing.T) {
	backoff := []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}

	if got := backoffDelay(backoff, 1, errors.New("x")); got != time.Second {
		t.Fatalf("attempt 1: expected 1s, got %s", got)
	}
	if got := backoffDelay(backoff, 2, errors.New("x")); got != 2*time.Second {
		t.Fatalf("attempt 2: expected 2s, got %s", got)
	}
	if got := backoffDelay(backoff, 5, errors.New("x")); got != 4*time.Second {
		t.Fatalf("past the sequence: expected last entry, got %s", got)
	}

	// Retry-After above the schedule is honored.
	rl := &llm.ErrRateLimit{RetryAfter: 10 * time.Second}
	if got := backoffDelay(backoff, 1, rl); got != 10*time.Second {
		t.Fatalf("expected Retry-After 10s, got %s", got)
	}

	// Retry-After below the schedule never shortens the wait.
	rl = &llm.ErrRateLimit{RetryAfter: 500 * time.Millisecond}
	if got := backoffDelay(backoff, 3, rl); got != 4*time.Second {
		t.Fatalf("expected scheduled 4s, got %s", got)
	}
}
