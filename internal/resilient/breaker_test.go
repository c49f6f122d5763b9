package resilient

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestBreaker_OpensAtThreshold(t *testing.T) {
	b := NewBreaker(5, time.Minute)
	now := time.Now()

	for i := 0; i < 4; i++ {
		b.RecordFailure(now)
		if got := b.State(); got != StateClosed {
			t.Fatalf("after %d failures: expected closed, got %s", i+1, got)
		}
	}

	b.RecordFailure(now)
	if got := b.State(); got != StateOpen {
		t.Fatalf("after 5 failures: expected open, got %s", got)
	}
	if b.Allow(now) {
		t.Fatal("open breaker before cooldown should reject calls")
	}
}

func TestBreaker_SuccessResetsFailureCount(t *testing.T) {
	b := NewBreaker(3, time.Minute)
	now := time.Now()

	b.RecordFailure(now)
	b.RecordFailure(now)
	b.RecordSuccess()
	b.RecordFailure(now)
	b.RecordFailure(now)

	if got := b.State(); got != StateClosed {
		t.Fatalf("interleaved success should reset the count; got %s", got)
	}

	b.RecordFailure(now)
	if got := b.State(); got != StateOpen {
		t.Fatalf("expected open after 3 consecutive failures, got %s", got)
	}
}

func TestBreaker_CooldownAdmitsSingleProbe(t *testing.T) {
	b := NewBreaker(1, 10*time.Millisecond)
	opened := time.Now()
	b.RecordFailure(opened)

	if b.Allow(opened.Add(5 * time.Millisecond)) {
		t.Fatal("should reject before cooldown elapses")
	}

	after := opened.Add(20 * time.Millisecond)
	if !b.Allow(after) {
		t.Fatal("first caller after cooldown should be admitted as the probe")
	}
	if got := b.State(); got != StateHalfOpen {
		t.Fatalf("expected half-open, got %s", got)
	}
	if b.Allow(after) {
		t.Fatal("second caller should be rejected while the probe is in flight")
	}
}

func TestBreaker_SingleProbeUnderConcurrency(t *testing.T) {
	b := NewBreaker(1, time.Millisecond)
	b.RecordFailure(time.Now().Add(-time.Second))

	var admitted atomic.Int32
	var wg sync.WaitGroup
	now := time.Now()
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if b.Allow(now) {
				admitted.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := admitted.Load(); got != 1 {
		t.Fatalf("expected exactly 1 probe admitted, got %d", got)
	}
}

func TestBreaker_ProbeSuccessCloses(t *testing.T) {
	b := NewBreaker(1, time.Millisecond)
	b.RecordFailure(time.Now().Add(-time.Second))

	if !b.Allow(time.Now()) {
		t.Fatal("probe should be admitted")
	}
	b.RecordSuccess()

	if got := b.State(); got != StateClosed {
		t.Fatalf("expected closed after successful probe, got %s", got)
	}
	if !b.Allow(time.Now()) {
		t.Fatal("closed breaker should allow calls")
	}
}

func TestBreaker_ProbeFailureReopens(t *testing.T) {
	b := NewBreaker(1, 50*time.Millisecond)
	b.RecordFailure(time.Now().Add(-time.Second))

	if !b.Allow(time.Now()) {
		t.Fatal("probe should be admitted")
	}
	reopened := time.Now()
	b.RecordFailure(reopened)

	if got := b.State(); got != StateOpen {
		t.Fatalf("expected open after failed probe, got %s", got)
	}
	if b.Allow(reopened.Add(time.Millisecond)) {
		t.Fatal("reopened breaker should reject until a fresh cooldown elapses")
	}
}

func TestBreakerSet_PerOperationIsolation(t *testing.T) {
	s := NewBreakerSet(1, time.Minute)

	s.Get("generate-questions").RecordFailure(time.Now())
	if got := s.Get("generate-questions").State(); got != StateOpen {
		t.Fatalf("expected open, got %s", got)
	}
	if got := s.Get("evaluate-answer").State(); got != StateClosed {
		t.Fatalf("sibling operation should be unaffected, got %s", got)
	}

	if s.Get("generate-questions") != s.Get("generate-questions") {
		t.Fatal("Get should return the same breaker for the same op")
	}
}

func TestBreakerSet_Reset(t *testing.T) {
	s := NewBreakerSet(1, time.Minute)
	s.Get("synthesize").RecordFailure(time.Now())
	s.Reset()

	if got := s.Get("synthesize").State(); got != StateClosed {
		t.Fatalf("expected closed after reset, got %s", got)
	}
}
