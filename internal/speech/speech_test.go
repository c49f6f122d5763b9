package speech

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/jobprep/internal/resilient"
)

type stubBackend struct {
	audio *Audio
	errs  []error
	calls int
}

func (b *stubBackend) Synthesize(ctx context.Context, text string) (*Audio, error) {
	b.calls++
	if len(b.errs) > 0 {
		err := b.errs[0]
		b.errs = b.errs[1:]
		if err != nil {
			return nil, err
		}
	}
	return b.audio, nil
}

func fastExecutor() *resilient.Executor {
	return resilient.New(resilient.Config{
		MaxAttempts:    3,
		Backoff:        []time.Duration{time.Millisecond, time.Millisecond, time.Millisecond},
		AttemptTimeout: 100 * time.Millisecond,
	})
}

func TestSynthesizer_ReturnsAudio(t *testing.T) {
	backend := &stubBackend{audio: &Audio{Data: []byte{1, 2, 3}, MIMEType: "audio/L16"}}
	s := NewSynthesizerWithBackend(backend, fastExecutor())

	audio, err := s.Synthesize(context.Background(), "Tell me about yourself.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if audio == nil || len(audio.Data) != 3 {
		t.Fatalf("expected audio data, got %+v", audio)
	}
}

func TestSynthesizer_TransientFailureRecovered(t *testing.T) {
	backend := &stubBackend{
		audio: &Audio{Data: []byte{1}, MIMEType: "audio/L16"},
		errs:  []error{errors.New("blip"), nil},
	}
	s := NewSynthesizerWithBackend(backend, fastExecutor())

	audio, err := s.Synthesize(context.Background(), "Next question.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if audio == nil {
		t.Fatal("expected audio after retry")
	}
	if backend.calls != 2 {
		t.Fatalf("expected 2 backend calls, got %d", backend.calls)
	}
}

func TestSynthesizer_ExhaustedRetriesDegrade(t *testing.T) {
	backend := &stubBackend{
		errs: []error{errors.New("down"), errors.New("down"), errors.New("down")},
	}
	s := NewSynthesizerWithBackend(backend, fastExecutor())

	audio, err := s.Synthesize(context.Background(), "Next question.")
	if err != nil {
		t.Fatalf("degrade must not return an error, got: %v", err)
	}
	if audio != nil {
		t.Fatalf("degrade must return nil audio, got %+v", audio)
	}
	if backend.calls != 3 {
		t.Fatalf("expected 3 backend calls, got %d", backend.calls)
	}
}

func TestSynthesizer_OpenCircuitDegradesWithoutCall(t *testing.T) {
	exec := fastExecutor()
	backend := &stubBackend{errs: []error{errors.New("down"), errors.New("down"), errors.New("down")}}
	s := NewSynthesizerWithBackend(backend, exec)

	// Drive the breaker open with repeated failed calls.
	for i := 0; i < 2; i++ {
		if _, err := s.Synthesize(context.Background(), "x"); err != nil {
			t.Fatalf("degrade call %d errored: %v", i, err)
		}
		backend.errs = []error{errors.New("down"), errors.New("down"), errors.New("down")}
	}
	if got := exec.Breakers().Get("synthesize").State(); got != resilient.StateOpen {
		t.Fatalf("breaker state = %s, want open", got)
	}

	before := backend.calls
	audio, err := s.Synthesize(context.Background(), "y")
	if err != nil || audio != nil {
		t.Fatalf("open circuit must degrade silently, got audio=%v err=%v", audio, err)
	}
	if backend.calls != before {
		t.Fatal("open circuit must not reach the backend")
	}
}

func TestSynthesizer_EmptyTextRejected(t *testing.T) {
	s := NewSynthesizerWithBackend(&stubBackend{}, fastExecutor())

	if _, err := s.Synthesize(context.Background(), "   "); err == nil {
		t.Fatal("expected error for empty text")
	}
}
