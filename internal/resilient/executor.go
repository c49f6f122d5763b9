// Package resilient executes calls to external AI providers with bounded
// retries, per-attempt timeouts, and circuit breaking. It knows nothing about
// interview or coaching semantics; adapters hand it a unit of work and an
// operation name for breaker grouping.
package resilient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/jobprep/internal/llm"
)

// Default executor policy. The backoff sequence is strictly increasing so
// delays within one call chain are monotonically non-decreasing.
const (
	DefaultMaxAttempts      = 3
	DefaultAttemptTimeout   = 30 * time.Second
	DefaultFailureThreshold = 5
	DefaultCooldown         = 60 * time.Second
)

// DefaultBackoff returns the default backoff sequence: 1s, 2s, 4s.
func DefaultBackoff() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FailureReason classifies why a resilient call failed.
type FailureReason string

const (
	// ReasonTimeout: every attempt hit the per-attempt timeout.
	ReasonTimeout FailureReason = "timeout"
	// ReasonProviderError: retries were exhausted on provider errors.
	ReasonProviderError FailureReason = "provider_error"
	// ReasonCircuitOpen: the breaker rejected the call before any I/O.
	ReasonCircuitOpen FailureReason = "circuit_open"
	// ReasonDeadlineExceeded: the overall deadline ran out mid-chain.
	ReasonDeadlineExceeded FailureReason = "deadline_exceeded"
	// ReasonNonRetryable: the operation failed in a way retrying cannot fix.
	ReasonNonRetryable FailureReason = "non_retryable"
)

// AttemptOutcome classifies a single attempt for breaker accounting.
type AttemptOutcome string

const (
	OutcomeSuccess       AttemptOutcome = "success"
	OutcomeTimeout       AttemptOutcome = "timeout"
	OutcomeProviderError AttemptOutcome = "provider_error"
	OutcomeInvalid       AttemptOutcome = "invalid_response"
)

// CallAttempt records one invocation of the wrapped operation. Attempts are
// kept only for the duration of the call and attached to the failure error
// for log context; they are never persisted.
type CallAttempt struct {
	Op      string
	Number  int
	Elapsed time.Duration
	Outcome AttemptOutcome
}

// FailureError is the single error type returned by Do. Reason is stable and
// enumerable so callers can branch without string matching.
type FailureError struct {
	Op       string
	Reason   FailureReason
	Attempts []CallAttempt
	Err      error
}

func (e *FailureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed (%s after %d attempts): %v", e.Op, e.Reason, len(e.Attempts), e.Err)
	}
	return fmt.Sprintf("%s failed (%s after %d attempts)", e.Op, e.Reason, len(e.Attempts))
}

func (e *FailureError) Unwrap() error { return e.Err }

// IsCircuitOpen reports whether err is a resilient failure caused by an open
// breaker.
func IsCircuitOpen(err error) bool {
	var fe *FailureError
	return errors.As(err, &fe) && fe.Reason == ReasonCircuitOpen
}

// Config holds executor policy. Zero values fall back to the defaults above.
type Config struct {
	MaxAttempts      int
	Backoff          []time.Duration
	AttemptTimeout   time.Duration
	FailureThreshold int
	Cooldown         time.Duration
}

func (c Config) withDefaults() Config {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	if len(c.Backoff) == 0 {
		c.Backoff = DefaultBackoff()
	}
	if c.AttemptTimeout <= 0 {
		c.AttemptTimeout = DefaultAttemptTimeout
	}
	if c.FailureThreshold <= 0 {
		c.FailureThreshold = DefaultFailureThreshold
	}
	if c.Cooldown <= 0 {
		c.Cooldown = DefaultCooldown
	}
	return c
}

// Executor runs external operations under the configured retry and breaker
// policy. It is stateless across calls except for the injected breaker set
// and safe for concurrent use.
type Executor struct {
	cfg      Config
	breakers *BreakerSet
}

// New creates an Executor with its own breaker set.
func New(cfg Config) *Executor {
	cfg = cfg.withDefaults()
	return &Executor{
		cfg:      cfg,
		breakers: NewBreakerSet(cfg.FailureThreshold, cfg.Cooldown),
	}
}

// NewWithBreakers creates an Executor sharing an existing breaker set.
// Useful when several executors with different retry policies must agree on
// per-endpoint circuit state.
func NewWithBreakers(cfg Config, breakers *BreakerSet) *Executor {
	return &Executor{cfg: cfg.withDefaults(), breakers: breakers}
}

// Breakers exposes the breaker set for inspection and test resets.
func (e *Executor) Breakers() *BreakerSet {
	return e.breakers
}

// Do executes fn under the executor's policy and returns exactly one of:
// the result, or a *FailureError tagged with a stable reason. It never
// panics on provider failures.
//
// Retries honor the overall deadline on ctx: a backoff sleep that would
// cross the deadline is shortened to immediate failure rather than overrun.
func Do[T any](ctx context.Context, e *Executor, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	br := e.breakers.Get(op)
	var attempts []CallAttempt

	invalidRetried := false
	var lastErr error
	var lastOutcome AttemptOutcome

	for attempt := 1; attempt <= e.cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, &FailureError{Op: op, Reason: ReasonDeadlineExceeded, Attempts: attempts, Err: err}
		}

		if !br.Allow(time.Now()) {
			return zero, &FailureError{Op: op, Reason: ReasonCircuitOpen, Attempts: attempts}
		}

		attemptCtx, cancel := context.WithTimeout(ctx, e.cfg.AttemptTimeout)
		start := time.Now()
		result, err := fn(attemptCtx)
		elapsed := time.Since(start)
		timedOut := attemptCtx.Err() == context.DeadlineExceeded && ctx.Err() == nil
		cancel()

		if err == nil {
			br.RecordSuccess()
			return result, nil
		}

		lastErr = err
		lastOutcome = classifyAttempt(err, timedOut)
		attempts = append(attempts, CallAttempt{Op: op, Number: attempt, Elapsed: elapsed, Outcome: lastOutcome})
		br.RecordFailure(time.Now())

		// The overall deadline or an explicit cancel terminates the chain.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return zero, &FailureError{Op: op, Reason: ReasonDeadlineExceeded, Attempts: attempts, Err: err}
		}

		if !shouldRetry(err, timedOut, &invalidRetried) {
			return zero, &FailureError{Op: op, Reason: ReasonNonRetryable, Attempts: attempts, Err: err}
		}

		if attempt == e.cfg.MaxAttempts {
			break
		}

		wait := backoffDelay(e.cfg.Backoff, attempt, err)
		if deadline, ok := ctx.Deadline(); ok && time.Now().Add(wait).After(deadline) {
			return zero, &FailureError{Op: op, Reason: ReasonDeadlineExceeded, Attempts: attempts, Err: err}
		}

		select {
		case <-ctx.Done():
			return zero, &FailureError{Op: op, Reason: ReasonDeadlineExceeded, Attempts: attempts, Err: ctx.Err()}
		case <-time.After(wait):
		}
	}

	reason := ReasonProviderError
	if lastOutcome == OutcomeTimeout {
		reason = ReasonTimeout
	}
	return zero, &FailureError{Op: op, Reason: reason, Attempts: attempts, Err: lastErr}
}

// shouldRetry determines whether an attempt error is worth retrying.
// Invalid responses get exactly one retry; context errors and truncation
// never retry; everything else is treated as transient.
func shouldRetry(err error, timedOut bool, invalidRetried *bool) bool {
	if timedOut {
		return true
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// Max tokens is a configuration issue, not transient.
	var maxTok *llm.ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return false
	}

	var invResp *llm.ErrInvalidResponse
	if errors.As(err, &invResp) {
		if *invalidRetried {
			return false
		}
		*invalidRetried = true
		return true
	}

	return true
}

func classifyAttempt(err error, timedOut bool) AttemptOutcome {
	if timedOut {
		return OutcomeTimeout
	}
	var invResp *llm.ErrInvalidResponse
	if errors.As(err, &invResp) {
		return OutcomeInvalid
	}
	return OutcomeProviderError
}

// backoffDelay returns the wait before the next attempt. attempt is 1-based.
// A provider-supplied Retry-After is respected, but never below the
// scheduled backoff so delays stay monotonically non-decreasing within a
// call chain.
func backoffDelay(backoff []time.Duration, attempt int, err error) time.Duration {
	idx := attempt - 1
	if idx >= len(backoff) {
		idx = len(backoff) - 1
	}
	wait := backoff[idx]

	var rl *llm.ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > wait {
		return rl.RetryAfter
	}
	return wait
}
