package resilient

import (
	"sync"
	"sync/atomic"
	"time"
)

// BreakerState is the lifecycle state of a circuit breaker.
type BreakerState int32

const (
	// StateClosed is normal operation: calls flow through.
	StateClosed BreakerState = iota
	// StateOpen means the endpoint is failing: calls fail fast until the
	// cooldown elapses.
	StateOpen
	// StateHalfOpen means one probe call has been admitted after cooldown.
	// Its outcome decides whether the breaker closes or reopens.
	StateHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// Breaker is a circuit breaker for a single external operation. All state
// transitions are compare-and-swap based; no lock is ever held across the
// external I/O it protects.
type Breaker struct {
	threshold int32
	cooldown  time.Duration

	state    atomic.Int32
	failures atomic.Int32
	openedAt atomic.Int64 // unix nanos of the transition to open
}

// NewBreaker creates a closed breaker that opens after threshold consecutive
// failures and admits a single probe after cooldown.
func NewBreaker(threshold int, cooldown time.Duration) *Breaker {
	if threshold <= 0 {
		threshold = DefaultFailureThreshold
	}
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &Breaker{threshold: int32(threshold), cooldown: cooldown}
}

// Allow reports whether a call may proceed right now. In the open state it
// admits exactly one caller as the half-open probe once the cooldown has
// elapsed; concurrent callers losing that race are rejected.
func (b *Breaker) Allow(now time.Time) bool {
	switch BreakerState(b.state.Load()) {
	case StateClosed:
		return true
	case StateHalfOpen:
		// A probe is already in flight.
		return false
	case StateOpen:
		openedAt := time.Unix(0, b.openedAt.Load())
		if now.Sub(openedAt) < b.cooldown {
			return false
		}
		// Cooldown elapsed: the CAS winner becomes the single probe.
		return b.state.CompareAndSwap(int32(StateOpen), int32(StateHalfOpen))
	default:
		return false
	}
}

// RecordSuccess resets the breaker after a successful call. A successful
// half-open probe closes the circuit.
func (b *Breaker) RecordSuccess() {
	b.failures.Store(0)
	b.state.CompareAndSwap(int32(StateHalfOpen), int32(StateClosed))
}

// RecordFailure counts a failed call. A failed half-open probe reopens the
// circuit immediately; in the closed state the circuit opens once the
// consecutive-failure threshold is reached.
func (b *Breaker) RecordFailure(now time.Time) {
	if b.state.CompareAndSwap(int32(StateHalfOpen), int32(StateOpen)) {
		b.openedAt.Store(now.UnixNano())
		b.failures.Store(0)
		return
	}

	n := b.failures.Add(1)
	if n >= b.threshold {
		if b.state.CompareAndSwap(int32(StateClosed), int32(StateOpen)) {
			b.openedAt.Store(now.UnixNano())
		}
		b.failures.Store(0)
	}
}

// State returns the current breaker state.
func (b *Breaker) State() BreakerState {
	return BreakerState(b.state.Load())
}

// BreakerSet holds one breaker per external operation. It is an explicit,
// injectable component so tests can reset or replace it; there is no
// package-level singleton.
type BreakerSet struct {
	mu        sync.RWMutex
	breakers  map[string]*Breaker
	threshold int
	cooldown  time.Duration
}

// NewBreakerSet creates an empty set. Breakers are created lazily per
// operation with the given threshold and cooldown.
func NewBreakerSet(threshold int, cooldown time.Duration) *BreakerSet {
	return &BreakerSet{
		breakers:  make(map[string]*Breaker),
		threshold: threshold,
		cooldown:  cooldown,
	}
}

// Get returns the breaker for op, creating it if needed.
func (s *BreakerSet) Get(op string) *Breaker {
	s.mu.RLock()
	b, ok := s.breakers[op]
	s.mu.RUnlock()
	if ok {
		return b
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.breakers[op]; ok {
		return b
	}
	b = NewBreaker(s.threshold, s.cooldown)
	s.breakers[op] = b
	return b
}

// Reset discards all breaker state.
func (s *BreakerSet) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.breakers = make(map[string]*Breaker)
}
