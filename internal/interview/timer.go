package interview

import (
	"sync"
	"time"
)

type timerKey struct {
	sessionID  string
	questionID string
}

// TimerSet schedules one cancellable expiry timer per active question.
// Cancellation is keyed by (session, question) so a stale fire against a
// superseded question can never reach the engine.
type TimerSet struct {
	mu     sync.Mutex
	timers map[timerKey]*time.Timer
}

// NewTimerSet creates an empty TimerSet.
func NewTimerSet() *TimerSet {
	return &TimerSet{timers: make(map[timerKey]*time.Timer)}
}

// Schedule arms a timer that calls fire after d. Any previous timer for the
// same key is cancelled first. fire runs on the timer goroutine.
func (t *TimerSet) Schedule(sessionID, questionID string, d time.Duration, fire func()) {
	key := timerKey{sessionID, questionID}

	t.mu.Lock()
	defer t.mu.Unlock()

	if old, ok := t.timers[key]; ok {
		old.Stop()
	}
	t.timers[key] = time.AfterFunc(d, func() {
		t.mu.Lock()
		delete(t.timers, key)
		t.mu.Unlock()
		fire()
	})
}

// Cancel stops the timer for one question, if armed. Safe to call after the
// timer has already fired.
func (t *TimerSet) Cancel(sessionID, questionID string) {
	key := timerKey{sessionID, questionID}

	t.mu.Lock()
	defer t.mu.Unlock()

	if timer, ok := t.timers[key]; ok {
		timer.Stop()
		delete(t.timers, key)
	}
}

// CancelSession stops every timer belonging to a session.
func (t *TimerSet) CancelSession(sessionID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for key, timer := range t.timers {
		if key.sessionID == sessionID {
			timer.Stop()
			delete(t.timers, key)
		}
	}
}

// Active returns the number of armed timers.
func (t *TimerSet) Active() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.timers)
}
