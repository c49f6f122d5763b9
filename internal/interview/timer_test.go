package interview

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestTimerSet_FiresAfterDuration(t *testing.T) {
	ts := NewTimerSet()
	fired := make(chan struct{})

	ts.Schedule("s1", "q1", 5*time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
	if ts.Active() != 0 {
		t.Fatalf("expected 0 active timers after fire, got %d", ts.Active())
	}
}

func TestTimerSet_CancelPreventsFire(t *testing.T) {
	ts := NewTimerSet()
	var fired atomic.Bool

	ts.Schedule("s1", "q1", 10*time.Millisecond, func() { fired.Store(true) })
	ts.Cancel("s1", "q1")

	time.Sleep(30 * time.Millisecond)
	if fired.Load() {
		t.Fatal("cancelled timer fired")
	}
	if ts.Active() != 0 {
		t.Fatalf("expected 0 active timers, got %d", ts.Active())
	}
}

func TestTimerSet_RescheduleReplacesTimer(t *testing.T) {
	ts := NewTimerSet()
	var firstFired, secondFired atomic.Bool

	ts.Schedule("s1", "q1", 10*time.Millisecond, func() { firstFired.Store(true) })
	ts.Schedule("s1", "q1", 20*time.Millisecond, func() { secondFired.Store(true) })

	time.Sleep(60 * time.Millisecond)
	if firstFired.Load() {
		t.Fatal("replaced timer fired")
	}
	if !secondFired.Load() {
		t.Fatal("replacement timer did not fire")
	}
}

func TestTimerSet_CancelSession(t *testing.T) {
	ts := NewTimerSet()
	var fired atomic.Int32

	ts.Schedule("s1", "q1", 10*time.Millisecond, func() { fired.Add(1) })
	ts.Schedule("s1", "q2", 10*time.Millisecond, func() { fired.Add(1) })
	ts.Schedule("s2", "q1", 10*time.Millisecond, func() { fired.Add(1) })

	ts.CancelSession("s1")

	time.Sleep(40 * time.Millisecond)
	if got := fired.Load(); got != 1 {
		t.Fatalf("expected only the s2 timer to fire, got %d fires", got)
	}
}
