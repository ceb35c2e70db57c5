package detector

import (
	"testing"
	"time"
)

func TestIdleTimer_FiresWithCurrentGeneration(t *testing.T) {
	var timer idleTimer
	fired := make(chan uint64, 1)

	timer.reset(time.Millisecond, func(gen uint64) { fired <- gen })

	select {
	case gen := <-fired:
		if !timer.current(gen) {
			t.Error("an untouched timer should report its generation as current")
		}
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
}

func TestIdleTimer_ResetAfterFireMakesCallbackStale(t *testing.T) {
	var timer idleTimer
	fired := make(chan uint64, 1)
	proceed := make(chan struct{})
	stale := make(chan bool, 1)

	// The callback has fired but waits, as it would on a busy detector lock.
	timer.reset(time.Millisecond, func(gen uint64) {
		fired <- gen
		<-proceed
		stale <- !timer.current(gen)
	})

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}

	// A frame is served meanwhile and rearms the timer.
	timer.reset(time.Hour, func(uint64) {})
	close(proceed)

	if !<-stale {
		t.Error("callback armed before the last reset must see itself as stale")
	}
	timer.stop()
}

func TestIdleTimer_StopInvalidates(t *testing.T) {
	var timer idleTimer
	fired := make(chan uint64, 1)

	timer.reset(time.Millisecond, func(gen uint64) { fired <- gen })
	gen := <-fired
	timer.stop()

	if timer.current(gen) {
		t.Error("stop should invalidate the fired generation")
	}
}

func TestIdleTimer_NilAndZeroDuration(t *testing.T) {
	var nilTimer *idleTimer
	nilTimer.reset(time.Millisecond, func(uint64) { t.Error("nil timer fired") })
	nilTimer.stop()
	if nilTimer.current(0) {
		t.Error("nil timer has no current generation")
	}

	var timer idleTimer
	timer.reset(0, func(uint64) { t.Error("zero duration should disable the timer") })
	time.Sleep(10 * time.Millisecond)
}

func TestMediaPipeDetector_StaleIdleCallbackKeepsProcess(t *testing.T) {
	d := &MediaPipeDetector{idle: &idleTimer{}}
	fired := make(chan uint64, 1)

	d.idle.reset(time.Millisecond, func(gen uint64) { fired <- gen })
	gen := <-fired

	// Mark the process as running without spawning one; a stale callback
	// must return before touching it.
	d.started = true
	d.idle.reset(time.Hour, func(uint64) {})
	d.shutdownIfIdle(gen)

	if !d.started {
		t.Error("stale idle callback shut down a busy detector")
	}
	d.idle.stop()
}
