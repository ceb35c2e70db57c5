package detector

import (
	"sync"
	"time"
)

// idleTimer runs a callback once no reset has happened for a while.
//
// A timer that already fired cannot be stopped, so each callback receives the
// generation it was armed with and must check current before acting.
type idleTimer struct {
	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

func (t *idleTimer) reset(d time.Duration, fn func(gen uint64)) {
	if t == nil || d <= 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
	}
	t.gen++
	gen := t.gen
	t.timer = time.AfterFunc(d, func() { fn(gen) })
}

// current reports whether gen belongs to the latest reset with no stop since.
func (t *idleTimer) current(gen uint64) bool {
	if t == nil {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.timer != nil && t.gen == gen
}

func (t *idleTimer) stop() {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.gen++
}
