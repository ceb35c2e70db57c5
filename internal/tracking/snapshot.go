// Package tracking carries detected hands from the landmark source to the
// per-frame interaction engine.
package tracking

import (
	"sync/atomic"
	"time"

	"github.com/ayusman/hologlobe/internal/detector"
)

// Snapshot holds the latest hand of each handedness. Either may be nil.
// A published snapshot is never modified; the source builds a new one.
type Snapshot struct {
	Left  *detector.HandLandmarks
	Right *detector.HandLandmarks

	// Seq increases by one with every published snapshot.
	Seq        uint64
	CapturedAt time.Time
}

// NewSnapshot sorts detected hands by handedness. When the detector reports
// two hands with the same label, the first one wins.
func NewSnapshot(hands []detector.HandLandmarks, seq uint64, at time.Time) *Snapshot {
	s := &Snapshot{Seq: seq, CapturedAt: at}
	for i := range hands {
		h := hands[i]
		switch h.Handedness {
		case detector.Left:
			if s.Left == nil {
				s.Left = &h
			}
		case detector.Right:
			if s.Right == nil {
				s.Right = &h
			}
		}
	}
	return s
}

// Hand returns the hand with the given handedness, or nil. A nil snapshot
// has no hands.
func (s *Snapshot) Hand(h detector.Handedness) *detector.HandLandmarks {
	if s == nil {
		return nil
	}
	switch h {
	case detector.Left:
		return s.Left
	case detector.Right:
		return s.Right
	}
	return nil
}

// Empty reports whether no hand is tracked.
func (s *Snapshot) Empty() bool {
	return s == nil || (s.Left == nil && s.Right == nil)
}

// Handoff passes snapshots from one writer to one reader. Publish replaces
// the whole snapshot at once, so the reader never sees a half-written hand,
// and Load never blocks.
type Handoff struct {
	latest atomic.Pointer[Snapshot]
}

// Publish makes s the latest snapshot.
func (h *Handoff) Publish(s *Snapshot) {
	h.latest.Store(s)
}

// Load returns the latest snapshot, or nil before the first Publish. The
// reader must not assume it changed since the previous Load.
func (h *Handoff) Load() *Snapshot {
	return h.latest.Load()
}
