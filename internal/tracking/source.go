package tracking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ayusman/hologlobe/internal/capture"
	"github.com/ayusman/hologlobe/internal/detector"
	"github.com/ayusman/hologlobe/internal/log"
)

// Source runs the camera and the hand detector on their own cadence and
// publishes a snapshot per processed frame.
//
// Frame loop:
//  1. read a frame
//  2. skip inference when the motion gate stays closed; the last snapshot holds
//  3. detect hands and drop any with non-finite landmarks
//  4. publish a new snapshot
type Source struct {
	camera   capture.Camera
	detector detector.Detector
	gate     *capture.MotionGate
	out      *Handoff
	log      *slog.Logger

	mu      sync.Mutex
	enabled bool
	// epoch changes on every pause and resume. A frame whose epoch is no
	// longer current was started before the switch and is discarded.
	epoch uint64
	seq   uint64
	now   func() time.Time
}

// NewSource wires a camera and detector to out. gate may be nil to run
// inference on every frame.
func NewSource(cam capture.Camera, det detector.Detector, gate *capture.MotionGate, out *Handoff) *Source {
	return &Source{
		camera:   cam,
		detector: det,
		gate:     gate,
		out:      out,
		log:      log.With("component", "source"),
		enabled:  true,
		now:      time.Now,
	}
}

// SetEnabled pauses or resumes tracking. Pausing publishes an empty snapshot
// so the engines fall back to their idle behavior instead of holding the
// last hands forever.
func (s *Source) SetEnabled(enabled bool) {
	s.mu.Lock()
	changed := s.enabled != enabled
	s.enabled = enabled
	if changed {
		s.epoch++
		if !enabled {
			s.publishLocked(nil)
		}
	}
	s.mu.Unlock()

	if changed && enabled && s.gate != nil {
		s.gate.Reset()
	}
}

// Enabled reports whether tracking is running.
func (s *Source) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// Run opens the camera and processes frames at the camera's rate until ctx is
// done. Per-frame failures are logged and skipped.
func (s *Source) Run(ctx context.Context) error {
	if err := s.camera.Open(); err != nil {
		return fmt.Errorf("open camera: %w", err)
	}
	defer s.camera.Close()

	fps := s.camera.FPS()
	if fps <= 0 {
		fps = capture.DefaultFPS
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	s.log.Info("landmark source started", "fps", fps)
	defer s.log.Info("landmark source stopped")

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := s.Step(); err != nil && !errors.Is(err, ErrPaused) {
				s.log.Warn("frame skipped", "error", err)
			}
		}
	}
}

// ErrPaused is returned by Step while tracking is disabled.
var ErrPaused = errors.New("tracking paused")

// Step processes a single frame.
func (s *Source) Step() error {
	s.mu.Lock()
	enabled, epoch := s.enabled, s.epoch
	s.mu.Unlock()
	if !enabled {
		return ErrPaused
	}

	frame, err := s.camera.ReadFrame()
	if err != nil {
		return fmt.Errorf("read frame: %w", err)
	}
	defer frame.Close()

	if s.gate != nil {
		if open, _ := s.gate.Open(frame); !open {
			return nil
		}
	}

	hands, err := s.detector.Detect(frame)
	if err != nil {
		return fmt.Errorf("detect hands: %w", err)
	}

	valid := make([]detector.HandLandmarks, 0, len(hands))
	for i := range hands {
		if err := hands[i].Validate(); err != nil {
			s.log.Warn("dropping hand", "handedness", hands[i].Handedness, "error", err)
			continue
		}
		valid = append(valid, hands[i])
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		return ErrPaused
	}
	s.publishLocked(valid)
	return nil
}

// publishLocked must be called with s.mu held, so a frame finishing late
// cannot land after the empty snapshot of a pause.
func (s *Source) publishLocked(hands []detector.HandLandmarks) {
	s.seq++
	s.out.Publish(NewSnapshot(hands, s.seq, s.now()))
}
