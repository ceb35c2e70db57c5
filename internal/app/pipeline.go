package app

import (
	"context"
	"time"

	"github.com/ayusman/hologlobe/internal/engine"
)

// runLoop ticks the engine at the configured rate until ctx is done.
//
// Each tick:
//  1. apply a queued subject change (reset the engine)
//  2. load whatever snapshot the source published last
//  3. advance the engine by the wall-clock time since the previous tick
//  4. hand the frame to the consumers
func (a *App) runLoop(ctx context.Context) {
	ticker := time.NewTicker(time.Second / time.Duration(a.config.TickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			a.Step(now)
		}
	}
}

// Step runs a single tick as if the display refreshed at now. The first
// step after creation or a subject change advances by one nominal tick.
func (a *App) Step(now time.Time) engine.Frame {
	select {
	case s := <-a.pending:
		a.engine.Reset(a.config.Screen)
		a.engine.SetRegions(s.Regions)
		a.started = time.Time{}
		a.log.Info("engine reset", "subject", s.ID, "regions", s.Regions)
	default:
	}

	nominal := time.Second / time.Duration(a.config.TickRate)
	if a.started.IsZero() {
		a.started = now.Add(-nominal)
		a.last = a.started
	}

	delta := now.Sub(a.last)
	if delta > MaxDelta {
		a.log.Debug("clamping tick delta", "delta", delta)
		delta = MaxDelta
	}
	if delta < 0 {
		delta = 0
	}
	a.last = now

	frame := a.engine.Tick(a.handoff.Load(), engine.Input{
		Delta:    float32(delta.Seconds()),
		Elapsed:  float32(now.Sub(a.started).Seconds()),
		Viewport: a.viewport,
		Screen:   a.config.Screen,
	})

	a.mu.RLock()
	onFrame := a.onFrame
	onRegion := a.onRegion
	a.mu.RUnlock()

	for _, fn := range onFrame {
		fn(frame)
	}

	if frame.Region != a.region {
		a.log.Debug("region changed", "from", a.region, "to", frame.Region)
		a.region = frame.Region
		for _, fn := range onRegion {
			fn(frame.Region)
		}
	}

	return frame
}
