// Package app hosts the interaction engine: it runs the landmark source in
// the background and ticks the engine at display rate.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ayusman/hologlobe/internal/capture"
	"github.com/ayusman/hologlobe/internal/config"
	"github.com/ayusman/hologlobe/internal/detector"
	"github.com/ayusman/hologlobe/internal/engine"
	"github.com/ayusman/hologlobe/internal/log"
	"github.com/ayusman/hologlobe/internal/tracking"
)

// Scene camera the viewport is derived from.
const (
	CameraFOV      = 40
	CameraDistance = 5
)

// MaxDelta caps the time step of a single tick. A stalled host resumes with a
// normal step instead of one large jump.
const MaxDelta = 250 * time.Millisecond

// Config holds configuration options for the application.
type Config struct {
	// TickRate is the number of engine ticks per second.
	TickRate int
	Screen   engine.Size
	Engine   engine.Config
}

// FromSettings builds an app Config from the loaded runtime settings.
func FromSettings(s config.Config) Config {
	ec := engine.DefaultConfig()
	ec.Globe.PinchThreshold = s.GlobePinch
	ec.Panel.PinchThreshold = s.PanelPinch
	return Config{
		TickRate: s.TickRate,
		Screen:   engine.Size{Width: s.ScreenWidth, Height: s.ScreenHeight},
		Engine:   ec,
	}
}

// App owns the landmark source, the snapshot handoff and the engine.
//
// The engine is only touched from the tick loop (or Step in tests). Requests
// from other goroutines, such as a subject change from the tray, are queued
// and applied at the start of the next tick.
type App struct {
	config   Config
	viewport engine.Size
	catalog  *config.Catalog
	detector detector.Detector
	gate     *capture.MotionGate
	source   *tracking.Source
	handoff  *tracking.Handoff
	engine   *engine.Engine
	log      *slog.Logger

	mu       sync.RWMutex
	subject  config.Subject
	pending  chan config.Subject
	onFrame  []func(engine.Frame)
	onRegion []func(engine.Region)
	cancel   context.CancelFunc
	done     sync.WaitGroup

	// Tick loop state.
	started time.Time
	last    time.Time
	region  engine.Region
}

// New wires cam and det into a source and creates the engine for the
// catalog's default subject. gate may be nil.
func New(cfg Config, cam capture.Camera, det detector.Detector, gate *capture.MotionGate, catalog *config.Catalog) *App {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	subject := catalog.DefaultSubject()
	cfg.Engine.Regions = subject.Regions

	handoff := &tracking.Handoff{}
	a := &App{
		config:   cfg,
		viewport: engine.ViewportAt(CameraFOV, CameraDistance, cfg.Screen.Width/cfg.Screen.Height),
		catalog:  catalog,
		detector: det,
		gate:     gate,
		source:   tracking.NewSource(cam, det, gate, handoff),
		handoff:  handoff,
		engine:   engine.New(cfg.Engine, cfg.Screen),
		log:      log.With("component", "app"),
		subject:  subject,
		pending:  make(chan config.Subject, 1),
		region:   engine.RegionUnknown,
	}
	return a
}

// SetEnabled enables or disables hand tracking.
func (a *App) SetEnabled(enabled bool) {
	a.source.SetEnabled(enabled)
	a.log.Info("tracking toggled", "enabled", enabled)
}

// IsEnabled returns whether hand tracking is currently enabled.
func (a *App) IsEnabled() bool {
	return a.source.Enabled()
}

// OnFrame registers fn to receive every frame. Callbacks run on the tick
// loop and must not block.
func (a *App) OnFrame(fn func(engine.Frame)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onFrame = append(a.onFrame, fn)
}

// OnRegion registers fn to be called whenever the region in view changes.
func (a *App) OnRegion(fn func(engine.Region)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onRegion = append(a.onRegion, fn)
}

// SetSubject switches to the catalog subject with the given id. The engine
// is reset on the next tick.
func (a *App) SetSubject(id string) error {
	s, err := a.catalog.Lookup(id)
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.subject = s
	a.mu.Unlock()

	// Only the latest request matters.
	select {
	case <-a.pending:
	default:
	}
	a.pending <- s

	a.log.Info("subject selected", "subject", s.ID)
	return nil
}

// Subject returns the selected subject.
func (a *App) Subject() config.Subject {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.subject
}

// Catalog returns the subject catalog.
func (a *App) Catalog() *config.Catalog {
	return a.catalog
}

// Source returns the landmark source.
func (a *App) Source() *tracking.Source {
	return a.source
}

// Handoff returns the snapshot handoff the source publishes to.
func (a *App) Handoff() *tracking.Handoff {
	return a.handoff
}

// Viewport returns the scene area visible at the globe's depth.
func (a *App) Viewport() engine.Size {
	return a.viewport
}

// Start launches the landmark source and the tick loop.
func (a *App) Start(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cancel != nil {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	a.cancel = cancel

	a.done.Add(2)
	go func() {
		defer a.done.Done()
		if err := a.source.Run(ctx); err != nil {
			a.log.Error("landmark source failed", "error", err)
		}
	}()
	go func() {
		defer a.done.Done()
		a.runLoop(ctx)
	}()

	a.log.Info("started", "tick_rate", a.config.TickRate, "subject", a.subject.ID)
	return nil
}

// Stop halts both loops and waits for them to exit.
func (a *App) Stop() {
	a.mu.Lock()
	cancel := a.cancel
	a.cancel = nil
	a.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	a.done.Wait()
	a.log.Info("stopped")
}

// Close stops the app and releases the detector and the motion gate.
func (a *App) Close() error {
	a.Stop()
	if a.gate != nil {
		a.gate.Close()
	}
	if err := a.detector.Close(); err != nil {
		return fmt.Errorf("close detector: %w", err)
	}
	return nil
}
