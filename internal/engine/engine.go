// Package engine converts tracked hands into the per-frame transform of the
// globe and the position of the floating panel.
//
// The host calls Engine.Tick once per display refresh with the latest
// tracking snapshot. The left hand drives the globe, the right hand drives
// the panel. Each engine owns its smoothed state exclusively; nothing is
// shared between them and nothing in a tick blocks.
package engine

import (
	"log/slog"

	"cogentcore.org/core/math32"

	"github.com/ayusman/hologlobe/internal/detector"
	"github.com/ayusman/hologlobe/internal/gesture"
	"github.com/ayusman/hologlobe/internal/log"
	"github.com/ayusman/hologlobe/internal/tracking"
)

// Size is a width and height, in world units for viewports and pixels for screens.
type Size struct {
	Width  float32
	Height float32
}

// ViewportAt returns the visible area at distance from a perspective camera
// with the given vertical field of view, in world units.
func ViewportAt(fovDeg, distance, aspect float32) Size {
	h := 2 * distance * math32.Tan(math32.DegToRad(fovDeg)/2)
	return Size{Width: h * aspect, Height: h}
}

// Input is everything a tick needs besides the snapshot.
type Input struct {
	// Delta is the time since the previous tick, in seconds.
	Delta float32
	// Elapsed is the time since the engine started, in seconds.
	Elapsed float32
	// Viewport is the scene area visible at the globe's depth.
	Viewport Size
	// Screen is the UI surface the panel lives on, in pixels.
	Screen Size
}

// Config groups the settings of both engines.
type Config struct {
	Globe GlobeConfig
	Panel PanelConfig
	// Regions enables the region classifier for the current subject.
	Regions bool
}

// DefaultConfig returns the tuning used for the earth globe.
func DefaultConfig() Config {
	return Config{
		Globe:   DefaultGlobeConfig(),
		Panel:   DefaultPanelConfig(),
		Regions: true,
	}
}

// Frame is the output of one tick, consumed by the renderer and the UI.
type Frame struct {
	// Tick counts frames since the last reset, starting at 1.
	Tick   uint64
	Globe  GlobeState
	Layers Layers
	Panel  PanelState
	Region Region
}

// Engine runs the globe engine, the panel engine and the region classifier
// in order on every tick.
type Engine struct {
	cfg     Config
	globe   *Globe
	panel   *Panel
	regions RegionClassifier
	ticks   uint64
	log     *slog.Logger

	globeMode Mode
	panelMode Mode
}

// New creates an engine with state at its startup defaults. screen places the
// panel's initial position.
func New(cfg Config, screen Size) *Engine {
	e := &Engine{
		cfg: cfg,
		log: log.With("component", "engine"),
	}
	e.Reset(screen)
	return e
}

// Reset returns both engines to their startup state, as when a new subject
// is loaded.
func (e *Engine) Reset(screen Size) {
	e.globe = NewGlobe(e.cfg.Globe)
	e.panel = NewPanel(e.cfg.Panel, screen)
	e.regions = RegionClassifier{Enabled: e.cfg.Regions}
	e.ticks = 0
	e.globeMode = ModeIdle
	e.panelMode = ModeIdle
}

// SetRegions switches the region classifier on or off.
func (e *Engine) SetRegions(enabled bool) {
	e.cfg.Regions = enabled
	e.regions.Enabled = enabled
}

// Tick advances one display frame. A nil snapshot means no hands. The
// snapshot may be the same one as in the previous tick.
func (e *Engine) Tick(snap *tracking.Snapshot, in Input) Frame {
	e.ticks++

	left := gesture.Classify(snap.Hand(detector.Left), e.cfg.Globe.PinchThreshold)
	right := gesture.Classify(snap.Hand(detector.Right), e.cfg.Panel.PinchThreshold)

	g := e.globe.Tick(left, in)
	p := e.panel.Tick(right, in.Screen)

	if g.Mode != e.globeMode {
		e.log.Debug("globe mode", "from", e.globeMode, "to", g.Mode, "pinch", left.Distance)
		e.globeMode = g.Mode
	}
	if p.Mode != e.panelMode {
		e.log.Debug("panel mode", "from", e.panelMode, "to", p.Mode, "pinch", right.Distance)
		e.panelMode = p.Mode
	}

	return Frame{
		Tick:   e.ticks,
		Globe:  g,
		Layers: DeriveLayers(g, e.ticks),
		Panel:  p,
		Region: e.regions.Classify(g.Rotation),
	}
}

// Globe returns the globe engine.
func (e *Engine) Globe() *Globe {
	return e.globe
}

// Panel returns the panel engine.
func (e *Engine) Panel() *Panel {
	return e.panel
}
