package engine

import (
	"cogentcore.org/core/math32"

	"github.com/ayusman/hologlobe/internal/gesture"
)

// GlobeConfig tunes the primary-object engine.
type GlobeConfig struct {
	// PinchThreshold separates drag (below) from inspect (at or above).
	PinchThreshold float64
	// Smoothing is the per-tick fraction of the remaining distance covered.
	Smoothing float32

	// RotationRate is the baseline spin in radians per second.
	RotationRate float32
	// DragRotation scales the baseline spin while dragging.
	DragRotation float32
	// RotationGain converts the palm's horizontal offset from center into spin.
	RotationGain float32

	// ScaleGain converts pinch distance into scale in inspect mode.
	ScaleGain float32
	ScaleMin  float32
	ScaleMax  float32

	// IdleScale and IdleAmplitude shape the breathing animation with no hand.
	IdleScale     float32
	IdleAmplitude float32

	InitialPosition math32.Vector3
}

// DefaultGlobeConfig returns the tuning for the earth globe.
func DefaultGlobeConfig() GlobeConfig {
	return GlobeConfig{
		PinchThreshold:  0.04,
		Smoothing:       0.1,
		RotationRate:    0.1,
		DragRotation:    0.5,
		RotationGain:    8.0,
		ScaleGain:       13.0,
		ScaleMin:        0.3,
		ScaleMax:        6.0,
		IdleScale:       2.2,
		IdleAmplitude:   0.1,
		InitialPosition: math32.Vector3{X: -2.2, Y: -0.2, Z: 0},
	}
}

// GlobeState is the smoothed transform of the globe after a tick.
type GlobeState struct {
	Position math32.Vector3
	// RotationSpeed is the angle added per tick, in radians.
	RotationSpeed float32
	Scale         float32
	// Rotation is the accumulated spin angle about the vertical axis. It is
	// never wrapped.
	Rotation float32
	Mode     Mode
}

// GlobeTarget is what the smoothed values chased during the last tick.
type GlobeTarget struct {
	Position      math32.Vector3
	RotationSpeed float32
	Scale         float32
}

// Globe is the primary-object engine. It reacts to the left hand:
//
//   - no hand: the globe breathes around its idle scale and spins slowly
//   - pinch: the globe follows the palm across the viewport, spinning at half speed
//   - open hand: palm offset from center steers the spin, pinch width sets the scale
type Globe struct {
	cfg    GlobeConfig
	state  GlobeState
	target GlobeTarget
}

// NewGlobe creates a globe at its startup position and scale.
func NewGlobe(cfg GlobeConfig) *Globe {
	state := GlobeState{
		Position: cfg.InitialPosition,
		Scale:    cfg.IdleScale,
		Mode:     ModeIdle,
	}
	return &Globe{
		cfg:   cfg,
		state: state,
		target: GlobeTarget{
			Position: state.Position,
			Scale:    state.Scale,
		},
	}
}

// State returns the state after the last tick.
func (g *Globe) State() GlobeState {
	return g.state
}

// Target returns the targets of the last tick.
func (g *Globe) Target() GlobeTarget {
	return g.target
}

// Tick computes this frame's targets from the hand and moves the smoothed
// state toward them, then integrates the rotation.
func (g *Globe) Tick(hand gesture.Classification, in Input) GlobeState {
	base := g.cfg.RotationRate * in.Delta
	t := GlobeTarget{
		Position:      g.state.Position,
		RotationSpeed: base,
		Scale:         g.state.Scale,
	}

	mode := ModeIdle
	switch {
	case !hand.Present:
		t.Scale = g.cfg.IdleScale + math32.Sin(in.Elapsed)*g.cfg.IdleAmplitude

	case hand.Pinching:
		mode = ModeDrag
		t.Position = gesture.ToViewport(hand.Palm, in.Viewport.Width, in.Viewport.Height)
		t.RotationSpeed = base * g.cfg.DragRotation

	default:
		mode = ModeInspect
		offset := float32(hand.Palm.X) - 0.5
		t.RotationSpeed = base + offset*-g.cfg.RotationGain*in.Delta
		t.Scale = float32(hand.Distance) * g.cfg.ScaleGain
	}
	t.Scale = math32.Clamp(t.Scale, g.cfg.ScaleMin, g.cfg.ScaleMax)

	if !finite("globe target", t.Position.X, t.Position.Y, t.Position.Z, t.RotationSpeed, t.Scale) {
		return g.state
	}

	k := g.cfg.Smoothing
	g.target = t
	g.state.Position = approach3(g.state.Position, t.Position, k)
	g.state.RotationSpeed = approach(g.state.RotationSpeed, t.RotationSpeed, k)
	g.state.Scale = approach(g.state.Scale, t.Scale, k)
	g.state.Rotation += g.state.RotationSpeed
	g.state.Mode = mode

	return g.state
}
