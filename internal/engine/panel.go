package engine

import (
	"cogentcore.org/core/math32"

	"github.com/ayusman/hologlobe/internal/gesture"
)

// PanelConfig tunes the panel engine.
type PanelConfig struct {
	PinchThreshold float64
	Smoothing      float32
	// Offset is subtracted from the hand's pixel position so the panel
	// centers under the hand instead of hanging from its corner.
	Offset math32.Vector2
	// Inset places the panel at startup: Inset.X from the right edge,
	// Inset.Y from the top.
	Inset math32.Vector2
}

// DefaultPanelConfig returns the tuning for a 400x200 panel.
func DefaultPanelConfig() PanelConfig {
	return PanelConfig{
		PinchThreshold: 0.05,
		Smoothing:      0.1,
		Offset:         math32.Vector2{X: 200, Y: 100},
		Inset:          math32.Vector2{X: 420, Y: 100},
	}
}

// PanelState is the panel's screen position after a tick.
type PanelState struct {
	Position math32.Vector2
	// Target is the position the panel is settling toward: the last drag
	// target, or the startup position before any drag.
	Target math32.Vector2
	// Dragging is true exactly on frames where the right hand pinches.
	Dragging bool
	Mode     Mode
}

// Panel is the floating-panel engine. It reacts to the right hand and only
// to a pinch; an open hand or no hand never moves it somewhere new. Unlike
// the globe it has no idle animation.
type Panel struct {
	cfg   PanelConfig
	state PanelState
}

// NewPanel places the panel near the right edge of screen.
func NewPanel(cfg PanelConfig, screen Size) *Panel {
	start := math32.Vector2{X: screen.Width - cfg.Inset.X, Y: cfg.Inset.Y}
	return &Panel{
		cfg: cfg,
		state: PanelState{
			Position: start,
			Target:   start,
			Mode:     ModeIdle,
		},
	}
}

// State returns the state after the last tick.
func (p *Panel) State() PanelState {
	return p.state
}

// Tick updates the panel from the right hand.
//
// With no hand the panel does not move at all. While pinching it chases the
// hand. After a release it finishes settling on the last drag target.
func (p *Panel) Tick(hand gesture.Classification, screen Size) PanelState {
	switch {
	case !hand.Present:
		p.state.Dragging = false
		p.state.Mode = ModeIdle
		return p.state

	case hand.Pinching:
		target := gesture.ToScreen(hand.Palm, screen.Width, screen.Height, p.cfg.Offset)
		if !finite("panel target", target.X, target.Y) {
			return p.state
		}
		p.state.Target = target
		p.state.Dragging = true
		p.state.Mode = ModeDrag

	default:
		p.state.Dragging = false
		p.state.Mode = ModeHold
	}

	p.state.Position = approach2(p.state.Position, p.state.Target, p.cfg.Smoothing)
	return p.state
}
