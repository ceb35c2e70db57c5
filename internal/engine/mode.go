package engine

// Mode is the interaction mode an engine chose for the current frame.
// It is derived from the hand every tick and never stored across ticks.
type Mode int

const (
	// ModeIdle means the controlling hand is absent.
	ModeIdle Mode = iota
	// ModeDrag means the hand is pinching and moves the target.
	ModeDrag
	// ModeInspect means the globe hand is open: it rotates and scales.
	ModeInspect
	// ModeHold means the panel hand is open; the panel stays put.
	ModeHold
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeDrag:
		return "drag"
	case ModeInspect:
		return "inspect"
	case ModeHold:
		return "hold"
	}
	return "unknown"
}
