package engine

import "cogentcore.org/core/math32"

// Decorative layer constants.
const (
	shellSpin  = 1.1
	shellScale = 1.02
	ringSpin   = -0.002
	ringScale  = 1.4
)

// RingTilt is the fixed tilt of the ring about the x axis, in radians.
const RingTilt float32 = math32.Pi / 3

// Layer is the transform of a decorative layer drawn with the globe.
type Layer struct {
	Position math32.Vector3
	Rotation float32
	Scale    float32
	// Tilt is a fixed rotation about the x axis.
	Tilt float32
}

// Layers are the atmosphere shell and the orbit ring. They follow the globe
// and are recomputed every frame, never smoothed on their own.
type Layers struct {
	Shell Layer
	Ring  Layer
}

// DeriveLayers computes both layers from the globe state after ticks frames.
// The ring counter-rotates at a constant rate per frame.
func DeriveLayers(g GlobeState, ticks uint64) Layers {
	return Layers{
		Shell: Layer{
			Position: g.Position,
			Rotation: g.Rotation * shellSpin,
			Scale:    g.Scale * shellScale,
		},
		Ring: Layer{
			Position: g.Position,
			Rotation: ringSpin * float32(ticks),
			Scale:    g.Scale * ringScale,
			Tilt:     RingTilt,
		},
	}
}
