// Package gesture turns a hand's landmarks into the measurements the
// interaction engines act on.
//
// Both engines read the same measurement, the pinch distance between thumb
// tip and index tip. Below the pinch threshold it selects drag; above it the
// globe engine maps the same distance to scale. The threshold (around 0.04)
// sits below the distances that map into the useful scale range, so the two
// uses never compete for the same hand pose.
package gesture

import (
	"math"

	"github.com/ayusman/hologlobe/internal/detector"
)

// Classification is the per-frame reading of one hand.
// The zero value means no hand: callers hold or idle, it is not an error.
type Classification struct {
	Present  bool
	Pinching bool
	// Distance is the thumb-to-index pinch distance in normalized units.
	Distance float64
	Palm     detector.Point3D
}

// PinchDistance returns the planar distance between the thumb tip and the
// index fingertip. Depth is left out: z is relative to the wrist on a
// different scale and only adds noise.
func PinchDistance(hand *detector.HandLandmarks) float64 {
	thumb := hand.Points[detector.ThumbTip]
	index := hand.Points[detector.IndexTip]
	return math.Hypot(thumb.X-index.X, thumb.Y-index.Y)
}

// Classify measures hand against threshold. A distance equal to the threshold
// is not a pinch.
func Classify(hand *detector.HandLandmarks, threshold float64) Classification {
	if hand == nil {
		return Classification{}
	}
	d := PinchDistance(hand)
	return Classification{
		Present:  true,
		Pinching: d < threshold,
		Distance: d,
		Palm:     hand.PalmPoint(),
	}
}
