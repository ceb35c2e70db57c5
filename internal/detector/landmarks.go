// Package detector provides hand landmark types and the detector interface
// that feeds tracked hands into the interaction engine.
package detector

import (
	"fmt"
	"math"
)

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Palm is the landmark used as the hand's position. The middle finger MCP
// sits at the center of the palm and jitters less than any fingertip.
const Palm = MiddleMCP

// Handedness labels which hand a landmark set belongs to.
type Handedness string

const (
	Left  Handedness = "Left"
	Right Handedness = "Right"
)

// ParseHandedness converts a detector label into a Handedness.
func ParseHandedness(s string) (Handedness, error) {
	switch Handedness(s) {
	case Left:
		return Left, nil
	case Right:
		return Right, nil
	}
	return "", fmt.Errorf("unknown handedness %q", s)
}

// Point3D represents a landmark position. X and Y are normalized to the frame
// width and height; Z is depth relative to the wrist.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HandLandmarks represents the 21 hand landmarks detected by MediaPipe.
type HandLandmarks struct {
	Points     [NumLandmarks]Point3D `json:"points"`
	Handedness Handedness            `json:"handedness"`
	Score      float64               `json:"score"`
}

// PalmPoint returns the palm landmark.
func (h *HandLandmarks) PalmPoint() Point3D {
	return h.Points[Palm]
}

// Validate reports the first landmark with a non-finite coordinate.
func (h *HandLandmarks) Validate() error {
	if h == nil {
		return nil
	}
	for i, p := range h.Points {
		if !finite(p.X) || !finite(p.Y) || !finite(p.Z) {
			return fmt.Errorf("landmark %d is not finite: %+v", i, p)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
