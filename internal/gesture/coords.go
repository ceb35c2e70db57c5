package gesture

import (
	"cogentcore.org/core/math32"

	"github.com/ayusman/hologlobe/internal/detector"
)

// MirrorX flips a normalized x coordinate. The camera faces the user and the
// preview is shown mirrored, so a hand moving to the user's right decreases
// the raw landmark x. Every mapping from landmarks to the display goes
// through here.
func MirrorX(x float64) float64 {
	return 1 - x
}

// ToViewport maps a landmark into scene coordinates of a viewport width x
// height world units wide, centered on the origin. Scene y grows upward
// while landmark y grows downward.
func ToViewport(p detector.Point3D, width, height float32) math32.Vector3 {
	x := float32(MirrorX(p.X))*width - width/2
	y := -(float32(p.Y)*height - height/2)
	return math32.Vector3{X: x, Y: y, Z: 0}
}

// ToScreen maps a landmark to pixel coordinates and subtracts offset, so an
// element of size 2*offset ends up centered under the hand.
func ToScreen(p detector.Point3D, width, height float32, offset math32.Vector2) math32.Vector2 {
	return math32.Vector2{
		X: float32(MirrorX(p.X))*width - offset.X,
		Y: float32(p.Y)*height - offset.Y,
	}
}
