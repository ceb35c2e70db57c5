package engine

import (
	"fmt"

	"cogentcore.org/core/math32"

	"github.com/ayusman/hologlobe/internal/log"
)

// approach moves current a fraction of the way toward target. Applied once
// per tick, the remaining distance shrinks by (1 - factor) every frame.
// A current value already at target stays bit-identical.
func approach(current, target, factor float32) float32 {
	return current + (target-current)*factor
}

func approach2(current, target math32.Vector2, factor float32) math32.Vector2 {
	return math32.Vector2{
		X: approach(current.X, target.X, factor),
		Y: approach(current.Y, target.Y, factor),
	}
}

func approach3(current, target math32.Vector3, factor float32) math32.Vector3 {
	return math32.Vector3{
		X: approach(current.X, target.X, factor),
		Y: approach(current.Y, target.Y, factor),
		Z: approach(current.Z, target.Z, factor),
	}
}

// finite reports whether all values are real numbers. With the debug build
// tag a non-finite value panics; otherwise the caller keeps last frame's state.
func finite(what string, values ...float32) bool {
	for _, v := range values {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			if debugAsserts {
				panic(fmt.Sprintf("engine: non-finite %s: %v", what, values))
			}
			log.Warn("holding previous frame", "reason", "non-finite "+what, "values", values)
			return false
		}
	}
	return true
}
