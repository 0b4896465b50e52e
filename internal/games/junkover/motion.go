package junkover

import (
	"math"

	"github.com/vovakirdan/junkover/internal/core"
	"github.com/vovakirdan/junkover/internal/motion"
)

// Integrate applies one tilt sample to pos. The device axes are crossed:
// AY drives horizontal motion and AX drives vertical motion. It returns the
// clamped position and the raw change on each axis.
func Integrate(pos core.Vec2, s motion.Sample, gain float64, field core.Bounds) (next core.Vec2, changeX, changeY float64) {
	changeX = s.AY * gain
	changeY = s.AX * gain

	next = core.Vec2{X: pos.X - changeX, Y: pos.Y + changeY}
	return field.Clamp(next), changeX, changeY
}

// IsStill reports whether a change is small enough to count as holding steady.
func IsStill(changeX, changeY, threshold float64) bool {
	return math.Abs(changeX)+math.Abs(changeY) <= threshold
}
