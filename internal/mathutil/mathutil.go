// Package mathutil holds small numeric helpers shared by gameplay components.
package mathutil

import (
	"golang.org/x/exp/constraints"
)

// Clamp restricts a value to a range.
func Clamp[T constraints.Integer | constraints.Float](v, min, max T) T {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Clamp01 restricts a value to [0, 1].
func Clamp01[T constraints.Float](v T) T {
	return Clamp(v, 0, 1)
}

// Lerp interpolates linearly from a to b; t is clamped to [0, 1].
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*Clamp01(t)
}

// MoveToward shifts current toward target by at most maxDelta.
func MoveToward[T constraints.Float](current, target, maxDelta T) T {
	delta := target - current
	if delta > maxDelta {
		return current + maxDelta
	}
	if delta < -maxDelta {
		return current - maxDelta
	}
	return target
}

// WrapAngle normalizes degrees into [0, 360).
func WrapAngle(deg float32) float32 {
	for deg >= 360 {
		deg -= 360
	}
	for deg < 0 {
		deg += 360
	}
	return deg
}
