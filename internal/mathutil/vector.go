package mathutil

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func round(v float32) float32 {
	return float32(math.Round(float64(v)))
}

// RoundVector2 rounds each component to the nearest integer. Halfway values
// round away from zero.
func RoundVector2(v rl.Vector2) rl.Vector2 {
	return rl.Vector2{X: round(v.X), Y: round(v.Y)}
}

// RoundVector3 rounds each component to the nearest integer.
func RoundVector3(v rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: round(v.X), Y: round(v.Y), Z: round(v.Z)}
}

// SnapVector2 snaps each component to the nearest multiple of step.
// A zero or negative step leaves the vector unchanged.
func SnapVector2(v rl.Vector2, step float32) rl.Vector2 {
	if step <= 0 {
		return v
	}
	return rl.Vector2{
		X: round(v.X/step) * step,
		Y: round(v.Y/step) * step,
	}
}

// ClampMagnitude limits the length of v to maxLength, preserving direction.
func ClampMagnitude(v rl.Vector2, maxLength float32) rl.Vector2 {
	if maxLength <= 0 {
		return rl.Vector2{}
	}
	lenSq := v.X*v.X + v.Y*v.Y
	if lenSq <= maxLength*maxLength {
		return v
	}
	scale := maxLength / float32(math.Sqrt(float64(lenSq)))
	return rl.Vector2{X: v.X * scale, Y: v.Y * scale}
}
