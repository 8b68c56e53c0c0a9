package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// axisValue returns the component of v along axis 0=X, 1=Y, 2=Z
func axisValue(v rl.Vector3, axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// clampLength scales v down so its length does not exceed limit.
// A non-positive limit disables the clamp.
func clampLength(v rl.Vector3, limit float32) rl.Vector3 {
	if limit <= 0 {
		return v
	}
	lenSq := rl.Vector3LengthSqr(v)
	if lenSq == 0 || lenSq <= limit*limit {
		return v
	}
	return rl.Vector3Scale(v, limit/rl.Vector3Length(v))
}

// ClampSpeed caps a velocity to maxSpeed.
func ClampSpeed(v rl.Vector3, maxSpeed float32) rl.Vector3 {
	return clampLength(v, maxSpeed)
}
