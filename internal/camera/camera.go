package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FollowCamera trails the ball, looking along a yaw that uses the shot aim
// convention: yaw 0 looks down -Z, positive yaw turns towards +X.
type FollowCamera struct {
	Target   rl.Vector3 // eased look-at point
	Yaw      float32    // radians
	Pitch    float32    // radians above the horizon
	Distance float32

	MinDistance float32
	MaxDistance float32
	ZoomStep    float32 // distance per wheel notch

	// Easing rates in 1/s; higher catches up faster
	FollowRate float32
	TurnRate   float32
}

func New(target rl.Vector3, yaw float32) *FollowCamera {
	return &FollowCamera{
		Target:      target,
		Yaw:         yaw,
		Pitch:       0.45,
		Distance:    14,
		MinDistance: 5,
		MaxDistance: 40,
		ZoomStep:    1.5,
		FollowRate:  6,
		TurnRate:    3,
	}
}

// Snap jumps straight to target and yaw, for level loads.
func (c *FollowCamera) Snap(target rl.Vector3, yaw float32) {
	c.Target = target
	c.Yaw = yaw
}

// Update eases towards target and yaw. zoom is this frame's wheel movement,
// positive pulling the camera in.
func (c *FollowCamera) Update(target rl.Vector3, yaw, zoom, deltaTime float32) {
	if deltaTime > 0 {
		follow := ease(c.FollowRate, deltaTime)
		c.Target = rl.Vector3Lerp(c.Target, target, follow)

		turn := ease(c.TurnRate, deltaTime)
		c.Yaw = wrapAngle(c.Yaw + wrapAngle(yaw-c.Yaw)*turn)
	}

	c.Distance = rl.Clamp(c.Distance-zoom*c.ZoomStep, c.MinDistance, c.MaxDistance)
}

// Position returns where the eye sits: behind the target along the yaw and
// raised by the pitch.
func (c *FollowCamera) Position() rl.Vector3 {
	sinYaw, cosYaw := math.Sincos(float64(c.Yaw))
	sinPitch, cosPitch := math.Sincos(float64(c.Pitch))
	d := float64(c.Distance)

	return rl.Vector3{
		X: c.Target.X - float32(sinYaw*cosPitch*d),
		Y: c.Target.Y + float32(sinPitch*d),
		Z: c.Target.Z + float32(cosYaw*cosPitch*d),
	}
}

func (c *FollowCamera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position(),
		Target:     c.Target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}

// ease is the fraction of the remaining gap closed in dt at rate.
func ease(rate, dt float32) float32 {
	return 1 - float32(math.Exp(-float64(rate*dt)))
}

// wrapAngle maps a to [-pi, pi).
func wrapAngle(a float32) float32 {
	w := math.Mod(float64(a)+math.Pi, 2*math.Pi)
	if w < 0 {
		w += 2 * math.Pi
	}
	return float32(w - math.Pi)
}
