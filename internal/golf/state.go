package golf

import (
	"fmt"

	"minigolf/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type State int

const (
	// PreLaunch waits for a shot while the power meter swings.
	PreLaunch State = iota
	// InFlight runs the ball under gravity, friction and collision.
	InFlight
	// LevelComplete holds on a sunk ball until the next level loads.
	LevelComplete
	// AllComplete is terminal.
	AllComplete
)

func (s State) String() string {
	switch s {
	case PreLaunch:
		return "PreLaunch"
	case InFlight:
		return "InFlight"
	case LevelComplete:
		return "LevelComplete"
	case AllComplete:
		return "AllComplete"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// SimulationState is everything a frame step mutates. It is owned by a
// Simulation and handed to each stage of the frame in turn.
type SimulationState struct {
	State State
	Level int // zero-based index into the level list

	Ball        physics.Body
	Orientation rl.Quaternion // accumulated rolling rotation
	LaunchFrom  rl.Vector3    // where the current shot started

	Launches int
	Bonus    int // unused launches carried over from completed levels

	Aim        float32 // radians about +Y, 0 points toward -Z
	Power      float32 // 0..1
	powerPhase float32

	CameraYaw     float32
	completeTimer float32
}

// Frame is what a step hands to rendering and the HUD.
type Frame struct {
	State       State
	Level       int
	Position    rl.Vector3
	Velocity    rl.Vector3
	Roll        rl.Quaternion // rotation applied this frame
	Orientation rl.Quaternion
	Launches    int
	MaxLaunches int
	Bonus       int
	Collided    bool
	Contact     physics.Contact // last bounce this frame, valid when Collided
	Power       float32
	Aim         float32
	CameraYaw   float32
}

// AimDirection returns the horizontal unit vector for an aim angle.
func AimDirection(aim float32) rl.Vector3 {
	s, c := sincos(aim)
	return rl.Vector3{X: s, Z: -c}
}

// YawTowards returns the aim angle that points along the horizontal part of v.
func YawTowards(v rl.Vector3) float32 {
	return atan2(v.X, -v.Z)
}
