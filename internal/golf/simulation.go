// Package golf runs the game rules on top of the collision pipeline: shot
// charging and aiming, the ball's flight, the floor and the cup, and moving
// through the level list.
package golf

import (
	"fmt"
	"log"
	"math"

	"minigolf/internal/bound"
	"minigolf/internal/config"
	"minigolf/internal/engine"
	"minigolf/internal/level"
	"minigolf/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Simulation struct {
	cfg    config.Config
	levels []level.Level

	state   SimulationState
	current level.Level
	table   []level.Entry
	bounds  []*bound.Bound // obstacle bounds in table order, then the hole
	world   *physics.PhysicsWorld
	cup     float32 // hole radius of the current level

	// Input, captured between frames and consumed by the next Step
	launchRequested bool
	resetRequested  bool
	aimAxis         float32

	OnLevelLoaded   engine.EventWithArg[int]
	OnBounce        engine.EventWithArg[physics.Contact]
	OnLevelComplete engine.EventWithArg[int]
	OnRestart       engine.EventWithArg[int]
}

// New builds a simulation over levels and loads the first one.
func New(levels []level.Level, cfg config.Config) (*Simulation, error) {
	if len(levels) == 0 {
		return nil, level.ErrNoLevels
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	world := physics.NewPhysicsWorld()
	g := cfg.Physics.Gravity
	world.Gravity = rl.Vector3{X: g[0], Y: g[1], Z: g[2]}
	world.Friction = cfg.Physics.Friction
	world.Restitution = cfg.Physics.Restitution
	world.MaxSpeed = cfg.Physics.MaxSpeed

	s := &Simulation{
		cfg:    cfg,
		levels: levels,
		world:  world,
	}
	if err := s.load(0); err != nil {
		return nil, err
	}
	return s, nil
}

// --- Input ---

// RequestLaunch asks for a shot on the next step. It only has an effect
// while the ball is waiting in PreLaunch and is consumed by exactly one step.
func (s *Simulation) RequestLaunch() {
	s.launchRequested = true
}

// RequestReset asks for the current level to restart on the next step.
func (s *Simulation) RequestReset() {
	s.resetRequested = true
}

// SetAimInput sets the held aim input, -1 (left) to 1 (right).
func (s *Simulation) SetAimInput(axis float32) {
	s.aimAxis = rl.Clamp(axis, -1, 1)
}

// SetAim points the shot directly.
func (s *Simulation) SetAim(radians float32) {
	s.state.Aim = radians
}

// ResetAim points the shot at the cup.
func (s *Simulation) ResetAim() {
	toCup := rl.Vector3Subtract(s.current.Cup(), s.state.Ball.Position)
	if hypot(toCup.X, toCup.Z) < 1e-6 {
		s.state.Aim = 0
		return
	}
	s.state.Aim = YawTowards(toCup)
}

// --- Queries ---

func (s *Simulation) State() SimulationState {
	return s.state
}

func (s *Simulation) Config() config.Config {
	return s.cfg
}

func (s *Simulation) Level() level.Level {
	return s.current
}

func (s *Simulation) LevelCount() int {
	return len(s.levels)
}

// Obstacles returns the current level's obstacle table. Bound.Source indexes it.
func (s *Simulation) Obstacles() []level.Entry {
	return s.table
}

// Bounds returns the current level's collision surfaces, hole last.
func (s *Simulation) Bounds() []*bound.Bound {
	return s.bounds
}

// CupRadius returns the hole radius of the current level.
func (s *Simulation) CupRadius() float32 {
	return s.cup
}

func (s *Simulation) World() *physics.PhysicsWorld {
	return s.world
}

// --- Level management ---

// load builds every bound for level index and places the ball on its start.
// Bounds are rebuilt wholesale; nothing from the previous level survives.
func (s *Simulation) load(index int) error {
	l := s.levels[index]
	cup := l.CupRadius(s.cfg.Course.HoleRadius)
	radius := s.cfg.Ball.Radius
	smoothness := s.cfg.Course.Smoothness
	if err := l.CheckStart(radius); err != nil {
		return fmt.Errorf("level %d: %w", index+1, err)
	}

	table := l.Obstacles()
	bounds := make([]*bound.Bound, 0, len(table)+1)
	for i, e := range table {
		b, err := bound.Build(e.Shape, e.Placement, i, radius, smoothness)
		if err != nil {
			return fmt.Errorf("level %d: obstacle %d: %w", index+1, i, err)
		}
		bounds = append(bounds, b)
	}
	holeX, holeZ := l.Hole[0], l.Hole[1]
	hole, err := bound.Hole(holeX, holeZ, cup, radius, s.cfg.Course.SinkDepth, smoothness)
	if err != nil {
		return fmt.Errorf("level %d: hole: %w", index+1, err)
	}
	bounds = append(bounds, hole)

	s.current = l
	s.table = table
	s.bounds = bounds
	s.cup = cup
	s.world.SetMeshes(bound.Meshes(bounds))

	bonus := s.state.Bonus
	s.state = SimulationState{Level: index, Bonus: bonus}
	s.placeBall(l.Start())
	s.launchRequested = false
	s.resetRequested = false

	log.Printf("Golf: level %d loaded (%d bounds, %d triangles)",
		index+1, len(bounds), s.world.TriangleCount())
	s.OnLevelLoaded.Invoke(index)
	return nil
}

// placeBall puts a still ball at p ready for the next shot.
func (s *Simulation) placeBall(p rl.Vector3) {
	s.state.Ball = physics.Body{Position: p}
	s.state.LaunchFrom = p
	s.state.Orientation = rl.QuaternionIdentity()
	s.state.State = PreLaunch
	s.resetPower()
	s.ResetAim()
	s.state.CameraYaw = s.state.Aim
}

func (s *Simulation) resetPower() {
	s.state.Power = 0
	s.state.powerPhase = 0
}

// restart puts the current level back to its opening state. Bonus is kept.
func (s *Simulation) restart() {
	s.placeBall(s.current.Start())
	s.state.Launches = 0
	s.state.completeTimer = 0
	s.OnRestart.Invoke(s.state.Level)
}

// --- Stepping ---

// Step advances the simulation by dt seconds. Input requested since the last
// step is applied first. The only errors come from loading the next level.
func (s *Simulation) Step(dt float32) (Frame, error) {
	if dt < 0 || math.IsNaN(float64(dt)) {
		dt = 0
	}

	launch := s.launchRequested
	reset := s.resetRequested
	s.launchRequested = false
	s.resetRequested = false

	if reset && (s.state.State == PreLaunch || s.state.State == InFlight) {
		log.Printf("Golf: level %d reset", s.state.Level+1)
		s.restart()
	}

	frame := Frame{Roll: rl.QuaternionIdentity()}

	switch s.state.State {
	case PreLaunch:
		s.aim(dt)
		s.charge(dt)
		if launch {
			s.launch()
		}
	case InFlight:
		s.fly(dt, &frame)
	case LevelComplete:
		s.state.completeTimer -= dt
		if s.state.completeTimer <= 0 {
			if err := s.advanceLevel(); err != nil {
				return s.fill(frame), err
			}
		}
	case AllComplete:
	}

	return s.fill(frame), nil
}

func (s *Simulation) fill(f Frame) Frame {
	f.State = s.state.State
	f.Level = s.state.Level
	f.Position = s.state.Ball.Position
	f.Velocity = s.state.Ball.Velocity
	f.Orientation = s.state.Orientation
	f.Launches = s.state.Launches
	f.MaxLaunches = s.current.MaxLaunches
	f.Bonus = s.state.Bonus
	f.Power = s.state.Power
	f.Aim = s.state.Aim
	f.CameraYaw = s.state.CameraYaw
	return f
}

func (s *Simulation) aim(dt float32) {
	s.state.Aim += s.aimAxis * s.cfg.Launch.AimSpeed * dt
}

// charge swings the power meter smoothly between 0 and 1.
func (s *Simulation) charge(dt float32) {
	s.state.powerPhase += dt * s.cfg.Launch.PowerRate
	s.state.powerPhase = float32(math.Mod(float64(s.state.powerPhase), 2*math.Pi))
	s.state.Power = (1 - cos(s.state.powerPhase)) / 2
}

func (s *Simulation) launch() {
	impulse := rl.Vector3Scale(AimDirection(s.state.Aim), s.state.Power*s.cfg.Launch.MaxImpulse)
	s.state.Ball.Velocity = rl.Vector3Add(s.state.Ball.Velocity, impulse)
	s.state.LaunchFrom = s.state.Ball.Position
	s.state.Launches++
	s.state.CameraYaw = s.state.Aim
	s.state.State = InFlight
}

// complete scores a sunk ball and starts the pause before the next level.
func (s *Simulation) complete() {
	earned := s.current.MaxLaunches - s.state.Launches
	s.state.Bonus += earned
	s.state.Ball.Velocity = rl.Vector3{}
	s.state.completeTimer = s.cfg.Launch.LevelCompleteDelay
	s.state.State = LevelComplete
	log.Printf("Golf: level %d complete in %d launches (+%d bonus)",
		s.state.Level+1, s.state.Launches, earned)
	s.OnLevelComplete.Invoke(s.state.Level)
}

func (s *Simulation) advanceLevel() error {
	next := s.state.Level + 1
	if next >= len(s.levels) {
		s.state.State = AllComplete
		log.Printf("Golf: all %d levels complete, bonus %d", len(s.levels), s.state.Bonus)
		return nil
	}
	return s.load(next)
}

// endShot runs once the ball has stopped: either the launch budget is spent
// and the level restarts, or the next shot is readied from where it lies.
func (s *Simulation) endShot() {
	if s.state.Launches >= s.current.MaxLaunches {
		log.Printf("Golf: level %d out of launches, restarting", s.state.Level+1)
		s.restart()
		return
	}
	s.state.Ball.Velocity = rl.Vector3{}
	s.state.State = PreLaunch
	s.resetPower()
	s.ResetAim()
}
