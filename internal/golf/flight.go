package golf

import (
	"log"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// supportNormalY is how upright a bounced-off face must be to hold the ball
const supportNormalY = 0.5

// substeps splits a frame so that no sub-step carries the ball further than
// its own radius, within the configured budget.
func (s *Simulation) substeps(dt float32) int {
	g := s.cfg.Physics.Gravity
	gravity := rl.Vector3Length(rl.Vector3{X: g[0], Y: g[1], Z: g[2]})
	speed := s.state.Ball.Speed() + gravity*dt
	if limit := s.cfg.Physics.MaxSpeed; limit > 0 && speed > limit {
		speed = limit
	}
	n := int(math.Ceil(float64(speed * dt / s.cfg.Ball.Radius)))
	return min(max(n, 1), s.cfg.Physics.MaxSubsteps)
}

// fly advances an in-flight ball through one frame.
func (s *Simulation) fly(dt float32, frame *Frame) {
	if dt == 0 {
		return
	}

	b := &s.state.Ball
	start := b.Position
	onFloor := false
	supported := false

	n := s.substeps(dt)
	h := dt / float32(n)
	for i := 0; i < n; i++ {
		contact, hit := s.world.Advance(b, h)
		if hit {
			frame.Collided = true
			frame.Contact = contact
			if contact.Normal.Y > supportNormalY {
				supported = true
			}
			s.OnBounce.Invoke(contact)
		}

		if s.sunk() {
			s.roll(start, frame)
			s.complete()
			return
		}
		if s.floor() {
			onFloor = true
		}
		if b.Position.Y < -s.cfg.Course.OutOfBoundsDepth {
			log.Printf("Golf: ball out of bounds, back to (%.1f, %.1f, %.1f)",
				s.state.LaunchFrom.X, s.state.LaunchFrom.Y, s.state.LaunchFrom.Z)
			b.Position = s.state.LaunchFrom
			b.Velocity = rl.Vector3{}
			s.endShot()
			return
		}
	}

	s.roll(start, frame)

	if frame.Collided {
		v := b.Velocity
		if hypot(v.X, v.Z) > 1e-3 {
			s.state.CameraYaw = YawTowards(v)
		}
	}

	if b.Speed() < s.cfg.Physics.RestSpeed && (onFloor || supported) {
		s.endShot()
	}
}

// overCup reports whether p is horizontally inside the hole.
func (s *Simulation) overCup(p rl.Vector3) bool {
	cup := s.current.Cup()
	return hypot(p.X-cup.X, p.Z-cup.Z) < s.cup
}

// sunk reports whether the ball has dropped far enough into the cup.
func (s *Simulation) sunk() bool {
	p := s.state.Ball.Position
	return p.Y < -s.cfg.Course.SinkDepth && s.overCup(p)
}

// floor bounces the ball off the course plane and reports whether it is
// touching it. The cup takes precedence so the ball can drop in, and a ball
// already under the table is left to fall.
func (s *Simulation) floor() bool {
	b := &s.state.Ball
	r := s.cfg.Ball.Radius
	p := b.Position
	if s.overCup(p) || !s.current.OnCourse(p.X, p.Z) {
		return false
	}
	if p.Y > r || p.Y < -s.cfg.Course.TableDepth {
		return false
	}

	e := s.cfg.Physics.FloorRestitution
	b.Position.Y = r + (r-p.Y)*e
	if b.Velocity.Y < 0 {
		b.Velocity.Y = -b.Velocity.Y * e
	}
	if float32(math.Abs(float64(b.Velocity.Y))) < s.cfg.Physics.RestSpeed {
		b.Velocity.Y = 0
	}
	return true
}

// roll turns the ball by the distance it covered across the course this
// frame, about the axis perpendicular to its horizontal travel.
func (s *Simulation) roll(start rl.Vector3, frame *Frame) {
	moved := rl.Vector3Subtract(s.state.Ball.Position, start)
	moved.Y = 0
	dist := rl.Vector3Length(moved)
	if dist < 1e-6 {
		return
	}
	axis := rl.Vector3Normalize(rl.Vector3CrossProduct(rl.Vector3{Y: 1}, moved))
	delta := rl.QuaternionFromAxisAngle(axis, dist/s.cfg.Ball.Radius)
	frame.Roll = delta
	s.state.Orientation = rl.QuaternionNormalize(rl.QuaternionMultiply(delta, s.state.Orientation))
}
