package physics

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Body is a point mass moving through the world; the ball's radius is
// already folded into the meshes it collides with.
type Body struct {
	Position rl.Vector3
	Velocity rl.Vector3
}

// Speed returns the length of the body's velocity.
func (b *Body) Speed() float32 {
	return rl.Vector3Length(b.Velocity)
}

type PhysicsWorld struct {
	Gravity     rl.Vector3
	Friction    float32 // velocity retained per 1/60 s, 1 = no damping
	Restitution float32 // bounce factor for mesh contacts
	MaxSpeed    float32 // 0 disables the cap

	meshes    []Mesh
	triangles int

	// Per-query counters, reset on every Advance
	lastCandidates int
}

func NewPhysicsWorld() *PhysicsWorld {
	return &PhysicsWorld{
		Gravity:     rl.Vector3{X: 0, Y: -20.0, Z: 0},
		Friction:    0.99,
		Restitution: 0.7,
		MaxSpeed:    40,
	}
}

// SetMeshes replaces the collision set wholesale. Meshes are treated as
// read-only from here on.
func (p *PhysicsWorld) SetMeshes(meshes []Mesh) {
	p.meshes = meshes
	p.triangles = 0
	for _, m := range meshes {
		p.triangles += len(m.Triangles())
	}
	log.Printf("Physics: %d meshes, %d triangles", len(p.meshes), p.triangles)
}

func (p *PhysicsWorld) Meshes() []Mesh {
	return p.meshes
}

// TriangleCount returns the number of triangles across all meshes
func (p *PhysicsWorld) TriangleCount() int {
	return p.triangles
}

// LastCandidateCount returns how many meshes survived the broad phase in the
// most recent collision query.
func (p *PhysicsWorld) LastCandidateCount() int {
	return p.lastCandidates
}

// Candidates returns the indices of meshes whose bounding box the segment
// from -> to may touch. It never drops a mesh the segment actually crosses.
func (p *PhysicsWorld) Candidates(from, to rl.Vector3) []int {
	candidates := make([]int, 0, len(p.meshes))
	for i, m := range p.meshes {
		if m.BoundingBox().MayBeHit(from, to) {
			candidates = append(candidates, i)
		}
	}
	return candidates
}

// Collide runs the broad phase and sweep for a body that moved from -> to,
// and returns the bounce against the nearest face crossed.
func (p *PhysicsWorld) Collide(from, to, velocity rl.Vector3) (Contact, bool) {
	candidates := p.Candidates(from, to)
	p.lastCandidates = len(candidates)
	if len(candidates) == 0 {
		return Contact{}, false
	}

	hit, ok := Sweep(from, to, p.meshes, candidates)
	if !ok {
		return Contact{}, false
	}
	return Respond(hit, to, velocity, p.Restitution), true
}

// Damping returns the multiplicative velocity decay for a step of deltaTime.
func (p *PhysicsWorld) Damping(deltaTime float32) float32 {
	damping := float32(1.0) - (1.0-p.Friction)*deltaTime*60
	return rl.Clamp(damping, 0, 1)
}

// Advance moves b through one step: gravity, friction, speed cap,
// integration, then collision against the meshes.
func (p *PhysicsWorld) Advance(b *Body, deltaTime float32) (Contact, bool) {
	p.lastCandidates = 0
	if deltaTime <= 0 {
		return Contact{}, false
	}

	b.Velocity = rl.Vector3Add(b.Velocity, rl.Vector3Scale(p.Gravity, deltaTime))
	b.Velocity = rl.Vector3Scale(b.Velocity, p.Damping(deltaTime))
	b.Velocity = ClampSpeed(b.Velocity, p.MaxSpeed)

	from := b.Position
	to := rl.Vector3Add(from, rl.Vector3Scale(b.Velocity, deltaTime))

	contact, hit := p.Collide(from, to, b.Velocity)
	if hit {
		b.Position = contact.Position
		b.Velocity = contact.Velocity
	} else {
		b.Position = to
	}
	return contact, hit
}
