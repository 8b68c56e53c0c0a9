package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Plane is the set of points p with Normal·p + Constant = 0
type Plane struct {
	Normal   rl.Vector3
	Constant float32
}

// PlaneFromTriangle returns the plane through the triangle's three vertices.
func PlaneFromTriangle(t Triangle) Plane {
	edge1 := rl.Vector3Subtract(t.V1, t.V0)
	edge2 := rl.Vector3Subtract(t.V2, t.V0)
	normal := rl.Vector3Normalize(rl.Vector3CrossProduct(edge1, edge2))
	return Plane{Normal: normal, Constant: -rl.Vector3DotProduct(normal, t.V0)}
}

// Distance returns the signed distance from p to the plane.
func (pl Plane) Distance(p rl.Vector3) float32 {
	return rl.Vector3DotProduct(pl.Normal, p) + pl.Constant
}

// ReflectVector mirrors a direction across the plane's normal.
func (pl Plane) ReflectVector(v rl.Vector3) rl.Vector3 {
	return rl.Vector3Reflect(v, pl.Normal)
}

// ReflectPoint mirrors a position. Reflecting across the normal alone only
// holds for planes through the origin, so the -2*Constant*Normal term moves
// the result back onto the far side of the actual plane.
func (pl Plane) ReflectPoint(p rl.Vector3) rl.Vector3 {
	reflected := rl.Vector3Reflect(p, pl.Normal)
	return rl.Vector3Add(reflected, rl.Vector3Scale(pl.Normal, -2*pl.Constant))
}

// Contact is the outcome of a bounce against one face.
type Contact struct {
	Hit      Hit
	Plane    Plane
	Position rl.Vector3 // corrected ball position
	Velocity rl.Vector3 // reflected, damped velocity
	Normal   rl.Vector3 // plane normal turned to face the incoming ball
}

// Respond bounces the ball off the face in hit. position is where the ball
// ended up after integration (on the far side of the face), velocity its
// velocity before the bounce. restitution is clamped to [0, 1]: the new
// position is pulled from the mirrored point toward the hit point, and the
// mirrored velocity is scaled by the same factor.
func Respond(hit Hit, position, velocity rl.Vector3, restitution float32) Contact {
	restitution = rl.Clamp(restitution, 0, 1)
	plane := PlaneFromTriangle(hit.Triangle)

	mirrored := plane.ReflectPoint(position)
	corrected := rl.Vector3Lerp(hit.Point, mirrored, restitution)
	bounced := rl.Vector3Scale(plane.ReflectVector(velocity), restitution)

	facing := plane.Normal
	if rl.Vector3DotProduct(velocity, facing) > 0 {
		facing = rl.Vector3Negate(facing)
	}

	return Contact{
		Hit:      hit,
		Plane:    plane,
		Position: corrected,
		Velocity: bounced,
		Normal:   facing,
	}
}
