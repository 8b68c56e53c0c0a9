package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// aabbSlack widens every box test so that hits lying exactly on a box face
// survive float32 rounding.
const aabbSlack = 1e-4

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// EmptyAABB returns an inverted box that any Extend call will overwrite.
func EmptyAABB() AABB {
	return AABB{
		Min: rl.Vector3{X: math.MaxFloat32, Y: math.MaxFloat32, Z: math.MaxFloat32},
		Max: rl.Vector3{X: -math.MaxFloat32, Y: -math.MaxFloat32, Z: -math.MaxFloat32},
	}
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

// NewAABBFromTriangles returns the tightest box around every triangle vertex.
func NewAABBFromTriangles(tris []Triangle) AABB {
	box := EmptyAABB()
	for i := range tris {
		box = box.Extend(tris[i].V0).Extend(tris[i].V1).Extend(tris[i].V2)
	}
	return box
}

// Extend grows the box to include p.
func (a AABB) Extend(p rl.Vector3) AABB {
	return AABB{
		Min: rl.Vector3Min(a.Min, p),
		Max: rl.Vector3Max(a.Max, p),
	}
}

func (a AABB) IsEmpty() bool {
	return a.Min.X > a.Max.X || a.Min.Y > a.Max.Y || a.Min.Z > a.Max.Z
}

func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

func (a AABB) Size() rl.Vector3 {
	return rl.Vector3Subtract(a.Max, a.Min)
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// Contains reports whether p lies inside the box (faces included).
func (a AABB) Contains(p rl.Vector3) bool {
	return p.X >= a.Min.X-aabbSlack && p.X <= a.Max.X+aabbSlack &&
		p.Y >= a.Min.Y-aabbSlack && p.Y <= a.Max.Y+aabbSlack &&
		p.Z >= a.Min.Z-aabbSlack && p.Z <= a.Max.Z+aabbSlack
}

// IntersectsRay reports whether the ray origin + t*dir meets the box for some
// t in [0, maxDistance]. dir is expected to be normalized.
func (a AABB) IntersectsRay(origin, dir rl.Vector3, maxDistance float32) bool {
	tmin := float32(0)
	tmax := maxDistance + aabbSlack

	for axis := 0; axis < 3; axis++ {
		o := axisValue(origin, axis)
		d := axisValue(dir, axis)
		lo := axisValue(a.Min, axis) - aabbSlack
		hi := axisValue(a.Max, axis) + aabbSlack

		if d == 0 {
			// Parallel to this slab
			if o < lo || o > hi {
				return false
			}
			continue
		}

		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return false
		}
	}
	return true
}

// MayBeHit is the broad-phase test for one frame of travel: the box survives
// if the start point is inside it or the travel segment crosses it.
func (a AABB) MayBeHit(from, to rl.Vector3) bool {
	if a.IsEmpty() {
		return false
	}
	if a.Contains(from) {
		return true
	}
	delta := rl.Vector3Subtract(to, from)
	dist := rl.Vector3Length(delta)
	if dist == 0 {
		return false
	}
	return a.IntersectsRay(from, rl.Vector3Scale(delta, 1/dist), dist)
}
