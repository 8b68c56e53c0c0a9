package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// parallelEpsilon rejects rays lying in the triangle's plane
	parallelEpsilon = float32(1e-7)
	// edgeSlack keeps rays through a shared edge from slipping between neighbours
	edgeSlack = float32(1e-6)
	// minHitDistance ignores the surface the ray starts on
	minHitDistance = float32(1e-5)
)

// Triangle is one face of a collision mesh with its precomputed unit normal
type Triangle struct {
	V0, V1, V2 rl.Vector3
	Normal     rl.Vector3
}

// NewTriangle builds a triangle and its normal from counter-clockwise vertices.
func NewTriangle(v0, v1, v2 rl.Vector3) Triangle {
	edge1 := rl.Vector3Subtract(v1, v0)
	edge2 := rl.Vector3Subtract(v2, v0)
	normal := rl.Vector3Normalize(rl.Vector3CrossProduct(edge1, edge2))
	return Triangle{V0: v0, V1: v1, V2: v2, Normal: normal}
}

// Area returns the triangle's surface area.
func (t Triangle) Area() float32 {
	edge1 := rl.Vector3Subtract(t.V1, t.V0)
	edge2 := rl.Vector3Subtract(t.V2, t.V0)
	return rl.Vector3Length(rl.Vector3CrossProduct(edge1, edge2)) / 2
}

// Transform returns the triangle with every vertex passed through m.
func (t Triangle) Transform(m rl.Matrix) Triangle {
	return NewTriangle(
		rl.Vector3Transform(t.V0, m),
		rl.Vector3Transform(t.V1, m),
		rl.Vector3Transform(t.V2, m),
	)
}

// Mesh is anything the sweep can test against: a closed or open triangle
// surface plus a world-space box enclosing it.
type Mesh interface {
	BoundingBox() AABB
	Triangles() []Triangle
}

// Hit is the result of a sweep against one triangle.
type Hit struct {
	Distance float32    // distance from the sweep start along the travel direction
	Point    rl.Vector3 // where the sweep crossed the triangle
	Triangle Triangle   // the face that was crossed
	Mesh     int        // index of the mesh in the slice passed to Sweep
}

// RayTriangle intersects the ray origin + t*dir with a triangle
// (Möller–Trumbore) and returns t when the ray crosses it in front of origin.
func RayTriangle(origin, dir rl.Vector3, tri Triangle) (float32, bool) {
	edge1 := rl.Vector3Subtract(tri.V1, tri.V0)
	edge2 := rl.Vector3Subtract(tri.V2, tri.V0)
	h := rl.Vector3CrossProduct(dir, edge2)
	a := rl.Vector3DotProduct(edge1, h)
	if a > -parallelEpsilon && a < parallelEpsilon {
		return 0, false
	}

	f := 1 / a
	s := rl.Vector3Subtract(origin, tri.V0)
	u := f * rl.Vector3DotProduct(s, h)
	if u < -edgeSlack || u > 1+edgeSlack {
		return 0, false
	}

	q := rl.Vector3CrossProduct(s, edge1)
	v := f * rl.Vector3DotProduct(dir, q)
	if v < -edgeSlack || u+v > 1+edgeSlack {
		return 0, false
	}

	t := f * rl.Vector3DotProduct(edge2, q)
	if t <= minHitDistance {
		return 0, false
	}
	return t, true
}

// Sweep treats the ball as a point travelling from -> to and returns the
// nearest triangle crossing among the listed meshes. Only hits closer than
// the travelled distance count. candidates holds indices into meshes; a nil
// slice tests every mesh.
func Sweep(from, to rl.Vector3, meshes []Mesh, candidates []int) (Hit, bool) {
	delta := rl.Vector3Subtract(to, from)
	travel := rl.Vector3Length(delta)
	if travel == 0 {
		return Hit{}, false
	}
	dir := rl.Vector3Scale(delta, 1/travel)

	if candidates == nil {
		candidates = make([]int, len(meshes))
		for i := range meshes {
			candidates[i] = i
		}
	}

	var closest Hit
	closest.Distance = travel
	hit := false

	for _, idx := range candidates {
		tris := meshes[idx].Triangles()
		for i := range tris {
			t, ok := RayTriangle(from, dir, tris[i])
			if !ok || t >= closest.Distance {
				continue
			}
			closest = Hit{
				Distance: t,
				Point:    rl.Vector3Add(from, rl.Vector3Scale(dir, t)),
				Triangle: tris[i],
				Mesh:     idx,
			}
			hit = true
		}
	}

	return closest, hit
}
