package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OBB represents an Oriented Bounding Box turned about +Y
type OBB struct {
	Center   rl.Vector3    // World-space center
	HalfSize rl.Vector3    // Half-extents along local axes
	Axes     [3]rl.Vector3 // Local X, Y, Z axes (rotated)
}

// NewOBB creates an OBB from center, size, and a yaw in degrees. The axes
// follow rl.MatrixRotateY so they agree with placed obstacle meshes.
func NewOBB(center, size rl.Vector3, yaw float32) OBB {
	rot := rl.MatrixRotateY(yaw * rl.Deg2rad)

	axes := [3]rl.Vector3{
		rl.Vector3Normalize(rl.Vector3{X: rot.M0, Y: rot.M1, Z: rot.M2}),
		rl.Vector3Normalize(rl.Vector3{X: rot.M4, Y: rot.M5, Z: rot.M6}),
		rl.Vector3Normalize(rl.Vector3{X: rot.M8, Y: rot.M9, Z: rot.M10}),
	}

	return OBB{
		Center:   center,
		HalfSize: rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2},
		Axes:     axes,
	}
}

// clampedLocal returns p in the box frame, clamped to the box extents.
func (o OBB) clampedLocal(p rl.Vector3) rl.Vector3 {
	d := rl.Vector3Subtract(p, o.Center)
	l := rl.Vector3{
		X: rl.Vector3DotProduct(d, o.Axes[0]),
		Y: rl.Vector3DotProduct(d, o.Axes[1]),
		Z: rl.Vector3DotProduct(d, o.Axes[2]),
	}
	l.X = clampf(l.X, -o.HalfSize.X, o.HalfSize.X)
	l.Y = clampf(l.Y, -o.HalfSize.Y, o.HalfSize.Y)
	l.Z = clampf(l.Z, -o.HalfSize.Z, o.HalfSize.Z)
	return l
}

// ClosestPoint returns the point of the box (surface or inside) nearest p
func (o OBB) ClosestPoint(p rl.Vector3) rl.Vector3 {
	l := o.clampedLocal(p)

	result := o.Center
	result = rl.Vector3Add(result, rl.Vector3Scale(o.Axes[0], l.X))
	result = rl.Vector3Add(result, rl.Vector3Scale(o.Axes[1], l.Y))
	result = rl.Vector3Add(result, rl.Vector3Scale(o.Axes[2], l.Z))
	return result
}

// IntersectsSphere tests if an OBB intersects with a sphere
func (o OBB) IntersectsSphere(center rl.Vector3, radius float32) bool {
	closest := o.ClosestPoint(center)
	return rl.Vector3LengthSqr(rl.Vector3Subtract(center, closest)) <= radius*radius
}

// Corners returns the eight world-space corners, bottom face first.
func (o OBB) Corners() [8]rl.Vector3 {
	var out [8]rl.Vector3
	i := 0
	for _, sy := range []float32{-1, 1} {
		for _, sz := range []float32{-1, 1} {
			for _, sx := range []float32{-1, 1} {
				p := o.Center
				p = rl.Vector3Add(p, rl.Vector3Scale(o.Axes[0], sx*o.HalfSize.X))
				p = rl.Vector3Add(p, rl.Vector3Scale(o.Axes[1], sy*o.HalfSize.Y))
				p = rl.Vector3Add(p, rl.Vector3Scale(o.Axes[2], sz*o.HalfSize.Z))
				out[i] = p
				i++
			}
		}
	}
	return out
}

// Bounds returns the world-space AABB enclosing the box.
func (o OBB) Bounds() AABB {
	box := EmptyAABB()
	for _, c := range o.Corners() {
		box = box.Extend(c)
	}
	return box
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
