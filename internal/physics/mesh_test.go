package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

type testMesh struct {
	tris []Triangle
	box  AABB
}

func newTestMesh(tris ...Triangle) *testMesh {
	return &testMesh{tris: tris, box: NewAABBFromTriangles(tris)}
}

func (m *testMesh) BoundingBox() AABB     { return m.box }
func (m *testMesh) Triangles() []Triangle { return m.tris }

// floorQuad is a horizontal square of half-size half at height y, facing up.
func floorQuad(y, half float32) *testMesh {
	a := rl.Vector3{X: -half, Y: y, Z: -half}
	b := rl.Vector3{X: -half, Y: y, Z: half}
	c := rl.Vector3{X: half, Y: y, Z: half}
	d := rl.Vector3{X: half, Y: y, Z: -half}
	return newTestMesh(NewTriangle(a, b, c), NewTriangle(a, c, d))
}

// wallQuad is a vertical square in the plane at x, facing +X.
func wallQuad(x, half float32) *testMesh {
	a := rl.Vector3{X: x, Y: -half, Z: -half}
	b := rl.Vector3{X: x, Y: half, Z: -half}
	c := rl.Vector3{X: x, Y: half, Z: half}
	d := rl.Vector3{X: x, Y: -half, Z: half}
	return newTestMesh(NewTriangle(a, b, c), NewTriangle(a, c, d))
}
