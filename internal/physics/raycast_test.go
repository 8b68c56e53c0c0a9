package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTriangleNormal(t *testing.T) {
	tri := NewTriangle(rl.Vector3{}, rl.Vector3{X: 1}, rl.Vector3{Y: 1})

	assert.Equal(t, rl.Vector3{Z: 1}, tri.Normal)
	assert.InDelta(t, 0.5, tri.Area(), 1e-6)
}

func TestRayTriangle(t *testing.T) {
	tri := NewTriangle(rl.Vector3{X: -1, Y: -1}, rl.Vector3{X: 1, Y: -1}, rl.Vector3{Y: 1})

	dist, ok := RayTriangle(rl.Vector3{Z: 5}, rl.Vector3{Z: -1}, tri)
	require.True(t, ok)
	assert.InDelta(t, 5, dist, 1e-5)

	// Behind the origin
	_, ok = RayTriangle(rl.Vector3{Z: -5}, rl.Vector3{Z: -1}, tri)
	assert.False(t, ok)

	// Outside the edges
	_, ok = RayTriangle(rl.Vector3{X: 3, Z: 5}, rl.Vector3{Z: -1}, tri)
	assert.False(t, ok)

	// In the plane
	_, ok = RayTriangle(rl.Vector3{X: -5}, rl.Vector3{X: 1}, tri)
	assert.False(t, ok)
}

func TestSweepHitsWithinTravel(t *testing.T) {
	meshes := []Mesh{floorQuad(0, 5)}

	hit, ok := Sweep(rl.Vector3{Y: 1}, rl.Vector3{Y: -1}, meshes, nil)
	require.True(t, ok)
	assert.InDelta(t, 1, hit.Distance, 1e-5)
	assert.Less(t, hit.Distance, float32(2))
	assert.InDelta(t, 0, hit.Point.Y, 1e-5)
	assert.Equal(t, 0, hit.Mesh)

	// Stops before the floor
	_, ok = Sweep(rl.Vector3{Y: 1}, rl.Vector3{Y: 0.5}, meshes, nil)
	assert.False(t, ok)

	// No motion
	_, ok = Sweep(rl.Vector3{Y: 1}, rl.Vector3{Y: 1}, meshes, nil)
	assert.False(t, ok)
}

func TestSweepReturnsClosest(t *testing.T) {
	meshes := []Mesh{wallQuad(4, 2), wallQuad(2, 2), floorQuad(-10, 1)}

	hit, ok := Sweep(rl.Vector3{}, rl.Vector3{X: 10}, meshes, nil)
	require.True(t, ok)
	assert.Equal(t, 1, hit.Mesh)
	assert.InDelta(t, 2, hit.Distance, 1e-5)

	// Only the far wall is a candidate
	hit, ok = Sweep(rl.Vector3{}, rl.Vector3{X: 10}, meshes, []int{0})
	require.True(t, ok)
	assert.Equal(t, 0, hit.Mesh)
	assert.InDelta(t, 4, hit.Distance, 1e-5)
}

func TestSweepThroughSharedEdge(t *testing.T) {
	// The diagonal of the quad is the shared edge of its two triangles
	meshes := []Mesh{floorQuad(0, 1)}

	_, ok := Sweep(rl.Vector3{X: 0.25, Y: 1, Z: 0.25}, rl.Vector3{X: 0.25, Y: -1, Z: 0.25}, meshes, nil)
	assert.True(t, ok)
}
