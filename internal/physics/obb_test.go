package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestOBBAxesFollowYaw(t *testing.T) {
	box := NewOBB(rl.Vector3{Y: 1}, rl.Vector3{X: 4, Y: 2, Z: 2}, 90)

	assertVecInDelta(t, rl.Vector3{Z: -1}, box.Axes[0], 1e-6)
	assertVecInDelta(t, rl.Vector3{Y: 1}, box.Axes[1], 1e-6)
	assertVecInDelta(t, rl.Vector3{X: 1}, box.Axes[2], 1e-6)

	bounds := box.Bounds()
	assertVecInDelta(t, rl.Vector3{X: -1, Y: 0, Z: -2}, bounds.Min, 1e-5)
	assertVecInDelta(t, rl.Vector3{X: 1, Y: 2, Z: 2}, bounds.Max, 1e-5)
}

func TestOBBClosestPoint(t *testing.T) {
	box := NewOBB(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2}, 0)

	assertVecInDelta(t, rl.Vector3{X: 1, Y: 0.5}, box.ClosestPoint(rl.Vector3{X: 3, Y: 0.5}), 1e-6)
	assertVecInDelta(t, rl.Vector3{X: 1, Y: 1, Z: -1}, box.ClosestPoint(rl.Vector3{X: 5, Y: 5, Z: -5}), 1e-6)

	inside := rl.Vector3{X: 0.2, Y: -0.3, Z: 0.4}
	assert.Equal(t, inside, box.ClosestPoint(inside))
}

func TestOBBIntersectsSphere(t *testing.T) {
	straight := NewOBB(rl.Vector3{Y: 1}, rl.Vector3{X: 4, Y: 2, Z: 2}, 0)
	turned := NewOBB(rl.Vector3{Y: 1}, rl.Vector3{X: 4, Y: 2, Z: 2}, 90)

	tests := []struct {
		name   string
		box    OBB
		center rl.Vector3
		radius float32
		want   bool
	}{
		{"clear of the long side", straight, rl.Vector3{Y: 1, Z: 1.5}, 0.4, false},
		{"touching the long side", straight, rl.Vector3{Y: 1, Z: 1.5}, 0.6, true},
		{"past the end when straight", straight, rl.Vector3{Y: 1, Z: 2.5}, 0.6, false},
		{"inside the end when turned", turned, rl.Vector3{Y: 1, Z: 2.5}, 0.6, true},
		{"clear of the short side when turned", turned, rl.Vector3{X: 1.5, Y: 1}, 0.4, false},
		{"centre inside", turned, rl.Vector3{Y: 1}, 0.1, true},
		{"above the top", straight, rl.Vector3{Y: 3}, 0.9, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.box.IntersectsSphere(tt.center, tt.radius))
		})
	}
}
