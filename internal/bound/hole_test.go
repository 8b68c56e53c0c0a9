package bound

import (
	"math"
	"testing"

	"minigolf/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoleProfile(t *testing.T) {
	profile := HoleProfile(2, 1, 1.5, 1)

	require.Len(t, profile, 4)
	assert.InDelta(t, 2, profile[0].X, 1e-6)
	assert.InDelta(t, 1, profile[0].Y, 1e-6)
	assert.Equal(t, rl.Vector2{X: 1, Y: 0}, profile[2])
	assert.Equal(t, rl.Vector2{X: 1, Y: -3.5}, profile[3])
}

func TestHoleRejectsSmallCup(t *testing.T) {
	_, err := Hole(0, 0, 1, 1, 1, 1)
	assert.ErrorIs(t, err, ErrDegenerate)

	_, err = Hole(0, 0, 2, 1, -1, 1)
	assert.ErrorIs(t, err, ErrDegenerate)

	_, err = Hole(0, 0, 2, 1, 1, 0)
	assert.ErrorIs(t, err, ErrDegenerate)
}

// Rim vertices are one radius from the cup's edge; wall vertices one radius
// inside the cup's side.
func TestHoleOffsetMatchesRadius(t *testing.T) {
	const cx, cz, holeRadius, ballRadius = 3, -4, 1.5, 0.5
	hole, err := Hole(cx, cz, holeRadius, ballRadius, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, KindHole, hole.Kind)
	assert.Equal(t, NoSource, hole.Source)

	check := func(p rl.Vector3) {
		rho := math.Hypot(float64(p.X-cx), float64(p.Z-cz))
		if p.Y > 0 {
			assert.InDelta(t, ballRadius, math.Hypot(rho-holeRadius, float64(p.Y)), 1e-4)
		} else {
			assert.InDelta(t, holeRadius-ballRadius, rho, 1e-4)
		}
	}
	for _, tri := range hole.Triangles() {
		check(tri.V0)
		check(tri.V1)
		check(tri.V2)
	}
}

func TestBallDropsThroughHoleBottom(t *testing.T) {
	hole, err := Hole(0, 0, 2, 1, 1, 1)
	require.NoError(t, err)
	meshes := Meshes([]*Bound{hole})

	// Straight down the middle never touches the cup
	_, ok := physics.Sweep(rl.Vector3{Y: 3}, rl.Vector3{Y: -10}, meshes, nil)
	assert.False(t, ok)

	// Rolling sideways below the rim meets the wall
	hit, ok := physics.Sweep(rl.Vector3{Y: -1}, rl.Vector3{X: 3, Y: -1}, meshes, nil)
	require.True(t, ok)
	assert.InDelta(t, 1, hit.Distance, 0.05)
}
