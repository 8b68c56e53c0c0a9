package bound

import (
	"errors"
	"math"
	"testing"

	"minigolf/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "box", KindBox.String())
	assert.Equal(t, "ramp", KindRamp.String())
	assert.Equal(t, "hole", KindHole.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}

func TestShapeValidate(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		ok    bool
	}{
		{"box", Shape{Kind: KindBox, Width: 1, Height: 2, Depth: 3}, true},
		{"ramp", Shape{Kind: KindRamp, Width: 4, Height: 1, Depth: 3}, true},
		{"ramp with low end", Shape{Kind: KindRamp, Width: 4, Height: 1, Depth: 3, LowHeight: 0.5}, true},
		{"flat box", Shape{Kind: KindBox, Width: 1, Height: 0, Depth: 3}, false},
		{"negative depth", Shape{Kind: KindBox, Width: 1, Height: 1, Depth: -3}, false},
		{"NaN width", Shape{Kind: KindBox, Width: float32(math.NaN()), Height: 1, Depth: 1}, false},
		{"ramp low end too high", Shape{Kind: KindRamp, Width: 4, Height: 1, Depth: 3, LowHeight: 1}, false},
		{"ramp negative low end", Shape{Kind: KindRamp, Width: 4, Height: 1, Depth: 3, LowHeight: -0.1}, false},
		{"hole is not an obstacle", Shape{Kind: KindHole, Width: 1, Height: 1, Depth: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.shape.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrDegenerate)
			}
		})
	}
}

func TestBuildRejectsBadInputs(t *testing.T) {
	box := Shape{Kind: KindBox, Width: 1, Height: 1, Depth: 1}

	_, err := Build(box, Placement{}, 0, 0, 1)
	assert.True(t, errors.Is(err, ErrDegenerate))

	_, err = Build(box, Placement{}, 0, 0.5, 0)
	assert.True(t, errors.Is(err, ErrDegenerate))

	_, err = Build(Shape{Kind: KindBox, Width: 1, Depth: 1}, Placement{}, 0, 0.5, 1)
	assert.True(t, errors.Is(err, ErrDegenerate))
}

// No point of an inflated surface comes nearer the solid than the ball
// radius, and none strays further than the faceting allows.
func TestOffsetMatchesRadius(t *testing.T) {
	shapes := []Shape{
		{Kind: KindBox, Width: 2, Height: 0.6, Depth: 4},
		{Kind: KindBox, Width: 10, Height: 2, Depth: 1},
		{Kind: KindRamp, Width: 8, Height: 2, Depth: 6},
		{Kind: KindRamp, Width: 8, Height: 2, Depth: 6, LowHeight: 0.5},
		{Kind: KindRamp, Width: 0.5, Height: 3, Depth: 0.2},
	}
	for _, shape := range shapes {
		for _, radius := range []float32{0.2, 1} {
			for smoothness := 1; smoothness <= 4; smoothness++ {
				tris, err := roundedPrism(shape.Profile(), shape.Depth, radius, smoothness)
				require.NoError(t, err)

				nearest, furthest, err := Clearance(shape, tris)
				require.NoError(t, err)
				r := float64(radius)
				assert.GreaterOrEqual(t, nearest, r*(1-1e-4),
					"%s r=%g smoothness=%d cuts inside the radius", shape.Kind, radius, smoothness)
				assert.InDelta(t, r, nearest, r*1e-4,
					"%s r=%g smoothness=%d never touches the radius", shape.Kind, radius, smoothness)
				assert.LessOrEqual(t, furthest, outerOffset(radius, smoothness)*(1+1e-4),
					"%s r=%g smoothness=%d", shape.Kind, radius, smoothness)
			}
		}
	}
}

func TestOuterOffsetShrinksWithSmoothness(t *testing.T) {
	prev := math.Inf(1)
	for smoothness := 1; smoothness <= 4; smoothness++ {
		limit := outerOffset(1, smoothness)
		assert.Greater(t, limit, 1.0)
		assert.Less(t, limit, prev)
		prev = limit
	}
	assert.InDelta(t, 1.1, outerOffset(1, 2), 0.01)
}

// A ball aimed across a vertical box edge is stopped a full radius out,
// never on a chord that cuts the corner.
func TestCornerHitNotInsideRadius(t *testing.T) {
	shape := Shape{Kind: KindBox, Width: 2, Height: 2, Depth: 2}
	corner := rl.Vector2{X: 1, Y: 1}
	const radius = 1

	for smoothness := 1; smoothness <= 3; smoothness++ {
		b, err := Build(shape, Placement{}, 0, radius, smoothness)
		require.NoError(t, err)
		meshes := Meshes([]*Bound{b})

		for deg := 7.0; deg < 90; deg += 6.5 {
			a := deg * math.Pi / 180
			dir := rl.Vector2{X: float32(math.Cos(a)), Y: float32(math.Sin(a))}
			from := rl.Vector3{X: corner.X + 6*dir.X, Y: corner.Y + 6*dir.Y, Z: 0.3}
			to := rl.Vector3{X: corner.X, Y: corner.Y, Z: 0.3}

			hit, ok := physics.Sweep(from, to, meshes, nil)
			require.True(t, ok, "smoothness %d angle %g", smoothness, deg)
			gap := rl.Vector2Length(rl.Vector2{X: hit.Point.X - corner.X, Y: hit.Point.Y - corner.Y})
			assert.GreaterOrEqual(t, gap, float32(radius*(1-1e-4)), "smoothness %d angle %g", smoothness, deg)
			assert.LessOrEqual(t, float64(gap), outerOffset(radius, smoothness)+1e-4, "smoothness %d angle %g", smoothness, deg)
		}
	}
}

func TestNoDegenerateTriangles(t *testing.T) {
	shapes := []Shape{
		{Kind: KindBox, Width: 2, Height: 0.6, Depth: 4},
		{Kind: KindRamp, Width: 8, Height: 2, Depth: 6},
		{Kind: KindRamp, Width: 8, Height: 2, Depth: 6, LowHeight: 1},
	}
	for _, shape := range shapes {
		b, err := Build(shape, Placement{Position: rl.Vector3{X: 3, Y: 1, Z: -2}, Yaw: 30}, 0, 1, 2)
		require.NoError(t, err)
		require.NotEmpty(t, b.Triangles())
		for i, tri := range b.Triangles() {
			assert.Greater(t, tri.Area(), float32(minTriangleArea), "%s triangle %d", shape.Kind, i)
		}

		hole, err := Hole(0, 0, 2, 1, 1, 2)
		require.NoError(t, err)
		for i, tri := range hole.Triangles() {
			assert.Greater(t, tri.Area(), float32(minTriangleArea), "hole triangle %d", i)
		}
	}
}

func TestBoxFaceCount(t *testing.T) {
	tris, err := roundedPrism(Shape{Kind: KindBox, Width: 1, Height: 1, Depth: 1}.Profile(), 1, 0.5, 1)
	require.NoError(t, err)

	// 4 corners at smoothness 1 give rings of 12 points: two tangent points
	// and one tangent intersection per corner. Each end has 4 bevel levels,
	// so 7 bands. The two bands running into a collapsed cap ring lose two
	// triangles per corner; the other 5 are whole. Each cap is 2 triangles.
	fullBand := 12 * 2
	capBand := fullBand - 4*2
	assert.Len(t, tris, 2+capBand+5*fullBand+capBand+2)
}

func TestBuildPlacesBound(t *testing.T) {
	b, err := Build(Shape{Kind: KindBox, Width: 2, Height: 0.6, Depth: 4},
		Placement{Position: rl.Vector3{Y: 2, Z: 0.5}}, 3, 0.2, 1)
	require.NoError(t, err)

	assert.Equal(t, KindBox, b.Kind)
	assert.Equal(t, 3, b.Source)
	box := b.BoundingBox()
	assert.InDelta(t, -1.2, box.Min.X, 1e-5)
	assert.InDelta(t, 1.2, box.Max.X, 1e-5)
	assert.InDelta(t, 1.5, box.Min.Y, 1e-5)
	assert.InDelta(t, 2.5, box.Max.Y, 1e-5)
	assert.InDelta(t, -1.7, box.Min.Z, 1e-5)
	assert.InDelta(t, 2.7, box.Max.Z, 1e-5)
}

func TestBuildYaw(t *testing.T) {
	b, err := Build(Shape{Kind: KindBox, Width: 4, Height: 1, Depth: 1},
		Placement{Yaw: 90}, 0, 0.5, 1)
	require.NoError(t, err)

	// A quarter turn swaps the long side onto Z
	box := b.BoundingBox()
	assert.InDelta(t, 2, box.Size().X, 1e-4)
	assert.InDelta(t, 5, box.Size().Z, 1e-4)
}

// A ball rising from y=0 to y=2 in one step meets the underside of a box
// whose inflated bottom sits at y=1.5, and comes back down.
func TestBallUnderBoxBouncesDown(t *testing.T) {
	b, err := Build(Shape{Kind: KindBox, Width: 2, Height: 0.6, Depth: 4},
		Placement{Position: rl.Vector3{Y: 2, Z: 0.5}}, 0, 0.2, 1)
	require.NoError(t, err)
	far, err := Build(Shape{Kind: KindBox, Width: 2, Height: 2, Depth: 2},
		Placement{Position: rl.Vector3{X: 20, Y: 1}}, 1, 0.2, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, b.BoundingBox().Min.Y, 1e-5)

	world := physics.NewPhysicsWorld()
	world.Gravity = rl.Vector3{}
	world.Friction = 1
	world.MaxSpeed = 0
	world.Restitution = 0.7
	world.SetMeshes(Meshes([]*Bound{b, far}))

	ball := physics.Body{Position: rl.Vector3{Z: 2}, Velocity: rl.Vector3{Y: 2}}
	contact, hit := world.Advance(&ball, 1)

	require.True(t, hit, "collision reported")
	assert.Equal(t, 1, world.LastCandidateCount(), "far box pruned by the broad phase")
	assert.InDelta(t, 1.5, contact.Hit.Point.Y, 1e-5)
	assert.InDelta(t, 1.5, contact.Hit.Distance, 1e-5)
	assert.Less(t, ball.Velocity.Y, float32(0), "vertical velocity flips")
	assert.InDelta(t, 2*0.7, rl.Vector3Length(ball.Velocity), 1e-4)
	assert.Less(t, ball.Position.Y, float32(1.5))
	assert.InDelta(t, -1, contact.Normal.Y, 1e-5)
}

func TestClosedSurface(t *testing.T) {
	b, err := Build(Shape{Kind: KindRamp, Width: 6, Height: 2, Depth: 4, LowHeight: 0.5},
		Placement{}, 0, 0.5, 2)
	require.NoError(t, err)
	meshes := Meshes([]*Bound{b})

	// From far away toward the centre, every direction meets the surface
	for i := 0; i < 64; i++ {
		theta := float64(i) * 2 * math.Pi / 64
		phi := float64(i%8)*math.Pi/8 - math.Pi*7/16
		dir := rl.Vector3{
			X: float32(math.Cos(phi) * math.Cos(theta)),
			Y: float32(math.Sin(phi)),
			Z: float32(math.Cos(phi) * math.Sin(theta)),
		}
		from := rl.Vector3Scale(dir, 20)
		_, ok := physics.Sweep(from, rl.Vector3{}, meshes, nil)
		assert.True(t, ok, "direction %v", dir)
	}
}

func TestPrismFaces(t *testing.T) {
	place := Placement{Position: rl.Vector3{X: 3, Y: 1, Z: -2}, Yaw: 30}

	tests := []struct {
		name  string
		shape Shape
		faces int
	}{
		{"box", Shape{Kind: KindBox, Width: 4, Height: 2, Depth: 3}, 12},
		{"wedge", Shape{Kind: KindRamp, Width: 4, Height: 2, Depth: 3}, 8},
		{"ramp with lip", Shape{Kind: KindRamp, Width: 4, Height: 2, Depth: 3, LowHeight: 0.5}, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tris, err := Prism(tt.shape, place)
			require.NoError(t, err)
			assert.Len(t, tris, tt.faces)

			// Convex, so every face points away from the mean of its vertices
			var middle rl.Vector3
			for _, tri := range tris {
				middle = rl.Vector3Add(middle, centroid(tri))
			}
			middle = rl.Vector3Scale(middle, 1/float32(len(tris)))
			for i, tri := range tris {
				out := rl.Vector3Subtract(centroid(tri), middle)
				assert.Greater(t, rl.Vector3DotProduct(tri.Normal, out), float32(0), "face %d points inward", i)
			}
		})
	}

	_, err := Prism(Shape{Kind: KindBox, Width: 1, Height: 0, Depth: 1}, place)
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestPrismMatchesBoxExtents(t *testing.T) {
	tris, err := Prism(Shape{Kind: KindBox, Width: 4, Height: 2, Depth: 3}, Placement{Position: rl.Vector3{Y: 1}})
	require.NoError(t, err)

	box := physics.NewAABBFromTriangles(tris)
	assert.InDelta(t, -2, box.Min.X, 1e-5)
	assert.InDelta(t, 2, box.Max.X, 1e-5)
	assert.InDelta(t, 0, box.Min.Y, 1e-5)
	assert.InDelta(t, 2, box.Max.Y, 1e-5)
	assert.InDelta(t, -1.5, box.Min.Z, 1e-5)
	assert.InDelta(t, 1.5, box.Max.Z, 1e-5)
}

func centroid(tri physics.Triangle) rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(rl.Vector3Add(tri.V0, tri.V1), tri.V2), 1.0/3)
}
