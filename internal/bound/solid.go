package bound

import (
	"fmt"
	"math"

	"minigolf/internal/physics"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// clearanceTolerance is the allowed error as a fraction of the ball radius
const clearanceTolerance = 1e-3

// Solid returns the exact signed distance field of the un-inflated shape,
// centred like Shape.Profile.
func Solid(shape Shape) (func(v3.Vec) float64, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	if shape.Kind == KindBox {
		box, err := sdf.Box3D(v3.Vec{
			X: float64(shape.Width),
			Y: float64(shape.Height),
			Z: float64(shape.Depth),
		}, 0)
		if err != nil {
			return nil, fmt.Errorf("box solid: %w", err)
		}
		return box.Evaluate, nil
	}

	profile := shape.Profile()
	vertices := make([]v2.Vec, len(profile))
	for i, p := range profile {
		vertices[i] = v2.Vec{X: float64(p.X), Y: float64(p.Y)}
	}
	poly, err := sdf.Polygon2D(vertices)
	if err != nil {
		return nil, fmt.Errorf("ramp solid: %w", err)
	}

	// sdf.Extrude3D combines with max(), which underestimates distance past
	// the end caps; combine exactly instead.
	halfDepth := float64(shape.Depth) / 2
	return func(p v3.Vec) float64 {
		a := poly.Evaluate(v2.Vec{X: p.X, Y: p.Y})
		b := math.Abs(p.Z) - halfDepth
		if a > 0 && b > 0 {
			return math.Hypot(a, b)
		}
		return math.Max(a, b)
	}, nil
}

// Clearance returns the nearest and furthest distance from the shape's solid
// over every vertex, edge midpoint and face centroid of tris. tris must still
// be in the shape's local frame.
func Clearance(shape Shape, tris []physics.Triangle) (nearest, furthest float64, err error) {
	solid, err := Solid(shape)
	if err != nil {
		return 0, 0, err
	}

	nearest, furthest = math.Inf(1), 0
	check := func(p rl.Vector3) {
		d := solid(v3.Vec{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)})
		nearest = math.Min(nearest, d)
		furthest = math.Max(furthest, d)
	}
	mid := func(a, b rl.Vector3) rl.Vector3 {
		return rl.Vector3Scale(rl.Vector3Add(a, b), 0.5)
	}
	for _, tri := range tris {
		check(tri.V0)
		check(tri.V1)
		check(tri.V2)
		check(mid(tri.V0, tri.V1))
		check(mid(tri.V1, tri.V2))
		check(mid(tri.V2, tri.V0))
		check(rl.Vector3Scale(rl.Vector3Add(rl.Vector3Add(tri.V0, tri.V1), tri.V2), 1.0/3))
	}
	if len(tris) == 0 {
		nearest = 0
	}
	return nearest, furthest, nil
}
