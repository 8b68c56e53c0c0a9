package bound

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// holeSegmentsPerStep sets how finely the hole is swept around its axis
const holeSegmentsPerStep = 16

// HoleProfile returns the hole bound's cross-section as (radial distance,
// height) pairs from the rim down. The rim is a quarter torus of tube radius
// ballRadius around the hole edge, reaching from (holeRadius, ballRadius) in
// to (holeRadius-ballRadius, 0); a straight wall then drops to
// -(sinkDepth + 2*ballRadius). The bottom is left open so the ball can sink.
func HoleProfile(holeRadius, ballRadius, sinkDepth float32, smoothness int) []rl.Vector2 {
	steps := 2 * smoothness
	profile := make([]rl.Vector2, 0, steps+2)
	for k := 0; k <= steps; k++ {
		psi := math.Pi/2 + float64(k)*(math.Pi/2)/float64(steps)
		profile = append(profile, rl.Vector2{
			X: holeRadius + ballRadius*float32(math.Cos(psi)),
			Y: ballRadius * float32(math.Sin(psi)),
		})
	}
	// close the quarter exactly so the wall is vertical
	profile[steps] = rl.Vector2{X: holeRadius - ballRadius, Y: 0}
	return append(profile, rl.Vector2{X: holeRadius - ballRadius, Y: -(sinkDepth + 2*ballRadius)})
}

// Hole builds the inward-facing surface the ball is swept against while it is
// over the cup centred at (x, z) on the course plane.
func Hole(x, z, holeRadius, ballRadius, sinkDepth float32, smoothness int) (*Bound, error) {
	if !(ballRadius > 0) || !(holeRadius > ballRadius) {
		return nil, fmt.Errorf("%w: hole radius %g must exceed ball radius %g",
			ErrDegenerate, holeRadius, ballRadius)
	}
	if sinkDepth < 0 {
		return nil, fmt.Errorf("%w: sink depth %g is negative", ErrDegenerate, sinkDepth)
	}
	if smoothness < 1 {
		return nil, fmt.Errorf("%w: smoothness %d must be at least 1", ErrDegenerate, smoothness)
	}

	profile := HoleProfile(holeRadius, ballRadius, sinkDepth, smoothness)
	segments := holeSegmentsPerStep * smoothness

	around := func(p rl.Vector2, j int) rl.Vector3 {
		theta := 2 * math.Pi * float64(j%segments) / float64(segments)
		return rl.Vector3{
			X: x + p.X*float32(math.Cos(theta)),
			Y: p.Y,
			Z: z + p.X*float32(math.Sin(theta)),
		}
	}

	var m meshBuilder
	for k := 0; k+1 < len(profile); k++ {
		upper, lower := profile[k], profile[k+1]
		for j := 0; j < segments; j++ {
			m.quad(around(upper, j), around(lower, j), around(lower, j+1), around(upper, j+1))
		}
	}
	return newBound(KindHole, NoSource, ballRadius, m.tris), nil
}
