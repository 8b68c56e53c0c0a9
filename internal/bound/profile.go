package bound

import (
	"fmt"
	"math"

	"minigolf/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// minTriangleArea drops slivers left where a collapsed corner repeats a vertex
const minTriangleArea = 1e-9

// edgeNormal returns the outward unit normal of the edge a -> b of a
// counter-clockwise polygon.
func edgeNormal(a, b rl.Vector2) rl.Vector2 {
	d := rl.Vector2Normalize(rl.Vector2Subtract(b, a))
	return rl.Vector2{X: d.Y, Y: -d.X}
}

// checkConvex makes sure every corner of poly turns left and every edge has length.
func checkConvex(poly []rl.Vector2) error {
	n := len(poly)
	if n < 3 {
		return fmt.Errorf("%w: profile needs 3 corners, got %d", ErrDegenerate, n)
	}
	for i := range poly {
		a, b, c := poly[i], poly[(i+1)%n], poly[(i+2)%n]
		ab := rl.Vector2Subtract(b, a)
		bc := rl.Vector2Subtract(c, b)
		if rl.Vector2Length(ab) == 0 {
			return fmt.Errorf("%w: zero-length profile edge at corner %d", ErrDegenerate, i)
		}
		if ab.X*bc.Y-ab.Y*bc.X <= 0 {
			return fmt.Errorf("%w: profile is not convex at corner %d", ErrDegenerate, (i+1)%n)
		}
	}
	return nil
}

// cornerSegments returns how many arc segments each corner of poly gets:
// smoothness per started quarter turn, so no segment spans more than
// pi/(2*smoothness).
func cornerSegments(poly []rl.Vector2, smoothness int) []int {
	n := len(poly)
	segments := make([]int, n)
	for i, corner := range poly {
		start, end := cornerArc(poly[(i+n-1)%n], corner, poly[(i+1)%n])
		quarters := int(math.Ceil((end-start)/(math.Pi/2) - 1e-9))
		segments[i] = smoothness * max(quarters, 1)
	}
	return segments
}

// cornerArc returns the angles of the outward normals either side of corner.
func cornerArc(prev, corner, next rl.Vector2) (start, end float64) {
	in := edgeNormal(prev, corner)
	out := edgeNormal(corner, next)
	start = math.Atan2(float64(in.Y), float64(in.X))
	end = math.Atan2(float64(out.Y), float64(out.X))
	for end < start {
		end += 2 * math.Pi
	}
	return start, end
}

// roundedRing offsets a convex counter-clockwise polygon outward by rho. Each
// corner becomes the polygon circumscribing its arc: the two tangent points
// on the neighbouring edges plus one vertex where each pair of consecutive
// tangents meet, so every ring edge touches the circle of radius rho and
// none cuts inside it. Corner i contributes segments[i]+2 points. With
// rho = 0 every corner collapses onto itself.
func roundedRing(poly []rl.Vector2, rho float32, segments []int) []rl.Vector2 {
	n := len(poly)
	size := 0
	for _, s := range segments {
		size += s + 2
	}
	ring := make([]rl.Vector2, 0, size)
	at := func(corner rl.Vector2, theta float64, dist float32) rl.Vector2 {
		return rl.Vector2{
			X: corner.X + dist*float32(math.Cos(theta)),
			Y: corner.Y + dist*float32(math.Sin(theta)),
		}
	}
	for i, corner := range poly {
		start, end := cornerArc(poly[(i+n-1)%n], corner, poly[(i+1)%n])
		step := (end - start) / float64(segments[i])
		outer := rho / float32(math.Cos(step/2))

		ring = append(ring, at(corner, start, rho))
		for s := 0; s < segments[i]; s++ {
			ring = append(ring, at(corner, start+(float64(s)+0.5)*step, outer))
		}
		ring = append(ring, at(corner, end, rho))
	}
	return ring
}

func lift(ring []rl.Vector2, z float32) []rl.Vector3 {
	out := make([]rl.Vector3, len(ring))
	for i, p := range ring {
		out[i] = rl.Vector3{X: p.X, Y: p.Y, Z: z}
	}
	return out
}

// meshBuilder accumulates triangles and refuses slivers.
type meshBuilder struct {
	tris []physics.Triangle
}

func (m *meshBuilder) triangle(a, b, c rl.Vector3) {
	if a == b || b == c || a == c {
		return
	}
	tri := physics.NewTriangle(a, b, c)
	if tri.Area() < minTriangleArea {
		return
	}
	m.tris = append(m.tris, tri)
}

// quad adds a, b, c, d as two triangles sharing the a-c diagonal.
func (m *meshBuilder) quad(a, b, c, d rl.Vector3) {
	m.triangle(a, b, c)
	m.triangle(a, c, d)
}

// stitch joins two rings of equal length; lower must sit below upper in z so
// the faces point outward.
func (m *meshBuilder) stitch(lower, upper []rl.Vector3) {
	n := len(lower)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		m.quad(lower[i], lower[j], upper[j], upper[i])
	}
}

// fan closes a convex ring with a cap facing +z (up) or -z.
func (m *meshBuilder) fan(ring []rl.Vector3, up bool) {
	for i := 1; i+1 < len(ring); i++ {
		if up {
			m.triangle(ring[0], ring[i], ring[i+1])
		} else {
			m.triangle(ring[0], ring[i+1], ring[i])
		}
	}
}

// bevelLevels returns the (offset, lift) pairs of the rings rounding an end
// of the prism, from the side wall (radius, 0) to the cap (0, radius). Like
// the corner arcs they circumscribe the quarter circle: tangent points at
// both ends and 2*smoothness tangent intersections between them.
func bevelLevels(radius float32, smoothness int) (offsets, lifts []float32) {
	steps := 2 * smoothness
	step := (math.Pi / 2) / float64(steps)
	outer := float64(radius) / math.Cos(step/2)

	offsets = append(offsets, radius)
	lifts = append(lifts, 0)
	for k := 0; k < steps; k++ {
		phi := (float64(k) + 0.5) * step
		offsets = append(offsets, float32(outer*math.Cos(phi)))
		lifts = append(lifts, float32(outer*math.Sin(phi)))
	}
	offsets = append(offsets, 0)
	lifts = append(lifts, radius)
	return offsets, lifts
}

// outerOffset is the furthest any vertex of a rounded prism built with
// smoothness strays from the solid: a corner vertex that sits on both a
// corner tangent intersection and a bevel one.
func outerOffset(radius float32, smoothness int) float64 {
	corner := math.Pi / (2 * float64(smoothness))
	bevel := math.Pi / (4 * float64(smoothness))
	return float64(radius) / (math.Cos(corner/2) * math.Cos(bevel/2))
}

// roundedPrism extrudes the profile along Z by depth and inflates the result
// by radius. Side faces are offset straight out, profile corners become
// faceted cylinders, and both ends are rounded by the bevel rings before
// closing on the un-offset profile one radius past each end face. Every
// face lies on a plane tangent to the true offset surface, so no point of
// the mesh is nearer the solid than radius.
func roundedPrism(profile []rl.Vector2, depth, radius float32, smoothness int) ([]physics.Triangle, error) {
	if err := checkConvex(profile); err != nil {
		return nil, err
	}

	segments := cornerSegments(profile, smoothness)
	offsets, lifts := bevelLevels(radius, smoothness)
	last := len(offsets) - 1
	halfDepth := depth / 2

	// rings[k] is bevel level k, k = 0 being the side wall
	rings := make([][]rl.Vector2, len(offsets))
	for k, rho := range offsets {
		rings[k] = roundedRing(profile, rho, segments)
	}

	var m meshBuilder

	// Back cap up to the back side wall, then the side wall, then out to the front cap
	back := lift(rings[last], -(halfDepth + lifts[last]))
	m.fan(lift(profile, back[0].Z), false)
	prev := back
	for k := last - 1; k >= 0; k-- {
		ring := lift(rings[k], -(halfDepth + lifts[k]))
		m.stitch(prev, ring)
		prev = ring
	}
	for k := 0; k <= last; k++ {
		ring := lift(rings[k], halfDepth+lifts[k])
		m.stitch(prev, ring)
		prev = ring
	}
	m.fan(lift(profile, halfDepth+lifts[last]), true)

	return m.tris, nil
}
