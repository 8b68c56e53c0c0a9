// Package bound builds the inflated collision surfaces the ball is swept
// against. Each bound is the obstacle grown outward by the ball radius, so a
// point travelling along the ball's centre path touches the bound exactly when
// the real ball touches the obstacle.
package bound

import (
	"errors"
	"fmt"

	"minigolf/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrDegenerate is returned for shapes that would produce zero-area faces.
var ErrDegenerate = errors.New("degenerate bound geometry")

// ErrClearance is returned when an inflated surface is not one ball radius
// away from the solid it was built from.
var ErrClearance = errors.New("bound offset does not match ball radius")

// NoSource marks a bound that does not come from the obstacle table.
const NoSource = -1

type Kind int

const (
	KindBox Kind = iota
	KindRamp
	KindHole
)

func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindRamp:
		return "ramp"
	case KindHole:
		return "hole"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Shape is an obstacle's solid before inflation, centred on its own bounding
// box. Width runs along X, Height along Y and Depth along Z.
type Shape struct {
	Kind      Kind
	Width     float32
	Height    float32
	Depth     float32
	LowHeight float32 // ramps: height of the incline's low end
}

// Placement positions a shape in the world.
type Placement struct {
	Position rl.Vector3
	Yaw      float32 // degrees about +Y
}

// Matrix returns the local-to-world transform: yaw, then translate.
func (p Placement) Matrix() rl.Matrix {
	rot := rl.MatrixRotateY(p.Yaw * rl.Deg2rad)
	trans := rl.MatrixTranslate(p.Position.X, p.Position.Y, p.Position.Z)
	return rl.MatrixMultiply(rot, trans)
}

// Validate rejects shapes whose inflated surface would contain degenerate faces.
func (s Shape) Validate() error {
	switch s.Kind {
	case KindBox, KindRamp:
	default:
		return fmt.Errorf("%w: %s is not an obstacle shape", ErrDegenerate, s.Kind)
	}
	if !(s.Width > 0) || !(s.Height > 0) || !(s.Depth > 0) {
		return fmt.Errorf("%w: %s dims %gx%gx%g must be positive",
			ErrDegenerate, s.Kind, s.Width, s.Height, s.Depth)
	}
	if s.Kind == KindRamp && (s.LowHeight < 0 || s.LowHeight >= s.Height) {
		return fmt.Errorf("%w: ramp low height %g outside [0, %g)",
			ErrDegenerate, s.LowHeight, s.Height)
	}
	return nil
}

// Profile returns the counter-clockwise cross-section in the XY plane.
func (s Shape) Profile() []rl.Vector2 {
	hw, hh := s.Width/2, s.Height/2
	if s.Kind == KindRamp {
		profile := []rl.Vector2{{X: -hw, Y: -hh}, {X: hw, Y: -hh}}
		if s.LowHeight > 0 {
			profile = append(profile, rl.Vector2{X: hw, Y: -hh + s.LowHeight})
		}
		return append(profile, rl.Vector2{X: -hw, Y: hh})
	}
	return []rl.Vector2{{X: -hw, Y: -hh}, {X: hw, Y: -hh}, {X: hw, Y: hh}, {X: -hw, Y: hh}}
}

// Bound is the world-space inflated surface of one obstacle or the hole.
type Bound struct {
	Kind   Kind
	Source int     // index into the level's obstacle table, NoSource for the hole
	Radius float32 // ball radius the surface was inflated by

	tris []physics.Triangle
	box  physics.AABB
}

func newBound(kind Kind, source int, radius float32, tris []physics.Triangle) *Bound {
	return &Bound{
		Kind:   kind,
		Source: source,
		Radius: radius,
		tris:   tris,
		box:    physics.NewAABBFromTriangles(tris),
	}
}

// BoundingBox implements physics.Mesh
func (b *Bound) BoundingBox() physics.AABB {
	return b.box
}

// Triangles implements physics.Mesh
func (b *Bound) Triangles() []physics.Triangle {
	return b.tris
}

// Build inflates an obstacle by radius and places it in the world. source is
// the obstacle's index in the level table. smoothness sets how many segments
// approximate each rounded corner.
func Build(shape Shape, place Placement, source int, radius float32, smoothness int) (*Bound, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if !(radius > 0) {
		return nil, fmt.Errorf("%w: ball radius %g must be positive", ErrDegenerate, radius)
	}
	if smoothness < 1 {
		return nil, fmt.Errorf("%w: smoothness %d must be at least 1", ErrDegenerate, smoothness)
	}

	local, err := roundedPrism(shape.Profile(), shape.Depth, radius, smoothness)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", shape.Kind, err)
	}

	nearest, furthest, err := Clearance(shape, local)
	if err != nil {
		return nil, err
	}
	slack := clearanceTolerance * float64(radius)
	if nearest < float64(radius)-slack {
		return nil, fmt.Errorf("%w: %s surface comes within %.4g of the solid", ErrClearance, shape.Kind, nearest)
	}
	if limit := outerOffset(radius, smoothness); furthest > limit+slack {
		return nil, fmt.Errorf("%w: %s surface strays %.4g from the solid, limit %.4g",
			ErrClearance, shape.Kind, furthest, limit)
	}

	return newBound(shape.Kind, source, radius, place.apply(local)), nil
}

// Prism returns the obstacle's own surface, not inflated, placed in the
// world. It is what gets drawn for shapes without a stock mesh.
func Prism(shape Shape, place Placement) ([]physics.Triangle, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	// With no radius every bevel ring collapses onto the profile and only
	// the flat faces survive the sliver filter.
	local, err := roundedPrism(shape.Profile(), shape.Depth, 0, 1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", shape.Kind, err)
	}
	return place.apply(local), nil
}

func (p Placement) apply(local []physics.Triangle) []physics.Triangle {
	m := p.Matrix()
	world := make([]physics.Triangle, len(local))
	for i, tri := range local {
		world[i] = tri.Transform(m)
	}
	return world
}

// Meshes adapts a bound slice for the physics world.
func Meshes(bounds []*Bound) []physics.Mesh {
	meshes := make([]physics.Mesh, len(bounds))
	for i, b := range bounds {
		meshes[i] = b
	}
	return meshes
}
