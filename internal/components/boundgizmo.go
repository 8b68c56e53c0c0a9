package components

import (
	"minigolf/internal/engine"
	"minigolf/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BoundGizmo draws a collision surface as wireframe, plus its broad-phase box.
type BoundGizmo struct {
	engine.BaseComponent
	Mesh     physics.Mesh
	Color    rl.Color
	BoxColor rl.Color
}

func NewBoundGizmo(mesh physics.Mesh, color rl.Color) *BoundGizmo {
	return &BoundGizmo{
		Mesh:     mesh,
		Color:    color,
		BoxColor: rl.Fade(color, 0.35),
	}
}

func (b *BoundGizmo) Draw() {
	g := b.GetGameObject()
	if g == nil || !g.Active || b.Mesh == nil {
		return
	}

	for _, tri := range b.Mesh.Triangles() {
		rl.DrawLine3D(tri.V0, tri.V1, b.Color)
		rl.DrawLine3D(tri.V1, tri.V2, b.Color)
		rl.DrawLine3D(tri.V2, tri.V0, b.Color)
	}

	box := b.Mesh.BoundingBox()
	if !box.IsEmpty() {
		rl.DrawBoundingBox(rl.BoundingBox{Min: box.Min, Max: box.Max}, b.BoxColor)
	}
}
