package components

import (
	"minigolf/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// AimArrow points from its object along Direction, growing with Power.
type AimArrow struct {
	engine.BaseComponent
	Direction rl.Vector3 // unit, horizontal
	Power     float32    // 0..1
	MinLength float32
	MaxLength float32
	Color     rl.Color
}

func NewAimArrow(minLength, maxLength float32, color rl.Color) *AimArrow {
	return &AimArrow{
		Direction: rl.Vector3{Z: -1},
		MinLength: minLength,
		MaxLength: maxLength,
		Color:     color,
	}
}

// Tip returns where the arrow ends for the current power.
func (a *AimArrow) Tip(from rl.Vector3) rl.Vector3 {
	length := a.MinLength + (a.MaxLength-a.MinLength)*rl.Clamp(a.Power, 0, 1)
	return rl.Vector3Add(from, rl.Vector3Scale(a.Direction, length))
}

func (a *AimArrow) Draw() {
	g := a.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	from := g.Transform.Position
	tip := a.Tip(from)
	head := rl.Vector3Lerp(from, tip, 0.8)

	color := lerpColor(a.Color, rl.Red, a.Power)
	rl.DrawCylinderEx(from, head, 0.08, 0.08, 8, color)
	rl.DrawCylinderEx(head, tip, 0.3, 0, 12, color)
}

func lerpColor(from, to rl.Color, t float32) rl.Color {
	t = rl.Clamp(t, 0, 1)
	mix := func(a, b uint8) uint8 {
		return uint8(float32(a) + (float32(b)-float32(a))*t)
	}
	return rl.NewColor(mix(from.R, to.R), mix(from.G, to.G), mix(from.B, to.B), mix(from.A, to.A))
}
