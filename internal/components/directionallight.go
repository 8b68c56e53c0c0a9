package components

import (
	"math"
	"minigolf/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DirectionalLight lights the course and sets up the shadow camera.
type DirectionalLight struct {
	engine.BaseComponent
	Direction      rl.Vector3
	Color          rl.Color
	Intensity      float32
	AmbientColor   rl.Color
	ShadowDistance float32
}

func NewDirectionalLight() *DirectionalLight {
	return &DirectionalLight{
		Direction:      rl.Vector3Normalize(rl.Vector3{X: 0.35, Y: -1.0, Z: -0.35}),
		Color:          rl.White,
		Intensity:      1.0,
		AmbientColor:   rl.NewColor(60, 60, 70, 255),
		ShadowDistance: 80.0,
	}
}

// GetLightCamera returns an orthographic camera looking down the light
// direction at target, wide enough to cover orthoSize units.
func (l *DirectionalLight) GetLightCamera(target rl.Vector3, orthoSize float32) rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.Vector3Add(target, rl.Vector3Scale(l.Direction, -l.ShadowDistance)),
		Target:     target,
		Up:         l.lightCameraUp(),
		Fovy:       orthoSize,
		Projection: rl.CameraOrthographic,
	}
}

func (l *DirectionalLight) MoveLightDir(dx, dy, dz float32) {
	l.Direction.X += dx
	l.Direction.Y += dy
	l.Direction.Z += dz
	l.Direction = rl.Vector3Normalize(l.Direction)
}

func (l *DirectionalLight) GetColorFloat() []float32 {
	return []float32{
		float32(l.Color.R) / 255.0 * l.Intensity,
		float32(l.Color.G) / 255.0 * l.Intensity,
		float32(l.Color.B) / 255.0 * l.Intensity,
		1.0,
	}
}

func (l *DirectionalLight) GetAmbientFloat() []float32 {
	return []float32{
		float32(l.AmbientColor.R) / 255.0,
		float32(l.AmbientColor.G) / 255.0,
		float32(l.AmbientColor.B) / 255.0,
		1.0,
	}
}

func (l *DirectionalLight) lightCameraUp() rl.Vector3 {
	if math.Abs(float64(l.Direction.Y)) > 0.9 {
		return rl.Vector3{X: 0, Y: 0, Z: 1}
	}
	return rl.Vector3{X: 0, Y: 1, Z: 0}
}

// Shade lights base for a surface facing normal. It stands in for the
// lighting shader on geometry drawn in immediate mode.
func (l *DirectionalLight) Shade(base rl.Color, normal rl.Vector3) rl.Color {
	diffuse := -rl.Vector3DotProduct(rl.Vector3Normalize(normal), l.Direction)
	if diffuse < 0 {
		diffuse = 0
	}
	ambient := l.GetAmbientFloat()
	light := l.GetColorFloat()

	channel := func(c uint8, i int) uint8 {
		v := float32(c) * (ambient[i] + light[i]*diffuse)
		if v > 255 {
			v = 255
		}
		return uint8(v)
	}
	return rl.NewColor(channel(base.R, 0), channel(base.G, 1), channel(base.B, 2), base.A)
}
