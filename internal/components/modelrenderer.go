package components

import (
	"minigolf/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ModelRenderer draws a model at its object's transform.
type ModelRenderer struct {
	engine.BaseComponent
	Model  rl.Model
	Color  rl.Color
	shader rl.Shader
	shared bool // true if owned by the asset cache
}

// NewModelRenderer takes ownership of model; Unload frees it.
func NewModelRenderer(model rl.Model, color rl.Color) *ModelRenderer {
	return &ModelRenderer{
		Model: model,
		Color: color,
	}
}

// NewSharedModelRenderer draws a cached model and leaves freeing it to the cache.
func NewSharedModelRenderer(model rl.Model, color rl.Color) *ModelRenderer {
	return &ModelRenderer{
		Model:  model,
		Color:  color,
		shared: true,
	}
}

func (m *ModelRenderer) SetShader(shader rl.Shader) {
	m.shader = shader
	m.Model.Materials.Shader = shader
}

func (m *ModelRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	// Shared models are drawn by several objects, so the colour is set per draw
	m.Model.Materials.Maps.Color = m.Color
	m.Model.Transform = g.Transform.Matrix()

	rl.DrawModel(m.Model, rl.Vector3Zero(), 1.0, rl.White)
}

func (m *ModelRenderer) Unload() {
	if !m.shared {
		rl.UnloadModel(m.Model)
	}
}
