package components

import (
	"minigolf/internal/engine"
	"minigolf/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SolidRenderer draws a world-space triangle list with flat shading. Used for
// shapes raylib has no generator for, such as ramps.
type SolidRenderer struct {
	engine.BaseComponent
	Triangles []physics.Triangle
	Color     rl.Color
	Light     *DirectionalLight

	shaded []rl.Color
}

func NewSolidRenderer(tris []physics.Triangle, color rl.Color, light *DirectionalLight) *SolidRenderer {
	return &SolidRenderer{
		Triangles: tris,
		Color:     color,
		Light:     light,
	}
}

// Start shades every face once; the light only moves between levels.
func (s *SolidRenderer) Start() {
	s.Reshade()
}

// Reshade recomputes face colours after the light or colour changes.
func (s *SolidRenderer) Reshade() {
	s.shaded = make([]rl.Color, len(s.Triangles))
	for i, tri := range s.Triangles {
		if s.Light == nil {
			s.shaded[i] = s.Color
			continue
		}
		s.shaded[i] = s.Light.Shade(s.Color, tri.Normal)
	}
}

func (s *SolidRenderer) Draw() {
	g := s.GetGameObject()
	if g == nil || !g.Active {
		return
	}
	if len(s.shaded) != len(s.Triangles) {
		s.Reshade()
	}
	for i, tri := range s.Triangles {
		rl.DrawTriangle3D(tri.V0, tri.V1, tri.V2, s.shaded[i])
	}
}
