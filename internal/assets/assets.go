// Package assets holds the colour palette level files refer to and a cache of
// generated models shared between scene objects.
package assets

import (
	"fmt"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var manager *Manager

type Manager struct {
	models   map[string]rl.Model
	textures map[string]rl.Texture2D
}

// Color name mapping for level files
var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Gold":      rl.Gold,
	"White":     rl.White,
	"Gray":      rl.Gray,
	"LightGray": rl.LightGray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Pink":      rl.Pink,
	"Maroon":    rl.Maroon,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"SkyBlue":   rl.SkyBlue,
	"DarkBlue":  rl.DarkBlue,
	"Lime":      rl.Lime,
	"DarkGreen": rl.DarkGreen,
}

// Course colours
var (
	Felt     = rl.NewColor(40, 120, 60, 255)
	Cup      = rl.NewColor(15, 15, 15, 255)
	Obstacle = rl.NewColor(200, 80, 60, 255)
	Ramp     = rl.NewColor(210, 170, 90, 255)
	Ball     = rl.White
)

// LookupColor returns a raylib color from a palette name or a "#rrggbb"
// string, and fallback for anything else.
func LookupColor(name string, fallback rl.Color) rl.Color {
	if name == "" {
		return fallback
	}
	if c, ok := colorByName[name]; ok {
		return c
	}
	if c, err := parseHex(name); err == nil {
		return c
	}
	return fallback
}

func parseHex(s string) (rl.Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || len(hex) != 6 {
		return rl.Color{}, fmt.Errorf("color %q is not #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return rl.Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return rl.NewColor(uint8(v>>16), uint8(v>>8), uint8(v), 255), nil
}

func Init() {
	manager = &Manager{
		models:   make(map[string]rl.Model),
		textures: make(map[string]rl.Texture2D),
	}
}

// GenModel returns the model cached under key, building it from gen on first
// use. Needs a window.
func GenModel(key string, gen func() rl.Mesh) rl.Model {
	if manager == nil {
		Init()
	}

	if model, exists := manager.models[key]; exists {
		return model
	}

	model := rl.LoadModelFromMesh(gen())
	manager.models[key] = model
	return model
}

// UnitCube is a 1x1x1 cube; scale it through the object's transform.
func UnitCube() rl.Model {
	return GenModel("cube", func() rl.Mesh { return rl.GenMeshCube(1, 1, 1) })
}

// CheckedBall is a sphere wearing a two-tone checker so its roll shows.
func CheckedBall(radius float32) rl.Model {
	key := fmt.Sprintf("ball:%g", radius)
	if manager == nil {
		Init()
	}
	if model, exists := manager.models[key]; exists {
		return model
	}

	image := rl.GenImageChecked(64, 64, 8, 8, Ball, rl.LightGray)
	texture := rl.LoadTextureFromImage(image)
	rl.UnloadImage(image)
	manager.textures[key] = texture

	model := rl.LoadModelFromMesh(rl.GenMeshSphere(radius, 24, 24))
	rl.SetMaterialTexture(model.Materials, rl.MapDiffuse, texture)
	manager.models[key] = model
	return model
}

// Plane is a flat width x depth quad facing +Y.
func Plane(width, depth float32) rl.Model {
	return GenModel(fmt.Sprintf("plane:%gx%g", width, depth), func() rl.Mesh {
		return rl.GenMeshPlane(width, depth, 8, 8)
	})
}

// Disc is a thin cylinder lying on the course, used for the cup mouth.
func Disc(radius float32) rl.Model {
	return GenModel(fmt.Sprintf("disc:%g", radius), func() rl.Mesh {
		return rl.GenMeshCylinder(radius, 0.02, 32)
	})
}

func Unload() {
	if manager == nil {
		return
	}

	for _, model := range manager.models {
		rl.UnloadModel(model)
	}

	for _, texture := range manager.textures {
		rl.UnloadTexture(texture)
	}

	manager.models = make(map[string]rl.Model)
	manager.textures = make(map[string]rl.Texture2D)
}
