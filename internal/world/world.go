// Package world mirrors a golf simulation as a drawable scene: the table, the
// cup, the obstacles, the ball and, on request, the collision bounds.
package world

import (
	"fmt"
	"log"

	"minigolf/internal/assets"
	"minigolf/internal/bound"
	"minigolf/internal/components"
	"minigolf/internal/engine"
	"minigolf/internal/golf"
	"minigolf/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// TagLevel marks objects rebuilt on every level load
	TagLevel = "level"
	// TagGizmo marks debug geometry that never casts shadows
	TagGizmo = "gizmo"
)

type World struct {
	Scene      *engine.Scene
	Renderer   *Renderer
	Light      *components.DirectionalLight
	Ball       *engine.GameObject
	Arrow      *components.AimArrow
	ShowBounds bool

	sim      *golf.Simulation
	extents  map[uint64]physics.AABB // world boxes used for culling
	loadedID engine.ListenerID
	culled   int
}

// New sets up the ball and aim arrow for sim. Nothing here touches the GPU;
// Initialize does that once a window exists.
func New(sim *golf.Simulation) *World {
	w := &World{
		Scene:    engine.NewScene("Course"),
		Renderer: NewRenderer(),
		Light:    components.NewDirectionalLight(),
		sim:      sim,
		extents:  make(map[uint64]physics.AABB),
	}

	sun := engine.NewGameObject("Sun")
	sun.AddComponent(w.Light)
	w.Scene.AddGameObject(sun)

	w.Ball = engine.NewGameObject("Ball")
	w.Ball.Tags = []string{"ball"}
	w.Scene.AddGameObject(w.Ball)

	radius := sim.Config().Ball.Radius
	aim := engine.NewGameObject("Aim")
	w.Arrow = components.NewAimArrow(radius*2, radius*7, rl.Yellow)
	aim.AddComponent(w.Arrow)
	w.Scene.AddGameObject(aim)

	w.Sync(golf.Frame{
		State:       sim.State().State,
		Position:    sim.State().Ball.Position,
		Orientation: sim.State().Orientation,
		Aim:         sim.State().Aim,
	})
	return w
}

// Initialize loads GPU resources and builds the current level.
func (w *World) Initialize() {
	w.Renderer.Initialize()
	w.Renderer.SetLight(w.Light)

	radius := w.sim.Config().Ball.Radius
	ball := components.NewSharedModelRenderer(assets.CheckedBall(radius), rl.White)
	ball.SetShader(w.Renderer.Shader)
	w.Ball.AddComponent(ball)

	w.loadedID = w.sim.OnLevelLoaded.AddListener(func(int) { w.BuildLevel() })
	w.BuildLevel()

	w.Scene.Start()
}

// BuildLevel replaces every level object with the simulation's current level.
func (w *World) BuildLevel() {
	w.Scene.RemoveByTag(TagLevel)
	clear(w.extents)

	l := w.sim.Level()
	width, depth := l.CourseSize()

	table := w.newLevelObject("Table")
	table.AddComponent(w.shaded(components.NewSharedModelRenderer(assets.Plane(width, depth), assets.Felt)))

	cup := w.newLevelObject("Cup")
	cup.Transform.Position = rl.Vector3Add(l.Cup(), rl.Vector3{Y: 0.005})
	cup.AddComponent(w.shaded(components.NewSharedModelRenderer(assets.Disc(w.sim.CupRadius()), assets.Cup)))

	for i, e := range w.sim.Obstacles() {
		obj := w.newLevelObject(fmt.Sprintf("%s_%d", e.Shape.Kind, i))
		w.extents[obj.UID] = e.Box().Bounds()

		switch e.Shape.Kind {
		case bound.KindBox:
			obj.Transform.Position = e.Placement.Position
			obj.Transform.SetYaw(e.Placement.Yaw)
			obj.Transform.Scale = rl.Vector3{X: e.Shape.Width, Y: e.Shape.Height, Z: e.Shape.Depth}
			color := assets.LookupColor(e.Color, assets.Obstacle)
			obj.AddComponent(w.shaded(components.NewSharedModelRenderer(assets.UnitCube(), color)))
		case bound.KindRamp:
			tris, err := bound.Prism(e.Shape, e.Placement)
			if err != nil {
				log.Printf("World: ramp %d not drawn: %v", i, err)
				continue
			}
			color := assets.LookupColor(e.Color, assets.Ramp)
			obj.AddComponent(components.NewSolidRenderer(tris, color, w.Light))
		}
	}

	for _, b := range w.sim.Bounds() {
		name := b.Kind.String() + "_bound"
		if b.Source != bound.NoSource {
			name = fmt.Sprintf("%s_%d", name, b.Source)
		}
		gizmo := w.newLevelObject(name)
		gizmo.Tags = append(gizmo.Tags, TagGizmo)
		gizmo.Active = w.ShowBounds
		gizmo.AddComponent(components.NewBoundGizmo(b, gizmoColor(b.Kind)))
		w.extents[gizmo.UID] = b.BoundingBox()
	}

	w.Renderer.Cover(rl.Vector3{}, width, depth)
	w.Scene.Start()
}

func (w *World) newLevelObject(name string) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Tags = []string{TagLevel}
	w.Scene.AddGameObject(g)
	return g
}

func (w *World) shaded(m *components.ModelRenderer) *components.ModelRenderer {
	m.SetShader(w.Renderer.Shader)
	return m
}

func gizmoColor(kind bound.Kind) rl.Color {
	switch kind {
	case bound.KindHole:
		return rl.SkyBlue
	case bound.KindRamp:
		return rl.Orange
	default:
		return rl.Yellow
	}
}

// ToggleBounds shows or hides the collision bound wireframes.
func (w *World) ToggleBounds() {
	w.ShowBounds = !w.ShowBounds
	for _, g := range w.Scene.FindByTag(TagGizmo) {
		g.Active = w.ShowBounds
	}
}

// Sync moves the ball and the aim arrow to match a simulation frame.
func (w *World) Sync(f golf.Frame) {
	w.Ball.Transform.Position = f.Position
	w.Ball.Transform.Rotation = f.Orientation

	aim := w.Arrow.GetGameObject()
	aim.Active = f.State == golf.PreLaunch
	aim.Transform.Position = f.Position
	w.Arrow.Direction = golf.AimDirection(f.Aim)
	w.Arrow.Power = f.Power
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

// visible returns the objects worth drawing from camera: the ball when its
// sphere reaches into the frustum, level objects whose extent does, and
// anything else unconditionally.
func (w *World) visible(f Frustum) []*engine.GameObject {
	out := make([]*engine.GameObject, 0, len(w.Scene.GameObjects))
	radius := w.sim.Config().Ball.Radius
	w.culled = 0
	for _, g := range w.Scene.GameObjects {
		inside := true
		if g == w.Ball {
			inside = f.ContainsSphere(g.Transform.Position, radius)
		} else if box, ok := w.extents[g.UID]; ok {
			inside = f.ContainsBox(box)
		}
		if !inside {
			w.culled++
			continue
		}
		out = append(out, g)
	}
	return out
}

// Culled returns how many objects the last Draw skipped.
func (w *World) Culled() int {
	return w.culled
}

func shadowCasters(objects []*engine.GameObject) []*engine.GameObject {
	out := make([]*engine.GameObject, 0, len(objects))
	for _, g := range objects {
		if !g.HasTag(TagGizmo) {
			out = append(out, g)
		}
	}
	return out
}

// DrawShadowMap renders the light's depth pass. Call before BeginDrawing.
func (w *World) DrawShadowMap() {
	w.Renderer.DrawShadowMap(shadowCasters(w.Scene.GameObjects))
}

// Draw renders the lit scene from camera. Call inside BeginMode3D.
func (w *World) Draw(camera rl.Camera3D, aspect float32) {
	frustum := ExtractFrustum(camera, aspect)
	w.Renderer.DrawWithShadows(camera.Position, w.visible(frustum))
}

func (w *World) Unload() {
	w.sim.OnLevelLoaded.RemoveListener(w.loadedID)
	w.Renderer.Unload()
	assets.Unload()
}
