// Package game runs the window: it feeds input to the simulation, steps it
// once per frame and draws the course and HUD.
package game

import (
	"log"
	"time"

	"minigolf/internal/camera"
	"minigolf/internal/golf"
	"minigolf/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// maxFrameTime caps a single step so a window drag or hitch cannot fire the
// ball through the course.
const maxFrameTime = float32(1.0 / 20)

type Game struct {
	Sim       *golf.Simulation
	World     *world.World
	Camera    *camera.FollowCamera
	DebugMode bool

	frame golf.Frame
	err   error

	// Debug timing (ms)
	updateMs float64
	shadowMs float64
	drawMs   float64
}

func New(sim *golf.Simulation) *Game {
	st := sim.State()
	return &Game{
		Sim:    sim,
		World:  world.New(sim),
		Camera: camera.New(st.Ball.Position, st.CameraYaw),
	}
}

// Run opens the window and plays until it is closed. The only error is a
// level that fails to load mid-game.
func (g *Game) Run() error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(1280, 720, "Minigolf")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)

	// Initialize world after OpenGL context is created
	g.World.Initialize()
	defer g.World.Unload()
	initRayguiStyle()

	snap := g.Sim.OnLevelLoaded.AddListener(func(int) {
		st := g.Sim.State()
		g.Camera.Snap(st.Ball.Position, st.CameraYaw)
	})
	defer g.Sim.OnLevelLoaded.RemoveListener(snap)

	restart := g.Sim.OnRestart.AddListener(func(int) {
		st := g.Sim.State()
		g.Camera.Snap(st.Ball.Position, st.CameraYaw)
	})
	defer g.Sim.OnRestart.RemoveListener(restart)

	for !rl.WindowShouldClose() && g.err == nil {
		g.Update()
		g.Draw()
	}
	return g.err
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := min(rl.GetFrameTime(), maxFrameTime)

	g.handleInput()

	frame, err := g.Sim.Step(deltaTime)
	if err != nil {
		log.Printf("Game: %v", err)
		g.err = err
	}
	g.frame = frame

	g.World.Sync(frame)
	g.World.Update(deltaTime)
	g.Camera.Update(frame.Position, frame.CameraYaw, rl.GetMouseWheelMove(), deltaTime)

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) handleInput() {
	var axis float32
	if rl.IsKeyDown(rl.KeyLeft) || rl.IsKeyDown(rl.KeyA) {
		axis--
	}
	if rl.IsKeyDown(rl.KeyRight) || rl.IsKeyDown(rl.KeyD) {
		axis++
	}
	g.Sim.SetAimInput(axis)

	if rl.IsKeyPressed(rl.KeySpace) {
		g.Sim.RequestLaunch()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.Sim.RequestReset()
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
		g.World.ToggleBounds()
	}
}

func (g *Game) Draw() {
	cam := g.Camera.GetRaylibCamera()
	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())

	// Shadow pass
	shadowStart := time.Now()
	g.World.DrawShadowMap()
	g.shadowMs = float64(time.Since(shadowStart).Microseconds()) / 1000.0

	// Main render
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	rl.BeginMode3D(cam)
	g.World.Draw(cam, aspect)
	rl.EndMode3D()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.drawHUD()
	if g.DebugMode {
		g.drawDebug()
	}
	rl.EndDrawing()
}
