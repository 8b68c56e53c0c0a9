package game

import (
	"fmt"

	"minigolf/internal/golf"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Theme colors
var (
	colorBgDark    = rl.NewColor(10, 10, 15, 255)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorBgHover   = rl.NewColor(38, 38, 52, 255)
	colorAccent    = rl.NewColor(108, 99, 255, 255)

	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
)

// initRayguiStyle sets up the dark HUD theme
func initRayguiStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.LINE_COLOR, gui.NewColorPropertyValue(rl.NewColor(40, 40, 55, 255)))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 18)
}

// --- Text ---

func levelLabel(f golf.Frame, name string, count int) string {
	if name == "" {
		return fmt.Sprintf("Level %d/%d", f.Level+1, count)
	}
	return fmt.Sprintf("Level %d/%d: %s", f.Level+1, count, name)
}

func launchesLabel(f golf.Frame) string {
	return fmt.Sprintf("Launches %d/%d", f.Launches, f.MaxLaunches)
}

func bonusLabel(f golf.Frame) string {
	return fmt.Sprintf("Bonus %d", f.Bonus)
}

// banner returns the centred message for the end-of-level states.
func banner(f golf.Frame) (title, body string, ok bool) {
	switch f.State {
	case golf.LevelComplete:
		shots := "launches"
		if f.Launches == 1 {
			shots = "launch"
		}
		return "Sunk!", fmt.Sprintf("In %d %s, +%d bonus", f.Launches, shots, f.MaxLaunches-f.Launches), true
	case golf.AllComplete:
		return "Course complete", fmt.Sprintf("Final bonus %d. Esc to quit.", f.Bonus), true
	default:
		return "", "", false
	}
}

// --- Drawing ---

// drawHUD draws the status panel, power bar and banners over the 3D view.
func (g *Game) drawHUD() {
	f := g.frame
	screenW := float32(rl.GetScreenWidth())
	screenH := float32(rl.GetScreenHeight())

	gui.Panel(rl.Rectangle{X: 10, Y: 10, Width: 280, Height: 100}, "")
	gui.Label(rl.Rectangle{X: 20, Y: 16, Width: 260, Height: 24}, levelLabel(f, g.Sim.Level().Name, g.Sim.LevelCount()))
	gui.Label(rl.Rectangle{X: 20, Y: 46, Width: 260, Height: 24}, launchesLabel(f))
	gui.Label(rl.Rectangle{X: 20, Y: 76, Width: 260, Height: 24}, bonusLabel(f))

	if f.State == golf.PreLaunch {
		bar := rl.Rectangle{X: screenW/2 - 200, Y: screenH - 60, Width: 400, Height: 24}
		gui.ProgressBar(bar, "Power ", fmt.Sprintf(" %3.0f%%", f.Power*100), f.Power, 0, 1)
	}

	if title, body, ok := banner(f); ok {
		box := rl.Rectangle{X: screenW/2 - 180, Y: screenH/2 - 60, Width: 360, Height: 110}
		gui.Panel(box, title)
		gui.Label(rl.Rectangle{X: box.X + 20, Y: box.Y + 50, Width: box.Width - 40, Height: 30}, body)
	}

	rl.DrawText("Left/Right aim, Space launch, R reset, wheel zoom, F1 debug", 10, int32(screenH)-28, 18, rl.RayWhite)
}

func (g *Game) drawDebug() {
	phys := g.Sim.World()
	rl.DrawFPS(10, 120)
	rl.DrawText(fmt.Sprintf("State:      %s", g.frame.State), 10, 145, 16, rl.Yellow)
	rl.DrawText(fmt.Sprintf("Speed:      %.2f", rl.Vector3Length(g.frame.Velocity)), 10, 165, 16, rl.Yellow)
	rl.DrawText(fmt.Sprintf("Triangles:  %d (%d candidates)", phys.TriangleCount(), phys.LastCandidateCount()), 10, 185, 16, rl.Yellow)
	rl.DrawText(fmt.Sprintf("Culled:     %d", g.World.Culled()), 10, 205, 16, rl.Yellow)
	if g.frame.Collided {
		n := g.frame.Contact.Normal
		rl.DrawText(fmt.Sprintf("Contact:    (%.2f, %.2f, %.2f)", n.X, n.Y, n.Z), 10, 225, 16, rl.Orange)
	}

	rl.DrawText(fmt.Sprintf("Update:  %.2f ms", g.updateMs), 10, 250, 16, rl.Green)
	rl.DrawText(fmt.Sprintf("Shadows: %.2f ms", g.shadowMs), 10, 270, 16, rl.Green)
	rl.DrawText(fmt.Sprintf("Draw:    %.2f ms", g.drawMs), 10, 290, 16, rl.Green)
	rl.DrawText(fmt.Sprintf("Total:   %.2f ms", g.updateMs+g.shadowMs+g.drawMs), 10, 310, 16, rl.Lime)

	shadow := g.World.Renderer.ShadowMap.Depth
	previewSize := int32(200)
	screenW := int32(rl.GetScreenWidth())
	rl.DrawTexturePro(
		shadow,
		rl.Rectangle{X: 0, Y: 0, Width: float32(shadow.Width), Height: float32(-shadow.Height)},
		rl.Rectangle{X: float32(screenW - previewSize - 10), Y: 10, Width: float32(previewSize), Height: float32(previewSize)},
		rl.Vector2{X: 0, Y: 0},
		0,
		rl.White,
	)
	rl.DrawRectangleLines(screenW-previewSize-10, 10, previewSize, previewSize, rl.Green)
}
