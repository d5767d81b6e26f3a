package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/playground/renderer"
	"github.com/pthm-cable/playground/sim"
	"github.com/pthm-cable/playground/systems"
	"github.com/pthm-cable/playground/ui"
)

// windowBg fills the area around the panels and the play field.
var windowBg = rl.Color{R: 241, G: 245, B: 249, A: 255}

// Draw renders the play field, panels and overlays.
func (g *Game) Draw() {
	g.perfCollector.RecordFrame()
	snap := g.sim.Snapshot()

	rl.BeginDrawing()
	rl.ClearBackground(windowBg)

	cam := g.camera
	rl.BeginScissorMode(int32(cam.OriginX), int32(cam.OriginY), int32(cam.ViewportW), int32(cam.ViewportH))
	g.backgroundRenderer.Draw(cam)
	g.bodyRenderer.Draw(cam, snap.Bodies, renderer.BodyOptions{
		HealthBars:     g.overlays.IsEnabled(ui.OverlayHealthBars),
		CollisionBoxes: g.overlays.IsEnabled(ui.OverlayCollisionBoxes),
		Velocities:     g.overlays.IsEnabled(ui.OverlayVelocities),
		IDs:            g.overlays.IsEnabled(ui.OverlayBodyIDs),
	})
	g.particleRenderer.Draw(cam, snap.Particles)
	rl.EndScissorMode()
	rl.DrawRectangleLinesEx(rl.Rectangle{X: cam.OriginX, Y: cam.OriginY, Width: cam.ViewportW, Height: cam.ViewportH}, 1, rl.LightGray)

	g.hud.Draw(int32(cam.OriginX), 10, int32(cam.ViewportW), ui.HUDData{
		Title:          "Physics Playground",
		ToolLabel:      g.mapper.Tool().Label(),
		Tick:           snap.Tick,
		StepsPerUpdate: g.stepsPerUpdate,
		FPS:            rl.GetFPS(),
		Paused:         g.paused,
	})

	g.drawToolbar(snap)

	if g.overlays.IsEnabled(ui.OverlayInspector) {
		g.drawInspector(snap)
	}
	if g.overlays.IsEnabled(ui.OverlayPerf) {
		stats := g.perfCollector.Stats()
		g.perfPanel.Draw(ui.PerfPanelData{
			AvgTick:  stats.AvgTickDuration,
			PhaseAvg: stats.PhaseAvg,
			PhasePct: stats.PhasePct,
		})
	}

	rl.EndDrawing()
}

// drawToolbar draws the toolbar and applies what the user clicked.
func (g *Game) drawToolbar(snap sim.Snapshot) {
	result, y := g.toolbar.Draw(ui.ToolbarData{
		Selected:       g.mapper.Tool(),
		Bodies:         len(snap.Bodies),
		Particles:      len(snap.Particles),
		StepsPerUpdate: g.stepsPerUpdate,
	})

	if result.Selected != g.mapper.Tool() {
		g.SetTool(result.Selected)
	}
	if result.Clear {
		g.sim.Apply(sim.ClearAll{})
	}
	if result.StepsPerUpdate >= 1 && result.StepsPerUpdate <= maxSpeed {
		g.stepsPerUpdate = result.StepsPerUpdate
	}

	g.controls.SetPosition(panelMargin*2, y)
	g.controls.Draw(g.overlays)
}

// drawInspector shows the topmost body under the pointer next to the cursor.
func (g *Game) drawInspector(snap sim.Snapshot) {
	if !g.pointerInField {
		return
	}
	body := topmostAt(snap.Bodies, g.pointerX, g.pointerY)
	if body == nil {
		return
	}
	mouse := rl.GetMousePosition()
	g.inspector.SetPosition(int32(mouse.X)+16, int32(mouse.Y)+16)
	g.inspector.Draw(body)
}

// topmostAt returns the last-drawn body containing (x, y), or nil.
func topmostAt(bodies []sim.BodyView, x, y float32) *sim.BodyView {
	for i := len(bodies) - 1; i >= 0; i-- {
		b := &bodies[i]
		if systems.ContainsPoint(systems.AABB{X: b.X, Y: b.Y, W: b.W, H: b.H}, x, y) {
			return b
		}
	}
	return nil
}
