package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/playground/sim"
	"github.com/pthm-cable/playground/tools"
)

// toolKeys selects tools with the number row, in toolbar order.
var toolKeys = []int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour, rl.KeyFive, rl.KeySix, rl.KeySeven}

// handleInput processes keyboard and pointer input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyN) && g.paused {
		g.stepRequested = true
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < maxSpeed {
		g.stepsPerUpdate++
	}

	for i, key := range toolKeys {
		if rl.IsKeyPressed(key) {
			g.SetTool(tools.Tool(i))
		}
	}

	if rl.IsKeyPressed(rl.KeyDelete) {
		g.sim.Apply(sim.ClearAll{})
	}

	if rl.IsKeyPressed(rl.KeyF2) {
		g.logPerfStats()
		g.logWorldState()
	}

	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		g.overlays.HandleKeyPress(key)
	}

	g.handleCameraInput()
	g.handlePointer()
}

// handlePointer turns mouse state into pointer events for the tool mapper.
func (g *Game) handlePointer() {
	mouse := rl.GetMousePosition()
	inField := g.camera.InViewport(mouse.X, mouse.Y)
	wx, wy := g.camera.ScreenToWorld(mouse.X, mouse.Y)

	var events []tools.PointerEvent
	switch {
	case inField:
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			events = append(events, tools.PointerEvent{Action: tools.Press, X: wx, Y: wy})
		}
		if wx != g.pointerX || wy != g.pointerY {
			events = append(events, tools.PointerEvent{Action: tools.Move, X: wx, Y: wy})
		}
		if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
			events = append(events, tools.PointerEvent{Action: tools.Release, X: wx, Y: wy})
		}
	case g.pointerInField:
		events = append(events, tools.PointerEvent{Action: tools.Leave, X: wx, Y: wy})
	}

	g.pointerInField = inField
	g.pointerX, g.pointerY = wx, wy

	for _, ev := range events {
		for _, cmd := range g.mapper.Handle(ev) {
			g.sim.Apply(cmd)
		}
	}
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	fx, fy, fw, fh := g.fieldRect()
	g.camera.Resize(fx, fy, fw, fh)
	g.initPanels()
}

// handleCameraInput processes camera pan/zoom controls.
func (g *Game) handleCameraInput() {
	// Pan speed scales inversely with zoom for natural feel
	panSpeed := float32(8.0) / g.camera.Zoom

	if rl.IsKeyDown(rl.KeyRight) {
		g.camera.Pan(panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		g.camera.Pan(-panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		g.camera.Pan(0, panSpeed)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		g.camera.Pan(0, -panSpeed)
	}

	mouse := rl.GetMousePosition()
	if g.camera.InViewport(mouse.X, mouse.Y) {
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			g.camera.ZoomBy(1 + wheel*0.1)
		}
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		g.camera.Reset()
	}
}
