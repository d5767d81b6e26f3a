// Physics preview tool - plots drop and throw trajectories while physics
// constants are adjusted with sliders.
//
// Usage: go run ./cmd/physicspreview [-config path] [-out path]
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	gui "github.com/gen2brain/raylib-go/raygui"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/playground/config"
)

const (
	windowWidth  = 1100
	windowHeight = 720
	plotX        = 10
	plotY        = 10
	plotW        = 640
	plotH        = 480
	panelX       = plotX + plotW + 20
	panelWidth   = windowWidth - panelX - 10
	traceTicks   = 600
)

// sliderSpec binds a slider to a physics parameter.
type sliderSpec struct {
	label    string
	format   string
	min, max float32
	value    func(p *config.PhysicsConfig) *float64
}

var sliders = []sliderSpec{
	{"Gravity (vy added per tick)", "%.2f", 0.05, 2.0, func(p *config.PhysicsConfig) *float64 { return &p.Gravity }},
	{"Friction (vx kept per tick)", "%.3f", 0.85, 1.0, func(p *config.PhysicsConfig) *float64 { return &p.Friction }},
	{"Floor restitution", "%.2f", 0, 1, func(p *config.PhysicsConfig) *float64 { return &p.FloorRestitution }},
	{"Wall restitution", "%.2f", 0, 1, func(p *config.PhysicsConfig) *float64 { return &p.WallRestitution }},
	{"Ground friction", "%.2f", 0.3, 1.0, func(p *config.PhysicsConfig) *float64 { return &p.GroundFriction }},
	{"Rest speed", "%.2f", 0, 3, func(p *config.PhysicsConfig) *float64 { return &p.RestSpeed }},
}

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	outPath := flag.String("out", "physics_preview.yaml", "Where Save writes the adjusted config")
	flag.Parse()

	base, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := *base

	rl.InitWindow(windowWidth, windowHeight, "Physics Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	var traces []Trace
	needsTrace := true
	status := ""

	for !rl.WindowShouldClose() {
		if needsTrace {
			traces = TraceAll(&cfg, traceTicks)
			needsTrace = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		drawPlot(&cfg, traces)
		drawSummary(traces)

		y := float32(plotY)
		rl.DrawText("Physics Parameters", panelX, int32(y), 20, rl.DarkGray)
		y += 35

		for _, s := range sliders {
			v := s.value(&cfg.Physics)
			rl.DrawText(s.label, panelX, int32(y), 14, rl.Gray)
			y += 18
			nv := gui.SliderBar(
				rl.Rectangle{X: panelX, Y: y, Width: float32(panelWidth - 80), Height: 20},
				fmt.Sprintf(s.format, s.min), fmt.Sprintf(s.format, s.max),
				float32(*v), s.min, s.max,
			)
			rl.DrawText(fmt.Sprintf(s.format, *v), int32(panelX+panelWidth-70), int32(y+2), 16, rl.DarkGray)
			if float64(nv) != *v {
				*v = float64(nv)
				needsTrace = true
			}
			y += 35
		}

		y += 10
		if gui.Button(rl.Rectangle{X: panelX, Y: y, Width: 120, Height: 30}, "Reset All") {
			cfg = *base
			needsTrace = true
			status = ""
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: y, Width: 120, Height: 30}, "Save Config") {
			if err := cfg.WriteYAML(*outPath); err != nil {
				status = fmt.Sprintf("save failed: %v", err)
			} else {
				status = "saved " + *outPath
			}
		}
		y += 45

		if status != "" {
			rl.DrawText(status, panelX, int32(y), 14, rl.DarkGray)
		}
		y += 25

		rl.DrawText("YAML Config:", panelX, int32(y), 16, rl.DarkGray)
		y += 25
		snippet := physicsYAML(&cfg.Physics)
		for _, line := range splitLines(snippet) {
			rl.DrawText(line, panelX, int32(y), 14, rl.Gray)
			y += 16
		}

		rl.DrawText("Press C to copy YAML to clipboard", panelX, windowHeight-30, 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(snippet)
		}

		rl.EndDrawing()
	}
}

// physicsYAML renders the physics section as it would appear in config.yaml.
func physicsYAML(p *config.PhysicsConfig) string {
	data, err := yaml.Marshal(map[string]*config.PhysicsConfig{"physics": p})
	if err != nil {
		return fmt.Sprintf("# %v", err)
	}
	return string(data)
}

func splitLines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// drawPlot draws the world outline and every trace's path scaled into the plot.
func drawPlot(cfg *config.Config, traces []Trace) {
	rl.DrawRectangle(plotX, plotY, plotW, plotH, rl.Color{R: 240, G: 248, B: 255, A: 255})
	rl.DrawRectangleLines(plotX, plotY, plotW, plotH, rl.DarkGray)

	sx := float32(plotW) / cfg.Derived.WorldW32
	sy := float32(plotH) / cfg.Derived.WorldH32

	for _, tr := range traces {
		col := rl.NewColor(tr.Color.R, tr.Color.G, tr.Color.B, tr.Color.A)
		for i := 1; i < len(tr.Points); i++ {
			a, b := tr.Points[i-1], tr.Points[i]
			rl.DrawLineV(
				rl.Vector2{X: plotX + a.X*sx, Y: plotY + a.Y*sy},
				rl.Vector2{X: plotX + b.X*sx, Y: plotY + b.Y*sy},
				col,
			)
		}
		if n := len(tr.Points); n > 0 {
			last := tr.Points[n-1]
			rl.DrawCircleV(rl.Vector2{X: plotX + last.X*sx, Y: plotY + last.Y*sy}, 4, col)
		}
	}
}

// drawSummary prints per-trace motion figures under the plot.
func drawSummary(traces []Trace) {
	y := int32(plotY + plotH + 15)
	for _, tr := range traces {
		rest := "never"
		if tr.RestTick >= 0 {
			rest = fmt.Sprintf("%.2fs", float64(tr.RestTick)/60)
		}
		rl.DrawText(fmt.Sprintf("%-6s bounces: %d  rests: %s  travel: %.1f", tr.Name, tr.Bounces, rest, tr.Travel),
			plotX+5, y, 16, rl.DarkGray)
		y += 22
	}
}
