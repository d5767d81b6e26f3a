// Package game hosts the playground: it owns the simulation, maps input to
// commands and drives rendering and telemetry for the graphical and headless modes.
package game

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/playground/camera"
	"github.com/pthm-cable/playground/config"
	"github.com/pthm-cable/playground/prefs"
	"github.com/pthm-cable/playground/renderer"
	"github.com/pthm-cable/playground/scenario"
	"github.com/pthm-cable/playground/sim"
	"github.com/pthm-cable/playground/telemetry"
	"github.com/pthm-cable/playground/tools"
	"github.com/pthm-cable/playground/ui"
)

// Layout constants for the graphical mode.
const (
	panelMargin  = 10 // Gap around the toolbar
	headerHeight = 40 // Band above the play field for the HUD
	maxSpeed     = 10 // Upper bound for steps per update
	gridSpacing  = 50 // World units between grid lines
)

// Options configures game initialization.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	Headless       bool
	StepsPerUpdate int
	Tool           tools.Tool
	Scenario       *scenario.Scenario // Scripted commands, nil = none
	Prefs          *prefs.Store       // Saved overlay state, nil = none
	StatsCallback  func(telemetry.WindowStats)
}

// Game holds the playground state.
type Game struct {
	cfg *config.Config
	sim *sim.Simulation

	clock   *sim.Clock
	rngSeed int64
	script  *scenario.Player

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool
	statsCallback func(telemetry.WindowStats)
	prefs         *prefs.Store

	// Input state
	mapper         *tools.Mapper
	paused         bool
	stepRequested  bool
	stepsPerUpdate int
	pointerInField bool
	pointerX       float32 // Last pointer position in world coordinates
	pointerY       float32

	// Presentation, nil when headless
	headless           bool
	camera             *camera.Camera
	backgroundRenderer *renderer.BackgroundRenderer
	bodyRenderer       *renderer.BodyRenderer
	particleRenderer   *renderer.ParticleRenderer
	overlays           *ui.OverlayRegistry
	toolbar            *ui.Toolbar
	controls           *ui.ControlsPanel
	hud                *ui.HUD
	inspector          *ui.Inspector
	perfPanel          *ui.PerfPanel

	screenWidth, screenHeight float32
}

// NewGameWithOptions creates a game from the global configuration.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}
	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}

	g := &Game{
		cfg:            cfg,
		clock:          sim.NewClock(cfg.Derived.TickPeriod),
		rngSeed:        opts.Seed,
		collector:      telemetry.NewCollector(statsWindow, cfg.Derived.DT),
		perfCollector:  telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		logStats:       opts.LogStats,
		statsCallback:  opts.StatsCallback,
		prefs:          opts.Prefs,
		mapper:         tools.NewMapper(opts.Tool),
		stepsPerUpdate: steps,
		headless:       opts.Headless,
		screenWidth:    float32(cfg.Screen.Width),
		screenHeight:   float32(cfg.Screen.Height),
	}

	g.sim = sim.New(cfg, sim.Options{
		Seed:     opts.Seed,
		Recorder: g.collector,
		Perf:     g.perfCollector,
	})

	if opts.Scenario != nil {
		g.script = scenario.NewPlayer(*opts.Scenario)
		slog.Info("playing scenario", "name", opts.Scenario.Name, "steps", len(opts.Scenario.Steps))
	}

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			slog.Error("failed to create output manager", "error", err)
		} else {
			g.outputManager = om
			if err := om.WriteConfig(cfg); err != nil {
				slog.Error("failed to write config", "error", err)
			}
		}
	}

	if !opts.Headless {
		g.initPresentation()
	}

	return g
}

// initPresentation builds the renderers and panels for graphical mode.
func (g *Game) initPresentation() {
	fx, fy, fw, fh := g.fieldRect()
	g.camera = camera.New(fx, fy, fw, fh, g.cfg.Derived.WorldW32, g.cfg.Derived.WorldH32)
	g.backgroundRenderer = renderer.NewBackgroundRenderer(gridSpacing)
	g.bodyRenderer = renderer.NewBodyRenderer()
	g.particleRenderer = renderer.NewParticleRenderer()

	g.overlays = ui.NewOverlayRegistry()
	if g.prefs != nil {
		for id, on := range g.prefs.Prefs().Overlays {
			g.overlays.SetEnabled(ui.OverlayID(id), on)
		}
	}
	g.hud = ui.NewHUD()
	g.inspector = ui.NewInspector(0, 0, 200)
	g.initPanels()
}

// initPanels builds the screen-anchored panels for the current window size.
func (g *Game) initPanels() {
	panelW := int32(g.cfg.Screen.PanelWidth) - 2*panelMargin
	fx, fy, fw, _ := g.fieldRect()

	g.toolbar = ui.NewToolbar(panelMargin, panelMargin, panelW, int32(g.screenHeight)-2*panelMargin)
	g.controls = ui.NewControlsPanel(panelMargin, 0, panelW)
	g.perfPanel = ui.NewPerfPanel(int32(fx+fw)-210, int32(fy)+10, 200)
}

// fieldRect returns the play field's screen rectangle: right of the toolbar,
// below the header, at most the world size.
func (g *Game) fieldRect() (x, y, w, h float32) {
	x = float32(g.cfg.Screen.PanelWidth) + panelMargin*2
	y = headerHeight
	w = g.screenWidth - x - panelMargin
	h = g.screenHeight - y
	if w > g.cfg.Derived.WorldW32 {
		w = g.cfg.Derived.WorldW32
	}
	if h > g.cfg.Derived.WorldH32 {
		h = g.cfg.Derived.WorldH32
	}
	return x, y, w, h
}

// Update handles input and advances the simulation when a tick is due.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		if g.stepRequested {
			g.stepRequested = false
			g.step()
		}
		return
	}

	if !g.clock.Due(time.Now()) {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

// UpdateHeadless runs stepsPerUpdate ticks without input, pacing or rendering.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

// step advances the simulation one tick and flushes telemetry windows.
func (g *Game) step() {
	if g.script != nil {
		g.script.Advance(g.sim, g.sim.Tick())
	}
	g.sim.Step()
	g.flushTelemetry()
}

// Apply forwards a command to the simulation immediately.
func (g *Game) Apply(cmd sim.Command) {
	g.sim.Apply(cmd)
}

// SetTool selects the active tool, releasing any drag in progress.
func (g *Game) SetTool(tool tools.Tool) {
	for _, cmd := range g.mapper.SetTool(tool) {
		g.sim.Apply(cmd)
	}
}

// Tool returns the selected tool.
func (g *Game) Tool() tools.Tool {
	return g.mapper.Tool()
}

// Simulation returns the underlying simulation.
func (g *Game) Simulation() *sim.Simulation {
	return g.sim
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int64 {
	return g.sim.Tick()
}

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// Unload flushes output and releases resources.
func (g *Game) Unload() {
	if g.logStats {
		g.logWorldState()
	}
	g.savePrefs()
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}

// savePrefs records the session's tool, speed and overlays.
func (g *Game) savePrefs() {
	if g.prefs == nil {
		return
	}
	p := g.prefs.Prefs()
	p.Tool = g.mapper.Tool().String()
	p.StepsPerUpdate = g.stepsPerUpdate
	if g.overlays != nil {
		for _, desc := range g.overlays.All() {
			p.Overlays[string(desc.ID)] = g.overlays.IsEnabled(desc.ID)
		}
	}
	if err := g.prefs.Save(); err != nil {
		slog.Error("failed to save preferences", "error", err)
	}
}
