package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/playground/config"
	"github.com/pthm-cable/playground/game"
	"github.com/pthm-cable/playground/prefs"
	"github.com/pthm-cable/playground/scenario"
	"github.com/pthm-cable/playground/tools"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Simulation ticks per update call (higher = faster headless runs)")
	toolName := flag.String("tool", "", "Initially selected tool (empty = last session's, or spawn_box)")
	noPrefs := flag.Bool("no-prefs", false, "Do not load or save session preferences")
	scenarioName := flag.String("scenario", "", "Scripted scenario to play (drop, stack, demolition, throw)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		slog.Error("invalid log level", "level", *logLevel, "error", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Session preferences only apply to interactive runs
	var store *prefs.Store
	if !*headless && !*noPrefs {
		s, err := prefs.Open(prefs.AppName)
		if err != nil {
			slog.Warn("preferences unavailable", "error", err)
		} else {
			if err := s.Load(); err != nil {
				slog.Warn("failed to load preferences", "error", err)
			}
			store = s
		}
	}

	name := *toolName
	if name == "" {
		name = prefs.Defaults().Tool
		if store != nil {
			name = store.Prefs().Tool
		}
	}
	tool, err := tools.Parse(name)
	if err != nil {
		if *toolName != "" {
			slog.Error("invalid tool", "error", err)
			os.Exit(1)
		}
		slog.Warn("ignoring saved tool", "error", err)
		tool = tools.SpawnBox
	}

	steps := *stepsPerUpdate
	if store != nil && !flagSet("steps-per-update") && store.Prefs().StepsPerUpdate > 0 {
		steps = store.Prefs().StepsPerUpdate
	}

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Seed:           rngSeed,
		LogStats:       *logStats,
		StatsWindowSec: *statsWindow,
		OutputDir:      *outputDir,
		Headless:       *headless,
		StepsPerUpdate: steps,
		Tool:           tool,
		Prefs:          store,
	}

	if *scenarioName != "" {
		sc, err := scenario.Lookup(*scenarioName)
		if err != nil {
			slog.Error("invalid scenario", "error", err)
			os.Exit(1)
		}
		opts.Scenario = &sc
	}

	if *headless {
		// Headless mode - pure CPU simulation, no raylib needed
		g := game.NewGameWithOptions(opts)
		defer g.Unload()

		slog.Info("starting headless simulation",
			"seed", rngSeed,
			"stats_window", *statsWindow,
			"max_ticks", *maxTicks,
			"steps_per_update", steps,
		)

		for {
			g.UpdateHeadless()

			if *maxTicks > 0 && int(g.Tick()) >= *maxTicks {
				slog.Info("max ticks reached", "tick", g.Tick())
				return
			}
		}
	}

	// Graphical mode
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Physics Playground")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g := game.NewGameWithOptions(opts)
	defer g.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if *maxTicks > 0 && int(g.Tick()) >= *maxTicks {
			break
		}
	}
}

// flagSet reports whether the named flag was given on the command line.
func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
