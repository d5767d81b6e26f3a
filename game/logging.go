package game

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/pthm-cable/playground/components"
)

// logWriter is the destination for log output.
var logWriter io.Writer

// SetLogWriter sets the log output destination.
func SetLogWriter(w io.Writer) {
	logWriter = w
}

// Logf writes a formatted log message.
func Logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if logWriter != nil {
		fmt.Fprintln(logWriter, msg)
	} else {
		fmt.Println(msg)
	}
}

// logPerfStats logs the tick phase breakdown.
func (g *Game) logPerfStats() {
	stats := g.perfCollector.Stats()
	Logf("=== Perf @ Tick %d (speed %dx) | FPS: %.0f ===", g.sim.Tick(), g.stepsPerUpdate, stats.FPS)
	Logf("Avg tick: %s (min %s, max %s)",
		stats.AvgTickDuration.Round(time.Microsecond),
		stats.MinTickDuration.Round(time.Microsecond),
		stats.MaxTickDuration.Round(time.Microsecond))

	names := make([]string, 0, len(stats.PhaseAvg))
	for name := range stats.PhaseAvg {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return stats.PhaseAvg[names[i]] > stats.PhaseAvg[names[j]]
	})
	for _, name := range names {
		Logf("  %-18s %10s  %5.1f%%", name, stats.PhaseAvg[name].Round(time.Microsecond), stats.PhasePct[name])
	}
	Logf("")
}

// logWorldState logs body and particle counts.
func (g *Game) logWorldState() {
	snap := g.sim.Snapshot()
	counts := snap.CountByKind()
	alive := snap.Alive()

	Logf("=== World @ Tick %d (seed %d) ===", snap.Tick, g.rngSeed)
	Logf("Bodies: %d (alive %d, dead %d) | Particles: %d",
		len(snap.Bodies), alive, len(snap.Bodies)-alive, len(snap.Particles))
	for k := 0; k < components.NumKinds; k++ {
		Logf("  %-10s %d", components.Kind(k), counts[k])
	}
	if id, ok := g.sim.DragTarget(); ok {
		Logf("Dragging body #%d", id)
	}
	Logf("")
}
