package game

import (
	"log/slog"
	"math"

	"github.com/pthm-cable/playground/sim"
	"github.com/pthm-cable/playground/telemetry"
)

// flushTelemetry checks if the stats window should be flushed and writes it out.
func (g *Game) flushTelemetry() {
	tick := g.sim.Tick()
	if !g.collector.ShouldFlush(tick) {
		return
	}

	snap := g.sim.Snapshot()
	stats := g.collector.Flush(tick, sampleBodies(snap.Bodies), len(snap.Particles))
	perfStats := g.perfCollector.Stats()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}

// sampleBodies converts body views into telemetry samples.
func sampleBodies(bodies []sim.BodyView) []telemetry.BodySample {
	samples := make([]telemetry.BodySample, len(bodies))
	for i, b := range bodies {
		var frac float64
		if b.MaxHealth > 0 {
			frac = float64(b.Health) / float64(b.MaxHealth)
		}
		samples[i] = telemetry.BodySample{
			Kind:           b.Kind,
			Speed:          math.Hypot(float64(b.VX), float64(b.VY)),
			HealthFraction: frac,
			Dead:           b.Dead,
		}
	}
	return samples
}
