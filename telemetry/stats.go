// Package telemetry provides windowed playground statistics, tick timing and CSV output.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Body counts at window end
	Humans    int `csv:"humans"`
	Boxes     int `csv:"boxes"`
	Balls     int `csv:"balls"`
	Platforms int `csv:"platforms"`
	Alive     int `csv:"alive"`
	Dead      int `csv:"dead"`
	Particles int `csv:"particles"`

	// Events during window
	Spawns        int `csv:"spawns"`
	Deaths        int `csv:"deaths"`
	DamageEvents  int `csv:"damage_events"`
	DamageDealt   int `csv:"damage_dealt"`
	Explosions    int `csv:"explosions"`
	ExplosionHits int `csv:"explosion_hits"`
	Cleared       int `csv:"cleared"`

	// Motion and health of living dynamic bodies at window end
	SpeedMean  float64 `csv:"speed_mean"`
	SpeedP50   float64 `csv:"speed_p50"`
	SpeedP90   float64 `csv:"speed_p90"`
	HealthMean float64 `csv:"health_mean"`
}

// Distribution summarizes a sample.
type Distribution struct {
	Mean float64
	P10  float64
	P50  float64
	P90  float64
}

// Summarize computes the mean and empirical percentiles of values.
// Returns the zero Distribution for an empty sample.
func Summarize(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return Distribution{
		Mean: stat.Mean(sorted, nil),
		P10:  stat.Quantile(0.10, stat.Empirical, sorted, nil),
		P50:  stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P90:  stat.Quantile(0.90, stat.Empirical, sorted, nil),
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartTick),
		slog.Int64("window_end", s.WindowEndTick),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("humans", s.Humans),
		slog.Int("boxes", s.Boxes),
		slog.Int("balls", s.Balls),
		slog.Int("platforms", s.Platforms),
		slog.Int("alive", s.Alive),
		slog.Int("dead", s.Dead),
		slog.Int("particles", s.Particles),
		slog.Int("spawns", s.Spawns),
		slog.Int("deaths", s.Deaths),
		slog.Int("damage_events", s.DamageEvents),
		slog.Int("damage_dealt", s.DamageDealt),
		slog.Int("explosions", s.Explosions),
		slog.Int("explosion_hits", s.ExplosionHits),
		slog.Int("cleared", s.Cleared),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_p50", s.SpeedP50),
		slog.Float64("speed_p90", s.SpeedP90),
		slog.Float64("health_mean", s.HealthMean),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"alive", s.Alive,
		"dead", s.Dead,
		"particles", s.Particles,
		"spawns", s.Spawns,
		"deaths", s.Deaths,
		"explosions", s.Explosions,
		"speed_p50", s.SpeedP50,
		"health_mean", s.HealthMean,
	)
}
