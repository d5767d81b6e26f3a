package telemetry

import (
	"log/slog"
	"time"
)

// Step phases timed by the simulation.
const (
	PhaseCommands  = "commands"
	PhasePhysics   = "physics"
	PhaseParticles = "particles"
)

// phases lists the step phases in execution order.
var phases = []string{PhaseCommands, PhasePhysics, PhaseParticles}

// tickTiming is one recorded tick.
type tickTiming struct {
	total  time.Duration
	phases map[string]time.Duration
}

// PerfCollector times simulation ticks and their phases over a ring of the
// most recent ticks, plus the interval between rendered frames.
type PerfCollector struct {
	now func() time.Time

	ring   []tickTiming
	next   int // Ring slot the next tick is written to
	filled int // Number of valid ring slots

	open      tickTiming // Tick being timed
	tickBegan time.Time
	phase     string // Running phase, "" between ticks
	phaseAt   time.Time

	prevFrame time.Time
	frameGap  time.Duration
}

// NewPerfCollector creates a collector averaging over window ticks
// (60 when window < 1).
func NewPerfCollector(window int) *PerfCollector {
	if window < 1 {
		window = 60
	}
	return &PerfCollector{
		now:  time.Now,
		ring: make([]tickTiming, window),
	}
}

// SetClock replaces the time source.
func (p *PerfCollector) SetClock(now func() time.Time) {
	p.now = now
}

// StartTick opens a new tick.
func (p *PerfCollector) StartTick() {
	p.tickBegan = p.now()
	p.open = tickTiming{phases: make(map[string]time.Duration, len(phases))}
	p.phase = ""
}

// StartPhase closes the running phase, if any, and starts timing phase.
func (p *PerfCollector) StartPhase(phase string) {
	t := p.now()
	p.closePhase(t)
	p.phase = phase
	p.phaseAt = t
}

func (p *PerfCollector) closePhase(t time.Time) {
	if p.phase != "" {
		p.open.phases[p.phase] += t.Sub(p.phaseAt)
	}
}

// EndTick closes the running phase and stores the tick in the ring.
func (p *PerfCollector) EndTick() {
	t := p.now()
	p.closePhase(t)
	p.phase = ""
	p.open.total = t.Sub(p.tickBegan)

	p.ring[p.next] = p.open
	p.next = (p.next + 1) % len(p.ring)
	p.filled = min(p.filled+1, len(p.ring))
}

// RecordFrame marks a rendered frame; the gap to the previous one gives FPS.
func (p *PerfCollector) RecordFrame() {
	t := p.now()
	if !p.prevFrame.IsZero() {
		p.frameGap = t.Sub(p.prevFrame)
	}
	p.prevFrame = t
}

// PerfStats is the aggregate over the collector's window.
type PerfStats struct {
	AvgTickDuration time.Duration
	MinTickDuration time.Duration
	MaxTickDuration time.Duration

	PhaseAvg map[string]time.Duration // Mean time per phase
	PhasePct map[string]float64       // Share of the mean tick, 0-100

	TicksPerSecond float64

	FrameDuration time.Duration
	FPS           float64
}

// perSecond converts a duration into a rate, 0 for non-positive durations.
func perSecond(d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(time.Second) / float64(d)
}

// Stats aggregates the recorded ticks.
func (p *PerfCollector) Stats() PerfStats {
	stats := PerfStats{
		PhaseAvg:      make(map[string]time.Duration),
		PhasePct:      make(map[string]float64),
		FrameDuration: p.frameGap,
		FPS:           perSecond(p.frameGap),
	}
	if p.filled == 0 {
		return stats
	}

	var sum time.Duration
	phaseSum := make(map[string]time.Duration)
	for i, tick := range p.ring[:p.filled] {
		sum += tick.total
		if i == 0 || tick.total < stats.MinTickDuration {
			stats.MinTickDuration = tick.total
		}
		stats.MaxTickDuration = max(stats.MaxTickDuration, tick.total)
		for name, d := range tick.phases {
			phaseSum[name] += d
		}
	}

	n := time.Duration(p.filled)
	stats.AvgTickDuration = sum / n
	stats.TicksPerSecond = perSecond(stats.AvgTickDuration)
	for name, d := range phaseSum {
		avg := d / n
		stats.PhaseAvg[name] = avg
		if stats.AvgTickDuration > 0 {
			stats.PhasePct[name] = 100 * float64(avg) / float64(stats.AvgTickDuration)
		}
	}
	return stats
}

// LogStats emits one "perf" record.
func (s PerfStats) LogStats() {
	slog.Info("perf", "perf", s)
}

// LogValue implements slog.LogValuer.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_tick_us", s.AvgTickDuration.Microseconds()),
		slog.Int64("min_tick_us", s.MinTickDuration.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTickDuration.Microseconds()),
		slog.Float64("ticks_per_sec", s.TicksPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Float64("fps", s.FPS))
	}
	for _, name := range phases {
		if pct, ok := s.PhasePct[name]; ok {
			attrs = append(attrs, slog.Float64(name+"_pct", pct))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is one perf.csv row.
type PerfStatsCSV struct {
	WindowEnd    int64   `csv:"window_end"`
	AvgTickUS    int64   `csv:"avg_tick_us"`
	MinTickUS    int64   `csv:"min_tick_us"`
	MaxTickUS    int64   `csv:"max_tick_us"`
	TicksPerSec  float64 `csv:"ticks_per_sec"`
	FPS          float64 `csv:"fps"`
	CommandsPct  float64 `csv:"commands_pct"`
	PhysicsPct   float64 `csv:"physics_pct"`
	ParticlesPct float64 `csv:"particles_pct"`
}

// ToCSV flattens the stats for the window ending at windowEnd.
func (s PerfStats) ToCSV(windowEnd int64) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:    windowEnd,
		AvgTickUS:    s.AvgTickDuration.Microseconds(),
		MinTickUS:    s.MinTickDuration.Microseconds(),
		MaxTickUS:    s.MaxTickDuration.Microseconds(),
		TicksPerSec:  s.TicksPerSecond,
		FPS:          s.FPS,
		CommandsPct:  s.PhasePct[PhaseCommands],
		PhysicsPct:   s.PhasePct[PhasePhysics],
		ParticlesPct: s.PhasePct[PhaseParticles],
	}
}
