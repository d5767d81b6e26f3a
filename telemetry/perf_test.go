package telemetry

import (
	"math"
	"testing"
	"time"
)

// fakeClock advances only when told to.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Unix(1_000_000, 0)}
}

func (c *fakeClock) Now() time.Time           { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestCollector(window int) (*PerfCollector, *fakeClock) {
	clock := newFakeClock()
	pc := NewPerfCollector(window)
	pc.SetClock(clock.Now)
	return pc, clock
}

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc, clock := newTestCollector(10)

	for range 5 {
		pc.StartTick()
		pc.StartPhase(PhasePhysics)
		clock.Advance(100 * time.Microsecond)
		pc.StartPhase(PhaseParticles)
		clock.Advance(200 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.AvgTickDuration != 300*time.Microsecond {
		t.Errorf("AvgTickDuration = %v, want 300µs", stats.AvgTickDuration)
	}
	if got := stats.PhaseAvg[PhasePhysics]; got != 100*time.Microsecond {
		t.Errorf("physics avg = %v, want 100µs", got)
	}
	if got := stats.PhaseAvg[PhaseParticles]; got != 200*time.Microsecond {
		t.Errorf("particles avg = %v, want 200µs", got)
	}
	if math.Abs(stats.TicksPerSecond-1e6/300) > 1e-6 {
		t.Errorf("TicksPerSecond = %v, want %v", stats.TicksPerSecond, 1e6/300)
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc, clock := newTestCollector(5)

	// Ten ticks of 1..10ms; only the last five (6..10ms) stay in the window.
	for i := 1; i <= 10; i++ {
		pc.StartTick()
		pc.StartPhase(PhasePhysics)
		clock.Advance(time.Duration(i) * time.Millisecond)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.MinTickDuration != 6*time.Millisecond {
		t.Errorf("MinTickDuration = %v, want 6ms", stats.MinTickDuration)
	}
	if stats.MaxTickDuration != 10*time.Millisecond {
		t.Errorf("MaxTickDuration = %v, want 10ms", stats.MaxTickDuration)
	}
	if stats.AvgTickDuration != 8*time.Millisecond {
		t.Errorf("AvgTickDuration = %v, want 8ms", stats.AvgTickDuration)
	}
}

func TestPerfCollector_PhasePercentages(t *testing.T) {
	pc, clock := newTestCollector(10)

	for range 3 {
		pc.StartTick()
		pc.StartPhase("fast")
		clock.Advance(1 * time.Millisecond)
		pc.StartPhase("slow")
		clock.Advance(9 * time.Millisecond)
		pc.EndTick()
	}

	stats := pc.Stats()
	tests := []struct {
		phase string
		want  float64
	}{
		{"fast", 10},
		{"slow", 90},
	}
	for _, tt := range tests {
		t.Run(tt.phase, func(t *testing.T) {
			if got := stats.PhasePct[tt.phase]; math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("PhasePct[%s] = %v, want %v", tt.phase, got, tt.want)
			}
		})
	}
}

func TestPerfCollector_UntimedGapOutsidePhases(t *testing.T) {
	pc, clock := newTestCollector(4)

	pc.StartTick()
	clock.Advance(2 * time.Millisecond) // before any phase
	pc.StartPhase(PhaseCommands)
	clock.Advance(2 * time.Millisecond)
	pc.EndTick()

	stats := pc.Stats()
	if stats.AvgTickDuration != 4*time.Millisecond {
		t.Errorf("AvgTickDuration = %v, want 4ms", stats.AvgTickDuration)
	}
	if got := stats.PhasePct[PhaseCommands]; math.Abs(got-50) > 1e-9 {
		t.Errorf("commands pct = %v, want 50", got)
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	pc := NewPerfCollector(0)
	stats := pc.Stats()

	if stats.AvgTickDuration != 0 {
		t.Errorf("expected zero avg duration, got %v", stats.AvgTickDuration)
	}
	if stats.PhaseAvg == nil {
		t.Error("expected non-nil PhaseAvg map")
	}
	if stats.PhasePct == nil {
		t.Error("expected non-nil PhasePct map")
	}
	if stats.FPS != 0 {
		t.Errorf("expected zero FPS, got %v", stats.FPS)
	}
}

func TestPerfCollector_FrameTiming(t *testing.T) {
	pc, clock := newTestCollector(10)

	pc.RecordFrame()
	if fps := pc.Stats().FPS; fps != 0 {
		t.Errorf("FPS after one frame = %v, want 0", fps)
	}

	clock.Advance(20 * time.Millisecond)
	pc.RecordFrame()

	stats := pc.Stats()
	if stats.FrameDuration != 20*time.Millisecond {
		t.Errorf("FrameDuration = %v, want 20ms", stats.FrameDuration)
	}
	if math.Abs(stats.FPS-50) > 1e-9 {
		t.Errorf("FPS = %v, want 50", stats.FPS)
	}
}

func TestPerfStats_ToCSV(t *testing.T) {
	stats := PerfStats{
		AvgTickDuration: 1500 * time.Microsecond,
		MinTickDuration: 1000 * time.Microsecond,
		MaxTickDuration: 2000 * time.Microsecond,
		TicksPerSecond:  666.6,
		FPS:             60,
		PhasePct: map[string]float64{
			PhaseCommands:  5,
			PhasePhysics:   70,
			PhaseParticles: 25,
		},
	}

	row := stats.ToCSV(600)
	if row.WindowEnd != 600 {
		t.Errorf("WindowEnd = %d, want 600", row.WindowEnd)
	}
	if row.AvgTickUS != 1500 || row.MinTickUS != 1000 || row.MaxTickUS != 2000 {
		t.Errorf("tick µs = %d/%d/%d, want 1500/1000/2000", row.AvgTickUS, row.MinTickUS, row.MaxTickUS)
	}
	if row.CommandsPct != 5 || row.PhysicsPct != 70 || row.ParticlesPct != 25 {
		t.Errorf("phase pct = %v/%v/%v, want 5/70/25", row.CommandsPct, row.PhysicsPct, row.ParticlesPct)
	}
	if row.FPS != 60 {
		t.Errorf("FPS = %v, want 60", row.FPS)
	}
}
