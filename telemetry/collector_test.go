package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/playground/components"
)

func TestCollectorShouldFlush(t *testing.T) {
	c := NewCollector(1.0, 1.0/60)

	if c.WindowDurationTicks() != 60 {
		t.Fatalf("WindowDurationTicks = %d, want 60", c.WindowDurationTicks())
	}
	if c.ShouldFlush(59) {
		t.Error("ShouldFlush(59) = true, want false")
	}
	if !c.ShouldFlush(60) {
		t.Error("ShouldFlush(60) = false, want true")
	}

	c.Flush(60, nil, 0)
	if c.ShouldFlush(100) {
		t.Error("ShouldFlush(100) after flush at 60 = true, want false")
	}
	if !c.ShouldFlush(120) {
		t.Error("ShouldFlush(120) = false, want true")
	}
}

func TestCollectorMinimumWindow(t *testing.T) {
	c := NewCollector(0, 1.0/60)
	if c.WindowDurationTicks() != 1 {
		t.Errorf("WindowDurationTicks = %d, want 1", c.WindowDurationTicks())
	}
}

func TestCollectorFlushCountsEvents(t *testing.T) {
	c := NewCollector(5.0, 1.0/60)

	c.RecordSpawn(components.KindBox)
	c.RecordSpawn(components.KindBall)
	c.RecordDamage(25)
	c.RecordDamage(30)
	c.RecordDeath(components.KindBox)
	c.RecordExplosion(2)
	c.RecordClear(4)

	stats := c.Flush(300, nil, 17)

	if stats.Spawns != 2 {
		t.Errorf("Spawns = %d, want 2", stats.Spawns)
	}
	if stats.DamageEvents != 2 || stats.DamageDealt != 55 {
		t.Errorf("damage = %d events / %d dealt, want 2 / 55", stats.DamageEvents, stats.DamageDealt)
	}
	if stats.Deaths != 1 {
		t.Errorf("Deaths = %d, want 1", stats.Deaths)
	}
	if stats.Explosions != 1 || stats.ExplosionHits != 2 {
		t.Errorf("explosions = %d / %d hits, want 1 / 2", stats.Explosions, stats.ExplosionHits)
	}
	if stats.Cleared != 4 {
		t.Errorf("Cleared = %d, want 4", stats.Cleared)
	}
	if stats.Particles != 17 {
		t.Errorf("Particles = %d, want 17", stats.Particles)
	}
	if math.Abs(stats.SimTimeSec-5.0) > 0.001 {
		t.Errorf("SimTimeSec = %v, want 5", stats.SimTimeSec)
	}

	// Counters reset after flush
	next := c.Flush(600, nil, 0)
	if next.Spawns != 0 || next.Deaths != 0 || next.DamageEvents != 0 || next.Explosions != 0 || next.Cleared != 0 {
		t.Errorf("counters not reset: %+v", next)
	}
	if next.WindowStartTick != 300 {
		t.Errorf("WindowStartTick = %d, want 300", next.WindowStartTick)
	}
}

func TestCollectorFlushSummarizesBodies(t *testing.T) {
	c := NewCollector(5.0, 1.0/60)

	bodies := []BodySample{
		{Kind: components.KindBall, Speed: 2, HealthFraction: 1},
		{Kind: components.KindBall, Speed: 4, HealthFraction: 0.5},
		{Kind: components.KindBox, Speed: 0, HealthFraction: 0, Dead: true},
		{Kind: components.KindPlatform, Speed: 0, HealthFraction: 1},
		{Kind: components.KindHuman, Speed: 6, HealthFraction: 0.5},
	}

	stats := c.Flush(300, bodies, 0)

	if stats.Balls != 2 || stats.Boxes != 1 || stats.Platforms != 1 || stats.Humans != 1 {
		t.Errorf("kind counts = %d/%d/%d/%d, want 1/1/2/1 (humans/boxes/balls/platforms)",
			stats.Humans, stats.Boxes, stats.Balls, stats.Platforms)
	}
	if stats.Alive != 4 || stats.Dead != 1 {
		t.Errorf("alive/dead = %d/%d, want 4/1", stats.Alive, stats.Dead)
	}
	// Speeds cover living dynamic bodies only: 2, 4, 6
	if math.Abs(stats.SpeedMean-4) > 0.001 {
		t.Errorf("SpeedMean = %v, want 4", stats.SpeedMean)
	}
	if stats.SpeedP50 != 4 {
		t.Errorf("SpeedP50 = %v, want 4", stats.SpeedP50)
	}
	// Health covers every living body: 1, 0.5, 1, 0.5
	if math.Abs(stats.HealthMean-0.75) > 0.001 {
		t.Errorf("HealthMean = %v, want 0.75", stats.HealthMean)
	}
}
