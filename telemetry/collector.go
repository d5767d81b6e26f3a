package telemetry

import (
	"math"

	"github.com/pthm-cable/playground/components"
)

// BodySample is the per-body data a window flush summarizes.
type BodySample struct {
	Kind           components.Kind
	Speed          float64
	HealthFraction float64
	Dead           bool
}

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int64
	dt                  float32

	// Current window tracking
	windowStartTick int64

	// Event counters for current window
	spawns        int
	deaths        int
	damageEvents  int
	damageDealt   int
	explosions    int
	explosionHits int
	cleared       int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec float64, dt float32) *Collector {
	ticksPerWindow := int64(math.Round(windowDurationSec / float64(dt)))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordSpawn records a body spawn.
func (c *Collector) RecordSpawn(kind components.Kind) {
	c.spawns++
}

// RecordDeath records a body death.
func (c *Collector) RecordDeath(kind components.Kind) {
	c.deaths++
}

// RecordDamage records a damage application.
func (c *Collector) RecordDamage(amount int32) {
	c.damageEvents++
	c.damageDealt += int(amount)
}

// RecordExplosion records an explosion and how many bodies it reached.
func (c *Collector) RecordExplosion(hits int) {
	c.explosions++
	c.explosionHits += hits
}

// RecordClear records a clear-all and how many bodies it removed.
func (c *Collector) RecordClear(removed int) {
	c.cleared += removed
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
// bodies describes every body at window end; particles is the live particle count.
func (c *Collector) Flush(currentTick int64, bodies []BodySample, particles int) WindowStats {
	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * float64(c.dt),
		Particles:       particles,

		Spawns:        c.spawns,
		Deaths:        c.deaths,
		DamageEvents:  c.damageEvents,
		DamageDealt:   c.damageDealt,
		Explosions:    c.explosions,
		ExplosionHits: c.explosionHits,
		Cleared:       c.cleared,
	}

	var speeds, healths []float64
	for _, b := range bodies {
		switch b.Kind {
		case components.KindHuman:
			stats.Humans++
		case components.KindBox:
			stats.Boxes++
		case components.KindBall:
			stats.Balls++
		case components.KindPlatform:
			stats.Platforms++
		}

		if b.Dead {
			stats.Dead++
			continue
		}
		stats.Alive++
		healths = append(healths, b.HealthFraction)
		if !b.Kind.Static() {
			speeds = append(speeds, b.Speed)
		}
	}

	speed := Summarize(speeds)
	stats.SpeedMean = speed.Mean
	stats.SpeedP50 = speed.P50
	stats.SpeedP90 = speed.P90
	stats.HealthMean = Summarize(healths).Mean

	// Reset for next window
	c.windowStartTick = currentTick
	c.spawns = 0
	c.deaths = 0
	c.damageEvents = 0
	c.damageDealt = 0
	c.explosions = 0
	c.explosionHits = 0
	c.cleared = 0

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int64 {
	return c.windowDurationTicks
}
