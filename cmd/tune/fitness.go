package main

import (
	"math"
	"sync"

	"github.com/pthm-cable/playground/config"
	"github.com/pthm-cable/playground/scenario"
	"github.com/pthm-cable/playground/sim"
)

// Targets is the motion the tuned physics should reproduce.
type Targets struct {
	SettleSec float64 // Time for a dropped ball to come to rest
	Bounces   int     // Floor bounces before the ball rests
	Slide     float64 // Horizontal travel of a flicked box
}

// Metrics are the measured counterparts of Targets.
type Metrics struct {
	SettleSec float64
	Bounces   int
	Slide     float64
	Settled   bool // Both bodies came to rest within the tick budget
}

// FitnessEvaluator runs headless scenarios and scores how close their
// motion comes to the targets.
type FitnessEvaluator struct {
	params     *ParamVector
	maxTicks   int64
	targets    Targets
	baseConfig *config.Config

	mu          sync.Mutex
	lastMetrics Metrics
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int64, targets Targets, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		maxTicks:   maxTicks,
		targets:    targets,
		baseConfig: baseCfg,
	}
}

// LastMetrics returns the measurements from the most recent evaluation.
func (fe *FitnessEvaluator) LastMetrics() Metrics {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastMetrics
}

// Evaluate computes fitness for a parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	m := fe.Measure(cfg)

	fe.mu.Lock()
	fe.lastMetrics = m
	fe.mu.Unlock()

	return fe.computeFitness(m)
}

// Measure runs the drop and throw scenarios concurrently under cfg.
func (fe *FitnessEvaluator) Measure(cfg *config.Config) Metrics {
	var (
		wg                        sync.WaitGroup
		settleTicks               int64
		bounces                   int
		slide                     float64
		dropSettled, throwSettled bool
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		settleTicks, bounces, dropSettled = measureDrop(cfg, fe.maxTicks)
	}()
	go func() {
		defer wg.Done()
		slide, throwSettled = measureThrow(cfg, fe.maxTicks)
	}()
	wg.Wait()

	return Metrics{
		SettleSec: float64(settleTicks) / float64(cfg.Physics.TickRate),
		Bounces:   bounces,
		Slide:     slide,
		Settled:   dropSettled && throwSettled,
	}
}

// computeFitness sums squared relative errors against the targets.
// Runs that never settle are penalized.
func (fe *FitnessEvaluator) computeFitness(m Metrics) float64 {
	rel := func(got, want float64) float64 {
		d := (got - want) / math.Max(math.Abs(want), 1)
		return d * d
	}

	fitness := rel(m.SettleSec, fe.targets.SettleSec) +
		rel(float64(m.Bounces), float64(fe.targets.Bounces)) +
		rel(m.Slide, fe.targets.Slide)
	if !m.Settled {
		fitness += 10
	}
	return fitness
}

// copyConfig creates a deep copy of the base config.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}

// atRest reports whether a body is motionless on the floor.
func atRest(b sim.BodyView, floor float32) bool {
	return b.VX == 0 && b.VY == 0 && b.Y+b.H >= floor
}

// measureDrop drops a ball and counts floor bounces until it rests.
func measureDrop(cfg *config.Config, maxTicks int64) (settleTicks int64, bounces int, settled bool) {
	s := sim.New(cfg, sim.Options{})
	p := scenario.NewPlayer(scenario.Drop(100, 100))
	floor := cfg.Derived.WorldH32

	falling := false
	for s.Tick() < maxTicks {
		p.Advance(s, s.Tick())
		s.Step()

		b, ok := firstBody(s)
		if !ok {
			continue
		}
		if b.VY > 0 {
			falling = true
		} else if falling && b.VY < 0 {
			falling = false
			bounces++
		}
		if atRest(b, floor) {
			return s.Tick(), bounces, true
		}
	}
	return s.Tick(), bounces, false
}

// measureThrow flicks a box sideways near the floor and returns how far it
// travels before stopping.
func measureThrow(cfg *config.Config, maxTicks int64) (slide float64, settled bool) {
	const startX = 100
	s := sim.New(cfg, sim.Options{})
	p := scenario.NewPlayer(scenario.Throw(startX, 500, 40, 0))
	floor := cfg.Derived.WorldH32

	for s.Tick() < maxTicks {
		p.Advance(s, s.Tick())
		s.Step()

		b, ok := firstBody(s)
		if !ok || !p.Done() {
			continue
		}
		if atRest(b, floor) {
			return float64(b.X - startX), true
		}
	}
	if b, ok := firstBody(s); ok {
		return float64(b.X - startX), false
	}
	return 0, false
}

func firstBody(s *sim.Simulation) (sim.BodyView, bool) {
	snap := s.Snapshot()
	if len(snap.Bodies) == 0 {
		return sim.BodyView{}, false
	}
	return snap.Bodies[0], true
}
