package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/playground/config"
)

func TestParamVectorRoundTrip(t *testing.T) {
	pv := NewParamVector()
	raw := pv.DefaultVector()
	back := pv.Denormalize(pv.Normalize(raw))
	for i := range raw {
		if math.Abs(back[i]-raw[i]) > 1e-9 {
			t.Errorf("%s: %v -> %v", pv.Specs[i].Name, raw[i], back[i])
		}
	}
}

func TestDefaultsMatchConfig(t *testing.T) {
	pv := NewParamVector()
	got := pv.ExtractFromConfig(config.Defaults())
	want := pv.DefaultVector()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s: config has %v, spec default %v", pv.Specs[i].Path, got[i], want[i])
		}
	}
}

func TestApplyToConfigClamps(t *testing.T) {
	pv := NewParamVector()
	cfg := config.Defaults()
	pv.ApplyToConfig(cfg, []float64{5, 0.5, 0.3, 0.4, 0.9})

	if cfg.Physics.Gravity != 1.5 {
		t.Errorf("gravity = %v, want clamped 1.5", cfg.Physics.Gravity)
	}
	if cfg.Physics.Friction != 0.9 {
		t.Errorf("friction = %v, want clamped 0.9", cfg.Physics.Friction)
	}
	if cfg.Physics.FloorRestitution != 0.3 || cfg.Physics.GroundFriction != 0.9 {
		t.Errorf("physics = %+v", cfg.Physics)
	}
}

func TestMeasureDefaults(t *testing.T) {
	cfg := config.Defaults()
	fe := NewFitnessEvaluator(NewParamVector(), 1800, Targets{}, cfg)

	m := fe.Measure(cfg)
	if !m.Settled {
		t.Fatalf("default physics did not settle: %+v", m)
	}
	if m.Bounces < 1 {
		t.Errorf("bounces = %d, want at least 1", m.Bounces)
	}
	if m.Slide <= 0 {
		t.Errorf("slide = %v, want positive", m.Slide)
	}
}

func TestFitnessPrefersCloserMetrics(t *testing.T) {
	fe := &FitnessEvaluator{targets: Targets{SettleSec: 2, Bounces: 3, Slide: 100}}

	exact := fe.computeFitness(Metrics{SettleSec: 2, Bounces: 3, Slide: 100, Settled: true})
	near := fe.computeFitness(Metrics{SettleSec: 2.2, Bounces: 3, Slide: 110, Settled: true})
	unsettled := fe.computeFitness(Metrics{SettleSec: 2, Bounces: 3, Slide: 100})

	if exact != 0 {
		t.Errorf("exact fitness = %v, want 0", exact)
	}
	if near <= exact || unsettled <= near {
		t.Errorf("fitness ordering wrong: exact %v near %v unsettled %v", exact, near, unsettled)
	}
}
