package main

import (
	"strings"
	"testing"

	"github.com/pthm-cable/playground/config"
)

func TestTraceAllDefaults(t *testing.T) {
	cfg := config.Defaults()
	traces := TraceAll(cfg, 600)

	if len(traces) != 2 {
		t.Fatalf("traces = %d, want 2", len(traces))
	}
	drop := traces[0]
	if len(drop.Points) != 600 {
		t.Errorf("drop points = %d, want 600", len(drop.Points))
	}
	if drop.Bounces < 1 || drop.RestTick < 0 {
		t.Errorf("drop bounces = %d rest = %d", drop.Bounces, drop.RestTick)
	}
	if drop.Travel != 0 {
		t.Errorf("drop travel = %v, want 0", drop.Travel)
	}
	if traces[1].Travel <= 0 {
		t.Errorf("throw travel = %v, want positive", traces[1].Travel)
	}
}

func TestTraceNoRestitutionNeverBounces(t *testing.T) {
	cfg := config.Defaults()
	cfg.Physics.FloorRestitution = 0

	drop := TraceAll(cfg, 300)[0]
	if drop.Bounces != 0 {
		t.Errorf("bounces = %d, want 0", drop.Bounces)
	}
}

func TestPhysicsYAML(t *testing.T) {
	cfg := config.Defaults()
	out := physicsYAML(&cfg.Physics)
	if !strings.HasPrefix(out, "physics:\n") || !strings.Contains(out, "gravity: 0.5") {
		t.Errorf("unexpected yaml:\n%s", out)
	}
	if got := len(splitLines(out)); got != 9 {
		t.Errorf("lines = %d, want 9", got)
	}
}
