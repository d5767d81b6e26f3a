package scenario

import (
	"testing"

	"github.com/pthm-cable/playground/components"
	"github.com/pthm-cable/playground/config"
	"github.com/pthm-cable/playground/sim"
)

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		sc, err := Lookup(name)
		if err != nil {
			t.Errorf("Lookup(%q): %v", name, err)
			continue
		}
		if sc.Name != name {
			t.Errorf("Lookup(%q).Name = %q", name, sc.Name)
		}
		if len(sc.Steps) == 0 {
			t.Errorf("scenario %q has no steps", name)
		}
	}
	if _, err := Lookup("nope"); err == nil {
		t.Error("expected error for unknown scenario")
	}
}

func TestPlayerOrdersByTick(t *testing.T) {
	sc := Scenario{Steps: []Step{
		{Tick: 5, Cmd: sim.ClearAll{}},
		{Tick: 0, Cmd: spawnAt(components.KindBox, 0, 0)},
		{Tick: 0, Cmd: spawnAt(components.KindBall, 100, 0)},
	}}
	s := sim.New(config.Defaults(), sim.Options{})
	p := NewPlayer(sc)

	if n := p.Advance(s, 0); n != 2 {
		t.Fatalf("Advance(0) = %d, want 2", n)
	}
	s.Step()

	snap := s.Snapshot()
	if len(snap.Bodies) != 2 || snap.Bodies[0].Kind != components.KindBox {
		t.Fatalf("bodies = %+v", snap.Bodies)
	}
	if n := p.Advance(s, 4); n != 0 {
		t.Errorf("Advance(4) = %d, want 0", n)
	}
	if p.Done() {
		t.Error("player done too early")
	}
	if n := p.Advance(s, 5); n != 1 {
		t.Errorf("Advance(5) = %d, want 1", n)
	}
	if !p.Done() {
		t.Error("player should be done")
	}
}

func TestDropSettles(t *testing.T) {
	s := sim.New(config.Defaults(), sim.Options{})
	Run(s, Drop(100, 100), 600)

	snap := s.Snapshot()
	if len(snap.Bodies) != 1 {
		t.Fatalf("bodies = %d, want 1", len(snap.Bodies))
	}
	b := snap.Bodies[0]
	if b.X != 100 || b.Y != 570 || b.VY != 0 {
		t.Errorf("ball = (%v, %v) vy %v, want (100, 570) at rest", b.X, b.Y, b.VY)
	}
}

func TestThrowMovesRight(t *testing.T) {
	s := sim.New(config.Defaults(), sim.Options{})
	Run(s, Throw(100, 100, 20, 0), 3)

	snap := s.Snapshot()
	if len(snap.Bodies) != 1 {
		t.Fatalf("bodies = %d, want 1", len(snap.Bodies))
	}
	if b := snap.Bodies[0]; b.X <= 120 || b.VX <= 0 {
		t.Errorf("box = x %v vx %v, want thrown right", b.X, b.VX)
	}
}

func TestDemolitionDamagesCrowd(t *testing.T) {
	s := sim.New(config.Defaults(), sim.Options{Seed: 3})
	Run(s, Demolition(), 400)

	snap := s.Snapshot()
	if len(snap.Bodies) != 9 {
		t.Fatalf("bodies = %d, want 9", len(snap.Bodies))
	}
	damaged := 0
	for _, b := range snap.Bodies {
		if b.Health < b.MaxHealth {
			damaged++
		}
	}
	if damaged == 0 {
		t.Error("expected explosions to damage at least one body")
	}
}
