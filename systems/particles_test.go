package systems

import (
	"image/color"
	"math"
	"math/rand"
	"testing"
)

var red = color.RGBA{R: 255, A: 255}

func testParticleParams() ParticleParams {
	return ParticleParams{Life: 60, Jitter: 10, Speed: 5, Gravity: 0.2}
}

func TestParticleSpawnBounds(t *testing.T) {
	ps := NewParticleSystem(testParticleParams(), rand.New(rand.NewSource(1)))

	if n := ps.Spawn(100, 200, red, 50); n != 50 {
		t.Fatalf("Spawn returned %d, want 50", n)
	}
	if ps.Count() != 50 {
		t.Fatalf("Count = %d, want 50", ps.Count())
	}

	seen := make(map[uint64]bool)
	for _, p := range ps.Particles {
		if math.Abs(float64(p.X-100)) > 10 || math.Abs(float64(p.Y-200)) > 10 {
			t.Errorf("particle spawned at (%v, %v), outside jitter", p.X, p.Y)
		}
		if math.Abs(float64(p.VelX)) > 5 || math.Abs(float64(p.VelY)) > 5 {
			t.Errorf("particle velocity (%v, %v) outside [-5, 5]", p.VelX, p.VelY)
		}
		if p.Life != 60 || p.MaxLife != 60 {
			t.Errorf("life = %d/%d, want 60/60", p.Life, p.MaxLife)
		}
		if p.Color != red {
			t.Errorf("color = %v, want %v", p.Color, red)
		}
		if seen[p.ID] {
			t.Errorf("duplicate particle id %d", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestParticleUpdateMotion(t *testing.T) {
	ps := NewParticleSystem(testParticleParams(), rand.New(rand.NewSource(1)))
	ps.Particles = append(ps.Particles, Particle{X: 0, Y: 0, VelX: 2, VelY: -1, Life: 10, MaxLife: 10})

	ps.Update()

	p := ps.Particles[0]
	if p.X != 2 || p.Y != -1 {
		t.Errorf("position = (%v, %v), want (2, -1)", p.X, p.Y)
	}
	if math.Abs(float64(p.VelY-(-0.8))) > 1e-6 {
		t.Errorf("VelY = %v, want -0.8", p.VelY)
	}
	if p.VelX != 2 {
		t.Errorf("VelX = %v, want 2 (no horizontal drag)", p.VelX)
	}
	if p.Life != 9 {
		t.Errorf("Life = %d, want 9", p.Life)
	}
}

func TestParticleExpiry(t *testing.T) {
	ps := NewParticleSystem(testParticleParams(), rand.New(rand.NewSource(7)))
	ps.Spawn(0, 0, red, 1)

	for i := 1; i < 60; i++ {
		ps.Update()
		if ps.Count() != 1 {
			t.Fatalf("particle gone after %d updates, want present until update 60", i)
		}
	}

	ps.Update()
	if ps.Count() != 0 {
		t.Errorf("particle still present after 60 updates (life %d)", ps.Particles[0].Life)
	}
}

func TestParticleCap(t *testing.T) {
	params := testParticleParams()
	params.Max = 10
	ps := NewParticleSystem(params, rand.New(rand.NewSource(1)))

	if n := ps.Spawn(0, 0, red, 8); n != 8 {
		t.Errorf("first spawn = %d, want 8", n)
	}
	if n := ps.Spawn(0, 0, red, 8); n != 2 {
		t.Errorf("second spawn = %d, want 2", n)
	}
	if ps.Count() != 10 {
		t.Errorf("Count = %d, want 10", ps.Count())
	}
}

func TestParticleClearAndZeroCount(t *testing.T) {
	ps := NewParticleSystem(testParticleParams(), rand.New(rand.NewSource(1)))
	if n := ps.Spawn(0, 0, red, 0); n != 0 {
		t.Errorf("Spawn(count=0) = %d", n)
	}
	ps.Update() // empty update is a no-op

	ps.Spawn(0, 0, red, 5)
	ps.Clear()
	if ps.Count() != 0 {
		t.Errorf("Count after Clear = %d", ps.Count())
	}
}
