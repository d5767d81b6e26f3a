package systems

import (
	"image/color"
	"math/rand"

	"github.com/pthm-cable/playground/config"
)

// Particle is a short-lived decorative point. Particles never collide.
type Particle struct {
	ID         uint64
	X, Y       float32
	VelX, VelY float32
	Color      color.RGBA
	Life       int32
	MaxLife    int32
}

// ParticleParams controls particle spawning and motion.
type ParticleParams struct {
	Life    int32   // Ticks a particle lives
	Jitter  float32 // Max spawn offset per axis
	Speed   float32 // Max initial speed per axis
	Gravity float32 // Added to VelY every tick
	Max     int     // Live particle cap, 0 = unlimited
}

// ParticleParamsFromConfig builds particle parameters from the loaded config.
func ParticleParamsFromConfig(cfg *config.Config) ParticleParams {
	return ParticleParams{
		Life:    int32(cfg.Particles.Life),
		Jitter:  float32(cfg.Particles.Jitter),
		Speed:   float32(cfg.Particles.Speed),
		Gravity: float32(cfg.Particles.Gravity),
		Max:     cfg.Limits.MaxParticles,
	}
}

// ParticleSystem manages effect particles for visual feedback.
type ParticleSystem struct {
	Particles []Particle
	params    ParticleParams
	rng       *rand.Rand
	nextID    uint64
}

// NewParticleSystem creates a new particle system.
func NewParticleSystem(params ParticleParams, rng *rand.Rand) *ParticleSystem {
	capacity := params.Max
	if capacity == 0 || capacity > 512 {
		capacity = 512
	}
	return &ParticleSystem{
		Particles: make([]Particle, 0, capacity),
		params:    params,
		rng:       rng,
		nextID:    1,
	}
}

// Spawn emits count particles around (x, y). Returns how many were created,
// which is less than count when the particle cap is reached.
func (s *ParticleSystem) Spawn(x, y float32, c color.RGBA, count int) int {
	spawned := 0
	for i := 0; i < count; i++ {
		if s.params.Max > 0 && len(s.Particles) >= s.params.Max {
			break
		}
		s.Particles = append(s.Particles, Particle{
			ID:      s.nextID,
			X:       x + s.spread(s.params.Jitter),
			Y:       y + s.spread(s.params.Jitter),
			VelX:    s.spread(s.params.Speed),
			VelY:    s.spread(s.params.Speed),
			Color:   c,
			Life:    s.params.Life,
			MaxLife: s.params.Life,
		})
		s.nextID++
		spawned++
	}
	return spawned
}

// spread returns a uniform value in [-limit, limit).
func (s *ParticleSystem) spread(limit float32) float32 {
	return (s.rng.Float32() - 0.5) * 2 * limit
}

// Update advances every particle by one tick and drops expired ones.
func (s *ParticleSystem) Update() {
	alive := 0
	for i := range s.Particles {
		p := &s.Particles[i]

		p.X += p.VelX
		p.Y += p.VelY
		p.VelY += s.params.Gravity
		p.Life--
		if p.Life <= 0 {
			continue
		}

		s.Particles[alive] = s.Particles[i]
		alive++
	}
	s.Particles = s.Particles[:alive]
}

// Clear removes all particles.
func (s *ParticleSystem) Clear() {
	s.Particles = s.Particles[:0]
}

// Count returns the current number of active particles.
func (s *ParticleSystem) Count() int {
	return len(s.Particles)
}
