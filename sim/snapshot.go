package sim

import (
	"cmp"
	"image/color"
	"slices"

	"github.com/pthm-cable/playground/components"
)

// BodyView is a read-only copy of a body's renderable state.
type BodyView struct {
	ID        uint64
	Kind      components.Kind
	X, Y      float32
	W, H      float32
	VX, VY    float32
	Health    int32
	MaxHealth int32
	Color     color.RGBA
	Dead      bool
	Dragging  bool
}

// ParticleView is a read-only copy of a particle's renderable state.
type ParticleView struct {
	X, Y    float32
	Color   color.RGBA
	Life    int32
	MaxLife int32
}

// Snapshot is an immutable copy of the simulation state after a tick.
type Snapshot struct {
	Tick      int64
	Bodies    []BodyView // Ordered by ID, i.e. creation order
	Particles []ParticleView
}

// Snapshot copies the current bodies and particles.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      s.tick,
		Bodies:    make([]BodyView, 0, len(s.index)),
		Particles: make([]ParticleView, 0, s.particles.Count()),
	}

	query := s.bodyFilter.Query()
	for query.Next() {
		pos, vel, size, health, body := query.Get()
		snap.Bodies = append(snap.Bodies, viewOf(pos, vel, size, health, body))
	}
	slices.SortFunc(snap.Bodies, func(a, b BodyView) int {
		return cmp.Compare(a.ID, b.ID)
	})

	for _, p := range s.particles.Particles {
		snap.Particles = append(snap.Particles, ParticleView{
			X:       p.X,
			Y:       p.Y,
			Color:   p.Color,
			Life:    p.Life,
			MaxLife: p.MaxLife,
		})
	}

	return snap
}

// Body returns a copy of the body with the given id.
func (s *Simulation) Body(id uint64) (BodyView, bool) {
	entity, ok := s.index[id]
	if !ok || !s.world.Alive(entity) {
		return BodyView{}, false
	}
	pos, vel, size, health, body := s.bodyMap.Get(entity)
	return viewOf(pos, vel, size, health, body), true
}

func viewOf(pos *components.Position, vel *components.Velocity, size *components.Size, health *components.Health, body *components.Body) BodyView {
	return BodyView{
		ID:        body.ID,
		Kind:      body.Kind,
		X:         pos.X,
		Y:         pos.Y,
		W:         size.W,
		H:         size.H,
		VX:        vel.X,
		VY:        vel.Y,
		Health:    health.Value,
		MaxHealth: health.Max,
		Color:     body.Color,
		Dead:      body.Dead,
		Dragging:  body.Dragging,
	}
}

// Alive counts bodies that are not dead.
func (snap Snapshot) Alive() int {
	n := 0
	for i := range snap.Bodies {
		if !snap.Bodies[i].Dead {
			n++
		}
	}
	return n
}

// CountByKind returns the number of bodies of each kind.
func (snap Snapshot) CountByKind() [components.NumKinds]int {
	var counts [components.NumKinds]int
	for i := range snap.Bodies {
		if k := snap.Bodies[i].Kind; k.Valid() {
			counts[k]++
		}
	}
	return counts
}
