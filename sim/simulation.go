// Package sim implements the playground simulation core: body storage,
// the fixed-step tick, and the interaction tools that mutate bodies.
package sim

import (
	"fmt"
	"image/color"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/playground/components"
	"github.com/pthm-cable/playground/config"
	"github.com/pthm-cable/playground/systems"
	"github.com/pthm-cable/playground/telemetry"
)

// Recorder receives simulation events, typically a telemetry collector.
type Recorder interface {
	RecordSpawn(kind components.Kind)
	RecordDeath(kind components.Kind)
	RecordDamage(amount int32)
	RecordExplosion(hits int)
	RecordClear(removed int)
}

type nopRecorder struct{}

func (nopRecorder) RecordSpawn(components.Kind) {}
func (nopRecorder) RecordDeath(components.Kind) {}
func (nopRecorder) RecordDamage(int32)          {}
func (nopRecorder) RecordExplosion(int)         {}
func (nopRecorder) RecordClear(int)             {}

// Options configures a Simulation.
type Options struct {
	Seed     int64                    // RNG seed for particle effects
	Recorder Recorder                 // Event sink, nil = discard
	Perf     *telemetry.PerfCollector // Phase timing, nil = disabled
}

// Simulation owns every body and particle. Nothing outside it can reach the
// entity sets; all mutation goes through Apply and Step.
//
// Apply and Step are not safe for concurrent use. Hosts that receive input on
// other goroutines use Enqueue, which is drained at the start of Step.
type Simulation struct {
	cfg   *config.Config
	rng   *rand.Rand
	world *ecs.World

	bodyMap *ecs.Map5[
		components.Position,
		components.Velocity,
		components.Size,
		components.Health,
		components.Body,
	]
	bodyFilter *ecs.Filter5[
		components.Position,
		components.Velocity,
		components.Size,
		components.Health,
		components.Body,
	]

	// Body ID to entity, for damage and drag lookups
	index  map[uint64]ecs.Entity
	nextID uint64

	physics   *systems.PhysicsSystem
	particles *systems.ParticleSystem

	drag dragState

	pendingMu sync.Mutex
	pending   []Command

	tick     int64
	recorder Recorder
	perf     *telemetry.PerfCollector
}

// dragState tracks the drag tool between press and release.
type dragState struct {
	active   bool
	entity   ecs.Entity
	id       uint64
	pointerX float32
	pointerY float32
}

// New creates an empty simulation.
func New(cfg *config.Config, opts Options) *Simulation {
	world := ecs.NewWorld()
	rng := rand.New(rand.NewSource(opts.Seed))

	s := &Simulation{
		cfg:   cfg,
		rng:   rng,
		world: world,
		bodyMap: ecs.NewMap5[
			components.Position,
			components.Velocity,
			components.Size,
			components.Health,
			components.Body,
		](world),
		bodyFilter: ecs.NewFilter5[
			components.Position,
			components.Velocity,
			components.Size,
			components.Health,
			components.Body,
		](world),
		index:     make(map[uint64]ecs.Entity),
		nextID:    1,
		physics:   systems.NewPhysicsSystem(world, systems.PhysicsParamsFromConfig(cfg)),
		particles: systems.NewParticleSystem(systems.ParticleParamsFromConfig(cfg), rng),
		recorder:  opts.Recorder,
		perf:      opts.Perf,
	}
	if s.recorder == nil {
		s.recorder = nopRecorder{}
	}
	return s
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() *config.Config {
	return s.cfg
}

// Tick returns the number of completed simulation ticks.
func (s *Simulation) Tick() int64 {
	return s.tick
}

// BodyCount returns the number of live bodies, dead ones included.
func (s *Simulation) BodyCount() int {
	return len(s.index)
}

// ParticleCount returns the number of active particles.
func (s *Simulation) ParticleCount() int {
	return s.particles.Count()
}

// Step advances the simulation by one tick: queued commands first, then
// body integration, then particles.
func (s *Simulation) Step() {
	if s.perf != nil {
		s.perf.StartTick()
		s.perf.StartPhase(telemetry.PhaseCommands)
	}
	s.drainPending()

	if s.perf != nil {
		s.perf.StartPhase(telemetry.PhasePhysics)
	}
	s.physics.Update()

	if s.perf != nil {
		s.perf.StartPhase(telemetry.PhaseParticles)
	}
	s.particles.Update()

	s.tick++
	if s.perf != nil {
		s.perf.EndTick()
	}
}

// Enqueue queues cmd for the next Step. Safe for concurrent use.
func (s *Simulation) Enqueue(cmd Command) {
	s.pendingMu.Lock()
	s.pending = append(s.pending, cmd)
	s.pendingMu.Unlock()
}

// drainPending applies queued commands in arrival order.
func (s *Simulation) drainPending() {
	s.pendingMu.Lock()
	queued := s.pending
	s.pending = nil
	s.pendingMu.Unlock()

	for _, cmd := range queued {
		s.Apply(cmd)
	}
}

// Apply executes cmd immediately. Commands with non-finite coordinates are
// dropped; commands that match nothing are no-ops.
func (s *Simulation) Apply(cmd Command) {
	if !finite(cmd) {
		slog.Debug("dropping command with non-finite coordinates", "command", fmt.Sprintf("%T", cmd))
		return
	}

	switch c := cmd.(type) {
	case Spawn:
		s.spawn(c.Kind, c.X, c.Y)
	case DragStart:
		s.dragStart(c.X, c.Y)
	case DragMove:
		s.dragMove(c.X, c.Y)
	case DragEnd:
		s.dragEnd()
	case Damage:
		s.damageAt(c.X, c.Y)
	case Explode:
		s.explode(c.X, c.Y)
	case ClearAll:
		s.clearAll()
	default:
		slog.Warn("unknown command", "command", fmt.Sprintf("%T", cmd))
	}
}

// CreateBody adds a body of kind with its top-left corner at (x, y).
// Returns false if the kind is unknown or the body cap is reached.
func (s *Simulation) CreateBody(kind components.Kind, x, y float32) (uint64, bool) {
	spec, ok := kind.Spec()
	if !ok {
		slog.Debug("ignoring spawn of unknown kind", "kind", kind)
		return 0, false
	}
	if limit := s.cfg.Limits.MaxBodies; limit > 0 && len(s.index) >= limit {
		slog.Debug("body limit reached", "limit", limit)
		return 0, false
	}

	id := s.nextID
	s.nextID++

	pos := components.Position{X: x, Y: y}
	vel := components.Velocity{}
	size := components.Size{W: spec.Width, H: spec.Height}
	health := components.Health{Value: spec.Health, Max: spec.Health}
	body := components.Body{ID: id, Kind: kind, Color: spec.Color}

	entity := s.bodyMap.NewEntity(&pos, &vel, &size, &health, &body)
	s.index[id] = entity

	s.recorder.RecordSpawn(kind)
	slog.Debug("body spawned", "id", id, "kind", kind, "x", x, "y", y)
	return id, true
}

// ApplyDamage hurts the body with the given id. Unknown ids are ignored.
// A body whose health reaches zero dies once and emits a death burst.
func (s *Simulation) ApplyDamage(id uint64, amount int32) {
	entity, ok := s.index[id]
	if !ok || !s.world.Alive(entity) {
		return
	}
	s.damageEntity(entity, amount)
}

// damageEntity applies damage to a live entity.
func (s *Simulation) damageEntity(entity ecs.Entity, amount int32) {
	pos, _, size, health, body := s.bodyMap.Get(entity)

	if amount > 0 {
		s.recorder.RecordDamage(amount)
	}
	if !systems.ApplyDamage(health, body, amount) {
		return
	}

	cx, cy := systems.BoxOf(pos, size).Center()
	s.SpawnParticles(cx, cy, s.cfg.Derived.DeathColor, s.cfg.Particles.DeathBurst)
	s.recorder.RecordDeath(body.Kind)
	slog.Debug("body died", "id", body.ID, "kind", body.Kind)
}

// SpawnParticles emits count decorative particles around (x, y).
func (s *Simulation) SpawnParticles(x, y float32, c color.RGBA, count int) int {
	return s.particles.Spawn(x, y, c, count)
}

// SpawnBurst emits the configured default number of particles.
func (s *Simulation) SpawnBurst(x, y float32, c color.RGBA) int {
	return s.particles.Spawn(x, y, c, s.cfg.Particles.DefaultBurst)
}
