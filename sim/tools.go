package sim

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/playground/components"
	"github.com/pthm-cable/playground/systems"
)

// spawn places a new body so that (x, y) lands near its middle.
func (s *Simulation) spawn(kind components.Kind, x, y float32) {
	ox := float32(s.cfg.Tools.SpawnOffsetX)
	oy := float32(s.cfg.Tools.SpawnOffsetY)
	s.CreateBody(kind, x-ox, y-oy)
}

// bodiesAt returns every entity whose box contains (x, y), ordered by body ID.
func (s *Simulation) bodiesAt(x, y float32) []ecs.Entity {
	type hit struct {
		entity ecs.Entity
		id     uint64
	}
	var hits []hit

	query := s.bodyFilter.Query()
	for query.Next() {
		pos, _, size, _, body := query.Get()
		if systems.ContainsPoint(systems.BoxOf(pos, size), x, y) {
			hits = append(hits, hit{entity: query.Entity(), id: body.ID})
		}
	}

	// Insertion sort: hit lists are tiny
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].id < hits[j-1].id; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}

	entities := make([]ecs.Entity, len(hits))
	for i, h := range hits {
		entities[i] = h.entity
	}
	return entities
}

// dragStart grabs the oldest body under the pointer.
func (s *Simulation) dragStart(x, y float32) {
	// A press without a matching release drops the previous target
	s.dragEnd()

	s.drag.pointerX, s.drag.pointerY = x, y

	hits := s.bodiesAt(x, y)
	if len(hits) == 0 {
		return
	}

	entity := hits[0]
	_, _, _, _, body := s.bodyMap.Get(entity)
	body.Dragging = true

	s.drag.active = true
	s.drag.entity = entity
	s.drag.id = body.ID
}

// dragMove centers the target on the pointer and winds up a throw velocity
// proportional to the pointer movement since the previous event.
func (s *Simulation) dragMove(x, y float32) {
	dx := x - s.drag.pointerX
	dy := y - s.drag.pointerY
	s.drag.pointerX, s.drag.pointerY = x, y

	if !s.drag.active {
		return
	}
	if !s.world.Alive(s.drag.entity) {
		s.drag = dragState{pointerX: x, pointerY: y}
		return
	}

	pos, vel, size, _, body := s.bodyMap.Get(s.drag.entity)
	pos.X = x - size.W/2
	pos.Y = y - size.H/2

	if body.Kind.Static() {
		return
	}
	scale := float32(s.cfg.Tools.DragVelocityScale)
	vel.X = dx * scale
	vel.Y = dy * scale
}

// dragEnd releases the target; its last velocity carries into the next tick.
func (s *Simulation) dragEnd() {
	if s.drag.active && s.world.Alive(s.drag.entity) {
		_, _, _, _, body := s.bodyMap.Get(s.drag.entity)
		body.Dragging = false
	}
	s.drag.active = false
	s.drag.entity = ecs.Entity{}
	s.drag.id = 0
}

// DragTarget returns the id of the body currently held by the drag tool.
func (s *Simulation) DragTarget() (uint64, bool) {
	if !s.drag.active || !s.world.Alive(s.drag.entity) {
		return 0, false
	}
	return s.drag.id, true
}

// damageAt hurts every body under the point and sprays a few particles
// at the point for each one.
func (s *Simulation) damageAt(x, y float32) {
	amount := int32(s.cfg.Tools.Damage)
	for _, entity := range s.bodiesAt(x, y) {
		s.damageEntity(entity, amount)
		s.SpawnParticles(x, y, s.cfg.Derived.HitColor, s.cfg.Particles.HitBurst)
	}
}

// ExplosionEffect returns the impulse magnitude and damage dealt to a body
// at distance d from an explosion center. Both fall off linearly to zero at
// the radius; ok is false outside it.
func ExplosionEffect(d, radius, maxForce, damageScale float64) (force float64, damage int32, ok bool) {
	if radius <= 0 || d >= radius {
		return 0, 0, false
	}
	force = (radius - d) / radius * maxForce
	return force, int32(math.Floor(force * damageScale)), true
}

// explode pushes every body within the radius away from (x, y) and damages it.
// Distance is measured to the body's top-left corner.
func (s *Simulation) explode(x, y float32) {
	tools := &s.cfg.Tools

	type victim struct {
		entity ecs.Entity
		damage int32
	}
	var victims []victim

	query := s.bodyFilter.Query()
	for query.Next() {
		pos, vel, _, _, body := query.Get()

		dx := float64(pos.X - x)
		dy := float64(pos.Y - y)
		force, damage, ok := ExplosionEffect(math.Hypot(dx, dy), tools.ExplosionRadius, tools.ExplosionForce, tools.ExplosionDamageScale)
		if !ok {
			continue
		}

		if !body.Kind.Static() {
			angle := math.Atan2(dy, dx)
			vel.X += float32(math.Cos(angle) * force)
			vel.Y += float32(math.Sin(angle) * force)
		}
		victims = append(victims, victim{entity: query.Entity(), damage: damage})
	}

	for _, v := range victims {
		s.damageEntity(v.entity, v.damage)
	}

	s.SpawnParticles(x, y, s.cfg.Derived.ExplosionColor, s.cfg.Particles.ExplosionBurst)
	s.recorder.RecordExplosion(len(victims))
}

// clearAll removes every body. Particles are left to expire on their own.
func (s *Simulation) clearAll() {
	var entities []ecs.Entity
	query := s.bodyFilter.Query()
	for query.Next() {
		entities = append(entities, query.Entity())
	}

	for _, entity := range entities {
		s.world.RemoveEntity(entity)
	}

	clear(s.index)
	s.drag = dragState{pointerX: s.drag.pointerX, pointerY: s.drag.pointerY}
	s.recorder.RecordClear(len(entities))
}
