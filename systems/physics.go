// Package systems contains the simulation systems that operate on ECS components.
package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/playground/components"
	"github.com/pthm-cable/playground/config"
)

// PhysicsParams holds per-tick integrator constants.
type PhysicsParams struct {
	Width, Height    float32 // Simulation area; there is no top boundary
	Gravity          float32
	Friction         float32
	WallRestitution  float32
	FloorRestitution float32
	GroundFriction   float32
	SnapSpeed        float32
	RestSpeed        float32
}

// PhysicsParamsFromConfig builds integrator parameters from the loaded config.
func PhysicsParamsFromConfig(cfg *config.Config) PhysicsParams {
	return PhysicsParams{
		Width:            cfg.Derived.WorldW32,
		Height:           cfg.Derived.WorldH32,
		Gravity:          float32(cfg.Physics.Gravity),
		Friction:         float32(cfg.Physics.Friction),
		WallRestitution:  float32(cfg.Physics.WallRestitution),
		FloorRestitution: float32(cfg.Physics.FloorRestitution),
		GroundFriction:   float32(cfg.Physics.GroundFriction),
		SnapSpeed:        float32(cfg.Physics.SnapSpeed),
		RestSpeed:        float32(cfg.Physics.RestSpeed),
	}
}

// PhysicsSystem integrates every dynamic body that is not being dragged.
type PhysicsSystem struct {
	filter *ecs.Filter4[components.Position, components.Velocity, components.Size, components.Body]
	params PhysicsParams
}

// NewPhysicsSystem creates a new physics system.
func NewPhysicsSystem(w *ecs.World, params PhysicsParams) *PhysicsSystem {
	return &PhysicsSystem{
		filter: ecs.NewFilter4[components.Position, components.Velocity, components.Size, components.Body](w),
		params: params,
	}
}

// Params returns the integrator constants.
func (s *PhysicsSystem) Params() PhysicsParams {
	return s.params
}

// Update runs one integration step. Returns the number of bodies integrated.
func (s *PhysicsSystem) Update() int {
	integrated := 0
	query := s.filter.Query()
	for query.Next() {
		pos, vel, size, body := query.Get()

		if body.Dragging || body.Kind.Static() {
			continue
		}

		Integrate(pos, vel, size, &s.params)
		integrated++
	}
	return integrated
}

// Integrate advances a single body by one tick.
//
// Position moves by the old velocity, then velocity decays and gains
// gravity, then walls and floor clamp position and reflect velocity.
// Ground friction applies after floor restitution, both to the already
// decayed vx.
func Integrate(pos *components.Position, vel *components.Velocity, size *components.Size, p *PhysicsParams) {
	x := pos.X + vel.X
	y := pos.Y + vel.Y
	vx := vel.X * p.Friction
	vy := vel.Y + p.Gravity

	if x < 0 {
		x = 0
		vx = -vx * p.WallRestitution
	}
	if x+size.W > p.Width {
		x = p.Width - size.W
		vx = -vx * p.WallRestitution
	}

	// Touching counts as contact so resting bodies stay put
	if y+size.H >= p.Height {
		y = p.Height - size.H
		vy = -vy * p.FloorRestitution
		vx *= p.GroundFriction
		if abs32(vy) < p.RestSpeed {
			vy = 0
		}
	}

	if abs32(vx) < p.SnapSpeed {
		vx = 0
	}
	if abs32(vy) < p.SnapSpeed {
		vy = 0
	}

	pos.X, pos.Y = x, y
	vel.X, vel.Y = vx, vy
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
