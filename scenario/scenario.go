// Package scenario provides scripted command sequences for headless runs,
// parameter tuning and demos.
package scenario

import (
	"fmt"
	"sort"

	"github.com/pthm-cable/playground/components"
	"github.com/pthm-cable/playground/sim"
)

// Step is a command applied before the simulation reaches Tick.
type Step struct {
	Tick int64
	Cmd  sim.Command
}

// Scenario is a named, tick-ordered command script.
type Scenario struct {
	Name        string
	Description string
	Steps       []Step
}

// Player feeds a scenario's commands into a simulation at their ticks.
type Player struct {
	steps []Step
	next  int
}

// NewPlayer creates a player for sc. Steps are ordered by tick, keeping the
// script order for steps on the same tick.
func NewPlayer(sc Scenario) *Player {
	steps := make([]Step, len(sc.Steps))
	copy(steps, sc.Steps)
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].Tick < steps[j].Tick })
	return &Player{steps: steps}
}

// Advance enqueues every step due at or before tick. Returns the number enqueued.
func (p *Player) Advance(s *sim.Simulation, tick int64) int {
	n := 0
	for p.next < len(p.steps) && p.steps[p.next].Tick <= tick {
		s.Enqueue(p.steps[p.next].Cmd)
		p.next++
		n++
	}
	return n
}

// Done reports whether every step has been played.
func (p *Player) Done() bool {
	return p.next >= len(p.steps)
}

// Run plays sc on s for ticks simulation ticks.
func Run(s *sim.Simulation, sc Scenario, ticks int64) {
	p := NewPlayer(sc)
	for i := int64(0); i < ticks; i++ {
		p.Advance(s, s.Tick())
		s.Step()
	}
}

// builtins are the scenarios available by name.
var builtins = map[string]Scenario{
	"drop":       Drop(100, 100),
	"stack":      Stack(),
	"demolition": Demolition(),
	"throw":      Throw(100, 100, 20, 0),
}

// Names returns the built-in scenario names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a built-in scenario by name.
func Lookup(name string) (Scenario, error) {
	sc, ok := builtins[name]
	if !ok {
		return Scenario{}, fmt.Errorf("unknown scenario %q (have %v)", name, Names())
	}
	return sc, nil
}

// Drop spawns one ball with its top-left corner at (x, y) and lets it fall.
func Drop(x, y float32) Scenario {
	return Scenario{
		Name:        "drop",
		Description: "single ball dropped onto the floor",
		Steps: []Step{
			{Tick: 0, Cmd: spawnAt(components.KindBall, x, y)},
		},
	}
}

// Stack builds a platform with boxes dropped on and beside it.
func Stack() Scenario {
	steps := []Step{
		{Tick: 0, Cmd: spawnAt(components.KindPlatform, 350, 450)},
	}
	for i := 0; i < 5; i++ {
		steps = append(steps, Step{
			Tick: int64(i) * 30,
			Cmd:  spawnAt(components.KindBox, 300+float32(i)*45, 100),
		})
	}
	steps = append(steps, Step{Tick: 60, Cmd: spawnAt(components.KindHuman, 600, 50)})
	return Scenario{
		Name:        "stack",
		Description: "platform with boxes and a human falling around it",
		Steps:       steps,
	}
}

// Demolition drops a mixed crowd and then blows it up twice.
func Demolition() Scenario {
	steps := []Step{}
	kinds := []components.Kind{components.KindHuman, components.KindBox, components.KindBall}
	for i := 0; i < 9; i++ {
		steps = append(steps, Step{
			Tick: int64(i) * 5,
			Cmd:  spawnAt(kinds[i%len(kinds)], 250+float32(i)*40, 200),
		})
	}
	steps = append(steps,
		Step{Tick: 180, Cmd: sim.Explode{X: 400, Y: 560}},
		Step{Tick: 240, Cmd: sim.Explode{X: 500, Y: 580}},
		Step{Tick: 300, Cmd: sim.Damage{X: 400, Y: 590}},
	)
	return Scenario{
		Name:        "demolition",
		Description: "crowd of bodies hit by explosions and a damage click",
		Steps:       steps,
	}
}

// Throw spawns a box, grabs it and flicks it by (dx, dy) in one move.
// The box's origin is (x, y); the grab and release happen on tick 1.
func Throw(x, y, dx, dy float32) Scenario {
	cx, cy := x+20, y+20 // Box center
	return Scenario{
		Name:        "throw",
		Description: "box grabbed and flicked sideways",
		Steps: []Step{
			{Tick: 0, Cmd: spawnAt(components.KindBox, x, y)},
			{Tick: 1, Cmd: sim.DragStart{X: cx, Y: cy}},
			{Tick: 1, Cmd: sim.DragMove{X: cx + dx, Y: cy + dy}},
			{Tick: 1, Cmd: sim.DragEnd{}},
		},
	}
}

// spawnAt returns the Spawn command that places a body's top-left corner at
// (x, y) given the default spawn offset.
func spawnAt(kind components.Kind, x, y float32) sim.Spawn {
	return sim.Spawn{Kind: kind, X: x + SpawnOffsetX, Y: y + SpawnOffsetY}
}

// Default spawn offsets; Spawn places the origin at (x-20, y-30).
const (
	SpawnOffsetX = 20
	SpawnOffsetY = 30
)
