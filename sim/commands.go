package sim

import (
	"math"

	"github.com/pthm-cable/playground/components"
)

// Command is an input event applied atomically to the simulation.
// The set is closed: only the types in this file implement it.
type Command interface {
	command()
}

// Spawn creates one body of Kind near (X, Y).
type Spawn struct {
	Kind components.Kind
	X, Y float32
}

// DragStart grabs the first body under (X, Y).
type DragStart struct {
	X, Y float32
}

// DragMove moves the grabbed body so its center follows (X, Y).
type DragMove struct {
	X, Y float32
}

// DragEnd releases the grabbed body.
type DragEnd struct{}

// Damage hurts every body under (X, Y).
type Damage struct {
	X, Y float32
}

// Explode pushes and hurts every body within the explosion radius of (X, Y).
type Explode struct {
	X, Y float32
}

// ClearAll removes every body.
type ClearAll struct{}

func (Spawn) command()     {}
func (DragStart) command() {}
func (DragMove) command()  {}
func (DragEnd) command()   {}
func (Damage) command()    {}
func (Explode) command()   {}
func (ClearAll) command()  {}

// commandPoint returns the coordinates carried by cmd, if any.
func commandPoint(cmd Command) (x, y float32, ok bool) {
	switch c := cmd.(type) {
	case Spawn:
		return c.X, c.Y, true
	case DragStart:
		return c.X, c.Y, true
	case DragMove:
		return c.X, c.Y, true
	case Damage:
		return c.X, c.Y, true
	case Explode:
		return c.X, c.Y, true
	}
	return 0, 0, false
}

// finite reports whether cmd carries no NaN or infinite coordinates.
func finite(cmd Command) bool {
	x, y, ok := commandPoint(cmd)
	if !ok {
		return true
	}
	return isFinite(x) && isFinite(y)
}

func isFinite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
