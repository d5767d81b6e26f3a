// Package components defines ECS components for the playground.
package components

import "image/color"

// Position is the top-left corner of a body's bounding box.
type Position struct {
	X, Y float32
}

// Velocity is the per-tick displacement of a body.
type Velocity struct {
	X, Y float32
}

// Size is the fixed width and height of a body's bounding box.
type Size struct {
	W, H float32
}

// Health tracks remaining and maximum hit points.
// Invariant: 0 <= Value <= Max.
type Health struct {
	Value int32
	Max   int32
}

// Fraction returns Value/Max in [0, 1].
func (h Health) Fraction() float32 {
	if h.Max <= 0 {
		return 0
	}
	return float32(h.Value) / float32(h.Max)
}

// Body holds identity and state flags for a simulated body.
type Body struct {
	ID       uint64 // Unique for the lifetime of the simulation, never reused
	Kind     Kind
	Color    color.RGBA
	Dead     bool // Sticky once set
	Dragging bool // Held by the drag tool; excluded from integration
}
