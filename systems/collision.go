package systems

import "github.com/pthm-cable/playground/components"

// AABB is an axis-aligned bounding box with a top-left origin.
type AABB struct {
	X, Y, W, H float32
}

// BoxOf returns the bounding box of a body.
func BoxOf(pos *components.Position, size *components.Size) AABB {
	return AABB{X: pos.X, Y: pos.Y, W: size.W, H: size.H}
}

// Intersects reports whether a and b overlap on both axes.
// Boxes that only share an edge do not overlap.
func Intersects(a, b AABB) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// ContainsPoint reports whether (px, py) lies inside box, edges included.
func ContainsPoint(box AABB, px, py float32) bool {
	return px >= box.X && px <= box.X+box.W &&
		py >= box.Y && py <= box.Y+box.H
}

// Center returns the midpoint of the box.
func (b AABB) Center() (float32, float32) {
	return b.X + b.W/2, b.Y + b.H/2
}
