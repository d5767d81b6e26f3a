package main

import (
	"github.com/pthm-cable/playground/config"
)

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all tunable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of physics parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "gravity", Path: "physics.gravity", Min: 0.1, Max: 1.5, Default: 0.5},
			{Name: "friction", Path: "physics.friction", Min: 0.9, Max: 1.0, Default: 0.98},
			{Name: "floor_restitution", Path: "physics.floor_restitution", Min: 0.1, Max: 0.9, Default: 0.5},
			{Name: "wall_restitution", Path: "physics.wall_restitution", Min: 0.1, Max: 0.9, Default: 0.5},
			{Name: "ground_friction", Path: "physics.ground_friction", Min: 0.5, Max: 1.0, Default: 0.8},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = min(max(v[i], spec.Min), spec.Max)
	}
	return clamped
}

// ApplyToConfig applies parameter values to a Config struct.
// Order must match Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)

	cfg.Physics.Gravity = clamped[0]
	cfg.Physics.Friction = clamped[1]
	cfg.Physics.FloorRestitution = clamped[2]
	cfg.Physics.WallRestitution = clamped[3]
	cfg.Physics.GroundFriction = clamped[4]
}

// ExtractFromConfig extracts current parameter values from a Config struct.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		cfg.Physics.Gravity,
		cfg.Physics.Friction,
		cfg.Physics.FloorRestitution,
		cfg.Physics.WallRestitution,
		cfg.Physics.GroundFriction,
	}
}
