// Package config provides configuration loading and access for the playground.
package config

import (
	_ "embed"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all playground configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Particles ParticlesConfig `yaml:"particles"`
	Tools     ToolsConfig     `yaml:"tools"`
	Limits    LimitsConfig    `yaml:"limits"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	TargetFPS  int `yaml:"target_fps"`
	PanelWidth int `yaml:"panel_width"` // Toolbar width left of the play field
}

// WorldConfig holds the simulation area dimensions.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig holds integrator parameters. All rates are per tick.
type PhysicsConfig struct {
	TickRate         int     `yaml:"tick_rate"`         // Ticks per second
	Gravity          float64 `yaml:"gravity"`           // Added to vy every tick
	Friction         float64 `yaml:"friction"`          // vx multiplier every tick
	WallRestitution  float64 `yaml:"wall_restitution"`  // Fraction of vx kept after a side wall hit
	FloorRestitution float64 `yaml:"floor_restitution"` // Fraction of vy kept after a floor hit
	GroundFriction   float64 `yaml:"ground_friction"`   // Extra vx multiplier on floor contact
	SnapSpeed        float64 `yaml:"snap_speed"`        // |v| below this snaps to 0
	RestSpeed        float64 `yaml:"rest_speed"`        // Reflected |vy| below this on floor contact snaps to 0
}

// ParticlesConfig holds effect particle parameters.
type ParticlesConfig struct {
	Life           int     `yaml:"life"`   // Lifetime in ticks
	Jitter         float64 `yaml:"jitter"` // Max spawn offset per axis
	Speed          float64 `yaml:"speed"`  // Max initial speed per axis
	Gravity        float64 `yaml:"gravity"`
	DefaultBurst   int     `yaml:"default_burst"`
	HitBurst       int     `yaml:"hit_burst"`
	DeathBurst     int     `yaml:"death_burst"`
	ExplosionBurst int     `yaml:"explosion_burst"`
	HitColor       string  `yaml:"hit_color"`
	DeathColor     string  `yaml:"death_color"`
	ExplosionColor string  `yaml:"explosion_color"`
}

// ToolsConfig holds interaction tool parameters.
type ToolsConfig struct {
	SpawnOffsetX         float64 `yaml:"spawn_offset_x"`
	SpawnOffsetY         float64 `yaml:"spawn_offset_y"`
	DragVelocityScale    float64 `yaml:"drag_velocity_scale"` // Velocity per unit of pointer movement
	Damage               int     `yaml:"damage"`
	ExplosionRadius      float64 `yaml:"explosion_radius"`
	ExplosionForce       float64 `yaml:"explosion_force"`        // Impulse at the center
	ExplosionDamageScale float64 `yaml:"explosion_damage_scale"` // damage = floor(force * this)
}

// LimitsConfig caps live entity counts. Zero means unlimited.
type LimitsConfig struct {
	MaxBodies    int `yaml:"max_bodies"`
	MaxParticles int `yaml:"max_particles"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // Seconds of simulated time per stats window
	PerfWindow  int     `yaml:"perf_window"`  // Ticks averaged by the perf collector
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	TickPeriod     time.Duration
	DT             float32 // Seconds per tick
	WorldW32       float32
	WorldH32       float32
	HitColor       color.RGBA
	DeathColor     color.RGBA
	ExplosionColor color.RGBA
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Defaults returns a fresh copy of the embedded default configuration.
func Defaults() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate rejects values the simulation cannot run with.
func (c *Config) validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	}
	if c.Physics.TickRate <= 0 {
		return fmt.Errorf("physics.tick_rate must be positive, got %d", c.Physics.TickRate)
	}
	if c.Particles.Life <= 0 {
		return fmt.Errorf("particles.life must be positive, got %d", c.Particles.Life)
	}
	if c.Limits.MaxBodies < 0 || c.Limits.MaxParticles < 0 {
		return fmt.Errorf("limits must not be negative")
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() error {
	c.Derived.TickPeriod = time.Second / time.Duration(c.Physics.TickRate)
	c.Derived.DT = 1 / float32(c.Physics.TickRate)
	c.Derived.WorldW32 = float32(c.World.Width)
	c.Derived.WorldH32 = float32(c.World.Height)

	colors := []struct {
		name string
		src  string
		dst  *color.RGBA
	}{
		{"particles.hit_color", c.Particles.HitColor, &c.Derived.HitColor},
		{"particles.death_color", c.Particles.DeathColor, &c.Derived.DeathColor},
		{"particles.explosion_color", c.Particles.ExplosionColor, &c.Derived.ExplosionColor},
	}
	for _, col := range colors {
		parsed, err := ParseHexColor(col.src)
		if err != nil {
			return fmt.Errorf("%s: %w", col.name, err)
		}
		*col.dst = parsed
	}
	return nil
}

// ParseHexColor parses "#RGB", "#RRGGBB" or "#RRGGBBAA" into an opaque-by-default color.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
