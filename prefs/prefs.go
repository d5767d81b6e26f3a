// Package prefs persists interactive session preferences (selected tool,
// speed, overlay toggles) in the per-user application data directory.
package prefs

import (
	"fmt"
	"log/slog"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName names the application data directory.
const AppName = "physics_playground"

const (
	prefsObject   = "preferences"
	prefsProperty = "session"
)

// Preferences is the state restored at the start of a graphical session.
type Preferences struct {
	Tool           string          `yaml:"tool"`
	StepsPerUpdate int             `yaml:"steps_per_update"`
	Overlays       map[string]bool `yaml:"overlays"`
}

// Defaults returns the preferences used when nothing has been saved.
func Defaults() Preferences {
	return Preferences{
		Tool:           "spawn_box",
		StepsPerUpdate: 1,
		Overlays:       map[string]bool{},
	}
}

// Store loads and saves Preferences. A Store without a data manager keeps
// preferences in memory only.
type Store struct {
	data  *gdata.Manager
	prefs Preferences
}

// Open creates a store backed by the application data directory for appName.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("opening app data: %w", err)
	}
	return NewStore(m), nil
}

// NewStore wraps an existing data manager, which may be nil.
func NewStore(m *gdata.Manager) *Store {
	return &Store{data: m, prefs: Defaults()}
}

// Prefs returns the current preferences for reading and editing.
func (s *Store) Prefs() *Preferences {
	return &s.prefs
}

// Load replaces the current preferences with the saved ones. Missing data
// leaves the defaults in place; unreadable data resets to defaults.
func (s *Store) Load() error {
	s.prefs = Defaults()
	if s.data == nil || !s.data.ObjectPropExists(prefsObject, prefsProperty) {
		return nil
	}

	raw, err := s.data.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		return fmt.Errorf("loading preferences: %w", err)
	}

	loaded := Defaults()
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return fmt.Errorf("parsing preferences: %w", err)
	}
	if loaded.Overlays == nil {
		loaded.Overlays = map[string]bool{}
	}
	s.prefs = loaded
	slog.Debug("preferences loaded", "tool", loaded.Tool, "steps_per_update", loaded.StepsPerUpdate)
	return nil
}

// Save writes the current preferences. A memory-only store does nothing.
func (s *Store) Save() error {
	if s.data == nil {
		return nil
	}

	raw, err := yaml.Marshal(&s.prefs)
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}
	if err := s.data.SaveObjectProp(prefsObject, prefsProperty, raw); err != nil {
		return fmt.Errorf("saving preferences: %w", err)
	}
	return nil
}
