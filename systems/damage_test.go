package systems

import (
	"testing"

	"github.com/pthm-cable/playground/components"
)

func TestApplyDamage(t *testing.T) {
	tests := []struct {
		name       string
		health     components.Health
		dead       bool
		amount     int32
		wantHealth int32
		wantDied   bool
		wantDead   bool
	}{
		{"partial", components.Health{Value: 50, Max: 50}, false, 25, 25, false, false},
		{"exact kill", components.Health{Value: 25, Max: 50}, false, 25, 0, true, true},
		{"overkill clamps", components.Health{Value: 10, Max: 50}, false, 30, 0, true, true},
		{"already dead", components.Health{Value: 0, Max: 50}, true, 25, 0, false, true},
		{"zero amount", components.Health{Value: 40, Max: 50}, false, 0, 40, false, false},
		{"negative amount does not heal", components.Health{Value: 40, Max: 50}, false, -20, 40, false, false},
		{"zero amount on dead", components.Health{Value: 0, Max: 50}, true, 0, 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			health := tt.health
			body := components.Body{Kind: components.KindBox, Dead: tt.dead}

			died := ApplyDamage(&health, &body, tt.amount)

			if died != tt.wantDied {
				t.Errorf("died = %v, want %v", died, tt.wantDied)
			}
			if health.Value != tt.wantHealth {
				t.Errorf("health = %d, want %d", health.Value, tt.wantHealth)
			}
			if body.Dead != tt.wantDead {
				t.Errorf("dead = %v, want %v", body.Dead, tt.wantDead)
			}
			if health.Value < 0 || health.Value > health.Max {
				t.Errorf("health %d outside [0, %d]", health.Value, health.Max)
			}
		})
	}
}
