package systems

import "github.com/pthm-cable/playground/components"

// ApplyDamage subtracts amount from health, clamping at zero, and marks the
// body dead when health reaches zero. Returns true only on the tick the body
// dies. Non-positive amounts are ignored; health never increases.
func ApplyDamage(health *components.Health, body *components.Body, amount int32) (died bool) {
	if amount <= 0 {
		return false
	}

	newHealth := health.Value - amount
	if newHealth < 0 {
		newHealth = 0
	}
	health.Value = newHealth

	if newHealth == 0 && !body.Dead {
		body.Dead = true
		return true
	}
	return false
}
