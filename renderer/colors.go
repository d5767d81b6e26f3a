// Package renderer draws playground snapshots with raylib.
package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Fixed palette
var (
	BackgroundColor = color.RGBA{R: 0xF0, G: 0xF8, B: 0xFF, A: 0xFF}
	GridColor       = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	DeadColor       = color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xFF}
	EyeColor        = color.RGBA{A: 0xFF}
	HealthBgColor   = color.RGBA{R: 0xFF, A: 0xFF}
	HealthHigh      = color.RGBA{G: 0xFF, A: 0xFF}
	HealthMedium    = color.RGBA{R: 0xFF, G: 0xFF, A: 0xFF}
	HealthLow       = color.RGBA{R: 0xFF, A: 0xFF}
)

// toRL converts a standard library color to a raylib color.
func toRL(c color.RGBA) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// healthBarColor picks the fill color for a health fraction in [0, 1].
func healthBarColor(frac float32) color.RGBA {
	switch {
	case frac > 0.5:
		return HealthHigh
	case frac > 0.25:
		return HealthMedium
	default:
		return HealthLow
	}
}

// fade scales a color's alpha by life/maxLife.
func fade(c color.RGBA, life, maxLife int32) color.RGBA {
	if maxLife <= 0 || life <= 0 {
		c.A = 0
		return c
	}
	ratio := float32(life) / float32(maxLife)
	if ratio > 1 {
		ratio = 1
	}
	c.A = uint8(float32(c.A) * ratio)
	return c
}
