package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/playground/camera"
	"github.com/pthm-cable/playground/sim"
)

// ParticleRenderer renders effect particles.
type ParticleRenderer struct {
	size float32 // Particle edge length in world units
}

// NewParticleRenderer creates a new particle renderer.
func NewParticleRenderer() *ParticleRenderer {
	return &ParticleRenderer{size: 3}
}

// Draw renders all particles as squares faded by remaining life.
func (r *ParticleRenderer) Draw(cam *camera.Camera, particles []sim.ParticleView) {
	for i := range particles {
		p := &particles[i]
		if !cam.IsVisible(p.X, p.Y, r.size, r.size) {
			continue
		}
		sx, sy := cam.WorldToScreen(p.X, p.Y)
		s := cam.ScaleToScreen(r.size)
		rl.DrawRectangleRec(rl.Rectangle{X: sx, Y: sy, Width: s, Height: s}, toRL(fade(p.Color, p.Life, p.MaxLife)))
	}
}
