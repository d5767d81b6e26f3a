package renderer

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/playground/camera"
	"github.com/pthm-cable/playground/components"
	"github.com/pthm-cable/playground/sim"
)

// BodyOptions toggles optional body decorations.
type BodyOptions struct {
	HealthBars     bool
	CollisionBoxes bool
	Velocities     bool
	IDs            bool
}

// BodyRenderer draws bodies from a snapshot.
type BodyRenderer struct {
	velocityScale float32 // Screen length per unit of velocity
}

// NewBodyRenderer creates a body renderer.
func NewBodyRenderer() *BodyRenderer {
	return &BodyRenderer{velocityScale: 4}
}

// Draw renders every visible body.
func (r *BodyRenderer) Draw(cam *camera.Camera, bodies []sim.BodyView, opts BodyOptions) {
	for i := range bodies {
		b := &bodies[i]
		if !cam.IsVisible(b.X, b.Y, b.W, b.H) {
			continue
		}
		r.drawBody(cam, b)
		if opts.HealthBars && b.Health < b.MaxHealth {
			r.drawHealthBar(cam, b)
		}
		if opts.CollisionBoxes {
			r.drawBox(cam, b)
		}
		if opts.Velocities {
			r.drawVelocity(cam, b)
		}
		if opts.IDs {
			sx, sy := cam.WorldToScreen(b.X, b.Y)
			rl.DrawText(fmt.Sprintf("#%d", b.ID), int32(sx), int32(sy)-20, 10, rl.DarkGray)
		}
	}
}

func (r *BodyRenderer) drawBody(cam *camera.Camera, b *sim.BodyView) {
	fill := b.Color
	if b.Dead {
		fill = DeadColor
	}
	sx, sy := cam.WorldToScreen(b.X, b.Y)
	sw, sh := cam.ScaleToScreen(b.W), cam.ScaleToScreen(b.H)

	if b.Kind == components.KindBall {
		rl.DrawCircleV(rl.Vector2{X: sx + sw/2, Y: sy + sh/2}, sw/2, toRL(fill))
	} else {
		rl.DrawRectangleRec(rl.Rectangle{X: sx, Y: sy, Width: sw, Height: sh}, toRL(fill))
	}

	// Head and eyes for living humans
	if b.Kind == components.KindHuman && !b.Dead {
		cx := sx + sw/2
		rl.DrawCircleV(rl.Vector2{X: cx, Y: sy + cam.ScaleToScreen(10)}, cam.ScaleToScreen(8), toRL(b.Color))
		eye := cam.ScaleToScreen(2)
		eyeY := sy + cam.ScaleToScreen(7)
		rl.DrawRectangleRec(rl.Rectangle{X: cx - cam.ScaleToScreen(3), Y: eyeY, Width: eye, Height: eye}, toRL(EyeColor))
		rl.DrawRectangleRec(rl.Rectangle{X: cx + cam.ScaleToScreen(1), Y: eyeY, Width: eye, Height: eye}, toRL(EyeColor))
	}
}

// drawHealthBar draws a 4-unit bar 8 units above the body.
func (r *BodyRenderer) drawHealthBar(cam *camera.Camera, b *sim.BodyView) {
	frac := float32(0)
	if b.MaxHealth > 0 {
		frac = float32(b.Health) / float32(b.MaxHealth)
	}
	sx, sy := cam.WorldToScreen(b.X, b.Y-8)
	w, h := cam.ScaleToScreen(b.W), cam.ScaleToScreen(4)

	rl.DrawRectangleRec(rl.Rectangle{X: sx, Y: sy, Width: w, Height: h}, toRL(HealthBgColor))
	rl.DrawRectangleRec(rl.Rectangle{X: sx, Y: sy, Width: w * frac, Height: h}, toRL(healthBarColor(frac)))
}

func (r *BodyRenderer) drawBox(cam *camera.Camera, b *sim.BodyView) {
	sx, sy := cam.WorldToScreen(b.X, b.Y)
	col := rl.Green
	if b.Dragging {
		col = rl.Orange
	}
	rl.DrawRectangleLinesEx(rl.Rectangle{
		X:      sx,
		Y:      sy,
		Width:  cam.ScaleToScreen(b.W),
		Height: cam.ScaleToScreen(b.H),
	}, 1, col)
}

func (r *BodyRenderer) drawVelocity(cam *camera.Camera, b *sim.BodyView) {
	if b.VX == 0 && b.VY == 0 {
		return
	}
	cx, cy := cam.WorldToScreen(b.X+b.W/2, b.Y+b.H/2)
	end := rl.Vector2{
		X: cx + cam.ScaleToScreen(b.VX*r.velocityScale),
		Y: cy + cam.ScaleToScreen(b.VY*r.velocityScale),
	}
	rl.DrawLineV(rl.Vector2{X: cx, Y: cy}, end, rl.Blue)
}
