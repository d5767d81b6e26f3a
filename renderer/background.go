package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/playground/camera"
)

// BackgroundRenderer fills the play field and draws the world grid.
type BackgroundRenderer struct {
	spacing float32 // Grid spacing in world units
}

// NewBackgroundRenderer creates a background renderer with the given grid spacing.
func NewBackgroundRenderer(spacing float32) *BackgroundRenderer {
	if spacing <= 0 {
		spacing = 50
	}
	return &BackgroundRenderer{spacing: spacing}
}

// Draw renders the background for the camera's visible area.
func (b *BackgroundRenderer) Draw(cam *camera.Camera) {
	rl.DrawRectangleRec(rl.Rectangle{
		X:      cam.OriginX,
		Y:      cam.OriginY,
		Width:  cam.ViewportW,
		Height: cam.ViewportH,
	}, toRL(BackgroundColor))

	grid := toRL(GridColor)
	top, bottom := cam.OriginY, cam.OriginY+cam.ViewportH
	left, right := cam.OriginX, cam.OriginX+cam.ViewportW

	for x := float32(0); x < cam.WorldW; x += b.spacing {
		sx, _ := cam.WorldToScreen(x, 0)
		if sx < left || sx > right {
			continue
		}
		rl.DrawLineV(rl.Vector2{X: sx, Y: top}, rl.Vector2{X: sx, Y: bottom}, grid)
	}
	for y := float32(0); y < cam.WorldH; y += b.spacing {
		_, sy := cam.WorldToScreen(0, y)
		if sy < top || sy > bottom {
			continue
		}
		rl.DrawLineV(rl.Vector2{X: left, Y: sy}, rl.Vector2{X: right, Y: sy}, grid)
	}
}
