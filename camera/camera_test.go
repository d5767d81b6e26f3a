package camera

import (
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 0.01
}

func TestNew(t *testing.T) {
	cam := New(280, 30, 800, 600, 800, 600)

	if cam.X != 400 || cam.Y != 300 {
		t.Errorf("expected camera at (400, 300), got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
	if cam.MinZoom != 1.0 {
		t.Errorf("expected min zoom 1.0 when viewport matches world, got %f", cam.MinZoom)
	}
}

func TestIdentityMapping(t *testing.T) {
	cam := New(280, 30, 800, 600, 800, 600)

	tests := []struct {
		wx, wy float32
		sx, sy float32
	}{
		{0, 0, 280, 30},
		{400, 300, 680, 330},
		{800, 600, 1080, 630},
	}

	for _, tt := range tests {
		sx, sy := cam.WorldToScreen(tt.wx, tt.wy)
		if !near(sx, tt.sx) || !near(sy, tt.sy) {
			t.Errorf("WorldToScreen(%v, %v) = (%v, %v), want (%v, %v)", tt.wx, tt.wy, sx, sy, tt.sx, tt.sy)
		}
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(280, 30, 800, 600, 800, 600)
	cam.SetZoom(2)
	cam.Pan(100, -50)

	points := [][2]float32{{0, 0}, {123, 456}, {799, 599}, {400, 300}}
	for _, p := range points {
		sx, sy := cam.WorldToScreen(p[0], p[1])
		wx, wy := cam.ScreenToWorld(sx, sy)
		if !near(wx, p[0]) || !near(wy, p[1]) {
			t.Errorf("roundtrip (%v, %v) -> (%v, %v)", p[0], p[1], wx, wy)
		}
	}
}

func TestScreenToWorldOutsideViewport(t *testing.T) {
	cam := New(280, 30, 800, 600, 800, 600)

	wx, wy := cam.ScreenToWorld(270, 20)
	if !near(wx, -10) || !near(wy, -10) {
		t.Errorf("ScreenToWorld outside = (%v, %v), want (-10, -10)", wx, wy)
	}
	if cam.InViewport(270, 20) {
		t.Error("InViewport(270, 20) = true, want false")
	}
	if !cam.InViewport(280, 30) {
		t.Error("InViewport(280, 30) = false, want true")
	}
	if cam.InViewport(1080, 630) {
		t.Error("InViewport(1080, 630) = true, want false (exclusive far edge)")
	}
}

func TestPanClampsToWorld(t *testing.T) {
	cam := New(0, 0, 800, 600, 800, 600)

	// At min zoom the view covers the whole world, panning is a no-op
	cam.Pan(500, 500)
	if cam.X != 400 || cam.Y != 300 {
		t.Errorf("pan at min zoom moved camera to (%v, %v)", cam.X, cam.Y)
	}

	cam.SetZoom(2)
	cam.Pan(10000, 10000)
	// Half-extents at zoom 2 are 200x150
	if !near(cam.X, 600) || !near(cam.Y, 450) {
		t.Errorf("pan clamp = (%v, %v), want (600, 450)", cam.X, cam.Y)
	}
	cam.Pan(-10000, -10000)
	if !near(cam.X, 200) || !near(cam.Y, 150) {
		t.Errorf("pan clamp = (%v, %v), want (200, 150)", cam.X, cam.Y)
	}
}

func TestZoomClamp(t *testing.T) {
	cam := New(0, 0, 800, 600, 800, 600)

	cam.SetZoom(10)
	if cam.Zoom != cam.MaxZoom {
		t.Errorf("expected zoom clamped to %f, got %f", cam.MaxZoom, cam.Zoom)
	}

	cam.SetZoom(0.1)
	if cam.Zoom != cam.MinZoom {
		t.Errorf("expected zoom clamped to %f, got %f", cam.MinZoom, cam.Zoom)
	}

	cam.SetZoom(2)
	cam.ZoomBy(1.5)
	if !near(cam.Zoom, 3) {
		t.Errorf("expected zoom 3 after ZoomBy(1.5), got %f", cam.Zoom)
	}
}

func TestSmallViewportMinZoom(t *testing.T) {
	// Viewport smaller than the world starts zoomed out to show it all
	cam := New(0, 0, 400, 300, 800, 600)

	if !near(cam.MinZoom, 0.5) {
		t.Errorf("MinZoom = %v, want 0.5", cam.MinZoom)
	}
	if cam.Zoom != 1 {
		t.Errorf("Zoom = %v, want 1", cam.Zoom)
	}
	if !near(cam.ScaleToScreen(10), 10) {
		t.Errorf("ScaleToScreen(10) = %v, want 10", cam.ScaleToScreen(10))
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(0, 0, 800, 600, 800, 600)
	cam.SetZoom(2)
	cam.Pan(-10000, -10000) // view [0,400]x[0,300]

	tests := []struct {
		name       string
		x, y, w, h float32
		want       bool
	}{
		{"inside", 100, 100, 20, 20, true},
		{"overlapping right edge", 390, 100, 30, 30, true},
		{"right of view", 450, 100, 30, 30, false},
		{"below view", 100, 320, 30, 30, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cam.IsVisible(tt.x, tt.y, tt.w, tt.h); got != tt.want {
				t.Errorf("IsVisible = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResize(t *testing.T) {
	cam := New(280, 30, 800, 600, 800, 600)
	cam.Resize(300, 40, 400, 300)

	if cam.OriginX != 300 || cam.OriginY != 40 {
		t.Errorf("origin = (%v, %v), want (300, 40)", cam.OriginX, cam.OriginY)
	}
	if !near(cam.MinZoom, 0.5) {
		t.Errorf("MinZoom = %v, want 0.5", cam.MinZoom)
	}
}

func TestReset(t *testing.T) {
	cam := New(0, 0, 800, 600, 800, 600)
	cam.SetZoom(3)
	cam.Pan(200, 200)

	cam.Reset()

	if cam.X != 400 || cam.Y != 300 || cam.Zoom != 1 {
		t.Errorf("after Reset: (%v, %v) zoom %v", cam.X, cam.Y, cam.Zoom)
	}
}
