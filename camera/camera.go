// Package camera maps between screen pixels and playground world coordinates.
package camera

// Camera controls the viewport into the playground.
// The viewport is a fixed screen rectangle; pan and zoom are clamped so the
// view never leaves the world bounds.
type Camera struct {
	// Position is the camera center in world coordinates
	X, Y float32

	// Zoom level (1.0 = 1:1, 2.0 = 2x magnification)
	Zoom float32

	// Viewport rectangle on screen
	OriginX, OriginY     float32
	ViewportW, ViewportH float32

	// World dimensions
	WorldW, WorldH float32

	// Zoom constraints
	MinZoom, MaxZoom float32
}

// New creates a camera centered on the world with 1:1 zoom.
// The viewport's top-left corner sits at (originX, originY) on screen.
func New(originX, originY, viewportW, viewportH, worldW, worldH float32) *Camera {
	c := &Camera{
		OriginX:   originX,
		OriginY:   originY,
		ViewportW: viewportW,
		ViewportH: viewportH,
		WorldW:    worldW,
		WorldH:    worldH,
		MaxZoom:   4.0,
	}
	c.MinZoom = c.minZoom()
	c.Reset()
	return c
}

// minZoom is the smallest zoom at which the visible area still fits the world.
// At zoom Z the visible world area is (viewportW/Z, viewportH/Z).
func (c *Camera) minZoom() float32 {
	z := c.ViewportW / c.WorldW
	if zy := c.ViewportH / c.WorldH; zy > z {
		z = zy
	}
	return z
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	sx = c.OriginX + c.ViewportW/2 + (wx-c.X)*c.Zoom
	sy = c.OriginY + c.ViewportH/2 + (wy-c.Y)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates.
// Points outside the viewport map outside the world, unclamped.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	wx = c.X + (sx-c.OriginX-c.ViewportW/2)/c.Zoom
	wy = c.Y + (sy-c.OriginY-c.ViewportH/2)/c.Zoom
	return wx, wy
}

// ScaleToScreen converts a world length to screen pixels.
func (c *Camera) ScaleToScreen(d float32) float32 {
	return d * c.Zoom
}

// InViewport reports whether a screen point lies inside the viewport.
func (c *Camera) InViewport(sx, sy float32) bool {
	return sx >= c.OriginX && sx < c.OriginX+c.ViewportW &&
		sy >= c.OriginY && sy < c.OriginY+c.ViewportH
}

// IsVisible returns true if the world rectangle (x, y, w, h) overlaps the
// visible area (conservative check for culling).
func (c *Camera) IsVisible(x, y, w, h float32) bool {
	minX, minY, maxX, maxY := c.VisibleWorldBounds()
	return x+w >= minX && x <= maxX && y+h >= minY && y <= maxY
}

// Resize updates the viewport rectangle and recalculates zoom constraints.
func (c *Camera) Resize(originX, originY, viewportW, viewportH float32) {
	c.OriginX = originX
	c.OriginY = originY
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.MinZoom = c.minZoom()
	if c.Zoom < c.MinZoom {
		c.Zoom = c.MinZoom
	}
	c.clampCenter()
}

// Pan moves the camera by the given delta in screen pixels.
func (c *Camera) Pan(dx, dy float32) {
	c.X += dx / c.Zoom
	c.Y += dy / c.Zoom
	c.clampCenter()
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
	c.clampCenter()
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// Reset returns the camera to the default position and zoom.
func (c *Camera) Reset() {
	c.X = c.WorldW / 2
	c.Y = c.WorldH / 2
	c.Zoom = clamp(1.0, c.MinZoom, c.MaxZoom)
}

// VisibleWorldBounds returns the world-coordinate bounds of the visible area.
func (c *Camera) VisibleWorldBounds() (minX, minY, maxX, maxY float32) {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)

	minX = c.X - halfW
	maxX = c.X + halfW
	minY = c.Y - halfH
	maxY = c.Y + halfH
	return
}

// clampCenter keeps the visible area inside the world.
func (c *Camera) clampCenter() {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)
	c.X = clampSpan(c.X, halfW, c.WorldW)
	c.Y = clampSpan(c.Y, halfH, c.WorldH)
}

// clampSpan restricts a center so [center-half, center+half] stays in [0, size].
// A span wider than size is centered.
func clampSpan(center, half, size float32) float32 {
	if 2*half >= size {
		return size / 2
	}
	return clamp(center, half, size-half)
}

// clamp restricts a value to a range.
func clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
