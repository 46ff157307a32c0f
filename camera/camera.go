// Package camera provides a 2D camera for viewport control.
package camera

import "math"

// Camera controls the viewport into the level. World space is y-up with
// the origin at the level centre; screen space is y-down in pixels.
type Camera struct {
	// Position is the camera center in world coordinates
	X, Y float32

	// Zoom level (1.0 = 1:1, 2.0 = 2x magnification)
	Zoom float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Zoom constraints
	MinZoom, MaxZoom float32

	// Follow smoothing: fraction of the remaining distance closed per second
	Stiffness float32
}

// New creates a camera centered on the world origin.
func New(viewportW, viewportH, zoom, minZoom, maxZoom float32) *Camera {
	c := &Camera{
		ViewportW: viewportW,
		ViewportH: viewportH,
		MinZoom:   minZoom,
		MaxZoom:   maxZoom,
		Stiffness: 6,
	}
	c.SetZoom(zoom)
	return c
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	sx = c.ViewportW/2 + (wx-c.X)*c.Zoom
	sy = c.ViewportH/2 - (wy-c.Y)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	wx = c.X + (sx-c.ViewportW/2)/c.Zoom
	wy = c.Y - (sy-c.ViewportH/2)/c.Zoom
	return wx, wy
}

// IsVisible reports whether a circle at (wx, wy) could overlap the view.
// The test is conservative and used for culling.
func (c *Camera) IsVisible(wx, wy, radius float32) bool {
	minX, minY, maxX, maxY := c.VisibleWorldBounds()
	return wx+radius >= minX && wx-radius <= maxX && wy+radius >= minY && wy-radius <= maxY
}

// Follow moves the camera toward (wx, wy), closing the gap exponentially.
// A zero dt snaps to the target.
func (c *Camera) Follow(wx, wy, dt float32) {
	if dt <= 0 || c.Stiffness <= 0 {
		c.X, c.Y = wx, wy
		return
	}
	k := 1 - float32(math.Exp(float64(-c.Stiffness*dt)))
	c.X += (wx - c.X) * k
	c.Y += (wy - c.Y) * k
}

// Confine keeps the view inside the world rectangle. An axis where the
// view is larger than the rectangle is centred on it instead.
func (c *Camera) Confine(minX, minY, maxX, maxY float32) {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)
	c.X = confineAxis(c.X, halfW, minX, maxX)
	c.Y = confineAxis(c.Y, halfH, minY, maxY)
}

func confineAxis(v, half, lo, hi float32) float32 {
	if hi-lo <= 2*half {
		return (lo + hi) / 2
	}
	return min(max(v, lo+half), hi-half)
}

// Resize updates viewport dimensions.
func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW, c.ViewportH = viewportW, viewportH
}

// Pan moves the camera by a drag of (dx, dy) screen pixels.
func (c *Camera) Pan(dx, dy float32) {
	c.X += dx / c.Zoom
	c.Y -= dy / c.Zoom
}

// SetZoom sets the zoom level, clamped to the camera's range.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = min(max(zoom, c.MinZoom), c.MaxZoom)
}

// ZoomBy multiplies the current zoom by factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// ZoomAt zooms by factor while keeping the world point under the screen
// position (sx, sy) in place.
func (c *Camera) ZoomAt(sx, sy, factor float32) {
	wx, wy := c.ScreenToWorld(sx, sy)
	c.ZoomBy(factor)
	ax, ay := c.ScreenToWorld(sx, sy)
	c.X += wx - ax
	c.Y += wy - ay
}

// Reset returns the camera to the origin at the given zoom.
func (c *Camera) Reset(zoom float32) {
	c.X, c.Y = 0, 0
	c.SetZoom(zoom)
}

// VisibleWorldBounds returns the world rectangle covered by the view.
func (c *Camera) VisibleWorldBounds() (minX, minY, maxX, maxY float32) {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)
	return c.X - halfW, c.Y - halfH, c.X + halfW, c.Y + halfH
}
