// Package renderer draws the game state with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/roids/camera"
	"github.com/pthm-cable/roids/components"
	"github.com/pthm-cable/roids/geom"
)

// Canvas turns world-space draw calls into raylib screen-space calls
// through a camera. It implements game.Canvas.
type Canvas struct {
	cam   *camera.Camera
	atlas *Atlas
	drawn int
}

// NewCanvas creates a canvas drawing through cam with textures from atlas.
func NewCanvas(cam *camera.Camera, atlas *Atlas) *Canvas {
	return &Canvas{cam: cam, atlas: atlas}
}

// Begin resets per-frame counters.
func (c *Canvas) Begin() {
	c.drawn = 0
}

// Drawn returns the number of draw calls that survived culling this frame.
func (c *Canvas) Drawn() int {
	return c.drawn
}

// Sprite draws the src sub-rectangle (normalized texture coordinates) of tex
// centred on pos, size world units across, rotated so the sheet's up axis
// points along facing.
func (c *Canvas) Sprite(tex components.Texture, src geom.Rect, pos geom.Vec, size float64, facing geom.Vec, tint components.Color) {
	wx, wy := float32(pos.X), float32(pos.Y)
	half := float32(size) / 2
	if !c.cam.IsVisible(wx, wy, half*1.5) {
		return
	}
	t, ok := c.atlas.Texture(tex)
	if !ok {
		c.Circle(pos, size/2, tint)
		return
	}
	c.drawn++

	sx, sy := c.cam.WorldToScreen(wx, wy)
	w := float32(size) * c.cam.Zoom
	tw, th := float32(t.Width), float32(t.Height)
	srcRect := rl.Rectangle{
		X:      float32(src.Pos.X) * tw,
		Y:      float32(src.Pos.Y) * th,
		Width:  float32(src.Size.X) * tw,
		Height: float32(src.Size.Y) * th,
	}
	h := w
	if srcRect.Width > 0 {
		h = w * srcRect.Height / srcRect.Width
	}
	dstRect := rl.Rectangle{X: sx, Y: sy, Width: w, Height: h}

	// Screen rotation is clockwise with y down; sheets face world up.
	rotation := float32(90 - geom.AngleDeg(facing))
	rl.DrawTexturePro(t, srcRect, dstRect, rl.Vector2{X: w / 2, Y: h / 2}, rotation, toRL(tint))
}

// Circle draws a filled circle.
func (c *Canvas) Circle(pos geom.Vec, radius float64, color components.Color) {
	wx, wy, r := float32(pos.X), float32(pos.Y), float32(radius)
	if !c.cam.IsVisible(wx, wy, r) {
		return
	}
	c.drawn++
	sx, sy := c.cam.WorldToScreen(wx, wy)
	size := r * c.cam.Zoom
	if size < 0.5 {
		size = 0.5
	}
	rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, size, toRL(color))
}

// Line draws a segment between two world points.
func (c *Canvas) Line(a, b geom.Vec, thickness float64, color components.Color) {
	c.drawn++
	ax, ay := c.cam.WorldToScreen(float32(a.X), float32(a.Y))
	bx, by := c.cam.WorldToScreen(float32(b.X), float32(b.Y))
	rl.DrawLineEx(rl.Vector2{X: ax, Y: ay}, rl.Vector2{X: bx, Y: by}, float32(thickness)*c.cam.Zoom, toRL(color))
}

func toRL(c components.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
