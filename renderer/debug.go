package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/roids/camera"
	"github.com/pthm-cable/roids/components"
)

var (
	colliderColor = rl.Color{R: 80, G: 255, B: 120, A: 160}
	velocityColor = rl.Color{R: 255, G: 220, B: 80, A: 200}
)

// DrawColliders outlines the collider circle of each entity.
func DrawColliders(cam *camera.Camera, entities []*components.Entity) {
	for _, e := range entities {
		wx, wy, r := float32(e.Pos.X), float32(e.Pos.Y), float32(e.ColliderRadius)
		if !cam.IsVisible(wx, wy, r) {
			continue
		}
		sx, sy := cam.WorldToScreen(wx, wy)
		rl.DrawCircleLines(int32(sx), int32(sy), r*cam.Zoom, colliderColor)
	}
}

// DrawVelocities draws each entity's velocity as a line covering a quarter
// second of travel.
func DrawVelocities(cam *camera.Camera, entities []*components.Entity) {
	const horizon = 0.25
	for _, e := range entities {
		wx, wy := float32(e.Pos.X), float32(e.Pos.Y)
		if !cam.IsVisible(wx, wy, float32(e.ColliderRadius)) {
			continue
		}
		ax, ay := cam.WorldToScreen(wx, wy)
		bx, by := cam.WorldToScreen(wx+float32(e.Vel.X*horizon), wy+float32(e.Vel.Y*horizon))
		rl.DrawLineV(rl.Vector2{X: ax, Y: ay}, rl.Vector2{X: bx, Y: by}, velocityColor)
	}
}
