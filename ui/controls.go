package ui

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/roids/camera"
	"github.com/pthm-cable/roids/game"
	"github.com/pthm-cable/roids/geom"
)

// Binding is one entry of the control legend.
type Binding struct {
	Keys   string
	Action string
}

// Bindings lists the gameplay controls in legend order.
var Bindings = []Binding{
	{"W/Up", "thrust"},
	{"A/D", "strafe"},
	{"S/Down", "brake"},
	{"Shift", "boost"},
	{"LMB", "fire"},
	{"RMB", "charge"},
	{"Wheel", "zoom"},
	{"MMB", "inspect"},
	{"Esc/P", "pause"},
}

// Legend formats bindings as a single line.
func Legend(bindings []Binding) string {
	parts := make([]string, len(bindings))
	for i, b := range bindings {
		parts[i] = "[" + b.Keys + "] " + b.Action
	}
	return strings.Join(parts, "  ")
}

// PollInput reads the keyboard and mouse into a game input. The mouse
// position is converted to world space through cam to aim the ship.
func PollInput(cam *camera.Camera) game.Input {
	mouse := rl.GetMousePosition()
	wx, wy := cam.ScreenToWorld(mouse.X, mouse.Y)

	return game.Input{
		Thrust:      rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp),
		StrafeLeft:  rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft),
		StrafeRight: rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight),
		Brake:       rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown),
		Boost:       rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift),
		Aim:         geom.V(float64(wx), float64(wy)),
		HasAim:      true,
		Fire:        rl.IsMouseButtonDown(rl.MouseButtonLeft),
		Charge:      rl.IsMouseButtonDown(rl.MouseButtonRight),
		Pause:       rl.IsKeyPressed(rl.KeyEscape) || rl.IsKeyPressed(rl.KeyP),
	}
}

// PollZoom applies mouse wheel movement to the camera zoom, anchored on
// the cursor.
func PollZoom(cam *camera.Camera) {
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		mouse := rl.GetMousePosition()
		cam.ZoomAt(mouse.X, mouse.Y, 1+wheel*0.1)
	}
}
