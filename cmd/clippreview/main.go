// Animation clip preview tool - plays the configured sprite-sheet clips with
// sliders for playback rate and scale.
//
// Usage: go run ./cmd/clippreview -assets assets
package main

import (
	"flag"
	"fmt"
	"log"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/roids/anim"
	"github.com/pthm-cable/roids/camera"
	"github.com/pthm-cable/roids/components"
	"github.com/pthm-cable/roids/config"
	"github.com/pthm-cable/roids/geom"
	"github.com/pthm-cable/roids/renderer"
)

const (
	windowWidth  = 1000
	windowHeight = 640
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30
)

// clipEntry is one previewable clip.
type clipEntry struct {
	name    string
	yamlKey string
	texture components.Texture
	cfg     config.ClipConfig
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	assets := flag.String("assets", "assets", "Directory containing sprite sheets")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	clips := []clipEntry{
		{"Small explosion", "explosion_small", components.TexExplosionSmall, cfg.Animations.ExplosionSmall},
		{"Big explosion", "explosion_big", components.TexExplosionBig, cfg.Animations.ExplosionBig},
		{"Charged explosion", "explosion_charged", components.TexExplosionCharged, cfg.Animations.ExplosionCharged},
		{"Ship exhaust", "ship_exhaust", components.TexShipExhaust, cfg.Animations.ShipExhaust},
	}

	rl.InitWindow(windowWidth, windowHeight, "Clip Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	atlas := renderer.NewAtlas()
	atlas.Load(*assets)
	defer atlas.Unload()

	// World origin at the centre of the preview box, 1 unit per pixel
	cam := camera.New(previewSize, previewSize, 1, 1, 1)
	cam.X, cam.Y = -10, 10
	canvas := renderer.NewCanvas(cam, atlas)

	selected := 0
	var now float64
	entry := clips[selected]
	clip := newClip(entry.cfg)
	paused := false

	for !rl.WindowShouldClose() {
		if !paused {
			now += float64(rl.GetFrameTime())
		}
		index, finished := clip.Frame(now)
		if finished {
			clip.Start(now + 0.5) // Short gap before replaying one-shot clips
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Color{R: 20, G: 22, B: 30, A: 255})

		// Preview
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)
		canvas.Begin()
		size := 128 * entry.cfg.Scale
		canvas.Sprite(entry.texture, clip.Rect(now), geom.Vec{}, size, geom.Up, components.White)

		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("Frame: %d/%d  Finished: %v", index+1, len(clip.Sheet.Frames), finished), 15, statsY, 16, rl.LightGray)
		rl.DrawText(fmt.Sprintf("Duration: %.2fs  Time: %.2f", clip.Duration(), now-clip.StartTime), 15, statsY+20, 16, rl.LightGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText(entry.name, int32(panelX), int32(panelY), 20, rl.RayWhite)
		panelY += 35

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "< Prev") {
			selected = (selected + len(clips) - 1) % len(clips)
			entry = clips[selected]
			clip = newClip(entry.cfg)
			clip.Start(now)
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Next >") {
			selected = (selected + 1) % len(clips)
			entry = clips[selected]
			clip = newClip(entry.cfg)
			clip.Start(now)
		}
		panelY += 45

		// FPS slider
		rl.DrawText("Frames per second", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newFPS := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"1", "60",
			float32(entry.cfg.FPS), 1, 60,
		)
		rl.DrawText(fmt.Sprintf("%.0f", entry.cfg.FPS), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.LightGray)
		if float64(newFPS) != entry.cfg.FPS {
			entry.cfg.FPS = float64(newFPS)
			clip = newClip(entry.cfg)
			clip.Start(now)
		}
		panelY += 35

		// Scale slider
		rl.DrawText("Scale", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		entry.cfg.Scale = float64(gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0.2", "3.5",
			float32(entry.cfg.Scale), 0.2, 3.5,
		))
		rl.DrawText(fmt.Sprintf("%.1f", entry.cfg.Scale), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.LightGray)
		panelY += 40

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(entry.cfg.Loop, "Loop: on", "Loop: off")) {
			entry.cfg.Loop = !entry.cfg.Loop
			clip = newClip(entry.cfg)
			clip.Start(now)
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, toggleText(paused, "Play", "Pause")) {
			paused = !paused
		}
		panelY += 40
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 250, Height: 30}, "Restart") {
			clip.Start(now)
		}
		panelY += 55

		// Output YAML
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.LightGray)
		panelY += 25
		for _, line := range clipYAML(entry) {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.DarkGray)
		if rl.IsKeyPressed(rl.KeyC) {
			text := ""
			for _, line := range clipYAML(entry) {
				text += line + "\n"
			}
			rl.SetClipboardText(text)
		}

		rl.EndDrawing()
		clips[selected] = entry
	}
}

func newClip(c config.ClipConfig) anim.Clip {
	return anim.NewClip(anim.NewSheet(c.Columns, c.Rows, c.Frames), c.FPS, c.Loop)
}

func clipYAML(e clipEntry) []string {
	return []string{
		"animations:",
		fmt.Sprintf("  %s:", e.yamlKey),
		fmt.Sprintf("    columns: %d", e.cfg.Columns),
		fmt.Sprintf("    rows: %d", e.cfg.Rows),
		fmt.Sprintf("    frames: %d", e.cfg.Frames),
		fmt.Sprintf("    fps: %.0f", e.cfg.FPS),
		fmt.Sprintf("    loop: %v", e.cfg.Loop),
		fmt.Sprintf("    scale: %.1f", e.cfg.Scale),
	}
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}
