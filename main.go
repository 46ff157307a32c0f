package main

import (
	"flag"
	"log/slog"
	"os"
	"slices"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/roids/audio"
	"github.com/pthm-cable/roids/camera"
	"github.com/pthm-cable/roids/components"
	"github.com/pthm-cable/roids/config"
	"github.com/pthm-cable/roids/game"
	"github.com/pthm-cable/roids/inspector"
	"github.com/pthm-cable/roids/renderer"
	"github.com/pthm-cable/roids/telemetry"
	"github.com/pthm-cable/roids/ui"
)

// viewSlack is how far past the outer walls the camera may look, in world units.
const viewSlack = 120

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics, flown by the autopilot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	perfFlag := flag.Bool("perf", false, "Collect step timings and log them periodically")
	mute := flag.Bool("mute", false, "Disable sound")
	assets := flag.String("assets", "assets", "Directory containing sprite sheets")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output dir", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := output.Close(); err != nil {
			slog.Error("failed to close output", "error", err)
		}
	}()
	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	var perf *telemetry.PerfCollector
	if *perfFlag || !*headless {
		perf = telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow)
	}
	tracker := telemetry.NewLevelTracker()

	g := game.New(cfg, rngSeed, game.Options{
		Perf:    perf,
		Tracker: tracker,
		Output:  output,
	})
	defer func() {
		g.Close()
		slog.Info("session_summary", "summary", telemetry.Summarize(tracker.Completed()))
	}()

	if *headless {
		runHeadless(g, rngSeed, *maxTicks)
		return
	}
	runWindowed(g, cfg, rngSeed, *maxTicks, *assets, *mute, perf)
}

// runHeadless steps the game with the autopilot until maxTicks.
func runHeadless(g *game.Game, seed int64, maxTicks int) {
	slog.Info("starting headless simulation", "seed", seed, "max_ticks", maxTicks)
	pilot := game.NewAutopilot()
	start := time.Now()
	for {
		g.Update(pilot.Next(g))

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			slog.Info("max ticks reached",
				"tick", g.Tick(),
				"level", g.Level(),
				"score", g.Score(),
				"elapsed", time.Since(start),
			)
			return
		}
	}
}

// runWindowed opens a window and runs the interactive loop.
func runWindowed(g *game.Game, cfg *config.Config, seed int64, maxTicks int, assets string, mute bool, perf *telemetry.PerfCollector) {
	screenW, screenH := int32(cfg.Screen.Width), int32(cfg.Screen.Height)

	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(screenW, screenH, cfg.Screen.Title)
	defer rl.CloseWindow()
	rl.SetExitKey(0) // Esc pauses instead of quitting
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	atlas := renderer.NewAtlas()
	atlas.Load(assets)
	defer atlas.Unload()

	var player *audio.Player
	if cfg.Audio.Enabled && !mute {
		p, err := audio.New(cfg.Audio.Volume, cfg.Audio.MaxExplosions)
		if err != nil {
			slog.Warn("audio unavailable", "error", err)
		} else {
			player = p
		}
	}

	cam := camera.New(float32(screenW), float32(screenH),
		float32(cfg.Camera.Zoom), float32(cfg.Camera.MinZoom), float32(cfg.Camera.MaxZoom))
	canvas := renderer.NewCanvas(cam, atlas)
	background := renderer.NewBackgroundRenderer(screenW, screenH, 6, 8, 16, seed)

	hud := ui.NewHUD()
	menu := ui.NewPauseMenu(float32(player.Volume()))
	overlays := ui.NewOverlays()
	perfPanel := ui.NewPerfPanel(screenW-300, 40)
	legend := ui.Legend(slices.Concat(ui.Bindings, ui.OverlayBindings()))
	insp := inspector.NewInspector(screenW, map[components.Kind]float64{
		components.KindShip:   cfg.Ship.MaxHealth,
		components.KindTurret: cfg.Turret.MaxHealth,
	})

	// The view may show a strip beyond the outer walls
	lo, hi := cfg.Derived.BoundsMin, cfg.Derived.BoundsMax
	viewMin := [2]float32{float32(lo.X) - viewSlack, float32(lo.Y) - viewSlack}
	viewMax := [2]float32{float32(hi.X) + viewSlack, float32(hi.Y) + viewSlack}

	lastTick := g.Tick()
	for !rl.WindowShouldClose() {
		perf.RecordFrame()

		// Input
		overlays.Poll()
		ui.PollZoom(cam)
		insp.HandleInput(cam, g)
		g.Update(ui.PollInput(cam))
		if g.Tick() != lastTick {
			player.PlayEvents(g.Events())
			lastTick = g.Tick()
		}

		ship := g.Ship()
		if ship.Enabled {
			cam.Follow(float32(ship.Pos.X), float32(ship.Pos.Y), rl.GetFrameTime())
		}
		cam.Confine(viewMin[0], viewMin[1], viewMax[0], viewMax[1])

		// Draw
		rl.BeginDrawing()
		background.Draw(cam)
		canvas.Begin()
		g.Render(canvas)

		if overlays.Enabled(ui.OverlayColliders) {
			renderer.DrawColliders(cam, g.Collected())
		}
		if overlays.Enabled(ui.OverlayVelocity) {
			renderer.DrawVelocities(cam, g.Collected())
		}
		insp.DrawSelectionHighlight(cam, g)

		hud.Draw(hudData(g, cfg), screenW, screenH)
		if overlays.Enabled(ui.OverlayControls) {
			hud.DrawControls(screenH, legend)
		}
		if overlays.Enabled(ui.OverlayPerf) {
			perfPanel.Draw(perf.Stats(), canvas.Drawn())
		}
		insp.Draw(g)

		quit := false
		if g.Paused() {
			switch menu.Draw(screenW, screenH) {
			case ui.MenuResume:
				g.SetPaused(false)
			case ui.MenuRestart:
				g.Reset()
				cam.Reset(float32(cfg.Camera.Zoom))
				insp.Deselect()
				lastTick = g.Tick()
			case ui.MenuQuit:
				quit = true
			}
			player.SetVolume(float64(menu.Volume))
		}
		rl.EndDrawing()

		if quit || (maxTicks > 0 && int(g.Tick()) >= maxTicks) {
			break
		}
	}
}

// hudData collects the HUD values for the current frame.
func hudData(g *game.Game, cfg *config.Config) ui.HUDData {
	ship := g.Ship()
	st := ship.Ship()
	data := ui.HUDData{
		Score:     g.Score(),
		Level:     g.Level(),
		Remaining: g.Remaining(),
		Health:    float32(ship.Health),
		MaxHealth: float32(cfg.Ship.MaxHealth),
		Tick:      g.Tick(),
		FPS:       rl.GetFPS(),
		Paused:    g.Paused(),
	}
	if st.Charging && cfg.ChargedBullet.ChargeTime > 0 {
		data.Charge = float32((g.Now() - st.ChargeStart) / cfg.ChargedBullet.ChargeTime)
	}
	if !ship.Enabled {
		data.Respawn = float32(max(st.RespawnAt-g.Now(), 0))
	}
	return data
}
