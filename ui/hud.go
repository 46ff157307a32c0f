package ui

import (
	"fmt"
	"strconv"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/roids/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Score     int
	Level     int
	Remaining int
	Health    float32
	MaxHealth float32
	Charge    float32 // Charged-shot progress in [0, 1]; 0 when not charging
	Respawn   float32 // Seconds until respawn; 0 while the ship is alive
	Tick      int64
	FPS       int32
	Paused    bool
}

// HUD renders the cockpit panel, status banners and control legend.
type HUD struct {
	paint *Painter
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{paint: NewPainter()}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData, screenW, screenH int32) {
	p := h.paint
	const w, rows = 260, 4
	height := rows*p.Row + 2*p.Pad
	x, y := Place(TopLeft, w, height, screenW, screenH, 10)
	p.Box(x, y, w, height)

	cx, cy := x+p.Pad, y+p.Pad
	inner := int32(w) - 2*p.Pad
	cy = p.Stat(cx, cy, "Score", strconv.Itoa(data.Score))
	cy = p.Stat(cx, cy, "Level", fmt.Sprintf("%d  (%d left)", data.Level, data.Remaining))

	hull := float32(0)
	if data.MaxHealth > 0 {
		hull = data.Health / data.MaxHealth
	}
	cy = p.Meter(cx, cy, inner, "Hull", hull, p.HullColor(hull), fmt.Sprintf("%.0f/%.0f", data.Health, data.MaxHealth))

	chargeColor := p.Charge
	if data.Charge >= 1 {
		chargeColor = p.Value
	}
	p.Meter(cx, cy, inner, "Charge", data.Charge, chargeColor, "")

	stamp := fmt.Sprintf("FPS %d  tick %d", data.FPS, data.Tick)
	rl.DrawText(stamp, screenW-rl.MeasureText(stamp, p.Font)-10, 10, p.Font, p.Dim)

	if data.Respawn > 0 {
		p.Banner(fmt.Sprintf("Respawning in %.1f", data.Respawn), screenW/2, screenH/3, 28, p.Warn)
	}
	if data.Paused {
		p.Banner("PAUSED", screenW/2, 40, 32, p.Heading)
	}
}

// DrawControls renders the control legend along the bottom edge.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, h.paint.Font, h.paint.Dim)
}

// PerfPanel renders the per-phase step timings.
type PerfPanel struct {
	paint *Painter
	x, y  int32
}

// NewPerfPanel creates a performance panel with its top-left corner at x, y.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{paint: NewPainter(), x: x, y: y}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel. Phases above 20% and 40% of the
// step are highlighted.
func (p *PerfPanel) Draw(stats telemetry.PerfStats, drawn int) {
	paint := p.paint
	phases := telemetry.Phases()
	height := int32(len(phases)+4) * 14
	paint.Box(p.x-6, p.y-6, 300, height+12)

	y := paint.Heading(p.x, p.y, "Step Performance")
	rl.DrawText(fmt.Sprintf("Tick: %s  (%.0f/s)", stats.AvgTick.Round(time.Microsecond), stats.TicksPerSecond), p.x, y, 14, paint.Warn)
	y += 16

	for _, ph := range phases {
		pct := stats.PhasePct[ph]
		color := paint.Label
		switch {
		case pct > 40:
			color = paint.Bad
		case pct > 20:
			color = paint.Warn
		}
		rl.DrawText(fmt.Sprintf("%-10s %8s %5.1f%%", ph, stats.PhaseAvg[ph].Round(time.Microsecond), pct), p.x, y, 12, color)
		y += 14
	}
	rl.DrawText(fmt.Sprintf("Draw calls: %d", drawn), p.x, y, 12, paint.Label)
}
