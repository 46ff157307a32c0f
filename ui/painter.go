package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Painter draws HUD primitives in one Style. Row helpers return the y of the
// next row.
type Painter struct {
	Style
}

// NewPainter creates a painter in the arcade style.
func NewPainter() *Painter {
	return &Painter{Style: Arcade()}
}

// Box draws a panel with a thin trim.
func (p *Painter) Box(x, y, w, h int32) {
	rl.DrawRectangle(x, y, w, h, p.Panel)
	rl.DrawRectangleLines(x, y, w, h, p.Border)
	// Accent along the top edge
	rl.DrawRectangle(x, y, w, 2, p.Border)
}

// Heading draws a panel title.
func (p *Painter) Heading(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, p.HeadingFont, p.Heading)
	return y + p.Row + 2
}

// Stat draws a label and its value on one row.
func (p *Painter) Stat(x, y int32, label, value string) int32 {
	rl.DrawText(label, x, y, p.Font, p.Label)
	rl.DrawText(value, x+p.LabelWidth, y, p.Font, p.Value)
	return y + p.Row
}

// Meter draws a gauge filled to ratio in fill, with an optional caption to
// its right.
func (p *Painter) Meter(x, y, width int32, label string, ratio float32, fill rl.Color, caption string) int32 {
	rl.DrawText(label, x, y, p.Font, p.Label)

	trackX := x + p.LabelWidth
	trackW := width - p.LabelWidth
	if caption != "" {
		trackW -= rl.MeasureText(caption, p.Font) + 8
	}
	top := y + (p.Font-p.MeterHeight)/2

	rl.DrawRectangle(trackX, top, trackW, p.MeterHeight, p.Track)
	rl.DrawRectangle(trackX, top, int32(float32(trackW)*clamp01(ratio)), p.MeterHeight, fill)
	if caption != "" {
		rl.DrawText(caption, trackX+trackW+8, y, p.Font, p.Value)
	}
	return y + p.Row
}

// HullColor picks the meter colour for a hull ratio.
func (p *Painter) HullColor(ratio float32) rl.Color {
	switch {
	case ratio < 0.3:
		return p.Bad
	case ratio < 0.6:
		return p.Warn
	}
	return p.Good
}

// Banner draws text centred on cx with a drop shadow.
func (p *Painter) Banner(text string, cx, y, size int32, color rl.Color) {
	left := cx - rl.MeasureText(text, size)/2
	rl.DrawText(text, left+2, y+2, size, rl.Color{A: 160})
	rl.DrawText(text, left, y, size, color)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
