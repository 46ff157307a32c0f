package inspector

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Widget colors
var (
	ColorBarBg       = rl.Color{R: 40, G: 40, B: 40, A: 255}
	ColorBarFill     = rl.Color{R: 100, G: 180, B: 100, A: 255}
	ColorBarLow      = rl.Color{R: 180, G: 80, B: 80, A: 255}
	ColorText        = rl.Color{R: 220, G: 220, B: 220, A: 255}
	ColorTextDim     = rl.Color{R: 150, G: 150, B: 150, A: 255}
	ColorAngleBg     = rl.Color{R: 50, G: 50, B: 60, A: 255}
	ColorAngleNeedle = rl.Color{R: 255, G: 200, B: 100, A: 255}
	ColorBoolOn      = rl.Color{R: 100, G: 200, B: 100, A: 255}
	ColorBoolOff     = rl.Color{R: 80, G: 80, B: 80, A: 255}
)

// Row heights returned by the widgets
const (
	labelHeight = 20
	barHeight   = 18
	angleHeight = 44
	boolHeight  = 18
)

// DrawLabel renders a text value.
func DrawLabel(x, y int32, name string, value any, format string) int32 {
	text := FormatValue(value, format)
	rl.DrawText(name, x, y, 14, ColorTextDim)
	rl.DrawText(text, x+110, y, 14, ColorText)
	return labelHeight
}

// DrawBar renders a horizontal bar of value against full scale max.
func DrawBar(x, y int32, name string, value, max float64) int32 {
	ratio := 0.0
	if max > 0 {
		ratio = clamp01(value / max)
	}
	barWidth := int32(120)

	rl.DrawText(name, x, y, 14, ColorTextDim)

	barX := x + 110
	rl.DrawRectangle(barX, y, barWidth, 14, ColorBarBg)
	fillColor := ColorBarFill
	if ratio < 0.3 {
		fillColor = ColorBarLow
	}
	rl.DrawRectangle(barX, y, int32(float64(barWidth)*ratio), 14, fillColor)
	rl.DrawText(fmt.Sprintf("%.0f", value), barX+barWidth+5, y, 14, ColorTextDim)

	return barHeight
}

// DrawAngle renders a compass-style heading indicator. degrees follow the
// world convention: counter-clockwise from +X with y up.
func DrawAngle(x, y int32, name string, degrees float64) int32 {
	size := int32(40)
	centerX := x + 110 + size/2
	centerY := y + size/2

	rl.DrawText(name, x, y+size/2-7, 14, ColorTextDim)

	rl.DrawCircle(centerX, centerY, float32(size/2), ColorAngleBg)
	rl.DrawCircleLines(centerX, centerY, float32(size/2), ColorTextDim)

	// Screen y points down
	s, c := math.Sincos(degrees * math.Pi / 180)
	needleLen := float64(size/2 - 4)
	rl.DrawLineEx(
		rl.Vector2{X: float32(centerX), Y: float32(centerY)},
		rl.Vector2{X: float32(float64(centerX) + needleLen*c), Y: float32(float64(centerY) - needleLen*s)},
		2,
		ColorAngleNeedle,
	)
	rl.DrawText(fmt.Sprintf("%.0f deg", degrees), x+110+size+8, y+size/2-7, 14, ColorTextDim)

	return angleHeight
}

// DrawBool renders an on/off indicator.
func DrawBool(x, y int32, name string, value bool) int32 {
	rl.DrawText(name, x, y, 14, ColorTextDim)

	indicatorX := x + 110
	indicatorSize := int32(14)
	color := ColorBoolOff
	text := "OFF"
	if value {
		color = ColorBoolOn
		text = "ON"
	}
	rl.DrawRectangle(indicatorX, y, indicatorSize, indicatorSize, color)
	rl.DrawText(text, indicatorX+indicatorSize+5, y, 14, color)

	return boolHeight
}

// DrawField renders a field using its widget type.
func DrawField(x, y int32, field Field) int32 {
	switch field.Widget {
	case WidgetBar:
		if v, ok := Number(field.Value); ok {
			return DrawBar(x, y, field.Name, v, field.Max)
		}
	case WidgetAngle:
		if v, ok := Heading(field.Value); ok {
			return DrawAngle(x, y, field.Name, v)
		}
	case WidgetBool:
		if v, ok := field.Value.(bool); ok {
			return DrawBool(x, y, field.Name, v)
		}
	}
	return DrawLabel(x, y, field.Name, field.Value, field.Format)
}

// FieldHeight returns the row height DrawField uses for field.
func FieldHeight(field Field) int32 {
	switch field.Widget {
	case WidgetBar:
		if _, ok := Number(field.Value); ok {
			return barHeight
		}
	case WidgetAngle:
		if _, ok := Heading(field.Value); ok {
			return angleHeight
		}
	case WidgetBool:
		if _, ok := field.Value.(bool); ok {
			return boolHeight
		}
	}
	return labelHeight
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
