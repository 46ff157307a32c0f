// Package ui draws the HUD, debug overlays and pause menu, and turns
// keyboard and mouse state into game input.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Palette is the HUD colour scheme.
type Palette struct {
	Panel   rl.Color
	Border  rl.Color
	Heading rl.Color
	Label   rl.Color
	Value   rl.Color
	Track   rl.Color // Unfilled part of a meter
	Good    rl.Color
	Warn    rl.Color
	Bad     rl.Color
	Charge  rl.Color
	Dim     rl.Color
}

// Metrics are HUD sizes in pixels.
type Metrics struct {
	Pad         int32
	Row         int32 // Height of one stat line
	LabelWidth  int32
	MeterHeight int32
	Font        int32
	HeadingFont int32
}

// Style bundles the colours and sizes every HUD element shares.
type Style struct {
	Palette
	Metrics
}

// Arcade is the default cockpit style: dark glass panels with cyan trim.
func Arcade() Style {
	return Style{
		Palette: Palette{
			Panel:   rl.Color{R: 8, G: 12, B: 22, A: 210},
			Border:  rl.Color{R: 40, G: 170, B: 200, A: 180},
			Heading: rl.Color{R: 120, G: 230, B: 255, A: 255},
			Label:   rl.Color{R: 150, G: 170, B: 190, A: 255},
			Value:   rl.RayWhite,
			Track:   rl.Color{R: 30, G: 36, B: 48, A: 255},
			Good:    rl.Color{R: 90, G: 220, B: 140, A: 255},
			Warn:    rl.Color{R: 240, G: 190, B: 70, A: 255},
			Bad:     rl.Color{R: 240, G: 80, B: 70, A: 255},
			Charge:  rl.Color{R: 170, G: 120, B: 255, A: 255},
			Dim:     rl.Color{R: 110, G: 120, B: 135, A: 255},
		},
		Metrics: Metrics{
			Pad:         10,
			Row:         20,
			LabelWidth:  64,
			MeterHeight: 10,
			Font:        14,
			HeadingFont: 16,
		},
	}
}

// Corner names a screen position a panel can be docked to.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
	Centre
)

// Place returns the top-left pixel of a w x h panel docked at corner,
// inset by margin.
func Place(corner Corner, w, h, screenW, screenH, margin int32) (x, y int32) {
	switch corner {
	case TopRight:
		return screenW - w - margin, margin
	case BottomLeft:
		return margin, screenH - h - margin
	case BottomRight:
		return screenW - w - margin, screenH - h - margin
	case Centre:
		return (screenW - w) / 2, (screenH - h) / 2
	}
	return margin, margin
}
