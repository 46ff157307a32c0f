package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// MenuAction is the choice made in the pause menu this frame.
type MenuAction int

const (
	MenuNone MenuAction = iota
	MenuResume
	MenuRestart
	MenuQuit
)

// PauseMenu is the immediate-mode menu shown while the game is paused.
type PauseMenu struct {
	paint  *Painter
	Volume float32
}

// NewPauseMenu creates a pause menu with the given starting volume.
func NewPauseMenu(volume float32) *PauseMenu {
	return &PauseMenu{paint: NewPainter(), Volume: volume}
}

// Draw renders the menu centred on the screen and returns the button
// pressed, if any. The volume slider updates Volume in place.
func (m *PauseMenu) Draw(screenW, screenH int32) MenuAction {
	const w, h = 280, 230
	x, y := Place(Centre, w, h, screenW, screenH, 0)

	rl.DrawRectangle(0, 0, screenW, screenH, rl.Color{R: 0, G: 0, B: 0, A: 140})
	m.paint.Box(x, y, w, h)
	m.paint.Banner("Paused", x+w/2, y+12, 24, m.paint.Heading)

	fx, fy := float32(x+40), float32(y+50)
	action := MenuNone
	if gui.Button(rl.Rectangle{X: fx, Y: fy, Width: 200, Height: 30}, "Resume") {
		action = MenuResume
	}
	if gui.Button(rl.Rectangle{X: fx, Y: fy + 40, Width: 200, Height: 30}, "Restart") {
		action = MenuRestart
	}
	if gui.Button(rl.Rectangle{X: fx, Y: fy + 80, Width: 200, Height: 30}, "Quit") {
		action = MenuQuit
	}

	m.Volume = gui.SliderBar(
		rl.Rectangle{X: fx + 50, Y: fy + 130, Width: 150, Height: 16},
		"Volume", "",
		m.Volume, 0, 1,
	)
	return action
}
