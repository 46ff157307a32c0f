// Package inspector shows the live fields of one selected entity.
package inspector

import (
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/roids/camera"
	"github.com/pthm-cable/roids/components"
	"github.com/pthm-cable/roids/geom"
)

// Panel dimensions
const (
	PanelWidth   = 320
	PanelPadding = 10
	HeaderHeight = 30

	// pickSlop widens colliders so small bullets can be clicked.
	pickSlop = 8
)

// Panel colors
var (
	ColorPanelBg     = rl.Color{R: 30, G: 30, B: 35, A: 240}
	ColorPanelHeader = rl.Color{R: 45, G: 45, B: 55, A: 255}
	ColorPanelBorder = rl.Color{R: 70, G: 70, B: 80, A: 255}
	ColorHeaderText  = rl.Color{R: 255, G: 255, B: 255, A: 255}
	ColorCloseBtn    = rl.Color{R: 180, G: 80, B: 80, A: 255}
	ColorSection     = rl.Color{R: 50, G: 50, B: 60, A: 255}
	ColorSectionText = rl.Color{R: 200, G: 200, B: 220, A: 255}
)

// Inspector manages entity selection and panel rendering. The middle mouse
// button selects; Backspace or the close button clears the selection.
type Inspector struct {
	ref         Ref
	hasSelected bool
	panelX      int32
	panelY      int32

	// MaxHealth scales the health bar per kind. Kinds without an entry
	// have no health to show.
	MaxHealth map[components.Kind]float64
}

// NewInspector creates an inspector docked to the right screen edge.
func NewInspector(screenWidth int32, maxHealth map[components.Kind]float64) *Inspector {
	return &Inspector{
		panelX:    screenWidth - PanelWidth - 10,
		panelY:    10,
		MaxHealth: maxHealth,
	}
}

// Resize re-docks the panel after a window resize.
func (ins *Inspector) Resize(screenWidth int32) {
	ins.panelX = screenWidth - PanelWidth - 10
}

// HandleInput processes selection clicks.
func (ins *Inspector) HandleInput(cam *camera.Camera, src Source) {
	if rl.IsKeyPressed(rl.KeyBackspace) {
		ins.Deselect()
		return
	}
	if !rl.IsMouseButtonPressed(rl.MouseButtonMiddle) {
		return
	}

	mouse := rl.GetMousePosition()
	if ins.hasSelected {
		closeX := float32(ins.panelX + PanelWidth - 25)
		closeY := float32(ins.panelY + 5)
		if mouse.X >= closeX && mouse.X <= closeX+20 && mouse.Y >= closeY && mouse.Y <= closeY+20 {
			ins.Deselect()
			return
		}
		// Clicks inside the panel are not world clicks
		if mouse.X >= float32(ins.panelX) && mouse.X <= float32(ins.panelX+PanelWidth) && mouse.Y >= float32(ins.panelY) {
			return
		}
	}

	wx, wy := cam.ScreenToWorld(mouse.X, mouse.Y)
	if ref, ok := Pick(src, geom.V(float64(wx), float64(wy)), pickSlop/float64(cam.Zoom)); ok {
		ins.Select(ref)
	}
}

// Select makes ref the inspected entity.
func (ins *Inspector) Select(ref Ref) {
	ins.ref = ref
	ins.hasSelected = true
}

// Deselect clears the current selection.
func (ins *Inspector) Deselect() {
	ins.hasSelected = false
}

// Selected returns the inspected entity. A selection whose entity has been
// destroyed or whose slot was reused is cleared.
func (ins *Inspector) Selected(src Source) (*components.Entity, bool) {
	if !ins.hasSelected {
		return nil, false
	}
	e := ins.ref.Resolve(src)
	if e == nil {
		ins.Deselect()
		return nil, false
	}
	return e, true
}

// Fields returns the rows shown for e: its own fields followed by its
// kind-specific state.
func (ins *Inspector) Fields(e *components.Entity) []Field {
	var fields []Field
	for _, f := range ExtractFields(e) {
		if f.Name == "Health" {
			max, ok := ins.MaxHealth[e.Kind]
			if !ok {
				continue
			}
			f.Max = max
		}
		fields = append(fields, f)
	}
	return fields
}

// Draw renders the inspector panel if an entity is selected.
func (ins *Inspector) Draw(src Source) {
	e, ok := ins.Selected(src)
	if !ok {
		return
	}

	fields := ins.Fields(e)
	state := ExtractFields(e.State)

	height := int32(HeaderHeight + 2*PanelPadding + 30)
	for _, f := range fields {
		height += FieldHeight(f)
	}
	if len(state) > 0 {
		height += 32
		for _, f := range state {
			height += FieldHeight(f)
		}
	}

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, height, ColorPanelBg)
	rl.DrawRectangleLinesEx(
		rl.Rectangle{X: float32(ins.panelX), Y: float32(ins.panelY), Width: PanelWidth, Height: float32(height)},
		1,
		ColorPanelBorder,
	)

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, HeaderHeight, ColorPanelHeader)
	rl.DrawText("INSPECTOR", ins.panelX+PanelPadding, ins.panelY+7, 16, ColorHeaderText)

	closeX := ins.panelX + PanelWidth - 25
	closeY := ins.panelY + 5
	rl.DrawRectangle(closeX, closeY, 20, 20, ColorCloseBtn)
	rl.DrawText("X", closeX+6, closeY+3, 14, rl.White)

	x := ins.panelX + PanelPadding
	y := ins.panelY + HeaderHeight + PanelPadding

	rl.DrawText(e.Kind.String()+"  #"+strconv.Itoa(ins.ref.Index), x, y, 16, ColorHeaderText)
	y += 22
	rl.DrawLine(x, y, ins.panelX+PanelWidth-PanelPadding, y, ColorPanelBorder)
	y += 8

	for _, f := range fields {
		y += DrawField(x, y, f)
	}

	if len(state) > 0 {
		y += 4
		ins.drawSectionHeader(x, y, "STATE")
		y += 28
		for _, f := range state {
			y += DrawField(x, y, f)
		}
	}
}

func (ins *Inspector) drawSectionHeader(x, y int32, title string) {
	rl.DrawRectangle(x-2, y-2, PanelWidth-2*PanelPadding+4, 18, ColorSection)
	rl.DrawText(title, x+2, y, 14, ColorSectionText)
}

// DrawSelectionHighlight circles the selected entity in the world view.
func (ins *Inspector) DrawSelectionHighlight(cam *camera.Camera, src Source) {
	e, ok := ins.Selected(src)
	if !ok {
		return
	}
	sx, sy := cam.WorldToScreen(float32(e.Pos.X), float32(e.Pos.Y))
	r := float32(e.ColliderRadius*1.6) * cam.Zoom
	rl.DrawCircleLines(int32(sx), int32(sy), r, rl.Yellow)
}
