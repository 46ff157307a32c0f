package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Overlay is a toggleable debug or help layer. Values are bit flags so a
// set of overlays fits in one Overlay.
type Overlay uint8

const (
	OverlayColliders Overlay = 1 << iota // Collider circles of collected entities
	OverlayVelocity                      // Velocity vectors
	OverlayPerf                          // Step timing panel
	OverlayControls                      // Control legend
)

type overlayBinding struct {
	overlay Overlay
	key     int32
	label   string
	name    string
}

// overlayBindings lists every overlay in legend order.
var overlayBindings = [...]overlayBinding{
	{OverlayColliders, rl.KeyC, "C", "colliders"},
	{OverlayVelocity, rl.KeyV, "V", "velocity"},
	{OverlayPerf, rl.KeyF3, "F3", "perf"},
	{OverlayControls, rl.KeyH, "H", "help"},
}

func (o Overlay) String() string {
	for _, b := range overlayBindings {
		if b.overlay == o {
			return b.name
		}
	}
	return "unknown"
}

// Overlays is the set of enabled overlays. The control legend starts on.
type Overlays struct {
	on Overlay
}

// NewOverlays returns the startup overlay set.
func NewOverlays() *Overlays {
	return &Overlays{on: OverlayControls}
}

// Toggle flips o and reports its new state. Unknown overlays stay off.
func (s *Overlays) Toggle(o Overlay) bool {
	if o.String() == "unknown" {
		return false
	}
	s.on ^= o
	return s.Enabled(o)
}

// Set turns o on or off.
func (s *Overlays) Set(o Overlay, enabled bool) {
	if enabled {
		s.on |= o
	} else {
		s.on &^= o
	}
}

// Enabled reports whether o is on.
func (s *Overlays) Enabled(o Overlay) bool { return s.on&o != 0 }

// Press toggles the overlay bound to key and returns it.
func (s *Overlays) Press(key int32) (Overlay, bool) {
	for _, b := range overlayBindings {
		if b.key == key {
			s.Toggle(b.overlay)
			return b.overlay, true
		}
	}
	return 0, false
}

// Poll toggles every overlay whose key went down this frame.
func (s *Overlays) Poll() {
	for _, b := range overlayBindings {
		if rl.IsKeyPressed(b.key) {
			s.Toggle(b.overlay)
		}
	}
}

// Active returns the enabled overlays in legend order.
func (s *Overlays) Active() []Overlay {
	var out []Overlay
	for _, b := range overlayBindings {
		if s.Enabled(b.overlay) {
			out = append(out, b.overlay)
		}
	}
	return out
}

// OverlayBindings returns the overlay keys as legend entries.
func OverlayBindings() []Binding {
	out := make([]Binding, len(overlayBindings))
	for i, b := range overlayBindings {
		out[i] = Binding{Keys: b.label, Action: b.name}
	}
	return out
}
