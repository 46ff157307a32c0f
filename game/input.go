package game

import (
	"math"

	"github.com/pthm-cable/roids/components"
	"github.com/pthm-cable/roids/geom"
)

// Input is the player's controls for one frame. Held controls are level
// states; Pause is true only on the frame the pause key went down.
type Input struct {
	Thrust      bool
	StrafeLeft  bool
	StrafeRight bool
	Brake       bool
	Boost       bool

	Aim    geom.Vec // World position the ship turns to face
	HasAim bool

	Fire   bool // Held: fires at the bullet cooldown rate
	Charge bool // Held: charges a shot, released when charged fires it

	Pause bool
}

// Autopilot produces scripted input for headless runs: it faces the nearest
// asteroid, fires continuously, charges a shot every few seconds and thrusts
// toward targets that are far away.
type Autopilot struct {
	ChargeEvery float64 // Seconds between charged shots
	lastCharge  float64
}

// NewAutopilot returns an autopilot with default timing.
func NewAutopilot() *Autopilot {
	return &Autopilot{ChargeEvery: 4}
}

// Next returns the input for the coming step.
func (a *Autopilot) Next(g *Game) Input {
	ship := g.Ship()
	if !ship.Enabled {
		return Input{}
	}
	target, dist := g.nearest(ship.Pos, components.KindAsteroid)
	if dist == math.Inf(1) {
		target, dist = g.nearest(ship.Pos, components.KindTurret)
	}
	in := Input{Fire: true}
	if dist < math.Inf(1) {
		in.Aim, in.HasAim = target, true
		in.Thrust = dist > 600
		in.Brake = dist < 200
	}

	// Hold charge for the charge time, then release.
	st := ship.Ship()
	switch {
	case st.Charging && g.now-st.ChargeStart < g.cfg.ChargedBullet.ChargeTime:
		in.Charge = true
	case !st.Charging && g.now-a.lastCharge >= a.ChargeEvery:
		in.Charge = true
		a.lastCharge = g.now
	}
	return in
}

// nearest returns the position of the closest enabled entity of kind.
func (g *Game) nearest(from geom.Vec, kind components.Kind) (geom.Vec, float64) {
	best, bestD := geom.Vec{}, math.Inf(1)
	for _, e := range g.Pool(kind) {
		if !e.Enabled {
			continue
		}
		if d := geom.DistanceSq(from, e.Pos); d < bestD {
			best, bestD = e.Pos, d
		}
	}
	return best, math.Sqrt(bestD)
}
