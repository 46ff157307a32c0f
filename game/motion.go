package game

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/roids/components"
	"github.com/pthm-cable/roids/geom"
	"github.com/pthm-cable/roids/systems"
)

// updateShipControls turns the ship toward the aim point, applies thrust or
// damping and handles the weapons.
func (g *Game) updateShipControls(in Input, dt float64) {
	ship := g.Ship()
	st := ship.Ship()
	if !ship.Enabled {
		st.Charging = false
		st.Thrusting = false
		return
	}
	cfg := g.cfg.Ship

	if in.HasAim {
		if d := geom.Normalize(r2.Sub(in.Aim, ship.Pos)); d != (geom.Vec{}) {
			ship.Facing = d
		}
	}

	var accel geom.Vec
	if in.Thrust {
		accel = r2.Add(accel, ship.Facing)
	}
	if in.StrafeLeft {
		accel = r2.Add(accel, geom.RotateDeg(ship.Facing, 90))
	}
	if in.StrafeRight {
		accel = r2.Add(accel, geom.RotateDeg(ship.Facing, -90))
	}
	accel = geom.Normalize(accel)
	st.Thrusting = accel != (geom.Vec{})

	switch {
	case in.Brake:
		ship.Vel = r2.Scale(cfg.BrakeDamping, ship.Vel)
	case !st.Thrusting:
		ship.Vel = r2.Scale(cfg.Damping, ship.Vel)
	}
	if st.Thrusting {
		thrust := cfg.Thrust
		if in.Boost {
			thrust *= cfg.BoostMultiplier
		}
		ship.Vel = r2.Add(ship.Vel, r2.Scale(thrust*dt, accel))

		back := r2.Scale(-1, accel)
		nozzle := r2.Add(ship.Pos, r2.Scale(ship.Size*0.4, r2.Scale(-1, ship.Facing)))
		g.exhaust.Spawn(nozzle, cfg.ExhaustPerStep, systems.Cone(back, cfg.ExhaustSpreadDeg, cfg.ExhaustSpeed), components.Exhaust, g.now, g.rng)
	}

	g.updateWeapons(in)
}

// updateWeapons fires bullets at the cooldown rate and releases charged shots.
func (g *Game) updateWeapons(in Input) {
	ship := g.Ship()
	st := ship.Ship()

	if in.Fire && g.now >= st.NextShotAt {
		g.fireBullet(components.KindBullet, ship.Pos, ship.Facing, ship.ColliderRadius)
		st.NextShotAt = g.now + g.cfg.Bullet.Cooldown
	}

	switch {
	case in.Charge && !st.Charging && g.now >= st.NextChargeAt:
		st.Charging = true
		st.ChargeStart = g.now
	case !in.Charge && st.Charging:
		st.Charging = false
		if g.now-st.ChargeStart >= g.cfg.ChargedBullet.ChargeTime {
			g.fireBullet(components.KindChargedBullet, ship.Pos, ship.Facing, ship.ColliderRadius)
			st.NextChargeAt = g.now + g.cfg.ChargedBullet.Cooldown
		}
	}
}

// updateMotion integrates every enabled entity.
func (g *Game) updateMotion(dt float64) {
	for _, pool := range g.pools() {
		for i := range pool {
			e := &pool[i]
			if !e.Enabled {
				continue
			}
			e.PrevPos = e.Pos
			if e.Kind == components.KindTurret {
				g.turnTurret(e, dt)
				e.Pos = r2.Add(e.Pos, r2.Scale(dt, e.Vel))
				continue
			}
			systems.Integrate(e, dt)
		}
	}
}

// turnTurret rotates a turret at its rotation speed toward the next aim angle
// without overshooting. Turrets hold still until their dwell has elapsed.
func (g *Game) turnTurret(e *components.Entity, dt float64) {
	st := e.Turret()
	if g.now < st.NextMoveTime {
		return
	}
	cur := geom.AngleDeg(e.Facing)
	delta := geom.DeltaDeg(cur, st.NextAimAngle)
	step := e.RotationSpeed * dt
	if math.Abs(delta) <= step {
		e.Facing = geom.FromAngleDeg(st.NextAimAngle)
		return
	}
	e.Facing = geom.FromAngleDeg(cur + math.Copysign(step, delta))
}
