package game

import "github.com/pthm-cable/roids/telemetry"

// Step advances the simulation clock by one fixed dt and runs every phase
// in order.
func (g *Game) Step(in Input) {
	dt := g.cfg.Physics.DT
	g.now += dt
	g.tick++
	g.events = g.events[:0]

	g.startTick()

	// 1. Controls, weapons and motion
	g.startPhase(telemetry.PhaseMotion)
	g.updateShipControls(in, dt)
	g.updateMotion(dt)

	// 2. Collect collidable entities
	g.startPhase(telemetry.PhaseCollect)
	g.collisions.Collect(g.now, g.pools()...)

	// 3. Entity-entity collisions
	g.startPhase(telemetry.PhaseEntities)
	g.resolveEntities()

	// 4. Entity-wall collisions
	g.startPhase(telemetry.PhaseWalls)
	g.resolveWalls()

	// 5. Splits, deaths, respawns, turrets, expiry and level advance
	g.startPhase(telemetry.PhaseLifecycle)
	g.updateLifecycle()

	// 6. Particle and effect aging
	g.startPhase(telemetry.PhaseAging)
	g.debris.Update(g.now, dt)
	g.exhaust.Update(g.now, dt)
	g.effects.Update(g.now)

	g.endTick()
}

func (g *Game) startTick() {
	if g.perf != nil {
		g.perf.StartTick()
	}
}

func (g *Game) startPhase(p telemetry.Phase) {
	if g.perf != nil {
		g.perf.StartPhase(p)
	}
}

func (g *Game) endTick() {
	if g.perf == nil {
		return
	}
	g.perf.EndTick()
	g.flushPerf()
}
