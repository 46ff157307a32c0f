package game

import (
	"log/slog"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/roids/components"
	"github.com/pthm-cable/roids/effects"
	"github.com/pthm-cable/roids/geom"
)

// turretAimTolerance is how close, in degrees, a turret must be to its aim
// angle to count as arrived.
const turretAimTolerance = 1e-6

// updateLifecycle runs the spawn and despawn rules for one step.
func (g *Game) updateLifecycle() {
	g.expireBullets()
	g.splitAsteroids()
	g.updateShipLife()
	g.updateTurrets()
	if g.remaining <= 0 {
		g.advanceLevel()
	}
}

// expireBullets disables bullets that outlived their lifetime.
func (g *Game) expireBullets() {
	for _, kind := range []components.Kind{components.KindBullet, components.KindEnemyBullet, components.KindChargedBullet} {
		p := g.bulletPool(kind)
		for i := range p.slots {
			b := &p.slots[i]
			if b.Enabled && g.now-b.SpawnTime >= p.cfg.Lifetime {
				b.Enabled = false
			}
		}
	}
}

// splitAsteroids spawns four children around the impact point of each big
// asteroid destroyed this step.
func (g *Game) splitAsteroids() {
	cfg := g.cfg.Asteroid
	for _, s := range g.pendingSplits {
		offset := s.size * cfg.ChildOffsetFraction
		for k := 0; k < 4; k++ {
			dir := geom.FromAngleDeg(90 * float64(k))
			pos := r2.Add(s.impact, r2.Scale(offset, dir))
			heading := geom.RotateDeg(dir, (g.rng.Float64()*2-1)*cfg.ChildSpreadDeg)
			size := geom.Lerp(cfg.ChildSizeMin, cfg.ChildSizeMax, g.rng.Float64())
			g.spawnAsteroid(pos, heading, size, 0)
		}
	}
	g.pendingSplits = g.pendingSplits[:0]
}

// updateShipLife destroys a ship whose health ran out and respawns it once
// the respawn delay has elapsed.
func (g *Game) updateShipLife() {
	ship := g.Ship()
	st := ship.Ship()
	switch {
	case ship.Enabled && ship.Health <= 0:
		g.explode(effects.ExplosionBig, ship.Pos, ship.Size)
		ship.Enabled = false
		ship.Vel = geom.Vec{}
		st.RespawnAt = g.now + g.cfg.Ship.RespawnDelay
		g.emit(Event{Kind: EventShipDestroyed, Pos: ship.Pos, Size: ship.Size})
		slog.Info("ship_destroyed", "x", ship.Pos.X, "y", ship.Pos.Y, "level", g.level, "score", g.score)
		if g.tracker != nil {
			g.tracker.RecordShipDeath()
		}
	case !ship.Enabled && g.now >= st.RespawnAt:
		g.spawnShip()
		g.emit(Event{Kind: EventShipRespawned, Pos: ship.Pos, Size: ship.Size})
		slog.Info("ship_respawned", "level", g.level)
	}
}

// updateTurrets fires a four-way burst from every turret that reached its
// aim angle and is off its burst cooldown, then holds it for the dwell time
// and targets the next step.
func (g *Game) updateTurrets() {
	cfg := g.cfg.Turret
	for i := range g.turrets {
		t := &g.turrets[i]
		if !t.Enabled {
			continue
		}
		st := t.Turret()
		if g.now < st.NextMoveTime {
			continue
		}
		if math.Abs(geom.DeltaDeg(geom.AngleDeg(t.Facing), st.NextAimAngle)) > turretAimTolerance {
			continue
		}
		if g.now < st.NextShotAt {
			continue
		}
		for k := 0; k < 4; k++ {
			g.fireBullet(components.KindEnemyBullet, t.Pos, geom.RotateDeg(t.Facing, 90*float64(k)), t.ColliderRadius)
		}
		st.NextShotAt = g.now + g.cfg.EnemyBullet.Cooldown
		st.NextMoveTime = g.now + cfg.Dwell
		st.PrevAimAngle = st.NextAimAngle
		st.NextAimAngle = geom.WrapDeg(st.NextAimAngle + cfg.AimStep)
	}
}

// advanceLevel starts the next level with twice as many asteroids and
// restores the turrets.
func (g *Game) advanceLevel() {
	g.finishLevel()
	g.level++
	g.waveSize *= 2
	g.spawnTurrets()
	placed := g.spawnWave(g.waveSize)
	g.emit(Event{Kind: EventLevelAdvanced, Size: float64(g.waveSize)})
	slog.Info("level_advanced", "level", g.level, "wave", g.waveSize, "placed", placed, "score", g.score)
	g.beginLevel()
}
