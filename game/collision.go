package game

import (
	"log/slog"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/roids/components"
	"github.com/pthm-cable/roids/effects"
	"github.com/pthm-cable/roids/geom"
	"github.com/pthm-cable/roids/systems"
)

// rule resolves one overlapping pair. Operands arrive in collection order;
// rules use pick to find which operand plays which role.
type rule func(g *Game, a, b *components.Entity)

// collisionRules maps the OR of two kind flags to the rule for that pair.
// Pairs without an entry do not interact.
func collisionRules() map[components.Kind]rule {
	return map[components.Kind]rule{
		components.KindBullet | components.KindAsteroid:        bulletAsteroid,
		components.KindChargedBullet | components.KindAsteroid: chargedAsteroid,
		components.KindShip | components.KindAsteroid:          shipAsteroid,
		components.KindShip | components.KindEnemyBullet:       shipEnemyBullet,
		components.KindAsteroid:                                asteroidAsteroid,
		components.KindTurret | components.KindBullet:          turretBullet,
		components.KindTurret | components.KindChargedBullet:   turretCharged,
		components.KindTurret | components.KindShip:            turretShip,
	}
}

// pick returns the operand of kind first and the other second.
func pick(kind components.Kind, a, b *components.Entity) (*components.Entity, *components.Entity) {
	if a.Kind == kind {
		return a, b
	}
	return b, a
}

// resolveEntities tests every collected pair once and dispatches overlaps.
// An entity disabled or made invisible earlier in the pass takes no further
// part in it.
func (g *Game) resolveEntities() {
	ents := g.collisions.Entities
	for i := 0; i < len(ents); i++ {
		for j := i + 1; j < len(ents); j++ {
			a, b := ents[i], ents[j]
			if !a.Collidable(g.now) {
				break
			}
			if !b.Collidable(g.now) || !systems.Overlaps(a, b) {
				continue
			}
			if r, ok := g.rules[a.Kind|b.Kind]; ok {
				r(g, a, b)
			}
		}
	}
}

func bulletAsteroid(g *Game, a, b *components.Entity) {
	bullet, rock := pick(components.KindBullet, a, b)
	bullet.Enabled = false
	g.recordHit()
	g.destroyAsteroid(rock, bullet.Pos)
}

func chargedAsteroid(g *Game, a, b *components.Entity) {
	charged, rock := pick(components.KindChargedBullet, a, b)
	charged.Enabled = false
	g.recordHit()
	g.explode(effects.ExplosionCharged, charged.Pos, charged.Size)
	speed := g.cfg.Particles.DebrisSpeed
	g.debris.Spawn(charged.Pos, g.cfg.ChargedBullet.DebrisCount, systems.RadialBurst(speed*0.5, speed*1.5), components.Debris, g.now, g.rng)
	g.destroyAsteroid(rock, charged.Pos)
}

func shipAsteroid(g *Game, a, b *components.Entity) {
	ship, rock := pick(components.KindShip, a, b)
	systems.ElasticCollision(ship, rock)
	g.damageShip(ship, g.cfg.Ship.AsteroidDamage)
	g.checkShipSpeed(ship)
}

func shipEnemyBullet(g *Game, a, b *components.Entity) {
	ship, bullet := pick(components.KindShip, a, b)
	bullet.Enabled = false
	g.explode(effects.ExplosionSmall, bullet.Pos, bullet.Size)
	g.damageShip(ship, g.cfg.Ship.EnemyBulletDamage)
}

func asteroidAsteroid(g *Game, a, b *components.Entity) {
	if !systems.Approaching(a, b) {
		return
	}
	systems.ElasticCollision(a, b)
	// Contact point on the line between centres, weighted by radius
	t := a.ColliderRadius / (a.ColliderRadius + b.ColliderRadius)
	contact := r2.Add(a.Pos, r2.Scale(t, r2.Sub(b.Pos, a.Pos)))
	n := max(int(g.cfg.Asteroid.DebrisPerSize*(a.Size+b.Size)/4), 1)
	g.debris.Spawn(contact, n, systems.RadialBurst(g.cfg.Particles.DebrisSpeed*0.3, g.cfg.Particles.DebrisSpeed*0.6), components.Debris, g.now, g.rng)
}

func turretBullet(g *Game, a, b *components.Entity) {
	turret, bullet := pick(components.KindTurret, a, b)
	bullet.Enabled = false
	g.recordHit()
	g.explode(effects.ExplosionSmall, bullet.Pos, bullet.Size)
	turret.Health = geom.Clamp(turret.Health-g.cfg.Turret.BulletDamage, 0, g.cfg.Turret.MaxHealth)
	turret.DamageFlashUntil = g.now + g.cfg.Turret.DamageFlash
	if turret.Health <= 0 {
		g.destroyTurret(turret)
	}
}

func turretCharged(g *Game, a, b *components.Entity) {
	turret, charged := pick(components.KindTurret, a, b)
	charged.Enabled = false
	g.recordHit()
	g.explode(effects.ExplosionBig, charged.Pos, charged.Size)
	g.destroyTurret(turret)
}

func turretShip(g *Game, a, b *components.Entity) {
	_, ship := pick(components.KindTurret, a, b)
	g.damageShip(ship, g.cfg.Ship.TurretDamage)
}

// split is a destroyed big asteroid waiting for the lifecycle phase.
type split struct {
	size   float64
	impact geom.Vec
}

// destroyAsteroid disables rock, scatters debris at impact and queues a
// split around impact when the rock is big.
func (g *Game) destroyAsteroid(rock *components.Entity, impact geom.Vec) {
	rock.Enabled = false
	g.remaining--
	g.score++
	n := max(int(g.cfg.Asteroid.DebrisPerSize*rock.Size), 1)
	g.debris.Spawn(impact, n, systems.RadialBurst(g.cfg.Particles.DebrisSpeed*0.5, g.cfg.Particles.DebrisSpeed), components.Debris, g.now, g.rng)
	if rock.Size >= g.cfg.Asteroid.BigThreshold {
		g.pendingSplits = append(g.pendingSplits, split{size: rock.Size, impact: impact})
	}
	g.emit(Event{Kind: EventAsteroidDestroyed, Pos: rock.Pos, Size: rock.Size})
	if g.tracker != nil {
		g.tracker.RecordAsteroid()
	}
}

// destroyTurret disables a turret with a large explosion.
func (g *Game) destroyTurret(turret *components.Entity) {
	turret.Health = 0
	turret.Enabled = false
	g.score++
	g.explode(effects.ExplosionBig, turret.Pos, turret.Size)
	g.emit(Event{Kind: EventTurretDestroyed, Pos: turret.Pos, Size: turret.Size})
	slog.Info("turret_destroyed", "x", turret.Pos.X, "y", turret.Pos.Y, "score", g.score)
	if g.tracker != nil {
		g.tracker.RecordTurret()
	}
}

// damageShip applies damage and opens the invisibility and flash windows.
func (g *Game) damageShip(ship *components.Entity, amount float64) {
	cfg := g.cfg.Ship
	ship.Damage(amount, cfg.MaxHealth, g.now, cfg.InvisibleDuration, cfg.DamageFlash)
	g.emit(Event{Kind: EventShipHit, Pos: ship.Pos, Size: amount})
	if g.tracker != nil {
		g.tracker.RecordShipHit()
	}
}

// checkShipSpeed destroys the ship when a bounce left it faster than the
// destroy speed. Its velocity is zeroed so the following camera stops.
func (g *Game) checkShipSpeed(ship *components.Entity) {
	if r2.Norm(ship.Vel) > g.cfg.Ship.DestroySpeed {
		ship.Health = 0
		ship.Vel = geom.Vec{}
	}
}

func (g *Game) recordHit() {
	if g.tracker != nil {
		g.tracker.RecordHit()
	}
}
