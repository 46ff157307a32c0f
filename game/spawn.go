package game

import (
	"log/slog"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/roids/components"
	"github.com/pthm-cable/roids/config"
	"github.com/pthm-cable/roids/geom"
)

// bulletPool describes one ring-allocated bullet pool.
type bulletPool struct {
	slots   []components.Entity
	cursor  *int
	cfg     config.BulletConfig
	radius  float64
	texture components.Texture
	event   EventKind
}

func (g *Game) bulletPool(kind components.Kind) bulletPool {
	switch kind {
	case components.KindEnemyBullet:
		return bulletPool{g.enemyBullets, &g.enemyCursor, g.cfg.EnemyBullet, g.cfg.Derived.EnemyBulletRadius, components.TexEnemyBullet, EventEnemyShot}
	case components.KindChargedBullet:
		return bulletPool{g.chargedBullets, &g.chargedCursor, g.cfg.ChargedBullet.BulletConfig, g.cfg.Derived.ChargedBulletRadius, components.TexChargedBullet, EventChargedShot}
	default:
		return bulletPool{g.bullets, &g.bulletCursor, g.cfg.Bullet, g.cfg.Derived.BulletRadius, components.TexBullet, EventShot}
	}
}

// fireBullet writes a bullet of kind into the next ring slot of its pool,
// overwriting whatever occupied it. The bullet starts just outside a shooter
// of radius clearance, travelling along dir.
func (g *Game) fireBullet(kind components.Kind, origin, dir geom.Vec, clearance float64) *components.Entity {
	p := g.bulletPool(kind)
	slot := &p.slots[*p.cursor%len(p.slots)]
	*p.cursor++

	dir = geom.Normalize(dir)
	pos := r2.Add(origin, r2.Scale(clearance+p.radius, dir))
	*slot = components.Entity{
		Kind:           kind,
		Enabled:        true,
		SpawnTime:      g.now,
		InvisibleUntil: g.now,
		Size:           p.cfg.Size,
		ColliderRadius: p.radius,
		Pos:            pos,
		PrevPos:        pos,
		Facing:         dir,
		Vel:            r2.Scale(p.cfg.Speed, dir),
		Texture:        p.texture,
	}
	g.emit(Event{Kind: p.event, Pos: slot.Pos, Size: slot.Size})
	if g.tracker != nil && kind != components.KindEnemyBullet {
		g.tracker.RecordShot(kind == components.KindChargedBullet)
	}
	return slot
}

// spawnShip places the ship at the origin with full health, default facing
// and a fresh invisibility window.
func (g *Game) spawnShip() {
	cfg := g.cfg.Ship
	ship := g.Ship()
	st := ship.Ship()
	if st == nil {
		st = &components.ShipState{}
	}
	*st = components.ShipState{NextShotAt: g.now}
	*ship = components.Entity{
		Kind:           components.KindShip,
		Enabled:        true,
		SpawnTime:      g.now,
		InvisibleUntil: g.now + cfg.InvisibleDuration,
		Size:           cfg.Size,
		ColliderRadius: g.cfg.Derived.ShipRadius,
		Facing:         geom.Up,
		Health:         cfg.MaxHealth,
		Texture:        components.TexShip,
		State:          st,
	}
}

// spawnTurrets places a turret at every level turret position.
func (g *Game) spawnTurrets() {
	cfg := g.cfg.Turret
	for i := range g.turrets {
		g.turrets[i].Enabled = false
	}
	for i, p := range g.cfg.Level.Turrets {
		g.turrets[i] = components.Entity{
			Kind:           components.KindTurret,
			Enabled:        true,
			SpawnTime:      g.now,
			InvisibleUntil: g.now,
			Size:           cfg.Size,
			ColliderRadius: g.cfg.Derived.TurretRadius,
			Pos:            geom.V(p[0], p[1]),
			PrevPos:        geom.V(p[0], p[1]),
			Facing:         geom.FromAngleDeg(0),
			RotationSpeed:  cfg.RotationSpeed,
			Health:         cfg.MaxHealth,
			Texture:        components.TexTurret,
			State: &components.TurretState{
				NextMoveTime: g.now + cfg.Dwell,
				PrevAimAngle: 0,
				NextAimAngle: cfg.AimStep,
			},
		}
	}
}

// allocAsteroid returns the first free asteroid slot, or nil when the pool
// is exhausted.
func (g *Game) allocAsteroid() *components.Entity {
	for i := range g.asteroids {
		if !g.asteroids[i].Enabled {
			return &g.asteroids[i]
		}
	}
	slog.Warn("asteroid_pool_exhausted", "capacity", len(g.asteroids), "level", g.level)
	return nil
}

// spawnAsteroid fills a free slot with an asteroid of size at pos moving
// along dir, and counts it as remaining.
func (g *Game) spawnAsteroid(pos, dir geom.Vec, size, invisible float64) *components.Entity {
	a := g.allocAsteroid()
	if a == nil {
		return nil
	}
	cfg := g.cfg.Asteroid
	speed := geom.Lerp(cfg.SpeedMin, cfg.SpeedMax, g.rng.Float64())
	*a = components.Entity{
		Kind:           components.KindAsteroid,
		Enabled:        true,
		SpawnTime:      g.now,
		InvisibleUntil: g.now + invisible,
		Size:           size,
		ColliderRadius: cfg.ColliderFraction * size / 2,
		Pos:            pos,
		PrevPos:        pos,
		Facing:         geom.FromAngleDeg(g.rng.Float64() * 360),
		Vel:            r2.Scale(speed, geom.Normalize(dir)),
		RotationSpeed:  (g.rng.Float64()*2 - 1) * cfg.SpinMax,
		Texture:        components.TexAsteroid,
	}
	g.remaining++
	return a
}

// spawnWave places count asteroids at random free positions inside the
// level bounds and returns how many were placed.
func (g *Game) spawnWave(count int) int {
	cfg := g.cfg.Asteroid
	placed := 0
	for i := 0; i < count; i++ {
		size := geom.Lerp(cfg.SizeMin, cfg.SizeMax, g.rng.Float64())
		pos := g.samplePosition(cfg.ColliderFraction * size / 2)
		if g.spawnAsteroid(pos, geom.FromAngleDeg(g.rng.Float64()*360), size, cfg.SpawnInvisible) == nil {
			break
		}
		placed++
	}
	return placed
}

// samplePosition draws positions inside the level bounds until one is clear
// of every asteroid, turret, wall and the ship. After the attempt budget the
// last sample is used.
func (g *Game) samplePosition(radius float64) geom.Vec {
	lo, hi := g.cfg.Derived.BoundsMin, g.cfg.Derived.BoundsMax
	m := g.cfg.Level.Margin + radius
	attempts := max(g.cfg.Asteroid.SpawnAttempts, 1)

	var pos geom.Vec
	for try := 0; try < attempts; try++ {
		pos = geom.V(
			geom.Lerp(lo.X+m, hi.X-m, g.rng.Float64()),
			geom.Lerp(lo.Y+m, hi.Y-m, g.rng.Float64()),
		)
		if g.clearAt(pos, radius) {
			return pos
		}
	}
	slog.Debug("spawn_position_fallback", "attempts", attempts)
	return pos
}

// clearAt reports whether a circle at pos overlaps nothing it should not.
func (g *Game) clearAt(pos geom.Vec, radius float64) bool {
	for _, pool := range [][]components.Entity{g.asteroids, g.turrets} {
		for i := range pool {
			e := &pool[i]
			if !e.Enabled {
				continue
			}
			r := e.ColliderRadius + radius
			if geom.DistanceSq(e.Pos, pos) < r*r {
				return false
			}
		}
	}
	if ship := g.Ship(); ship.Enabled {
		r := g.cfg.Asteroid.ShipClearance + radius
		if geom.DistanceSq(ship.Pos, pos) < r*r {
			return false
		}
	}
	for _, w := range g.walls {
		if _, hit := geom.LineCircleIntersect(w, pos, radius); hit {
			return false
		}
	}
	return true
}
