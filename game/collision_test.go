package game

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/roids/components"
	"github.com/pthm-cable/roids/config"
	"github.com/pthm-cable/roids/effects"
	"github.com/pthm-cable/roids/geom"
	"github.com/pthm-cable/roids/systems"
)

func TestShipAsteroidDamageClamp(t *testing.T) {
	g := newTestGame(t)
	ship := g.Ship()
	ship.Vel = geom.V(50, 0)
	rock := placeAsteroid(g, geom.V(40, 0), geom.V(-20, 0), 60)

	before := r2.Add(systems.Momentum(ship), systems.Momentum(rock))
	resolve(g)
	after := r2.Add(systems.Momentum(ship), systems.Momentum(rock))

	if ship.Health != 80 {
		t.Fatalf("Health = %v, want 80", ship.Health)
	}
	if math.Abs(before.X-after.X) > 1e-9 || math.Abs(before.Y-after.Y) > 1e-9 {
		t.Errorf("momentum %v -> %v", before, after)
	}
	if ship.InvisibleUntil <= g.now || !ship.Flashing(g.now) {
		t.Error("invisibility and flash windows not refreshed")
	}

	// Still overlapping inside the window: no further damage.
	rock.Pos = geom.V(30, 0)
	rock.Vel = geom.V(-20, 0)
	g.now += 0.5
	resolve(g)
	if ship.Health != 80 {
		t.Errorf("Health after repeat = %v, want 80", ship.Health)
	}
	for _, e := range g.Collected() {
		if e == ship {
			t.Error("invisible ship was collected")
		}
	}
}

func TestShipAsteroidDestroySpeed(t *testing.T) {
	g := newTestGame(t)
	ship := g.Ship()
	ship.Vel = geom.V(900, 0)
	placeAsteroid(g, geom.V(40, 0), geom.V(-900, 0), 150)

	resolve(g)
	if ship.Health != 0 {
		t.Errorf("Health = %v, want 0 after a bounce over the destroy speed", ship.Health)
	}
	if ship.Vel != (geom.Vec{}) {
		t.Errorf("Vel = %v, want zero", ship.Vel)
	}
}

func TestBulletAsteroid(t *testing.T) {
	g := newTestGame(t)
	rock := placeAsteroid(g, geom.V(300, 0), geom.Vec{}, 60)
	b := g.fireBullet(components.KindBullet, geom.V(300, -20), geom.V(0, 1), 0)

	resolve(g)
	if b.Enabled || rock.Enabled {
		t.Errorf("bullet/asteroid enabled = %v/%v, want both disabled", b.Enabled, rock.Enabled)
	}
	if g.Score() != 1 {
		t.Errorf("Score = %d, want 1", g.Score())
	}
	if g.Remaining() != 0 {
		t.Errorf("Remaining = %d, want 0", g.Remaining())
	}
	if g.debris.Active() == 0 {
		t.Error("no debris spawned")
	}
	if len(g.pendingSplits) != 0 {
		t.Error("small asteroid queued a split")
	}
}

func TestChargedBulletAsteroid(t *testing.T) {
	g := newTestGame(t)
	rock := placeAsteroid(g, geom.V(300, 0), geom.Vec{}, 140)
	b := g.fireBullet(components.KindChargedBullet, geom.V(300, -30), geom.V(0, 1), 0)

	resolve(g)
	if b.Enabled || rock.Enabled {
		t.Error("charged bullet and asteroid should both be disabled")
	}
	if n := len(effectsAt(g, effects.ExplosionCharged)); n != 1 {
		t.Errorf("charged explosions = %d, want 1", n)
	}
	if len(g.pendingSplits) != 1 {
		t.Errorf("pending splits = %d, want 1", len(g.pendingSplits))
	}
	want := g.cfg.ChargedBullet.DebrisCount + max(int(g.cfg.Asteroid.DebrisPerSize*140), 1)
	if got := g.debris.Active(); got != want {
		t.Errorf("debris = %d, want %d from the charged burst and the asteroid", got, want)
	}
}

func TestShipEnemyBullet(t *testing.T) {
	g := newTestGame(t)
	b := g.fireBullet(components.KindEnemyBullet, geom.V(0, 30), geom.V(0, -1), 0)

	resolve(g)
	if b.Enabled {
		t.Error("enemy bullet still enabled")
	}
	if g.Ship().Health != 90 {
		t.Errorf("Health = %v, want 90", g.Ship().Health)
	}
	if n := len(effectsAt(g, effects.ExplosionSmall)); n != 1 {
		t.Errorf("small explosions = %d, want 1", n)
	}
}

func TestAsteroidAsteroid(t *testing.T) {
	g := newTestGame(t)
	a := placeAsteroid(g, geom.V(300, 0), geom.V(40, 0), 60)
	b := placeAsteroid(g, geom.V(330, 0), geom.V(-40, 0), 60)

	resolve(g)
	if !a.Enabled || !b.Enabled {
		t.Fatal("asteroid collisions must not destroy")
	}
	if a.Vel.X >= 0 || b.Vel.X <= 0 {
		t.Errorf("velocities not exchanged: %v %v", a.Vel, b.Vel)
	}
	if g.debris.Active() == 0 {
		t.Error("no contact debris")
	}

	// Separating pair is left alone.
	va, vb := a.Vel, b.Vel
	resolve(g)
	if a.Vel != va || b.Vel != vb {
		t.Error("separating asteroids collided again")
	}
}

func TestTurretDestruction(t *testing.T) {
	g := newTestGame(t)
	turret := placeTurret(g, 0, geom.V(500, 0))
	turret.Health = 25
	b := g.fireBullet(components.KindBullet, geom.V(500, -30), geom.V(0, 1), 0)

	resolve(g)
	if turret.Health != 0 || turret.Enabled {
		t.Fatalf("turret health/enabled = %v/%v, want 0/false", turret.Health, turret.Enabled)
	}
	if b.Enabled {
		t.Error("bullet still enabled")
	}
	big := effectsAt(g, effects.ExplosionBig)
	if len(big) != 1 || big[0].Pos != geom.V(500, 0) {
		t.Errorf("large explosions = %+v, want one at the turret", big)
	}
	if g.Score() != 1 {
		t.Errorf("Score = %d, want 1", g.Score())
	}
}

func TestTurretBulletPartialDamage(t *testing.T) {
	g := newTestGame(t)
	g.cfg.Turret.DamageFlash = 0.7
	turret := placeTurret(g, 0, geom.V(500, 0))
	g.fireBullet(components.KindBullet, geom.V(500, -30), geom.V(0, 1), 0)

	resolve(g)
	if turret.Health != 75 || !turret.Enabled {
		t.Errorf("turret health/enabled = %v/%v, want 75/true", turret.Health, turret.Enabled)
	}
	if turret.DamageFlashUntil != g.now+0.7 {
		t.Errorf("DamageFlashUntil = %v, want now+turret.damage_flash", turret.DamageFlashUntil)
	}
	if g.Score() != 0 {
		t.Errorf("Score = %d, want 0 until destroyed", g.Score())
	}
}

func TestTurretChargedBullet(t *testing.T) {
	g := newTestGame(t)
	turret := placeTurret(g, 0, geom.V(500, 0))
	g.fireBullet(components.KindChargedBullet, geom.V(500, -40), geom.V(0, 1), 0)

	resolve(g)
	if turret.Enabled || turret.Health != 0 {
		t.Error("charged bullet should destroy a full-health turret outright")
	}
	if n := len(effectsAt(g, effects.ExplosionBig)); n != 2 {
		t.Errorf("large explosions = %d, want bullet and turret", n)
	}
}

func TestTurretShip(t *testing.T) {
	g := newTestGame(t)
	placeTurret(g, 0, geom.V(30, 0))

	resolve(g)
	ship := g.Ship()
	if ship.Health != 50 {
		t.Errorf("Health = %v, want 50", ship.Health)
	}
	resolve(g)
	if ship.Health != 50 {
		t.Errorf("turret contact repeated inside the window: %v", ship.Health)
	}
}

func TestUnlistedPairsIgnored(t *testing.T) {
	g := newTestGame(t)
	a := g.fireBullet(components.KindBullet, geom.V(300, 0), geom.V(1, 0), 0)
	b := g.fireBullet(components.KindEnemyBullet, geom.V(300, 0), geom.V(-1, 0), 0)
	va, vb := a.Vel, b.Vel

	resolve(g)
	if !a.Enabled || !b.Enabled || a.Vel != va || b.Vel != vb {
		t.Error("bullet x enemy bullet should not interact")
	}
}

func TestInvisibleEntitiesNotCollected(t *testing.T) {
	g := New(config.Default(), 7, Options{})
	g.collisions.Collect(g.now, g.pools()...)
	for _, e := range g.Collected() {
		if e.InvisibleUntil > g.now {
			t.Errorf("%v with invisibleUntil %v collected at %v", e.Kind, e.InvisibleUntil, g.now)
		}
	}
	if g.Ship().Visible(g.now) {
		t.Fatal("fresh ship should start invisible")
	}
}

func TestRuleKeysAreSymmetric(t *testing.T) {
	rules := collisionRules()
	if len(rules) != 8 {
		t.Errorf("rules = %d, want 8", len(rules))
	}
	for key := range rules {
		n := 0
		for _, k := range components.Kinds {
			if key.Has(k) {
				n++
			}
		}
		if n < 1 || n > 2 {
			t.Errorf("key %d names %d kinds", key, n)
		}
	}
}
