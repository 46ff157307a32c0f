package game

import (
	"math"
	"testing"

	"github.com/pthm-cable/roids/components"
	"github.com/pthm-cable/roids/config"
	"github.com/pthm-cable/roids/geom"
)

func TestNewGameStartsLevelOne(t *testing.T) {
	cfg := config.Default()
	g := New(cfg, 42, Options{})

	if g.Level() != 1 || g.WaveSize() != cfg.Level.FirstWave {
		t.Errorf("level/wave = %d/%d, want 1/%d", g.Level(), g.WaveSize(), cfg.Level.FirstWave)
	}
	if got := g.CountEnabled(components.KindAsteroid); got != cfg.Level.FirstWave {
		t.Errorf("asteroids = %d, want %d", got, cfg.Level.FirstWave)
	}
	if g.Remaining() != cfg.Level.FirstWave {
		t.Errorf("Remaining = %d, want %d", g.Remaining(), cfg.Level.FirstWave)
	}
	if got := g.CountEnabled(components.KindTurret); got != len(cfg.Level.Turrets) {
		t.Errorf("turrets = %d, want %d", got, len(cfg.Level.Turrets))
	}
	ship := g.Ship()
	if !ship.Enabled || ship.Health != cfg.Ship.MaxHealth || ship.Facing != geom.Up {
		t.Errorf("ship = %+v", ship)
	}
	assertNoAsteroidOverlap(t, g)
}

func TestPauseFreezesClock(t *testing.T) {
	g := newTestGame(t)
	ship := g.Ship()
	ship.Vel = geom.V(100, 0)

	g.Update(Input{Pause: true})
	if !g.Paused() {
		t.Fatal("pause edge did not pause")
	}
	now, tick, pos := g.Now(), g.Tick(), ship.Pos
	for i := 0; i < 10; i++ {
		g.Update(Input{Thrust: true, Fire: true})
	}
	if g.Now() != now || g.Tick() != tick || ship.Pos != pos {
		t.Errorf("paused game advanced: now %v->%v tick %d->%d", now, g.Now(), tick, g.Tick())
	}
	if g.CountEnabled(components.KindBullet) != 0 {
		t.Error("paused game fired")
	}

	var c recordingCanvas
	g.Render(&c)
	if c.count(components.TexShip) != 1 {
		t.Errorf("paused render drew %d ships, want 1", c.count(components.TexShip))
	}

	g.Update(Input{Pause: true})
	if g.Paused() {
		t.Fatal("second pause edge did not resume")
	}
	if g.Tick() != tick+1 {
		t.Errorf("Tick = %d, want %d", g.Tick(), tick+1)
	}
}

func TestRenderBlinksInvisibleEntities(t *testing.T) {
	g := newTestGame(t)
	ship := g.Ship()
	ship.InvisibleUntil = g.now + 5

	g.now = 10.0
	var on recordingCanvas
	g.Render(&on)
	if on.count(components.TexShip) != 1 {
		t.Errorf("blink-on phase drew %d ships, want 1", on.count(components.TexShip))
	}

	g.now = 10.06
	var off recordingCanvas
	g.Render(&off)
	if off.count(components.TexShip) != 0 {
		t.Errorf("blink-off phase drew %d ships, want 0", off.count(components.TexShip))
	}

	ship.InvisibleUntil = 0
	var visible recordingCanvas
	g.Render(&visible)
	if visible.count(components.TexShip) != 1 {
		t.Error("visible ship not drawn")
	}
}

func TestRenderTintsDamagedEntities(t *testing.T) {
	g := newTestGame(t)
	ship := g.Ship()
	ship.DamageFlashUntil = g.now + 1

	var c recordingCanvas
	g.Render(&c)
	for i, tex := range c.sprites {
		if tex == components.TexShip && c.tints[i] != components.HitRed {
			t.Errorf("flashing ship tint = %v, want HitRed", c.tints[i])
		}
	}

	ship.DamageFlashUntil = 0
	c = recordingCanvas{}
	g.Render(&c)
	for i, tex := range c.sprites {
		if tex == components.TexShip && c.tints[i] != components.White {
			t.Errorf("ship tint = %v, want White", c.tints[i])
		}
	}
	if c.lines != len(g.Walls()) {
		t.Errorf("drew %d wall lines, want %d", c.lines, len(g.Walls()))
	}
}

func TestShipDamping(t *testing.T) {
	g := newTestGame(t)
	ship := g.Ship()

	ship.Vel = geom.V(100, 0)
	g.Step(Input{})
	if math.Abs(ship.Vel.X-100*g.cfg.Ship.Damping) > 1e-9 {
		t.Errorf("coasting Vel.X = %v, want %v", ship.Vel.X, 100*g.cfg.Ship.Damping)
	}

	ship.Vel = geom.V(100, 0)
	g.Step(Input{Brake: true})
	if math.Abs(ship.Vel.X-100*g.cfg.Ship.BrakeDamping) > 1e-9 {
		t.Errorf("braking Vel.X = %v, want %v", ship.Vel.X, 100*g.cfg.Ship.BrakeDamping)
	}
}

func TestShipThrust(t *testing.T) {
	g := newTestGame(t)
	ship := g.Ship()
	dt := g.cfg.Physics.DT

	g.Step(Input{Thrust: true})
	if want := g.cfg.Ship.Thrust * dt; math.Abs(ship.Vel.Y-want) > 1e-9 || math.Abs(ship.Vel.X) > 1e-9 {
		t.Errorf("Vel = %v, want (0, %v)", ship.Vel, want)
	}
	if !ship.Ship().Thrusting {
		t.Error("ship not marked thrusting")
	}
	if _, exhaust := g.Particles(); exhaust.Active() != g.cfg.Ship.ExhaustPerStep {
		t.Errorf("exhaust particles = %d, want %d", exhaust.Active(), g.cfg.Ship.ExhaustPerStep)
	}

	var c recordingCanvas
	g.Render(&c)
	if c.count(components.TexShipExhaust) != 1 {
		t.Error("thrusting ship drawn without exhaust")
	}
}

func TestShipFiresAtCooldown(t *testing.T) {
	g := newTestGame(t)
	dt := g.cfg.Physics.DT
	steps := int(math.Ceil(g.cfg.Bullet.Cooldown/dt)) + 1

	g.Step(Input{Fire: true})
	if g.CountEnabled(components.KindBullet) != 1 {
		t.Fatalf("bullets = %d after first shot, want 1", g.CountEnabled(components.KindBullet))
	}
	var shot bool
	for _, e := range g.Events() {
		shot = shot || e.Kind == EventShot
	}
	if !shot {
		t.Error("no shot event")
	}

	for i := 1; i < steps; i++ {
		g.Step(Input{Fire: true})
	}
	if got := g.CountEnabled(components.KindBullet); got != 2 {
		t.Errorf("bullets after one cooldown = %d, want 2", got)
	}
}

func TestChargedShotNeedsFullCharge(t *testing.T) {
	g := newTestGame(t)
	dt := g.cfg.Physics.DT
	full := int(math.Ceil(g.cfg.ChargedBullet.ChargeTime/dt)) + 1

	for i := 0; i < full/2; i++ {
		g.Step(Input{Charge: true})
	}
	g.Step(Input{})
	if g.CountEnabled(components.KindChargedBullet) != 0 {
		t.Fatal("early release fired a charged shot")
	}

	for i := 0; i < full; i++ {
		g.Step(Input{Charge: true})
	}
	g.Step(Input{})
	if got := g.CountEnabled(components.KindChargedBullet); got != 1 {
		t.Errorf("charged bullets = %d, want 1", got)
	}
}

func TestChargedShotCooldown(t *testing.T) {
	g := newTestGame(t)
	g.cfg.ChargedBullet.Cooldown = 1
	dt := g.cfg.Physics.DT
	full := int(math.Ceil(g.cfg.ChargedBullet.ChargeTime/dt)) + 1

	shots := 0
	hold := func(steps int) {
		for i := 0; i < steps; i++ {
			g.Step(Input{Charge: true})
			shots += countEvents(g, EventChargedShot)
		}
		g.Step(Input{})
		shots += countEvents(g, EventChargedShot)
	}

	hold(full)
	if shots != 1 {
		t.Fatalf("charged shots = %d, want 1", shots)
	}
	// The charge cannot start again until the cooldown has passed.
	hold(full)
	if shots != 1 {
		t.Fatalf("charged shots during cooldown = %d, want 1", shots)
	}
	hold(3 * full)
	if shots != 2 {
		t.Errorf("charged shots after cooldown = %d, want 2", shots)
	}
}

func TestAutopilotRunKeepsCounters(t *testing.T) {
	cfg := config.Default()
	g := New(cfg, 7, Options{})
	pilot := NewAutopilot()

	startLevel := g.Level()
	for i := 0; i < 3000; i++ {
		g.Update(pilot.Next(g))
		if g.Remaining() != g.CountEnabled(components.KindAsteroid) {
			t.Fatalf("tick %d: Remaining = %d, enabled asteroids = %d", g.Tick(), g.Remaining(), g.CountEnabled(components.KindAsteroid))
		}
		ship := g.Ship()
		if ship.Health < 0 || ship.Health > cfg.Ship.MaxHealth {
			t.Fatalf("tick %d: ship health %v out of range", g.Tick(), ship.Health)
		}
		if g.WaveSize() != cfg.Level.FirstWave<<(g.Level()-1) {
			t.Fatalf("tick %d: wave %d at level %d", g.Tick(), g.WaveSize(), g.Level())
		}
	}
	if g.Level() < startLevel {
		t.Errorf("level went backwards: %d", g.Level())
	}
	if g.Score() < 0 {
		t.Errorf("Score = %d", g.Score())
	}
}
