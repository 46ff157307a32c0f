// Package game holds the simulation context: entity pools, level state and the
// fixed per-step pipeline that moves, collides and respawns everything.
package game

import (
	"math/rand"

	"github.com/pthm-cable/roids/anim"
	"github.com/pthm-cable/roids/components"
	"github.com/pthm-cable/roids/config"
	"github.com/pthm-cable/roids/effects"
	"github.com/pthm-cable/roids/geom"
	"github.com/pthm-cable/roids/systems"
	"github.com/pthm-cable/roids/telemetry"
)

// Game holds the complete simulation state. Every update reads and writes
// only this value.
type Game struct {
	cfg *config.Config
	rng *rand.Rand

	now    float64
	tick   int64
	paused bool

	// Entity pools. The ship pool always has exactly one slot.
	ships          []components.Entity
	bullets        []components.Entity
	enemyBullets   []components.Entity
	chargedBullets []components.Entity
	asteroids      []components.Entity
	turrets        []components.Entity

	// Ring write cursors for the bullet pools
	bulletCursor  int
	enemyCursor   int
	chargedCursor int

	walls      []geom.Segment
	collisions *systems.CollisionList
	rules      map[components.Kind]rule

	debris      *systems.ParticlePool
	exhaust     *systems.ParticlePool
	effects     *effects.System
	exhaustClip anim.Clip

	score     int
	level     int
	waveSize  int
	remaining int

	// Destroyed big asteroids waiting to split in the lifecycle phase
	pendingSplits []split

	events []Event

	// Optional instrumentation
	perf    *telemetry.PerfCollector
	tracker *telemetry.LevelTracker
	output  *telemetry.OutputManager
}

// Options configures optional instrumentation.
type Options struct {
	Perf    *telemetry.PerfCollector
	Tracker *telemetry.LevelTracker
	Output  *telemetry.OutputManager
}

// New creates a game at level 1 from cfg, seeded with seed.
func New(cfg *config.Config, seed int64, opts Options) *Game {
	g := &Game{
		cfg:            cfg,
		rng:            rand.New(rand.NewSource(seed)),
		ships:          make([]components.Entity, 1),
		bullets:        make([]components.Entity, cfg.Bullet.Pool),
		enemyBullets:   make([]components.Entity, cfg.EnemyBullet.Pool),
		chargedBullets: make([]components.Entity, cfg.ChargedBullet.Pool),
		asteroids:      make([]components.Entity, cfg.Asteroid.Pool),
		turrets:        make([]components.Entity, cfg.Turret.Pool),
		walls:          cfg.Derived.Walls,
		collisions:     systems.NewCollisionList(cfg.Derived.CollisionCapacity),
		rules:          collisionRules(),
		debris:         systems.NewParticlePool(cfg.Particles.Debris.Capacity, cfg.Particles.Debris.Lifetime, cfg.Particles.Debris.Size),
		exhaust:        systems.NewParticlePool(cfg.Particles.Exhaust.Capacity, cfg.Particles.Exhaust.Lifetime, cfg.Particles.Exhaust.Size),
		effects: effects.New(
			effectTemplate(components.TexExplosionSmall, cfg.Animations.ExplosionSmall),
			effectTemplate(components.TexExplosionBig, cfg.Animations.ExplosionBig),
			effectTemplate(components.TexExplosionCharged, cfg.Animations.ExplosionCharged),
		),
		perf:    opts.Perf,
		tracker: opts.Tracker,
		output:  opts.Output,
	}
	ex := cfg.Animations.ShipExhaust
	g.exhaustClip = anim.NewClip(anim.NewSheet(ex.Columns, ex.Rows, ex.Frames), ex.FPS, ex.Loop)
	g.Reset()
	return g
}

func effectTemplate(tex components.Texture, c config.ClipConfig) effects.Template {
	return effects.Template{
		Texture: tex,
		Sheet:   anim.NewSheet(c.Columns, c.Rows, c.Frames),
		FPS:     c.FPS,
		Scale:   c.Scale,
	}
}

// Reset clears every pool and starts level 1. The clock keeps running so
// timestamps stay monotonic.
func (g *Game) Reset() {
	for _, pool := range g.pools() {
		clear(pool)
	}
	g.bulletCursor, g.enemyCursor, g.chargedCursor = 0, 0, 0
	g.debris.Reset()
	g.exhaust.Reset()
	g.effects.Clear()
	g.pendingSplits = g.pendingSplits[:0]
	g.events = g.events[:0]
	g.score = 0
	g.level = 1
	g.waveSize = g.cfg.Level.FirstWave
	g.remaining = 0
	g.paused = false

	g.spawnShip()
	g.spawnTurrets()
	g.spawnWave(g.waveSize)
	g.beginLevel()
}

// pools returns every entity pool in collision-collection order.
func (g *Game) pools() [][]components.Entity {
	return [][]components.Entity{g.ships, g.bullets, g.asteroids, g.turrets, g.enemyBullets, g.chargedBullets}
}

// Update advances the game by one frame. The pause edge toggles pausing;
// while paused nothing advances, including the clock.
func (g *Game) Update(in Input) {
	if in.Pause {
		g.paused = !g.paused
	}
	if g.paused {
		return
	}
	g.Step(in)
}

// SetPaused pauses or resumes the simulation.
func (g *Game) SetPaused(p bool) { g.paused = p }

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool { return g.paused }

// Now returns the simulation clock in seconds.
func (g *Game) Now() float64 { return g.now }

// Tick returns the number of steps taken.
func (g *Game) Tick() int64 { return g.tick }

// Ship returns the ship.
func (g *Game) Ship() *components.Entity { return &g.ships[0] }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Level returns the current level number, starting at 1.
func (g *Game) Level() int { return g.level }

// WaveSize returns the asteroid count of the current level's wave.
func (g *Game) WaveSize() int { return g.waveSize }

// Remaining returns the asteroids-remaining counter.
func (g *Game) Remaining() int { return g.remaining }

// Walls returns the level's wall segments.
func (g *Game) Walls() []geom.Segment { return g.walls }

// Effects returns the visual effect system.
func (g *Game) Effects() *effects.System { return g.effects }

// Events returns the gameplay events raised by the last step.
func (g *Game) Events() []Event { return g.events }

// Collected returns the entities eligible for collision in the last step.
func (g *Game) Collected() []*components.Entity { return g.collisions.Entities }

// Pool returns the entity pool for kind.
func (g *Game) Pool(kind components.Kind) []components.Entity {
	switch kind {
	case components.KindShip:
		return g.ships
	case components.KindBullet:
		return g.bullets
	case components.KindEnemyBullet:
		return g.enemyBullets
	case components.KindChargedBullet:
		return g.chargedBullets
	case components.KindAsteroid:
		return g.asteroids
	case components.KindTurret:
		return g.turrets
	}
	return nil
}

// CountEnabled returns the number of live entities of kind.
func (g *Game) CountEnabled(kind components.Kind) int {
	n := 0
	for _, e := range g.Pool(kind) {
		if e.Enabled {
			n++
		}
	}
	return n
}

// Particles returns the debris and exhaust particle pools.
func (g *Game) Particles() (debris, exhaust *systems.ParticlePool) {
	return g.debris, g.exhaust
}
