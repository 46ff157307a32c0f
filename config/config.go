// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/spatial/r2"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/roids/geom"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen        ScreenConfig    `yaml:"screen"`
	Physics       PhysicsConfig   `yaml:"physics"`
	Ship          ShipConfig      `yaml:"ship"`
	Bullet        BulletConfig    `yaml:"bullet"`
	EnemyBullet   BulletConfig    `yaml:"enemy_bullet"`
	ChargedBullet ChargedConfig   `yaml:"charged_bullet"`
	Asteroid      AsteroidConfig  `yaml:"asteroid"`
	Turret        TurretConfig    `yaml:"turret"`
	Particles     ParticlesConfig `yaml:"particles"`
	Animations    AnimationConfig `yaml:"animations"`
	Level         LevelConfig     `yaml:"level"`
	Camera        CameraConfig    `yaml:"camera"`
	Audio         AudioConfig     `yaml:"audio"`
	Telemetry     TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// PhysicsConfig holds the fixed simulation clock.
type PhysicsConfig struct {
	DT float64 `yaml:"dt"` // Seconds advanced per simulation step
}

// ShipConfig holds player ship parameters.
type ShipConfig struct {
	Size              float64 `yaml:"size"`
	ColliderFraction  float64 `yaml:"collider_fraction"` // Collider radius = fraction * size / 2
	Thrust            float64 `yaml:"thrust"`            // Acceleration in units/s^2
	BoostMultiplier   float64 `yaml:"boost_multiplier"`  // Thrust multiplier while boosting
	Damping           float64 `yaml:"damping"`           // Per-step velocity factor with no thrust
	BrakeDamping      float64 `yaml:"brake_damping"`     // Per-step velocity factor while braking
	MaxHealth         float64 `yaml:"max_health"`
	AsteroidDamage    float64 `yaml:"asteroid_damage"`     // Damage from asteroid contact
	EnemyBulletDamage float64 `yaml:"enemy_bullet_damage"` // Damage from an enemy bullet
	TurretDamage      float64 `yaml:"turret_damage"`       // Damage from ramming a turret
	DestroySpeed      float64 `yaml:"destroy_speed"`       // Post-bounce speed that destroys the ship
	InvisibleDuration float64 `yaml:"invisible_duration"`  // Seconds excluded from collisions after a hit or respawn
	DamageFlash       float64 `yaml:"damage_flash"`        // Seconds the hit tint is shown
	RespawnDelay      float64 `yaml:"respawn_delay"`       // Seconds between death and respawn
	ExhaustPerStep    int     `yaml:"exhaust_per_step"`    // Exhaust particles emitted per thrusting step
	ExhaustSpeed      float64 `yaml:"exhaust_speed"`
	ExhaustSpreadDeg  float64 `yaml:"exhaust_spread_deg"`
}

// BulletConfig holds parameters shared by player and enemy bullets.
type BulletConfig struct {
	Pool             int     `yaml:"pool"`
	Size             float64 `yaml:"size"`
	ColliderFraction float64 `yaml:"collider_fraction"`
	Speed            float64 `yaml:"speed"`
	Lifetime         float64 `yaml:"lifetime"` // Seconds before an unspent bullet expires
	Cooldown         float64 `yaml:"cooldown"` // Minimum seconds between shots
	ExplodeOnWall    bool    `yaml:"explode_on_wall"`
}

// ChargedConfig holds charged-shot parameters.
type ChargedConfig struct {
	BulletConfig `yaml:",inline"`
	ChargeTime   float64 `yaml:"charge_time"` // Seconds the charge button must be held
	DebrisCount  int     `yaml:"debris_count"`
}

// AsteroidConfig holds asteroid spawn and split parameters.
type AsteroidConfig struct {
	Pool                int     `yaml:"pool"`
	ColliderFraction    float64 `yaml:"collider_fraction"`
	BigThreshold        float64 `yaml:"big_threshold"` // Asteroids at or above this size split
	SizeMin             float64 `yaml:"size_min"`      // Wave asteroid size band
	SizeMax             float64 `yaml:"size_max"`
	ChildSizeMin        float64 `yaml:"child_size_min"` // Split child size band
	ChildSizeMax        float64 `yaml:"child_size_max"`
	ChildOffsetFraction float64 `yaml:"child_offset_fraction"` // Child offset radius = fraction * parent size
	ChildSpreadDeg      float64 `yaml:"child_spread_deg"`      // Velocity direction jitter around the offset direction
	SpeedMin            float64 `yaml:"speed_min"`
	SpeedMax            float64 `yaml:"speed_max"`
	SpinMax             float64 `yaml:"spin_max"` // Degrees per second, symmetric band
	DebrisPerSize       float64 `yaml:"debris_per_size"`
	SpawnInvisible      float64 `yaml:"spawn_invisible"` // Seconds new wave asteroids ignore collisions
	SpawnAttempts       int     `yaml:"spawn_attempts"`  // Rejection-sampling budget per asteroid
	ShipClearance       float64 `yaml:"ship_clearance"`  // Keep-out radius around the ship when spawning
}

// TurretConfig holds enemy turret parameters.
type TurretConfig struct {
	Pool             int     `yaml:"pool"`
	Size             float64 `yaml:"size"`
	ColliderFraction float64 `yaml:"collider_fraction"`
	MaxHealth        float64 `yaml:"max_health"`
	BulletDamage     float64 `yaml:"bullet_damage"` // Damage per player bullet hit
	AimStep          float64 `yaml:"aim_step"`      // Degrees rotated between bursts
	RotationSpeed    float64 `yaml:"rotation_speed"`
	Dwell            float64 `yaml:"dwell"`        // Seconds held after a burst
	DamageFlash      float64 `yaml:"damage_flash"` // Seconds the hit tint is shown
}

// ParticlePoolConfig holds one particle pool.
type ParticlePoolConfig struct {
	Capacity int     `yaml:"capacity"`
	Lifetime float64 `yaml:"lifetime"`
	Size     float64 `yaml:"size"`
}

// ParticlesConfig holds the particle pools.
type ParticlesConfig struct {
	Debris      ParticlePoolConfig `yaml:"debris"`
	Exhaust     ParticlePoolConfig `yaml:"exhaust"`
	DebrisSpeed float64            `yaml:"debris_speed"`
}

// ClipConfig describes a sprite-sheet animation.
type ClipConfig struct {
	Columns int     `yaml:"columns"`
	Rows    int     `yaml:"rows"`
	Frames  int     `yaml:"frames"` // 0 = columns * rows
	FPS     float64 `yaml:"fps"`
	Loop    bool    `yaml:"loop"`
	Scale   float64 `yaml:"scale"` // Drawn size relative to the triggering entity
}

// AnimationConfig holds the animation clips.
type AnimationConfig struct {
	ExplosionSmall   ClipConfig `yaml:"explosion_small"`
	ExplosionBig     ClipConfig `yaml:"explosion_big"`
	ExplosionCharged ClipConfig `yaml:"explosion_charged"`
	ShipExhaust      ClipConfig `yaml:"ship_exhaust"`
}

// LevelConfig holds the static level layout.
type LevelConfig struct {
	FirstWave int          `yaml:"first_wave"` // Asteroids in the first wave
	Walls     [][4]float64 `yaml:"walls"`      // x1, y1, x2, y2 per segment
	Turrets   [][2]float64 `yaml:"turrets"`    // x, y per turret
	Margin    float64      `yaml:"margin"`     // Spawn inset from the wall bounds
}

// CameraConfig holds camera parameters.
type CameraConfig struct {
	Zoom    float64 `yaml:"zoom"`
	MinZoom float64 `yaml:"min_zoom"`
	MaxZoom float64 `yaml:"max_zoom"`
}

// AudioConfig holds audio parameters.
type AudioConfig struct {
	Enabled       bool    `yaml:"enabled"`
	Volume        float64 `yaml:"volume"`
	MaxExplosions int     `yaml:"max_explosions"` // Concurrent explosion voices
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfWindow   int `yaml:"perf_window"`   // Ticks averaged per perf sample
	PerfInterval int `yaml:"perf_interval"` // Ticks between perf rows written
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ShipRadius          float64
	BulletRadius        float64
	EnemyBulletRadius   float64
	ChargedBulletRadius float64
	TurretRadius        float64
	CollisionCapacity   int            // Upper bound on collidable entities per step
	Walls               []geom.Segment // Level walls as segments
	BoundsMin           r2.Vec         // Bounding box of all walls
	BoundsMax           r2.Vec
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in the file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	cfg.ComputeDerived()

	return cfg, nil
}

// Validate reports configuration values the game cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Physics.DT <= 0 {
		errs = append(errs, errors.New("physics.dt must be positive"))
	}
	pools := map[string]int{
		"bullet.pool":         c.Bullet.Pool,
		"enemy_bullet.pool":   c.EnemyBullet.Pool,
		"charged_bullet.pool": c.ChargedBullet.Pool,
		"asteroid.pool":       c.Asteroid.Pool,
		"particles.debris":    c.Particles.Debris.Capacity,
		"particles.exhaust":   c.Particles.Exhaust.Capacity,
	}
	for name, n := range pools {
		if n <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, n))
		}
	}
	// Collider radius = fraction * size / 2; zero would never collide.
	colliders := []struct {
		name           string
		size, fraction float64
	}{
		{"ship", c.Ship.Size, c.Ship.ColliderFraction},
		{"bullet", c.Bullet.Size, c.Bullet.ColliderFraction},
		{"enemy_bullet", c.EnemyBullet.Size, c.EnemyBullet.ColliderFraction},
		{"charged_bullet", c.ChargedBullet.Size, c.ChargedBullet.ColliderFraction},
		{"asteroid", c.Asteroid.ChildSizeMin, c.Asteroid.ColliderFraction},
		{"turret", c.Turret.Size, c.Turret.ColliderFraction},
	}
	for _, col := range colliders {
		if col.fraction <= 0 {
			errs = append(errs, fmt.Errorf("%s.collider_fraction must be positive, got %g", col.name, col.fraction))
		}
		if col.size <= 0 {
			errs = append(errs, fmt.Errorf("%s size must be positive, got %g", col.name, col.size))
		}
	}
	if c.Turret.Pool < len(c.Level.Turrets) {
		errs = append(errs, fmt.Errorf("turret.pool %d smaller than %d level turrets", c.Turret.Pool, len(c.Level.Turrets)))
	}
	if c.Asteroid.ChildSizeMax >= c.Asteroid.BigThreshold {
		errs = append(errs, errors.New("asteroid.child_size_max must be below big_threshold"))
	}
	if c.Asteroid.SizeMin > c.Asteroid.SizeMax || c.Asteroid.ChildSizeMin > c.Asteroid.ChildSizeMax {
		errs = append(errs, errors.New("asteroid size bands must have min <= max"))
	}
	if c.Turret.AimStep <= 0 || c.Turret.RotationSpeed <= 0 {
		errs = append(errs, errors.New("turret.aim_step and turret.rotation_speed must be positive"))
	}
	if c.Level.FirstWave <= 0 {
		errs = append(errs, errors.New("level.first_wave must be positive"))
	}
	return errors.Join(errs...)
}

// ComputeDerived calculates values derived from loaded config.
func (c *Config) ComputeDerived() {
	c.Derived.ShipRadius = c.Ship.ColliderFraction * c.Ship.Size / 2
	c.Derived.BulletRadius = c.Bullet.ColliderFraction * c.Bullet.Size / 2
	c.Derived.EnemyBulletRadius = c.EnemyBullet.ColliderFraction * c.EnemyBullet.Size / 2
	c.Derived.ChargedBulletRadius = c.ChargedBullet.ColliderFraction * c.ChargedBullet.Size / 2
	c.Derived.TurretRadius = c.Turret.ColliderFraction * c.Turret.Size / 2
	c.Derived.CollisionCapacity = 1 + c.Bullet.Pool + c.EnemyBullet.Pool +
		c.ChargedBullet.Pool + c.Asteroid.Pool + c.Turret.Pool

	c.Derived.Walls = make([]geom.Segment, 0, len(c.Level.Walls))
	minV := r2.Vec{X: math.Inf(1), Y: math.Inf(1)}
	maxV := r2.Vec{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, w := range c.Level.Walls {
		seg := geom.Segment{P1: r2.Vec{X: w[0], Y: w[1]}, P2: r2.Vec{X: w[2], Y: w[3]}}
		c.Derived.Walls = append(c.Derived.Walls, seg)
		for _, p := range [2]r2.Vec{seg.P1, seg.P2} {
			minV.X, minV.Y = math.Min(minV.X, p.X), math.Min(minV.Y, p.Y)
			maxV.X, maxV.Y = math.Max(maxV.X, p.X), math.Max(maxV.Y, p.Y)
		}
	}
	if len(c.Derived.Walls) == 0 {
		// Open level: spawn around the origin within one screen
		half := r2.Vec{X: float64(c.Screen.Width) / 2, Y: float64(c.Screen.Height) / 2}
		minV, maxV = r2.Scale(-1, half), half
	}
	c.Derived.BoundsMin, c.Derived.BoundsMax = minV, maxV
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
