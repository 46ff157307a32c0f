// Package main tunes difficulty parameters with CMA-ES so autopilot runs
// clear levels at a target pace.
package main

import (
	"github.com/pthm-cable/roids/config"
)

// Knob is one tunable config value with its search range.
type Knob struct {
	Path    string // YAML path, for logs and the CSV header
	Min     float64
	Max     float64
	Default float64 // Value shipped in defaults.yaml
	field   func(*config.Config) *float64
}

// Knobs is the search space. The optimizer works in the unit cube; each
// coordinate maps linearly onto one knob's range.
type Knobs []Knob

// DifficultyKnobs returns the parameters that set how hard a level is.
func DifficultyKnobs() Knobs {
	return Knobs{
		{"asteroid.speed_min", 10, 120, 40, func(c *config.Config) *float64 { return &c.Asteroid.SpeedMin }},
		{"asteroid.speed_max", 60, 300, 140, func(c *config.Config) *float64 { return &c.Asteroid.SpeedMax }},
		{"asteroid.size_max", 110, 220, 160, func(c *config.Config) *float64 { return &c.Asteroid.SizeMax }},
		{"turret.dwell", 0.3, 3, 1, func(c *config.Config) *float64 { return &c.Turret.Dwell }},
		{"turret.rotation_speed", 30, 240, 90, func(c *config.Config) *float64 { return &c.Turret.RotationSpeed }},
		{"enemy_bullet.speed", 150, 700, 380, func(c *config.Config) *float64 { return &c.EnemyBullet.Speed }},
		{"ship.asteroid_damage", 5, 50, 20, func(c *config.Config) *float64 { return &c.Ship.AsteroidDamage }},
	}
}

// Defaults returns every knob's default value.
func (ks Knobs) Defaults() []float64 {
	v := make([]float64, len(ks))
	for i, k := range ks {
		v[i] = k.Default
	}
	return v
}

// ToUnit maps knob values into [0, 1].
func (ks Knobs) ToUnit(values []float64) []float64 {
	u := make([]float64, len(ks))
	for i, k := range ks {
		u[i] = (values[i] - k.Min) / (k.Max - k.Min)
	}
	return u
}

// FromUnit maps optimizer coordinates back onto knob ranges. The result
// may lie outside a range; Clamp bounds it.
func (ks Knobs) FromUnit(u []float64) []float64 {
	v := make([]float64, len(ks))
	for i, k := range ks {
		v[i] = k.Min + u[i]*(k.Max-k.Min)
	}
	return v
}

// Clamp bounds each value to its knob's range.
func (ks Knobs) Clamp(values []float64) []float64 {
	v := make([]float64, len(ks))
	for i, k := range ks {
		v[i] = min(max(values[i], k.Min), k.Max)
	}
	return v
}

// Apply writes clamped values into cfg. Size and speed bands are kept
// ordered so the result still validates.
func (ks Knobs) Apply(cfg *config.Config, values []float64) {
	for i, v := range ks.Clamp(values) {
		*ks[i].field(cfg) = v
	}
	cfg.Asteroid.SpeedMax = max(cfg.Asteroid.SpeedMax, cfg.Asteroid.SpeedMin)
	cfg.Asteroid.SizeMax = max(cfg.Asteroid.SizeMax, cfg.Asteroid.SizeMin)
}

// Read returns cfg's current knob values.
func (ks Knobs) Read(cfg *config.Config) []float64 {
	v := make([]float64, len(ks))
	for i, k := range ks {
		v[i] = *k.field(cfg)
	}
	return v
}
