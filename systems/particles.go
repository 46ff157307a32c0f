package systems

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/roids/components"
	"github.com/pthm-cable/roids/geom"
)

// VelocityRule picks the initial velocity of particle i of a burst of count.
type VelocityRule func(i, count int, rng *rand.Rand) geom.Vec

// RadialBurst spreads particles evenly around the circle with speeds in
// [minSpeed, maxSpeed].
func RadialBurst(minSpeed, maxSpeed float64) VelocityRule {
	return func(i, count int, rng *rand.Rand) geom.Vec {
		deg := 360*float64(i)/float64(count) + rng.Float64()*360/float64(count)
		return r2.Scale(geom.Lerp(minSpeed, maxSpeed, rng.Float64()), geom.FromAngleDeg(deg))
	}
}

// Cone emits particles along dir within spreadDeg either side, at speed with
// up to 30% random slowdown.
func Cone(dir geom.Vec, spreadDeg, speed float64) VelocityRule {
	return func(_, _ int, rng *rand.Rand) geom.Vec {
		d := geom.RotateDeg(dir, (rng.Float64()*2-1)*spreadDeg)
		return r2.Scale(speed*(0.7+0.3*rng.Float64()), d)
	}
}

// ParticlePool is a fixed-capacity ring of particles. Spawning overwrites
// the oldest slot when the ring is full.
type ParticlePool struct {
	Particles []components.Particle
	Lifetime  float64
	Size      float64
	counter   int
}

// NewParticlePool creates a pool with the given capacity and lifetime.
func NewParticlePool(capacity int, lifetime, size float64) *ParticlePool {
	return &ParticlePool{
		Particles: make([]components.Particle, capacity),
		Lifetime:  lifetime,
		Size:      size,
	}
}

// Spawn writes count particles at pos with velocities from rule.
func (p *ParticlePool) Spawn(pos geom.Vec, count int, rule VelocityRule, color components.Color, now float64, rng *rand.Rand) {
	for i := 0; i < count; i++ {
		slot := &p.Particles[p.counter%len(p.Particles)]
		p.counter++
		*slot = components.Particle{
			Pos:       pos,
			Vel:       rule(i, count, rng),
			SpawnTime: now,
			Color:     color,
			Enabled:   true,
		}
	}
}

// Update ages every particle and drifts the live ones by dt.
func (p *ParticlePool) Update(now, dt float64) {
	for i := range p.Particles {
		pt := &p.Particles[i]
		if !pt.Enabled {
			continue
		}
		pt.Enabled = now-pt.SpawnTime < p.Lifetime
		if pt.Enabled {
			pt.Pos = r2.Add(pt.Pos, r2.Scale(dt, pt.Vel))
		}
	}
}

// Fade returns the remaining life fraction of pt in [0, 1].
func (p *ParticlePool) Fade(pt *components.Particle, now float64) float64 {
	return geom.Clamp(1-(now-pt.SpawnTime)/p.Lifetime, 0, 1)
}

// Active returns the number of enabled particles.
func (p *ParticlePool) Active() int {
	n := 0
	for i := range p.Particles {
		if p.Particles[i].Enabled {
			n++
		}
	}
	return n
}

// Reset disables every particle.
func (p *ParticlePool) Reset() {
	for i := range p.Particles {
		p.Particles[i].Enabled = false
	}
	p.counter = 0
}
