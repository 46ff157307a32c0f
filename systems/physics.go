// Package systems contains the per-step systems shared by the simulation:
// motion helpers, elastic collision response, the collision collector and
// particle pools.
package systems

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/roids/components"
	"github.com/pthm-cable/roids/geom"
)

// Integrate advances e by its velocity and spin over dt.
func Integrate(e *components.Entity, dt float64) {
	e.Pos = r2.Add(e.Pos, r2.Scale(dt, e.Vel))
	if e.RotationSpeed != 0 {
		e.Facing = geom.Normalize(geom.RotateDeg(e.Facing, e.RotationSpeed*dt))
	}
}

// Overlaps reports whether the colliders of a and b intersect.
func Overlaps(a, b *components.Entity) bool {
	r := a.ColliderRadius + b.ColliderRadius
	return geom.DistanceSq(a.Pos, b.Pos) < r*r
}

// Approaching reports whether a and b are moving toward each other.
func Approaching(a, b *components.Entity) bool {
	return r2.Dot(r2.Sub(a.Vel, b.Vel), r2.Sub(a.Pos, b.Pos)) < 0
}

// ElasticCollision replaces the velocities of a and b with the result of a
// perfectly elastic collision, using each entity's size as its mass.
// Coincident centres have no contact normal and are left untouched.
func ElasticCollision(a, b *components.Entity) {
	dx := r2.Sub(a.Pos, b.Pos)
	d2 := r2.Norm2(dx)
	if d2 == 0 {
		return
	}
	m1, m2 := a.Size, b.Size
	if m1+m2 == 0 {
		return
	}
	dv := r2.Sub(a.Vel, b.Vel)
	k := r2.Dot(dv, dx) / d2
	a.Vel = r2.Sub(a.Vel, r2.Scale(2*m2/(m1+m2)*k, dx))
	b.Vel = r2.Add(b.Vel, r2.Scale(2*m1/(m1+m2)*k, dx))
}

// Momentum returns mass * velocity for e.
func Momentum(e *components.Entity) geom.Vec {
	return r2.Scale(e.Size, e.Vel)
}
