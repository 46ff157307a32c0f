// Package geom provides the 2-D vector, rectangle and segment math used by the
// simulation. Vectors are gonum r2 values; angles are in degrees, counter-clockwise,
// with the world y axis pointing up.
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec is a 2-D vector in world units.
type Vec = r2.Vec

// Up is the default facing of a freshly spawned ship.
var Up = Vec{X: 0, Y: 1}

const normalizeEpsilon = 1e-8

// V is shorthand for a Vec literal.
func V(x, y float64) Vec { return Vec{X: x, Y: y} }

// Normalize returns the unit vector of v, or the zero vector when v is
// too short to have a direction.
func Normalize(v Vec) Vec {
	if r2.Norm2(v) <= normalizeEpsilon {
		return Vec{}
	}
	return r2.Unit(v)
}

// RotateDeg rotates v counter-clockwise by deg degrees about the origin.
func RotateDeg(v Vec, deg float64) Vec {
	return r2.Rotate(v, deg*math.Pi/180, Vec{})
}

// FromAngleDeg returns the unit vector at deg degrees from the +x axis.
func FromAngleDeg(deg float64) Vec {
	s, c := math.Sincos(deg * math.Pi / 180)
	return Vec{X: c, Y: s}
}

// AngleDeg returns the direction of v in [0, 360).
func AngleDeg(v Vec) float64 {
	return WrapDeg(math.Atan2(v.Y, v.X) * 180 / math.Pi)
}

// SignedAngleDeg returns the rotation in (-180, 180] that takes from onto to.
func SignedAngleDeg(from, to Vec) float64 {
	a := math.Atan2(r2.Cross(from, to), r2.Dot(from, to)) * 180 / math.Pi
	if a <= -180 {
		a += 360
	}
	return a
}

// WrapDeg wraps deg into [0, 360).
func WrapDeg(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// DeltaDeg returns the shortest signed rotation in (-180, 180] from a to b.
func DeltaDeg(a, b float64) float64 {
	d := WrapDeg(b - a)
	if d > 180 {
		d -= 360
	}
	return d
}

// DistanceSq returns the squared distance between a and b.
func DistanceSq(a, b Vec) float64 {
	return r2.Norm2(r2.Sub(a, b))
}

// Reflect mirrors velocity v off a surface with normal n: -v is rotated by
// twice its angle to the normal. The magnitude of v is preserved.
func Reflect(v, n Vec) Vec {
	back := r2.Scale(-1, v)
	return RotateDeg(back, 2*SignedAngleDeg(back, n))
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 { return a + (b-a)*t }

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
