package geom

import "gonum.org/v1/gonum/spatial/r2"

// Rect is an axis-aligned rectangle. Pos is the minimum corner.
type Rect struct {
	Pos  Vec
	Size Vec
}

// NewRectCenter returns the rectangle of the given size centred on c.
func NewRectCenter(c, size Vec) Rect {
	return Rect{Pos: r2.Sub(c, r2.Scale(0.5, size)), Size: size}
}

// Center returns the centre of r.
func (r Rect) Center() Vec {
	return r2.Add(r.Pos, r2.Scale(0.5, r.Size))
}

// Max returns the maximum corner of r.
func (r Rect) Max() Vec { return r2.Add(r.Pos, r.Size) }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vec) bool {
	m := r.Max()
	return p.X >= r.Pos.X && p.X <= m.X && p.Y >= r.Pos.Y && p.Y <= m.Y
}

// Inset shrinks r by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{
		Pos:  Vec{X: r.Pos.X + d, Y: r.Pos.Y + d},
		Size: Vec{X: r.Size.X - 2*d, Y: r.Size.Y - 2*d},
	}
}

// Segment is a line segment between P1 and P2.
type Segment struct {
	P1, P2 Vec
}

// Center returns the midpoint of s.
func (s Segment) Center() Vec {
	return r2.Scale(0.5, r2.Add(s.P1, s.P2))
}

// Dir returns the unit direction from P1 to P2.
func (s Segment) Dir() Vec {
	return Normalize(r2.Sub(s.P2, s.P1))
}

// LineLineIntersect returns the point where segments a and b cross.
// Parallel segments never intersect.
func LineLineIntersect(a, b Segment) (Vec, bool) {
	d1 := r2.Sub(a.P2, a.P1)
	d2 := r2.Sub(b.P2, b.P1)
	denom := r2.Cross(d1, d2)
	if denom == 0 {
		return Vec{}, false
	}
	w := r2.Sub(b.P1, a.P1)
	t := r2.Cross(w, d2) / denom
	u := r2.Cross(w, d1) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Vec{}, false
	}
	return r2.Add(a.P1, r2.Scale(t, d1)), true
}

// LineCircleIntersect reports whether seg touches the circle at center with
// radius r, and returns the contact point. An endpoint inside the circle is
// the contact; otherwise the segment is crossed with the chord through the
// centre perpendicular to it.
func LineCircleIntersect(seg Segment, center Vec, r float64) (Vec, bool) {
	r2sq := r * r
	if DistanceSq(seg.P1, center) <= r2sq {
		return seg.P1, true
	}
	if DistanceSq(seg.P2, center) <= r2sq {
		return seg.P2, true
	}
	n := RotateDeg(Normalize(r2.Sub(seg.P1, seg.P2)), 90)
	chord := Segment{
		P1: r2.Add(center, r2.Scale(r, n)),
		P2: r2.Sub(center, r2.Scale(r, n)),
	}
	return LineLineIntersect(seg, chord)
}

// Normal returns the unit normal of seg on the side facing p.
func Normal(seg Segment, p Vec) Vec {
	n := RotateDeg(Normalize(r2.Sub(seg.P2, seg.P1)), 90)
	if r2.Dot(n, r2.Sub(p, seg.P1)) < 0 {
		n = r2.Scale(-1, n)
	}
	return n
}
