package geom

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

const eps = 1e-9

func near(a, b Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

func TestNormalize(t *testing.T) {
	if got := Normalize(V(3, 4)); !near(got, V(0.6, 0.8), eps) {
		t.Errorf("Normalize(3,4) = %v, want (0.6,0.8)", got)
	}
	if got := Normalize(V(1e-5, 0)); got != (Vec{}) {
		t.Errorf("Normalize(tiny) = %v, want zero vector", got)
	}
}

func TestRotateDeg(t *testing.T) {
	tests := []struct {
		name string
		v    Vec
		deg  float64
		want Vec
	}{
		{"quarter turn", V(1, 0), 90, V(0, 1)},
		{"half turn", V(1, 0), 180, V(-1, 0)},
		{"negative", V(0, 1), -90, V(1, 0)},
		{"scaled", V(2, 0), 45, V(math.Sqrt2, math.Sqrt2)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := RotateDeg(tc.v, tc.deg); !near(got, tc.want, 1e-9) {
				t.Errorf("RotateDeg(%v, %v) = %v, want %v", tc.v, tc.deg, got, tc.want)
			}
		})
	}
}

func TestAngles(t *testing.T) {
	if got := AngleDeg(V(0, -1)); math.Abs(got-270) > eps {
		t.Errorf("AngleDeg(0,-1) = %v, want 270", got)
	}
	if got := SignedAngleDeg(V(1, 0), V(0, -1)); math.Abs(got+90) > eps {
		t.Errorf("SignedAngleDeg = %v, want -90", got)
	}
	if got := DeltaDeg(350, 10); math.Abs(got-20) > eps {
		t.Errorf("DeltaDeg(350,10) = %v, want 20", got)
	}
	if got := WrapDeg(-45); math.Abs(got-315) > eps {
		t.Errorf("WrapDeg(-45) = %v, want 315", got)
	}
}

func TestReflect(t *testing.T) {
	tests := []struct {
		name string
		v, n Vec
		want Vec
	}{
		{"head on", V(0, -5), V(0, 1), V(0, 5)},
		{"glancing", V(3, -4), V(0, 1), V(3, 4)},
		{"vertical wall", V(-2, 1), V(1, 0), V(2, 1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Reflect(tc.v, tc.n)
			if !near(got, tc.want, 1e-9) {
				t.Errorf("Reflect(%v, %v) = %v, want %v", tc.v, tc.n, got, tc.want)
			}
		})
	}
}

func TestReflectPreservesSpeed(t *testing.T) {
	for deg := 0.0; deg < 360; deg += 17 {
		v := r2.Scale(250, FromAngleDeg(deg))
		n := FromAngleDeg(deg*3 + 11)
		got := Reflect(v, n)
		if math.Abs(r2.Norm(got)-250) > 1e-9 {
			t.Errorf("deg %v: |Reflect| = %v, want 250", deg, r2.Norm(got))
		}
	}
}

func TestLineLineIntersect(t *testing.T) {
	p, ok := LineLineIntersect(Segment{V(-1, 0), V(1, 0)}, Segment{V(0, -1), V(0, 1)})
	if !ok || !near(p, V(0, 0), eps) {
		t.Errorf("crossing segments: got %v %v, want (0,0) true", p, ok)
	}
	if _, ok := LineLineIntersect(Segment{V(0, 0), V(1, 0)}, Segment{V(0, 1), V(1, 1)}); ok {
		t.Error("parallel segments should not intersect")
	}
	if _, ok := LineLineIntersect(Segment{V(0, 0), V(1, 0)}, Segment{V(2, -1), V(2, 1)}); ok {
		t.Error("disjoint segments should not intersect")
	}
}

func TestLineCircleIntersect(t *testing.T) {
	wall := Segment{V(-100, 0), V(100, 0)}
	tests := []struct {
		name   string
		seg    Segment
		center Vec
		r      float64
		hit    bool
	}{
		{"crossing middle", wall, V(10, 5), 6, true},
		{"just short", wall, V(10, 7), 6, false},
		{"endpoint inside", wall, V(103, 2), 5, true},
		{"beyond endpoint", wall, V(110, 1), 5, false},
		{"segment inside circle", Segment{V(-1, 0), V(1, 0)}, V(0, 0), 5, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, hit := LineCircleIntersect(tc.seg, tc.center, tc.r)
			if hit != tc.hit {
				t.Errorf("hit = %v, want %v", hit, tc.hit)
			}
		})
	}
}

func TestNormalFacesPoint(t *testing.T) {
	wall := Segment{V(0, 0), V(10, 0)}
	if n := Normal(wall, V(5, 3)); !near(n, V(0, 1), eps) {
		t.Errorf("Normal above = %v, want (0,1)", n)
	}
	if n := Normal(wall, V(5, -3)); !near(n, V(0, -1), eps) {
		t.Errorf("Normal below = %v, want (0,-1)", n)
	}
}

func TestRect(t *testing.T) {
	r := NewRectCenter(V(0, 0), V(10, 4))
	if !r.Contains(V(5, 2)) || r.Contains(V(5.1, 0)) {
		t.Errorf("Contains wrong for %+v", r)
	}
	if c := r.Inset(1).Center(); !near(c, V(0, 0), eps) {
		t.Errorf("Inset center = %v", c)
	}
}
