package systems

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/roids/components"
	"github.com/pthm-cable/roids/geom"
)

func TestElasticCollisionConservesMomentum(t *testing.T) {
	tests := []struct {
		name string
		a, b components.Entity
	}{
		{
			name: "head on equal",
			a:    components.Entity{Size: 100, Pos: geom.V(-10, 0), Vel: geom.V(50, 0)},
			b:    components.Entity{Size: 100, Pos: geom.V(10, 0), Vel: geom.V(-50, 0)},
		},
		{
			name: "ship into big rock",
			a:    components.Entity{Size: 64, Pos: geom.V(0, 0), Vel: geom.V(300, 120)},
			b:    components.Entity{Size: 150, Pos: geom.V(40, 25), Vel: geom.V(-30, 10)},
		},
		{
			name: "oblique small rocks",
			a:    components.Entity{Size: 45, Pos: geom.V(3, -7), Vel: geom.V(-12, 90)},
			b:    components.Entity{Size: 60, Pos: geom.V(-20, 11), Vel: geom.V(70, -15)},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, b := tc.a, tc.b
			before := r2.Add(Momentum(&a), Momentum(&b))
			energyBefore := a.Size*r2.Norm2(a.Vel) + b.Size*r2.Norm2(b.Vel)
			ElasticCollision(&a, &b)
			after := r2.Add(Momentum(&a), Momentum(&b))
			if math.Abs(before.X-after.X) > 1e-6 || math.Abs(before.Y-after.Y) > 1e-6 {
				t.Errorf("momentum %v -> %v", before, after)
			}
			energyAfter := a.Size*r2.Norm2(a.Vel) + b.Size*r2.Norm2(b.Vel)
			if math.Abs(energyBefore-energyAfter) > 1e-6*energyBefore {
				t.Errorf("kinetic energy %v -> %v", energyBefore, energyAfter)
			}
		})
	}
}

func TestElasticCollisionEqualMassSwap(t *testing.T) {
	a := components.Entity{Size: 10, Pos: geom.V(-1, 0), Vel: geom.V(5, 0)}
	b := components.Entity{Size: 10, Pos: geom.V(1, 0), Vel: geom.V(0, 0)}
	ElasticCollision(&a, &b)
	if math.Abs(a.Vel.X) > 1e-9 || math.Abs(b.Vel.X-5) > 1e-9 {
		t.Errorf("velocities = %v, %v, want exchange", a.Vel, b.Vel)
	}
}

func TestElasticCollisionCoincident(t *testing.T) {
	a := components.Entity{Size: 10, Pos: geom.V(1, 1), Vel: geom.V(5, 0)}
	b := components.Entity{Size: 10, Pos: geom.V(1, 1), Vel: geom.V(-5, 0)}
	ElasticCollision(&a, &b)
	if a.Vel != geom.V(5, 0) || b.Vel != geom.V(-5, 0) {
		t.Errorf("coincident bodies changed: %v %v", a.Vel, b.Vel)
	}
}

func TestApproachingAndOverlaps(t *testing.T) {
	a := components.Entity{ColliderRadius: 5, Pos: geom.V(0, 0), Vel: geom.V(1, 0)}
	b := components.Entity{ColliderRadius: 5, Pos: geom.V(9, 0)}
	if !Overlaps(&a, &b) {
		t.Error("expected overlap at distance 9 with radii 5+5")
	}
	if !Approaching(&a, &b) {
		t.Error("expected approaching")
	}
	a.Vel = geom.V(-1, 0)
	if Approaching(&a, &b) {
		t.Error("separating bodies reported as approaching")
	}
	b.Pos = geom.V(10, 0)
	if Overlaps(&a, &b) {
		t.Error("touching colliders should not overlap")
	}
}

func TestIntegrate(t *testing.T) {
	e := components.Entity{Pos: geom.V(0, 0), Vel: geom.V(10, -20), Facing: geom.V(1, 0), RotationSpeed: 90}
	Integrate(&e, 0.5)
	if e.Pos != geom.V(5, -10) {
		t.Errorf("Pos = %v, want (5,-10)", e.Pos)
	}
	if math.Abs(e.Facing.X-math.Sqrt2/2) > 1e-9 || math.Abs(e.Facing.Y-math.Sqrt2/2) > 1e-9 {
		t.Errorf("Facing = %v, want 45 degrees", e.Facing)
	}
}

func TestCollectOrderAndFilter(t *testing.T) {
	ships := []components.Entity{{Kind: components.KindShip, Enabled: true, InvisibleUntil: 5}}
	bullets := []components.Entity{
		{Kind: components.KindBullet, Enabled: true},
		{Kind: components.KindBullet},
	}
	rocks := []components.Entity{
		{Kind: components.KindAsteroid, Enabled: true},
		{Kind: components.KindAsteroid, Enabled: true, InvisibleUntil: 1},
	}
	l := NewCollisionList(5)
	l.Collect(1, ships, bullets, rocks)
	if l.Len() != 3 {
		t.Fatalf("Len = %d, want 3", l.Len())
	}
	want := []components.Kind{components.KindBullet, components.KindAsteroid, components.KindAsteroid}
	for i, k := range want {
		if l.Entities[i].Kind != k {
			t.Errorf("entry %d = %v, want %v", i, l.Entities[i].Kind, k)
		}
	}
	if l.Entities[0] != &bullets[0] {
		t.Error("collector must reference pool slots, not copies")
	}
}

func TestCollectOverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on overflow")
		}
	}()
	pool := []components.Entity{{Enabled: true}, {Enabled: true}}
	NewCollisionList(1).Collect(0, pool)
}
