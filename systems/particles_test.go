package systems

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/roids/components"
	"github.com/pthm-cable/roids/geom"
)

func TestParticleLifetime(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := NewParticlePool(8, 1.0, 2)
	p.Spawn(geom.V(0, 0), 4, RadialBurst(10, 20), components.Debris, 0, rng)

	tests := []struct {
		now  float64
		want int
	}{
		{0.5, 4},
		{0.99, 4},
		{1.0, 0},
	}
	for _, tc := range tests {
		p.Update(tc.now, 0.01)
		if got := p.Active(); got != tc.want {
			t.Errorf("now=%v: Active = %d, want %d", tc.now, got, tc.want)
		}
	}
}

func TestParticleRingOverwrite(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	p := NewParticlePool(4, 10, 2)
	p.Spawn(geom.V(0, 0), 3, RadialBurst(1, 1), components.Debris, 0, rng)
	p.Spawn(geom.V(5, 5), 3, RadialBurst(1, 1), components.Spark, 1, rng)

	if got := p.Active(); got != 4 {
		t.Fatalf("Active = %d, want capacity 4", got)
	}
	// Slots 3, 0, 1 were rewritten by the second burst.
	for _, i := range []int{3, 0, 1} {
		if p.Particles[i].Color != components.Spark || p.Particles[i].SpawnTime != 1 {
			t.Errorf("slot %d not overwritten: %+v", i, p.Particles[i])
		}
	}
	if p.Particles[2].Color != components.Debris {
		t.Errorf("slot 2 should keep the first burst")
	}
}

func TestParticleDrift(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	p := NewParticlePool(1, 5, 2)
	p.Spawn(geom.V(1, 1), 1, func(int, int, *rand.Rand) geom.Vec { return geom.V(10, 0) }, components.White, 0, rng)
	p.Update(0.1, 0.1)
	if got := p.Particles[0].Pos; math.Abs(got.X-2) > 1e-9 || got.Y != 1 {
		t.Errorf("Pos = %v, want (2,1)", got)
	}
}

func TestVelocityRules(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	burst := RadialBurst(50, 100)
	for i := 0; i < 16; i++ {
		s := r2.Norm(burst(i, 16, rng))
		if s < 50-1e-9 || s > 100+1e-9 {
			t.Errorf("burst speed %v out of band", s)
		}
	}
	cone := Cone(geom.V(0, -1), 20, 100)
	for i := 0; i < 16; i++ {
		v := cone(i, 16, rng)
		if a := math.Abs(geom.SignedAngleDeg(geom.V(0, -1), v)); a > 20+1e-9 {
			t.Errorf("cone angle %v exceeds spread", a)
		}
	}
}
