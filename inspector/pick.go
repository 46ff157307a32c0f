package inspector

import (
	"math"

	"github.com/pthm-cable/roids/components"
	"github.com/pthm-cable/roids/geom"
)

// Source exposes the entity pools an inspector can select from.
type Source interface {
	Pool(kind components.Kind) []components.Entity
}

// Ref identifies a pool slot for as long as the same entity occupies it.
// Slots are reused, so the spawn time tells a respawned occupant apart.
type Ref struct {
	Kind      components.Kind
	Index     int
	SpawnTime float64
}

// Resolve returns the referenced entity, or nil once it is gone.
func (r Ref) Resolve(src Source) *components.Entity {
	pool := src.Pool(r.Kind)
	if r.Index < 0 || r.Index >= len(pool) {
		return nil
	}
	e := &pool[r.Index]
	if !e.Enabled || e.SpawnTime != r.SpawnTime {
		return nil
	}
	return e
}

// Pick returns the enabled entity whose collider is closest to at, within
// slop world units of its edge.
func Pick(src Source, at geom.Vec, slop float64) (Ref, bool) {
	var best Ref
	bestDist := 0.0
	found := false

	for _, kind := range components.Kinds {
		pool := src.Pool(kind)
		for i := range pool {
			e := &pool[i]
			if !e.Enabled {
				continue
			}
			d := math.Sqrt(geom.DistanceSq(e.Pos, at))
			if d > e.ColliderRadius+slop {
				continue
			}
			if !found || d < bestDist {
				best = Ref{Kind: kind, Index: i, SpawnTime: e.SpawnTime}
				bestDist = d
				found = true
			}
		}
	}
	return best, found
}
