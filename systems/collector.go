package systems

import (
	"fmt"

	"github.com/pthm-cable/roids/components"
)

// CollisionList is the per-step list of entities taking part in collision
// resolution. Its capacity is fixed at construction.
type CollisionList struct {
	Entities []*components.Entity
}

// NewCollisionList creates a list that can hold capacity entities.
func NewCollisionList(capacity int) *CollisionList {
	return &CollisionList{Entities: make([]*components.Entity, 0, capacity)}
}

// Collect rebuilds the list from pools, in pool order, keeping entities that
// are enabled and past their invisibility window.
func (l *CollisionList) Collect(now float64, pools ...[]components.Entity) {
	l.Entities = l.Entities[:0]
	for _, pool := range pools {
		for i := range pool {
			if !pool[i].Collidable(now) {
				continue
			}
			if len(l.Entities) == cap(l.Entities) {
				panic(fmt.Sprintf("systems: collision list overflow at %d entities", cap(l.Entities)))
			}
			l.Entities = append(l.Entities, &pool[i])
		}
	}
}

// Len returns the number of collected entities.
func (l *CollisionList) Len() int { return len(l.Entities) }
