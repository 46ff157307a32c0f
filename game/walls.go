package game

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/roids/components"
	"github.com/pthm-cable/roids/effects"
	"github.com/pthm-cable/roids/geom"
)

// resolveWalls tests every collected entity against every wall segment. A
// body whose path from PrevPos crossed a wall counts as touching it even if
// its collider is already clear of the far side.
func (g *Game) resolveWalls() {
	for _, e := range g.collisions.Entities {
		if e.Kind == components.KindTurret {
			continue
		}
		for _, w := range g.walls {
			if !e.Enabled {
				break
			}
			contact, hit := geom.LineCircleIntersect(w, e.Pos, e.ColliderRadius)
			if !hit {
				contact, hit = geom.LineLineIntersect(w, geom.Segment{P1: e.PrevPos, P2: e.Pos})
			}
			if !hit {
				continue
			}
			g.hitWall(e, w, contact)
		}
	}
}

// hitWall applies the kind-specific response to a wall contact.
func (g *Game) hitWall(e *components.Entity, w geom.Segment, contact geom.Vec) {
	switch e.Kind {
	case components.KindChargedBullet:
		e.Enabled = false
		g.explode(effects.ExplosionCharged, contact, e.Size)
		return
	case components.KindEnemyBullet:
		if g.cfg.EnemyBullet.ExplodeOnWall {
			e.Enabled = false
			g.explode(effects.ExplosionSmall, contact, e.Size)
			return
		}
	case components.KindBullet:
		if g.cfg.Bullet.ExplodeOnWall {
			e.Enabled = false
			g.explode(effects.ExplosionSmall, contact, e.Size)
			return
		}
	}

	n := approachNormal(w, e)
	// Only bounce bodies moving into the wall; a body already leaving keeps going.
	if r2.Dot(e.Vel, n) >= 0 {
		return
	}
	e.Vel = geom.Reflect(e.Vel, n)
	e.Facing = reflectFacing(e)
	// A centre that crossed the line is mirrored back to the approach side.
	if d := r2.Dot(r2.Sub(e.Pos, w.P1), n); d < 0 {
		e.Pos = r2.Sub(e.Pos, r2.Scale(2*d, n))
	}
	if e.Kind == components.KindShip {
		g.checkShipSpeed(e)
	}
}

// approachNormal returns the wall normal facing the side e came from. The
// position before the last motion step decides; a body that started on the
// line falls back to its current side.
func approachNormal(w geom.Segment, e *components.Entity) geom.Vec {
	from := e.PrevPos
	n := geom.Normal(w, from)
	if r2.Dot(n, r2.Sub(from, w.P1)) == 0 {
		n = geom.Normal(w, e.Pos)
	}
	return n
}

// reflectFacing points bullets along their new velocity; other kinds keep
// their facing.
func reflectFacing(e *components.Entity) geom.Vec {
	switch e.Kind {
	case components.KindBullet, components.KindEnemyBullet:
		if d := geom.Normalize(e.Vel); d != (geom.Vec{}) {
			return d
		}
	}
	return e.Facing
}
