package game

import (
	"testing"

	"github.com/pthm-cable/roids/components"
	"github.com/pthm-cable/roids/config"
	"github.com/pthm-cable/roids/effects"
	"github.com/pthm-cable/roids/geom"
)

// newTestGame returns a game with an empty field: no asteroids, no turrets,
// a visible ship at rest at the origin, and the clock at 10s.
func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New(config.Default(), 1, Options{})
	for i := range g.asteroids {
		g.asteroids[i].Enabled = false
	}
	for i := range g.turrets {
		g.turrets[i].Enabled = false
	}
	g.remaining = 0
	g.now = 10
	ship := g.Ship()
	ship.InvisibleUntil = 0
	ship.Vel = geom.Vec{}
	return g
}

// placeAsteroid enables an asteroid of size at pos with velocity vel.
func placeAsteroid(g *Game, pos, vel geom.Vec, size float64) *components.Entity {
	a := g.spawnAsteroid(pos, geom.V(1, 0), size, 0)
	a.Vel = vel
	a.RotationSpeed = 0
	return a
}

// placeTurret enables turret slot i at pos.
func placeTurret(g *Game, i int, pos geom.Vec) *components.Entity {
	g.spawnTurrets()
	for j := range g.turrets {
		g.turrets[j].Enabled = j == i
	}
	t := &g.turrets[i]
	t.Pos = pos
	return t
}

// resolve runs the collision phases once at the current time.
func resolve(g *Game) {
	g.events = g.events[:0]
	g.collisions.Collect(g.now, g.pools()...)
	g.resolveEntities()
	g.resolveWalls()
}

// countEvents returns how many events of kind the last step raised.
func countEvents(g *Game, kind EventKind) int {
	n := 0
	for _, e := range g.Events() {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// effectsAt returns the live effects of kind.
func effectsAt(g *Game, kind effects.Kind) []effects.Instance {
	var out []effects.Instance
	g.effects.Each(g.now, func(in effects.Instance) {
		if in.Kind == kind {
			out = append(out, in)
		}
	})
	return out
}

// recordingCanvas records draw calls.
type recordingCanvas struct {
	sprites []components.Texture
	tints   []components.Color
	circles int
	lines   int
}

func (c *recordingCanvas) Sprite(tex components.Texture, _ geom.Rect, _ geom.Vec, _ float64, _ geom.Vec, tint components.Color) {
	c.sprites = append(c.sprites, tex)
	c.tints = append(c.tints, tint)
}

func (c *recordingCanvas) Circle(geom.Vec, float64, components.Color) { c.circles++ }

func (c *recordingCanvas) Line(geom.Vec, geom.Vec, float64, components.Color) { c.lines++ }

func (c *recordingCanvas) count(tex components.Texture) int {
	n := 0
	for _, s := range c.sprites {
		if s == tex {
			n++
		}
	}
	return n
}
