package game

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/roids/components"
	"github.com/pthm-cable/roids/effects"
	"github.com/pthm-cable/roids/geom"
	"github.com/pthm-cable/roids/systems"
)

// blinkHz is the on/off rate of entities inside an invisibility window.
const blinkHz = 10

// FullFrame is the texture rectangle covering a whole texture.
var FullFrame = geom.Rect{Size: geom.V(1, 1)}

// Canvas receives the draw calls for one frame. Positions and sizes are in
// world units.
type Canvas interface {
	Sprite(tex components.Texture, src geom.Rect, pos geom.Vec, size float64, facing geom.Vec, tint components.Color)
	Circle(pos geom.Vec, radius float64, color components.Color)
	Line(a, b geom.Vec, thickness float64, color components.Color)
}

// Render submits the current state to c. It does not modify the game and
// works the same whether or not the last Update advanced the simulation.
func (g *Game) Render(c Canvas) {
	for _, w := range g.walls {
		c.Line(w.P1, w.P2, 4, components.WallColor)
	}

	g.renderParticles(c, g.exhaust)
	g.renderParticles(c, g.debris)

	for _, pool := range g.pools() {
		for i := range pool {
			e := &pool[i]
			if !e.Enabled || g.blinkedOut(e) {
				continue
			}
			if e.Kind == components.KindShip && e.Ship().Thrusting {
				g.renderExhaust(c, e)
			}
			tint := components.White
			if e.Flashing(g.now) {
				tint = components.HitRed
			}
			c.Sprite(e.Texture, FullFrame, e.Pos, e.Size, e.Facing, tint)
		}
	}

	g.effects.Each(g.now, func(in effects.Instance) {
		c.Sprite(in.Texture, in.Frame, in.Pos, in.Size, geom.Up, components.White)
	})
}

// blinkedOut reports whether e is in the hidden half of its blink cycle.
func (g *Game) blinkedOut(e *components.Entity) bool {
	if e.Visible(g.now) {
		return false
	}
	return int(math.Floor(g.now*blinkHz*2))%2 == 1
}

func (g *Game) renderExhaust(c Canvas, ship *components.Entity) {
	scale := g.cfg.Animations.ShipExhaust.Scale
	pos := r2.Sub(ship.Pos, r2.Scale(ship.Size*(0.5+scale/2), ship.Facing))
	c.Sprite(components.TexShipExhaust, g.exhaustClip.Rect(g.now), pos, ship.Size*scale, ship.Facing, components.White)
}

func (g *Game) renderParticles(c Canvas, pool *systems.ParticlePool) {
	for i := range pool.Particles {
		p := &pool.Particles[i]
		if !p.Enabled {
			continue
		}
		col := p.Color
		col.A = uint8(float64(col.A) * pool.Fade(p, g.now))
		c.Circle(p.Pos, pool.Size, col)
	}
}
