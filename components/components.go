// Package components defines the records stored in the game's entity pools.
package components

import "github.com/pthm-cable/roids/geom"

// Kind identifies what an entity is. Kinds are distinct powers of two so the
// bitwise OR of two kinds identifies an unordered pair.
type Kind uint8

const (
	KindShip Kind = 1 << iota
	KindBullet
	KindEnemyBullet
	KindChargedBullet
	KindAsteroid
	KindTurret
)

// Kinds lists every kind in collision-collection order.
var Kinds = [...]Kind{KindShip, KindBullet, KindAsteroid, KindTurret, KindEnemyBullet, KindChargedBullet}

func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindBullet:
		return "bullet"
	case KindEnemyBullet:
		return "enemy_bullet"
	case KindChargedBullet:
		return "charged_bullet"
	case KindAsteroid:
		return "asteroid"
	case KindTurret:
		return "turret"
	}
	return "unknown"
}

// Has reports whether the pair key k contains kind o.
func (k Kind) Has(o Kind) bool { return k&o != 0 }

// Texture is an opaque handle to a loaded sprite sheet.
type Texture uint8

const (
	TexNone Texture = iota
	TexShip
	TexBullet
	TexEnemyBullet
	TexAsteroid
	TexChargedBullet
	TexShipExhaust
	TexExplosionBig
	TexExplosionCharged
	TexExplosionSmall
	TexTurret
	TextureCount
)

// Color is an 8-bit RGBA colour.
type Color struct {
	R, G, B, A uint8
}

// Palette used by the simulation for particles and tints.
var (
	White     = Color{255, 255, 255, 255}
	HitRed    = Color{255, 80, 80, 255}
	Debris    = Color{170, 150, 130, 255}
	Spark     = Color{255, 200, 90, 255}
	Exhaust   = Color{120, 190, 255, 255}
	WallColor = Color{90, 200, 255, 255}
)

// Particle is one drifting point in a particle pool.
type Particle struct {
	Pos       geom.Vec
	Vel       geom.Vec
	SpawnTime float64
	Color     Color
	Enabled   bool
}
