package game

import (
	"github.com/pthm-cable/roids/effects"
	"github.com/pthm-cable/roids/geom"
)

// EventKind identifies a gameplay event.
type EventKind uint8

const (
	EventShot EventKind = iota
	EventChargedShot
	EventEnemyShot
	EventExplosion
	EventShipHit
	EventShipDestroyed
	EventShipRespawned
	EventAsteroidDestroyed
	EventTurretDestroyed
	EventLevelAdvanced
)

func (k EventKind) String() string {
	switch k {
	case EventShot:
		return "shot"
	case EventChargedShot:
		return "charged_shot"
	case EventEnemyShot:
		return "enemy_shot"
	case EventExplosion:
		return "explosion"
	case EventShipHit:
		return "ship_hit"
	case EventShipDestroyed:
		return "ship_destroyed"
	case EventShipRespawned:
		return "ship_respawned"
	case EventAsteroidDestroyed:
		return "asteroid_destroyed"
	case EventTurretDestroyed:
		return "turret_destroyed"
	case EventLevelAdvanced:
		return "level_advanced"
	}
	return "unknown"
}

// Event is something that happened during a step, for sound and statistics.
type Event struct {
	Kind      EventKind
	Pos       geom.Vec
	Size      float64
	Explosion effects.Kind // Set for EventExplosion
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

// explode starts an explosion effect and raises its event.
func (g *Game) explode(kind effects.Kind, pos geom.Vec, size float64) {
	g.effects.Trigger(kind, pos, size, g.now)
	g.emit(Event{Kind: EventExplosion, Pos: pos, Size: size, Explosion: kind})
}
