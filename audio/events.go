package audio

import (
	"github.com/pthm-cable/roids/effects"
	"github.com/pthm-cable/roids/game"
)

// ForEvent returns the cue for a gameplay event. Destruction events that
// always come with an explosion event have no cue of their own.
func ForEvent(e game.Event) (Cue, bool) {
	switch e.Kind {
	case game.EventShot:
		return CueShot, true
	case game.EventChargedShot:
		return CueChargedShot, true
	case game.EventEnemyShot:
		return CueEnemyShot, true
	case game.EventExplosion:
		switch e.Explosion {
		case effects.ExplosionBig:
			return CueExplosionBig, true
		case effects.ExplosionCharged:
			return CueExplosionCharged, true
		default:
			return CueExplosionSmall, true
		}
	case game.EventAsteroidDestroyed:
		return CueExplosionSmall, true
	case game.EventShipHit:
		return CueHit, true
	case game.EventShipRespawned:
		return CueRespawn, true
	case game.EventLevelAdvanced:
		return CueLevelUp, true
	}
	return 0, false
}

// Cues maps a step's events to cues, each at most once in first-seen order.
func Cues(events []game.Event) []Cue {
	var seen [cueCount]bool
	var out []Cue
	for _, e := range events {
		c, ok := ForEvent(e)
		if !ok || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// PlayEvents plays the cues for a step's events.
func (p *Player) PlayEvents(events []game.Event) {
	if p == nil {
		return
	}
	for _, c := range Cues(events) {
		p.Play(c)
	}
}
