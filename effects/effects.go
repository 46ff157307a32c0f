// Package effects manages one-shot visual effects (explosions) as entities in
// an ark ECS world. Effects have no gameplay influence; they are started by
// collision and lifecycle rules and removed when their clip ends.
package effects

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/roids/anim"
	"github.com/pthm-cable/roids/components"
	"github.com/pthm-cable/roids/geom"
)

// Kind identifies an effect template.
type Kind uint8

const (
	ExplosionSmall Kind = iota
	ExplosionBig
	ExplosionCharged
	kindCount
)

func (k Kind) String() string {
	switch k {
	case ExplosionSmall:
		return "explosion_small"
	case ExplosionBig:
		return "explosion_big"
	case ExplosionCharged:
		return "explosion_charged"
	}
	return "unknown"
}

// Template describes how an effect kind is drawn and played.
type Template struct {
	Texture components.Texture
	Sheet   *anim.Sheet
	FPS     float64
	Scale   float64 // Drawn size relative to the triggering size
}

// Transform places an effect in the world.
type Transform struct {
	Pos  geom.Vec
	Size float64
}

// Playback is the animation state of an effect.
type Playback struct {
	Kind Kind
	Clip anim.Clip
}

// System owns the effect world.
type System struct {
	world     *ecs.World
	mapper    *ecs.Map2[Transform, Playback]
	filter    *ecs.Filter2[Transform, Playback]
	templates [kindCount]Template

	finished []ecs.Entity
}

// New creates an effect system with one template per kind.
func New(small, big, charged Template) *System {
	world := ecs.NewWorld()
	return &System{
		world:     world,
		mapper:    ecs.NewMap2[Transform, Playback](world),
		filter:    ecs.NewFilter2[Transform, Playback](world),
		templates: [kindCount]Template{small, big, charged},
	}
}

// Template returns the template of kind.
func (s *System) Template(kind Kind) Template { return s.templates[kind] }

// Trigger starts an effect of kind at pos, sized relative to size.
func (s *System) Trigger(kind Kind, pos geom.Vec, size, now float64) ecs.Entity {
	tpl := s.templates[kind]
	t := Transform{Pos: pos, Size: size * tpl.Scale}
	p := Playback{Kind: kind, Clip: anim.NewClip(tpl.Sheet, tpl.FPS, false)}
	p.Clip.Start(now)
	return s.mapper.NewEntity(&t, &p)
}

// Update removes every effect whose clip has finished and returns how many
// were removed.
func (s *System) Update(now float64) int {
	s.finished = s.finished[:0]
	query := s.filter.Query()
	for query.Next() {
		_, p := query.Get()
		if _, done := p.Clip.Frame(now); done {
			s.finished = append(s.finished, query.Entity())
		}
	}
	for _, e := range s.finished {
		s.mapper.Remove(e)
	}
	return len(s.finished)
}

// Instance is a read-only view of a live effect.
type Instance struct {
	Kind    Kind
	Texture components.Texture
	Pos     geom.Vec
	Size    float64
	Frame   geom.Rect
}

// Each calls fn for every live effect.
func (s *System) Each(now float64, fn func(Instance)) {
	query := s.filter.Query()
	for query.Next() {
		t, p := query.Get()
		fn(Instance{
			Kind:    p.Kind,
			Texture: s.templates[p.Kind].Texture,
			Pos:     t.Pos,
			Size:    t.Size,
			Frame:   p.Clip.Rect(now),
		})
	}
}

// Count returns the number of live effects, optionally restricted to kinds.
func (s *System) Count(kinds ...Kind) int {
	n := 0
	query := s.filter.Query()
	for query.Next() {
		if len(kinds) == 0 {
			n++
			continue
		}
		_, p := query.Get()
		for _, k := range kinds {
			if p.Kind == k {
				n++
				break
			}
		}
	}
	return n
}

// Clear removes every effect.
func (s *System) Clear() {
	s.finished = s.finished[:0]
	query := s.filter.Query()
	for query.Next() {
		s.finished = append(s.finished, query.Entity())
	}
	for _, e := range s.finished {
		s.mapper.Remove(e)
	}
	s.finished = s.finished[:0]
}
