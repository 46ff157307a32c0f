package effects

import (
	"testing"

	"github.com/pthm-cable/roids/anim"
	"github.com/pthm-cable/roids/components"
	"github.com/pthm-cable/roids/geom"
)

func newTestSystem() *System {
	small := Template{Texture: components.TexExplosionSmall, Sheet: anim.NewSheet(4, 1, 0), FPS: 10, Scale: 2}
	big := Template{Texture: components.TexExplosionBig, Sheet: anim.NewSheet(4, 2, 0), FPS: 10, Scale: 1}
	charged := Template{Texture: components.TexExplosionCharged, Sheet: anim.NewSheet(2, 1, 0), FPS: 10, Scale: 3}
	return New(small, big, charged)
}

func TestTriggerAndExpire(t *testing.T) {
	s := newTestSystem()
	s.Trigger(ExplosionSmall, geom.V(1, 2), 10, 0)
	s.Trigger(ExplosionBig, geom.V(3, 4), 50, 0)

	if got := s.Count(); got != 2 {
		t.Fatalf("Count = %d, want 2", got)
	}
	if got := s.Count(ExplosionBig); got != 1 {
		t.Errorf("Count(big) = %d, want 1", got)
	}

	// Small: 4 frames at 10 fps finishes at 0.4; big: 8 frames finishes at 0.8.
	if removed := s.Update(0.2); removed != 0 {
		t.Errorf("removed %d before any clip finished", removed)
	}
	if removed := s.Update(0.45); removed != 1 {
		t.Errorf("removed %d at 0.45, want 1", removed)
	}
	if got := s.Count(ExplosionSmall); got != 0 {
		t.Errorf("small explosion still live")
	}
	if removed := s.Update(0.85); removed != 1 {
		t.Errorf("removed %d at 0.85, want 1", removed)
	}
	if removed := s.Update(5); removed != 0 {
		t.Errorf("finished effect removed twice")
	}
}

func TestEachReportsInstances(t *testing.T) {
	s := newTestSystem()
	s.Trigger(ExplosionCharged, geom.V(7, 8), 20, 1)

	var got []Instance
	s.Each(1.15, func(in Instance) { got = append(got, in) })
	if len(got) != 1 {
		t.Fatalf("Each visited %d, want 1", len(got))
	}
	in := got[0]
	if in.Texture != components.TexExplosionCharged || in.Size != 60 || in.Pos != geom.V(7, 8) {
		t.Errorf("instance = %+v", in)
	}
	if in.Frame.Pos.X != 0.5 {
		t.Errorf("frame x = %v, want second frame at 0.5", in.Frame.Pos.X)
	}
}

func TestClear(t *testing.T) {
	s := newTestSystem()
	for i := 0; i < 5; i++ {
		s.Trigger(ExplosionSmall, geom.V(0, 0), 1, 0)
	}
	s.Clear()
	if got := s.Count(); got != 0 {
		t.Errorf("Count after Clear = %d", got)
	}
}
