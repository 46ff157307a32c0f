package anim

import (
	"math"
	"testing"
)

func TestNewSheetLayout(t *testing.T) {
	s := NewSheet(4, 2, 0)
	if len(s.Frames) != 8 {
		t.Fatalf("frames = %d, want 8", len(s.Frames))
	}
	f := s.Frames[5] // column 1, row 1
	if math.Abs(f.Pos.X-0.25) > 1e-9 || math.Abs(f.Pos.Y-0.5) > 1e-9 {
		t.Errorf("frame 5 at %v, want (0.25,0.5)", f.Pos)
	}
	if math.Abs(f.Size.X-0.25) > 1e-9 || math.Abs(f.Size.Y-0.5) > 1e-9 {
		t.Errorf("frame size %v, want (0.25,0.5)", f.Size)
	}
	if got := len(NewSheet(4, 4, 13).Frames); got != 13 {
		t.Errorf("partial sheet frames = %d, want 13", got)
	}
}

func TestOneShotFrames(t *testing.T) {
	c := NewClip(NewSheet(4, 1, 0), 10, false)
	c.Start(2)

	tests := []struct {
		name     string
		now      float64
		frame    int
		finished bool
	}{
		{"before start", 1.5, 0, false},
		{"first", 2.0, 0, false},
		{"second", 2.15, 1, false},
		{"last", 2.35, 3, false},
		{"done", 2.45, 3, true},
		{"long after", 9, 3, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			frame, finished := c.Frame(tc.now)
			if frame != tc.frame || finished != tc.finished {
				t.Errorf("Frame(%v) = %d,%v want %d,%v", tc.now, frame, finished, tc.frame, tc.finished)
			}
		})
	}
}

func TestLoopingNeverFinishes(t *testing.T) {
	c := NewClip(NewSheet(3, 1, 0), 10, true)
	c.Start(0)
	for _, now := range []float64{0.05, 0.35, 1.05, 100.05} {
		frame, finished := c.Frame(now)
		if finished {
			t.Errorf("looping clip finished at %v", now)
		}
		want := int(math.Floor(now/0.1)) % 3
		if frame != want {
			t.Errorf("Frame(%v) = %d, want %d", now, frame, want)
		}
	}
}

func TestFrameIsMonotonicForOneShot(t *testing.T) {
	c := NewClip(NewSheet(4, 4, 0), 24, false)
	c.Start(1)
	prev := -1
	for now := 1.0; now < 2.0; now += 1.0 / 60 {
		f, _ := c.Frame(now)
		if f < prev {
			t.Fatalf("frame went backwards at %v: %d < %d", now, f, prev)
		}
		prev = f
	}
}

func TestDefaultFPS(t *testing.T) {
	c := NewClip(NewSheet(2, 1, 0), 0, false)
	if math.Abs(c.FrameDuration-1.0/DefaultFPS) > 1e-12 {
		t.Errorf("FrameDuration = %v", c.FrameDuration)
	}
}
