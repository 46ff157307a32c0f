// Package anim plays sprite-sheet animations driven by the simulation clock.
package anim

import (
	"math"

	"github.com/pthm-cable/roids/geom"
)

// DefaultFPS is the playback rate used when a sheet does not specify one.
const DefaultFPS = 24

// Sheet is the frame layout of a sprite sheet. Frames are rectangles in
// normalized texture coordinates, ordered left to right and top to bottom.
type Sheet struct {
	Frames []geom.Rect
}

// NewSheet lays out frames over a columns x rows grid. frames limits the
// count when the last row is partially filled; 0 uses the whole grid.
func NewSheet(columns, rows, frames int) *Sheet {
	if columns < 1 {
		columns = 1
	}
	if rows < 1 {
		rows = 1
	}
	if frames <= 0 || frames > columns*rows {
		frames = columns * rows
	}
	size := geom.V(1/float64(columns), 1/float64(rows))
	s := &Sheet{Frames: make([]geom.Rect, 0, frames)}
	for i := 0; i < frames; i++ {
		x, y := i%columns, i/columns
		s.Frames = append(s.Frames, geom.Rect{
			Pos:  geom.V(float64(x)*size.X, float64(y)*size.Y),
			Size: size,
		})
	}
	return s
}

// Clip is one playback of a sheet.
type Clip struct {
	Sheet         *Sheet
	FrameDuration float64
	Loop          bool
	StartTime     float64
}

// NewClip creates a clip for sheet at fps frames per second.
func NewClip(sheet *Sheet, fps float64, loop bool) Clip {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return Clip{Sheet: sheet, FrameDuration: 1 / fps, Loop: loop}
}

// Start restarts playback at now.
func (c *Clip) Start(now float64) { c.StartTime = now }

// Duration returns the length of one pass through the clip.
func (c *Clip) Duration() float64 {
	return float64(len(c.Sheet.Frames)) * c.FrameDuration
}

// Frame returns the frame index shown at now. Looping clips wrap; one-shot
// clips hold the last frame and report finished once it has been shown for
// a full frame duration.
func (c *Clip) Frame(now float64) (index int, finished bool) {
	n := len(c.Sheet.Frames)
	if n == 0 {
		return 0, !c.Loop
	}
	elapsed := now - c.StartTime
	if elapsed < 0 {
		return 0, false
	}
	i := int(math.Floor(elapsed / c.FrameDuration))
	if c.Loop {
		return i % n, false
	}
	if i >= n {
		return n - 1, true
	}
	return i, false
}

// Rect returns the texture rectangle shown at now.
func (c *Clip) Rect(now float64) geom.Rect {
	if len(c.Sheet.Frames) == 0 {
		return geom.Rect{Size: geom.V(1, 1)}
	}
	i, _ := c.Frame(now)
	return c.Sheet.Frames[i]
}
