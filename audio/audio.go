// Package audio plays procedurally synthesized sound cues through oto.
package audio

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// Cue identifies a sound effect.
type Cue int

const (
	CueShot Cue = iota
	CueChargedShot
	CueEnemyShot
	CueExplosionSmall
	CueExplosionBig
	CueExplosionCharged
	CueHit
	CueRespawn
	CueLevelUp
	cueCount
)

var cueNames = [cueCount]string{
	"shot", "charged_shot", "enemy_shot",
	"explosion_small", "explosion_big", "explosion_charged",
	"hit", "respawn", "level_up",
}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return fmt.Sprintf("cue(%d)", int(c))
	}
	return cueNames[c]
}

// explosive reports whether c counts against the concurrent explosion limit.
func (c Cue) explosive() bool {
	return c == CueExplosionSmall || c == CueExplosionBig || c == CueExplosionCharged
}

// Player owns the oto context and a cache of rendered cues. A nil *Player
// is valid and plays nothing.
type Player struct {
	ctx   *oto.Context
	ready chan struct{}

	mu     sync.Mutex
	volume float64

	maxExplosions    int32
	activeExplosions atomic.Int32

	samples [cueCount][]byte
}

// New opens the audio device. Cues are rendered up front so playback only
// copies bytes.
func New(volume float64, maxExplosions int) (*Player, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, fmt.Errorf("opening audio context: %w", err)
	}
	p := &Player{
		ctx:           ctx,
		ready:         ready,
		volume:        clampF(volume, 0, 1),
		maxExplosions: int32(max(maxExplosions, 1)),
	}
	for c := Cue(0); c < cueCount; c++ {
		p.samples[c] = Synthesize(c)
	}
	slog.Info("audio_ready", "sample_rate", SampleRate, "volume", p.volume)
	return p, nil
}

// SetVolume sets the master volume in [0, 1].
func (p *Player) SetVolume(v float64) {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.volume = clampF(v, 0, 1)
	p.mu.Unlock()
}

// Volume returns the master volume.
func (p *Player) Volume() float64 {
	if p == nil {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// Play starts cue in the background. Calls before the device is ready and
// explosions beyond the concurrent limit are dropped.
func (p *Player) Play(cue Cue) {
	if p == nil || cue < 0 || cue >= cueCount {
		return
	}
	select {
	case <-p.ready:
	default:
		return
	}
	vol := p.Volume()
	if vol <= 0 {
		return
	}
	if cue.explosive() {
		if p.activeExplosions.Add(1) > p.maxExplosions {
			p.activeExplosions.Add(-1)
			return
		}
	}
	data := p.samples[cue]
	go func() {
		if cue.explosive() {
			defer p.activeExplosions.Add(-1)
		}
		player := p.ctx.NewPlayer(&soundReader{data: data})
		player.SetVolume(vol)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			slog.Debug("audio_close_failed", "cue", cue.String(), "error", err)
		}
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
