package renderer

import (
	"math"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/roids/camera"
)

// star is one background point in screen-independent layer space.
type star struct {
	x, y  float32
	size  float32
	shade uint8
}

// starLayer is a tile of stars scrolled at a fraction of the camera motion.
type starLayer struct {
	parallax float32
	stars    []star
}

// BackgroundRenderer draws a tiled parallax starfield behind the level.
type BackgroundRenderer struct {
	screenW, screenH float32
	baseColor        rl.Color
	layers           []starLayer
}

// NewBackgroundRenderer creates a starfield for a screen of the given size.
func NewBackgroundRenderer(screenW, screenH int32, baseR, baseG, baseB uint8, seed int64) *BackgroundRenderer {
	b := &BackgroundRenderer{
		screenW:   float32(screenW),
		screenH:   float32(screenH),
		baseColor: rl.Color{R: baseR, G: baseG, B: baseB, A: 255},
	}
	rng := rand.New(rand.NewSource(seed))
	for i, parallax := range []float32{0.1, 0.25, 0.5} {
		layer := starLayer{parallax: parallax, stars: make([]star, 60+40*i)}
		for j := range layer.stars {
			layer.stars[j] = star{
				x:     rng.Float32() * b.screenW,
				y:     rng.Float32() * b.screenH,
				size:  0.6 + float32(i)*0.5 + rng.Float32()*0.5,
				shade: uint8(90 + 50*i + rng.Intn(60)),
			}
		}
		b.layers = append(b.layers, layer)
	}
	return b
}

// Draw clears to the base colour and draws every star layer offset by the
// camera position.
func (b *BackgroundRenderer) Draw(cam *camera.Camera) {
	rl.ClearBackground(b.baseColor)
	for _, layer := range b.layers {
		ox := -cam.X * layer.parallax
		oy := cam.Y * layer.parallax
		for _, s := range layer.stars {
			x := wrap(s.x+ox, b.screenW)
			y := wrap(s.y+oy, b.screenH)
			rl.DrawCircleV(rl.Vector2{X: x, Y: y}, s.size, rl.Color{R: s.shade, G: s.shade, B: s.shade, A: 255})
		}
	}
}

// wrap maps v into [0, size).
func wrap(v, size float32) float32 {
	r := float32(math.Mod(float64(v), float64(size)))
	if r < 0 {
		r += size
	}
	return r
}
