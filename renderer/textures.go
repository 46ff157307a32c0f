package renderer

import (
	"log/slog"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/roids/components"
)

// textureFiles maps texture handles to sprite sheet file names in the
// assets directory.
var textureFiles = [components.TextureCount]string{
	components.TexShip:             "ship.png",
	components.TexBullet:           "bullet.png",
	components.TexEnemyBullet:      "enemy_bullet.png",
	components.TexAsteroid:         "asteroid.png",
	components.TexChargedBullet:    "charged_bullet.png",
	components.TexShipExhaust:      "ship_exhaust.png",
	components.TexExplosionBig:     "explosion_big.png",
	components.TexExplosionCharged: "explosion_charged.png",
	components.TexExplosionSmall:   "explosion_small.png",
	components.TexTurret:           "turret.png",
}

// fallbackColors tint the generated placeholder for each handle whose file
// is missing.
var fallbackColors = [components.TextureCount]rl.Color{
	components.TexShip:             {R: 220, G: 230, B: 255, A: 255},
	components.TexBullet:           {R: 255, G: 240, B: 120, A: 255},
	components.TexEnemyBullet:      {R: 255, G: 90, B: 90, A: 255},
	components.TexAsteroid:         {R: 150, G: 130, B: 110, A: 255},
	components.TexChargedBullet:    {R: 120, G: 220, B: 255, A: 255},
	components.TexShipExhaust:      {R: 120, G: 190, B: 255, A: 200},
	components.TexExplosionBig:     {R: 255, G: 150, B: 50, A: 255},
	components.TexExplosionCharged: {R: 140, G: 200, B: 255, A: 255},
	components.TexExplosionSmall:   {R: 255, G: 200, B: 90, A: 255},
	components.TexTurret:           {R: 200, G: 80, B: 200, A: 255},
}

// Atlas owns the GPU textures addressed by components.Texture handles.
type Atlas struct {
	textures [components.TextureCount]rl.Texture2D
	loaded   bool
}

// NewAtlas creates an empty atlas.
func NewAtlas() *Atlas {
	return &Atlas{}
}

// Load reads every sprite sheet from dir. Missing files are replaced with a
// generated radial placeholder so the game stays playable without assets.
// Must be called after the raylib window is created.
func (a *Atlas) Load(dir string) {
	if a.loaded {
		return
	}
	missing := 0
	for h := components.TexShip; h < components.TextureCount; h++ {
		path := filepath.Join(dir, textureFiles[h])
		if dir != "" && rl.FileExists(path) {
			a.textures[h] = rl.LoadTexture(path)
			continue
		}
		missing++
		img := rl.GenImageGradientRadial(64, 64, 0.2, fallbackColors[h], rl.Blank)
		a.textures[h] = rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
	}
	if missing > 0 {
		slog.Warn("sprite sheets missing, using placeholders", "dir", dir, "missing", missing)
	}
	a.loaded = true
}

// Texture returns the texture for handle h.
func (a *Atlas) Texture(h components.Texture) (rl.Texture2D, bool) {
	if !a.loaded || h == components.TexNone || h >= components.TextureCount {
		return rl.Texture2D{}, false
	}
	return a.textures[h], true
}

// Unload frees resources.
func (a *Atlas) Unload() {
	if !a.loaded {
		return
	}
	for h := components.TexShip; h < components.TextureCount; h++ {
		rl.UnloadTexture(a.textures[h])
	}
	a.loaded = false
}
