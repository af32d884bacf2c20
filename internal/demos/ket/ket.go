// Package ket implements the "Bouncing Ket" demos: a textured sprite that
// bounces around the screen, wobbles after each impact and throws a particle
// burst at the impact point.
package ket

import (
	"fmt"

	"github.com/vovakirdan/bounce-kit/internal/config"
	"github.com/vovakirdan/bounce-kit/internal/core"
	"github.com/vovakirdan/bounce-kit/internal/demos/bounce"
	"github.com/vovakirdan/bounce-kit/internal/registry"
)

func init() {
	registry.Register("ket", "Bouncing Ket", factory("ket"))
	registry.Register("ket-partikel", "Bouncing Ket (partikel)", factory("ket-partikel"))
}

func factory(id string) registry.Factory {
	return func(opts registry.Options) registry.Demo {
		return New(id, opts.Config, opts.Seed)
	}
}

// Demo is a bouncing texture.
type Demo struct {
	id      string
	scene   *bounce.Scene
	texture core.Texture
}

// New creates a ket demo with the given id and configuration.
func New(id string, cfg config.Demo, seed int64) *Demo {
	return &Demo{
		id:    id,
		scene: bounce.NewScene(cfg, seed),
	}
}

// ID returns the demo identifier.
func (d *Demo) ID() string { return d.id }

// Title returns the configured window title.
func (d *Demo) Title() string {
	if t := d.scene.Config().Title; t != "" {
		return t
	}
	return d.id
}

// Init loads the sprite texture and sets up the scene. The texture is
// required; the bounce sound is not.
func (d *Demo) Init(host core.Host) error {
	cfg := d.scene.Config()
	logger := host.Logger().With("demo", d.id)

	if cfg.Sprite.Kind != config.SpriteTexture {
		return fmt.Errorf("sprite kind %q: ket needs a texture", cfg.Sprite.Kind)
	}

	logger.Info("Attempting to load texture", "path", cfg.Sprite.Texture)
	tex, err := host.Assets().LoadTexture(cfg.Sprite.Texture)
	if err != nil {
		return fmt.Errorf("load texture %q: %w", cfg.Sprite.Texture, err)
	}
	d.texture = tex
	w, h := tex.Size()
	logger.Info("Texture loaded", "width", w, "height", h)

	return d.scene.Init(host, logger, core.Vec2{X: float64(w), Y: float64(h)})
}

// Update advances the simulation.
func (d *Demo) Update(f core.Frame) {
	d.scene.Update(f)
}

// Draw clears the screen, draws the wobbling sprite and then the particles.
func (d *Demo) Draw(c core.Canvas) {
	c.Clear(d.scene.Background())

	center := d.scene.Body().Center()
	c.DrawTexture(d.texture, core.DrawOptions{
		X:        center.X,
		Y:        center.Y,
		Rotation: d.scene.Rotation(),
		Scale:    d.scene.Scale(),
	})

	d.scene.DrawParticles(c)
}

// Shutdown releases the sound and texture.
func (d *Demo) Shutdown() {
	d.scene.Shutdown()
	if d.texture != nil {
		d.texture.Release()
		d.texture = nil
	}
}

// Scene exposes the simulation state.
func (d *Demo) Scene() *bounce.Scene { return d.scene }
