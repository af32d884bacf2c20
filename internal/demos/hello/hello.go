// Package hello implements the handheld "Hello" demo: a text label bouncing
// across a small 1-bit screen, with a paddle that follows the crank.
package hello

import (
	"fmt"
	"image/color"

	"github.com/vovakirdan/bounce-kit/internal/config"
	"github.com/vovakirdan/bounce-kit/internal/core"
	"github.com/vovakirdan/bounce-kit/internal/demos/bounce"
	"github.com/vovakirdan/bounce-kit/internal/registry"
	"github.com/vovakirdan/bounce-kit/internal/sim"
)

// ID is the registry identifier of the demo.
const ID = "hello"

func init() {
	registry.Register(ID, "Hello Handheld", func(opts registry.Options) registry.Demo {
		return New(opts.Config, opts.Seed)
	})
}

// Demo is a bouncing text label.
type Demo struct {
	scene *bounce.Scene
	font  core.Font
	text  string

	ink    color.RGBA
	crank  *sim.Crank
	paddle color.RGBA
}

// New creates the hello demo.
func New(cfg config.Demo, seed int64) *Demo {
	return &Demo{
		scene: bounce.NewScene(cfg, seed),
		text:  cfg.Sprite.Text,
	}
}

// ID returns the demo identifier.
func (d *Demo) ID() string { return ID }

// Title returns the configured title.
func (d *Demo) Title() string {
	if t := d.scene.Config().Title; t != "" {
		return t
	}
	return ID
}

// Init loads the font, which is required, and measures the label.
func (d *Demo) Init(host core.Host) error {
	cfg := d.scene.Config()
	logger := host.Logger().With("demo", ID)

	if cfg.Sprite.Kind != config.SpriteText {
		return fmt.Errorf("sprite kind %q: hello needs text", cfg.Sprite.Kind)
	}

	font, err := host.Assets().LoadFont(cfg.Sprite.Font)
	if err != nil {
		return fmt.Errorf("couldn't load font %s: %w", cfg.Sprite.Font, err)
	}
	d.font = font
	w, h := font.Measure(d.text)
	logger.Info("Font loaded", "font", cfg.Sprite.Font, "width", w, "height", h)

	if err := d.scene.Init(host, logger, core.Vec2{X: w, Y: h}); err != nil {
		return err
	}

	d.ink = config.ColorOr(cfg.Sprite.Color, color.RGBA{A: 255})
	if c := cfg.Crank; c.Enabled {
		d.paddle = config.ColorOr(c.Color, d.ink)
		d.crank = &sim.Crank{
			Y:     (float64(cfg.Screen.Height) - c.Height) / 2,
			Min:   0,
			Max:   float64(cfg.Screen.Height) - c.Height,
			Ratio: c.Ratio,
		}
	}
	return nil
}

// Update applies the crank and advances the simulation.
func (d *Demo) Update(f core.Frame) {
	if d.crank != nil && f.Crank != 0 {
		d.crank.Apply(f.Crank)
	}
	d.scene.Update(f)
}

// Draw clears the screen, draws the label and the crank paddle. The label
// hops up by scale_amount of its height after an impact.
func (d *Demo) Draw(c core.Canvas) {
	c.Clear(d.scene.Background())

	body := d.scene.Body()
	hop := (d.scene.Scale() - 1) * body.Size.Y
	c.DrawText(d.font, d.text, body.Pos.X, body.Pos.Y-hop, d.ink)

	if d.crank != nil {
		cfg := d.scene.Config().Crank
		c.FillRect(core.NewRect(cfg.X, d.crank.Y, cfg.Width, cfg.Height), d.paddle)
	}

	d.scene.DrawParticles(c)
}

// Shutdown releases the sound and drops the font.
func (d *Demo) Shutdown() {
	d.scene.Shutdown()
	d.font = nil
}

// Scene exposes the simulation state.
func (d *Demo) Scene() *bounce.Scene { return d.scene }

// CrankY returns the paddle position, or 0 when the crank is disabled.
func (d *Demo) CrankY() float64 {
	if d.crank == nil {
		return 0
	}
	return d.crank.Y
}
