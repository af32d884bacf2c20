// Package bounce holds the simulation shared by every bouncing sprite demo:
// the sprite body, the impact pulse, the particle emitter and the bounce
// sound. Demos add their own sprite and drawing on top.
package bounce

import (
	"fmt"
	"image/color"
	"math"

	"github.com/charmbracelet/log"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/bounce-kit/internal/config"
	"github.com/vovakirdan/bounce-kit/internal/core"
	"github.com/vovakirdan/bounce-kit/internal/sim"
)

// Scene is the per-demo simulation state. It is owned by one demo and only
// touched from the host's frame loop.
type Scene struct {
	cfg    config.Demo
	seed   int64
	logger *log.Logger

	body    sim.Body
	bounds  sim.Bounds
	pulse   *sim.Pulse
	easing  ease.TweenFunc
	emitter *sim.Emitter
	sound   core.Sound

	background color.RGBA
	bounces    int
}

// NewScene creates a scene for cfg. Nothing is loaded until Init.
func NewScene(cfg config.Demo, seed int64) *Scene {
	return &Scene{
		cfg:    cfg,
		seed:   seed,
		logger: log.Default(),
		pulse:  sim.NewPulse(cfg.Pulse.DecayRate),
	}
}

// Init validates the configuration, sizes the sprite and loads the optional
// bounce sound. A missing sound only disables the effect.
func (s *Scene) Init(host core.Host, logger *log.Logger, spriteSize core.Vec2) error {
	if logger != nil {
		s.logger = logger
	}
	if err := config.Validate(s.cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	fn, err := sim.Easing(s.cfg.Pulse.Easing)
	if err != nil {
		return err
	}
	s.easing = fn
	s.pulse = sim.NewPulse(s.cfg.Pulse.DecayRate)
	s.background = config.ColorOr(s.cfg.Screen.Background, color.RGBA{A: 255})
	s.bounds = sim.Bounds{W: float64(s.cfg.Screen.Width), H: float64(s.cfg.Screen.Height)}
	s.body = sim.Body{
		Pos:  s.cfg.Sprite.Start.Vec(),
		Vel:  s.cfg.Sprite.Velocity.Vec(),
		Size: spriteSize,
	}

	if s.cfg.Particles.Enabled {
		ec, err := s.cfg.Particles.Emitter()
		if err != nil {
			return err
		}
		s.emitter = sim.NewEmitter(ec, core.NewRand(s.seed))
	}

	if name := s.cfg.Audio.Bounce; name != "" {
		s.logger.Info("Attempting to load sound", "path", name)
		snd, err := host.Assets().LoadSound(name)
		if err != nil {
			s.logger.Warn("No bounce sound found, sound effects disabled", "path", name, "error", err)
		} else {
			s.sound = snd
			s.logger.Info("Bounce sound loaded successfully")
		}
	}
	return nil
}

// Update advances the sprite, pulse and particles by one frame.
func (s *Scene) Update(f core.Frame) {
	if f.Input.Has(core.ActionReset) {
		s.Reset()
	}
	if f.Input.Has(core.ActionBurst) {
		s.burst(s.body.Center())
	}

	for _, hit := range sim.Step(&s.body, s.bounds, f.Elapsed) {
		s.onBounce(hit)
	}

	s.pulse.Tick(f.Elapsed)
	if s.emitter != nil {
		s.emitter.Tick(f.Elapsed)
	}
}

func (s *Scene) onBounce(hit sim.Collision) {
	s.bounces++
	if s.sound != nil {
		s.logger.Debug("Playing bounce sound", "side", hit.Side)
		s.sound.Play()
	}
	s.burst(hit.Point)
	s.pulse.Impact()
}

func (s *Scene) burst(at core.Vec2) {
	if s.emitter == nil {
		return
	}
	n := s.emitter.BurstDefault(at)
	s.logger.Debug("Particle burst", "x", at.X, "y", at.Y, "count", n)
}

// Reset puts the sprite back at its start and clears the effects.
func (s *Scene) Reset() {
	s.body.Pos = s.cfg.Sprite.Start.Vec()
	s.body.Vel = s.cfg.Sprite.Velocity.Vec()
	s.pulse = sim.NewPulse(s.cfg.Pulse.DecayRate)
	if s.emitter != nil {
		s.emitter.Reset()
	}
}

// Wobble returns the eased pulse in [0, 1]; 0 at rest.
func (s *Scene) Wobble() float64 {
	return s.pulse.Wobble(s.easing)
}

// Rotation returns the sprite rotation in radians for the current pulse.
func (s *Scene) Rotation() float64 {
	return s.Wobble() * s.cfg.Pulse.RotationDegrees * math.Pi / 180
}

// Scale returns the sprite scale for the current pulse.
func (s *Scene) Scale() float64 {
	return 1 + s.Wobble()*s.cfg.Pulse.ScaleAmount
}

// Body returns the sprite body.
func (s *Scene) Body() sim.Body { return s.body }

// Pulse returns the current pulse value.
func (s *Scene) Pulse() float64 { return s.pulse.Value() }

// Bounces returns the number of edge impacts so far.
func (s *Scene) Bounces() int { return s.bounces }

// Particles returns the live particle count.
func (s *Scene) Particles() int {
	if s.emitter == nil {
		return 0
	}
	return s.emitter.Len()
}

// Config returns the scene's configuration.
func (s *Scene) Config() config.Demo { return s.cfg }

// Logger returns the scene's logger.
func (s *Scene) Logger() *log.Logger { return s.logger }

// Background returns the parsed clear colour.
func (s *Scene) Background() color.RGBA { return s.background }

// DrawParticles draws every live particle.
func (s *Scene) DrawParticles(c core.Canvas) {
	if s.emitter == nil {
		return
	}
	size := s.cfg.Particles.Size
	additive := s.cfg.Particles.Additive
	for _, p := range s.emitter.Particles() {
		c.DrawParticle(p.Pos.X, p.Pos.Y, size, p.Color(), additive)
	}
}

// Shutdown releases the bounce sound. Safe after a partial Init.
func (s *Scene) Shutdown() {
	if s.sound != nil {
		s.sound.Release()
		s.sound = nil
	}
	if s.emitter != nil {
		s.emitter.Reset()
	}
}
