package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/bounce-kit/internal/sim"
)

// Validate reports every invalid value in cfg. A nil result means the demo
// can start.
func Validate(cfg Demo) error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}
	color := func(field, value string) {
		if _, err := ParseColor(value); err != nil {
			add("%s: %w", field, err)
		}
	}

	if cfg.Screen.Width <= 0 || cfg.Screen.Height <= 0 {
		add("screen: size %dx%d must be positive", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Screen.TickRate <= 0 {
		add("screen.tick_rate: %d must be positive", cfg.Screen.TickRate)
	}
	color("screen.background", cfg.Screen.Background)

	switch cfg.Sprite.Kind {
	case SpriteTexture:
		if cfg.Sprite.Texture == "" {
			add("sprite.texture: required for kind %q", SpriteTexture)
		}
	case SpriteText:
		if cfg.Sprite.Text == "" {
			add("sprite.text: required for kind %q", SpriteText)
		}
		if cfg.Sprite.Font == "" {
			add("sprite.font: required for kind %q", SpriteText)
		}
	default:
		add("sprite.kind: unknown kind %q", cfg.Sprite.Kind)
	}
	color("sprite.color", cfg.Sprite.Color)

	if cfg.Pulse.DecayRate <= 0 {
		add("pulse.decay_rate: %v must be positive", cfg.Pulse.DecayRate)
	}
	if _, err := sim.Easing(cfg.Pulse.Easing); err != nil {
		add("pulse.easing: %w", err)
	}

	if p := cfg.Particles; p.Enabled {
		if p.Burst.Min < 0 || p.Burst.Min > p.Burst.Max {
			add("particles.burst: invalid range [%d, %d]", p.Burst.Min, p.Burst.Max)
		}
		if p.Capacity < 0 {
			add("particles.capacity: %d must not be negative", p.Capacity)
		}
		if p.Speed.Min > p.Speed.Max {
			add("particles.speed: invalid range [%v, %v]", p.Speed.Min, p.Speed.Max)
		}
		if p.Lifetime.Min <= 0 || p.Lifetime.Min > p.Lifetime.Max {
			add("particles.lifetime: invalid range [%v, %v]", p.Lifetime.Min, p.Lifetime.Max)
		}
		if p.Damping <= 0 || p.Damping > 1 {
			add("particles.damping: %v must be in (0, 1]", p.Damping)
		}
		if p.Size <= 0 {
			add("particles.size: %v must be positive", p.Size)
		}
		color("particles.start_color", p.StartColor)
		color("particles.end_color", p.EndColor)
	}

	if cfg.Audio.Volume < 0 || cfg.Audio.Volume > 1 {
		add("audio.volume: %v must be in [0, 1]", cfg.Audio.Volume)
	}

	if c := cfg.Crank; c.Enabled {
		if c.Width <= 0 || c.Height <= 0 {
			add("crank: size %vx%v must be positive", c.Width, c.Height)
		}
		if c.StepSize <= 0 {
			add("crank.step_size: %v must be positive", c.StepSize)
		}
		color("crank.color", c.Color)
	}

	return errors.Join(errs...)
}
