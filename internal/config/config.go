// Package config provides YAML-based demo configuration loading for the
// bounce launcher.
package config

import (
	"fmt"
	"math"

	"github.com/vovakirdan/bounce-kit/internal/core"
	"github.com/vovakirdan/bounce-kit/internal/sim"
)

// Sprite kinds.
const (
	SpriteTexture = "texture"
	SpriteText    = "text"
)

// Demo contains all configuration for one bouncing sprite demo.
type Demo struct {
	Title     string    `yaml:"title"`
	Screen    Screen    `yaml:"screen"`
	Sprite    Sprite    `yaml:"sprite"`
	Pulse     Pulse     `yaml:"pulse"`
	Particles Particles `yaml:"particles"`
	Audio     Audio     `yaml:"audio"`
	Crank     Crank     `yaml:"crank"`
}

// Screen defines the logical screen the sprite bounces in.
type Screen struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	TickRate   int    `yaml:"tick_rate"` // updates per second
	Background string `yaml:"background"`
	ShowFPS    bool   `yaml:"show_fps"`
}

// Sprite defines the bouncing sprite.
type Sprite struct {
	Kind     string `yaml:"kind"`    // "texture" or "text"
	Texture  string `yaml:"texture"` // asset path, kind=texture
	Text     string `yaml:"text"`    // label, kind=text
	Font     string `yaml:"font"`    // font name, kind=text
	Color    string `yaml:"color"`
	Start    Point  `yaml:"start"`    // top-left corner
	Velocity Point  `yaml:"velocity"` // pixels per second
}

// Point is a 2D coordinate in config files.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Vec converts the point to a core vector.
func (p Point) Vec() core.Vec2 {
	return core.Vec2{X: p.X, Y: p.Y}
}

// Pulse defines the wobble played after every bounce.
type Pulse struct {
	DecayRate       float64 `yaml:"decay_rate"` // units per second
	Easing          string  `yaml:"easing"`
	RotationDegrees float64 `yaml:"rotation_degrees"` // rotation at full pulse
	ScaleAmount     float64 `yaml:"scale_amount"`     // extra scale at full pulse
}

// Particles defines the burst emitter.
type Particles struct {
	Enabled      bool          `yaml:"enabled"`
	Burst        core.IntRange `yaml:"burst"`
	Capacity     int           `yaml:"capacity"` // 0 = unbounded
	Speed        core.Range    `yaml:"speed"`
	AngleDegrees core.Range    `yaml:"angle_degrees"`
	Lifetime     core.Range    `yaml:"lifetime"`
	Offset       core.Range    `yaml:"offset"`
	Damping      float64       `yaml:"damping"`
	Gravity      Point         `yaml:"gravity"`
	Size         float64       `yaml:"size"`
	StartColor   string        `yaml:"start_color"`
	EndColor     string        `yaml:"end_color"`
	Additive     bool          `yaml:"additive"`
}

// Emitter converts the particle section into emitter settings.
func (p Particles) Emitter() (sim.EmitterConfig, error) {
	start, err := ParseColor(p.StartColor)
	if err != nil {
		return sim.EmitterConfig{}, fmt.Errorf("particles.start_color: %w", err)
	}
	end, err := ParseColor(p.EndColor)
	if err != nil {
		return sim.EmitterConfig{}, fmt.Errorf("particles.end_color: %w", err)
	}
	return sim.EmitterConfig{
		Burst:    p.Burst,
		Capacity: p.Capacity,
		Speed:    p.Speed,
		Angle: core.Range{
			Min: p.AngleDegrees.Min * math.Pi / 180,
			Max: p.AngleDegrees.Max * math.Pi / 180,
		},
		Lifetime:   p.Lifetime,
		Offset:     p.Offset,
		Damping:    p.Damping,
		Gravity:    p.Gravity.Vec(),
		StartColor: start,
		EndColor:   end,
	}, nil
}

// Audio defines sound effects. Empty paths disable the effect.
type Audio struct {
	Bounce string  `yaml:"bounce"`
	Volume float64 `yaml:"volume"` // 0..1
}

// Crank defines the crank-driven secondary sprite.
type Crank struct {
	Enabled  bool    `yaml:"enabled"`
	X        float64 `yaml:"x"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Ratio    float64 `yaml:"ratio"`     // pixels per crank degree
	StepSize float64 `yaml:"step_size"` // degrees per key press or wheel notch
	Color    string  `yaml:"color"`
}

// Runtime returns the host settings for this demo.
func (d Demo) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  d.Screen.Width,
		ScreenH:  d.Screen.Height,
		TickRate: d.Screen.TickRate,
		Seed:     seed,
		ShowFPS:  d.Screen.ShowFPS,
	}
}
