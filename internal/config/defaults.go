package config

import (
	_ "embed"
	"sort"

	"github.com/vovakirdan/bounce-kit/internal/core"
)

//go:embed defaults/ket.yaml
var defaultKetYAML []byte

//go:embed defaults/ket-partikel.yaml
var defaultKetPartikelYAML []byte

//go:embed defaults/hello.yaml
var defaultHelloYAML []byte

var defaultYAML = map[string][]byte{
	"ket":          defaultKetYAML,
	"ket-partikel": defaultKetPartikelYAML,
	"hello":        defaultHelloYAML,
}

// DefaultKetConfig returns the default configuration of the ket demo.
func DefaultKetConfig() Demo {
	return Demo{
		Title: "Bouncing Ket",
		Screen: Screen{
			Width:      800,
			Height:     600,
			TickRate:   60,
			Background: "black",
		},
		Sprite: Sprite{
			Kind:     SpriteTexture,
			Texture:  "ket.png",
			Color:    "white",
			Start:    Point{X: 250, Y: 50},
			Velocity: Point{X: 180, Y: 120},
		},
		Pulse: Pulse{
			DecayRate:       1.2,
			Easing:          "out-elastic",
			RotationDegrees: 15,
		},
		Particles: Particles{
			Enabled:      true,
			Burst:        core.IntRange{Min: 15, Max: 15},
			Speed:        core.Range{Min: 50, Max: 150},
			AngleDegrees: core.Range{Min: 0, Max: 360},
			Lifetime:     core.Range{Min: 0.5, Max: 1.5},
			Damping:      0.98,
			Size:         4,
			StartColor:   "white",
			EndColor:     "white",
		},
		Audio: Audio{
			Bounce: "bounce.wav",
			Volume: 1,
		},
	}
}

// DefaultKetPartikelConfig returns the default configuration of the
// ket-partikel demo.
func DefaultKetPartikelConfig() Demo {
	cfg := DefaultKetConfig()
	cfg.Title = "Bouncing Ket (partikel)"
	cfg.Particles = Particles{
		Enabled:      true,
		Burst:        core.IntRange{Min: 10, Max: 20},
		Capacity:     100,
		Speed:        core.Range{Min: 50, Max: 150},
		AngleDegrees: core.Range{Min: 0, Max: 360},
		Lifetime:     core.Range{Min: 0.5, Max: 1.5},
		Offset:       core.Range{Min: 0, Max: 10},
		Damping:      1,
		Gravity:      Point{X: 0, Y: 50},
		Size:         4,
		StartColor:   "white",
		EndColor:     "#ffffff00",
		Additive:     true,
	}
	return cfg
}

// DefaultHelloConfig returns the default configuration of the hello demo.
func DefaultHelloConfig() Demo {
	cfg := DefaultKetConfig()
	cfg.Title = "Hello Handheld"
	cfg.Screen = Screen{
		Width:      400,
		Height:     240,
		TickRate:   50,
		Background: "white",
		ShowFPS:    true,
	}
	cfg.Sprite = Sprite{
		Kind:     SpriteText,
		Text:     "Hello",
		Font:     "go-bold-14",
		Color:    "black",
		Start:    Point{X: 184, Y: 112},
		Velocity: Point{X: 100, Y: 50},
	}
	cfg.Pulse = Pulse{
		DecayRate:   1.2,
		Easing:      "out-bounce",
		ScaleAmount: 0.25,
	}
	cfg.Particles.Enabled = false
	cfg.Audio.Bounce = ""
	cfg.Crank = Crank{
		Enabled:  true,
		X:        388,
		Width:    6,
		Height:   24,
		Ratio:    0.5,
		StepSize: 15,
		Color:    "black",
	}
	return cfg
}

// Default returns the hardcoded configuration for a demo, or false if the
// demo has none.
func Default(demoID string) (Demo, bool) {
	switch demoID {
	case "ket":
		return DefaultKetConfig(), true
	case "ket-partikel":
		return DefaultKetPartikelConfig(), true
	case "hello":
		return DefaultHelloConfig(), true
	default:
		return Demo{}, false
	}
}

// GetDefaultYAML returns the embedded default YAML for a demo.
func GetDefaultYAML(demoID string) []byte {
	return defaultYAML[demoID]
}

// DefaultIDs returns the ids of all demos with embedded defaults, sorted.
func DefaultIDs() []string {
	ids := make([]string, 0, len(defaultYAML))
	for id := range defaultYAML {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
