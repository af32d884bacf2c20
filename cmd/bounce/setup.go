package main

import (
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bounce-kit/internal/assets"
	"github.com/vovakirdan/bounce-kit/internal/config"
	"github.com/vovakirdan/bounce-kit/internal/core"
	"github.com/vovakirdan/bounce-kit/internal/registry"
)

// newLogger creates the program logger writing to w at --log-level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "bounce",
	})
	logger.SetLevel(level)
	return logger, nil
}

// prepared is a demo ready to hand to a host.
type prepared struct {
	demo    registry.Demo
	config  config.Demo
	runtime core.RuntimeConfig
	assets  fs.FS
}

// prepareDemo loads, overrides and validates a demo's configuration and
// creates the demo.
func prepareDemo(demoID string, logger *log.Logger) (prepared, error) {
	if !registry.Exists(demoID) {
		return prepared{}, fmt.Errorf("unknown demo %q (run 'bounce list' to see available demos)", demoID)
	}

	cfg, source, err := config.LoadWithSource(demoID, flagConfig)
	if err != nil {
		return prepared{}, err
	}
	logger.Info("Loaded config", "demo", demoID, "source", source)

	seed := applyOverrides(&cfg, flagFPS, flagSeed, time.Now())
	if err := config.Validate(cfg); err != nil {
		return prepared{}, fmt.Errorf("invalid config for %s: %w", demoID, err)
	}

	fsys, err := assets.Open(flagAssets)
	if err != nil {
		return prepared{}, fmt.Errorf("assets: %w", err)
	}

	demo, err := registry.Create(demoID, registry.Options{Config: cfg, Seed: seed})
	if err != nil {
		return prepared{}, err
	}
	return prepared{
		demo:    demo,
		config:  cfg,
		runtime: cfg.Runtime(seed),
		assets:  fsys,
	}, nil
}

// applyOverrides applies the command line flags to cfg and returns the RNG
// seed to use. A zero seed is replaced by one derived from now.
func applyOverrides(cfg *config.Demo, fps int, seed int64, now time.Time) int64 {
	if fps > 0 {
		cfg.Screen.TickRate = fps
	}
	if seed == 0 {
		seed = now.UnixNano()
	}
	return seed
}
