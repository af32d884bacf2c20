package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bounce-kit/internal/lifecycle"
	"github.com/vovakirdan/bounce-kit/internal/platform/desktop"
)

var (
	flagZoom int
	flagMute bool
)

var playCmd = &cobra.Command{
	Use:   "play <demo>",
	Short: "Play a demo in a window",
	Long: `Open a desktop window and run the specified demo.

Controls:
  Space        - Particle burst at the sprite
  P            - Pause
  R            - Reset the sprite to its start position
  Wheel, A/D   - Turn the crank
  Q/Esc        - Quit

Examples:
  bounce play ket
  bounce play ket-partikel --zoom 2
  bounce play hello --fps 30
  bounce play ket --config ./my-ket.yaml --assets ./my-assets`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagZoom, "zoom", 1, "Initial window zoom factor")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(_ *cobra.Command, args []string) {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p, err := prepareDemo(args[0], logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	host := desktop.NewHost(desktop.NewAssets(p.assets, p.config.Audio.Volume, flagMute), logger)
	inst := lifecycle.New(p.demo, host)
	opts := desktop.Options{Zoom: flagZoom, CrankStep: p.config.Crank.StepSize}

	if err := desktop.Run(inst, p.runtime, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running demo: %v\n", err)
		os.Exit(1)
	}
}
