package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bounce-kit/internal/lifecycle"
	"github.com/vovakirdan/bounce-kit/internal/platform/handheld"
)

var (
	flagLogFile      string
	flagHandheldMute bool
	flagMonochrome   bool
)

var handheldCmd = &cobra.Command{
	Use:   "handheld [demo]",
	Short: "Play a demo on the terminal LCD",
	Long: `Run a demo on a 1-bit handheld LCD drawn with braille characters in
the terminal. Without a demo a picker menu opens, and you return to it after
each demo ends.

The terminal belongs to the demo while it runs, so logs go to --log-file
(discarded by default).

Controls:
  Left/Right, A/D  - Turn the crank
  Space            - Particle burst at the sprite
  P                - Pause
  R                - Reset the sprite to its start position
  ?                - Toggle full help
  Q/Esc/Ctrl+C     - Quit

Examples:
  bounce handheld
  bounce handheld hello
  bounce handheld ket --log-file bounce.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHandheld,
}

func init() {
	handheldCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	handheldCmd.Flags().BoolVar(&flagHandheldMute, "mute", false, "Disable sound effects")
	handheldCmd.Flags().BoolVar(&flagMonochrome, "mono", false, "Use the grayscale theme")
}

func runHandheld(_ *cobra.Command, args []string) {
	if err := handheldMain(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// handheldMain plays one demo, or the picker loop when args is empty. It
// returns instead of exiting so the log file is closed on every path.
func handheldMain(args []string) error {
	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	logger, err := newLogger(out)
	if err != nil {
		return err
	}

	if flagMonochrome {
		handheld.SetTheme(handheld.MonochromeTheme())
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	if len(args) == 1 {
		return playHandheld(args[0], width, height, logger)
	}
	return menuLoop(width, height, func(id string, w, h int) error {
		return playHandheld(id, w, h, logger)
	}, handheld.RunMenu)
}

// menuLoop shows the picker until it is quit, playing each selected demo
// and returning to the picker afterwards.
func menuLoop(width, height int, play func(id string, w, h int) error,
	pick func(w, h int) (handheld.MenuResult, error)) error {
	for {
		result, err := pick(width, height)
		if err != nil {
			return err
		}
		if result.Quit {
			return nil
		}
		width, height = result.Width, result.Height

		if err := play(result.DemoID, width, height); err != nil {
			return err
		}
	}
}

// playHandheld runs one demo on the terminal until it quits.
func playHandheld(demoID string, width, height int, logger *log.Logger) error {
	p, err := prepareDemo(demoID, logger)
	if err != nil {
		return err
	}
	host := handheld.NewHost(handheld.NewAssets(p.assets, p.config.Audio.Volume, flagHandheldMute), logger)
	inst := lifecycle.New(p.demo, host)
	return handheld.Run(inst, p.runtime, handheld.Options{
		Width:     width,
		Height:    height,
		CrankStep: p.config.Crank.StepSize,
	})
}
