// bounce runs the bouncing sprite demos on the desktop or in the terminal.
//
// Usage:
//
//	bounce list               - List available demos
//	bounce play <demo>        - Play a demo in a window
//	bounce handheld [demo]    - Play a demo on the terminal LCD (picker without a demo)
//	bounce config <demo>      - Print the effective configuration of a demo
//
// Global flags:
//
//	--fps <rate>        - Override the demo's tick rate
//	--seed <value>      - Set RNG seed for reproducible particle bursts
//	--config <path>     - Load the demo configuration from a YAML file
//	--assets <dir>      - Serve assets from dir before the embedded ones
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import demos to register them
	_ "github.com/vovakirdan/bounce-kit/internal/demos/hello"
	_ "github.com/vovakirdan/bounce-kit/internal/demos/ket"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagAssets   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bounce",
	Short: "Bounce - sprite bouncing starter demos",
	Long: `Bounce runs small starter demos: a sprite that moves at a constant
velocity, reflects off the screen edges, wobbles after every impact and
throws a burst of particles where it hit.

Available commands:
  list      - Show all available demos
  play      - Play a demo in a desktop window
  handheld  - Play a demo on a 1-bit terminal LCD
  config    - Print a demo's effective configuration

Examples:
  bounce list
  bounce play ket
  bounce play ket-partikel --seed 42
  bounce handheld hello
  bounce handheld
  bounce config ket > ~/.bounce/configs/ket.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use the demo's configuration)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom demo config YAML")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Directory with assets overriding the embedded ones")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(handheldCmd)
	rootCmd.AddCommand(configCmd)
}
