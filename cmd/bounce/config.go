package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bounce-kit/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config <demo>",
	Short: "Print the effective configuration of a demo",
	Long: `Print the YAML configuration a demo would run with, after the config
search and the --fps override. Save it to ~/.bounce/configs/<demo>.yaml or
./configs/<demo>.yaml and edit it to customize the demo.

Search order:
  --config <path>
  ~/.bounce/configs/<demo>.yaml
  ./configs/<demo>.yaml
  embedded default

Examples:
  bounce config ket
  bounce config hello --fps 30 > configs/hello.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, args []string) {
	demoID := args[0]

	cfg, source, err := config.LoadWithSource(demoID, flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagFPS > 0 {
		cfg.Screen.TickRate = flagFPS
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("# %s configuration (source: %s)\n", demoID, source)
	if err := config.Validate(cfg); err != nil {
		fmt.Printf("# WARNING: invalid: %v\n", err)
	}
	fmt.Print(string(data))
}
