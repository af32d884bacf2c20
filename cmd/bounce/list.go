package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bounce-kit/internal/config"
	"github.com/vovakirdan/bounce-kit/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available demos",
	Long:  `Shows a list of all demos registered in bounce.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	demos := registry.List()

	if len(demos) == 0 {
		fmt.Println("No demos available.")
		return
	}

	fmt.Println("Available demos:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, d := range demos {
		if len(d.ID) > maxIDLen {
			maxIDLen = len(d.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-9s  %s\n", maxIDLen, "ID", "Screen", "Title")
	fmt.Printf("  %-*s  %-9s  %s\n", maxIDLen, "--", "------", "-----")

	// Print demos
	for _, d := range demos {
		screen := "-"
		if cfg, ok := config.Default(d.ID); ok {
			screen = fmt.Sprintf("%dx%d", cfg.Screen.Width, cfg.Screen.Height)
		}
		fmt.Printf("  %-*s  %-9s  %s\n", maxIDLen, d.ID, screen, d.Title)
	}

	fmt.Println()
	fmt.Println("Run 'bounce play <id>' for a window or 'bounce handheld <id>' for the terminal.")
}
