package handheld

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles of the handheld shell around the LCD.
type Theme struct {
	// Paper is the LCD background; nil uses the demo's clear colour.
	Paper lipgloss.TerminalColor

	Bezel  lipgloss.Style
	Status lipgloss.Style
	Paused lipgloss.Style
	Help   lipgloss.Style

	// Picker styles
	MenuTitle      lipgloss.Style
	MenuItemNormal lipgloss.Style
	MenuItemActive lipgloss.Style
	MenuHint       lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Bezel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("220")), // Handheld yellow
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Paused: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		MenuTitle:      lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		MenuItemNormal: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuHint:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// MonochromeTheme returns a grayscale theme.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Bezel = theme.Bezel.BorderForeground(lipgloss.Color("250"))
	theme.MenuTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.Paused = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	return theme
}

// paperColor converts a demo's clear colour to a terminal colour.
func paperColor(c color.RGBA) lipgloss.TerminalColor {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// Global theme variable (can be changed at runtime)
var theme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(t Theme) {
	theme = t
}

// GetTheme returns the current global theme.
func GetTheme() Theme {
	return theme
}
