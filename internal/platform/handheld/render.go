package handheld

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bounce-kit/internal/core"
)

// colorCodes maps core.Color to ANSI 256 colour codes.
var colorCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorBlack:         "16",
}

// Renderer converts screens to styled strings, caching one style per colour.
type Renderer struct {
	paper  lipgloss.TerminalColor
	styles map[core.Color]lipgloss.Style
}

// NewRenderer creates a renderer that paints every cell on paper.
// A nil paper leaves the terminal background alone.
func NewRenderer(paper lipgloss.TerminalColor) *Renderer {
	return &Renderer{paper: paper, styles: make(map[core.Color]lipgloss.Style)}
}

// SetPaper changes the background colour, dropping cached styles when it
// differs from the current one.
func (r *Renderer) SetPaper(paper lipgloss.TerminalColor) {
	if paper == r.paper {
		return
	}
	r.paper = paper
	clear(r.styles)
}

// style returns the cached style of a cell colour.
func (r *Renderer) style(c core.Color) lipgloss.Style {
	if s, ok := r.styles[c]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if r.paper != nil {
		s = s.Background(r.paper)
	}
	if code, ok := colorCodes[c]; ok {
		s = s.Foreground(lipgloss.Color(code))
	}
	r.styles[c] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (r *Renderer) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(r.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreen renders s without a paper colour.
func RenderScreen(s *core.Screen) string {
	return NewRenderer(nil).RenderScreen(s)
}
