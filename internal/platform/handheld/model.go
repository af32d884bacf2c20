package handheld

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/bounce-kit/internal/core"
	"github.com/vovakirdan/bounce-kit/internal/lifecycle"
)

// Rows taken by the bezel border, status line and help line.
const (
	chromeCols = 2
	chromeRows = 4
)

// Options configures a terminal run.
type Options struct {
	// Width and Height are the terminal size in cells.
	Width, Height int
	// CrankStep is the crank rotation of one key press, in degrees.
	CrankStep float64
}

// Model is the Bubble Tea model for running a demo on the terminal LCD.
type Model struct {
	inst     *lifecycle.Instance
	config   core.RuntimeConfig
	canvas   *Canvas
	lcd      *LCD
	renderer *Renderer
	keys     *KeyMapper
	help     help.Model
	pending  core.Frame
	lastTick time.Time
	fps      float64
	quitting bool
}

// NewModel creates a model around an initialized instance.
func NewModel(inst *lifecycle.Instance, cfg core.RuntimeConfig, opts Options) Model {
	m := Model{
		inst:     inst,
		config:   cfg,
		canvas:   NewCanvas(cfg.ScreenW, cfg.ScreenH),
		renderer: NewRenderer(nil),
		keys:     NewKeyMapper(opts.CrankStep),
		help:     help.New(),
		pending:  core.Frame{Input: core.NewInputFrame()},
	}
	cols, rows := FitLCD(cfg.ScreenW, cfg.ScreenH, opts.Width-chromeCols, opts.Height-chromeRows)
	m.lcd = NewLCD(cols, rows)
	m.help.Width = opts.Width
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey collects input for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	m.keys.MapKeyToFrame(msg, &m.pending)
	return m, nil
}

// handleResize refits the LCD to the terminal.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.help.Width = msg.Width
	cols, rows := FitLCD(m.config.ScreenW, m.config.ScreenH, msg.Width-chromeCols, msg.Height-chromeRows)
	m.lcd.Resize(cols, rows)
	return m, nil
}

// handleTick advances the demo by one fixed step.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.lastTick.IsZero() {
		if dt := now.Sub(m.lastTick).Seconds(); dt > 0 {
			// Exponential moving average.
			m.fps += (1/dt - m.fps) * 0.1
		}
	}
	m.lastTick = now

	frame := m.pending
	frame.Elapsed = m.config.TickSeconds()
	m.pending = core.Frame{Input: core.NewInputFrame()}

	if !m.inst.Tick(frame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	t := GetTheme()

	if err := m.inst.Draw(m.canvas); err != nil {
		return err.Error()
	}
	if m.config.ShowFPS {
		m.drawFPS()
	}

	bg := m.canvas.Background()
	paper := t.Paper
	if paper == nil {
		paper = paperColor(bg)
	}
	m.renderer.SetPaper(paper)
	m.lcd.Rasterize(m.canvas.Image(), bg)

	var b strings.Builder
	b.WriteString(t.Bezel.Render(m.renderer.RenderScreen(m.lcd.Screen())))
	b.WriteString("\n")
	b.WriteString(m.statusLine(t))
	b.WriteString("\n")
	b.WriteString(t.Help.Render(m.help.View(m.keys.Keys)))
	return b.String()
}

// statusLine shows the demo title and run state.
func (m Model) statusLine(t Theme) string {
	status := t.Status.Render(fmt.Sprintf(" %s  %dx%d @ %dHz  frame %d",
		m.inst.Demo().Title(), m.config.ScreenW, m.config.ScreenH, m.config.TickRate, m.inst.Frames()))
	if m.inst.Paused() {
		status = lipgloss.JoinHorizontal(lipgloss.Top, status, t.Paused.Render("  PAUSED"))
	}
	return status
}

// drawFPS draws the measured frame rate in the top-left corner of the
// framebuffer, inverted against the background.
func (m Model) drawFPS() {
	font := &Font{face: basicfont.Face7x13}
	text := fmt.Sprintf("%.0f", m.fps)
	w, h := font.Measure(text)
	bg := m.canvas.Background()
	ink := color.RGBA{R: 255 - bg.R, G: 255 - bg.G, B: 255 - bg.B, A: 0xff}
	m.canvas.FillRect(core.NewRect(0, 0, w+4, h+2), bg)
	m.canvas.DrawText(font, text, 2, 1, ink)
}

// FitLCD returns the LCD size in cells for a w x h framebuffer shown in at
// most maxCols x maxRows cells, trimming cells the picture would leave empty.
func FitLCD(w, h, maxCols, maxRows int) (cols, rows int) {
	maxCols = max(maxCols, 1)
	maxRows = max(maxRows, 1)
	scale := max(ceilDiv(w, maxCols*dotsX), ceilDiv(h, maxRows*dotsY), 1)
	cols = min(ceilDiv(w, scale*dotsX), maxCols)
	rows = min(ceilDiv(h, scale*dotsY), maxRows)
	return max(cols, 1), max(rows, 1)
}

// Run initializes the demo, shows it until it quits and shuts it down.
// An Init failure is returned before the terminal is taken over.
func Run(inst *lifecycle.Instance, cfg core.RuntimeConfig, opts Options) error {
	if err := inst.HandleEvent(lifecycle.EventInit); err != nil {
		return err
	}
	defer inst.HandleEvent(lifecycle.EventTerminate) //nolint:errcheck // Terminate never fails

	p := tea.NewProgram(
		NewModel(inst, cfg, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)
	_, err := p.Run()
	return err
}
