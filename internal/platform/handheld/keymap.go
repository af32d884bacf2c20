package handheld

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bounce-kit/internal/core"
)

// KeyMap defines the key bindings of a running demo.
type KeyMap struct {
	Pause      key.Binding
	Burst      key.Binding
	Reset      key.Binding
	Quit       key.Binding
	CrankBack  key.Binding
	CrankAhead key.Binding
	Help       key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.CrankBack, k.CrankAhead, k.Burst, k.Pause, k.Quit, k.Help}
}

// FullHelp returns keybindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.CrankBack, k.CrankAhead},
		{k.Burst, k.Reset, k.Pause},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Burst: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "burst"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		CrankBack: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "crank back"),
		),
		CrankAhead: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "crank ahead"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to demo input.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	Keys KeyMap
	// Step is the crank rotation of one key press, in degrees.
	Step float64
}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper(step float64) *KeyMapper {
	if step <= 0 {
		step = 15
	}
	return &KeyMapper{Keys: DefaultKeyMap(), Step: step}
}

// MapKey translates a key message to an action and a crank rotation.
// At most one of the two is set.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, crank float64) {
	switch {
	case key.Matches(msg, km.Keys.Quit):
		return core.ActionQuit, 0
	case key.Matches(msg, km.Keys.Pause):
		return core.ActionPause, 0
	case key.Matches(msg, km.Keys.Burst):
		return core.ActionBurst, 0
	case key.Matches(msg, km.Keys.Reset):
		return core.ActionReset, 0
	case key.Matches(msg, km.Keys.CrankBack):
		return core.ActionNone, -km.Step
	case key.Matches(msg, km.Keys.CrankAhead):
		return core.ActionNone, km.Step
	}
	return core.ActionNone, 0
}

// MapKeyToFrame accumulates a key message into the pending frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.Frame) bool {
	action, crank := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Input.Set(action)
	}
	frame.Crank += crank
	return action == core.ActionQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	}
	return MenuActionNone
}
