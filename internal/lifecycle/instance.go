// Package lifecycle owns a running demo and enforces the order of its entry
// points: Init once, then Update and Draw per frame, then Shutdown once.
//
// Hosts hold a single *Instance as their handle to the demo. Callback-style
// hosts forward EventInit and EventTerminate through HandleEvent and call
// Tick once per frame.
package lifecycle

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bounce-kit/internal/core"
	"github.com/vovakirdan/bounce-kit/internal/registry"
)

var (
	// ErrNotRunning is returned by per-frame calls outside the Running state.
	ErrNotRunning = errors.New("lifecycle: demo is not running")
	// ErrAlreadyInitialized is returned by Init after the first call.
	ErrAlreadyInitialized = errors.New("lifecycle: demo already initialized")
)

// State is the lifecycle state of an Instance.
type State int

const (
	StateUninitialized State = iota
	StateRunning
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Event is a system event delivered by a callback-driven host.
type Event int

const (
	EventInit Event = iota
	EventTerminate
)

func (e Event) String() string {
	switch e {
	case EventInit:
		return "init"
	case EventTerminate:
		return "terminate"
	default:
		return "unknown"
	}
}

// Instance wraps one demo and its host.
type Instance struct {
	demo   registry.Demo
	host   core.Host
	logger *log.Logger
	state  State
	paused bool
	frames uint64
}

// New creates an uninitialized instance.
func New(demo registry.Demo, host core.Host) *Instance {
	logger := host.Logger()
	if logger == nil {
		logger = log.Default()
	}
	return &Instance{
		demo:   demo,
		host:   host,
		logger: logger.With("demo", demo.ID()),
	}
}

// Demo returns the wrapped demo.
func (i *Instance) Demo() registry.Demo { return i.demo }

// State returns the current lifecycle state.
func (i *Instance) State() State { return i.state }

// Paused reports whether updates are currently suspended.
func (i *Instance) Paused() bool { return i.paused }

// Frames returns the number of frames forwarded to the demo.
func (i *Instance) Frames() uint64 { return i.frames }

// Init initializes the demo. If the demo fails, its Shutdown runs
// immediately and the instance is terminated.
func (i *Instance) Init() error {
	if i.state != StateUninitialized {
		return ErrAlreadyInitialized
	}

	i.logger.Info("Initializing", "title", i.demo.Title())
	if err := i.demo.Init(i.host); err != nil {
		i.logger.Error("Init failed", "error", err)
		i.terminate()
		return fmt.Errorf("init %s: %w", i.demo.ID(), err)
	}
	i.state = StateRunning
	return nil
}

// Update applies the frame's lifecycle actions and advances the demo unless
// it is paused. A Quit action shuts the demo down.
func (i *Instance) Update(f core.Frame) error {
	if i.state != StateRunning {
		return ErrNotRunning
	}

	if f.Input.Has(core.ActionQuit) {
		i.Shutdown()
		return nil
	}
	if f.Input.Has(core.ActionPause) {
		i.paused = !i.paused
		i.logger.Debug("Pause toggled", "paused", i.paused)
	}
	if i.paused {
		return nil
	}

	i.demo.Update(f)
	i.frames++
	return nil
}

// Draw renders the demo.
func (i *Instance) Draw(c core.Canvas) error {
	if i.state != StateRunning {
		return ErrNotRunning
	}
	i.demo.Draw(c)
	return nil
}

// Tick runs Update for one frame and reports whether the instance is still
// running afterwards.
func (i *Instance) Tick(f core.Frame) bool {
	if err := i.Update(f); err != nil {
		return false
	}
	return i.state == StateRunning
}

// HandleEvent maps host system events onto Init and Shutdown.
func (i *Instance) HandleEvent(ev Event) error {
	i.logger.Debug("System event", "event", ev)
	switch ev {
	case EventInit:
		return i.Init()
	case EventTerminate:
		i.Shutdown()
		return nil
	default:
		return fmt.Errorf("lifecycle: unknown event %d", int(ev))
	}
}

// Shutdown releases the demo's resources. It is safe to call in any state
// and more than once; the demo's Shutdown runs at most once.
func (i *Instance) Shutdown() {
	switch i.state {
	case StateTerminated:
		return
	case StateUninitialized:
		i.state = StateTerminated
		return
	}
	i.logger.Info("Shutting down...")
	i.terminate()
}

func (i *Instance) terminate() {
	i.demo.Shutdown()
	i.state = StateTerminated
}
