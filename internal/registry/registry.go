// Package registry provides a global registry for demo factories.
// Demos register themselves in init() functions, allowing the hosts
// to discover and instantiate demos without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/bounce-kit/internal/config"
	"github.com/vovakirdan/bounce-kit/internal/core"
)

// Demo is the interface every bouncing sprite demo implements.
// Demos hold their simulation state and talk to the host only through the
// core collaborator interfaces; the host owns the window, timing and input.
type Demo interface {
	// ID returns a unique identifier for this demo (e.g., "ket", "hello").
	// Used for CLI commands and config file names.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Init acquires the demo's assets. Called once before the first Update.
	// A returned error is fatal; the host still calls Shutdown.
	Init(host core.Host) error

	// Update advances the simulation by one frame.
	Update(f core.Frame)

	// Draw renders the current state. Called once per frame after Update.
	Draw(c core.Canvas)

	// Shutdown releases everything Init acquired. It must tolerate a
	// partially completed Init.
	Shutdown()
}

// Options carries what a factory needs to build a demo.
type Options struct {
	Config config.Demo
	Seed   int64 // RNG seed for particle bursts
}

// DemoInfo contains metadata about a registered demo.
type DemoInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a demo.
type Factory func(opts Options) Demo

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a demo factory to the registry.
// Typically called from a demo's init() function.
// Panics if a demo with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: demo %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered demos, sorted by ID.
func List() []DemoInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]DemoInfo, 0, len(factories))
	for id := range factories {
		result = append(result, DemoInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new demo by its ID.
// Returns an error if the demo ID is not registered.
func Create(id string, opts Options) (Demo, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown demo %q", id)
	}

	return f(opts), nil
}

// Exists checks if a demo with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// unregister removes a demo. Used by tests.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()

	delete(factories, id)
	delete(titles, id)
}
