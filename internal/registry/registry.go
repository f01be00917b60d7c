// Package registry provides a global registry for demo factories.
// Demos register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/sprite-demo/internal/core"
	"github.com/vovakirdan/sprite-demo/internal/render"
)

// Defaults are the pacing and movement values a demo was tuned for.
type Defaults struct {
	TickRate int // Frames per second
	Speed    int // Distance per frame
}

// Snapshot captures the loop state of a demo after a frame.
type Snapshot struct {
	Tick     uint64
	Position core.Point
	Velocity core.Point
	Facing   core.Direction
	Clear    core.Color
}

// Demo is the interface every sprite demo implements.
// Demos contain pure logic; the platform handles input polling, timing and
// presenting frames.
type Demo interface {
	// ID returns a unique identifier (e.g., "walk"), used on the command line.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Defaults returns the tick rate and speed used when the config leaves them zero.
	Defaults() Defaults

	// Reset initializes or resets the demo state. Zero TickRate and Speed
	// take the demo's Defaults.
	Reset(cfg core.RuntimeConfig)

	// Runtime returns the config from the last Reset with defaults applied.
	Runtime() core.RuntimeConfig

	// Step folds one frame's commands into the entity and advances one frame.
	Step(cmds []core.Command) core.StepResult

	// Frame returns what to draw for the current state in a viewW×viewH viewport.
	Frame(viewW, viewH int) render.Frame

	// Snapshot returns a copy of the current loop state.
	Snapshot() Snapshot
}

// DemoInfo contains metadata about a registered demo.
type DemoInfo struct {
	ID       string
	Title    string
	Defaults Defaults
}

// Factory is a function that creates a new instance of a demo.
type Factory func() Demo

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]DemoInfo)
	mu        sync.RWMutex
)

// Register adds a demo factory to the registry.
// Typically called from an init() function.
// Panics if a demo with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: demo %q already registered", id))
	}

	factories[id] = f

	d := f()
	infos[id] = DemoInfo{ID: id, Title: d.Title(), Defaults: d.Defaults()}
}

// List returns information about all registered demos, sorted by ID.
func List() []DemoInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]DemoInfo, 0, len(factories))
	for id := range factories {
		result = append(result, infos[id])
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new demo by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Demo, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown demo %q", id)
	}

	return f(), nil
}

// Exists checks if a demo with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
