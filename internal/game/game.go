// Package game defines the interface between a simulation core and the
// platform, plus a factory registry so the CLI can discover games without
// hardcoded dependencies.
package game

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/arkanoid/internal/core"
)

// Game is the contract a simulation core implements. Cores contain pure
// logic: no I/O, no clock reads, no Bubble Tea. The platform supplies
// elapsed time and input snapshots and consumes exported draw data.
type Game interface {
	// ID returns a unique identifier, used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or restarts the game from its settings record.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one frame. dt is the externally
	// supplied elapsed time in seconds; the core never reads a clock.
	Step(dt float64, in core.InputFrame) core.StepResult

	// DrawData exports the world-space render state for the current frame.
	// Renderers must treat the result as read-only.
	DrawData() *core.DrawData

	// State returns the current game status.
	State() core.GameState
}

// Info contains metadata about a registered game.
type Info struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry. Typically called from a
// game package's init function. Panics on duplicate IDs.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("game: %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Create instantiates a new game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("game: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
