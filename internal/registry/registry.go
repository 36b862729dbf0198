// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platforms
// to discover and instantiate games without importing them directly.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/gridzero/internal/core"
)

// Game is the interface a platform drives.
// Implementations wrap pure game logic; the platform handles input mapping,
// timing, and turning the screen buffer into terminal output.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "zerogrid").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when the platform restarts the game.
	Reset(cfg core.RuntimeConfig)

	// Resize updates the screen dimensions without touching game progress.
	Resize(w, h int)

	// Step advances the presentation by one tick and applies the input.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}
