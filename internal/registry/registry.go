// Package registry provides a global registry for playable levels.
// Level packs register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/jws412/Facade/internal/core"
)

// Game is the interface the platform drives. Games contain pure logic with
// no external dependencies (especially no Bubble Tea). The platform handles
// input mapping, timing, and presenting the framebuffer.
type Game interface {
	// ID returns a unique identifier (the level ID, e.g. "01-meadow").
	// Used for CLI commands and the run journal.
	ID() string

	// Title returns a human-readable name for display (e.g. "Meadow").
	Title() string

	// Resolution returns the backbuffer size the game renders at.
	Resolution() (w, h int)

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions (Jump, Pause, etc.).
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into dst, which has the size
	// reported by Resolution.
	Render(dst *core.Framebuffer)

	// State returns the current game state.
	State() core.GameState
}

// Focusable is implemented by games whose simulation ignores input while
// the window is not focused.
type Focusable interface {
	SetFocused(focused bool)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game. Loading happens here, so it
// may fail.
type Factory func() (Game, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from an init() function.
// Panics if a game with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered or fails to load.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	g, err := f()
	if err != nil {
		return nil, fmt.Errorf("registry: %s: %w", id, err)
	}
	return g, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
