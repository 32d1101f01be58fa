// Package registry maps game IDs to factories. Game packages register
// themselves in init() so hosts can build a game by ID without importing
// the concrete type.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/bounce-joy/internal/core"
)

// Game is what a host drives: fixed ticks in, a screen buffer out.
// Implementations hold no terminal or network state.
type Game interface {
	// ID returns a unique identifier, used for CLI arguments and score storage.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset starts from scratch for the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state. The screen is cleared by the game.
	Render(dst *core.Screen)

	// State returns score, level and end-of-run flags.
	State() core.GameState
}

// Resizer is implemented by games that can adapt to a new screen size
// without losing progress. Hosts fall back to Reset otherwise.
type Resizer interface {
	Resize(cfg core.RuntimeConfig)
}

// Notifier is implemented by games that describe what happened during
// the last Step, one line per event.
type Notifier interface {
	Notes() []string
}

// ErrUnknownGame is returned by Create for unregistered IDs.
var ErrUnknownGame = errors.New("unknown game")

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
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
	titles[id] = f().Title()
}

// List returns all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: %q: %w", id, ErrUnknownGame)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Resize applies a new screen size, keeping progress when the game supports it.
func Resize(g Game, cfg core.RuntimeConfig) {
	if r, ok := g.(Resizer); ok {
		r.Resize(cfg)
		return
	}
	g.Reset(cfg)
}

// Notes returns the game's descriptions of its last step, if it has any.
func Notes(g Game) []string {
	if n, ok := g.(Notifier); ok {
		return n.Notes()
	}
	return nil
}
