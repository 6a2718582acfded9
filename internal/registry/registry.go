// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/mindgym/internal/config"
	"github.com/vovakirdan/mindgym/internal/core"
)

// ErrUnknownGame is returned when no game is registered under an ID.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the interface every mini-game implements.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, persistence and rendering.
type Game interface {
	// ID returns the game identifier, equal to its Kind (e.g. "aim", "npuzzle").
	ID() string

	// Title returns a human-readable name for display (e.g. "Aim Trainer").
	Title() string

	// Kind returns the score kind recorded for this game.
	Kind() core.Kind

	// Reset initializes or resets the round. Every pending timer is cancelled.
	// The RuntimeConfig provides screen dimensions and the RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Start leaves the ready phase. It is a no-op in any other phase.
	Start()

	// Submit applies one player action. Actions that make no sense in the
	// current phase are ignored.
	Submit(in core.Input)

	// Advance moves the round's clock forward, firing due timers.
	Advance(dt time.Duration)

	// Render draws the current round into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the presentation summary of the round.
	State() core.GameState

	// Snapshot returns a copy of the round data.
	Snapshot() core.Snapshot

	// SetEffects injects the sink receiving game events.
	SetEffects(e core.Effects)

	// OnChange registers a phase-transition listener.
	OnChange(fn func(from, to core.Phase))
}

// Variants is implemented by games whose scores are tagged by a variant
// (grid size, target count, start count).
type Variants interface {
	// Variants lists the selectable variant tags, default first.
	Variants() []string

	// SetVariant selects a variant for the next Reset.
	SetVariant(v string) error
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID       string
	Title    string
	Kind     core.Kind
	Variants []string // Empty for games without variants
}

// Factory creates a new game instance configured from cfg.
type Factory func(cfg *config.Config) Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get metadata by creating a temporary instance
	cfg := config.Default()
	g := f(&cfg)
	info := GameInfo{ID: id, Title: g.Title(), Kind: g.Kind()}
	if v, ok := g.(Variants); ok {
		info.Variants = v.Variants()
	}
	infos[id] = info
}

// List returns information about all registered games in menu order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		ri, rj := menuRank(result[i].Kind), menuRank(result[j].Kind)
		if ri != rj {
			return ri < rj
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// menuRank returns the position of k in core.Kinds, or len(core.Kinds) if absent.
func menuRank(k core.Kind) int {
	for i, known := range core.Kinds {
		if k == known {
			return i
		}
	}
	return len(core.Kinds)
}

// Info returns the metadata of a registered game.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := infos[id]
	return info, ok
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string, cfg *config.Config) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}

	return f(cfg), nil
}

// CreateVariant instantiates a game and selects a variant. An empty variant
// keeps the game's default.
func CreateVariant(id, variant string, cfg *config.Config) (Game, error) {
	g, err := Create(id, cfg)
	if err != nil {
		return nil, err
	}
	if variant == "" {
		return g, nil
	}
	v, ok := g.(Variants)
	if !ok {
		return nil, fmt.Errorf("registry: game %q has no variants", id)
	}
	if err := v.SetVariant(variant); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
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
