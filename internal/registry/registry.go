// Package registry provides a global registry for pilot factories.
// Pilots register themselves in init() functions, allowing the arena and
// the CLI to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/flaptiles/internal/core"
)

// Pilot decides what a simulated bird does each tick.
// Pilots see only the normalized observation; the arena feeds them and
// turns their action into the instance's input frame.
type Pilot interface {
	// ID returns a unique identifier for this pilot (e.g., "heuristic").
	// Used for CLI flags and the config file.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset prepares the pilot for a new episode.
	// Pilots with randomness derive their RNG from the seed.
	Reset(seed int64)

	// Act returns the action for the current tick: core.ActionActivate to
	// flap, core.ActionNone to glide.
	Act(obs core.Observation) core.Action
}

// PilotInfo contains metadata about a registered pilot.
type PilotInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a pilot.
type Factory func() Pilot

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a pilot factory to the registry.
// Typically called from an init() function.
// Panics if a pilot with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: pilot %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f().Title()
}

// List returns information about all registered pilots, sorted by ID.
func List() []PilotInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PilotInfo, 0, len(factories))
	for id := range factories {
		result = append(result, PilotInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new pilot by its ID.
// Returns an error if the pilot ID is not registered.
func Create(id string) (Pilot, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown pilot %q (available: %s)", id, strings.Join(idsLocked(), ", "))
	}

	return f(), nil
}

// IDs returns the registered pilot IDs, sorted.
func IDs() []string {
	mu.RLock()
	defer mu.RUnlock()
	return idsLocked()
}

func idsLocked() []string {
	ids := make([]string, 0, len(factories))
	for id := range factories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Exists checks if a pilot with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
