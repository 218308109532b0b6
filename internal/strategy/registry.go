package strategy

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Info describes a registered strategy variant.
type Info struct {
	Key         string // Menu key, e.g. "1"
	ID          string // Stable identifier, e.g. "rock"
	Title       string // Display name, e.g. "Rock Player"
	Description string // One line explaining how it plays
	Interactive bool   // Needs a human MoveSource
}

// Factory builds a fresh strategy instance for one match.
type Factory func(env Env) Strategy

type entry struct {
	info    Info
	factory Factory
}

var (
	entries = make(map[string]entry) // by ID
	keys    = make(map[string]string)
	mu      sync.RWMutex
)

// Register adds a strategy variant to the registry.
// Typically called from a variant's init() function.
// Panics if the ID or key is already registered.
func Register(info Info, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	id := strings.ToLower(info.ID)
	key := strings.ToLower(info.Key)
	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("strategy: %q already registered", info.ID))
	}
	if _, exists := keys[key]; exists {
		panic(fmt.Sprintf("strategy: key %q already registered", info.Key))
	}

	entries[id] = entry{info: info, factory: f}
	keys[key] = id
}

// List returns all registered variants, sorted by menu key.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Key < result[j].Key
	})

	return result
}

// Lookup finds a variant by menu key or ID, ignoring case and whitespace.
func Lookup(key string) (Info, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := find(key)
	if !ok {
		return Info{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, key)
	}
	return e.info, nil
}

// Exists checks if key names a registered variant.
func Exists(key string) bool {
	_, err := Lookup(key)
	return err == nil
}

// Create instantiates a new strategy by menu key or ID.
func Create(key string, env Env) (Strategy, error) {
	mu.RLock()
	e, ok := find(key)
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, key)
	}
	if e.info.Interactive && env.Input == nil {
		return nil, fmt.Errorf("strategy %q: %w", e.info.ID, ErrNoMoveSource)
	}

	return e.factory(env.withDefaults()), nil
}

// find resolves key to an entry. Callers hold mu.
func find(key string) (entry, bool) {
	k := strings.ToLower(strings.TrimSpace(key))
	if id, ok := keys[k]; ok {
		k = id
	}
	e, ok := entries[k]
	return e, ok
}
