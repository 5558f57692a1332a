package catalog

import (
	"errors"
	"sort"
	"sync"
)

// Loader validation errors.
var (
	ErrMissingName    = errors.New("catalog group has no name")
	ErrNoOptions      = errors.New("catalog group has no options")
	ErrUnknownDefault = errors.New("default is not one of the options")
)

// Registry manages option groups by name.
type Registry struct {
	groups map[string]*Group
	mu     sync.RWMutex
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		groups: make(map[string]*Group),
	}
}

// Register adds a group, replacing any group with the same name.
func (r *Registry) Register(group *Group) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.groups[group.Name] = group
}

// Get retrieves a group by name.
// Returns nil if not found.
func (r *Registry) Get(name string) *Group {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.groups[name]
}

// List returns all registered group names, sorted alphabetically.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.groups))
	for name := range r.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered groups.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.groups)
}
