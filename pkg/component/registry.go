package component

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

// Descriptor names a registered component.
type Descriptor struct {
	Name      string
	Component Component
}

// Registry tracks components keyed by name. Callers can register new
// components or override defaults.
type Registry struct {
	mu         sync.RWMutex
	components map[string]Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		components: make(map[string]Descriptor),
	}
}

// Clone returns a copy of the registry to allow isolated mutations.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return &Registry{components: maps.Clone(r.components)}
}

// Register associates a descriptor with the provided name. Existing entries
// are replaced.
func (r *Registry) Register(name string, descriptor Descriptor) error {
	if name = normalize(name); name == "" {
		return fmt.Errorf("component: component name is required")
	}
	if descriptor.Component == nil {
		return fmt.Errorf("component: component for %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	descriptor.Name = name
	r.components[name] = descriptor
	return nil
}

// MustRegister mirrors Register but panics on error, simplifying default
// registry setup.
func (r *Registry) MustRegister(name string, descriptor Descriptor) {
	if err := r.Register(name, descriptor); err != nil {
		panic(err)
	}
}

// Descriptor fetches a descriptor by name.
func (r *Registry) Descriptor(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	descriptor, ok := r.components[normalize(name)]
	if !ok {
		return Descriptor{}, false
	}
	return descriptor, true
}

// Component fetches the component registered under name.
func (r *Registry) Component(name string) (Component, error) {
	descriptor, ok := r.Descriptor(name)
	if !ok {
		return nil, fmt.Errorf("component: %q not registered", normalize(name))
	}
	return descriptor.Component, nil
}

// Names returns a sorted slice of registered component names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.components))
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
