package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrInvalidRegistration indicates a blank identifier or a nil factory.
	ErrInvalidRegistration = errors.New("registry: identifier must be non-blank and factory non-nil")
	// ErrDuplicate indicates the identifier is already registered.
	ErrDuplicate = errors.New("registry: identifier already registered")
	// ErrUnknown indicates an alias target that was never registered.
	ErrUnknown = errors.New("registry: unknown identifier")
)

// Factory builds a fresh component instance.
type Factory func() (any, error)

// Registry keeps factories in-memory and guards access with a RWMutex.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{factories: map[string]Factory{}}
}

// Register stores factory under id.
func (r *Registry) Register(id string, factory Factory) error {
	id = strings.TrimSpace(id)
	if id == "" || factory == nil {
		return ErrInvalidRegistration
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicate, id)
	}
	r.factories[id] = factory
	return nil
}

// Alias makes the factory registered under target reachable as alias too.
func (r *Registry) Alias(alias, target string) error {
	r.mu.RLock()
	factory, ok := r.factories[strings.TrimSpace(target)]
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknown, target)
	}
	return r.Register(alias, factory)
}

// Lookup returns the factory registered under id.
func (r *Registry) Lookup(id string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[strings.TrimSpace(id)]
	return factory, ok
}

// Identifiers returns every registered identifier in sorted order.
func (r *Registry) Identifiers() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.factories))
	for id := range r.factories {
		out = append(out, id)
	}
	r.mu.RUnlock()

	sort.Strings(out)
	return out
}

// MustRegister is like Register but panics on error. Intended for package-level
// built-in tables where a failure is a programming mistake.
func (r *Registry) MustRegister(id string, factory Factory) *Registry {
	if err := r.Register(id, factory); err != nil {
		panic(err)
	}
	return r
}
