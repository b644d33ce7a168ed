package hooks

import (
	"fmt"
	"sort"
	"sync"
)

// Registry manages registered hooks in execution order.
type Registry struct {
	mu    sync.RWMutex
	hooks map[string]Hook
}

// NewRegistry creates an empty hook registry.
func NewRegistry() *Registry {
	return &Registry{hooks: make(map[string]Hook)}
}

// Register adds a hook to the registry.
// Returns an error if a hook with the same name is already registered.
func (r *Registry) Register(hook Hook) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := hook.Name()
	if _, exists := r.hooks[name]; exists {
		return fmt.Errorf("hook %q already registered", name)
	}

	r.hooks[name] = hook
	return nil
}

// MustRegister adds a hook to the registry, panicking on error.
func (r *Registry) MustRegister(hook Hook) {
	if err := r.Register(hook); err != nil {
		panic(err)
	}
}

// Get retrieves a hook by name. Returns nil if not found.
func (r *Registry) Get(name string) Hook {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.hooks[name]
}

// Hooks returns all registered hooks sorted by (order, name). The order is
// significant: the color-extraction hook runs before application hooks,
// and window-manager hooks run after terminal and editor hooks.
func (r *Registry) Hooks() []Hook {
	r.mu.RLock()
	defer r.mu.RUnlock()

	hooks := make([]Hook, 0, len(r.hooks))
	for _, hook := range r.hooks {
		hooks = append(hooks, hook)
	}
	sort.Slice(hooks, func(i, j int) bool {
		if hooks[i].Order() != hooks[j].Order() {
			return hooks[i].Order() < hooks[j].Order()
		}
		return hooks[i].Name() < hooks[j].Name()
	})
	return hooks
}

// Names returns the registered hook names in execution order.
func (r *Registry) Names() []string {
	hooks := r.Hooks()
	names := make([]string, 0, len(hooks))
	for _, hook := range hooks {
		names = append(names, hook.Name())
	}
	return names
}
