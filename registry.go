package elcmp

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Entry is one registered component.
type Entry struct {
	Name      string
	Component Component
}

// Registry maps component names to components.
//
// A Registry is safe for concurrent use. Registration overwrites silently, so
// reloading a component under the same name replaces it for later renders.
type Registry struct {
	mu         sync.RWMutex
	components map[string]Component
	logger     *zap.Logger
}

// NewRegistry creates an empty registry. A nil logger uses zap.L().
func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{
		components: make(map[string]Component),
		logger:     logger,
	}
}

func (reg *Registry) log() *zap.Logger {
	if reg.logger != nil {
		return reg.logger
	}
	return zap.L()
}

// Register stores c under name, replacing any previous entry.
//
// Nil components, including typed nils, are not stored; the rejection is
// logged and the registry is left unchanged.
func (reg *Registry) Register(name string, c Component) {
	if !validComponent(c) {
		reg.log().Error(fmt.Sprintf("component %q has no render capability", name),
			zap.String("component", name), zap.Error(ErrInvalidComponent))
		return
	}

	reg.mu.Lock()
	reg.components[name] = c
	reg.mu.Unlock()
}

// Remove deletes name from the registry. It reports whether it was present.
func (reg *Registry) Remove(name string) bool {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	_, ok := reg.components[name]
	delete(reg.components, name)
	return ok
}

// Lookup returns the component registered under name.
func (reg *Registry) Lookup(name string) (Component, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	c, ok := reg.components[name]
	return c, ok
}

// Has reports whether name is registered.
func (reg *Registry) Has(name string) bool {
	_, ok := reg.Lookup(name)
	return ok
}

// Len returns the number of registered components.
func (reg *Registry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.components)
}

// Names returns the registered names in sorted order.
func (reg *Registry) Names() []string {
	reg.mu.RLock()
	names := make([]string, 0, len(reg.components))
	for name := range reg.components {
		names = append(names, name)
	}
	reg.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Entries returns a snapshot of the registry sorted by name.
func (reg *Registry) Entries() []Entry {
	reg.mu.RLock()
	entries := make([]Entry, 0, len(reg.components))
	for name, c := range reg.components {
		entries = append(entries, Entry{Name: name, Component: c})
	}
	reg.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// Range calls fn for each entry in name order until fn returns false. The
// value passed to fn is the Component. Range works on a snapshot, so fn may
// register or remove components.
func (reg *Registry) Range(fn func(name string, value any) bool) {
	for _, e := range reg.Entries() {
		if !fn(e.Name, e.Component) {
			return
		}
	}
}
