package elcmp

import (
	"fmt"
	"sort"
	"sync"
)

// HelperFunc is a named helper shared by components.
type HelperFunc func(args ...any) any

// Globals holds data and helpers shared by every render of an engine, such
// as the site name or a date formatter. It is safe for concurrent use.
type Globals struct {
	mu      sync.RWMutex
	data    map[string]any
	helpers map[string]HelperFunc
}

// NewGlobals creates an empty set of globals.
func NewGlobals() *Globals {
	return &Globals{
		data:    make(map[string]any),
		helpers: make(map[string]HelperFunc),
	}
}

// Set stores a shared value.
func (g *Globals) Set(key string, value any) {
	g.mu.Lock()
	g.data[key] = value
	g.mu.Unlock()
}

// Get returns a shared value.
func (g *Globals) Get(key string) (any, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.data[key]
	return v, ok
}

// Data returns a copy of the shared values.
func (g *Globals) Data() map[string]any {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make(map[string]any, len(g.data))
	for k, v := range g.data {
		out[k] = v
	}
	return out
}

// Helper registers fn under name, replacing any previous helper. A nil fn
// removes the helper.
func (g *Globals) Helper(name string, fn HelperFunc) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if fn == nil {
		delete(g.helpers, name)
		return
	}
	g.helpers[name] = fn
}

// Helpers returns the registered helper names in sorted order.
func (g *Globals) Helpers() []string {
	g.mu.RLock()
	names := make([]string, 0, len(g.helpers))
	for name := range g.helpers {
		names = append(names, name)
	}
	g.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Call invokes the helper registered under name.
func (g *Globals) Call(name string, args ...any) (any, error) {
	g.mu.RLock()
	fn, ok := g.helpers[name]
	g.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("helper %q: %w", name, ErrNotFound)
	}
	return fn(args...), nil
}
