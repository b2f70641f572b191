package elcmp

import "sort"

// Factory creates a component.
type Factory func() Component

// Manifest is a static table of component factories, built at startup as an
// alternative to loading modules from disk.
//
//	manifest := elcmp.Manifest{
//	    "header": func() elcmp.Component { return header{} },
//	    "footer": newFooter,
//	}
//	engine := elcmp.New(elcmp.WithResolver(manifest))
type Manifest map[string]Factory

// Resolve implements Resolver.
func (m Manifest) Resolve(name string) Component {
	f, ok := m[name]
	if !ok || f == nil {
		return nil
	}
	return f()
}

// Load registers every entry in name order. Entries whose factory is nil or
// returns nil are rejected by the registry.
func (m Manifest) Load(reg *Registry) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		var c Component
		if f := m[name]; f != nil {
			c = f()
		}
		reg.Register(name, c)
	}
}
