package elcmp

// Resolver supplies components for names that are not registered yet.
//
// Resolve returns nil when it has nothing for name. The engine registers any
// component a Resolver returns under the requested name, so each name is
// resolved at most once per registry unless it is removed again.
type Resolver interface {
	Resolve(name string) Component
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(name string) Component

// Resolve calls f(name).
func (f ResolverFunc) Resolve(name string) Component {
	return f(name)
}

// Resolvers tries each resolver in order and returns the first valid
// component.
type Resolvers []Resolver

// Resolve implements Resolver.
func (rs Resolvers) Resolve(name string) Component {
	for _, r := range rs {
		if r == nil {
			continue
		}
		if c := r.Resolve(name); validComponent(c) {
			return c
		}
	}
	return nil
}

// Compiler turns the source of a component module into a Component.
//
// name is the component name derived from the file name. Implementations
// return an error when the source does not expose a render entry point.
type Compiler interface {
	Compile(name string, src []byte) (Component, error)
}

// CompilerFunc adapts a function to Compiler.
type CompilerFunc func(name string, src []byte) (Component, error)

// Compile calls f(name, src).
func (f CompilerFunc) Compile(name string, src []byte) (Component, error) {
	return f(name, src)
}
