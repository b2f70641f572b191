package elcmp

import (
	"reflect"

	"github.com/spf13/cast"
)

// Component is a named, reusable unit of markup.
//
// Render receives the request Context and a ChildRenderer for composing other
// registered components. Components should be stateless: the same instance
// serves every render, possibly concurrently.
type Component interface {
	Render(ctx Context, child ChildRenderer) Result
}

// ComponentFunc adapts a function to Component.
type ComponentFunc func(ctx Context, child ChildRenderer) Result

// Render calls f(ctx, child).
func (f ComponentFunc) Render(ctx Context, child ChildRenderer) Result {
	return f(ctx, child)
}

// Markup adapts a function returning a markup string to Component.
func Markup(fn func(ctx Context, child ChildRenderer) string) Component {
	if fn == nil {
		return nil
	}
	return ComponentFunc(func(ctx Context, child ChildRenderer) Result {
		return HTML(fn(ctx, child))
	})
}

// ChildRenderer renders the registered component called name with the
// current Context, one level deeper than the caller. Empty or unregistered
// names yield an empty Result.
type ChildRenderer func(name string) Result

// Context carries request data through one render. It is shared by reference
// by every component in the call graph.
type Context map[string]any

// Get returns the value stored under key.
func (c Context) Get(key string) any {
	return c[key]
}

// String returns the value under key coerced to a string.
func (c Context) String(key string) string {
	return cast.ToString(c[key])
}

// Int returns the value under key coerced to an int.
func (c Context) Int(key string) int {
	return cast.ToInt(c[key])
}

// Bool returns the value under key coerced to a bool.
func (c Context) Bool(key string) bool {
	return cast.ToBool(c[key])
}

// Map returns the value under key as a string-keyed map, or nil.
func (c Context) Map(key string) map[string]any {
	m, err := cast.ToStringMapE(c[key])
	if err != nil {
		return nil
	}
	return m
}

// validComponent reports whether c can be rendered. Typed nil values such as
// a nil *T or a nil ComponentFunc are rejected.
func validComponent(c Component) bool {
	if c == nil {
		return false
	}
	v := reflect.ValueOf(c)
	switch v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan:
		return !v.IsNil()
	}
	return true
}
