// Package script compiles component modules written in Go source with the
// yaegi interpreter, so components can be added or edited without
// rebuilding the server.
//
// A module is a single Go file whose package exports a Render function in
// one of these forms:
//
//	func Render(ctx map[string]any, child func(name string) string) string
//	func Render(ctx map[string]any) string
//
// Modules may import the el package and the standard library packages in
// the allow list. The package name is free; the component name comes from
// the file name.
//
//	package card
//
//	import "github.com/pthm/elcmp/el"
//
//	func Render(ctx map[string]any, child func(string) string) string {
//		return el.Div(`class="card"`, []any{el.H2("", ctx["title"]), child("badge")})
//	}
package script

import (
	"errors"
	"fmt"
	"go/parser"
	"go/token"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"github.com/pthm/elcmp"
)

//go:generate go run github.com/traefik/yaegi/cmd/yaegi extract github.com/pthm/elcmp/el

// Symbols holds the packages exported to component modules beyond the
// standard library.
var Symbols = interp.Exports{}

// ElImportPath is the import path modules use for the markup builder.
const ElImportPath = "github.com/pthm/elcmp/el"

// ErrNoRender is returned for modules without a usable Render function.
var ErrNoRender = errors.New("script: module has no Render function")

// DefaultAllowedImports are the packages modules may import.
var DefaultAllowedImports = []string{
	ElImportPath,
	"bytes",
	"encoding/json",
	"fmt",
	"html",
	"math",
	"net/url",
	"regexp",
	"sort",
	"strconv",
	"strings",
	"time",
	"unicode",
}

// Compiler implements elcmp.Compiler with the yaegi interpreter. Each module
// runs in its own interpreter.
type Compiler struct {
	allowed map[string]bool
	exports []interp.Exports
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithAllowedImports adds packages modules may import.
func WithAllowedImports(paths ...string) Option {
	return func(c *Compiler) {
		for _, p := range paths {
			c.allowed[p] = true
		}
	}
}

// WithExports makes extra packages available to modules. Their import paths
// are added to the allow list.
func WithExports(exports interp.Exports) Option {
	return func(c *Compiler) {
		c.exports = append(c.exports, exports)
		for key := range exports {
			// Export keys are "<import path>/<package name>".
			if i := strings.LastIndex(key, "/"); i > 0 {
				c.allowed[key[:i]] = true
			}
		}
	}
}

// New creates a compiler.
func New(opts ...Option) *Compiler {
	c := &Compiler{allowed: make(map[string]bool)}
	for _, p := range DefaultAllowedImports {
		c.allowed[p] = true
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile interprets src and returns its Render function as a component.
func (c *Compiler) Compile(name string, src []byte) (elcmp.Component, error) {
	pkg, err := c.inspect(name, src)
	if err != nil {
		return nil, err
	}

	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("load stdlib: %w", err)
	}
	if err := i.Use(Symbols); err != nil {
		return nil, fmt.Errorf("load el symbols: %w", err)
	}
	for _, exports := range c.exports {
		if err := i.Use(exports); err != nil {
			return nil, fmt.Errorf("load exports: %w", err)
		}
	}

	if _, err := i.Eval(string(src)); err != nil {
		return nil, fmt.Errorf("evaluate %s: %w", name, err)
	}
	v, err := i.Eval(pkg + ".Render")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoRender, err)
	}
	return component(v)
}

// inspect parses the module header, returning its package name after
// checking the imports against the allow list.
func (c *Compiler) inspect(name string, src []byte) (string, error) {
	f, err := parser.ParseFile(token.NewFileSet(), name+".go", src, parser.ImportsOnly)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", name, err)
	}

	var forbidden []string
	for _, imp := range f.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			return "", fmt.Errorf("parse %s: bad import %s", name, imp.Path.Value)
		}
		if !c.allowed[path] {
			forbidden = append(forbidden, path)
		}
	}
	if len(forbidden) > 0 {
		sort.Strings(forbidden)
		return "", fmt.Errorf("forbidden imports in %s: %s", name, strings.Join(forbidden, ", "))
	}
	return f.Name.Name, nil
}

// component adapts an interpreted Render function.
func component(v reflect.Value) (elcmp.Component, error) {
	if !v.IsValid() || v.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: Render is not a function", ErrNoRender)
	}

	switch render := v.Interface().(type) {
	case func(map[string]any, func(string) string) string:
		return elcmp.Markup(func(ctx elcmp.Context, child elcmp.ChildRenderer) string {
			return render(ctx, func(name string) string { return child(name).String() })
		}), nil
	case func(map[string]any) string:
		return elcmp.Markup(func(ctx elcmp.Context, _ elcmp.ChildRenderer) string {
			return render(ctx)
		}), nil
	}
	return nil, fmt.Errorf("%w: unsupported signature %s", ErrNoRender, v.Type())
}
