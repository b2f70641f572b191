package elcmp

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"go.uber.org/zap"
)

// DefaultExtension is the file extension of component modules.
const DefaultExtension = ".go"

// Loader loads component modules from a filesystem and registers them.
//
// The filesystem is rooted at the components directory, so every path given
// to the Loader is relative to it. Loader implements Resolver: an unknown
// name is looked up as name + extension.
//
// Loading never fails loudly. A missing file, unreadable source or compile
// error is logged and the call returns nil.
type Loader struct {
	fsys     fs.FS
	compiler Compiler
	registry *Registry
	ext      string
	logger   *zap.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithExtension sets the component module extension. A missing leading dot
// is added.
func WithExtension(ext string) LoaderOption {
	return func(l *Loader) {
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		l.ext = ext
	}
}

// WithLoaderLogger sets the logger for load diagnostics.
func WithLoaderLogger(logger *zap.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a loader that compiles modules found in fsys with
// compiler and registers them in reg.
func NewLoader(fsys fs.FS, compiler Compiler, reg *Registry, opts ...LoaderOption) *Loader {
	l := &Loader{
		fsys:     fsys,
		compiler: compiler,
		registry: reg,
		ext:      DefaultExtension,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.registry == nil {
		l.registry = NewRegistry(l.logger)
	}
	if l.logger == nil {
		l.logger = l.registry.log()
	}
	return l
}

// Registry returns the registry loaded components are added to.
func (l *Loader) Registry() *Registry {
	return l.registry
}

// Extension returns the module extension, including the leading dot.
func (l *Loader) Extension() string {
	return l.ext
}

// NameOf returns the component name for a module path: its base name
// without extension.
func NameOf(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}

// LoadFile loads, compiles and registers the module at rel. It returns the
// registered component, or nil if any step failed.
func (l *Loader) LoadFile(rel string) Component {
	p := path.Clean(strings.TrimPrefix(rel, "/"))
	if !fs.ValidPath(p) {
		l.logger.Error(fmt.Sprintf("invalid component path %q", rel),
			zap.String("path", rel), zap.Error(ErrNotFound))
		return nil
	}

	src, err := fs.ReadFile(l.fsys, p)
	if errors.Is(err, fs.ErrNotExist) {
		l.logger.Error(fmt.Sprintf("component file %q does not exist", p),
			zap.String("path", p), zap.Error(ErrNotFound))
		return nil
	}
	if err != nil {
		l.loadFailed(p, err)
		return nil
	}

	name := NameOf(p)
	c, err := l.compile(name, src)
	if err != nil {
		l.loadFailed(p, err)
		return nil
	}
	if !validComponent(c) {
		l.loadFailed(p, ErrInvalidComponent)
		return nil
	}

	l.registry.Register(name, c)
	l.logger.Debug("component loaded", zap.String("component", name), zap.String("path", p))
	return c
}

func (l *Loader) compile(name string, src []byte) (c Component, err error) {
	if l.compiler == nil {
		return nil, errors.New("no compiler configured")
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("compiler panicked: %v", r)
		}
	}()
	return l.compiler.Compile(name, src)
}

func (l *Loader) loadFailed(p string, err error) {
	l.logger.Error(fmt.Sprintf("error loading component from %q: %v", p, err),
		zap.String("path", p), zap.Error(fmt.Errorf("%w: %w", ErrLoadFailed, err)))
}

// Autoload loads every module directly inside folder. Subdirectories, Go
// test files and files with other extensions are skipped. It returns the number of
// components registered.
func (l *Loader) Autoload(folder string) int {
	dir := path.Clean(strings.TrimPrefix(folder, "/"))
	if dir == "" {
		dir = "."
	}

	entries, err := fs.ReadDir(l.fsys, dir)
	if err != nil {
		l.logger.Error(fmt.Sprintf("component folder %q does not exist", folder),
			zap.String("folder", folder), zap.Error(fmt.Errorf("%w: %w", ErrNotFound, err)))
		return 0
	}

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), l.ext) || strings.HasSuffix(entry.Name(), "_test.go") {
			continue
		}
		if l.LoadFile(path.Join(dir, entry.Name())) != nil {
			loaded++
		}
	}
	return loaded
}

// Resolve implements Resolver by loading name + extension.
func (l *Loader) Resolve(name string) Component {
	if name == "" {
		return nil
	}
	return l.LoadFile(name + l.ext)
}
