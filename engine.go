package elcmp

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// MaxDepth is the deepest nested resolution the engine performs. The
// top-level render is depth 0.
const MaxDepth = 50

const tracerName = "github.com/pthm/elcmp"

// Engine resolves and renders components.
//
// An Engine is safe for concurrent use. Each top-level Render starts its own
// depth count, so concurrent renders do not affect each other.
type Engine struct {
	registry *Registry
	resolver Resolver
	logger   *zap.Logger
	metrics  *Metrics
	tracer   trace.Tracer
	globals  *Globals
}

// Option configures an Engine.
type Option func(*Engine)

// WithRegistry sets the registry components are looked up in.
func WithRegistry(reg *Registry) Option {
	return func(e *Engine) {
		e.registry = reg
	}
}

// WithResolver sets the resolver consulted for unregistered names.
func WithResolver(r Resolver) Option {
	return func(e *Engine) {
		e.resolver = r
	}
}

// WithLogger sets the logger for render diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMetrics enables Prometheus render metrics.
func WithMetrics(m *Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider. The global
// provider is used by default.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(e *Engine) {
		if tp != nil {
			e.tracer = tp.Tracer(tracerName)
		}
	}
}

// WithGlobals sets the shared globals.
func WithGlobals(g *Globals) Option {
	return func(e *Engine) {
		e.globals = g
	}
}

// New creates an engine.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = zap.L()
	}
	if e.registry == nil {
		e.registry = NewRegistry(e.logger)
	}
	if e.tracer == nil {
		e.tracer = otel.Tracer(tracerName)
	}
	if e.globals == nil {
		e.globals = NewGlobals()
	}
	return e
}

// Registry returns the engine's registry.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Globals returns the engine's shared globals.
func (e *Engine) Globals() *Globals {
	return e.globals
}

// Register adds a component to the engine's registry.
func (e *Engine) Register(name string, c Component) {
	e.registry.Register(name, c)
}

// Render resolves name and renders it with data.
//
// If name is not registered the engine's Resolver is asked for it. A nil
// data returns the resolved component without rendering it. Failures are
// logged and produce an empty Result (missing component) or empty markup
// (depth exceeded, panic).
func (e *Engine) Render(ctx context.Context, name string, data Context) Result {
	if ctx == nil {
		ctx = context.Background()
	}
	return e.render(ctx, name, data, 0)
}

// RenderComponent is Render without a context.Context.
func (e *Engine) RenderComponent(name string, data Context) Result {
	return e.render(context.Background(), name, data, 0)
}

// RenderString renders name and returns its markup.
func (e *Engine) RenderString(ctx context.Context, name string, data Context) string {
	return e.Render(ctx, name, data).String()
}

func (e *Engine) render(ctx context.Context, name string, data Context, depth int) Result {
	start := time.Now()
	ctx, span := e.tracer.Start(ctx, "elcmp.render", trace.WithAttributes(
		attribute.String("component", name),
		attribute.Int("depth", depth),
	))
	defer span.End()

	c := e.resolve(name)
	if c == nil {
		e.logger.Error(fmt.Sprintf("component %q not found", name),
			zap.String("component", name), zap.Error(ErrNotFound))
		span.SetStatus(codes.Error, ErrNotFound.Error())
		e.metrics.observe(OutcomeNotFound, start)
		return Empty()
	}

	if depth > MaxDepth {
		e.logger.Error(fmt.Sprintf("maximum render depth of %d exceeded rendering %q", MaxDepth, name),
			zap.String("component", name), zap.Int("depth", depth), zap.Error(ErrDepthExceeded))
		span.SetStatus(codes.Error, ErrDepthExceeded.Error())
		e.metrics.observe(OutcomeDepth, start)
		return HTML("")
	}

	if data == nil {
		e.metrics.observe(OutcomeIntrospect, start)
		return ComponentResult(c)
	}

	child := func(childName string) Result {
		if childName == "" || !e.registry.Has(childName) {
			return Empty()
		}
		return e.render(ctx, childName, data, depth+1)
	}

	res, err := invoke(c, data, child)
	if err != nil {
		e.logger.Error(fmt.Sprintf("error rendering component %q: %v", name, err),
			zap.String("component", name), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		e.metrics.observe(OutcomePanic, start)
		return HTML("")
	}

	span.SetAttributes(attribute.String("result.kind", res.Kind().String()))
	e.metrics.observe(OutcomeRendered, start)
	return res
}

// resolve finds name in the registry or asks the resolver, registering what
// it returns.
func (e *Engine) resolve(name string) Component {
	if c, ok := e.registry.Lookup(name); ok {
		return c
	}
	if e.resolver == nil {
		return nil
	}
	c := e.resolver.Resolve(name)
	if !validComponent(c) {
		return nil
	}
	e.registry.Register(name, c)
	return c
}

func invoke(c Component, data Context, child ChildRenderer) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrRenderPanic, r)
		}
	}()
	return c.Render(data, child), nil
}
