package elcmp

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pthm/elcmp/el"
)

func newTestEngine(opts ...Option) (*Engine, *observer.ObservedLogs) {
	logger, logs := observedLogger()
	e := New(append([]Option{WithLogger(logger)}, opts...)...)
	return e, logs
}

func errorsOf(logs *observer.ObservedLogs) []observer.LoggedEntry {
	return logs.FilterLevelExact(zapcore.ErrorLevel).All()
}

func TestEngine_RenderRegistered(t *testing.T) {
	e, _ := newTestEngine()
	e.Register("hello", Markup(func(ctx Context, _ ChildRenderer) string {
		return el.P("", "Hello "+ctx.String("name"))
	}))

	res := e.Render(context.Background(), "hello", Context{"name": "Ada"})
	if res.Kind() != KindHTML {
		t.Fatalf("Kind() = %v, want html", res.Kind())
	}
	if got, want := res.String(), "<p >Hello Ada</p>"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestEngine_RenderMissing(t *testing.T) {
	e, logs := newTestEngine()

	res := e.RenderComponent("ghost", Context{})
	if !res.IsEmpty() {
		t.Errorf("Render(missing) kind = %v, want empty", res.Kind())
	}
	entries := errorsOf(logs)
	if len(entries) != 1 || !strings.Contains(entries[0].Message, `component "ghost" not found`) {
		t.Errorf("diagnostics = %v", entries)
	}
}

func TestEngine_Children(t *testing.T) {
	e, _ := newTestEngine()
	e.Register("item", Markup(func(ctx Context, _ ChildRenderer) string {
		return el.Li("", ctx.String("label"))
	}))
	e.Register("list", Markup(func(_ Context, child ChildRenderer) string {
		return el.Ul("", []any{child("item"), child(""), child("unknown"), child("item")})
	}))

	got := e.RenderComponent("list", Context{"label": "x"}).String()
	if want := "<ul ><li >x</li><li >x</li></ul>"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestEngine_ChildResults(t *testing.T) {
	e, logs := newTestEngine()
	var empty, unknown Result
	e.Register("parent", ComponentFunc(func(_ Context, child ChildRenderer) Result {
		empty = child("")
		unknown = child("unknown")
		return HTML("ok")
	}))

	e.RenderComponent("parent", Context{})
	if !empty.IsEmpty() || !unknown.IsEmpty() {
		t.Errorf("child results = %v, %v; want empty", empty.Kind(), unknown.Kind())
	}
	if len(errorsOf(logs)) != 0 {
		t.Errorf("unregistered children should not log: %v", errorsOf(logs))
	}
}

func TestEngine_ChildDoesNotResolve(t *testing.T) {
	resolved := 0
	resolver := ResolverFunc(func(name string) Component {
		resolved++
		return htmlComponent("lazy:" + name)
	})
	e, _ := newTestEngine(WithResolver(resolver))
	e.Register("parent", Markup(func(_ Context, child ChildRenderer) string {
		return "[" + child("lazy").String() + "]"
	}))

	if got := e.RenderComponent("parent", Context{}).String(); got != "[]" {
		t.Errorf("Render() = %q, want %q", got, "[]")
	}
	if resolved != 0 {
		t.Errorf("resolver called %d times for a child, want 0", resolved)
	}

	// Top-level renders do resolve, and the result is registered.
	if got := e.RenderComponent("lazy", Context{}).String(); got != "lazy:lazy" {
		t.Errorf("Render(lazy) = %q", got)
	}
	if !e.Registry().Has("lazy") {
		t.Error("resolved component was not registered")
	}
	e.RenderComponent("lazy", Context{})
	if resolved != 1 {
		t.Errorf("resolver called %d times, want 1", resolved)
	}
	if got := e.RenderComponent("parent", Context{}).String(); got != "[lazy:lazy]" {
		t.Errorf("Render(parent) after resolve = %q", got)
	}
}

func TestEngine_ResolverReturningNil(t *testing.T) {
	e, logs := newTestEngine(WithResolver(Manifest{}))
	if res := e.RenderComponent("none", Context{}); !res.IsEmpty() {
		t.Errorf("Render() kind = %v, want empty", res.Kind())
	}
	if len(errorsOf(logs)) != 1 {
		t.Errorf("got %d diagnostics, want 1", len(errorsOf(logs)))
	}
}

func TestEngine_NilContextReturnsComponent(t *testing.T) {
	e, _ := newTestEngine()
	stub := NewStub("never")
	e.Register("stub", stub)

	res := e.RenderComponent("stub", nil)
	if res.Kind() != KindComponent || res.Component() != stub {
		t.Errorf("Render(nil ctx) = %v, want the component", res.Kind())
	}
	if stub.Calls() != 0 {
		t.Errorf("component rendered %d times, want 0", stub.Calls())
	}
}

func TestEngine_DepthCeiling(t *testing.T) {
	e, logs := newTestEngine()
	calls := 0
	e.Register("loop", Markup(func(_ Context, child ChildRenderer) string {
		calls++
		return "x" + child("loop").String()
	}))

	got := e.RenderComponent("loop", Context{}).String()
	if calls != MaxDepth+1 {
		t.Errorf("component invoked %d times, want %d", calls, MaxDepth+1)
	}
	if got != strings.Repeat("x", MaxDepth+1) {
		t.Errorf("Render() = %q", got)
	}

	entries := errorsOf(logs)
	if len(entries) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(entries))
	}
	if entries[0].ContextMap()["error"] != ErrDepthExceeded.Error() {
		t.Errorf("error field = %v", entries[0].ContextMap()["error"])
	}
	if entries[0].ContextMap()["depth"] != int64(MaxDepth+1) {
		t.Errorf("depth field = %v", entries[0].ContextMap()["depth"])
	}
}

func TestEngine_PanicIsContained(t *testing.T) {
	e, logs := newTestEngine()
	e.Register("bad", ComponentFunc(func(Context, ChildRenderer) Result {
		panic("kaboom")
	}))
	e.Register("page", Markup(func(_ Context, child ChildRenderer) string {
		return el.Div("", []any{"before", child("bad"), "after"})
	}))

	if got := e.RenderComponent("bad", Context{}); !got.IsHTML() || got.String() != "" {
		t.Errorf("Render(bad) = %v %q, want empty html", got.Kind(), got.String())
	}
	if got, want := e.RenderComponent("page", Context{}).String(), "<div >beforeafter</div>"; got != want {
		t.Errorf("Render(page) = %q, want %q", got, want)
	}

	entries := errorsOf(logs)
	if len(entries) != 2 {
		t.Fatalf("got %d diagnostics, want 2", len(entries))
	}
	for _, entry := range entries {
		if !strings.Contains(entry.Message, "kaboom") {
			t.Errorf("message %q does not carry the panic value", entry.Message)
		}
	}
}

func TestEngine_ContextSharedByReference(t *testing.T) {
	e, _ := newTestEngine()
	var seen []string
	e.Register("leaf", ComponentFunc(func(ctx Context, _ ChildRenderer) Result {
		seen = append(seen, fmt.Sprintf("%p", ctx))
		return HTML(ctx.String("marker"))
	}))
	e.Register("root", ComponentFunc(func(ctx Context, child ChildRenderer) Result {
		seen = append(seen, fmt.Sprintf("%p", ctx))
		ctx["marker"] = "set-by-root"
		return HTML(child("leaf").String())
	}))

	data := Context{}
	got := e.RenderComponent("root", data).String()
	if got != "set-by-root" {
		t.Errorf("Render() = %q", got)
	}
	want := fmt.Sprintf("%p", data)
	for i, p := range seen {
		if p != want {
			t.Errorf("component %d saw context %s, want %s", i, p, want)
		}
	}
}

func TestEngine_ValueResultPassesThrough(t *testing.T) {
	e, _ := newTestEngine()
	e.Register("data", ComponentFunc(func(Context, ChildRenderer) Result {
		return Value([]int{1, 2})
	}))
	res := e.RenderComponent("data", Context{})
	if res.Kind() != KindValue || res.String() != "" {
		t.Errorf("Render() = %v %q", res.Kind(), res.String())
	}
}

func TestEngine_ConcurrentRenders(t *testing.T) {
	e, logs := newTestEngine()
	e.Register("deep", Markup(func(ctx Context, child ChildRenderer) string {
		n := ctx.Int("n")
		if n == 0 {
			return "."
		}
		ctx["n"] = n - 1
		return child("deep").String()
	}))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := e.RenderComponent("deep", Context{"n": MaxDepth}).String(); got != "." {
				t.Errorf("Render() = %q, want %q", got, ".")
			}
		}()
	}
	wg.Wait()

	if n := len(errorsOf(logs)); n != 0 {
		t.Errorf("concurrent renders tripped %d diagnostics", n)
	}
}

func TestEngine_Metrics(t *testing.T) {
	promReg := prometheus.NewRegistry()
	m := NewMetrics(WithPrometheusRegistry(promReg), WithNamespace("test"))
	e, _ := newTestEngine(WithMetrics(m))
	e.Register("ok", htmlComponent("ok"))
	e.Register("bad", ComponentFunc(func(Context, ChildRenderer) Result { panic("x") }))

	e.RenderComponent("ok", Context{})
	e.RenderComponent("ok", Context{})
	e.RenderComponent("ok", nil)
	e.RenderComponent("missing", Context{})
	e.RenderComponent("bad", Context{})

	tests := map[string]float64{
		OutcomeRendered:   2,
		OutcomeIntrospect: 1,
		OutcomeNotFound:   1,
		OutcomePanic:      1,
		OutcomeDepth:      0,
	}
	for outcome, want := range tests {
		if got := testutil.ToFloat64(m.renders.WithLabelValues(outcome)); got != want {
			t.Errorf("renders_total{outcome=%q} = %v, want %v", outcome, got, want)
		}
	}
	if n := testutil.CollectAndCount(m.duration); n != 4 {
		t.Errorf("duration series = %d, want 4", n)
	}
}

func TestEngine_Tracing(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	e, _ := newTestEngine(WithTracerProvider(tp))
	e.Register("leaf", htmlComponent("l"))
	e.Register("root", Markup(func(_ Context, child ChildRenderer) string {
		return child("leaf").String()
	}))

	e.Render(context.Background(), "root", Context{})

	spans := rec.Ended()
	if len(spans) != 2 {
		t.Fatalf("got %d spans, want 2", len(spans))
	}
	leaf, root := spans[0], spans[1]
	if leaf.Name() != "elcmp.render" || root.Name() != "elcmp.render" {
		t.Errorf("span names = %q, %q", leaf.Name(), root.Name())
	}
	if leaf.Parent().SpanID() != root.SpanContext().SpanID() {
		t.Error("child span is not parented to the root span")
	}

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range leaf.Attributes() {
		attrs[kv.Key] = kv.Value
	}
	if attrs["component"].AsString() != "leaf" || attrs["depth"].AsInt64() != 1 {
		t.Errorf("leaf attributes = %v", leaf.Attributes())
	}
}

func TestEngine_Defaults(t *testing.T) {
	e := New()
	if e.Registry() == nil || e.Globals() == nil {
		t.Fatal("New() should create a registry and globals")
	}
	reg := NewRegistry(zap.NewNop())
	g := NewGlobals()
	e = New(WithRegistry(reg), WithGlobals(g))
	if e.Registry() != reg || e.Globals() != g {
		t.Error("options were not applied")
	}
	if got := e.RenderString(context.Background(), "none", Context{}); got != "" {
		t.Errorf("RenderString(missing) = %q", got)
	}
}

func TestEngine_NilStdContext(t *testing.T) {
	e, _ := newTestEngine()
	e.Register("x", htmlComponent("x"))
	var ctx context.Context
	if got := e.Render(ctx, "x", Context{}).String(); got != "x" {
		t.Errorf("Render(nil ctx) = %q", got)
	}
}
