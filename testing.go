package elcmp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// TestResult holds the result of rendering a component for testing.
//
// Provides convenience methods for asserting on HTML content, headers and
// status codes.
type TestResult struct {
	HTML       string
	Result     Result
	StatusCode int
	Headers    http.Header
}

// testRootName is the name TestRender registers the component under.
const testRootName = "__test_root__"

// TestRender renders a component in isolation with a silent logger.
//
// Use this for pure unit tests of rendering logic. Children the component
// asks for must be supplied as entries; anything else renders empty.
//
//	result := elcmp.TestRender(card, elcmp.Context{"title": "Hi"},
//	    elcmp.Entry{Name: "icon", Component: icon})
//	if !result.HTMLContains("<h2 >Hi</h2>") {
//	    t.Fatal("missing title")
//	}
func TestRender(c Component, data Context, children ...Entry) *TestResult {
	e := New(WithLogger(zap.NewNop()))
	for _, child := range children {
		e.Register(child.Name, child.Component)
	}
	e.Register(testRootName, c)
	return TestEngineRender(context.Background(), e, testRootName, data)
}

// TestEngineRender renders name through an existing engine.
func TestEngineRender(ctx context.Context, e *Engine, name string, data Context) *TestResult {
	res := e.Render(ctx, name, data)
	status := http.StatusOK
	if res.IsEmpty() {
		status = http.StatusNotFound
	}
	return &TestResult{
		HTML:       res.String(),
		Result:     res,
		StatusCode: status,
		Headers:    make(http.Header),
	}
}

// HTMLContains checks if the rendered HTML contains the substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll checks if the rendered HTML contains all substrings.
func (r *TestResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}

// HTMLContainsAny checks if the rendered HTML contains any of the substrings.
func (r *TestResult) HTMLContainsAny(substrs ...string) bool {
	for _, s := range substrs {
		if strings.Contains(r.HTML, s) {
			return true
		}
	}
	return false
}

// IsOK returns true if the status code is 200.
func (r *TestResult) IsOK() bool {
	return r.StatusCode == http.StatusOK
}

// HasStatus checks if the result has the expected status code.
func (r *TestResult) HasStatus(code int) bool {
	return r.StatusCode == code
}

// HasHeader checks if a header is set to the expected value.
func (r *TestResult) HasHeader(key, value string) bool {
	return r.Headers.Get(key) == value
}

// GetHeader returns the value of a response header.
func (r *TestResult) GetHeader(key string) string {
	return r.Headers.Get(key)
}

// TestRequestBuilder provides a fluent interface for building test requests.
//
//	result := elcmp.NewTestRequest("POST", "/todos").
//	    WithFormData("title", "write docs").
//	    WithHeader("HX-Request", "true").
//	    Execute(elcmp.Handler(engine, "todo-list"))
type TestRequestBuilder struct {
	method   string
	url      string
	formData map[string]string
	headers  map[string]string
	ctx      context.Context
}

// NewTestRequest creates a new test request builder.
func NewTestRequest(method, url string) *TestRequestBuilder {
	return &TestRequestBuilder{
		method:   method,
		url:      url,
		formData: make(map[string]string),
		headers:  make(map[string]string),
		ctx:      context.Background(),
	}
}

// WithFormData adds form data to the request.
func (b *TestRequestBuilder) WithFormData(key, value string) *TestRequestBuilder {
	b.formData[key] = value
	return b
}

// WithFormValues adds multiple form values to the request.
func (b *TestRequestBuilder) WithFormValues(data map[string]string) *TestRequestBuilder {
	for k, v := range data {
		b.formData[k] = v
	}
	return b
}

// WithHeader adds a header to the request.
func (b *TestRequestBuilder) WithHeader(key, value string) *TestRequestBuilder {
	b.headers[key] = value
	return b
}

// WithContext sets the context for the request.
func (b *TestRequestBuilder) WithContext(ctx context.Context) *TestRequestBuilder {
	b.ctx = ctx
	return b
}

// Execute serves the request with h and records the response.
func (b *TestRequestBuilder) Execute(h http.Handler) *TestResult {
	form := url.Values{}
	for k, v := range b.formData {
		form.Set(k, v)
	}

	req := httptest.NewRequest(b.method, b.url, strings.NewReader(form.Encode()))
	req = req.WithContext(b.ctx)
	if len(b.formData) > 0 {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for k, v := range b.headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return &TestResult{
		HTML:       rec.Body.String(),
		Result:     HTML(rec.Body.String()),
		StatusCode: rec.Code,
		Headers:    rec.Header(),
	}
}

// StubComponent renders fixed markup and records the contexts it was
// rendered with.
//
// Useful for standing in for expensive children:
//
//	nav := elcmp.NewStub("<nav >stub</nav>")
//	result := elcmp.TestRender(layout, data, elcmp.Entry{Name: "nav", Component: nav})
//	if nav.Calls() != 1 { ... }
type StubComponent struct {
	HTML string

	mu       sync.Mutex
	contexts []Context
}

// NewStub creates a StubComponent rendering html.
func NewStub(html string) *StubComponent {
	return &StubComponent{HTML: html}
}

// Render records ctx and returns the stub markup.
func (s *StubComponent) Render(ctx Context, _ ChildRenderer) Result {
	s.mu.Lock()
	s.contexts = append(s.contexts, ctx)
	s.mu.Unlock()
	return HTML(s.HTML)
}

// Calls returns how many times the stub was rendered.
func (s *StubComponent) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.contexts)
}

// LastContext returns the context of the most recent render, or nil.
func (s *StubComponent) LastContext() Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.contexts) == 0 {
		return nil
	}
	return s.contexts[len(s.contexts)-1]
}
