package elcmp

import (
	"fmt"
	"io"
	"net/http"
)

// RequestKey is the Context key ContextFromRequest stores request details
// under.
const RequestKey = "request"

// ContextParam is the query parameter carrying a sealed context token.
const ContextParam = "_ctx"

// IsHTMX returns true if the request originated from HTMX.
//
// HTMX sends HX-Request: true on all requests. Handler uses this to return
// only the component for HTMX requests and the full page otherwise.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// IsBoosted returns true if the request is a boosted navigation (hx-boost).
//
// Boosted requests replace the whole body, so they get the full page.
func IsBoosted(r *http.Request) bool {
	return r.Header.Get("HX-Boosted") == "true"
}

// CurrentURL returns the current URL from the HX-Current-URL header.
//
// Returns empty string if header not present (non-HTMX request).
func CurrentURL(r *http.Request) string {
	return r.Header.Get("HX-Current-URL")
}

// TargetID returns the id attribute of the target element.
//
// Returns empty string if not present.
func TargetID(r *http.Request) string {
	return r.Header.Get("HX-Target")
}

// ContextFromRequest builds a render Context from the query string and form
// body. Single values are stored as strings and repeated keys as []string.
// Request details are stored under RequestKey:
//
//	{"method": "GET", "path": "/todos", "htmx": false, "target": "", "current_url": ""}
func ContextFromRequest(r *http.Request) (Context, error) {
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("parse form: %w", err)
	}

	data := make(Context, len(r.Form)+1)
	for key, values := range r.Form {
		switch len(values) {
		case 0:
		case 1:
			data[key] = values[0]
		default:
			data[key] = values
		}
	}
	delete(data, ContextParam)

	data[RequestKey] = map[string]any{
		"method":      r.Method,
		"path":        r.URL.Path,
		"htmx":        IsHTMX(r),
		"target":      TargetID(r),
		"current_url": CurrentURL(r),
	}
	return data, nil
}

// HandlerOption configures Handler.
type HandlerOption func(*handlerConfig)

type handlerConfig struct {
	contextFunc func(*http.Request) (Context, error)
	page        *Page
	sealer      *Sealer
	sensitive   bool
}

// WithContextFunc replaces ContextFromRequest as the source of render data.
func WithContextFunc(fn func(*http.Request) (Context, error)) HandlerOption {
	return func(c *handlerConfig) {
		c.contextFunc = fn
	}
}

// WithPage renders the component as the main part of page, except for HTMX
// requests that are not boosted, which receive the component alone.
func WithPage(page Page) HandlerOption {
	return func(c *handlerConfig) {
		c.page = &page
	}
}

// WithSealedContext merges the context sealed in the ContextParam query
// parameter into the render data. Requests with a token that does not open
// are rejected with 400.
func WithSealedContext(s *Sealer, sensitive bool) HandlerOption {
	return func(c *handlerConfig) {
		c.sealer = s
		c.sensitive = sensitive
	}
}

// Handler returns an http.Handler that renders the component called name.
// Unknown components respond 404.
//
//	mux.Handle("/todos", elcmp.Handler(engine, "todo-list", elcmp.WithPage(layout)))
func Handler(e *Engine, name string, opts ...HandlerOption) http.Handler {
	cfg := handlerConfig{contextFunc: ContextFromRequest}
	for _, opt := range opts {
		opt(&cfg)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := cfg.contextFunc(r)
		if err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		if data == nil {
			data = Context{}
		}

		if cfg.sealer != nil {
			if token := r.URL.Query().Get(ContextParam); token != "" {
				sealed, err := OpenContext(cfg.sealer, token, cfg.sensitive)
				if err != nil {
					http.Error(w, "Bad request", http.StatusBadRequest)
					return
				}
				for k, v := range sealed {
					data[k] = v
				}
			}
		}

		res := e.Render(r.Context(), name, data)
		if res.IsEmpty() {
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		if cfg.page != nil && (!IsHTMX(r) || IsBoosted(r)) {
			page := *cfg.page
			page.Main = ""
			page.Content = []any{res, page.Content}
			_, _ = io.WriteString(w, e.RenderPage(r.Context(), page, data))
			return
		}

		_, _ = io.WriteString(w, res.String())
	})
}
