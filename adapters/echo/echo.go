// Package elcmpecho provides Echo framework integration for elcmp components.
//
// Mount an engine onto an Echo instance or group:
//
//	e := echo.New()
//	elcmpecho.Mount(e, engine)
//
// Or mount on a group with middleware:
//
//	g := e.Group("/app", authMiddleware)
//	elcmpecho.MountGroup(g, engine)
//
// Components are then served as fragments at <path><name>, by default
// /_c/<name>.
package elcmpecho

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/pthm/elcmp"
)

// Option configures the Mount and MountGroup functions.
type Option func(*options)

type options struct {
	path    string
	handler []elcmp.HandlerOption
}

// WithPath sets the URL path prefix for component routes.
// Defaults to "/_c/".
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithHandlerOptions passes options to every component handler, e.g.
// elcmp.WithPage or elcmp.WithSealedContext.
func WithHandlerOptions(opts ...elcmp.HandlerOption) Option {
	return func(o *options) {
		o.handler = append(o.handler, opts...)
	}
}

// Mount serves every component of engine on an Echo instance.
//
//	e := echo.New()
//	elcmpecho.Mount(e, engine)
//
//	// With options:
//	elcmpecho.Mount(e, engine, elcmpecho.WithPath("/components/"))
func Mount(e *echo.Echo, engine *elcmp.Engine, opts ...Option) {
	o := newOptions(opts)
	e.Match([]string{http.MethodGet, http.MethodPost}, o.path+":name", Handler(engine, o.handler...))
}

// MountGroup serves every component of engine on an Echo group.
// This allows components to share middleware with the group (auth, logging, etc.).
//
//	g := e.Group("/app", authMiddleware)
//	elcmpecho.MountGroup(g, engine)
func MountGroup(g *echo.Group, engine *elcmp.Engine, opts ...Option) {
	o := newOptions(opts)
	g.Match([]string{http.MethodGet, http.MethodPost}, o.path+":name", Handler(engine, o.handler...))
}

func newOptions(opts []Option) *options {
	o := &options{path: "/_c/"}
	for _, opt := range opts {
		opt(o)
	}
	if !strings.HasSuffix(o.path, "/") {
		o.path += "/"
	}
	return o
}

// Handler returns an Echo handler rendering the component named by the
// :name path parameter.
func Handler(engine *elcmp.Engine, opts ...elcmp.HandlerOption) echo.HandlerFunc {
	return func(c echo.Context) error {
		elcmp.Handler(engine, c.Param("name"), opts...).ServeHTTP(c.Response(), c.Request())
		return nil
	}
}

// Render renders the component called name with data to the Echo response.
// Unknown components produce a 404 error.
//
//	func handler(c echo.Context) error {
//	    return elcmpecho.Render(c, engine, "todo-list", elcmp.Context{"items": items})
//	}
func Render(c echo.Context, engine *elcmp.Engine, name string, data elcmp.Context) error {
	res := engine.Render(c.Request().Context(), name, data)
	if res.IsEmpty() {
		return echo.NewHTTPError(http.StatusNotFound, "component not found")
	}
	return c.HTML(http.StatusOK, res.String())
}

// RenderTempl writes a templ component to the Echo response.
//
//	func handler(c echo.Context) error {
//	    return elcmpecho.RenderTempl(c, engine.Templ("card", data))
//	}
func RenderTempl(c echo.Context, component templ.Component) error {
	c.Response().Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(c.Request().Context(), c.Response())
}
