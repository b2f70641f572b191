// Package elcmp is a small server-side component rendering engine.
//
// A component is anything that can turn a request Context into HTML. The
// engine keeps a Registry of named components, resolves children by name,
// and composes their output into a single markup string. Markup itself is
// built with the el package.
//
// # Core Concepts
//
// Components implement Component, or are plain functions adapted with
// ComponentFunc or Markup:
//
//	greeting := elcmp.Markup(func(ctx elcmp.Context, child elcmp.ChildRenderer) string {
//	    return el.Div(`class="greeting"`, []any{
//	        el.H1("", "Hello, "+el.Text(ctx.String("user"))),
//	        child("nav"),
//	    })
//	})
//
// The Context is a plain map passed unchanged to every component in one
// render, so children see exactly what the top-level caller provided.
// Calling child(name) renders another registered component one level deeper;
// unknown names render nothing.
//
// # Registration and Resolution
//
// Components are registered explicitly with a Registry:
//
//	engine := elcmp.New()
//	engine.Register("greeting", greeting)
//
// Names that are not registered when first rendered are handed to the
// engine's Resolver. A Manifest resolves names from a startup-time factory
// table; a Loader compiles component source files from a directory at run
// time (see the lib/script package for the Go interpreter based Compiler):
//
//	reg := elcmp.NewRegistry(logger)
//	loader := elcmp.NewLoader(os.DirFS("components"), script.New(), reg)
//	engine := elcmp.New(elcmp.WithRegistry(reg), elcmp.WithResolver(loader))
//
// # Rendering
//
//	res := engine.Render(ctx, "page", elcmp.Context{"user": "ada"})
//	w.Write([]byte(res.String()))
//
// Render never returns an error. Missing components, runaway recursion and
// panicking components are reported through the engine's zap logger and
// degrade to empty output, so a broken leaf never takes down a page.
// Recursion is capped at MaxDepth nested resolutions.
//
// Passing a nil Context returns the component itself instead of rendering
// it, which lets callers check what a name resolves to.
//
// # Documents
//
// Document wraps pre-rendered head and body fragments in an html element and
// Engine.RenderPage assembles a full page from a Page description.
package elcmp
