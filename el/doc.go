// Package el builds HTML markup strings for elcmp components.
//
// The central function is El, which turns a tag, a raw attribute string,
// children and optional inline event handlers into markup:
//
//	el.El("a", `href="/login"`, "Login")
//	// <a href="/login">Login</a>
//
//	el.El("button", `class="btn"`, []any{"Save"}, el.Events{"click": "save()"})
//	// <button class="btn" onclick="save()">Save</button>
//
// Attributes are never parsed or escaped; they are written exactly as given.
// Children may be strings, values implementing fmt.Stringer (such as an
// elcmp.Result), zero-argument functions, or slices of any of these nested to
// any depth. Use Text to escape untrusted text before passing it as a child.
//
// Every tag in Catalogue has a generated shorthand (Div, Span, Ul, ...) with
// the signature of ElementFunc. Tag looks shorthands up by name at run time
// and Define adds preset elements to that table.
//
// The data helpers Select, Dispatch, FilterBy and Iterate are small
// expression-style utilities for building children slices inside render
// functions.
//
// Nothing in this package panics or returns an error to its caller. Malformed
// input is coerced and reported through the global zap logger (zap.L()).
package el
