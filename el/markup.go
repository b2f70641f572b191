package el

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"go.uber.org/zap"
)

// Sentinel errors attached to diagnostics emitted by this package.
var (
	ErrInvalidTag        = errors.New("el: tag must be a non-empty string")
	ErrInvalidAttributes = errors.New("el: attributes must be a string")
	ErrBuildFailed       = errors.New("el: element build failed")
	ErrNoCase            = errors.New("el: no matching case")
)

// selfClosing are rendered as <tag attrs /> and never carry children.
var selfClosing = map[string]bool{
	"img":   true,
	"input": true,
	"br":    true,
	"meta":  true,
	"link":  true,
	"hr":    true,
}

// IsSelfClosing reports whether tag renders without children or closing tag.
func IsSelfClosing(tag string) bool {
	return selfClosing[strings.ToLower(tag)]
}

// El renders a single element.
//
// attrs is normally a raw attribute string such as `class="card" id="x"`.
// Passing a slice in its place is shorthand for "no attributes, these
// children": the slice replaces children. nil means no attributes; any other
// type is reported and treated as empty.
//
// children that are not a slice are wrapped as a single child. See the
// package documentation for how each child is resolved.
//
// The element always has a space after the tag name, so an element without
// attributes renders as "<div >...</div>".
func El(tag string, attrs any, children any, events ...Events) (out string) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error(fmt.Sprintf("error building <%s>: %v", tag, r),
				zap.String("tag", tag), zap.Error(ErrBuildFailed))
			out = "<" + tag + "></" + tag + ">"
		}
	}()

	tag = strings.TrimSpace(tag)
	if tag == "" {
		zap.L().Error("tag must be a non-empty string", zap.Error(ErrInvalidTag))
		return ""
	}

	raw, children := normalizeAttrs(tag, attrs, children)
	attributes := joinAttributes(raw, mergeEvents(events).attributes())

	if IsSelfClosing(tag) {
		return "<" + tag + " " + attributes + " />"
	}

	var b strings.Builder
	b.WriteString("<")
	b.WriteString(tag)
	b.WriteString(" ")
	b.WriteString(attributes)
	b.WriteString(">")
	for _, child := range sequence(children) {
		b.WriteString(resolve(child))
	}
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteString(">")
	return b.String()
}

// normalizeAttrs applies the attrs/children reinterpretation rules.
func normalizeAttrs(tag string, attrs any, children any) (string, any) {
	switch a := attrs.(type) {
	case nil:
		return "", children
	case string:
		return a, children
	}
	if isSequence(attrs) {
		return "", attrs
	}
	zap.L().Error(fmt.Sprintf("attributes must be a string, got %T", attrs),
		zap.String("tag", tag), zap.Error(ErrInvalidAttributes))
	return "", children
}

// joinAttributes joins the non-empty, trimmed parts with single spaces.
func joinAttributes(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

// Text escapes s for use as element content.
func Text(s string) string {
	return html.EscapeString(s)
}

// Attrs builds an attribute string from name/value pairs, escaping values.
// A trailing name without a value is written as a bare boolean attribute.
//
//	el.Attrs("href", url, "class", "nav-link")  // href="..." class="nav-link"
func Attrs(pairs ...string) string {
	var parts []string
	for i := 0; i < len(pairs); i += 2 {
		name := strings.TrimSpace(pairs[i])
		if name == "" {
			continue
		}
		if i+1 >= len(pairs) {
			parts = append(parts, name)
			break
		}
		parts = append(parts, name+`="`+html.EscapeString(pairs[i+1])+`"`)
	}
	return strings.Join(parts, " ")
}
