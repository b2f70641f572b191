package el

import (
	"strings"
	"sync"
)

//go:generate go run ../cmd/elcmp generate --output tags_gen.go

// Catalogue is the fixed list of tags that get a generated shorthand.
var Catalogue = []string{
	"div", "span", "p", "h1", "h2", "h3", "h4", "h5", "h6", "ul", "ol", "li",
	"a", "img", "button", "input", "form", "label", "section", "article", "header",
	"footer", "nav", "aside", "main", "strong", "em", "b", "i", "table", "tr", "td", "th", "script",
	"body", "html", "meta", "title", "link", "head", "br", "small", "hr", "pre", "code",
}

// ElementFunc renders one element with a fixed tag.
type ElementFunc func(attrs any, children any, events ...Events) string

// Shorthand returns the ElementFunc for tag.
func Shorthand(tag string) ElementFunc {
	return func(attrs any, children any, events ...Events) string {
		return El(tag, attrs, sequence(children), events...)
	}
}

// Shorthands builds a shorthand for each tag, keyed by tag.
func Shorthands(tags []string) map[string]ElementFunc {
	out := make(map[string]ElementFunc, len(tags))
	for _, tag := range tags {
		out[tag] = Shorthand(tag)
	}
	return out
}

var table = struct {
	sync.RWMutex
	m map[string]ElementFunc
}{m: Shorthands(Catalogue)}

// Tag returns the ElementFunc registered under name. Names that are not in
// the table get a fresh shorthand.
func Tag(name string) ElementFunc {
	table.RLock()
	fn, ok := table.m[name]
	table.RUnlock()
	if ok {
		return fn
	}
	return Shorthand(name)
}

// Definition describes a preset element added with Define.
type Definition struct {
	// Name is the key Tag finds the element under. Defaults to Tag.
	Name     string
	Tag      string
	Attrs    string
	Children any
	Events   Events
}

// Define adds preset elements to the table used by Tag, replacing any
// existing entry with the same name.
//
// Attributes passed at call time are appended to the preset attributes,
// children passed at call time replace the preset children, and call-time
// events override preset events with the same name.
func Define(defs ...Definition) {
	table.Lock()
	defer table.Unlock()
	for _, def := range defs {
		name := def.Name
		if name == "" {
			name = def.Tag
		}
		if strings.TrimSpace(name) == "" {
			continue
		}
		table.m[name] = def.element()
	}
}

func (def Definition) element() ElementFunc {
	return func(attrs any, children any, events ...Events) string {
		extra, children := normalizeAttrs(def.Tag, attrs, children)
		if children == nil {
			children = def.Children
		}
		if def.Events != nil {
			events = append([]Events{def.Events}, events...)
		}
		return El(def.Tag, joinAttributes(def.Attrs, extra), sequence(children), events...)
	}
}
