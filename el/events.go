package el

import (
	"sort"
	"strings"
)

// Events maps event names (without the "on" prefix) to handler bodies.
//
// A handler is a string or a list of statements ([]string or []any), which
// are joined with ";". Double quotes in handler bodies are replaced with
// single quotes so the body fits in a double-quoted attribute.
type Events map[string]any

// attributes renders the events as on<name>="<body>" pairs, sorted by name.
func (ev Events) attributes() string {
	if len(ev) == 0 {
		return ""
	}
	names := make([]string, 0, len(ev))
	for name := range ev {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, "on"+name+`="`+handlerBody(ev[name])+`"`)
	}
	return strings.Join(parts, " ")
}

func handlerBody(h any) string {
	switch body := h.(type) {
	case nil:
		return ""
	case string:
		return quote(body)
	case []string:
		stmts := make([]string, len(body))
		for i, s := range body {
			stmts[i] = quote(s)
		}
		return strings.Join(stmts, ";")
	}
	if isSequence(h) {
		items := sequence(h)
		stmts := make([]string, len(items))
		for i, s := range items {
			stmts[i] = quote(toString(s))
		}
		return strings.Join(stmts, ";")
	}
	return quote(toString(h))
}

func quote(s string) string {
	return strings.ReplaceAll(s, `"`, "'")
}

// mergeEvents folds several event maps into one. Later maps win.
func mergeEvents(all []Events) Events {
	switch len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	}
	merged := Events{}
	for _, ev := range all {
		for name, h := range ev {
			merged[name] = h
		}
	}
	return merged
}
