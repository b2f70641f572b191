// Package components holds the todo demo's compiled components.
package components

import (
	"github.com/pthm/elcmp"
	"github.com/pthm/elcmp/el"
)

func init() {
	el.Define(
		el.Definition{Name: "field", Tag: "input", Attrs: `class="field"`},
		el.Definition{Name: "primary", Tag: "button", Attrs: `class="btn btn-primary" type="submit"`},
	)
}

// Manifest returns the demo components bound to store.
func Manifest(store TodoStore) elcmp.Manifest {
	return elcmp.Manifest{
		"app":         func() elcmp.Component { return elcmp.Markup(app) },
		"site-header": func() elcmp.Component { return elcmp.Markup(siteHeader) },
		"site-footer": func() elcmp.Component { return elcmp.Markup(siteFooter) },
		"todo-list":   func() elcmp.Component { return &TodoList{store: store} },
		"todo-item":   func() elcmp.Component { return &TodoItem{store: store} },
		"sidebar":     func() elcmp.Component { return elcmp.Markup(sidebar) },
		"stats":       func() elcmp.Component { return &Stats{store: store} },
		"add-todo":    func() elcmp.Component { return elcmp.Markup(addTodo) },
	}
}

// Init registers every demo component with reg.
// Call this once at application startup before handling requests.
func Init(store TodoStore, reg *elcmp.Registry) {
	Manifest(store).Load(reg)
}
