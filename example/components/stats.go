package components

import (
	"fmt"

	"github.com/pthm/elcmp"
	"github.com/pthm/elcmp/el"
)

// Stats renders todo counts, overall and per tag.
type Stats struct {
	store TodoStore
}

// Render implements elcmp.Component.
func (c *Stats) Render(_ elcmp.Context, _ elcmp.ChildRenderer) elcmp.Result {
	stats := c.store.Stats()

	byTag := make(map[string]any, len(stats.ByTag))
	for tag, n := range stats.ByTag {
		byTag[string(tag)] = n
	}
	rows := el.Iterate(byTag, func(n, tag any, _ int) any {
		return el.Li("", fmt.Sprintf("%s: %d", tag, n))
	})

	return elcmp.HTML(el.Div(`id="stats" hx-get="/c/stats" hx-trigger="every 10s" hx-swap="outerHTML"`, []any{
		el.P("", fmt.Sprintf("%d of %d done", stats.Completed, stats.Total)),
		el.Ul(`class="by-tag"`, rows),
	}))
}
