package components

import (
	"github.com/pthm/elcmp"
	"github.com/pthm/elcmp/el"
)

func app(ctx elcmp.Context, child elcmp.ChildRenderer) string {
	return el.Div(`class="app"`, []any{
		child("banner").String(),
		el.Aside(`class="sidebar"`, child("sidebar").String()),
		el.Section(`class="content"`, []any{
			child("add-todo").String(),
			child("todo-list").String(),
		}),
	})
}

func siteHeader(ctx elcmp.Context, _ elcmp.ChildRenderer) string {
	return el.Header(`class="site-header"`, el.H1("", "Todos"))
}

func siteFooter(ctx elcmp.Context, _ elcmp.ChildRenderer) string {
	return el.Footer(`class="site-footer"`, el.Small("", "Rendered with elcmp"))
}

func sidebar(ctx elcmp.Context, child elcmp.ChildRenderer) string {
	current := ctx.String("status")
	link := func(label, status string) string {
		href := "/"
		if status != "" {
			href = "/?status=" + status
		}
		class := el.Select(current == status, "filter active", "filter")
		return el.Li("", el.A(el.Attrs("href", href, "class", class.(string)), label))
	}

	return el.Nav(`class="filters"`, []any{
		el.Ul("", []any{
			link("All", ""),
			link("Pending", string(StatusPending)),
			link("Completed", string(StatusCompleted)),
		}),
		child("stats").String(),
	})
}

func addTodo(ctx elcmp.Context, _ elcmp.ChildRenderer) string {
	field := el.Tag("field")
	submit := el.Tag("primary")
	return el.Form(`hx-post="/todos" hx-target="#todo-list" hx-swap="outerHTML"`, []any{
		field(`name="title" placeholder="What needs doing?" required`, nil),
		field(`name="description" placeholder="Details"`, nil),
		submit("", "Add"),
	}, el.Events{"htmx:after-request": "this.reset()"})
}
