package components

import (
	"github.com/pthm/elcmp"
	"github.com/pthm/elcmp/el"
)

// TodoList renders the todos matching the "status" filter.
type TodoList struct {
	store TodoStore
}

// Render implements elcmp.Component.
func (c *TodoList) Render(ctx elcmp.Context, _ elcmp.ChildRenderer) elcmp.Result {
	var status *Status
	if s := ctx.String("status"); s != "" {
		st := Status(s)
		status = &st
	}

	todos := c.store.List(status, nil)
	if len(todos) == 0 {
		return elcmp.HTML(el.Ul(`id="todo-list"`, el.Li(`class="empty"`, "Nothing to do")))
	}

	items := el.Iterate(todos, func(value, _ any, _ int) any {
		return todoItem(value.(*Todo))
	})
	return elcmp.HTML(el.Ul(`id="todo-list"`, items))
}

// TodoItem renders the todo whose ID is in "id".
type TodoItem struct {
	store TodoStore
}

// Render implements elcmp.Component.
func (c *TodoItem) Render(ctx elcmp.Context, _ elcmp.ChildRenderer) elcmp.Result {
	todo := c.store.Get(ctx.String("id"))
	if todo == nil {
		return elcmp.Empty()
	}
	return elcmp.HTML(todoItem(todo))
}

func todoItem(t *Todo) string {
	class := "todo"
	if t.IsCompleted() {
		class += " completed"
	}
	label := el.Select(t.IsCompleted(), "Undo", "Done")

	return el.Li(el.Attrs("id", t.ID, "class", class), []any{
		el.Strong("", el.Text(t.Title)),
		el.Select(t.Description != "", el.Small("", el.Text(t.Description))),
		el.Iterate(t.Tags, func(tag, _ any, _ int) any {
			return el.Span(`class="tag"`, el.Text(string(tag.(Tag))))
		}),
		el.Button(el.Attrs("hx-post", "/todos/"+t.ID+"/toggle", "hx-target", "#"+t.ID, "hx-swap", "outerHTML"), label),
		el.Button(el.Attrs("hx-delete", "/todos/"+t.ID, "hx-target", "#"+t.ID, "hx-swap", "outerHTML"), "Delete"),
	})
}
