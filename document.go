package elcmp

import (
	"context"

	"github.com/pthm/elcmp/el"
)

// Document wraps pre-rendered fragments in an html element. data["header"]
// becomes the contents of head and data["content"] the contents of body.
// Both may be anything el accepts as children.
func Document(data Context) string {
	return el.El("html", `lang="en"`, []any{
		el.El("head", "", data["header"]),
		el.El("body", "", data["content"]),
	})
}

// Page describes a full HTML page assembled by Engine.RenderPage.
type Page struct {
	// Lang is the document language (default "en").
	Lang string
	// Title is escaped and placed in a title element when non-empty.
	Title string
	// Stylesheets are linked from head in order.
	Stylesheets []string
	// Scripts are loaded with deferred script elements at the end of body.
	Scripts []string
	// Head is extra raw markup appended to head.
	Head any

	// Header, Main and Footer name components rendered with the page data.
	// Empty names are skipped.
	Header string
	Main   string
	Footer string

	// Content is extra markup placed in main after the Main component.
	Content any
}

// RenderPage renders page with data. The header component precedes a
// <main id="main-content"> element holding the main component and Content,
// followed by the footer component.
func (e *Engine) RenderPage(ctx context.Context, page Page, data Context) string {
	if data == nil {
		data = Context{}
	}
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	head := []any{
		el.Meta(`charset="utf-8"`, nil),
		el.Meta(`name="viewport" content="width=device-width, initial-scale=1"`, nil),
	}
	if page.Title != "" {
		head = append(head, el.Title("", el.Text(page.Title)))
	}
	for _, href := range page.Stylesheets {
		head = append(head, el.Link(el.Attrs("rel", "stylesheet", "href", href), nil))
	}
	head = append(head, page.Head)

	body := []any{
		e.part(ctx, page.Header, data),
		el.MainEl(`id="main-content"`, []any{e.part(ctx, page.Main, data), page.Content}),
		e.part(ctx, page.Footer, data),
	}
	for _, src := range page.Scripts {
		body = append(body, el.Script(el.Attrs("src", src, "defer"), nil))
	}

	return el.El("html", el.Attrs("lang", lang), []any{
		el.Head("", head),
		el.Body("", body),
	})
}

func (e *Engine) part(ctx context.Context, name string, data Context) string {
	if name == "" {
		return ""
	}
	return e.Render(ctx, name, data).String()
}
