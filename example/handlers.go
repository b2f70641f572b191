package main

import (
	"io"
	"net/http"
	"strings"

	"github.com/pthm/elcmp"
	"github.com/pthm/elcmp/example/components"
)

var page = elcmp.Page{
	Title:       "Todos",
	Stylesheets: []string{"https://cdn.jsdelivr.net/npm/water.css@2/out/water.css"},
	Scripts:     []string{"https://unpkg.com/htmx.org@2.0.4"},
	Header:      "site-header",
	Footer:      "site-footer",
}

func newMux(engine *elcmp.Engine, store *Store) *http.ServeMux {
	mux := http.NewServeMux()

	// Page route. The status query parameter filters the list.
	mux.Handle("GET /{$}", elcmp.Handler(engine, "app", elcmp.WithPage(page)))

	// Fragments, e.g. the polling stats panel.
	mux.HandleFunc("GET /c/{name}", func(w http.ResponseWriter, r *http.Request) {
		elcmp.Handler(engine, r.PathValue("name")).ServeHTTP(w, r)
	})

	mux.HandleFunc("POST /todos", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		title := strings.TrimSpace(r.FormValue("title"))
		if title == "" {
			http.Error(w, "Title is required", http.StatusUnprocessableEntity)
			return
		}
		store.Add(title, strings.TrimSpace(r.FormValue("description")), parseTags(r.Form["tags"]))
		render(w, r, engine, "todo-list", elcmp.Context{})
	})

	mux.HandleFunc("POST /todos/{id}/toggle", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if !store.Toggle(id) {
			http.NotFound(w, r)
			return
		}
		render(w, r, engine, "todo-item", elcmp.Context{"id": id})
	})

	mux.HandleFunc("DELETE /todos/{id}", func(w http.ResponseWriter, r *http.Request) {
		if !store.Delete(r.PathValue("id")) {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("HX-Trigger", "todos-changed")
		w.WriteHeader(http.StatusOK)
	})

	return mux
}

func render(w http.ResponseWriter, r *http.Request, engine *elcmp.Engine, name string, data elcmp.Context) {
	res := engine.Render(r.Context(), name, data)
	if res.IsEmpty() {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, res.String())
}

func parseTags(values []string) []components.Tag {
	var tags []components.Tag
	for _, v := range values {
		for _, known := range components.AllTags() {
			if components.Tag(v) == known {
				tags = append(tags, known)
			}
		}
	}
	return tags
}
