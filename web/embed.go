// Package web holds the embedded page served at / and its static assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.tmpl static/*
var assets embed.FS

var page = template.Must(template.ParseFS(assets, "templates/*.tmpl"))

// Puzzle is what the index page lists in its day picker.
type Puzzle interface {
	Day() int
	Name() string
}

// Index renders the solve form for the given puzzles.
func Index[P Puzzle](puzzles []P) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := page.ExecuteTemplate(w, "index.tmpl", map[string]any{"Puzzles": puzzles}); err != nil {
			http.Error(w, template.HTMLEscapeString(err.Error()), http.StatusInternalServerError)
		}
	})
}

// Static serves the files under static/.
func Static() http.Handler {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServerFS(sub)
}
