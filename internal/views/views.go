// Package views renders the server-side HTML pages from embedded templates.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page names.
const (
	PageIndex     = "index.html"
	PageLogin     = "login.html"
	PageSignup    = "signup.html"
	PageFavorites = "favorites.html"
)

var pages = []string{PageIndex, PageLogin, PageSignup, PageFavorites}

// Renderer executes a page inside the shared layout.
type Renderer struct {
	pages map[string]*template.Template
	log   zerolog.Logger
}

// New parses every page together with the layout.
func New(log zerolog.Logger) (*Renderer, error) {
	r := &Renderer{
		pages: make(map[string]*template.Template, len(pages)),
		log:   log,
	}
	for _, name := range pages {
		t, err := template.New(name).ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render writes page with the given status. Execution happens into a
// buffer first so a template failure still yields a clean 500.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) {
	t, ok := r.pages[page]
	if !ok {
		r.log.Error().Str("page", page).Msg("unknown page")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		r.log.Error().Err(err).Str("page", page).Msg("render failed")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// Static serves the embedded assets; mount it under /static/.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
