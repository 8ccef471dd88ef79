package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

// pages are the templates rendered on top of the shared layout.
var pages = []string{
	"home",
	"venues",
	"search_venues",
	"show_venue",
	"new_venue",
	"edit_venue",
	"artists",
	"search_artists",
	"show_artist",
	"new_artist",
	"edit_artist",
	"shows",
	"new_show",
	"404",
	"500",
}

var funcMap = template.FuncMap{
	"datetime": func(t time.Time) string {
		return t.Format("2006-01-02 15:04:05")
	},
	"containsString": func(list []string, s string) bool {
		for _, item := range list {
			if item == s {
				return true
			}
		}
		return false
	},
}

// Renderer renders named page templates into the shared layout.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, name := range pages {
		tmpl, err := template.New(name).Funcs(funcMap).ParseFS(templateFS,
			"templates/layout.html", "templates/_form_fields.html",
			"templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		templates[name] = tmpl
	}
	return &Renderer{templates: templates}, nil
}

// Render writes the named page with the given view model.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("unknown template %s", name)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}
