package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{
	"login",
	"index",
	"clients",
	"client_detail",
	"client_form",
	"client_search",
	"programs",
	"program_form",
}

// Renderer holds the parsed server-rendered pages. Each page template is
// parsed together with the shared layout.
type Renderer struct {
	log       *logrus.Logger
	templates map[string]*template.Template
}

func NewRenderer(log *logrus.Logger) (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		templates[name] = tmpl
	}

	return &Renderer{log: log, templates: templates}, nil
}

func (r *Renderer) Render(w http.ResponseWriter, name string, data interface{}) {
	tmpl, ok := r.templates[name]
	if !ok {
		r.log.Errorf("Unknown template: %s", name)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		r.log.Errorf("Failed to render template %s: %+v", name, err)
	}
}
