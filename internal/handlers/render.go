// internal/handlers/render.go
package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/awidjaja/stokgate/web"
)

// Renderer executes the embedded HTML views. Pages render into a buffer
// first so a template error never leaks half a document to the browser.
type Renderer struct {
	templates *template.Template
	logger    *slog.Logger
}

// NewRenderer parses every embedded template once at startup.
func NewRenderer(logger *slog.Logger) (*Renderer, error) {
	funcs := template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	}

	tmpl, err := template.New("views").Funcs(funcs).ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	return &Renderer{
		templates: tmpl,
		logger:    logger.With(slog.String("component", "renderer")),
	}, nil
}

// Render writes the named view with the given data.
func (rd *Renderer) Render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := rd.templates.ExecuteTemplate(&buf, name, data); err != nil {
		rd.logger.Error("failed to render template",
			slog.String("template", name),
			slog.String("error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		rd.logger.Error("failed to write rendered page",
			slog.String("template", name),
			slog.String("error", err.Error()))
	}
}
