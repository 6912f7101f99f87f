// Package view renders the embedded page templates inside the shared
// layout.
package view

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/nestimate/nestimate/internal/session"
)

//go:embed templates
var templatesFS embed.FS

// Data is the payload every page template receives.
type Data struct {
	Username string
	Flashes  []session.Flash
	Content  interface{}
}

// Render writes the named page wrapped in the shared layout.
// Templates are parsed per request; they are small and embedded.
func Render(w http.ResponseWriter, status int, name string, data Data) {
	layout, err := templatesFS.ReadFile("templates/layout.html")
	if err != nil {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}
	content, err := templatesFS.ReadFile("templates/" + name)
	if err != nil {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	t := template.Must(template.New("").Parse(string(layout)))
	t = template.Must(t.New("").Parse(string(content)))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		slog.Error("template execute", "template", name, "error", err)
	}
}
