package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"gotodo/internal/core"
)

//go:embed templates/*.html
var templateFS embed.FS

// LandingData feeds the anonymous landing page with its login/register forms.
type LandingData struct {
	Error string
}

// DashboardData feeds the authenticated task list.
type DashboardData struct {
	Username string
	Tasks    []core.TaskRecord
}

// EditData feeds the pre-filled task edit form.
type EditData struct {
	Task core.TaskRecord
}

type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Renderer{
		templates: templates,
	}, nil
}

func (r *Renderer) Landing(w io.Writer, data LandingData) error {
	return r.render(w, "index.html", data)
}

func (r *Renderer) Dashboard(w io.Writer, data DashboardData) error {
	return r.render(w, "dashboard.html", data)
}

func (r *Renderer) EditTask(w io.Writer, data EditData) error {
	return r.render(w, "update.html", data)
}

// render buffers the execution so a template failure never leaves a half
// written page on the wire.
func (r *Renderer) render(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("execute template %q: %w", name, err)
	}

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}
