// Package views projects rendered pages into HTML documents
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/dynamolab/dl-course-site/internal/basepath"
	"github.com/dynamolab/dl-course-site/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	templateModule      = "module.html"
	templatePlaceholder = "placeholder.html"
	templateIndex       = "index.html"
	templateNotFound    = "not_found.html"

	notFoundTitle = "Page Not Found"
)

// viewData is the value every template executes against
type viewData struct {
	Title       string
	Description string
	Page        *models.Page
	Index       *models.CourseIndex
}

// Renderer holds the parsed page templates
type Renderer struct {
	templates map[string]*template.Template
}

// New parses the embedded templates.
//
// Every page template is parsed together with the layout and shared partials, so each one defines its own "content".
func New(base basepath.BasePath) (*Renderer, error) {
	funcs := template.FuncMap{
		"path": base.With,
	}

	r := &Renderer{templates: make(map[string]*template.Template)}
	for _, name := range []string{templateModule, templatePlaceholder, templateIndex, templateNotFound} {
		t, err := template.New(name).Funcs(funcs).ParseFS(templatesFS,
			"templates/layout.html",
			"templates/partials.html",
			"templates/"+name,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		r.templates[name] = t
	}
	return r, nil
}

// RenderPage writes a module or placeholder page
func (r *Renderer) RenderPage(w io.Writer, page *models.Page) error {
	name := templateModule
	if page.IsPlaceholder() {
		name = templatePlaceholder
	}
	return r.execute(w, name, viewData{
		Title:       page.Metadata.Title,
		Description: page.Metadata.Description,
		Page:        page,
	})
}

// RenderIndex writes the course module list
func (r *Renderer) RenderIndex(w io.Writer, index *models.CourseIndex) error {
	return r.execute(w, templateIndex, viewData{
		Title:       index.Course.Title,
		Description: index.Course.Description,
		Index:       index,
	})
}

// RenderNotFound writes the generic not-found page
func (r *Renderer) RenderNotFound(w io.Writer) error {
	return r.execute(w, templateNotFound, viewData{Title: notFoundTitle})
}

// execute renders into a buffer first so a template error never leaves a half-written response
func (r *Renderer) execute(w io.Writer, name string, data viewData) error {
	t, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("unknown template: %s", name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
