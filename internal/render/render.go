// Package render wraps html/template behind the two named document
// templates the converter renders into: "page" for a converted Turtle
// file and "index" for the site index. The engine is payload-agnostic;
// template data contracts live with the caller.
package render

import (
	"errors"
	"fmt"
	"html/template"
	"io"
)

// Template identifiers.
const (
	PageTemplate  = "page"
	IndexTemplate = "index"
)

// ErrUnknownTemplate indicates a render request for an undefined name.
var ErrUnknownTemplate = errors.New("unknown template")

// Renderer renders the named document templates.
type Renderer struct {
	tmpl *template.Template
}

// New parses the page and index template sources. html/template is used
// deliberately: literals from untrusted .ttl files end up interpolated
// into HTML and must be contextually escaped.
func New(page, index string) (*Renderer, error) {
	root := template.New("document")
	if _, err := root.New(PageTemplate).Parse(page); err != nil {
		return nil, fmt.Errorf("parsing %q template: %w", PageTemplate, err)
	}
	if _, err := root.New(IndexTemplate).Parse(index); err != nil {
		return nil, fmt.Errorf("parsing %q template: %w", IndexTemplate, err)
	}
	return &Renderer{tmpl: root}, nil
}

// Render executes the named template with the given data.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	if r.tmpl.Lookup(name) == nil {
		return fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
	return r.tmpl.ExecuteTemplate(w, name, data)
}
