package ttl2html

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"

	"github.com/rdita/go-ttl2html/internal/assets"
	"github.com/rdita/go-ttl2html/internal/render"
	"github.com/rdita/go-ttl2html/internal/turtle"
)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	title      string
	indexTitle string
	style      string
	assetPath  string
	strict     bool
}

// Converter orchestrates the Turtle-to-HTML conversion pipeline.
// Create with NewConverter, convert documents with Convert, and render
// the site index with GenerateIndex. A Converter is safe for reuse
// across files; it holds no per-document state.
type Converter struct {
	cfg      converterConfig
	loader   assets.AssetLoader
	renderer *render.Renderer
	style    template.CSS
	extra    []Prefix
}

// pageData is the payload contract of the "page" template.
type pageData struct {
	Title         string
	Style         template.CSS
	SubjectGroups []SubjectGroup
}

// indexData is the payload contract of the "index" template.
type indexData struct {
	Title    string
	Style    template.CSS
	Entries  []IndexEntry
	Preamble template.HTML
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithTitle, WithAssetPath).
// Returns an error if asset loading or template parsing fails.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			title:      DefaultPageTitle,
			indexTitle: DefaultIndexTitle,
			style:      assets.DefaultStyleName,
		},
		loader: assets.NewEmbeddedLoader(),
	}

	for _, opt := range opts {
		opt(c)
	}

	for _, p := range c.extra {
		if p.IRI == "" {
			return nil, fmt.Errorf("%w: %q has empty IRI", ErrInvalidPrefix, p.Name)
		}
	}

	if c.cfg.assetPath != "" {
		fsLoader, err := assets.NewFilesystemLoader(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		// Custom directories override selectively; anything missing
		// comes from the embedded defaults.
		c.loader = assets.NewFallbackLoader(fsLoader, assets.NewEmbeddedLoader())
	}

	page, err := c.loader.LoadTemplate(render.PageTemplate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateLoad, err)
	}
	index, err := c.loader.LoadTemplate(render.IndexTemplate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateLoad, err)
	}

	css, err := c.loader.LoadStyle(c.cfg.style)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStyleLoad, err)
	}
	c.style = template.CSS(css)

	renderer, err := render.New(page, index)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateLoad, err)
	}
	c.renderer = renderer

	return c, nil
}

// Convert ingests a Turtle document and returns the rendered page along
// with the document model. Malformed statements are skipped and recorded
// as diagnostics unless WithStrictParsing was set, in which case the
// first one fails the conversion. An empty document is valid and renders
// an empty page.
func (c *Converter) Convert(ctx context.Context, input Input) (*ConvertResult, error) {
	triples, diags, err := c.ingest(ctx, input.Turtle)
	if err != nil {
		return nil, err
	}

	title := input.Title
	if title == "" {
		title = c.cfg.title
	}
	doc := BuildDocument(title, triples)

	var buf bytes.Buffer
	data := pageData{Title: doc.Title, Style: c.style, SubjectGroups: doc.SubjectGroups}
	if err := c.renderer.Render(&buf, render.PageTemplate, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageRender, err)
	}

	return &ConvertResult{
		HTML:        buf.Bytes(),
		Document:    doc,
		Diagnostics: diags,
	}, nil
}

// ingest runs the incremental parse loop. Triples from each step are
// annotated with the prefixes known once that step completed, so a
// prefix declared mid-document applies only to later triples.
func (c *Converter) ingest(ctx context.Context, src string) ([]Triple, []Diagnostic, error) {
	parser := turtle.NewParser(src)
	for _, p := range c.extra {
		parser.Prefixes().Add(p.Name, p.IRI)
	}

	var (
		triples []Triple
		diags   []Diagnostic
	)
	for !parser.AtEnd() {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		raw, err := parser.Step()
		if err != nil {
			if c.cfg.strict {
				return nil, nil, fmt.Errorf("%w: %v", ErrTurtleParse, err)
			}
			diags = append(diags, toDiagnostic(err))
			continue
		}

		iris := parser.Prefixes().IRIs()
		for _, rt := range raw {
			t := Triple{
				Subject:      rt.Subject,
				SubjectLabel: rt.Subject,
				Predicate:    rt.Predicate,
				Object:       rt.Object,
			}
			ResolveLinks(&t, iris)
			triples = append(triples, t)
		}
	}

	return triples, diags, nil
}

// GenerateIndex renders the index page listing all converted files.
// Entries are rendered in the order given; no sorting is applied.
func (c *Converter) GenerateIndex(ctx context.Context, input IndexInput) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	title := input.Title
	if title == "" {
		title = c.cfg.indexTitle
	}

	var buf bytes.Buffer
	data := indexData{
		Title:    title,
		Style:    c.style,
		Entries:  input.Entries,
		Preamble: template.HTML(input.PreambleHTML), // #nosec G203 -- documented as trusted
	}
	if err := c.renderer.Render(&buf, render.IndexTemplate, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndexRender, err)
	}
	return buf.Bytes(), nil
}

// toDiagnostic converts a parser statement error into a Diagnostic,
// preserving the statement offset when available.
func toDiagnostic(err error) Diagnostic {
	var se *turtle.StatementError
	if errors.As(err, &se) {
		return Diagnostic{Offset: se.Offset, Err: se.Err}
	}
	return Diagnostic{Err: err}
}
