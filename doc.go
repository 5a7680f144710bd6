// Package ttl2html converts RDF Turtle documents into static, browseable
// HTML pages.
//
// # Quick Start
//
// Create a converter and convert a Turtle document:
//
//	conv, err := ttl2html.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, ttl2html.Input{
//	    Turtle: "@prefix ex: <http://example.org/> .\nex:Alice ex:name \"Alice\" .",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("alice.html", result.HTML, 0644)
//
// The result contains the rendered HTML (result.HTML), the normalized
// document model (result.Document) for custom rendering, and any parse
// diagnostics collected along the way (result.Diagnostics).
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Turtle ingest, one statement at a time (internal/turtle, knakk/rdf)
//  2. Link annotation against the namespace prefixes known at that point
//  3. Grouping by subject and lexicographic sorting (BuildDocument)
//  4. Rendering through the "page" template
//
// Prefix declarations may appear anywhere in a Turtle document, so each
// batch of triples is annotated with the prefixes declared up to that
// statement; a prefix never applies retroactively to earlier triples.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := ttl2html.NewConverter(
//	    ttl2html.WithTitle("Vocabulary"),
//	    ttl2html.WithStrictParsing(),
//	    ttl2html.WithPrefixes(ttl2html.Prefix{Name: "rdfs", IRI: "http://www.w3.org/2000/01/rdf-schema#"}),
//	)
//
// # Custom Assets
//
// Override the built-in templates and stylesheet with an asset directory:
//
//	conv, err := ttl2html.NewConverter(ttl2html.WithAssetPath("/path/to/assets"))
//
// Asset directory structure:
//
//	assets/
//	├── styles/
//	│   └── default.css
//	└── templates/
//	    ├── page.html
//	    └── index.html
//
// Templates missing from the directory fall back to the embedded defaults.
package ttl2html
