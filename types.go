package ttl2html

import "fmt"

// Default titles used when neither Input nor options specify one.
const (
	DefaultPageTitle  = "Definitions"
	DefaultIndexTitle = "Index of RDF Files"
)

// Triple is one RDF statement with all terms serialized as text.
//
// Subject keeps its raw value; SubjectLabel holds the display form
// (prefix stripped when a namespace matched). Predicate and Object are
// shortened in place instead, with the original full URL preserved in
// the corresponding link field. Templates render SubjectLabel for
// subjects but Predicate/Object directly.
type Triple struct {
	Subject   string
	Predicate string
	Object    string

	// SubjectLink, PredicateLink and ObjectLink hold the original full
	// URL when the field matched a known namespace prefix. Empty means
	// the field is not linked.
	SubjectLink   string
	PredicateLink string
	ObjectLink    string

	// SubjectLabel is the display form of Subject. Equals Subject when
	// no prefix matched.
	SubjectLabel string
}

// SubjectGroup holds all triples sharing one subject. The group-level
// subject fields are copied from the first triple seen for that subject.
type SubjectGroup struct {
	Subject      string
	SubjectLabel string
	SubjectLink  string
	Triples      []Triple
}

// Document is the render-ready model handed to the "page" template.
// SubjectGroups are sorted by ascending byte-wise Subject comparison;
// triples within a group keep ingest order.
type Document struct {
	Title         string
	SubjectGroups []SubjectGroup
}

// IndexEntry is one converted file's record on the index page.
type IndexEntry struct {
	Path string // output-relative HTML path, slash-separated
	Name string // original file's base name
}

// Prefix binds a namespace prefix name to its IRI.
// An empty Name is valid (Turtle's default prefix ":").
type Prefix struct {
	Name string
	IRI  string
}

// Diagnostic describes a malformed statement skipped during ingest.
type Diagnostic struct {
	Offset int // byte offset of the statement in the input
	Err    error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("statement at offset %d: %v", d.Offset, d.Err)
}

// Input contains conversion parameters for a single document.
type Input struct {
	Turtle string // Turtle document text (may be empty; renders an empty page)
	Title  string // page title (empty = converter default)
}

// ConvertResult holds the outcome of a single conversion.
type ConvertResult struct {
	HTML        []byte
	Document    *Document
	Diagnostics []Diagnostic
}

// IndexInput contains parameters for index page generation.
type IndexInput struct {
	Title   string // index title (empty = converter default)
	Entries []IndexEntry

	// PreambleHTML is trusted HTML injected above the entry list,
	// typically a rendered README. Callers must not pass untrusted
	// markup here; it is emitted without escaping.
	PreambleHTML string
}

// Option configures a Converter.
type Option func(*Converter)

// WithTitle sets the default page title used when Input.Title is empty.
func WithTitle(title string) Option {
	return func(c *Converter) {
		c.cfg.title = title
	}
}

// WithIndexTitle sets the default index page title.
func WithIndexTitle(title string) Option {
	return func(c *Converter) {
		c.cfg.indexTitle = title
	}
}

// WithStyle selects the stylesheet loaded from the asset loader.
func WithStyle(name string) Option {
	return func(c *Converter) {
		c.cfg.style = name
	}
}

// WithAssetPath loads templates and styles from a custom directory,
// falling back to the embedded defaults for anything missing.
func WithAssetPath(dir string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = dir
	}
}

// WithStrictParsing makes Convert fail on the first malformed statement
// instead of recording it as a diagnostic and continuing.
func WithStrictParsing() Option {
	return func(c *Converter) {
		c.cfg.strict = true
	}
}

// WithPrefixes registers extra namespace prefixes applied to every
// document, before any in-document declarations. A declaration reusing
// one of these names overrides its IRI for subsequent triples.
func WithPrefixes(prefixes ...Prefix) Option {
	return func(c *Converter) {
		c.extra = append(c.extra, prefixes...)
	}
}
