// Package turtle ingests RDF Turtle documents incrementally, one
// statement at a time.
//
// The grammar itself is handled by github.com/knakk/rdf; this package
// adds the statement-level state machine around it: a Parser tracks the
// remaining input, the namespace prefixes declared so far, and the
// end-of-input condition. Each Step consumes exactly one statement, so
// callers observe prefix declarations at the point they appear and a
// malformed statement can be skipped without losing the rest of the
// file.
//
// Each statement is decoded with the known directives replayed in front
// of it, so decode work grows with the number of declared prefixes.
// Vocabulary-sized documents don't notice; very large documents with
// many prefixes pay that cost per statement.
package turtle

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/knakk/rdf"
)

// Triple is one raw RDF statement with all terms serialized as text.
// IRIs and literals appear by value, blank nodes with their _: label.
type Triple struct {
	Subject   string
	Predicate string
	Object    string
}

// StatementError reports a statement that could not be parsed.
type StatementError struct {
	Offset int // byte offset of the statement in the input
	Err    error
}

func (e *StatementError) Error() string {
	return fmt.Sprintf("statement at offset %d: %v", e.Offset, e.Err)
}

func (e *StatementError) Unwrap() error { return e.Err }

// Parser consumes a Turtle document one statement at a time.
// The zero value is not usable; create with NewParser.
type Parser struct {
	input    string
	pos      int
	prefixes *Prefixes
	base     string
	atEnd    bool
	blankSeq int
}

// NewParser creates a Parser over the given Turtle document text.
func NewParser(input string) *Parser {
	return &Parser{input: input, prefixes: NewPrefixes()}
}

// AtEnd reports whether the parser has consumed all input.
func (p *Parser) AtEnd() bool { return p.atEnd }

// Prefixes returns the namespace prefixes known after the last Step, in
// declaration order. The table is live: entries added by the caller
// before the first Step act as pre-declared prefixes.
func (p *Parser) Prefixes() *Prefixes { return p.prefixes }

// Step consumes the next statement and returns its triples. Directive
// statements (@prefix, @base and their SPARQL forms) update the prefix
// table or base IRI and return no triples. A malformed statement
// returns a *StatementError; the parser position has already advanced
// past it, so the caller may keep stepping.
func (p *Parser) Step() ([]Triple, error) {
	if p.atEnd {
		return nil, nil
	}
	p.skipWhitespace()
	if p.pos >= len(p.input) {
		p.atEnd = true
		return nil, nil
	}

	start := p.pos
	switch {
	case p.hasDirective("@prefix"), p.hasDirective("@base"):
		stmt, terminated := p.scanStatement()
		if !terminated {
			p.atEnd = true
		}
		if err := p.applyTurtleDirective(stmt); err != nil {
			return nil, &StatementError{Offset: start, Err: err}
		}
		return nil, nil

	case p.hasKeyword("PREFIX"), p.hasKeyword("BASE"):
		if err := p.applySparqlDirective(); err != nil {
			return nil, &StatementError{Offset: start, Err: err}
		}
		return nil, nil

	default:
		stmt, terminated := p.scanStatement()
		if !terminated {
			p.atEnd = true
		}
		triples, err := p.decodeStatement(stmt)
		if err != nil {
			return nil, &StatementError{Offset: start, Err: err}
		}
		return triples, nil
	}
}

// applyTurtleDirective handles "@prefix name: <iri> ." and "@base <iri> .".
func (p *Parser) applyTurtleDirective(stmt string) error {
	s := strings.TrimSpace(stmt)
	s = strings.TrimSpace(strings.TrimSuffix(s, "."))

	if rest, ok := strings.CutPrefix(s, "@prefix"); ok {
		rest = strings.TrimSpace(rest)
		colon := strings.IndexByte(rest, ':')
		if colon < 0 {
			return fmt.Errorf("prefix declaration missing ':': %q", s)
		}
		name := strings.TrimSpace(rest[:colon])
		iri, err := parseIRIRef(strings.TrimSpace(rest[colon+1:]))
		if err != nil {
			return err
		}
		p.prefixes.Add(name, p.resolveAgainstBase(iri))
		return nil
	}

	rest := strings.TrimSpace(strings.TrimPrefix(s, "@base"))
	iri, err := parseIRIRef(rest)
	if err != nil {
		return err
	}
	p.base = p.resolveAgainstBase(iri)
	return nil
}

// applySparqlDirective handles "PREFIX name: <iri>" and "BASE <iri>",
// which have no '.' terminator. On a malformed directive the position
// advances to the end of the line so stepping can continue.
func (p *Parser) applySparqlDirective() error {
	isPrefix := p.hasKeyword("PREFIX")
	if isPrefix {
		p.pos += len("PREFIX")
	} else {
		p.pos += len("BASE")
	}
	p.skipWhitespace()

	var name string
	if isPrefix {
		colon := strings.IndexByte(p.input[p.pos:], ':')
		if colon < 0 {
			p.pos = len(p.input)
			return fmt.Errorf("PREFIX directive missing ':'")
		}
		name = strings.TrimSpace(p.input[p.pos : p.pos+colon])
		p.pos += colon + 1
		p.skipWhitespace()
	}

	if p.pos >= len(p.input) || p.input[p.pos] != '<' {
		p.skipLine()
		return fmt.Errorf("directive missing IRI reference")
	}
	end := skipIRIRef(p.input, p.pos)
	if end <= p.pos+1 || p.input[end-1] != '>' {
		p.pos = end
		return fmt.Errorf("unterminated IRI reference")
	}
	iri := p.input[p.pos+1 : end-1]
	p.pos = end

	if isPrefix {
		p.prefixes.Add(name, p.resolveAgainstBase(iri))
	} else {
		p.base = p.resolveAgainstBase(iri)
	}
	return nil
}

// decodeStatement parses one triple statement by replaying the known
// directives in front of it, so prefixed names resolve exactly as they
// would in a full-document parse.
func (p *Parser) decodeStatement(stmt string) ([]Triple, error) {
	var b strings.Builder
	for _, e := range p.prefixes.Entries() {
		fmt.Fprintf(&b, "@prefix %s: <%s> .\n", e.Name, e.IRI)
	}
	if p.base != "" {
		fmt.Fprintf(&b, "@base <%s> .\n", p.base)
	}
	b.WriteString(stmt)

	dec := rdf.NewTripleDecoder(strings.NewReader(b.String()), rdf.Turtle)
	var out []Triple
	for {
		tr, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, Triple{
			Subject:   termText(tr.Subj),
			Predicate: termText(tr.Pred),
			Object:    termText(tr.Obj),
		})
	}
	p.rewriteBlankLabels(stmt, out)
	return out, nil
}

// rewriteBlankLabels renames decoder-generated blank node labels to
// parser-scoped ones. Each statement runs through a fresh decoder whose
// generated labels restart at the same value, so without renaming two
// anonymous [] nodes in different statements would collide on one
// subject. Labels written in the source (_:name) are left alone; a
// named blank node stays one node across statements.
func (p *Parser) rewriteBlankLabels(stmt string, triples []Triple) {
	remap := make(map[string]string)
	rename := func(label string) string {
		if !strings.HasPrefix(label, "_:") || strings.Contains(stmt, label) {
			return label
		}
		mapped, ok := remap[label]
		if !ok {
			p.blankSeq++
			mapped = fmt.Sprintf("_:anon%d", p.blankSeq)
			remap[label] = mapped
		}
		return mapped
	}
	for i := range triples {
		triples[i].Subject = rename(triples[i].Subject)
		triples[i].Object = rename(triples[i].Object)
	}
}

// termText serializes a term the way pages display it: IRIs and
// literals by value, blank nodes with their _: label, anything else
// (unsupported term kinds) as an empty string.
func termText(t rdf.Term) string {
	switch t.Type() {
	case rdf.TermIRI:
		return t.String()
	case rdf.TermLiteral:
		return t.String()
	case rdf.TermBlank:
		s := t.String()
		if !strings.HasPrefix(s, "_:") {
			s = "_:" + s
		}
		return s
	default:
		return ""
	}
}

// resolveAgainstBase resolves a relative IRI against the current base.
// Absolute IRIs and unparseable values pass through unchanged.
func (p *Parser) resolveAgainstBase(iri string) string {
	if p.base == "" {
		return iri
	}
	ref, err := url.Parse(iri)
	if err != nil || ref.IsAbs() {
		return iri
	}
	base, err := url.Parse(p.base)
	if err != nil {
		return iri
	}
	return base.ResolveReference(ref).String()
}

// parseIRIRef strips the angle brackets from an IRI reference token.
func parseIRIRef(s string) (string, error) {
	if len(s) < 2 || s[0] != '<' || s[len(s)-1] != '>' {
		return "", fmt.Errorf("malformed IRI reference: %q", s)
	}
	return s[1 : len(s)-1], nil
}
