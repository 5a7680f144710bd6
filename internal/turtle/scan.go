package turtle

import "strings"

// scanStatement scans from the current position to the statement
// terminator and advances past it. The terminator is a '.' at bracket
// depth zero, outside strings, IRI references and comments, followed by
// whitespace, a comment, or end of input. This boundary is also the
// error-recovery unit: a malformed statement is skipped as a whole.
//
// Returns the statement text (terminator included) and whether a
// terminator was found; when it was not, the rest of the input has been
// consumed.
func (p *Parser) scanStatement() (string, bool) {
	start := p.pos
	depth := 0
	i := p.pos
	for i < len(p.input) {
		switch p.input[i] {
		case '#':
			i = skipComment(p.input, i)
			continue
		case '<':
			i = skipIRIRef(p.input, i)
			continue
		case '"', '\'':
			i = skipString(p.input, i)
			continue
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		case '.':
			if depth <= 0 && isStatementEnd(p.input, i) {
				p.pos = i + 1
				return p.input[start:p.pos], true
			}
		}
		i++
	}
	p.pos = len(p.input)
	return p.input[start:], false
}

// skipWhitespace advances past whitespace and comments.
func (p *Parser) skipWhitespace() {
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		case '#':
			p.pos = skipComment(p.input, p.pos)
		default:
			return
		}
	}
}

// skipLine advances past the current line, for recovery after a
// malformed SPARQL-style directive.
func (p *Parser) skipLine() {
	for p.pos < len(p.input) && p.input[p.pos] != '\n' {
		p.pos++
	}
}

// hasDirective reports whether a Turtle directive keyword starts at the
// current position, followed by whitespace.
func (p *Parser) hasDirective(kw string) bool {
	end := p.pos + len(kw)
	if !strings.HasPrefix(p.input[p.pos:], kw) {
		return false
	}
	return end < len(p.input) && isSpace(p.input[end])
}

// hasKeyword reports whether a SPARQL directive keyword starts at the
// current position (case-insensitive), followed by whitespace or EOF.
func (p *Parser) hasKeyword(kw string) bool {
	end := p.pos + len(kw)
	if end > len(p.input) || !strings.EqualFold(p.input[p.pos:end], kw) {
		return false
	}
	return end == len(p.input) || isSpace(p.input[end])
}

// skipComment returns the index after the comment starting at i.
func skipComment(s string, i int) int {
	for ; i < len(s); i++ {
		if s[i] == '\n' {
			return i + 1
		}
	}
	return len(s)
}

// skipIRIRef returns the index after the IRI reference starting at i
// (an opening '<'). IRI references cannot contain whitespace, so the
// scan also stops at one; the decoder reports the malformed token.
func skipIRIRef(s string, i int) int {
	for j := i + 1; j < len(s); j++ {
		switch s[j] {
		case '>':
			return j + 1
		case ' ', '\t', '\n', '\r':
			return j
		}
	}
	return len(s)
}

// skipString returns the index after the string literal starting at i,
// handling short and long forms and backslash escapes. An unterminated
// short string stops at the line break.
func skipString(s string, i int) int {
	q := s[i]
	if i+2 < len(s) && s[i+1] == q && s[i+2] == q {
		for j := i + 3; j < len(s); j++ {
			if s[j] == '\\' {
				j++
				continue
			}
			if s[j] == q && j+2 < len(s) && s[j+1] == q && s[j+2] == q {
				return j + 3
			}
		}
		return len(s)
	}
	for j := i + 1; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++
		case q:
			return j + 1
		case '\n':
			return j
		}
	}
	return len(s)
}

// isStatementEnd reports whether the '.' at index i terminates a
// statement: it must be followed by whitespace, a comment, or EOF.
// A '.' inside a decimal ("1.5") or a prefixed name ("ex:a.b") is
// followed by a name character and does not qualify.
func isStatementEnd(s string, i int) bool {
	if i+1 >= len(s) {
		return true
	}
	return isSpace(s[i+1]) || s[i+1] == '#'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}
