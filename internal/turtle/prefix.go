package turtle

// Prefix binds a namespace prefix name to its IRI. An empty name is
// valid; it is Turtle's default prefix ":".
type Prefix struct {
	Name string
	IRI  string
}

// Prefixes is an insertion-ordered namespace prefix table. Iteration
// order is declaration order, which makes first-match prefix selection
// deterministic even when one declared namespace is a prefix of
// another. Re-declaring a name updates its IRI in place and keeps its
// original position.
type Prefixes struct {
	entries []Prefix
	index   map[string]int
}

// NewPrefixes creates an empty prefix table.
func NewPrefixes() *Prefixes {
	return &Prefixes{index: make(map[string]int)}
}

// Add declares or updates a prefix.
func (p *Prefixes) Add(name, iri string) {
	if i, ok := p.index[name]; ok {
		p.entries[i].IRI = iri
		return
	}
	p.index[name] = len(p.entries)
	p.entries = append(p.entries, Prefix{Name: name, IRI: iri})
}

// Get returns the IRI bound to name.
func (p *Prefixes) Get(name string) (string, bool) {
	i, ok := p.index[name]
	if !ok {
		return "", false
	}
	return p.entries[i].IRI, true
}

// Len returns the number of declared prefixes.
func (p *Prefixes) Len() int { return len(p.entries) }

// Entries returns a copy of the table in declaration order.
func (p *Prefixes) Entries() []Prefix {
	out := make([]Prefix, len(p.entries))
	copy(out, p.entries)
	return out
}

// IRIs returns the prefix IRIs in declaration order.
func (p *Prefixes) IRIs() []string {
	out := make([]string, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.IRI
	}
	return out
}
