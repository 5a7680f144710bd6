package turtle

import (
	"errors"
	"strings"
	"testing"
)

// drain steps the parser to the end, collecting triples and errors.
func drain(t *testing.T, p *Parser) ([]Triple, []error) {
	t.Helper()
	var (
		triples []Triple
		errs    []error
	)
	for !p.AtEnd() {
		got, err := p.Step()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		triples = append(triples, got...)
	}
	return triples, errs
}

func TestParserStep(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Triple
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace and comments only",
			input: "  \n# just a comment\n\t\n",
			want:  nil,
		},
		{
			name:  "plain IRIs",
			input: "<http://ex.org/a> <http://ex.org/p> <http://ex.org/o> .",
			want: []Triple{
				{Subject: "http://ex.org/a", Predicate: "http://ex.org/p", Object: "http://ex.org/o"},
			},
		},
		{
			name: "prefixed names",
			input: `@prefix ex: <http://ex.org/> .
ex:a ex:p ex:o .
`,
			want: []Triple{
				{Subject: "http://ex.org/a", Predicate: "http://ex.org/p", Object: "http://ex.org/o"},
			},
		},
		{
			name: "literal object",
			input: `@prefix ex: <http://ex.org/> .
ex:a ex:p "hello" .
`,
			want: []Triple{
				{Subject: "http://ex.org/a", Predicate: "http://ex.org/p", Object: "hello"},
			},
		},
		{
			name: "decimal does not split the statement",
			input: `@prefix ex: <http://ex.org/> .
ex:a ex:p 1.5 .
`,
			want: []Triple{
				{Subject: "http://ex.org/a", Predicate: "http://ex.org/p", Object: "1.5"},
			},
		},
		{
			name: "period inside literal does not split the statement",
			input: `@prefix ex: <http://ex.org/> .
ex:a ex:p "one . two" .
`,
			want: []Triple{
				{Subject: "http://ex.org/a", Predicate: "http://ex.org/p", Object: "one . two"},
			},
		},
		{
			name: "comment between statements",
			input: `@prefix ex: <http://ex.org/> .
# about a
ex:a ex:p ex:o . # trailing note
`,
			want: []Triple{
				{Subject: "http://ex.org/a", Predicate: "http://ex.org/p", Object: "http://ex.org/o"},
			},
		},
		{
			name:  "blank node subject",
			input: `_:b1 <http://ex.org/p> "x" .`,
			want: []Triple{
				{Subject: "_:b1", Predicate: "http://ex.org/p", Object: "x"},
			},
		},
		{
			name: "object list expands to multiple triples",
			input: `@prefix ex: <http://ex.org/> .
ex:a ex:p ex:o1, ex:o2 .
`,
			want: []Triple{
				{Subject: "http://ex.org/a", Predicate: "http://ex.org/p", Object: "http://ex.org/o1"},
				{Subject: "http://ex.org/a", Predicate: "http://ex.org/p", Object: "http://ex.org/o2"},
			},
		},
		{
			name: "predicate list shares the subject",
			input: `@prefix ex: <http://ex.org/> .
ex:a ex:p1 ex:o1 ; ex:p2 ex:o2 .
`,
			want: []Triple{
				{Subject: "http://ex.org/a", Predicate: "http://ex.org/p1", Object: "http://ex.org/o1"},
				{Subject: "http://ex.org/a", Predicate: "http://ex.org/p2", Object: "http://ex.org/o2"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParser(tt.input)
			got, errs := drain(t, p)
			if len(errs) != 0 {
				t.Fatalf("unexpected errors: %v", errs)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d triples, want %d: %+v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("triple[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParserDirectives(t *testing.T) {
	t.Run("turtle prefix declaration", func(t *testing.T) {
		p := NewParser(`@prefix ex: <http://ex.org/> .`)
		if _, errs := drain(t, p); len(errs) != 0 {
			t.Fatalf("unexpected errors: %v", errs)
		}

		iri, ok := p.Prefixes().Get("ex")
		if !ok || iri != "http://ex.org/" {
			t.Errorf("Get(ex) = %q, %v, want http://ex.org/, true", iri, ok)
		}
	})

	t.Run("sparql prefix declaration", func(t *testing.T) {
		p := NewParser("PREFIX ex: <http://ex.org/>\nex:a ex:p ex:o .\n")
		got, errs := drain(t, p)
		if len(errs) != 0 {
			t.Fatalf("unexpected errors: %v", errs)
		}
		if len(got) != 1 || got[0].Subject != "http://ex.org/a" {
			t.Errorf("triples = %+v, want resolved ex:a", got)
		}
	})

	t.Run("sparql keyword is case-insensitive", func(t *testing.T) {
		p := NewParser("prefix ex: <http://ex.org/>\n")
		if _, errs := drain(t, p); len(errs) != 0 {
			t.Fatalf("unexpected errors: %v", errs)
		}
		if _, ok := p.Prefixes().Get("ex"); !ok {
			t.Error("lowercase prefix keyword not recognized")
		}
	})

	t.Run("base resolves relative prefix IRI", func(t *testing.T) {
		p := NewParser("@base <http://ex.org/> .\n@prefix v: <vocab/> .\n")
		if _, errs := drain(t, p); len(errs) != 0 {
			t.Fatalf("unexpected errors: %v", errs)
		}

		iri, ok := p.Prefixes().Get("v")
		if !ok || iri != "http://ex.org/vocab/" {
			t.Errorf("Get(v) = %q, %v, want http://ex.org/vocab/, true", iri, ok)
		}
	})

	t.Run("default prefix has empty name", func(t *testing.T) {
		p := NewParser("@prefix : <http://ex.org/> .\n:a :p :o .\n")
		got, errs := drain(t, p)
		if len(errs) != 0 {
			t.Fatalf("unexpected errors: %v", errs)
		}
		if len(got) != 1 || got[0].Subject != "http://ex.org/a" {
			t.Errorf("triples = %+v, want resolved :a", got)
		}
	})

	t.Run("pre-registered prefix resolves without declaration", func(t *testing.T) {
		p := NewParser("ex:a ex:p ex:o .")
		p.Prefixes().Add("ex", "http://ex.org/")

		got, errs := drain(t, p)
		if len(errs) != 0 {
			t.Fatalf("unexpected errors: %v", errs)
		}
		if len(got) != 1 || got[0].Subject != "http://ex.org/a" {
			t.Errorf("triples = %+v, want resolved ex:a", got)
		}
	})
}

func TestParserAnonymousBlankNodes(t *testing.T) {
	t.Run("distinct [] nodes get distinct subjects", func(t *testing.T) {
		p := NewParser(`[] <http://ex.org/p> "a" .
[] <http://ex.org/p> "b" .
`)
		got, errs := drain(t, p)
		if len(errs) != 0 {
			t.Fatalf("unexpected errors: %v", errs)
		}
		if len(got) != 2 {
			t.Fatalf("got %d triples, want 2", len(got))
		}
		for i, tr := range got {
			if !strings.HasPrefix(tr.Subject, "_:") {
				t.Errorf("triple[%d].Subject = %q, want a blank node label", i, tr.Subject)
			}
		}
		if got[0].Subject == got[1].Subject {
			t.Errorf("both anonymous nodes share subject %q, want distinct labels", got[0].Subject)
		}
	})

	t.Run("one [] node keeps one label within its statement", func(t *testing.T) {
		p := NewParser(`[ <http://ex.org/p1> "a" ; <http://ex.org/p2> "b" ] <http://ex.org/p3> "c" .`)
		got, errs := drain(t, p)
		if len(errs) != 0 {
			t.Fatalf("unexpected errors: %v", errs)
		}
		if len(got) != 3 {
			t.Fatalf("got %d triples, want 3", len(got))
		}
		for i := 1; i < len(got); i++ {
			if got[i].Subject != got[0].Subject {
				t.Errorf("triple[%d].Subject = %q, want %q", i, got[i].Subject, got[0].Subject)
			}
		}
	})

	t.Run("named blank node stays one node across statements", func(t *testing.T) {
		p := NewParser(`_:n <http://ex.org/p> "a" .
_:n <http://ex.org/p> "b" .
`)
		got, errs := drain(t, p)
		if len(errs) != 0 {
			t.Fatalf("unexpected errors: %v", errs)
		}
		if len(got) != 2 {
			t.Fatalf("got %d triples, want 2", len(got))
		}
		if got[0].Subject != "_:n" || got[1].Subject != "_:n" {
			t.Errorf("subjects = %q, %q, want _:n for both", got[0].Subject, got[1].Subject)
		}
	})
}

func TestParserRecovery(t *testing.T) {
	input := `<http://ex.org/a> <http://ex.org/p> <http://ex.org/o> .
garbage here .
<http://ex.org/b> <http://ex.org/p> <http://ex.org/o> .
`
	p := NewParser(input)
	got, errs := drain(t, p)

	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}

	var se *StatementError
	if !errors.As(errs[0], &se) {
		t.Fatalf("error type = %T, want *StatementError", errs[0])
	}
	if want := strings.Index(input, "garbage"); se.Offset != want {
		t.Errorf("offset = %d, want %d", se.Offset, want)
	}

	if len(got) != 2 {
		t.Fatalf("got %d triples, want the 2 around the bad statement", len(got))
	}
	if got[0].Subject != "http://ex.org/a" || got[1].Subject != "http://ex.org/b" {
		t.Errorf("subjects = %q, %q", got[0].Subject, got[1].Subject)
	}
}

func TestParserPrefixVisibility(t *testing.T) {
	p := NewParser(`@prefix a: <http://a.org/> .
<http://a.org/x> <http://a.org/y> <http://a.org/z> .
@prefix b: <http://b.org/> .
`)

	// After the first directive only a: is known.
	if _, err := p.Step(); err != nil {
		t.Fatal(err)
	}
	if got := p.Prefixes().IRIs(); len(got) != 1 || got[0] != "http://a.org/" {
		t.Errorf("IRIs after first directive = %v", got)
	}

	if _, err := p.Step(); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Step(); err != nil {
		t.Fatal(err)
	}
	want := []string{"http://a.org/", "http://b.org/"}
	got := p.Prefixes().IRIs()
	if len(got) != len(want) {
		t.Fatalf("IRIs = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("IRIs[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestStatementErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &StatementError{Offset: 7, Err: inner}

	if !errors.Is(err, inner) {
		t.Error("Unwrap does not reach the inner error")
	}
	if !strings.Contains(err.Error(), "offset 7") {
		t.Errorf("Error() = %q, want offset mentioned", err.Error())
	}
}
