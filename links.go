package ttl2html

import (
	"net/url"
	"strings"
)

// ResolveLinks annotates t with links for every field whose value is an
// absolute URL starting with one of prefixIRIs. The first matching IRI
// in slice order wins, so callers control precedence by ordering
// (declaration order when the slice comes from the ingest prefix table).
//
// Matched subjects keep Subject intact and get a shortened SubjectLabel;
// matched predicates and objects are shortened in place with the full
// value moved to the link field. Shortening removes the first occurrence
// of the IRI from the value, not strictly the leading one. An unmatched
// subject gets SubjectLabel defaulted to the raw Subject.
//
// Resolution is idempotent: a shortened value no longer parses as an
// absolute URL, and re-matching an untouched field recomputes the same
// state.
func ResolveLinks(t *Triple, prefixIRIs []string) {
	if t.SubjectLabel == "" {
		t.SubjectLabel = t.Subject
	}

	if isAbsoluteURL(t.Subject) {
		for _, iri := range prefixIRIs {
			if strings.HasPrefix(t.Subject, iri) {
				t.SubjectLink = t.Subject
				t.SubjectLabel = strings.Replace(t.Subject, iri, "", 1)
				break
			}
		}
	}

	if isAbsoluteURL(t.Predicate) {
		for _, iri := range prefixIRIs {
			if strings.HasPrefix(t.Predicate, iri) {
				t.PredicateLink = t.Predicate
				t.Predicate = strings.Replace(t.Predicate, iri, "", 1)
				break
			}
		}
	}

	if isAbsoluteURL(t.Object) {
		for _, iri := range prefixIRIs {
			if strings.HasPrefix(t.Object, iri) {
				t.ObjectLink = t.Object
				t.Object = strings.Replace(t.Object, iri, "", 1)
				break
			}
		}
	}
}

// isAbsoluteURL reports whether s parses as a URL with a scheme.
// Literals like "Alice" or "1.5" have no scheme and are rejected.
func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != ""
}
