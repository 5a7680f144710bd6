package ttl2html

import "sort"

// BuildDocument groups triples by subject and sorts the groups into a
// render-ready Document. Pure function: no I/O, no template knowledge.
//
// Grouping partitions the triple slice: every triple lands in exactly
// one group, keyed by its raw Subject. Group-level subject metadata is
// copied from the first triple encountered for that subject. Groups are
// sorted by ascending byte-wise Subject comparison; triple order within
// a group is preserved.
func BuildDocument(title string, triples []Triple) *Document {
	index := make(map[string]int, len(triples))
	groups := make([]SubjectGroup, 0, len(triples))

	for _, t := range triples {
		i, ok := index[t.Subject]
		if !ok {
			i = len(groups)
			index[t.Subject] = i
			groups = append(groups, SubjectGroup{
				Subject:      t.Subject,
				SubjectLabel: t.SubjectLabel,
				SubjectLink:  t.SubjectLink,
			})
		}
		groups[i].Triples = append(groups[i].Triples, t)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Subject < groups[j].Subject
	})

	return &Document{Title: title, SubjectGroups: groups}
}
