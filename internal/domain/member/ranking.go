package member

import (
	"slices"
	"sort"
	"strings"

	"github.com/okian/squads/internal/domain/taxonomy"
)

// Ranking is the skill profile derived from a respondent's answers. It is
// immutable once built; accessors return sorted copies.
type Ranking struct {
	Frontend   int
	Backend    int
	Roles      Role
	languages  map[taxonomy.Language]struct{}
	frameworks map[string]struct{}
}

// BuildRanking derives a Ranking. Languages are added as given. Each
// framework is resolved through the synonym table, counted as frontend or
// backend, and contributes its implied language, if any. Frameworks the taxonomy
// does not know are left out. Implied languages always resolve, since
// taxonomy.New rejects frameworks whose language is not in its table.
func BuildRanking(tax *taxonomy.Taxonomy, languages []taxonomy.Language, frameworks []string, roles Role) Ranking {
	r := Ranking{
		Roles:      roles,
		languages:  make(map[taxonomy.Language]struct{}, len(languages)),
		frameworks: make(map[string]struct{}, len(frameworks)),
	}

	for _, l := range languages {
		r.languages[l] = struct{}{}
	}

	for _, f := range frameworks {
		fw := tax.CanonicalFramework(strings.ToLower(f))
		info, ok := tax.Framework(fw)
		if !ok {
			continue
		}
		if info.Classification == taxonomy.Frontend {
			r.Frontend++
		} else {
			r.Backend++
		}
		if info.Language != "" {
			r.languages[tax.Language(info.Language)] = struct{}{}
		}
		r.frameworks[fw] = struct{}{}
	}

	return r
}

// Languages returns the language set in ascending id order.
func (r Ranking) Languages() []taxonomy.Language {
	out := make([]taxonomy.Language, 0, len(r.languages))
	for l := range r.languages {
		out = append(out, l)
	}
	slices.Sort(out)
	return out
}

// Frameworks returns the canonical framework set in lexical order.
func (r Ranking) Frameworks() []string {
	out := make([]string, 0, len(r.frameworks))
	for f := range r.frameworks {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// HasLanguage reports whether l is in the language set.
func (r Ranking) HasLanguage(l taxonomy.Language) bool {
	_, ok := r.languages[l]
	return ok
}

// HasFramework reports whether the canonical framework f is in the set.
func (r Ranking) HasFramework(f string) bool {
	_, ok := r.frameworks[f]
	return ok
}
