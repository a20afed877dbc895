package volunteer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/okian/squads/internal/domain/taxonomy"
	"github.com/okian/squads/pkg/metrics"
)

var (
	wordSep = regexp.MustCompile(`[ ,;]`)
	ciSep   = regexp.MustCompile(`[ ,/]`)
)

// Token kinds reported to metrics.
const (
	tokenFramework   = "framework"
	tokenLanguage    = "language"
	tokenDesignSkill = "design_skill"
)

// parser resolves free-text answers through a taxonomy.
type parser struct {
	tax *taxonomy.Taxonomy
}

// frameworks splits on space, comma and semicolon. A token the taxonomy
// does not know is split again on dots ("vue.js", "node.js") and each part
// that is still unknown becomes GeneralBackend.
func (p parser) frameworks(raw string) []string {
	set := newSet()
	for _, tok := range wordSep.Split(strings.ToLower(raw), -1) {
		if tok == "" {
			continue
		}
		if p.tax.IsFramework(tok) {
			set.add(tok)
			continue
		}
		for _, part := range strings.Split(tok, ".") {
			if part == "" {
				continue
			}
			if p.tax.IsFramework(part) {
				set.add(part)
				continue
			}
			metrics.RecordUnknownToken(tokenFramework)
			set.add(taxonomy.GeneralBackend)
		}
	}
	return set.items()
}

// languages splits on semicolons. An entry the taxonomy does not know is
// split again on space and comma; parts that are still unknown become
// LanguageUnknown.
func (p parser) languages(raw string) []taxonomy.Language {
	seen := make(map[taxonomy.Language]struct{})
	var out []taxonomy.Language
	add := func(l taxonomy.Language) {
		if _, ok := seen[l]; !ok {
			seen[l] = struct{}{}
			out = append(out, l)
		}
	}
	for _, entry := range strings.Split(strings.ToLower(raw), ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if p.tax.KnowsLanguage(entry) {
			add(p.tax.Language(entry))
			continue
		}
		for _, tok := range wordSep.Split(entry, -1) {
			if tok == "" {
				continue
			}
			if !p.tax.KnowsLanguage(tok) {
				metrics.RecordUnknownToken(tokenLanguage)
			}
			add(p.tax.Language(tok))
		}
	}
	return out
}

// ci strips parentheses, splits on space, comma and slash, and keeps the
// platforms the taxonomy knows.
func (p parser) ci(raw string) []taxonomy.CI {
	cleaned := strings.NewReplacer("(", "", ")", "").Replace(strings.ToLower(raw))
	seen := make(map[taxonomy.CI]struct{})
	var out []taxonomy.CI
	for _, tok := range ciSep.Split(cleaned, -1) {
		c, ok := p.tax.ContinuousIntegration(tok)
		if !ok {
			continue
		}
		if _, dup := seen[c]; !dup {
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}

// designSkills splits on semicolons; unknown skills become GeneralFrontend.
func (p parser) designSkills(raw string) []string {
	set := newSet()
	for _, skill := range strings.Split(raw, ";") {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		if p.tax.IsDesignSkill(skill) {
			set.add(skill)
			continue
		}
		metrics.RecordUnknownToken(tokenDesignSkill)
		set.add(taxonomy.GeneralFrontend)
	}
	return set.items()
}

// parseExperience maps a survey range to its lower bound. Blank or unrecognized
// answers count as one year.
func parseExperience(raw string) int {
	switch strings.TrimSpace(raw) {
	case "2-4 years":
		return 2
	case "5-7 years":
		return 5
	case "8-10 years":
		return 8
	case "10+ years":
		return 10
	default:
		return 1
	}
}

// confidence parses a rating; unparsable answers yield -1.
func confidence(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return -1
	}
	return n
}

// affirmative reads a Yes/No answer. Positive ratings also count as yes.
func affirmative(raw string) bool {
	raw = strings.TrimSpace(raw)
	if strings.EqualFold(raw, "yes") {
		return true
	}
	n, err := strconv.Atoi(raw)
	return err == nil && n > 0
}

// set is an insertion-ordered string set.
type set struct {
	order []string
	seen  map[string]struct{}
}

func newSet() *set { return &set{seen: make(map[string]struct{})} }

func (s *set) add(v string) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.order = append(s.order, v)
}

func (s *set) merge(vs []string) {
	for _, v := range vs {
		s.add(v)
	}
}

func (s *set) items() []string { return s.order }
