// Package taxonomy resolves free-text survey tokens (frameworks, languages,
// CI platforms, design skills) to canonical identifiers.
package taxonomy

import (
	"fmt"
	"sort"
	"strings"
)

// Classification tells whether a framework is frontend or backend work.
type Classification string

// Framework classifications.
const (
	Frontend Classification = "frontend"
	Backend  Classification = "backend"
)

// Sentinel frameworks and skills the classifier substitutes for tokens the
// taxonomy does not know.
const (
	GeneralBackend  = "General Backend"
	GeneralFrontend = "General Frontend"
)

// FrameworkInfo describes one canonical framework.
type FrameworkInfo struct {
	Classification Classification `json:"classification" yaml:"classification"`
	// Language is the raw language token the framework implies, resolved
	// through the languages table.
	Language string `json:"language" yaml:"language"`
}

// Document is the on-disk taxonomy shape. Every key is required.
type Document struct {
	Frameworks            map[string]FrameworkInfo `json:"frameworks" yaml:"frameworks"`
	Languages             map[string]int           `json:"languages" yaml:"languages"`
	ContinuousIntegration map[string]int           `json:"continuous_integration" yaml:"continuous_integration"`
	FrameworkSynonyms     map[string]string        `json:"framework_synonyms" yaml:"framework_synonyms"`
	DesignSkills          []string                 `json:"design_skills" yaml:"design_skills"`
}

// Taxonomy is an immutable lookup table built from a Document. Lookups
// expect lower-cased tokens; table keys are lower-cased on construction.
type Taxonomy struct {
	frameworks   map[string]FrameworkInfo
	languages    map[string]Language
	ci           map[string]CI
	synonyms     map[string]string
	designSkills map[string]struct{}
}

// New validates doc and builds a Taxonomy from it.
func New(doc Document) (*Taxonomy, error) {
	switch {
	case doc.Frameworks == nil:
		return nil, missingKey("frameworks")
	case doc.Languages == nil:
		return nil, missingKey("languages")
	case doc.ContinuousIntegration == nil:
		return nil, missingKey("continuous_integration")
	case doc.FrameworkSynonyms == nil:
		return nil, missingKey("framework_synonyms")
	case doc.DesignSkills == nil:
		return nil, missingKey("design_skills")
	}

	t := &Taxonomy{
		frameworks:   make(map[string]FrameworkInfo, len(doc.Frameworks)),
		languages:    make(map[string]Language, len(doc.Languages)),
		ci:           make(map[string]CI, len(doc.ContinuousIntegration)),
		synonyms:     make(map[string]string, len(doc.FrameworkSynonyms)),
		designSkills: make(map[string]struct{}, len(doc.DesignSkills)),
	}

	for raw, id := range doc.Languages {
		l := Language(id)
		if !l.Valid() {
			return nil, fmt.Errorf("%w: language %q has unknown id %d", ErrMalformedTaxonomy, raw, id)
		}
		t.languages[normalize(raw)] = l
	}

	for name, info := range doc.Frameworks {
		info.Classification = Classification(strings.ToLower(string(info.Classification)))
		if info.Classification != Frontend && info.Classification != Backend {
			return nil, fmt.Errorf("%w: framework %q has classification %q", ErrMalformedTaxonomy, name, info.Classification)
		}
		info.Language = normalize(info.Language)
		if _, ok := t.languages[info.Language]; info.Language != "" && !ok {
			return nil, fmt.Errorf("%w: framework %q implies unknown language %q", ErrMalformedTaxonomy, name, info.Language)
		}
		t.frameworks[normalize(name)] = info
	}

	for raw, id := range doc.ContinuousIntegration {
		c := CI(id)
		if !c.Valid() {
			return nil, fmt.Errorf("%w: ci platform %q has unknown id %d", ErrMalformedTaxonomy, raw, id)
		}
		t.ci[normalize(raw)] = c
	}

	for alias, target := range doc.FrameworkSynonyms {
		target = normalize(target)
		if _, ok := t.frameworks[target]; !ok {
			return nil, fmt.Errorf("%w: synonym %q points at unknown framework %q", ErrMalformedTaxonomy, alias, target)
		}
		t.synonyms[normalize(alias)] = target
	}

	for _, skill := range doc.DesignSkills {
		t.designSkills[normalize(skill)] = struct{}{}
	}

	return t, nil
}

// CanonicalFramework resolves a synonym to its framework key. Tokens that
// are not synonyms are returned unchanged.
func (t *Taxonomy) CanonicalFramework(token string) string {
	if canonical, ok := t.synonyms[token]; ok {
		return canonical
	}
	return token
}

// Framework resolves token through the synonym table and returns the
// framework it names.
func (t *Taxonomy) Framework(token string) (FrameworkInfo, bool) {
	info, ok := t.frameworks[t.CanonicalFramework(token)]
	return info, ok
}

// IsFramework reports whether token is a framework key or a synonym.
func (t *Taxonomy) IsFramework(token string) bool {
	_, ok := t.Framework(token)
	return ok
}

// Language resolves a raw language token, falling back to LanguageUnknown.
func (t *Taxonomy) Language(token string) Language {
	if l, ok := t.languages[token]; ok {
		return l
	}
	return LanguageUnknown
}

// KnowsLanguage reports whether token is in the languages table.
func (t *Taxonomy) KnowsLanguage(token string) bool {
	_, ok := t.languages[token]
	return ok
}

// ContinuousIntegration resolves a raw CI platform token.
func (t *Taxonomy) ContinuousIntegration(token string) (CI, bool) {
	c, ok := t.ci[token]
	return c, ok
}

// IsDesignSkill reports whether label is a recognized design skill. The
// comparison ignores case and surrounding space.
func (t *Taxonomy) IsDesignSkill(label string) bool {
	_, ok := t.designSkills[normalize(label)]
	return ok
}

// Frameworks returns the canonical framework keys in lexical order.
func (t *Taxonomy) Frameworks() []string {
	names := make([]string, 0, len(t.frameworks))
	for name := range t.frameworks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalize(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func missingKey(key string) error {
	return fmt.Errorf("%w: missing key %q", ErrMalformedTaxonomy, key)
}
