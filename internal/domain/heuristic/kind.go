package heuristic

import "strings"

// Kind enumerates the assignment strategies.
type Kind uint8

// Strategy kinds.
const (
	KindNaive Kind = 1 << iota
	KindLanguage
	KindFramework
	KindExperience
	KindMagic
)

// ParseKind maps a strategy name to its Kind. Matching ignores case and
// surrounding space; unrecognized names select KindNaive.
func ParseKind(name string) Kind {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "language":
		return KindLanguage
	case "framework":
		return KindFramework
	case "experience":
		return KindExperience
	case "magic":
		return KindMagic
	default:
		return KindNaive
	}
}

func (k Kind) String() string {
	switch k {
	case KindNaive:
		return "naive"
	case KindLanguage:
		return "language"
	case KindFramework:
		return "framework"
	case KindExperience:
		return "experience"
	case KindMagic:
		return "magic"
	default:
		return "unknown"
	}
}
