package domain

import (
	"strings"
	"unicode"
)

// DefaultStripWords are words the platform or the members attach to display
// names (church names, sibling titles).
var DefaultStripWords = []string{"맑은샘", "광천", "누나", "오빠", "언니", " 형"}

// NormalizeParticipant reduces a sender display name to the bare name used as
// the aggregation key: strip words are removed, then emoji, digits,
// whitespace and ASCII letters. A name that would become empty is kept as is.
func NormalizeParticipant(name string, stripWords []string) string {
	result := name
	for _, word := range stripWords {
		if word == "" {
			continue
		}
		result = strings.ReplaceAll(result, word, "")
	}

	result = strings.Map(func(r rune) rune {
		switch {
		case IsMarkComponent(r), unicode.IsDigit(r), unicode.IsSpace(r):
			return -1
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
			return -1
		default:
			return r
		}
	}, result)

	if result == "" {
		return name
	}
	return result
}
