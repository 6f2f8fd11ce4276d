package domain

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	zeroWidthJoiner   = '\u200d'
	variationSelector = '\ufe0f'
)

// textMarkPattern matches a parenthesized Hangul word at the end of a
// message, e.g. "(웃음)".
var textMarkPattern = regexp.MustCompile(`\(([가-힣]+)\)\s*$`)

type runeRange struct {
	lo, hi rune
}

var pictographRanges = []runeRange{
	{0x1F300, 0x1F5FF},
	{0x1F600, 0x1F64F},
	{0x1F680, 0x1F6FF},
	{0x1F700, 0x1F77F},
	{0x1F780, 0x1F7FF},
	{0x1F800, 0x1F8FF},
	{0x1F900, 0x1F9FF},
	{0x1FA00, 0x1FA6F},
	{0x1FA70, 0x1FAFF},
	{0x2600, 0x26FF},
	{0x2700, 0x27BF},
	{0x2300, 0x23FF},
	{0x2B00, 0x2BFF},
	{0x1F1E6, 0x1F1FF},
}

var skinToneModifiers = runeRange{0x1F3FB, 0x1F3FF}

func IsPictograph(r rune) bool {
	for _, rr := range pictographRanges {
		if r >= rr.lo && r <= rr.hi {
			return true
		}
	}
	return false
}

// IsMarkComponent reports whether r can appear inside an emoji sequence:
// a pictograph, a skin tone modifier, the variation selector or a ZWJ.
func IsMarkComponent(r rune) bool {
	if IsPictograph(r) {
		return true
	}
	if r >= skinToneModifiers.lo && r <= skinToneModifiers.hi {
		return true
	}
	return r == variationSelector || r == zeroWidthJoiner
}

// NormalizeMark drops variation selectors so marks rendered with and
// without one compare equal.
func NormalizeMark(mark string) string {
	return strings.ReplaceAll(mark, string(variationSelector), "")
}

// FindTrailingMark returns the completion mark that ends message: a
// parenthesized Hangul word, or else the last emoji sequence provided nothing
// but whitespace follows it.
func FindTrailingMark(message string) (string, bool) {
	trimmed := strings.TrimRightFunc(message, unicode.IsSpace)
	if trimmed == "" {
		return "", false
	}

	if m := textMarkPattern.FindString(trimmed); m != "" {
		return m, true
	}

	runes := []rune(trimmed)
	var last string
	lastEnd := 0
	for i := 0; i < len(runes); {
		if !IsPictograph(runes[i]) {
			i++
			continue
		}
		end := i + 1
		for end < len(runes) && IsMarkComponent(runes[end]) {
			end++
		}
		last = string(runes[i:end])
		lastEnd = end
		i = end
	}

	if last != "" && lastEnd == len(runes) {
		return last, true
	}
	return "", false
}

// ContainsMark checks the exact assigned mark first, then falls back to a
// comparison with variation selectors removed.
func ContainsMark(message, key, raw string) bool {
	if raw != "" && strings.Contains(message, raw) {
		return true
	}
	return strings.Contains(NormalizeMark(message), key)
}
