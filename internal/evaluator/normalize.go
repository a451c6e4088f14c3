package evaluator

import (
	"strings"
	"unicode"
)

// stopWords are dropped before word-overlap scoring.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "is": {}, "are": {}, "was": {}, "were": {}, "be": {},
	"of": {}, "to": {}, "in": {}, "on": {}, "for": {}, "and": {}, "or": {}, "it": {},
	"this": {}, "that": {}, "with": {}, "as": {}, "by": {}, "at": {}, "from": {},
}

// Normalize trims, lower-cases and collapses internal whitespace.
// Punctuation is preserved.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// NormalizeOption is Normalize plus removal of every character that is not a
// letter, digit, underscore or space. Used for multiple-choice comparisons.
func NormalizeOption(s string) string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r) {
			return r
		}
		return -1
	}, s)
	return Normalize(stripped)
}

// words splits text into lower-cased tokens of letters, digits and underscores.
func words(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r))
	})
}

// wordSet returns the distinct tokens of s.
func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range words(s) {
		set[w] = struct{}{}
	}
	return set
}

// significantWords returns the distinct tokens of s without stop words,
// with a plural "s" folded away so "lists" and "list" compare equal.
func significantWords(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range words(s) {
		if _, stop := stopWords[w]; stop {
			continue
		}
		set[stem(w)] = struct{}{}
	}
	return set
}

func stem(w string) string {
	if len(w) > 3 && strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") {
		return w[:len(w)-1]
	}
	return w
}

func intersectionSize(a, b map[string]struct{}) int {
	n := 0
	for w := range a {
		if _, ok := b[w]; ok {
			n++
		}
	}
	return n
}
