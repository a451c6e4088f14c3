package evaluator

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"ai-assess/internal/domain"
)

type boolValue int

const (
	boolUndetermined boolValue = iota
	boolTrue
	boolFalse
)

func (b boolValue) String() string {
	switch b {
	case boolTrue:
		return "True"
	case boolFalse:
		return "False"
	default:
		return "undetermined"
	}
}

// English, Hinglish, Devanagari and symbol spellings of true and false.
var (
	trueVariants = []string{
		"true", "yes", "correct", "right", "sahi", "sach", "satya", "haan", "haa",
		"हाँ", "हां", "सही", "सच", "✓", "✔", "☑",
	}
	falseVariants = []string{
		"false", "untrue", "no", "not", "incorrect", "wrong", "galat", "jhooth", "jhuth", "asatya", "nahi", "nahin",
		"नहीं", "गलत", "झूठ", "✗", "✘", "❌",
	}
)

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isASCIIWord(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return s != ""
}

// indexKeyword finds v in text. Latin keywords only match whole words, so "no"
// is not found inside "know" or "cannot". Devanagari and symbols match anywhere.
func indexKeyword(text, v string) int {
	if !isASCIIWord(v) {
		return strings.Index(text, v)
	}
	for start := 0; start < len(text); {
		i := strings.Index(text[start:], v)
		if i < 0 {
			return -1
		}
		i += start
		end := i + len(v)
		before, _ := utf8.DecodeLastRuneInString(text[:i])
		after, _ := utf8.DecodeRuneInString(text[end:])
		if (i == 0 || !isWordRune(before)) && (end == len(text) || !isWordRune(after)) {
			return i
		}
		start = i + 1
	}
	return -1
}

// earliest returns the index and length of the first variant occurring in text.
func earliest(text string, variants []string) (int, int) {
	idx, length := -1, 0
	for _, v := range variants {
		i := indexKeyword(text, v)
		if i < 0 {
			continue
		}
		if idx < 0 || i < idx || (i == idx && len(v) > length) {
			idx, length = i, len(v)
		}
	}
	return idx, length
}

// classifyBoolean decides whether text expresses true or false. When both
// vocabularies occur, the keyword starting first wins; a tie goes to the longer keyword.
func classifyBoolean(s string) boolValue {
	text := strings.ToLower(strings.TrimSpace(s))
	if text == "" {
		return boolUndetermined
	}
	ti, tl := earliest(text, trueVariants)
	fi, fl := earliest(text, falseVariants)
	switch {
	case ti < 0 && fi < 0:
		return boolUndetermined
	case fi < 0:
		return boolTrue
	case ti < 0:
		return boolFalse
	case ti < fi || (ti == fi && tl > fl):
		return boolTrue
	default:
		return boolFalse
	}
}

// MatchBoolean grades a true/false answer. It never consults the semantic judge.
func MatchBoolean(userAnswer, referenceAnswer string) domain.Verdict {
	user := classifyBoolean(userAnswer)
	ref := classifyBoolean(referenceAnswer)
	if user == boolUndetermined || ref == boolUndetermined {
		return domain.NewVerdict(false, 50, "Could not determine boolean value", domain.MethodBoolean)
	}
	if user == ref {
		return domain.NewVerdict(true, 100, "Correct: answer is "+ref.String(), domain.MethodBoolean)
	}
	return domain.NewVerdict(false, 100, "Incorrect: expected "+ref.String()+" but answer was "+user.String(), domain.MethodBoolean)
}
