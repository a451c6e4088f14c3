package evaluator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"ai-assess/internal/domain"
)

// optionLabelPatterns recognise an option letter at the start of lower-cased text.
// Letters are restricted to a-d.
var optionLabelPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\(([a-d])\)`),
	regexp.MustCompile(`^([a-d])[.):]`),
	regexp.MustCompile(`^option\s*\(?([a-d])\b`),
	regexp.MustCompile(`^(?:answer|ans)\s*[:\-]?\s*\(?([a-d])\b`),
	regexp.MustCompile(`^([a-d])$`),
}

var optionPrefix = regexp.MustCompile(`^\s*(?:\([a-dA-D]\)|[a-dA-D][.):])\s*`)

const mcqOverlapThreshold = 0.7

// extractOptionLetter returns the option letter a selection starts with, if any.
func extractOptionLetter(s string) (string, bool) {
	text := strings.ToLower(strings.TrimSpace(s))
	for _, p := range optionLabelPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// resolveOption maps an option letter to the option text, stripping any label
// the stored option carries itself.
func resolveOption(letter string, options []string) (string, bool) {
	if letter == "" || len(options) == 0 {
		return "", false
	}
	idx := int(letter[0] - 'a')
	if idx < 0 || idx >= len(options) {
		return "", false
	}
	text := optionPrefix.ReplaceAllString(options[idx], "")
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	return text, true
}

// MatchMCQ grades a multiple-choice selection. An option-letter match takes
// precedence over text similarity. Options may be nil.
func MatchMCQ(userAnswer, referenceAnswer string, options []string) domain.Verdict {
	normUser := NormalizeOption(userAnswer)
	normRef := NormalizeOption(referenceAnswer)
	// Punctuation-only text normalizes to "" and never matches.
	if normUser != "" && normUser == normRef {
		return domain.NewVerdict(true, 100, "Exact match", domain.MethodExact)
	}

	userLetter, userHasLetter := extractOptionLetter(userAnswer)
	refLetter, refHasLetter := extractOptionLetter(referenceAnswer)
	switch {
	case userHasLetter && refHasLetter:
		if userLetter == refLetter {
			return domain.NewVerdict(true, 95,
				fmt.Sprintf("Option %s matches the correct option", strings.ToUpper(userLetter)),
				domain.MethodOptionLabel)
		}
		return domain.NewVerdict(false, 100,
			fmt.Sprintf("Selected option %s, correct option is %s", strings.ToUpper(userLetter), strings.ToUpper(refLetter)),
			domain.MethodOptionLabel)
	case userHasLetter:
		if text, ok := resolveOption(userLetter, options); ok {
			normUser = NormalizeOption(text)
		}
	case refHasLetter:
		if text, ok := resolveOption(refLetter, options); ok {
			normRef = NormalizeOption(text)
		}
	}

	if (userHasLetter || refHasLetter) && normUser != "" && normUser == normRef {
		return domain.NewVerdict(true, 95, "Selected option matches the correct option text", domain.MethodOptionLabel)
	}

	if utf8.RuneCountInString(normUser) > 3 && utf8.RuneCountInString(normRef) > 3 {
		if strings.Contains(normRef, normUser) || strings.Contains(normUser, normRef) {
			return domain.NewVerdict(true, 90, "Answer text matches the correct option", domain.MethodTextSimilarity)
		}
		refWords := wordSet(normRef)
		if len(refWords) > 0 {
			overlap := float64(intersectionSize(wordSet(normUser), refWords)) / float64(len(refWords))
			if overlap > mcqOverlapThreshold {
				return domain.NewVerdict(true, int(overlap*100),
					fmt.Sprintf("Answer text overlaps the correct option (%.0f%%)", overlap*100),
					domain.MethodTextSimilarity)
			}
		}
	}

	return domain.NewVerdict(false, 100, "Incorrect option", domain.MethodExact)
}
