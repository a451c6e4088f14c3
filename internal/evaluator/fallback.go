package evaluator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"ai-assess/internal/domain"
)

const (
	fallbackSubstringMinLen = 10
	fallbackKeyTermMaxWords = 3
)

// Similarity is the share of significant words two texts have in common, in [0,1].
// It is the Dice coefficient over stop-word-free, plural-folded word sets.
func Similarity(a, b string) float64 {
	wa, wb := significantWords(a), significantWords(b)
	if len(wa) == 0 || len(wb) == 0 {
		return 0
	}
	return 2 * float64(intersectionSize(wa, wb)) / float64(len(wa)+len(wb))
}

// Fallback grades free text without the semantic judge. It is pure and
// deterministic: identical inputs always produce identical verdicts.
func Fallback(userAnswer, referenceAnswer string, profile domain.FallbackProfile) domain.Verdict {
	user := Normalize(userAnswer)
	ref := Normalize(referenceAnswer)

	if user == ref {
		return domain.NewVerdict(true, 100, "Exact match (fallback mode)", domain.MethodFallback)
	}

	if utf8.RuneCountInString(user) > fallbackSubstringMinLen && (strings.Contains(ref, user) || strings.Contains(user, ref)) {
		return domain.NewVerdict(true, 85, "Substring match (fallback mode)", domain.MethodFallback)
	}

	overlap := Similarity(user, ref)
	if overlap >= profile.Threshold() {
		return domain.NewVerdict(true, int(overlap*100),
			fmt.Sprintf("Word overlap %.0f%% (fallback mode)", overlap*100),
			domain.MethodFallback)
	}

	refWords := significantWords(ref)
	if n := len(refWords); n > 0 && n <= fallbackKeyTermMaxWords && intersectionSize(significantWords(user), refWords) > 0 {
		return domain.NewVerdict(true, 70, "Key term match (fallback mode)", domain.MethodFallback)
	}

	return domain.NewVerdict(false, 60, "No sufficient match (fallback mode)", domain.MethodFallback)
}
