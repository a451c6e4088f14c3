package domain

import "strings"

// QuestionKind is the closed set of question kinds the evaluator grades.
type QuestionKind string

const (
	KindMCQ         QuestionKind = "MCQ"
	KindTrueFalse   QuestionKind = "TRUE_FALSE"
	KindShortAnswer QuestionKind = "SHORT_ANSWER"
	KindCode        QuestionKind = "CODE"
)

// FallbackProfile selects the word-overlap threshold used by the fallback evaluator.
type FallbackProfile string

const (
	ProfileShort  FallbackProfile = "short"
	ProfileCoding FallbackProfile = "coding"
)

// Threshold returns the minimum overlap ratio accepted by the profile.
func (p FallbackProfile) Threshold() float64 {
	if p == ProfileCoding {
		return 0.4
	}
	return 0.6
}

// kindLabels maps every label seen in stored papers and API callers to a kind.
// Keys are lower-cased with spaces, dashes and slashes folded to underscores.
var kindLabels = map[string]QuestionKind{
	"mcq":             KindMCQ,
	"multiple_choice": KindMCQ,
	"multiplechoice":  KindMCQ,
	"choice":          KindMCQ,

	"tf":         KindTrueFalse,
	"true_false": KindTrueFalse,
	"truefalse":  KindTrueFalse,
	"boolean":    KindTrueFalse,
	"bool":       KindTrueFalse,

	"code":        KindCode,
	"coding":      KindCode,
	"programming": KindCode,

	"sa":           KindShortAnswer,
	"short_answer": KindShortAnswer,
	"short":        KindShortAnswer,
	"subjective":   KindShortAnswer,
	"desc":         KindShortAnswer,
	"descriptive":  KindShortAnswer,
	"un":           KindShortAnswer,
	"unclassified": KindShortAnswer,
}

var labelFolder = strings.NewReplacer(" ", "_", "-", "_", "/", "_")

// ParseQuestionKind maps a loosely-typed label to a QuestionKind.
// Unknown or empty labels resolve to KindShortAnswer, the most permissive grader.
func ParseQuestionKind(label string) QuestionKind {
	key := labelFolder.Replace(strings.ToLower(strings.TrimSpace(label)))
	if kind, ok := kindLabels[key]; ok {
		return kind
	}
	return KindShortAnswer
}

// FallbackProfile returns the threshold profile used when the semantic judge fails.
func (k QuestionKind) FallbackProfile() FallbackProfile {
	if k == KindCode {
		return ProfileCoding
	}
	return ProfileShort
}

// IsDeterministic reports whether the kind is graded without the semantic judge.
func (k QuestionKind) IsDeterministic() bool {
	return k == KindMCQ || k == KindTrueFalse
}

func (k QuestionKind) String() string {
	return string(k)
}
