package domain

import (
	"context"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Method records which evaluation path produced a verdict.
type Method string

const (
	MethodEmpty          Method = "empty"
	MethodExact          Method = "exact"
	MethodOptionLabel    Method = "option_label"
	MethodTextSimilarity Method = "text_similarity"
	MethodBoolean        Method = "boolean"
	MethodSemantic       Method = "semantic"
	MethodFallback       Method = "fallback"
)

// EvaluationRequest is a single answer to grade.
// UserAnswer may be empty, which means the question was not attempted.
type EvaluationRequest struct {
	QuestionText    string
	UserAnswer      string
	ReferenceAnswer string
	Kind            QuestionKind
	// Options is the optional MCQ option list, in label order (a, b, c, d).
	Options []string
}

// Validate reports every missing required field at once.
func (r EvaluationRequest) Validate() error {
	var result *multierror.Error
	if strings.TrimSpace(r.QuestionText) == "" {
		result = multierror.Append(result, NewMissingFieldError("question"))
	}
	if strings.TrimSpace(r.ReferenceAnswer) == "" {
		result = multierror.Append(result, NewMissingFieldError("reference_answer"))
	}
	return result.ErrorOrNil()
}

// IsUnattempted reports whether the answer is empty or whitespace only.
func (r EvaluationRequest) IsUnattempted() bool {
	return strings.TrimSpace(r.UserAnswer) == ""
}

// Verdict is the uniform result of grading one answer.
type Verdict struct {
	IsCorrect  bool   `json:"is_correct"`
	Confidence int    `json:"confidence"`
	Reason     string `json:"reason"`
	Method     Method `json:"method"`
}

// NewVerdict builds a verdict with confidence clamped to [0,100].
func NewVerdict(correct bool, confidence int, reason string, method Method) Verdict {
	return Verdict{
		IsCorrect:  correct,
		Confidence: ClampConfidence(confidence),
		Reason:     reason,
		Method:     method,
	}
}

// ClampConfidence bounds a confidence value to [0,100].
func ClampConfidence(c int) int {
	if c < 0 {
		return 0
	}
	if c > 100 {
		return 100
	}
	return c
}

// AnswerEvaluator grades answers. Evaluate never fails: every problem resolves to a verdict.
type AnswerEvaluator interface {
	Evaluate(ctx context.Context, req EvaluationRequest) Verdict
}

// Judge is the external text-generation collaborator used for free-text and code grading.
// Any error means the judgment is unavailable.
type Judge interface {
	Judge(ctx context.Context, systemInstructions string, prompt string) (string, error)
}

// JudgeFunc adapts a plain function to the Judge interface.
type JudgeFunc func(ctx context.Context, systemInstructions string, prompt string) (string, error)

// Judge implements Judge.
func (f JudgeFunc) Judge(ctx context.Context, systemInstructions string, prompt string) (string, error) {
	return f(ctx, systemInstructions, prompt)
}

// VerdictCache stores successful semantic verdicts keyed by a digest of the request.
type VerdictCache interface {
	Get(ctx context.Context, key string) (*Verdict, error)
	Put(ctx context.Context, key string, verdict Verdict) error
}
