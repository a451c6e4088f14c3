package evaluator

import (
	"context"
	"errors"
	"fmt"

	"ai-assess/internal/domain"
	"ai-assess/internal/logger"

	"go.uber.org/zap"
)

// semanticGrader is the part of SemanticEvaluator the orchestrator depends on.
type semanticGrader interface {
	Evaluate(ctx context.Context, req domain.EvaluationRequest) (domain.Verdict, error)
}

// Evaluator routes an answer to the grader for its kind and always returns a verdict.
type Evaluator struct {
	semantic semanticGrader
	logger   *zap.Logger
}

// New creates the evaluation orchestrator. semantic may be nil, in which case free text
// and code are graded by the fallback heuristics only.
func New(semantic *SemanticEvaluator) *Evaluator {
	e := &Evaluator{logger: logger.Named("evaluator")}
	if semantic != nil {
		e.semantic = semantic
	}
	return e
}

var _ domain.AnswerEvaluator = (*Evaluator)(nil)

// Evaluate implements domain.AnswerEvaluator.
func (e *Evaluator) Evaluate(ctx context.Context, req domain.EvaluationRequest) (verdict domain.Verdict) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("Recovered from panic during evaluation",
				zap.Any("panic", r), zap.String("question_kind", req.Kind.String()))
			verdict = Fallback(req.UserAnswer, req.ReferenceAnswer, req.Kind.FallbackProfile())
		}
		verdict.Confidence = domain.ClampConfidence(verdict.Confidence)
	}()

	if req.IsUnattempted() {
		return domain.NewVerdict(false, 100, "Answer is empty", domain.MethodEmpty)
	}

	// Callers may pass legacy labels such as "BOOLEAN" or "CODING" as the kind.
	req.Kind = domain.ParseQuestionKind(string(req.Kind))

	switch req.Kind {
	case domain.KindMCQ:
		verdict = MatchMCQ(req.UserAnswer, req.ReferenceAnswer, req.Options)
	case domain.KindTrueFalse:
		verdict = MatchBoolean(req.UserAnswer, req.ReferenceAnswer)
	default:
		verdict = e.evaluateSemantic(ctx, req)
	}

	e.logger.Debug("Answer evaluated",
		zap.String("question_kind", req.Kind.String()),
		zap.String("method", string(verdict.Method)),
		zap.Bool("is_correct", verdict.IsCorrect),
		zap.Int("confidence", verdict.Confidence))
	return verdict
}

func (e *Evaluator) evaluateSemantic(ctx context.Context, req domain.EvaluationRequest) domain.Verdict {
	if e.semantic == nil {
		return Fallback(req.UserAnswer, req.ReferenceAnswer, req.Kind.FallbackProfile())
	}

	verdict, err := e.semantic.Evaluate(ctx, req)
	if err == nil {
		return verdict
	}

	fields := []zap.Field{zap.String("question_kind", req.Kind.String()), zap.Error(err)}
	switch {
	case errors.Is(err, domain.ErrMalformedVerdict):
		e.logger.Warn("Judge returned a malformed verdict, using fallback", fields...)
	case errors.Is(err, domain.ErrJudgeUnavailable):
		e.logger.Warn("Judge unavailable, using fallback", fields...)
	default:
		e.logger.Warn("Semantic evaluation failed, using fallback",
			append(fields, zap.String("error_type", fmt.Sprintf("%T", err)))...)
	}
	return Fallback(req.UserAnswer, req.ReferenceAnswer, req.Kind.FallbackProfile())
}
