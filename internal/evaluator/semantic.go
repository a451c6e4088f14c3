package evaluator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ai-assess/internal/domain"
	"ai-assess/internal/logger"
	"ai-assess/internal/util"

	"github.com/avast/retry-go/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// SemanticConfig bounds the judge call.
type SemanticConfig struct {
	// Timeout covers every attempt of one evaluation. Zero disables it.
	Timeout time.Duration
	// MaxAttempts is the number of judge calls tried on transport errors. Values below 1 mean 1.
	MaxAttempts uint
	RetryDelay  time.Duration
}

// DefaultSemanticConfig mirrors the llm section defaults of the config file.
func DefaultSemanticConfig() SemanticConfig {
	return SemanticConfig{
		Timeout:     20 * time.Second,
		MaxAttempts: 2,
		RetryDelay:  500 * time.Millisecond,
	}
}

// SemanticEvaluator grades free text and code through the external judge.
type SemanticEvaluator struct {
	judge  domain.Judge
	cfg    SemanticConfig
	cache  domain.VerdictCache
	logger *zap.Logger
	group  singleflight.Group
}

// SemanticOption customises a SemanticEvaluator.
type SemanticOption func(*SemanticEvaluator)

// WithVerdictCache stores successful verdicts in c.
func WithVerdictCache(c domain.VerdictCache) SemanticOption {
	return func(e *SemanticEvaluator) {
		e.cache = c
	}
}

// WithLogger overrides the package logger.
func WithLogger(l *zap.Logger) SemanticOption {
	return func(e *SemanticEvaluator) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewSemanticEvaluator creates a semantic evaluator. judge may be nil, in which case
// every evaluation reports the judge as unavailable.
func NewSemanticEvaluator(judge domain.Judge, cfg SemanticConfig, opts ...SemanticOption) *SemanticEvaluator {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	e := &SemanticEvaluator{
		judge:  judge,
		cfg:    cfg,
		logger: logger.Named("judge"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RequestDigest identifies a judgment by everything that influences it.
func RequestDigest(req domain.EvaluationRequest) string {
	return util.HashString(string(req.Kind), req.QuestionText, req.ReferenceAnswer, req.UserAnswer)
}

// Evaluate asks the judge for a verdict. Errors are *domain.DomainError values wrapping
// domain.ErrJudgeUnavailable or domain.ErrMalformedVerdict.
func (e *SemanticEvaluator) Evaluate(ctx context.Context, req domain.EvaluationRequest) (domain.Verdict, error) {
	if e.judge == nil {
		return domain.Verdict{}, domain.NewJudgeUnavailableError(errors.New("no judge configured"))
	}

	key := RequestDigest(req)
	if e.cache != nil {
		cached, err := e.cache.Get(ctx, key)
		if err != nil {
			e.logger.Warn("Verdict cache lookup failed", zap.Error(err))
		} else if cached != nil {
			e.logger.Debug("Verdict cache hit", zap.String("question_kind", req.Kind.String()))
			return *cached, nil
		}
	}

	// The shared judgment runs detached from any single caller, so one caller's
	// cancellation does not fail the others. Each caller still stops at its own ctx.
	ch := e.group.DoChan(key, func() (interface{}, error) {
		return e.judgeOnce(context.WithoutCancel(ctx), req)
	})
	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		return domain.Verdict{}, domain.NewJudgeUnavailableError(ctx.Err())
	}
	if res.Err != nil {
		return domain.Verdict{}, res.Err
	}
	verdict := res.Val.(domain.Verdict)
	if res.Shared {
		e.logger.Debug("Shared in-flight judgment", zap.String("question_kind", req.Kind.String()))
	}

	if e.cache != nil {
		if err := e.cache.Put(ctx, key, verdict); err != nil {
			e.logger.Warn("Failed to cache verdict", zap.Error(err))
		}
	}
	return verdict, nil
}

func (e *SemanticEvaluator) judgeOnce(ctx context.Context, req domain.EvaluationRequest) (domain.Verdict, error) {
	if e.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.Timeout)
		defer cancel()
	}

	rubric := RubricFor(req.Kind)
	prompt := rubric.BuildPrompt(req.QuestionText, req.ReferenceAnswer, req.UserAnswer)

	var raw string
	err := retry.Do(
		func() error {
			out, err := e.callJudge(ctx, rubric.System, prompt)
			if err != nil {
				return err
			}
			raw = out
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(e.cfg.MaxAttempts),
		retry.Delay(e.cfg.RetryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(error) bool { return ctx.Err() == nil }),
		retry.OnRetry(func(n uint, err error) {
			e.logger.Debug("Retrying judge call", zap.Uint("attempt", n+1), zap.Error(err))
		}),
	)
	if err != nil {
		return domain.Verdict{}, domain.NewJudgeUnavailableError(fmt.Errorf("%s rubric: %w", rubric.Name, err))
	}

	e.logger.Debug("Raw judge response received", zap.String("raw_response", raw))

	verdict, err := ParseVerdict(raw)
	if err != nil {
		return domain.Verdict{}, domain.NewMalformedVerdictError(err)
	}
	return verdict, nil
}

type judgeResult struct {
	out string
	err error
}

// callJudge returns when the judge answers or ctx ends, whichever comes first.
// A judge that ignores ctx is left to finish in the background.
func (e *SemanticEvaluator) callJudge(ctx context.Context, system, prompt string) (string, error) {
	done := make(chan judgeResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- judgeResult{err: fmt.Errorf("judge panicked: %v", r)}
			}
		}()
		out, err := e.judge.Judge(ctx, system, prompt)
		done <- judgeResult{out: out, err: err}
	}()

	select {
	case r := <-done:
		return r.out, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
