package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"ai-assess/internal/domain"
	"ai-assess/internal/logger"
	"ai-assess/internal/util"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const DefaultBatchConcurrency = 4

const skippedReason = "Question is missing its text or reference answer"

// reportServiceImpl implements domain.ReportService
type reportServiceImpl struct {
	repo        domain.ResponseRepository
	evaluator   domain.AnswerEvaluator
	concurrency int
	now         func() time.Time
}

// NewReportService creates a new instance of reportServiceImpl.
func NewReportService(repo domain.ResponseRepository, evaluator domain.AnswerEvaluator, concurrency int) domain.ReportService {
	if concurrency < 1 {
		concurrency = DefaultBatchConcurrency
	}
	return &reportServiceImpl{
		repo:        repo,
		evaluator:   evaluator,
		concurrency: concurrency,
		now:         time.Now,
	}
}

// ScoreRegistration grades every question of the registration's paper.
func (s *reportServiceImpl) ScoreRegistration(ctx context.Context, registrationID int64) (*domain.Report, error) {
	if s.repo == nil {
		return nil, domain.NewInternalError("response repository is not configured", nil)
	}

	reg, err := s.repo.FindRegistration(ctx, registrationID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load registration", err).
			WithContext("registration_id", registrationID)
	}
	if reg == nil {
		return nil, domain.NewRegistrationNotFoundError(registrationID)
	}

	items, err := s.repo.ListAnswerSheet(ctx, registrationID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load answer sheet", err).
			WithContext("registration_id", registrationID)
	}

	reqs := make([]domain.EvaluationRequest, len(items))
	for i, item := range items {
		reqs[i] = item.Request()
	}

	results, warnings, err := s.evaluateAll(ctx, reqs)
	if err != nil {
		return nil, err
	}
	for i := range results {
		results[i].QuestionID = items[i].QuestionID
	}

	report := &domain.Report{
		ID:             util.NewULID(),
		RegistrationID: reg.ID,
		Total:          len(results),
		Items:          results,
		Warnings:       warnings,
		GeneratedAt:    s.now().UTC(),
	}
	for _, r := range results {
		if r.Attempted {
			report.Attempted++
		}
		if r.Verdict.IsCorrect {
			report.Correct++
		}
	}
	report.ScorePercent = scorePercent(report.Correct, report.Total)

	logger.Named("report").Info("Registration scored",
		zap.Int64("registration_id", registrationID),
		zap.String("report_id", report.ID),
		zap.Int("total", report.Total),
		zap.Int("correct", report.Correct),
		zap.Int("warnings", len(report.Warnings)))
	return report, nil
}

// EvaluateBatch grades an ad-hoc list of requests. Invalid requests are reported as
// warnings and count as incorrect; they never abort the batch.
func (s *reportServiceImpl) EvaluateBatch(ctx context.Context, reqs []domain.EvaluationRequest) (*domain.BatchResult, error) {
	results, warnings, err := s.evaluateAll(ctx, reqs)
	if err != nil {
		return nil, err
	}

	out := &domain.BatchResult{
		Verdicts: make([]domain.Verdict, len(results)),
		Total:    len(results),
		Warnings: warnings,
	}
	for i, r := range results {
		out.Verdicts[i] = r.Verdict
		if r.Verdict.IsCorrect {
			out.Correct++
		}
	}
	return out, nil
}

// evaluateAll evaluates reqs concurrently. Results keep the input order.
func (s *reportServiceImpl) evaluateAll(ctx context.Context, reqs []domain.EvaluationRequest) ([]domain.ItemResult, []string, error) {
	results := make([]domain.ItemResult, len(reqs))

	var problems *multierror.Error

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, req := range reqs {
		i, req := i, req
		if req.Kind == "" {
			req.Kind = domain.KindShortAnswer
		}
		results[i].Kind = req.Kind
		results[i].Attempted = !req.IsUnattempted()

		if err := req.Validate(); err != nil {
			results[i].Skipped = true
			results[i].Verdict = domain.NewVerdict(false, 0, skippedReason, domain.MethodEmpty)
			for _, fieldErr := range flatten(err) {
				problems = multierror.Append(problems, fmt.Errorf("item %d: %w", i, fieldErr))
			}
			continue
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i].Verdict = s.evaluator.Evaluate(gctx, req)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, domain.NewEvaluationCancelledError(err)
	}

	var warnings []string
	if problems != nil {
		for _, e := range problems.Errors {
			warnings = append(warnings, e.Error())
		}
	}
	return results, warnings, nil
}

func scorePercent(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(correct)*10000/float64(total)) / 100
}

func flatten(err error) []error {
	var merr *multierror.Error
	if errors.As(err, &merr) {
		return merr.Errors
	}
	return []error{err}
}
