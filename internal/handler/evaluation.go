package handler

import (
	"ai-assess/internal/domain"
	"ai-assess/internal/dto"
	"ai-assess/internal/logger"
	"ai-assess/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// EvaluationHandler handles answer grading HTTP requests
type EvaluationHandler struct {
	evaluator domain.AnswerEvaluator
	reports   domain.ReportService
}

// NewEvaluationHandler creates a new EvaluationHandler instance
func NewEvaluationHandler(evaluator domain.AnswerEvaluator, reports domain.ReportService) *EvaluationHandler {
	return &EvaluationHandler{
		evaluator: evaluator,
		reports:   reports,
	}
}

// Evaluate godoc
// @Summary Grade one answer
// @Description Grades a candidate answer against the reference answer. An empty user_answer is graded as unattempted.
// @Tags evaluation
// @Accept json
// @Produce json
// @Param request body dto.EvaluateRequest true "Answer to grade"
// @Success 200 {object} dto.EvaluateResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /evaluate [post]
func (h *EvaluationHandler) Evaluate(c *fiber.Ctx) error {
	req := c.Locals(middleware.LocalEvaluateRequest).(dto.EvaluateRequest)
	domainReq := req.ToDomain()

	verdict := h.evaluator.Evaluate(c.UserContext(), domainReq)

	logger.Named("http").Debug("Evaluated answer",
		zap.String("question_kind", domainReq.Kind.String()),
		zap.String("method", string(verdict.Method)),
		zap.Bool("is_correct", verdict.IsCorrect))
	return c.JSON(dto.NewEvaluateResponse(domainReq.Kind, verdict))
}

// EvaluateBatch godoc
// @Summary Grade several answers
// @Description Grades up to 200 answers concurrently. Verdicts are returned in request order.
// @Tags evaluation
// @Accept json
// @Produce json
// @Param request body dto.BatchEvaluateRequest true "Answers to grade"
// @Success 200 {object} dto.BatchEvaluateResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /evaluate/batch [post]
func (h *EvaluationHandler) EvaluateBatch(c *fiber.Ctx) error {
	req := c.Locals(middleware.LocalBatchRequest).(dto.BatchEvaluateRequest)

	reqs := make([]domain.EvaluationRequest, len(req.Items))
	for i, item := range req.Items {
		reqs[i] = item.ToDomain()
	}

	result, err := h.reports.EvaluateBatch(c.UserContext(), reqs)
	if err != nil {
		return err
	}

	resp := dto.BatchEvaluateResponse{
		Verdicts: make([]dto.EvaluateResponse, len(result.Verdicts)),
		Correct:  result.Correct,
		Total:    result.Total,
		Warnings: result.Warnings,
	}
	for i, v := range result.Verdicts {
		resp.Verdicts[i] = dto.NewEvaluateResponse(reqs[i].Kind, v)
	}
	return c.JSON(resp)
}

// GetRegistrationReport godoc
// @Summary Score a registration
// @Description Grades every question of the registration's paper against the stored answers
// @Tags reports
// @Produce json
// @Param id path int true "Registration ID"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /registrations/{id}/report [get]
func (h *EvaluationHandler) GetRegistrationReport(c *fiber.Ctx) error {
	id := c.Locals(middleware.LocalRegistrationID).(int64)

	report, err := h.reports.ScoreRegistration(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewReportResponse(report))
}
