package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"ai-assess/internal/domain"
	"ai-assess/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// retryAfterSeconds is advertised on 503 responses. Judge outages and cancelled
// batches are transient.
const retryAfterSeconds = 5

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Status  int                    `json:"status"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ValidationErrorResponse represents validation error response
type ValidationErrorResponse struct {
	Code    string                   `json:"code"`
	Message string                   `json:"message"`
	Status  int                      `json:"status"`
	Errors  []domain.ValidationError `json:"errors"`
}

var statusByCode = map[domain.ErrorCode]int{
	domain.CodeNotFound:             http.StatusNotFound,
	domain.CodeRegistrationNotFound: http.StatusNotFound,

	domain.CodeInvalidInput:  http.StatusBadRequest,
	domain.CodeValidation:    http.StatusBadRequest,
	domain.CodeMissingField:  http.StatusBadRequest,
	domain.CodeInvalidFormat: http.StatusBadRequest,
	domain.CodeOutOfRange:    http.StatusBadRequest,

	domain.CodeJudgeUnavailable:    http.StatusServiceUnavailable,
	domain.CodeMalformedVerdict:    http.StatusServiceUnavailable,
	domain.CodeEvaluationCancelled: http.StatusServiceUnavailable,
}

// ErrorHandler is a centralized error handling middleware
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Named("http").With(
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
		)

		var validationErrs domain.ValidationErrors
		if errors.As(err, &validationErrs) {
			log.Warn("Request validation failed", zap.Int("error_count", len(validationErrs)))
			return c.Status(http.StatusBadRequest).JSON(ValidationErrorResponse{
				Code:    string(domain.CodeValidation),
				Message: "Request validation failed",
				Status:  http.StatusBadRequest,
				Errors:  validationErrs,
			})
		}

		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			status := mapDomainErrorToHTTPStatus(domainErr)
			fields := []zap.Field{
				zap.String("code", string(domainErr.Code)),
				zap.Int("status", status),
				zap.Error(domainErr.Cause),
			}
			if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
				log.Error(domainErr.Message, fields...)
			} else {
				log.Warn(domainErr.Message, fields...)
			}
			return writeError(c, ErrorResponse{
				Code:    string(domainErr.Code),
				Message: domainErr.Message,
				Status:  status,
				Details: domainErr.Context,
			})
		}

		// The client went away or the server deadline hit before grading finished.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			log.Warn("Request ended before evaluation completed", zap.Error(err))
			return writeError(c, ErrorResponse{
				Code:    string(domain.CodeEvaluationCancelled),
				Message: "Evaluation was cancelled before it completed",
				Status:  http.StatusServiceUnavailable,
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			log.Warn("Fiber error occurred", zap.Int("status", fiberErr.Code), zap.String("message", fiberErr.Message))
			return writeError(c, ErrorResponse{
				Code:    "HTTP_ERROR",
				Message: fiberErr.Message,
				Status:  fiberErr.Code,
			})
		}

		log.Error("Unknown error occurred", zap.Error(err))
		return writeError(c, ErrorResponse{
			Code:    string(domain.CodeInternal),
			Message: "Internal server error",
			Status:  http.StatusInternalServerError,
		})
	}
}

func writeError(c *fiber.Ctx, resp ErrorResponse) error {
	if resp.Status == http.StatusServiceUnavailable {
		c.Set(fiber.HeaderRetryAfter, strconv.Itoa(retryAfterSeconds))
	}
	if len(resp.Details) == 0 {
		resp.Details = nil
	}
	return c.Status(resp.Status).JSON(resp)
}

// mapDomainErrorToHTTPStatus maps domain errors to HTTP status codes
func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	if status, ok := statusByCode[err.Code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
