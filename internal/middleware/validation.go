package middleware

import (
	"ai-assess/internal/domain"
	"ai-assess/internal/dto"
	"ai-assess/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the validation middleware.
const (
	LocalEvaluateRequest = "validated_evaluate_request"
	LocalBatchRequest    = "validated_batch_request"
	LocalRegistrationID  = "validated_registration_id"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateEvaluateBody parses and validates a single evaluation request body.
func (vm *ValidationMiddleware) ValidateEvaluateBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.EvaluateRequest
		if err := c.BodyParser(&req); err != nil {
			return domain.NewInvalidInputError("Invalid request body")
		}
		if errors := vm.validator.ValidateEvaluateRequest(req); len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}
		c.Locals(LocalEvaluateRequest, req)
		return c.Next()
	}
}

// ValidateBatchBody parses and validates a batch evaluation request body.
func (vm *ValidationMiddleware) ValidateBatchBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.BatchEvaluateRequest
		if err := c.BodyParser(&req); err != nil {
			return domain.NewInvalidInputError("Invalid request body")
		}
		if errors := vm.validator.ValidateBatchRequest(req); len(errors) > 0 {
			return errors
		}
		c.Locals(LocalBatchRequest, req)
		return c.Next()
	}
}

// ValidateRegistrationID validates the :id path parameter.
func (vm *ValidationMiddleware) ValidateRegistrationID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, errors := vm.validator.ValidateRegistrationID(c.Params("id"))
		if len(errors) > 0 {
			return errors
		}
		c.Locals(LocalRegistrationID, id)
		return c.Next()
	}
}
