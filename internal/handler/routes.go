package handler

import (
	"ai-assess/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes registers the API routes on app.
func SetupRoutes(app *fiber.App, evaluation *EvaluationHandler, health *HealthHandler) {
	vm := middleware.NewValidationMiddleware()

	app.Get("/health", health.Health)

	api := app.Group("/api")
	api.Post("/evaluate", vm.ValidateEvaluateBody(), evaluation.Evaluate)
	api.Post("/evaluate/batch", vm.ValidateBatchBody(), evaluation.EvaluateBatch)
	api.Get("/registrations/:id/report", vm.ValidateRegistrationID(), evaluation.GetRegistrationReport)
}
