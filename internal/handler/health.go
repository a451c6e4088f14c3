package handler

import (
	"context"
	"time"

	"ai-assess/internal/domain"
	"ai-assess/internal/dto"

	"github.com/gofiber/fiber/v2"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandler reports service health
type HealthHandler struct {
	cache           domain.Cache
	judgeConfigured bool
}

// NewHealthHandler creates a health handler. cache may be nil when caching is disabled.
func NewHealthHandler(cache domain.Cache, judgeConfigured bool) *HealthHandler {
	return &HealthHandler{cache: cache, judgeConfigured: judgeConfigured}
}

// Health godoc
// @Summary Health check
// @Description Reports whether the service and its cache are reachable. A degraded cache does not fail the check.
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	resp := dto.HealthResponse{Status: "ok", Judge: "fallback_only"}
	if h.judgeConfigured {
		resp.Judge = "configured"
	}

	if h.cache != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
		defer cancel()
		resp.Cache = "ok"
		if err := h.cache.Ping(ctx); err != nil {
			resp.Cache = "unavailable"
		}
	}
	return c.JSON(resp)
}
