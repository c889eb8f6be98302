package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/advisor/pkg/health"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct{ svc health.ReadinessUseCase }

func NewHealthHandler(svc health.ReadinessUseCase) *HealthHandler { return &HealthHandler{svc: svc} }

// Health: basic liveness check.
// @Summary Liveness probe
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]string
// @Router  /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
}

// Ready: programs loaded and, when configured, DB reachable.
// @Summary Readiness probe
// @Tags    health
// @Produce json
// @Success 200 {object} readyResponse
// @Failure 503 {object} readyResponse
// @Router  /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()
	checks, err := h.svc.Report(ctx)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(readyResponse{
			Status:  "not_ready",
			Details: err.Error(),
			Checks:  checks,
		})
	}
	return c.Status(fiber.StatusOK).JSON(readyResponse{Status: "ready", Checks: checks})
}

type readyResponse struct {
	Status  string          `json:"status"`
	Details string          `json:"details,omitempty"`
	Checks  []health.Status `json:"checks"`
}
