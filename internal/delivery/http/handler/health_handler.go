package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HealthChecker is anything with a pingable backing connection.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler reports liveness of the service and its dependencies.
type HealthHandler struct {
	db     HealthChecker
	cache  HealthChecker
	logger *zap.Logger
}

func NewHealthHandler(db, cache HealthChecker, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

// Health godoc
// @Summary Service health
// @Description Checks the service and its postgres and redis dependencies
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := fiber.StatusOK
	checks := fiber.Map{}

	checks["postgres"] = h.check(ctx, h.db)
	checks["redis"] = h.check(ctx, h.cache)

	for name, state := range checks {
		if state != "ok" {
			h.logger.Warn("Health check failed", zap.String("dependency", name))
			status = fiber.StatusServiceUnavailable
		}
	}

	overall := "healthy"
	if status != fiber.StatusOK {
		overall = "degraded"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overall,
		"checks": checks,
		"time":   time.Now().UTC(),
	})
}

func (h *HealthHandler) check(ctx context.Context, dep HealthChecker) string {
	if dep == nil {
		return "disabled"
	}
	if err := dep.Health(ctx); err != nil {
		return err.Error()
	}
	return "ok"
}
