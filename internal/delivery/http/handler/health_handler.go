package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/inspection-map/internal/usecase"
	"github.com/inspection-map/internal/usecase/dto"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// HealthChecker - зависимость, способная сообщить о своём состоянии
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler проверяет зависимости сервиса
type HealthHandler struct {
	datasets usecase.DatasetProvider
	checks   map[string]HealthChecker
	logger   *zap.Logger
}

// NewHealthHandler - создание нового HealthHandler. Пустые проверки пропускаются.
func NewHealthHandler(datasets usecase.DatasetProvider, checks map[string]HealthChecker, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		datasets: datasets,
		checks:   checks,
		logger:   logger,
	}
}

// Health godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), healthCheckTimeout)
	defer cancel()

	resp := dto.HealthResponse{
		Status:   "healthy",
		Services: make(map[string]string, len(h.checks)),
		Dataset:  h.datasets.Snapshot().Version,
	}

	for name, check := range h.checks {
		if check == nil {
			continue
		}
		if err := check.Health(ctx); err != nil {
			h.logger.Warn("Health check failed", zap.String("service", name), zap.Error(err))
			resp.Services[name] = "unhealthy"
			resp.Status = "degraded"
			continue
		}
		resp.Services[name] = "healthy"
	}

	if resp.Status != "healthy" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	return c.JSON(resp)
}
