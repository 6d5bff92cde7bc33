package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inspection-map/internal/pkg/utils"
	"github.com/inspection-map/internal/usecase"
	"go.uber.org/zap"
)

// GeolocationHandler - позиция клиента по IP
type GeolocationHandler struct {
	geoUC  *usecase.GeolocationUseCase
	logger *zap.Logger
}

// NewGeolocationHandler - создание нового GeolocationHandler
func NewGeolocationHandler(geoUC *usecase.GeolocationUseCase, logger *zap.Logger) *GeolocationHandler {
	return &GeolocationHandler{
		geoUC:  geoUC,
		logger: logger,
	}
}

// Locate godoc
// @Summary Позиция клиента
// @Description Определяет координаты по IP. Результат кешируется на 5 минут, повторных попыток нет.
// @Tags Geolocation
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.Position}
// @Failure 403 {object} utils.ErrorResponse
// @Failure 501 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Failure 504 {object} utils.ErrorResponse
// @Router /api/v1/geolocation [get]
func (h *GeolocationHandler) Locate(c *fiber.Ctx) error {
	pos, err := h.geoUC.Locate(c.Context(), c.IP())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, pos, nil)
}
