package handler

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/inspection-map/internal/domain"
	"github.com/inspection-map/internal/pkg/errors"
	"github.com/inspection-map/internal/pkg/utils"
	"github.com/inspection-map/internal/pkg/validator"
	"github.com/inspection-map/internal/usecase"
	"github.com/inspection-map/internal/usecase/dto"
	"go.uber.org/zap"
)

// RouletteHandler - HTTP слой сессий рулетки
type RouletteHandler struct {
	rouletteUC *usecase.RouletteUseCase
	logger     *zap.Logger
}

// NewRouletteHandler - создание нового RouletteHandler
func NewRouletteHandler(rouletteUC *usecase.RouletteUseCase, logger *zap.Logger) *RouletteHandler {
	return &RouletteHandler{
		rouletteUC: rouletteUC,
		logger:     logger,
	}
}

// parseBody разбирает и валидирует тело запроса
func parseBody(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"body": "invalid JSON"})
	}
	return validator.Validate(req)
}

func (h *RouletteHandler) respond(c *fiber.Ctx, session *dto.RouletteSessionResponse, err error) error {
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, session, &utils.Meta{Total: session.EligibleCount})
}

// Create godoc
// @Summary Создать сессию рулетки
// @Description Сессия с настройками по умолчанию и заполненным колесом
// @Tags Roulette
// @Produce json
// @Success 201 {object} utils.SuccessResponse{data=dto.RouletteSessionResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/roulette/sessions [post]
func (h *RouletteHandler) Create(c *fiber.Ctx) error {
	session, err := h.rouletteUC.Create(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	c.Status(fiber.StatusCreated)
	return utils.SendSuccess(c, session, &utils.Meta{Total: session.EligibleCount})
}

// Get godoc
// @Summary Состояние сессии рулетки
// @Tags Roulette
// @Produce json
// @Param id path string true "ID сессии"
// @Success 200 {object} utils.SuccessResponse{data=dto.RouletteSessionResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/roulette/sessions/{id} [get]
func (h *RouletteHandler) Get(c *fiber.Ctx) error {
	session, err := h.rouletteUC.Get(c.Context(), c.Params("id"))
	return h.respond(c, session, err)
}

// UpdateFilters godoc
// @Summary Обновить фильтры рулетки
// @Description Частичное обновление; в покое колесо перетасовывается
// @Tags Roulette
// @Accept json
// @Produce json
// @Param id path string true "ID сессии"
// @Param request body dto.UpdateRouletteFiltersRequest true "Фильтры"
// @Success 200 {object} utils.SuccessResponse{data=dto.RouletteSessionResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/roulette/sessions/{id}/filters [patch]
func (h *RouletteHandler) UpdateFilters(c *fiber.Ctx) error {
	var req dto.UpdateRouletteFiltersRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	session, err := h.rouletteUC.UpdateFilters(c.Context(), c.Params("id"), req)
	return h.respond(c, session, err)
}

// SetManualSource godoc
// @Summary Исходная точка кликом по карте
// @Tags Roulette
// @Accept json
// @Produce json
// @Param id path string true "ID сессии"
// @Param request body dto.SourceLocationRequest true "Координаты"
// @Success 200 {object} utils.SuccessResponse{data=dto.RouletteSessionResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/roulette/sessions/{id}/source/manual [put]
func (h *RouletteHandler) SetManualSource(c *fiber.Ctx) error {
	var req dto.SourceLocationRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	session, err := h.rouletteUC.SetManualSource(c.Context(), c.Params("id"), req.Lat, req.Lng)
	return h.respond(c, session, err)
}

// SetGeolocationSource godoc
// @Summary Исходная точка по геолокации
// @Description Координаты браузера, либо позиция по IP клиента если их нет
// @Tags Roulette
// @Accept json
// @Produce json
// @Param id path string true "ID сессии"
// @Param request body dto.GeolocationSourceRequest false "Координаты браузера"
// @Success 200 {object} utils.SuccessResponse{data=dto.RouletteSessionResponse}
// @Failure 403 {object} utils.ErrorResponse
// @Failure 501 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Failure 504 {object} utils.ErrorResponse
// @Router /api/v1/roulette/sessions/{id}/source/geolocation [put]
func (h *RouletteHandler) SetGeolocationSource(c *fiber.Ctx) error {
	var req dto.GeolocationSourceRequest
	if len(c.Body()) > 0 {
		if err := parseBody(c, &req); err != nil {
			return utils.SendError(c, err)
		}
	}

	session, err := h.rouletteUC.SetGeolocationSource(c.Context(), c.Params("id"), req, c.IP())
	if err != nil {
		h.logger.Debug("Geolocation source failed", zap.String("session_id", c.Params("id")), zap.Error(err))
	}
	return h.respond(c, session, err)
}

// ClearSource godoc
// @Summary Убрать исходную точку
// @Tags Roulette
// @Produce json
// @Param id path string true "ID сессии"
// @Success 200 {object} utils.SuccessResponse{data=dto.RouletteSessionResponse}
// @Router /api/v1/roulette/sessions/{id}/source [delete]
func (h *RouletteHandler) ClearSource(c *fiber.Ctx) error {
	session, err := h.rouletteUC.ClearSource(c.Context(), c.Params("id"))
	return h.respond(c, session, err)
}

// ToggleHazardExclusion godoc
// @Summary Исключить рейтинг или вернуть его
// @Tags Roulette
// @Produce json
// @Param id path string true "ID сессии"
// @Param rating path string true "Рейтинг"
// @Success 200 {object} utils.SuccessResponse{data=dto.RouletteSessionResponse}
// @Router /api/v1/roulette/sessions/{id}/hazard-exclusions/{rating}/toggle [post]
func (h *RouletteHandler) ToggleHazardExclusion(c *fiber.Ctx) error {
	rating, err := url.PathUnescape(c.Params("rating"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	session, err := h.rouletteUC.ToggleHazardExclusion(c.Context(), c.Params("id"), domain.HazardRating(rating))
	return h.respond(c, session, err)
}

// SetWheelSize godoc
// @Summary Размер колеса
// @Description 4, 6, 8, 10, 65 или 0 (все подходящие)
// @Tags Roulette
// @Accept json
// @Produce json
// @Param id path string true "ID сессии"
// @Param request body dto.WheelSizeRequest true "Размер"
// @Success 200 {object} utils.SuccessResponse{data=dto.RouletteSessionResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/roulette/sessions/{id}/wheel-size [put]
func (h *RouletteHandler) SetWheelSize(c *fiber.Ctx) error {
	var req dto.WheelSizeRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	session, err := h.rouletteUC.SetWheelSize(c.Context(), c.Params("id"), *req.Size)
	return h.respond(c, session, err)
}

// SetSpinnerMode godoc
// @Summary Колесо или слот-машина
// @Tags Roulette
// @Accept json
// @Produce json
// @Param id path string true "ID сессии"
// @Param request body dto.SpinnerModeRequest true "Режим"
// @Success 200 {object} utils.SuccessResponse{data=dto.RouletteSessionResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/roulette/sessions/{id}/mode [put]
func (h *RouletteHandler) SetSpinnerMode(c *fiber.Ctx) error {
	var req dto.SpinnerModeRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	session, err := h.rouletteUC.SetSpinnerMode(c.Context(), c.Params("id"), domain.SpinnerMode(req.Mode))
	return h.respond(c, session, err)
}

// Shuffle godoc
// @Summary Перетасовать колесо
// @Tags Roulette
// @Produce json
// @Param id path string true "ID сессии"
// @Success 200 {object} utils.SuccessResponse{data=dto.RouletteSessionResponse}
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/roulette/sessions/{id}/shuffle [post]
func (h *RouletteHandler) Shuffle(c *fiber.Ctx) error {
	session, err := h.rouletteUC.Shuffle(c.Context(), c.Params("id"))
	return h.respond(c, session, err)
}

// Spin godoc
// @Summary Вращение
// @Description Выбирает победителя и возвращает план анимации. При пустом пуле spun=false.
// @Tags Roulette
// @Produce json
// @Param id path string true "ID сессии"
// @Success 200 {object} utils.SuccessResponse{data=usecase.SpinResult}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/roulette/sessions/{id}/spin [post]
func (h *RouletteHandler) Spin(c *fiber.Ctx) error {
	result, err := h.rouletteUC.Spin(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Session.EligibleCount})
}

// CompleteSpin godoc
// @Summary Анимация завершена
// @Tags Roulette
// @Produce json
// @Param id path string true "ID сессии"
// @Success 200 {object} utils.SuccessResponse{data=dto.RouletteSessionResponse}
// @Router /api/v1/roulette/sessions/{id}/spin/complete [post]
func (h *RouletteHandler) CompleteSpin(c *fiber.Ctx) error {
	session, err := h.rouletteUC.CompleteSpin(c.Context(), c.Params("id"))
	return h.respond(c, session, err)
}

// Reset godoc
// @Summary Сбросить победителя
// @Tags Roulette
// @Produce json
// @Param id path string true "ID сессии"
// @Success 200 {object} utils.SuccessResponse{data=dto.RouletteSessionResponse}
// @Router /api/v1/roulette/sessions/{id}/reset [post]
func (h *RouletteHandler) Reset(c *fiber.Ctx) error {
	session, err := h.rouletteUC.Reset(c.Context(), c.Params("id"))
	return h.respond(c, session, err)
}

// Close godoc
// @Summary Закрыть рулетку
// @Description Возвращает все настройки по умолчанию
// @Tags Roulette
// @Produce json
// @Param id path string true "ID сессии"
// @Success 200 {object} utils.SuccessResponse{data=dto.RouletteSessionResponse}
// @Router /api/v1/roulette/sessions/{id}/close [post]
func (h *RouletteHandler) Close(c *fiber.Ctx) error {
	session, err := h.rouletteUC.Close(c.Context(), c.Params("id"))
	return h.respond(c, session, err)
}
