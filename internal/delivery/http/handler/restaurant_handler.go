package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/inspection-map/internal/pkg/errors"
	"github.com/inspection-map/internal/pkg/utils"
	"github.com/inspection-map/internal/usecase"
	"go.uber.org/zap"
)

// RestaurantHandler - список, карта, карточка заведения и шкала времени
type RestaurantHandler struct {
	restaurantUC *usecase.RestaurantUseCase
	logger       *zap.Logger
}

// NewRestaurantHandler - создание нового RestaurantHandler
func NewRestaurantHandler(restaurantUC *usecase.RestaurantUseCase, logger *zap.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantUC: restaurantUC,
		logger:       logger,
	}
}

// List godoc
// @Summary Список заведений во временном окне
// @Description Проецирует заведения на окно нарушений и дату снимка рейтинга, затем применяет фильтры. Агрегаты считаются по всей проекции.
// @Tags Restaurants
// @Produce json
// @Param months query int false "Окно нарушений в месяцах, 0 - за всё время" default(12)
// @Param as_of query string false "Дата снимка рейтинга, YYYY-MM или YYYY-MM-DD"
// @Param mode query string false "violations или hazard" default(violations)
// @Param hazard query string false "Рейтинги через запятую; пустое значение - ни одного"
// @Param facility query string false "Типы заведений через запятую; пустое значение - ни одного"
// @Param q query string false "Поиск по названию или адресу"
// @Success 200 {object} utils.SuccessResponse{data=dto.RestaurantListResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/restaurants [get]
func (h *RestaurantHandler) List(c *fiber.Ctx) error {
	started := time.Now()

	state, err := parseViewState(c, started)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.restaurantUC.List(c.Context(), state)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:    result.Total,
		Geocoded: result.Geocoded,
		TimeMSec: float64(time.Since(started).Microseconds()) / 1000,
	})
}

// Map godoc
// @Summary GeoJSON маркеры заведений
// @Description Те же фильтры, что и у списка, плюс отбор заведений с координатами. Цвет и радиус маркера зависят от режима.
// @Tags Restaurants
// @Produce json
// @Param months query int false "Окно нарушений в месяцах" default(12)
// @Param as_of query string false "Дата снимка рейтинга"
// @Param mode query string false "violations или hazard"
// @Param hazard query string false "Рейтинги через запятую"
// @Param facility query string false "Типы заведений через запятую"
// @Param q query string false "Поиск по названию или адресу"
// @Success 200 {object} utils.SuccessResponse{data=usecase.FeatureCollection}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/restaurants/map [get]
func (h *RestaurantHandler) Map(c *fiber.Ctx) error {
	started := time.Now()

	state, err := parseViewState(c, started)
	if err != nil {
		return utils.SendError(c, err)
	}

	fc, total, geocoded := h.restaurantUC.Map(c.Context(), state)

	h.logger.Debug("Map features built",
		zap.Int("total", total),
		zap.Int("geocoded", geocoded),
		zap.String("mode", string(state.Mode)))

	return utils.SendSuccess(c, fc, &utils.Meta{
		Total:    total,
		Geocoded: geocoded,
		TimeMSec: float64(time.Since(started).Microseconds()) / 1000,
	})
}

// Detail godoc
// @Summary Карточка заведения
// @Description Полная история инспекций заведения по detail URL
// @Tags Restaurants
// @Produce json
// @Param url query string true "Detail URL заведения"
// @Success 200 {object} utils.SuccessResponse{data=dto.RestaurantDetailResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/restaurants/detail [get]
func (h *RestaurantHandler) Detail(c *fiber.Ctx) error {
	id := c.Query("url")
	if id == "" {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"url": "required"}))
	}

	result, err := h.restaurantUC.Detail(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Timeline godoc
// @Summary Шкала времени
// @Description Диапазон шкалы, текущая позиция, соседние месяцы и отметки лет
// @Tags Restaurants
// @Produce json
// @Param as_of query string false "Текущая позиция, YYYY-MM или YYYY-MM-DD"
// @Success 200 {object} utils.SuccessResponse{data=dto.TimelineResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/timeline [get]
func (h *RestaurantHandler) Timeline(c *fiber.Ctx) error {
	var asOf time.Time
	if raw := c.Query("as_of"); raw != "" {
		parsed, err := parseAsOf(raw)
		if err != nil {
			return utils.SendError(c, err)
		}
		asOf = parsed
	}

	return utils.SendSuccess(c, h.restaurantUC.Timeline(c.Context(), asOf), nil)
}
