package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inspection-map/internal/pkg/errors"
	"github.com/inspection-map/internal/pkg/utils"
	"github.com/inspection-map/internal/usecase"
	"github.com/inspection-map/internal/usecase/dto"
	"go.uber.org/zap"
)

// PreferencesHandler - тёмная тема клиента
type PreferencesHandler struct {
	prefsUC *usecase.PreferencesUseCase
	logger  *zap.Logger
}

// NewPreferencesHandler - создание нового PreferencesHandler
func NewPreferencesHandler(prefsUC *usecase.PreferencesUseCase, logger *zap.Logger) *PreferencesHandler {
	return &PreferencesHandler{
		prefsUC: prefsUC,
		logger:  logger,
	}
}

// Get godoc
// @Summary Настройки клиента
// @Tags Preferences
// @Produce json
// @Param client_id path string true "ID клиента"
// @Success 200 {object} utils.SuccessResponse{data=domain.Preferences}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/preferences/{client_id} [get]
func (h *PreferencesHandler) Get(c *fiber.Ctx) error {
	clientID := c.Params("client_id")
	if clientID == "" {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	prefs, err := h.prefsUC.Get(c.Context(), clientID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, prefs, nil)
}

// Put godoc
// @Summary Сохранить настройки клиента
// @Tags Preferences
// @Accept json
// @Produce json
// @Param client_id path string true "ID клиента"
// @Param request body dto.PreferencesRequest true "Настройки"
// @Success 200 {object} utils.SuccessResponse{data=domain.Preferences}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/preferences/{client_id} [put]
func (h *PreferencesHandler) Put(c *fiber.Ctx) error {
	clientID := c.Params("client_id")
	if clientID == "" {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.PreferencesRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	prefs, err := h.prefsUC.SetDarkMode(c.Context(), clientID, *req.DarkMode)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, prefs, nil)
}
