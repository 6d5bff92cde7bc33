package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inspection-map/internal/pkg/errors"
	"github.com/inspection-map/internal/pkg/utils"
	"github.com/inspection-map/internal/pkg/validator"
	"github.com/inspection-map/internal/usecase"
	"github.com/inspection-map/internal/usecase/dto"
	"go.uber.org/zap"
)

const recentLoadsLimit = 10

// DatasetHandler - состояние и перезагрузка набора данных
type DatasetHandler struct {
	datasetUC *usecase.DatasetUseCase
	logger    *zap.Logger
}

// NewDatasetHandler - создание нового DatasetHandler
func NewDatasetHandler(datasetUC *usecase.DatasetUseCase, logger *zap.Logger) *DatasetHandler {
	return &DatasetHandler{
		datasetUC: datasetUC,
		logger:    logger,
	}
}

// GetDataset godoc
// @Summary Состояние набора данных
// @Description Версия, время загрузки, ошибка последней загрузки и журнал загрузок
// @Tags Dataset
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.DatasetResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/dataset [get]
func (h *DatasetHandler) GetDataset(c *fiber.Ctx) error {
	loads, err := h.datasetUC.RecentLoads(c.Context(), recentLoadsLimit)
	if err != nil {
		h.logger.Warn("Failed to read dataset load journal", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.DatasetResponse{
		Status: h.datasetUC.Status(),
		Loads:  loads,
	}, nil)
}

// Reload godoc
// @Summary Перезагрузить набор данных
// @Description Синхронно загружает набор заново или, при async=true, ставит запрос в очередь воркера. Повторных попыток нет.
// @Tags Dataset
// @Accept json
// @Produce json
// @Param request body dto.DatasetReloadRequest false "Параметры перезагрузки"
// @Success 200 {object} utils.SuccessResponse{data=dto.DatasetReloadResponse}
// @Success 202 {object} utils.SuccessResponse{data=dto.DatasetReloadResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/dataset/reload [post]
func (h *DatasetHandler) Reload(c *fiber.Ctx) error {
	var req dto.DatasetReloadRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return utils.SendError(c, errors.ErrInvalidRequest)
		}
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	requestedBy := req.RequestedBy
	if requestedBy == "" {
		requestedBy = c.IP()
	}

	if req.Async {
		requestID, err := h.datasetUC.RequestReload(c.Context(), requestedBy)
		if err != nil {
			h.logger.Error("Failed to queue dataset reload", zap.Error(err))
			return utils.SendError(c, err)
		}
		c.Status(fiber.StatusAccepted)
		return utils.SendSuccess(c, dto.DatasetReloadResponse{RequestID: requestID, Queued: true}, nil)
	}

	status, err := h.datasetUC.Reload(c.Context(), "", requestedBy)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.DatasetReloadResponse{Status: status}, &utils.Meta{
		Total: status.Total,
	})
}
