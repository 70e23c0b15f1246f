package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/opinet-gateway/internal/pkg/errors"
	"github.com/opinet-gateway/internal/pkg/utils"
	"github.com/opinet-gateway/internal/pkg/validator"
	"github.com/opinet-gateway/internal/usecase"
	"github.com/opinet-gateway/internal/usecase/dto"
	"go.uber.org/zap"
)

// StationHandler - обработчик запросов к Opinet API
type StationHandler struct {
	stationUC *usecase.StationUseCase
	logger    *zap.Logger
}

// NewStationHandler - создание нового StationHandler
func NewStationHandler(stationUC *usecase.StationUseCase, logger *zap.Logger) *StationHandler {
	return &StationHandler{
		stationUC: stationUC,
		logger:    logger,
	}
}

// NearbyStations возвращает АЗС вокруг точки KATEC в заданном радиусе
func (h *StationHandler) NearbyStations(c *fiber.Ctx) error {
	x, err := requiredFloat(c, "x")
	if err != nil {
		return utils.SendError(c, err)
	}
	y, err := requiredFloat(c, "y")
	if err != nil {
		return utils.SendError(c, err)
	}

	radius, err := optionalInt(c, "radius", usecase.DefaultRadius)
	if err != nil {
		return utils.SendError(c, err)
	}

	req := dto.NearbyStationsRequest{
		X:           x,
		Y:           y,
		Radius:      radius,
		ProductCode: c.Query("prodcd", usecase.DefaultProductCode),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.NewValidationError(err))
	}

	result, err := h.stationUC.NearbyStations(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(result)
}

// DetailByID возвращает детальную информацию об АЗС по идентификатору
func (h *StationHandler) DetailByID(c *fiber.Ctx) error {
	uid, err := requiredString(c, "uid")
	if err != nil {
		return utils.SendError(c, err)
	}

	req := dto.StationDetailRequest{UID: uid}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.NewValidationError(err))
	}

	result, err := h.stationUC.DetailByID(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(result)
}
