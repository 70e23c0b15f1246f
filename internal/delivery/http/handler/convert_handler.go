package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/opinet-gateway/internal/pkg/utils"
	"github.com/opinet-gateway/internal/usecase"
	"github.com/opinet-gateway/internal/usecase/dto"
	"go.uber.org/zap"
)

// ConvertHandler - обработчик преобразования координат
type ConvertHandler struct {
	convertUC *usecase.ConvertUseCase
	logger    *zap.Logger
}

// NewConvertHandler - создание нового ConvertHandler
func NewConvertHandler(convertUC *usecase.ConvertUseCase, logger *zap.Logger) *ConvertHandler {
	return &ConvertHandler{
		convertUC: convertUC,
		logger:    logger,
	}
}

// KATECToWGS84 переводит координаты KATEC (x, y) в долготу/широту WGS84
func (h *ConvertHandler) KATECToWGS84(c *fiber.Ctx) error {
	x, err := requiredFloat(c, "x")
	if err != nil {
		return utils.SendError(c, err)
	}
	y, err := requiredFloat(c, "y")
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.convertUC.KATECToWGS84(dto.ConvertKATECRequest{X: x, Y: y})
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(result)
}

// WGS84ToKATEC переводит долготу/широту WGS84 в координаты KATEC (x, y)
func (h *ConvertHandler) WGS84ToKATEC(c *fiber.Ctx) error {
	lon, err := requiredFloat(c, "lon")
	if err != nil {
		return utils.SendError(c, err)
	}
	lat, err := requiredFloat(c, "lat")
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.convertUC.WGS84ToKATEC(dto.ConvertWGS84Request{Lon: lon, Lat: lat})
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(result)
}
