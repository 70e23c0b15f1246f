package usecase

import (
	"github.com/opinet-gateway/internal/domain"
	"github.com/opinet-gateway/internal/pkg/errors"
	"github.com/opinet-gateway/internal/pkg/projection"
	"github.com/opinet-gateway/internal/usecase/dto"
	"go.uber.org/zap"
)

// ConvertUseCase - двунаправленное преобразование координат. Оба
// трансформера построены при старте и разделяются всеми запросами
// только на чтение; сами преобразования - чистые функции без I/O.
type ConvertUseCase struct {
	toWGS84 *projection.Transformer
	toKATEC *projection.Transformer
	logger  *zap.Logger
}

func NewConvertUseCase(
	toWGS84 *projection.Transformer,
	toKATEC *projection.Transformer,
	logger *zap.Logger,
) *ConvertUseCase {
	return &ConvertUseCase{
		toWGS84: toWGS84,
		toKATEC: toKATEC,
		logger:  logger,
	}
}

// KATECToWGS84 переводит точку локальной сетки в долготу/широту
func (uc *ConvertUseCase) KATECToWGS84(req dto.ConvertKATECRequest) (*domain.GeoCoordinate, error) {
	lon, lat, err := uc.toWGS84.Transform(req.X, req.Y)
	if err != nil {
		uc.logger.Debug("KATEC to WGS84 conversion failed",
			zap.Float64("x", req.X),
			zap.Float64("y", req.Y),
			zap.Error(err))
		return nil, errors.NewConversionError(err)
	}

	return &domain.GeoCoordinate{Lon: lon, Lat: lat}, nil
}

// WGS84ToKATEC переводит долготу/широту в точку локальной сетки
func (uc *ConvertUseCase) WGS84ToKATEC(req dto.ConvertWGS84Request) (*domain.LocalCoordinate, error) {
	x, y, err := uc.toKATEC.Transform(req.Lon, req.Lat)
	if err != nil {
		uc.logger.Debug("WGS84 to KATEC conversion failed",
			zap.Float64("lon", req.Lon),
			zap.Float64("lat", req.Lat),
			zap.Error(err))
		return nil, errors.NewConversionError(err)
	}

	return &domain.LocalCoordinate{X: x, Y: y}, nil
}
