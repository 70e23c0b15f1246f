package usecase

import (
	"context"

	"github.com/opinet-gateway/internal/domain"
	"github.com/opinet-gateway/internal/domain/repository"
	"github.com/opinet-gateway/internal/usecase/dto"
	"go.uber.org/zap"
)

const (
	// DefaultRadius - радиус поиска АЗС в метрах
	DefaultRadius = 5000
	// DefaultProductCode - обычный бензин (B027)
	DefaultProductCode = "B027"
)

// StationUseCase - проксирование запросов к Opinet API. Ответ
// заворачивается в JSON-конверт без разбора XML.
type StationUseCase struct {
	stationRepo repository.StationRepository
	logger      *zap.Logger
}

func NewStationUseCase(
	stationRepo repository.StationRepository,
	logger *zap.Logger,
) *StationUseCase {
	return &StationUseCase{
		stationRepo: stationRepo,
		logger:      logger,
	}
}

// NearbyStations возвращает список АЗС вокруг точки KATEC
func (uc *StationUseCase) NearbyStations(
	ctx context.Context,
	req dto.NearbyStationsRequest,
) (*dto.XMLResponse, error) {
	// Set default values if not provided
	if req.Radius == 0 {
		req.Radius = DefaultRadius
	}
	if req.ProductCode == "" {
		req.ProductCode = DefaultProductCode
	}

	xml, err := uc.stationRepo.NearbyStations(ctx, domain.StationQuery{
		X:           req.X,
		Y:           req.Y,
		Radius:      req.Radius,
		ProductCode: req.ProductCode,
	})
	if err != nil {
		uc.logger.Error("Failed to fetch nearby stations",
			zap.Float64("x", req.X),
			zap.Float64("y", req.Y),
			zap.Error(err))
		return nil, err
	}

	return &dto.XMLResponse{XMLData: xml}, nil
}

// DetailByID возвращает детальную информацию об одной АЗС
func (uc *StationUseCase) DetailByID(
	ctx context.Context,
	req dto.StationDetailRequest,
) (*dto.XMLResponse, error) {
	xml, err := uc.stationRepo.DetailByID(ctx, domain.DetailQuery{ID: req.UID})
	if err != nil {
		uc.logger.Error("Failed to fetch station detail",
			zap.String("uid", req.UID),
			zap.Error(err))
		return nil, err
	}

	return &dto.XMLResponse{XMLData: xml}, nil
}
