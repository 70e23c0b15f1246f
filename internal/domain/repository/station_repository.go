package repository

import (
	"context"

	"github.com/opinet-gateway/internal/domain"
)

// StationRepository определяет методы для работы с Opinet API
type StationRepository interface {
	// NearbyStations возвращает сырой XML со списком АЗС вокруг точки KATEC
	NearbyStations(ctx context.Context, query domain.StationQuery) (string, error)

	// DetailByID возвращает сырой XML с детальной информацией об одной АЗС
	DetailByID(ctx context.Context, query domain.DetailQuery) (string, error)
}
