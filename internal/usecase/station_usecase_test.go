package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/opinet-gateway/internal/domain"
	"github.com/opinet-gateway/internal/pkg/errors"
	"github.com/opinet-gateway/internal/usecase"
	"github.com/opinet-gateway/internal/usecase/dto"
)

type MockStationRepository struct {
	mock.Mock
}

func (m *MockStationRepository) NearbyStations(ctx context.Context, query domain.StationQuery) (string, error) {
	args := m.Called(ctx, query)
	return args.String(0), args.Error(1)
}

func (m *MockStationRepository) DetailByID(ctx context.Context, query domain.DetailQuery) (string, error) {
	args := m.Called(ctx, query)
	return args.String(0), args.Error(1)
}

func TestStationUseCase_NearbyStations(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("wraps raw xml in the envelope", func(t *testing.T) {
		mockRepo := &MockStationRepository{}
		uc := usecase.NewStationUseCase(mockRepo, logger)

		mockRepo.On("NearbyStations", ctx, domain.StationQuery{
			X:           313000,
			Y:           552000,
			Radius:      3000,
			ProductCode: "D047",
		}).Return("<RESULT>ok</RESULT>", nil)

		resp, err := uc.NearbyStations(ctx, dto.NearbyStationsRequest{
			X:           313000,
			Y:           552000,
			Radius:      3000,
			ProductCode: "D047",
		})

		assert.NoError(t, err)
		assert.Equal(t, "<RESULT>ok</RESULT>", resp.XMLData)
		mockRepo.AssertExpectations(t)
	})

	t.Run("applies default radius and product code", func(t *testing.T) {
		mockRepo := &MockStationRepository{}
		uc := usecase.NewStationUseCase(mockRepo, logger)

		mockRepo.On("NearbyStations", ctx, domain.StationQuery{
			X:           313000,
			Y:           552000,
			Radius:      5000,
			ProductCode: "B027",
		}).Return("<RESULT/>", nil)

		_, err := uc.NearbyStations(ctx, dto.NearbyStationsRequest{
			X: 313000,
			Y: 552000,
		})

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository error is returned as is", func(t *testing.T) {
		mockRepo := &MockStationRepository{}
		uc := usecase.NewStationUseCase(mockRepo, logger)

		upstreamErr := errors.NewUpstreamError(http.StatusBadGateway, "bad gateway")
		mockRepo.On("NearbyStations", ctx, mock.Anything).Return("", upstreamErr)

		resp, err := uc.NearbyStations(ctx, dto.NearbyStationsRequest{X: 1, Y: 2})

		assert.Nil(t, resp)
		assert.Equal(t, upstreamErr, err)
	})
}

func TestStationUseCase_DetailByID(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("wraps raw xml in the envelope", func(t *testing.T) {
		mockRepo := &MockStationRepository{}
		uc := usecase.NewStationUseCase(mockRepo, logger)

		mockRepo.On("DetailByID", ctx, domain.DetailQuery{ID: "A0000123"}).Return("<RESULT>detail</RESULT>", nil)

		resp, err := uc.DetailByID(ctx, dto.StationDetailRequest{UID: "A0000123"})

		assert.NoError(t, err)
		assert.Equal(t, "<RESULT>detail</RESULT>", resp.XMLData)
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository error is returned as is", func(t *testing.T) {
		mockRepo := &MockStationRepository{}
		uc := usecase.NewStationUseCase(mockRepo, logger)

		unreachable := errors.NewUpstreamUnreachable(assert.AnError)
		mockRepo.On("DetailByID", ctx, domain.DetailQuery{ID: "A0000123"}).Return("", unreachable)

		resp, err := uc.DetailByID(ctx, dto.StationDetailRequest{UID: "A0000123"})

		assert.Nil(t, resp)
		assert.Equal(t, unreachable, err)
	})
}
