package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/opinet-gateway/internal/pkg/errors"
	"github.com/opinet-gateway/internal/pkg/projection"
	"github.com/opinet-gateway/internal/usecase"
	"github.com/opinet-gateway/internal/usecase/dto"
)

func newConvertUseCase(t *testing.T) *usecase.ConvertUseCase {
	t.Helper()

	katec, err := projection.ParseDefinition(projection.KATECDefinition)
	require.NoError(t, err)
	wgs84, err := projection.ParseDefinition(projection.WGS84Definition)
	require.NoError(t, err)

	toWGS84, err := projection.NewTransformer(katec, wgs84)
	require.NoError(t, err)
	toKATEC, err := projection.NewTransformer(wgs84, katec)
	require.NoError(t, err)

	return usecase.NewConvertUseCase(toWGS84, toKATEC, zap.NewNop())
}

func TestConvertUseCase_KATECToWGS84(t *testing.T) {
	uc := newConvertUseCase(t)

	t.Run("converts the projection origin", func(t *testing.T) {
		resp, err := uc.KATECToWGS84(dto.ConvertKATECRequest{X: 400000, Y: 600000})
		require.NoError(t, err)

		assert.InDelta(t, 128.0, resp.Lon, 0.02)
		assert.InDelta(t, 38.0, resp.Lat, 0.02)
	})

	t.Run("out of domain input becomes a conversion error", func(t *testing.T) {
		resp, err := uc.KATECToWGS84(dto.ConvertKATECRequest{X: 1e12, Y: 1e12})
		assert.Nil(t, resp)

		var appErr *errors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, errors.CodeConversionFailed, appErr.Code)
		assert.Equal(t, 400, appErr.StatusCode)
	})
}

func TestConvertUseCase_WGS84ToKATEC(t *testing.T) {
	uc := newConvertUseCase(t)

	t.Run("converts 128E 38N", func(t *testing.T) {
		resp, err := uc.WGS84ToKATEC(dto.ConvertWGS84Request{Lon: 128.0, Lat: 38.0})
		require.NoError(t, err)

		assert.InDelta(t, 400000.0, resp.X, 2000)
		assert.InDelta(t, 600000.0, resp.Y, 2000)
	})

	t.Run("swapped argument order fails", func(t *testing.T) {
		resp, err := uc.WGS84ToKATEC(dto.ConvertWGS84Request{Lon: 38.0, Lat: 128.0})
		assert.Nil(t, resp)

		var appErr *errors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, errors.CodeConversionFailed, appErr.Code)
	})
}
