package opinet

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/opinet-gateway/internal/config"
	"github.com/opinet-gateway/internal/domain"
	"github.com/opinet-gateway/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig(baseURL string) *config.OpinetConfig {
	return &config.OpinetConfig{
		BaseURL:        baseURL,
		APIKey:         "test_key",
		RequestTimeout: 5 * time.Second,
	}
}

func TestClient_NearbyStations(t *testing.T) {
	logger := zap.NewNop()

	t.Run("successful request", func(t *testing.T) {
		var gotPath string
		var gotQuery map[string]string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = map[string]string{}
			for k := range r.URL.Query() {
				gotQuery[k] = r.URL.Query().Get(k)
			}
			w.Header().Set("Content-Type", "text/xml")
			w.Write([]byte("<RESULT>ok</RESULT>"))
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL), logger)

		xml, err := client.NearbyStations(context.Background(), domain.StationQuery{
			X:           313000,
			Y:           552000,
			Radius:      5000,
			ProductCode: "B027",
		})
		require.NoError(t, err)

		// тело уходит как есть, без разбора XML
		assert.Equal(t, "<RESULT>ok</RESULT>", xml)

		assert.Equal(t, "/aroundAll.do", gotPath)
		assert.Equal(t, "test_key", gotQuery["code"])
		assert.Equal(t, "313000", gotQuery["x"])
		assert.Equal(t, "552000", gotQuery["y"])
		assert.Equal(t, "5000", gotQuery["radius"])
		assert.Equal(t, "B027", gotQuery["prodcd"])
		assert.Equal(t, "xml", gotQuery["out"])
	})

	t.Run("malformed 200 body passed through unvalidated", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not xml at all"))
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL), logger)

		xml, err := client.NearbyStations(context.Background(), domain.StationQuery{
			X: 313000, Y: 552000, Radius: 5000, ProductCode: "B027",
		})
		require.NoError(t, err)
		assert.Equal(t, "not xml at all", xml)
	})

	t.Run("upstream error status forwarded", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("upstream exploded"))
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL), logger)

		_, err := client.NearbyStations(context.Background(), domain.StationQuery{
			X: 313000, Y: 552000, Radius: 5000, ProductCode: "B027",
		})
		require.Error(t, err)

		var appErr *errors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, errors.CodeUpstreamError, appErr.Code)
		assert.Equal(t, http.StatusInternalServerError, appErr.StatusCode)
		assert.Equal(t, "upstream exploded", appErr.Message)
	})

	t.Run("unreachable upstream", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // закрываем сразу: соединение обязано провалиться

		client := NewClient(testConfig(server.URL), logger)

		_, err := client.NearbyStations(context.Background(), domain.StationQuery{
			X: 313000, Y: 552000, Radius: 5000, ProductCode: "B027",
		})
		require.Error(t, err)

		var appErr *errors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, errors.CodeUpstreamUnreachable, appErr.Code)
		assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
	})

	t.Run("cancelled context aborts the call", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL), logger)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := client.NearbyStations(ctx, domain.StationQuery{
			X: 313000, Y: 552000, Radius: 5000, ProductCode: "B027",
		})
		require.Error(t, err)

		var appErr *errors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, errors.CodeUpstreamUnreachable, appErr.Code)
	})
}

func TestClient_DetailByID(t *testing.T) {
	logger := zap.NewNop()

	t.Run("successful request", func(t *testing.T) {
		var gotPath string
		var gotQuery map[string]string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = map[string]string{}
			for k := range r.URL.Query() {
				gotQuery[k] = r.URL.Query().Get(k)
			}
			w.Write([]byte("<RESULT><OIL>detail</OIL></RESULT>"))
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL), logger)

		xml, err := client.DetailByID(context.Background(), domain.DetailQuery{ID: "A0000123"})
		require.NoError(t, err)

		assert.Equal(t, "<RESULT><OIL>detail</OIL></RESULT>", xml)
		assert.Equal(t, "/detailById.do", gotPath)
		assert.Equal(t, "test_key", gotQuery["code"])
		assert.Equal(t, "A0000123", gotQuery["id"])
		assert.Equal(t, "xml", gotQuery["out"])
	})

	t.Run("upstream error status forwarded", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte("no such station"))
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL), logger)

		_, err := client.DetailByID(context.Background(), domain.DetailQuery{ID: "A0000123"})
		require.Error(t, err)

		var appErr *errors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusNotFound, appErr.StatusCode)
		assert.Equal(t, "no such station", appErr.Message)
	})
}
