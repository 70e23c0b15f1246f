package opinet

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/opinet-gateway/internal/config"
	"github.com/opinet-gateway/internal/domain"
	"github.com/opinet-gateway/internal/domain/repository"
	"github.com/opinet-gateway/internal/pkg/errors"
	"go.uber.org/zap"
)

const (
	nearbyPath = "/aroundAll.do"
	detailPath = "/detailById.do"

	// Opinet отвечает XML; ответ не парсится и уходит клиенту как есть
	outputFormat = "xml"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// NewClient создает новый клиент для Opinet API
func NewClient(cfg *config.OpinetConfig, logger *zap.Logger) repository.StationRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

// NearbyStations возвращает сырой XML со списком АЗС вокруг точки KATEC
func (c *client) NearbyStations(ctx context.Context, query domain.StationQuery) (string, error) {
	params := url.Values{}
	params.Set("x", strconv.FormatFloat(query.X, 'f', -1, 64))
	params.Set("y", strconv.FormatFloat(query.Y, 'f', -1, 64))
	params.Set("radius", strconv.Itoa(query.Radius))
	params.Set("prodcd", query.ProductCode)

	return c.get(ctx, nearbyPath, params)
}

// DetailByID возвращает сырой XML с детальной информацией об одной АЗС
func (c *client) DetailByID(ctx context.Context, query domain.DetailQuery) (string, error) {
	params := url.Values{}
	params.Set("id", query.ID)

	return c.get(ctx, detailPath, params)
}

// get выполняет ровно один исходящий GET-запрос: без ретраев, без кеша.
// Ключ и формат ответа подставляются здесь, тело возвращается как текст.
func (c *client) get(ctx context.Context, path string, params url.Values) (string, error) {
	params.Set("code", c.apiKey)
	params.Set("out", outputFormat)

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	c.logger.Debug("Calling Opinet API", zap.String("path", path))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to reach Opinet API", zap.Error(err))
		return "", errors.NewUpstreamUnreachable(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("Failed to read Opinet response", zap.Error(err))
		return "", errors.NewUpstreamUnreachable(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("Opinet API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return "", errors.NewUpstreamError(resp.StatusCode, string(body))
	}

	c.logger.Debug("Opinet API call successful",
		zap.String("path", path),
		zap.Int("body_bytes", len(body)))

	return string(body), nil
}
