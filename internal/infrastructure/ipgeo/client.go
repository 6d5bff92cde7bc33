package ipgeo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/inspection-map/internal/config"
	"github.com/inspection-map/internal/domain"
	"github.com/inspection-map/internal/domain/repository"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// lookupResponse - ответ провайдера в формате ip-api.com
type lookupResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// NewClient создает клиент IP геолокации. Без ProviderURL возвращает nil:
// геолокация в этом случае не поддерживается.
func NewClient(cfg *config.GeolocationConfig, logger *zap.Logger) repository.GeolocationProvider {
	if cfg.ProviderURL == "" {
		return nil
	}
	return &client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.ProviderURL, "/"),
		logger:     logger,
	}
}

// Locate определяет координаты по IP. Ошибки приводятся к domain.ErrLocation*.
func (c *client) Locate(ctx context.Context, ip string) (*domain.Position, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, ip)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(ctx, err) {
			c.logger.Warn("Geolocation request timed out", zap.String("ip", ip))
			return nil, fmt.Errorf("%w: %v", domain.ErrLocationTimeout, err)
		}
		c.logger.Error("Failed to execute geolocation request", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrLocationUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: provider status %d", domain.ErrLocationDenied, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error("Geolocation provider returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("%w: provider status %d", domain.ErrLocationUnavailable, resp.StatusCode)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrLocationUnavailable, err)
	}
	if body.Status != "" && body.Status != "success" {
		return nil, fmt.Errorf("%w: %s", domain.ErrLocationUnavailable, body.Message)
	}

	c.logger.Debug("Geolocation resolved",
		zap.String("ip", ip),
		zap.Float64("lat", body.Lat),
		zap.Float64("lng", body.Lon))

	return &domain.Position{Lat: body.Lat, Lng: body.Lon}, nil
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
