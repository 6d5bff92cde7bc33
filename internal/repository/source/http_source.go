package source

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/inspection-map/internal/domain"
	"github.com/inspection-map/internal/domain/repository"
	"go.uber.org/zap"
)

type httpSource struct {
	httpClient *http.Client
	url        string
	logger     *zap.Logger
}

// NewHTTPSource загружает набор данных одним GET запросом, без повторов
func NewHTTPSource(url string, timeout time.Duration, logger *zap.Logger) repository.DatasetSource {
	return &httpSource{
		httpClient: &http.Client{Timeout: timeout},
		url:        url,
		logger:     logger,
	}
}

func (s *httpSource) Location() string {
	return s.url
}

func (s *httpSource) Fetch(ctx context.Context) ([]domain.Restaurant, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	s.logger.Debug("Fetching dataset", zap.String("url", s.url))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Error("Failed to execute dataset request", zap.String("url", s.url), zap.Error(err))
		return nil, fmt.Errorf("failed to load data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Error("Dataset request returned error",
			zap.String("url", s.url),
			zap.Int("status_code", resp.StatusCode))
		return nil, fmt.Errorf("failed to load data: %d", resp.StatusCode)
	}

	restaurants, err := decodeRestaurants(resp.Body)
	if err != nil {
		s.logger.Error("Failed to decode dataset", zap.String("url", s.url), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Dataset fetched",
		zap.String("url", s.url),
		zap.Int("records", len(restaurants)))
	return restaurants, nil
}
