package source

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/inspection-map/internal/config"
	"github.com/inspection-map/internal/domain"
	"github.com/inspection-map/internal/domain/repository"
	"go.uber.org/zap"
)

// New выбирает источник по DATASET_URL: http(s) - HTTP, иначе локальный файл
func New(cfg *config.Config, logger *zap.Logger) repository.DatasetSource {
	if cfg.IsRemoteDataset() {
		return NewHTTPSource(cfg.Dataset.URL, cfg.Dataset.RequestTimeout, logger)
	}
	return NewFileSource(cfg.Dataset.URL, logger)
}

// decodeRestaurants разбирает JSON массив заведений
func decodeRestaurants(r io.Reader) ([]domain.Restaurant, error) {
	var restaurants []domain.Restaurant
	if err := json.NewDecoder(r).Decode(&restaurants); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}
	if restaurants == nil {
		restaurants = []domain.Restaurant{}
	}
	return restaurants, nil
}
