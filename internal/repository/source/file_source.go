package source

import (
	"context"
	"fmt"
	"os"

	"github.com/inspection-map/internal/domain"
	"github.com/inspection-map/internal/domain/repository"
	"go.uber.org/zap"
)

type fileSource struct {
	path   string
	logger *zap.Logger
}

// NewFileSource читает набор данных из локального JSON файла
func NewFileSource(path string, logger *zap.Logger) repository.DatasetSource {
	return &fileSource{path: path, logger: logger}
}

func (s *fileSource) Location() string {
	return s.path
}

func (s *fileSource) Fetch(ctx context.Context) ([]domain.Restaurant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}
	defer f.Close()

	restaurants, err := decodeRestaurants(f)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Dataset read from file",
		zap.String("path", s.path),
		zap.Int("records", len(restaurants)))
	return restaurants, nil
}
