package usecase

import (
	"context"
	"time"

	"github.com/inspection-map/internal/domain"
	"github.com/inspection-map/internal/domain/repository"
	"go.uber.org/zap"
)

// StatsUseCase считает статистику набора данных с кешированием по версии
type StatsUseCase struct {
	datasets  DatasetProvider
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
}

// NewStatsUseCase создает новый экземпляр StatsUseCase
func NewStatsUseCase(
	datasets DatasetProvider,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *StatsUseCase {
	return &StatsUseCase{
		datasets:  datasets,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// GetStatistics возвращает статистику текущего снимка, используя кеш когда возможно.
// Ошибки кеша не прерывают запрос.
func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	snapshot := uc.datasets.Snapshot()

	// Пустой снимок без версии не кешируем
	if snapshot.Version == "" {
		stats := ComputeStatistics(snapshot.Restaurants)
		stats.ComputedAt = time.Now().UTC()
		return &stats, nil
	}

	cached, err := uc.cacheRepo.GetStats(ctx, snapshot.Version)
	if err == nil && cached != nil {
		uc.logger.Debug("Statistics fetched from cache", zap.String("version", snapshot.Version))
		return cached, nil
	}
	if err != nil {
		uc.logger.Warn("Failed to get stats from cache", zap.Error(err))
	}

	stats := ComputeStatistics(snapshot.Restaurants)
	stats.DataVersion = snapshot.Version
	stats.ComputedAt = time.Now().UTC()

	if err := uc.cacheRepo.SetStats(ctx, snapshot.Version, &stats, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache stats", zap.Error(err))
	} else {
		uc.logger.Debug("Statistics cached", zap.String("version", snapshot.Version))
	}

	return &stats, nil
}
