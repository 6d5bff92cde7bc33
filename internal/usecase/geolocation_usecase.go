package usecase

import (
	"context"
	stdErrors "errors"
	"time"

	"github.com/inspection-map/internal/domain"
	"github.com/inspection-map/internal/domain/repository"
	"github.com/inspection-map/internal/pkg/errors"
	"go.uber.org/zap"
)

// GeolocationUseCase определяет позицию клиента по IP с кешированием
type GeolocationUseCase struct {
	provider  repository.GeolocationProvider
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
	timeout   time.Duration
}

// NewGeolocationUseCase создает GeolocationUseCase. provider == nil - геолокация не поддерживается.
func NewGeolocationUseCase(
	provider repository.GeolocationProvider,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
	timeout time.Duration,
) *GeolocationUseCase {
	return &GeolocationUseCase{
		provider:  provider,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
		timeout:   timeout,
	}
}

// Locate возвращает позицию по IP. Ошибки классифицируются: unsupported, denied, timeout, unavailable.
// Повторных попыток нет.
func (uc *GeolocationUseCase) Locate(ctx context.Context, clientIP string) (*domain.Position, error) {
	if uc.provider == nil {
		return nil, errors.ErrGeolocationUnsupported
	}

	cached, err := uc.cacheRepo.GetPosition(ctx, clientIP)
	if err == nil && cached != nil {
		uc.logger.Debug("Geolocation fetched from cache", zap.String("ip", clientIP))
		return cached, nil
	}
	if err != nil {
		uc.logger.Warn("Failed to get geolocation from cache", zap.Error(err))
	}

	lookupCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	pos, err := uc.provider.Locate(lookupCtx, clientIP)
	if err != nil {
		uc.logger.Warn("Geolocation lookup failed", zap.String("ip", clientIP), zap.Error(err))
		return nil, classifyGeolocationError(err)
	}

	if err := uc.cacheRepo.SetPosition(ctx, clientIP, pos, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache geolocation", zap.Error(err))
	}

	return pos, nil
}

func classifyGeolocationError(err error) *errors.AppError {
	switch {
	case stdErrors.Is(err, domain.ErrLocationDenied):
		return errors.ErrGeolocationDenied
	case stdErrors.Is(err, domain.ErrLocationTimeout), stdErrors.Is(err, context.DeadlineExceeded):
		return errors.ErrGeolocationTimeout
	default:
		return errors.ErrGeolocationUnavailable
	}
}
