package repository

import (
	"context"
	"time"

	"github.com/inspection-map/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу, nil при промахе
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)

	// GetStats получает статистику для версии набора данных
	GetStats(ctx context.Context, version string) (*domain.Statistics, error)

	// SetStats сохраняет статистику для версии набора данных
	SetStats(ctx context.Context, version string, stats *domain.Statistics, ttl time.Duration) error

	// GetPosition получает закешированную геолокацию по IP
	GetPosition(ctx context.Context, ip string) (*domain.Position, error)

	// SetPosition сохраняет геолокацию по IP
	SetPosition(ctx context.Context, ip string, pos *domain.Position, ttl time.Duration) error
}
