package repository

import (
	"context"

	"github.com/inspection-map/internal/domain"
)

// GeolocationProvider определяет координаты по IP адресу клиента
type GeolocationProvider interface {
	Locate(ctx context.Context, ip string) (*domain.Position, error)
}
