package repository

import (
	"context"

	"github.com/inspection-map/internal/domain"
)

// DatasetSource - источник статического JSON массива заведений
type DatasetSource interface {
	// Fetch загружает и разбирает весь набор данных
	Fetch(ctx context.Context) ([]domain.Restaurant, error)

	// Location возвращает URL или путь источника для журнала загрузок
	Location() string
}
