package repository

import (
	"context"

	"github.com/inspection-map/internal/domain"
)

// DatasetLoadRepository - журнал загрузок набора данных
type DatasetLoadRepository interface {
	// Record сохраняет результат попытки загрузки
	Record(ctx context.Context, load *domain.DatasetLoad) error

	// Recent возвращает последние записи, новые первыми
	Recent(ctx context.Context, limit int) ([]domain.DatasetLoad, error)
}
