package postgres

import (
	"context"
	"fmt"

	"github.com/inspection-map/internal/domain"
	"github.com/inspection-map/internal/domain/repository"
)

const maxRecentLoads = 100

type datasetLoadRepository struct {
	db *DB
}

func NewDatasetLoadRepository(db *DB) repository.DatasetLoadRepository {
	return &datasetLoadRepository{db: db}
}

func (r *datasetLoadRepository) Record(ctx context.Context, load *domain.DatasetLoad) error {
	query := `
		INSERT INTO dataset_loads (version, source, record_count, error, duration_ms)
		VALUES (:version, :source, :record_count, :error, :duration_ms)
		RETURNING id, created_at
	`

	rows, err := r.db.NamedQueryContext(ctx, query, load)
	if err != nil {
		return fmt.Errorf("record dataset load: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&load.ID, &load.CreatedAt); err != nil {
			return fmt.Errorf("scan dataset load: %w", err)
		}
	}
	return rows.Err()
}

func (r *datasetLoadRepository) Recent(ctx context.Context, limit int) ([]domain.DatasetLoad, error) {
	if limit <= 0 || limit > maxRecentLoads {
		limit = maxRecentLoads
	}

	query := `
		SELECT id, version, source, record_count, error, duration_ms, created_at
		FROM dataset_loads
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`

	loads := make([]domain.DatasetLoad, 0, limit)
	if err := r.db.SelectContext(ctx, &loads, query, limit); err != nil {
		return nil, fmt.Errorf("list dataset loads: %w", err)
	}
	return loads, nil
}
