package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/inspection-map/internal/domain"
	"github.com/inspection-map/internal/domain/repository"
	"go.uber.org/zap"
)

type preferencesRepository struct {
	db *DB
}

func NewPreferencesRepository(db *DB) repository.PreferencesRepository {
	return &preferencesRepository{db: db}
}

// Get возвращает настройки клиента; отсутствие строки - тёмная тема выключена
func (r *preferencesRepository) Get(ctx context.Context, clientID string) (*domain.Preferences, error) {
	query := `
		SELECT client_id, dark_mode, updated_at
		FROM preferences
		WHERE client_id = $1
	`

	var prefs domain.Preferences
	err := r.db.GetContext(ctx, &prefs, query, clientID)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.Preferences{ClientID: clientID}, nil
	}
	if err != nil {
		r.db.logger.Error("Failed to get preferences", zap.String("client_id", clientID), zap.Error(err))
		return nil, fmt.Errorf("get preferences: %w", err)
	}

	return &prefs, nil
}

// SetDarkMode сохраняет флаг (upsert)
func (r *preferencesRepository) SetDarkMode(ctx context.Context, clientID string, enabled bool) (*domain.Preferences, error) {
	query := `
		INSERT INTO preferences (client_id, dark_mode, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (client_id) DO UPDATE
		SET dark_mode = EXCLUDED.dark_mode, updated_at = EXCLUDED.updated_at
		RETURNING client_id, dark_mode, updated_at
	`

	var prefs domain.Preferences
	if err := r.db.GetContext(ctx, &prefs, query, clientID, enabled, time.Now().UTC()); err != nil {
		r.db.logger.Error("Failed to save preferences", zap.String("client_id", clientID), zap.Error(err))
		return nil, fmt.Errorf("save preferences: %w", err)
	}

	r.db.logger.Debug("Preferences saved",
		zap.String("client_id", clientID),
		zap.Bool("dark_mode", enabled))
	return &prefs, nil
}
