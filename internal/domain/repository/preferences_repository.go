package repository

import (
	"context"

	"github.com/inspection-map/internal/domain"
)

// PreferencesRepository хранит настройки клиентов
type PreferencesRepository interface {
	// Get возвращает настройки; для неизвестного клиента - значения по умолчанию
	Get(ctx context.Context, clientID string) (*domain.Preferences, error)

	// SetDarkMode сохраняет флаг тёмной темы
	SetDarkMode(ctx context.Context, clientID string, enabled bool) (*domain.Preferences, error)
}
