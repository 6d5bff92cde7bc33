package usecase

import (
	"context"

	"github.com/inspection-map/internal/domain"
	"github.com/inspection-map/internal/domain/repository"
	"github.com/inspection-map/internal/pkg/errors"
	"go.uber.org/zap"
)

// PreferencesUseCase хранит тёмную тему клиента
type PreferencesUseCase struct {
	repo   repository.PreferencesRepository
	logger *zap.Logger
}

func NewPreferencesUseCase(repo repository.PreferencesRepository, logger *zap.Logger) *PreferencesUseCase {
	return &PreferencesUseCase{repo: repo, logger: logger}
}

func (uc *PreferencesUseCase) Get(ctx context.Context, clientID string) (*domain.Preferences, error) {
	prefs, err := uc.repo.Get(ctx, clientID)
	if err != nil {
		uc.logger.Error("Failed to load preferences", zap.String("client_id", clientID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return prefs, nil
}

func (uc *PreferencesUseCase) SetDarkMode(ctx context.Context, clientID string, enabled bool) (*domain.Preferences, error) {
	prefs, err := uc.repo.SetDarkMode(ctx, clientID, enabled)
	if err != nil {
		uc.logger.Error("Failed to save preferences", zap.String("client_id", clientID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return prefs, nil
}
