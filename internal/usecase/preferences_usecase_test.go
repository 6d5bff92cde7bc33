package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/inspection-map/internal/domain"
	"github.com/inspection-map/internal/pkg/errors"
	"github.com/inspection-map/internal/usecase"
)

func TestPreferencesUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("get", func(t *testing.T) {
		repo := &MockPreferencesRepository{}
		uc := usecase.NewPreferencesUseCase(repo, zap.NewNop())
		repo.On("Get", ctx, "client-1").Return(&domain.Preferences{ClientID: "client-1", DarkMode: true}, nil).Once()

		prefs, err := uc.Get(ctx, "client-1")
		require.NoError(t, err)
		assert.True(t, prefs.DarkMode)
	})

	t.Run("set dark mode", func(t *testing.T) {
		repo := &MockPreferencesRepository{}
		uc := usecase.NewPreferencesUseCase(repo, zap.NewNop())
		repo.On("SetDarkMode", ctx, "client-1", false).Return(&domain.Preferences{ClientID: "client-1"}, nil).Once()

		prefs, err := uc.SetDarkMode(ctx, "client-1", false)
		require.NoError(t, err)
		assert.False(t, prefs.DarkMode)
		repo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := &MockPreferencesRepository{}
		uc := usecase.NewPreferencesUseCase(repo, zap.NewNop())
		repo.On("Get", ctx, "client-1").Return(nil, fmt.Errorf("db down")).Once()

		_, err := uc.Get(ctx, "client-1")
		assert.ErrorIs(t, err, errors.ErrDatabaseError)
	})
}
