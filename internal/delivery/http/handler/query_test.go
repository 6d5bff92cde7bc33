package handler

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inspection-map/internal/domain"
	"github.com/inspection-map/internal/pkg/errors"
	"github.com/inspection-map/internal/usecase"
)

func TestParseAsOf(t *testing.T) {
	tests := []struct {
		raw     string
		want    time.Time
		wantErr bool
	}{
		{"2023-06", time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC), false},
		{"2023-06-17", time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC), false},
		{"June 2023", time.Time{}, true},
		{"2023-13", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseAsOf(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, errors.ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseViewState(t *testing.T) {
	now := time.Date(2024, time.September, 15, 10, 0, 0, 0, time.UTC)

	parse := func(t *testing.T, query string) (usecase.ViewState, error) {
		t.Helper()
		var (
			state usecase.ViewState
			err   error
		)
		app := fiber.New()
		app.Get("/", func(c *fiber.Ctx) error {
			state, err = parseViewState(c, now)
			return nil
		})
		resp, testErr := app.Test(httptest.NewRequest("GET", "/"+query, nil))
		require.NoError(t, testErr)
		resp.Body.Close()
		return state, err
	}

	t.Run("defaults", func(t *testing.T) {
		state, err := parse(t, "")
		require.NoError(t, err)
		assert.Equal(t, usecase.DefaultViewState(now), state)
	})

	t.Run("explicit values", func(t *testing.T) {
		state, err := parse(t, "?months=0&as_of=2022-03&mode=hazard&hazard=Low,Moderate&facility=Store&q=%20deli%20")
		require.NoError(t, err)
		assert.Equal(t, 0, state.Months)
		assert.Equal(t, time.Date(2022, time.March, 1, 0, 0, 0, 0, time.UTC), state.AsOf)
		assert.Equal(t, domain.ModeHazard, state.Mode)
		assert.Equal(t, usecase.HazardSet(domain.HazardLow, domain.HazardModerate), state.HazardRatings)
		assert.Equal(t, usecase.FacilitySet(domain.FacilityStore), state.FacilityTypes)
		assert.Equal(t, " deli ", state.Search)
	})

	t.Run("whitespace-only search is not collapsed", func(t *testing.T) {
		state, err := parse(t, "?q=%20%20")
		require.NoError(t, err)
		assert.Equal(t, "  ", state.Search)
	})

	t.Run("present but empty set", func(t *testing.T) {
		state, err := parse(t, "?facility=")
		require.NoError(t, err)
		assert.Empty(t, state.FacilityTypes)
		assert.Len(t, state.HazardRatings, len(domain.AllHazardRatings()))
	})

	t.Run("bad months", func(t *testing.T) {
		_, err := parse(t, "?months=abc")
		assert.ErrorIs(t, err, errors.ErrInvalidRequest)
	})

	t.Run("bad mode", func(t *testing.T) {
		_, err := parse(t, "?mode=heatmap")
		assert.ErrorIs(t, err, errors.ErrInvalidMode)
	})
}
