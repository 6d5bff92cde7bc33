package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/inspection-map/internal/domain"
	"github.com/inspection-map/internal/pkg/errors"
	"github.com/inspection-map/internal/usecase"
)

func restaurantDataset() *staticDatasets {
	untyped := restaurant("c", nil, nil, domain.HazardModerate,
		domain.Inspection{Date: monthsAgo(30), Violations: violations(5)})
	untyped.FacilityType = ""

	return newStaticDatasets("v1",
		restaurant("a", ptrFloat64(49.28), ptrFloat64(-123.12), domain.HazardLow,
			domain.Inspection{Date: monthsAgo(3), InspectionType: "Routine", CriticalViolationsCount: 1, Violations: violations(2)},
			domain.Inspection{Date: monthsAgo(20), InspectionType: "Follow-Up", Violations: violations(4)}),
		restaurant("b", ptrFloat64(49.27), ptrFloat64(-123.10), domain.HazardModerate),
		untyped,
	)
}

func TestRestaurantUseCase_List(t *testing.T) {
	uc := usecase.NewRestaurantUseCase(restaurantDataset(), zap.NewNop())
	ctx := context.Background()

	t.Run("default window", func(t *testing.T) {
		resp, err := uc.List(ctx, usecase.DefaultViewState(time.Now()))
		require.NoError(t, err)

		assert.Equal(t, 3, resp.Total)
		assert.Equal(t, 2, resp.Geocoded)
		require.NotNil(t, resp.Cutoff)
		assert.Equal(t, domain.TimelineStats{
			TotalViolations:           2,
			CriticalViolations:        1,
			TotalInspections:          1,
			RestaurantsWithViolations: 1,
		}, resp.TimelineStats)
	})

	t.Run("all time window", func(t *testing.T) {
		state := usecase.DefaultViewState(time.Now())
		state.Months = 0

		resp, err := uc.List(ctx, state)
		require.NoError(t, err)
		assert.Nil(t, resp.Cutoff)
		assert.Equal(t, 11, resp.TimelineStats.TotalViolations)
		assert.Equal(t, 3, resp.TimelineStats.TotalInspections)
	})

	t.Run("aggregates ignore list filters", func(t *testing.T) {
		state := usecase.DefaultViewState(time.Now())
		state.FacilityTypes = usecase.FacilitySet(domain.FacilityRestaurant)
		state.HazardRatings = usecase.HazardSet(domain.HazardModerate)

		resp, err := uc.List(ctx, state)
		require.NoError(t, err)
		require.Len(t, resp.Restaurants, 1)
		assert.Equal(t, "Restaurant b", resp.Restaurants[0].Name)
		assert.Equal(t, 2, resp.TimelineStats.TotalViolations)
	})
}

func TestRestaurantUseCase_Map(t *testing.T) {
	uc := usecase.NewRestaurantUseCase(restaurantDataset(), zap.NewNop())

	fc, total, geocoded := uc.Map(context.Background(), usecase.DefaultViewState(time.Now()))
	assert.Equal(t, 3, total)
	assert.Equal(t, 2, geocoded)
	assert.Len(t, fc.Features, 2)
}

func TestRestaurantUseCase_Detail(t *testing.T) {
	uc := usecase.NewRestaurantUseCase(restaurantDataset(), zap.NewNop())
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		resp, err := uc.Detail(ctx, "https://inspections.example.com/a")
		require.NoError(t, err)
		require.Len(t, resp.Inspections, 2)
		assert.Equal(t, domain.InspectionRoutine, resp.Inspections[0].Category)
		assert.Equal(t, domain.InspectionFollowUp, resp.Inspections[1].Category)
		assert.NotNil(t, resp.Inspections[0].Date)
		assert.Equal(t, 6, resp.AllTime.Total)
	})

	t.Run("missing facility type resolves to Unknown", func(t *testing.T) {
		resp, err := uc.Detail(ctx, "https://inspections.example.com/c")
		require.NoError(t, err)
		assert.Equal(t, domain.FacilityUnknown, resp.FacilityType)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := uc.Detail(ctx, "https://inspections.example.com/zzz")
		assert.ErrorIs(t, err, errors.ErrRestaurantNotFound)
	})
}

func TestRestaurantUseCase_Timeline(t *testing.T) {
	uc := usecase.NewRestaurantUseCase(restaurantDataset(), zap.NewNop())

	t.Run("defaults to current month", func(t *testing.T) {
		resp := uc.Timeline(context.Background(), time.Time{})
		assert.Equal(t, domain.StartOfMonth(time.Now()), resp.Current)
		assert.Nil(t, resp.Next)
		assert.NotNil(t, resp.Previous)
		assert.Equal(t, usecase.PlaySpeedsMS, resp.PlaySpeedsMS)
	})

	t.Run("snaps as of to month start", func(t *testing.T) {
		asOf := time.Now().AddDate(0, -6, 0)
		resp := uc.Timeline(context.Background(), asOf)
		assert.Equal(t, domain.StartOfMonth(asOf), resp.Current)
		assert.NotNil(t, resp.Next)
		assert.Greater(t, resp.Progress, 0.0)
		assert.Less(t, resp.Progress, 100.0)
	})
}

func TestRestaurantUseCase_DetailBeforeLoad(t *testing.T) {
	uc := usecase.NewRestaurantUseCase(newStaticDatasets(""), zap.NewNop())

	_, err := uc.Detail(context.Background(), "https://inspections.example.com/a")
	assert.ErrorIs(t, err, errors.ErrDatasetNotLoaded)
}
