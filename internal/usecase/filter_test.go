package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/inspection-map/internal/domain"
	"github.com/inspection-map/internal/usecase"
)

func projectAll(restaurants []domain.Restaurant, state usecase.ViewState) []domain.RestaurantWithStats {
	return usecase.Project(restaurants, state.Window(testNow))
}

func TestDefaultViewState(t *testing.T) {
	state := usecase.DefaultViewState(testNow)

	assert.Equal(t, domain.ModeViolations, state.Mode)
	assert.Equal(t, usecase.DefaultTimelineMonths, state.Months)
	assert.Equal(t, time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC), state.AsOf)
	assert.Empty(t, state.Search)
	for _, r := range domain.AllHazardRatings() {
		assert.True(t, state.HazardRatings[r])
	}
	for _, f := range domain.AllFacilityTypes() {
		assert.True(t, state.FacilityTypes[f])
	}
}

func TestDefaultViewState_AsOfInUTC(t *testing.T) {
	// 05:00 1 ноября в UTC+10 - это ещё 31 октября по UTC
	local := time.Date(2024, time.November, 1, 5, 0, 0, 0, time.FixedZone("UTC+10", 10*60*60))

	state := usecase.DefaultViewState(local)

	assert.Equal(t, time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC), state.AsOf)
	assert.Equal(t, time.UTC, state.AsOf.Location())
}

func TestApplyFilters(t *testing.T) {
	store := restaurant("store", nil, nil, domain.HazardLow)
	store.FacilityType = domain.FacilityStore
	untyped := restaurant("untyped", nil, nil, domain.HazardLow)
	untyped.FacilityType = ""
	pizza := restaurant("pizza", nil, nil, domain.HazardModerate)
	pizza.Name = "Mario's PIZZA"
	pizza.Address = "1 Harbour Rd"
	full := "Hidden Lane, Pizzaville"
	pizza.FullAddress = &full

	all := []domain.Restaurant{store, untyped, pizza}

	t.Run("default state keeps everything", func(t *testing.T) {
		state := usecase.DefaultViewState(testNow)
		assert.Len(t, usecase.ApplyFilters(projectAll(all, state), state), 3)
	})

	t.Run("facility filter excludes missing type", func(t *testing.T) {
		state := usecase.DefaultViewState(testNow)
		state.FacilityTypes = usecase.FacilitySet(domain.FacilityRestaurant)

		filtered := usecase.ApplyFilters(projectAll(all, state), state)
		assert.Len(t, filtered, 1)
		assert.Equal(t, pizza.ID(), filtered[0].ID())
	})

	t.Run("empty hazard set excludes everything", func(t *testing.T) {
		state := usecase.DefaultViewState(testNow)
		state.HazardRatings = usecase.HazardSet()
		assert.Empty(t, usecase.ApplyFilters(projectAll(all, state), state))
	})

	t.Run("search is case insensitive on name or address", func(t *testing.T) {
		state := usecase.DefaultViewState(testNow)

		state.Search = "pizza"
		assert.Len(t, usecase.ApplyFilters(projectAll(all, state), state), 1)

		state.Search = "HARBOUR"
		assert.Len(t, usecase.ApplyFilters(projectAll(all, state), state), 1)
	})

	t.Run("search ignores full address", func(t *testing.T) {
		state := usecase.DefaultViewState(testNow)
		state.Search = "hidden lane"
		assert.Empty(t, usecase.ApplyFilters(projectAll(all, state), state))
	})

	t.Run("predicates are combined", func(t *testing.T) {
		state := usecase.DefaultViewState(testNow)
		state.Search = "pizza"
		state.HazardRatings = usecase.HazardSet(domain.HazardLow)
		assert.Empty(t, usecase.ApplyFilters(projectAll(all, state), state))
	})
}

func TestApplyFilters_ModeSwitchesHazardField(t *testing.T) {
	// Рейтинг сейчас Low, но на начало 2023 года последняя инспекция была Moderate
	r := restaurant("a", nil, nil, domain.HazardLow,
		domain.Inspection{Date: "10-Jun-2022", HazardRating: domain.HazardModerate},
		domain.Inspection{Date: "18-Mar-2024", HazardRating: domain.HazardLow},
	)
	all := []domain.Restaurant{r}

	state := usecase.DefaultViewState(testNow)
	state.AsOf = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	state.HazardRatings = usecase.HazardSet(domain.HazardModerate)

	state.Mode = domain.ModeViolations
	assert.Empty(t, usecase.ApplyFilters(projectAll(all, state), state))

	state.Mode = domain.ModeHazard
	assert.Len(t, usecase.ApplyFilters(projectAll(all, state), state), 1)
}

func TestGeocoded(t *testing.T) {
	zero := 0.0
	all := []domain.Restaurant{
		restaurant("both", ptrFloat64(49.28), ptrFloat64(-123.12), domain.HazardLow),
		restaurant("zero", &zero, &zero, domain.HazardLow),
		restaurant("lat-only", ptrFloat64(49.28), nil, domain.HazardLow),
		restaurant("none", nil, nil, domain.HazardLow),
	}

	state := usecase.DefaultViewState(testNow)
	filtered := usecase.ApplyFilters(projectAll(all, state), state)
	geocoded := usecase.Geocoded(filtered)

	assert.Len(t, filtered, 4)
	assert.Len(t, geocoded, 2)
}
