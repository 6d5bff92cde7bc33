package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inspection-map/internal/domain"
	"github.com/inspection-map/internal/usecase"
)

func statsFixture() []domain.Restaurant {
	untyped := restaurant("c", nil, nil, "")
	untyped.FacilityType = ""

	return []domain.Restaurant{
		restaurant("a", ptrFloat64(49.2), ptrFloat64(-123.1), domain.HazardLow,
			domain.Inspection{Date: "18-Mar-2024", Violations: violations(2)},
			domain.Inspection{Date: "March 5, 2023", Violations: violations(1)}),
		restaurant("b", ptrFloat64(49.3), ptrFloat64(-123.0), domain.HazardModerate,
			domain.Inspection{Date: "01-Jan-2015", Violations: violations(4)}),
		untyped,
	}
}

func TestComputeStatistics(t *testing.T) {
	stats := usecase.ComputeStatistics(statsFixture())

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Geocoded)
	assert.Equal(t, 3, stats.TotalInspections)
	assert.Equal(t, 7, stats.TotalViolations)
	assert.Equal(t, map[domain.HazardRating]int{
		domain.HazardLow:      1,
		domain.HazardModerate: 1,
		domain.HazardUnknown:  1,
	}, stats.ByHazard)
	assert.Equal(t, map[domain.FacilityType]int{
		domain.FacilityRestaurant: 2,
		domain.FacilityUnknown:    1,
	}, stats.ByFacilityType)
}

func TestComputeStatistics_Idempotent(t *testing.T) {
	restaurants := statsFixture()
	assert.Equal(t, usecase.ComputeStatistics(restaurants), usecase.ComputeStatistics(restaurants))
}

func TestComputeStatistics_Empty(t *testing.T) {
	stats := usecase.ComputeStatistics(nil)
	assert.Zero(t, stats.Total)
	assert.NotNil(t, stats.ByHazard)
	assert.NotNil(t, stats.ByFacilityType)
}
