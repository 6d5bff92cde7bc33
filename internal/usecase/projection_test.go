package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inspection-map/internal/domain"
	"github.com/inspection-map/internal/usecase"
)

var testNow = time.Date(2024, time.September, 1, 12, 0, 0, 0, time.UTC)

func TestMonthsBefore(t *testing.T) {
	t.Run("zero months is unbounded", func(t *testing.T) {
		c := usecase.MonthsBefore(testNow, 0)
		assert.False(t, c.IsBounded())
		assert.True(t, c.Time().IsZero())
	})

	t.Run("negative months is unbounded", func(t *testing.T) {
		assert.False(t, usecase.MonthsBefore(testNow, -3).IsBounded())
	})

	t.Run("calendar months back", func(t *testing.T) {
		c := usecase.MonthsBefore(testNow, 12)
		require.True(t, c.IsBounded())
		assert.Equal(t, time.Date(2023, time.September, 1, 12, 0, 0, 0, time.UTC), c.Time())
	})

	t.Run("local now is counted in UTC", func(t *testing.T) {
		local := time.Date(2024, time.November, 1, 5, 0, 0, 0, time.FixedZone("UTC+10", 10*60*60))
		c := usecase.MonthsBefore(local, 12)
		assert.Equal(t, time.Date(2023, time.October, 31, 19, 0, 0, 0, time.UTC), c.Time())
	})
}

func TestFilterInspections(t *testing.T) {
	r := restaurant("a", nil, nil, domain.HazardLow,
		domain.Inspection{Date: "18-Mar-2024", Violations: violations(3)},
		domain.Inspection{InspectionDate: "March 5, 2023", Violations: violations(2)},
		domain.Inspection{Date: "", Violations: violations(1)},
		domain.Inspection{Date: "not a date", Violations: violations(4)},
	)

	t.Run("no bound keeps everything including undated", func(t *testing.T) {
		filtered := usecase.FilterInspections(r, usecase.NoBound())
		assert.Len(t, filtered, 4)
		assert.Equal(t, 10, usecase.AggregateViolations(filtered).Total)
	})

	t.Run("bounded keeps only dated inspections on or after cutoff", func(t *testing.T) {
		cutoff := usecase.MonthsBefore(testNow, 12)
		filtered := usecase.FilterInspections(r, cutoff)
		require.Len(t, filtered, 1)
		assert.Equal(t, "18-Mar-2024", filtered[0].DateText())

		for _, insp := range filtered {
			date, ok := insp.ParsedDate()
			require.True(t, ok)
			assert.False(t, date.Before(cutoff.Time()))
		}
	})

	t.Run("cutoff is inclusive", func(t *testing.T) {
		edge := restaurant("edge", nil, nil, domain.HazardLow, domain.Inspection{Date: "01-Sep-2023"})
		cutoff := usecase.MonthsBefore(time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC), 12)
		assert.Len(t, usecase.FilterInspections(edge, cutoff), 1)
	})
}

func TestProjectOne_TwelveMonthScenario(t *testing.T) {
	r := restaurant("a", nil, nil, domain.HazardLow,
		domain.Inspection{Date: "18-Mar-2024", CriticalViolationsCount: 1, NonCriticalViolationsCount: 2, Violations: violations(3)},
		domain.Inspection{Date: "March 5, 2023", CriticalViolationsCount: 2, Violations: violations(2)},
	)

	projected := usecase.ProjectOne(r, usecase.ViewWindow{
		Cutoff:   usecase.MonthsBefore(testNow, 12),
		Snapshot: testNow,
	})

	assert.Len(t, projected.FilteredInspections, 1)
	assert.Equal(t, domain.ViolationStats{Total: 3, Critical: 1, NonCritical: 2, InspectionCount: 1}, projected.ViolationStats)
	assert.Len(t, r.Inspections, 2, "source record must not change")
}

func TestHazardRatingAtDate(t *testing.T) {
	t.Run("empty history returns resolved rating", func(t *testing.T) {
		r := restaurant("a", nil, nil, domain.HazardModerate)
		assert.Equal(t, domain.HazardModerate, usecase.HazardRatingAtDate(r, testNow))

		r.CurrentHazardRating = domain.HazardLow
		assert.Equal(t, domain.HazardLow, usecase.HazardRatingAtDate(r, testNow))

		r.CurrentHazardRating = ""
		r.HazardRating = ""
		assert.Equal(t, domain.HazardUnknown, usecase.HazardRatingAtDate(r, testNow))
	})

	t.Run("history entirely after snapshot returns Unknown", func(t *testing.T) {
		r := restaurant("a", nil, nil, domain.HazardLow,
			domain.Inspection{Date: "18-Mar-2024", HazardRating: domain.HazardLow},
		)
		snapshot := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, domain.HazardUnknown, usecase.HazardRatingAtDate(r, snapshot))
	})

	t.Run("most recent inspection before snapshot wins", func(t *testing.T) {
		r := restaurant("a", nil, nil, domain.HazardLow,
			domain.Inspection{Date: "10-Jan-2022", HazardRating: domain.HazardLow},
			domain.Inspection{Date: "June 1, 2023", HazardRating: domain.HazardModerate},
			domain.Inspection{Date: "18-Mar-2024", HazardRating: domain.HazardLow},
		)
		snapshot := time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, domain.HazardModerate, usecase.HazardRatingAtDate(r, snapshot))
	})

	t.Run("inspection without rating falls back to restaurant rating", func(t *testing.T) {
		r := restaurant("a", nil, nil, domain.HazardModerate,
			domain.Inspection{Date: "10-Jan-2022"},
		)
		assert.Equal(t, domain.HazardModerate, usecase.HazardRatingAtDate(r, testNow))
	})

	t.Run("undated history is treated as not yet inspected", func(t *testing.T) {
		r := restaurant("a", nil, nil, domain.HazardLow, domain.Inspection{HazardRating: domain.HazardLow})
		assert.Equal(t, domain.HazardUnknown, usecase.HazardRatingAtDate(r, testNow))
	})
}

func TestComputeTimelineStats(t *testing.T) {
	restaurants := []domain.Restaurant{
		restaurant("a", nil, nil, domain.HazardLow,
			domain.Inspection{Date: "18-Mar-2024", CriticalViolationsCount: 2, Violations: violations(3)}),
		restaurant("b", nil, nil, domain.HazardModerate,
			domain.Inspection{Date: "18-Apr-2024"}),
		restaurant("c", nil, nil, ""),
	}

	projected := usecase.Project(restaurants, usecase.ViewWindow{Cutoff: usecase.NoBound(), Snapshot: testNow})

	assert.Equal(t, domain.TimelineStats{
		TotalViolations:           3,
		CriticalViolations:        2,
		TotalInspections:          2,
		RestaurantsWithViolations: 1,
	}, usecase.ComputeTimelineStats(projected))

	assert.Equal(t, domain.HazardStatsAtDate{Low: 1, Moderate: 1, Unknown: 1}, usecase.ComputeHazardStatsAtDate(projected))
}
