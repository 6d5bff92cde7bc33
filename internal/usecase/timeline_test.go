package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inspection-map/internal/domain"
	"github.com/inspection-map/internal/usecase"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestInspectionDateRange(t *testing.T) {
	restaurants := []domain.Restaurant{
		restaurant("a", nil, nil, domain.HazardLow,
			domain.Inspection{Date: "18-Mar-2022"},
			domain.Inspection{Date: "garbage"}),
		restaurant("b", nil, nil, domain.HazardLow,
			domain.Inspection{Date: "May 2, 2023"}),
	}

	start, end := usecase.InspectionDateRange(restaurants, testNow)
	assert.Equal(t, date(2022, time.February, 18), start)
	assert.Equal(t, testNow, end)
}

func TestInspectionDateRange_NoDates(t *testing.T) {
	start, end := usecase.InspectionDateRange(nil, testNow)
	assert.Equal(t, testNow.AddDate(0, -1, 0), start)
	assert.Equal(t, testNow, end)
}

func TestStepForwardBackward(t *testing.T) {
	start := date(2022, time.February, 18)
	end := date(2024, time.September, 15)

	next, ok := usecase.StepForward(date(2024, time.March, 20), end)
	require.True(t, ok)
	assert.Equal(t, date(2024, time.April, 1), next)

	_, ok = usecase.StepForward(date(2024, time.September, 1), end)
	assert.False(t, ok)

	prev, ok := usecase.StepBackward(date(2023, time.January, 10), start)
	require.True(t, ok)
	assert.Equal(t, date(2022, time.December, 1), prev)

	_, ok = usecase.StepBackward(date(2022, time.March, 1), start)
	assert.False(t, ok)
}

func TestProgress(t *testing.T) {
	start := date(2020, time.January, 1)
	end := date(2022, time.January, 1)

	assert.Equal(t, 0.0, usecase.Progress(start, end, start))
	assert.Equal(t, 100.0, usecase.Progress(start, end, end))
	assert.Equal(t, 0.0, usecase.Progress(start, end, date(2019, time.January, 1)))
	assert.Equal(t, 100.0, usecase.Progress(start, end, date(2030, time.January, 1)))
	assert.InDelta(t, 50.0, usecase.Progress(start, end, date(2021, time.January, 1)), 0.1)
	assert.Equal(t, 0.0, usecase.Progress(end, start, end))
}

func TestYearMarkers(t *testing.T) {
	markers := usecase.YearMarkers(date(2021, time.June, 1), date(2024, time.March, 1))

	require.Len(t, markers, 3)
	assert.Equal(t, 2022, markers[0].Year)
	assert.Equal(t, 2024, markers[2].Year)
	assert.Greater(t, markers[0].Position, 0.0)
	assert.Less(t, markers[2].Position, 100.0)
}
