package usecase

import (
	"time"

	"github.com/inspection-map/internal/domain"
	"github.com/inspection-map/internal/usecase/dto"
)

// PlaySpeedsMS - скорости автопроигрывания шкалы (мс на шаг)
var PlaySpeedsMS = []int{2000, 1000, 500, 250}

// InspectionDateRange - диапазон шкалы: от месяца до самой ранней инспекции до now
func InspectionDateRange(restaurants []domain.Restaurant, now time.Time) (time.Time, time.Time) {
	minDate := now
	for _, r := range restaurants {
		for _, insp := range r.Inspections {
			if date, ok := insp.ParsedDate(); ok && date.Before(minDate) {
				minDate = date
			}
		}
	}
	return minDate.AddDate(0, -1, 0), now
}

// SnapToMonth приводит дату к первому числу месяца
func SnapToMonth(t time.Time) time.Time {
	return domain.StartOfMonth(t)
}

// StepForward переходит на первое число следующего месяца; false если это позже end
func StepForward(current, end time.Time) (time.Time, bool) {
	next := domain.StartOfMonth(current).AddDate(0, 1, 0)
	if next.After(end) {
		return current, false
	}
	return next, true
}

// StepBackward переходит на первое число предыдущего месяца; false если это раньше start
func StepBackward(current, start time.Time) (time.Time, bool) {
	prev := domain.StartOfMonth(current).AddDate(0, -1, 0)
	if prev.Before(start) {
		return current, false
	}
	return prev, true
}

// Progress - положение current на шкале в процентах, 0..100
func Progress(start, end, current time.Time) float64 {
	total := end.Sub(start)
	if total <= 0 {
		return 0
	}
	p := float64(current.Sub(start)) / float64(total) * 100
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return p
	}
}

// YearMarkers возвращает отметки 1 января, попадающие в диапазон
func YearMarkers(start, end time.Time) []dto.YearMarker {
	markers := make([]dto.YearMarker, 0)
	for year := start.Year(); year <= end.Year(); year++ {
		yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, start.Location())
		if yearStart.Before(start) || yearStart.After(end) {
			continue
		}
		markers = append(markers, dto.YearMarker{Year: year, Position: Progress(start, end, yearStart)})
	}
	return markers
}
