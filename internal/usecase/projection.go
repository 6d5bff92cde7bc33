package usecase

import (
	"sort"
	"time"

	"github.com/inspection-map/internal/domain"
)

// Cutoff - нижняя граница временного окна. Нулевое значение означает "без границы".
type Cutoff struct {
	at      time.Time
	bounded bool
}

// NoBound - окно за всё время
func NoBound() Cutoff {
	return Cutoff{}
}

// MonthsBefore - граница за months месяцев до now; 0 и меньше - без границы
func MonthsBefore(now time.Time, months int) Cutoff {
	if months <= 0 {
		return NoBound()
	}
	return Cutoff{at: now.UTC().AddDate(0, -months, 0), bounded: true}
}

// IsBounded сообщает, ограничено ли окно
func (c Cutoff) IsBounded() bool {
	return c.bounded
}

// Time возвращает момент границы; нулевое время для окна без границы
func (c Cutoff) Time() time.Time {
	return c.at
}

// Admits проверяет, попадает ли инспекция в окно.
// Для ограниченного окна инспекции без даты не попадают.
func (c Cutoff) Admits(insp domain.Inspection) bool {
	if !c.bounded {
		return true
	}
	date, ok := insp.ParsedDate()
	return ok && !date.Before(c.at)
}

// ViewWindow - параметры проекции: граница для нарушений и дата снимка рейтинга
type ViewWindow struct {
	Cutoff   Cutoff
	Snapshot time.Time
}

// FilterInspections возвращает инспекции заведения, попадающие в окно
func FilterInspections(r domain.Restaurant, cutoff Cutoff) []domain.Inspection {
	if !cutoff.IsBounded() {
		return r.Inspections
	}

	filtered := make([]domain.Inspection, 0, len(r.Inspections))
	for _, insp := range r.Inspections {
		if cutoff.Admits(insp) {
			filtered = append(filtered, insp)
		}
	}
	return filtered
}

type datedInspection struct {
	date time.Time
	insp domain.Inspection
}

// HazardRatingAtDate восстанавливает рейтинг заведения на дату snapshot
// по последней инспекции не позже этой даты.
func HazardRatingAtDate(r domain.Restaurant, snapshot time.Time) domain.HazardRating {
	if len(r.Inspections) == 0 {
		return r.ResolvedHazardRating()
	}

	dated := make([]datedInspection, 0, len(r.Inspections))
	for _, insp := range r.Inspections {
		if date, ok := insp.ParsedDate(); ok {
			dated = append(dated, datedInspection{date: date, insp: insp})
		}
	}
	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].date.After(dated[j].date)
	})

	for _, d := range dated {
		if d.date.After(snapshot) {
			continue
		}
		if d.insp.HazardRating != "" {
			return d.insp.HazardRating
		}
		return r.ResolvedHazardRating()
	}

	// Заведение ещё не инспектировалось на эту дату
	return domain.HazardUnknown
}

// AggregateViolations суммирует нарушения по инспекциям.
// Total - число записей в списках нарушений, Critical/NonCritical - из счётчиков инспекций.
func AggregateViolations(inspections []domain.Inspection) domain.ViolationStats {
	stats := domain.ViolationStats{InspectionCount: len(inspections)}
	for _, insp := range inspections {
		stats.Total += len(insp.Violations)
		stats.Critical += insp.CriticalViolationsCount
		stats.NonCritical += insp.NonCriticalViolationsCount
	}
	return stats
}

// ProjectOne проецирует одно заведение на окно
func ProjectOne(r domain.Restaurant, window ViewWindow) domain.RestaurantWithStats {
	filtered := FilterInspections(r, window.Cutoff)
	return domain.RestaurantWithStats{
		Restaurant:          r,
		FilteredInspections: filtered,
		HazardRatingAtDate:  HazardRatingAtDate(r, window.Snapshot),
		ViolationStats:      AggregateViolations(filtered),
	}
}

// Project проецирует весь набор на окно; исходные записи не изменяются
func Project(restaurants []domain.Restaurant, window ViewWindow) []domain.RestaurantWithStats {
	projected := make([]domain.RestaurantWithStats, len(restaurants))
	for i, r := range restaurants {
		projected[i] = ProjectOne(r, window)
	}
	return projected
}

// ComputeTimelineStats агрегирует нарушения по всей проекции
func ComputeTimelineStats(projected []domain.RestaurantWithStats) domain.TimelineStats {
	var stats domain.TimelineStats
	for _, r := range projected {
		stats.TotalViolations += r.ViolationStats.Total
		stats.CriticalViolations += r.ViolationStats.Critical
		stats.TotalInspections += r.ViolationStats.InspectionCount
		if r.ViolationStats.Total > 0 {
			stats.RestaurantsWithViolations++
		}
	}
	return stats
}

// ComputeHazardStatsAtDate считает заведения по рейтингу на дату снимка
func ComputeHazardStatsAtDate(projected []domain.RestaurantWithStats) domain.HazardStatsAtDate {
	var stats domain.HazardStatsAtDate
	for _, r := range projected {
		switch r.HazardRatingAtDate {
		case domain.HazardLow:
			stats.Low++
		case domain.HazardModerate:
			stats.Moderate++
		case domain.HazardUnknown:
			stats.Unknown++
		}
	}
	return stats
}
