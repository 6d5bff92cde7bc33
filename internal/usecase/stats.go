package usecase

import (
	"github.com/inspection-map/internal/domain"
)

// ComputeStatistics - агрегаты по всему набору без учёта временного окна.
// Чистая функция: одинаковый вход даёт одинаковый результат.
func ComputeStatistics(restaurants []domain.Restaurant) domain.Statistics {
	stats := domain.Statistics{
		Total:          len(restaurants),
		ByHazard:       make(map[domain.HazardRating]int),
		ByFacilityType: make(map[domain.FacilityType]int),
	}

	for _, r := range restaurants {
		if r.HasCoordinates() {
			stats.Geocoded++
		}
		stats.ByHazard[r.ResolvedHazardRating()]++
		stats.ByFacilityType[r.ResolvedFacilityType()]++
		stats.TotalInspections += len(r.Inspections)
		stats.TotalViolations += r.TotalViolations()
	}

	return stats
}
