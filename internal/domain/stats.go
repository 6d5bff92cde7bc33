package domain

import "time"

// Statistics - агрегаты по всему набору данных, без учёта временного окна
type Statistics struct {
	Total            int                  `json:"total"`
	Geocoded         int                  `json:"geocoded"`
	ByHazard         map[HazardRating]int `json:"by_hazard"`
	ByFacilityType   map[FacilityType]int `json:"by_facility_type"`
	TotalInspections int                  `json:"total_inspections"`
	TotalViolations  int                  `json:"total_violations"`
	DataVersion      string               `json:"data_version"`
	ComputedAt       time.Time            `json:"computed_at"`
}

// TimelineStats - агрегаты по проекции на текущее временное окно
type TimelineStats struct {
	TotalViolations           int `json:"total_violations"`
	CriticalViolations        int `json:"critical_violations"`
	TotalInspections          int `json:"total_inspections"`
	RestaurantsWithViolations int `json:"restaurants_with_violations"`
}

// HazardStatsAtDate - количество заведений по рейтингу на выбранную дату
type HazardStatsAtDate struct {
	Low      int `json:"low"`
	Moderate int `json:"moderate"`
	Unknown  int `json:"unknown"`
}
