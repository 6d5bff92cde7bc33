package domain

// Point - географическая точка в градусах
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ViolationStats - агрегаты нарушений по инспекциям во временном окне
type ViolationStats struct {
	Total           int `json:"total"`
	Critical        int `json:"critical"`
	NonCritical     int `json:"non_critical"`
	InspectionCount int `json:"inspection_count"`
}

// RestaurantWithStats - проекция заведения на временное окно.
// Пересчитывается при каждом изменении окна, никогда не сохраняется.
type RestaurantWithStats struct {
	Restaurant
	FilteredInspections []Inspection   `json:"filtered_inspections"`
	HazardRatingAtDate  HazardRating   `json:"hazard_rating_at_date"`
	ViolationStats      ViolationStats `json:"violation_stats"`
}

// VisualizationMode - режим отображения карты
type VisualizationMode string

const (
	ModeViolations VisualizationMode = "violations"
	ModeHazard     VisualizationMode = "hazard"
)

// IsValid проверяет, что режим известен
func (m VisualizationMode) IsValid() bool {
	return m == ModeViolations || m == ModeHazard
}
