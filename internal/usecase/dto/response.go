package dto

import (
	"time"

	"github.com/inspection-map/internal/domain"
)

// RestaurantListResponse - отфильтрованный список с агрегатами по временному окну
type RestaurantListResponse struct {
	Restaurants       []domain.RestaurantWithStats `json:"restaurants"`
	Total             int                          `json:"total"`
	Geocoded          int                          `json:"geocoded"`
	TimelineStats     domain.TimelineStats         `json:"timeline_stats"`
	HazardStatsAtDate domain.HazardStatsAtDate     `json:"hazard_stats_at_date"`
	Mode              domain.VisualizationMode     `json:"mode"`
	Cutoff            *time.Time                   `json:"cutoff,omitempty"`
	AsOf              time.Time                    `json:"as_of"`
}

// InspectionDetail - инспекция с категорией для панели подробностей
type InspectionDetail struct {
	domain.Inspection
	Category domain.InspectionCategory `json:"category"`
	Date     *time.Time                `json:"parsed_date,omitempty"`
}

// RestaurantDetailResponse - заведение со всей историей инспекций
type RestaurantDetailResponse struct {
	Restaurant   domain.Restaurant     `json:"restaurant"`
	HazardRating domain.HazardRating   `json:"resolved_hazard_rating"`
	FacilityType domain.FacilityType   `json:"resolved_facility_type"`
	Inspections  []InspectionDetail    `json:"inspections"`
	AllTime      domain.ViolationStats `json:"all_time"`
}

// TimelineResponse - шкала времени для режима рейтинга
type TimelineResponse struct {
	Start        time.Time    `json:"start"`
	End          time.Time    `json:"end"`
	Current      time.Time    `json:"current"`
	Progress     float64      `json:"progress"`
	YearMarkers  []YearMarker `json:"year_markers"`
	Previous     *time.Time   `json:"previous,omitempty"`
	Next         *time.Time   `json:"next,omitempty"`
	PlaySpeedsMS []int        `json:"play_speeds_ms"`
}

// YearMarker - отметка года на шкале
type YearMarker struct {
	Year     int     `json:"year"`
	Position float64 `json:"position"`
}

// RouletteSessionResponse - состояние рулетки с разрешёнными заведениями
type RouletteSessionResponse struct {
	ID               string                      `json:"id"`
	Phase            domain.RoulettePhase        `json:"phase"`
	SpinnerMode      domain.SpinnerMode          `json:"spinner_mode"`
	Filters          domain.RouletteFilters      `json:"filters"`
	WheelSize        int                         `json:"wheel_size"`
	WheelSizeOptions []int                       `json:"wheel_size_options"`
	Wheel            []domain.RouletteRestaurant `json:"wheel"`
	EligibleCount    int                         `json:"eligible_count"`
	IsSpinning       bool                        `json:"is_spinning"`
	HasSpun          bool                        `json:"has_spun"`
	Winner           *domain.RouletteRestaurant  `json:"winner,omitempty"`
	WinnerIndex      *int                        `json:"winner_index,omitempty"`
	Rotation         float64                     `json:"rotation"`
	UpdatedAt        time.Time                   `json:"updated_at"`
}

// DatasetReloadResponse - результат перезагрузки; при async только идентификатор запроса
type DatasetReloadResponse struct {
	RequestID string                `json:"request_id"`
	Queued    bool                  `json:"queued"`
	Status    *domain.DatasetStatus `json:"status,omitempty"`
}

// DatasetResponse - состояние загрузчика и журнал последних загрузок
type DatasetResponse struct {
	Status domain.DatasetStatus `json:"status"`
	Loads  []domain.DatasetLoad `json:"recent_loads"`
}

// HealthResponse - состояние сервиса и зависимостей
type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
	Dataset  string            `json:"dataset_version,omitempty"`
}
