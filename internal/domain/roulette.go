package domain

import "time"

// LocationMode - откуда взята исходная точка рулетки
type LocationMode string

const (
	LocationNone        LocationMode = "none"
	LocationGeolocation LocationMode = "geolocation"
	LocationManual      LocationMode = "manual"
)

// SpinnerMode - способ выбора победителя
type SpinnerMode string

const (
	// SpinnerWheel - победитель выбирается из ограниченного набора на колесе
	SpinnerWheel SpinnerMode = "wheel"
	// SpinnerSlot - победитель выбирается из всего пула подходящих заведений
	SpinnerSlot SpinnerMode = "slot"
)

// RoulettePhase - состояние автомата рулетки
type RoulettePhase string

const (
	PhaseIdle           RoulettePhase = "idle"
	PhaseEligible       RoulettePhase = "eligible"
	PhaseWheelPopulated RoulettePhase = "wheel_populated"
	PhaseSpinning       RoulettePhase = "spinning"
	PhaseWinnerSelected RoulettePhase = "winner_selected"
)

const (
	DefaultMaxDistanceKm       = 5.0
	DefaultViolationTimePeriod = 12
	DefaultWheelSize           = 8
)

// WheelSizeOptions - допустимые размеры колеса, 0 означает "все"
var WheelSizeOptions = []int{4, 6, 8, 10, 65, 0}

// IsValidWheelSize проверяет размер колеса
func IsValidWheelSize(size int) bool {
	for _, s := range WheelSizeOptions {
		if s == size {
			return true
		}
	}
	return false
}

// RouletteFilters - настройки отбора заведений для рулетки
type RouletteFilters struct {
	UseFilters            bool           `json:"use_filters"`
	SourceLocation        *Point         `json:"source_location"`
	LocationMode          LocationMode   `json:"location_mode"`
	MaxDistanceKm         float64        `json:"max_distance_km"`
	ViolationTimePeriod   int            `json:"violation_time_period"`
	MaxViolations         *int           `json:"max_violations"`
	ExcludedHazardRatings []HazardRating `json:"excluded_hazard_ratings"`
}

// DefaultRouletteFilters возвращает настройки по умолчанию
func DefaultRouletteFilters() RouletteFilters {
	return RouletteFilters{
		UseFilters:            false,
		SourceLocation:        nil,
		LocationMode:          LocationNone,
		MaxDistanceKm:         DefaultMaxDistanceKm,
		ViolationTimePeriod:   DefaultViolationTimePeriod,
		MaxViolations:         nil,
		ExcludedHazardRatings: []HazardRating{},
	}
}

// IsExcluded проверяет, исключён ли рейтинг
func (f RouletteFilters) IsExcluded(rating HazardRating) bool {
	for _, r := range f.ExcludedHazardRatings {
		if r == rating {
			return true
		}
	}
	return false
}

// RouletteRestaurant - заведение с данными, нужными рулетке
type RouletteRestaurant struct {
	Restaurant
	DistanceKm             *float64 `json:"distance_km"`
	RouletteViolationCount int      `json:"roulette_violation_count"`
}

// RouletteSession - сохраняемое состояние рулетки.
// Колесо и победитель хранятся как идентификаторы заведений.
type RouletteSession struct {
	ID             string          `json:"id"`
	Filters        RouletteFilters `json:"filters"`
	Phase          RoulettePhase   `json:"phase"`
	SpinnerMode    SpinnerMode     `json:"spinner_mode"`
	WheelSize      int             `json:"wheel_size"`
	WheelIDs       []string        `json:"wheel_ids"`
	DatasetVersion string          `json:"dataset_version"`
	IsSpinning     bool            `json:"is_spinning"`
	HasSpun        bool            `json:"has_spun"`
	WinnerID       *string         `json:"winner_id,omitempty"`
	WinnerIndex    *int            `json:"winner_index,omitempty"`
	Rotation       float64         `json:"rotation"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ClearSpin сбрасывает победителя и состояние вращения, не трогая фильтры
func (s *RouletteSession) ClearSpin() {
	s.WinnerID = nil
	s.WinnerIndex = nil
	s.HasSpun = false
	s.IsSpinning = false
}

// CanReshuffle - колесо перетасовывается только в покое
func (s *RouletteSession) CanReshuffle() bool {
	return !s.IsSpinning && !s.HasSpun
}
