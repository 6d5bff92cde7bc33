package dto

// UpdateRouletteFiltersRequest - частичное обновление фильтров рулетки.
// Отсутствующие поля не меняются; no_violation_limit снимает ограничение по нарушениям.
type UpdateRouletteFiltersRequest struct {
	UseFilters          *bool    `json:"use_filters"`
	MaxDistanceKm       *float64 `json:"max_distance_km" validate:"omitempty,min=0,max=100"`
	ViolationTimePeriod *int     `json:"violation_time_period" validate:"omitempty,oneof=0 3 6 12 24 36"`
	MaxViolations       *int     `json:"max_violations" validate:"omitempty,min=0,max=1000"`
	NoViolationLimit    bool     `json:"no_violation_limit"`
}

// SourceLocationRequest - координаты исходной точки (клик по карте или Geolocation API браузера)
type SourceLocationRequest struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lng float64 `json:"lng" validate:"min=-180,max=180"`
}

// GeolocationSourceRequest - координаты браузера; без них сервер определяет позицию по IP
type GeolocationSourceRequest struct {
	Lat *float64 `json:"lat" validate:"omitempty,min=-90,max=90"`
	Lng *float64 `json:"lng" validate:"omitempty,min=-180,max=180"`
}

// WheelSizeRequest - размер колеса, 0 означает все подходящие
type WheelSizeRequest struct {
	Size *int `json:"size" validate:"required"`
}

// SpinnerModeRequest - режим выбора
type SpinnerModeRequest struct {
	Mode string `json:"mode" validate:"required,oneof=wheel slot"`
}

// PreferencesRequest - сохранение настроек клиента
type PreferencesRequest struct {
	DarkMode *bool `json:"dark_mode" validate:"required"`
}

// DatasetReloadRequest - параметры перезагрузки набора данных
type DatasetReloadRequest struct {
	Async       bool   `json:"async"`
	RequestedBy string `json:"requested_by" validate:"omitempty,max=128"`
}
