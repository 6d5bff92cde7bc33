package domain

import "errors"

// GeolocationStatus - результат запроса геолокации
type GeolocationStatus string

const (
	GeolocationSuccess     GeolocationStatus = "success"
	GeolocationDenied      GeolocationStatus = "denied"
	GeolocationUnavailable GeolocationStatus = "unavailable"
	GeolocationTimeout     GeolocationStatus = "timeout"
	GeolocationUnsupported GeolocationStatus = "unsupported"
)

// Position - координаты, полученные от провайдера геолокации
type Position struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Ошибки провайдера геолокации; сценарий использования переводит их в коды API
var (
	ErrLocationDenied      = errors.New("location access denied")
	ErrLocationUnavailable = errors.New("location unavailable")
	ErrLocationTimeout     = errors.New("location request timed out")
)
