package usecase

import (
	"math"

	"github.com/inspection-map/internal/domain"
)

var hazardColors = map[domain.HazardRating]string{
	domain.HazardLow:      "#22c55e",
	domain.HazardModerate: "#f59e0b",
	domain.HazardUnknown:  "#6b7280",
}

const (
	markerBaseRadius   = 10.0
	markerMaxRadius    = 24.0
	markerHazardRadius = 12.0
)

// MarkerStyle - цвет и радиус маркера на карте
type MarkerStyle struct {
	Color  string  `json:"color"`
	Radius float64 `json:"radius"`
}

// ViolationColor - цвет по числу нарушений: 0, 1-3, 4-6, 7+
func ViolationColor(total int) string {
	switch {
	case total <= 0:
		return "#22c55e"
	case total <= 3:
		return "#eab308"
	case total <= 6:
		return "#f97316"
	default:
		return "#ef4444"
	}
}

// MarkerFor вычисляет стиль маркера в зависимости от режима
func MarkerFor(r domain.RestaurantWithStats, mode domain.VisualizationMode) MarkerStyle {
	if mode == domain.ModeHazard {
		color, ok := hazardColors[r.HazardRatingAtDate]
		if !ok {
			color = hazardColors[domain.HazardUnknown]
		}
		return MarkerStyle{Color: color, Radius: markerHazardRadius}
	}

	scale := math.Min(float64(r.ViolationStats.Total)/10, 1)
	return MarkerStyle{
		Color:  ViolationColor(r.ViolationStats.Total),
		Radius: markerBaseRadius + (markerMaxRadius-markerBaseRadius)*scale,
	}
}

// FeatureCollection - GeoJSON коллекция маркеров
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Type       string         `json:"type"`
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// ToFeatureCollection строит GeoJSON по геокодированным записям; записи без координат пропускаются
func ToFeatureCollection(list []domain.RestaurantWithStats, mode domain.VisualizationMode) FeatureCollection {
	features := make([]Feature, 0, len(list))
	for _, r := range list {
		point, ok := r.Point()
		if !ok {
			continue
		}
		marker := MarkerFor(r, mode)
		features = append(features, Feature{
			Type: "Feature",
			Geometry: Geometry{
				Type:        "Point",
				Coordinates: []float64{point.Lon, point.Lat},
			},
			Properties: map[string]any{
				"id":                    r.ID(),
				"name":                  r.Name,
				"address":               r.Address,
				"facility_type":         r.ResolvedFacilityType(),
				"hazard_rating":         r.ResolvedHazardRating(),
				"hazard_rating_at_date": r.HazardRatingAtDate,
				"violations":            r.ViolationStats.Total,
				"critical":              r.ViolationStats.Critical,
				"inspections":           r.ViolationStats.InspectionCount,
				"marker_color":          marker.Color,
				"marker_radius":         marker.Radius,
			},
		})
	}

	return FeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
}
