package domain

import (
	"strings"
	"time"
)

// HazardRating - рейтинг опасности заведения по результатам инспекций
type HazardRating string

const (
	HazardLow      HazardRating = "Low"
	HazardModerate HazardRating = "Moderate"
	HazardUnknown  HazardRating = "Unknown"
)

// AllHazardRatings возвращает все известные рейтинги в порядке отображения
func AllHazardRatings() []HazardRating {
	return []HazardRating{HazardLow, HazardModerate, HazardUnknown}
}

// FacilityType - тип заведения
type FacilityType string

const (
	FacilityRestaurant           FacilityType = "Restaurant"
	FacilityInstitutionalKitchen FacilityType = "Institutional Kitchen"
	FacilityStore                FacilityType = "Store"
	FacilityUnknown              FacilityType = "Unknown"
	FacilityOther                FacilityType = "Other"
)

// AllFacilityTypes возвращает все типы заведений
func AllFacilityTypes() []FacilityType {
	return []FacilityType{
		FacilityRestaurant,
		FacilityInstitutionalKitchen,
		FacilityStore,
		FacilityUnknown,
		FacilityOther,
	}
}

// Violation - нарушение, зафиксированное при инспекции
type Violation struct {
	Code                      string  `json:"code"`
	Description               string  `json:"description"`
	Observation               string  `json:"observation"`
	CorrectiveAction          *string `json:"corrective_action,omitempty"`
	CorrectedDuringInspection *bool   `json:"corrected_during_inspection,omitempty"`
}

// Inspection - одна инспекция заведения.
// Источник данных использует два варианта имён полей для даты и типа.
type Inspection struct {
	Date                       string       `json:"date,omitempty"`
	InspectionDate             string       `json:"inspection_date,omitempty"`
	Type                       string       `json:"type,omitempty"`
	InspectionType             string       `json:"inspection_type,omitempty"`
	HazardRating               HazardRating `json:"hazard_rating,omitempty"`
	CriticalViolationsCount    int          `json:"critical_violations_count"`
	NonCriticalViolationsCount int          `json:"non_critical_violations_count"`
	FollowUpRequired           string       `json:"follow_up_required,omitempty"`
	Violations                 []Violation  `json:"violations,omitempty"`
}

// DateText возвращает текст даты независимо от варианта имени поля
func (i Inspection) DateText() string {
	if i.Date != "" {
		return i.Date
	}
	return i.InspectionDate
}

// TypeText возвращает тип инспекции независимо от варианта имени поля
func (i Inspection) TypeText() string {
	if i.InspectionType != "" {
		return i.InspectionType
	}
	return i.Type
}

// ParsedDate разбирает дату инспекции; false если даты нет или она нераспознана
func (i Inspection) ParsedDate() (time.Time, bool) {
	return ParseInspectionDate(i.DateText())
}

// NeedsFollowUp сообщает, требуется ли повторная инспекция
func (i Inspection) NeedsFollowUp() bool {
	return strings.EqualFold(i.FollowUpRequired, "Yes")
}

// Category классифицирует инспекцию по её типу
func (i Inspection) Category() InspectionCategory {
	return ClassifyInspectionType(i.TypeText())
}

// Restaurant - заведение со всей историей инспекций.
// Идентификатор заведения - DetailsURL.
type Restaurant struct {
	Name                string       `json:"name"`
	Address             string       `json:"address"`
	FullAddress         *string      `json:"full_address,omitempty"`
	Latitude            *float64     `json:"latitude"`
	Longitude           *float64     `json:"longitude"`
	FacilityType        FacilityType `json:"facility_type,omitempty"`
	HazardRating        HazardRating `json:"hazard_rating,omitempty"`
	CurrentHazardRating HazardRating `json:"current_hazard_rating,omitempty"`
	DetailsURL          string       `json:"details_url"`
	Inspections         []Inspection `json:"inspections,omitempty"`
}

// ID возвращает ключ идентичности заведения
func (r Restaurant) ID() string {
	return r.DetailsURL
}

// ResolvedHazardRating: текущий рейтинг, затем базовый, затем Unknown
func (r Restaurant) ResolvedHazardRating() HazardRating {
	if r.CurrentHazardRating != "" {
		return r.CurrentHazardRating
	}
	if r.HazardRating != "" {
		return r.HazardRating
	}
	return HazardUnknown
}

// ResolvedFacilityType возвращает тип заведения, Unknown если не указан
func (r Restaurant) ResolvedFacilityType() FacilityType {
	if r.FacilityType == "" {
		return FacilityUnknown
	}
	return r.FacilityType
}

// HasCoordinates проверяет наличие обеих координат
func (r Restaurant) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// Point возвращает координаты заведения, если они есть
func (r Restaurant) Point() (Point, bool) {
	if !r.HasCoordinates() {
		return Point{}, false
	}
	return Point{Lat: *r.Latitude, Lon: *r.Longitude}, true
}

// TotalViolations - сумма длин списков нарушений по всем инспекциям
func (r Restaurant) TotalViolations() int {
	total := 0
	for _, insp := range r.Inspections {
		total += len(insp.Violations)
	}
	return total
}

// InspectionCategory - категория инспекции для отображения
type InspectionCategory string

const (
	InspectionRoutine   InspectionCategory = "routine"
	InspectionFollowUp  InspectionCategory = "follow_up"
	InspectionComplaint InspectionCategory = "complaint"
	InspectionInitial   InspectionCategory = "initial"
	InspectionOther     InspectionCategory = "other"
)

// ClassifyInspectionType относит свободный текст типа инспекции к категории
func ClassifyInspectionType(t string) InspectionCategory {
	lower := strings.ToLower(t)
	switch {
	case strings.Contains(lower, "routine"):
		return InspectionRoutine
	case strings.Contains(lower, "follow"):
		return InspectionFollowUp
	case strings.Contains(lower, "complaint"):
		return InspectionComplaint
	case strings.Contains(lower, "initial"):
		return InspectionInitial
	default:
		return InspectionOther
	}
}
