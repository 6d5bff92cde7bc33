package usecase

import (
	"strings"
	"time"

	"github.com/inspection-map/internal/domain"
)

// DefaultTimelineMonths - окно нарушений по умолчанию
const DefaultTimelineMonths = 12

// ViewState - состояние фильтров и окна для одного запроса списка/карты.
// Не сохраняется между запросами.
type ViewState struct {
	HazardRatings map[domain.HazardRating]bool
	FacilityTypes map[domain.FacilityType]bool
	Search        string
	Mode          domain.VisualizationMode
	Months        int
	AsOf          time.Time
}

// DefaultViewState: все рейтинги и типы, пустой поиск, режим нарушений,
// 12 месяцев и первое число текущего месяца
func DefaultViewState(now time.Time) ViewState {
	return ViewState{
		HazardRatings: HazardSet(domain.AllHazardRatings()...),
		FacilityTypes: FacilitySet(domain.AllFacilityTypes()...),
		Mode:          domain.ModeViolations,
		Months:        DefaultTimelineMonths,
		AsOf:          domain.StartOfMonth(now.UTC()),
	}
}

// HazardSet строит множество рейтингов
func HazardSet(ratings ...domain.HazardRating) map[domain.HazardRating]bool {
	set := make(map[domain.HazardRating]bool, len(ratings))
	for _, r := range ratings {
		set[r] = true
	}
	return set
}

// FacilitySet строит множество типов заведений
func FacilitySet(types ...domain.FacilityType) map[domain.FacilityType]bool {
	set := make(map[domain.FacilityType]bool, len(types))
	for _, t := range types {
		set[t] = true
	}
	return set
}

// Window возвращает окно проекции для состояния относительно now
func (s ViewState) Window(now time.Time) ViewWindow {
	return ViewWindow{
		Cutoff:   MonthsBefore(now, s.Months),
		Snapshot: s.AsOf,
	}
}

// Matches - конъюнкция фильтра по рейтингу, типу заведения и текстового поиска
func (s ViewState) Matches(r domain.RestaurantWithStats) bool {
	rating := r.ResolvedHazardRating()
	if s.Mode == domain.ModeHazard {
		rating = r.HazardRatingAtDate
	}
	if !s.HazardRatings[rating] {
		return false
	}

	if !s.FacilityTypes[r.ResolvedFacilityType()] {
		return false
	}

	return matchesSearch(r.Restaurant, s.Search)
}

func matchesSearch(r domain.Restaurant, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(r.Name), q) ||
		strings.Contains(strings.ToLower(r.Address), q)
}

// ApplyFilters оставляет записи, прошедшие все фильтры состояния, сохраняя порядок
func ApplyFilters(projected []domain.RestaurantWithStats, state ViewState) []domain.RestaurantWithStats {
	filtered := make([]domain.RestaurantWithStats, 0, len(projected))
	for _, r := range projected {
		if state.Matches(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Geocoded оставляет записи с обеими координатами. Нулевые координаты допустимы.
func Geocoded(list []domain.RestaurantWithStats) []domain.RestaurantWithStats {
	geocoded := make([]domain.RestaurantWithStats, 0, len(list))
	for _, r := range list {
		if r.HasCoordinates() {
			geocoded = append(geocoded, r)
		}
	}
	return geocoded
}
