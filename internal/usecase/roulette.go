package usecase

import (
	"time"

	"github.com/inspection-map/internal/domain"
	"github.com/inspection-map/internal/pkg/utils"
)

// RNG - источник случайности рулетки; *rand.Rand из math/rand/v2 подходит
type RNG interface {
	IntN(n int) int
	Float64() float64
}

// CountViolationsInPeriod - число записей нарушений в инспекциях за последние months месяцев.
// months == 0 означает за всё время.
func CountViolationsInPeriod(r domain.Restaurant, months int, now time.Time) int {
	return AggregateViolations(FilterInspections(r, MonthsBefore(now, months))).Total
}

// EligibleRestaurants отбирает заведения для рулетки.
// С выключенными фильтрами подходят все, счётчик нарушений берётся за 12 месяцев.
func EligibleRestaurants(all []domain.Restaurant, f domain.RouletteFilters, now time.Time) []domain.RouletteRestaurant {
	eligible := make([]domain.RouletteRestaurant, 0, len(all))

	if !f.UseFilters {
		for _, r := range all {
			eligible = append(eligible, domain.RouletteRestaurant{
				Restaurant:             r,
				RouletteViolationCount: CountViolationsInPeriod(r, domain.DefaultViolationTimePeriod, now),
			})
		}
		return eligible
	}

	for _, r := range all {
		var distance *float64
		if f.SourceLocation != nil {
			point, ok := r.Point()
			if !ok {
				continue
			}
			d := utils.HaversineDistance(f.SourceLocation.Lat, f.SourceLocation.Lon, point.Lat, point.Lon)
			if f.MaxDistanceKm > 0 && d > f.MaxDistanceKm {
				continue
			}
			distance = &d
		}

		if f.IsExcluded(r.ResolvedHazardRating()) {
			continue
		}

		violations := CountViolationsInPeriod(r, f.ViolationTimePeriod, now)
		if f.MaxViolations != nil && violations > *f.MaxViolations {
			continue
		}

		eligible = append(eligible, domain.RouletteRestaurant{
			Restaurant:             r,
			DistanceKm:             distance,
			RouletteViolationCount: violations,
		})
	}
	return eligible
}

// Shuffle - тасование Фишера-Йетса копии items
func Shuffle[T any](items []T, rng RNG) []T {
	shuffled := make([]T, len(items))
	copy(shuffled, items)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// PopulateWheel берёт случайные min(size, len) подходящих заведений; size 0 - все
func PopulateWheel(eligible []domain.RouletteRestaurant, size int, rng RNG) []domain.RouletteRestaurant {
	if len(eligible) == 0 {
		return []domain.RouletteRestaurant{}
	}
	shuffled := Shuffle(eligible, rng)
	count := len(shuffled)
	if size > 0 && size < count {
		count = size
	}
	return shuffled[:count]
}

// DrawIndex выбирает равновероятный индекс из n; false если выбирать не из чего
func DrawIndex(n int, rng RNG) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	return rng.IntN(n), true
}

func restaurantIDs(list []domain.RouletteRestaurant) []string {
	ids := make([]string, len(list))
	for i, r := range list {
		ids[i] = r.ID()
	}
	return ids
}

// resolveWheel сопоставляет сохранённые идентификаторы колеса с текущим пулом.
// Заведения, выпавшие из пула после перезагрузки данных, пропускаются.
func resolveWheel(ids []string, eligible []domain.RouletteRestaurant) []domain.RouletteRestaurant {
	byID := make(map[string]domain.RouletteRestaurant, len(eligible))
	for _, r := range eligible {
		byID[r.ID()] = r
	}
	wheel := make([]domain.RouletteRestaurant, 0, len(ids))
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			wheel = append(wheel, r)
		}
	}
	return wheel
}
