package handler

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/inspection-map/internal/domain"
	"github.com/inspection-map/internal/pkg/errors"
	"github.com/inspection-map/internal/usecase"
)

// parseViewState собирает состояние фильтров из query.
// Отсутствующий параметр множества означает "все значения", пустой - пустое множество.
func parseViewState(c *fiber.Ctx, now time.Time) (usecase.ViewState, error) {
	state := usecase.DefaultViewState(now)

	if raw := c.Query("months"); raw != "" {
		months := c.QueryInt("months", -1)
		if months < 0 {
			return state, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"months": "must be a non-negative integer"})
		}
		state.Months = months
	}

	if raw := c.Query("as_of"); raw != "" {
		asOf, err := parseAsOf(raw)
		if err != nil {
			return state, err
		}
		state.AsOf = asOf
	}

	if raw := c.Query("mode"); raw != "" {
		mode := domain.VisualizationMode(raw)
		if !mode.IsValid() {
			return state, errors.ErrInvalidMode
		}
		state.Mode = mode
	}

	if values, ok := queryList(c, "hazard"); ok {
		ratings := make([]domain.HazardRating, len(values))
		for i, v := range values {
			ratings[i] = domain.HazardRating(v)
		}
		state.HazardRatings = usecase.HazardSet(ratings...)
	}

	if values, ok := queryList(c, "facility"); ok {
		types := make([]domain.FacilityType, len(values))
		for i, v := range values {
			types[i] = domain.FacilityType(v)
		}
		state.FacilityTypes = usecase.FacilitySet(types...)
	}

	state.Search = c.Query("q")
	return state, nil
}

// parseAsOf принимает YYYY-MM или YYYY-MM-DD и приводит к первому числу месяца
func parseAsOf(raw string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", "2006-01"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return domain.StartOfMonth(t), nil
		}
	}
	return time.Time{}, errors.ErrInvalidDate.WithDetails(map[string]interface{}{"as_of": raw})
}

// queryList разбирает csv параметр; false если параметр не передан
func queryList(c *fiber.Ctx, key string) ([]string, bool) {
	if !c.Context().QueryArgs().Has(key) {
		return nil, false
	}

	values := make([]string, 0)
	for _, part := range strings.Split(c.Query(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values, true
}
