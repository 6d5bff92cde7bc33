package usecase

import (
	"context"
	"time"

	"github.com/inspection-map/internal/domain"
	"github.com/inspection-map/internal/pkg/errors"
	"github.com/inspection-map/internal/usecase/dto"
	"go.uber.org/zap"
)

// RestaurantUseCase строит проекции, списки и карту по текущему снимку
type RestaurantUseCase struct {
	datasets DatasetProvider
	logger   *zap.Logger
	now      func() time.Time
}

// NewRestaurantUseCase создает новый экземпляр RestaurantUseCase
func NewRestaurantUseCase(datasets DatasetProvider, logger *zap.Logger) *RestaurantUseCase {
	return &RestaurantUseCase{
		datasets: datasets,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (uc *RestaurantUseCase) filtered(state ViewState) ([]domain.RestaurantWithStats, []domain.RestaurantWithStats, ViewWindow) {
	snapshot := uc.datasets.Snapshot()
	window := state.Window(uc.now().UTC())
	projected := Project(snapshot.Restaurants, window)
	return projected, ApplyFilters(projected, state), window
}

// List возвращает отфильтрованные заведения и агрегаты по окну.
// Агрегаты считаются по всей проекции, а не по отфильтрованному списку.
func (uc *RestaurantUseCase) List(ctx context.Context, state ViewState) (*dto.RestaurantListResponse, error) {
	projected, filtered, window := uc.filtered(state)

	resp := &dto.RestaurantListResponse{
		Restaurants:       filtered,
		Total:             len(filtered),
		Geocoded:          len(Geocoded(filtered)),
		TimelineStats:     ComputeTimelineStats(projected),
		HazardStatsAtDate: ComputeHazardStatsAtDate(projected),
		Mode:              state.Mode,
		AsOf:              window.Snapshot,
	}
	if window.Cutoff.IsBounded() {
		cutoff := window.Cutoff.Time()
		resp.Cutoff = &cutoff
	}

	uc.logger.Debug("Restaurants listed",
		zap.Int("projected", len(projected)),
		zap.Int("filtered", resp.Total),
		zap.Int("geocoded", resp.Geocoded),
		zap.String("mode", string(state.Mode)))
	return resp, nil
}

// Map возвращает GeoJSON геокодированных отфильтрованных заведений и число без координат
func (uc *RestaurantUseCase) Map(ctx context.Context, state ViewState) (FeatureCollection, int, int) {
	_, filtered, _ := uc.filtered(state)
	geocoded := Geocoded(filtered)
	return ToFeatureCollection(geocoded, state.Mode), len(filtered), len(geocoded)
}

// Detail возвращает заведение по detail URL со всей историей.
// До первой успешной загрузки возвращает ErrDatasetNotLoaded.
func (uc *RestaurantUseCase) Detail(ctx context.Context, id string) (*dto.RestaurantDetailResponse, error) {
	snapshot := uc.datasets.Snapshot()
	if snapshot.Version == "" {
		return nil, errors.ErrDatasetNotLoaded
	}

	r, ok := snapshot.FindByID(id)
	if !ok {
		return nil, errors.ErrRestaurantNotFound
	}

	inspections := make([]dto.InspectionDetail, 0, len(r.Inspections))
	for _, insp := range r.Inspections {
		detail := dto.InspectionDetail{Inspection: insp, Category: insp.Category()}
		if date, ok := insp.ParsedDate(); ok {
			detail.Date = &date
		}
		inspections = append(inspections, detail)
	}

	return &dto.RestaurantDetailResponse{
		Restaurant:   r,
		HazardRating: r.ResolvedHazardRating(),
		FacilityType: r.ResolvedFacilityType(),
		Inspections:  inspections,
		AllTime:      AggregateViolations(r.Inspections),
	}, nil
}

// Timeline возвращает шкалу времени с позицией asOf; нулевой asOf - текущий месяц
func (uc *RestaurantUseCase) Timeline(ctx context.Context, asOf time.Time) *dto.TimelineResponse {
	now := uc.now().UTC()
	start, end := InspectionDateRange(uc.datasets.Snapshot().Restaurants, now)

	current := SnapToMonth(now)
	if !asOf.IsZero() {
		current = SnapToMonth(asOf)
	}

	resp := &dto.TimelineResponse{
		Start:        start,
		End:          end,
		Current:      current,
		Progress:     Progress(start, end, current),
		YearMarkers:  YearMarkers(start, end),
		PlaySpeedsMS: PlaySpeedsMS,
	}
	if prev, ok := StepBackward(current, start); ok {
		resp.Previous = &prev
	}
	if next, ok := StepForward(current, end); ok {
		resp.Next = &next
	}
	return resp
}
