package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/inspection-map/internal/domain"
	"github.com/inspection-map/internal/domain/repository"
	"github.com/inspection-map/internal/pkg/errors"
	"github.com/inspection-map/internal/pkg/utils"
	"github.com/inspection-map/internal/usecase/dto"
	"go.uber.org/zap"
)

// Locator определяет позицию клиента по IP
type Locator interface {
	Locate(ctx context.Context, clientIP string) (*domain.Position, error)
}

// SpinResult - результат вращения. Spun == false, если выбирать было не из чего.
type SpinResult struct {
	Session *dto.RouletteSessionResponse `json:"session"`
	Spun    bool                         `json:"spun"`
	Plan    *SpinPlan                    `json:"plan,omitempty"`
}

// RouletteUseCase - автомат состояний рулетки поверх сессий в Redis
type RouletteUseCase struct {
	datasets         DatasetProvider
	sessions         repository.RouletteSessionRepository
	locator          Locator
	renderer         WheelRenderer
	rng              RNG
	defaultWheelSize int
	logger           *zap.Logger
	now              func() time.Time

	// сериализует чтение-изменение-запись сессий
	mu sync.Mutex
}

// NewRouletteUseCase создает RouletteUseCase
func NewRouletteUseCase(
	datasets DatasetProvider,
	sessions repository.RouletteSessionRepository,
	locator Locator,
	renderer WheelRenderer,
	rng RNG,
	defaultWheelSize int,
	logger *zap.Logger,
) *RouletteUseCase {
	return &RouletteUseCase{
		datasets:         datasets,
		sessions:         sessions,
		locator:          locator,
		renderer:         renderer,
		rng:              rng,
		defaultWheelSize: defaultWheelSize,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

// Create создаёт сессию с настройками по умолчанию и заполненным колесом
func (uc *RouletteUseCase) Create(ctx context.Context) (*dto.RouletteSessionResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := uc.now()
	s := &domain.RouletteSession{
		ID:          uuid.NewString(),
		Filters:     domain.DefaultRouletteFilters(),
		SpinnerMode: domain.SpinnerWheel,
		WheelSize:   uc.defaultWheelSize,
		WheelIDs:    []string{},
		CreatedAt:   now,
	}

	eligible, version := uc.eligible(s)
	uc.reshuffle(s, eligible, version)

	resp, err := uc.save(ctx, s, eligible)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Roulette session created",
		zap.String("session_id", s.ID),
		zap.Int("eligible", len(eligible)),
		zap.Int("wheel", len(s.WheelIDs)))
	return resp, nil
}

// Get возвращает текущее состояние сессии
func (uc *RouletteUseCase) Get(ctx context.Context, id string) (*dto.RouletteSessionResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	eligible, version := uc.eligible(s)
	if uc.refreshWheel(s, eligible, version) {
		return uc.save(ctx, s, eligible)
	}
	return uc.view(s, eligible), nil
}

// UpdateFilters частично обновляет фильтры
func (uc *RouletteUseCase) UpdateFilters(ctx context.Context, id string, req dto.UpdateRouletteFiltersRequest) (*dto.RouletteSessionResponse, error) {
	return uc.mutate(ctx, id, func(s *domain.RouletteSession) (bool, error) {
		f := &s.Filters
		if req.UseFilters != nil {
			f.UseFilters = *req.UseFilters
		}
		if req.MaxDistanceKm != nil {
			if !utils.ValidateDistance(*req.MaxDistanceKm) {
				return false, errors.ErrInvalidDistance
			}
			f.MaxDistanceKm = *req.MaxDistanceKm
		}
		if req.ViolationTimePeriod != nil {
			f.ViolationTimePeriod = *req.ViolationTimePeriod
		}
		if req.NoViolationLimit {
			f.MaxViolations = nil
		} else if req.MaxViolations != nil {
			limit := *req.MaxViolations
			f.MaxViolations = &limit
		}
		return true, nil
	})
}

// SetManualSource задаёт исходную точку кликом по карте
func (uc *RouletteUseCase) SetManualSource(ctx context.Context, id string, lat, lng float64) (*dto.RouletteSessionResponse, error) {
	if !utils.ValidateCoordinates(lat, lng) {
		return nil, errors.ErrInvalidCoordinates
	}
	return uc.mutate(ctx, id, func(s *domain.RouletteSession) (bool, error) {
		s.Filters.SourceLocation = &domain.Point{Lat: lat, Lon: lng}
		s.Filters.LocationMode = domain.LocationManual
		return true, nil
	})
}

// SetGeolocationSource задаёт исходную точку из координат браузера,
// а без них определяет позицию по IP клиента
func (uc *RouletteUseCase) SetGeolocationSource(ctx context.Context, id string, req dto.GeolocationSourceRequest, clientIP string) (*dto.RouletteSessionResponse, error) {
	var point domain.Point
	if req.Lat != nil && req.Lng != nil {
		point = domain.Point{Lat: *req.Lat, Lon: *req.Lng}
	} else {
		if uc.locator == nil {
			return nil, errors.ErrGeolocationUnsupported
		}
		pos, err := uc.locator.Locate(ctx, clientIP)
		if err != nil {
			return nil, err
		}
		point = domain.Point{Lat: pos.Lat, Lon: pos.Lng}
	}

	if !utils.ValidateCoordinates(point.Lat, point.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}

	return uc.mutate(ctx, id, func(s *domain.RouletteSession) (bool, error) {
		s.Filters.SourceLocation = &point
		s.Filters.LocationMode = domain.LocationGeolocation
		return true, nil
	})
}

// ClearSource убирает исходную точку
func (uc *RouletteUseCase) ClearSource(ctx context.Context, id string) (*dto.RouletteSessionResponse, error) {
	return uc.mutate(ctx, id, func(s *domain.RouletteSession) (bool, error) {
		s.Filters.SourceLocation = nil
		s.Filters.LocationMode = domain.LocationNone
		return true, nil
	})
}

// ToggleHazardExclusion добавляет рейтинг в исключения или убирает его оттуда
func (uc *RouletteUseCase) ToggleHazardExclusion(ctx context.Context, id string, rating domain.HazardRating) (*dto.RouletteSessionResponse, error) {
	if rating == "" {
		return nil, errors.ErrInvalidRequest.WithMessage("hazard rating is required")
	}
	return uc.mutate(ctx, id, func(s *domain.RouletteSession) (bool, error) {
		excluded := make([]domain.HazardRating, 0, len(s.Filters.ExcludedHazardRatings)+1)
		found := false
		for _, r := range s.Filters.ExcludedHazardRatings {
			if r == rating {
				found = true
				continue
			}
			excluded = append(excluded, r)
		}
		if !found {
			excluded = append(excluded, rating)
		}
		s.Filters.ExcludedHazardRatings = excluded
		return true, nil
	})
}

// SetWheelSize меняет размер колеса
func (uc *RouletteUseCase) SetWheelSize(ctx context.Context, id string, size int) (*dto.RouletteSessionResponse, error) {
	if !domain.IsValidWheelSize(size) {
		return nil, errors.ErrInvalidWheelSize.WithDetails(map[string]interface{}{
			"allowed": domain.WheelSizeOptions,
		})
	}
	return uc.mutate(ctx, id, func(s *domain.RouletteSession) (bool, error) {
		s.WheelSize = size
		return true, nil
	})
}

// SetSpinnerMode переключает колесо и слот-машину
func (uc *RouletteUseCase) SetSpinnerMode(ctx context.Context, id string, mode domain.SpinnerMode) (*dto.RouletteSessionResponse, error) {
	if mode != domain.SpinnerWheel && mode != domain.SpinnerSlot {
		return nil, errors.ErrInvalidMode
	}
	return uc.mutate(ctx, id, func(s *domain.RouletteSession) (bool, error) {
		if s.IsSpinning {
			return false, errors.ErrSpinInProgress
		}
		s.SpinnerMode = mode
		return false, nil
	})
}

// Shuffle заново заполняет колесо по запросу пользователя
func (uc *RouletteUseCase) Shuffle(ctx context.Context, id string) (*dto.RouletteSessionResponse, error) {
	return uc.mutate(ctx, id, func(s *domain.RouletteSession) (bool, error) {
		if s.IsSpinning {
			return false, errors.ErrSpinInProgress
		}
		s.ClearSpin()
		return true, nil
	})
}

// Spin выбирает победителя: в режиме колеса из колеса, в режиме слота из всего пула
func (uc *RouletteUseCase) Spin(ctx context.Context, id string) (*SpinResult, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.IsSpinning {
		return nil, errors.ErrSpinInProgress
	}

	eligible, version := uc.eligible(s)
	refreshed := uc.refreshWheel(s, eligible, version)
	pool := eligible
	if s.SpinnerMode == domain.SpinnerWheel {
		pool = resolveWheel(s.WheelIDs, eligible)
		s.WheelIDs = restaurantIDs(pool)
	}

	idx, ok := DrawIndex(len(pool), uc.rng)
	if !ok {
		uc.logger.Debug("Nothing to spin", zap.String("session_id", id), zap.String("mode", string(s.SpinnerMode)))
		if refreshed {
			resp, err := uc.save(ctx, s, eligible)
			if err != nil {
				return nil, err
			}
			return &SpinResult{Session: resp, Spun: false}, nil
		}
		return &SpinResult{Session: uc.view(s, eligible), Spun: false}, nil
	}

	winnerID := pool[idx].ID()
	s.IsSpinning = true
	s.HasSpun = true
	s.WinnerID = &winnerID
	s.WinnerIndex = &idx

	plan := &SpinPlan{Mode: s.SpinnerMode, WinnerIndex: idx}
	if s.SpinnerMode == domain.SpinnerWheel {
		wheel := uc.renderer.PlanWheel(len(pool), idx, s.Rotation)
		s.Rotation = wheel.FinalRotation
		plan.Wheel = &wheel
	} else {
		slot := uc.renderer.PlanSlot(restaurantIDs(pool), idx)
		plan.Slot = &slot
	}

	resp, err := uc.save(ctx, s, eligible)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Roulette spun",
		zap.String("session_id", id),
		zap.String("mode", string(s.SpinnerMode)),
		zap.Int("pool", len(pool)),
		zap.String("winner", winnerID))
	return &SpinResult{Session: resp, Spun: true, Plan: plan}, nil
}

// CompleteSpin - клиент закончил анимацию
func (uc *RouletteUseCase) CompleteSpin(ctx context.Context, id string) (*dto.RouletteSessionResponse, error) {
	return uc.mutate(ctx, id, func(s *domain.RouletteSession) (bool, error) {
		s.IsSpinning = false
		return false, nil
	})
}

// Reset сбрасывает победителя, фильтры сохраняются
func (uc *RouletteUseCase) Reset(ctx context.Context, id string) (*dto.RouletteSessionResponse, error) {
	return uc.mutate(ctx, id, func(s *domain.RouletteSession) (bool, error) {
		s.ClearSpin()
		return false, nil
	})
}

// Close возвращает все настройки по умолчанию и перетасовывает колесо
func (uc *RouletteUseCase) Close(ctx context.Context, id string) (*dto.RouletteSessionResponse, error) {
	return uc.mutate(ctx, id, func(s *domain.RouletteSession) (bool, error) {
		s.Filters = domain.DefaultRouletteFilters()
		s.WheelSize = uc.defaultWheelSize
		s.SpinnerMode = domain.SpinnerWheel
		s.ClearSpin()
		return true, nil
	})
}

// mutate загружает сессию, применяет fn и сохраняет.
// Если fn просит перетасовку, колесо перетасовывается только в покое.
func (uc *RouletteUseCase) mutate(
	ctx context.Context,
	id string,
	fn func(s *domain.RouletteSession) (bool, error),
) (*dto.RouletteSessionResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}

	reshuffle, err := fn(s)
	if err != nil {
		return nil, err
	}

	eligible, version := uc.eligible(s)
	if reshuffle && s.CanReshuffle() {
		uc.reshuffle(s, eligible, version)
	} else {
		uc.refreshWheel(s, eligible, version)
	}

	return uc.save(ctx, s, eligible)
}

func (uc *RouletteUseCase) load(ctx context.Context, id string) (*domain.RouletteSession, error) {
	s, err := uc.sessions.Get(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to load roulette session", zap.String("session_id", id), zap.Error(err))
		return nil, errors.ErrCacheError
	}
	if s == nil {
		return nil, errors.ErrSessionNotFound
	}
	return s, nil
}

func (uc *RouletteUseCase) save(ctx context.Context, s *domain.RouletteSession, eligible []domain.RouletteRestaurant) (*dto.RouletteSessionResponse, error) {
	s.UpdatedAt = uc.now()
	resp := uc.view(s, eligible)
	s.Phase = resp.Phase

	if err := uc.sessions.Save(ctx, s); err != nil {
		uc.logger.Error("Failed to save roulette session", zap.String("session_id", s.ID), zap.Error(err))
		return nil, errors.ErrCacheError
	}
	return resp, nil
}

// eligible возвращает пул сессии и версию снимка, из которого он собран
func (uc *RouletteUseCase) eligible(s *domain.RouletteSession) ([]domain.RouletteRestaurant, string) {
	snap := uc.datasets.Snapshot()
	return EligibleRestaurants(snap.Restaurants, s.Filters, uc.now().UTC()), snap.Version
}

func (uc *RouletteUseCase) reshuffle(s *domain.RouletteSession, eligible []domain.RouletteRestaurant, version string) {
	s.WheelIDs = restaurantIDs(PopulateWheel(eligible, s.WheelSize, uc.rng))
	s.DatasetVersion = version
}

// refreshWheel перезаполняет колесо в покое, если сменился снимок данных
// или колесо короче доступного пула
func (uc *RouletteUseCase) refreshWheel(s *domain.RouletteSession, eligible []domain.RouletteRestaurant, version string) bool {
	if !s.CanReshuffle() {
		return false
	}
	if s.DatasetVersion == version && len(resolveWheel(s.WheelIDs, eligible)) >= wheelTarget(s.WheelSize, len(eligible)) {
		return false
	}
	uc.reshuffle(s, eligible, version)
	uc.logger.Debug("Roulette wheel refreshed",
		zap.String("session_id", s.ID),
		zap.String("dataset_version", version),
		zap.Int("wheel", len(s.WheelIDs)))
	return true
}

// wheelTarget - сколько сегментов должно быть на колесе; 0 означает весь пул
func wheelTarget(size, eligible int) int {
	if size > 0 && size < eligible {
		return size
	}
	return eligible
}

func (uc *RouletteUseCase) view(s *domain.RouletteSession, eligible []domain.RouletteRestaurant) *dto.RouletteSessionResponse {
	wheel := resolveWheel(s.WheelIDs, eligible)

	resp := &dto.RouletteSessionResponse{
		ID:               s.ID,
		SpinnerMode:      s.SpinnerMode,
		Filters:          s.Filters,
		WheelSize:        s.WheelSize,
		WheelSizeOptions: domain.WheelSizeOptions,
		Wheel:            wheel,
		EligibleCount:    len(eligible),
		IsSpinning:       s.IsSpinning,
		HasSpun:          s.HasSpun,
		WinnerIndex:      s.WinnerIndex,
		Rotation:         s.Rotation,
		UpdatedAt:        s.UpdatedAt,
	}

	if s.WinnerID != nil {
		for i := range eligible {
			if eligible[i].ID() == *s.WinnerID {
				winner := eligible[i]
				resp.Winner = &winner
				break
			}
		}
	}

	resp.Phase = derivePhase(s, len(eligible), len(wheel))
	return resp
}

func derivePhase(s *domain.RouletteSession, eligible, wheel int) domain.RoulettePhase {
	switch {
	case s.IsSpinning:
		return domain.PhaseSpinning
	case s.WinnerID != nil:
		return domain.PhaseWinnerSelected
	case wheel > 0:
		return domain.PhaseWheelPopulated
	case eligible > 0:
		return domain.PhaseEligible
	default:
		return domain.PhaseIdle
	}
}
