package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/inspection-map/internal/domain"
	"github.com/inspection-map/internal/domain/repository"
	"github.com/inspection-map/internal/pkg/errors"
	"go.uber.org/zap"
)

// DatasetProvider отдаёт текущий неизменяемый снимок набора данных
type DatasetProvider interface {
	Snapshot() *domain.Dataset
}

// DatasetUseCase загружает набор данных и хранит текущий снимок.
// Снимок заменяется целиком и никогда не изменяется.
type DatasetUseCase struct {
	source    repository.DatasetSource
	loadRepo  repository.DatasetLoadRepository
	streamRep repository.StreamRepository
	logger    *zap.Logger

	reloadMu sync.Mutex

	mu       sync.RWMutex
	snapshot *domain.Dataset
	loading  bool
	lastErr  string
}

// NewDatasetUseCase создает DatasetUseCase. loadRepo и streamRepo могут быть nil.
func NewDatasetUseCase(
	source repository.DatasetSource,
	loadRepo repository.DatasetLoadRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *DatasetUseCase {
	return &DatasetUseCase{
		source:    source,
		loadRepo:  loadRepo,
		streamRep: streamRepo,
		logger:    logger,
		snapshot:  &domain.Dataset{Restaurants: []domain.Restaurant{}},
	}
}

// Snapshot возвращает текущий снимок; до первой успешной загрузки он пустой
func (uc *DatasetUseCase) Snapshot() *domain.Dataset {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.snapshot
}

// Status возвращает состояние загрузчика
func (uc *DatasetUseCase) Status() domain.DatasetStatus {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	status := domain.DatasetStatus{
		Loading: uc.loading,
		Error:   uc.lastErr,
		Version: uc.snapshot.Version,
		Total:   len(uc.snapshot.Restaurants),
	}
	if !uc.snapshot.LoadedAt.IsZero() {
		loadedAt := uc.snapshot.LoadedAt
		status.LoadedAt = &loadedAt
	}
	return status
}

// Load - первичная загрузка при старте
func (uc *DatasetUseCase) Load(ctx context.Context) error {
	_, err := uc.Reload(ctx, "", "startup")
	return err
}

// Reload перезагружает набор данных. Одновременно выполняется только одна загрузка.
// При ошибке прежний снимок сбрасывается: список пуст до следующей успешной загрузки.
func (uc *DatasetUseCase) Reload(ctx context.Context, requestID, requestedBy string) (*domain.DatasetStatus, error) {
	uc.reloadMu.Lock()
	defer uc.reloadMu.Unlock()

	uc.setLoading()
	started := time.Now()

	restaurants, fetchErr := uc.source.Fetch(ctx)
	duration := time.Since(started)
	version := uuid.NewString()

	audit := &domain.DatasetLoad{
		Version:    version,
		Source:     uc.source.Location(),
		DurationMS: duration.Milliseconds(),
	}
	event := &domain.DatasetLoadedEvent{
		RequestID: requestID,
		LoadedAt:  time.Now().UTC(),
	}

	if fetchErr != nil {
		msg := fetchErr.Error()
		uc.fail(msg)
		audit.Error = &msg
		event.Error = msg

		uc.logger.Error("Dataset load failed",
			zap.String("source", audit.Source),
			zap.String("requested_by", requestedBy),
			zap.Error(fetchErr))
	} else {
		if dups := DuplicateIDs(restaurants); len(dups) > 0 {
			uc.logger.Warn("Dataset contains duplicate details_url",
				zap.Int("duplicates", len(dups)),
				zap.Strings("details_urls", firstN(dups, 10)))
		}

		uc.replace(&domain.Dataset{
			Version:     version,
			LoadedAt:    event.LoadedAt,
			Restaurants: restaurants,
		})
		audit.RecordCount = len(restaurants)
		event.Version = version
		event.RecordCount = len(restaurants)

		uc.logger.Info("Dataset loaded",
			zap.String("version", version),
			zap.Int("records", len(restaurants)),
			zap.Duration("duration", duration),
			zap.String("requested_by", requestedBy))
	}

	uc.recordLoad(ctx, audit)
	uc.publishLoaded(ctx, event)

	status := uc.Status()
	if fetchErr != nil {
		return &status, errors.ErrDatasetLoadFailed.WithMessage(fetchErr.Error())
	}
	return &status, nil
}

// RequestReload ставит перезагрузку в очередь воркера через Redis Stream
func (uc *DatasetUseCase) RequestReload(ctx context.Context, requestedBy string) (string, error) {
	if uc.streamRep == nil {
		return "", errors.ErrInternalServer.WithMessage("reload queue is not configured")
	}

	event := &domain.DatasetReloadEvent{
		RequestID:   uuid.NewString(),
		RequestedBy: requestedBy,
		RequestedAt: time.Now().UTC(),
	}
	if err := uc.streamRep.PublishToStream(ctx, domain.StreamDatasetReload, event); err != nil {
		return "", fmt.Errorf("queue dataset reload: %w", err)
	}

	uc.logger.Info("Dataset reload queued",
		zap.String("request_id", event.RequestID),
		zap.String("requested_by", requestedBy))
	return event.RequestID, nil
}

// RecentLoads возвращает журнал последних загрузок
func (uc *DatasetUseCase) RecentLoads(ctx context.Context, limit int) ([]domain.DatasetLoad, error) {
	if uc.loadRepo == nil {
		return []domain.DatasetLoad{}, nil
	}
	loads, err := uc.loadRepo.Recent(ctx, limit)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithDetails(map[string]interface{}{"reason": err.Error()})
	}
	return loads, nil
}

func (uc *DatasetUseCase) setLoading() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.loading = true
	uc.lastErr = ""
}

func (uc *DatasetUseCase) replace(ds *domain.Dataset) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.snapshot = ds
	uc.loading = false
	uc.lastErr = ""
}

// fail сохраняет прежний снимок: до первой успешной загрузки он пустой
func (uc *DatasetUseCase) fail(msg string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.loading = false
	uc.lastErr = msg
}

func (uc *DatasetUseCase) recordLoad(ctx context.Context, load *domain.DatasetLoad) {
	if uc.loadRepo == nil {
		return
	}
	if err := uc.loadRepo.Record(ctx, load); err != nil {
		uc.logger.Warn("Failed to record dataset load", zap.Error(err))
	}
}

func (uc *DatasetUseCase) publishLoaded(ctx context.Context, event *domain.DatasetLoadedEvent) {
	if uc.streamRep == nil {
		return
	}
	if err := uc.streamRep.PublishToStream(ctx, domain.StreamDatasetLoaded, event); err != nil {
		uc.logger.Warn("Failed to publish dataset loaded event", zap.Error(err))
	}
}

// DuplicateIDs возвращает идентификаторы (details_url), встречающиеся больше одного раза,
// в порядке первого повтора
func DuplicateIDs(restaurants []domain.Restaurant) []string {
	seen := make(map[string]int, len(restaurants))
	dups := make([]string, 0)
	for _, r := range restaurants {
		seen[r.ID()]++
		if seen[r.ID()] == 2 {
			dups = append(dups, r.ID())
		}
	}
	return dups
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
