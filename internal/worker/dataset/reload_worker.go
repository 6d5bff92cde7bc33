package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/inspection-map/internal/domain"
	"github.com/inspection-map/internal/domain/repository"
	"github.com/inspection-map/internal/worker"
	"go.uber.org/zap"
)

// Reloader перезагружает набор данных; реализуется usecase.DatasetUseCase
type Reloader interface {
	Reload(ctx context.Context, requestID, requestedBy string) (*domain.DatasetStatus, error)
}

// ReloadWorker обрабатывает запросы на перезагрузку из stream:dataset:reload
type ReloadWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	reloader     Reloader
	consumerName string
}

// Option настраивает ReloadWorker
type Option func(*ReloadWorker)

// WithConsumerName переопределяет имя consumer, по умолчанию hostname-pid
func WithConsumerName(name string) Option {
	return func(w *ReloadWorker) {
		w.consumerName = name
	}
}

// NewReloadWorker создает ReloadWorker
func NewReloadWorker(
	streamRepo repository.StreamRepository,
	reloader Reloader,
	consumerGroup string,
	logger *zap.Logger,
	opts ...Option,
) *ReloadWorker {
	hostname, _ := os.Hostname()

	w := &ReloadWorker{
		BaseWorker:   worker.NewBaseWorker("dataset-reload", consumerGroup, logger),
		streamRepo:   streamRepo,
		reloader:     reloader,
		consumerName: fmt.Sprintf("%s-%d", hostname, os.Getpid()),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start читает стрим до Stop или отмены ctx
func (w *ReloadWorker) Start(ctx context.Context) error {
	logger := w.Logger()

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamDatasetReload, w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	// Останавливаем чтение стрима и по Stop, и по отмене внешнего ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-w.StopChan():
			cancel()
		case <-ctx.Done():
		}
	}()

	messages, err := w.streamRepo.ConsumeStream(ctx, domain.StreamDatasetReload, w.ConsumerGroup(), w.consumerName)
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	logger.Info("Reload worker started",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName))

	for {
		select {
		case <-ctx.Done():
			logger.Info("Reload worker stopped")
			return nil
		case msg, ok := <-messages:
			if !ok {
				logger.Info("Reload stream closed")
				return nil
			}
			w.handle(ctx, msg)
		}
	}
}

// handle обрабатывает одно сообщение: одна перезагрузка на запрос, без повторов.
// Неудача уже записана загрузчиком в состояние и журнал; сообщение подтверждается всегда.
func (w *ReloadWorker) handle(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger().With(zap.String("message_id", msg.ID))
	ackCtx := context.WithoutCancel(ctx)

	var event domain.DatasetReloadEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		logger.Warn("Failed to parse reload event, skipping", zap.Error(err))
		w.MarkFailed()
		w.ack(ackCtx, msg.ID)
		return
	}

	status, err := w.reloader.Reload(ctx, event.RequestID, event.RequestedBy)
	if err != nil {
		logger.Error("Dataset reload failed",
			zap.String("request_id", event.RequestID),
			zap.Error(err))
		w.MarkFailed()
	} else {
		logger.Info("Dataset reloaded",
			zap.String("request_id", event.RequestID),
			zap.String("version", status.Version),
			zap.Int("records", status.Total))
		w.MarkProcessed()
	}

	w.ack(ackCtx, msg.ID)
}

func (w *ReloadWorker) ack(ctx context.Context, id string) {
	if err := w.streamRepo.AckMessage(ctx, domain.StreamDatasetReload, w.ConsumerGroup(), id); err != nil {
		w.Logger().Error("Failed to ack reload message",
			zap.String("message_id", id),
			zap.Error(err))
	}
}
