package worker

import (
	"context"
)

// Worker - фоновый обработчик сообщений
type Worker interface {
	// Start блокируется до остановки воркера или отмены ctx
	Start(ctx context.Context) error

	// Stop сигнализирует воркеру завершиться
	Stop() error

	Name() string

	// Stats возвращает счётчики обработанных сообщений
	Stats() Stats
}

// Stats - счётчики воркера
type Stats struct {
	Name      string `json:"name"`
	Processed int64  `json:"processed"`
	Failed    int64  `json:"failed"`
}
