package domain

import "time"

// Stream names
const (
	StreamDatasetReload = "stream:dataset:reload"
	StreamDatasetLoaded = "stream:dataset:loaded"
)

// DatasetReloadEvent - входящий запрос на перезагрузку набора данных
type DatasetReloadEvent struct {
	RequestID   string    `json:"request_id"`
	RequestedBy string    `json:"requested_by,omitempty"`
	RequestedAt time.Time `json:"requested_at"`
}

// DatasetLoadedEvent - результат перезагрузки
type DatasetLoadedEvent struct {
	RequestID   string    `json:"request_id,omitempty"`
	Version     string    `json:"version,omitempty"`
	RecordCount int       `json:"record_count"`
	LoadedAt    time.Time `json:"loaded_at"`
	Error       string    `json:"error,omitempty"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
