package repository

import (
	"context"

	"github.com/inspection-map/internal/domain"
)

// RouletteSessionRepository хранит сессии рулетки
type RouletteSessionRepository interface {
	// Get возвращает сессию или nil, если её нет или истёк TTL
	Get(ctx context.Context, id string) (*domain.RouletteSession, error)

	// Save создаёт или перезаписывает сессию и продлевает TTL
	Save(ctx context.Context, session *domain.RouletteSession) error

	// Delete удаляет сессию
	Delete(ctx context.Context, id string) error
}
