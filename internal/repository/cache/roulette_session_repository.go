package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/inspection-map/internal/domain"
	"github.com/inspection-map/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const rouletteKeyPrefix = "roulette:session:"

type rouletteSessionRepository struct {
	client *redis.Client
	logger *zap.Logger
	ttl    time.Duration
}

// NewRouletteSessionRepository хранит сессии как JSON; каждое сохранение продлевает TTL
func NewRouletteSessionRepository(redis *Redis, ttl time.Duration) repository.RouletteSessionRepository {
	return &rouletteSessionRepository{
		client: redis.Client(),
		logger: redis.logger,
		ttl:    ttl,
	}
}

func (r *rouletteSessionRepository) Get(ctx context.Context, id string) (*domain.RouletteSession, error) {
	data, err := r.client.Get(ctx, rouletteKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to load roulette session", zap.String("session_id", id), zap.Error(err))
		return nil, fmt.Errorf("get roulette session: %w", err)
	}

	var session domain.RouletteSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("unmarshal roulette session: %w", err)
	}
	return &session, nil
}

func (r *rouletteSessionRepository) Save(ctx context.Context, session *domain.RouletteSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal roulette session: %w", err)
	}

	if err := r.client.Set(ctx, rouletteKeyPrefix+session.ID, data, r.ttl).Err(); err != nil {
		r.logger.Error("Failed to save roulette session", zap.String("session_id", session.ID), zap.Error(err))
		return fmt.Errorf("save roulette session: %w", err)
	}

	r.logger.Debug("Roulette session saved",
		zap.String("session_id", session.ID),
		zap.String("phase", string(session.Phase)))
	return nil
}

func (r *rouletteSessionRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, rouletteKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("delete roulette session: %w", err)
	}
	return nil
}
