package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/inspection-map/internal/config"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const (
	pingTimeout     = 5 * time.Second
	firstRetryDelay = 500 * time.Millisecond
	defaultAttempts = 1
	driverName      = "pgx"
)

// DB - пул соединений Postgres для предпочтений и журнала загрузок
type DB struct {
	*sqlx.DB
	logger *zap.Logger
}

// New подключается к Postgres. При неудаче повторяет до cfg.ConnectAttempts раз,
// удваивая паузу между попытками.
func New(cfg *config.DatabaseConfig, logger *zap.Logger) (*DB, error) {
	attempts := cfg.ConnectAttempts
	if attempts < defaultAttempts {
		attempts = defaultAttempts
	}

	var (
		db    *sqlx.DB
		err   error
		delay = firstRetryDelay
	)
	for attempt := 1; attempt <= attempts; attempt++ {
		db, err = connect(cfg)
		if err == nil {
			break
		}
		if attempt == attempts {
			return nil, err
		}

		logger.Warn("PostgreSQL not ready, retrying",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", attempts),
			zap.Duration("delay", delay),
			zap.Error(err))
		time.Sleep(delay)
		delay *= 2
	}

	logger.Info("PostgreSQL connected",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.DBName),
		zap.Int("max_conns", cfg.MaxConns),
	)

	return &DB{DB: db, logger: logger}, nil
}

func connect(cfg *config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open(driverName, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

func (db *DB) Close() error {
	db.logger.Info("Closing PostgreSQL connection")
	return db.DB.Close()
}

// Health проверяет соединение; используется /health
func (db *DB) Health(ctx context.Context) error {
	return db.PingContext(ctx)
}

// NewDBForTest оборачивает готовое соединение, logger может быть nil
func NewDBForTest(sqlxDB *sqlx.DB, logger *zap.Logger) *DB {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DB{
		DB:     sqlxDB,
		logger: logger,
	}
}
