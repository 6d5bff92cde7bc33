package main

// @title Inspection Map API
// @version 1.0.0
// @description Бэкенд карты санитарных инспекций ресторанов. Загружает набор данных инспекций и отдаёт отфильтрованные проекции для карты и списка, детали заведения, статистику, временную шкалу и рулетку выбора ресторана.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/inspection-map/docs"
	"github.com/inspection-map/internal/config"
	httpDelivery "github.com/inspection-map/internal/delivery/http"
	"github.com/inspection-map/internal/delivery/http/handler"
	"github.com/inspection-map/internal/infrastructure/ipgeo"
	"github.com/inspection-map/internal/pkg/logger"
	"github.com/inspection-map/internal/repository/cache"
	"github.com/inspection-map/internal/repository/postgres"
	redisRepo "github.com/inspection-map/internal/repository/redis"
	"github.com/inspection-map/internal/repository/source"
	"github.com/inspection-map/internal/usecase"
	"github.com/inspection-map/internal/worker"
	"github.com/inspection-map/internal/worker/dataset"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Inspection Map")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("dataset", cfg.Dataset.URL),
		zap.Bool("worker_enabled", cfg.Worker.Enabled),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}
	cancel()

	log.Info("All connections healthy")

	if cfg.Database.MigrationsPath != "" {
		migrateCtx, migrateCancel := context.WithTimeout(context.Background(), 30*time.Second)
		if _, err := db.Migrate(migrateCtx, cfg.Database.MigrationsPath); err != nil {
			log.Fatal("Failed to apply migrations", zap.Error(err))
		}
		migrateCancel()
	}

	// 6. Initialize repositories
	cacheRepo := cache.NewCacheRepository(redisClient)
	sessionRepo := cache.NewRouletteSessionRepository(redisClient, cfg.Cache.RouletteSessionTTL)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), cfg.Worker.StreamReadTimeout, log)
	preferencesRepo := postgres.NewPreferencesRepository(db)
	datasetLoadRepo := postgres.NewDatasetLoadRepository(db)
	datasetSource := source.New(cfg, log)
	geoProvider := ipgeo.NewClient(&cfg.Geolocation, log)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	datasetUC := usecase.NewDatasetUseCase(datasetSource, datasetLoadRepo, streamRepo, log)
	statsUC := usecase.NewStatsUseCase(datasetUC, cacheRepo, log, cfg.Cache.StatsTTL)
	restaurantUC := usecase.NewRestaurantUseCase(datasetUC, log)
	geolocationUC := usecase.NewGeolocationUseCase(
		geoProvider,
		cacheRepo,
		log,
		cfg.Cache.GeolocationTTL,
		cfg.Geolocation.Timeout,
	)
	preferencesUC := usecase.NewPreferencesUseCase(preferencesRepo, log)

	// Доступ к rng сериализован мьютексом RouletteUseCase
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	rouletteUC := usecase.NewRouletteUseCase(
		datasetUC,
		sessionRepo,
		geolocationUC,
		usecase.NewWheelRenderer(rng),
		rng,
		cfg.Roulette.DefaultWheelSize,
		log,
	)

	log.Info("Use cases initialized")

	// 8. Initial dataset load. Ошибка не фатальна: сервис стартует с пустым набором.
	loadCtx, loadCancel := context.WithTimeout(context.Background(), cfg.Dataset.RequestTimeout+5*time.Second)
	if err := datasetUC.Load(loadCtx); err != nil {
		log.Error("Initial dataset load failed", zap.Error(err))
	}
	loadCancel()

	// 9. Workers
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	var workerManager *worker.WorkerManager
	if cfg.Worker.Enabled {
		workerManager = worker.NewWorkerManager(log, cfg.Worker.ShutdownTimeout)
		reloadWorker := dataset.NewReloadWorker(
			streamRepo,
			datasetUC,
			cfg.Worker.ConsumerGroup,
			log,
		)
		if err := workerManager.Register(reloadWorker); err != nil {
			log.Fatal("Failed to register worker", zap.Error(err))
		}
		if err := workerManager.Start(workerCtx); err != nil {
			log.Fatal("Failed to start workers", zap.Error(err))
		}
	}

	// 10. Initialize HTTP handlers
	handlers := httpDelivery.Handlers{
		Health: handler.NewHealthHandler(datasetUC, map[string]handler.HealthChecker{
			"postgres": db,
			"redis":    redisClient,
		}, log),
		Dataset:     handler.NewDatasetHandler(datasetUC, log),
		Stats:       handler.NewStatsHandler(statsUC, log),
		Restaurant:  handler.NewRestaurantHandler(restaurantUC, log),
		Roulette:    handler.NewRouletteHandler(rouletteUC, log),
		Geolocation: handler.NewGeolocationHandler(geolocationUC, log),
		Preferences: handler.NewPreferencesHandler(preferencesUC, log),
	}

	server := httpDelivery.NewServer(cfg, log, handlers)

	log.Info("HTTP server initialized")

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	workerCancel()
	if workerManager != nil {
		if err := workerManager.Stop(); err != nil {
			log.Error("Error stopping workers", zap.Error(err))
		}
	}

	if err := db.Close(); err != nil {
		log.Error("Failed to close PostgreSQL", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
