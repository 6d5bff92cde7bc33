package http

import (
	"context"
	stdErrors "errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/inspection-map/internal/config"
	"github.com/inspection-map/internal/delivery/http/handler"
	"github.com/inspection-map/internal/delivery/http/middleware"
	"github.com/inspection-map/internal/pkg/errors"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Handlers - набор обработчиков HTTP API
type Handlers struct {
	Health      *handler.HealthHandler
	Dataset     *handler.DatasetHandler
	Stats       *handler.StatsHandler
	Restaurant  *handler.RestaurantHandler
	Roulette    *handler.RouletteHandler
	Geolocation *handler.GeolocationHandler
	Preferences *handler.PreferencesHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	handlers Handlers
}

// NewServer - создание нового HTTP сервера
func NewServer(cfg *config.Config, logger *zap.Logger, handlers Handlers) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Inspection Map",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:      app,
		config:   cfg,
		logger:   logger,
		handlers: handlers,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App возвращает fiber приложение; используется в тестах через app.Test
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.AllowedOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	h := s.handlers

	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1", middleware.RateLimit(s.config.Server.RateLimit))

	// Health check
	api.Get("/health", h.Health.Health)

	// Dataset
	api.Get("/dataset", h.Dataset.GetDataset)
	api.Post("/dataset/reload", h.Dataset.Reload)

	// Stats
	api.Get("/stats", h.Stats.GetStatistics)

	// Restaurants
	api.Get("/restaurants", h.Restaurant.List)
	api.Get("/restaurants/map", h.Restaurant.Map)
	api.Get("/restaurants/detail", h.Restaurant.Detail)
	api.Get("/timeline", h.Restaurant.Timeline)

	// Roulette
	roulette := api.Group("/roulette/sessions")
	roulette.Post("/", h.Roulette.Create)
	roulette.Get("/:id", h.Roulette.Get)
	roulette.Patch("/:id/filters", h.Roulette.UpdateFilters)
	roulette.Put("/:id/source/manual", h.Roulette.SetManualSource)
	roulette.Put("/:id/source/geolocation", h.Roulette.SetGeolocationSource)
	roulette.Delete("/:id/source", h.Roulette.ClearSource)
	roulette.Post("/:id/hazard-exclusions/:rating/toggle", h.Roulette.ToggleHazardExclusion)
	roulette.Put("/:id/wheel-size", h.Roulette.SetWheelSize)
	roulette.Put("/:id/mode", h.Roulette.SetSpinnerMode)
	roulette.Post("/:id/shuffle", h.Roulette.Shuffle)
	roulette.Post("/:id/spin", h.Roulette.Spin)
	roulette.Post("/:id/spin/complete", h.Roulette.CompleteSpin)
	roulette.Post("/:id/reset", h.Roulette.Reset)
	roulette.Post("/:id/close", h.Roulette.Close)

	// Geolocation
	api.Get("/geolocation", h.Geolocation.Locate)

	// Preferences
	api.Get("/preferences/:client_id", h.Preferences.Get)
	api.Put("/preferences/:client_id", h.Preferences.Put)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		appCode := errors.ErrInternalServer.Code

		var fe *fiber.Error
		if stdErrors.As(err, &fe) {
			code = fe.Code
			switch code {
			case fiber.StatusNotFound:
				appCode = "NOT_FOUND"
			case fiber.StatusMethodNotAllowed:
				appCode = "METHOD_NOT_ALLOWED"
			}
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    appCode,
				"message": err.Error(),
			},
		})
	}
}
