package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/nyc-safety-calculator/internal/config"
	"github.com/nyc-safety-calculator/internal/delivery/http/handler"
	"github.com/nyc-safety-calculator/internal/delivery/http/middleware"
	"github.com/nyc-safety-calculator/internal/domain/repository"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	pageHandler       *handler.PageHandler
	calculatorHandler *handler.CalculatorHandler

	cacheRepo repository.CacheRepository
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	pageHandler *handler.PageHandler,
	calculatorHandler *handler.CalculatorHandler,
	cacheRepo repository.CacheRepository,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "NYC Safety Calculator",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		pageHandler:       pageHandler,
		calculatorHandler: calculatorHandler,
		cacheRepo:         cacheRepo,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App - доступ к fiber.App для тестов
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Страница калькулятора
	s.app.Get("/", s.pageHandler.RenderPage)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", s.health)

	api.Get("/table", s.calculatorHandler.GetTable)
	api.Post("/calculate", s.calculatorHandler.Calculate)
}

// health godoc
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/health [get]
func (s *Server) health(c *fiber.Ctx) error {
	cacheStatus := "ok"
	if err := s.cacheRepo.Health(c.Context()); err != nil {
		// кеш необязателен, сервис остаётся рабочим
		s.logger.Warn("Cache health check failed", zap.Error(err))
		cacheStatus = "unavailable"
	}

	return c.JSON(fiber.Map{
		"status": "healthy",
		"cache":  cacheStatus,
		"time":   time.Now(),
	})
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
		errCode := "INTERNAL_SERVER_ERROR"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			if code == fiber.StatusNotFound {
				errCode = "NOT_FOUND"
			}
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    errCode,
				"message": err.Error(),
			},
		})
	}
}
