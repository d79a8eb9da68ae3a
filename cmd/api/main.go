package main

// @title NYC Safety Calculator API
// @version 1.0.0
// @description Калькулятор снижения риска поездки по району Нью-Йорка: таблица расстояний и расчёт.
// @description
// @description Основные возможности:
// @description - HTML-страница калькулятора с двухуровневым меню выбора района
// @description - Таблица расстояний по округам
// @description - Расчёт снижения риска для выбранного района

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/nyc-safety-calculator/docs/swagger"
	"github.com/nyc-safety-calculator/internal/config"
	httpDelivery "github.com/nyc-safety-calculator/internal/delivery/http"
	"github.com/nyc-safety-calculator/internal/delivery/http/handler"
	"github.com/nyc-safety-calculator/internal/domain/repository"
	"github.com/nyc-safety-calculator/internal/pkg/logger"
	"github.com/nyc-safety-calculator/internal/repository/cache"
	"github.com/nyc-safety-calculator/internal/repository/table"
	"github.com/nyc-safety-calculator/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting NYC Safety Calculator")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Load distance table
	distances, err := table.LoadFile(cfg.Table.File)
	if err != nil {
		log.Fatal("Failed to load distance table", zap.String("file", cfg.Table.File), zap.Error(err))
	}
	log.Info("Distance table loaded",
		zap.Int("groups", len(distances.GroupNames())),
		zap.Int("items", distances.Len()),
	)

	// 4. Connect to Redis (optional)
	var cacheRepo repository.CacheRepository
	var redisClient *cache.Redis
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Health(ctx); err != nil {
			cancel()
			log.Fatal("Redis health check failed", zap.Error(err))
		}
		cancel()

		cacheRepo = cache.NewCacheRepository(redisClient)
		log.Info("Redis connected")
	} else {
		cacheRepo = cache.NewNoopRepository()
		log.Info("Redis disabled, results are not cached")
	}

	// 5. Initialize Use Cases
	calculatorUC := usecase.NewCalculatorUseCase(
		distances,
		cfg.RiskModel(),
		cacheRepo,
		log,
		cfg.Cache.ResultCacheTTL,
	)

	log.Info("Use cases initialized")

	// 6. Initialize HTTP Handlers
	pageHandler, err := handler.NewPageHandler(calculatorUC, log)
	if err != nil {
		log.Fatal("Failed to initialize page handler", zap.Error(err))
	}
	calculatorHandler := handler.NewCalculatorHandler(calculatorUC, log)

	log.Info("HTTP handlers initialized")

	// 7. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		pageHandler,
		calculatorHandler,
		cacheRepo,
	)

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
