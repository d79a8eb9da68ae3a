//go:build ignore

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/nyc-safety-calculator/internal/config"
	"github.com/nyc-safety-calculator/internal/repository/cache"
	"github.com/nyc-safety-calculator/internal/repository/table"
	"github.com/nyc-safety-calculator/internal/usecase"
	"github.com/nyc-safety-calculator/internal/usecase/dto"
)

func main() {
	tableFile := flag.String("table", "", "YAML distance table (default: built-in NYC table)")
	ttl := flag.Duration("ttl", 0, "cache TTL (default: RESULT_CACHE_TTL)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *ttl == 0 {
		*ttl = cfg.Cache.ResultCacheTTL
	}

	distances, err := table.LoadFile(*tableFile)
	if err != nil {
		log.Fatalf("Failed to load table: %v", err)
	}

	redisClient, err := cache.NewRedis(&cfg.Redis, zap.NewNop())
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	uc := usecase.NewCalculatorUseCase(
		distances,
		cfg.RiskModel(),
		cache.NewCacheRepository(redisClient),
		zap.NewNop(),
		*ttl,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Прогрев: по одному расчёту на каждый район
	warmed := 0
	for _, g := range distances.Groups() {
		for _, it := range g.Items {
			resp, err := uc.Calculate(ctx, dto.CalculateRequest{Group: g.Name, Item: it.Name})
			if err != nil {
				log.Fatalf("Failed to calculate %q: %v", it.Name, err)
			}
			fmt.Printf("  %-15s %-20s %s\n", g.Name, it.Name, resp.Display)
			warmed++
		}
	}

	fmt.Printf("\n✅ Cache warmed: %d results, ttl %s, redis %s\n", warmed, *ttl, cfg.GetRedisAddr())
}
