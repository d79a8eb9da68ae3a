package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/nyc-safety-calculator/internal/domain"
)

type Config struct {
	Server ServerConfig
	Redis  RedisConfig
	Cache  CacheConfig
	Log    LogConfig
	Risk   RiskConfig
	Table  TableConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Env         string
	CORSOrigins string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	ResultCacheTTL time.Duration
}

type LogConfig struct {
	Level string
	File  string
}

// RiskConfig - константы модели риска
type RiskConfig struct {
	AnnualFatalities   float64
	AnnualVehicleMiles float64
	LocalTripMiles     float64
}

// TableConfig - файл с таблицей расстояний вместо встроенной
type TableConfig struct {
	File string
}

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile - как Load, но с явным путём к .env
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// без .env работаем на переменных окружения
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:        v.GetString("API_HOST"),
			Port:        v.GetInt("API_PORT"),
			Env:         v.GetString("API_ENV"),
			CORSOrigins: v.GetString("API_CORS_ORIGINS"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			ResultCacheTTL: time.Duration(v.GetInt("RESULT_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
			File:  v.GetString("LOG_FILE"),
		},
		Risk: RiskConfig{
			AnnualFatalities:   v.GetFloat64("RISK_ANNUAL_FATALITIES"),
			AnnualVehicleMiles: v.GetFloat64("RISK_ANNUAL_VMT"),
			LocalTripMiles:     v.GetFloat64("RISK_LOCAL_TRIP_MILES"),
		},
		Table: TableConfig{
			File: v.GetString("TABLE_FILE"),
		},
	}

	if cfg.Risk.AnnualVehicleMiles <= 0 {
		return nil, fmt.Errorf("RISK_ANNUAL_VMT must be positive, got %v", cfg.Risk.AnnualVehicleMiles)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("API_CORS_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("RESULT_CACHE_TTL", 3600)
	v.SetDefault("RISK_ANNUAL_FATALITIES", domain.DefaultAnnualFatalities)
	v.SetDefault("RISK_ANNUAL_VMT", domain.DefaultAnnualVehicleMiles)
	v.SetDefault("RISK_LOCAL_TRIP_MILES", domain.DefaultLocalTripMiles)
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// RiskModel собирает модель риска из конфигурации
func (c *Config) RiskModel() domain.RiskModel {
	return domain.RiskModel{
		AnnualFatalities:   c.Risk.AnnualFatalities,
		AnnualVehicleMiles: c.Risk.AnnualVehicleMiles,
		LocalTripMiles:     c.Risk.LocalTripMiles,
	}
}
