package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Cache       CacheConfig
	Log         LogConfig
	Worker      WorkerConfig
	Dataset     DatasetConfig
	Geolocation GeolocationConfig
	Roulette    RouletteConfig
}

type ServerConfig struct {
	Host           string
	Port           int
	Env            string
	AllowedOrigins []string
	RateLimit      int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	ConnectAttempts int
	MigrationsPath  string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	StatsTTL           time.Duration
	GeolocationTTL     time.Duration
	RouletteSessionTTL time.Duration
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	StreamReadTimeout time.Duration
	ShutdownTimeout   time.Duration
}

// DatasetConfig - источник данных инспекций: http(s) URL или путь к файлу
type DatasetConfig struct {
	URL            string
	RequestTimeout time.Duration
}

type GeolocationConfig struct {
	ProviderURL string
	Timeout     time.Duration
}

type RouletteConfig struct {
	DefaultWheelSize int
}

// Load читает конфигурацию из окружения. Файл .env необязателен.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Server: ServerConfig{
			Host:           v.GetString("API_HOST"),
			Port:           v.GetInt("API_PORT"),
			Env:            v.GetString("API_ENV"),
			AllowedOrigins: splitList(v.GetString("API_ALLOWED_ORIGINS")),
			RateLimit:      v.GetInt("API_RATE_LIMIT"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
			ConnectAttempts: v.GetInt("DB_CONNECT_ATTEMPTS"),
			MigrationsPath:  v.GetString("DB_MIGRATIONS_PATH"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			StatsTTL:           time.Duration(v.GetInt("STATS_CACHE_TTL")) * time.Second,
			GeolocationTTL:     time.Duration(v.GetInt("GEOLOCATION_CACHE_TTL")) * time.Second,
			RouletteSessionTTL: time.Duration(v.GetInt("ROULETTE_SESSION_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:           v.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     v.GetString("WORKER_CONSUMER_GROUP"),
			StreamReadTimeout: time.Duration(v.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
			ShutdownTimeout:   time.Duration(v.GetInt("WORKER_SHUTDOWN_TIMEOUT")) * time.Second,
		},
		Dataset: DatasetConfig{
			URL:            v.GetString("DATASET_URL"),
			RequestTimeout: time.Duration(v.GetInt("DATASET_REQUEST_TIMEOUT")) * time.Second,
		},
		Geolocation: GeolocationConfig{
			ProviderURL: v.GetString("GEOLOCATION_PROVIDER_URL"),
			Timeout:     time.Duration(v.GetInt("GEOLOCATION_TIMEOUT")) * time.Second,
		},
		Roulette: RouletteConfig{
			DefaultWheelSize: v.GetInt("ROULETTE_DEFAULT_WHEEL_SIZE"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("API_ALLOWED_ORIGINS", "*")
	v.SetDefault("API_RATE_LIMIT", 120)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 300)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 60)
	v.SetDefault("DB_CONNECT_ATTEMPTS", 5)
	v.SetDefault("DB_MIGRATIONS_PATH", "migrations")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)

	v.SetDefault("STATS_CACHE_TTL", 3600)
	v.SetDefault("GEOLOCATION_CACHE_TTL", 300)
	v.SetDefault("ROULETTE_SESSION_TTL", 86400)

	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("WORKER_ENABLED", true)
	v.SetDefault("WORKER_CONSUMER_GROUP", "dataset-reload-workers")
	v.SetDefault("WORKER_STREAM_READ_TIMEOUT", 5000)
	v.SetDefault("WORKER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("DATASET_URL", "/restaurants_with_coordinates.json")
	v.SetDefault("DATASET_REQUEST_TIMEOUT", 30)

	v.SetDefault("GEOLOCATION_TIMEOUT", 10)

	v.SetDefault("ROULETTE_DEFAULT_WHEEL_SIZE", 8)
}

func (c *Config) validate() error {
	if c.Dataset.URL == "" {
		return fmt.Errorf("DATASET_URL is required")
	}
	if !isAllowedWheelSize(c.Roulette.DefaultWheelSize) {
		return fmt.Errorf("ROULETTE_DEFAULT_WHEEL_SIZE %d is not one of 4, 6, 8, 10, 65, 0", c.Roulette.DefaultWheelSize)
	}
	return nil
}

func isAllowedWheelSize(size int) bool {
	switch size {
	case 4, 6, 8, 10, 65, 0:
		return true
	}
	return false
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// IsRemoteDataset - датасет загружается по HTTP
func (c *Config) IsRemoteDataset() bool {
	return strings.HasPrefix(c.Dataset.URL, "http://") || strings.HasPrefix(c.Dataset.URL, "https://")
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return c.Database.DSN()
}

// DSN собирает строку подключения в формате key=value
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
