package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the service settings.
type Config struct {
	Port              string
	Environment       string
	LogLevel          string
	RedisAddr         string // empty selects the in-memory cache
	CacheTTL          time.Duration
	RateLimitCapacity int
	RateLimitWindow   time.Duration
	TrustProxy        bool // rate limit by X-Forwarded-For instead of the peer address
}

// Load reads a .env file when present, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Warn(".env file not found, using environment")
	}

	cacheTTL, err := getDuration("CACHE_TTL", time.Hour)
	if err != nil {
		return nil, err
	}
	window, err := getDuration("RATE_LIMIT_WINDOW", time.Minute)
	if err != nil {
		return nil, err
	}
	capacity, err := getInt("RATE_LIMIT_CAPACITY", 5)
	if err != nil {
		return nil, err
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_CAPACITY must be positive, got %d", capacity)
	}
	trustProxy, err := getBool("TRUST_PROXY", false)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:              getEnv("PORT", "8080"),
		Environment:       getEnv("ENVIRONMENT", "development"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		CacheTTL:          cacheTTL,
		RateLimitCapacity: capacity,
		RateLimitWindow:   window,
		TrustProxy:        trustProxy,
	}, nil
}

// NewLogger builds the service logger: JSON in production, text elsewhere.
func (c *Config) NewLogger() (*logrus.Logger, error) {
	logger := logrus.New()

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	logger.SetLevel(level)

	if c.Environment == "production" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
