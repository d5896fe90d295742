package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENVIRONMENT", "LOG_LEVEL", "REDIS_ADDR", "CACHE_TTL", "RATE_LIMIT_CAPACITY", "RATE_LIMIT_WINDOW", "TRUST_PROXY"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Port)
	}
	if cfg.RedisAddr != "" {
		t.Errorf("expected empty redis address, got %s", cfg.RedisAddr)
	}
	if cfg.CacheTTL != time.Hour {
		t.Errorf("expected 1h cache ttl, got %s", cfg.CacheTTL)
	}
	if cfg.RateLimitCapacity != 5 || cfg.RateLimitWindow != time.Minute {
		t.Errorf("unexpected rate limit %d/%s", cfg.RateLimitCapacity, cfg.RateLimitWindow)
	}
	if cfg.TrustProxy {
		t.Errorf("expected forwarded headers to be untrusted by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("CACHE_TTL", "10m")
	t.Setenv("RATE_LIMIT_CAPACITY", "20")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("TRUST_PROXY", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "9090" || cfg.RedisAddr != "localhost:6379" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.CacheTTL != 10*time.Minute {
		t.Errorf("expected 10m, got %s", cfg.CacheTTL)
	}
	if cfg.RateLimitCapacity != 20 || cfg.RateLimitWindow != 30*time.Second {
		t.Errorf("unexpected rate limit %d/%s", cfg.RateLimitCapacity, cfg.RateLimitWindow)
	}
	if !cfg.TrustProxy {
		t.Errorf("expected TRUST_PROXY=true to be honored")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"CACHE_TTL":           "soon",
		"RATE_LIMIT_CAPACITY": "many",
		"TRUST_PROXY":         "perhaps",
		"RATE_LIMIT_WINDOW":   "-",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%q", key, value)
			}
		})
	}

	t.Run("zero capacity", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_CAPACITY", "0")
		if _, err := Load(); err == nil {
			t.Error("expected error for zero capacity")
		}
	})
}

func TestNewLogger(t *testing.T) {
	cfg := &Config{Environment: "production", LogLevel: "debug"}
	logger, err := cfg.NewLogger()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("expected debug level, got %s", logger.GetLevel())
	}
	if _, ok := logger.Formatter.(*logrus.JSONFormatter); !ok {
		t.Errorf("expected JSON formatter in production")
	}

	cfg.LogLevel = "loud"
	if _, err := cfg.NewLogger(); err == nil {
		t.Error("expected error for unknown level")
	}
}
