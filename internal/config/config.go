package config

import (
	"os"
	"strconv"
	"time"
)

type AppConfig struct {
	// Server
	HTTPAddr string

	// Upstream CRM API
	UpstreamBaseURL string
	UpstreamWSURL   string

	// Redis (query cache)
	RedisAddr string
	RedisPass string
	RedisDB   int

	// Durable console state
	StateDir string

	// Session
	SessionTTL    time.Duration
	GuardInterval time.Duration
	CacheTTL      time.Duration
}

// Load loads environment variables into AppConfig.
func Load() AppConfig {
	return AppConfig{
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),

		UpstreamBaseURL: getEnv("UPSTREAM_BASE_URL", "http://crm-api:8000"),
		UpstreamWSURL:   getEnv("UPSTREAM_WS_URL", "ws://crm-api:8000/ws"),

		RedisAddr: getEnv("REDIS_ADDR", "redis-crmdesk:6379"),
		RedisPass: getEnv("REDIS_PASS", ""),
		RedisDB:   getEnvInt("REDIS_DB", 0),

		StateDir: getEnv("STATE_DIR", "/var/lib/crmdesk"),

		SessionTTL:    getEnvDuration("SESSION_TTL", 24*time.Hour),
		GuardInterval: getEnvDuration("GUARD_INTERVAL", 30*time.Second),
		CacheTTL:      getEnvDuration("CACHE_TTL", 5*time.Minute),
	}
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
