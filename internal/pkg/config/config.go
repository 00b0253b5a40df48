package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type GeminiConfig struct {
	// APIKey may be empty at boot; its absence is surfaced per submission
	// as a configuration failure, never sent over the wire.
	APIKey string
	Model  string
}

type SessionConfig struct {
	TTL       time.Duration
	JWTSecret string
}

type Config struct {
	Gemini      GeminiConfig
	Session     SessionConfig
	ServerPort  string
	MetricsPort string
	PprofPort   string
}

func Load() (*Config, error) {
	ttlMinutes, err := strconv.Atoi(getEnvOrDefault("SESSION_TTL_MINUTES", "120"))
	if err != nil || ttlMinutes <= 0 {
		return nil, fmt.Errorf("SESSION_TTL_MINUTES must be a positive integer")
	}

	cfg := &Config{
		Gemini: GeminiConfig{
			APIKey: os.Getenv("GEMINI_API_KEY"),
			Model:  getEnvOrDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		Session: SessionConfig{
			TTL:       time.Duration(ttlMinutes) * time.Minute,
			JWTSecret: getEnvOrDefault("JWT_SECRET_KEY", "default-secret-key-change-in-production-min-32-chars"),
		},
		ServerPort:  getEnvOrDefault("SERVER_PORT", "8091"),
		MetricsPort: getEnvOrDefault("METRICS_PORT", "9092"),
		PprofPort:   getEnvOrDefault("PPROF_PORT", "6060"),
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
