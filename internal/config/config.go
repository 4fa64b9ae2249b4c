package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

const (
	// DefaultBotDelay is the bot thinking delay used when a session does
	// not request one explicitly.
	DefaultBotDelay = 600 * time.Millisecond

	// SessionTTL is how long an untouched session survives in the store.
	SessionTTL = 24 * time.Hour

	// SessionIdleTimeout is how long a session stays in memory without
	// activity. The store copy survives until SessionTTL expires, so an
	// evicted session revives on the next lookup.
	SessionIdleTimeout = time.Hour
)

// ServerConfig holds all configuration values loaded from environment variables.
type ServerConfig struct {
	ServerHost  string
	ServerPort  string
	RedisURL    string
	PostgresURL string
	Token       string

	// BotDelayMs is the bot thinking delay applied to sessions that do
	// not request one explicitly.
	BotDelayMs int
}

// LoadServerConfig loads configuration from environment variables.
func LoadServerConfig() *ServerConfig {
	return &ServerConfig{
		ServerHost:  getEnvMust("REVERSI_SERVER_HOST"),
		ServerPort:  getEnvMust("REVERSI_SERVER_PORT"),
		RedisURL:    getEnvMust("REVERSI_REDIS_URL"),
		PostgresURL: getEnvMust("REVERSI_POSTGRES_URL"),
		Token:       getEnvMust("REVERSI_SERVER_TOKEN"),
		BotDelayMs:  GetEnvIntDefault("REVERSI_BOT_DELAY_MS", int(DefaultBotDelay/time.Millisecond)),
	}
}

// getEnvMust either returns the environment variable or logs a fatal error if it is not set.
func getEnvMust(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Environment variable is not set", "key", key)
		os.Exit(1)
	}
	return value
}

// GetEnvIntDefault returns the integer environment variable or a default.
func GetEnvIntDefault(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		slog.Error("Cannot parse environment variable as integer", "key", key, "value", value)
		os.Exit(1)
	}
	return parsed
}
