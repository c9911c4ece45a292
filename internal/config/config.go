package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ServerConfig holds all server-related settings
type ServerConfig struct {
	Port int
	Host string
}

// StoreConfig holds local session-store settings. The session is the only
// durable artifact: one key-value entry in a SQLite file on disk.
type StoreConfig struct {
	Path       string
	SessionKey string
}

// Config holds the complete application configuration
type Config struct {
	Server         *ServerConfig
	Store          *StoreConfig
	AllowedOrigins []string
	// ComposerDelay is the artificial pause applied to post submission,
	// mirroring the UI's simulated network latency.
	ComposerDelay time.Duration
	Debug         bool
}

// DefaultConfig provides default server settings
func DefaultConfig() *Config {
	return &Config{
		Server: &ServerConfig{
			Port: 8080,
			Host: "0.0.0.0",
		},
		Store: &StoreConfig{
			Path:       "study-hub.db",
			SessionKey: "study-buddy-user",
		},
		AllowedOrigins: []string{"*"},
		ComposerDelay:  time.Second,
	}
}

// LoadConfig loads configuration from environment variables and applies defaults
func LoadConfig() (*Config, error) {
	// Try to load .env from the working directory and the project root when
	// running from cmd/server. A missing .env is fine.
	envLocations := []string{".env", "../../.env"}
	for _, location := range envLocations {
		if err := godotenv.Load(location); err == nil {
			break
		}
	}

	cfg := DefaultConfig()

	if portStr := os.Getenv("PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			cfg.Server.Port = port
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		cfg.Server.Host = host
	}

	if path := os.Getenv("SESSION_STORE_PATH"); path != "" {
		cfg.Store.Path = path
	}

	if key := os.Getenv("SESSION_STORE_KEY"); key != "" {
		cfg.Store.SessionKey = key
	}

	if delayStr := os.Getenv("COMPOSER_DELAY_MS"); delayStr != "" {
		if ms, err := strconv.Atoi(delayStr); err == nil && ms >= 0 {
			cfg.ComposerDelay = time.Duration(ms) * time.Millisecond
		}
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	}

	if debug := os.Getenv("DEBUG"); debug == "true" {
		cfg.Debug = true
	}

	return cfg, nil
}
