// Package config reads the game's settings from the environment.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// Environments understood by the logger setup.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds the settings shared by every command.
type Config struct {
	Environment string
	LogLevel    slog.Level
	// RedisAddr selects the Redis player store. Empty means file saves.
	RedisAddr string
	// CatalogPath is a catalog YAML file. Empty means the bundled catalog.
	CatalogPath   string
	SaveDir       string
	DefaultPlayer string
	// WrapWidth word-wraps narration at this many columns. Zero never wraps.
	WrapWidth int
}

// Load reads the environment, filling in defaults for anything unset.
func Load() *Config {
	return &Config{
		Environment:   getEnv("ENVIRONMENT", EnvDevelopment),
		LogLevel:      parseLogLevel(getEnv("LOG_LEVEL", "warn")),
		RedisAddr:     getEnv("RPG_REDIS_ADDR", ""),
		CatalogPath:   getEnv("RPG_CATALOG", ""),
		SaveDir:       getEnv("RPG_SAVE_DIR", "saves"),
		DefaultPlayer: getEnv("RPG_DEFAULT_PLAYER", "hero"),
		WrapWidth:     getEnvInt("RPG_WRAP_WIDTH", 0),
	}
}

// Validate checks that either storage backend is usable.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("Environment", c.Environment, []string{EnvDevelopment, EnvProduction}, vb)
	errors.ValidateRequired("DefaultPlayer", c.DefaultPlayer, vb)
	errors.ValidateMin("WrapWidth", c.WrapWidth, 0, vb)
	if c.RedisAddr == "" {
		errors.ValidateRequired("SaveDir", c.SaveDir, vb)
	}

	return vb.Build()
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
