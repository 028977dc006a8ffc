// Package config loads planner settings from the environment
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/engraving-planner/internal/errors"
)

// Output formats
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Formats lists the supported output formats
var Formats = []string{FormatTable, FormatJSON}

var logLevels = []string{"debug", "info", "warn", "error"}

// Config holds the planner settings. Flags override what the environment sets.
type Config struct {
	BuildDir       string        `env:"PLANNER_BUILD_DIR"`
	Format         string        `env:"PLANNER_FORMAT" envDefault:"table"`
	LogLevel       string        `env:"PLANNER_LOG_LEVEL" envDefault:"warn"`
	RedisAddr      string        `env:"PLANNER_REDIS_ADDR"`
	RedisPassword  string        `env:"PLANNER_REDIS_PASSWORD"`
	RedisDB        int           `env:"PLANNER_REDIS_DB" envDefault:"0"`
	RedisKeyPrefix string        `env:"PLANNER_REDIS_KEY_PREFIX" envDefault:"engraving:build:"`
	RedisTimeout   time.Duration `env:"PLANNER_REDIS_TIMEOUT" envDefault:"5s"`
	RedisTLS       bool          `env:"PLANNER_REDIS_TLS" envDefault:"false"`
	RedisRetries   int           `env:"PLANNER_REDIS_MAX_RETRIES" envDefault:"3"`
}

// Load parses the environment into a Config
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	return cfg, nil
}

// Validate checks the settings
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("format", c.Format, Formats, vb)
	errors.ValidateEnum("log_level", strings.ToLower(c.LogLevel), logLevels, vb)
	errors.ValidateRange("redis_db", c.RedisDB, 0, 15, vb)
	errors.ValidateRange("redis_max_retries", c.RedisRetries, 0, 10, vb)
	if c.RedisTimeout <= 0 {
		vb.Field("redis_timeout", "must be positive")
	}

	return vb.Build()
}

// SlogLevel maps LogLevel to a slog level
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
