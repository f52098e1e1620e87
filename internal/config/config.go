// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Providers ProviderConfig
	Cache     CacheConfig
	Logging   LoggingConfig
	App       AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"PORT" envDefault:"5000"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
}

// ProviderConfig holds upstream vendor credentials and timeouts.
// Keys are optional at startup: a missing key disables the provider and
// lookups against it fail with a configuration error instead.
type ProviderConfig struct {
	FlightAwareAPIKey string        `env:"FLIGHTAWARE_API_KEY"`
	RapidAPIKey       string        `env:"RAPIDAPI_KEY"`
	UpstreamTimeout   time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"10s"`
}

// CacheConfig holds TTL cache settings. RedisAddr selects the Redis store
// when set; the in-process memory store is used otherwise.
type CacheConfig struct {
	RedisAddr      string        `env:"REDIS_ADDR"`
	ShortTTL       time.Duration `env:"CACHE_SHORT_TTL" envDefault:"30m"`
	LongTTL        time.Duration `env:"CACHE_LONG_TTL" envDefault:"12h"`
	NearWindowDays int           `env:"CACHE_NEAR_WINDOW_DAYS" envDefault:"3"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env     string `env:"APP_ENV" envDefault:"development"`
	Version string `env:"APP_VERSION" envDefault:"1.1.0"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Providers.UpstreamTimeout <= 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT must be positive")
	}

	if cfg.Cache.ShortTTL <= 0 {
		return fmt.Errorf("CACHE_SHORT_TTL must be positive")
	}
	if cfg.Cache.LongTTL <= 0 {
		return fmt.Errorf("CACHE_LONG_TTL must be positive")
	}
	if cfg.Cache.ShortTTL > cfg.Cache.LongTTL {
		return fmt.Errorf("CACHE_SHORT_TTL (%s) should not exceed CACHE_LONG_TTL (%s)",
			cfg.Cache.ShortTTL, cfg.Cache.LongTTL)
	}
	if cfg.Cache.NearWindowDays < 0 {
		return fmt.Errorf("CACHE_NEAR_WINDOW_DAYS must not be negative")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
