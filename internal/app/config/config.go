package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel LogLeveler `mapstructure:"LOG_LEVEL"`
	HTTP     HTTP       `mapstructure:",squash"`
	Redis    Redis      `mapstructure:",squash"`
	Amadeus  Amadeus    `mapstructure:",squash"`
	Search   Search     `mapstructure:",squash"`
}

type HTTP struct {
	Port    int           `mapstructure:"HTTP_PORT"`
	Timeout time.Duration `mapstructure:"HTTP_TIMEOUT"`
}

type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

// Amadeus holds the flight offer provider configuration.
// BaseURL routes to the Amadeus test environment unless overridden.
type Amadeus struct {
	BaseURL      string        `mapstructure:"AMADEUS_BASE_URL"`
	APIKey       string        `mapstructure:"AMADEUS_API_KEY"`
	APISecret    string        `mapstructure:"AMADEUS_API_SECRET"`
	Timeout      time.Duration `mapstructure:"AMADEUS_TIMEOUT"`
	RateLimitRPS int           `mapstructure:"AMADEUS_RATE_LIMIT"`
}

type Search struct {
	CacheExpiration time.Duration `mapstructure:"SEARCH_CACHE_EXPIRATION"`
	LockTimeout     time.Duration `mapstructure:"SEARCH_LOCK_TIMEOUT"`
}
