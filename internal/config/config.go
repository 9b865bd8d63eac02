package config

import (
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds the website configuration, read from the environment.
type Config struct {
	// Server settings
	Address     string `env:"WEBSITE_ADDRESS" envDefault:"0.0.0.0"`
	Port        int    `env:"WEBSITE_PORT" envDefault:"4002"`
	Environment string `env:"ENVIRONMENT" envDefault:"local"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"true"`

	RateLimit RateLimitConfig
}

// RateLimitConfig controls the global token bucket in front of all routes.
type RateLimitConfig struct {
	// RPS is the sustained request rate; 0 disables limiting
	RPS float64 `env:"RATE_LIMIT_RPS" envDefault:"0"`
	// Burst is the bucket size
	Burst int `env:"RATE_LIMIT_BURST" envDefault:"20"`
}

// IsEnabled returns true if requests should be rate limited
func (r *RateLimitConfig) IsEnabled() bool {
	return r.RPS > 0
}

// Addr returns the host:port the HTTP server listens on
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Address, strconv.Itoa(c.Port))
}

// Load parses the process environment.
func Load() (*Config, error) {
	return parse(env.Options{})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.RateLimit.Burst < 1 {
		cfg.RateLimit.Burst = 1
	}
	return cfg, nil
}

// NewConfig loads configuration from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.String("addr", cfg.Addr()),
		slog.Bool("metrics", cfg.MetricsEnabled),
		slog.Float64("rate_limit_rps", cfg.RateLimit.RPS),
	)

	return cfg, nil
}
