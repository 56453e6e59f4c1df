// Package config loads server configuration from the environment.
package config

import (
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/errors"
)

// Config is the server configuration. Command line flags override the
// environment after Load.
type Config struct {
	GRPCPort    int    `env:"LEDGER_GRPC_PORT" envDefault:"50051"`
	RedisAddr   string `env:"LEDGER_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisDB     int    `env:"LEDGER_REDIS_DB" envDefault:"0"`
	CatalogPath string `env:"LEDGER_CATALOG_PATH" envDefault:"data/catalog.yaml"`
	MetricsAddr string `env:"LEDGER_METRICS_ADDR" envDefault:":9090"`
	LogLevel    string `env:"LEDGER_LOG_LEVEL" envDefault:"info"`
	TxRetries   int    `env:"LEDGER_TX_RETRIES" envDefault:"5"`
}

// Load parses the environment into a Config
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	return &cfg, nil
}

// Validate checks the loaded values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("GRPCPort", c.GRPCPort, 1, 65535, vb)
	errors.ValidateRequired("RedisAddr", c.RedisAddr, vb)
	errors.ValidateRequired("CatalogPath", c.CatalogPath, vb)
	errors.ValidateRange("TxRetries", c.TxRetries, 1, 100, vb)
	errors.ValidateEnum("LogLevel", strings.ToLower(c.LogLevel), []string{"debug", "info", "warn", "error"}, vb)
	return vb.Build()
}

// SlogLevel converts LogLevel to a slog level
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
