// Package redis wraps the go-redis client so repositories depend on an
// interface that tests can satisfy with miniredis.
package redis

import (
	"crypto/tls"

	"github.com/redis/go-redis/v9"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/errors"
)

// Config describes how to reach a single Redis instance. URL, when set,
// takes precedence over Addr and DB.
type Config struct {
	Addr     string
	URL      string
	Password string
	DB       int

	PoolSize   int
	MaxRetries int
	UseTLS     bool
}

// Validate requires Addr or URL
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("redis config is required")
	}

	vb := errors.NewValidationBuilder()
	if cfg.Addr == "" && cfg.URL == "" {
		vb.Field("addr", "addr or url is required")
	}
	if cfg.DB < 0 {
		vb.InvalidField("db", "must not be negative")
	}
	if cfg.PoolSize < 0 {
		vb.InvalidField("pool_size", "must not be negative")
	}
	return vb.Build()
}

func (cfg *Config) options() (*redis.Options, error) {
	if cfg.URL != "" {
		opts, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid redis url")
		}
		if cfg.Password != "" {
			opts.Password = cfg.Password
		}
		return opts, nil
	}

	return &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}, nil
}

// NewClient opens a client for cfg. No connection is made until first use.
func NewClient(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts, err := cfg.options()
	if err != nil {
		return nil, err
	}

	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}
	if cfg.MaxRetries != 0 {
		opts.MaxRetries = cfg.MaxRetries
	}
	if cfg.UseTLS && opts.TLSConfig == nil {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	return redis.NewClient(opts), nil
}
