// Package redis provides a thin wrapper around the go-redis client library.
package redis

import (
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/engraving-planner/internal/errors"
)

// Options configures Redis client behavior
type Options struct {
	Password    string
	DB          int
	DialTimeout time.Duration
	ReadTimeout time.Duration
	MaxRetries  int
	UseTLS      bool
}

// NewClient creates a Redis client for a single instance.
// The connection is opened lazily on the first command.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.InvalidArgument("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	redisOpts := &redis.Options{
		Addr:        endpoint,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: opts.DialTimeout,
		ReadTimeout: opts.ReadTimeout,
		MaxRetries:  opts.MaxRetries,
	}

	if opts.UseTLS {
		redisOpts.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	return redis.NewClient(redisOpts), nil
}
