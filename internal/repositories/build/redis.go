package build

import (
	"context"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/engraving-planner/internal/errors"
	redisclient "github.com/KirkDiggler/engraving-planner/internal/redis"
)

// DefaultKeyPrefix namespaces build documents in Redis
const DefaultKeyPrefix = "engraving:build:"

type redisRepository struct {
	client    redisclient.Client
	keyPrefix string
}

// RedisConfig contains configuration for the Redis build repository.
type RedisConfig struct {
	Client redisclient.Client
	// KeyPrefix is prepended to every reference; defaults to DefaultKeyPrefix
	KeyPrefix string
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a repository reading build documents stored as Redis strings
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}

	return &redisRepository{
		client:    cfg.Client,
		keyPrefix: prefix,
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Ref == "" {
		return nil, errors.InvalidArgument(errRefEmpty)
	}

	key := r.keyPrefix + input.Ref
	slog.DebugContext(ctx, "fetching build from Redis", "key", key)

	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("build %s not found", key).WithMeta("key", key)
		}
		slog.ErrorContext(ctx, "failed to get build from Redis", "key", key, "error", err)
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to get build %s", key)
	}

	b, err := Decode([]byte(result), FormatAuto)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid build %s", key)
	}

	return &GetOutput{
		Build:  b,
		Source: "redis:" + key,
	}, nil
}

// GetKey returns the Redis key a reference resolves to with the default prefix
// Exposed for testing purposes
func GetKey(ref string) string {
	return DefaultKeyPrefix + ref
}
