package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"hms/config"
	"hms/infras/otel"
	"hms/infras/redis"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
	// Nil is returned (wrapped) by Get on a miss, whatever the driver.
	Nil = goRedis.Nil
)

type Cache interface {
	Save(ctx context.Context, key string, value any, duration int) (err error)
	Get(ctx context.Context, key string, value any) (err error)
	// Generation numbers the keys under prefix. Clear moves the prefix to the next one, so
	// a value computed before a Clear and saved after it lands on a key no reader asks for.
	Generation(ctx context.Context, prefix string) (int64, error)
	Clear(ctx context.Context, prefix string) error
	// Increment atomically adds one to the counter at key. The window, in seconds, starts
	// with the first increment and is not extended by later ones.
	Increment(ctx context.Context, key string, window int) (int64, error)
}

// New picks the driver configured by CACHE_DRIVER.
func New(cfg *config.Config, ot otel.Otel) Cache {
	if cfg.Cache.Driver == config.CacheDriverRedis {
		log.Info().Msg("Using redis response cache")

		return NewRedisCache(redis.New(cfg), ot)
	}

	log.Info().Int("ttl", cfg.Cache.TTL).Msg("Using in-memory response cache")

	return NewMemoryCache(ot)
}
