package cache

import (
	"context"
	"fmt"
	"hms/infras/otel"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog/log"
)

// memoryCache keeps encoded payloads so a hit never shares memory with the caller.
type memoryCache struct {
	store *ttlcache.Cache[string, []byte]
	otel  otel.Otel

	mu          sync.Mutex
	generations map[string]int64
}

// NewMemoryCache returns an in-process cache. Entries expire at their TTL; reads do not
// extend it.
func NewMemoryCache(ot otel.Otel) Cache {
	store := ttlcache.New[string, []byte](
		ttlcache.WithDisableTouchOnHit[string, []byte](),
	)

	go store.Start()

	return &memoryCache{
		store:       store,
		otel:        ot,
		generations: make(map[string]int64),
	}
}

// Clear implements Cache.
func (cache *memoryCache) Clear(ctx context.Context, prefix string) error {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Clear")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, prefix)

	cache.mu.Lock()
	cache.generations[prefix]++
	cache.mu.Unlock()

	removed := 0

	for _, key := range cache.store.Keys() {
		if strings.HasPrefix(key, prefix) {
			cache.store.Delete(key)
			removed++
		}
	}

	log.Debug().Str("MemoryCache", "Clear").Str("prefix", prefix).Int("removed", removed).Msg("cleared cache prefix")

	return nil
}

// Generation implements Cache.
func (cache *memoryCache) Generation(_ context.Context, prefix string) (int64, error) {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	return cache.generations[prefix], nil
}

// Get implements Cache.
func (cache *memoryCache) Get(ctx context.Context, key string, value any) error {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Get")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	item := cache.store.Get(key)
	if item == nil || item.IsExpired() {
		return fmt.Errorf("failed to get cache value: %w", Nil)
	}

	return decode(item.Value(), value)
}

// Increment implements Cache.
func (cache *memoryCache) Increment(ctx context.Context, key string, window int) (int64, error) {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Increment")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	cache.mu.Lock()
	defer cache.mu.Unlock()

	count := int64(1)
	ttl := time.Duration(window) * time.Second

	if item := cache.store.Get(key); item != nil {
		remaining := time.Until(item.ExpiresAt())

		if n, err := strconv.ParseInt(string(item.Value()), 10, 64); err == nil && remaining > 0 {
			count = n + 1
			ttl = remaining
		}
	}

	cache.store.Set(key, []byte(strconv.FormatInt(count, 10)), ttl)

	return count, nil
}

// Save implements Cache.
func (cache *memoryCache) Save(ctx context.Context, key string, value any, duration int) (err error) {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	payload, err := encode(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Str("MemoryCache", "Save").Msg("failed to marshal cache")

		return err
	}

	if duration <= 0 {
		return nil
	}

	cache.store.Set(key, payload, time.Duration(duration)*time.Second)

	return nil
}
