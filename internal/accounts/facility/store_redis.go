// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package facility

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/wastewise/internal/platform/constants"
)

// RedisDirectoryCache implements [Cache] with generation-scoped keys.
//
// Every page key embeds the current generation number. Invalidation bumps
// the generation, so stale pages are never read again and simply expire.
type RedisDirectoryCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisDirectoryCache creates a cache whose pages live for ttl.
func NewRedisDirectoryCache(client redis.Cmdable, ttl time.Duration) *RedisDirectoryCache {
	return &RedisDirectoryCache{client: client, ttl: ttl}
}

// PageKey builds the Redis key of a page for a given generation.
func PageKey(generation int64, key string) string {
	return fmt.Sprintf("%s%d:%s", constants.RedisPrefixFacilityDirectory, generation, key)
}

func (cache *RedisDirectoryCache) generation(context context.Context) (int64, error) {
	generation, err := cache.client.Get(context, constants.RedisKeyFacilityDirectoryGen).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis_directory_generation_failed: %w", err)
	}
	return generation, nil
}

/*
Get returns the cached page for key under the current generation.

Returns:
  - []byte: The JSON page
  - bool: false on a miss
  - error: Connectivity errors
*/
func (cache *RedisDirectoryCache) Get(context context.Context, key string) ([]byte, bool, error) {
	generation, err := cache.generation(context)
	if err != nil {
		return nil, false, err
	}

	payload, err := cache.client.Get(context, PageKey(generation, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis_directory_get_failed: %w", err)
	}
	return payload, true, nil
}

// Set stores a page under the current generation.
func (cache *RedisDirectoryCache) Set(context context.Context, key string, payload []byte) error {
	generation, err := cache.generation(context)
	if err != nil {
		return err
	}

	if err := cache.client.Set(context, PageKey(generation, key), payload, cache.ttl).Err(); err != nil {
		return fmt.Errorf("redis_directory_set_failed: %w", err)
	}
	return nil
}

// Invalidate bumps the generation.
func (cache *RedisDirectoryCache) Invalidate(context context.Context) error {
	if err := cache.client.Incr(context, constants.RedisKeyFacilityDirectoryGen).Err(); err != nil {
		return fmt.Errorf("redis_directory_invalidate_failed: %w", err)
	}
	return nil
}

var _ Cache = (*RedisDirectoryCache)(nil)
