// Package cache provides a Redis-backed response cache for search results.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ashford-menswear/catalog-search/internal/domain"
)

const keyPrefix = "catalog:search:"

// ResultCache stores computed search results keyed by the canonical filter
// serialization.
type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a Redis-backed result cache.
func New(client *redis.Client, ttl time.Duration) *ResultCache {
	return &ResultCache{
		client: client,
		ttl:    ttl,
	}
}

// Get retrieves a cached result for the filter configuration. A miss returns
// (nil, nil).
func (c *ResultCache) Get(ctx context.Context, f *domain.FilterConfig) (*domain.SearchResult, error) {
	key := keyPrefix + f.CacheKey()

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get search result: %w", err)
	}

	var result domain.SearchResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("unmarshal search result: %w", err)
	}

	return &result, nil
}

// Set stores a result with the configured TTL.
func (c *ResultCache) Set(ctx context.Context, f *domain.FilterConfig, result *domain.SearchResult) error {
	key := keyPrefix + f.CacheKey()

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal search result: %w", err)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set search result: %w", err)
	}

	return nil
}

// Invalidate removes every cached search result. Called when the underlying
// catalog changes.
func (c *ResultCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("redis del %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis scan search keys: %w", err)
	}
	return nil
}
