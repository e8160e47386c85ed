// internal/cache/query_cache.go

// Package cache is the console's read cache for upstream queries. Results
// are stored per resource with a TTL, and any mutation on a resource
// invalidates every cached query for it. The cache is strictly an
// accelerator: any Redis failure degrades to an upstream fetch.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "crmdesk:query:"

type QueryCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func New(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *QueryCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &QueryCache{rdb: rdb, ttl: ttl, logger: logger}
}

// GetJSON loads a cached query result into dest. Returns false on miss or on
// any cache failure.
func (q *QueryCache) GetJSON(ctx context.Context, resource, key string, dest interface{}) bool {
	if q == nil || q.rdb == nil {
		return false
	}
	data, err := q.rdb.Get(ctx, q.key(resource, key)).Bytes()
	if err != nil {
		if err != redis.Nil {
			q.logger.Warn("cache read failed", zap.String("resource", resource), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		q.logger.Warn("cache entry corrupt, dropping", zap.String("resource", resource), zap.Error(err))
		q.rdb.Del(ctx, q.key(resource, key))
		return false
	}
	return true
}

// SetJSON stores a query result under the resource's namespace.
func (q *QueryCache) SetJSON(ctx context.Context, resource, key string, v interface{}) {
	if q == nil || q.rdb == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		q.logger.Warn("cache encode failed", zap.String("resource", resource), zap.Error(err))
		return
	}
	if err := q.rdb.Set(ctx, q.key(resource, key), data, q.ttl).Err(); err != nil {
		q.logger.Warn("cache write failed", zap.String("resource", resource), zap.Error(err))
	}
}

// Invalidate drops every cached query for the resource. Called after any
// mutation so readers never see stale lists.
func (q *QueryCache) Invalidate(ctx context.Context, resource string) {
	if q == nil || q.rdb == nil {
		return
	}
	iter := q.rdb.Scan(ctx, 0, keyPrefix+resource+":*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		q.logger.Warn("cache invalidation scan failed", zap.String("resource", resource), zap.Error(err))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := q.rdb.Del(ctx, keys...).Err(); err != nil {
		q.logger.Warn("cache invalidation failed", zap.String("resource", resource), zap.Error(err))
	}
}

func (q *QueryCache) key(resource, key string) string {
	return keyPrefix + resource + ":" + key
}
