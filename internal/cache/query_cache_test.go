package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type cachedList struct {
	Items []string `json:"items"`
	Total int64    `json:"total"`
}

func newTestCache(t *testing.T) (*QueryCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return New(rdb, time.Minute, zap.NewNop()), mr
}

func TestSetThenGet(t *testing.T) {
	q, _ := newTestCache(t)
	ctx := context.Background()

	q.SetJSON(ctx, "leads", "page=1", cachedList{Items: []string{"a", "b"}, Total: 2})

	var got cachedList
	require.True(t, q.GetJSON(ctx, "leads", "page=1", &got))
	assert.Equal(t, int64(2), got.Total)
	assert.Equal(t, []string{"a", "b"}, got.Items)
}

func TestGetMiss(t *testing.T) {
	q, _ := newTestCache(t)
	var got cachedList
	assert.False(t, q.GetJSON(context.Background(), "leads", "page=1", &got))
}

func TestInvalidateDropsOnlyTheResource(t *testing.T) {
	q, _ := newTestCache(t)
	ctx := context.Background()

	q.SetJSON(ctx, "leads", "page=1", cachedList{Total: 1})
	q.SetJSON(ctx, "leads", "page=2", cachedList{Total: 1})
	q.SetJSON(ctx, "deals", "page=1", cachedList{Total: 9})

	q.Invalidate(ctx, "leads")

	var got cachedList
	assert.False(t, q.GetJSON(ctx, "leads", "page=1", &got))
	assert.False(t, q.GetJSON(ctx, "leads", "page=2", &got))
	require.True(t, q.GetJSON(ctx, "deals", "page=1", &got))
	assert.Equal(t, int64(9), got.Total)
}

func TestEntriesExpire(t *testing.T) {
	q, mr := newTestCache(t)
	ctx := context.Background()

	q.SetJSON(ctx, "leads", "page=1", cachedList{Total: 1})
	mr.FastForward(2 * time.Minute)

	var got cachedList
	assert.False(t, q.GetJSON(ctx, "leads", "page=1", &got))
}

func TestCorruptEntryIsDropped(t *testing.T) {
	q, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(keyPrefix+"leads:page=1", "{broken"))

	var got cachedList
	assert.False(t, q.GetJSON(ctx, "leads", "page=1", &got))
	assert.False(t, mr.Exists(keyPrefix+"leads:page=1"))
}

func TestNilCacheIsSafe(t *testing.T) {
	var q *QueryCache
	ctx := context.Background()
	var got cachedList
	assert.False(t, q.GetJSON(ctx, "leads", "k", &got))
	q.SetJSON(ctx, "leads", "k", got)
	q.Invalidate(ctx, "leads")
}
