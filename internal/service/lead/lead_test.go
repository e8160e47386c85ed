package lead

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"crmdesk-console/internal/cache"
	"crmdesk-console/internal/crmapi"
	"crmdesk-console/internal/domain/lead"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestService(t *testing.T, upstreamHits *atomic.Int64) *Service {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstreamHits.Add(1)
		switch {
		case r.Method == http.MethodGet:
			resp := lead.LeadListResponse{
				Leads: []lead.Lead{{ID: 1, FullName: "Bob", Status: "new"}},
				Total: 1, Page: 1, PageSize: 20, TotalPages: 1,
			}
			data, _ := json.Marshal(resp)
			w.Write([]byte(`{"success": true, "message": "ok", "data": ` + string(data) + `}`))
		default:
			w.Write([]byte(`{"success": true, "message": "created", "data": {"id": 2, "full_name": "New"}}`))
		}
	}))
	t.Cleanup(srv.Close)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	api := crmapi.New(srv.URL, staticToken("tok"), zap.NewNop())
	return NewService(api, cache.New(rdb, time.Minute, zap.NewNop()), zap.NewNop())
}

func TestListIsServedFromCacheOnRepeat(t *testing.T) {
	var hits atomic.Int64
	svc := newTestService(t, &hits)
	ctx := context.Background()
	filters := lead.LeadListFilters{Status: "new", Page: 1, PageSize: 20}

	first, err := svc.List(ctx, filters)
	require.NoError(t, err)
	second, err := svc.List(ctx, filters)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), hits.Load(), "second read must come from cache")
}

func TestDifferentFiltersMissTheCache(t *testing.T) {
	var hits atomic.Int64
	svc := newTestService(t, &hits)
	ctx := context.Background()

	_, err := svc.List(ctx, lead.LeadListFilters{Page: 1})
	require.NoError(t, err)
	_, err = svc.List(ctx, lead.LeadListFilters{Page: 2})
	require.NoError(t, err)

	assert.Equal(t, int64(2), hits.Load())
}

func TestCreateInvalidatesListCache(t *testing.T) {
	var hits atomic.Int64
	svc := newTestService(t, &hits)
	ctx := context.Background()
	filters := lead.LeadListFilters{Page: 1}

	_, err := svc.List(ctx, filters)
	require.NoError(t, err)

	_, err = svc.Create(ctx, &lead.CreateLeadRequest{FullName: "New"})
	require.NoError(t, err)

	_, err = svc.List(ctx, filters)
	require.NoError(t, err)

	// list, create, list again after invalidation
	assert.Equal(t, int64(3), hits.Load())
}
