package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daynote/pkg/metrics"
)

func TestCollectorCountsAndExposes(t *testing.T) {
	c := metrics.NewCollector("test")

	c.ObserveHTTP(http.MethodGet, "/api/v1/notes/today", http.StatusOK, 15*time.Millisecond)
	c.ObserveHTTP(http.MethodGet, "/api/v1/notes/today", http.StatusOK, 5*time.Millisecond)
	c.ObserveCache(metrics.CacheHit)
	c.ObserveWrite("note", "create", nil)
	c.ObserveWrite("note", "create", errors.New("boom"))

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `test_http_requests_total{method="GET",route="/api/v1/notes/today",status="200"} 2`)
	assert.Contains(t, body, `test_cache_events_total{outcome="hit"} 1`)
	assert.Contains(t, body, `test_writes_total{entity="note",op="create",result="error"} 1`)
	assert.True(t, strings.Contains(body, "go_goroutines"))
}

func TestCollectorsAreIndependent(t *testing.T) {
	a := metrics.NewCollector("a")
	b := metrics.NewCollector("b")

	a.ObserveCache(metrics.CacheMiss)

	count, err := testutil.GatherAndCount(a.Registry(), "a_cache_events_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = testutil.GatherAndCount(b.Registry(), "b_cache_events_total")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
