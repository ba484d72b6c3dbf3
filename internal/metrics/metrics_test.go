package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knightpath/internal/metrics"
)

func TestObserveQuery(t *testing.T) {
	c := metrics.NewCollector("test")
	c.ObserveQuery(metrics.ResultFound, 6, time.Millisecond)
	c.ObserveQuery(metrics.ResultFound, 1, time.Millisecond)
	c.ObserveQuery(metrics.ResultTrivial, 0, time.Microsecond)
	c.ObserveQuery(metrics.ResultError, 0, time.Microsecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.PathQueries.WithLabelValues(metrics.ResultFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.PathQueries.WithLabelValues(metrics.ResultTrivial)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.PathQueries.WithLabelValues(metrics.ResultError)))

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), "test_path_moves_count 3")
	assert.Contains(t, rec.Body.String(), "test_path_query_duration_seconds_count 4")
}

func TestObserveRejected(t *testing.T) {
	c := metrics.NewCollector("test")
	c.ObserveRejected()

	assert.Equal(t, 1.0, testutil.ToFloat64(c.PathQueries.WithLabelValues(metrics.ResultError)))
	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), "test_path_query_duration_seconds_count 0")
	assert.Contains(t, rec.Body.String(), "test_path_moves_count 0")
}

func TestObserveHTTP(t *testing.T) {
	c := metrics.NewCollector("test")
	c.ObserveHTTP(http.MethodGet, "/api/v1/path", http.StatusOK, time.Millisecond)
	c.ObserveHTTP(http.MethodGet, "/api/v1/path", http.StatusBadRequest, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.HTTPRequests.WithLabelValues("GET", "/api/v1/path", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.HTTPRequests.WithLabelValues("GET", "/api/v1/path", "400")))
}

func TestHandler(t *testing.T) {
	c := metrics.NewCollector("kp")
	c.ObserveQuery(metrics.ResultFound, 2, time.Millisecond)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `kp_path_queries_total{result="found"} 1`))
}

func TestNewCollector_Independent(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = metrics.NewCollector("same")
		_ = metrics.NewCollector("same")
	})
}
