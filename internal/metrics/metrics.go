// Package metrics holds the Prometheus collectors for path queries and HTTP
// traffic. Each Collector owns a private registry so tests can create as many
// as they like without duplicate-registration panics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Query results recorded in path_queries_total.
const (
	ResultFound   = "found"
	ResultTrivial = "trivial"
	ResultNoPath  = "no_path"
	ResultError   = "error"
)

// Collector holds all Prometheus metrics for the application.
type Collector struct {
	registry *prometheus.Registry

	PathQueries   *prometheus.CounterVec
	PathMoves     prometheus.Histogram
	QueryDuration prometheus.Histogram

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// NewCollector creates and registers metrics under namespace.
func NewCollector(namespace string) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		PathQueries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "path_queries_total",
				Help:      "Total number of shortest-path queries by result",
			},
			[]string{"result"},
		),
		PathMoves: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "path_moves",
				Help:      "Number of knight moves in returned paths",
				Buckets:   prometheus.LinearBuckets(0, 1, 7),
			},
		),
		QueryDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "path_query_duration_seconds",
				Help:      "Shortest-path query duration in seconds",
				Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 8),
			},
		),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	c.registry.MustRegister(
		c.PathQueries,
		c.PathMoves,
		c.QueryDuration,
		c.HTTPRequests,
		c.HTTPDuration,
	)

	return c
}

// Registry returns the collector's private registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// ObserveQuery records one path query. moves is ignored unless result is
// ResultFound or ResultTrivial.
func (c *Collector) ObserveQuery(result string, moves int, elapsed time.Duration) {
	c.PathQueries.WithLabelValues(result).Inc()
	c.QueryDuration.Observe(elapsed.Seconds())
	if result == ResultFound || result == ResultTrivial {
		c.PathMoves.Observe(float64(moves))
	}
}

// ObserveRejected counts a query refused before any search ran, such as one
// with a malformed square label. Only PathQueries{result="error"} moves.
func (c *Collector) ObserveRejected() {
	c.PathQueries.WithLabelValues(ResultError).Inc()
}

// ObserveHTTP records one HTTP request.
func (c *Collector) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
