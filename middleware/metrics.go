// Package middleware holds the gin middleware shared by every route:
// request ids and access logging, prometheus counters and rate limiting.
package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// EndpointCalls counts every request per endpoint.
	EndpointCalls = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "taskboard_endpoint_calls_total",
		Help: "Total number of calls per endpoint.",
	}, []string{"endpoint"})
	// Errors counts responses with a 4xx or 5xx status per endpoint.
	Errors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "taskboard_errors_total",
		Help: "Total number of errors occurred per endpoint.",
	}, []string{"endpoint", "status"})
	// Latency observes request durations per endpoint.
	Latency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "taskboard_request_duration_seconds",
		Help:    "Request latency per endpoint.",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})
	// RateLimited counts requests rejected by either limiter.
	RateLimited = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "taskboard_rate_limited_total",
		Help: "Total number of requests rejected by the rate limiter.",
	}, []string{"endpoint"})
)

func init() {
	prometheus.MustRegister(EndpointCalls, Errors, Latency, RateLimited)
}

// Metrics records calls, errors and latency. Endpoints are labelled by
// method and route pattern so that ids do not explode the label space.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := Endpoint(c)
		EndpointCalls.WithLabelValues(endpoint).Inc()
		Latency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
		if status := c.Writer.Status(); status >= 400 {
			Errors.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
		}
	}
}

// Endpoint returns "METHOD /route/:pattern", or the raw path for
// unmatched routes.
func Endpoint(c *gin.Context) string {
	path := c.FullPath()
	if path == "" {
		path = "unmatched"
	}
	return c.Request.Method + " " + path
}
