package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	likeTogglesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "like_toggles_total",
			Help: "Total number of like toggles by resulting state",
		},
		[]string{"state"},
	)

	followOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "follow_operations_total",
			Help: "Total number of follow and unfollow operations",
		},
		[]string{"operation", "status"},
	)
)

func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(duration)
	}
}

// RecordLikeToggle tracks the resulting state of a toggle.
func RecordLikeToggle(liked bool) {
	state := "unliked"
	if liked {
		state = "liked"
	}
	likeTogglesTotal.WithLabelValues(state).Inc()
}

// RecordFollowOp tracks follow/unfollow outcomes.
func RecordFollowOp(operation, status string) {
	followOpsTotal.WithLabelValues(operation, status).Inc()
}
